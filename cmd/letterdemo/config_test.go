package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/schollz/progressbar/v3"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/letters"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parseConfig(nil)
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), cfg)
}

func TestParseConfig_Flags(t *testing.T) {
	cfg, err := parseConfig([]string{"-text", "abc", "-start", "32", "-v"})
	require.NoError(t, err)
	require.Equal(t, "abc", cfg.Text)
	require.Equal(t, 32, cfg.Start)
	require.True(t, cfg.Verbose)
	require.Equal(t, defaultConfig().Width, cfg.Width)
}

func TestParseConfig_FileThenFlags(t *testing.T) {
	path := writeConfig(t, `
text: from file
width: 640
seed: 99
camera: true
`)

	cfg, err := parseConfig([]string{"-config", path, "-width", "320"})
	require.NoError(t, err)
	require.Equal(t, "from file", cfg.Text)
	require.Equal(t, 320, cfg.Width, "explicit flag overrides the file")
	require.Equal(t, uint64(99), cfg.Seed)
	require.True(t, cfg.Camera)
	require.Equal(t, defaultConfig().Height, cfg.Height, "unset keys keep defaults")
}

func TestParseConfig_BadFile(t *testing.T) {
	_, err := parseConfig([]string{"-config", filepath.Join(t.TempDir(), "missing.yml")})
	require.Error(t, err)

	_, err = parseConfig([]string{"-config", writeConfig(t, "width: [1, 2")})
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := defaultConfig()
	cfg.Width, cfg.Height = 128, 32
	cfg.Size, cfg.Start, cfg.End = 32, 8, 2
	cfg.Output = filepath.Join(dir, "preview.png")
	cfg.Texture = filepath.Join(dir, "static.bmp")
	cfg.Format = "bmp"

	require.NoError(t, run(cfg))
	for _, path := range []string{cfg.Output, cfg.Texture} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Positive(t, info.Size())
	}
}

func TestRun_InvalidTexture(t *testing.T) {
	cfg := defaultConfig()
	cfg.Output = filepath.Join(t.TempDir(), "preview.png")
	cfg.Start = 48
	require.Error(t, run(cfg))

	cfg = defaultConfig()
	cfg.Output = filepath.Join(t.TempDir(), "preview.gif")
	require.Error(t, run(cfg))
}

func TestAdvance_LogsBarErrors(t *testing.T) {
	orig := letters.Logger()
	t.Cleanup(func() { letters.SetLogger(orig) })
	var buf bytes.Buffer
	letters.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	// Mixing a preset and a custom spinner makes every Add fail.
	pb := progressbar.NewOptions(steps,
		progressbar.OptionSetWriter(io.Discard),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSpinnerCustom([]string{"-", "+"}),
	)
	require.Error(t, pb.Add(1))

	advance(pb)
	require.Contains(t, buf.String(), "letterdemo: progress bar")
	require.Contains(t, buf.String(), "cannot be used together")
}
