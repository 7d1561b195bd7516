// Command letterdemo builds the glyph alphabet, lays out a line of text,
// renders it with the fractal static texture and writes the result as an
// image.
//
// Usage:
//
//	letterdemo -text "hello world" -output hello.png -texture static.tiff
//	letterdemo -config demo.yml -seed 7
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/schollz/progressbar/v3"

	"github.com/gogpu/letters"
	"github.com/gogpu/letters/layout"
	"github.com/gogpu/letters/preview"
	"github.com/gogpu/letters/texture"
)

// steps is the number of progress bar increments in run.
const steps = 5

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "letterdemo: %v\n", err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	letters.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "letterdemo: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	log := letters.Logger()
	previewFormat, err := texture.ParseFormat(filepath.Ext(cfg.Output))
	if err != nil {
		return fmt.Errorf("output %s: %w", cfg.Output, err)
	}
	textureFormat, err := texture.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	pb := progressbar.Default(steps, "letterdemo")
	defer pb.Close()

	alphabet, err := letters.CreateAlphabet[letters.TexCoord]()
	if err != nil {
		return err
	}
	advance(pb)

	static, err := texture.FractalStatic(cfg.Start, cfg.End, texture.WithSize(cfg.Size), texture.WithSeed(cfg.Seed))
	if err != nil {
		return err
	}
	advance(pb)

	lines, err := layout.Instances(cfg.Text)
	if err != nil {
		return err
	}
	advance(pb)

	dc := gg.NewContext(cfg.Width, cfg.Height)
	defer func() { _ = dc.Close() }()
	opts := preview.Options{Texture: static, Background: gg.RGB(0.05, 0.05, 0.08)}
	if cfg.Camera {
		cam := layout.DefaultCamera(float32(cfg.Width) / float32(cfg.Height))
		opts.Camera = &cam
	}
	stats, err := preview.Render(dc, &alphabet, &lines, opts)
	if err != nil {
		return err
	}
	advance(pb)

	if err := writeImage(cfg.Output, texture.FromImage(dc.Image()), previewFormat); err != nil {
		return err
	}
	if cfg.Texture != "" {
		if err := writeImage(cfg.Texture, texture.Opaque(static), textureFormat); err != nil {
			return err
		}
	}
	advance(pb)

	log.Info("letterdemo: done",
		"output", cfg.Output, "instances", stats.Instances, "triangles", stats.Triangles)
	return nil
}

// advance moves the bar one step. A bar that cannot draw does not stop the
// run; the failure is logged at debug level.
func advance(pb *progressbar.ProgressBar) {
	if err := pb.Add(1); err != nil {
		letters.Logger().Debug("letterdemo: progress bar", "err", err)
	}
}

func writeImage(path string, tex *texture.Texture[texture.RGBA], format texture.Format) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return texture.Encode(f, tex, format)
}
