package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/letters/texture"
)

// config holds every setting of a run. A YAML file may supply any subset;
// flags given on the command line override it.
type config struct {
	Text    string `yaml:"text"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Output  string `yaml:"output"`
	Texture string `yaml:"texture"` // empty skips the texture export
	Format  string `yaml:"format"`
	Size    int    `yaml:"size"`
	Start   int    `yaml:"start"`
	End     int    `yaml:"end"`
	Seed    uint64 `yaml:"seed"`
	Camera  bool   `yaml:"camera"`
	Verbose bool   `yaml:"verbose"`
}

func defaultConfig() config {
	return config{
		Text:   "hello",
		Width:  1024,
		Height: 256,
		Output: "letters.png",
		Format: "png",
		Size:   texture.DefaultSize,
		Start:  64,
		End:    1,
		Seed:   texture.DefaultSeed,
	}
}

// bindFlags registers one flag per config field, defaulting to c's values.
func (c *config) bindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Text, "text", c.Text, "text to lay out")
	fs.IntVar(&c.Width, "width", c.Width, "preview width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "preview height in pixels")
	fs.StringVar(&c.Output, "output", c.Output, "preview image path (.png, .bmp or .tiff)")
	fs.StringVar(&c.Texture, "texture", c.Texture, "also write the static texture to this path")
	fs.StringVar(&c.Format, "format", c.Format, "texture image format: png, bmp or tiff")
	fs.IntVar(&c.Size, "size", c.Size, "texture edge length")
	fs.IntVar(&c.Start, "start", c.Start, "coarsest static chunk size")
	fs.IntVar(&c.End, "end", c.End, "finest static chunk size")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "static texture seed")
	fs.BoolVar(&c.Camera, "camera", c.Camera, "render through the perspective camera")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "debug logging")
}

// loadConfig reads a YAML config file on top of the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// parseConfig parses args. When -config names a file its values replace
// the defaults, and only flags present in args are applied over it.
func parseConfig(args []string) (config, error) {
	fs := flag.NewFlagSet("letterdemo", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file")
	cfg := defaultConfig()
	cfg.bindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if *configPath == "" {
		return cfg, nil
	}

	fileCfg, err := loadConfig(*configPath)
	if err != nil {
		return cfg, err
	}

	// Re-parse onto the file values so explicit flags win.
	fs = flag.NewFlagSet("letterdemo", flag.ContinueOnError)
	fs.String("config", "", "YAML config file")
	fileCfg.bindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return fileCfg, nil
}
