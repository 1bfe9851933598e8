package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// FlipMode controls vertical flipping of the displayed image.
type FlipMode string

const (
	FlipAuto FlipMode = "auto" // follow the file's origin bit
	FlipOn   FlipMode = "on"
	FlipOff  FlipMode = "off"
)

// Config holds all runtime configuration for the viewer.
type Config struct {
	Path         string
	Title        string
	WindowWidth  int
	WindowHeight int
	Scale        int
	Flip         FlipMode
	LogLevel     string
}

// ParseViewerFlags parses os.Args for the viewer binary and exits on bad input.
func ParseViewerFlags() *Config {
	cfg, err := parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}
	return cfg
}

func parse(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}
	var flip string
	fs.StringVar(&cfg.Title, "title", "", "Window title (defaults to the file name)")
	fs.IntVar(&cfg.WindowWidth, "width", 800, "Initial window width")
	fs.IntVar(&cfg.WindowHeight, "height", 600, "Initial window height")
	fs.IntVar(&cfg.Scale, "scale", 0, "Integer zoom factor (0 = fit to window)")
	fs.StringVar(&flip, "flip", string(FlipAuto), "Vertical flip: auto, on or off")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: tgaview [flags] <image.tga>\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() != 1 {
		return nil, errors.New("exactly one image path is required")
	}
	cfg.Path = fs.Arg(0)
	cfg.Flip = FlipMode(strings.ToLower(flip))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Path == "" {
		return errors.New("image path is empty")
	}
	if c.WindowWidth < 1 || c.WindowHeight < 1 {
		return errors.Errorf("window size %dx%d must be positive", c.WindowWidth, c.WindowHeight)
	}
	if c.Scale < 0 {
		return errors.Errorf("scale %d must not be negative", c.Scale)
	}
	switch c.Flip {
	case FlipAuto, FlipOn, FlipOff:
	default:
		return errors.Errorf("unknown flip mode %q", c.Flip)
	}
	return nil
}
