package config

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("tgaview", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := parse(newFlagSet(), []string{"image.tga"})
	require.NoError(t, err)
	assert.Equal(t, "image.tga", cfg.Path)
	assert.Equal(t, 800, cfg.WindowWidth)
	assert.Equal(t, 600, cfg.WindowHeight)
	assert.Equal(t, 0, cfg.Scale)
	assert.Equal(t, FlipAuto, cfg.Flip)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParse_Flags(t *testing.T) {
	cfg, err := parse(newFlagSet(), []string{
		"-title", "Sprite", "-width", "320", "-height", "200",
		"-scale", "3", "-flip", "OFF", "-log-level", "debug", "sprite.tga",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sprite", cfg.Title)
	assert.Equal(t, 320, cfg.WindowWidth)
	assert.Equal(t, 200, cfg.WindowHeight)
	assert.Equal(t, 3, cfg.Scale)
	assert.Equal(t, FlipOff, cfg.Flip)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{"no path", nil, "image path is required"},
		{"two paths", []string{"a.tga", "b.tga"}, "image path is required"},
		{"bad width", []string{"-width", "0", "a.tga"}, "must be positive"},
		{"negative scale", []string{"-scale", "-2", "a.tga"}, "must not be negative"},
		{"bad flip", []string{"-flip", "sideways", "a.tga"}, "unknown flip mode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(newFlagSet(), tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
