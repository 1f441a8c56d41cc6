// Package config holds the pixconv configuration.
package config

import (
	"errors"
	"io"
	"path/filepath"

	"github.com/kkyr/fig"
	"github.com/spf13/pflag"

	"github.com/BeatGlow/pixfmt/pixel"
)

const (
	// EnvPrefix prefixes the environment variables that override the configuration file.
	EnvPrefix = "PIXFMT"

	// FileName is the configuration file searched for when no path is given.
	FileName = "pixfmt.yaml"
)

// Config of the pixconv tool.
type Config struct {
	// Format is the pixel format name of raw buffers, see pixel.ParseFormat.
	Format string `fig:"format" default:"rgba8"`

	// Width of a raw image in pixels.
	Width int `fig:"width"`

	// Height of a raw image in pixels, zero to derive it from the buffer size.
	Height int `fig:"height"`

	// Offset is the first pixel to dump.
	Offset int `fig:"offset"`

	// Count is the number of pixels to dump.
	Count int `fig:"count" default:"1"`

	Debug bool `fig:"debug"`
}

// Load loads the configuration file at path, then applies PIXFMT_ environment variables.
//
// With an empty path the file is searched for in the current directory and ./configs, and
// running without one is not an error.
func Load(path string) (*Config, error) {
	var (
		c    Config
		name = FileName
		dirs = []string{".", "configs"}
	)
	if path != "" {
		name = filepath.Base(path)
		dirs = []string{filepath.Dir(path)}
	}

	err := fig.Load(&c, fig.File(name), fig.Dirs(dirs...), fig.UseEnv(EnvPrefix))
	if path == "" && errors.Is(err, fig.ErrFileNotFound) {
		c = Config{}
		err = fig.Load(&c, fig.IgnoreFile(), fig.UseEnv(EnvPrefix))
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// WithFlags binds the configuration to command line flags, the current values are the defaults.
func (c *Config) WithFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Format, "format", "f", c.Format, "Pixel format of raw buffers: [rgba8, rgb8, rgb565, a1rgb5, rgba4]")
	fs.IntVarP(&c.Width, "width", "w", c.Width, "Raw image width in pixels")
	fs.IntVarP(&c.Height, "height", "h", c.Height, "Raw image height in pixels (0: derive from the buffer size)")
	fs.IntVar(&c.Offset, "offset", c.Offset, "First pixel to dump")
	fs.IntVarP(&c.Count, "count", "n", c.Count, "Number of pixels to dump")
	fs.BoolVarP(&c.Debug, "debug", "d", c.Debug, "Enable debug logging")
}

// PixelFormat parses the configured format.
func (c *Config) PixelFormat() (pixel.Format, error) {
	return pixel.ParseFormat(c.Format)
}

// ConfigPath picks the --config (-c) flag out of args, ignoring all other flags.
func ConfigPath(args []string) string {
	fs := pflag.NewFlagSet("config", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	path := fs.StringP("config", "c", "", "")
	new(Config).WithFlags(fs)
	_ = fs.Parse(args)
	return *path
}
