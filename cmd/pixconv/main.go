package main

import (
	"errors"
	"fmt"
	_ "image/jpeg"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/BeatGlow/pixfmt/internal/config"
)

const usage = `Usage: %s [flags] <command> [args]

Commands:
  encode <in.png|bmp|jpg> <out.raw>  convert an image to a raw pixel buffer
  decode <in.raw> <out.png|out.bmp>  convert a raw pixel buffer to an image
  dump <in.raw>                      print packed values and channels of raw pixels
  fbinfo [device]                    print the pixel format of a framebuffer device

Flags:
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(2)
		}
		fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	cfg, err := config.Load(config.ConfigPath(args))
	if err != nil {
		return err
	}

	fs := pflag.NewFlagSet("pixconv", pflag.ContinueOnError)
	fs.StringP("config", "c", "", "Configuration file (default: ./"+config.FileName+")")
	cfg.WithFlags(fs)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, usage, filepath.Base(os.Args[0]))
		fs.PrintDefaults()
	}
	if err = fs.Parse(args); err != nil {
		return err
	}

	log := newLogger(cfg.Debug)
	log.Debug().Interface("config", cfg).Msg("loaded configuration")

	if fs.NArg() == 0 {
		fs.Usage()
		return pflag.ErrHelp
	}

	switch command, rest := strings.ToLower(fs.Arg(0)), fs.Args()[1:]; command {
	case "encode":
		if len(rest) != 2 {
			return fmt.Errorf("usage: encode <in> <out>")
		}
		return encodeFile(log, cfg, rest[0], rest[1])
	case "decode":
		if len(rest) != 2 {
			return fmt.Errorf("usage: decode <in> <out>")
		}
		return decodeFile(log, cfg, rest[0], rest[1])
	case "dump":
		if len(rest) != 1 {
			return fmt.Errorf("usage: dump <in>")
		}
		return dumpFile(out, cfg, rest[0])
	case "fbinfo":
		name := "/dev/fb0"
		if len(rest) > 0 {
			name = rest[0]
		}
		return fbInfo(log, out, name)
	default:
		return fmt.Errorf("unsupported command %q", command)
	}
}

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.0000"}
	return zerolog.New(output).Level(level).With().Timestamp().Str("s", "pixconv").Logger()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
