package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/image/bmp"

	"github.com/BeatGlow/pixfmt/framebuffer"
	"github.com/BeatGlow/pixfmt/internal/config"
	"github.com/BeatGlow/pixfmt/pixel"
)

func encodeFile(log zerolog.Logger, cfg *config.Config, in, out string) error {
	format, err := cfg.PixelFormat()
	if err != nil {
		return err
	}

	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	src, kind, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", in, err)
	}
	log.Debug().Str("file", in).Str("type", kind).Str("size", src.Bounds().Size().String()).Msg("read image")

	dst, err := pixel.Convert(src, format)
	if err != nil {
		return err
	}
	if err = os.WriteFile(out, dst.Pix, 0o644); err != nil {
		return err
	}

	log.Info().Str("file", out).Str("format", format.String()).Str("size", dst.Bounds().Size().String()).
		Int("bytes", len(dst.Pix)).Msg("wrote raw pixels")
	return nil
}

// rawImage wraps a raw pixel buffer in an image, deriving the height when it is not configured.
func rawImage(cfg *config.Config, data []byte) (*pixel.Image, error) {
	format, err := cfg.PixelFormat()
	if err != nil {
		return nil, err
	}
	if cfg.Width <= 0 {
		return nil, fmt.Errorf("invalid width %d", cfg.Width)
	}

	size := format.BufferSize()
	if cfg.Width > len(data)/size {
		return nil, fmt.Errorf("%w: width %d %s needs more than %d bytes",
			pixel.ErrShortBuffer, cfg.Width, format, len(data))
	}
	stride := cfg.Width * size
	height := cfg.Height
	if height <= 0 {
		height = len(data) / stride
	}
	if height > len(data)/stride {
		return nil, fmt.Errorf("%w: %dx%d %s needs more than %d bytes",
			pixel.ErrShortBuffer, cfg.Width, height, format, len(data))
	}

	return &pixel.Image{
		Buffer: pixel.Buffer{
			Rect:   image.Rect(0, 0, cfg.Width, height),
			Pix:    data[:stride*height],
			Stride: stride,
		},
		Format: format,
	}, nil
}

func decodeFile(log zerolog.Logger, cfg *config.Config, in, out string) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	src, err := rawImage(cfg, data)
	if err != nil {
		return err
	}
	log.Debug().Str("file", in).Str("format", src.Format.String()).Str("size", src.Bounds().Size().String()).Msg("read raw pixels")

	f, err := os.Create(out)
	if err != nil {
		return err
	}

	switch ext := strings.ToLower(filepath.Ext(out)); ext {
	case ".png":
		err = png.Encode(f, src)
	case ".bmp":
		err = bmp.Encode(f, src)
	default:
		err = fmt.Errorf("unsupported output type %q", ext)
	}
	if err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}

	log.Info().Str("file", out).Str("size", src.Bounds().Size().String()).Msg("wrote image")
	return nil
}

func dumpFile(out io.Writer, cfg *config.Config, in string) error {
	format, err := cfg.PixelFormat()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	if cfg.Offset < 0 {
		return fmt.Errorf("invalid offset %d", cfg.Offset)
	}
	if cfg.Count < 0 {
		return fmt.Errorf("invalid count %d", cfg.Count)
	}

	size := format.BufferSize()
	for i, n := cfg.Offset, 0; n < cfg.Count && i < len(data)/size; i, n = i+1, n+1 {
		v, err := pixel.NewView(data[i*size:], format)
		if err != nil {
			return err
		}

		var b strings.Builder
		fmt.Fprintf(&b, "%d: %s", i, v)
		for j := 0; j < format.Channels(); j++ {
			c, err := v.Channel(j)
			if err != nil {
				return err
			}
			fmt.Fprintf(&b, " %s=%d", format.ChannelName(j), c)
		}
		fmt.Fprintln(out, b.String())
	}
	return nil
}

func fbInfo(log zerolog.Logger, out io.Writer, name string) error {
	fb, err := framebuffer.Open(name)
	if err != nil {
		return err
	}
	defer func() {
		if err := fb.Close(); err != nil {
			log.Warn().Err(err).Str("device", name).Msg("close failed")
		}
	}()

	fmt.Fprintln(out, fb)
	fmt.Fprintf(out, "bytes per pixel: %d, channels: %d, stride: %d\n",
		fb.Format.BufferSize(), fb.Format.Channels(), fb.Stride)
	return nil
}
