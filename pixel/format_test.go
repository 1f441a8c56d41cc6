package pixel

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		format   Format
		name     string
		size     int
		channels int
		mask     uint32
	}{
		{FormatRGBA8, "rgba8", 4, 4, 0xffffffff},
		{FormatRGB8, "rgb8", 3, 3, 0x00ffffff},
		{FormatRGB565, "rgb565", 2, 3, 0x0000ffff},
		{FormatA1RGB5, "a1rgb5", 2, 4, 0x0000ffff},
		{FormatRGBA4, "rgba4", 2, 4, 0x0000ffff},
		{UnknownFormat, "format(0)", 0, 0, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			if v := test.format.String(); v != test.name {
				it.Errorf("expected name %q, got %q", test.name, v)
			}
			if v := BufferSize(test.format); v != test.size {
				it.Errorf("expected buffer size %d, got %d", test.size, v)
			}
			if v := test.format.Channels(); v != test.channels {
				it.Errorf("expected %d channels, got %d", test.channels, v)
			}
			if v := test.format.Mask(); v != test.mask {
				it.Errorf("expected mask %#08x, got %#08x", test.mask, v)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"rgba8", FormatRGBA8},
		{"RGB8", FormatRGB8},
		{"RGB565", FormatRGB565},
		{"A1_RGB5", FormatA1RGB5},
		{"a1-rgb5", FormatA1RGB5},
		{"Rgba4", FormatRGBA4},
	}
	for _, test := range tests {
		f, err := ParseFormat(test.in)
		if err != nil {
			t.Errorf("%q: %v", test.in, err)
			continue
		}
		if f != test.want {
			t.Errorf("%q: expected %s, got %s", test.in, test.want, f)
		}
	}

	for _, in := range []string{"", "unknown", "bgr565", "rgba"} {
		if _, err := ParseFormat(in); !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("%q: expected ErrUnknownFormat, got %v", in, err)
		}
	}
}

func TestChannelName(t *testing.T) {
	var names string
	for i := 0; i < FormatA1RGB5.Channels(); i++ {
		names += FormatA1RGB5.ChannelName(i)
	}
	if names != "argb" {
		t.Errorf("expected argb, got %q", names)
	}
	if v := FormatRGB8.ChannelName(3); v != "" {
		t.Errorf("expected no name, got %q", v)
	}
}

func TestLookup(t *testing.T) {
	for _, f := range testFormats {
		v, err := Lookup(f.BufferSize()*8, f.Layout())
		if err != nil {
			t.Errorf("%s: %v", f, err)
			continue
		}
		if v != f {
			t.Errorf("expected %s, got %s", f, v)
		}
	}

	bgr565 := Layout{Blue: Field{0, 5}, Green: Field{5, 6}, Red: Field{11, 5}}
	if _, err := Lookup(16, bgr565); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
	if _, err := Lookup(32, FormatRGB565.Layout()); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}
