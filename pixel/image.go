package pixel

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

const maxInt = int(^uint(0) >> 1)

// Buffer holds the pixel values of an image.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

// Clear sets all bytes to zero.
func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

// Image is an in-memory image of a single pixel format.
//
// The pixel at (x, y) starts at Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*Format.BufferSize()].
type Image struct {
	Buffer
	Format Format
}

// NewImage allocates a w by h image.
func NewImage(f Format, w, h int) (*Image, error) {
	size := f.BufferSize()
	if size == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if w < 0 || h < 0 || w > maxInt/size || (w != 0 && h > maxInt/(w*size)) {
		return nil, fmt.Errorf("pixel: invalid image size %dx%d", w, h)
	}
	return &Image{
		Buffer: Buffer{
			Rect:   image.Rect(0, 0, w, h),
			Pix:    make([]byte, w*h*size),
			Stride: w * size,
		},
		Format: f,
	}, nil
}

// Convert copies src into a new image of format f.
func Convert(src image.Image, f Format) (*Image, error) {
	r := src.Bounds()
	dst, err := NewImage(f, r.Dx(), r.Dy())
	if err != nil {
		return nil, err
	}
	dst.Rect = r
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.Set(x, y, src.At(x, y))
		}
	}
	return dst, nil
}

func (p *Image) ColorModel() color.Model {
	return p.Format.Model()
}

func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*p.Format.BufferSize()
}

func (p *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	i := p.PixOffset(x, y)
	c, err := Decode(p.Pix[i:i+p.Format.BufferSize()], p.Format)
	if err != nil {
		return color.Transparent
	}
	return c
}

func (p *Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	m := p.Format.Model()
	if m == nil {
		return
	}
	i := p.PixOffset(x, y)
	putValue(p.Pix[i:i+p.Format.BufferSize()], m.Convert(c).(Pixel).Value())
}

// PixelAt returns a View bound to the bytes of the pixel at (x, y).
func (p *Image) PixelAt(x, y int) (View, error) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return View{}, fmt.Errorf("%w: (%d,%d) not in %s", ErrBounds, x, y, p.Rect)
	}
	return NewView(p.Pix[p.PixOffset(x, y):], p.Format)
}

// Fill the image with a single color.
func (p *Image) Fill(c color.Color) {
	m := p.Format.Model()
	if m == nil {
		return
	}

	var (
		size  = p.Format.BufferSize()
		bytes = make([]byte, size)
		width = p.Rect.Dx() * size
	)
	putValue(bytes, m.Convert(c).(Pixel).Value())
	for y := 0; y < p.Rect.Dy(); y++ {
		row := p.Pix[y*p.Stride : y*p.Stride+width]
		for i := 0; i < width; i += size {
			copy(row[i:], bytes)
		}
	}
}

// Interface checks.
var (
	_ draw.Image = (*Image)(nil)
)
