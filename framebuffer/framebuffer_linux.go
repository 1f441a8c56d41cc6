package framebuffer

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"
	"syscall"
	"unsafe"

	"github.com/BeatGlow/pixfmt/pixel"
)

const (
	// From <linux/fb.h>
	fbioGetVScreenInfo = 0x4600
	fbioGetFScreenInfo = 0x4602
)

// Open a Linux FrameBuffer device (fbdev) by name, typically /dev/fb[0..x].
func Open(name string) (*Device, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}

	var (
		fd         = f.Fd()
		info       linuxFrameBufferInfo
		screenInfo linuxVarScreenInfo
	)
	if err = ioctl(fd, fbioGetFScreenInfo, unsafe.Pointer(&info)); err != nil {
		_ = f.Close()
		return nil, err
	}

	// Request virtual screen info.
	if err = ioctl(fd, fbioGetVScreenInfo, unsafe.Pointer(&screenInfo)); err != nil {
		_ = f.Close()
		return nil, err
	}

	format, err := linuxParseFormat(&screenInfo)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	stride := int(info.LineLength)
	if stride == 0 {
		stride = int(screenInfo.XresVirtual) * format.BufferSize()
	}
	rect := image.Rect(0, 0, int(screenInfo.Xres), int(screenInfo.Yres))
	if need := (rect.Dy()-1)*stride + rect.Dx()*format.BufferSize(); rect.Dy() > 0 && need > int(info.SmemLen) {
		_ = f.Close()
		return nil, fmt.Errorf("framebuffer: %s needs %d bytes, device has %d", name, need, info.SmemLen)
	}

	// Map pixel buffer.
	pix, err := syscall.Mmap(int(fd), 0, int(info.SmemLen), syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return &Device{
		Image: &pixel.Image{
			Buffer: pixel.Buffer{
				Rect:   rect,
				Pix:    pix,
				Stride: stride,
			},
			Format: format,
		},
		ID: string(bytes.TrimRight(info.ID[:], "\x00")),
		close: func() error {
			if err := syscall.Munmap(pix); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}, nil
}

func ioctl(fd, cmd uintptr, arg unsafe.Pointer) error {
	if _, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, cmd, uintptr(arg)); errno != 0 {
		return &os.SyscallError{
			Syscall: "SYS_IOCTL",
			Err:     errno,
		}
	}
	return nil
}

type linuxFrameBufferInfo struct {
	ID         [16]byte  // Identification string eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved Planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Reserved   [3]uint16 // Reserved for future compatibility
}

// linuxBitField for the color
type linuxBitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// linuxVarScreenInfo contains device independent changeable information about a frame buffer device and a specific video mode.
type linuxVarScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha linuxBitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}

func (f linuxBitField) field() pixel.Field {
	if f.Length == 0 {
		return pixel.Field{}
	}
	return pixel.Field{Offset: uint8(f.Offset), Length: uint8(f.Length)}
}

func linuxParseFormat(info *linuxVarScreenInfo) (pixel.Format, error) {
	if info == nil {
		return pixel.UnknownFormat, errors.New("framebuffer: invalid VarScreenInfo")
	}
	if info.Grayscale != 0 || info.Nonstd != 0 {
		return pixel.UnknownFormat, fmt.Errorf("%w: grayscale or non-standard pixel format", ErrNotSupported)
	}
	for _, f := range []linuxBitField{info.Red, info.Green, info.Blue, info.Alpha} {
		if f.MsbRight != 0 || f.Offset > 31 || f.Length > 32 {
			return pixel.UnknownFormat, fmt.Errorf("%w: color bitfield %+v", ErrNotSupported, f)
		}
	}

	format, err := pixel.Lookup(int(info.BitsPerPixel), pixel.Layout{
		Red:   info.Red.field(),
		Green: info.Green.field(),
		Blue:  info.Blue.field(),
		Alpha: info.Alpha.field(),
	})
	if err != nil {
		return pixel.UnknownFormat, fmt.Errorf("framebuffer: unsupported color model: %w", err)
	}
	return format, nil
}
