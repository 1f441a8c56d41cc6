// Package framebuffer provides access to the operating system's native framebuffer
//
// This requires framebuffer device support in the operating system. The framebuffer
// can be opened with the [Open] call, its memory is then available as a [pixel.Image]
// whose format is detected from the channel layout reported by the device.
//
// Devices using a layout that does not match one of the [pixel] formats cannot be opened.
package framebuffer

import (
	"errors"
	"fmt"

	"github.com/BeatGlow/pixfmt/pixel"
)

// Errors
var (
	ErrNotSupported = errors.New("framebuffer: not supported")
)

// Device is an opened framebuffer. Writes to the embedded image go straight to the device memory.
type Device struct {
	*pixel.Image

	// ID is the identification string reported by the driver.
	ID string

	close func() error
}

// Close unmaps the framebuffer memory and closes the device. The image must not be used afterwards.
func (fb *Device) Close() error {
	if fb.close == nil {
		return nil
	}
	err := fb.close()
	fb.close = nil
	fb.Image = nil
	return err
}

func (fb *Device) String() string {
	if fb.Image == nil {
		return fmt.Sprintf("framebuffer %q (closed)", fb.ID)
	}
	size := fb.Bounds().Size()
	return fmt.Sprintf("framebuffer %q %dx%d %s", fb.ID, size.X, size.Y, fb.Format)
}
