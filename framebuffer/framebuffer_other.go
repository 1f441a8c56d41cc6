//go:build !linux

package framebuffer

// Open a framebuffer device, not supported on this platform.
func Open(_ string) (*Device, error) {
	return nil, ErrNotSupported
}
