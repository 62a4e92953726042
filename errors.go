package soundcard

import "errors"

// Predefined error types for robust error handling
var (
	// ErrOpenFailed is matched by every error returned from Transport.Open.
	ErrOpenFailed = errors.New("failed to open serial device")

	ErrDeviceNotFound   = errors.New("serial device not found")
	ErrPermissionDenied = errors.New("permission denied accessing serial device")
	ErrDeviceInUse      = errors.New("serial device already in use")
	ErrInvalidBaudRate  = errors.New("invalid baud rate")
	ErrInvalidConfig    = errors.New("invalid serial configuration")
	ErrPortClosed       = errors.New("serial port is closed")
	ErrUnknownCharset   = errors.New("unknown wire charset")
)
