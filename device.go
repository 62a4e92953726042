package soundcard

import (
	"io"
	"time"
)

// Device is an open byte-stream endpoint. Read must return within the read
// timeout it was opened with, reporting (0, nil) when nothing arrived.
type Device interface {
	io.ReadWriteCloser
	IsOpen() bool
}

// Opener opens the named device at baud with the given read timeout
type Opener func(name string, baud int, readTimeout time.Duration) (Device, error)

// inputFlusher is implemented by devices that can discard pending input
type inputFlusher interface {
	FlushInput() error
}

func (c Config) opener() Opener {
	if c.Opener != nil {
		return c.Opener
	}

	switch c.Driver {
	case DriverBugst:
		return openBugst
	default:
		mode := c.WriteMode
		return func(name string, baud int, readTimeout time.Duration) (Device, error) {
			return OpenPort(name, PortConfig{
				BaudRate:    baud,
				ReadTimeout: readTimeout,
				WriteMode:   mode,
			})
		}
	}
}
