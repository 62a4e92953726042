package soundcard

import (
	"errors"
	"sync/atomic"
	"time"

	"go.bug.st/serial"
)

// bugstPort adapts a go.bug.st/serial port to Device. Close may run while a
// Read is in flight; the library wakes the reader with an error.
type bugstPort struct {
	serial.Port
	closed atomic.Bool
}

func openBugst(name string, baud int, readTimeout time.Duration) (Device, error) {
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	p, err := serial.Open(name, mode)
	if err != nil {
		return nil, mapBugstError(err)
	}

	if err := p.SetReadTimeout(readTimeout); err != nil {
		p.Close()
		return nil, err
	}

	return &bugstPort{Port: p}, nil
}

func mapBugstError(err error) error {
	var portErr *serial.PortError
	if !errors.As(err, &portErr) {
		return err
	}

	switch portErr.Code() {
	case serial.PortNotFound:
		return ErrDeviceNotFound
	case serial.PortBusy:
		return ErrDeviceInUse
	case serial.PermissionDenied:
		return ErrPermissionDenied
	case serial.InvalidSpeed:
		return ErrInvalidBaudRate
	default:
		return err
	}
}

func (p *bugstPort) IsOpen() bool {
	return !p.closed.Load()
}

func (p *bugstPort) Close() error {
	if p.closed.Swap(true) {
		return ErrPortClosed
	}
	return p.Port.Close()
}

func (p *bugstPort) FlushInput() error {
	if p.closed.Load() {
		return ErrPortClosed
	}
	return p.ResetInputBuffer()
}
