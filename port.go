package soundcard

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sys/unix"
)

// Port is a raw termios serial port
type Port interface {
	Device
	FlushInput() error
	FlushOutput() error
	Drain() error
}

// PortConfig holds the configuration for a native Port. Framing is always 8N1.
type PortConfig struct {
	BaudRate    int
	ReadTimeout time.Duration // zero waits until data arrives or the port is closed
	WriteMode   WriteMode
}

// port is the concrete implementation of the Port interface. The fd is
// non-blocking; reads and writes wait in poll(2) on the fd and on a wake pipe
// that Close writes to, so a waiting call returns as soon as Close starts.
type port struct {
	mu     sync.RWMutex // held shared by syscalls on fd, exclusively by Close
	fd     int
	wakeR  int
	wakeW  int
	config PortConfig
	closed atomic.Bool
}

// Ensure port implements Port interface at compile time
var _ Port = (*port)(nil)

// getBaudRate converts an integer baud rate to the unix constant
func getBaudRate(rate int) (uint32, error) {
	switch rate {
	case 50:
		return unix.B50, nil
	case 75:
		return unix.B75, nil
	case 110:
		return unix.B110, nil
	case 134:
		return unix.B134, nil
	case 150:
		return unix.B150, nil
	case 200:
		return unix.B200, nil
	case 300:
		return unix.B300, nil
	case 600:
		return unix.B600, nil
	case 1200:
		return unix.B1200, nil
	case 1800:
		return unix.B1800, nil
	case 2400:
		return unix.B2400, nil
	case 4800:
		return unix.B4800, nil
	case 9600:
		return unix.B9600, nil
	case 19200:
		return unix.B19200, nil
	case 38400:
		return unix.B38400, nil
	case 57600:
		return unix.B57600, nil
	case 115200:
		return unix.B115200, nil
	case 230400:
		return unix.B230400, nil
	case 460800:
		return unix.B460800, nil
	case 500000:
		return unix.B500000, nil
	case 576000:
		return unix.B576000, nil
	case 921600:
		return unix.B921600, nil
	case 1000000:
		return unix.B1000000, nil
	case 1152000:
		return unix.B1152000, nil
	case 1500000:
		return unix.B1500000, nil
	case 2000000:
		return unix.B2000000, nil
	case 2500000:
		return unix.B2500000, nil
	case 3000000:
		return unix.B3000000, nil
	case 3500000:
		return unix.B3500000, nil
	case 4000000:
		return unix.B4000000, nil
	default:
		return 0, ErrInvalidBaudRate
	}
}

// mapOpenError translates errno values from open(2) and TIOCEXCL
func mapOpenError(err error) error {
	switch {
	case errors.Is(err, unix.ENOENT), errors.Is(err, unix.ENODEV), errors.Is(err, unix.ENXIO):
		return ErrDeviceNotFound
	case errors.Is(err, unix.EACCES), errors.Is(err, unix.EPERM):
		return ErrPermissionDenied
	case errors.Is(err, unix.EBUSY):
		return ErrDeviceInUse
	default:
		return err
	}
}

// OpenPort opens a serial port with the given device path and configuration
func OpenPort(device string, config PortConfig) (Port, error) {
	if _, err := getBaudRate(config.BaudRate); err != nil {
		return nil, err
	}

	flags := unix.O_RDWR | unix.O_NOCTTY | unix.O_CLOEXEC | unix.O_NONBLOCK
	if config.WriteMode == WriteModeSynced {
		flags |= unix.O_SYNC
	}

	fd, err := unix.Open(device, flags, 0)
	if err != nil {
		return nil, mapOpenError(err)
	}

	// Refuse further opens of the same tty from other processes
	if err := unix.IoctlSetInt(fd, unix.TIOCEXCL, 0); err != nil {
		unix.Close(fd)
		return nil, mapOpenError(err)
	}

	if err := configurePort(fd, config); err != nil {
		unix.Close(fd)
		return nil, err
	}

	var wake [2]int
	if err := unix.Pipe2(wake[:], unix.O_NONBLOCK|unix.O_CLOEXEC); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("failed to create wake pipe: %w", err)
	}

	return &port{
		fd:     fd,
		wakeR:  wake[0],
		wakeW:  wake[1],
		config: config,
	}, nil
}

// configurePort puts the tty in raw 8N1 mode
func configurePort(fd int, config PortConfig) error {
	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("failed to get termios: %w", err)
	}

	termios.Cflag = unix.CS8 | unix.CREAD | unix.CLOCAL
	termios.Iflag = 0
	termios.Oflag = 0
	termios.Lflag = 0

	// Timeouts come from poll; a ready fd returns whatever is buffered
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0

	baudRate, err := getBaudRate(config.BaudRate)
	if err != nil {
		return err
	}
	termios.Cflag = (termios.Cflag &^ unix.CBAUD) | baudRate
	termios.Ispeed = baudRate
	termios.Ospeed = baudRate

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, termios); err != nil {
		return fmt.Errorf("failed to set termios: %w", err)
	}
	return nil
}

// Close wakes any Read or Write waiting on the port, then releases the fd
func (p *port) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return ErrPortClosed
	}

	unix.Write(p.wakeW, []byte{0})

	p.mu.Lock()
	defer p.mu.Unlock()

	err := unix.Close(p.fd)
	unix.Close(p.wakeR)
	unix.Close(p.wakeW)
	return err
}

// IsOpen reports whether Close has not been called yet
func (p *port) IsOpen() bool {
	return !p.closed.Load()
}

// Read reads data from the serial port, returning (0, nil) when ReadTimeout
// passes without data and ErrPortClosed once Close has been called
func (p *port) Read(buf []byte) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed.Load() {
		return 0, ErrPortClosed
	}

	timeout := -1
	if p.config.ReadTimeout > 0 {
		timeout = int(p.config.ReadTimeout / time.Millisecond)
	}

	for {
		ready, err := p.wait(unix.POLLIN, timeout)
		if err != nil {
			return 0, err
		}
		if !ready {
			return 0, nil
		}

		n, err := unix.Read(p.fd, buf)
		switch {
		case err == unix.EINTR:
			continue
		case err == unix.EAGAIN:
			return 0, nil
		case err != nil:
			return 0, err
		case n == 0:
			// Readable with nothing to read means the line hung up
			return 0, io.EOF
		}
		return n, nil
	}
}

// Write writes all of data to the serial port
func (p *port) Write(data []byte) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed.Load() {
		return 0, ErrPortClosed
	}

	written := 0
	for written < len(data) {
		n, err := unix.Write(p.fd, data[written:])
		switch {
		case err == unix.EINTR:
			continue
		case err == unix.EAGAIN:
			if _, err := p.wait(unix.POLLOUT, -1); err != nil {
				return written, err
			}
			continue
		case err != nil:
			return written, err
		}
		written += n
	}
	return written, nil
}

// wait polls the fd for events until it is ready, the timeout in milliseconds
// passes or Close writes to the wake pipe. Callers hold p.mu shared.
func (p *port) wait(events int16, timeout int) (bool, error) {
	fds := []unix.PollFd{
		{Fd: int32(p.fd), Events: events},
		{Fd: int32(p.wakeR), Events: unix.POLLIN},
	}

	for {
		n, err := unix.Poll(fds, timeout)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return false, err
		}
		if p.closed.Load() || fds[1].Revents != 0 {
			return false, ErrPortClosed
		}
		if fds[0].Revents&unix.POLLNVAL != 0 {
			return false, ErrPortClosed
		}
		return n > 0, nil
	}
}

// Drain waits until all output written to the port has been transmitted
func (p *port) Drain() error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed.Load() {
		return ErrPortClosed
	}

	return unix.IoctlSetInt(p.fd, unix.TCSBRK, 1)
}

// FlushInput discards any unread input data
func (p *port) FlushInput() error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed.Load() {
		return ErrPortClosed
	}

	return unix.IoctlSetInt(p.fd, unix.TCFLSH, unix.TCIFLUSH)
}

// FlushOutput discards any unwritten output data
func (p *port) FlushOutput() error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed.Load() {
		return ErrPortClosed
	}

	return unix.IoctlSetInt(p.fd, unix.TCFLSH, unix.TCOFLUSH)
}
