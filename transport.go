package soundcard

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Transport is a line-oriented serial connection. A background goroutine reads
// the device, frames the byte stream into lines and queues them; the caller
// writes command lines and periodically drains the queue.
//
// All methods are safe for concurrent use. Only Open reports errors: reads that
// fail end the session silently (IsOpen turns false) and writes while closed
// are no-ops.
type Transport struct {
	config Config

	lifecycle sync.Mutex // serializes Open and Close

	mu      sync.Mutex // guards current and queue
	current *session
	queue   *LineQueue
}

// session is one open connection and its reader goroutine
type session struct {
	port       string
	baud       int
	terminator string
	dev        Device
	queue      *LineQueue
	log        *logrus.Entry

	writeMu sync.Mutex
	faulted atomic.Bool
	stop    chan struct{}
	done    chan struct{}
}

// NewTransport creates a closed Transport
func NewTransport(opts ...Option) (*Transport, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	return &Transport{
		config: config,
		queue:  NewLineQueue(),
	}, nil
}

// Open closes any current session and opens port at baud. An empty terminator
// selects DefaultTerminator. Errors match ErrOpenFailed.
func (t *Transport) Open(port string, baud int, terminator string) error {
	t.lifecycle.Lock()
	defer t.lifecycle.Unlock()

	t.closeLocked()

	// Lines from the previous session are dropped whether or not this open succeeds
	queue := NewLineQueue()
	t.mu.Lock()
	t.queue = queue
	t.mu.Unlock()

	if terminator == "" {
		terminator = DefaultTerminator
	}

	log := t.config.Logger.WithFields(logrus.Fields{
		"port": port,
		"baud": baud,
	})

	if baud <= 0 {
		return fmt.Errorf("%w: %s: %w", ErrOpenFailed, port, ErrInvalidBaudRate)
	}

	dev, err := t.config.opener()(port, baud, t.config.ReadTimeout)
	if err != nil {
		log.WithError(err).Warn("Open failed")
		return fmt.Errorf("%w: %s: %w", ErrOpenFailed, port, err)
	}

	if f, ok := dev.(inputFlusher); ok {
		if err := f.FlushInput(); err != nil {
			log.WithError(err).Debug("Could not flush stale input")
		}
	}

	s := &session{
		port:       port,
		baud:       baud,
		terminator: terminator,
		dev:        dev,
		queue:      queue,
		log:        log.WithField("session", uuid.NewString()),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}

	t.mu.Lock()
	t.current = s
	t.mu.Unlock()

	go t.readLoop(s)

	s.log.Info("Connected")
	return nil
}

// IsOpen reports whether a session exists and its device is still usable
func (t *Transport) IsOpen() bool {
	s := t.session()
	return s != nil && s.isOpen()
}

// Close stops the reader, waits for it up to the close timeout and releases the
// device. It is a no-op when already closed.
func (t *Transport) Close() {
	t.lifecycle.Lock()
	defer t.lifecycle.Unlock()

	t.closeLocked()
}

func (t *Transport) closeLocked() {
	t.mu.Lock()
	s := t.current
	t.current = nil
	t.mu.Unlock()

	if s == nil {
		return
	}

	close(s.stop)

	timer := time.NewTimer(t.config.CloseTimeout)
	defer timer.Stop()

	select {
	case <-s.done:
	case <-timer.C:
		// Closing the handle below makes a blocked read fail; if the driver
		// ignores that too, the goroutine leaks into its own queue.
		s.log.WithField("timeout", t.config.CloseTimeout).Warn("Reader did not stop in time")
	}

	if err := s.dev.Close(); err != nil && !errors.Is(err, ErrPortClosed) {
		s.log.WithError(err).Debug("Close failed")
	}

	s.log.Info("Disconnected")
}

// WriteLine sends text followed by the session terminator. Characters the wire
// charset cannot carry are dropped. Without an open session it does nothing.
func (t *Transport) WriteLine(text string) {
	s := t.session()
	if s == nil || !s.isOpen() {
		t.config.Logger.WithField("line", text).Debug("Write skipped, not connected")
		return
	}

	data := t.config.Charset.Encode(text + s.terminator)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if _, err := s.dev.Write(data); err != nil {
		entry := s.log.WithError(err).WithField("line", text)
		if errors.Is(err, ErrPortClosed) {
			entry.Debug("Write raced with close")
			return
		}
		entry.Warn("Write failed")
	}
}

// DrainLines returns every line received so far, oldest first, each with its
// original terminator. It never blocks.
func (t *Transport) DrainLines() []string {
	t.mu.Lock()
	q := t.queue
	t.mu.Unlock()

	return q.Drain()
}

// Port returns the device name of the open session, or "" when closed
func (t *Transport) Port() string {
	if s := t.session(); s != nil {
		return s.port
	}
	return ""
}

// Baud returns the baud rate of the open session, or 0 when closed
func (t *Transport) Baud() int {
	if s := t.session(); s != nil {
		return s.baud
	}
	return 0
}

// Charset returns the wire charset
func (t *Transport) Charset() Charset {
	return t.config.Charset
}

func (t *Transport) session() *session {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

func (t *Transport) readLoop(s *session) {
	defer close(s.done)
	defer func() {
		if r := recover(); r != nil {
			s.fault(fmt.Errorf("reader panic: %v", r))
		}
	}()

	buf := make([]byte, t.config.ReadSize)
	var framer lineFramer

	for {
		select {
		case <-s.stop:
			return
		default:
		}

		n, err := s.dev.Read(buf)
		if n > 0 {
			framer.feed(buf[:n], func(line []byte) {
				s.queue.Push(t.config.Charset.Decode(line))
			})
		}

		if err != nil {
			select {
			case <-s.stop:
				return
			default:
			}
			s.fault(err)
			return
		}
	}
}

func (s *session) isOpen() bool {
	return !s.faulted.Load() && s.dev.IsOpen()
}

// fault ends the session after an unrecoverable read error
func (s *session) fault(err error) {
	s.faulted.Store(true)
	s.log.WithError(err).Warn("Read failed, session closed")

	if cerr := s.dev.Close(); cerr != nil && !errors.Is(cerr, ErrPortClosed) {
		s.log.WithError(cerr).Debug("Close after read failure failed")
	}
}
