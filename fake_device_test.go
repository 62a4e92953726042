package soundcard

import (
	"bytes"
	"sync"
	"testing"
	"time"
)

// fakeDevice is an in-memory Device. Chunks sent on reads are returned by Read
// one at a time; Read returns (0, nil) after a short timeout otherwise.
type fakeDevice struct {
	reads   chan []byte
	failure chan error
	panics  chan any

	mu      sync.Mutex
	written bytes.Buffer
	closed  bool
	flushed bool
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		reads:   make(chan []byte, 128),
		failure: make(chan error, 1),
		panics:  make(chan any, 1),
	}
}

func (d *fakeDevice) Read(p []byte) (int, error) {
	if !d.IsOpen() {
		return 0, ErrPortClosed
	}

	select {
	case err := <-d.failure:
		return 0, err
	case v := <-d.panics:
		panic(v)
	case chunk := <-d.reads:
		return copy(p, chunk), nil
	case <-time.After(5 * time.Millisecond):
		return 0, nil
	}
}

func (d *fakeDevice) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return 0, ErrPortClosed
	}
	return d.written.Write(p)
}

func (d *fakeDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrPortClosed
	}
	d.closed = true
	return nil
}

func (d *fakeDevice) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.closed
}

func (d *fakeDevice) FlushInput() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.flushed = true
	return nil
}

func (d *fakeDevice) Written() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.written.String()
}

func (d *fakeDevice) IsFlushed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.flushed
}

func (d *fakeDevice) send(chunks ...string) {
	for _, c := range chunks {
		d.reads <- []byte(c)
	}
}

// stuckDevice ignores the read timeout and only returns once closed
type stuckDevice struct {
	once   sync.Once
	closed chan struct{}
}

func newStuckDevice() *stuckDevice {
	return &stuckDevice{closed: make(chan struct{})}
}

func (d *stuckDevice) Read(p []byte) (int, error) {
	<-d.closed
	return 0, ErrPortClosed
}

func (d *stuckDevice) Write(p []byte) (int, error) { return len(p), nil }

func (d *stuckDevice) Close() error {
	d.once.Do(func() { close(d.closed) })
	return nil
}

func (d *stuckDevice) IsOpen() bool {
	select {
	case <-d.closed:
		return false
	default:
		return true
	}
}

// devicesOpener hands out devs in order, recording the names it was asked for
type devicesOpener struct {
	mu    sync.Mutex
	devs  []Device
	names []string
}

func (o *devicesOpener) open(name string, baud int, readTimeout time.Duration) (Device, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.names = append(o.names, name)
	if len(o.devs) == 0 {
		return nil, ErrDeviceNotFound
	}
	d := o.devs[0]
	o.devs = o.devs[1:]
	return d, nil
}

func newTestTransport(t *testing.T, devs ...Device) *Transport {
	t.Helper()

	opener := &devicesOpener{devs: devs}
	tr, err := NewTransport(WithOpener(opener.open), WithCloseTimeout(200*time.Millisecond))
	if err != nil {
		t.Fatalf("NewTransport failed: %v", err)
	}
	t.Cleanup(tr.Close)
	return tr
}

// collectLines drains until n lines arrived or the deadline passes
func collectLines(t *testing.T, tr *Transport, n int) []string {
	t.Helper()

	var lines []string
	deadline := time.Now().Add(2 * time.Second)
	for len(lines) < n && time.Now().Before(deadline) {
		lines = append(lines, tr.DrainLines()...)
		time.Sleep(2 * time.Millisecond)
	}
	if len(lines) < n {
		t.Fatalf("expected %d lines, got %d: %q", n, len(lines), lines)
	}
	return lines
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(2 * time.Millisecond)
	}
}
