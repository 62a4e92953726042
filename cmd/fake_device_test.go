package cmd

import (
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/allbin/soundcard"
)

// replyDevice answers every written line with the lines reply returns. With
// dropOnWrite set the first write unplugs it.
type replyDevice struct {
	reply       func(line string) []string
	dropOnWrite bool

	mu      sync.Mutex
	pending []byte
	written strings.Builder
	closed  bool
}

func (d *replyDevice) Read(p []byte) (int, error) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return 0, io.EOF
	}
	if len(d.pending) > 0 {
		n := copy(p, d.pending)
		d.pending = d.pending[n:]
		d.mu.Unlock()
		return n, nil
	}
	d.mu.Unlock()

	time.Sleep(time.Millisecond)
	return 0, nil
}

func (d *replyDevice) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.written.Write(p)
	if d.dropOnWrite {
		d.closed = true
	}
	if d.reply != nil {
		for _, r := range d.reply(strings.TrimRight(string(p), "\r\n")) {
			d.pending = append(d.pending, r...)
		}
	}
	return len(p), nil
}

func (d *replyDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}

func (d *replyDevice) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.closed
}

func (d *replyDevice) Written() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.written.String()
}

// push queues input as if the board had sent it unprompted
func (d *replyDevice) push(s string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = append(d.pending, s...)
}

func newFakeTransport(t *testing.T, dev soundcard.Device) *soundcard.Transport {
	t.Helper()

	opener := func(name string, baud int, readTimeout time.Duration) (soundcard.Device, error) {
		return dev, nil
	}
	tr, err := soundcard.NewTransport(soundcard.WithOpener(opener))
	if err != nil {
		t.Fatalf("NewTransport failed: %v", err)
	}
	t.Cleanup(tr.Close)
	return tr
}

func openFakeTransport(t *testing.T, dev soundcard.Device) *soundcard.Transport {
	t.Helper()

	tr := newFakeTransport(t, dev)
	if err := tr.Open("/dev/ttyACM0", 9600, "\r\n"); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return tr
}
