package soundcard

import "bytes"

// lineFramer accumulates raw bytes and cuts them into '\n'-terminated lines.
// It is owned by a single reader goroutine.
type lineFramer struct {
	buf []byte
}

// feed appends chunk and calls emit once per completed line, terminator
// included. emit must not retain the slice.
func (f *lineFramer) feed(chunk []byte, emit func(line []byte)) {
	f.buf = append(f.buf, chunk...)

	start := 0
	for {
		i := bytes.IndexByte(f.buf[start:], '\n')
		if i < 0 {
			break
		}
		end := start + i + 1
		emit(f.buf[start:end])
		start = end
	}

	if start > 0 {
		n := copy(f.buf, f.buf[start:])
		f.buf = f.buf[:n]
	}
}

// pending returns the number of buffered bytes not yet part of a line
func (f *lineFramer) pending() int {
	return len(f.buf)
}
