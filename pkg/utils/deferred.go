// Package utils holds small helpers shared by the command line entry point.
package utils

import (
	"bytes"
	"io"
	"sync"
)

// DeferredWriter buffers log output while a full screen program owns the
// terminal. Flush replays the buffer once the terminal is released.
type DeferredWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (d *DeferredWriter) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.Write(p)
}

// Len reports the number of buffered bytes.
func (d *DeferredWriter) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.Len()
}

// Flush writes the buffered output to w line by line and resets the buffer.
// Each zerolog event is one line, so w may be a zerolog.ConsoleWriter.
func (d *DeferredWriter) Flush(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for d.buf.Len() > 0 {
		line, err := d.buf.ReadBytes('\n')
		if len(line) > 0 {
			if _, werr := w.Write(line); werr != nil {
				d.buf.Reset()
				return werr
			}
		}
		if err == io.EOF {
			break
		}
	}
	d.buf.Reset()
	return nil
}
