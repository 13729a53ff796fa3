package observability

import (
	"bytes"
	"io"
	"sync"
)

// HeldWriter buffers everything written to it until Release is called and
// passes writes straight through afterwards. It keeps log lines out of a
// full-screen terminal UI while the UI owns the screen.
type HeldWriter struct {
	mu   sync.Mutex
	out  io.Writer
	buf  bytes.Buffer
	held bool
}

// NewHeldWriter returns a HeldWriter in the holding state.
func NewHeldWriter(out io.Writer) *HeldWriter {
	return &HeldWriter{out: out, held: true}
}

// Write implements io.Writer.
func (w *HeldWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.held {
		return w.buf.Write(p)
	}
	return w.out.Write(p)
}

// Release flushes the buffered output and stops holding. Calling it again
// is a no-op.
func (w *HeldWriter) Release() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.held {
		return nil
	}
	w.held = false
	_, err := w.buf.WriteTo(w.out)
	return err
}
