package emit

import (
	"fmt"
	"io"

	"github.com/imonaar/uniqr/internal/domain"
)

// Emitter writes each flushed run to the output as a single record.
type Emitter struct {
	w        io.Writer
	counting bool
	width    int
	written  uint64
}

type Option func(*Emitter)

// WithCount enables the count prefix.
func WithCount(enabled bool) Option {
	return func(e *Emitter) { e.counting = enabled }
}

// WithCountWidth sets the minimum width of the count field. Non-positive
// values keep the default.
func WithCountWidth(width int) Option {
	return func(e *Emitter) {
		if width > 0 {
			e.width = width
		}
	}
}

func New(w io.Writer, opts ...Option) *Emitter {
	e := &Emitter{
		w:     w,
		width: domain.DefaultCountWidth,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Flush writes run as one record. An empty run writes nothing.
func (e *Emitter) Flush(run domain.Run) error {
	if run.Empty() {
		return nil
	}

	rec := FormatRecord(run, e.counting, e.width)
	if _, err := e.w.Write(rec); err != nil {
		return &domain.OpError{
			Op:   "emit.flush",
			Kind: domain.KindWrite,
			Err:  err,
		}
	}
	e.written++
	return nil
}

// Written returns the number of records emitted so far.
func (e *Emitter) Written() uint64 { return e.written }

// FormatRecord renders run without touching the representative's bytes.
// With counting on, the count is right-aligned in a field of at least
// width characters and separated from the line by one space; wider counts
// are never truncated.
func FormatRecord(run domain.Run, counting bool, width int) []byte {
	if run.Empty() {
		return nil
	}
	if !counting {
		out := make([]byte, len(run.Representative))
		copy(out, run.Representative)
		return out
	}

	out := make([]byte, 0, width+1+len(run.Representative))
	out = fmt.Appendf(out, "%*d ", width, run.Count)
	return append(out, run.Representative...)
}
