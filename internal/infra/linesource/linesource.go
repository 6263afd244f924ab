package linesource

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/imonaar/uniqr/internal/domain"
	"github.com/imonaar/uniqr/internal/ports"
)

// Stdin is the input name that selects standard input.
const Stdin = "-"

// Reader yields lines from a buffered byte stream, terminators included.
type Reader struct {
	name   string
	br     *bufio.Reader
	closer io.Closer
	done   bool
}

var _ ports.LineSource = (*Reader)(nil)

type Option func(*openOptions)

type openOptions struct {
	stdin io.Reader
}

// WithStdin replaces os.Stdin as the stream selected by "-".
func WithStdin(r io.Reader) Option {
	return func(o *openOptions) {
		if r != nil {
			o.stdin = r
		}
	}
}

// Open selects standard input for "-" and opens any other name as a file.
func Open(name string, opts ...Option) (*Reader, error) {
	o := openOptions{stdin: os.Stdin}
	for _, opt := range opts {
		opt(&o)
	}

	if name == Stdin {
		return New(name, o.stdin), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "linesource.open",
			Kind: domain.KindOpen,
			Path: name,
			Err:  unwrapPath(err),
		}
	}

	r := New(name, f)
	r.closer = f
	return r, nil
}

// New wraps r without taking ownership of it; Close is a no-op.
func New(name string, r io.Reader) *Reader {
	return &Reader{
		name: name,
		br:   bufio.NewReader(r),
	}
}

func (r *Reader) Name() string { return r.name }

// Next returns the next line, or io.EOF when the stream is exhausted. The
// last line is returned even when it lacks a terminator.
func (r *Reader) Next() (domain.Line, error) {
	if r.done {
		return nil, io.EOF
	}

	b, err := r.br.ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, &domain.OpError{
			Op:   "linesource.read",
			Kind: domain.KindRead,
			Path: r.name,
			Err:  unwrapPath(err),
		}
	}
	if err != nil {
		r.done = true
		if len(b) == 0 {
			return nil, io.EOF
		}
	}
	return domain.Line(b), nil
}

func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	c := r.closer
	r.closer = nil
	return c.Close()
}

// unwrapPath drops the *fs.PathError layer so messages carry the file name
// only once.
func unwrapPath(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
