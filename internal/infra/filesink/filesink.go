package filesink

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/imonaar/uniqr/internal/domain"
	"github.com/imonaar/uniqr/internal/ports"
)

// Sink is a buffered record destination.
type Sink struct {
	path   string
	bw     *bufio.Writer
	closer io.Closer
}

var _ ports.RecordSink = (*Sink)(nil)

type Option func(*openOptions)

type openOptions struct {
	stdout io.Writer
}

// WithStdout replaces os.Stdout as the destination used without a path.
func WithStdout(w io.Writer) Option {
	return func(o *openOptions) {
		if w != nil {
			o.stdout = w
		}
	}
}

// Open writes to standard output when path is empty. Otherwise the file is
// created, or truncated if it exists.
func Open(path string, opts ...Option) (*Sink, error) {
	o := openOptions{stdout: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	if path == "" {
		return New(o.stdout), nil
	}

	f, err := os.Create(path)
	if err != nil {
		var pe *fs.PathError
		if errors.As(err, &pe) {
			err = pe.Err
		}
		return nil, &domain.OpError{
			Op:   "filesink.create",
			Kind: domain.KindCreate,
			Path: path,
			Err:  err,
		}
	}

	s := New(f)
	s.path = path
	s.closer = f
	return s, nil
}

// New buffers writes to w without taking ownership of it.
func New(w io.Writer) *Sink {
	return &Sink{bw: bufio.NewWriter(w)}
}

func (s *Sink) Write(p []byte) (int, error) {
	return s.bw.Write(p)
}

// Close flushes pending output and closes the file, if one was created.
// The first error wins.
func (s *Sink) Close() error {
	var err error
	if ferr := s.bw.Flush(); ferr != nil {
		err = &domain.OpError{
			Op:   "filesink.flush",
			Kind: domain.KindWrite,
			Path: s.path,
			Err:  ferr,
		}
	}
	if s.closer != nil {
		c := s.closer
		s.closer = nil
		if cerr := c.Close(); cerr != nil && err == nil {
			err = &domain.OpError{
				Op:   "filesink.close",
				Kind: domain.KindWrite,
				Path: s.path,
				Err:  cerr,
			}
		}
	}
	return err
}
