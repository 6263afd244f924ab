package ports

import "github.com/imonaar/uniqr/internal/domain"

// LineSource yields input lines one at a time (e.g., stdin or a file).
// Next returns io.EOF once the input is exhausted. Sources are not
// restartable.
type LineSource interface {
	Next() (domain.Line, error)
	Close() error
}
