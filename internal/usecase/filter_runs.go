package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/imonaar/uniqr/internal/domain"
	"github.com/imonaar/uniqr/internal/ports"
	"github.com/imonaar/uniqr/internal/usecase/emit"
)

// Stats summarizes one pass over the input.
type Stats struct {
	Lines uint64
	Runs  uint64
}

// FilterRuns collapses each run of adjacent lines with equal keys into a
// single record.
type FilterRuns struct {
	source  ports.LineSource
	emitter *emit.Emitter
	log     *slog.Logger
}

type FilterOption func(*FilterRuns)

func WithLogger(l *slog.Logger) FilterOption {
	return func(uc *FilterRuns) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewFilterRuns(src ports.LineSource, e *emit.Emitter, opts ...FilterOption) *FilterRuns {
	uc := &FilterRuns{
		source:  src,
		emitter: e,
		log:     slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute reads the source to exhaustion. A run is flushed as soon as a
// line with a different key arrives, and once more at end of input. Any
// read or write error aborts the pass.
func (uc *FilterRuns) Execute(ctx context.Context) (Stats, error) {
	var (
		stats Stats
		run   domain.Run
	)

	uc.log.Debug("filter.start")

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		line, err := uc.source.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			uc.log.Error("filter.failed", "lines", stats.Lines, "err", err)
			return stats, err
		}
		stats.Lines++

		if !run.Empty() && !run.Same(line) {
			if err := uc.flush(&run, &stats); err != nil {
				return stats, err
			}
		}
		run.Absorb(line)
	}

	if err := uc.flush(&run, &stats); err != nil {
		return stats, err
	}

	uc.log.Debug("filter.done", "lines", stats.Lines, "runs", stats.Runs)
	return stats, nil
}

func (uc *FilterRuns) flush(run *domain.Run, stats *Stats) error {
	if run.Empty() {
		return nil
	}
	if err := uc.emitter.Flush(*run); err != nil {
		uc.log.Error("filter.failed", "lines", stats.Lines, "err", err)
		return err
	}
	stats.Runs++
	run.Reset()
	return nil
}
