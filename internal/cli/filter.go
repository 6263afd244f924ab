package cli

import (
	"context"
	"io"

	"github.com/imonaar/uniqr/internal/domain"
	"github.com/imonaar/uniqr/internal/infra/config"
	"github.com/imonaar/uniqr/internal/infra/filesink"
	"github.com/imonaar/uniqr/internal/infra/linesource"
	"github.com/imonaar/uniqr/internal/infra/logger"
	"github.com/imonaar/uniqr/internal/ports"
	"github.com/imonaar/uniqr/internal/usecase"
	"github.com/imonaar/uniqr/internal/usecase/emit"
)

type filterOptions struct {
	in  string
	out string

	count    bool
	countSet bool

	configPath string
	debug      bool
	logFile    string
}

// resolveConfig layers flags over the config file over defaults.
func resolveConfig(loader ports.ConfigLoader, opts filterOptions) (domain.Config, error) {
	cfg, err := loader.LoadConfig(opts.configPath)
	if err != nil {
		return cfg, err
	}

	if opts.countSet {
		cfg.Count = opts.count
	}
	if opts.debug {
		cfg.Log.Debug = true
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	return cfg, nil
}

func runFilter(ctx context.Context, opts filterOptions, stdin io.Reader, stdout io.Writer) (err error) {
	cfg, err := resolveConfig(config.NewLoader(), opts)
	if err != nil {
		return err
	}

	cleanup, err := logger.Setup(logger.Config{
		File:  cfg.Log.File,
		Debug: cfg.Log.Debug,
	})
	if err != nil {
		return &domain.OpError{
			Op:   "logger.setup",
			Kind: domain.KindCreate,
			Path: cfg.Log.File,
			Err:  err,
		}
	}
	defer func() { _ = cleanup() }()

	log := logger.L().With("in", opts.in, "out", opts.out)

	src, err := linesource.Open(opts.in, linesource.WithStdin(stdin))
	if err != nil {
		log.Error("filter.open_failed", "err", err)
		return err
	}
	defer func() { _ = src.Close() }()

	sink, err := filesink.Open(opts.out, filesink.WithStdout(stdout))
	if err != nil {
		log.Error("filter.create_failed", "err", err)
		return err
	}
	defer func() {
		if cerr := sink.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	e := emit.New(sink, emit.WithCount(cfg.Count), emit.WithCountWidth(cfg.CountWidth))
	uc := usecase.NewFilterRuns(src, e, usecase.WithLogger(log))

	stats, err := uc.Execute(ctx)
	if err != nil {
		return err
	}

	log.Info("filter.completed", "lines", stats.Lines, "runs", stats.Runs, "count", cfg.Count)
	return nil
}
