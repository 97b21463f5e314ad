package main

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/revelaction/m2vprep/file"
	"github.com/revelaction/m2vprep/preprocess"
	"github.com/revelaction/m2vprep/token"
)

type driverFunc func(ctx context.Context, r io.Reader, w io.Writer, f *token.Factory, opts preprocess.Options) (preprocess.Summary, error)

// preprocessCommand runs driver from opts.Input to opts.Output. The output
// is locked for the whole run.
func preprocessCommand(ctx context.Context, name string, driver driverFunc, opts PreprocessOptions, env *appEnv, ui UI) (err error) {
	logger := env.logger.With("component", name, "run_id", uuid.NewString())

	f, _, err := newFactory(env.pool, opts.FactoryOptions)
	if err != nil {
		return err
	}

	unlock, err := file.Lock(opts.Output)
	if err != nil {
		return err
	}
	defer func() {
		if uerr := unlock(); uerr != nil && err == nil {
			err = uerr
		}
	}()

	in, err := openInput(opts.Input, ui)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := createOutput(opts.Output, ui)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	logger.Info("processing the file", "input", opts.Input, "locale", opts.Locale)
	logger.Info("saving the results", "output", opts.Output)

	progress, stop := newProgress(ui.Err, opts.Progress)
	sum, err := driver(ctx, in, out, f, preprocess.Options{
		Workers:  opts.Workers,
		Progress: progress,
		Logger:   logger,
	})
	stop()

	if err != nil {
		logger.Error("run failed", "written", sum.Written, "units", sum.Units, "err", err)
		return err
	}

	logger.Info("done", "written", sum.Written, "units", sum.Units)
	return nil
}

// openInput is file.Open reading the UI input for file.Stdio.
func openInput(path string, ui UI) (io.ReadCloser, error) {
	if path == file.Stdio && ui.In != nil {
		return io.NopCloser(ui.In), nil
	}
	return file.Open(path)
}

// createOutput is file.Create writing to the UI output for file.Stdio.
func createOutput(path string, ui UI) (io.WriteCloser, error) {
	if path == file.Stdio && ui.Out != nil {
		return file.NopWriteCloser(ui.Out), nil
	}
	return file.Create(path)
}
