package preprocess

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/revelaction/m2vprep/conll"
	"github.com/revelaction/m2vprep/token"
)

// Options control a driver run.
type Options struct {
	// Workers is the number of units processed concurrently. Values below 2
	// process sequentially.
	Workers int

	// Progress, if set, is called with the number of written units and the
	// total after every written unit, and once before the first one.
	Progress func(done, total int)

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Summary describes a finished run.
type Summary struct {
	// Units is the number of sentences or eval records read.
	Units int

	// Written is the number of lines written.
	Written int
}

// Conllu reads CoNLL-U sentences from r and writes one flat format line per
// sentence to w, in input order. Sentences without token lines produce no
// line. The first failing sentence stops the run; lines written before it
// are kept.
func Conllu(ctx context.Context, r io.Reader, w io.Writer, f *token.Factory, opts Options) (Summary, error) {
	logger := opts.logger()

	sentences, err := conll.ReadAll(r)
	if err != nil {
		return Summary{}, fmt.Errorf("read sentences: %w", err)
	}

	logger.Info("processing sentences", "sentences", len(sentences), "workers", opts.workers())

	fn := func(i int) (string, error) {
		s := sentences[i]
		line, err := Parse(f, s.Lines)
		if err != nil {
			return "", fmt.Errorf("sentence %d (line %d): %w", i+1, s.StartLine, err)
		}
		return line, nil
	}

	return run(ctx, len(sentences), w, fn, opts)
}

// evalRecord is one non blank line of an eval file.
type evalRecord struct {
	line   string
	number int
}

// Eval reads word pair judgments from r, one per line, and writes one flat
// format line per judgment to w, in input order. Blank lines are skipped.
// The first malformed or failing line stops the run; lines written before it
// are kept.
func Eval(ctx context.Context, r io.Reader, w io.Writer, f *token.Factory, opts Options) (Summary, error) {
	logger := opts.logger()

	records, err := readEvalRecords(r)
	if err != nil {
		return Summary{}, fmt.Errorf("read eval lines: %w", err)
	}

	logger.Info("processing word pairs", "pairs", len(records), "workers", opts.workers())

	fn := func(i int) (string, error) {
		rec := records[i]
		w1, w2, sim, err := SplitEvalLine(rec.line)
		if err == nil {
			var line string
			line, err = ParseEval(f, w1, w2, sim)
			if err == nil {
				return line, nil
			}
		}
		return "", fmt.Errorf("line %d: %w", rec.number, err)
	}

	return run(ctx, len(records), w, fn, opts)
}

func readEvalRecords(r io.Reader) ([]evalRecord, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), conll.MaxLineSize)

	var records []evalRecord
	number := 0
	for sc.Scan() {
		number++
		records = append(records, evalRecord{line: sc.Text(), number: number})
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	// blank lines are only tolerated at the end of the stream
	for len(records) > 0 && strings.TrimSpace(records[len(records)-1].line) == "" {
		records = records[:len(records)-1]
	}
	return records, nil
}

// run writes the lines of n units to w, flushing what was written even when
// a unit fails.
func run(ctx context.Context, n int, w io.Writer, fn func(int) (string, error), opts Options) (Summary, error) {
	bw := bufio.NewWriter(w)
	sum := Summary{Units: n}

	if opts.Progress != nil {
		opts.Progress(0, n)
	}

	emit := func(line string) error {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
		sum.Written++
		if opts.Progress != nil {
			opts.Progress(sum.Written, n)
		}
		return nil
	}

	err := process(ctx, n, opts.workers(), fn, emit)

	if flushErr := bw.Flush(); flushErr != nil && err == nil {
		err = fmt.Errorf("write output: %w", flushErr)
	}

	return sum, err
}

func (o Options) workers() int {
	if o.Workers < 1 {
		return 1
	}
	return o.Workers
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}
