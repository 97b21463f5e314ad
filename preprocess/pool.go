package preprocess

import (
	"context"
	"sync"
)

type result struct {
	index int
	line  string
	err   error
}

// process computes the output line of every unit in [0, n) with fn and
// hands the lines to emit in unit order.
//
// With more than one worker the units run concurrently. When a unit fails no
// new units are started and emit still receives every line before the
// failed unit, so the output is the same as a sequential run. The error of
// the lowest failing unit is returned.
func process(ctx context.Context, n, workers int, fn func(int) (string, error), emit func(string) error) error {
	if workers <= 1 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			line, err := fn(i)
			if err != nil {
				return err
			}
			if err := emit(line); err != nil {
				return err
			}
		}
		return nil
	}

	feedCtx, stopFeed := context.WithCancel(ctx)
	defer stopFeed()

	jobs := make(chan int)
	results := make(chan result)

	go func() {
		defer close(jobs)
		for i := 0; i < n; i++ {
			select {
			case jobs <- i:
			case <-feedCtx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				line, err := fn(i)
				results <- result{index: i, line: line, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	pending := map[int]string{}
	next := 0
	errIndex := n
	var unitErr, emitErr error

	for res := range results {
		if res.err != nil {
			if res.index < errIndex {
				errIndex = res.index
				unitErr = res.err
			}
			stopFeed()
			continue
		}

		pending[res.index] = res.line
		for emitErr == nil && next < errIndex {
			line, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			if err := emit(line); err != nil {
				emitErr = err
				stopFeed()
				break
			}
			next++
		}
	}

	if emitErr != nil {
		return emitErr
	}
	if unitErr != nil {
		return unitErr
	}
	if next < n {
		return ctx.Err()
	}
	return nil
}
