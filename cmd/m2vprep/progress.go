package main

import (
	"io"
	"os"

	"github.com/gosuri/uiprogress"

	"github.com/revelaction/m2vprep/file"
)

// newProgress returns a progress callback drawing a bar on w, and the
// function stopping it. The bar is only drawn when enabled and w is a
// terminal.
func newProgress(w io.Writer, enabled bool) (func(done, total int), func()) {
	if !enabled || !isTerminal(w) {
		return nil, func() {}
	}

	p := uiprogress.New()
	p.SetOut(w)

	var bar *uiprogress.Bar
	progress := func(done, total int) {
		if bar == nil {
			bar = p.AddBar(total)
			bar.AppendCompleted()
			bar.PrependElapsed()
			p.Start()
		}
		_ = bar.Set(done)
	}

	stop := func() {
		if bar != nil {
			p.Stop()
		}
	}
	return progress, stop
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && file.IsTerminal(f)
}
