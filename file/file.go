package file

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gofrs/flock"
	"github.com/mattn/go-isatty"
)

// Stdio is the path meaning stdin when reading and stdout when writing.
const Stdio = "-"

// LockSuffix is appended to an output path to name its lock file.
const LockSuffix = ".lock"

var ErrLocked = errors.New("output is locked by another process")

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// NopWriteCloser returns w with a Close method doing nothing.
func NopWriteCloser(w io.Writer) io.WriteCloser {
	return nopWriteCloser{w}
}

// Open opens path for reading. Stdio returns os.Stdin, which is not closed.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdio {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// Create creates or truncates path for writing. Stdio returns os.Stdout,
// which is not closed.
func Create(path string) (io.WriteCloser, error) {
	if path == Stdio {
		return NopWriteCloser(os.Stdout), nil
	}
	return os.Create(path)
}

// Lock takes an exclusive lock on path+LockSuffix, failing with ErrLocked if
// another process holds it. Stdio needs no lock and returns a no-op unlock.
func Lock(path string) (unlock func() error, err error) {
	if path == Stdio {
		return func() error { return nil }, nil
	}

	lockPath := path + LockSuffix
	fl := flock.New(lockPath)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", lockPath, err)
	}
	if !locked {
		return nil, fmt.Errorf("%s: %w", path, ErrLocked)
	}

	return fl.Unlock, nil
}

// IsTerminal reports whether f is a terminal, Cygwin ones included.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
