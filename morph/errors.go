package morph

import (
	"errors"
	"fmt"
)

// ErrNoEntries is returned by Load when the lexicon has nothing for a locale.
var ErrNoEntries = errors.New("no lexicon entries")

// LoadError reports that the collaborators for a locale could not be loaded.
type LoadError struct {
	Locale string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load morphology for locale %q: %v", e.Locale, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// QueryError reports a collaborator failure while analyzing a word.
type QueryError struct {
	Word string
	Err  error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("analyze %q: %v", e.Word, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// AsQueryError wraps err as a QueryError for word unless it already is one.
func AsQueryError(word string, err error) error {
	if err == nil {
		return nil
	}
	var qe *QueryError
	if errors.As(err, &qe) {
		return err
	}
	return &QueryError{Word: word, Err: err}
}
