package storage

import (
	"github.com/revelaction/m2vprep/morph"
)

// Entry is the analysis of one word form of a lexicon.
type Entry struct {
	Word string `json:"word"`
	morph.Analysis
}

// LexiconReader defines read operations for lexicon storage
type LexiconReader interface {
	// Lookup and Count, keyed by canonical locale
	morph.Lexicon

	// Locales returns the locales with a lexicon, sorted alphabetically.
	Locales() ([]string, error)

	// Entries calls cb for every entry of locale, in storage order.
	Entries(locale string, cb func(Entry) error) error

	// Words returns up to limit word forms of locale starting with prefix,
	// sorted alphabetically.
	Words(locale, prefix string, limit int) ([]string, error)
}

// LexiconWriter defines write operations for lexicon storage
type LexiconWriter interface {
	// Write adds entries to the lexicon of locale, replacing entries with the
	// same word.
	Write(locale string, entries []Entry) error
}

// LexiconRepository combines read and write operations
type LexiconRepository interface {
	LexiconReader
	LexiconWriter
}
