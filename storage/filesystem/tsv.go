package filesystem

import (
	"fmt"
	"strings"

	"github.com/revelaction/m2vprep/storage"
)

// A lexicon file has one entry per line, tab separated:
//
//	word	lemma	pos	tags	morphemes
//
// Tags and morphemes are separated by '|'. '_' is an empty field. Trailing
// columns may be omitted. Lines starting with '#' are comments.
const (
	Ext = ".tsv"

	listSep  = "|"
	emptyCol = "_"
	comment  = "#"
)

// ParseEntry parses one line of a lexicon file.
func ParseEntry(line string) (storage.Entry, error) {
	cols := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
	if len(cols) < 2 || len(cols) > 5 {
		return storage.Entry{}, fmt.Errorf("expected 2 to 5 tab separated columns, got %d", len(cols))
	}

	word := cols[0]
	if word == "" || word == emptyCol {
		return storage.Entry{}, fmt.Errorf("empty word")
	}

	e := storage.Entry{Word: word}
	e.Lemma = field(cols, 1)
	if e.Lemma == "" {
		e.Lemma = word
	}
	e.Pos = field(cols, 2)
	e.Tags = list(field(cols, 3))
	e.Morphemes = list(field(cols, 4))

	return e, nil
}

// FormatEntry returns the lexicon file line of e, without line ending.
func FormatEntry(e storage.Entry) string {
	return strings.Join([]string{
		e.Word,
		orEmpty(e.Lemma),
		orEmpty(e.Pos),
		orEmpty(strings.Join(e.Tags, listSep)),
		orEmpty(strings.Join(e.Morphemes, listSep)),
	}, "\t")
}

func isSkipped(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, comment)
}

func field(cols []string, i int) string {
	if i >= len(cols) || cols[i] == emptyCol {
		return ""
	}
	return cols[i]
}

func list(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, listSep)
}

func orEmpty(s string) string {
	if s == "" {
		return emptyCol
	}
	return s
}
