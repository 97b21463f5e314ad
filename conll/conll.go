// Package conll segments CoNLL-U streams into sentences.
//
// Sentences are blocks of lines separated by blank lines. Inside a block only
// token lines, whose first tab separated column is a number, are kept:
// comments, multi-word token ranges (3-4) and empty nodes (5.1) are dropped.
// A block without token lines is not a sentence.
package conll

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// MaxLineSize bounds a single input line.
const MaxLineSize = 1 << 20

// Sentence holds the token lines of one sentence.
type Sentence struct {
	Lines []string

	// StartLine is the 1-based line number of the first line of the block.
	StartLine int

	// Skipped counts the non token lines dropped from the block.
	Skipped int
}

// Reader reads sentences from a CoNLL-U stream.
type Reader struct {
	sc   *bufio.Scanner
	line int
}

// NewReader returns a Reader reading from r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return &Reader{sc: sc}
}

// Next returns the next sentence. It returns io.EOF when the stream has no
// more sentences.
func (r *Reader) Next() (Sentence, error) {
	var s Sentence
	inBlock := false

	for r.sc.Scan() {
		r.line++
		line := r.sc.Text()

		if strings.TrimSpace(line) == "" {
			if inBlock && len(s.Lines) > 0 {
				return s, nil
			}
			// a block with only non token lines is dropped
			s = Sentence{}
			inBlock = false
			continue
		}

		if !inBlock {
			inBlock = true
			s.StartLine = r.line
		}

		if !IsTokenLine(line) {
			s.Skipped++
			continue
		}
		s.Lines = append(s.Lines, line)
	}

	if err := r.sc.Err(); err != nil {
		return Sentence{}, err
	}

	if len(s.Lines) > 0 {
		return s, nil
	}
	return Sentence{}, io.EOF
}

// ReadAll reads every sentence of r.
func ReadAll(r io.Reader) ([]Sentence, error) {
	cr := NewReader(r)

	var sentences []Sentence
	for {
		s, err := cr.Next()
		if err == io.EOF {
			return sentences, nil
		}
		if err != nil {
			return nil, err
		}
		sentences = append(sentences, s)
	}
}

// IsTokenLine reports whether line has tab separated columns and its first
// column is a non empty run of digits.
func IsTokenLine(line string) bool {
	id, _, found := strings.Cut(line, "\t")
	if !found || id == "" {
		return false
	}

	for _, r := range id {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Filter returns the token lines of lines.
func Filter(lines []string) []string {
	var out []string
	for _, line := range lines {
		if IsTokenLine(line) {
			out = append(out, line)
		}
	}
	return out
}
