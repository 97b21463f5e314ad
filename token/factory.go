package token

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/revelaction/m2vprep/morph"
)

const (
	DefaultMinNGram = 3
	DefaultMaxNGram = 6
)

const (
	// conllColumns is the number of columns read from a CoNLL-U line: ID,
	// FORM, LEMMA, UPOS, XPOS and FEATS.
	conllColumns = 6

	conllEmpty = "_"
	featsSep   = "|"
	columnSep  = "\t"
)

// Config holds the fixed parameters of a Factory.
type Config struct {
	// SpecialChar is the delimiter of the flat format. Zero means SpecialChar.
	SpecialChar rune

	// Analyzer fills lemma, POS, tags and morphemes. Optional.
	Analyzer morph.Analyzer

	// Tagger overrides the POS of bare words. Optional, only used by FromWord.
	Tagger morph.Tagger

	MinNGram int
	MaxNGram int
}

// Factory builds Tokens from CoNLL-U lines or bare words.
type Factory struct {
	specialChar rune
	analyzer    morph.Analyzer
	tagger      morph.Tagger
	minNGram    int
	maxNGram    int
}

// NewFactory validates c and returns a Factory.
func NewFactory(c Config) (*Factory, error) {
	if c.MinNGram < 1 {
		return nil, fmt.Errorf("min n-gram length must be positive, got %d", c.MinNGram)
	}
	if c.MaxNGram < c.MinNGram {
		return nil, fmt.Errorf("max n-gram length %d is lower than min n-gram length %d", c.MaxNGram, c.MinNGram)
	}

	sc := c.SpecialChar
	if sc == 0 {
		sc = SpecialChar
	}

	return &Factory{
		specialChar: sc,
		analyzer:    c.Analyzer,
		tagger:      c.Tagger,
		minNGram:    c.MinNGram,
		maxNGram:    c.MaxNGram,
	}, nil
}

// SpecialChar returns the delimiter tokens of this factory are rendered with.
func (f *Factory) SpecialChar() rune {
	return f.specialChar
}

// FromConllLine builds a Token from a tab separated CoNLL-U token line. Word,
// lemma, POS and tags (the FEATS column) come from the line; the analyzer, if
// any, only contributes morphemes.
func (f *Factory) FromConllLine(line string) (Token, error) {
	if !utf8.ValidString(line) {
		return Token{}, &MalformedInputError{Input: line, Reason: "invalid UTF-8"}
	}

	cols := strings.Split(strings.TrimRight(line, "\r\n"), columnSep)
	if len(cols) < conllColumns {
		return Token{}, &MalformedInputError{
			Input:  line,
			Reason: fmt.Sprintf("expected at least %d tab separated columns, got %d", conllColumns, len(cols)),
		}
	}

	word := cols[1]
	if word == "" {
		return Token{}, &MalformedInputError{Input: line, Reason: "empty word column"}
	}

	t := Token{
		word:  word,
		lemma: cols[2],
		pos:   cols[3],
		tags:  splitFeats(cols[5]),
	}

	if f.analyzer != nil {
		an, err := f.analyzer.Analyze(word)
		if err != nil {
			return Token{}, morph.AsQueryError(word, err)
		}
		t.morphemes = slices.Clone(an.Morphemes)
	}

	t.ngrams = NGrams(word, f.minNGram, f.maxNGram)
	return t, nil
}

// FromWord builds a Token from a bare word. Without analyzer the lemma is the
// word itself and POS, tags and morphemes are empty. A tagger, if any, has
// the last word on the POS.
func (f *Factory) FromWord(word string) (Token, error) {
	if word == "" {
		return Token{}, &MalformedInputError{Input: word, Reason: "empty word"}
	}
	if !utf8.ValidString(word) {
		return Token{}, &MalformedInputError{Input: word, Reason: "invalid UTF-8"}
	}

	t := Token{word: word, lemma: word}

	if f.analyzer != nil {
		an, err := f.analyzer.Analyze(word)
		if err != nil {
			return Token{}, morph.AsQueryError(word, err)
		}
		t.lemma = an.Lemma
		t.pos = an.Pos
		t.tags = slices.Clone(an.Tags)
		t.morphemes = slices.Clone(an.Morphemes)
	}

	if f.tagger != nil {
		pos, err := f.tagger.Tag(word)
		if err != nil {
			return Token{}, morph.AsQueryError(word, err)
		}
		t.pos = pos
	}

	t.ngrams = NGrams(word, f.minNGram, f.maxNGram)
	return t, nil
}

// IsMalformed reports whether err is, or wraps, a *MalformedInputError.
func IsMalformed(err error) bool {
	var me *MalformedInputError
	return errors.As(err, &me)
}

func splitFeats(feats string) []string {
	if feats == "" || feats == conllEmpty {
		return nil
	}
	return strings.Split(feats, featsSep)
}
