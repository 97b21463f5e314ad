package token

import "slices"

// SpecialChar is the default delimiter of the flat token format.
const SpecialChar = '~'

// Token represents one analyzed occurrence of a word, with its lemma, POS,
// morphological tags, morphemes and character n-grams.
//
// A Token is immutable once built. Factory is the only producer.
type Token struct {
	// The unmodified word
	word string

	// The lemma of the word
	lemma string

	pos string

	// Morphological tags in source order. The POS is not stored here, it is
	// appended as POS=<pos> when rendering.
	tags []string

	morphemes []string

	// Character n-grams of word
	ngrams []string
}

func (t Token) Word() string {
	return t.word
}

func (t Token) Lemma() string {
	return t.lemma
}

func (t Token) Pos() string {
	return t.pos
}

// Tags returns a copy of the morphological tags.
func (t Token) Tags() []string {
	return slices.Clone(t.tags)
}

// Morphemes returns a copy of the morphemes.
func (t Token) Morphemes() []string {
	return slices.Clone(t.morphemes)
}

// NGrams returns a copy of the character n-grams.
func (t Token) NGrams() []string {
	return slices.Clone(t.ngrams)
}
