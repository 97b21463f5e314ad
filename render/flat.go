package render

import (
	"strings"

	"github.com/revelaction/m2vprep/token"
)

// Group prefixes of the flat format.
const (
	wordPrefix     = "w:"
	lemmaPrefix    = "l:"
	tagPrefix      = "t:"
	morphemePrefix = "m:"
	ngramPrefix    = "n:"

	posTag = "POS="
)

// Flat renders t as one delimiter separated string. Groups come in fixed
// order: word, lemma, tags (with POS=<pos> last), morphemes, n-grams:
//
//	w:cats~l:cat~t:Number=Plur~t:POS=NOUN~n:cat~n:ats~n:cats
//
// Empty groups are skipped. The result never holds two consecutive
// delimiters and never ends with one; a delimiter run coming from a field
// value is collapsed too, so such values do not survive rendering.
func Flat(t token.Token, delim rune) string {
	groups := [][]string{
		{wordPrefix + t.Word()},
		{lemmaPrefix + t.Lemma()},
		prefixed(tagPrefix, append(t.Tags(), posTag+t.Pos())),
		prefixed(morphemePrefix, t.Morphemes()),
		prefixed(ngramPrefix, t.NGrams()),
	}

	var str strings.Builder
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}

		for _, item := range group {
			if str.Len() > 0 {
				str.WriteRune(delim)
			}
			str.WriteString(item)
		}
	}

	return collapse(str.String(), delim)
}

// Sentence renders tokens in flat format joined by single spaces.
func Sentence(tokens []token.Token, delim rune) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = Flat(t, delim)
	}
	return strings.Join(parts, " ")
}

// Pair renders a word pair judgment: both tokens in flat format followed by
// the similarity, verbatim.
func Pair(a, b token.Token, sim string, delim rune) string {
	return Flat(a, delim) + " " + Flat(b, delim) + " " + sim
}

func prefixed(prefix string, items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = prefix + item
	}
	return out
}

// collapse replaces every run of delim with a single delim and strips a
// trailing one.
func collapse(s string, delim rune) string {
	var str strings.Builder
	str.Grow(len(s))

	last := rune(-1)
	for _, r := range s {
		if r == delim && last == delim {
			continue
		}
		str.WriteRune(r)
		last = r
	}

	return strings.TrimSuffix(str.String(), string(delim))
}
