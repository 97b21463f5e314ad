package morph

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lexicon is a store of analyses keyed by locale and word form.
type Lexicon interface {
	// Lookup returns the analysis of word. The bool is false when the word
	// is unknown.
	Lookup(locale, word string) (Analysis, bool, error)

	// Count returns the number of entries stored for locale.
	Count(locale string) (int, error)
}

// LexiconAnalyzer answers Analyze from a Lexicon. Unknown words get the word
// itself as lemma and no POS, tags or morphemes.
type LexiconAnalyzer struct {
	lex    Lexicon
	locale string
	tag    language.Tag
}

var _ Analyzer = (*LexiconAnalyzer)(nil)

// LexiconTagger answers Tag with the POS stored in a Lexicon.
type LexiconTagger struct {
	analyzer *LexiconAnalyzer
}

var _ Tagger = (*LexiconTagger)(nil)

// Load returns the analyzer and tagger of locale backed by lex. It fails with
// a *LoadError when the locale is invalid or the lexicon has no entries for it.
func Load(lex Lexicon, locale string) (*LexiconAnalyzer, *LexiconTagger, error) {
	code, err := CanonicalLocale(locale)
	if err != nil {
		return nil, nil, &LoadError{Locale: locale, Err: err}
	}

	n, err := lex.Count(code)
	if err != nil {
		return nil, nil, &LoadError{Locale: locale, Err: err}
	}
	if n == 0 {
		return nil, nil, &LoadError{Locale: locale, Err: ErrNoEntries}
	}

	a := &LexiconAnalyzer{
		lex:    lex,
		locale: code,
		tag:    language.Make(code),
	}
	return a, &LexiconTagger{analyzer: a}, nil
}

// Locale returns the canonical locale the analyzer answers for.
func (a *LexiconAnalyzer) Locale() string {
	return a.locale
}

func (a *LexiconAnalyzer) Analyze(word string) (Analysis, error) {
	an, ok, err := a.lookup(word)
	if err != nil {
		return Analysis{}, &QueryError{Word: word, Err: err}
	}
	if !ok {
		return Analysis{Lemma: word}, nil
	}
	return an, nil
}

// lookup tries the exact form first, then its lower case form. Casers keep
// state, so one is made per call.
func (a *LexiconAnalyzer) lookup(word string) (Analysis, bool, error) {
	an, ok, err := a.lex.Lookup(a.locale, word)
	if err != nil || ok {
		return an, ok, err
	}

	lower := cases.Lower(a.tag).String(word)
	if lower == word {
		return Analysis{}, false, nil
	}
	return a.lex.Lookup(a.locale, lower)
}

func (t *LexiconTagger) Tag(word string) (string, error) {
	an, _, err := t.analyzer.lookup(word)
	if err != nil {
		return "", &QueryError{Word: word, Err: err}
	}
	return an.Pos, nil
}
