// Package morph defines the linguistic collaborators used to fill a token:
// a morphology Analyzer (lemma, POS, tags, morphemes of a word) and a
// Tagger (POS of a bare word). Both are plain query capabilities and must be
// safe for concurrent use.
package morph

// Analysis is the result of analyzing one word.
type Analysis struct {
	Lemma     string   `json:"lemma"`
	Pos       string   `json:"pos"`
	Tags      []string `json:"tags"`
	Morphemes []string `json:"morphemes"`
}

// Analyzer returns the morphological analysis of a word.
type Analyzer interface {
	Analyze(word string) (Analysis, error)
}

// Tagger infers the POS tag of a word that has no corpus annotation.
type Tagger interface {
	Tag(word string) (string, error)
}

// AnalyzerFunc adapts a function to the Analyzer interface.
type AnalyzerFunc func(word string) (Analysis, error)

func (f AnalyzerFunc) Analyze(word string) (Analysis, error) {
	return f(word)
}

// TaggerFunc adapts a function to the Tagger interface.
type TaggerFunc func(word string) (string, error)

func (f TaggerFunc) Tag(word string) (string, error) {
	return f(word)
}
