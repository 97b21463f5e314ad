package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/m2vprep/token"
)

// record is the JSON shape of a token.
type record struct {
	Word      string   `json:"word"`
	Lemma     string   `json:"lemma"`
	Pos       string   `json:"pos"`
	Tags      []string `json:"tags"`
	Morphemes []string `json:"morphemes"`
	NGrams    []string `json:"ngrams"`
}

// JSONRenderer writes tokens as a JSON array to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes tokens as a JSON array, one array per call.
func (r *JSONRenderer) Render(tokens []token.Token) error {
	records := make([]record, 0, len(tokens))
	for _, t := range tokens {
		records = append(records, record{
			Word:      t.Word(),
			Lemma:     t.Lemma(),
			Pos:       t.Pos(),
			Tags:      nonNil(t.Tags()),
			Morphemes: nonNil(t.Morphemes()),
			NGrams:    nonNil(t.NGrams()),
		})
	}

	return json.NewEncoder(r.W).Encode(records)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
