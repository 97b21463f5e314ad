// Package preprocess turns CoNLL-U sentences and word pair judgments into
// lines of the flat token format.
package preprocess

import (
	"fmt"
	"strings"

	"github.com/revelaction/m2vprep/conll"
	"github.com/revelaction/m2vprep/render"
	"github.com/revelaction/m2vprep/token"
)

// evalFields is the number of fields of an eval line: word1 word2 similarity.
const evalFields = 3

// Parse renders the token lines of one sentence as one line: a token per
// qualifying line, space separated. Lines that are not token lines are
// ignored; no lines give the empty string.
func Parse(f *token.Factory, lines []string) (string, error) {
	lines = conll.Filter(lines)

	tokens := make([]token.Token, 0, len(lines))
	for _, line := range lines {
		t, err := f.FromConllLine(line)
		if err != nil {
			return "", err
		}
		tokens = append(tokens, t)
	}

	return render.Sentence(tokens, f.SpecialChar()), nil
}

// ParseEval renders a word pair judgment as one line: the tokens of w1 and
// w2 followed by sim, verbatim.
func ParseEval(f *token.Factory, w1, w2, sim string) (string, error) {
	t1, err := f.FromWord(w1)
	if err != nil {
		return "", err
	}

	t2, err := f.FromWord(w2)
	if err != nil {
		return "", err
	}

	return render.Pair(t1, t2, sim, f.SpecialChar()), nil
}

// SplitEvalLine splits an eval line into its three fields. Commas count as
// whitespace.
func SplitEvalLine(line string) (w1, w2, sim string, err error) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(fields) != evalFields {
		return "", "", "", &token.MalformedInputError{
			Input:  line,
			Reason: fmt.Sprintf("expected %d fields, got %d", evalFields, len(fields)),
		}
	}

	return fields[0], fields[1], fields[2], nil
}
