package preprocess

import (
	"errors"
	"strings"
	"testing"

	"github.com/revelaction/m2vprep/morph"
	"github.com/revelaction/m2vprep/token"
)

func newFactory(t *testing.T, c token.Config) *token.Factory {
	t.Helper()
	if c.MinNGram == 0 {
		c.MinNGram, c.MaxNGram = 3, 4
	}
	f, err := token.NewFactory(c)
	if err != nil {
		t.Fatalf("NewFactory returned error: %v", err)
	}
	return f
}

func TestParseEmpty(t *testing.T) {
	got, err := Parse(newFactory(t, token.Config{}), nil)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got != "" {
		t.Fatalf("Parse(nil) = %q, want empty", got)
	}
}

func TestParseSentence(t *testing.T) {
	lines := []string{
		"# text = cats sleep",
		"1\tcats\tcat\tNOUN\t_\tNumber=Plur\t2\tnsubj\t_\t_\n",
		"1-2\tx\t_\t_\t_\t_\t_\t_\t_\t_\n",
		"2\tsleep\tsleep\tVERB\t_\t_\t0\troot\t_\t_\n",
	}

	got, err := Parse(newFactory(t, token.Config{}), lines)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	want := "w:cats~l:cat~t:Number=Plur~t:POS=NOUN~n:cat~n:ats~n:cats " +
		"w:sleep~l:sleep~t:POS=VERB~n:sle~n:lee~n:eep~n:slee~n:leep"
	if got != want {
		t.Fatalf("Parse = %q, want %q", got, want)
	}

	if n := len(strings.Fields(got)); n != 2 {
		t.Errorf("expected 2 tokens, got %d", n)
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse(newFactory(t, token.Config{}), []string{"1\tcats"})
	if !token.IsMalformed(err) {
		t.Fatalf("expected malformed input error, got %v", err)
	}
}

func TestParseInvalidUTF8(t *testing.T) {
	got, err := Parse(newFactory(t, token.Config{}), []string{"1\tab\xffc\tab\xffc\tX\t_\t_\t0\troot\t_\t_"})
	if !token.IsMalformed(err) {
		t.Fatalf("expected malformed input error, got %v (output %q)", err, got)
	}
}

func TestParseEvalDefaults(t *testing.T) {
	w1, w2, sim, err := SplitEvalLine("dog, cat, 0.7")
	if err != nil {
		t.Fatalf("SplitEvalLine returned error: %v", err)
	}

	got, err := ParseEval(newFactory(t, token.Config{MinNGram: 3, MaxNGram: 6}), w1, w2, sim)
	if err != nil {
		t.Fatalf("ParseEval returned error: %v", err)
	}

	want := "w:dog~l:dog~t:POS=~n:dog w:cat~l:cat~t:POS=~n:cat 0.7"
	if got != want {
		t.Fatalf("ParseEval = %q, want %q", got, want)
	}
}

func TestParseEvalTagger(t *testing.T) {
	tagger := morph.TaggerFunc(func(word string) (string, error) {
		return "NOUN", nil
	})
	f := newFactory(t, token.Config{Tagger: tagger, MinNGram: 3, MaxNGram: 3})

	got, err := ParseEval(f, "dog", "cat", "7.25")
	if err != nil {
		t.Fatalf("ParseEval returned error: %v", err)
	}

	want := "w:dog~l:dog~t:POS=NOUN~n:dog w:cat~l:cat~t:POS=NOUN~n:cat 7.25"
	if got != want {
		t.Fatalf("ParseEval = %q, want %q", got, want)
	}
}

func TestParseEvalQueryError(t *testing.T) {
	boom := errors.New("tagger down")
	tagger := morph.TaggerFunc(func(word string) (string, error) {
		return "", boom
	})
	f := newFactory(t, token.Config{Tagger: tagger})

	_, err := ParseEval(f, "dog", "cat", "1")
	var qe *morph.QueryError
	if !errors.As(err, &qe) {
		t.Fatalf("expected *morph.QueryError, got %v", err)
	}
}

func TestSplitEvalLine(t *testing.T) {
	tests := []struct {
		line      string
		w1, w2, s string
		ok        bool
	}{
		{"dog cat 0.7", "dog", "cat", "0.7", true},
		{"dog,cat,0.7", "dog", "cat", "0.7", true},
		{"  dog ,\tcat , 10\n", "dog", "cat", "10", true},
		{"dog cat", "", "", "", false},
		{"dog cat 0.7 extra", "", "", "", false},
		{",,,", "", "", "", false},
	}

	for _, tt := range tests {
		w1, w2, s, err := SplitEvalLine(tt.line)
		if !tt.ok {
			var me *token.MalformedInputError
			if !errors.As(err, &me) {
				t.Errorf("SplitEvalLine(%q): expected *MalformedInputError, got %v", tt.line, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("SplitEvalLine(%q) returned error: %v", tt.line, err)
			continue
		}
		if w1 != tt.w1 || w2 != tt.w2 || s != tt.s {
			t.Errorf("SplitEvalLine(%q) = %q %q %q", tt.line, w1, w2, s)
		}
	}
}
