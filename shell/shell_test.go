package shell

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/m2vprep/morph"
	"github.com/revelaction/m2vprep/token"
)

type fakeSuggester struct {
	words []string
	err   error
}

func (f fakeSuggester) Words(locale, prefix string, limit int) ([]string, error) {
	var out []string
	for _, w := range f.words {
		if strings.HasPrefix(w, prefix) {
			out = append(out, w)
		}
	}
	return out, f.err
}

func newHandler(t *testing.T, format string) (*Handler, *bytes.Buffer) {
	t.Helper()

	f, err := token.NewFactory(token.Config{
		MinNGram: 3,
		MaxNGram: 4,
		Analyzer: morph.AnalyzerFunc(func(word string) (morph.Analysis, error) {
			if word == "cats" {
				return morph.Analysis{Lemma: "cat", Pos: "NOUN", Morphemes: []string{"cat", "s"}}, nil
			}
			return morph.Analysis{Lemma: word}, nil
		}),
	})
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	return NewHandler(f, format, &out), &out
}

func TestExecuteWords(t *testing.T) {
	h, out := newHandler(t, "flat")

	if err := h.Execute("cats ox\n"); err != nil {
		t.Fatal(err)
	}

	want := "w:cats~l:cat~t:POS=NOUN~m:cat~m:s~n:cat~n:ats~n:cats w:ox~l:ox~t:POS=\n"
	if got := out.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExecuteConllLine(t *testing.T) {
	h, out := newHandler(t, "flat")

	if err := h.Execute("1\tcats\tcat\tNOUN\tNNS\tNumber=Plur\t2\tnsubj\t_\t_"); err != nil {
		t.Fatal(err)
	}

	want := "w:cats~l:cat~t:Number=Plur~t:POS=NOUN~m:cat~m:s~n:cat~n:ats~n:cats\n"
	if got := out.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExecuteMalformedConllLine(t *testing.T) {
	h, out := newHandler(t, "flat")

	err := h.Execute("1\tcats\tcat")
	if !token.IsMalformed(err) {
		t.Errorf("expected malformed input error, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestExecuteBlank(t *testing.T) {
	h, out := newHandler(t, "flat")

	if err := h.Execute("   "); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestExecuteJSON(t *testing.T) {
	h, out := newHandler(t, "json")

	if err := h.Execute("cats"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), `"lemma":"cat"`) {
		t.Errorf("got %q", out.String())
	}
}

func TestExecuteUnknownFormat(t *testing.T) {
	h, _ := newHandler(t, "xml")

	if err := h.Execute("cats"); err == nil {
		t.Error("expected unsupported format error")
	}
}

func TestCompleter(t *testing.T) {
	h, _ := newHandler(t, "flat")
	h.Locale = "en"

	doc := func(text string) prompt.Document {
		buf := prompt.NewBuffer()
		buf.InsertText(text, false, true)
		return *buf.Document()
	}

	if s := h.completer(doc("wa")); len(s) != 0 {
		t.Errorf("no suggester: got %v", s)
	}

	h.Suggester = fakeSuggester{words: []string{"walk", "walked", "cats"}}

	s := h.completer(doc("the wa"))
	if len(s) != 2 || s[0].Text != "walk" || s[1].Text != "walked" {
		t.Errorf("got %v", s)
	}

	if s := h.completer(doc("w")); len(s) != 0 {
		t.Errorf("below threshold: got %v", s)
	}

	h.Suggester = fakeSuggester{words: []string{"walk"}, err: errors.New("boom")}
	if s := h.completer(doc("wa")); len(s) != 0 {
		t.Errorf("suggester error: got %v", s)
	}
}
