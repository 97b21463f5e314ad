package render

import (
	"strings"
	"testing"

	"github.com/revelaction/m2vprep/morph"
	"github.com/revelaction/m2vprep/token"
)

// wordToken builds the token of word with the given analysis.
func wordToken(t *testing.T, word string, an morph.Analysis, minN, maxN int) token.Token {
	t.Helper()
	f, err := token.NewFactory(token.Config{
		Analyzer: morph.AnalyzerFunc(func(string) (morph.Analysis, error) { return an, nil }),
		MinNGram: minN,
		MaxNGram: maxN,
	})
	if err != nil {
		t.Fatalf("NewFactory returned error: %v", err)
	}
	tk, err := f.FromWord(word)
	if err != nil {
		t.Fatalf("FromWord returned error: %v", err)
	}
	return tk
}

func conllToken(t *testing.T, line string, minN, maxN int) token.Token {
	t.Helper()
	f, err := token.NewFactory(token.Config{MinNGram: minN, MaxNGram: maxN})
	if err != nil {
		t.Fatalf("NewFactory returned error: %v", err)
	}
	tk, err := f.FromConllLine(line)
	if err != nil {
		t.Fatalf("FromConllLine returned error: %v", err)
	}
	return tk
}

func TestFlatConllRoundTrip(t *testing.T) {
	tk := conllToken(t, "1\tcats\tcat\tNOUN\t_\tNumber=Plur\t0\troot\t_\t_\n", 3, 4)

	got := Flat(tk, '~')
	want := "w:cats~l:cat~t:Number=Plur~t:POS=NOUN~n:cat~n:ats~n:cats"
	if got != want {
		t.Fatalf("Flat = %q, want %q", got, want)
	}
}

func TestFlatAllGroups(t *testing.T) {
	an := morph.Analysis{Lemma: "run", Pos: "VERB", Tags: []string{"VerbForm=Ger", "Aspect=Prog"}, Morphemes: []string{"runn", "ing"}}
	tk := wordToken(t, "running", an, 6, 7)

	got := Flat(tk, '~')
	want := "w:running~l:run~t:VerbForm=Ger~t:Aspect=Prog~t:POS=VERB~m:runn~m:ing~n:runnin~n:unning~n:running"
	if got != want {
		t.Fatalf("Flat = %q, want %q", got, want)
	}
}

func TestFlatEmptyNGrams(t *testing.T) {
	tk := wordToken(t, "ox", morph.Analysis{Lemma: "ox", Morphemes: []string{"ox"}}, 3, 6)

	got := Flat(tk, '~')
	want := "w:ox~l:ox~t:POS=~m:ox"
	if got != want {
		t.Fatalf("Flat = %q, want %q", got, want)
	}
	if strings.Contains(got, "n:") {
		t.Errorf("empty n-gram group must not be rendered: %q", got)
	}
}

func TestFlatDegenerateDelimiter(t *testing.T) {
	an := morph.Analysis{Lemma: "a~", Pos: "~", Morphemes: []string{"~", "b~"}}
	tk := wordToken(t, "ab", an, 3, 3)

	got := Flat(tk, '~')
	want := "w:ab~l:a~t:POS=~m:~m:b"
	if got != want {
		t.Fatalf("Flat = %q, want %q", got, want)
	}
}

func TestFlatInvariants(t *testing.T) {
	analyses := []morph.Analysis{
		{},
		{Lemma: "x"},
		{Lemma: "x", Pos: "X", Tags: []string{"A=B"}},
		{Lemma: "x", Morphemes: []string{"m1", "m2", "m3"}},
		{Tags: []string{"", ""}, Morphemes: []string{""}},
	}
	words := []string{"a", "ab", "abc", "longerword", "ñandú"}

	for _, an := range analyses {
		for _, w := range words {
			for _, r := range [][2]int{{1, 2}, {3, 6}, {8, 9}} {
				got := Flat(wordToken(t, w, an, r[0], r[1]), '~')

				if strings.Contains(got, "~~") {
					t.Errorf("Flat(%q, %+v) has consecutive delimiters: %q", w, an, got)
				}
				if strings.HasSuffix(got, "~") {
					t.Errorf("Flat(%q, %+v) ends with the delimiter: %q", w, an, got)
				}
				checkGroupOrder(t, got)
			}
		}
	}
}

// checkGroupOrder fails when the items of flat are not in w, l, t, m, n order.
func checkGroupOrder(t *testing.T, flat string) {
	t.Helper()
	order := map[string]int{"w:": 0, "l:": 1, "t:": 2, "m:": 3, "n:": 4}

	last := -1
	items := strings.Split(flat, "~")
	for _, item := range items {
		rank, ok := order[item[:2]]
		if !ok {
			t.Fatalf("unknown group in %q: %q", flat, item)
		}
		if rank < last {
			t.Fatalf("group out of order in %q: %q", flat, item)
		}
		last = rank
	}

	if !strings.HasPrefix(flat, "w:") {
		t.Fatalf("flat does not start with the word group: %q", flat)
	}
}

func TestFlatOtherDelimiter(t *testing.T) {
	tk := conllToken(t, "1\tcats\tcat\tNOUN\t_\tNumber=Plur\t0\troot\t_\t_", 4, 4)

	got := Flat(tk, '#')
	want := "w:cats#l:cat#t:Number=Plur#t:POS=NOUN#n:cats"
	if got != want {
		t.Fatalf("Flat = %q, want %q", got, want)
	}
}

func TestSentenceAndPair(t *testing.T) {
	if got := Sentence(nil, '~'); got != "" {
		t.Fatalf("Sentence(nil) = %q, want empty", got)
	}

	dog := wordToken(t, "dog", morph.Analysis{Lemma: "dog"}, 3, 3)
	cat := wordToken(t, "cat", morph.Analysis{Lemma: "cat"}, 3, 3)

	got := Sentence([]token.Token{dog, cat}, '~')
	want := "w:dog~l:dog~t:POS=~n:dog w:cat~l:cat~t:POS=~n:cat"
	if got != want {
		t.Fatalf("Sentence = %q, want %q", got, want)
	}

	got = Pair(dog, cat, "0.7", '~')
	want = "w:dog~l:dog~t:POS=~n:dog w:cat~l:cat~t:POS=~n:cat 0.7"
	if got != want {
		t.Fatalf("Pair = %q, want %q", got, want)
	}
}

func TestCollapse(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"~", ""},
		{"a~~b", "a~b"},
		{"a~~~b~~", "a~b"},
		{"~~a", "~a"},
	}

	for _, tt := range tests {
		if got := collapse(tt.in, '~'); got != tt.want {
			t.Errorf("collapse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
