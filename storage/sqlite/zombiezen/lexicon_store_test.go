package zombiezen

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/revelaction/m2vprep/morph"
	"github.com/revelaction/m2vprep/storage"
)

func newStore(t *testing.T) *LexiconStore {
	t.Helper()

	pool, err := NewPool(filepath.Join(t.TempDir(), "lexicon.db"))
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	if err := CreateLexiconTables(pool); err != nil {
		t.Fatalf("CreateLexiconTables: %v", err)
	}
	return NewLexiconStore(pool)
}

var enEntries = []storage.Entry{
	{Word: "cats", Analysis: morph.Analysis{Lemma: "cat", Pos: "NOUN", Tags: []string{"Number=Plur"}, Morphemes: []string{"cat", "s"}}},
	{Word: "walked", Analysis: morph.Analysis{Lemma: "walk", Pos: "VERB", Tags: []string{"Tense=Past", "VerbForm=Fin"}, Morphemes: []string{"walk", "ed"}}},
	{Word: "walking", Analysis: morph.Analysis{Lemma: "walk", Pos: "VERB"}},
}

func TestLexiconStoreLookup(t *testing.T) {
	s := newStore(t)
	if err := s.Write("en", enEntries); err != nil {
		t.Fatalf("Write: %v", err)
	}

	an, ok, err := s.Lookup("en", "walked")
	if err != nil || !ok {
		t.Fatalf("Lookup: ok=%v err=%v", ok, err)
	}
	if an.Lemma != "walk" || an.Pos != "VERB" {
		t.Errorf("unexpected analysis %+v", an)
	}
	if !slices.Equal(an.Tags, []string{"Tense=Past", "VerbForm=Fin"}) {
		t.Errorf("tags: got %v", an.Tags)
	}

	an, ok, _ = s.Lookup("en", "walking")
	if !ok || an.Tags != nil || an.Morphemes != nil {
		t.Errorf("empty lists should be nil: %+v", an)
	}

	if _, ok, err := s.Lookup("fr", "cats"); ok || err != nil {
		t.Errorf("other locale: ok=%v err=%v", ok, err)
	}
}

func TestLexiconStoreCountAndLocales(t *testing.T) {
	s := newStore(t)

	n, err := s.Count("en")
	if err != nil || n != 0 {
		t.Fatalf("empty Count: got %d, %v", n, err)
	}

	if err := s.Write("en", enEntries); err != nil {
		t.Fatal(err)
	}
	if err := s.Write("de", []storage.Entry{{Word: "Katzen", Analysis: morph.Analysis{Lemma: "Katze"}}}); err != nil {
		t.Fatal(err)
	}

	n, err = s.Count("en")
	if err != nil || n != 3 {
		t.Errorf("Count: got %d, %v", n, err)
	}

	locales, err := s.Locales()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(locales, []string{"de", "en"}) {
		t.Errorf("got %v", locales)
	}
}

func TestLexiconStoreWriteReplaces(t *testing.T) {
	s := newStore(t)
	if err := s.Write("en", enEntries); err != nil {
		t.Fatal(err)
	}
	if err := s.Write("en", []storage.Entry{{Word: "cats", Analysis: morph.Analysis{Lemma: "cat", Morphemes: []string{"ca", "ts"}}}}); err != nil {
		t.Fatal(err)
	}

	n, _ := s.Count("en")
	if n != 3 {
		t.Errorf("Count: got %d, want 3", n)
	}

	an, _, _ := s.Lookup("en", "cats")
	if !slices.Equal(an.Morphemes, []string{"ca", "ts"}) || an.Pos != "" {
		t.Errorf("cats was not replaced: %+v", an)
	}
}

func TestLexiconStoreWords(t *testing.T) {
	s := newStore(t)
	if err := s.Write("en", enEntries); err != nil {
		t.Fatal(err)
	}

	words, err := s.Words("en", "walk", 0)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(words, []string{"walked", "walking"}) {
		t.Errorf("got %v", words)
	}

	words, err = s.Words("en", "", 1)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(words, []string{"cats"}) {
		t.Errorf("got %v", words)
	}
}

func TestLexiconStoreEntries(t *testing.T) {
	s := newStore(t)
	if err := s.Write("en", enEntries); err != nil {
		t.Fatal(err)
	}

	var words []string
	err := s.Entries("en", func(e storage.Entry) error {
		words = append(words, e.Word)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(words, []string{"cats", "walked", "walking"}) {
		t.Errorf("got %v", words)
	}

	stop := errors.New("stop")
	err = s.Entries("en", func(storage.Entry) error { return stop })
	if !errors.Is(err, stop) {
		t.Errorf("callback error not returned: %v", err)
	}
}
