package filesystem

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/revelaction/m2vprep/morph"
	"github.com/revelaction/m2vprep/storage"
)

// LexiconStore keeps one lexicon file per locale in a directory:
// <dir>/<locale>.tsv. A locale is read on first use and kept in memory.
type LexiconStore struct {
	dir string

	mu sync.Mutex

	// In-memory cache
	lexicons map[string]*lexicon
}

type lexicon struct {
	entries []storage.Entry
	byWord  map[string]int
}

var _ storage.LexiconRepository = (*LexiconStore)(nil)

// NewLexiconStore creates a filesystem lexicon store rooted at dir.
func NewLexiconStore(dir string) (*LexiconStore, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	return &LexiconStore{
		dir:      dir,
		lexicons: map[string]*lexicon{},
	}, nil
}

func (s *LexiconStore) Locales() ([]string, error) {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	locales := []string{}
	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != Ext {
			continue
		}
		locales = append(locales, strings.TrimSuffix(file.Name(), Ext))
	}

	sort.Strings(locales)
	return locales, nil
}

func (s *LexiconStore) Lookup(locale, word string) (morph.Analysis, bool, error) {
	lx, err := s.load(locale)
	if err != nil {
		return morph.Analysis{}, false, err
	}

	i, ok := lx.byWord[word]
	if !ok {
		return morph.Analysis{}, false, nil
	}
	return lx.entries[i].Analysis, true, nil
}

func (s *LexiconStore) Count(locale string) (int, error) {
	lx, err := s.load(locale)
	if err != nil {
		return 0, err
	}
	return len(lx.entries), nil
}

func (s *LexiconStore) Entries(locale string, cb func(storage.Entry) error) error {
	lx, err := s.load(locale)
	if err != nil {
		return err
	}

	for _, e := range lx.entries {
		if err := cb(e); err != nil {
			return err
		}
	}
	return nil
}

func (s *LexiconStore) Words(locale, prefix string, limit int) ([]string, error) {
	lx, err := s.load(locale)
	if err != nil {
		return nil, err
	}

	words := []string{}
	for word := range lx.byWord {
		if strings.HasPrefix(word, prefix) {
			words = append(words, word)
		}
	}

	sort.Strings(words)
	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	return words, nil
}

// Write merges entries into the lexicon file of locale and rewrites it.
func (s *LexiconStore) Write(locale string, entries []storage.Entry) error {
	lx, err := s.load(locale)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := &lexicon{
		entries: append([]storage.Entry{}, lx.entries...),
		byWord:  make(map[string]int, len(lx.byWord)+len(entries)),
	}
	for word, i := range lx.byWord {
		merged.byWord[word] = i
	}
	for _, e := range entries {
		merged.add(e)
	}

	var buf strings.Builder
	for _, e := range merged.entries {
		buf.WriteString(FormatEntry(e))
		buf.WriteByte('\n')
	}

	if err := os.WriteFile(s.path(locale), []byte(buf.String()), 0o644); err != nil {
		return err
	}

	s.lexicons[locale] = merged
	return nil
}

func (s *LexiconStore) path(locale string) string {
	return filepath.Join(s.dir, locale+Ext)
}

// load returns the cached lexicon of locale, reading its file if needed. A
// missing file is an empty lexicon.
func (s *LexiconStore) load(locale string) (*lexicon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if lx, ok := s.lexicons[locale]; ok {
		return lx, nil
	}

	lx, err := readLexicon(s.path(locale))
	if errors.Is(err, fs.ErrNotExist) {
		lx, err = &lexicon{byWord: map[string]int{}}, nil
	}
	if err != nil {
		return nil, err
	}

	s.lexicons[locale] = lx
	return lx, nil
}

// readLexicon reads a lexicon file. Later entries of a word replace earlier
// ones.
func readLexicon(path string) (*lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lx := &lexicon{byWord: map[string]int{}}

	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		if isSkipped(line) {
			continue
		}

		e, err := ParseEntry(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, n, err)
		}
		lx.add(e)
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lx, nil
}

func (lx *lexicon) add(e storage.Entry) {
	if i, ok := lx.byWord[e.Word]; ok {
		lx.entries[i] = e
		return
	}
	lx.byWord[e.Word] = len(lx.entries)
	lx.entries = append(lx.entries, e)
}
