package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/revelaction/m2vprep/morph"
	"github.com/revelaction/m2vprep/storage"
	"github.com/revelaction/m2vprep/storage/filesystem"
	"github.com/revelaction/m2vprep/storage/sqlite/zombiezen"
	"github.com/revelaction/m2vprep/token"
)

var errNoLocale = errors.New("no locale given: use --locale, M2VPREP_LOCALE or the locale key of the config file")

// NewLexiconRepository returns the filesystem store when path is a directory
// and the SQLite store otherwise.
func NewLexiconRepository(p *Pool, path string) (storage.LexiconRepository, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewLexiconStore(path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewLexiconStore(pool), nil
}

// FactoryOptions are the parameters of a token factory.
type FactoryOptions struct {
	Locale      string
	LexiconPath string
	MinNGram    int
	MaxNGram    int
}

// newFactory builds the token factory. Without locale the factory has no
// analyzer nor tagger and the returned repository is nil.
func newFactory(p *Pool, opts FactoryOptions) (*token.Factory, storage.LexiconRepository, error) {
	c := token.Config{
		SpecialChar: token.SpecialChar,
		MinNGram:    opts.MinNGram,
		MaxNGram:    opts.MaxNGram,
	}

	if opts.Locale == "" {
		f, err := token.NewFactory(c)
		return f, nil, err
	}

	repo, err := NewLexiconRepository(p, opts.LexiconPath)
	if err != nil {
		return nil, nil, err
	}

	analyzer, tagger, err := morph.Load(repo, opts.Locale)
	if err != nil {
		return nil, nil, err
	}
	c.Analyzer = analyzer
	c.Tagger = tagger

	f, err := token.NewFactory(c)
	if err != nil {
		return nil, nil, err
	}
	return f, repo, nil
}
