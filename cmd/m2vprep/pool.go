package main

import (
	"github.com/revelaction/m2vprep/storage/sqlite/zombiezen"
	"zombiezen.com/go/sqlite/sqlitex"
)

// Pool lazily opens the SQLite lexicon of a command run. A command reads a
// single lexicon, so the first path opened is the one kept.
type Pool struct {
	sp *sqlitex.Pool
}

func (p *Pool) Open(path string) (*sqlitex.Pool, error) {
	if p.sp != nil {
		return p.sp, nil
	}

	sp, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, err
	}
	if err := zombiezen.CreateLexiconTables(sp); err != nil {
		_ = sp.Close()
		return nil, err
	}

	p.sp = sp
	return sp, nil
}

// Close closes the pool, if one was opened.
func (p *Pool) Close() error {
	if p.sp == nil {
		return nil
	}
	err := p.sp.Close()
	p.sp = nil
	return err
}
