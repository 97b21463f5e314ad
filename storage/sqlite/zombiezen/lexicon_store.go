package zombiezen

import (
	"context"
	"fmt"
	"strings"

	"github.com/revelaction/m2vprep/morph"
	"github.com/revelaction/m2vprep/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// listSep joins tags and morphemes in their TEXT columns.
const listSep = "|"

type LexiconStore struct {
	pool *sqlitex.Pool
}

var _ storage.LexiconRepository = (*LexiconStore)(nil)

func NewLexiconStore(pool *sqlitex.Pool) *LexiconStore {
	return &LexiconStore{pool: pool}
}

func (h *LexiconStore) Locales() ([]string, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	locales := []string{}
	err = sqlitex.Execute(conn, "SELECT DISTINCT locale FROM lexicon ORDER BY locale", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			locales = append(locales, stmt.ColumnText(0))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return locales, nil
}

func (h *LexiconStore) Lookup(locale, word string) (morph.Analysis, bool, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return morph.Analysis{}, false, err
	}
	defer h.pool.Put(conn)

	var an morph.Analysis
	found := false

	err = sqlitex.Execute(conn, "SELECT lemma, pos, tags, morphemes FROM lexicon WHERE locale = ? AND word = ?", &sqlitex.ExecOptions{
		Args: []interface{}{locale, word},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			an = morph.Analysis{
				Lemma:     stmt.ColumnText(0),
				Pos:       stmt.ColumnText(1),
				Tags:      splitList(stmt.ColumnText(2)),
				Morphemes: splitList(stmt.ColumnText(3)),
			}
			return nil
		},
	})
	if err != nil {
		return morph.Analysis{}, false, err
	}

	return an, found, nil
}

func (h *LexiconStore) Count(locale string) (int, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return 0, err
	}
	defer h.pool.Put(conn)

	count := 0
	err = sqlitex.Execute(conn, "SELECT COUNT(*) FROM lexicon WHERE locale = ?", &sqlitex.ExecOptions{
		Args: []interface{}{locale},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			count = stmt.ColumnInt(0)
			return nil
		},
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (h *LexiconStore) Entries(locale string, cb func(storage.Entry) error) error {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	return sqlitex.Execute(conn, "SELECT word, lemma, pos, tags, morphemes FROM lexicon WHERE locale = ? ORDER BY rowid", &sqlitex.ExecOptions{
		Args: []interface{}{locale},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			return cb(storage.Entry{
				Word: stmt.ColumnText(0),
				Analysis: morph.Analysis{
					Lemma:     stmt.ColumnText(1),
					Pos:       stmt.ColumnText(2),
					Tags:      splitList(stmt.ColumnText(3)),
					Morphemes: splitList(stmt.ColumnText(4)),
				},
			})
		},
	})
}

func (h *LexiconStore) Words(locale, prefix string, limit int) ([]string, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	if limit <= 0 {
		limit = -1
	}

	words := []string{}
	err = sqlitex.Execute(conn, "SELECT word FROM lexicon WHERE locale = ? AND substr(word, 1, length(?)) = ? ORDER BY word LIMIT ?", &sqlitex.ExecOptions{
		Args: []interface{}{locale, prefix, prefix, limit},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			words = append(words, stmt.ColumnText(0))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}

func (h *LexiconStore) Write(locale string, entries []storage.Entry) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	for _, e := range entries {
		err = sqlitex.Execute(conn, "INSERT OR REPLACE INTO lexicon (locale, word, lemma, pos, tags, morphemes) VALUES (?, ?, ?, ?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{locale, e.Word, e.Lemma, e.Pos, strings.Join(e.Tags, listSep), strings.Join(e.Morphemes, listSep)},
		})
		if err != nil {
			return fmt.Errorf("failed to insert word %q: %w", e.Word, err)
		}
	}

	return nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, listSep)
}
