package main

import (
	"fmt"
	"io"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/m2vprep/morph"
	"github.com/revelaction/m2vprep/storage"
	"github.com/revelaction/m2vprep/storage/filesystem"
	"github.com/revelaction/m2vprep/storage/sqlite/zombiezen"
)

// importBatch is the number of entries written per transaction.
const importBatch = 1000

func importLexiconCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "import-lexicon",
		Usage: "copy TSV lexicon files into a SQLite lexicon",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "from",
				Usage:    "directory of <locale>.tsv files",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "to",
				Usage:    "SQLite database, created if missing",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:  "locale",
				Usage: "only import this locale (repeatable)",
			},
		},
		Action: func(c *cli.Context) error {
			opts := ImportLexiconOptions{
				From:    c.String("from"),
				To:      c.String("to"),
				Locales: c.StringSlice("locale"),
			}
			return importLexiconCommand(opts, ui)
		},
	}
}

func importLexiconCommand(opts ImportLexiconOptions, ui UI) error {
	src, err := filesystem.NewLexiconStore(opts.From)
	if err != nil {
		return err
	}

	pool, err := zombiezen.NewPool(opts.To)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := zombiezen.CreateLexiconTables(pool); err != nil {
		return fmt.Errorf("failed to create lexicon table: %w", err)
	}

	dst := zombiezen.NewLexiconStore(pool)

	locales := opts.Locales
	if len(locales) == 0 {
		if locales, err = src.Locales(); err != nil {
			return err
		}
	}

	fmt.Fprintf(ui.Out, "Reading lexicons from %s...\n", opts.From)

	progress := uiprogress.New()
	progress.SetOut(ui.Err)
	if !isTerminal(ui.Err) {
		progress.SetOut(io.Discard)
	}
	progress.Start()
	defer progress.Stop()

	count := 0
	for _, locale := range locales {
		code, err := morph.CanonicalLocale(locale)
		if err != nil {
			return err
		}

		total, err := src.Count(locale)
		if err != nil {
			return fmt.Errorf("failed to read lexicon %s: %w", locale, err)
		}

		bar := progress.AddBar(total)
		bar.AppendCompleted()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return code
		})

		n, err := copyLexicon(src, dst, locale, code, bar)
		if err != nil {
			return err
		}
		count += n
	}

	fmt.Fprintf(ui.Out, "Successfully imported %d entries of %d locales from %s to %s\n", count, len(locales), opts.From, opts.To)
	return nil
}

// copyLexicon copies the entries of locale in src to the canonical locale
// code in dst.
func copyLexicon(src storage.LexiconReader, dst storage.LexiconWriter, locale, code string, bar *uiprogress.Bar) (int, error) {
	batch := make([]storage.Entry, 0, importBatch)
	n := 0

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := dst.Write(code, batch); err != nil {
			return fmt.Errorf("failed to write lexicon %s: %w", code, err)
		}
		n += len(batch)
		_ = bar.Set(n)
		batch = batch[:0]
		return nil
	}

	err := src.Entries(locale, func(e storage.Entry) error {
		batch = append(batch, e)
		if len(batch) == importBatch {
			return flush()
		}
		return nil
	})
	if err != nil {
		return n, err
	}

	return n, flush()
}
