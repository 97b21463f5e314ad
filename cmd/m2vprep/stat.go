package main

import (
	"io"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/m2vprep/conll"
	"github.com/revelaction/m2vprep/stat"
)

func statCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "print sentence, token and POS counts of a CoNLL-U file",
		ArgsUsage: "INPUT",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errUsage(c, "expected an INPUT argument")
			}
			return statCommand(StatOptions{Input: c.Args().First()}, ui)
		},
	}
}

func statCommand(opts StatOptions, ui UI) error {
	in, err := openInput(opts.Input, ui)
	if err != nil {
		return err
	}
	defer in.Close()

	hdl := stat.NewHandler()
	if err := aggregate(hdl, in); err != nil {
		return err
	}

	stats := hdl.Get()

	summary := newCountTable("corpus", "", "count")
	summary.add("sentences", stats.NumSentences)
	summary.add("tokens", stats.NumTokens)
	summary.add("word types", stats.NumTypes)
	summary.add("skipped lines", stats.NumSkipped)
	summary.add("tokens per sentence", stats.TokensPerSentenceMean)
	summary.write(ui.Out)

	if len(stats.PosDis) == 0 {
		return nil
	}

	pos := make([]string, 0, len(stats.PosDis))
	for p := range stats.PosDis {
		pos = append(pos, p)
	}
	// most frequent first
	sort.Slice(pos, func(i, j int) bool {
		if stats.PosDis[pos[i]] != stats.PosDis[pos[j]] {
			return stats.PosDis[pos[i]] > stats.PosDis[pos[j]]
		}
		return pos[i] < pos[j]
	})

	dis := newCountTable("part of speech", "pos", "tokens")
	for _, p := range pos {
		dis.add(p, stats.PosDis[p])
	}
	dis.write(ui.Out)

	return nil
}

func aggregate(hdl *stat.Handler, r io.Reader) error {
	cr := conll.NewReader(r)
	for {
		s, err := cr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		hdl.Aggregate(s)
	}
}
