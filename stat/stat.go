package stat

import (
	"strings"

	"github.com/revelaction/m2vprep/conll"
)

type Handler struct {
	stats Stats
	types map[string]struct{}
}

type Stats struct {
	NumSentences          int
	NumTokens             int
	NumSkipped            int
	NumTypes              int
	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int
	PosDis                map[string]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{
		TokensPerSentenceDis: map[int]int{},
		PosDis:               map[string]int{},
	}
	return &Handler{
		stats: stats,
		types: map[string]struct{}{},
	}
}

// Aggregate adds one sentence to the stats.
func (h *Handler) Aggregate(s conll.Sentence) {
	h.stats.NumSentences++
	h.stats.NumSkipped += s.Skipped
	h.stats.NumTokens += len(s.Lines)
	h.stats.TokensPerSentenceDis[len(s.Lines)]++

	for _, line := range s.Lines {
		cols := strings.Split(line, "\t")
		if len(cols) > 1 {
			h.types[cols[1]] = struct{}{}
		}
		if len(cols) > 3 {
			h.stats.PosDis[cols[3]]++
		}
	}

	h.stats.NumTypes = len(h.types)
	h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
}
