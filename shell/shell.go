package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/m2vprep/render"
	"github.com/revelaction/m2vprep/token"
)

const (
	completionThreshold = 2
	maxSuggestions      = 12

	quit = "quit"
)

// Suggester returns the known words of locale starting with prefix.
type Suggester interface {
	Words(locale, prefix string, limit int) ([]string, error)
}

type Handler struct {
	Factory *token.Factory
	Format  string
	Out     io.Writer

	// Suggester and Locale feed word completion. Suggester may be nil.
	Suggester Suggester
	Locale    string
}

func NewHandler(f *token.Factory, format string, out io.Writer) *Handler {
	return &Handler{
		Factory: f,
		Format:  format,
		Out:     out,
	}
}

func (h *Handler) Run() error {

	fmt.Fprintln(h.Out, "🔑 Ctrl+F: next Format, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      🔖 ", h.completer,
			prompt.OptionTitle("m2vprep shell"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(maxSuggestions),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Format = render.NextFormat(h.Format)
					fmt.Fprintln(h.Out, "Format set to: "+h.Format)
				}}),
		)

		if strings.TrimSpace(in) == quit {
			return nil
		}

		history = append(history, in)

		if err := h.Execute(in); err != nil {
			fmt.Fprintf(h.Out, "Error: %v\n", err)
		}
	}
}

// Execute renders one line of input. A line with a tab is a CoNLL-U token
// line, anything else is a list of space separated words.
func (h *Handler) Execute(in string) error {
	in = strings.TrimRight(in, "\r\n")
	if strings.TrimSpace(in) == "" {
		return nil
	}

	tokens, err := h.tokens(in)
	if err != nil {
		return err
	}

	r, err := render.New(h.Format, h.Out, h.Factory.SpecialChar())
	if err != nil {
		return err
	}
	return r.Render(tokens)
}

func (h *Handler) tokens(in string) ([]token.Token, error) {
	if strings.Contains(in, "\t") {
		t, err := h.Factory.FromConllLine(in)
		if err != nil {
			return nil, err
		}
		return []token.Token{t}, nil
	}

	words := strings.Fields(in)
	tokens := make([]token.Token, 0, len(words))
	for _, w := range words {
		t, err := h.Factory.FromWord(w)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}

	if len(tokens) == 0 {
		return nil, errors.New("no words given")
	}
	return tokens, nil
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	s := []prompt.Suggest{}
	if h.Suggester == nil {
		return s
	}

	word := in.GetWordBeforeCursor()
	// CoNLL lines are not completed
	if len([]rune(word)) < completionThreshold || strings.Contains(in.TextBeforeCursor(), "\t") {
		return s
	}

	words, err := h.Suggester.Words(h.Locale, word, maxSuggestions)
	if err != nil {
		return s
	}

	for _, w := range words {
		s = append(s, prompt.Suggest{Text: w, Description: h.Locale})
	}
	return s
}
