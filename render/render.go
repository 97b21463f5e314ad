package render

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/revelaction/m2vprep/token"
)

const Defaultformat = "flat"

var (
	Red       = "\033[1;31m"
	Purple    = "\033[1;34m"
	Teal      = "\033[1;36m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

func SupportedFormats() []string {
	return []string{"flat", "json", "color"}
}

// Renderer writes a group of tokens (a sentence, or the words of an input
// line) to its writer.
type Renderer interface {
	Render(tokens []token.Token) error
}

// New returns the Renderer for format writing to w. Tokens are rendered with
// delim as the flat format delimiter.
func New(format string, w io.Writer, delim rune) (Renderer, error) {
	switch format {
	case "flat":
		return &FlatRenderer{W: w, Delim: delim}, nil
	case "json":
		return NewJSONRenderer(w), nil
	case "color":
		return &ColorRenderer{W: w, Delim: delim}, nil
	}

	return nil, fmt.Errorf("unsupported format %q, allowed values are %s", format, strings.Join(SupportedFormats(), ", "))
}

// NextFormat returns the format following format in the SupportedFormats()
// order, wrapping around.
func NextFormat(format string) string {
	supported := SupportedFormats()
	i := slices.Index(supported, format)
	if i < 0 || i == len(supported)-1 {
		return supported[0]
	}

	return supported[i+1]
}

// FlatRenderer writes the tokens as one line of the flat format, the line
// the preprocessing drivers emit.
type FlatRenderer struct {
	W     io.Writer
	Delim rune
}

func (r *FlatRenderer) Render(tokens []token.Token) error {
	_, err := fmt.Fprintln(r.W, Sentence(tokens, r.Delim))
	return err
}

// ColorRenderer writes one token per line, each group prefix in its own
// color, for a human reading the flat format.
type ColorRenderer struct {
	W     io.Writer
	Delim rune
}

func (r *ColorRenderer) Render(tokens []token.Token) error {
	for _, t := range tokens {
		if _, err := fmt.Fprintln(r.W, colorFlat(Flat(t, r.Delim), r.Delim)); err != nil {
			return err
		}
	}
	return nil
}

// colorFlat highlights the group prefix of every item of a flat string.
func colorFlat(flat string, delim rune) string {
	items := strings.Split(flat, string(delim))
	for i, item := range items {
		if len(item) < 2 || item[1] != ':' {
			continue
		}

		items[i] = prefixColor(item[:2]) + item[:2] + Off + item[2:]
	}

	return strings.Join(items, Grey256+string(delim)+Off)
}

func prefixColor(prefix string) string {
	switch prefix {
	case wordPrefix:
		return Green256
	case lemmaPrefix:
		return Yellow256
	case tagPrefix:
		return Purple
	case morphemePrefix:
		return Red
	case ngramPrefix:
		return Teal
	}

	return ""
}

// compile-time interface check
var (
	_ Renderer = (*FlatRenderer)(nil)
	_ Renderer = (*ColorRenderer)(nil)
)
