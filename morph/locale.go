package morph

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// CanonicalLocale parses a BCP 47 locale ("en", "en-US", "pt_BR") and returns
// its base language code, which is the key lexicons are stored under.
func CanonicalLocale(locale string) (string, error) {
	trimmed := strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if trimmed == "" {
		return "", fmt.Errorf("empty locale")
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("parse locale %q: %w", locale, err)
	}
	base, _ := tag.Base()
	return base.String(), nil
}
