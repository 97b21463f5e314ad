package config

import "github.com/revelaction/m2vprep/token"

const (
	defaultLocale        = ""
	defaultLexiconPath   = "~/.local/share/m2vprep/lexicon"
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultWorkers       = 1
	defaultShowsProgress = true
)

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Locale:      defaultLocale,
		LexiconPath: defaultLexiconPath,
		Workers:     defaultWorkers,
		Progress:    defaultShowsProgress,
		NGram: NGram{
			Min: token.DefaultMinNGram,
			Max: token.DefaultMaxNGram,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
