package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.Locale = strings.TrimSpace(c.Locale)

	var err error
	if c.LexiconPath, err = expandPath(strings.TrimSpace(c.LexiconPath)); err != nil {
		return fmt.Errorf("lexicon_path: %w", err)
	}

	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}
