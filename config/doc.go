// Package config loads the m2vprep TOML configuration.
//
// A configuration is resolved from an explicit path, then
// ~/.config/m2vprep/config.toml, then m2vprep.toml in the working directory.
// Missing files yield the defaults. M2VPREP_LOCALE and M2VPREP_LEXICON_PATH
// override the file.
package config
