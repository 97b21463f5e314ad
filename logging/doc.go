// Package logging builds the slog loggers of m2vprep.
//
// Logs always go to a writer of their own (stderr by default) since stdout
// may carry the preprocessed output.
package logging
