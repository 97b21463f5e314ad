package token

import "fmt"

// MalformedInputError reports an input unit that does not have the expected
// shape: a CoNLL line with too few columns or an eval line without exactly
// three fields.
type MalformedInputError struct {
	Input  string
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input %q: %s", e.Input, e.Reason)
}
