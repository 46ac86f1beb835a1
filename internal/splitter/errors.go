package splitter

import "errors"

// Fatal run errors. Callers match them with errors.Is; the returned error
// wraps one of these with the offending path or name.
var (
	ErrInputNotFound     = errors.New("input file not found")
	ErrTypeNotFound      = errors.New("type not found")
	ErrOutputUnwritable  = errors.New("output location is not writable")
	ErrInputTooLarge     = errors.New("input file exceeds size limit")
	ErrInvalidSplitCount = errors.New("split count must be a positive integer")
)
