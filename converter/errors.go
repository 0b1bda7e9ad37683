package converter

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration matches any *ConfigurationError via errors.Is
	ErrConfiguration = errors.New("invalid configuration")
	// ErrUnknownSplitID matches any *UnknownSplitIDError via errors.Is
	ErrUnknownSplitID = errors.New("unknown split id")
)

// ConfigurationError reports malformed or incomplete input. Field is the
// JSON name of the offending field, or empty when the document itself is
// unreadable.
type ConfigurationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid configuration: %s", e.Reason)
	}
	return fmt.Sprintf("invalid configuration: field %q %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// Is reports whether target is ErrConfiguration
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// UnknownSplitIDError reports a split id the registry does not know.
// Index is the position of the first unresolved id in SplitIDs.
type UnknownSplitIDError struct {
	ID    string
	Index int
}

func (e *UnknownSplitIDError) Error() string {
	return fmt.Sprintf("unknown split id %q at position %d", e.ID, e.Index)
}

// Is reports whether target is ErrUnknownSplitID
func (e *UnknownSplitIDError) Is(target error) bool { return target == ErrUnknownSplitID }
