package registry

import (
	"errors"
	"fmt"
)

// ErrRegistryLoad matches any *LoadError via errors.Is
var ErrRegistryLoad = errors.New("registry load failed")

// LoadError reports an unreadable or malformed split definition asset.
// It is fatal to any conversion waiting on the registry.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load split definitions from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is reports whether target is ErrRegistryLoad
func (e *LoadError) Is(target error) bool { return target == ErrRegistryLoad }
