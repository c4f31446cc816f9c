package dataset

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound reports a mutation against an id with no matching row.
	ErrNotFound = errors.New("row not found")

	// ErrNotConfirmed reports a delete attempted without the interactive
	// confirmation gate.
	ErrNotConfirmed = errors.New("delete requires confirmation")

	// ErrUnknownResource reports an operation against a resource name the
	// catalog does not define.
	ErrUnknownResource = errors.New("unknown resource")
)

// ValidationError carries field-level messages for a rejected submit.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}
