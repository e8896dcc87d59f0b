// Package morerr defines the sentinel-error taxonomy shared across morsekit.
//
// Two families, per the kernel's error-handling design:
//
//	ErrContract   - a recoverable contract violation: bad constructor
//	                arguments, or a user-supplied grading/complex that
//	                violates a documented precondition. Callers branch
//	                on this with errors.Is and discard the partially
//	                built value.
//	Corruption    - an internal invariant failure: the matching
//	                algorithm observed something that can only happen
//	                if a caller-supplied Complex violates ∂∂=0 or a
//	                grading violates the closure property after it was
//	                already validated once. This is not a usage mistake
//	                a caller can recover from, so it is reported via
//	                panic(*Corruption) rather than a returned error.
//
// Package-specific sentinels (cubical.ErrNonPositiveBox,
// matching.ErrNotCubical, connection.ErrMaxIterationsExceeded) wrap
// ErrContract with fmt.Errorf("...: %w", morerr.ErrContract) so that
// errors.Is(err, morerr.ErrContract) is true regardless of which
// package raised it, mirroring the teacher's alias-wrapping convention
// for cross-package sentinel families.
package morerr

import (
	"errors"
	"fmt"
)

// ErrContract is the umbrella sentinel for all contract-violation errors
// across morsekit. Every package-specific contract error wraps this one.
var ErrContract = errors.New("morsekit: contract violation")

// Corruption is the panic value raised when a matching algorithm detects
// an internal invariant failure — evidence that a caller-supplied Complex
// or grading is inconsistent, not that the caller misused the API.
type Corruption struct {
	// Where names the invariant that failed (e.g. "coreducible mate already matched").
	Where string
	// Cell is the offending cell index, or -1 if not cell-specific.
	Cell int
}

// Error implements the error interface so Corruption can be inspected
// conveniently after a recover(), even though it is raised via panic.
func (c *Corruption) Error() string {
	if c.Cell < 0 {
		return fmt.Sprintf("morsekit: internal invariant failure: %s", c.Where)
	}
	return fmt.Sprintf("morsekit: internal invariant failure: %s (cell=%d)", c.Where, c.Cell)
}

// Panic raises a Corruption for the named invariant and cell.
func Panic(where string, cell int) {
	panic(&Corruption{Where: where, Cell: cell})
}
