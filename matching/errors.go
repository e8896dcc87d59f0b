package matching

import (
	"fmt"

	"github.com/katalvlaran/morsekit/morerr"
)

// ErrNotCubical indicates NewCubical was given a complex that is not a
// *cubical.Complex. Classification: contract violation (spec.md §7),
// the Go analogue of original_source/CubicalMorseMatching.h's
// std::invalid_argument on a failed dynamic_pointer_cast.
var ErrNotCubical = fmt.Errorf("matching: complex is not a cubical.Complex: %w", morerr.ErrContract)
