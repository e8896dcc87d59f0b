package cubical

import (
	"fmt"

	"github.com/katalvlaran/morsekit/morerr"
)

// ErrNonPositiveBox indicates that New was given a box extent <= 0.
// Classification: contract violation (spec.md §7). Wraps
// morerr.ErrContract so errors.Is(err, morerr.ErrContract) holds
// regardless of which package raised the error.
var ErrNonPositiveBox = fmt.Errorf("cubical: box extent must be positive: %w", morerr.ErrContract)
