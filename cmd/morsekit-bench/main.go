// Command morsekit-bench runs the discrete Morse reduction kernel
// end-to-end on the canonical cubical-complex fixtures from spec.md §8
// (a circle, a disk, a torus, ...) and prints the critical-cell count
// per dimension of the connection-matrix fixed point — the ambient
// "does it actually work" harness the teacher ships as its examples/
// package, reduced here to one runnable scenario per named shape.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/katalvlaran/morsekit/chain"
	"github.com/katalvlaran/morsekit/connection"
	"github.com/katalvlaran/morsekit/cubical"
	"github.com/katalvlaran/morsekit/graded"
)

func main() {
	shape := flag.String("shape", "torus", "named fixture: point, circle, disk, torus")
	boxesFlag := flag.String("boxes", "", "comma-separated box extents, overrides -shape when non-empty")
	flag.Parse()

	boxes, err := resolveBoxes(*shape, *boxesFlag)
	if err != nil {
		log.Fatalf("morsekit-bench: %v", err)
	}

	c, err := cubical.New(boxes)
	if err != nil {
		log.Fatalf("morsekit-bench: building cubical complex %v: %v", boxes, err)
	}

	base := graded.Graded{Complex: c, Value: func(chain.Cell) int { return 0 }}
	fixed, err := connection.Matrix(base)
	if err != nil {
		log.Fatalf("morsekit-bench: connection matrix did not converge: %v", err)
	}

	fmt.Printf("boxes=%v cells=%d critical-cells=%d\n", boxes, c.Size(), fixed.Complex.Size())
	for d := 0; d <= fixed.Complex.Dimension(); d++ {
		fmt.Printf("  dimension %d: %d critical cells (candidate Betti number)\n", d, fixed.Complex.SizeOf(d))
	}
}

// resolveBoxes turns -boxes (if given) or -shape into a box-extent
// slice for cubical.New.
func resolveBoxes(shape, boxesFlag string) ([]int, error) {
	if boxesFlag != "" {
		parts := strings.Split(boxesFlag, ",")
		boxes := make([]int, len(parts))
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, fmt.Errorf("invalid -boxes value %q: %w", boxesFlag, err)
			}
			boxes[i] = n
		}
		return boxes, nil
	}

	switch shape {
	case "point":
		return nil, nil
	case "circle":
		return []int{3}, nil
	case "disk":
		return []int{2, 2}, nil
	case "torus":
		return []int{3, 3}, nil
	default:
		return nil, fmt.Errorf("unknown -shape %q (want point, circle, disk, or torus)", shape)
	}
}
