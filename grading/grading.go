// Package grading implements ConstructGrading: given an integer grading
// defined only on the top-dimensional cells of a complex, extend it to
// every cell by taking the minimum grade over the cell's top star — the
// monotone grading spec.md's graded/fibered reduction is built on.
//
// Grounded on original_source/Grading.h's construct_grading: it
// precomputes an offset top-cell table, then for any cell returns the
// minimum top_cell_grading value over topstar(cell).
package grading

import (
	"github.com/katalvlaran/morsekit/chain"
	"github.com/katalvlaran/morsekit/cmplx"
)

// ConstructGrading extends topCellGrading (defined on the top-dimension
// cells of c) to the whole complex: Grading(x) = min over v in
// TopStar(x) of topCellGrading(v).
func ConstructGrading(c cmplx.Complex, topCellGrading func(chain.Cell) int) func(chain.Cell) int {
	topStar := func(x chain.Cell) []chain.Cell {
		if ts, ok := c.(cmplx.TopStarer); ok {
			return ts.TopStar(x)
		}
		return cmplx.TopStar(c, x)
	}

	return func(x chain.Cell) int {
		minValue := -1
		for _, v := range topStar(x) {
			newVal := topCellGrading(v)
			if minValue == -1 || newVal < minValue {
				minValue = newVal
			}
		}
		return minValue
	}
}
