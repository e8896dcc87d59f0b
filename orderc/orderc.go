// Package orderc builds the order complex of a cell complex: the
// simplicial complex whose simplices are the maximal chains of the face
// poset, rooted at every cell and descended via Column (the boundary
// relation) until a cell with no faces is reached.
//
// Grounded on original_source/OrderComplex.h: the explicit work-stack
// traversal that extends a chain by one face at a time and emits it as
// a simplex exactly when the current cell's boundary is empty.
package orderc

import (
	"github.com/katalvlaran/morsekit/chain"
	"github.com/katalvlaran/morsekit/cmplx"
	"github.com/katalvlaran/morsekit/simplicial"
)

// Build returns the order complex of c as a simplicial.Complex.
func Build(c cmplx.Complex) *simplicial.Complex {
	var simplices [][]int

	var stack [][]chain.Cell
	for d := 0; d <= c.Dimension(); d++ {
		for _, i := range c.Cells(d) {
			stack = append(stack, []chain.Cell{i})
		}
	}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		v := s[len(s)-1]

		var faces []chain.Cell
		c.Column(v, func(u chain.Cell) { faces = append(faces, u) })

		if len(faces) == 0 {
			simplex := make([]int, len(s))
			for i, cell := range s {
				simplex[i] = int(cell)
			}
			simplices = append(simplices, simplex)
			continue
		}
		for _, u := range faces {
			t := make([]chain.Cell, len(s)+1)
			copy(t, s)
			t[len(s)] = u
			stack = append(stack, t)
		}
	}

	return simplicial.New(simplices)
}
