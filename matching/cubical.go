package matching

import (
	"github.com/katalvlaran/morsekit/chain"
	"github.com/katalvlaran/morsekit/cmplx"
	"github.com/katalvlaran/morsekit/cubical"
)

// cubicalMatching is the Matching built by NewCubical.
type cubicalMatching struct {
	complex  *cubical.Complex
	value    func(chain.Cell) int
	typeSize int
	begin    []int
	reindex  [][2]int
}

// NewCubical implements the closed-form recursive matching of spec.md
// §4.6, grounded on original_source/CubicalMorseMatching.h's mate_.
// c must be a *cubical.Complex; any other cmplx.Complex is rejected
// with ErrNotCubical, the Go analogue of the original's failed
// dynamic_pointer_cast.
func NewCubical(c cmplx.Complex, value func(chain.Cell) int) (Matching, error) {
	cc, ok := c.(*cubical.Complex)
	if !ok {
		return nil, ErrNotCubical
	}

	m := &cubicalMatching{complex: cc, value: value, typeSize: cc.TypeSize()}

	D := cc.Dimension()
	begin := make([]int, D+2)
	var reindex [][2]int
	idx := 0
	for d := 0; d <= D; d++ {
		begin[d] = idx
		for _, v := range cc.Cells(d) {
			if cc.RightFringe(v) {
				continue
			}
			if m.Mate(v) == v {
				reindex = append(reindex, [2]int{int(v), idx})
				idx++
			}
		}
	}
	begin[D+1] = idx
	m.begin = begin
	m.reindex = reindex

	return m, nil
}

func (m *cubicalMatching) Mate(x chain.Cell) chain.Cell {
	return m.mateRec(x, m.complex.Dimension())
}

func (m *cubicalMatching) Priority(x chain.Cell) int64 {
	return int64(m.typeSize - int(x)%m.typeSize)
}

func (m *cubicalMatching) CriticalCells() ([]int, [][2]int) { return m.begin, m.reindex }

// mateRec follows CubicalMorseMatching::mate_: a cell on the right
// fringe, or at the last position of its type (a separate check, since
// RightFringe only looks at the dimensions in which the cell has
// extent), is its own mate. Otherwise each dimension below bound is
// tried in turn, toggling the cell's extent in that dimension, for a
// same-grade partner that is not on the right fringe and itself agrees
// the proposal is its mate. A fringe partner is skipped because a
// fringe cell is always its own mate, so pairing with it would break
// the involution. The recursion uses a strictly smaller bound, so this
// always terminates within D levels.
func (m *cubicalMatching) mateRec(cell chain.Cell, bound int) chain.Cell {
	c := m.complex
	if c.RightFringe(cell) {
		return cell
	}
	shape := c.CellShape(cell)
	position := c.CellPosition(cell)
	typeSize := c.TypeSize()
	if position == typeSize-1 {
		return cell
	}

	for d, bit := 0, 1; d < bound; d, bit = d+1, bit<<1 {
		if d == bound-1 && position+c.PlaceValue(d) >= typeSize {
			break
		}
		proposedMate := c.CellAt(position, shape^bit)
		if !c.RightFringe(proposedMate) && m.value(proposedMate) == m.value(cell) && proposedMate == m.mateRec(proposedMate, d) {
			return proposedMate
		}
	}
	return cell
}
