// Package morsekit computes discrete Morse reductions and ℤ/2ℤ
// homology of cell complexes.
//
// 🧮 What is morsekit?
//
//	A single-threaded, dependency-light kernel that brings together:
//
//	  • chain/cmplx — the ℤ/2ℤ chain algebra and the Complex capability
//	    set every concrete complex in this module implements
//	  • cubical/simplicial/orderc/dual — concrete and auxiliary cell
//	    complexes, built from a box shape, a list of maximal simplices,
//	    or a view of another complex
//	  • grading/matching/morsecx/graded/connection — discrete Morse
//	    theory: extend a top-cell grading, compute an acyclic partial
//	    matching, reduce to the critical-cell Morse complex, and iterate
//	    that reduction to its connection-matrix fixed point
//
// ✨ Why morsekit?
//
//   - Deterministic    — every matching's tie-break policy is fixed and
//     documented, never left to map-iteration order
//   - Branchless hot path — cubical cell arithmetic avoids allocation
//     and unnecessary branching in the per-dimension loop
//   - Pure Go          — no cgo, testify is the only third-party
//     dependency and it is confined to _test.go files
//
// Under the hood, everything is organized one concern per package:
//
//	chain/       — Cell identifiers and the XOR chain algebra
//	cmplx/       — the Complex interface and boundary/coboundary/star
//	cubical/     — the concrete twisted-periodic cubical complex
//	simplicial/  — closure of a set of maximal simplices
//	orderc/      — order complex of a complex's face poset
//	dual/        — dimension-reversed view of a complex
//	grading/     — extending a top-cell grading to the whole complex
//	matching/    — acyclic partial matchings (generic and cubical)
//	morsecx/     — the reduced, critical-cell-renumbered Morse complex
//	graded/      — the single graded-complex type and one reduction step
//	connection/  — iterating graded reduction to its fixed point
//	morerr/      — shared sentinel-error taxonomy
//	cmd/morsekit-bench/ — a runnable end-to-end demonstration
package morsekit
