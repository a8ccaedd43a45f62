// Package compress implements the Edgebreaker compression engine: it
// walks the dynamic boundary loop of a half-edge mesh, emits the symbol
// history, reorders the vertex list into traversal order, and produces
// the side-table material needed to invert the process.
package compress

import (
	"errors"

	"github.com/edgebreak/mesh/corner"
	"github.com/edgebreak/mesh/symbol"
)

// Sentinel errors for the compression engine.
var (
	// ErrUnsupportedTopology indicates a directed edge has multiplicity
	// greater than two that vertex duplication could not repair.
	ErrUnsupportedTopology = errors.New("compress: unsupported topology")

	// ErrInvalidGate indicates the engine could not locate a usable
	// initial gate corner on an otherwise non-empty mesh.
	ErrInvalidGate = errors.New("compress: no usable gate corner")
)

// mark is the tri-state-plus-payload mark carried by every vertex and
// every corner during traversal.
type mark struct {
	state  markState
	origin corner.ID // valid only when state == markExternal3
}

type markState byte

const (
	markUnmarked markState = iota
	markExternal1
	markExternal2
	markExternal3
)

// MTableEntry describes how to locate an M symbol's merge target: the
// position of the frozen split frame on the work stack at compress time,
// the rotation offset from that frame's origin to the tip vertex, and the
// loop length at the moment of the merge.
type MTableEntry struct {
	Position int
	Offset   int
	Length   int
}

// Duplicate records a vertex duplication performed to repair a
// non-manifold edge. Pos and Idx are both indices into Result.Previous,
// with Idx < Pos.
type Duplicate struct {
	Pos int
	Idx int
}

// Result is everything the decompression engine needs to invert a
// compression run.
type Result struct {
	History    []symbol.Symbol
	Previous   []int
	Lengths    []int
	MTable     []MTableEntry
	Duplicates []Duplicate
}
