// Package decompress implements the two-pass inverse of compress: a
// preprocessing pass computes per-S offsets and per-component boundary
// lengths, and a generation pass replays the symbol stream over a
// dynamically grown active front to emit the original triangle list.
package decompress

import (
	"errors"

	"github.com/edgebreak/mesh/compress"
	"github.com/edgebreak/mesh/symbol"
)

// Sentinel errors for the decompression engine.
var (
	// ErrMalformedStream indicates the symbol stream and side-table
	// material are structurally inconsistent (wrong symbol/entry
	// counts, bad positions).
	ErrMalformedStream = errors.New("decompress: malformed compressed stream")

	// ErrStackUnderflow indicates a pop was attempted on an empty
	// compute-stack or split-stack.
	ErrStackUnderflow = errors.New("decompress: stack underflow")

	// ErrNegativeOffset indicates preprocessing produced a negative S
	// offset, which is never valid.
	ErrNegativeOffset = errors.New("decompress: negative offset")
)

// Result is the reconstructed connectivity: one triangle per symbol,
// vertex ids in the same local numbering the compressed vertex list (the
// container's reordered "v" lines) already uses.
type Result struct {
	Faces       [][3]int
	VertexCount int
}

// Decompress inverts a compression run. mtable entries reference compute-
// stack positions exactly as compress.Result.MTable produced them.
func Decompress(hist []symbol.Symbol, lengths []int, mtable []compress.MTableEntry) (*Result, error) {
	pre, err := preprocess(hist, lengths, mtable)
	if err != nil {
		return nil, err
	}
	return generate(hist, lengths, mtable, pre)
}
