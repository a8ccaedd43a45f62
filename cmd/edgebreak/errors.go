package main

import (
	"errors"
	"os"

	"github.com/edgebreak/mesh/compress"
	"github.com/edgebreak/mesh/decompress"
	"github.com/edgebreak/mesh/halfedge"
)

// codeFor maps a codec/IO error to the CLI's exit-code contract.
func codeFor(err error) int {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return exitIOError
	case errors.Is(err, halfedge.ErrVertexOutOfRange),
		errors.Is(err, halfedge.ErrEmptyMesh),
		errors.Is(err, compress.ErrUnsupportedTopology),
		errors.Is(err, compress.ErrInvalidGate),
		errors.Is(err, decompress.ErrMalformedStream),
		errors.Is(err, decompress.ErrStackUnderflow),
		errors.Is(err, decompress.ErrNegativeOffset):
		return exitCodecError
	case errors.As(err, new(*os.PathError)):
		return exitIOError
	default:
		return exitUsageError
	}
}
