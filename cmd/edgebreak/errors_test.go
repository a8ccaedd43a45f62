package main

import (
	"errors"
	"os"
	"testing"

	"github.com/edgebreak/mesh/decompress"
	"github.com/edgebreak/mesh/halfedge"
	"github.com/stretchr/testify/assert"
)

func TestCodeForMapsCodecErrors(t *testing.T) {
	assert.Equal(t, exitCodecError, codeFor(halfedge.ErrVertexOutOfRange))
	assert.Equal(t, exitCodecError, codeFor(decompress.ErrMalformedStream))
}

func TestCodeForMapsIOErrors(t *testing.T) {
	assert.Equal(t, exitIOError, codeFor(os.ErrNotExist))
}

func TestCodeForDefaultsToUsageError(t *testing.T) {
	assert.Equal(t, exitUsageError, codeFor(errors.New("boom")))
}
