package objfile_test

import (
	"bytes"
	"testing"

	"github.com/edgebreak/mesh/internal/logging"
	"github.com/edgebreak/mesh/objfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripPlainMesh(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\n# a comment\nf 1 2 3\n"

	parsed, err := objfile.Read(bytes.NewBufferString(src), logging.Noop())
	require.NoError(t, err)
	assert.Equal(t, [3]float64{0, 0, 0}, parsed.Mesh.Vertices[0])
	assert.Equal(t, [3]int{1, 2, 3}, parsed.Mesh.Faces[0])

	var buf bytes.Buffer
	require.NoError(t, objfile.Write(&buf, parsed))

	reparsed, err := objfile.Read(&buf, logging.Noop())
	require.NoError(t, err)
	assert.Equal(t, parsed.Mesh, reparsed.Mesh)
}

func TestFanTriangulatesQuad(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n"
	parsed, err := objfile.Read(bytes.NewBufferString(src), logging.Noop())
	require.NoError(t, err)
	require.Len(t, parsed.Mesh.Faces, 2)
	assert.Equal(t, [3]int{1, 2, 3}, parsed.Mesh.Faces[0])
	assert.Equal(t, [3]int{1, 3, 4}, parsed.Mesh.Faces[1])
}

func TestUnknownLineIsWarnedAndSkipped(t *testing.T) {
	src := "v 0 0 0\nbogus line\nv 1 0 0\n"
	parsed, err := objfile.Read(bytes.NewBufferString(src), logging.Noop())
	require.NoError(t, err)
	assert.Len(t, parsed.Mesh.Vertices, 2)
}
