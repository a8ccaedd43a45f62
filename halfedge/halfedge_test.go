package halfedge_test

import (
	"testing"

	"github.com/edgebreak/mesh/corner"
	"github.com/edgebreak/mesh/halfedge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tetrahedronFaces() [][3]int {
	return [][3]int{
		{1, 2, 3},
		{1, 3, 4},
		{1, 4, 2},
		{2, 4, 3},
	}
}

func TestBuildOppositeInvolution(t *testing.T) {
	m, err := halfedge.Build(4, tetrahedronFaces())
	require.NoError(t, err)
	assert.Empty(t, m.Conflicts)

	for c := 1; c < len(m.Opp); c++ {
		opp := m.Opp[c]
		if opp == 0 {
			continue
		}
		assert.Equal(t, corner.ID(c), m.Opp[opp])
		assert.Equal(t, m.S[c], m.E[opp])
		assert.Equal(t, m.E[c], m.S[opp])
	}
}

func TestBuildRejectsOutOfRangeVertex(t *testing.T) {
	_, err := halfedge.Build(3, [][3]int{{1, 2, 9}})
	require.Error(t, err)
	assert.ErrorIs(t, err, halfedge.ErrVertexOutOfRange)
}

func TestBuildRejectsEmpty(t *testing.T) {
	_, err := halfedge.Build(3, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, halfedge.ErrEmptyMesh)
}
