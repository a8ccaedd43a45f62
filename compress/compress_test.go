package compress_test

import (
	"testing"

	"github.com/edgebreak/mesh/compress"
	"github.com/edgebreak/mesh/halfedge"
	"github.com/edgebreak/mesh/symbol"
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

func TestCompressTetrahedronSymbolCount(t *testing.T) {
	m, err := halfedge.Build(4, tetrahedronFaces())
	require.NoError(t, err)

	result, err := compress.Compress(m)
	require.NoError(t, err)

	assert.Equal(t, []symbol.Symbol{symbol.C, symbol.R, symbol.R, symbol.E}, result.History)
	assert.Empty(t, result.Duplicates)
}

func TestCompressTriangleStrip(t *testing.T) {
	faces := [][3]int{
		{1, 2, 3},
		{2, 4, 3},
		{4, 3, 5},
		{5, 3, 6},
		{5, 6, 7},
	}
	m, err := halfedge.Build(7, faces)
	require.NoError(t, err)

	result, err := compress.Compress(m)
	require.NoError(t, err)
	assert.Equal(t, []symbol.Symbol{symbol.C, symbol.R, symbol.R, symbol.R, symbol.E}, result.History)
}
