package decompress_test

import (
	"sort"
	"testing"

	"github.com/edgebreak/mesh/compress"
	"github.com/edgebreak/mesh/decompress"
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

// annulusFaces triangulates a disk with a triangular hole: outer
// boundary loop 1-2-3, inner (hole) boundary loop 4-5-6.
func annulusFaces() [][3]int {
	return [][3]int{
		{1, 2, 4},
		{2, 5, 4},
		{2, 3, 5},
		{3, 6, 5},
		{3, 1, 6},
		{1, 4, 6},
	}
}

// twoTetrahedraFaces builds two closed, disjoint tetrahedra sharing no
// vertex, so the mesh has two connected components and neither carries
// a natural boundary.
func twoTetrahedraFaces() [][3]int {
	second := make([][3]int, 0, 4)
	for _, f := range tetrahedronFaces() {
		second = append(second, [3]int{f[0] + 4, f[1] + 4, f[2] + 4})
	}
	return append(tetrahedronFaces(), second...)
}

func TestDecompressProducesOneFacePerSymbol(t *testing.T) {
	m, err := halfedge.Build(4, tetrahedronFaces())
	require.NoError(t, err)

	result, err := compress.Compress(m)
	require.NoError(t, err)

	decoded, err := decompress.Decompress(result.History, result.Lengths, result.MTable)
	require.NoError(t, err)
	assert.Len(t, decoded.Faces, len(result.History))
}

// normalizeTriangle rotates a triangle so its smallest vertex id comes
// first, without reversing winding, so two cyclic relabelings of the
// same oriented triangle compare equal.
func normalizeTriangle(f [3]int) [3]int {
	min := 0
	for i := 1; i < 3; i++ {
		if f[i] < f[min] {
			min = i
		}
	}
	return [3]int{f[min], f[(min+1)%3], f[(min+2)%3]}
}

func normalizeFaces(faces [][3]int) [][3]int {
	out := make([][3]int, len(faces))
	for i, f := range faces {
		out[i] = normalizeTriangle(f)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		if out[i][1] != out[j][1] {
			return out[i][1] < out[j][1]
		}
		return out[i][2] < out[j][2]
	})
	return out
}

// remapToOriginal translates decoded faces (which use the compressed
// traversal-order vertex numbering) back to the original vertex ids via
// the compression result's Previous list.
func remapToOriginal(faces [][3]int, previous []int) [][3]int {
	out := make([][3]int, len(faces))
	for i, f := range faces {
		out[i] = [3]int{previous[f[0]-1], previous[f[1]-1], previous[f[2]-1]}
	}
	return out
}

// roundTrip compresses and decompresses faces, asserting the decoded
// triangle multiset equals the input up to vertex relabeling (spec
// property: decompress(compress(M)) reproduces M's triangles).
func roundTrip(t *testing.T, vertexCount int, faces [][3]int) *compress.Result {
	t.Helper()

	m, err := halfedge.Build(vertexCount, faces)
	require.NoError(t, err)

	result, err := compress.Compress(m)
	require.NoError(t, err)

	decoded, err := decompress.Decompress(result.History, result.Lengths, result.MTable)
	require.NoError(t, err)
	require.Len(t, result.Previous, decoded.VertexCount)

	remapped := remapToOriginal(decoded.Faces, result.Previous)
	assert.Equal(t, normalizeFaces(faces), normalizeFaces(remapped))

	return result
}

func TestAnnulusRoundTrip(t *testing.T) {
	faces := annulusFaces()
	result := roundTrip(t, 6, faces)

	hCount := 0
	for _, sym := range result.History {
		if sym == symbol.H {
			hCount++
		}
	}
	assert.Equal(t, 1, hCount, "a single-hole disk must attach its hole with exactly one H symbol")
	assert.Len(t, result.Lengths, 1)
}

func TestTwoDisjointTetrahedraRoundTrip(t *testing.T) {
	faces := twoTetrahedraFaces()
	result := roundTrip(t, 8, faces)

	assert.Len(t, result.History, len(faces))

	eCount := 0
	for _, sym := range result.History {
		if sym == symbol.E {
			eCount++
		}
	}
	assert.Equal(t, 2, eCount, "each disjoint closed component closes with its own E symbol")
}
