// Package halfedge builds the corner (half-edge) adjacency arrays that
// the compression and decompression engines operate over.
//
// Errors:
//
//	ErrVertexOutOfRange - a face references a vertex id outside [1,V].
//	ErrEmptyMesh        - zero triangles were supplied.
package halfedge

import (
	"errors"
	"fmt"

	"github.com/edgebreak/mesh/corner"
)

// Sentinel errors for half-edge construction.
var (
	// ErrVertexOutOfRange indicates a face referenced a vertex id outside
	// the valid [1, vertexCount] range.
	ErrVertexOutOfRange = errors.New("halfedge: face vertex id out of range")

	// ErrEmptyMesh indicates the input carried no triangles.
	ErrEmptyMesh = errors.New("halfedge: mesh has no triangles")
)

// EdgeKey is an ordered pair of 1-based vertex ids identifying a directed
// edge a→b.
type EdgeKey [2]int

// Mesh holds the corner adjacency arrays plus the conflict map produced by
// Build. All corner-indexed slices have length 3*TriangleCount+1; index 0
// is the unused NULL slot.
type Mesh struct {
	VertexCount   int
	TriangleCount int

	// S and E hold the start and end vertex id of each corner's edge.
	S, E []int

	// Next and Prev link the corner along its current boundary loop;
	// corner.NULL when the corner is interior.
	Next, Prev []corner.ID

	// Opp is the matched corner across a shared edge; corner.NULL on a
	// boundary corner.
	Opp []corner.ID

	// Conflicts counts, per directed edge, the extra corners claiming it
	// beyond the first manifold pairing. Missing keys mean zero.
	Conflicts map[EdgeKey]int
}

// Build constructs the corner adjacency for an indexed triangle mesh.
// faces holds 1-based vertex ids, three per triangle.
func Build(vertexCount int, faces [][3]int) (*Mesh, error) {
	if len(faces) == 0 {
		return nil, ErrEmptyMesh
	}

	n := len(faces)
	m := &Mesh{
		VertexCount:   vertexCount,
		TriangleCount: n,
		S:             make([]int, 3*n+1),
		E:             make([]int, 3*n+1),
		Next:          make([]corner.ID, 3*n+1),
		Prev:          make([]corner.ID, 3*n+1),
		Opp:           make([]corner.ID, 3*n+1),
		Conflicts:     make(map[EdgeKey]int),
	}

	// Step 1: initialise per-triangle arrays and the virgin 3-cycle that
	// serves as each triangle's own boundary loop before any pairing.
	for t, f := range faces {
		for i := 0; i < 3; i++ {
			if f[i] < 1 || f[i] > vertexCount {
				return nil, fmt.Errorf("halfedge: triangle %d vertex %d (id %d): %w", t, i, f[i], ErrVertexOutOfRange)
			}
			c := corner.FromTriangle(t, i)
			m.S[c] = f[i]
			m.E[c] = f[(i+1)%3]
			m.Next[c] = c.Next()
			m.Prev[c] = c.Prev()
		}
	}

	// Step 2: pair opposite corners and record conflicts for directed
	// edges that cannot be paired normally.
	unpaired := make(map[EdgeKey]corner.ID)
	for t := 0; t < n; t++ {
		for i := 0; i < 3; i++ {
			h := corner.FromTriangle(t, i)
			a, b := m.S[h], m.E[h]

			if g, ok := unpaired[EdgeKey{b, a}]; ok {
				if m.Next[g] != corner.NULL {
					m.pair(g, h)
				} else {
					m.Conflicts[EdgeKey{a, b}]++
				}
				continue
			}
			if _, ok := unpaired[EdgeKey{a, b}]; ok {
				m.Conflicts[EdgeKey{a, b}]++
				continue
			}
			unpaired[EdgeKey{a, b}] = h
		}
	}

	return m, nil
}

// pair splices g and h (opposite corners across a shared edge) out of
// their respective triangle boundary loops and joins the two loops into
// one, then marks both corners interior.
func (m *Mesh) pair(g, h corner.ID) {
	gP, gN := m.Prev[g], m.Next[g]
	hP, hN := m.Prev[h], m.Next[h]

	m.Next[gP] = hN
	m.Prev[hN] = gP
	m.Next[hP] = gN
	m.Prev[gN] = hP

	m.Opp[g] = h
	m.Opp[h] = g
	m.Next[g], m.Prev[g] = corner.NULL, corner.NULL
	m.Next[h], m.Prev[h] = corner.NULL, corner.NULL
}
