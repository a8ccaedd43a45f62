package compress

import (
	"github.com/edgebreak/mesh/corner"
	"github.com/edgebreak/mesh/halfedge"
)

// allocVertex creates a fresh vertex id standing in for orig and records
// the mapping so the traversal-order vertex list can be restored to
// original ids once compression completes.
func (e *engine) allocVertex(orig int) int {
	e.nextVertexID++
	id := e.nextVertexID
	e.dupOrigin[id] = orig
	e.dupOrder = append(e.dupOrder, id)
	return id
}

// renameVertexStar rewrites every corner incident to the vertex at seed
// (on either side of its edge) from old to newID, walking the vertex's
// one-ring via the opp/prev pairing in both rotational directions so a
// boundary vertex is fully covered.
func (e *engine) renameVertexStar(seed corner.ID, newID int) {
	old := e.mesh.S[seed]
	visited := make(map[corner.ID]bool)
	rewrite := func(c corner.ID) {
		if e.mesh.S[c] == old {
			e.mesh.S[c] = newID
		}
		if e.mesh.E[c] == old {
			e.mesh.E[c] = newID
		}
	}

	cur := seed
	for !visited[cur] {
		visited[cur] = true
		rewrite(cur)
		p := cur.Prev()
		rewrite(p)
		opp := e.mesh.Opp[p]
		if opp == corner.NULL {
			break
		}
		cur = opp
	}

	if e.mesh.Opp[seed] != corner.NULL {
		cur = e.mesh.Opp[seed].Next()
		for !visited[cur] {
			visited[cur] = true
			rewrite(cur)
			p := cur.Prev()
			rewrite(p)
			opp := e.mesh.Opp[p]
			if opp == corner.NULL {
				break
			}
			cur = opp
		}
	}
}

// repairConflict consults the conflict map for g's directed edge and, if
// the edge is over-subscribed, duplicates both its endpoint vertices so
// the remainder of the traversal sees a two-manifold edge. Called from
// every per-corner step of the boundary-marking walk (seedLoop,
// findComponentRoots), matching markEdges's inline conflict fix — not
// from the main dispatch loop, which only ever sees already-repaired
// corners by the time they are pushed as gates.
func (e *engine) repairConflict(g corner.ID) {
	a, b := e.mesh.S[g], e.mesh.E[g]
	key := halfedge.EdgeKey{a, b}
	if e.mesh.Conflicts[key] <= 0 {
		return
	}

	newA := e.allocVertex(a)
	newB := e.allocVertex(b)
	e.renameVertexStar(g, newA)
	e.renameVertexStar(g.Next(), newB)
	e.mesh.Conflicts[key]--
}
