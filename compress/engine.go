package compress

import (
	"github.com/edgebreak/mesh/corner"
	"github.com/edgebreak/mesh/halfedge"
	"github.com/edgebreak/mesh/symbol"
)

// engine carries all mutable traversal state for a single Compress call.
// It is never reused across calls, matching the single-threaded,
// call-local resource model: every allocation here is discarded once
// Compress returns.
type engine struct {
	mesh *halfedge.Mesh

	vmark map[int]mark
	cmark []mark

	stack []corner.ID

	previous []int
	firstPos map[int]int

	history []symbol.Symbol
	lengths []int
	mtable  []MTableEntry

	dupOrigin     map[int]int
	dupOrder      []int
	nextVertexID  int
	componentRoot []corner.ID

	// consumed tracks, per triangle, whether a symbol has been emitted
	// for it yet. It drives nextClosedComponentGate, the only way a
	// later connected component with no natural boundary of its own
	// (e.g. a second, fully closed tetrahedron) is ever discovered.
	consumed []bool
}

func newEngine(m *halfedge.Mesh) *engine {
	return &engine{
		mesh:         m,
		vmark:        make(map[int]mark),
		cmark:        make([]mark, len(m.Next)),
		previous:     make([]int, 0, m.VertexCount),
		firstPos:     make(map[int]int),
		dupOrigin:    make(map[int]int),
		nextVertexID: m.VertexCount,
		consumed:     make([]bool, m.TriangleCount),
	}
}

// Compress runs the Edgebreaker compression engine over m, which is
// mutated in place and must not be reused afterwards.
func Compress(m *halfedge.Mesh) (*Result, error) {
	e := newEngine(m)
	if err := e.run(); err != nil {
		return nil, err
	}
	for _, n := range e.mesh.Conflicts {
		if n != 0 {
			return nil, ErrUnsupportedTopology
		}
	}
	e.resolveDuplicates()

	return &Result{
		History:    e.history,
		Previous:   e.previous,
		Lengths:    e.lengths,
		MTable:     e.mtable,
		Duplicates: e.duplicates(),
	}, nil
}

func (e *engine) pushVertex(id int) {
	if _, ok := e.firstPos[id]; ok {
		return
	}
	e.firstPos[id] = len(e.previous)
	e.previous = append(e.previous, id)
}

func (e *engine) markVertex(id int, st markState) {
	m := e.vmark[id]
	if m.state == markUnmarked {
		e.vmark[id] = mark{state: st}
	}
}

func (e *engine) run() error {
	gate, err := e.initialGate()
	if err != nil {
		return err
	}

	e.seedLoop(gate)
	e.findComponentRoots()

	e.stack = append(e.stack, gate)
	if err := e.drainStack(); err != nil {
		return err
	}

	for _, root := range e.componentRoot {
		if e.cmark[root].state != markExternal2 {
			continue
		}
		e.seedLoop(root)
		e.stack = append(e.stack, root)
		if err := e.drainStack(); err != nil {
			return err
		}
	}

	for {
		g0, ok := e.nextClosedComponentGate()
		if !ok {
			break
		}
		e.seedLoop(g0)
		e.stack = append(e.stack, g0)
		if err := e.drainStack(); err != nil {
			return err
		}
	}

	if len(e.history) != e.mesh.TriangleCount {
		return ErrInvalidGate
	}

	return nil
}

// initialGate finds the first corner still on a boundary loop. If the
// surface is closed (no such corner), a degenerate two-edge boundary is
// synthesised between the first corner and its opposite.
func (e *engine) initialGate() (corner.ID, error) {
	for c := 1; c < len(e.mesh.Next); c++ {
		if e.mesh.Next[c] != corner.NULL {
			return corner.ID(c), nil
		}
	}

	g0 := corner.FromTriangle(0, 0)
	opp := e.mesh.Opp[g0]
	if opp == corner.NULL {
		return corner.NULL, ErrInvalidGate
	}
	e.mesh.Next[g0], e.mesh.Prev[g0] = opp, opp
	e.mesh.Next[opp], e.mesh.Prev[opp] = g0, g0
	return g0, nil
}

// nextClosedComponentGate finds the first triangle that has not yet had
// a symbol emitted for it and synthesises a degenerate two-edge
// boundary for it, exactly as initialGate does for the very first
// component. A mesh containing more than one entirely closed connected
// component (no natural boundary anywhere, e.g. two disjoint
// tetrahedra) surfaces its later components only here: they own no
// corner that a boundary scan could ever find, since every corner of a
// closed component has Next == NULL from construction onward.
func (e *engine) nextClosedComponentGate() (corner.ID, bool) {
	for t := 0; t < e.mesh.TriangleCount; t++ {
		if e.consumed[t] {
			continue
		}
		g0 := corner.FromTriangle(t, 0)
		opp := e.mesh.Opp[g0]
		if opp == corner.NULL {
			continue
		}
		e.mesh.Next[g0], e.mesh.Prev[g0] = opp, opp
		e.mesh.Next[opp], e.mesh.Prev[opp] = g0, g0
		return g0, true
	}
	return corner.NULL, false
}

// seedLoop walks the boundary loop starting at gate, marking every
// corner and its end vertex External1 and recording each vertex's
// first traversal position in Previous. It pushes the end vertex of
// each corner (not the start vertex) to match the traversal order the
// rest of the engine assumes for Previous.
func (e *engine) seedLoop(gate corner.ID) {
	c := gate
	for {
		e.repairConflict(c)
		e.cmark[c] = mark{state: markExternal1}
		v := e.mesh.E[c]
		e.vmark[v] = mark{state: markExternal1}
		e.pushVertex(v)
		c = e.mesh.Next[c]
		if c == gate {
			break
		}
	}
}

// findComponentRoots marks every not-yet-visited boundary loop External2
// and records its gate as a component root, to be activated either via
// an H symbol (it is a hole) or after the main loop drains (it is the
// outer boundary of a later connected component).
func (e *engine) findComponentRoots() {
	for c := 1; c < len(e.mesh.Next); c++ {
		cid := corner.ID(c)
		if e.mesh.Next[cid] == corner.NULL || e.cmark[cid].state != markUnmarked {
			continue
		}
		g := cid
		for {
			e.repairConflict(g)
			e.cmark[g] = mark{state: markExternal2}
			e.markVertex(e.mesh.E[g], markExternal2)
			g = e.mesh.Next[g]
			if g == cid {
				break
			}
		}
		e.componentRoot = append(e.componentRoot, cid)
	}
}

func rotateUntilNotUnmarked(m *halfedge.Mesh, cmark []mark, start corner.ID) corner.ID {
	b := start
	for cmark[b].state == markUnmarked {
		opp := m.Opp[b]
		if opp == corner.NULL {
			return corner.NULL
		}
		b = opp.Prev()
	}
	return b
}

func rotateUntilState(m *halfedge.Mesh, cmark []mark, start corner.ID, want markState) corner.ID {
	b := start
	for cmark[b].state != want {
		opp := m.Opp[b]
		if opp == corner.NULL {
			return corner.NULL
		}
		b = opp.Prev()
	}
	return b
}

func (e *engine) drainStack() error {
	for len(e.stack) > 0 {
		g := e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]

		pit, nit := g.Prev(), g.Next()
		tip := e.mesh.E[nit]

		switch e.vmark[tip].state {
		case markUnmarked:
			e.caseC(g, pit, nit, tip)
		case markExternal2:
			e.caseH(g, pit, nit)
		default:
			if pit == e.mesh.Prev[g] && nit == e.mesh.Next[g] {
				e.caseE(g, pit, nit)
			} else if pit == e.mesh.Prev[g] {
				e.caseL(g, pit, nit)
			} else if nit == e.mesh.Next[g] {
				e.caseR(g, pit, nit)
			} else if e.vmark[tip].state == markExternal3 {
				e.caseM(g, pit, nit, tip)
			} else {
				e.caseS(g, pit, nit)
			}
		}
	}
	return nil
}

func (e *engine) caseC(g, pit, nit corner.ID, tip int) {
	e.history = append(e.history, symbol.C)
	e.consumed[g.Triangle()] = true
	e.markVertex(tip, markExternal1)
	e.pushVertex(tip)

	left := e.mesh.Opp[pit]
	right := e.mesh.Opp[nit]
	if left != corner.NULL {
		e.cmark[left] = mark{state: markExternal1}
	}
	if right != corner.NULL {
		e.cmark[right] = mark{state: markExternal1}
	}

	gp, gn := e.mesh.Prev[g], e.mesh.Next[g]
	e.mesh.Next[gp], e.mesh.Prev[left] = left, gp
	e.mesh.Next[left], e.mesh.Prev[right] = right, left
	e.mesh.Next[right], e.mesh.Prev[gn] = gn, right

	e.stack = append(e.stack, right)
}

func (e *engine) caseL(g, pit, nit corner.ID) {
	e.history = append(e.history, symbol.L)
	e.consumed[g.Triangle()] = true
	gno := e.mesh.Opp[nit]
	gpp := e.mesh.Prev[pit]
	gn := e.mesh.Next[g]

	e.cmark[g] = mark{}
	e.cmark[pit] = mark{}
	e.cmark[gno] = mark{state: markExternal1}

	e.mesh.Next[gpp], e.mesh.Prev[gno] = gno, gpp
	e.mesh.Next[gno], e.mesh.Prev[gn] = gn, gno

	e.stack = append(e.stack, gno)
}

func (e *engine) caseR(g, pit, nit corner.ID) {
	e.history = append(e.history, symbol.R)
	e.consumed[g.Triangle()] = true
	gpo := e.mesh.Opp[pit]
	gp := e.mesh.Prev[g]
	gnn := e.mesh.Next[nit]

	e.cmark[g] = mark{}
	e.cmark[nit] = mark{}
	e.cmark[gpo] = mark{state: markExternal1}

	e.mesh.Next[gp], e.mesh.Prev[gpo] = gpo, gp
	e.mesh.Next[gpo], e.mesh.Prev[gnn] = gnn, gpo

	e.stack = append(e.stack, gpo)
}

func (e *engine) caseE(g, pit, nit corner.ID) {
	e.history = append(e.history, symbol.E)
	e.consumed[g.Triangle()] = true
	e.cmark[g] = mark{}
	e.cmark[pit] = mark{}
	e.cmark[nit] = mark{}
	e.mesh.Next[g], e.mesh.Prev[g] = corner.NULL, corner.NULL
}

// caseH attaches a previously recorded hole boundary onto the active
// front. b walks forward from the rotation point through the entire
// hole loop, ending on the corner whose end vertex closes back onto
// gno's start vertex; that final b, not the rotation point, is what
// the four links below splice against.
func (e *engine) caseH(g, pit, nit corner.ID) {
	gpo := e.mesh.Opp[pit]
	gno := e.mesh.Opp[nit]
	gN := e.mesh.Next[g]
	gP := e.mesh.Prev[g]

	e.cmark[g] = mark{}
	e.cmark[gpo] = mark{state: markExternal1}
	e.cmark[gno] = mark{state: markExternal1}

	b := rotateUntilState(e.mesh, e.cmark, nit, markExternal2)

	length := 0
	for {
		bs := e.mesh.E[b]
		e.cmark[b] = mark{state: markExternal1}
		e.vmark[bs] = mark{state: markExternal1}
		e.pushVertex(bs)
		length++
		b = e.mesh.Next[b]
		if e.mesh.E[b] == e.mesh.S[gno] {
			break
		}
	}

	e.history = append(e.history, symbol.H)
	e.consumed[g.Triangle()] = true
	e.lengths = append(e.lengths, length)

	// Link 1
	e.mesh.Next[gP] = gpo
	e.mesh.Prev[gpo] = gP

	// Link 2
	bN := e.mesh.Next[b]
	e.mesh.Next[gpo] = bN
	e.mesh.Prev[bN] = gpo

	// Link 3
	e.mesh.Next[b] = gno
	e.mesh.Prev[gno] = b

	// Link 4
	e.mesh.Next[gno] = gN
	e.mesh.Prev[gN] = gno

	e.stack = append(e.stack, gno)
}

// caseS splits the active front in two at g and the rotation point b,
// then marks the newly exposed left loop (anchored at gpo) External3
// so a later caseM can find it again.
func (e *engine) caseS(g, pit, nit corner.ID) {
	gno := e.mesh.Opp[nit]
	gpo := e.mesh.Opp[pit]
	gN := e.mesh.Next[g]
	gP := e.mesh.Prev[g]

	e.cmark[g] = mark{}
	e.cmark[gpo] = mark{state: markExternal1}
	e.cmark[gno] = mark{state: markExternal1}

	b := rotateUntilNotUnmarked(e.mesh, e.cmark, nit)

	e.history = append(e.history, symbol.S)
	e.consumed[g.Triangle()] = true

	// Link 1
	e.mesh.Next[gP] = gpo
	e.mesh.Prev[gpo] = gP

	// Link 2
	bN := e.mesh.Next[b]
	e.mesh.Next[gpo] = bN
	e.mesh.Prev[bN] = gpo

	// Link 3
	e.mesh.Next[b] = gno
	e.mesh.Prev[gno] = b

	// Link 4
	e.mesh.Next[gno] = gN
	e.mesh.Prev[gN] = gno

	shouldMark := true
	cur := gpo
	for {
		if e.cmark[cur].state == markExternal3 || e.vmark[e.mesh.E[cur]].state == markExternal3 {
			shouldMark = false
			break
		}
		cur = e.mesh.Next[cur]
		if e.mesh.E[cur] == e.mesh.E[gpo] {
			break
		}
	}
	if shouldMark {
		cur = gpo
		for {
			e.cmark[cur] = mark{state: markExternal3, origin: gpo}
			e.vmark[e.mesh.E[cur]] = mark{state: markExternal3, origin: gpo}
			cur = e.mesh.Next[cur]
			if e.mesh.E[cur] == e.mesh.E[gpo] {
				break
			}
		}
	}

	e.stack = append(e.stack, gpo, gno)
}

// caseM reconnects the front to a loop split off earlier by an S
// symbol. The hole-length walk and the offset walk both start at
// origin but need not end at the same corner; the links below use the
// offset walk's final b, matching the two-walk shape of the reference
// decoder. A self-merge (the split loop closes directly onto g) emits
// nothing and simply resumes at g.
func (e *engine) caseM(g, pit, nit corner.ID, tip int) {
	origin := e.vmark[tip].origin

	b := origin
	length := 0
	for {
		e.cmark[b] = mark{state: markExternal1}
		e.markVertex(e.mesh.E[b], markExternal1)
		b = e.mesh.Next[b]
		length++
		if e.mesh.E[b] == e.mesh.E[origin] {
			break
		}
	}

	if e.mesh.E[origin] == e.mesh.E[g] {
		e.stack = append(e.stack, g)
		return
	}

	b = origin
	offset := 0
	for {
		if e.mesh.E[b] == tip {
			break
		}
		offset++
		b = e.mesh.Next[b]
		if e.mesh.E[b] == e.mesh.E[origin] {
			break
		}
	}

	position := -1
	for i, g2 := range e.stack {
		if g2 == origin {
			position = i
			break
		}
	}

	e.history = append(e.history, symbol.M)
	e.consumed[g.Triangle()] = true
	e.mtable = append(e.mtable, MTableEntry{Position: position, Offset: offset, Length: length})

	gpo := e.mesh.Opp[pit]
	gno := e.mesh.Opp[nit]
	gN := e.mesh.Next[g]
	gP := e.mesh.Prev[g]

	e.cmark[g] = mark{}
	e.cmark[gpo] = mark{state: markExternal1}
	e.cmark[gno] = mark{state: markExternal1}

	// Link 1
	e.mesh.Next[gP] = gpo
	e.mesh.Prev[gpo] = gP

	// Link 2
	bN := e.mesh.Next[b]
	e.mesh.Next[gpo] = bN
	e.mesh.Prev[bN] = gpo

	// Link 3
	e.mesh.Next[b] = gno
	e.mesh.Prev[gno] = b

	// Link 4
	e.mesh.Next[gno] = gN
	e.mesh.Prev[gN] = gno
}

func (e *engine) duplicates() []Duplicate {
	out := make([]Duplicate, 0, len(e.dupOrder))
	for _, newID := range e.dupOrder {
		pos, ok := e.firstPos[newID]
		if !ok {
			continue
		}
		origID := e.dupOrigin[newID]
		idx, ok := e.firstPos[origID]
		if !ok {
			continue
		}
		out = append(out, Duplicate{Pos: pos, Idx: idx})
	}
	return out
}

func (e *engine) resolveDuplicates() {
	for _, newID := range e.dupOrder {
		pos, ok := e.firstPos[newID]
		if !ok {
			continue
		}
		e.previous[pos] = e.dupOrigin[newID]
	}
}
