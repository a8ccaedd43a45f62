package decompress

import (
	"github.com/edgebreak/mesh/compress"
	"github.com/edgebreak/mesh/symbol"
)

// front is the doubly-linked active-front representation: parallel
// slices indexed by slot id (0 = NULL, mirroring corner.NULL), storing
// the destination vertex id of each front edge plus its neighbours.
type front struct {
	end, next, prev []int
	vc              int
}

func newFront() *front {
	return &front{end: []int{0}, next: []int{0}, prev: []int{0}}
}

func (f *front) newSlot(endVertex int) int {
	f.end = append(f.end, endVertex)
	f.next = append(f.next, 0)
	f.prev = append(f.prev, 0)
	return len(f.end) - 1
}

// seedRing allocates a fresh ring of length slots with sequential fresh
// vertex ids, returning one of its slots as the component's initial
// gate.
func (f *front) seedRing(length int) int {
	first, prevSlot := 0, 0
	for i := 0; i < length; i++ {
		f.vc++
		s := f.newSlot(f.vc)
		if i == 0 {
			first = s
		} else {
			f.next[prevSlot] = s
			f.prev[s] = prevSlot
		}
		prevSlot = s
	}
	f.next[prevSlot] = first
	f.prev[first] = prevSlot
	return first
}

type generator struct {
	*front
	faces      [][3]int
	splitStack []int
	plainS     int
	offsets    map[int]int
}

func generate(hist []symbol.Symbol, lengths []int, mtable []compress.MTableEntry, pre *preprocessed) (*Result, error) {
	if len(pre.componentLengths) == 0 {
		return nil, ErrMalformedStream
	}

	g := &generator{front: newFront(), offsets: pre.offsets}
	gate := g.seedRing(pre.componentLengths[0])

	hIdx, mIdx, componentIdx := 0, 0, 1

	for _, sym := range hist {
		switch sym {
		case symbol.C:
			gate = g.stepC(gate)
		case symbol.R:
			gate = g.stepR(gate)
		case symbol.L:
			g.stepL(gate)
		case symbol.E:
			next, closed := g.stepE(gate)
			if closed {
				if componentIdx < len(pre.componentLengths) {
					length := pre.componentLengths[componentIdx]
					componentIdx++
					gate = g.seedRing(length)
				}
			} else {
				gate = next
			}
		case symbol.S:
			var err error
			gate, err = g.stepS(gate)
			if err != nil {
				return nil, err
			}
		case symbol.H:
			if hIdx >= len(lengths) {
				return nil, ErrMalformedStream
			}
			gate = g.stepH(gate, lengths[hIdx])
			hIdx++
		case symbol.M:
			if mIdx >= len(mtable) {
				return nil, ErrMalformedStream
			}
			var err error
			gate, err = g.stepM(gate, mtable[mIdx])
			mIdx++
			if err != nil {
				return nil, err
			}
		}
	}

	return &Result{Faces: g.faces, VertexCount: g.vc}, nil
}

func (g *generator) emit(p, gate, d int) {
	g.faces = append(g.faces, [3]int{g.end[p], g.end[gate], g.end[d]})
}

func (g *generator) stepC(gate int) int {
	p := g.prev[gate]
	g.vc++
	a := g.newSlot(g.vc)
	g.emit(p, gate, a)
	g.next[p], g.prev[a] = a, p
	g.next[a], g.prev[gate] = gate, a
	return gate
}

func (g *generator) stepR(gate int) int {
	p, n := g.prev[gate], g.next[gate]
	g.emit(p, gate, n)
	g.next[p], g.prev[n] = n, p
	return n
}

func (g *generator) stepL(gate int) {
	p := g.prev[gate]
	pp := g.prev[p]
	g.emit(p, gate, pp)
	g.next[pp], g.prev[gate] = gate, pp
}

// stepE returns (nextGate, closed); closed is true when there was no
// split frame to resume into, signalling the caller to seed the next
// component.
func (g *generator) stepE(gate int) (int, bool) {
	p, n := g.prev[gate], g.next[gate]
	g.emit(p, gate, n)
	if len(g.splitStack) == 0 {
		return 0, true
	}
	next := g.splitStack[len(g.splitStack)-1]
	g.splitStack = g.splitStack[:len(g.splitStack)-1]
	return next, false
}

func (g *generator) stepS(gate int) (int, error) {
	off, ok := g.offsets[g.plainS]
	g.plainS++
	if !ok {
		return 0, ErrMalformedStream
	}
	d := g.next[gate]
	for i := 0; i < off; i++ {
		d = g.next[d]
	}
	p := g.prev[gate]
	g.emit(p, gate, d)

	a := g.newSlot(g.end[d])
	g.next[p], g.prev[a] = a, p
	g.next[a], g.prev[d] = d, a
	g.splitStack = append(g.splitStack, a)
	return gate, nil
}

func (g *generator) stepH(gate int, length int) int {
	p := g.prev[gate]
	tip := g.vc + 1

	prevSlot := p
	for i := 0; i < length+1; i++ {
		v := tip
		if i < length {
			g.vc++
			v = g.vc
		}
		s := g.newSlot(v)
		g.next[prevSlot], g.prev[s] = s, prevSlot
		prevSlot = s
	}
	g.next[prevSlot], g.prev[gate] = gate, prevSlot
	g.emit(p, gate, g.next[p])
	return gate
}

// stepM reads (does not remove) the split-stack entry at mt.Position to
// locate the merge target, but the resumption gate it returns is always
// popped from the top of the split-stack, mirroring the source
// algorithm's asymmetric read-vs-pop behaviour at the M symbol.
func (g *generator) stepM(gate int, mt compress.MTableEntry) (int, error) {
	if mt.Position < 0 || mt.Position >= len(g.splitStack) {
		return 0, ErrMalformedStream
	}
	d := g.splitStack[mt.Position]
	for i := 0; i < mt.Offset; i++ {
		d = g.next[d]
	}
	p := g.prev[gate]
	g.emit(p, gate, d)

	a := g.newSlot(g.end[d])
	g.next[p], g.prev[a] = a, p
	g.next[a], g.prev[d] = d, a

	if len(g.splitStack) == 0 {
		return 0, ErrStackUnderflow
	}
	next := g.splitStack[len(g.splitStack)-1]
	g.splitStack = g.splitStack[:len(g.splitStack)-1]
	return next, nil
}
