// Package corner defines the half-edge (corner) id and the in-triangle
// arithmetic shared by the builder, the compression engine, and the
// decompression engine.
package corner

// ID is a 1-based corner id. Triangle t owns corners 3t, 3t+1, 3t+2
// (0-based offsets); id 0 is the reserved NULL sentinel, so array index 0
// of any corner-indexed slice is never assigned a meaningful value.
type ID int

// NULL is the sentinel corner id meaning "no corner".
const NULL ID = 0

// Triangle returns the 0-based triangle index owning c.
func (c ID) Triangle() int {
	return (int(c) - 1) / 3
}

// offset returns c's 0-based local index within its triangle, in [0,3).
func (c ID) offset() int {
	return (int(c) - 1) % 3
}

// Next returns the in-triangle successor of c: offset (i+1) mod 3.
func (c ID) Next() ID {
	t := c.Triangle()
	return ID(3*t + (c.offset()+1)%3 + 1)
}

// Prev returns the in-triangle predecessor of c: offset (i+2) mod 3.
func (c ID) Prev() ID {
	t := c.Triangle()
	return ID(3*t + (c.offset()+2)%3 + 1)
}

// FromTriangle builds the corner id for triangle t (0-based), local
// offset i (0,1,2).
func FromTriangle(t, i int) ID {
	return ID(3*t + i + 1)
}
