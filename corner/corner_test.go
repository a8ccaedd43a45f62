package corner_test

import (
	"testing"

	"github.com/edgebreak/mesh/corner"
	"github.com/stretchr/testify/assert"
)

func TestTriangleCycle(t *testing.T) {
	c0 := corner.FromTriangle(2, 0)
	c1 := corner.FromTriangle(2, 1)
	c2 := corner.FromTriangle(2, 2)

	assert.Equal(t, c1, c0.Next())
	assert.Equal(t, c2, c1.Next())
	assert.Equal(t, c0, c2.Next())

	assert.Equal(t, c2, c0.Prev())
	assert.Equal(t, c0, c1.Prev())
	assert.Equal(t, c1, c2.Prev())
}

func TestTriangleIndex(t *testing.T) {
	c := corner.FromTriangle(5, 1)
	assert.Equal(t, 5, c.Triangle())
}

func TestNullIsZero(t *testing.T) {
	assert.Equal(t, corner.ID(0), corner.NULL)
}
