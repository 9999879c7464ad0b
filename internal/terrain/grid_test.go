package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskInBounds(t *testing.T) {
	m := NewMask(5, 3)

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{4, 2, true},
		{-1, 0, false},
		{0, -1, false},
		{5, 0, false},
		{0, 3, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, m.InBounds(tc.x, tc.y), "(%d,%d)", tc.x, tc.y)
	}
}

func TestMaskSetAndClone(t *testing.T) {
	m := NewMask(3, 3)
	m.Set(1, 1, true)
	m.Set(5, 5, true) // out of bounds, ignored
	assert.True(t, m.At(1, 1))
	assert.False(t, m.At(5, 5))
	assert.Equal(t, 1, m.LandCount())

	clone := m.Clone()
	clone.Set(0, 0, true)
	assert.False(t, m.At(0, 0), "clone must not share cells")
	assert.True(t, m.Equal(m.Clone()))
	assert.False(t, m.Equal(clone))
}

func TestGridAtOutOfBounds(t *testing.T) {
	g := NewGrid(2, 2)
	g.Cells[0] = Land
	assert.Equal(t, Land, g.At(0, 0))
	assert.Equal(t, Water, g.At(-1, 0))
	assert.Equal(t, Water, g.At(2, 2))
}

func TestGridDistribution(t *testing.T) {
	g := NewGrid(2, 2)
	g.Cells = []Type{Water, Shallow, Land, Water}

	d := g.Distribution()
	assert.Equal(t, Distribution{Water: 2, Shallow: 1, Land: 1}, d)
	assert.Equal(t, 4, d.Total())
	assert.InDelta(t, 50.0, d.Percent(Water), 1e-9)
	assert.InDelta(t, 25.0, d.Percent(Shallow), 1e-9)
	assert.InDelta(t, 25.0, d.Percent(Land), 1e-9)
}

func TestDistributionEmpty(t *testing.T) {
	d := NewGrid(0, 0).Distribution()
	assert.Zero(t, d.Total())
	assert.Zero(t, d.Percent(Land))
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "water", Water.String())
	assert.Equal(t, "shallow", Shallow.String())
	assert.Equal(t, "land", Land.String())
}
