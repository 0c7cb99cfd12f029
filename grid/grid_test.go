package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrid(t *testing.T) {
	t.Run("cells start at the zero value", func(t *testing.T) {
		g := New[int](3, 2)

		assert.Equal(t, 3, g.Columns())
		assert.Equal(t, 2, g.Rows())
		for row := range 2 {
			for column := range 3 {
				assert.Equal(t, 0, g.At(column, row).Or(-1))
			}
		}
	})

	t.Run("set and get", func(t *testing.T) {
		g := New[string](4, 3)

		assert.True(t, g.Set(2, 1, "x"))
		assert.Equal(t, "x", g.At(2, 1).Or(""))
		assert.Equal(t, "", g.At(1, 2).Or("missing"))
	})

	t.Run("out of bounds", func(t *testing.T) {
		g := New[int](2, 2)

		assert.False(t, g.At(2, 0).Exists())
		assert.False(t, g.At(0, 2).Exists())
		assert.False(t, g.At(-1, 0).Exists())
		assert.False(t, g.Set(0, -1, 5))
		assert.False(t, g.Set(2, 2, 5))
	})

	t.Run("zero-sized grid", func(t *testing.T) {
		g := New[int](0, 5)

		assert.False(t, g.At(0, 0).Exists())
		assert.False(t, g.Set(0, 0, 1))
	})

	t.Run("clone is independent", func(t *testing.T) {
		g := New[int](2, 2)
		g.Set(1, 1, 7)

		clone := g.Clone()
		clone.Set(1, 1, 9)

		assert.Equal(t, 7, g.At(1, 1).Or(-1))
		assert.Equal(t, 9, clone.At(1, 1).Or(-1))
	})
}
