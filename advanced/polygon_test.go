package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestNewPolygon(t *testing.T) {
	poly := Square()
	assert.Equal(t, 4, poly.Len())
	assert.Equal(t, 0, poly.Anchor())
	assert.Equal(t, []int{1, 2, 3, 4}, poly.Labels())
	assert.Equal(t, []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, poly.Points())
	assert.Equal(t, 1, poly.Next(0))
	assert.Equal(t, 3, poly.Prev(0))
	assert.Equal(t, 0, poly.Next(3))
	require.NoError(t, poly.Validate())

	// Following next n times returns to the start, from any vertex
	for start := 0; start < poly.Len(); start++ {
		h := start
		for i := 0; i < poly.Len(); i++ {
			h = poly.Next(h)
		}
		assert.Equal(t, start, h)
	}
}

func TestNewLabeledPolygon(t *testing.T) {
	poly := NewLabeledPolygon([]Point{{0, 0}, {1, 0}, {0, 1}}, []int{7, 8, 9})
	assert.Equal(t, []int{7, 8, 9}, poly.Labels())

	assert.Panics(t, func() {
		NewLabeledPolygon([]Point{{0, 0}, {1, 0}, {0, 1}}, []int{7})
	})
}

func TestLookup(t *testing.T) {
	poly := Square()
	p, ok := poly.Lookup(3)
	assert.True(t, ok)
	assert.Equal(t, Point{10, 10}, p)

	_, ok = poly.Lookup(5)
	assert.False(t, ok)
}

func TestClone(t *testing.T) {
	t.Run("independent copy", func(t *testing.T) {
		poly := SimpleStar()
		poly.InitEars()
		clone := ClonePolygon(poly)
		require.NoError(t, clone.Validate())
		assert.Equal(t, poly.Len(), clone.Len())
		assert.Equal(t, poly.Points(), clone.Points())
		assert.Equal(t, poly.Labels(), clone.Labels())
		poly.Walk(func(h int, v *Vertex) {
			assert.Equal(t, v.Ear, clone.Vertex(h).Ear)
		})

		// Mutating the clone leaves the original alone
		clone.Vertex(clone.Anchor()).Ear = !clone.Vertex(clone.Anchor()).Ear
		clone.remove(clone.Anchor())
		assert.Equal(t, 10, poly.Len())
		assert.Equal(t, 9, clone.Len())
		assert.NotEqual(t, poly.Vertex(0).Ear, clone.Vertex(0).Ear)
		require.NoError(t, poly.Validate())
	})

	t.Run("compacts a clipped ring", func(t *testing.T) {
		poly := Square()
		poly.remove(1) // drop label 2; anchor moves to label 3
		clone := poly.Clone()
		assert.Equal(t, 3, clone.Len())
		assert.Equal(t, []int{3, 4, 1}, clone.Labels())
		assert.Equal(t, 0, clone.Anchor())
		assert.Len(t, clone.vertices, 3)
	})
}

func TestRemove(t *testing.T) {
	poly := Square()
	poly.remove(0)
	assert.Equal(t, 3, poly.Len())
	assert.Equal(t, 1, poly.Anchor())
	assert.Equal(t, []int{2, 3, 4}, poly.Labels())
	assert.Equal(t, 3, poly.Prev(1))
	assert.Equal(t, 1, poly.Next(3))
	require.NoError(t, poly.Validate())
}

func TestReverse(t *testing.T) {
	poly := Square()
	reversed := poly.Reverse()
	assert.Equal(t, []int{1, 4, 3, 2}, reversed.Labels())
	assert.Equal(t, []Point{{0, 0}, {0, 10}, {10, 10}, {10, 0}}, reversed.Points())
	assert.False(t, reversed.IsCCW())
	assert.Equal(t, -poly.SignedArea2(), reversed.SignedArea2())
	assert.Equal(t, poly.Labels(), reversed.Reverse().Labels())
}

func TestSignedArea2(t *testing.T) {
	assert.Equal(t, 200, Square().SignedArea2())
	assert.Equal(t, 600, LShape().SignedArea2())
	assert.True(t, Square().IsCCW())
	assert.True(t, LoadFixture("spiral").IsCCW())
}

func TestValidate(t *testing.T) {
	t.Run("too few vertices", func(t *testing.T) {
		err := NewPolygon([]Point{{0, 0}, {1, 1}}).Validate()
		assert.ErrorIs(t, err, ErrDegenerate)
	})

	t.Run("duplicate coordinates", func(t *testing.T) {
		err := NewPolygon([]Point{{0, 0}, {1, 0}, {0, 0}, {0, 1}}).Validate()
		assert.EqualError(t, err, "vertices 1 and 3 share coordinates (0,0)")
	})

	t.Run("broken link", func(t *testing.T) {
		poly := Square()
		poly.vertices[2].prev = 0
		assert.Error(t, poly.Validate())
	})

	t.Run("short ring", func(t *testing.T) {
		poly := Square()
		poly.vertices[1].next = 3
		poly.vertices[3].prev = 1
		assert.Error(t, poly.Validate())
	})
}

func TestContainsPointByEvenOdd(t *testing.T) {
	poly := LShape()
	assert.True(t, poly.ContainsPointByEvenOdd(5, 5))
	assert.True(t, poly.ContainsPointByEvenOdd(15, 5))
	assert.True(t, poly.ContainsPointByEvenOdd(5, 15))
	assert.False(t, poly.ContainsPointByEvenOdd(15, 15))
	assert.False(t, poly.ContainsPointByEvenOdd(-1, 5))
	assert.False(t, poly.ContainsPointByEvenOdd(25, 5))
}
