package collision

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundsIntersects(t *testing.T) {
	a := NewBounds(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})

	tests := []struct {
		name   string
		center mgl64.Vec3
		want   bool
	}{
		{"overlapping", mgl64.Vec3{1.5, 0, 0}, true},
		{"touching", mgl64.Vec3{2, 0, 0}, true},
		{"apart on x", mgl64.Vec3{2.1, 0, 0}, false},
		{"apart on y", mgl64.Vec3{0, 3, 0}, false},
		{"apart on z", mgl64.Vec3{0, 0, -2.5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBounds(tt.center, mgl64.Vec3{1, 1, 1})
			assert.Equal(t, tt.want, a.Intersects(b))
			assert.Equal(t, tt.want, b.Intersects(a))
		})
	}
}

func TestBoundsRaycastTopFace(t *testing.T) {
	floor := Bounds{Min: mgl64.Vec3{-5, -1, -5}, Max: mgl64.Vec3{5, 0, 5}}

	hit, ok := floor.Raycast(mgl64.Vec3{0, 2, 0}, mgl64.Vec3{0, -1, 0}, 5)
	require.True(t, ok)
	assert.InDelta(t, 2.0, hit.Distance, 1e-9)
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, hit.Normal)
	assert.InDelta(t, 0.0, hit.Point.Y(), 1e-9)
}

func TestBoundsRaycastOutOfRange(t *testing.T) {
	floor := Bounds{Min: mgl64.Vec3{-5, -1, -5}, Max: mgl64.Vec3{5, 0, 5}}

	_, ok := floor.Raycast(mgl64.Vec3{0, 2, 0}, mgl64.Vec3{0, -1, 0}, 1.5)
	assert.False(t, ok)

	_, ok = floor.Raycast(mgl64.Vec3{0, 2, 0}, mgl64.Vec3{0, 1, 0}, 10)
	assert.False(t, ok, "ray pointing away never hits")
}

func TestBoundsRaycastSideFace(t *testing.T) {
	wall := NewBounds(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{2, 2, 0.5})

	hit, ok := wall.Raycast(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 1}, 10)
	require.True(t, ok)
	assert.InDelta(t, 4.5, hit.Distance, 1e-9)
	assert.Equal(t, mgl64.Vec3{0, 0, -1}, hit.Normal)
}
