package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrientedBox_All(t *testing.T) {
	t.Run("Test NormalizeAngle", func(t *testing.T) {
		assert.InDelta(t, 0.5, NormalizeAngle(0.5), 1e-6)
		assert.InDelta(t, 0.5, NormalizeAngle(0.5+math.Pi), 1e-6)
		assert.InDelta(t, math.Pi-0.5, NormalizeAngle(-0.5), 1e-6)
		got := NormalizeAngle(float32(3 * math.Pi))
		assert.True(t, got >= 0 && got < math.Pi)
	})

	t.Run("Test Area", func(t *testing.T) {
		b := NewOrientedBox(10, 10, 4, 5, 0)
		area, err := b.Area()
		assert.NoError(t, err)
		assert.InDelta(t, 20.0, area, 1e-6)

		bad := OrientedBox{Cx: 0, Cy: 0, W: -1, H: 5}
		_, err = bad.Area()
		assert.ErrorIs(t, err, ErrInvalidGeometry)

		zero := OrientedBox{Cx: 0, Cy: 0, W: 3, H: 0}
		_, err = zero.Area()
		assert.ErrorIs(t, err, ErrInvalidGeometry)
	})

	t.Run("Test ToGlobal", func(t *testing.T) {
		b := NewOrientedBox(100, 50, 20, 10, 1.2)
		g := b.ToGlobal(800, 800)
		assert.InDelta(t, 900.0, g.Cx, 1e-6)
		assert.InDelta(t, 850.0, g.Cy, 1e-6)
		assert.Equal(t, b.W, g.W)
		assert.Equal(t, b.H, g.H)
		assert.Equal(t, b.Angle, g.Angle)
	})
}

func TestRotatedIoU(t *testing.T) {
	t.Run("Test self IoU is one", func(t *testing.T) {
		boxes := []OrientedBox{
			NewOrientedBox(500, 500, 50, 50, 0),
			NewOrientedBox(10, 20, 3, 7, 0.3),
			NewOrientedBox(-40, 12, 100, 2, 2.9),
		}
		for _, b := range boxes {
			assert.InDelta(t, 1.0, RotatedIoU(b, b), 1e-6)
		}
	})

	t.Run("Test symmetric", func(t *testing.T) {
		a := NewOrientedBox(0, 0, 10, 20, 0.7)
		b := NewOrientedBox(3, 4, 12, 8, 2.1)
		assert.InDelta(t, RotatedIoU(a, b), RotatedIoU(b, a), 1e-6)
	})

	t.Run("Test disjoint boxes", func(t *testing.T) {
		a := NewOrientedBox(0, 0, 10, 10, 0)
		b := NewOrientedBox(100, 100, 10, 10, 0)
		assert.Equal(t, float32(0), RotatedIoU(a, b))
	})

	t.Run("Test axis aligned overlap", func(t *testing.T) {
		// 10x10 boxes offset by 5 in both axes: inter 25, union 175
		a := NewOrientedBox(5, 5, 10, 10, 0)
		b := NewOrientedBox(10, 10, 10, 10, 0)
		assert.InDelta(t, 25.0/175.0, RotatedIoU(a, b), 1e-5)
	})

	t.Run("Test pi rotation is identity", func(t *testing.T) {
		a := NewOrientedBox(50, 50, 30, 10, 0.4)
		b := NewOrientedBox(50, 50, 30, 10, 0.4+math.Pi)
		assert.InDelta(t, 1.0, RotatedIoU(a, b), 1e-5)
	})

	t.Run("Test rotated square overlap", func(t *testing.T) {
		// unit squares, one rotated 45 degrees around the same center:
		// intersection is a regular octagon, area 2*(sqrt(2)-1)
		a := NewOrientedBox(0, 0, 1, 1, 0)
		b := NewOrientedBox(0, 0, 1, 1, math.Pi/4)
		inter := 2 * (math.Sqrt2 - 1)
		want := inter / (2 - inter)
		assert.InDelta(t, want, RotatedIoU(a, b), 1e-4)
	})

	t.Run("Test degenerate box", func(t *testing.T) {
		a := NewOrientedBox(0, 0, 10, 10, 0)
		bad := OrientedBox{Cx: 0, Cy: 0, W: 0, H: 10}
		assert.Equal(t, float32(0), RotatedIoU(a, bad))
	})
}
