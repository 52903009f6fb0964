package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGeometry marks a box whose width or height is not positive.
// Records carrying such a box are dropped, not fatal for the whole run.
var ErrInvalidGeometry = errors.New("invalid geometry")

// OrientedBox is a rotated rectangle: center, size and rotation angle.
// Angle is in radians and is kept in [0, π) so that a box and its
// 180°-rotated twin compare as the same polygon.
type OrientedBox struct {
	Cx    float32
	Cy    float32
	W     float32
	H     float32
	Angle float32
}

// NewOrientedBox builds a box with the angle normalized into [0, π).
func NewOrientedBox(cx, cy, w, h, angle float32) OrientedBox {
	return OrientedBox{
		Cx:    cx,
		Cy:    cy,
		W:     w,
		H:     h,
		Angle: NormalizeAngle(angle),
	}
}

// NormalizeAngle folds an angle in radians into [0, π).
func NormalizeAngle(a float32) float32 {
	r := math.Mod(float64(a), math.Pi)
	if r < 0 {
		r += math.Pi
	}
	// Mod can hand back exactly π for inputs like -1e-9
	if r >= math.Pi {
		r -= math.Pi
	}
	return float32(r)
}

// Area returns w*h. Boxes with non-positive size are rejected.
func (b OrientedBox) Area() (float32, error) {
	if b.W <= 0 || b.H <= 0 {
		return 0, fmt.Errorf("%w: size %gx%g", ErrInvalidGeometry, b.W, b.H)
	}
	return b.W * b.H, nil
}

// Valid reports whether the box has positive width and height.
func (b OrientedBox) Valid() bool {
	return b.W > 0 && b.H > 0
}

// ToGlobal translates a tile-local box into image coordinates.
// Rotation is unchanged by translation.
func (b OrientedBox) ToGlobal(tileOffsetX, tileOffsetY float32) OrientedBox {
	b.Cx += tileOffsetX
	b.Cy += tileOffsetY
	return b
}

// Corners returns the 4 corner points in rotational order.
func (b OrientedBox) Corners() [4][2]float64 {
	cos := math.Cos(float64(b.Angle))
	sin := math.Sin(float64(b.Angle))
	dx := float64(b.W) / 2
	dy := float64(b.H) / 2
	local := [4][2]float64{
		{-dx, -dy},
		{dx, -dy},
		{dx, dy},
		{-dx, dy},
	}
	var out [4][2]float64
	for i, p := range local {
		out[i][0] = float64(b.Cx) + p[0]*cos - p[1]*sin
		out[i][1] = float64(b.Cy) + p[0]*sin + p[1]*cos
	}
	return out
}

// RotatedIoU computes intersection-over-union of two oriented boxes by
// clipping their corner polygons (Sutherland–Hodgman) and measuring the
// leftover polygon with the shoelace formula. Returns 0 when the polygons
// do not intersect or either box is degenerate.
func RotatedIoU(a, b OrientedBox) float32 {
	if !a.Valid() || !b.Valid() {
		return 0
	}
	pa := a.Corners()
	pb := b.Corners()
	inter := clipPolygon(pa[:], pb[:])
	interArea := polygonArea(inter)
	if interArea <= 0 {
		return 0
	}
	areaA := float64(a.W) * float64(a.H)
	areaB := float64(b.W) * float64(b.H)
	union := areaA + areaB - interArea
	if union <= 0 {
		return 0
	}
	return float32(interArea / union)
}

// clipPolygon clips subject against each edge of clip. Both polygons must
// be convex and wound the way Corners produces them.
func clipPolygon(subject, clip [][2]float64) [][2]float64 {
	output := subject
	n := len(clip)
	for i := 0; i < n && len(output) > 0; i++ {
		a := clip[i]
		b := clip[(i+1)%n]
		input := output
		output = nil
		for j := 0; j < len(input); j++ {
			p := input[j]
			q := input[(j+1)%len(input)]
			pIn := insideEdge(p, a, b)
			qIn := insideEdge(q, a, b)
			switch {
			case pIn && qIn:
				output = append(output, q)
			case pIn && !qIn:
				output = append(output, lineIntersect(p, q, a, b))
			case !pIn && qIn:
				output = append(output, lineIntersect(p, q, a, b), q)
			}
		}
	}
	return output
}

func insideEdge(p, a, b [2]float64) bool {
	return (b[0]-a[0])*(p[1]-a[1])-(b[1]-a[1])*(p[0]-a[0]) >= 0
}

func lineIntersect(p, q, a, b [2]float64) [2]float64 {
	a1 := q[1] - p[1]
	b1 := p[0] - q[0]
	c1 := a1*p[0] + b1*p[1]
	a2 := b[1] - a[1]
	b2 := a[0] - b[0]
	c2 := a2*a[0] + b2*a[1]
	det := a1*b2 - a2*b1
	if det == 0 {
		// parallel segments, fall back to the shared endpoint
		return q
	}
	return [2]float64{
		(b2*c1 - b1*c2) / det,
		(a1*c2 - a2*c1) / det,
	}
}

func polygonArea(poly [][2]float64) float64 {
	if len(poly) < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < len(poly); i++ {
		j := (i + 1) % len(poly)
		sum += poly[i][0]*poly[j][1] - poly[j][0]*poly[i][1]
	}
	return math.Abs(sum) / 2
}
