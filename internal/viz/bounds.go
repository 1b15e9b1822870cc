package viz

import "github.com/san-kum/trajsim/internal/projectile"

// Bounds is an axis-aligned world rectangle.
type Bounds struct {
	MinX, MaxX, MinY, MaxY float64
}

// BoundsOf returns the smallest bounds containing pts and the origin.
func BoundsOf(pts []projectile.Vec2) Bounds {
	b := Bounds{}
	for _, p := range pts {
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	return b
}

// Pad grows each side by frac of the span.
func (b Bounds) Pad(frac float64) Bounds {
	dx, dy := b.Width()*frac, b.Height()*frac
	return Bounds{MinX: b.MinX - dx, MaxX: b.MaxX + dx, MinY: b.MinY - dy, MaxY: b.MaxY + dy}
}

// Width is never zero.
func (b Bounds) Width() float64 {
	if w := b.MaxX - b.MinX; w > 0 {
		return w
	}
	return 1
}

// Height is never zero.
func (b Bounds) Height() float64 {
	if h := b.MaxY - b.MinY; h > 0 {
		return h
	}
	return 1
}
