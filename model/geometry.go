package model

import "math"

// Point is a map position in engine coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) DistanceTo(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// positioned is satisfied by every snapshot entity with a map position.
type positioned interface {
	Pos() Point
}

// Closest returns the index of the item nearest to p, or -1 for an empty slice.
// Ties resolve to the earliest item so results are stable across calls.
func Closest[T positioned](items []T, p Point) int {
	best := -1
	bestDist := math.MaxFloat64
	for i, it := range items {
		if d := it.Pos().DistanceTo(p); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// CloserThan returns the items strictly within dist of p, preserving order.
func CloserThan[T positioned](items []T, dist float64, p Point) []T {
	var out []T
	for _, it := range items {
		if it.Pos().DistanceTo(p) < dist {
			out = append(out, it)
		}
	}
	return out
}
