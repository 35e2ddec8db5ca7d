package model

import "testing"

func TestPointDistance(t *testing.T) {
	d := Point{X: 0, Y: 0}.DistanceTo(Point{X: 3, Y: 4})
	if d != 5 {
		t.Errorf("expected 5, got %v", d)
	}
}

func TestClosest(t *testing.T) {
	units := []Unit{
		{ID: 1, X: 10, Y: 10},
		{ID: 2, X: 2, Y: 2},
		{ID: 3, X: 2, Y: 2},
	}
	if i := Closest(units, Point{}); i != 1 {
		t.Errorf("expected index 1 (first of tied pair), got %d", i)
	}
	if i := Closest([]Unit(nil), Point{}); i != -1 {
		t.Errorf("expected -1 for empty slice, got %d", i)
	}
}

func TestCloserThan(t *testing.T) {
	geysers := []ResourceNode{
		{ID: 1, X: 5, Y: 0},
		{ID: 2, X: 15, Y: 0},
		{ID: 3, X: 14.9, Y: 0},
	}
	got := CloserThan(geysers, 15, Point{})
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("expected geysers 1 and 3 (strictly closer than 15), got %v", got)
	}
}
