package types

import "testing"

func TestDirectionVectors(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Point
	}{
		{DirUp, Point{0, -1}},
		{DirRight, Point{1, 0}},
		{DirDown, Point{0, 1}},
		{DirLeft, Point{-1, 0}},
	}
	for _, tt := range tests {
		if got := tt.dir.Vector(); got != tt.want {
			t.Errorf("%v.Vector() = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		dir, want Direction
	}{
		{DirUp, DirDown},
		{DirDown, DirUp},
		{DirLeft, DirRight},
		{DirRight, DirLeft},
	}
	for _, tt := range tests {
		if got := tt.dir.Opposite(); got != tt.want {
			t.Errorf("%v.Opposite() = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestGridContains(t *testing.T) {
	grid := Grid{Width: 10, Height: 8}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{9, 7}, true},
		{Point{10, 7}, false},
		{Point{9, 8}, false},
		{Point{-1, 0}, false},
		{Point{0, -1}, false},
	}
	for _, tt := range tests {
		if got := grid.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestGridWrap(t *testing.T) {
	grid := Grid{Width: 10, Height: 8}
	tests := []struct {
		p, want Point
	}{
		{Point{10, 3}, Point{0, 3}},
		{Point{-1, 3}, Point{9, 3}},
		{Point{4, 8}, Point{4, 0}},
		{Point{4, -1}, Point{4, 7}},
		{Point{4, 3}, Point{4, 3}},
	}
	for _, tt := range tests {
		if got := grid.Wrap(tt.p); got != tt.want {
			t.Errorf("Wrap(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
