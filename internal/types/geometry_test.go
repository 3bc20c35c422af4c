package types

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}
	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false},
		{5, 5, false},
		{1, 3, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestClampBox(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 5}
	tests := []struct {
		name string
		p    Point
		w, h int
		want Point
	}{
		{"inside", Point{2, 1}, 3, 1, Point{2, 1}},
		{"past right edge", Point{9, 1}, 3, 1, Point{7, 1}},
		{"past bottom edge", Point{0, 7}, 3, 2, Point{0, 3}},
		{"negative", Point{-4, -1}, 3, 1, Point{0, 0}},
		{"box wider than rect", Point{5, 0}, 20, 1, Point{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ClampBox(tt.p, tt.w, tt.h); got != tt.want {
				t.Errorf("ClampBox(%v, %d, %d) = %v, want %v", tt.p, tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestInsetAndEmpty(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 4, H: 4}.Inset(1)
	if r != (Rect{X: 1, Y: 1, W: 2, H: 2}) {
		t.Errorf("Inset = %+v", r)
	}
	if r.Empty() {
		t.Error("2x2 rect reported empty")
	}
	if !(Rect{W: 3}).Empty() {
		t.Error("zero-height rect not empty")
	}
}
