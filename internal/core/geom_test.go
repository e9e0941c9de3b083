package core

import "testing"

func TestCircleIntersectsRect(t *testing.T) {
	r := RectF{X: 10, Y: 10, W: 8, H: 2}

	tests := []struct {
		name     string
		center   Vec2
		radius   float64
		expected bool
	}{
		{"center inside", Vec2{X: 12, Y: 11}, 0.5, true},
		{"touching top edge from above", Vec2{X: 14, Y: 9.6}, 0.5, true},
		{"just above top edge", Vec2{X: 14, Y: 9.4}, 0.5, false},
		{"exactly radius away (no overlap)", Vec2{X: 14, Y: 9.5}, 0.5, false},
		{"left of rect", Vec2{X: 8, Y: 11}, 1, false},
		{"near corner inside radius", Vec2{X: 9.5, Y: 9.5}, 1, true},
		{"near corner outside radius", Vec2{X: 9.2, Y: 9.2}, 1, false},
		{"far below", Vec2{X: 14, Y: 30}, 3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := CircleIntersectsRect(tc.center, tc.radius, r)
			if result != tc.expected {
				t.Errorf("CircleIntersectsRect(%v, %v) = %v, expected %v", tc.center, tc.radius, result, tc.expected)
			}
		})
	}
}

func TestRectFEdges(t *testing.T) {
	r := RectF{X: 5, Y: 10, W: 20, H: 15}
	if r.Right() != 25 {
		t.Errorf("Right() = %f, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %f, expected 25", r.Bottom())
	}
	c := r.Center()
	if c.X != 15 || c.Y != 17.5 {
		t.Errorf("Center() = %v, expected (15, 17.5)", c)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)
	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{X: 1, Y: 2}.Add(Vec2{X: 3, Y: 4}).Scale(0.5)
	if v.X != 2 || v.Y != 3 {
		t.Errorf("Add/Scale = %v, expected (2, 3)", v)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return 5")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return 10")
	}
}
