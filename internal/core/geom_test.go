package core

import "testing"

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
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestFitSquare(t *testing.T) {
	tests := []struct {
		name           string
		w, h, reserved int
		expected       int
	}{
		{"wide terminal is height bound", 200, 41, 1, 40},
		{"narrow terminal is width bound", 40, 50, 1, 20},
		{"odd width keeps the last glyph", 79, 100, 0, 40},
		{"tiny terminal never collapses", 1, 1, 1, 1},
		{"negative space never collapses", 0, 0, 3, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FitSquare(tc.w, tc.h, tc.reserved); got != tc.expected {
				t.Errorf("FitSquare(%d, %d, %d) = %d, expected %d", tc.w, tc.h, tc.reserved, got, tc.expected)
			}
		})
	}
}

func TestGrayLevel(t *testing.T) {
	if got := GrayLevel(0, 12); got != grayFirst+grayFloor {
		t.Errorf("GrayLevel(0, 12) = %d, expected %d", got, grayFirst+grayFloor)
	}
	if got := GrayLevel(11, 12); got != grayLast {
		t.Errorf("GrayLevel(11, 12) = %d, expected %d", got, grayLast)
	}
	if got := GrayLevel(99, 12); got != grayLast {
		t.Errorf("GrayLevel should clamp high indices, got %d", got)
	}
	if got := GrayLevel(-3, 12); got != grayFirst+grayFloor {
		t.Errorf("GrayLevel should clamp low indices, got %d", got)
	}

	prev := GrayLevel(0, 12)
	for i := 1; i < 12; i++ {
		cur := GrayLevel(i, 12)
		if cur < prev {
			t.Errorf("GrayLevel not monotonic at %d: %d < %d", i, cur, prev)
		}
		prev = cur
	}
}

func TestWithTickRate(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.WithTickRate(0).TickRate; got != MinTickRate {
		t.Errorf("WithTickRate(0) = %d, expected %d", got, MinTickRate)
	}
	if got := cfg.WithTickRate(1000).TickRate; got != MaxTickRate {
		t.Errorf("WithTickRate(1000) = %d, expected %d", got, MaxTickRate)
	}
	if cfg.TickRate != 30 {
		t.Errorf("WithTickRate should not modify the receiver, got %d", cfg.TickRate)
	}
}

func TestActionString(t *testing.T) {
	if ActionShade.String() != "Shade" {
		t.Errorf("ActionShade.String() = %q", ActionShade.String())
	}
	if Action(999).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
