package combat

import "testing"

func TestBraveryModifiersBands(t *testing.T) {
	tests := []struct {
		bravery int
		want    Modifiers
	}{
		{-5, Modifiers{-4, -6}}, // out-of-range falls into the lowest band
		{0, Modifiers{-4, -6}},
		{10, Modifiers{-4, -6}},
		{11, Modifiers{-2, -3}},
		{20, Modifiers{-2, -3}},
		{21, Modifiers{0, 0}},
		{35, Modifiers{0, 0}},
		{36, Modifiers{1, 3}},
		{65, Modifiers{1, 3}},
		{66, Modifiers{2, 6}},
		{80, Modifiers{2, 6}},
		{81, Modifiers{3, 10}},
		{90, Modifiers{3, 10}},
		{91, Modifiers{4, 15}},
		{98, Modifiers{4, 15}},
		{99, Modifiers{5, 15}},
		{100, Modifiers{5, 15}},
	}
	for _, tt := range tests {
		if got := BraveryModifiers(tt.bravery); got != tt.want {
			t.Errorf("BraveryModifiers(%d) = %+v, want %+v", tt.bravery, got, tt.want)
		}
	}
}

func TestExperienceModifierSteps(t *testing.T) {
	tests := []struct {
		fights int
		want   int
	}{
		{0, -10},
		{1, -5},
		{2, -5},
		{3, 0},
		{4, 0},
		{5, 2},
		{6, 2},
		{7, 6},
		{8, 6},
		{9, 8},
		{10, 8},
		{11, 10},
		{50, 10},
	}
	for _, tt := range tests {
		if got := ExperienceModifier(tt.fights); got != tt.want {
			t.Errorf("ExperienceModifier(%d) = %d, want %d", tt.fights, got, tt.want)
		}
	}
}

func TestExperienceModifierMonotonic(t *testing.T) {
	prev := ExperienceModifier(0)
	for n := 1; n <= 15; n++ {
		cur := ExperienceModifier(n)
		if cur < prev {
			t.Fatalf("ExperienceModifier decreased at %d: %d -> %d", n, prev, cur)
		}
		prev = cur
	}
}
