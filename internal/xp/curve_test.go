package xp

import "testing"

func TestRequiredXP(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{0, 0},
		{1, 0},
		{2, 282}, // floor(100 * 2^1.5)
		{3, 519}, // floor(100 * 3^1.5)
		{4, 800},
		{5, 1118},
		{10, 3162},
	}

	for _, tt := range tests {
		got := RequiredXP(tt.level)
		if got != tt.want {
			t.Errorf("RequiredXP(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestLevelFromXP(t *testing.T) {
	tests := []struct {
		totalXP int
		want    int
	}{
		{-50, 1},
		{0, 1},
		{1, 1},
		{281, 1},
		{282, 2},
		{518, 2},
		{519, 3},
		{800, 4},
		{3162, 10},
	}

	for _, tt := range tests {
		got := LevelFromXP(tt.totalXP)
		if got != tt.want {
			t.Errorf("LevelFromXP(%d) = %d, want %d", tt.totalXP, got, tt.want)
		}
	}
}

// LevelFromXP must be the exact left-inverse of RequiredXP at every level
// boundary.
func TestLevelFromXP_InvertsRequiredXP(t *testing.T) {
	for level := 1; level <= 500; level++ {
		got := LevelFromXP(RequiredXP(level))
		if got != level {
			t.Errorf("LevelFromXP(RequiredXP(%d)) = %d, want %d", level, got, level)
		}
	}
}

func TestLevelFromXP_JustBelowBoundary(t *testing.T) {
	for level := 2; level <= 200; level++ {
		got := LevelFromXP(RequiredXP(level) - 1)
		if got != level-1 {
			t.Errorf("LevelFromXP(RequiredXP(%d)-1) = %d, want %d", level, got, level-1)
		}
	}
}

func TestLevelProgress_Bounds(t *testing.T) {
	for totalXP := 0; totalXP <= 20000; totalXP += 7 {
		p := LevelProgress(totalXP)
		if p < 0 || p > 1 {
			t.Fatalf("LevelProgress(%d) = %f, want within [0,1]", totalXP, p)
		}
	}
}

func TestLevelProgress_AtBoundary(t *testing.T) {
	// Exactly at a level threshold progress restarts at 0.
	if p := LevelProgress(RequiredXP(3)); p != 0 {
		t.Errorf("LevelProgress(RequiredXP(3)) = %f, want 0", p)
	}
}

func TestXPToNextLevel(t *testing.T) {
	tests := []struct {
		totalXP int
		want    int
	}{
		{0, 282},
		{100, 182},
		{282, 237}, // level 2, next threshold 519
		{-10, 282},
	}

	for _, tt := range tests {
		got := XPToNextLevel(tt.totalXP)
		if got != tt.want {
			t.Errorf("XPToNextLevel(%d) = %d, want %d", tt.totalXP, got, tt.want)
		}
	}
}

func TestXPToNextLevel_NonNegative(t *testing.T) {
	for totalXP := 0; totalXP <= 20000; totalXP += 11 {
		if got := XPToNextLevel(totalXP); got < 0 {
			t.Fatalf("XPToNextLevel(%d) = %d, want >= 0", totalXP, got)
		}
	}
}
