package xp

import "testing"

func TestLevelTitle(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{0, "Novice"},
		{1, "Novice"},
		{4, "Novice"},
		{5, "Beginner"},
		{9, "Beginner"},
		{10, "Apprentice"},
		{19, "Apprentice"},
		{20, "Intermediate"},
		{30, "Proficient"},
		{40, "Advanced"},
		{50, "Expert"},
		{74, "Expert"},
		{75, "Master"},
		{99, "Master"},
		{100, "Grandmaster"},
		{250, "Grandmaster"},
	}

	for _, tt := range tests {
		got := LevelTitle(tt.level)
		if got != tt.want {
			t.Errorf("LevelTitle(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
