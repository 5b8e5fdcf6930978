package xp

// levelTitles maps minimum level to title, ordered ascending.
var levelTitles = []struct {
	minLevel int
	title    string
}{
	{1, "Novice"},
	{5, "Beginner"},
	{10, "Apprentice"},
	{20, "Intermediate"},
	{30, "Proficient"},
	{40, "Advanced"},
	{50, "Expert"},
	{75, "Master"},
	{100, "Grandmaster"},
}

// LevelTitle returns the highest title whose threshold is at or below level.
func LevelTitle(level int) string {
	title := levelTitles[0].title
	for _, t := range levelTitles {
		if level >= t.minLevel {
			title = t.title
		}
	}
	return title
}
