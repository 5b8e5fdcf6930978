package xp

import (
	"reflect"
	"testing"
)

func TestApplyXP(t *testing.T) {
	p := NewProfile()

	p, res := ApplyXP(p, 100)
	if p.TotalXP != 100 {
		t.Errorf("TotalXP = %d, want 100", p.TotalXP)
	}
	if res.LeveledUp {
		t.Error("expected no level-up at 100 XP")
	}

	p, res = ApplyXP(p, 200)
	if p.TotalXP != 300 {
		t.Errorf("TotalXP = %d, want 300", p.TotalXP)
	}
	if !res.LeveledUp || res.NewLevel != 2 {
		t.Errorf("result = %+v, want level-up to 2", res)
	}
}

// After any ApplyXP the level cache must agree with the curve.
func TestApplyXP_LevelCacheInvariant(t *testing.T) {
	p := NewProfile()
	for _, amount := range []int{0, 1, 37, 74, 250, 1000, 5000} {
		p, _ = ApplyXP(p, amount)
		if p.Level != LevelFromXP(p.TotalXP) {
			t.Fatalf("after +%d: Level = %d, want %d", amount, p.Level, LevelFromXP(p.TotalXP))
		}
	}
}

func TestApplyXP_Monotonic(t *testing.T) {
	p := Profile{TotalXP: 500, Level: LevelFromXP(500)}
	next, _ := ApplyXP(p, 0)
	if next.TotalXP < p.TotalXP {
		t.Errorf("TotalXP decreased: %d -> %d", p.TotalXP, next.TotalXP)
	}
}

func TestApplyXP_DoesNotMutateInput(t *testing.T) {
	p := Profile{TotalXP: 100, Level: 1}
	ApplyXP(p, 500)
	if p.TotalXP != 100 || p.Level != 1 {
		t.Errorf("input profile mutated: %+v", p)
	}
}

func TestMarkSets_AppendOnlyAndIdempotent(t *testing.T) {
	p := NewProfile()
	p = MarkFirstProblem(p, "fractions")
	p = MarkFirstProblem(p, "algebra")
	p = MarkFirstProblem(p, "algebra")

	want := []string{"algebra", "fractions"}
	if !reflect.DeepEqual(p.FirstProblemTopics, want) {
		t.Errorf("FirstProblemTopics = %v, want %v", p.FirstProblemTopics, want)
	}
	if !p.HasFirstProblemIn("algebra") || p.HasFirstProblemIn("geometry") {
		t.Error("membership checks wrong")
	}
}

func TestMerge_MaxAndUnion(t *testing.T) {
	local := Profile{
		TotalXP:           800,
		Level:             LevelFromXP(800),
		MasteredTopics:    []string{"algebra"},
		MasteredSubtopics: []string{"add-2digit"},
	}
	remote := Profile{
		TotalXP:            519,
		Level:              LevelFromXP(519),
		MasteredTopics:     []string{"geometry"},
		FirstProblemTopics: []string{"algebra"},
	}

	got := Merge(local, remote)
	if got.TotalXP != 800 {
		t.Errorf("TotalXP = %d, want 800", got.TotalXP)
	}
	if got.Level != LevelFromXP(800) {
		t.Errorf("Level = %d, want recomputed %d", got.Level, LevelFromXP(800))
	}
	wantTopics := []string{"algebra", "geometry"}
	if !reflect.DeepEqual(got.MasteredTopics, wantTopics) {
		t.Errorf("MasteredTopics = %v, want %v", got.MasteredTopics, wantTopics)
	}
	if !got.HasMasteredSubtopic("add-2digit") || !got.HasFirstProblemIn("algebra") {
		t.Error("merge lost an earned award")
	}
}

func TestMerge_Symmetric(t *testing.T) {
	a := Profile{TotalXP: 300, Level: 2, MasteredTopics: []string{"x"}}
	b := Profile{TotalXP: 900, Level: 4, MasteredTopics: []string{"y"}, MasteredSubtopics: []string{"z"}}

	ab := Merge(a, b)
	ba := Merge(b, a)
	if !reflect.DeepEqual(ab, ba) {
		t.Errorf("Merge not symmetric:\n a,b: %+v\n b,a: %+v", ab, ba)
	}
}

func TestMerge_Idempotent(t *testing.T) {
	x := Profile{
		TotalXP:            1234,
		Level:              LevelFromXP(1234),
		MasteredTopics:     []string{"algebra", "geometry"},
		MasteredSubtopics:  []string{"add-2digit"},
		FirstProblemTopics: []string{"algebra"},
	}
	if got := Merge(x, x); !reflect.DeepEqual(got, x) {
		t.Errorf("Merge(x, x) = %+v, want %+v", got, x)
	}
}
