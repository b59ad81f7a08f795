package rewards

import (
	"math"
	"reflect"
	"testing"

	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/equivalence"
)

func TestDefaultTables(t *testing.T) {
	tables := DefaultTables()

	tests := []struct {
		difficulty int
		wantXP     int
		wantCoins  int
	}{
		{1, 10, 5},
		{5, 50, 25},
		{10, 100, 50},
		{0, 10, 5},  // out of range: difficulty-1 defaults
		{11, 10, 5}, // out of range
		{-3, 10, 5}, // out of range
	}

	for _, tt := range tests {
		if got := tables.BaseXP(tt.difficulty); got != tt.wantXP {
			t.Errorf("BaseXP(%d) = %d, want %d", tt.difficulty, got, tt.wantXP)
		}
		if got := tables.BaseCoins(tt.difficulty); got != tt.wantCoins {
			t.Errorf("BaseCoins(%d) = %d, want %d", tt.difficulty, got, tt.wantCoins)
		}
	}
}

// The literal end-to-end scenario: difficulty 5, no hints, fast solve,
// streak 5, algebraic method. base 50 → hint ×1.0 → 50, +20% of base →
// 60, +50% streak on running → 90, +10% of base → 95.
func TestScoreEndToEndScenario(t *testing.T) {
	tables := DefaultTables()
	got := Score(tables, Input{
		Difficulty:       5,
		HintsUsed:        0,
		TimeSpentSeconds: 10, // expected 300s, bonus threshold 150s
		CorrectStreak:    5,
		Correct:          true,
		Method:           equivalence.MethodAlgebraic,
	})

	if got.XP.Total != 95 {
		t.Fatalf("XP total = %d, want 95 (breakdown %+v)", got.XP.Total, got.XP)
	}
	if got.XP.Base != 50 || got.XP.HintPenalty != 0 || got.XP.TimeBonus != 10 {
		t.Errorf("unexpected breakdown %+v", got.XP)
	}
	if got.XP.StreakBonus != 30 || got.XP.EquivalenceBonus != 5 {
		t.Errorf("unexpected bonuses %+v", got.XP)
	}
}

func TestScoreHintPenalties(t *testing.T) {
	tables := DefaultTables()

	tests := []struct {
		hints int
		want  int // XP total, difficulty 5, slow solve, no streak
	}{
		{0, 50},
		{1, 43}, // 50 * 0.85 = 42.5 → 43
		{2, 33}, // 50 * 0.65 = 32.5 → 33
		{3, 20}, // 50 * 0.40
		{7, 20}, // capped at 3
	}

	for _, tt := range tests {
		got := Score(tables, Input{
			Difficulty:       5,
			HintsUsed:        tt.hints,
			TimeSpentSeconds: 200, // past the bonus threshold
			Correct:          true,
			Method:           equivalence.MethodExact,
		})
		if got.XP.Total != tt.want {
			t.Errorf("hints=%d: XP total = %d, want %d", tt.hints, got.XP.Total, tt.want)
		}
	}
}

func TestScoreStreakTiers(t *testing.T) {
	tables := DefaultTables()

	tests := []struct {
		streak int
		want   int // difficulty 5, slow, no hints: base 50 + streak bonus
	}{
		{0, 50},
		{2, 50},
		{3, 63}, // +25% → 62.5 → 63
		{4, 63},
		{5, 75}, // +50%
		{12, 75},
	}

	for _, tt := range tests {
		got := Score(tables, Input{
			Difficulty:       5,
			TimeSpentSeconds: 200,
			CorrectStreak:    tt.streak,
			Correct:          true,
			Method:           equivalence.MethodNumeric,
		})
		if got.XP.Total != tt.want {
			t.Errorf("streak=%d: XP total = %d, want %d", tt.streak, got.XP.Total, tt.want)
		}
	}
}

func TestScoreSkipped(t *testing.T) {
	tables := DefaultTables()
	got := Score(tables, Input{
		Difficulty:    8,
		Skipped:       true,
		Correct:       false,
		CorrectStreak: 9,
		DailyStreak:   9,
	})

	if got.XP.Total != 0 || got.Coins.Total != 0 {
		t.Fatalf("skipped must earn nothing: %+v", got)
	}
	// Breakdown still shows what was forfeited.
	if got.XP.Base != 80 || got.XP.TimePenalty != 80 {
		t.Errorf("skipped breakdown = %+v, want base and full penalty", got.XP)
	}
	if got.Coins.Base != 40 {
		t.Errorf("skipped coin base = %d, want 40", got.Coins.Base)
	}
}

func TestScoreIncorrect(t *testing.T) {
	tables := DefaultTables()
	got := Score(tables, Input{Difficulty: 5, Correct: false})

	if got.XP.Total != 0 || got.Coins.Total != 0 {
		t.Errorf("incorrect must earn nothing: %+v", got)
	}
	if got.StreakFrozen {
		t.Error("no freeze without a freeze resource")
	}
}

func TestScoreStreakFreeze(t *testing.T) {
	tables := DefaultTables()

	tests := []struct {
		streak    int
		available bool
		want      bool
	}{
		{5, true, true},
		{9, true, true},
		{4, true, false},
		{5, false, false},
		{0, true, false},
	}

	for _, tt := range tests {
		got := Score(tables, Input{
			Difficulty:            5,
			Correct:               false,
			CorrectStreak:         tt.streak,
			StreakFreezeAvailable: tt.available,
		})
		if got.StreakFrozen != tt.want {
			t.Errorf("streak=%d available=%v: frozen = %v, want %v",
				tt.streak, tt.available, got.StreakFrozen, tt.want)
		}
	}
}

func TestScoreCoinMultipliers(t *testing.T) {
	tables := DefaultTables()

	// All three multipliers compose by straight multiplication:
	// 25 * 2.0 * 1.5 * 1.25 = 93.75 → 94.
	got := Score(tables, Input{
		Difficulty:         5,
		HintsUsed:          0,
		TimeSpentSeconds:   10,
		Correct:            true,
		Method:             equivalence.MethodExact,
		FirstQuestionToday: true,
		DailyStreak:        5,
	})

	if got.Coins.Total != 94 {
		t.Errorf("coin total = %d, want 94 (%+v)", got.Coins.Total, got.Coins)
	}
	wantBonuses := []CoinBonus{
		{Type: "first-question-of-day", Magnitude: 2.0},
		{Type: "daily-streak", Magnitude: 1.5},
		{Type: "perfect", Magnitude: 1.25},
	}
	if !reflect.DeepEqual(got.Coins.Bonuses, wantBonuses) {
		t.Errorf("bonuses = %+v, want %+v", got.Coins.Bonuses, wantBonuses)
	}
}

func TestScoreCoinNoBonuses(t *testing.T) {
	tables := DefaultTables()
	got := Score(tables, Input{
		Difficulty:       5,
		HintsUsed:        2, // not perfect
		TimeSpentSeconds: 400,
		Correct:          true,
		Method:           equivalence.MethodExact,
	})
	if got.Coins.Total != 25 || got.Coins.Multiplier != 1.0 || len(got.Coins.Bonuses) != 0 {
		t.Errorf("coins = %+v, want plain base", got.Coins)
	}
}

// Scoring is deterministic: identical inputs yield identical breakdowns.
func TestScoreIdempotence(t *testing.T) {
	tables := DefaultTables()
	in := Input{
		Difficulty:         7,
		HintsUsed:          1,
		TimeSpentSeconds:   33,
		CorrectStreak:      4,
		Correct:            true,
		Method:             equivalence.MethodNumeric,
		FirstQuestionToday: true,
		DailyStreak:        2,
	}

	a := Score(tables, in)
	b := Score(tables, in)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Score not idempotent:\n%+v\n%+v", a, b)
	}
}

// xp.total must equal the rounded sum of the components in applied order.
func TestScoreXPSumInvariant(t *testing.T) {
	tables := DefaultTables()

	inputs := []Input{
		{Difficulty: 1, Correct: true, Method: equivalence.MethodExact, TimeSpentSeconds: 500},
		{Difficulty: 3, Correct: true, Method: equivalence.MethodAlgebraic, HintsUsed: 1, TimeSpentSeconds: 10, CorrectStreak: 3},
		{Difficulty: 5, Correct: true, Method: equivalence.MethodNumeric, HintsUsed: 2, TimeSpentSeconds: 20, CorrectStreak: 5},
		{Difficulty: 10, Correct: true, Method: equivalence.MethodAlgebraic, HintsUsed: 3, TimeSpentSeconds: 1, CorrectStreak: 9},
	}

	for _, in := range inputs {
		got := Score(tables, in)
		sum := got.XP.Base - got.XP.HintPenalty - got.XP.TimePenalty +
			got.XP.TimeBonus + got.XP.StreakBonus + got.XP.EquivalenceBonus
		if got.XP.Total != int(math.Round(sum)) {
			t.Errorf("input %+v: total %d != round(component sum %v)", in, got.XP.Total, sum)
		}
	}
}
