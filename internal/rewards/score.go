package rewards

import (
	"math"

	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/equivalence"
)

// Input carries everything the scoring engine needs. All values are
// supplied by the caller; scoring itself reads no clock and rolls no
// dice, so identical inputs always produce identical breakdowns.
type Input struct {
	Difficulty            int
	HintsUsed             int
	TimeSpentSeconds      float64
	CorrectStreak         int // pre-answer consecutive-correct count
	Correct               bool
	Skipped               bool
	Method                equivalence.Method
	FirstQuestionToday    bool
	DailyStreak           int
	StreakFreezeAvailable bool
}

// XPBreakdown itemizes an experience-point award. Component fields keep
// full precision; Total is the rounded sum of the components as applied
// in order, never an independently set value.
type XPBreakdown struct {
	Base             float64 `json:"base"`
	HintPenalty      float64 `json:"hintPenalty"` // subtracted
	TimePenalty      float64 `json:"timePenalty"` // subtracted; nonzero only for skips
	TimeBonus        float64 `json:"timeBonus"`
	StreakBonus      float64 `json:"streakBonus"`
	EquivalenceBonus float64 `json:"equivalenceBonus"`
	Total            int     `json:"total"`
}

// CoinBonus names one applied coin multiplier.
type CoinBonus struct {
	Type      string  `json:"type"`
	Magnitude float64 `json:"magnitude"`
}

// CoinBreakdown itemizes a coin award. Total = round(Base * Multiplier),
// where Multiplier is the straight product of the listed bonuses.
type CoinBreakdown struct {
	Base       int         `json:"base"`
	Multiplier float64     `json:"multiplier"`
	Bonuses    []CoinBonus `json:"bonuses"`
	Total      int         `json:"total"`
}

// Result is the combined reward outcome.
type Result struct {
	XP           XPBreakdown
	Coins        CoinBreakdown
	StreakFrozen bool
}

// Score computes the XP and coin awards for one evaluated question.
//
// Skipped questions force both totals to zero; the breakdown still
// reports the base and a full offsetting penalty so the audit trail
// shows what was forfeited. Incorrect answers earn nothing but may set
// StreakFrozen when a freeze is available and the streak was worth
// protecting. Correct answers accumulate in the fixed order: hint
// penalty, time bonus, streak bonus, equivalence bonus.
func Score(tables *Tables, in Input) Result {
	base := float64(tables.BaseXP(in.Difficulty))
	coinBase := tables.BaseCoins(in.Difficulty)

	if in.Skipped {
		return Result{
			XP: XPBreakdown{
				Base:        base,
				TimePenalty: base, // full forfeit, recorded for audit
				Total:       0,
			},
			Coins: CoinBreakdown{Base: coinBase, Multiplier: 0, Total: 0},
		}
	}

	if !in.Correct {
		return Result{
			XP:           XPBreakdown{Total: 0},
			Coins:        CoinBreakdown{Base: 0, Multiplier: 0, Total: 0},
			StreakFrozen: in.StreakFreezeAvailable && in.CorrectStreak >= streakFreezeMinStreak,
		}
	}

	xp := scoreXP(base, in)
	coins := scoreCoins(coinBase, in)
	return Result{XP: xp, Coins: coins}
}

func scoreXP(base float64, in Input) XPBreakdown {
	bd := XPBreakdown{Base: base}

	// 1. Hint penalty multiplier, capped at 3 hints.
	hints := in.HintsUsed
	if hints > 3 {
		hints = 3
	}
	if hints < 0 {
		hints = 0
	}
	mult := hintMultipliers[hints]
	running := base * mult
	bd.HintPenalty = base - running

	// 2. Fast solve: flat +20% of base.
	if isFast(in) {
		bd.TimeBonus = base * timeBonusRate
		running += bd.TimeBonus
	}

	// 3. Streak bonus on the running total; higher tier wins.
	switch {
	case in.CorrectStreak >= streakBonusHighMin:
		bd.StreakBonus = running * streakBonusHighRate
	case in.CorrectStreak >= streakBonusLowMin:
		bd.StreakBonus = running * streakBonusLowRate
	}
	running += bd.StreakBonus

	// 4. Algebraic-equivalence bonus: +10% of base.
	if in.Method == equivalence.MethodAlgebraic {
		bd.EquivalenceBonus = base * equivalenceBonusRate
		running += bd.EquivalenceBonus
	}

	// 5. Total is the rounded running sum — components retain full
	// precision so the sum invariant holds exactly.
	bd.Total = int(math.Round(running))
	return bd
}

func scoreCoins(base int, in Input) CoinBreakdown {
	bd := CoinBreakdown{Base: base, Multiplier: 1.0}

	apply := func(name string, m float64) {
		bd.Multiplier *= m
		bd.Bonuses = append(bd.Bonuses, CoinBonus{Type: name, Magnitude: m})
	}

	if in.FirstQuestionToday {
		apply("first-question-of-day", coinFirstQuestionMult)
	}
	if in.DailyStreak >= coinDailyStreakMin {
		apply("daily-streak", coinDailyStreakMult)
	}
	if in.HintsUsed == 0 && isFast(in) {
		apply("perfect", coinPerfectMult)
	}

	bd.Total = int(math.Round(float64(base) * bd.Multiplier))
	return bd
}

// isFast reports whether the solve beat half the expected time
// (expectedTime = difficulty * 60s, difficulty clamped to table range).
func isFast(in Input) bool {
	d := in.Difficulty
	if d < MinDifficulty {
		d = MinDifficulty
	}
	if d > MaxDifficulty {
		d = MaxDifficulty
	}
	expected := float64(d) * expectedSecondsPerDifficulty
	return in.TimeSpentSeconds < expected*fastFraction
}
