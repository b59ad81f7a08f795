// Package rewards converts an evaluation verdict plus question metadata
// into experience-point and coin awards with fully itemized breakdowns.
// Every total is the arithmetic combination of the listed components,
// never an independently set value.
package rewards

// Difficulty bounds for the base-reward tables.
const (
	MinDifficulty = 1
	MaxDifficulty = 10
)

// Tables holds the immutable base-reward lookup tables, built once at
// process start and passed by reference into the scoring functions.
type Tables struct {
	baseXP    map[int]int
	baseCoins map[int]int
}

// DefaultTables returns the standard base XP/coin tables keyed by
// integer difficulty 1–10. Out-of-range difficulties fall back to the
// difficulty-1 values.
func DefaultTables() *Tables {
	baseXP := make(map[int]int, MaxDifficulty)
	baseCoins := make(map[int]int, MaxDifficulty)
	for d := MinDifficulty; d <= MaxDifficulty; d++ {
		baseXP[d] = d * 10
		baseCoins[d] = d * 5
	}
	return &Tables{baseXP: baseXP, baseCoins: baseCoins}
}

// BaseXP returns the base experience points for a difficulty.
func (t *Tables) BaseXP(difficulty int) int {
	if xp, ok := t.baseXP[difficulty]; ok {
		return xp
	}
	return t.baseXP[MinDifficulty]
}

// BaseCoins returns the base coins for a difficulty.
func (t *Tables) BaseCoins(difficulty int) int {
	if c, ok := t.baseCoins[difficulty]; ok {
		return c
	}
	return t.baseCoins[MinDifficulty]
}

// hintMultipliers maps min(hintsUsed, 3) to the XP multiplier.
var hintMultipliers = map[int]float64{
	0: 1.0,
	1: 0.85,
	2: 0.65,
	3: 0.40,
}

const (
	// expectedSecondsPerDifficulty scales difficulty into the expected
	// solve time: expectedTime = difficulty * 60s.
	expectedSecondsPerDifficulty = 60.0

	// fastFraction of expected time under which the time bonus applies.
	fastFraction = 0.5

	// timeBonusRate is the flat bonus for a fast solve, as a share of base.
	timeBonusRate = 0.20

	// Streak bonus tiers: higher threshold wins, mutually exclusive.
	streakBonusHighMin  = 5
	streakBonusHighRate = 0.50
	streakBonusLowMin   = 3
	streakBonusLowRate  = 0.25

	// equivalenceBonusRate rewards algebraically equivalent answers —
	// conceptual manipulation over exact recall — as a share of base.
	equivalenceBonusRate = 0.10

	// streakFreezeMinStreak is the minimum pre-answer streak for a
	// streak freeze to engage on a wrong answer.
	streakFreezeMinStreak = 5

	// Coin multipliers, composed by straight multiplication.
	coinFirstQuestionMult = 2.0
	coinDailyStreakMult   = 1.5
	coinDailyStreakMin    = 5
	coinPerfectMult       = 1.25
)
