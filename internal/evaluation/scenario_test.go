package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/equivalence"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/rewards"
)

// Walks a short practice run end to end: a fast algebraic answer on a
// streak, then a sign error that burns the streak freeze.
func TestPracticeRunScenario(t *testing.T) {
	tables := rewards.DefaultTables()

	// Question 1: "simplify 3x - x" answered as "x + x", difficulty 4,
	// fast, on a 6-streak, first question of the day.
	res, err := Evaluate(tables, &Request{
		QuestionType:       TypeFreeForm,
		Difficulty:         4,
		ExpectedAnswer:     "2x",
		UserAnswer:         NewAnswer("x + x"),
		TimeSpentSeconds:   60, // under half of 4*60s
		CorrectStreak:      6,
		FirstQuestionToday: true,
		DailyStreak:        2,
	})
	require.NoError(t, err)

	require.True(t, res.IsCorrect)
	assert.Equal(t, equivalence.MethodAlgebraic, res.Method())
	assert.NotEmpty(t, res.ID)
	assert.Empty(t, res.Misconceptions)

	// base 40, +20% of base for speed, +50% of the running 48 for the
	// streak, +10% of base for the algebraic match.
	assert.Equal(t, 40.0, res.XP.Base)
	assert.Equal(t, 8.0, res.XP.TimeBonus)
	assert.Equal(t, 24.0, res.XP.StreakBonus)
	assert.Equal(t, 4.0, res.XP.EquivalenceBonus)
	assert.Equal(t, 76, res.XP.Total)

	// Coins: base 20, first-question ×2, hint-free fast solve ×1.25.
	assert.Equal(t, 20, res.Coins.Base)
	require.Len(t, res.Coins.Bonuses, 2)
	assert.Equal(t, "first-question-of-day", res.Coins.Bonuses[0].Type)
	assert.Equal(t, "perfect", res.Coins.Bonuses[1].Type)
	assert.Equal(t, 50, res.Coins.Total)
	assert.False(t, res.StreakFrozen)

	// Question 2: sign error on the now 7-long streak, freeze available.
	res, err = Evaluate(tables, &Request{
		QuestionType:          TypeNumeric,
		Difficulty:            4,
		ExpectedAnswer:        "12",
		UserAnswer:            NewAnswer("-12"),
		TimeSpentSeconds:      200,
		CorrectStreak:         7,
		StreakFreezeAvailable: true,
		DailyStreak:           2,
	})
	require.NoError(t, err)

	require.False(t, res.IsCorrect)
	assert.Equal(t, equivalence.MethodNone, res.Method())
	assert.Zero(t, res.XP.Total)
	assert.Zero(t, res.Coins.Total)
	assert.True(t, res.StreakFrozen)

	require.NotEmpty(t, res.Misconceptions)
	assert.Equal(t, "sign-error", res.Misconceptions[0].ID)
	assert.Contains(t, res.Feedback, "12")
}
