package evaluation

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/equivalence"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/misconception"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/rewards"
)

// Evaluate runs one complete evaluation: validation, per-type dispatch,
// reward computation, and result assembly. The returned error is always
// a *RequestError; interpretation failures inside the tiers degrade to
// "not equivalent" rather than erroring (see the package comment).
func Evaluate(tables *rewards.Tables, req *Request) (*Result, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	res := &Result{
		ID:            uuid.New().String(),
		CorrectAnswer: correctAnswerText(req),
	}

	if req.Skipped {
		reward := rewards.Score(tables, rewardInput(req, false, equivalence.MethodNone))
		res.XP = reward.XP
		res.Coins = reward.Coins
		res.Feedback = skippedFeedback(res.CorrectAnswer)
		return res, nil
	}

	var method equivalence.Method
	switch req.QuestionType {
	case TypeMultipleChoice:
		method = evaluateMultipleChoice(req, res)
	case TypeStepByStep:
		method = evaluateSteps(req, res)
	default: // free-form, numeric
		method = evaluateSingle(req, res)
	}

	reward := rewards.Score(tables, rewardInput(req, res.IsCorrect, method))
	res.XP = reward.XP
	res.Coins = reward.Coins
	res.StreakFrozen = reward.StreakFrozen
	res.Feedback = buildFeedback(res)
	return res, nil
}

// evaluateMultipleChoice compares option identifiers; no numeric
// evaluation and no misconception detection — option ids are not math.
func evaluateMultipleChoice(req *Request, res *Result) equivalence.Method {
	match := strings.EqualFold(
		strings.TrimSpace(req.UserAnswer.Single()),
		strings.TrimSpace(req.ExpectedAnswer),
	)
	v := &equivalence.Verdict{Method: equivalence.MethodNone}
	if match {
		v = &equivalence.Verdict{Equivalent: true, Method: equivalence.MethodExact}
	}
	res.IsCorrect = match
	res.Verdict = v
	return v.Method
}

// evaluateSingle runs the tiered resolver on a free-form or numeric
// answer and, when wrong, the misconception detector.
func evaluateSingle(req *Request, res *Result) equivalence.Method {
	v := equivalence.Check(req.UserAnswer.Single(), req.ExpectedAnswer, tolerance(req))
	res.IsCorrect = v.Equivalent
	res.Verdict = &v
	if !v.Equivalent {
		res.Misconceptions = misconception.Detect(req.UserAnswer.Single(), req.ExpectedAnswer)
	}
	return v.Method
}

// evaluateSteps resolves each step independently. The question is
// correct iff every step is; misconceptions are concatenated across all
// incorrect steps (the feedback builder deduplicates by id, scoring
// does not).
func evaluateSteps(req *Request, res *Result) equivalence.Method {
	userSteps := req.UserAnswer.Steps()
	tol := tolerance(req)

	allCorrect := true
	sawAlgebraic := false
	res.StepResults = make([]StepResult, 0, len(req.Steps))

	for i, expected := range req.Steps {
		actual := ""
		if i < len(userSteps) {
			actual = userSteps[i]
		}

		v := equivalence.Check(actual, expected, tol)
		step := StepResult{
			StepNumber: i + 1,
			Correct:    v.Equivalent,
			Expected:   expected,
			Actual:     actual,
			Method:     v.Method,
			IsClose:    v.IsClose,
		}
		if !v.Equivalent {
			allCorrect = false
			step.Misconceptions = misconception.Detect(actual, expected)
			res.Misconceptions = append(res.Misconceptions, step.Misconceptions...)
		}
		if v.Method == equivalence.MethodAlgebraic {
			sawAlgebraic = true
		}
		res.StepResults = append(res.StepResults, step)
	}

	res.IsCorrect = allCorrect

	// The equivalence bonus rewards algebraic manipulation anywhere in
	// the solution, so one algebraic step marks the whole question.
	switch {
	case !allCorrect:
		return equivalence.MethodNone
	case sawAlgebraic:
		return equivalence.MethodAlgebraic
	default:
		return equivalence.MethodExact
	}
}

func tolerance(req *Request) float64 {
	if req.Tolerance > 0 {
		return req.Tolerance
	}
	return DefaultTolerance
}

func rewardInput(req *Request, correct bool, method equivalence.Method) rewards.Input {
	return rewards.Input{
		Difficulty:            req.Difficulty,
		HintsUsed:             req.HintsUsed,
		TimeSpentSeconds:      req.TimeSpentSeconds,
		CorrectStreak:         req.CorrectStreak,
		Correct:               correct,
		Skipped:               req.Skipped,
		Method:                method,
		FirstQuestionToday:    req.FirstQuestionToday,
		DailyStreak:           req.DailyStreak,
		StreakFreezeAvailable: req.StreakFreezeAvailable,
	}
}

func correctAnswerText(req *Request) string {
	if req.QuestionType == TypeStepByStep {
		return strings.Join(req.Steps, " → ")
	}
	return req.ExpectedAnswer
}
