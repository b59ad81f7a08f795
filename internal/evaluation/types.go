// Package evaluation orchestrates answer evaluation: it validates the
// request, dispatches per question type, runs the equivalence resolver
// and misconception detector, converts the verdict into rewards, and
// assembles the final result record.
//
// Evaluation is purely computational: no I/O, no clock reads, no state
// shared across calls. Identical requests always produce identical
// results; any wall-clock inputs (time spent, first-question-of-day)
// are supplied by the caller.
package evaluation

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/equivalence"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/misconception"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/rewards"
)

// QuestionType selects the evaluation strategy.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeFreeForm       QuestionType = "free-form"
	TypeNumeric        QuestionType = "numeric"
	TypeStepByStep     QuestionType = "step-by-step"
)

// DefaultTolerance is the numeric comparison tolerance when the question
// metadata supplies none. Wider than the resolver's own default because
// question answers are typically rounded to two decimals.
const DefaultTolerance = 0.01

// RawAnswer is the learner's answer as it arrives on the wire: a single
// string, an ordered array of step strings, or an object mapping step
// index to string. It is owned by the request for its duration and never
// persisted by this package.
type RawAnswer struct {
	single string
	steps  []string
	isList bool
}

// NewAnswer wraps a single-answer string.
func NewAnswer(s string) RawAnswer {
	return RawAnswer{single: s}
}

// NewStepAnswers wraps an ordered list of per-step answers.
func NewStepAnswers(steps []string) RawAnswer {
	return RawAnswer{steps: steps, isList: true}
}

// Single returns the answer as one string (first step for lists).
func (a RawAnswer) Single() string {
	if a.isList {
		if len(a.steps) == 0 {
			return ""
		}
		return a.steps[0]
	}
	return a.single
}

// Steps returns the answer as an ordered list of step answers.
func (a RawAnswer) Steps() []string {
	if a.isList {
		return a.steps
	}
	if a.single == "" {
		return nil
	}
	return []string{a.single}
}

// UnmarshalJSON accepts a JSON string, array of strings, or object with
// numeric-string keys ({"0": "...", "1": "..."}).
func (a *RawAnswer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = NewAnswer(s)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*a = NewStepAnswers(list)
		return nil
	}

	var indexed map[string]string
	if err := json.Unmarshal(data, &indexed); err == nil {
		keys := make([]int, 0, len(indexed))
		for k := range indexed {
			i, err := strconv.Atoi(k)
			if err != nil {
				return fmt.Errorf("answer object key %q is not a step index", k)
			}
			keys = append(keys, i)
		}
		sort.Ints(keys)
		steps := make([]string, 0, len(keys))
		for _, i := range keys {
			steps = append(steps, indexed[strconv.Itoa(i)])
		}
		*a = NewStepAnswers(steps)
		return nil
	}

	return fmt.Errorf("answer must be a string, array of strings, or index-keyed object")
}

// MarshalJSON renders the answer back in its original shape.
func (a RawAnswer) MarshalJSON() ([]byte, error) {
	if a.isList {
		return json.Marshal(a.steps)
	}
	return json.Marshal(a.single)
}

// Request is one evaluation call. Optional fields carry documented
// defaults; required fields are validated, never silently defaulted.
type Request struct {
	QuestionType          QuestionType `json:"questionType"`
	Difficulty            int          `json:"difficulty"`
	ExpectedAnswer        string       `json:"expectedAnswer,omitempty"`
	Steps                 []string     `json:"steps,omitempty"`
	UserAnswer            RawAnswer    `json:"userAnswer"`
	HintsUsed             int          `json:"hintsUsed,omitempty"`
	TimeSpentSeconds      float64      `json:"timeSpentSeconds,omitempty"`
	Skipped               bool         `json:"skipped,omitempty"`
	CorrectStreak         int          `json:"correctStreak,omitempty"`
	StreakFreezeAvailable bool         `json:"streakFreezeAvailable,omitempty"`
	FirstQuestionToday    bool         `json:"isFirstQuestionToday,omitempty"`
	DailyStreak           int          `json:"dailyStreak,omitempty"`
	Tolerance             float64      `json:"tolerance,omitempty"`
}

// StepResult is the outcome of one step of a step-by-step question.
type StepResult struct {
	StepNumber     int                           `json:"stepNumber"` // 1-based
	Correct        bool                          `json:"correct"`
	Expected       string                        `json:"expected"`
	Actual         string                        `json:"actual"`
	Method         equivalence.Method            `json:"equivalenceMethod"`
	IsClose        bool                          `json:"isClose"`
	Misconceptions []misconception.Misconception `json:"misconceptions,omitempty"`
}

// Result is the complete evaluation record. Created once per request,
// immutable after construction, never persisted by this package.
type Result struct {
	ID             string                        `json:"id"`
	IsCorrect      bool                          `json:"isCorrect"`
	Feedback       string                        `json:"feedbackText"`
	CorrectAnswer  string                        `json:"correctAnswer"`
	XP             rewards.XPBreakdown           `json:"xp"`
	Coins          rewards.CoinBreakdown         `json:"coins"`
	Misconceptions []misconception.Misconception `json:"misconceptions"`
	Verdict        *equivalence.Verdict          `json:"equivalence,omitempty"`
	StepResults    []StepResult                  `json:"stepResults,omitempty"`
	StreakFrozen   bool                          `json:"streakFrozen,omitempty"`
}

// Method returns the overall equivalence method: the verdict's method for
// single-answer questions, or the step aggregate for step-by-step ones.
func (r *Result) Method() equivalence.Method {
	if r.Verdict != nil {
		return r.Verdict.Method
	}
	if !r.IsCorrect {
		return equivalence.MethodNone
	}
	for _, s := range r.StepResults {
		if s.Method == equivalence.MethodAlgebraic {
			return equivalence.MethodAlgebraic
		}
	}
	return equivalence.MethodExact
}
