package evaluation

import (
	"errors"
	"strings"
	"testing"

	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/equivalence"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/rewards"
)

func testTables() *rewards.Tables {
	return rewards.DefaultTables()
}

func TestEvaluateValidation(t *testing.T) {
	tests := []struct {
		name  string
		req   Request
		field string
	}{
		{"missing type", Request{}, "questionType"},
		{"unknown type", Request{QuestionType: "essay"}, "questionType"},
		{"missing expected", Request{QuestionType: TypeNumeric}, "expectedAnswer"},
		{"missing steps", Request{QuestionType: TypeStepByStep}, "steps"},
		{"empty step", Request{QuestionType: TypeStepByStep, Steps: []string{"4", ""}}, "steps"},
		{"negative tolerance", Request{QuestionType: TypeNumeric, ExpectedAnswer: "4", Tolerance: -1}, "tolerance"},
		{"tolerance too large", Request{QuestionType: TypeNumeric, ExpectedAnswer: "4", Tolerance: 2}, "tolerance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(testTables(), &tt.req)
			var reqErr *RequestError
			if !errors.As(err, &reqErr) {
				t.Fatalf("err = %v, want *RequestError", err)
			}
			if reqErr.Field != tt.field {
				t.Errorf("field = %q, want %q", reqErr.Field, tt.field)
			}
		})
	}
}

func TestEvaluateMultipleChoice(t *testing.T) {
	req := &Request{
		QuestionType:   TypeMultipleChoice,
		Difficulty:     3,
		ExpectedAnswer: "B",
		UserAnswer:     NewAnswer(" b "),
	}
	res, err := Evaluate(testTables(), req)
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsCorrect || res.Verdict.Method != equivalence.MethodExact {
		t.Errorf("result = %+v, want correct exact", res)
	}
	if len(res.Misconceptions) != 0 {
		t.Errorf("multiple choice must not run misconception detection: %v", res.Misconceptions)
	}

	req.UserAnswer = NewAnswer("C")
	res, err = Evaluate(testTables(), req)
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect || res.XP.Total != 0 {
		t.Errorf("wrong option must not score: %+v", res)
	}
	if len(res.Misconceptions) != 0 {
		t.Errorf("no misconceptions for option mismatches: %v", res.Misconceptions)
	}
}

func TestEvaluateFreeFormNumericEquivalence(t *testing.T) {
	res, err := Evaluate(testTables(), &Request{
		QuestionType:   TypeFreeForm,
		Difficulty:     4,
		ExpectedAnswer: "0.5",
		UserAnswer:     NewAnswer("1/2"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsCorrect || res.Verdict.Method != equivalence.MethodNumeric {
		t.Errorf("result = %+v, want Numeric equivalent", res.Verdict)
	}
	if res.XP.Total == 0 {
		t.Error("correct answer must earn XP")
	}
}

func TestEvaluateAlgebraicEarnsBonus(t *testing.T) {
	res, err := Evaluate(testTables(), &Request{
		QuestionType:     TypeFreeForm,
		Difficulty:       5,
		ExpectedAnswer:   "x+1",
		UserAnswer:       NewAnswer("1+x"),
		TimeSpentSeconds: 400,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsCorrect || res.Verdict.Method != equivalence.MethodAlgebraic {
		t.Fatalf("verdict = %+v, want Algebraic", res.Verdict)
	}
	if res.XP.EquivalenceBonus != 5 { // 10% of base 50
		t.Errorf("equivalence bonus = %v, want 5", res.XP.EquivalenceBonus)
	}
}

func TestEvaluateWrongAnswerDetectsMisconceptions(t *testing.T) {
	res, err := Evaluate(testTables(), &Request{
		QuestionType:   TypeNumeric,
		Difficulty:     3,
		ExpectedAnswer: "4",
		UserAnswer:     NewAnswer("-4"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect {
		t.Fatal("-4 vs 4 must be incorrect")
	}
	found := false
	for _, m := range res.Misconceptions {
		if m.ID == "sign-error" {
			found = true
		}
	}
	if !found {
		t.Errorf("misconceptions = %v, want sign-error", res.Misconceptions)
	}
	if !strings.Contains(res.Feedback, "sign") {
		t.Errorf("feedback %q should mention the sign error", res.Feedback)
	}
}

func TestEvaluateNearMissFeedback(t *testing.T) {
	res, err := Evaluate(testTables(), &Request{
		QuestionType:   TypeNumeric,
		Difficulty:     2,
		ExpectedAnswer: "3.14",
		UserAnswer:     NewAnswer("3.2"),
		Tolerance:      0.01,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect {
		t.Fatal("near miss must not pass")
	}
	if !res.Verdict.IsClose {
		t.Fatalf("verdict = %+v, want IsClose", res.Verdict)
	}
	if !strings.Contains(res.Feedback, "close") {
		t.Errorf("feedback %q should acknowledge the near miss", res.Feedback)
	}
}

func TestEvaluateStepByStep(t *testing.T) {
	// Three steps, exactly one wrong: the question is incorrect and
	// exactly one StepResult reports correct=false.
	res, err := Evaluate(testTables(), &Request{
		QuestionType: TypeStepByStep,
		Difficulty:   5,
		Steps:        []string{"2x", "2x+4", "x=3"},
		UserAnswer:   NewStepAnswers([]string{"2x", "2x+5", "x=3"}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect {
		t.Fatal("one wrong step must fail the question")
	}
	wrong := 0
	for _, s := range res.StepResults {
		if !s.Correct {
			wrong++
			if s.StepNumber != 2 {
				t.Errorf("wrong step number = %d, want 2", s.StepNumber)
			}
		}
	}
	if wrong != 1 {
		t.Errorf("wrong step count = %d, want 1", wrong)
	}
	if res.XP.Total != 0 {
		t.Errorf("incorrect question earned XP: %+v", res.XP)
	}
}

func TestEvaluateStepByStepAllCorrect(t *testing.T) {
	res, err := Evaluate(testTables(), &Request{
		QuestionType: TypeStepByStep,
		Difficulty:   5,
		Steps:        []string{"2x+4", "x=3"},
		UserAnswer:   NewStepAnswers([]string{"4+2x", "x=3"}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsCorrect {
		t.Fatalf("result = %+v, want correct", res)
	}
	// "4+2x" resolves algebraically, which tags the whole question.
	if res.XP.EquivalenceBonus == 0 {
		t.Errorf("expected algebraic bonus, got %+v", res.XP)
	}
}

func TestEvaluateStepByStepMissingUserSteps(t *testing.T) {
	res, err := Evaluate(testTables(), &Request{
		QuestionType: TypeStepByStep,
		Difficulty:   3,
		Steps:        []string{"4", "8"},
		UserAnswer:   NewStepAnswers([]string{"4"}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect {
		t.Fatal("missing step must count as wrong")
	}
	if res.StepResults[1].Actual != "" || res.StepResults[1].Correct {
		t.Errorf("step 2 = %+v, want empty actual, incorrect", res.StepResults[1])
	}
}

func TestEvaluateSkipped(t *testing.T) {
	res, err := Evaluate(testTables(), &Request{
		QuestionType:   TypeNumeric,
		Difficulty:     6,
		ExpectedAnswer: "42",
		UserAnswer:     NewAnswer(""),
		Skipped:        true,
		CorrectStreak:  8,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect {
		t.Fatal("skipped is never correct")
	}
	if res.XP.Total != 0 || res.Coins.Total != 0 {
		t.Errorf("skipped must earn nothing: xp=%+v coins=%+v", res.XP, res.Coins)
	}
	if res.XP.Base != 60 {
		t.Errorf("skip breakdown base = %v, want 60 for audit", res.XP.Base)
	}
	if !strings.Contains(res.Feedback, "42") {
		t.Errorf("feedback %q should reveal the answer", res.Feedback)
	}
}

func TestEvaluateStreakFrozen(t *testing.T) {
	res, err := Evaluate(testTables(), &Request{
		QuestionType:          TypeNumeric,
		Difficulty:            4,
		ExpectedAnswer:        "9",
		UserAnswer:            NewAnswer("7"),
		CorrectStreak:         6,
		StreakFreezeAvailable: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.StreakFrozen {
		t.Errorf("result = %+v, want streak frozen", res)
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	req := &Request{
		QuestionType:   TypeNumeric,
		Difficulty:     5,
		ExpectedAnswer: "4",
		UserAnswer:     NewAnswer("2"),
	}

	a, err := Evaluate(testTables(), req)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Evaluate(testTables(), req)
	if err != nil {
		t.Fatal(err)
	}

	// Everything except the generated ID must be identical.
	if a.Feedback != b.Feedback || a.IsCorrect != b.IsCorrect ||
		a.XP != b.XP || len(a.Misconceptions) != len(b.Misconceptions) ||
		*a.Verdict != *b.Verdict {
		t.Errorf("evaluation not deterministic:\n%+v\n%+v", a, b)
	}
}
