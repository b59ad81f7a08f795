package evaluation

import (
	"fmt"
	"strings"

	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/equivalence"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/misconception"
)

// buildFeedback renders deterministic feedback text for a result. No
// randomness: the same result always yields the same text.
func buildFeedback(res *Result) string {
	if res.IsCorrect {
		return correctFeedback(res)
	}
	if len(res.StepResults) > 0 {
		return stepFeedback(res)
	}
	return incorrectFeedback(res.Verdict, res.Misconceptions, res.CorrectAnswer)
}

func correctFeedback(res *Result) string {
	if res.Verdict == nil {
		return "Correct! Every step checks out."
	}
	switch res.Verdict.Method {
	case equivalence.MethodNumeric:
		return "Correct! Your answer is numerically equivalent to the expected form."
	case equivalence.MethodAlgebraic:
		return "Correct! Your answer is algebraically equivalent to the expected form."
	default:
		return "Correct!"
	}
}

func incorrectFeedback(v *equivalence.Verdict, found []misconception.Misconception, correctAnswer string) string {
	var b strings.Builder

	if v != nil && v.IsClose {
		b.WriteString("Very close, but not quite. Check your rounding. ")
	} else {
		b.WriteString("Not quite. ")
	}

	for _, m := range misconception.Dedupe(found) {
		fmt.Fprintf(&b, "This looks like a %s: %s ", strings.ToLower(m.Name), m.RemediationHint)
	}

	fmt.Fprintf(&b, "The correct answer is %s.", correctAnswer)
	return b.String()
}

func stepFeedback(res *Result) string {
	correct := 0
	var firstWrong *StepResult
	for i := range res.StepResults {
		if res.StepResults[i].Correct {
			correct++
		} else if firstWrong == nil {
			firstWrong = &res.StepResults[i]
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You got %d of %d steps right. ", correct, len(res.StepResults))

	if firstWrong != nil {
		fmt.Fprintf(&b, "Step %d is where it goes wrong: expected %s. ", firstWrong.StepNumber, firstWrong.Expected)
	}

	for _, m := range misconception.Dedupe(res.Misconceptions) {
		fmt.Fprintf(&b, "This looks like a %s: %s ", strings.ToLower(m.Name), m.RemediationHint)
	}

	return strings.TrimSpace(b.String())
}

func skippedFeedback(correctAnswer string) string {
	return fmt.Sprintf("Question skipped. The correct answer was %s. No points this time.", correctAnswer)
}
