package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendEvaluation(ctx context.Context, data EvaluationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.EvaluationEvent.Create().
		SetSequence(seqNum).
		SetEvaluationID(data.EvaluationID).
		SetQuestionType(data.QuestionType).
		SetDifficulty(data.Difficulty).
		SetExpectedAnswer(data.ExpectedAnswer).
		SetUserAnswer(data.UserAnswer).
		SetCorrect(data.Correct).
		SetEquivalenceMethod(data.EquivalenceMethod).
		SetIsClose(data.IsClose).
		SetSkipped(data.Skipped).
		SetMisconceptionIds(data.MisconceptionIDs).
		SetCatalogVersion(data.CatalogVersion).
		SetHintsUsed(data.HintsUsed).
		SetTimeSpentSeconds(data.TimeSpentSeconds).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save evaluation event: %w", err)
	}

	return nil
}
