package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendReward(ctx context.Context, data RewardEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.RewardEvent.Create().
		SetSequence(seqNum).
		SetEvaluationID(data.EvaluationID).
		SetXpTotal(data.XPTotal).
		SetCoinTotal(data.CoinTotal).
		SetXpBreakdown(data.XPBreakdown).
		SetCoinBreakdown(data.CoinBreakdown).
		SetStreakFrozen(data.StreakFrozen).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save reward event: %w", err)
	}

	return nil
}
