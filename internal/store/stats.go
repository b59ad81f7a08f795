package store

import (
	"context"
	"fmt"

	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/ent"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/ent/evaluationevent"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/ent/rewardevent"
)

func (r *eventRepo) EvaluationStats(ctx context.Context) (*EvaluationStats, error) {
	stats := &EvaluationStats{ByQuestionType: map[string]int{}}

	total, err := r.client.EvaluationEvent.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count evaluations: %w", err)
	}
	stats.Total = total

	correct, err := r.client.EvaluationEvent.Query().
		Where(evaluationevent.Correct(true)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count correct: %w", err)
	}
	stats.Correct = correct

	skipped, err := r.client.EvaluationEvent.Query().
		Where(evaluationevent.Skipped(true)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count skipped: %w", err)
	}
	stats.Skipped = skipped

	var byType []struct {
		QuestionType string `json:"question_type"`
		Count        int    `json:"count"`
	}
	err = r.client.EvaluationEvent.Query().
		GroupBy(evaluationevent.FieldQuestionType).
		Aggregate(ent.As(ent.Count(), "count")).
		Scan(ctx, &byType)
	if err != nil {
		return nil, fmt.Errorf("group by question type: %w", err)
	}
	for _, row := range byType {
		stats.ByQuestionType[row.QuestionType] = row.Count
	}

	// Sum in Go rather than SQL: SUM over an empty table yields NULL, which
	// does not scan cleanly into an int.
	rewardRows, err := r.client.RewardEvent.Query().
		Select(rewardevent.FieldXpTotal, rewardevent.FieldCoinTotal).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query reward events: %w", err)
	}
	for _, row := range rewardRows {
		stats.XPTotal += row.XpTotal
		stats.CoinTotal += row.CoinTotal
	}

	return stats, nil
}

// MisconceptionCounts tallies detected misconceptions in Go rather than SQL
// because the IDs live in a JSON array column.
func (r *eventRepo) MisconceptionCounts(ctx context.Context) (map[string]int, error) {
	events, err := r.client.EvaluationEvent.Query().
		Where(evaluationevent.Correct(false)).
		Select(evaluationevent.FieldMisconceptionIds).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query evaluation events: %w", err)
	}

	counts := map[string]int{}
	for _, ev := range events {
		for _, id := range ev.MisconceptionIds {
			counts[id]++
		}
	}
	return counts, nil
}

func (r *eventRepo) CatalogVersions(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		CatalogVersion string `json:"catalog_version"`
		Count          int    `json:"count"`
	}
	err := r.client.EvaluationEvent.Query().
		GroupBy(evaluationevent.FieldCatalogVersion).
		Aggregate(ent.As(ent.Count(), "count")).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("group by catalog version: %w", err)
	}

	versions := make(map[string]int, len(rows))
	for _, row := range rows {
		versions[row.CatalogVersion] = row.Count
	}
	return versions, nil
}
