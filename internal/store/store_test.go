package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot.
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data:      SnapshotData{Version: 1, XPTotal: 150, CoinTotal: 80, CorrectStreak: 4},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.XPTotal != 150 {
		t.Errorf("data.xpTotal = %d, want 150", snap.Data.XPTotal)
	}
	if snap.Data.CorrectStreak != 4 {
		t.Errorf("data.correctStreak = %d, want 4", snap.Data.CorrectStreak)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1, XPTotal: (i + 1) * 10},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.XPTotal != 30 {
		t.Errorf("data.xpTotal = %d, want 30", snap.Data.XPTotal)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendEvaluationAndReward(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendEvaluation(ctx, EvaluationEventData{
		EvaluationID:      "eval-1",
		QuestionType:      "numeric",
		Difficulty:        5,
		ExpectedAnswer:    "0.5",
		UserAnswer:        "1/2",
		Correct:           true,
		EquivalenceMethod: "numeric",
		TimeSpentSeconds:  30,
	})
	if err != nil {
		t.Fatalf("append evaluation: %v", err)
	}

	err = repo.AppendReward(ctx, RewardEventData{
		EvaluationID:  "eval-1",
		XPTotal:       95,
		CoinTotal:     25,
		XPBreakdown:   map[string]any{"base": 50.0, "total": 95.0},
		CoinBreakdown: map[string]any{"base": 25, "multiplier": 1.0},
	})
	if err != nil {
		t.Fatalf("append reward: %v", err)
	}

	// Sequence numbers must be distinct and ordered across event types.
	evals, err := s.Client().EvaluationEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query evaluations: %v", err)
	}
	rewards, err := s.Client().RewardEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query rewards: %v", err)
	}
	if len(evals) != 1 || len(rewards) != 1 {
		t.Fatalf("events = %d/%d, want 1/1", len(evals), len(rewards))
	}
	if rewards[0].Sequence <= evals[0].Sequence {
		t.Errorf("reward sequence %d not after evaluation sequence %d",
			rewards[0].Sequence, evals[0].Sequence)
	}
	if evals[0].EvaluationID != rewards[0].EvaluationID {
		t.Errorf("evaluation IDs differ: %q vs %q",
			evals[0].EvaluationID, rewards[0].EvaluationID)
	}
}

func TestEvaluationStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	seed := []EvaluationEventData{
		{EvaluationID: "e1", QuestionType: "numeric", Difficulty: 3, ExpectedAnswer: "4", UserAnswer: "4", Correct: true, EquivalenceMethod: "exact"},
		{EvaluationID: "e2", QuestionType: "numeric", Difficulty: 3, ExpectedAnswer: "4", UserAnswer: "-4", Correct: false, EquivalenceMethod: "none", MisconceptionIDs: []string{"sign-error"}},
		{EvaluationID: "e3", QuestionType: "free-form", Difficulty: 5, ExpectedAnswer: "x+1", UserAnswer: "", Correct: false, EquivalenceMethod: "none", Skipped: true},
	}
	for _, ev := range seed {
		if err := repo.AppendEvaluation(ctx, ev); err != nil {
			t.Fatalf("append %s: %v", ev.EvaluationID, err)
		}
	}
	rewards := []RewardEventData{
		{EvaluationID: "e1", XPTotal: 30, CoinTotal: 15, XPBreakdown: map[string]any{}, CoinBreakdown: map[string]any{}},
		{EvaluationID: "e2", XPTotal: 0, CoinTotal: 0, XPBreakdown: map[string]any{}, CoinBreakdown: map[string]any{}},
	}
	for _, rw := range rewards {
		if err := repo.AppendReward(ctx, rw); err != nil {
			t.Fatalf("append reward %s: %v", rw.EvaluationID, err)
		}
	}

	stats, err := repo.EvaluationStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 3 {
		t.Errorf("total = %d, want 3", stats.Total)
	}
	if stats.Correct != 1 {
		t.Errorf("correct = %d, want 1", stats.Correct)
	}
	if stats.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", stats.Skipped)
	}
	if stats.ByQuestionType["numeric"] != 2 {
		t.Errorf("numeric count = %d, want 2", stats.ByQuestionType["numeric"])
	}
	if stats.XPTotal != 30 {
		t.Errorf("xp total = %d, want 30", stats.XPTotal)
	}
	if stats.CoinTotal != 15 {
		t.Errorf("coin total = %d, want 15", stats.CoinTotal)
	}
}

func TestEvaluationStatsEmpty(t *testing.T) {
	s := openTestStore(t)
	stats, err := s.EventRepo().EvaluationStats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 0 || stats.XPTotal != 0 || stats.CoinTotal != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestMisconceptionCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	seed := []EvaluationEventData{
		{EvaluationID: "e1", QuestionType: "numeric", ExpectedAnswer: "4", UserAnswer: "-4", EquivalenceMethod: "none", MisconceptionIDs: []string{"sign-error"}},
		{EvaluationID: "e2", QuestionType: "numeric", ExpectedAnswer: "4", UserAnswer: "2", EquivalenceMethod: "none", MisconceptionIDs: []string{"missing-factor", "power-root-confusion"}},
		{EvaluationID: "e3", QuestionType: "numeric", ExpectedAnswer: "8", UserAnswer: "-8", EquivalenceMethod: "none", MisconceptionIDs: []string{"sign-error"}},
		{EvaluationID: "e4", QuestionType: "numeric", ExpectedAnswer: "8", UserAnswer: "8", Correct: true, EquivalenceMethod: "exact"},
	}
	for _, ev := range seed {
		if err := repo.AppendEvaluation(ctx, ev); err != nil {
			t.Fatalf("append %s: %v", ev.EvaluationID, err)
		}
	}

	counts, err := repo.MisconceptionCounts(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts["sign-error"] != 2 {
		t.Errorf("sign-error = %d, want 2", counts["sign-error"])
	}
	if counts["missing-factor"] != 1 {
		t.Errorf("missing-factor = %d, want 1", counts["missing-factor"])
	}
	if counts["power-root-confusion"] != 1 {
		t.Errorf("power-root-confusion = %d, want 1", counts["power-root-confusion"])
	}
}

func TestCatalogVersions(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	seed := []EvaluationEventData{
		{EvaluationID: "e1", QuestionType: "numeric", ExpectedAnswer: "4", UserAnswer: "4", Correct: true, EquivalenceMethod: "exact", CatalogVersion: "v1.0.0"},
		{EvaluationID: "e2", QuestionType: "numeric", ExpectedAnswer: "4", UserAnswer: "-4", EquivalenceMethod: "none", CatalogVersion: "v1.0.0"},
		{EvaluationID: "e3", QuestionType: "numeric", ExpectedAnswer: "8", UserAnswer: "2", EquivalenceMethod: "none", CatalogVersion: "v0.9.0"},
		{EvaluationID: "e4", QuestionType: "numeric", ExpectedAnswer: "8", UserAnswer: "8", Correct: true, EquivalenceMethod: "exact"},
	}
	for _, ev := range seed {
		if err := repo.AppendEvaluation(ctx, ev); err != nil {
			t.Fatalf("append %s: %v", ev.EvaluationID, err)
		}
	}

	versions, err := repo.CatalogVersions(ctx)
	if err != nil {
		t.Fatalf("catalog versions: %v", err)
	}
	if versions["v1.0.0"] != 2 {
		t.Errorf("v1.0.0 = %d, want 2", versions["v1.0.0"])
	}
	if versions["v0.9.0"] != 1 {
		t.Errorf("v0.9.0 = %d, want 1", versions["v0.9.0"])
	}
	// Events predating versioned storage group under the empty string.
	if versions[""] != 1 {
		t.Errorf("unversioned = %d, want 1", versions[""])
	}
}

func TestLLMEventsAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	seed := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "feedback", InputTokens: 100, OutputTokens: 50, LatencyMs: 400, Success: true, RequestBody: "[user]\nfeedback please"},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "hint", InputTokens: 200, OutputTokens: 80, LatencyMs: 600, Success: false, ErrorMessage: "rate limited"},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "feedback", InputTokens: 150, OutputTokens: 60, LatencyMs: 200, Success: true},
	}
	for i, req := range seed {
		if err := repo.AppendLLMRequest(ctx, req); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	// Newest first.
	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0].Model != "gpt-4o-mini" {
		t.Errorf("newest model = %q, want gpt-4o-mini", events[0].Model)
	}

	// Round trip by ID.
	e, err := repo.GetLLMEvent(ctx, events[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.Purpose != "hint" {
		t.Errorf("event = %+v, want purpose hint", e)
	}
	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	purposes := map[string]LLMPurposeUsage{}
	for _, u := range byPurpose {
		purposes[u.Purpose] = u
	}
	if fb := purposes["feedback"]; fb.Calls != 2 || fb.InputTokens != 250 || fb.OutputTokens != 110 {
		t.Errorf("feedback usage = %+v", fb)
	}
	if h := purposes["hint"]; h.Calls != 1 || h.AvgLatencyMs != 600 {
		t.Errorf("hint usage = %+v", h)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	models := map[string]LLMModelUsage{}
	for _, u := range byModel {
		models[u.Model] = u
	}
	if c := models["claude-haiku"]; c.Calls != 2 || c.InputTokens != 300 {
		t.Errorf("claude-haiku usage = %+v", c)
	}
	if g := models["gpt-4o-mini"]; g.Calls != 1 {
		t.Errorf("gpt-4o-mini usage = %+v", g)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"snapshots", "evaluation_events", "reward_events", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}
