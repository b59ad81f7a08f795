package store

import (
	"context"
	"time"

	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/ent"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the full learner state at a point in time.
type SnapshotData struct {
	Version       int `json:"version"`
	XPTotal       int `json:"xpTotal"`
	CoinTotal     int `json:"coinTotal"`
	CorrectStreak int `json:"correctStreak"`
	DailyStreak   int `json:"dailyStreak"`
	StreakFreezes int `json:"streakFreezes"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// EvaluationEventData captures the data for a single answer evaluation event.
type EvaluationEventData struct {
	EvaluationID      string
	QuestionType      string
	Difficulty        int
	ExpectedAnswer    string
	UserAnswer        string
	Correct           bool
	EquivalenceMethod string
	IsClose           bool
	Skipped           bool
	MisconceptionIDs  []string
	CatalogVersion    string
	HintsUsed         int
	TimeSpentSeconds  float64
}

// RewardEventData captures the XP and coin award for one evaluation.
// The breakdowns are stored as JSON maps so the audit trail survives
// scoring-table changes.
type RewardEventData struct {
	EvaluationID  string
	XPTotal       int
	CoinTotal     int
	XPBreakdown   map[string]any
	CoinBreakdown map[string]any
	StreakFrozen  bool
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EvaluationStats aggregates evaluation events for reporting.
type EvaluationStats struct {
	Total          int
	Correct        int
	Skipped        int
	ByQuestionType map[string]int
	XPTotal        int
	CoinTotal      int
}

// LLMPurposeUsage aggregates LLM request events per purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM request events per model, for cost estimates.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and aggregate access to domain events.
type EventRepo interface {
	// AppendEvaluation records an answer evaluation event.
	AppendEvaluation(ctx context.Context, data EvaluationEventData) error

	// AppendReward records the reward awarded for an evaluation.
	AppendReward(ctx context.Context, data RewardEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// EvaluationStats aggregates evaluation and reward events.
	EvaluationStats(ctx context.Context) (*EvaluationStats, error)

	// MisconceptionCounts returns how often each catalog entry was detected.
	MisconceptionCounts(ctx context.Context) (map[string]int, error)

	// CatalogVersions returns evaluation event counts grouped by the
	// misconception catalog version they were recorded under.
	CatalogVersions(ctx context.Context) (map[string]int, error)

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*ent.LLMRequestEvent, error)

	// GetLLMEvent returns one LLM request event by ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*ent.LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates LLM request events per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates LLM request events per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
