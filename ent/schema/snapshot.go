package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot is a materialized learner aggregate (XP, coins, streaks,
// misconception tallies) taken at a ledger position. Restoring from the
// latest snapshot skips replaying every evaluation event before it.
type Snapshot struct {
	ent.Schema
}

func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Immutable().
			Comment("Ledger sequence the aggregate was computed up to"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("When the snapshot was taken"),
		field.JSON("data", map[string]any{}).
			Comment("Learner aggregate encoded as JSON"),
	}
}

func (Snapshot) Indexes() []ent.Index {
	// Latest-snapshot lookup orders by sequence; prune walks timestamps.
	return []ent.Index{
		index.Fields("sequence"),
		index.Fields("timestamp"),
	}
}
