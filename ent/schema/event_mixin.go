package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin is the base of every ledger entity: evaluation, reward and
// LLM request events all embed it. The sequence is global across event
// tables so the ledger can be replayed in a single total order.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Position in the global event ledger, shared across all event tables"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("UTC time the event was appended"),
	}
}

func (EventMixin) Indexes() []ent.Index {
	// Unique() already indexes sequence; timestamp needs its own for
	// the time-ordered list and stats queries.
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
