package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RewardEvent records the XP and coin award for one evaluation, with the
// full itemized breakdowns for audit.
type RewardEvent struct {
	ent.Schema
}

func (RewardEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RewardEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("evaluation_id").
			NotEmpty().
			Comment("UUID of the evaluation this reward belongs to"),
		field.Int("xp_total"),
		field.Int("coin_total"),
		field.JSON("xp_breakdown", map[string]any{}).
			Comment("Itemized XP components as returned by the scoring engine"),
		field.JSON("coin_breakdown", map[string]any{}).
			Comment("Coin base, multiplier, and named bonuses"),
		field.Bool("streak_frozen").
			Default(false).
			Comment("A streak freeze suppressed the streak loss"),
	}
}

func (RewardEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("evaluation_id"),
	}
}
