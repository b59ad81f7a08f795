package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EvaluationEvent records one answer evaluation: what was asked, what the
// learner entered, and what the engine decided.
type EvaluationEvent struct {
	ent.Schema
}

func (EvaluationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (EvaluationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("evaluation_id").
			NotEmpty().
			Unique().
			Comment("UUID of the evaluation; links to RewardEvent"),
		field.String("question_type").
			NotEmpty().
			Comment("multiple-choice, free-form, numeric, or step-by-step"),
		field.Int("difficulty").
			Comment("Question difficulty 1-10 as supplied by the caller"),
		field.String("expected_answer").
			NotEmpty().
			Comment("The canonical correct answer (steps joined for step-by-step)"),
		field.String("user_answer").
			Comment("What the learner entered; empty when skipped"),
		field.Bool("correct").
			Comment("The engine's overall verdict"),
		field.String("equivalence_method").
			NotEmpty().
			Comment("exact, numeric, algebraic, or none"),
		field.Bool("is_close").
			Default(false).
			Comment("Numeric near miss inside the widened tolerance band"),
		field.Bool("skipped").
			Default(false),
		field.JSON("misconception_ids", []string{}).
			Optional().
			Comment("Catalog IDs of detected misconceptions, in detection order"),
		field.String("catalog_version").
			Default("").
			Comment("Misconception catalog semver the event was evaluated under"),
		field.Int("hints_used").
			Default(0),
		field.Float("time_spent_seconds").
			Default(0),
	}
}

func (EvaluationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("evaluation_id"),
		index.Fields("question_type"),
		index.Fields("correct"),
	}
}
