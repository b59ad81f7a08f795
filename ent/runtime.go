// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/ent/evaluationevent"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/ent/llmrequestevent"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/ent/rewardevent"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/ent/schema"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	evaluationeventMixin := schema.EvaluationEvent{}.Mixin()
	evaluationeventMixinFields0 := evaluationeventMixin[0].Fields()
	_ = evaluationeventMixinFields0
	evaluationeventFields := schema.EvaluationEvent{}.Fields()
	_ = evaluationeventFields
	// evaluationeventDescTimestamp is the schema descriptor for timestamp field.
	evaluationeventDescTimestamp := evaluationeventMixinFields0[1].Descriptor()
	// evaluationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	evaluationevent.DefaultTimestamp = evaluationeventDescTimestamp.Default.(func() time.Time)
	// evaluationeventDescEvaluationID is the schema descriptor for evaluation_id field.
	evaluationeventDescEvaluationID := evaluationeventFields[0].Descriptor()
	// evaluationevent.EvaluationIDValidator is a validator for the "evaluation_id" field. It is called by the builders before save.
	evaluationevent.EvaluationIDValidator = evaluationeventDescEvaluationID.Validators[0].(func(string) error)
	// evaluationeventDescQuestionType is the schema descriptor for question_type field.
	evaluationeventDescQuestionType := evaluationeventFields[1].Descriptor()
	// evaluationevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	evaluationevent.QuestionTypeValidator = evaluationeventDescQuestionType.Validators[0].(func(string) error)
	// evaluationeventDescExpectedAnswer is the schema descriptor for expected_answer field.
	evaluationeventDescExpectedAnswer := evaluationeventFields[3].Descriptor()
	// evaluationevent.ExpectedAnswerValidator is a validator for the "expected_answer" field. It is called by the builders before save.
	evaluationevent.ExpectedAnswerValidator = evaluationeventDescExpectedAnswer.Validators[0].(func(string) error)
	// evaluationeventDescEquivalenceMethod is the schema descriptor for equivalence_method field.
	evaluationeventDescEquivalenceMethod := evaluationeventFields[6].Descriptor()
	// evaluationevent.EquivalenceMethodValidator is a validator for the "equivalence_method" field. It is called by the builders before save.
	evaluationevent.EquivalenceMethodValidator = evaluationeventDescEquivalenceMethod.Validators[0].(func(string) error)
	// evaluationeventDescIsClose is the schema descriptor for is_close field.
	evaluationeventDescIsClose := evaluationeventFields[7].Descriptor()
	// evaluationevent.DefaultIsClose holds the default value on creation for the is_close field.
	evaluationevent.DefaultIsClose = evaluationeventDescIsClose.Default.(bool)
	// evaluationeventDescSkipped is the schema descriptor for skipped field.
	evaluationeventDescSkipped := evaluationeventFields[8].Descriptor()
	// evaluationevent.DefaultSkipped holds the default value on creation for the skipped field.
	evaluationevent.DefaultSkipped = evaluationeventDescSkipped.Default.(bool)
	// evaluationeventDescCatalogVersion is the schema descriptor for catalog_version field.
	evaluationeventDescCatalogVersion := evaluationeventFields[10].Descriptor()
	// evaluationevent.DefaultCatalogVersion holds the default value on creation for the catalog_version field.
	evaluationevent.DefaultCatalogVersion = evaluationeventDescCatalogVersion.Default.(string)
	// evaluationeventDescHintsUsed is the schema descriptor for hints_used field.
	evaluationeventDescHintsUsed := evaluationeventFields[11].Descriptor()
	// evaluationevent.DefaultHintsUsed holds the default value on creation for the hints_used field.
	evaluationevent.DefaultHintsUsed = evaluationeventDescHintsUsed.Default.(int)
	// evaluationeventDescTimeSpentSeconds is the schema descriptor for time_spent_seconds field.
	evaluationeventDescTimeSpentSeconds := evaluationeventFields[12].Descriptor()
	// evaluationevent.DefaultTimeSpentSeconds holds the default value on creation for the time_spent_seconds field.
	evaluationevent.DefaultTimeSpentSeconds = evaluationeventDescTimeSpentSeconds.Default.(float64)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	rewardeventMixin := schema.RewardEvent{}.Mixin()
	rewardeventMixinFields0 := rewardeventMixin[0].Fields()
	_ = rewardeventMixinFields0
	rewardeventFields := schema.RewardEvent{}.Fields()
	_ = rewardeventFields
	// rewardeventDescTimestamp is the schema descriptor for timestamp field.
	rewardeventDescTimestamp := rewardeventMixinFields0[1].Descriptor()
	// rewardevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	rewardevent.DefaultTimestamp = rewardeventDescTimestamp.Default.(func() time.Time)
	// rewardeventDescEvaluationID is the schema descriptor for evaluation_id field.
	rewardeventDescEvaluationID := rewardeventFields[0].Descriptor()
	// rewardevent.EvaluationIDValidator is a validator for the "evaluation_id" field. It is called by the builders before save.
	rewardevent.EvaluationIDValidator = rewardeventDescEvaluationID.Validators[0].(func(string) error)
	// rewardeventDescStreakFrozen is the schema descriptor for streak_frozen field.
	rewardeventDescStreakFrozen := rewardeventFields[5].Descriptor()
	// rewardevent.DefaultStreakFrozen holds the default value on creation for the streak_frozen field.
	rewardevent.DefaultStreakFrozen = rewardeventDescStreakFrozen.Default.(bool)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
