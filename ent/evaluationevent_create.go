// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/ent/evaluationevent"
)

// EvaluationEventCreate is the builder for creating a EvaluationEvent entity.
type EvaluationEventCreate struct {
	config
	mutation *EvaluationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *EvaluationEventCreate) SetSequence(v int64) *EvaluationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *EvaluationEventCreate) SetTimestamp(v time.Time) *EvaluationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *EvaluationEventCreate) SetNillableTimestamp(v *time.Time) *EvaluationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetEvaluationID sets the "evaluation_id" field.
func (_c *EvaluationEventCreate) SetEvaluationID(v string) *EvaluationEventCreate {
	_c.mutation.SetEvaluationID(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *EvaluationEventCreate) SetQuestionType(v string) *EvaluationEventCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *EvaluationEventCreate) SetDifficulty(v int) *EvaluationEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetExpectedAnswer sets the "expected_answer" field.
func (_c *EvaluationEventCreate) SetExpectedAnswer(v string) *EvaluationEventCreate {
	_c.mutation.SetExpectedAnswer(v)
	return _c
}

// SetUserAnswer sets the "user_answer" field.
func (_c *EvaluationEventCreate) SetUserAnswer(v string) *EvaluationEventCreate {
	_c.mutation.SetUserAnswer(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *EvaluationEventCreate) SetCorrect(v bool) *EvaluationEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetEquivalenceMethod sets the "equivalence_method" field.
func (_c *EvaluationEventCreate) SetEquivalenceMethod(v string) *EvaluationEventCreate {
	_c.mutation.SetEquivalenceMethod(v)
	return _c
}

// SetIsClose sets the "is_close" field.
func (_c *EvaluationEventCreate) SetIsClose(v bool) *EvaluationEventCreate {
	_c.mutation.SetIsClose(v)
	return _c
}

// SetNillableIsClose sets the "is_close" field if the given value is not nil.
func (_c *EvaluationEventCreate) SetNillableIsClose(v *bool) *EvaluationEventCreate {
	if v != nil {
		_c.SetIsClose(*v)
	}
	return _c
}

// SetSkipped sets the "skipped" field.
func (_c *EvaluationEventCreate) SetSkipped(v bool) *EvaluationEventCreate {
	_c.mutation.SetSkipped(v)
	return _c
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_c *EvaluationEventCreate) SetNillableSkipped(v *bool) *EvaluationEventCreate {
	if v != nil {
		_c.SetSkipped(*v)
	}
	return _c
}

// SetMisconceptionIds sets the "misconception_ids" field.
func (_c *EvaluationEventCreate) SetMisconceptionIds(v []string) *EvaluationEventCreate {
	_c.mutation.SetMisconceptionIds(v)
	return _c
}

// SetCatalogVersion sets the "catalog_version" field.
func (_c *EvaluationEventCreate) SetCatalogVersion(v string) *EvaluationEventCreate {
	_c.mutation.SetCatalogVersion(v)
	return _c
}

// SetNillableCatalogVersion sets the "catalog_version" field if the given value is not nil.
func (_c *EvaluationEventCreate) SetNillableCatalogVersion(v *string) *EvaluationEventCreate {
	if v != nil {
		_c.SetCatalogVersion(*v)
	}
	return _c
}

// SetHintsUsed sets the "hints_used" field.
func (_c *EvaluationEventCreate) SetHintsUsed(v int) *EvaluationEventCreate {
	_c.mutation.SetHintsUsed(v)
	return _c
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_c *EvaluationEventCreate) SetNillableHintsUsed(v *int) *EvaluationEventCreate {
	if v != nil {
		_c.SetHintsUsed(*v)
	}
	return _c
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (_c *EvaluationEventCreate) SetTimeSpentSeconds(v float64) *EvaluationEventCreate {
	_c.mutation.SetTimeSpentSeconds(v)
	return _c
}

// SetNillableTimeSpentSeconds sets the "time_spent_seconds" field if the given value is not nil.
func (_c *EvaluationEventCreate) SetNillableTimeSpentSeconds(v *float64) *EvaluationEventCreate {
	if v != nil {
		_c.SetTimeSpentSeconds(*v)
	}
	return _c
}

// Mutation returns the EvaluationEventMutation object of the builder.
func (_c *EvaluationEventCreate) Mutation() *EvaluationEventMutation {
	return _c.mutation
}

// Save creates the EvaluationEvent in the database.
func (_c *EvaluationEventCreate) Save(ctx context.Context) (*EvaluationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvaluationEventCreate) SaveX(ctx context.Context) *EvaluationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvaluationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := evaluationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.IsClose(); !ok {
		v := evaluationevent.DefaultIsClose
		_c.mutation.SetIsClose(v)
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		v := evaluationevent.DefaultSkipped
		_c.mutation.SetSkipped(v)
	}
	if _, ok := _c.mutation.CatalogVersion(); !ok {
		v := evaluationevent.DefaultCatalogVersion
		_c.mutation.SetCatalogVersion(v)
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		v := evaluationevent.DefaultHintsUsed
		_c.mutation.SetHintsUsed(v)
	}
	if _, ok := _c.mutation.TimeSpentSeconds(); !ok {
		v := evaluationevent.DefaultTimeSpentSeconds
		_c.mutation.SetTimeSpentSeconds(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvaluationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "EvaluationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "EvaluationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.EvaluationID(); !ok {
		return &ValidationError{Name: "evaluation_id", err: errors.New(`ent: missing required field "EvaluationEvent.evaluation_id"`)}
	}
	if v, ok := _c.mutation.EvaluationID(); ok {
		if err := evaluationevent.EvaluationIDValidator(v); err != nil {
			return &ValidationError{Name: "evaluation_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.evaluation_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "EvaluationEvent.question_type"`)}
	}
	if v, ok := _c.mutation.QuestionType(); ok {
		if err := evaluationevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.question_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "EvaluationEvent.difficulty"`)}
	}
	if _, ok := _c.mutation.ExpectedAnswer(); !ok {
		return &ValidationError{Name: "expected_answer", err: errors.New(`ent: missing required field "EvaluationEvent.expected_answer"`)}
	}
	if v, ok := _c.mutation.ExpectedAnswer(); ok {
		if err := evaluationevent.ExpectedAnswerValidator(v); err != nil {
			return &ValidationError{Name: "expected_answer", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.expected_answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserAnswer(); !ok {
		return &ValidationError{Name: "user_answer", err: errors.New(`ent: missing required field "EvaluationEvent.user_answer"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "EvaluationEvent.correct"`)}
	}
	if _, ok := _c.mutation.EquivalenceMethod(); !ok {
		return &ValidationError{Name: "equivalence_method", err: errors.New(`ent: missing required field "EvaluationEvent.equivalence_method"`)}
	}
	if v, ok := _c.mutation.EquivalenceMethod(); ok {
		if err := evaluationevent.EquivalenceMethodValidator(v); err != nil {
			return &ValidationError{Name: "equivalence_method", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.equivalence_method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsClose(); !ok {
		return &ValidationError{Name: "is_close", err: errors.New(`ent: missing required field "EvaluationEvent.is_close"`)}
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		return &ValidationError{Name: "skipped", err: errors.New(`ent: missing required field "EvaluationEvent.skipped"`)}
	}
	if _, ok := _c.mutation.CatalogVersion(); !ok {
		return &ValidationError{Name: "catalog_version", err: errors.New(`ent: missing required field "EvaluationEvent.catalog_version"`)}
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		return &ValidationError{Name: "hints_used", err: errors.New(`ent: missing required field "EvaluationEvent.hints_used"`)}
	}
	if _, ok := _c.mutation.TimeSpentSeconds(); !ok {
		return &ValidationError{Name: "time_spent_seconds", err: errors.New(`ent: missing required field "EvaluationEvent.time_spent_seconds"`)}
	}
	return nil
}

func (_c *EvaluationEventCreate) sqlSave(ctx context.Context) (*EvaluationEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvaluationEventCreate) createSpec() (*EvaluationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &EvaluationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evaluationevent.Table, sqlgraph.NewFieldSpec(evaluationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(evaluationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(evaluationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.EvaluationID(); ok {
		_spec.SetField(evaluationevent.FieldEvaluationID, field.TypeString, value)
		_node.EvaluationID = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(evaluationevent.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(evaluationevent.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.ExpectedAnswer(); ok {
		_spec.SetField(evaluationevent.FieldExpectedAnswer, field.TypeString, value)
		_node.ExpectedAnswer = value
	}
	if value, ok := _c.mutation.UserAnswer(); ok {
		_spec.SetField(evaluationevent.FieldUserAnswer, field.TypeString, value)
		_node.UserAnswer = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(evaluationevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.EquivalenceMethod(); ok {
		_spec.SetField(evaluationevent.FieldEquivalenceMethod, field.TypeString, value)
		_node.EquivalenceMethod = value
	}
	if value, ok := _c.mutation.IsClose(); ok {
		_spec.SetField(evaluationevent.FieldIsClose, field.TypeBool, value)
		_node.IsClose = value
	}
	if value, ok := _c.mutation.Skipped(); ok {
		_spec.SetField(evaluationevent.FieldSkipped, field.TypeBool, value)
		_node.Skipped = value
	}
	if value, ok := _c.mutation.MisconceptionIds(); ok {
		_spec.SetField(evaluationevent.FieldMisconceptionIds, field.TypeJSON, value)
		_node.MisconceptionIds = value
	}
	if value, ok := _c.mutation.CatalogVersion(); ok {
		_spec.SetField(evaluationevent.FieldCatalogVersion, field.TypeString, value)
		_node.CatalogVersion = value
	}
	if value, ok := _c.mutation.HintsUsed(); ok {
		_spec.SetField(evaluationevent.FieldHintsUsed, field.TypeInt, value)
		_node.HintsUsed = value
	}
	if value, ok := _c.mutation.TimeSpentSeconds(); ok {
		_spec.SetField(evaluationevent.FieldTimeSpentSeconds, field.TypeFloat64, value)
		_node.TimeSpentSeconds = value
	}
	return _node, _spec
}

// EvaluationEventCreateBulk is the builder for creating many EvaluationEvent entities in bulk.
type EvaluationEventCreateBulk struct {
	config
	err      error
	builders []*EvaluationEventCreate
}

// Save creates the EvaluationEvent entities in the database.
func (_c *EvaluationEventCreateBulk) Save(ctx context.Context) ([]*EvaluationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvaluationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvaluationEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EvaluationEventCreateBulk) SaveX(ctx context.Context) []*EvaluationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
