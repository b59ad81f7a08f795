// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/ent/evaluationevent"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/ent/predicate"
)

// EvaluationEventUpdate is the builder for updating EvaluationEvent entities.
type EvaluationEventUpdate struct {
	config
	hooks    []Hook
	mutation *EvaluationEventMutation
}

// Where appends a list predicates to the EvaluationEventUpdate builder.
func (_u *EvaluationEventUpdate) Where(ps ...predicate.EvaluationEvent) *EvaluationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEvaluationID sets the "evaluation_id" field.
func (_u *EvaluationEventUpdate) SetEvaluationID(v string) *EvaluationEventUpdate {
	_u.mutation.SetEvaluationID(v)
	return _u
}

// SetNillableEvaluationID sets the "evaluation_id" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableEvaluationID(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetEvaluationID(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *EvaluationEventUpdate) SetQuestionType(v string) *EvaluationEventUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableQuestionType(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *EvaluationEventUpdate) SetDifficulty(v int) *EvaluationEventUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableDifficulty(v *int) *EvaluationEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *EvaluationEventUpdate) AddDifficulty(v int) *EvaluationEventUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetExpectedAnswer sets the "expected_answer" field.
func (_u *EvaluationEventUpdate) SetExpectedAnswer(v string) *EvaluationEventUpdate {
	_u.mutation.SetExpectedAnswer(v)
	return _u
}

// SetNillableExpectedAnswer sets the "expected_answer" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableExpectedAnswer(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetExpectedAnswer(*v)
	}
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *EvaluationEventUpdate) SetUserAnswer(v string) *EvaluationEventUpdate {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableUserAnswer(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *EvaluationEventUpdate) SetCorrect(v bool) *EvaluationEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableCorrect(v *bool) *EvaluationEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetEquivalenceMethod sets the "equivalence_method" field.
func (_u *EvaluationEventUpdate) SetEquivalenceMethod(v string) *EvaluationEventUpdate {
	_u.mutation.SetEquivalenceMethod(v)
	return _u
}

// SetNillableEquivalenceMethod sets the "equivalence_method" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableEquivalenceMethod(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetEquivalenceMethod(*v)
	}
	return _u
}

// SetIsClose sets the "is_close" field.
func (_u *EvaluationEventUpdate) SetIsClose(v bool) *EvaluationEventUpdate {
	_u.mutation.SetIsClose(v)
	return _u
}

// SetNillableIsClose sets the "is_close" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableIsClose(v *bool) *EvaluationEventUpdate {
	if v != nil {
		_u.SetIsClose(*v)
	}
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *EvaluationEventUpdate) SetSkipped(v bool) *EvaluationEventUpdate {
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableSkipped(v *bool) *EvaluationEventUpdate {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// SetMisconceptionIds sets the "misconception_ids" field.
func (_u *EvaluationEventUpdate) SetMisconceptionIds(v []string) *EvaluationEventUpdate {
	_u.mutation.SetMisconceptionIds(v)
	return _u
}

// AppendMisconceptionIds appends value to the "misconception_ids" field.
func (_u *EvaluationEventUpdate) AppendMisconceptionIds(v []string) *EvaluationEventUpdate {
	_u.mutation.AppendMisconceptionIds(v)
	return _u
}

// ClearMisconceptionIds clears the value of the "misconception_ids" field.
func (_u *EvaluationEventUpdate) ClearMisconceptionIds() *EvaluationEventUpdate {
	_u.mutation.ClearMisconceptionIds()
	return _u
}

// SetCatalogVersion sets the "catalog_version" field.
func (_u *EvaluationEventUpdate) SetCatalogVersion(v string) *EvaluationEventUpdate {
	_u.mutation.SetCatalogVersion(v)
	return _u
}

// SetNillableCatalogVersion sets the "catalog_version" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableCatalogVersion(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetCatalogVersion(*v)
	}
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *EvaluationEventUpdate) SetHintsUsed(v int) *EvaluationEventUpdate {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableHintsUsed(v *int) *EvaluationEventUpdate {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *EvaluationEventUpdate) AddHintsUsed(v int) *EvaluationEventUpdate {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (_u *EvaluationEventUpdate) SetTimeSpentSeconds(v float64) *EvaluationEventUpdate {
	_u.mutation.ResetTimeSpentSeconds()
	_u.mutation.SetTimeSpentSeconds(v)
	return _u
}

// SetNillableTimeSpentSeconds sets the "time_spent_seconds" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableTimeSpentSeconds(v *float64) *EvaluationEventUpdate {
	if v != nil {
		_u.SetTimeSpentSeconds(*v)
	}
	return _u
}

// AddTimeSpentSeconds adds value to the "time_spent_seconds" field.
func (_u *EvaluationEventUpdate) AddTimeSpentSeconds(v float64) *EvaluationEventUpdate {
	_u.mutation.AddTimeSpentSeconds(v)
	return _u
}

// Mutation returns the EvaluationEventMutation object of the builder.
func (_u *EvaluationEventUpdate) Mutation() *EvaluationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvaluationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvaluationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationEventUpdate) check() error {
	if v, ok := _u.mutation.EvaluationID(); ok {
		if err := evaluationevent.EvaluationIDValidator(v); err != nil {
			return &ValidationError{Name: "evaluation_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.evaluation_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := evaluationevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.question_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpectedAnswer(); ok {
		if err := evaluationevent.ExpectedAnswerValidator(v); err != nil {
			return &ValidationError{Name: "expected_answer", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.expected_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EquivalenceMethod(); ok {
		if err := evaluationevent.EquivalenceMethodValidator(v); err != nil {
			return &ValidationError{Name: "equivalence_method", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.equivalence_method": %w`, err)}
		}
	}
	return nil
}

func (_u *EvaluationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationevent.Table, evaluationevent.Columns, sqlgraph.NewFieldSpec(evaluationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EvaluationID(); ok {
		_spec.SetField(evaluationevent.FieldEvaluationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(evaluationevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(evaluationevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(evaluationevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpectedAnswer(); ok {
		_spec.SetField(evaluationevent.FieldExpectedAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(evaluationevent.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(evaluationevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EquivalenceMethod(); ok {
		_spec.SetField(evaluationevent.FieldEquivalenceMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsClose(); ok {
		_spec.SetField(evaluationevent.FieldIsClose, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(evaluationevent.FieldSkipped, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MisconceptionIds(); ok {
		_spec.SetField(evaluationevent.FieldMisconceptionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMisconceptionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationevent.FieldMisconceptionIds, value)
		})
	}
	if _u.mutation.MisconceptionIdsCleared() {
		_spec.ClearField(evaluationevent.FieldMisconceptionIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.CatalogVersion(); ok {
		_spec.SetField(evaluationevent.FieldCatalogVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(evaluationevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(evaluationevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSeconds(); ok {
		_spec.SetField(evaluationevent.FieldTimeSpentSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSeconds(); ok {
		_spec.AddField(evaluationevent.FieldTimeSpentSeconds, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvaluationEventUpdateOne is the builder for updating a single EvaluationEvent entity.
type EvaluationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvaluationEventMutation
}

// SetEvaluationID sets the "evaluation_id" field.
func (_u *EvaluationEventUpdateOne) SetEvaluationID(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetEvaluationID(v)
	return _u
}

// SetNillableEvaluationID sets the "evaluation_id" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableEvaluationID(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetEvaluationID(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *EvaluationEventUpdateOne) SetQuestionType(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableQuestionType(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *EvaluationEventUpdateOne) SetDifficulty(v int) *EvaluationEventUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableDifficulty(v *int) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *EvaluationEventUpdateOne) AddDifficulty(v int) *EvaluationEventUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetExpectedAnswer sets the "expected_answer" field.
func (_u *EvaluationEventUpdateOne) SetExpectedAnswer(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetExpectedAnswer(v)
	return _u
}

// SetNillableExpectedAnswer sets the "expected_answer" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableExpectedAnswer(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetExpectedAnswer(*v)
	}
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *EvaluationEventUpdateOne) SetUserAnswer(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableUserAnswer(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *EvaluationEventUpdateOne) SetCorrect(v bool) *EvaluationEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableCorrect(v *bool) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetEquivalenceMethod sets the "equivalence_method" field.
func (_u *EvaluationEventUpdateOne) SetEquivalenceMethod(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetEquivalenceMethod(v)
	return _u
}

// SetNillableEquivalenceMethod sets the "equivalence_method" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableEquivalenceMethod(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetEquivalenceMethod(*v)
	}
	return _u
}

// SetIsClose sets the "is_close" field.
func (_u *EvaluationEventUpdateOne) SetIsClose(v bool) *EvaluationEventUpdateOne {
	_u.mutation.SetIsClose(v)
	return _u
}

// SetNillableIsClose sets the "is_close" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableIsClose(v *bool) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetIsClose(*v)
	}
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *EvaluationEventUpdateOne) SetSkipped(v bool) *EvaluationEventUpdateOne {
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableSkipped(v *bool) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// SetMisconceptionIds sets the "misconception_ids" field.
func (_u *EvaluationEventUpdateOne) SetMisconceptionIds(v []string) *EvaluationEventUpdateOne {
	_u.mutation.SetMisconceptionIds(v)
	return _u
}

// AppendMisconceptionIds appends value to the "misconception_ids" field.
func (_u *EvaluationEventUpdateOne) AppendMisconceptionIds(v []string) *EvaluationEventUpdateOne {
	_u.mutation.AppendMisconceptionIds(v)
	return _u
}

// ClearMisconceptionIds clears the value of the "misconception_ids" field.
func (_u *EvaluationEventUpdateOne) ClearMisconceptionIds() *EvaluationEventUpdateOne {
	_u.mutation.ClearMisconceptionIds()
	return _u
}

// SetCatalogVersion sets the "catalog_version" field.
func (_u *EvaluationEventUpdateOne) SetCatalogVersion(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetCatalogVersion(v)
	return _u
}

// SetNillableCatalogVersion sets the "catalog_version" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableCatalogVersion(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetCatalogVersion(*v)
	}
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *EvaluationEventUpdateOne) SetHintsUsed(v int) *EvaluationEventUpdateOne {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableHintsUsed(v *int) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *EvaluationEventUpdateOne) AddHintsUsed(v int) *EvaluationEventUpdateOne {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (_u *EvaluationEventUpdateOne) SetTimeSpentSeconds(v float64) *EvaluationEventUpdateOne {
	_u.mutation.ResetTimeSpentSeconds()
	_u.mutation.SetTimeSpentSeconds(v)
	return _u
}

// SetNillableTimeSpentSeconds sets the "time_spent_seconds" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableTimeSpentSeconds(v *float64) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetTimeSpentSeconds(*v)
	}
	return _u
}

// AddTimeSpentSeconds adds value to the "time_spent_seconds" field.
func (_u *EvaluationEventUpdateOne) AddTimeSpentSeconds(v float64) *EvaluationEventUpdateOne {
	_u.mutation.AddTimeSpentSeconds(v)
	return _u
}

// Mutation returns the EvaluationEventMutation object of the builder.
func (_u *EvaluationEventUpdateOne) Mutation() *EvaluationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvaluationEventUpdate builder.
func (_u *EvaluationEventUpdateOne) Where(ps ...predicate.EvaluationEvent) *EvaluationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvaluationEventUpdateOne) Select(field string, fields ...string) *EvaluationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvaluationEvent entity.
func (_u *EvaluationEventUpdateOne) Save(ctx context.Context) (*EvaluationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationEventUpdateOne) SaveX(ctx context.Context) *EvaluationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvaluationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationEventUpdateOne) check() error {
	if v, ok := _u.mutation.EvaluationID(); ok {
		if err := evaluationevent.EvaluationIDValidator(v); err != nil {
			return &ValidationError{Name: "evaluation_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.evaluation_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := evaluationevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.question_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpectedAnswer(); ok {
		if err := evaluationevent.ExpectedAnswerValidator(v); err != nil {
			return &ValidationError{Name: "expected_answer", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.expected_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EquivalenceMethod(); ok {
		if err := evaluationevent.EquivalenceMethodValidator(v); err != nil {
			return &ValidationError{Name: "equivalence_method", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.equivalence_method": %w`, err)}
		}
	}
	return nil
}

func (_u *EvaluationEventUpdateOne) sqlSave(ctx context.Context) (_node *EvaluationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationevent.Table, evaluationevent.Columns, sqlgraph.NewFieldSpec(evaluationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvaluationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluationevent.FieldID)
		for _, f := range fields {
			if !evaluationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evaluationevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EvaluationID(); ok {
		_spec.SetField(evaluationevent.FieldEvaluationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(evaluationevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(evaluationevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(evaluationevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpectedAnswer(); ok {
		_spec.SetField(evaluationevent.FieldExpectedAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(evaluationevent.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(evaluationevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EquivalenceMethod(); ok {
		_spec.SetField(evaluationevent.FieldEquivalenceMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsClose(); ok {
		_spec.SetField(evaluationevent.FieldIsClose, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(evaluationevent.FieldSkipped, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MisconceptionIds(); ok {
		_spec.SetField(evaluationevent.FieldMisconceptionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMisconceptionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationevent.FieldMisconceptionIds, value)
		})
	}
	if _u.mutation.MisconceptionIdsCleared() {
		_spec.ClearField(evaluationevent.FieldMisconceptionIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.CatalogVersion(); ok {
		_spec.SetField(evaluationevent.FieldCatalogVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(evaluationevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(evaluationevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSeconds(); ok {
		_spec.SetField(evaluationevent.FieldTimeSpentSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSeconds(); ok {
		_spec.AddField(evaluationevent.FieldTimeSpentSeconds, field.TypeFloat64, value)
	}
	_node = &EvaluationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
