// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/ent/predicate"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/ent/rewardevent"
)

// RewardEventUpdate is the builder for updating RewardEvent entities.
type RewardEventUpdate struct {
	config
	hooks    []Hook
	mutation *RewardEventMutation
}

// Where appends a list predicates to the RewardEventUpdate builder.
func (_u *RewardEventUpdate) Where(ps ...predicate.RewardEvent) *RewardEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEvaluationID sets the "evaluation_id" field.
func (_u *RewardEventUpdate) SetEvaluationID(v string) *RewardEventUpdate {
	_u.mutation.SetEvaluationID(v)
	return _u
}

// SetNillableEvaluationID sets the "evaluation_id" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableEvaluationID(v *string) *RewardEventUpdate {
	if v != nil {
		_u.SetEvaluationID(*v)
	}
	return _u
}

// SetXpTotal sets the "xp_total" field.
func (_u *RewardEventUpdate) SetXpTotal(v int) *RewardEventUpdate {
	_u.mutation.ResetXpTotal()
	_u.mutation.SetXpTotal(v)
	return _u
}

// SetNillableXpTotal sets the "xp_total" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableXpTotal(v *int) *RewardEventUpdate {
	if v != nil {
		_u.SetXpTotal(*v)
	}
	return _u
}

// AddXpTotal adds value to the "xp_total" field.
func (_u *RewardEventUpdate) AddXpTotal(v int) *RewardEventUpdate {
	_u.mutation.AddXpTotal(v)
	return _u
}

// SetCoinTotal sets the "coin_total" field.
func (_u *RewardEventUpdate) SetCoinTotal(v int) *RewardEventUpdate {
	_u.mutation.ResetCoinTotal()
	_u.mutation.SetCoinTotal(v)
	return _u
}

// SetNillableCoinTotal sets the "coin_total" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableCoinTotal(v *int) *RewardEventUpdate {
	if v != nil {
		_u.SetCoinTotal(*v)
	}
	return _u
}

// AddCoinTotal adds value to the "coin_total" field.
func (_u *RewardEventUpdate) AddCoinTotal(v int) *RewardEventUpdate {
	_u.mutation.AddCoinTotal(v)
	return _u
}

// SetXpBreakdown sets the "xp_breakdown" field.
func (_u *RewardEventUpdate) SetXpBreakdown(v map[string]interface{}) *RewardEventUpdate {
	_u.mutation.SetXpBreakdown(v)
	return _u
}

// SetCoinBreakdown sets the "coin_breakdown" field.
func (_u *RewardEventUpdate) SetCoinBreakdown(v map[string]interface{}) *RewardEventUpdate {
	_u.mutation.SetCoinBreakdown(v)
	return _u
}

// SetStreakFrozen sets the "streak_frozen" field.
func (_u *RewardEventUpdate) SetStreakFrozen(v bool) *RewardEventUpdate {
	_u.mutation.SetStreakFrozen(v)
	return _u
}

// SetNillableStreakFrozen sets the "streak_frozen" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableStreakFrozen(v *bool) *RewardEventUpdate {
	if v != nil {
		_u.SetStreakFrozen(*v)
	}
	return _u
}

// Mutation returns the RewardEventMutation object of the builder.
func (_u *RewardEventUpdate) Mutation() *RewardEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RewardEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RewardEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RewardEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RewardEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RewardEventUpdate) check() error {
	if v, ok := _u.mutation.EvaluationID(); ok {
		if err := rewardevent.EvaluationIDValidator(v); err != nil {
			return &ValidationError{Name: "evaluation_id", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.evaluation_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RewardEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rewardevent.Table, rewardevent.Columns, sqlgraph.NewFieldSpec(rewardevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EvaluationID(); ok {
		_spec.SetField(rewardevent.FieldEvaluationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpTotal(); ok {
		_spec.SetField(rewardevent.FieldXpTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpTotal(); ok {
		_spec.AddField(rewardevent.FieldXpTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CoinTotal(); ok {
		_spec.SetField(rewardevent.FieldCoinTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCoinTotal(); ok {
		_spec.AddField(rewardevent.FieldCoinTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpBreakdown(); ok {
		_spec.SetField(rewardevent.FieldXpBreakdown, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CoinBreakdown(); ok {
		_spec.SetField(rewardevent.FieldCoinBreakdown, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.StreakFrozen(); ok {
		_spec.SetField(rewardevent.FieldStreakFrozen, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rewardevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RewardEventUpdateOne is the builder for updating a single RewardEvent entity.
type RewardEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RewardEventMutation
}

// SetEvaluationID sets the "evaluation_id" field.
func (_u *RewardEventUpdateOne) SetEvaluationID(v string) *RewardEventUpdateOne {
	_u.mutation.SetEvaluationID(v)
	return _u
}

// SetNillableEvaluationID sets the "evaluation_id" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableEvaluationID(v *string) *RewardEventUpdateOne {
	if v != nil {
		_u.SetEvaluationID(*v)
	}
	return _u
}

// SetXpTotal sets the "xp_total" field.
func (_u *RewardEventUpdateOne) SetXpTotal(v int) *RewardEventUpdateOne {
	_u.mutation.ResetXpTotal()
	_u.mutation.SetXpTotal(v)
	return _u
}

// SetNillableXpTotal sets the "xp_total" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableXpTotal(v *int) *RewardEventUpdateOne {
	if v != nil {
		_u.SetXpTotal(*v)
	}
	return _u
}

// AddXpTotal adds value to the "xp_total" field.
func (_u *RewardEventUpdateOne) AddXpTotal(v int) *RewardEventUpdateOne {
	_u.mutation.AddXpTotal(v)
	return _u
}

// SetCoinTotal sets the "coin_total" field.
func (_u *RewardEventUpdateOne) SetCoinTotal(v int) *RewardEventUpdateOne {
	_u.mutation.ResetCoinTotal()
	_u.mutation.SetCoinTotal(v)
	return _u
}

// SetNillableCoinTotal sets the "coin_total" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableCoinTotal(v *int) *RewardEventUpdateOne {
	if v != nil {
		_u.SetCoinTotal(*v)
	}
	return _u
}

// AddCoinTotal adds value to the "coin_total" field.
func (_u *RewardEventUpdateOne) AddCoinTotal(v int) *RewardEventUpdateOne {
	_u.mutation.AddCoinTotal(v)
	return _u
}

// SetXpBreakdown sets the "xp_breakdown" field.
func (_u *RewardEventUpdateOne) SetXpBreakdown(v map[string]interface{}) *RewardEventUpdateOne {
	_u.mutation.SetXpBreakdown(v)
	return _u
}

// SetCoinBreakdown sets the "coin_breakdown" field.
func (_u *RewardEventUpdateOne) SetCoinBreakdown(v map[string]interface{}) *RewardEventUpdateOne {
	_u.mutation.SetCoinBreakdown(v)
	return _u
}

// SetStreakFrozen sets the "streak_frozen" field.
func (_u *RewardEventUpdateOne) SetStreakFrozen(v bool) *RewardEventUpdateOne {
	_u.mutation.SetStreakFrozen(v)
	return _u
}

// SetNillableStreakFrozen sets the "streak_frozen" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableStreakFrozen(v *bool) *RewardEventUpdateOne {
	if v != nil {
		_u.SetStreakFrozen(*v)
	}
	return _u
}

// Mutation returns the RewardEventMutation object of the builder.
func (_u *RewardEventUpdateOne) Mutation() *RewardEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RewardEventUpdate builder.
func (_u *RewardEventUpdateOne) Where(ps ...predicate.RewardEvent) *RewardEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RewardEventUpdateOne) Select(field string, fields ...string) *RewardEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RewardEvent entity.
func (_u *RewardEventUpdateOne) Save(ctx context.Context) (*RewardEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RewardEventUpdateOne) SaveX(ctx context.Context) *RewardEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RewardEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RewardEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RewardEventUpdateOne) check() error {
	if v, ok := _u.mutation.EvaluationID(); ok {
		if err := rewardevent.EvaluationIDValidator(v); err != nil {
			return &ValidationError{Name: "evaluation_id", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.evaluation_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RewardEventUpdateOne) sqlSave(ctx context.Context) (_node *RewardEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rewardevent.Table, rewardevent.Columns, sqlgraph.NewFieldSpec(rewardevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RewardEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rewardevent.FieldID)
		for _, f := range fields {
			if !rewardevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rewardevent.FieldID {
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
		_spec.SetField(rewardevent.FieldEvaluationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpTotal(); ok {
		_spec.SetField(rewardevent.FieldXpTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpTotal(); ok {
		_spec.AddField(rewardevent.FieldXpTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CoinTotal(); ok {
		_spec.SetField(rewardevent.FieldCoinTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCoinTotal(); ok {
		_spec.AddField(rewardevent.FieldCoinTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpBreakdown(); ok {
		_spec.SetField(rewardevent.FieldXpBreakdown, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CoinBreakdown(); ok {
		_spec.SetField(rewardevent.FieldCoinBreakdown, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.StreakFrozen(); ok {
		_spec.SetField(rewardevent.FieldStreakFrozen, field.TypeBool, value)
	}
	_node = &RewardEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rewardevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
