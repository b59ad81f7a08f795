// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/ent/rewardevent"
)

// RewardEventCreate is the builder for creating a RewardEvent entity.
type RewardEventCreate struct {
	config
	mutation *RewardEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *RewardEventCreate) SetSequence(v int64) *RewardEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RewardEventCreate) SetTimestamp(v time.Time) *RewardEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RewardEventCreate) SetNillableTimestamp(v *time.Time) *RewardEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetEvaluationID sets the "evaluation_id" field.
func (_c *RewardEventCreate) SetEvaluationID(v string) *RewardEventCreate {
	_c.mutation.SetEvaluationID(v)
	return _c
}

// SetXpTotal sets the "xp_total" field.
func (_c *RewardEventCreate) SetXpTotal(v int) *RewardEventCreate {
	_c.mutation.SetXpTotal(v)
	return _c
}

// SetCoinTotal sets the "coin_total" field.
func (_c *RewardEventCreate) SetCoinTotal(v int) *RewardEventCreate {
	_c.mutation.SetCoinTotal(v)
	return _c
}

// SetXpBreakdown sets the "xp_breakdown" field.
func (_c *RewardEventCreate) SetXpBreakdown(v map[string]interface{}) *RewardEventCreate {
	_c.mutation.SetXpBreakdown(v)
	return _c
}

// SetCoinBreakdown sets the "coin_breakdown" field.
func (_c *RewardEventCreate) SetCoinBreakdown(v map[string]interface{}) *RewardEventCreate {
	_c.mutation.SetCoinBreakdown(v)
	return _c
}

// SetStreakFrozen sets the "streak_frozen" field.
func (_c *RewardEventCreate) SetStreakFrozen(v bool) *RewardEventCreate {
	_c.mutation.SetStreakFrozen(v)
	return _c
}

// SetNillableStreakFrozen sets the "streak_frozen" field if the given value is not nil.
func (_c *RewardEventCreate) SetNillableStreakFrozen(v *bool) *RewardEventCreate {
	if v != nil {
		_c.SetStreakFrozen(*v)
	}
	return _c
}

// Mutation returns the RewardEventMutation object of the builder.
func (_c *RewardEventCreate) Mutation() *RewardEventMutation {
	return _c.mutation
}

// Save creates the RewardEvent in the database.
func (_c *RewardEventCreate) Save(ctx context.Context) (*RewardEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RewardEventCreate) SaveX(ctx context.Context) *RewardEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RewardEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RewardEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RewardEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := rewardevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.StreakFrozen(); !ok {
		v := rewardevent.DefaultStreakFrozen
		_c.mutation.SetStreakFrozen(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RewardEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RewardEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RewardEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.EvaluationID(); !ok {
		return &ValidationError{Name: "evaluation_id", err: errors.New(`ent: missing required field "RewardEvent.evaluation_id"`)}
	}
	if v, ok := _c.mutation.EvaluationID(); ok {
		if err := rewardevent.EvaluationIDValidator(v); err != nil {
			return &ValidationError{Name: "evaluation_id", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.evaluation_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.XpTotal(); !ok {
		return &ValidationError{Name: "xp_total", err: errors.New(`ent: missing required field "RewardEvent.xp_total"`)}
	}
	if _, ok := _c.mutation.CoinTotal(); !ok {
		return &ValidationError{Name: "coin_total", err: errors.New(`ent: missing required field "RewardEvent.coin_total"`)}
	}
	if _, ok := _c.mutation.XpBreakdown(); !ok {
		return &ValidationError{Name: "xp_breakdown", err: errors.New(`ent: missing required field "RewardEvent.xp_breakdown"`)}
	}
	if _, ok := _c.mutation.CoinBreakdown(); !ok {
		return &ValidationError{Name: "coin_breakdown", err: errors.New(`ent: missing required field "RewardEvent.coin_breakdown"`)}
	}
	if _, ok := _c.mutation.StreakFrozen(); !ok {
		return &ValidationError{Name: "streak_frozen", err: errors.New(`ent: missing required field "RewardEvent.streak_frozen"`)}
	}
	return nil
}

func (_c *RewardEventCreate) sqlSave(ctx context.Context) (*RewardEvent, error) {
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

func (_c *RewardEventCreate) createSpec() (*RewardEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RewardEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rewardevent.Table, sqlgraph.NewFieldSpec(rewardevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(rewardevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(rewardevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.EvaluationID(); ok {
		_spec.SetField(rewardevent.FieldEvaluationID, field.TypeString, value)
		_node.EvaluationID = value
	}
	if value, ok := _c.mutation.XpTotal(); ok {
		_spec.SetField(rewardevent.FieldXpTotal, field.TypeInt, value)
		_node.XpTotal = value
	}
	if value, ok := _c.mutation.CoinTotal(); ok {
		_spec.SetField(rewardevent.FieldCoinTotal, field.TypeInt, value)
		_node.CoinTotal = value
	}
	if value, ok := _c.mutation.XpBreakdown(); ok {
		_spec.SetField(rewardevent.FieldXpBreakdown, field.TypeJSON, value)
		_node.XpBreakdown = value
	}
	if value, ok := _c.mutation.CoinBreakdown(); ok {
		_spec.SetField(rewardevent.FieldCoinBreakdown, field.TypeJSON, value)
		_node.CoinBreakdown = value
	}
	if value, ok := _c.mutation.StreakFrozen(); ok {
		_spec.SetField(rewardevent.FieldStreakFrozen, field.TypeBool, value)
		_node.StreakFrozen = value
	}
	return _node, _spec
}

// RewardEventCreateBulk is the builder for creating many RewardEvent entities in bulk.
type RewardEventCreateBulk struct {
	config
	err      error
	builders []*RewardEventCreate
}

// Save creates the RewardEvent entities in the database.
func (_c *RewardEventCreateBulk) Save(ctx context.Context) ([]*RewardEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RewardEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RewardEventMutation)
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
func (_c *RewardEventCreateBulk) SaveX(ctx context.Context) []*RewardEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RewardEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RewardEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
