// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"focuslock/ent/lockevent"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// LockEventCreate is the builder for creating a LockEvent entity.
type LockEventCreate struct {
	config
	mutation *LockEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *LockEventCreate) SetSequence(v int64) *LockEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *LockEventCreate) SetTimestamp(v time.Time) *LockEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *LockEventCreate) SetNillableTimestamp(v *time.Time) *LockEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetLockID sets the "lock_id" field.
func (_c *LockEventCreate) SetLockID(v string) *LockEventCreate {
	_c.mutation.SetLockID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *LockEventCreate) SetAction(v string) *LockEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *LockEventCreate) SetKind(v string) *LockEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetAppIds sets the "app_ids" field.
func (_c *LockEventCreate) SetAppIds(v []string) *LockEventCreate {
	_c.mutation.SetAppIds(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *LockEventCreate) SetDurationMs(v int64) *LockEventCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *LockEventCreate) SetNillableDurationMs(v *int64) *LockEventCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *LockEventCreate) SetTrigger(v string) *LockEventCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_c *LockEventCreate) SetNillableTrigger(v *string) *LockEventCreate {
	if v != nil {
		_c.SetTrigger(*v)
	}
	return _c
}

// SetScheduleID sets the "schedule_id" field.
func (_c *LockEventCreate) SetScheduleID(v string) *LockEventCreate {
	_c.mutation.SetScheduleID(v)
	return _c
}

// SetNillableScheduleID sets the "schedule_id" field if the given value is not nil.
func (_c *LockEventCreate) SetNillableScheduleID(v *string) *LockEventCreate {
	if v != nil {
		_c.SetScheduleID(*v)
	}
	return _c
}

// Mutation returns the LockEventMutation object of the builder.
func (_c *LockEventCreate) Mutation() *LockEventMutation {
	return _c.mutation
}

// Save creates the LockEvent in the database.
func (_c *LockEventCreate) Save(ctx context.Context) (*LockEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LockEventCreate) SaveX(ctx context.Context) *LockEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LockEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LockEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LockEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := lockevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := lockevent.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		v := lockevent.DefaultTrigger
		_c.mutation.SetTrigger(v)
	}
	if _, ok := _c.mutation.ScheduleID(); !ok {
		v := lockevent.DefaultScheduleID
		_c.mutation.SetScheduleID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LockEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "LockEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "LockEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.LockID(); !ok {
		return &ValidationError{Name: "lock_id", err: errors.New(`ent: missing required field "LockEvent.lock_id"`)}
	}
	if v, ok := _c.mutation.LockID(); ok {
		if err := lockevent.LockIDValidator(v); err != nil {
			return &ValidationError{Name: "lock_id", err: fmt.Errorf(`ent: validator failed for field "LockEvent.lock_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "LockEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := lockevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "LockEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "LockEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := lockevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "LockEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AppIds(); !ok {
		return &ValidationError{Name: "app_ids", err: errors.New(`ent: missing required field "LockEvent.app_ids"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "LockEvent.duration_ms"`)}
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required field "LockEvent.trigger"`)}
	}
	if _, ok := _c.mutation.ScheduleID(); !ok {
		return &ValidationError{Name: "schedule_id", err: errors.New(`ent: missing required field "LockEvent.schedule_id"`)}
	}
	return nil
}

func (_c *LockEventCreate) sqlSave(ctx context.Context) (*LockEvent, error) {
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

func (_c *LockEventCreate) createSpec() (*LockEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &LockEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lockevent.Table, sqlgraph.NewFieldSpec(lockevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(lockevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(lockevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.LockID(); ok {
		_spec.SetField(lockevent.FieldLockID, field.TypeString, value)
		_node.LockID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(lockevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(lockevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.AppIds(); ok {
		_spec.SetField(lockevent.FieldAppIds, field.TypeJSON, value)
		_node.AppIds = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(lockevent.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(lockevent.FieldTrigger, field.TypeString, value)
		_node.Trigger = value
	}
	if value, ok := _c.mutation.ScheduleID(); ok {
		_spec.SetField(lockevent.FieldScheduleID, field.TypeString, value)
		_node.ScheduleID = value
	}
	return _node, _spec
}

// LockEventCreateBulk is the builder for creating many LockEvent entities in bulk.
type LockEventCreateBulk struct {
	config
	err      error
	builders []*LockEventCreate
}

// Save creates the LockEvent entities in the database.
func (_c *LockEventCreateBulk) Save(ctx context.Context) ([]*LockEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LockEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LockEventMutation)
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
func (_c *LockEventCreateBulk) SaveX(ctx context.Context) []*LockEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LockEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LockEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
