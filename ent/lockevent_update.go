// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"focuslock/ent/lockevent"
	"focuslock/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
)

// LockEventUpdate is the builder for updating LockEvent entities.
type LockEventUpdate struct {
	config
	hooks    []Hook
	mutation *LockEventMutation
}

// Where appends a list predicates to the LockEventUpdate builder.
func (_u *LockEventUpdate) Where(ps ...predicate.LockEvent) *LockEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLockID sets the "lock_id" field.
func (_u *LockEventUpdate) SetLockID(v string) *LockEventUpdate {
	_u.mutation.SetLockID(v)
	return _u
}

// SetNillableLockID sets the "lock_id" field if the given value is not nil.
func (_u *LockEventUpdate) SetNillableLockID(v *string) *LockEventUpdate {
	if v != nil {
		_u.SetLockID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *LockEventUpdate) SetAction(v string) *LockEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *LockEventUpdate) SetNillableAction(v *string) *LockEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *LockEventUpdate) SetKind(v string) *LockEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *LockEventUpdate) SetNillableKind(v *string) *LockEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetAppIds sets the "app_ids" field.
func (_u *LockEventUpdate) SetAppIds(v []string) *LockEventUpdate {
	_u.mutation.SetAppIds(v)
	return _u
}

// AppendAppIds appends value to the "app_ids" field.
func (_u *LockEventUpdate) AppendAppIds(v []string) *LockEventUpdate {
	_u.mutation.AppendAppIds(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *LockEventUpdate) SetDurationMs(v int64) *LockEventUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *LockEventUpdate) SetNillableDurationMs(v *int64) *LockEventUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *LockEventUpdate) AddDurationMs(v int64) *LockEventUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *LockEventUpdate) SetTrigger(v string) *LockEventUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *LockEventUpdate) SetNillableTrigger(v *string) *LockEventUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetScheduleID sets the "schedule_id" field.
func (_u *LockEventUpdate) SetScheduleID(v string) *LockEventUpdate {
	_u.mutation.SetScheduleID(v)
	return _u
}

// SetNillableScheduleID sets the "schedule_id" field if the given value is not nil.
func (_u *LockEventUpdate) SetNillableScheduleID(v *string) *LockEventUpdate {
	if v != nil {
		_u.SetScheduleID(*v)
	}
	return _u
}

// Mutation returns the LockEventMutation object of the builder.
func (_u *LockEventUpdate) Mutation() *LockEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LockEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LockEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LockEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LockEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LockEventUpdate) check() error {
	if v, ok := _u.mutation.LockID(); ok {
		if err := lockevent.LockIDValidator(v); err != nil {
			return &ValidationError{Name: "lock_id", err: fmt.Errorf(`ent: validator failed for field "LockEvent.lock_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := lockevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "LockEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := lockevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "LockEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *LockEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lockevent.Table, lockevent.Columns, sqlgraph.NewFieldSpec(lockevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LockID(); ok {
		_spec.SetField(lockevent.FieldLockID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(lockevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(lockevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.AppIds(); ok {
		_spec.SetField(lockevent.FieldAppIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAppIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lockevent.FieldAppIds, value)
		})
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(lockevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(lockevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(lockevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScheduleID(); ok {
		_spec.SetField(lockevent.FieldScheduleID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lockevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LockEventUpdateOne is the builder for updating a single LockEvent entity.
type LockEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LockEventMutation
}

// SetLockID sets the "lock_id" field.
func (_u *LockEventUpdateOne) SetLockID(v string) *LockEventUpdateOne {
	_u.mutation.SetLockID(v)
	return _u
}

// SetNillableLockID sets the "lock_id" field if the given value is not nil.
func (_u *LockEventUpdateOne) SetNillableLockID(v *string) *LockEventUpdateOne {
	if v != nil {
		_u.SetLockID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *LockEventUpdateOne) SetAction(v string) *LockEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *LockEventUpdateOne) SetNillableAction(v *string) *LockEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *LockEventUpdateOne) SetKind(v string) *LockEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *LockEventUpdateOne) SetNillableKind(v *string) *LockEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetAppIds sets the "app_ids" field.
func (_u *LockEventUpdateOne) SetAppIds(v []string) *LockEventUpdateOne {
	_u.mutation.SetAppIds(v)
	return _u
}

// AppendAppIds appends value to the "app_ids" field.
func (_u *LockEventUpdateOne) AppendAppIds(v []string) *LockEventUpdateOne {
	_u.mutation.AppendAppIds(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *LockEventUpdateOne) SetDurationMs(v int64) *LockEventUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *LockEventUpdateOne) SetNillableDurationMs(v *int64) *LockEventUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *LockEventUpdateOne) AddDurationMs(v int64) *LockEventUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *LockEventUpdateOne) SetTrigger(v string) *LockEventUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *LockEventUpdateOne) SetNillableTrigger(v *string) *LockEventUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetScheduleID sets the "schedule_id" field.
func (_u *LockEventUpdateOne) SetScheduleID(v string) *LockEventUpdateOne {
	_u.mutation.SetScheduleID(v)
	return _u
}

// SetNillableScheduleID sets the "schedule_id" field if the given value is not nil.
func (_u *LockEventUpdateOne) SetNillableScheduleID(v *string) *LockEventUpdateOne {
	if v != nil {
		_u.SetScheduleID(*v)
	}
	return _u
}

// Mutation returns the LockEventMutation object of the builder.
func (_u *LockEventUpdateOne) Mutation() *LockEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the LockEventUpdate builder.
func (_u *LockEventUpdateOne) Where(ps ...predicate.LockEvent) *LockEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LockEventUpdateOne) Select(field string, fields ...string) *LockEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LockEvent entity.
func (_u *LockEventUpdateOne) Save(ctx context.Context) (*LockEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LockEventUpdateOne) SaveX(ctx context.Context) *LockEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LockEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LockEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LockEventUpdateOne) check() error {
	if v, ok := _u.mutation.LockID(); ok {
		if err := lockevent.LockIDValidator(v); err != nil {
			return &ValidationError{Name: "lock_id", err: fmt.Errorf(`ent: validator failed for field "LockEvent.lock_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := lockevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "LockEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := lockevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "LockEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *LockEventUpdateOne) sqlSave(ctx context.Context) (_node *LockEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lockevent.Table, lockevent.Columns, sqlgraph.NewFieldSpec(lockevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LockEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lockevent.FieldID)
		for _, f := range fields {
			if !lockevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lockevent.FieldID {
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
	if value, ok := _u.mutation.LockID(); ok {
		_spec.SetField(lockevent.FieldLockID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(lockevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(lockevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.AppIds(); ok {
		_spec.SetField(lockevent.FieldAppIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAppIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lockevent.FieldAppIds, value)
		})
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(lockevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(lockevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(lockevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScheduleID(); ok {
		_spec.SetField(lockevent.FieldScheduleID, field.TypeString, value)
	}
	_node = &LockEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lockevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
