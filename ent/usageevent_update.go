// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionctl/missionctl/ent/predicate"
	"github.com/missionctl/missionctl/ent/usageevent"
)

// UsageEventUpdate is the builder for updating UsageEvent entities.
type UsageEventUpdate struct {
	config
	hooks    []Hook
	mutation *UsageEventMutation
}

// Where appends a list predicates to the UsageEventUpdate builder.
func (_u *UsageEventUpdate) Where(ps ...predicate.UsageEvent) *UsageEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the UsageEventMutation object of the builder.
func (_u *UsageEventUpdate) Mutation() *UsageEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UsageEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UsageEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UsageEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(usageevent.Table, usageevent.Columns, sqlgraph.NewFieldSpec(usageevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.InputTokensCleared() {
		_spec.ClearField(usageevent.FieldInputTokens, field.TypeInt)
	}
	if _u.mutation.OutputTokensCleared() {
		_spec.ClearField(usageevent.FieldOutputTokens, field.TypeInt)
	}
	if _u.mutation.TotalTokensCleared() {
		_spec.ClearField(usageevent.FieldTotalTokens, field.TypeInt)
	}
	if _u.mutation.EstimatedCostUsdCleared() {
		_spec.ClearField(usageevent.FieldEstimatedCostUsd, field.TypeFloat64)
	}
	if _u.mutation.CacheStatusCleared() {
		_spec.ClearField(usageevent.FieldCacheStatus, field.TypeString)
	}
	if _u.mutation.RequestFingerprintCleared() {
		_spec.ClearField(usageevent.FieldRequestFingerprint, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usageevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UsageEventUpdateOne is the builder for updating a single UsageEvent entity.
type UsageEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UsageEventMutation
}

// Mutation returns the UsageEventMutation object of the builder.
func (_u *UsageEventUpdateOne) Mutation() *UsageEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the UsageEventUpdate builder.
func (_u *UsageEventUpdateOne) Where(ps ...predicate.UsageEvent) *UsageEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UsageEventUpdateOne) Select(field string, fields ...string) *UsageEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UsageEvent entity.
func (_u *UsageEventUpdateOne) Save(ctx context.Context) (*UsageEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageEventUpdateOne) SaveX(ctx context.Context) *UsageEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UsageEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UsageEventUpdateOne) sqlSave(ctx context.Context) (_node *UsageEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(usageevent.Table, usageevent.Columns, sqlgraph.NewFieldSpec(usageevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UsageEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usageevent.FieldID)
		for _, f := range fields {
			if !usageevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usageevent.FieldID {
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
	if _u.mutation.InputTokensCleared() {
		_spec.ClearField(usageevent.FieldInputTokens, field.TypeInt)
	}
	if _u.mutation.OutputTokensCleared() {
		_spec.ClearField(usageevent.FieldOutputTokens, field.TypeInt)
	}
	if _u.mutation.TotalTokensCleared() {
		_spec.ClearField(usageevent.FieldTotalTokens, field.TypeInt)
	}
	if _u.mutation.EstimatedCostUsdCleared() {
		_spec.ClearField(usageevent.FieldEstimatedCostUsd, field.TypeFloat64)
	}
	if _u.mutation.CacheStatusCleared() {
		_spec.ClearField(usageevent.FieldCacheStatus, field.TypeString)
	}
	if _u.mutation.RequestFingerprintCleared() {
		_spec.ClearField(usageevent.FieldRequestFingerprint, field.TypeString)
	}
	_node = &UsageEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usageevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
