// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionctl/missionctl/ent/ingestionevent"
	"github.com/missionctl/missionctl/ent/predicate"
)

// IngestionEventUpdate is the builder for updating IngestionEvent entities.
type IngestionEventUpdate struct {
	config
	hooks    []Hook
	mutation *IngestionEventMutation
}

// Where appends a list predicates to the IngestionEventUpdate builder.
func (_u *IngestionEventUpdate) Where(ps ...predicate.IngestionEvent) *IngestionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the IngestionEventMutation object of the builder.
func (_u *IngestionEventUpdate) Mutation() *IngestionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IngestionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IngestionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *IngestionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(ingestionevent.Table, ingestionevent.Columns, sqlgraph.NewFieldSpec(ingestionevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.InboxItemIDCleared() {
		_spec.ClearField(ingestionevent.FieldInboxItemID, field.TypeString)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(ingestionevent.FieldDetail, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IngestionEventUpdateOne is the builder for updating a single IngestionEvent entity.
type IngestionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IngestionEventMutation
}

// Mutation returns the IngestionEventMutation object of the builder.
func (_u *IngestionEventUpdateOne) Mutation() *IngestionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the IngestionEventUpdate builder.
func (_u *IngestionEventUpdateOne) Where(ps ...predicate.IngestionEvent) *IngestionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IngestionEventUpdateOne) Select(field string, fields ...string) *IngestionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IngestionEvent entity.
func (_u *IngestionEventUpdateOne) Save(ctx context.Context) (*IngestionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestionEventUpdateOne) SaveX(ctx context.Context) *IngestionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IngestionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *IngestionEventUpdateOne) sqlSave(ctx context.Context) (_node *IngestionEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(ingestionevent.Table, ingestionevent.Columns, sqlgraph.NewFieldSpec(ingestionevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IngestionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ingestionevent.FieldID)
		for _, f := range fields {
			if !ingestionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ingestionevent.FieldID {
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
	if _u.mutation.InboxItemIDCleared() {
		_spec.ClearField(ingestionevent.FieldInboxItemID, field.TypeString)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(ingestionevent.FieldDetail, field.TypeString)
	}
	_node = &IngestionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
