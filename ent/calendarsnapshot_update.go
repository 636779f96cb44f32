// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionctl/missionctl/ent/calendarsnapshot"
	"github.com/missionctl/missionctl/ent/predicate"
)

// CalendarSnapshotUpdate is the builder for updating CalendarSnapshot entities.
type CalendarSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *CalendarSnapshotMutation
}

// Where appends a list predicates to the CalendarSnapshotUpdate builder.
func (_u *CalendarSnapshotUpdate) Where(ps ...predicate.CalendarSnapshot) *CalendarSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the CalendarSnapshotMutation object of the builder.
func (_u *CalendarSnapshotUpdate) Mutation() *CalendarSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CalendarSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalendarSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CalendarSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalendarSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CalendarSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(calendarsnapshot.Table, calendarsnapshot.Columns, sqlgraph.NewFieldSpec(calendarsnapshot.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CalendarSnapshotUpdateOne is the builder for updating a single CalendarSnapshot entity.
type CalendarSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CalendarSnapshotMutation
}

// Mutation returns the CalendarSnapshotMutation object of the builder.
func (_u *CalendarSnapshotUpdateOne) Mutation() *CalendarSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the CalendarSnapshotUpdate builder.
func (_u *CalendarSnapshotUpdateOne) Where(ps ...predicate.CalendarSnapshot) *CalendarSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CalendarSnapshotUpdateOne) Select(field string, fields ...string) *CalendarSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CalendarSnapshot entity.
func (_u *CalendarSnapshotUpdateOne) Save(ctx context.Context) (*CalendarSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalendarSnapshotUpdateOne) SaveX(ctx context.Context) *CalendarSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CalendarSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalendarSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CalendarSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *CalendarSnapshot, err error) {
	_spec := sqlgraph.NewUpdateSpec(calendarsnapshot.Table, calendarsnapshot.Columns, sqlgraph.NewFieldSpec(calendarsnapshot.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CalendarSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, calendarsnapshot.FieldID)
		for _, f := range fields {
			if !calendarsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != calendarsnapshot.FieldID {
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
	_node = &CalendarSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
