// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionctl/missionctl/ent/focusdirective"
	"github.com/missionctl/missionctl/ent/predicate"
)

// FocusDirectiveDelete is the builder for deleting a FocusDirective entity.
type FocusDirectiveDelete struct {
	config
	hooks    []Hook
	mutation *FocusDirectiveMutation
}

// Where appends a list predicates to the FocusDirectiveDelete builder.
func (_d *FocusDirectiveDelete) Where(ps ...predicate.FocusDirective) *FocusDirectiveDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FocusDirectiveDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FocusDirectiveDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FocusDirectiveDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(focusdirective.Table, sqlgraph.NewFieldSpec(focusdirective.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// FocusDirectiveDeleteOne is the builder for deleting a single FocusDirective entity.
type FocusDirectiveDeleteOne struct {
	_d *FocusDirectiveDelete
}

// Where appends a list predicates to the FocusDirectiveDelete builder.
func (_d *FocusDirectiveDeleteOne) Where(ps ...predicate.FocusDirective) *FocusDirectiveDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FocusDirectiveDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{focusdirective.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FocusDirectiveDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
