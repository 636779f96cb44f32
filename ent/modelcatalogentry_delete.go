// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionctl/missionctl/ent/modelcatalogentry"
	"github.com/missionctl/missionctl/ent/predicate"
)

// ModelCatalogEntryDelete is the builder for deleting a ModelCatalogEntry entity.
type ModelCatalogEntryDelete struct {
	config
	hooks    []Hook
	mutation *ModelCatalogEntryMutation
}

// Where appends a list predicates to the ModelCatalogEntryDelete builder.
func (_d *ModelCatalogEntryDelete) Where(ps ...predicate.ModelCatalogEntry) *ModelCatalogEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ModelCatalogEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ModelCatalogEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ModelCatalogEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(modelcatalogentry.Table, sqlgraph.NewFieldSpec(modelcatalogentry.FieldID, field.TypeString))
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

// ModelCatalogEntryDeleteOne is the builder for deleting a single ModelCatalogEntry entity.
type ModelCatalogEntryDeleteOne struct {
	_d *ModelCatalogEntryDelete
}

// Where appends a list predicates to the ModelCatalogEntryDelete builder.
func (_d *ModelCatalogEntryDeleteOne) Where(ps ...predicate.ModelCatalogEntry) *ModelCatalogEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ModelCatalogEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{modelcatalogentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ModelCatalogEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
