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
	"github.com/missionctl/missionctl/ent/taskdependency"
)

// TaskDependencyUpdate is the builder for updating TaskDependency entities.
type TaskDependencyUpdate struct {
	config
	hooks    []Hook
	mutation *TaskDependencyMutation
}

// Where appends a list predicates to the TaskDependencyUpdate builder.
func (_u *TaskDependencyUpdate) Where(ps ...predicate.TaskDependency) *TaskDependencyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the TaskDependencyMutation object of the builder.
func (_u *TaskDependencyUpdate) Mutation() *TaskDependencyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskDependencyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskDependencyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskDependencyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskDependencyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TaskDependencyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(taskdependency.Table, taskdependency.Columns, sqlgraph.NewFieldSpec(taskdependency.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.DependsOnTaskIDCleared() {
		_spec.ClearField(taskdependency.FieldDependsOnTaskID, field.TypeString)
	}
	if _u.mutation.DependsOnCommitmentIDCleared() {
		_spec.ClearField(taskdependency.FieldDependsOnCommitmentID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskdependency.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskDependencyUpdateOne is the builder for updating a single TaskDependency entity.
type TaskDependencyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskDependencyMutation
}

// Mutation returns the TaskDependencyMutation object of the builder.
func (_u *TaskDependencyUpdateOne) Mutation() *TaskDependencyMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskDependencyUpdate builder.
func (_u *TaskDependencyUpdateOne) Where(ps ...predicate.TaskDependency) *TaskDependencyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskDependencyUpdateOne) Select(field string, fields ...string) *TaskDependencyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskDependency entity.
func (_u *TaskDependencyUpdateOne) Save(ctx context.Context) (*TaskDependency, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskDependencyUpdateOne) SaveX(ctx context.Context) *TaskDependency {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskDependencyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskDependencyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TaskDependencyUpdateOne) sqlSave(ctx context.Context) (_node *TaskDependency, err error) {
	_spec := sqlgraph.NewUpdateSpec(taskdependency.Table, taskdependency.Columns, sqlgraph.NewFieldSpec(taskdependency.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskDependency.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskdependency.FieldID)
		for _, f := range fields {
			if !taskdependency.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taskdependency.FieldID {
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
	if _u.mutation.DependsOnTaskIDCleared() {
		_spec.ClearField(taskdependency.FieldDependsOnTaskID, field.TypeString)
	}
	if _u.mutation.DependsOnCommitmentIDCleared() {
		_spec.ClearField(taskdependency.FieldDependsOnCommitmentID, field.TypeString)
	}
	_node = &TaskDependency{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskdependency.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
