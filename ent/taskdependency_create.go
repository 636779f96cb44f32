// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionctl/missionctl/ent/taskdependency"
)

// TaskDependencyCreate is the builder for creating a TaskDependency entity.
type TaskDependencyCreate struct {
	config
	mutation *TaskDependencyMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *TaskDependencyCreate) SetOwnerID(v string) *TaskDependencyCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *TaskDependencyCreate) SetTaskID(v string) *TaskDependencyCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetDependsOnTaskID sets the "depends_on_task_id" field.
func (_c *TaskDependencyCreate) SetDependsOnTaskID(v string) *TaskDependencyCreate {
	_c.mutation.SetDependsOnTaskID(v)
	return _c
}

// SetNillableDependsOnTaskID sets the "depends_on_task_id" field if the given value is not nil.
func (_c *TaskDependencyCreate) SetNillableDependsOnTaskID(v *string) *TaskDependencyCreate {
	if v != nil {
		_c.SetDependsOnTaskID(*v)
	}
	return _c
}

// SetDependsOnCommitmentID sets the "depends_on_commitment_id" field.
func (_c *TaskDependencyCreate) SetDependsOnCommitmentID(v string) *TaskDependencyCreate {
	_c.mutation.SetDependsOnCommitmentID(v)
	return _c
}

// SetNillableDependsOnCommitmentID sets the "depends_on_commitment_id" field if the given value is not nil.
func (_c *TaskDependencyCreate) SetNillableDependsOnCommitmentID(v *string) *TaskDependencyCreate {
	if v != nil {
		_c.SetDependsOnCommitmentID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskDependencyCreate) SetCreatedAt(v time.Time) *TaskDependencyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskDependencyCreate) SetNillableCreatedAt(v *time.Time) *TaskDependencyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskDependencyCreate) SetID(v string) *TaskDependencyCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TaskDependencyMutation object of the builder.
func (_c *TaskDependencyCreate) Mutation() *TaskDependencyMutation {
	return _c.mutation
}

// Save creates the TaskDependency in the database.
func (_c *TaskDependencyCreate) Save(ctx context.Context) (*TaskDependency, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskDependencyCreate) SaveX(ctx context.Context) *TaskDependency {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskDependencyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskDependencyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskDependencyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := taskdependency.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskDependencyCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "TaskDependency.owner_id"`)}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "TaskDependency.task_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TaskDependency.created_at"`)}
	}
	return nil
}

func (_c *TaskDependencyCreate) sqlSave(ctx context.Context) (*TaskDependency, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected TaskDependency.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskDependencyCreate) createSpec() (*TaskDependency, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskDependency{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskdependency.Table, sqlgraph.NewFieldSpec(taskdependency.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(taskdependency.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(taskdependency.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.DependsOnTaskID(); ok {
		_spec.SetField(taskdependency.FieldDependsOnTaskID, field.TypeString, value)
		_node.DependsOnTaskID = &value
	}
	if value, ok := _c.mutation.DependsOnCommitmentID(); ok {
		_spec.SetField(taskdependency.FieldDependsOnCommitmentID, field.TypeString, value)
		_node.DependsOnCommitmentID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(taskdependency.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TaskDependencyCreateBulk is the builder for creating many TaskDependency entities in bulk.
type TaskDependencyCreateBulk struct {
	config
	err      error
	builders []*TaskDependencyCreate
}

// Save creates the TaskDependency entities in the database.
func (_c *TaskDependencyCreateBulk) Save(ctx context.Context) ([]*TaskDependency, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskDependency, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskDependencyMutation)
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
func (_c *TaskDependencyCreateBulk) SaveX(ctx context.Context) []*TaskDependency {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskDependencyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskDependencyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
