// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionctl/missionctl/ent/checklistitem"
)

// ChecklistItemCreate is the builder for creating a ChecklistItem entity.
type ChecklistItemCreate struct {
	config
	mutation *ChecklistItemMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *ChecklistItemCreate) SetOwnerID(v string) *ChecklistItemCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *ChecklistItemCreate) SetTaskID(v string) *ChecklistItemCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetLabel sets the "label" field.
func (_c *ChecklistItemCreate) SetLabel(v string) *ChecklistItemCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetSortOrder sets the "sort_order" field.
func (_c *ChecklistItemCreate) SetSortOrder(v int) *ChecklistItemCreate {
	_c.mutation.SetSortOrder(v)
	return _c
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_c *ChecklistItemCreate) SetNillableSortOrder(v *int) *ChecklistItemCreate {
	if v != nil {
		_c.SetSortOrder(*v)
	}
	return _c
}

// SetDone sets the "done" field.
func (_c *ChecklistItemCreate) SetDone(v bool) *ChecklistItemCreate {
	_c.mutation.SetDone(v)
	return _c
}

// SetNillableDone sets the "done" field if the given value is not nil.
func (_c *ChecklistItemCreate) SetNillableDone(v *bool) *ChecklistItemCreate {
	if v != nil {
		_c.SetDone(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChecklistItemCreate) SetCreatedAt(v time.Time) *ChecklistItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChecklistItemCreate) SetNillableCreatedAt(v *time.Time) *ChecklistItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ChecklistItemCreate) SetUpdatedAt(v time.Time) *ChecklistItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ChecklistItemCreate) SetNillableUpdatedAt(v *time.Time) *ChecklistItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChecklistItemCreate) SetID(v string) *ChecklistItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ChecklistItemMutation object of the builder.
func (_c *ChecklistItemCreate) Mutation() *ChecklistItemMutation {
	return _c.mutation
}

// Save creates the ChecklistItem in the database.
func (_c *ChecklistItemCreate) Save(ctx context.Context) (*ChecklistItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChecklistItemCreate) SaveX(ctx context.Context) *ChecklistItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChecklistItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChecklistItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChecklistItemCreate) defaults() {
	if _, ok := _c.mutation.SortOrder(); !ok {
		v := checklistitem.DefaultSortOrder
		_c.mutation.SetSortOrder(v)
	}
	if _, ok := _c.mutation.Done(); !ok {
		v := checklistitem.DefaultDone
		_c.mutation.SetDone(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := checklistitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := checklistitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChecklistItemCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "ChecklistItem.owner_id"`)}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "ChecklistItem.task_id"`)}
	}
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required field "ChecklistItem.label"`)}
	}
	if v, ok := _c.mutation.Label(); ok {
		if err := checklistitem.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "ChecklistItem.label": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		return &ValidationError{Name: "sort_order", err: errors.New(`ent: missing required field "ChecklistItem.sort_order"`)}
	}
	if _, ok := _c.mutation.Done(); !ok {
		return &ValidationError{Name: "done", err: errors.New(`ent: missing required field "ChecklistItem.done"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChecklistItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ChecklistItem.updated_at"`)}
	}
	return nil
}

func (_c *ChecklistItemCreate) sqlSave(ctx context.Context) (*ChecklistItem, error) {
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
			return nil, fmt.Errorf("unexpected ChecklistItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChecklistItemCreate) createSpec() (*ChecklistItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ChecklistItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(checklistitem.Table, sqlgraph.NewFieldSpec(checklistitem.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(checklistitem.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(checklistitem.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(checklistitem.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.SortOrder(); ok {
		_spec.SetField(checklistitem.FieldSortOrder, field.TypeInt, value)
		_node.SortOrder = value
	}
	if value, ok := _c.mutation.Done(); ok {
		_spec.SetField(checklistitem.FieldDone, field.TypeBool, value)
		_node.Done = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(checklistitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(checklistitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ChecklistItemCreateBulk is the builder for creating many ChecklistItem entities in bulk.
type ChecklistItemCreateBulk struct {
	config
	err      error
	builders []*ChecklistItemCreate
}

// Save creates the ChecklistItem entities in the database.
func (_c *ChecklistItemCreateBulk) Save(ctx context.Context) ([]*ChecklistItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChecklistItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChecklistItemMutation)
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
func (_c *ChecklistItemCreateBulk) SaveX(ctx context.Context) []*ChecklistItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChecklistItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChecklistItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
