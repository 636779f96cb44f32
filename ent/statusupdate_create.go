// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionctl/missionctl/ent/statusupdate"
)

// StatusUpdateCreate is the builder for creating a StatusUpdate entity.
type StatusUpdateCreate struct {
	config
	mutation *StatusUpdateMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *StatusUpdateCreate) SetOwnerID(v string) *StatusUpdateCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetApplicationID sets the "application_id" field.
func (_c *StatusUpdateCreate) SetApplicationID(v string) *StatusUpdateCreate {
	_c.mutation.SetApplicationID(v)
	return _c
}

// SetSnippet sets the "snippet" field.
func (_c *StatusUpdateCreate) SetSnippet(v string) *StatusUpdateCreate {
	_c.mutation.SetSnippet(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StatusUpdateCreate) SetCreatedAt(v time.Time) *StatusUpdateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StatusUpdateCreate) SetNillableCreatedAt(v *time.Time) *StatusUpdateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StatusUpdateCreate) SetID(v string) *StatusUpdateCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StatusUpdateMutation object of the builder.
func (_c *StatusUpdateCreate) Mutation() *StatusUpdateMutation {
	return _c.mutation
}

// Save creates the StatusUpdate in the database.
func (_c *StatusUpdateCreate) Save(ctx context.Context) (*StatusUpdate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StatusUpdateCreate) SaveX(ctx context.Context) *StatusUpdate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StatusUpdateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StatusUpdateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StatusUpdateCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := statusupdate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StatusUpdateCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "StatusUpdate.owner_id"`)}
	}
	if _, ok := _c.mutation.ApplicationID(); !ok {
		return &ValidationError{Name: "application_id", err: errors.New(`ent: missing required field "StatusUpdate.application_id"`)}
	}
	if _, ok := _c.mutation.Snippet(); !ok {
		return &ValidationError{Name: "snippet", err: errors.New(`ent: missing required field "StatusUpdate.snippet"`)}
	}
	if v, ok := _c.mutation.Snippet(); ok {
		if err := statusupdate.SnippetValidator(v); err != nil {
			return &ValidationError{Name: "snippet", err: fmt.Errorf(`ent: validator failed for field "StatusUpdate.snippet": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StatusUpdate.created_at"`)}
	}
	return nil
}

func (_c *StatusUpdateCreate) sqlSave(ctx context.Context) (*StatusUpdate, error) {
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
			return nil, fmt.Errorf("unexpected StatusUpdate.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StatusUpdateCreate) createSpec() (*StatusUpdate, *sqlgraph.CreateSpec) {
	var (
		_node = &StatusUpdate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(statusupdate.Table, sqlgraph.NewFieldSpec(statusupdate.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(statusupdate.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.ApplicationID(); ok {
		_spec.SetField(statusupdate.FieldApplicationID, field.TypeString, value)
		_node.ApplicationID = value
	}
	if value, ok := _c.mutation.Snippet(); ok {
		_spec.SetField(statusupdate.FieldSnippet, field.TypeString, value)
		_node.Snippet = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(statusupdate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// StatusUpdateCreateBulk is the builder for creating many StatusUpdate entities in bulk.
type StatusUpdateCreateBulk struct {
	config
	err      error
	builders []*StatusUpdateCreate
}

// Save creates the StatusUpdate entities in the database.
func (_c *StatusUpdateCreateBulk) Save(ctx context.Context) ([]*StatusUpdate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StatusUpdate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StatusUpdateMutation)
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
func (_c *StatusUpdateCreateBulk) SaveX(ctx context.Context) []*StatusUpdate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StatusUpdateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StatusUpdateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
