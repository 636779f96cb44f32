// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionctl/missionctl/ent/ingestionevent"
)

// IngestionEventCreate is the builder for creating a IngestionEvent entity.
type IngestionEventCreate struct {
	config
	mutation *IngestionEventMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *IngestionEventCreate) SetOwnerID(v string) *IngestionEventCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetInboxItemID sets the "inbox_item_id" field.
func (_c *IngestionEventCreate) SetInboxItemID(v string) *IngestionEventCreate {
	_c.mutation.SetInboxItemID(v)
	return _c
}

// SetNillableInboxItemID sets the "inbox_item_id" field if the given value is not nil.
func (_c *IngestionEventCreate) SetNillableInboxItemID(v *string) *IngestionEventCreate {
	if v != nil {
		_c.SetInboxItemID(*v)
	}
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *IngestionEventCreate) SetEventType(v ingestionevent.EventType) *IngestionEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetDetail sets the "detail" field.
func (_c *IngestionEventCreate) SetDetail(v string) *IngestionEventCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *IngestionEventCreate) SetNillableDetail(v *string) *IngestionEventCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IngestionEventCreate) SetCreatedAt(v time.Time) *IngestionEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IngestionEventCreate) SetNillableCreatedAt(v *time.Time) *IngestionEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IngestionEventCreate) SetID(v string) *IngestionEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the IngestionEventMutation object of the builder.
func (_c *IngestionEventCreate) Mutation() *IngestionEventMutation {
	return _c.mutation
}

// Save creates the IngestionEvent in the database.
func (_c *IngestionEventCreate) Save(ctx context.Context) (*IngestionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IngestionEventCreate) SaveX(ctx context.Context) *IngestionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IngestionEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ingestionevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IngestionEventCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "IngestionEvent.owner_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "IngestionEvent.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := ingestionevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "IngestionEvent.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "IngestionEvent.created_at"`)}
	}
	return nil
}

func (_c *IngestionEventCreate) sqlSave(ctx context.Context) (*IngestionEvent, error) {
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
			return nil, fmt.Errorf("unexpected IngestionEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IngestionEventCreate) createSpec() (*IngestionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &IngestionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ingestionevent.Table, sqlgraph.NewFieldSpec(ingestionevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(ingestionevent.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.InboxItemID(); ok {
		_spec.SetField(ingestionevent.FieldInboxItemID, field.TypeString, value)
		_node.InboxItemID = &value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(ingestionevent.FieldEventType, field.TypeEnum, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(ingestionevent.FieldDetail, field.TypeString, value)
		_node.Detail = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ingestionevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// IngestionEventCreateBulk is the builder for creating many IngestionEvent entities in bulk.
type IngestionEventCreateBulk struct {
	config
	err      error
	builders []*IngestionEventCreate
}

// Save creates the IngestionEvent entities in the database.
func (_c *IngestionEventCreateBulk) Save(ctx context.Context) ([]*IngestionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IngestionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IngestionEventMutation)
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
func (_c *IngestionEventCreateBulk) SaveX(ctx context.Context) []*IngestionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
