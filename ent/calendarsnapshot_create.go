// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionctl/missionctl/ent/calendarsnapshot"
)

// CalendarSnapshotCreate is the builder for creating a CalendarSnapshot entity.
type CalendarSnapshotCreate struct {
	config
	mutation *CalendarSnapshotMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *CalendarSnapshotCreate) SetOwnerID(v string) *CalendarSnapshotCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetRangeStart sets the "range_start" field.
func (_c *CalendarSnapshotCreate) SetRangeStart(v string) *CalendarSnapshotCreate {
	_c.mutation.SetRangeStart(v)
	return _c
}

// SetRangeEnd sets the "range_end" field.
func (_c *CalendarSnapshotCreate) SetRangeEnd(v string) *CalendarSnapshotCreate {
	_c.mutation.SetRangeEnd(v)
	return _c
}

// SetPayloadMin sets the "payload_min" field.
func (_c *CalendarSnapshotCreate) SetPayloadMin(v []map[string]interface{}) *CalendarSnapshotCreate {
	_c.mutation.SetPayloadMin(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CalendarSnapshotCreate) SetCreatedAt(v time.Time) *CalendarSnapshotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CalendarSnapshotCreate) SetNillableCreatedAt(v *time.Time) *CalendarSnapshotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CalendarSnapshotCreate) SetID(v string) *CalendarSnapshotCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CalendarSnapshotMutation object of the builder.
func (_c *CalendarSnapshotCreate) Mutation() *CalendarSnapshotMutation {
	return _c.mutation
}

// Save creates the CalendarSnapshot in the database.
func (_c *CalendarSnapshotCreate) Save(ctx context.Context) (*CalendarSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CalendarSnapshotCreate) SaveX(ctx context.Context) *CalendarSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalendarSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalendarSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CalendarSnapshotCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := calendarsnapshot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CalendarSnapshotCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "CalendarSnapshot.owner_id"`)}
	}
	if _, ok := _c.mutation.RangeStart(); !ok {
		return &ValidationError{Name: "range_start", err: errors.New(`ent: missing required field "CalendarSnapshot.range_start"`)}
	}
	if _, ok := _c.mutation.RangeEnd(); !ok {
		return &ValidationError{Name: "range_end", err: errors.New(`ent: missing required field "CalendarSnapshot.range_end"`)}
	}
	if _, ok := _c.mutation.PayloadMin(); !ok {
		return &ValidationError{Name: "payload_min", err: errors.New(`ent: missing required field "CalendarSnapshot.payload_min"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CalendarSnapshot.created_at"`)}
	}
	return nil
}

func (_c *CalendarSnapshotCreate) sqlSave(ctx context.Context) (*CalendarSnapshot, error) {
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
			return nil, fmt.Errorf("unexpected CalendarSnapshot.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CalendarSnapshotCreate) createSpec() (*CalendarSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &CalendarSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(calendarsnapshot.Table, sqlgraph.NewFieldSpec(calendarsnapshot.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(calendarsnapshot.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.RangeStart(); ok {
		_spec.SetField(calendarsnapshot.FieldRangeStart, field.TypeString, value)
		_node.RangeStart = value
	}
	if value, ok := _c.mutation.RangeEnd(); ok {
		_spec.SetField(calendarsnapshot.FieldRangeEnd, field.TypeString, value)
		_node.RangeEnd = value
	}
	if value, ok := _c.mutation.PayloadMin(); ok {
		_spec.SetField(calendarsnapshot.FieldPayloadMin, field.TypeJSON, value)
		_node.PayloadMin = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(calendarsnapshot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// CalendarSnapshotCreateBulk is the builder for creating many CalendarSnapshot entities in bulk.
type CalendarSnapshotCreateBulk struct {
	config
	err      error
	builders []*CalendarSnapshotCreate
}

// Save creates the CalendarSnapshot entities in the database.
func (_c *CalendarSnapshotCreateBulk) Save(ctx context.Context) ([]*CalendarSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CalendarSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CalendarSnapshotMutation)
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
func (_c *CalendarSnapshotCreateBulk) SaveX(ctx context.Context) []*CalendarSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalendarSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalendarSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
