// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionctl/missionctl/ent/commitment"
)

// CommitmentCreate is the builder for creating a Commitment entity.
type CommitmentCreate struct {
	config
	mutation *CommitmentMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *CommitmentCreate) SetOwnerID(v string) *CommitmentCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetStakeholder sets the "stakeholder" field.
func (_c *CommitmentCreate) SetStakeholder(v string) *CommitmentCreate {
	_c.mutation.SetStakeholder(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *CommitmentCreate) SetDescription(v string) *CommitmentCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetDirection sets the "direction" field.
func (_c *CommitmentCreate) SetDirection(v commitment.Direction) *CommitmentCreate {
	_c.mutation.SetDirection(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CommitmentCreate) SetStatus(v commitment.Status) *CommitmentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CommitmentCreate) SetNillableStatus(v *commitment.Status) *CommitmentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDueAt sets the "due_at" field.
func (_c *CommitmentCreate) SetDueAt(v time.Time) *CommitmentCreate {
	_c.mutation.SetDueAt(v)
	return _c
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_c *CommitmentCreate) SetNillableDueAt(v *time.Time) *CommitmentCreate {
	if v != nil {
		_c.SetDueAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CommitmentCreate) SetCreatedAt(v time.Time) *CommitmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CommitmentCreate) SetNillableCreatedAt(v *time.Time) *CommitmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CommitmentCreate) SetUpdatedAt(v time.Time) *CommitmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CommitmentCreate) SetNillableUpdatedAt(v *time.Time) *CommitmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CommitmentCreate) SetID(v string) *CommitmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CommitmentMutation object of the builder.
func (_c *CommitmentCreate) Mutation() *CommitmentMutation {
	return _c.mutation
}

// Save creates the Commitment in the database.
func (_c *CommitmentCreate) Save(ctx context.Context) (*Commitment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CommitmentCreate) SaveX(ctx context.Context) *Commitment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommitmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommitmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CommitmentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := commitment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := commitment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := commitment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CommitmentCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Commitment.owner_id"`)}
	}
	if _, ok := _c.mutation.Stakeholder(); !ok {
		return &ValidationError{Name: "stakeholder", err: errors.New(`ent: missing required field "Commitment.stakeholder"`)}
	}
	if v, ok := _c.mutation.Stakeholder(); ok {
		if err := commitment.StakeholderValidator(v); err != nil {
			return &ValidationError{Name: "stakeholder", err: fmt.Errorf(`ent: validator failed for field "Commitment.stakeholder": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Commitment.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := commitment.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Commitment.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Direction(); !ok {
		return &ValidationError{Name: "direction", err: errors.New(`ent: missing required field "Commitment.direction"`)}
	}
	if v, ok := _c.mutation.Direction(); ok {
		if err := commitment.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "Commitment.direction": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Commitment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := commitment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Commitment.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Commitment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Commitment.updated_at"`)}
	}
	return nil
}

func (_c *CommitmentCreate) sqlSave(ctx context.Context) (*Commitment, error) {
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
			return nil, fmt.Errorf("unexpected Commitment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CommitmentCreate) createSpec() (*Commitment, *sqlgraph.CreateSpec) {
	var (
		_node = &Commitment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(commitment.Table, sqlgraph.NewFieldSpec(commitment.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(commitment.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Stakeholder(); ok {
		_spec.SetField(commitment.FieldStakeholder, field.TypeString, value)
		_node.Stakeholder = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(commitment.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Direction(); ok {
		_spec.SetField(commitment.FieldDirection, field.TypeEnum, value)
		_node.Direction = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(commitment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.DueAt(); ok {
		_spec.SetField(commitment.FieldDueAt, field.TypeTime, value)
		_node.DueAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(commitment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(commitment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CommitmentCreateBulk is the builder for creating many Commitment entities in bulk.
type CommitmentCreateBulk struct {
	config
	err      error
	builders []*CommitmentCreate
}

// Save creates the Commitment entities in the database.
func (_c *CommitmentCreateBulk) Save(ctx context.Context) ([]*Commitment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Commitment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CommitmentMutation)
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
func (_c *CommitmentCreateBulk) SaveX(ctx context.Context) []*Commitment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommitmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommitmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
