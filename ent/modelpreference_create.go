// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionctl/missionctl/ent/modelpreference"
)

// ModelPreferenceCreate is the builder for creating a ModelPreference entity.
type ModelPreferenceCreate struct {
	config
	mutation *ModelPreferenceMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *ModelPreferenceCreate) SetOwnerID(v string) *ModelPreferenceCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetFeature sets the "feature" field.
func (_c *ModelPreferenceCreate) SetFeature(v modelpreference.Feature) *ModelPreferenceCreate {
	_c.mutation.SetFeature(v)
	return _c
}

// SetCatalogID sets the "catalog_id" field.
func (_c *ModelPreferenceCreate) SetCatalogID(v string) *ModelPreferenceCreate {
	_c.mutation.SetCatalogID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ModelPreferenceCreate) SetCreatedAt(v time.Time) *ModelPreferenceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ModelPreferenceCreate) SetNillableCreatedAt(v *time.Time) *ModelPreferenceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ModelPreferenceCreate) SetUpdatedAt(v time.Time) *ModelPreferenceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ModelPreferenceCreate) SetNillableUpdatedAt(v *time.Time) *ModelPreferenceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ModelPreferenceCreate) SetID(v string) *ModelPreferenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ModelPreferenceMutation object of the builder.
func (_c *ModelPreferenceCreate) Mutation() *ModelPreferenceMutation {
	return _c.mutation
}

// Save creates the ModelPreference in the database.
func (_c *ModelPreferenceCreate) Save(ctx context.Context) (*ModelPreference, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ModelPreferenceCreate) SaveX(ctx context.Context) *ModelPreference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelPreferenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelPreferenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ModelPreferenceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := modelpreference.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := modelpreference.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ModelPreferenceCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "ModelPreference.owner_id"`)}
	}
	if _, ok := _c.mutation.Feature(); !ok {
		return &ValidationError{Name: "feature", err: errors.New(`ent: missing required field "ModelPreference.feature"`)}
	}
	if v, ok := _c.mutation.Feature(); ok {
		if err := modelpreference.FeatureValidator(v); err != nil {
			return &ValidationError{Name: "feature", err: fmt.Errorf(`ent: validator failed for field "ModelPreference.feature": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CatalogID(); !ok {
		return &ValidationError{Name: "catalog_id", err: errors.New(`ent: missing required field "ModelPreference.catalog_id"`)}
	}
	if v, ok := _c.mutation.CatalogID(); ok {
		if err := modelpreference.CatalogIDValidator(v); err != nil {
			return &ValidationError{Name: "catalog_id", err: fmt.Errorf(`ent: validator failed for field "ModelPreference.catalog_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ModelPreference.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ModelPreference.updated_at"`)}
	}
	return nil
}

func (_c *ModelPreferenceCreate) sqlSave(ctx context.Context) (*ModelPreference, error) {
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
			return nil, fmt.Errorf("unexpected ModelPreference.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ModelPreferenceCreate) createSpec() (*ModelPreference, *sqlgraph.CreateSpec) {
	var (
		_node = &ModelPreference{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(modelpreference.Table, sqlgraph.NewFieldSpec(modelpreference.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(modelpreference.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Feature(); ok {
		_spec.SetField(modelpreference.FieldFeature, field.TypeEnum, value)
		_node.Feature = value
	}
	if value, ok := _c.mutation.CatalogID(); ok {
		_spec.SetField(modelpreference.FieldCatalogID, field.TypeString, value)
		_node.CatalogID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(modelpreference.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(modelpreference.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ModelPreferenceCreateBulk is the builder for creating many ModelPreference entities in bulk.
type ModelPreferenceCreateBulk struct {
	config
	err      error
	builders []*ModelPreferenceCreate
}

// Save creates the ModelPreference entities in the database.
func (_c *ModelPreferenceCreateBulk) Save(ctx context.Context) ([]*ModelPreference, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ModelPreference, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModelPreferenceMutation)
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
func (_c *ModelPreferenceCreateBulk) SaveX(ctx context.Context) []*ModelPreference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelPreferenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelPreferenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
