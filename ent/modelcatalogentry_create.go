// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionctl/missionctl/ent/modelcatalogentry"
)

// ModelCatalogEntryCreate is the builder for creating a ModelCatalogEntry entity.
type ModelCatalogEntryCreate struct {
	config
	mutation *ModelCatalogEntryMutation
	hooks    []Hook
}

// SetProvider sets the "provider" field.
func (_c *ModelCatalogEntryCreate) SetProvider(v modelcatalogentry.Provider) *ModelCatalogEntryCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModelID sets the "model_id" field.
func (_c *ModelCatalogEntryCreate) SetModelID(v string) *ModelCatalogEntryCreate {
	_c.mutation.SetModelID(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *ModelCatalogEntryCreate) SetDisplayName(v string) *ModelCatalogEntryCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetInputPricePerMtok sets the "input_price_per_mtok" field.
func (_c *ModelCatalogEntryCreate) SetInputPricePerMtok(v float64) *ModelCatalogEntryCreate {
	_c.mutation.SetInputPricePerMtok(v)
	return _c
}

// SetNillableInputPricePerMtok sets the "input_price_per_mtok" field if the given value is not nil.
func (_c *ModelCatalogEntryCreate) SetNillableInputPricePerMtok(v *float64) *ModelCatalogEntryCreate {
	if v != nil {
		_c.SetInputPricePerMtok(*v)
	}
	return _c
}

// SetOutputPricePerMtok sets the "output_price_per_mtok" field.
func (_c *ModelCatalogEntryCreate) SetOutputPricePerMtok(v float64) *ModelCatalogEntryCreate {
	_c.mutation.SetOutputPricePerMtok(v)
	return _c
}

// SetNillableOutputPricePerMtok sets the "output_price_per_mtok" field if the given value is not nil.
func (_c *ModelCatalogEntryCreate) SetNillableOutputPricePerMtok(v *float64) *ModelCatalogEntryCreate {
	if v != nil {
		_c.SetOutputPricePerMtok(*v)
	}
	return _c
}

// SetTier sets the "tier" field.
func (_c *ModelCatalogEntryCreate) SetTier(v modelcatalogentry.Tier) *ModelCatalogEntryCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_c *ModelCatalogEntryCreate) SetNillableTier(v *modelcatalogentry.Tier) *ModelCatalogEntryCreate {
	if v != nil {
		_c.SetTier(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *ModelCatalogEntryCreate) SetEnabled(v bool) *ModelCatalogEntryCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *ModelCatalogEntryCreate) SetNillableEnabled(v *bool) *ModelCatalogEntryCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetPricingIsPlaceholder sets the "pricing_is_placeholder" field.
func (_c *ModelCatalogEntryCreate) SetPricingIsPlaceholder(v bool) *ModelCatalogEntryCreate {
	_c.mutation.SetPricingIsPlaceholder(v)
	return _c
}

// SetNillablePricingIsPlaceholder sets the "pricing_is_placeholder" field if the given value is not nil.
func (_c *ModelCatalogEntryCreate) SetNillablePricingIsPlaceholder(v *bool) *ModelCatalogEntryCreate {
	if v != nil {
		_c.SetPricingIsPlaceholder(*v)
	}
	return _c
}

// SetSortOrder sets the "sort_order" field.
func (_c *ModelCatalogEntryCreate) SetSortOrder(v int) *ModelCatalogEntryCreate {
	_c.mutation.SetSortOrder(v)
	return _c
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_c *ModelCatalogEntryCreate) SetNillableSortOrder(v *int) *ModelCatalogEntryCreate {
	if v != nil {
		_c.SetSortOrder(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ModelCatalogEntryCreate) SetCreatedAt(v time.Time) *ModelCatalogEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ModelCatalogEntryCreate) SetNillableCreatedAt(v *time.Time) *ModelCatalogEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ModelCatalogEntryCreate) SetUpdatedAt(v time.Time) *ModelCatalogEntryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ModelCatalogEntryCreate) SetNillableUpdatedAt(v *time.Time) *ModelCatalogEntryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ModelCatalogEntryCreate) SetID(v string) *ModelCatalogEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ModelCatalogEntryMutation object of the builder.
func (_c *ModelCatalogEntryCreate) Mutation() *ModelCatalogEntryMutation {
	return _c.mutation
}

// Save creates the ModelCatalogEntry in the database.
func (_c *ModelCatalogEntryCreate) Save(ctx context.Context) (*ModelCatalogEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ModelCatalogEntryCreate) SaveX(ctx context.Context) *ModelCatalogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelCatalogEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelCatalogEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ModelCatalogEntryCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := modelcatalogentry.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.PricingIsPlaceholder(); !ok {
		v := modelcatalogentry.DefaultPricingIsPlaceholder
		_c.mutation.SetPricingIsPlaceholder(v)
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		v := modelcatalogentry.DefaultSortOrder
		_c.mutation.SetSortOrder(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := modelcatalogentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := modelcatalogentry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ModelCatalogEntryCreate) check() error {
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "ModelCatalogEntry.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := modelcatalogentry.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "ModelCatalogEntry.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModelID(); !ok {
		return &ValidationError{Name: "model_id", err: errors.New(`ent: missing required field "ModelCatalogEntry.model_id"`)}
	}
	if v, ok := _c.mutation.ModelID(); ok {
		if err := modelcatalogentry.ModelIDValidator(v); err != nil {
			return &ValidationError{Name: "model_id", err: fmt.Errorf(`ent: validator failed for field "ModelCatalogEntry.model_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "ModelCatalogEntry.display_name"`)}
	}
	if v, ok := _c.mutation.DisplayName(); ok {
		if err := modelcatalogentry.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "ModelCatalogEntry.display_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := modelcatalogentry.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "ModelCatalogEntry.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "ModelCatalogEntry.enabled"`)}
	}
	if _, ok := _c.mutation.PricingIsPlaceholder(); !ok {
		return &ValidationError{Name: "pricing_is_placeholder", err: errors.New(`ent: missing required field "ModelCatalogEntry.pricing_is_placeholder"`)}
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		return &ValidationError{Name: "sort_order", err: errors.New(`ent: missing required field "ModelCatalogEntry.sort_order"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ModelCatalogEntry.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ModelCatalogEntry.updated_at"`)}
	}
	return nil
}

func (_c *ModelCatalogEntryCreate) sqlSave(ctx context.Context) (*ModelCatalogEntry, error) {
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
			return nil, fmt.Errorf("unexpected ModelCatalogEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ModelCatalogEntryCreate) createSpec() (*ModelCatalogEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &ModelCatalogEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(modelcatalogentry.Table, sqlgraph.NewFieldSpec(modelcatalogentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(modelcatalogentry.FieldProvider, field.TypeEnum, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.ModelID(); ok {
		_spec.SetField(modelcatalogentry.FieldModelID, field.TypeString, value)
		_node.ModelID = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(modelcatalogentry.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.InputPricePerMtok(); ok {
		_spec.SetField(modelcatalogentry.FieldInputPricePerMtok, field.TypeFloat64, value)
		_node.InputPricePerMtok = &value
	}
	if value, ok := _c.mutation.OutputPricePerMtok(); ok {
		_spec.SetField(modelcatalogentry.FieldOutputPricePerMtok, field.TypeFloat64, value)
		_node.OutputPricePerMtok = &value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(modelcatalogentry.FieldTier, field.TypeEnum, value)
		_node.Tier = &value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(modelcatalogentry.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.PricingIsPlaceholder(); ok {
		_spec.SetField(modelcatalogentry.FieldPricingIsPlaceholder, field.TypeBool, value)
		_node.PricingIsPlaceholder = value
	}
	if value, ok := _c.mutation.SortOrder(); ok {
		_spec.SetField(modelcatalogentry.FieldSortOrder, field.TypeInt, value)
		_node.SortOrder = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(modelcatalogentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(modelcatalogentry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ModelCatalogEntryCreateBulk is the builder for creating many ModelCatalogEntry entities in bulk.
type ModelCatalogEntryCreateBulk struct {
	config
	err      error
	builders []*ModelCatalogEntryCreate
}

// Save creates the ModelCatalogEntry entities in the database.
func (_c *ModelCatalogEntryCreateBulk) Save(ctx context.Context) ([]*ModelCatalogEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ModelCatalogEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModelCatalogEntryMutation)
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
func (_c *ModelCatalogEntryCreateBulk) SaveX(ctx context.Context) []*ModelCatalogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelCatalogEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelCatalogEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
