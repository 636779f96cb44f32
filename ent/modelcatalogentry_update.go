// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionctl/missionctl/ent/modelcatalogentry"
	"github.com/missionctl/missionctl/ent/predicate"
)

// ModelCatalogEntryUpdate is the builder for updating ModelCatalogEntry entities.
type ModelCatalogEntryUpdate struct {
	config
	hooks    []Hook
	mutation *ModelCatalogEntryMutation
}

// Where appends a list predicates to the ModelCatalogEntryUpdate builder.
func (_u *ModelCatalogEntryUpdate) Where(ps ...predicate.ModelCatalogEntry) *ModelCatalogEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ModelCatalogEntryUpdate) SetProvider(v modelcatalogentry.Provider) *ModelCatalogEntryUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ModelCatalogEntryUpdate) SetNillableProvider(v *modelcatalogentry.Provider) *ModelCatalogEntryUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModelID sets the "model_id" field.
func (_u *ModelCatalogEntryUpdate) SetModelID(v string) *ModelCatalogEntryUpdate {
	_u.mutation.SetModelID(v)
	return _u
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_u *ModelCatalogEntryUpdate) SetNillableModelID(v *string) *ModelCatalogEntryUpdate {
	if v != nil {
		_u.SetModelID(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ModelCatalogEntryUpdate) SetDisplayName(v string) *ModelCatalogEntryUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ModelCatalogEntryUpdate) SetNillableDisplayName(v *string) *ModelCatalogEntryUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetInputPricePerMtok sets the "input_price_per_mtok" field.
func (_u *ModelCatalogEntryUpdate) SetInputPricePerMtok(v float64) *ModelCatalogEntryUpdate {
	_u.mutation.ResetInputPricePerMtok()
	_u.mutation.SetInputPricePerMtok(v)
	return _u
}

// SetNillableInputPricePerMtok sets the "input_price_per_mtok" field if the given value is not nil.
func (_u *ModelCatalogEntryUpdate) SetNillableInputPricePerMtok(v *float64) *ModelCatalogEntryUpdate {
	if v != nil {
		_u.SetInputPricePerMtok(*v)
	}
	return _u
}

// AddInputPricePerMtok adds value to the "input_price_per_mtok" field.
func (_u *ModelCatalogEntryUpdate) AddInputPricePerMtok(v float64) *ModelCatalogEntryUpdate {
	_u.mutation.AddInputPricePerMtok(v)
	return _u
}

// ClearInputPricePerMtok clears the value of the "input_price_per_mtok" field.
func (_u *ModelCatalogEntryUpdate) ClearInputPricePerMtok() *ModelCatalogEntryUpdate {
	_u.mutation.ClearInputPricePerMtok()
	return _u
}

// SetOutputPricePerMtok sets the "output_price_per_mtok" field.
func (_u *ModelCatalogEntryUpdate) SetOutputPricePerMtok(v float64) *ModelCatalogEntryUpdate {
	_u.mutation.ResetOutputPricePerMtok()
	_u.mutation.SetOutputPricePerMtok(v)
	return _u
}

// SetNillableOutputPricePerMtok sets the "output_price_per_mtok" field if the given value is not nil.
func (_u *ModelCatalogEntryUpdate) SetNillableOutputPricePerMtok(v *float64) *ModelCatalogEntryUpdate {
	if v != nil {
		_u.SetOutputPricePerMtok(*v)
	}
	return _u
}

// AddOutputPricePerMtok adds value to the "output_price_per_mtok" field.
func (_u *ModelCatalogEntryUpdate) AddOutputPricePerMtok(v float64) *ModelCatalogEntryUpdate {
	_u.mutation.AddOutputPricePerMtok(v)
	return _u
}

// ClearOutputPricePerMtok clears the value of the "output_price_per_mtok" field.
func (_u *ModelCatalogEntryUpdate) ClearOutputPricePerMtok() *ModelCatalogEntryUpdate {
	_u.mutation.ClearOutputPricePerMtok()
	return _u
}

// SetTier sets the "tier" field.
func (_u *ModelCatalogEntryUpdate) SetTier(v modelcatalogentry.Tier) *ModelCatalogEntryUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *ModelCatalogEntryUpdate) SetNillableTier(v *modelcatalogentry.Tier) *ModelCatalogEntryUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// ClearTier clears the value of the "tier" field.
func (_u *ModelCatalogEntryUpdate) ClearTier() *ModelCatalogEntryUpdate {
	_u.mutation.ClearTier()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ModelCatalogEntryUpdate) SetEnabled(v bool) *ModelCatalogEntryUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ModelCatalogEntryUpdate) SetNillableEnabled(v *bool) *ModelCatalogEntryUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetPricingIsPlaceholder sets the "pricing_is_placeholder" field.
func (_u *ModelCatalogEntryUpdate) SetPricingIsPlaceholder(v bool) *ModelCatalogEntryUpdate {
	_u.mutation.SetPricingIsPlaceholder(v)
	return _u
}

// SetNillablePricingIsPlaceholder sets the "pricing_is_placeholder" field if the given value is not nil.
func (_u *ModelCatalogEntryUpdate) SetNillablePricingIsPlaceholder(v *bool) *ModelCatalogEntryUpdate {
	if v != nil {
		_u.SetPricingIsPlaceholder(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *ModelCatalogEntryUpdate) SetSortOrder(v int) *ModelCatalogEntryUpdate {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *ModelCatalogEntryUpdate) SetNillableSortOrder(v *int) *ModelCatalogEntryUpdate {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *ModelCatalogEntryUpdate) AddSortOrder(v int) *ModelCatalogEntryUpdate {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ModelCatalogEntryUpdate) SetUpdatedAt(v time.Time) *ModelCatalogEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ModelCatalogEntryMutation object of the builder.
func (_u *ModelCatalogEntryUpdate) Mutation() *ModelCatalogEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModelCatalogEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelCatalogEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModelCatalogEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelCatalogEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ModelCatalogEntryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := modelcatalogentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModelCatalogEntryUpdate) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := modelcatalogentry.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "ModelCatalogEntry.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelID(); ok {
		if err := modelcatalogentry.ModelIDValidator(v); err != nil {
			return &ValidationError{Name: "model_id", err: fmt.Errorf(`ent: validator failed for field "ModelCatalogEntry.model_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := modelcatalogentry.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "ModelCatalogEntry.display_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := modelcatalogentry.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "ModelCatalogEntry.tier": %w`, err)}
		}
	}
	return nil
}

func (_u *ModelCatalogEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(modelcatalogentry.Table, modelcatalogentry.Columns, sqlgraph.NewFieldSpec(modelcatalogentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(modelcatalogentry.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ModelID(); ok {
		_spec.SetField(modelcatalogentry.FieldModelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(modelcatalogentry.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputPricePerMtok(); ok {
		_spec.SetField(modelcatalogentry.FieldInputPricePerMtok, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedInputPricePerMtok(); ok {
		_spec.AddField(modelcatalogentry.FieldInputPricePerMtok, field.TypeFloat64, value)
	}
	if _u.mutation.InputPricePerMtokCleared() {
		_spec.ClearField(modelcatalogentry.FieldInputPricePerMtok, field.TypeFloat64)
	}
	if value, ok := _u.mutation.OutputPricePerMtok(); ok {
		_spec.SetField(modelcatalogentry.FieldOutputPricePerMtok, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOutputPricePerMtok(); ok {
		_spec.AddField(modelcatalogentry.FieldOutputPricePerMtok, field.TypeFloat64, value)
	}
	if _u.mutation.OutputPricePerMtokCleared() {
		_spec.ClearField(modelcatalogentry.FieldOutputPricePerMtok, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(modelcatalogentry.FieldTier, field.TypeEnum, value)
	}
	if _u.mutation.TierCleared() {
		_spec.ClearField(modelcatalogentry.FieldTier, field.TypeEnum)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(modelcatalogentry.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PricingIsPlaceholder(); ok {
		_spec.SetField(modelcatalogentry.FieldPricingIsPlaceholder, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(modelcatalogentry.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(modelcatalogentry.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(modelcatalogentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelcatalogentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModelCatalogEntryUpdateOne is the builder for updating a single ModelCatalogEntry entity.
type ModelCatalogEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModelCatalogEntryMutation
}

// SetProvider sets the "provider" field.
func (_u *ModelCatalogEntryUpdateOne) SetProvider(v modelcatalogentry.Provider) *ModelCatalogEntryUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ModelCatalogEntryUpdateOne) SetNillableProvider(v *modelcatalogentry.Provider) *ModelCatalogEntryUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModelID sets the "model_id" field.
func (_u *ModelCatalogEntryUpdateOne) SetModelID(v string) *ModelCatalogEntryUpdateOne {
	_u.mutation.SetModelID(v)
	return _u
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_u *ModelCatalogEntryUpdateOne) SetNillableModelID(v *string) *ModelCatalogEntryUpdateOne {
	if v != nil {
		_u.SetModelID(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ModelCatalogEntryUpdateOne) SetDisplayName(v string) *ModelCatalogEntryUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ModelCatalogEntryUpdateOne) SetNillableDisplayName(v *string) *ModelCatalogEntryUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetInputPricePerMtok sets the "input_price_per_mtok" field.
func (_u *ModelCatalogEntryUpdateOne) SetInputPricePerMtok(v float64) *ModelCatalogEntryUpdateOne {
	_u.mutation.ResetInputPricePerMtok()
	_u.mutation.SetInputPricePerMtok(v)
	return _u
}

// SetNillableInputPricePerMtok sets the "input_price_per_mtok" field if the given value is not nil.
func (_u *ModelCatalogEntryUpdateOne) SetNillableInputPricePerMtok(v *float64) *ModelCatalogEntryUpdateOne {
	if v != nil {
		_u.SetInputPricePerMtok(*v)
	}
	return _u
}

// AddInputPricePerMtok adds value to the "input_price_per_mtok" field.
func (_u *ModelCatalogEntryUpdateOne) AddInputPricePerMtok(v float64) *ModelCatalogEntryUpdateOne {
	_u.mutation.AddInputPricePerMtok(v)
	return _u
}

// ClearInputPricePerMtok clears the value of the "input_price_per_mtok" field.
func (_u *ModelCatalogEntryUpdateOne) ClearInputPricePerMtok() *ModelCatalogEntryUpdateOne {
	_u.mutation.ClearInputPricePerMtok()
	return _u
}

// SetOutputPricePerMtok sets the "output_price_per_mtok" field.
func (_u *ModelCatalogEntryUpdateOne) SetOutputPricePerMtok(v float64) *ModelCatalogEntryUpdateOne {
	_u.mutation.ResetOutputPricePerMtok()
	_u.mutation.SetOutputPricePerMtok(v)
	return _u
}

// SetNillableOutputPricePerMtok sets the "output_price_per_mtok" field if the given value is not nil.
func (_u *ModelCatalogEntryUpdateOne) SetNillableOutputPricePerMtok(v *float64) *ModelCatalogEntryUpdateOne {
	if v != nil {
		_u.SetOutputPricePerMtok(*v)
	}
	return _u
}

// AddOutputPricePerMtok adds value to the "output_price_per_mtok" field.
func (_u *ModelCatalogEntryUpdateOne) AddOutputPricePerMtok(v float64) *ModelCatalogEntryUpdateOne {
	_u.mutation.AddOutputPricePerMtok(v)
	return _u
}

// ClearOutputPricePerMtok clears the value of the "output_price_per_mtok" field.
func (_u *ModelCatalogEntryUpdateOne) ClearOutputPricePerMtok() *ModelCatalogEntryUpdateOne {
	_u.mutation.ClearOutputPricePerMtok()
	return _u
}

// SetTier sets the "tier" field.
func (_u *ModelCatalogEntryUpdateOne) SetTier(v modelcatalogentry.Tier) *ModelCatalogEntryUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *ModelCatalogEntryUpdateOne) SetNillableTier(v *modelcatalogentry.Tier) *ModelCatalogEntryUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// ClearTier clears the value of the "tier" field.
func (_u *ModelCatalogEntryUpdateOne) ClearTier() *ModelCatalogEntryUpdateOne {
	_u.mutation.ClearTier()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ModelCatalogEntryUpdateOne) SetEnabled(v bool) *ModelCatalogEntryUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ModelCatalogEntryUpdateOne) SetNillableEnabled(v *bool) *ModelCatalogEntryUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetPricingIsPlaceholder sets the "pricing_is_placeholder" field.
func (_u *ModelCatalogEntryUpdateOne) SetPricingIsPlaceholder(v bool) *ModelCatalogEntryUpdateOne {
	_u.mutation.SetPricingIsPlaceholder(v)
	return _u
}

// SetNillablePricingIsPlaceholder sets the "pricing_is_placeholder" field if the given value is not nil.
func (_u *ModelCatalogEntryUpdateOne) SetNillablePricingIsPlaceholder(v *bool) *ModelCatalogEntryUpdateOne {
	if v != nil {
		_u.SetPricingIsPlaceholder(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *ModelCatalogEntryUpdateOne) SetSortOrder(v int) *ModelCatalogEntryUpdateOne {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *ModelCatalogEntryUpdateOne) SetNillableSortOrder(v *int) *ModelCatalogEntryUpdateOne {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *ModelCatalogEntryUpdateOne) AddSortOrder(v int) *ModelCatalogEntryUpdateOne {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ModelCatalogEntryUpdateOne) SetUpdatedAt(v time.Time) *ModelCatalogEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ModelCatalogEntryMutation object of the builder.
func (_u *ModelCatalogEntryUpdateOne) Mutation() *ModelCatalogEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ModelCatalogEntryUpdate builder.
func (_u *ModelCatalogEntryUpdateOne) Where(ps ...predicate.ModelCatalogEntry) *ModelCatalogEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModelCatalogEntryUpdateOne) Select(field string, fields ...string) *ModelCatalogEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ModelCatalogEntry entity.
func (_u *ModelCatalogEntryUpdateOne) Save(ctx context.Context) (*ModelCatalogEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelCatalogEntryUpdateOne) SaveX(ctx context.Context) *ModelCatalogEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModelCatalogEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelCatalogEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ModelCatalogEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := modelcatalogentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModelCatalogEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := modelcatalogentry.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "ModelCatalogEntry.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelID(); ok {
		if err := modelcatalogentry.ModelIDValidator(v); err != nil {
			return &ValidationError{Name: "model_id", err: fmt.Errorf(`ent: validator failed for field "ModelCatalogEntry.model_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := modelcatalogentry.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "ModelCatalogEntry.display_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := modelcatalogentry.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "ModelCatalogEntry.tier": %w`, err)}
		}
	}
	return nil
}

func (_u *ModelCatalogEntryUpdateOne) sqlSave(ctx context.Context) (_node *ModelCatalogEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(modelcatalogentry.Table, modelcatalogentry.Columns, sqlgraph.NewFieldSpec(modelcatalogentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ModelCatalogEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, modelcatalogentry.FieldID)
		for _, f := range fields {
			if !modelcatalogentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != modelcatalogentry.FieldID {
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
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(modelcatalogentry.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ModelID(); ok {
		_spec.SetField(modelcatalogentry.FieldModelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(modelcatalogentry.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputPricePerMtok(); ok {
		_spec.SetField(modelcatalogentry.FieldInputPricePerMtok, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedInputPricePerMtok(); ok {
		_spec.AddField(modelcatalogentry.FieldInputPricePerMtok, field.TypeFloat64, value)
	}
	if _u.mutation.InputPricePerMtokCleared() {
		_spec.ClearField(modelcatalogentry.FieldInputPricePerMtok, field.TypeFloat64)
	}
	if value, ok := _u.mutation.OutputPricePerMtok(); ok {
		_spec.SetField(modelcatalogentry.FieldOutputPricePerMtok, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOutputPricePerMtok(); ok {
		_spec.AddField(modelcatalogentry.FieldOutputPricePerMtok, field.TypeFloat64, value)
	}
	if _u.mutation.OutputPricePerMtokCleared() {
		_spec.ClearField(modelcatalogentry.FieldOutputPricePerMtok, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(modelcatalogentry.FieldTier, field.TypeEnum, value)
	}
	if _u.mutation.TierCleared() {
		_spec.ClearField(modelcatalogentry.FieldTier, field.TypeEnum)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(modelcatalogentry.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PricingIsPlaceholder(); ok {
		_spec.SetField(modelcatalogentry.FieldPricingIsPlaceholder, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(modelcatalogentry.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(modelcatalogentry.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(modelcatalogentry.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ModelCatalogEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelcatalogentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
