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
	"github.com/missionctl/missionctl/ent/modelpreference"
	"github.com/missionctl/missionctl/ent/predicate"
)

// ModelPreferenceUpdate is the builder for updating ModelPreference entities.
type ModelPreferenceUpdate struct {
	config
	hooks    []Hook
	mutation *ModelPreferenceMutation
}

// Where appends a list predicates to the ModelPreferenceUpdate builder.
func (_u *ModelPreferenceUpdate) Where(ps ...predicate.ModelPreference) *ModelPreferenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFeature sets the "feature" field.
func (_u *ModelPreferenceUpdate) SetFeature(v modelpreference.Feature) *ModelPreferenceUpdate {
	_u.mutation.SetFeature(v)
	return _u
}

// SetNillableFeature sets the "feature" field if the given value is not nil.
func (_u *ModelPreferenceUpdate) SetNillableFeature(v *modelpreference.Feature) *ModelPreferenceUpdate {
	if v != nil {
		_u.SetFeature(*v)
	}
	return _u
}

// SetCatalogID sets the "catalog_id" field.
func (_u *ModelPreferenceUpdate) SetCatalogID(v string) *ModelPreferenceUpdate {
	_u.mutation.SetCatalogID(v)
	return _u
}

// SetNillableCatalogID sets the "catalog_id" field if the given value is not nil.
func (_u *ModelPreferenceUpdate) SetNillableCatalogID(v *string) *ModelPreferenceUpdate {
	if v != nil {
		_u.SetCatalogID(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ModelPreferenceUpdate) SetUpdatedAt(v time.Time) *ModelPreferenceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ModelPreferenceMutation object of the builder.
func (_u *ModelPreferenceUpdate) Mutation() *ModelPreferenceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModelPreferenceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelPreferenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModelPreferenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelPreferenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ModelPreferenceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := modelpreference.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModelPreferenceUpdate) check() error {
	if v, ok := _u.mutation.Feature(); ok {
		if err := modelpreference.FeatureValidator(v); err != nil {
			return &ValidationError{Name: "feature", err: fmt.Errorf(`ent: validator failed for field "ModelPreference.feature": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CatalogID(); ok {
		if err := modelpreference.CatalogIDValidator(v); err != nil {
			return &ValidationError{Name: "catalog_id", err: fmt.Errorf(`ent: validator failed for field "ModelPreference.catalog_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ModelPreferenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(modelpreference.Table, modelpreference.Columns, sqlgraph.NewFieldSpec(modelpreference.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Feature(); ok {
		_spec.SetField(modelpreference.FieldFeature, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CatalogID(); ok {
		_spec.SetField(modelpreference.FieldCatalogID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(modelpreference.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelpreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModelPreferenceUpdateOne is the builder for updating a single ModelPreference entity.
type ModelPreferenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModelPreferenceMutation
}

// SetFeature sets the "feature" field.
func (_u *ModelPreferenceUpdateOne) SetFeature(v modelpreference.Feature) *ModelPreferenceUpdateOne {
	_u.mutation.SetFeature(v)
	return _u
}

// SetNillableFeature sets the "feature" field if the given value is not nil.
func (_u *ModelPreferenceUpdateOne) SetNillableFeature(v *modelpreference.Feature) *ModelPreferenceUpdateOne {
	if v != nil {
		_u.SetFeature(*v)
	}
	return _u
}

// SetCatalogID sets the "catalog_id" field.
func (_u *ModelPreferenceUpdateOne) SetCatalogID(v string) *ModelPreferenceUpdateOne {
	_u.mutation.SetCatalogID(v)
	return _u
}

// SetNillableCatalogID sets the "catalog_id" field if the given value is not nil.
func (_u *ModelPreferenceUpdateOne) SetNillableCatalogID(v *string) *ModelPreferenceUpdateOne {
	if v != nil {
		_u.SetCatalogID(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ModelPreferenceUpdateOne) SetUpdatedAt(v time.Time) *ModelPreferenceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ModelPreferenceMutation object of the builder.
func (_u *ModelPreferenceUpdateOne) Mutation() *ModelPreferenceMutation {
	return _u.mutation
}

// Where appends a list predicates to the ModelPreferenceUpdate builder.
func (_u *ModelPreferenceUpdateOne) Where(ps ...predicate.ModelPreference) *ModelPreferenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModelPreferenceUpdateOne) Select(field string, fields ...string) *ModelPreferenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ModelPreference entity.
func (_u *ModelPreferenceUpdateOne) Save(ctx context.Context) (*ModelPreference, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelPreferenceUpdateOne) SaveX(ctx context.Context) *ModelPreference {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModelPreferenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelPreferenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ModelPreferenceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := modelpreference.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModelPreferenceUpdateOne) check() error {
	if v, ok := _u.mutation.Feature(); ok {
		if err := modelpreference.FeatureValidator(v); err != nil {
			return &ValidationError{Name: "feature", err: fmt.Errorf(`ent: validator failed for field "ModelPreference.feature": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CatalogID(); ok {
		if err := modelpreference.CatalogIDValidator(v); err != nil {
			return &ValidationError{Name: "catalog_id", err: fmt.Errorf(`ent: validator failed for field "ModelPreference.catalog_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ModelPreferenceUpdateOne) sqlSave(ctx context.Context) (_node *ModelPreference, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(modelpreference.Table, modelpreference.Columns, sqlgraph.NewFieldSpec(modelpreference.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ModelPreference.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, modelpreference.FieldID)
		for _, f := range fields {
			if !modelpreference.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != modelpreference.FieldID {
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
	if value, ok := _u.mutation.Feature(); ok {
		_spec.SetField(modelpreference.FieldFeature, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CatalogID(); ok {
		_spec.SetField(modelpreference.FieldCatalogID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(modelpreference.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ModelPreference{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelpreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
