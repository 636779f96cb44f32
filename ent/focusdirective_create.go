// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionctl/missionctl/ent/focusdirective"
)

// FocusDirectiveCreate is the builder for creating a FocusDirective entity.
type FocusDirectiveCreate struct {
	config
	mutation *FocusDirectiveMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *FocusDirectiveCreate) SetOwnerID(v string) *FocusDirectiveCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetDirectiveText sets the "directive_text" field.
func (_c *FocusDirectiveCreate) SetDirectiveText(v string) *FocusDirectiveCreate {
	_c.mutation.SetDirectiveText(v)
	return _c
}

// SetScopeType sets the "scope_type" field.
func (_c *FocusDirectiveCreate) SetScopeType(v focusdirective.ScopeType) *FocusDirectiveCreate {
	_c.mutation.SetScopeType(v)
	return _c
}

// SetScopeID sets the "scope_id" field.
func (_c *FocusDirectiveCreate) SetScopeID(v string) *FocusDirectiveCreate {
	_c.mutation.SetScopeID(v)
	return _c
}

// SetNillableScopeID sets the "scope_id" field if the given value is not nil.
func (_c *FocusDirectiveCreate) SetNillableScopeID(v *string) *FocusDirectiveCreate {
	if v != nil {
		_c.SetScopeID(*v)
	}
	return _c
}

// SetScopeValue sets the "scope_value" field.
func (_c *FocusDirectiveCreate) SetScopeValue(v string) *FocusDirectiveCreate {
	_c.mutation.SetScopeValue(v)
	return _c
}

// SetNillableScopeValue sets the "scope_value" field if the given value is not nil.
func (_c *FocusDirectiveCreate) SetNillableScopeValue(v *string) *FocusDirectiveCreate {
	if v != nil {
		_c.SetScopeValue(*v)
	}
	return _c
}

// SetStrength sets the "strength" field.
func (_c *FocusDirectiveCreate) SetStrength(v focusdirective.Strength) *FocusDirectiveCreate {
	_c.mutation.SetStrength(v)
	return _c
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_c *FocusDirectiveCreate) SetNillableStrength(v *focusdirective.Strength) *FocusDirectiveCreate {
	if v != nil {
		_c.SetStrength(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *FocusDirectiveCreate) SetIsActive(v bool) *FocusDirectiveCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *FocusDirectiveCreate) SetNillableIsActive(v *bool) *FocusDirectiveCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetStartsAt sets the "starts_at" field.
func (_c *FocusDirectiveCreate) SetStartsAt(v time.Time) *FocusDirectiveCreate {
	_c.mutation.SetStartsAt(v)
	return _c
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_c *FocusDirectiveCreate) SetNillableStartsAt(v *time.Time) *FocusDirectiveCreate {
	if v != nil {
		_c.SetStartsAt(*v)
	}
	return _c
}

// SetEndsAt sets the "ends_at" field.
func (_c *FocusDirectiveCreate) SetEndsAt(v time.Time) *FocusDirectiveCreate {
	_c.mutation.SetEndsAt(v)
	return _c
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_c *FocusDirectiveCreate) SetNillableEndsAt(v *time.Time) *FocusDirectiveCreate {
	if v != nil {
		_c.SetEndsAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FocusDirectiveCreate) SetCreatedAt(v time.Time) *FocusDirectiveCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FocusDirectiveCreate) SetNillableCreatedAt(v *time.Time) *FocusDirectiveCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FocusDirectiveCreate) SetUpdatedAt(v time.Time) *FocusDirectiveCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FocusDirectiveCreate) SetNillableUpdatedAt(v *time.Time) *FocusDirectiveCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FocusDirectiveCreate) SetID(v string) *FocusDirectiveCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the FocusDirectiveMutation object of the builder.
func (_c *FocusDirectiveCreate) Mutation() *FocusDirectiveMutation {
	return _c.mutation
}

// Save creates the FocusDirective in the database.
func (_c *FocusDirectiveCreate) Save(ctx context.Context) (*FocusDirective, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FocusDirectiveCreate) SaveX(ctx context.Context) *FocusDirective {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FocusDirectiveCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FocusDirectiveCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FocusDirectiveCreate) defaults() {
	if _, ok := _c.mutation.Strength(); !ok {
		v := focusdirective.DefaultStrength
		_c.mutation.SetStrength(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := focusdirective.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := focusdirective.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := focusdirective.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FocusDirectiveCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "FocusDirective.owner_id"`)}
	}
	if _, ok := _c.mutation.DirectiveText(); !ok {
		return &ValidationError{Name: "directive_text", err: errors.New(`ent: missing required field "FocusDirective.directive_text"`)}
	}
	if v, ok := _c.mutation.DirectiveText(); ok {
		if err := focusdirective.DirectiveTextValidator(v); err != nil {
			return &ValidationError{Name: "directive_text", err: fmt.Errorf(`ent: validator failed for field "FocusDirective.directive_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScopeType(); !ok {
		return &ValidationError{Name: "scope_type", err: errors.New(`ent: missing required field "FocusDirective.scope_type"`)}
	}
	if v, ok := _c.mutation.ScopeType(); ok {
		if err := focusdirective.ScopeTypeValidator(v); err != nil {
			return &ValidationError{Name: "scope_type", err: fmt.Errorf(`ent: validator failed for field "FocusDirective.scope_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Strength(); !ok {
		return &ValidationError{Name: "strength", err: errors.New(`ent: missing required field "FocusDirective.strength"`)}
	}
	if v, ok := _c.mutation.Strength(); ok {
		if err := focusdirective.StrengthValidator(v); err != nil {
			return &ValidationError{Name: "strength", err: fmt.Errorf(`ent: validator failed for field "FocusDirective.strength": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "FocusDirective.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FocusDirective.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FocusDirective.updated_at"`)}
	}
	return nil
}

func (_c *FocusDirectiveCreate) sqlSave(ctx context.Context) (*FocusDirective, error) {
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
			return nil, fmt.Errorf("unexpected FocusDirective.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FocusDirectiveCreate) createSpec() (*FocusDirective, *sqlgraph.CreateSpec) {
	var (
		_node = &FocusDirective{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(focusdirective.Table, sqlgraph.NewFieldSpec(focusdirective.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(focusdirective.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.DirectiveText(); ok {
		_spec.SetField(focusdirective.FieldDirectiveText, field.TypeString, value)
		_node.DirectiveText = value
	}
	if value, ok := _c.mutation.ScopeType(); ok {
		_spec.SetField(focusdirective.FieldScopeType, field.TypeEnum, value)
		_node.ScopeType = value
	}
	if value, ok := _c.mutation.ScopeID(); ok {
		_spec.SetField(focusdirective.FieldScopeID, field.TypeString, value)
		_node.ScopeID = &value
	}
	if value, ok := _c.mutation.ScopeValue(); ok {
		_spec.SetField(focusdirective.FieldScopeValue, field.TypeString, value)
		_node.ScopeValue = &value
	}
	if value, ok := _c.mutation.Strength(); ok {
		_spec.SetField(focusdirective.FieldStrength, field.TypeEnum, value)
		_node.Strength = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(focusdirective.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.StartsAt(); ok {
		_spec.SetField(focusdirective.FieldStartsAt, field.TypeTime, value)
		_node.StartsAt = &value
	}
	if value, ok := _c.mutation.EndsAt(); ok {
		_spec.SetField(focusdirective.FieldEndsAt, field.TypeTime, value)
		_node.EndsAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(focusdirective.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(focusdirective.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// FocusDirectiveCreateBulk is the builder for creating many FocusDirective entities in bulk.
type FocusDirectiveCreateBulk struct {
	config
	err      error
	builders []*FocusDirectiveCreate
}

// Save creates the FocusDirective entities in the database.
func (_c *FocusDirectiveCreateBulk) Save(ctx context.Context) ([]*FocusDirective, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FocusDirective, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FocusDirectiveMutation)
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
func (_c *FocusDirectiveCreateBulk) SaveX(ctx context.Context) []*FocusDirective {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FocusDirectiveCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FocusDirectiveCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
