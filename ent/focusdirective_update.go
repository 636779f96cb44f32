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
	"github.com/missionctl/missionctl/ent/focusdirective"
	"github.com/missionctl/missionctl/ent/predicate"
)

// FocusDirectiveUpdate is the builder for updating FocusDirective entities.
type FocusDirectiveUpdate struct {
	config
	hooks    []Hook
	mutation *FocusDirectiveMutation
}

// Where appends a list predicates to the FocusDirectiveUpdate builder.
func (_u *FocusDirectiveUpdate) Where(ps ...predicate.FocusDirective) *FocusDirectiveUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDirectiveText sets the "directive_text" field.
func (_u *FocusDirectiveUpdate) SetDirectiveText(v string) *FocusDirectiveUpdate {
	_u.mutation.SetDirectiveText(v)
	return _u
}

// SetNillableDirectiveText sets the "directive_text" field if the given value is not nil.
func (_u *FocusDirectiveUpdate) SetNillableDirectiveText(v *string) *FocusDirectiveUpdate {
	if v != nil {
		_u.SetDirectiveText(*v)
	}
	return _u
}

// SetScopeType sets the "scope_type" field.
func (_u *FocusDirectiveUpdate) SetScopeType(v focusdirective.ScopeType) *FocusDirectiveUpdate {
	_u.mutation.SetScopeType(v)
	return _u
}

// SetNillableScopeType sets the "scope_type" field if the given value is not nil.
func (_u *FocusDirectiveUpdate) SetNillableScopeType(v *focusdirective.ScopeType) *FocusDirectiveUpdate {
	if v != nil {
		_u.SetScopeType(*v)
	}
	return _u
}

// SetScopeID sets the "scope_id" field.
func (_u *FocusDirectiveUpdate) SetScopeID(v string) *FocusDirectiveUpdate {
	_u.mutation.SetScopeID(v)
	return _u
}

// SetNillableScopeID sets the "scope_id" field if the given value is not nil.
func (_u *FocusDirectiveUpdate) SetNillableScopeID(v *string) *FocusDirectiveUpdate {
	if v != nil {
		_u.SetScopeID(*v)
	}
	return _u
}

// ClearScopeID clears the value of the "scope_id" field.
func (_u *FocusDirectiveUpdate) ClearScopeID() *FocusDirectiveUpdate {
	_u.mutation.ClearScopeID()
	return _u
}

// SetScopeValue sets the "scope_value" field.
func (_u *FocusDirectiveUpdate) SetScopeValue(v string) *FocusDirectiveUpdate {
	_u.mutation.SetScopeValue(v)
	return _u
}

// SetNillableScopeValue sets the "scope_value" field if the given value is not nil.
func (_u *FocusDirectiveUpdate) SetNillableScopeValue(v *string) *FocusDirectiveUpdate {
	if v != nil {
		_u.SetScopeValue(*v)
	}
	return _u
}

// ClearScopeValue clears the value of the "scope_value" field.
func (_u *FocusDirectiveUpdate) ClearScopeValue() *FocusDirectiveUpdate {
	_u.mutation.ClearScopeValue()
	return _u
}

// SetStrength sets the "strength" field.
func (_u *FocusDirectiveUpdate) SetStrength(v focusdirective.Strength) *FocusDirectiveUpdate {
	_u.mutation.SetStrength(v)
	return _u
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_u *FocusDirectiveUpdate) SetNillableStrength(v *focusdirective.Strength) *FocusDirectiveUpdate {
	if v != nil {
		_u.SetStrength(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *FocusDirectiveUpdate) SetIsActive(v bool) *FocusDirectiveUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *FocusDirectiveUpdate) SetNillableIsActive(v *bool) *FocusDirectiveUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetStartsAt sets the "starts_at" field.
func (_u *FocusDirectiveUpdate) SetStartsAt(v time.Time) *FocusDirectiveUpdate {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *FocusDirectiveUpdate) SetNillableStartsAt(v *time.Time) *FocusDirectiveUpdate {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// ClearStartsAt clears the value of the "starts_at" field.
func (_u *FocusDirectiveUpdate) ClearStartsAt() *FocusDirectiveUpdate {
	_u.mutation.ClearStartsAt()
	return _u
}

// SetEndsAt sets the "ends_at" field.
func (_u *FocusDirectiveUpdate) SetEndsAt(v time.Time) *FocusDirectiveUpdate {
	_u.mutation.SetEndsAt(v)
	return _u
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_u *FocusDirectiveUpdate) SetNillableEndsAt(v *time.Time) *FocusDirectiveUpdate {
	if v != nil {
		_u.SetEndsAt(*v)
	}
	return _u
}

// ClearEndsAt clears the value of the "ends_at" field.
func (_u *FocusDirectiveUpdate) ClearEndsAt() *FocusDirectiveUpdate {
	_u.mutation.ClearEndsAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FocusDirectiveUpdate) SetUpdatedAt(v time.Time) *FocusDirectiveUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FocusDirectiveMutation object of the builder.
func (_u *FocusDirectiveUpdate) Mutation() *FocusDirectiveMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FocusDirectiveUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FocusDirectiveUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FocusDirectiveUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FocusDirectiveUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FocusDirectiveUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := focusdirective.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FocusDirectiveUpdate) check() error {
	if v, ok := _u.mutation.DirectiveText(); ok {
		if err := focusdirective.DirectiveTextValidator(v); err != nil {
			return &ValidationError{Name: "directive_text", err: fmt.Errorf(`ent: validator failed for field "FocusDirective.directive_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScopeType(); ok {
		if err := focusdirective.ScopeTypeValidator(v); err != nil {
			return &ValidationError{Name: "scope_type", err: fmt.Errorf(`ent: validator failed for field "FocusDirective.scope_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strength(); ok {
		if err := focusdirective.StrengthValidator(v); err != nil {
			return &ValidationError{Name: "strength", err: fmt.Errorf(`ent: validator failed for field "FocusDirective.strength": %w`, err)}
		}
	}
	return nil
}

func (_u *FocusDirectiveUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(focusdirective.Table, focusdirective.Columns, sqlgraph.NewFieldSpec(focusdirective.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DirectiveText(); ok {
		_spec.SetField(focusdirective.FieldDirectiveText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScopeType(); ok {
		_spec.SetField(focusdirective.FieldScopeType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScopeID(); ok {
		_spec.SetField(focusdirective.FieldScopeID, field.TypeString, value)
	}
	if _u.mutation.ScopeIDCleared() {
		_spec.ClearField(focusdirective.FieldScopeID, field.TypeString)
	}
	if value, ok := _u.mutation.ScopeValue(); ok {
		_spec.SetField(focusdirective.FieldScopeValue, field.TypeString, value)
	}
	if _u.mutation.ScopeValueCleared() {
		_spec.ClearField(focusdirective.FieldScopeValue, field.TypeString)
	}
	if value, ok := _u.mutation.Strength(); ok {
		_spec.SetField(focusdirective.FieldStrength, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(focusdirective.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(focusdirective.FieldStartsAt, field.TypeTime, value)
	}
	if _u.mutation.StartsAtCleared() {
		_spec.ClearField(focusdirective.FieldStartsAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndsAt(); ok {
		_spec.SetField(focusdirective.FieldEndsAt, field.TypeTime, value)
	}
	if _u.mutation.EndsAtCleared() {
		_spec.ClearField(focusdirective.FieldEndsAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(focusdirective.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{focusdirective.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FocusDirectiveUpdateOne is the builder for updating a single FocusDirective entity.
type FocusDirectiveUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FocusDirectiveMutation
}

// SetDirectiveText sets the "directive_text" field.
func (_u *FocusDirectiveUpdateOne) SetDirectiveText(v string) *FocusDirectiveUpdateOne {
	_u.mutation.SetDirectiveText(v)
	return _u
}

// SetNillableDirectiveText sets the "directive_text" field if the given value is not nil.
func (_u *FocusDirectiveUpdateOne) SetNillableDirectiveText(v *string) *FocusDirectiveUpdateOne {
	if v != nil {
		_u.SetDirectiveText(*v)
	}
	return _u
}

// SetScopeType sets the "scope_type" field.
func (_u *FocusDirectiveUpdateOne) SetScopeType(v focusdirective.ScopeType) *FocusDirectiveUpdateOne {
	_u.mutation.SetScopeType(v)
	return _u
}

// SetNillableScopeType sets the "scope_type" field if the given value is not nil.
func (_u *FocusDirectiveUpdateOne) SetNillableScopeType(v *focusdirective.ScopeType) *FocusDirectiveUpdateOne {
	if v != nil {
		_u.SetScopeType(*v)
	}
	return _u
}

// SetScopeID sets the "scope_id" field.
func (_u *FocusDirectiveUpdateOne) SetScopeID(v string) *FocusDirectiveUpdateOne {
	_u.mutation.SetScopeID(v)
	return _u
}

// SetNillableScopeID sets the "scope_id" field if the given value is not nil.
func (_u *FocusDirectiveUpdateOne) SetNillableScopeID(v *string) *FocusDirectiveUpdateOne {
	if v != nil {
		_u.SetScopeID(*v)
	}
	return _u
}

// ClearScopeID clears the value of the "scope_id" field.
func (_u *FocusDirectiveUpdateOne) ClearScopeID() *FocusDirectiveUpdateOne {
	_u.mutation.ClearScopeID()
	return _u
}

// SetScopeValue sets the "scope_value" field.
func (_u *FocusDirectiveUpdateOne) SetScopeValue(v string) *FocusDirectiveUpdateOne {
	_u.mutation.SetScopeValue(v)
	return _u
}

// SetNillableScopeValue sets the "scope_value" field if the given value is not nil.
func (_u *FocusDirectiveUpdateOne) SetNillableScopeValue(v *string) *FocusDirectiveUpdateOne {
	if v != nil {
		_u.SetScopeValue(*v)
	}
	return _u
}

// ClearScopeValue clears the value of the "scope_value" field.
func (_u *FocusDirectiveUpdateOne) ClearScopeValue() *FocusDirectiveUpdateOne {
	_u.mutation.ClearScopeValue()
	return _u
}

// SetStrength sets the "strength" field.
func (_u *FocusDirectiveUpdateOne) SetStrength(v focusdirective.Strength) *FocusDirectiveUpdateOne {
	_u.mutation.SetStrength(v)
	return _u
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_u *FocusDirectiveUpdateOne) SetNillableStrength(v *focusdirective.Strength) *FocusDirectiveUpdateOne {
	if v != nil {
		_u.SetStrength(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *FocusDirectiveUpdateOne) SetIsActive(v bool) *FocusDirectiveUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *FocusDirectiveUpdateOne) SetNillableIsActive(v *bool) *FocusDirectiveUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetStartsAt sets the "starts_at" field.
func (_u *FocusDirectiveUpdateOne) SetStartsAt(v time.Time) *FocusDirectiveUpdateOne {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *FocusDirectiveUpdateOne) SetNillableStartsAt(v *time.Time) *FocusDirectiveUpdateOne {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// ClearStartsAt clears the value of the "starts_at" field.
func (_u *FocusDirectiveUpdateOne) ClearStartsAt() *FocusDirectiveUpdateOne {
	_u.mutation.ClearStartsAt()
	return _u
}

// SetEndsAt sets the "ends_at" field.
func (_u *FocusDirectiveUpdateOne) SetEndsAt(v time.Time) *FocusDirectiveUpdateOne {
	_u.mutation.SetEndsAt(v)
	return _u
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_u *FocusDirectiveUpdateOne) SetNillableEndsAt(v *time.Time) *FocusDirectiveUpdateOne {
	if v != nil {
		_u.SetEndsAt(*v)
	}
	return _u
}

// ClearEndsAt clears the value of the "ends_at" field.
func (_u *FocusDirectiveUpdateOne) ClearEndsAt() *FocusDirectiveUpdateOne {
	_u.mutation.ClearEndsAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FocusDirectiveUpdateOne) SetUpdatedAt(v time.Time) *FocusDirectiveUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FocusDirectiveMutation object of the builder.
func (_u *FocusDirectiveUpdateOne) Mutation() *FocusDirectiveMutation {
	return _u.mutation
}

// Where appends a list predicates to the FocusDirectiveUpdate builder.
func (_u *FocusDirectiveUpdateOne) Where(ps ...predicate.FocusDirective) *FocusDirectiveUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FocusDirectiveUpdateOne) Select(field string, fields ...string) *FocusDirectiveUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FocusDirective entity.
func (_u *FocusDirectiveUpdateOne) Save(ctx context.Context) (*FocusDirective, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FocusDirectiveUpdateOne) SaveX(ctx context.Context) *FocusDirective {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FocusDirectiveUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FocusDirectiveUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FocusDirectiveUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := focusdirective.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FocusDirectiveUpdateOne) check() error {
	if v, ok := _u.mutation.DirectiveText(); ok {
		if err := focusdirective.DirectiveTextValidator(v); err != nil {
			return &ValidationError{Name: "directive_text", err: fmt.Errorf(`ent: validator failed for field "FocusDirective.directive_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScopeType(); ok {
		if err := focusdirective.ScopeTypeValidator(v); err != nil {
			return &ValidationError{Name: "scope_type", err: fmt.Errorf(`ent: validator failed for field "FocusDirective.scope_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strength(); ok {
		if err := focusdirective.StrengthValidator(v); err != nil {
			return &ValidationError{Name: "strength", err: fmt.Errorf(`ent: validator failed for field "FocusDirective.strength": %w`, err)}
		}
	}
	return nil
}

func (_u *FocusDirectiveUpdateOne) sqlSave(ctx context.Context) (_node *FocusDirective, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(focusdirective.Table, focusdirective.Columns, sqlgraph.NewFieldSpec(focusdirective.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FocusDirective.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, focusdirective.FieldID)
		for _, f := range fields {
			if !focusdirective.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != focusdirective.FieldID {
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
	if value, ok := _u.mutation.DirectiveText(); ok {
		_spec.SetField(focusdirective.FieldDirectiveText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScopeType(); ok {
		_spec.SetField(focusdirective.FieldScopeType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScopeID(); ok {
		_spec.SetField(focusdirective.FieldScopeID, field.TypeString, value)
	}
	if _u.mutation.ScopeIDCleared() {
		_spec.ClearField(focusdirective.FieldScopeID, field.TypeString)
	}
	if value, ok := _u.mutation.ScopeValue(); ok {
		_spec.SetField(focusdirective.FieldScopeValue, field.TypeString, value)
	}
	if _u.mutation.ScopeValueCleared() {
		_spec.ClearField(focusdirective.FieldScopeValue, field.TypeString)
	}
	if value, ok := _u.mutation.Strength(); ok {
		_spec.SetField(focusdirective.FieldStrength, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(focusdirective.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(focusdirective.FieldStartsAt, field.TypeTime, value)
	}
	if _u.mutation.StartsAtCleared() {
		_spec.ClearField(focusdirective.FieldStartsAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndsAt(); ok {
		_spec.SetField(focusdirective.FieldEndsAt, field.TypeTime, value)
	}
	if _u.mutation.EndsAtCleared() {
		_spec.ClearField(focusdirective.FieldEndsAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(focusdirective.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &FocusDirective{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{focusdirective.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
