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
	"github.com/missionctl/missionctl/ent/checklistitem"
	"github.com/missionctl/missionctl/ent/predicate"
)

// ChecklistItemUpdate is the builder for updating ChecklistItem entities.
type ChecklistItemUpdate struct {
	config
	hooks    []Hook
	mutation *ChecklistItemMutation
}

// Where appends a list predicates to the ChecklistItemUpdate builder.
func (_u *ChecklistItemUpdate) Where(ps ...predicate.ChecklistItem) *ChecklistItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLabel sets the "label" field.
func (_u *ChecklistItemUpdate) SetLabel(v string) *ChecklistItemUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *ChecklistItemUpdate) SetNillableLabel(v *string) *ChecklistItemUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *ChecklistItemUpdate) SetSortOrder(v int) *ChecklistItemUpdate {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *ChecklistItemUpdate) SetNillableSortOrder(v *int) *ChecklistItemUpdate {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *ChecklistItemUpdate) AddSortOrder(v int) *ChecklistItemUpdate {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetDone sets the "done" field.
func (_u *ChecklistItemUpdate) SetDone(v bool) *ChecklistItemUpdate {
	_u.mutation.SetDone(v)
	return _u
}

// SetNillableDone sets the "done" field if the given value is not nil.
func (_u *ChecklistItemUpdate) SetNillableDone(v *bool) *ChecklistItemUpdate {
	if v != nil {
		_u.SetDone(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChecklistItemUpdate) SetUpdatedAt(v time.Time) *ChecklistItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ChecklistItemMutation object of the builder.
func (_u *ChecklistItemUpdate) Mutation() *ChecklistItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChecklistItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChecklistItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChecklistItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChecklistItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChecklistItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := checklistitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChecklistItemUpdate) check() error {
	if v, ok := _u.mutation.Label(); ok {
		if err := checklistitem.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "ChecklistItem.label": %w`, err)}
		}
	}
	return nil
}

func (_u *ChecklistItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checklistitem.Table, checklistitem.Columns, sqlgraph.NewFieldSpec(checklistitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(checklistitem.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(checklistitem.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(checklistitem.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Done(); ok {
		_spec.SetField(checklistitem.FieldDone, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(checklistitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checklistitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChecklistItemUpdateOne is the builder for updating a single ChecklistItem entity.
type ChecklistItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChecklistItemMutation
}

// SetLabel sets the "label" field.
func (_u *ChecklistItemUpdateOne) SetLabel(v string) *ChecklistItemUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *ChecklistItemUpdateOne) SetNillableLabel(v *string) *ChecklistItemUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *ChecklistItemUpdateOne) SetSortOrder(v int) *ChecklistItemUpdateOne {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *ChecklistItemUpdateOne) SetNillableSortOrder(v *int) *ChecklistItemUpdateOne {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *ChecklistItemUpdateOne) AddSortOrder(v int) *ChecklistItemUpdateOne {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetDone sets the "done" field.
func (_u *ChecklistItemUpdateOne) SetDone(v bool) *ChecklistItemUpdateOne {
	_u.mutation.SetDone(v)
	return _u
}

// SetNillableDone sets the "done" field if the given value is not nil.
func (_u *ChecklistItemUpdateOne) SetNillableDone(v *bool) *ChecklistItemUpdateOne {
	if v != nil {
		_u.SetDone(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChecklistItemUpdateOne) SetUpdatedAt(v time.Time) *ChecklistItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ChecklistItemMutation object of the builder.
func (_u *ChecklistItemUpdateOne) Mutation() *ChecklistItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChecklistItemUpdate builder.
func (_u *ChecklistItemUpdateOne) Where(ps ...predicate.ChecklistItem) *ChecklistItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChecklistItemUpdateOne) Select(field string, fields ...string) *ChecklistItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChecklistItem entity.
func (_u *ChecklistItemUpdateOne) Save(ctx context.Context) (*ChecklistItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChecklistItemUpdateOne) SaveX(ctx context.Context) *ChecklistItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChecklistItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChecklistItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChecklistItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := checklistitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChecklistItemUpdateOne) check() error {
	if v, ok := _u.mutation.Label(); ok {
		if err := checklistitem.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "ChecklistItem.label": %w`, err)}
		}
	}
	return nil
}

func (_u *ChecklistItemUpdateOne) sqlSave(ctx context.Context) (_node *ChecklistItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checklistitem.Table, checklistitem.Columns, sqlgraph.NewFieldSpec(checklistitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChecklistItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checklistitem.FieldID)
		for _, f := range fields {
			if !checklistitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != checklistitem.FieldID {
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
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(checklistitem.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(checklistitem.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(checklistitem.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Done(); ok {
		_spec.SetField(checklistitem.FieldDone, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(checklistitem.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ChecklistItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checklistitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
