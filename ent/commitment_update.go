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
	"github.com/missionctl/missionctl/ent/commitment"
	"github.com/missionctl/missionctl/ent/predicate"
)

// CommitmentUpdate is the builder for updating Commitment entities.
type CommitmentUpdate struct {
	config
	hooks    []Hook
	mutation *CommitmentMutation
}

// Where appends a list predicates to the CommitmentUpdate builder.
func (_u *CommitmentUpdate) Where(ps ...predicate.Commitment) *CommitmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStakeholder sets the "stakeholder" field.
func (_u *CommitmentUpdate) SetStakeholder(v string) *CommitmentUpdate {
	_u.mutation.SetStakeholder(v)
	return _u
}

// SetNillableStakeholder sets the "stakeholder" field if the given value is not nil.
func (_u *CommitmentUpdate) SetNillableStakeholder(v *string) *CommitmentUpdate {
	if v != nil {
		_u.SetStakeholder(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CommitmentUpdate) SetDescription(v string) *CommitmentUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CommitmentUpdate) SetNillableDescription(v *string) *CommitmentUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetDirection sets the "direction" field.
func (_u *CommitmentUpdate) SetDirection(v commitment.Direction) *CommitmentUpdate {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *CommitmentUpdate) SetNillableDirection(v *commitment.Direction) *CommitmentUpdate {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CommitmentUpdate) SetStatus(v commitment.Status) *CommitmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CommitmentUpdate) SetNillableStatus(v *commitment.Status) *CommitmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *CommitmentUpdate) SetDueAt(v time.Time) *CommitmentUpdate {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *CommitmentUpdate) SetNillableDueAt(v *time.Time) *CommitmentUpdate {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// ClearDueAt clears the value of the "due_at" field.
func (_u *CommitmentUpdate) ClearDueAt() *CommitmentUpdate {
	_u.mutation.ClearDueAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CommitmentUpdate) SetUpdatedAt(v time.Time) *CommitmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CommitmentMutation object of the builder.
func (_u *CommitmentUpdate) Mutation() *CommitmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CommitmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommitmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CommitmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommitmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CommitmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := commitment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommitmentUpdate) check() error {
	if v, ok := _u.mutation.Stakeholder(); ok {
		if err := commitment.StakeholderValidator(v); err != nil {
			return &ValidationError{Name: "stakeholder", err: fmt.Errorf(`ent: validator failed for field "Commitment.stakeholder": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := commitment.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Commitment.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Direction(); ok {
		if err := commitment.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "Commitment.direction": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := commitment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Commitment.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CommitmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(commitment.Table, commitment.Columns, sqlgraph.NewFieldSpec(commitment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Stakeholder(); ok {
		_spec.SetField(commitment.FieldStakeholder, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(commitment.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(commitment.FieldDirection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(commitment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(commitment.FieldDueAt, field.TypeTime, value)
	}
	if _u.mutation.DueAtCleared() {
		_spec.ClearField(commitment.FieldDueAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(commitment.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commitment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CommitmentUpdateOne is the builder for updating a single Commitment entity.
type CommitmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CommitmentMutation
}

// SetStakeholder sets the "stakeholder" field.
func (_u *CommitmentUpdateOne) SetStakeholder(v string) *CommitmentUpdateOne {
	_u.mutation.SetStakeholder(v)
	return _u
}

// SetNillableStakeholder sets the "stakeholder" field if the given value is not nil.
func (_u *CommitmentUpdateOne) SetNillableStakeholder(v *string) *CommitmentUpdateOne {
	if v != nil {
		_u.SetStakeholder(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CommitmentUpdateOne) SetDescription(v string) *CommitmentUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CommitmentUpdateOne) SetNillableDescription(v *string) *CommitmentUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetDirection sets the "direction" field.
func (_u *CommitmentUpdateOne) SetDirection(v commitment.Direction) *CommitmentUpdateOne {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *CommitmentUpdateOne) SetNillableDirection(v *commitment.Direction) *CommitmentUpdateOne {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CommitmentUpdateOne) SetStatus(v commitment.Status) *CommitmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CommitmentUpdateOne) SetNillableStatus(v *commitment.Status) *CommitmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *CommitmentUpdateOne) SetDueAt(v time.Time) *CommitmentUpdateOne {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *CommitmentUpdateOne) SetNillableDueAt(v *time.Time) *CommitmentUpdateOne {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// ClearDueAt clears the value of the "due_at" field.
func (_u *CommitmentUpdateOne) ClearDueAt() *CommitmentUpdateOne {
	_u.mutation.ClearDueAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CommitmentUpdateOne) SetUpdatedAt(v time.Time) *CommitmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CommitmentMutation object of the builder.
func (_u *CommitmentUpdateOne) Mutation() *CommitmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the CommitmentUpdate builder.
func (_u *CommitmentUpdateOne) Where(ps ...predicate.Commitment) *CommitmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CommitmentUpdateOne) Select(field string, fields ...string) *CommitmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Commitment entity.
func (_u *CommitmentUpdateOne) Save(ctx context.Context) (*Commitment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommitmentUpdateOne) SaveX(ctx context.Context) *Commitment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CommitmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommitmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CommitmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := commitment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommitmentUpdateOne) check() error {
	if v, ok := _u.mutation.Stakeholder(); ok {
		if err := commitment.StakeholderValidator(v); err != nil {
			return &ValidationError{Name: "stakeholder", err: fmt.Errorf(`ent: validator failed for field "Commitment.stakeholder": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := commitment.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Commitment.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Direction(); ok {
		if err := commitment.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "Commitment.direction": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := commitment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Commitment.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CommitmentUpdateOne) sqlSave(ctx context.Context) (_node *Commitment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(commitment.Table, commitment.Columns, sqlgraph.NewFieldSpec(commitment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Commitment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, commitment.FieldID)
		for _, f := range fields {
			if !commitment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != commitment.FieldID {
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
	if value, ok := _u.mutation.Stakeholder(); ok {
		_spec.SetField(commitment.FieldStakeholder, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(commitment.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(commitment.FieldDirection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(commitment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(commitment.FieldDueAt, field.TypeTime, value)
	}
	if _u.mutation.DueAtCleared() {
		_spec.ClearField(commitment.FieldDueAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(commitment.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Commitment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commitment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
