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
	"github.com/missionctl/missionctl/ent/calendarevent"
	"github.com/missionctl/missionctl/ent/predicate"
)

// CalendarEventUpdate is the builder for updating CalendarEvent entities.
type CalendarEventUpdate struct {
	config
	hooks    []Hook
	mutation *CalendarEventMutation
}

// Where appends a list predicates to the CalendarEventUpdate builder.
func (_u *CalendarEventUpdate) Where(ps ...predicate.CalendarEvent) *CalendarEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEndAt sets the "end_at" field.
func (_u *CalendarEventUpdate) SetEndAt(v time.Time) *CalendarEventUpdate {
	_u.mutation.SetEndAt(v)
	return _u
}

// SetNillableEndAt sets the "end_at" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableEndAt(v *time.Time) *CalendarEventUpdate {
	if v != nil {
		_u.SetEndAt(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CalendarEventUpdate) SetTitle(v string) *CalendarEventUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableTitle(v *string) *CalendarEventUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBodyPreview sets the "body_preview" field.
func (_u *CalendarEventUpdate) SetBodyPreview(v string) *CalendarEventUpdate {
	_u.mutation.SetBodyPreview(v)
	return _u
}

// SetNillableBodyPreview sets the "body_preview" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableBodyPreview(v *string) *CalendarEventUpdate {
	if v != nil {
		_u.SetBodyPreview(*v)
	}
	return _u
}

// ClearBodyPreview clears the value of the "body_preview" field.
func (_u *CalendarEventUpdate) ClearBodyPreview() *CalendarEventUpdate {
	_u.mutation.ClearBodyPreview()
	return _u
}

// SetIsAllDay sets the "is_all_day" field.
func (_u *CalendarEventUpdate) SetIsAllDay(v bool) *CalendarEventUpdate {
	_u.mutation.SetIsAllDay(v)
	return _u
}

// SetNillableIsAllDay sets the "is_all_day" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableIsAllDay(v *bool) *CalendarEventUpdate {
	if v != nil {
		_u.SetIsAllDay(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *CalendarEventUpdate) SetContentHash(v string) *CalendarEventUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableContentHash(v *string) *CalendarEventUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetMeetingContext sets the "meeting_context" field.
func (_u *CalendarEventUpdate) SetMeetingContext(v string) *CalendarEventUpdate {
	_u.mutation.SetMeetingContext(v)
	return _u
}

// SetNillableMeetingContext sets the "meeting_context" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableMeetingContext(v *string) *CalendarEventUpdate {
	if v != nil {
		_u.SetMeetingContext(*v)
	}
	return _u
}

// ClearMeetingContext clears the value of the "meeting_context" field.
func (_u *CalendarEventUpdate) ClearMeetingContext() *CalendarEventUpdate {
	_u.mutation.ClearMeetingContext()
	return _u
}

// SetRemovedAt sets the "removed_at" field.
func (_u *CalendarEventUpdate) SetRemovedAt(v time.Time) *CalendarEventUpdate {
	_u.mutation.SetRemovedAt(v)
	return _u
}

// SetNillableRemovedAt sets the "removed_at" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableRemovedAt(v *time.Time) *CalendarEventUpdate {
	if v != nil {
		_u.SetRemovedAt(*v)
	}
	return _u
}

// ClearRemovedAt clears the value of the "removed_at" field.
func (_u *CalendarEventUpdate) ClearRemovedAt() *CalendarEventUpdate {
	_u.mutation.ClearRemovedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CalendarEventUpdate) SetUpdatedAt(v time.Time) *CalendarEventUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CalendarEventMutation object of the builder.
func (_u *CalendarEventUpdate) Mutation() *CalendarEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CalendarEventUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalendarEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CalendarEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalendarEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CalendarEventUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := calendarevent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CalendarEventUpdate) check() error {
	if v, ok := _u.mutation.MeetingContext(); ok {
		if err := calendarevent.MeetingContextValidator(v); err != nil {
			return &ValidationError{Name: "meeting_context", err: fmt.Errorf(`ent: validator failed for field "CalendarEvent.meeting_context": %w`, err)}
		}
	}
	return nil
}

func (_u *CalendarEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(calendarevent.Table, calendarevent.Columns, sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EndAt(); ok {
		_spec.SetField(calendarevent.FieldEndAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(calendarevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.BodyPreview(); ok {
		_spec.SetField(calendarevent.FieldBodyPreview, field.TypeString, value)
	}
	if _u.mutation.BodyPreviewCleared() {
		_spec.ClearField(calendarevent.FieldBodyPreview, field.TypeString)
	}
	if value, ok := _u.mutation.IsAllDay(); ok {
		_spec.SetField(calendarevent.FieldIsAllDay, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(calendarevent.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.MeetingContext(); ok {
		_spec.SetField(calendarevent.FieldMeetingContext, field.TypeString, value)
	}
	if _u.mutation.MeetingContextCleared() {
		_spec.ClearField(calendarevent.FieldMeetingContext, field.TypeString)
	}
	if value, ok := _u.mutation.RemovedAt(); ok {
		_spec.SetField(calendarevent.FieldRemovedAt, field.TypeTime, value)
	}
	if _u.mutation.RemovedAtCleared() {
		_spec.ClearField(calendarevent.FieldRemovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(calendarevent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CalendarEventUpdateOne is the builder for updating a single CalendarEvent entity.
type CalendarEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CalendarEventMutation
}

// SetEndAt sets the "end_at" field.
func (_u *CalendarEventUpdateOne) SetEndAt(v time.Time) *CalendarEventUpdateOne {
	_u.mutation.SetEndAt(v)
	return _u
}

// SetNillableEndAt sets the "end_at" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableEndAt(v *time.Time) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetEndAt(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CalendarEventUpdateOne) SetTitle(v string) *CalendarEventUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableTitle(v *string) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBodyPreview sets the "body_preview" field.
func (_u *CalendarEventUpdateOne) SetBodyPreview(v string) *CalendarEventUpdateOne {
	_u.mutation.SetBodyPreview(v)
	return _u
}

// SetNillableBodyPreview sets the "body_preview" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableBodyPreview(v *string) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetBodyPreview(*v)
	}
	return _u
}

// ClearBodyPreview clears the value of the "body_preview" field.
func (_u *CalendarEventUpdateOne) ClearBodyPreview() *CalendarEventUpdateOne {
	_u.mutation.ClearBodyPreview()
	return _u
}

// SetIsAllDay sets the "is_all_day" field.
func (_u *CalendarEventUpdateOne) SetIsAllDay(v bool) *CalendarEventUpdateOne {
	_u.mutation.SetIsAllDay(v)
	return _u
}

// SetNillableIsAllDay sets the "is_all_day" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableIsAllDay(v *bool) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetIsAllDay(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *CalendarEventUpdateOne) SetContentHash(v string) *CalendarEventUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableContentHash(v *string) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetMeetingContext sets the "meeting_context" field.
func (_u *CalendarEventUpdateOne) SetMeetingContext(v string) *CalendarEventUpdateOne {
	_u.mutation.SetMeetingContext(v)
	return _u
}

// SetNillableMeetingContext sets the "meeting_context" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableMeetingContext(v *string) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetMeetingContext(*v)
	}
	return _u
}

// ClearMeetingContext clears the value of the "meeting_context" field.
func (_u *CalendarEventUpdateOne) ClearMeetingContext() *CalendarEventUpdateOne {
	_u.mutation.ClearMeetingContext()
	return _u
}

// SetRemovedAt sets the "removed_at" field.
func (_u *CalendarEventUpdateOne) SetRemovedAt(v time.Time) *CalendarEventUpdateOne {
	_u.mutation.SetRemovedAt(v)
	return _u
}

// SetNillableRemovedAt sets the "removed_at" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableRemovedAt(v *time.Time) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetRemovedAt(*v)
	}
	return _u
}

// ClearRemovedAt clears the value of the "removed_at" field.
func (_u *CalendarEventUpdateOne) ClearRemovedAt() *CalendarEventUpdateOne {
	_u.mutation.ClearRemovedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CalendarEventUpdateOne) SetUpdatedAt(v time.Time) *CalendarEventUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CalendarEventMutation object of the builder.
func (_u *CalendarEventUpdateOne) Mutation() *CalendarEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CalendarEventUpdate builder.
func (_u *CalendarEventUpdateOne) Where(ps ...predicate.CalendarEvent) *CalendarEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CalendarEventUpdateOne) Select(field string, fields ...string) *CalendarEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CalendarEvent entity.
func (_u *CalendarEventUpdateOne) Save(ctx context.Context) (*CalendarEvent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalendarEventUpdateOne) SaveX(ctx context.Context) *CalendarEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CalendarEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalendarEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CalendarEventUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := calendarevent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CalendarEventUpdateOne) check() error {
	if v, ok := _u.mutation.MeetingContext(); ok {
		if err := calendarevent.MeetingContextValidator(v); err != nil {
			return &ValidationError{Name: "meeting_context", err: fmt.Errorf(`ent: validator failed for field "CalendarEvent.meeting_context": %w`, err)}
		}
	}
	return nil
}

func (_u *CalendarEventUpdateOne) sqlSave(ctx context.Context) (_node *CalendarEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(calendarevent.Table, calendarevent.Columns, sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CalendarEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, calendarevent.FieldID)
		for _, f := range fields {
			if !calendarevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != calendarevent.FieldID {
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
	if value, ok := _u.mutation.EndAt(); ok {
		_spec.SetField(calendarevent.FieldEndAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(calendarevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.BodyPreview(); ok {
		_spec.SetField(calendarevent.FieldBodyPreview, field.TypeString, value)
	}
	if _u.mutation.BodyPreviewCleared() {
		_spec.ClearField(calendarevent.FieldBodyPreview, field.TypeString)
	}
	if value, ok := _u.mutation.IsAllDay(); ok {
		_spec.SetField(calendarevent.FieldIsAllDay, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(calendarevent.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.MeetingContext(); ok {
		_spec.SetField(calendarevent.FieldMeetingContext, field.TypeString, value)
	}
	if _u.mutation.MeetingContextCleared() {
		_spec.ClearField(calendarevent.FieldMeetingContext, field.TypeString)
	}
	if value, ok := _u.mutation.RemovedAt(); ok {
		_spec.SetField(calendarevent.FieldRemovedAt, field.TypeTime, value)
	}
	if _u.mutation.RemovedAtCleared() {
		_spec.ClearField(calendarevent.FieldRemovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(calendarevent.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CalendarEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
