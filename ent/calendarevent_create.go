// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionctl/missionctl/ent/calendarevent"
)

// CalendarEventCreate is the builder for creating a CalendarEvent entity.
type CalendarEventCreate struct {
	config
	mutation *CalendarEventMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *CalendarEventCreate) SetOwnerID(v string) *CalendarEventCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *CalendarEventCreate) SetSource(v calendarevent.Source) *CalendarEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetExternalEventID sets the "external_event_id" field.
func (_c *CalendarEventCreate) SetExternalEventID(v string) *CalendarEventCreate {
	_c.mutation.SetExternalEventID(v)
	return _c
}

// SetStartAt sets the "start_at" field.
func (_c *CalendarEventCreate) SetStartAt(v time.Time) *CalendarEventCreate {
	_c.mutation.SetStartAt(v)
	return _c
}

// SetEndAt sets the "end_at" field.
func (_c *CalendarEventCreate) SetEndAt(v time.Time) *CalendarEventCreate {
	_c.mutation.SetEndAt(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *CalendarEventCreate) SetTitle(v string) *CalendarEventCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetBodyPreview sets the "body_preview" field.
func (_c *CalendarEventCreate) SetBodyPreview(v string) *CalendarEventCreate {
	_c.mutation.SetBodyPreview(v)
	return _c
}

// SetNillableBodyPreview sets the "body_preview" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillableBodyPreview(v *string) *CalendarEventCreate {
	if v != nil {
		_c.SetBodyPreview(*v)
	}
	return _c
}

// SetIsAllDay sets the "is_all_day" field.
func (_c *CalendarEventCreate) SetIsAllDay(v bool) *CalendarEventCreate {
	_c.mutation.SetIsAllDay(v)
	return _c
}

// SetNillableIsAllDay sets the "is_all_day" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillableIsAllDay(v *bool) *CalendarEventCreate {
	if v != nil {
		_c.SetIsAllDay(*v)
	}
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *CalendarEventCreate) SetContentHash(v string) *CalendarEventCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetMeetingContext sets the "meeting_context" field.
func (_c *CalendarEventCreate) SetMeetingContext(v string) *CalendarEventCreate {
	_c.mutation.SetMeetingContext(v)
	return _c
}

// SetNillableMeetingContext sets the "meeting_context" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillableMeetingContext(v *string) *CalendarEventCreate {
	if v != nil {
		_c.SetMeetingContext(*v)
	}
	return _c
}

// SetRemovedAt sets the "removed_at" field.
func (_c *CalendarEventCreate) SetRemovedAt(v time.Time) *CalendarEventCreate {
	_c.mutation.SetRemovedAt(v)
	return _c
}

// SetNillableRemovedAt sets the "removed_at" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillableRemovedAt(v *time.Time) *CalendarEventCreate {
	if v != nil {
		_c.SetRemovedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CalendarEventCreate) SetCreatedAt(v time.Time) *CalendarEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillableCreatedAt(v *time.Time) *CalendarEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CalendarEventCreate) SetUpdatedAt(v time.Time) *CalendarEventCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillableUpdatedAt(v *time.Time) *CalendarEventCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CalendarEventCreate) SetID(v string) *CalendarEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CalendarEventMutation object of the builder.
func (_c *CalendarEventCreate) Mutation() *CalendarEventMutation {
	return _c.mutation
}

// Save creates the CalendarEvent in the database.
func (_c *CalendarEventCreate) Save(ctx context.Context) (*CalendarEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CalendarEventCreate) SaveX(ctx context.Context) *CalendarEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalendarEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalendarEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CalendarEventCreate) defaults() {
	if _, ok := _c.mutation.IsAllDay(); !ok {
		v := calendarevent.DefaultIsAllDay
		_c.mutation.SetIsAllDay(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := calendarevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := calendarevent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CalendarEventCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "CalendarEvent.owner_id"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "CalendarEvent.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := calendarevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "CalendarEvent.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExternalEventID(); !ok {
		return &ValidationError{Name: "external_event_id", err: errors.New(`ent: missing required field "CalendarEvent.external_event_id"`)}
	}
	if v, ok := _c.mutation.ExternalEventID(); ok {
		if err := calendarevent.ExternalEventIDValidator(v); err != nil {
			return &ValidationError{Name: "external_event_id", err: fmt.Errorf(`ent: validator failed for field "CalendarEvent.external_event_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartAt(); !ok {
		return &ValidationError{Name: "start_at", err: errors.New(`ent: missing required field "CalendarEvent.start_at"`)}
	}
	if _, ok := _c.mutation.EndAt(); !ok {
		return &ValidationError{Name: "end_at", err: errors.New(`ent: missing required field "CalendarEvent.end_at"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "CalendarEvent.title"`)}
	}
	if _, ok := _c.mutation.IsAllDay(); !ok {
		return &ValidationError{Name: "is_all_day", err: errors.New(`ent: missing required field "CalendarEvent.is_all_day"`)}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "CalendarEvent.content_hash"`)}
	}
	if v, ok := _c.mutation.MeetingContext(); ok {
		if err := calendarevent.MeetingContextValidator(v); err != nil {
			return &ValidationError{Name: "meeting_context", err: fmt.Errorf(`ent: validator failed for field "CalendarEvent.meeting_context": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CalendarEvent.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CalendarEvent.updated_at"`)}
	}
	return nil
}

func (_c *CalendarEventCreate) sqlSave(ctx context.Context) (*CalendarEvent, error) {
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
			return nil, fmt.Errorf("unexpected CalendarEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CalendarEventCreate) createSpec() (*CalendarEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CalendarEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(calendarevent.Table, sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(calendarevent.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(calendarevent.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.ExternalEventID(); ok {
		_spec.SetField(calendarevent.FieldExternalEventID, field.TypeString, value)
		_node.ExternalEventID = value
	}
	if value, ok := _c.mutation.StartAt(); ok {
		_spec.SetField(calendarevent.FieldStartAt, field.TypeTime, value)
		_node.StartAt = value
	}
	if value, ok := _c.mutation.EndAt(); ok {
		_spec.SetField(calendarevent.FieldEndAt, field.TypeTime, value)
		_node.EndAt = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(calendarevent.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.BodyPreview(); ok {
		_spec.SetField(calendarevent.FieldBodyPreview, field.TypeString, value)
		_node.BodyPreview = value
	}
	if value, ok := _c.mutation.IsAllDay(); ok {
		_spec.SetField(calendarevent.FieldIsAllDay, field.TypeBool, value)
		_node.IsAllDay = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(calendarevent.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.MeetingContext(); ok {
		_spec.SetField(calendarevent.FieldMeetingContext, field.TypeString, value)
		_node.MeetingContext = &value
	}
	if value, ok := _c.mutation.RemovedAt(); ok {
		_spec.SetField(calendarevent.FieldRemovedAt, field.TypeTime, value)
		_node.RemovedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(calendarevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(calendarevent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CalendarEventCreateBulk is the builder for creating many CalendarEvent entities in bulk.
type CalendarEventCreateBulk struct {
	config
	err      error
	builders []*CalendarEventCreate
}

// Save creates the CalendarEvent entities in the database.
func (_c *CalendarEventCreateBulk) Save(ctx context.Context) ([]*CalendarEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CalendarEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CalendarEventMutation)
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
func (_c *CalendarEventCreateBulk) SaveX(ctx context.Context) []*CalendarEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalendarEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalendarEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
