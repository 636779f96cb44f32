// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionctl/missionctl/ent/inboxitem"
)

// InboxItemCreate is the builder for creating a InboxItem entity.
type InboxItemCreate struct {
	config
	mutation *InboxItemMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *InboxItemCreate) SetOwnerID(v string) *InboxItemCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetDedupeKey sets the "dedupe_key" field.
func (_c *InboxItemCreate) SetDedupeKey(v string) *InboxItemCreate {
	_c.mutation.SetDedupeKey(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *InboxItemCreate) SetSubject(v string) *InboxItemCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetFromEmail sets the "from_email" field.
func (_c *InboxItemCreate) SetFromEmail(v string) *InboxItemCreate {
	_c.mutation.SetFromEmail(v)
	return _c
}

// SetFromName sets the "from_name" field.
func (_c *InboxItemCreate) SetFromName(v string) *InboxItemCreate {
	_c.mutation.SetFromName(v)
	return _c
}

// SetNillableFromName sets the "from_name" field if the given value is not nil.
func (_c *InboxItemCreate) SetNillableFromName(v *string) *InboxItemCreate {
	if v != nil {
		_c.SetFromName(*v)
	}
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *InboxItemCreate) SetReceivedAt(v time.Time) *InboxItemCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *InboxItemCreate) SetMessageID(v string) *InboxItemCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_c *InboxItemCreate) SetNillableMessageID(v *string) *InboxItemCreate {
	if v != nil {
		_c.SetMessageID(*v)
	}
	return _c
}

// SetSourceURL sets the "source_url" field.
func (_c *InboxItemCreate) SetSourceURL(v string) *InboxItemCreate {
	_c.mutation.SetSourceURL(v)
	return _c
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_c *InboxItemCreate) SetNillableSourceURL(v *string) *InboxItemCreate {
	if v != nil {
		_c.SetSourceURL(*v)
	}
	return _c
}

// SetTriageState sets the "triage_state" field.
func (_c *InboxItemCreate) SetTriageState(v inboxitem.TriageState) *InboxItemCreate {
	_c.mutation.SetTriageState(v)
	return _c
}

// SetNillableTriageState sets the "triage_state" field if the given value is not nil.
func (_c *InboxItemCreate) SetNillableTriageState(v *inboxitem.TriageState) *InboxItemCreate {
	if v != nil {
		_c.SetTriageState(*v)
	}
	return _c
}

// SetExtractionJSON sets the "extraction_json" field.
func (_c *InboxItemCreate) SetExtractionJSON(v map[string]interface{}) *InboxItemCreate {
	_c.mutation.SetExtractionJSON(v)
	return _c
}

// SetExtractionModel sets the "extraction_model" field.
func (_c *InboxItemCreate) SetExtractionModel(v string) *InboxItemCreate {
	_c.mutation.SetExtractionModel(v)
	return _c
}

// SetNillableExtractionModel sets the "extraction_model" field if the given value is not nil.
func (_c *InboxItemCreate) SetNillableExtractionModel(v *string) *InboxItemCreate {
	if v != nil {
		_c.SetExtractionModel(*v)
	}
	return _c
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_c *InboxItemCreate) SetExtractionConfidence(v float64) *InboxItemCreate {
	_c.mutation.SetExtractionConfidence(v)
	return _c
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_c *InboxItemCreate) SetNillableExtractionConfidence(v *float64) *InboxItemCreate {
	if v != nil {
		_c.SetExtractionConfidence(*v)
	}
	return _c
}

// SetProcessingError sets the "processing_error" field.
func (_c *InboxItemCreate) SetProcessingError(v string) *InboxItemCreate {
	_c.mutation.SetProcessingError(v)
	return _c
}

// SetNillableProcessingError sets the "processing_error" field if the given value is not nil.
func (_c *InboxItemCreate) SetNillableProcessingError(v *string) *InboxItemCreate {
	if v != nil {
		_c.SetProcessingError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InboxItemCreate) SetCreatedAt(v time.Time) *InboxItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InboxItemCreate) SetNillableCreatedAt(v *time.Time) *InboxItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InboxItemCreate) SetUpdatedAt(v time.Time) *InboxItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InboxItemCreate) SetNillableUpdatedAt(v *time.Time) *InboxItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InboxItemCreate) SetID(v string) *InboxItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the InboxItemMutation object of the builder.
func (_c *InboxItemCreate) Mutation() *InboxItemMutation {
	return _c.mutation
}

// Save creates the InboxItem in the database.
func (_c *InboxItemCreate) Save(ctx context.Context) (*InboxItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InboxItemCreate) SaveX(ctx context.Context) *InboxItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InboxItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InboxItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InboxItemCreate) defaults() {
	if _, ok := _c.mutation.TriageState(); !ok {
		v := inboxitem.DefaultTriageState
		_c.mutation.SetTriageState(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := inboxitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := inboxitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InboxItemCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "InboxItem.owner_id"`)}
	}
	if _, ok := _c.mutation.DedupeKey(); !ok {
		return &ValidationError{Name: "dedupe_key", err: errors.New(`ent: missing required field "InboxItem.dedupe_key"`)}
	}
	if v, ok := _c.mutation.DedupeKey(); ok {
		if err := inboxitem.DedupeKeyValidator(v); err != nil {
			return &ValidationError{Name: "dedupe_key", err: fmt.Errorf(`ent: validator failed for field "InboxItem.dedupe_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "InboxItem.subject"`)}
	}
	if _, ok := _c.mutation.FromEmail(); !ok {
		return &ValidationError{Name: "from_email", err: errors.New(`ent: missing required field "InboxItem.from_email"`)}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "InboxItem.received_at"`)}
	}
	if _, ok := _c.mutation.TriageState(); !ok {
		return &ValidationError{Name: "triage_state", err: errors.New(`ent: missing required field "InboxItem.triage_state"`)}
	}
	if v, ok := _c.mutation.TriageState(); ok {
		if err := inboxitem.TriageStateValidator(v); err != nil {
			return &ValidationError{Name: "triage_state", err: fmt.Errorf(`ent: validator failed for field "InboxItem.triage_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InboxItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "InboxItem.updated_at"`)}
	}
	return nil
}

func (_c *InboxItemCreate) sqlSave(ctx context.Context) (*InboxItem, error) {
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
			return nil, fmt.Errorf("unexpected InboxItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InboxItemCreate) createSpec() (*InboxItem, *sqlgraph.CreateSpec) {
	var (
		_node = &InboxItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(inboxitem.Table, sqlgraph.NewFieldSpec(inboxitem.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(inboxitem.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.DedupeKey(); ok {
		_spec.SetField(inboxitem.FieldDedupeKey, field.TypeString, value)
		_node.DedupeKey = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(inboxitem.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.FromEmail(); ok {
		_spec.SetField(inboxitem.FieldFromEmail, field.TypeString, value)
		_node.FromEmail = value
	}
	if value, ok := _c.mutation.FromName(); ok {
		_spec.SetField(inboxitem.FieldFromName, field.TypeString, value)
		_node.FromName = &value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(inboxitem.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(inboxitem.FieldMessageID, field.TypeString, value)
		_node.MessageID = &value
	}
	if value, ok := _c.mutation.SourceURL(); ok {
		_spec.SetField(inboxitem.FieldSourceURL, field.TypeString, value)
		_node.SourceURL = &value
	}
	if value, ok := _c.mutation.TriageState(); ok {
		_spec.SetField(inboxitem.FieldTriageState, field.TypeEnum, value)
		_node.TriageState = value
	}
	if value, ok := _c.mutation.ExtractionJSON(); ok {
		_spec.SetField(inboxitem.FieldExtractionJSON, field.TypeJSON, value)
		_node.ExtractionJSON = value
	}
	if value, ok := _c.mutation.ExtractionModel(); ok {
		_spec.SetField(inboxitem.FieldExtractionModel, field.TypeString, value)
		_node.ExtractionModel = &value
	}
	if value, ok := _c.mutation.ExtractionConfidence(); ok {
		_spec.SetField(inboxitem.FieldExtractionConfidence, field.TypeFloat64, value)
		_node.ExtractionConfidence = &value
	}
	if value, ok := _c.mutation.ProcessingError(); ok {
		_spec.SetField(inboxitem.FieldProcessingError, field.TypeString, value)
		_node.ProcessingError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(inboxitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(inboxitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// InboxItemCreateBulk is the builder for creating many InboxItem entities in bulk.
type InboxItemCreateBulk struct {
	config
	err      error
	builders []*InboxItemCreate
}

// Save creates the InboxItem entities in the database.
func (_c *InboxItemCreateBulk) Save(ctx context.Context) ([]*InboxItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InboxItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InboxItemMutation)
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
func (_c *InboxItemCreateBulk) SaveX(ctx context.Context) []*InboxItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InboxItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InboxItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
