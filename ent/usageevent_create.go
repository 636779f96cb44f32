// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionctl/missionctl/ent/usageevent"
)

// UsageEventCreate is the builder for creating a UsageEvent entity.
type UsageEventCreate struct {
	config
	mutation *UsageEventMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *UsageEventCreate) SetOwnerID(v string) *UsageEventCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetFeature sets the "feature" field.
func (_c *UsageEventCreate) SetFeature(v string) *UsageEventCreate {
	_c.mutation.SetFeature(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *UsageEventCreate) SetProvider(v string) *UsageEventCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModelID sets the "model_id" field.
func (_c *UsageEventCreate) SetModelID(v string) *UsageEventCreate {
	_c.mutation.SetModelID(v)
	return _c
}

// SetModelSource sets the "model_source" field.
func (_c *UsageEventCreate) SetModelSource(v usageevent.ModelSource) *UsageEventCreate {
	_c.mutation.SetModelSource(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *UsageEventCreate) SetStatus(v usageevent.Status) *UsageEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *UsageEventCreate) SetLatencyMs(v int) *UsageEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *UsageEventCreate) SetInputTokens(v int) *UsageEventCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *UsageEventCreate) SetNillableInputTokens(v *int) *UsageEventCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *UsageEventCreate) SetOutputTokens(v int) *UsageEventCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *UsageEventCreate) SetNillableOutputTokens(v *int) *UsageEventCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *UsageEventCreate) SetTotalTokens(v int) *UsageEventCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *UsageEventCreate) SetNillableTotalTokens(v *int) *UsageEventCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (_c *UsageEventCreate) SetEstimatedCostUsd(v float64) *UsageEventCreate {
	_c.mutation.SetEstimatedCostUsd(v)
	return _c
}

// SetNillableEstimatedCostUsd sets the "estimated_cost_usd" field if the given value is not nil.
func (_c *UsageEventCreate) SetNillableEstimatedCostUsd(v *float64) *UsageEventCreate {
	if v != nil {
		_c.SetEstimatedCostUsd(*v)
	}
	return _c
}

// SetCacheStatus sets the "cache_status" field.
func (_c *UsageEventCreate) SetCacheStatus(v string) *UsageEventCreate {
	_c.mutation.SetCacheStatus(v)
	return _c
}

// SetNillableCacheStatus sets the "cache_status" field if the given value is not nil.
func (_c *UsageEventCreate) SetNillableCacheStatus(v *string) *UsageEventCreate {
	if v != nil {
		_c.SetCacheStatus(*v)
	}
	return _c
}

// SetRequestFingerprint sets the "request_fingerprint" field.
func (_c *UsageEventCreate) SetRequestFingerprint(v string) *UsageEventCreate {
	_c.mutation.SetRequestFingerprint(v)
	return _c
}

// SetNillableRequestFingerprint sets the "request_fingerprint" field if the given value is not nil.
func (_c *UsageEventCreate) SetNillableRequestFingerprint(v *string) *UsageEventCreate {
	if v != nil {
		_c.SetRequestFingerprint(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UsageEventCreate) SetCreatedAt(v time.Time) *UsageEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UsageEventCreate) SetNillableCreatedAt(v *time.Time) *UsageEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UsageEventCreate) SetID(v string) *UsageEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the UsageEventMutation object of the builder.
func (_c *UsageEventCreate) Mutation() *UsageEventMutation {
	return _c.mutation
}

// Save creates the UsageEvent in the database.
func (_c *UsageEventCreate) Save(ctx context.Context) (*UsageEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UsageEventCreate) SaveX(ctx context.Context) *UsageEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UsageEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := usageevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UsageEventCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "UsageEvent.owner_id"`)}
	}
	if _, ok := _c.mutation.Feature(); !ok {
		return &ValidationError{Name: "feature", err: errors.New(`ent: missing required field "UsageEvent.feature"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "UsageEvent.provider"`)}
	}
	if _, ok := _c.mutation.ModelID(); !ok {
		return &ValidationError{Name: "model_id", err: errors.New(`ent: missing required field "UsageEvent.model_id"`)}
	}
	if _, ok := _c.mutation.ModelSource(); !ok {
		return &ValidationError{Name: "model_source", err: errors.New(`ent: missing required field "UsageEvent.model_source"`)}
	}
	if v, ok := _c.mutation.ModelSource(); ok {
		if err := usageevent.ModelSourceValidator(v); err != nil {
			return &ValidationError{Name: "model_source", err: fmt.Errorf(`ent: validator failed for field "UsageEvent.model_source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "UsageEvent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := usageevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UsageEvent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "UsageEvent.latency_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UsageEvent.created_at"`)}
	}
	return nil
}

func (_c *UsageEventCreate) sqlSave(ctx context.Context) (*UsageEvent, error) {
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
			return nil, fmt.Errorf("unexpected UsageEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UsageEventCreate) createSpec() (*UsageEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &UsageEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usageevent.Table, sqlgraph.NewFieldSpec(usageevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(usageevent.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Feature(); ok {
		_spec.SetField(usageevent.FieldFeature, field.TypeString, value)
		_node.Feature = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(usageevent.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.ModelID(); ok {
		_spec.SetField(usageevent.FieldModelID, field.TypeString, value)
		_node.ModelID = value
	}
	if value, ok := _c.mutation.ModelSource(); ok {
		_spec.SetField(usageevent.FieldModelSource, field.TypeEnum, value)
		_node.ModelSource = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(usageevent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(usageevent.FieldLatencyMs, field.TypeInt, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(usageevent.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = &value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(usageevent.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = &value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(usageevent.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = &value
	}
	if value, ok := _c.mutation.EstimatedCostUsd(); ok {
		_spec.SetField(usageevent.FieldEstimatedCostUsd, field.TypeFloat64, value)
		_node.EstimatedCostUsd = &value
	}
	if value, ok := _c.mutation.CacheStatus(); ok {
		_spec.SetField(usageevent.FieldCacheStatus, field.TypeString, value)
		_node.CacheStatus = value
	}
	if value, ok := _c.mutation.RequestFingerprint(); ok {
		_spec.SetField(usageevent.FieldRequestFingerprint, field.TypeString, value)
		_node.RequestFingerprint = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(usageevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// UsageEventCreateBulk is the builder for creating many UsageEvent entities in bulk.
type UsageEventCreateBulk struct {
	config
	err      error
	builders []*UsageEventCreate
}

// Save creates the UsageEvent entities in the database.
func (_c *UsageEventCreateBulk) Save(ctx context.Context) ([]*UsageEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UsageEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UsageEventMutation)
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
func (_c *UsageEventCreateBulk) SaveX(ctx context.Context) []*UsageEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
