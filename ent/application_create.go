// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionctl/missionctl/ent/application"
)

// ApplicationCreate is the builder for creating a Application entity.
type ApplicationCreate struct {
	config
	mutation *ApplicationMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *ApplicationCreate) SetOwnerID(v string) *ApplicationCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ApplicationCreate) SetName(v string) *ApplicationCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *ApplicationCreate) SetPhase(v application.Phase) *ApplicationCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillablePhase(v *application.Phase) *ApplicationCreate {
	if v != nil {
		_c.SetPhase(*v)
	}
	return _c
}

// SetRag sets the "rag" field.
func (_c *ApplicationCreate) SetRag(v application.Rag) *ApplicationCreate {
	_c.mutation.SetRag(v)
	return _c
}

// SetNillableRag sets the "rag" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableRag(v *application.Rag) *ApplicationCreate {
	if v != nil {
		_c.SetRag(*v)
	}
	return _c
}

// SetPriorityWeight sets the "priority_weight" field.
func (_c *ApplicationCreate) SetPriorityWeight(v int) *ApplicationCreate {
	_c.mutation.SetPriorityWeight(v)
	return _c
}

// SetNillablePriorityWeight sets the "priority_weight" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillablePriorityWeight(v *int) *ApplicationCreate {
	if v != nil {
		_c.SetPriorityWeight(*v)
	}
	return _c
}

// SetPortfolioRank sets the "portfolio_rank" field.
func (_c *ApplicationCreate) SetPortfolioRank(v int) *ApplicationCreate {
	_c.mutation.SetPortfolioRank(v)
	return _c
}

// SetNillablePortfolioRank sets the "portfolio_rank" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillablePortfolioRank(v *int) *ApplicationCreate {
	if v != nil {
		_c.SetPortfolioRank(*v)
	}
	return _c
}

// SetStakeholders sets the "stakeholders" field.
func (_c *ApplicationCreate) SetStakeholders(v []string) *ApplicationCreate {
	_c.mutation.SetStakeholders(v)
	return _c
}

// SetKeywords sets the "keywords" field.
func (_c *ApplicationCreate) SetKeywords(v []string) *ApplicationCreate {
	_c.mutation.SetKeywords(v)
	return _c
}

// SetStatusSummary sets the "status_summary" field.
func (_c *ApplicationCreate) SetStatusSummary(v string) *ApplicationCreate {
	_c.mutation.SetStatusSummary(v)
	return _c
}

// SetNillableStatusSummary sets the "status_summary" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableStatusSummary(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetStatusSummary(*v)
	}
	return _c
}

// SetNextMilestone sets the "next_milestone" field.
func (_c *ApplicationCreate) SetNextMilestone(v string) *ApplicationCreate {
	_c.mutation.SetNextMilestone(v)
	return _c
}

// SetNillableNextMilestone sets the "next_milestone" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableNextMilestone(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetNextMilestone(*v)
	}
	return _c
}

// SetTargetDate sets the "target_date" field.
func (_c *ApplicationCreate) SetTargetDate(v time.Time) *ApplicationCreate {
	_c.mutation.SetTargetDate(v)
	return _c
}

// SetNillableTargetDate sets the "target_date" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableTargetDate(v *time.Time) *ApplicationCreate {
	if v != nil {
		_c.SetTargetDate(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApplicationCreate) SetCreatedAt(v time.Time) *ApplicationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableCreatedAt(v *time.Time) *ApplicationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ApplicationCreate) SetUpdatedAt(v time.Time) *ApplicationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableUpdatedAt(v *time.Time) *ApplicationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApplicationCreate) SetID(v string) *ApplicationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ApplicationMutation object of the builder.
func (_c *ApplicationCreate) Mutation() *ApplicationMutation {
	return _c.mutation
}

// Save creates the Application in the database.
func (_c *ApplicationCreate) Save(ctx context.Context) (*Application, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApplicationCreate) SaveX(ctx context.Context) *Application {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApplicationCreate) defaults() {
	if _, ok := _c.mutation.Phase(); !ok {
		v := application.DefaultPhase
		_c.mutation.SetPhase(v)
	}
	if _, ok := _c.mutation.Rag(); !ok {
		v := application.DefaultRag
		_c.mutation.SetRag(v)
	}
	if _, ok := _c.mutation.PriorityWeight(); !ok {
		v := application.DefaultPriorityWeight
		_c.mutation.SetPriorityWeight(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := application.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := application.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApplicationCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Application.owner_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Application.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := application.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Application.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "Application.phase"`)}
	}
	if v, ok := _c.mutation.Phase(); ok {
		if err := application.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "Application.phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rag(); !ok {
		return &ValidationError{Name: "rag", err: errors.New(`ent: missing required field "Application.rag"`)}
	}
	if v, ok := _c.mutation.Rag(); ok {
		if err := application.RagValidator(v); err != nil {
			return &ValidationError{Name: "rag", err: fmt.Errorf(`ent: validator failed for field "Application.rag": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PriorityWeight(); !ok {
		return &ValidationError{Name: "priority_weight", err: errors.New(`ent: missing required field "Application.priority_weight"`)}
	}
	if v, ok := _c.mutation.PriorityWeight(); ok {
		if err := application.PriorityWeightValidator(v); err != nil {
			return &ValidationError{Name: "priority_weight", err: fmt.Errorf(`ent: validator failed for field "Application.priority_weight": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PortfolioRank(); ok {
		if err := application.PortfolioRankValidator(v); err != nil {
			return &ValidationError{Name: "portfolio_rank", err: fmt.Errorf(`ent: validator failed for field "Application.portfolio_rank": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Application.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Application.updated_at"`)}
	}
	return nil
}

func (_c *ApplicationCreate) sqlSave(ctx context.Context) (*Application, error) {
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
			return nil, fmt.Errorf("unexpected Application.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApplicationCreate) createSpec() (*Application, *sqlgraph.CreateSpec) {
	var (
		_node = &Application{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(application.Table, sqlgraph.NewFieldSpec(application.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(application.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(application.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(application.FieldPhase, field.TypeEnum, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.Rag(); ok {
		_spec.SetField(application.FieldRag, field.TypeEnum, value)
		_node.Rag = value
	}
	if value, ok := _c.mutation.PriorityWeight(); ok {
		_spec.SetField(application.FieldPriorityWeight, field.TypeInt, value)
		_node.PriorityWeight = value
	}
	if value, ok := _c.mutation.PortfolioRank(); ok {
		_spec.SetField(application.FieldPortfolioRank, field.TypeInt, value)
		_node.PortfolioRank = &value
	}
	if value, ok := _c.mutation.Stakeholders(); ok {
		_spec.SetField(application.FieldStakeholders, field.TypeJSON, value)
		_node.Stakeholders = value
	}
	if value, ok := _c.mutation.Keywords(); ok {
		_spec.SetField(application.FieldKeywords, field.TypeJSON, value)
		_node.Keywords = value
	}
	if value, ok := _c.mutation.StatusSummary(); ok {
		_spec.SetField(application.FieldStatusSummary, field.TypeString, value)
		_node.StatusSummary = &value
	}
	if value, ok := _c.mutation.NextMilestone(); ok {
		_spec.SetField(application.FieldNextMilestone, field.TypeString, value)
		_node.NextMilestone = &value
	}
	if value, ok := _c.mutation.TargetDate(); ok {
		_spec.SetField(application.FieldTargetDate, field.TypeTime, value)
		_node.TargetDate = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(application.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ApplicationCreateBulk is the builder for creating many Application entities in bulk.
type ApplicationCreateBulk struct {
	config
	err      error
	builders []*ApplicationCreate
}

// Save creates the Application entities in the database.
func (_c *ApplicationCreateBulk) Save(ctx context.Context) ([]*Application, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Application, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApplicationMutation)
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
func (_c *ApplicationCreateBulk) SaveX(ctx context.Context) []*Application {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
