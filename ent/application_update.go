// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/missionctl/missionctl/ent/application"
	"github.com/missionctl/missionctl/ent/predicate"
)

// ApplicationUpdate is the builder for updating Application entities.
type ApplicationUpdate struct {
	config
	hooks    []Hook
	mutation *ApplicationMutation
}

// Where appends a list predicates to the ApplicationUpdate builder.
func (_u *ApplicationUpdate) Where(ps ...predicate.Application) *ApplicationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ApplicationUpdate) SetName(v string) *ApplicationUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableName(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *ApplicationUpdate) SetPhase(v application.Phase) *ApplicationUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillablePhase(v *application.Phase) *ApplicationUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetRag sets the "rag" field.
func (_u *ApplicationUpdate) SetRag(v application.Rag) *ApplicationUpdate {
	_u.mutation.SetRag(v)
	return _u
}

// SetNillableRag sets the "rag" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableRag(v *application.Rag) *ApplicationUpdate {
	if v != nil {
		_u.SetRag(*v)
	}
	return _u
}

// SetPriorityWeight sets the "priority_weight" field.
func (_u *ApplicationUpdate) SetPriorityWeight(v int) *ApplicationUpdate {
	_u.mutation.ResetPriorityWeight()
	_u.mutation.SetPriorityWeight(v)
	return _u
}

// SetNillablePriorityWeight sets the "priority_weight" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillablePriorityWeight(v *int) *ApplicationUpdate {
	if v != nil {
		_u.SetPriorityWeight(*v)
	}
	return _u
}

// AddPriorityWeight adds value to the "priority_weight" field.
func (_u *ApplicationUpdate) AddPriorityWeight(v int) *ApplicationUpdate {
	_u.mutation.AddPriorityWeight(v)
	return _u
}

// SetPortfolioRank sets the "portfolio_rank" field.
func (_u *ApplicationUpdate) SetPortfolioRank(v int) *ApplicationUpdate {
	_u.mutation.ResetPortfolioRank()
	_u.mutation.SetPortfolioRank(v)
	return _u
}

// SetNillablePortfolioRank sets the "portfolio_rank" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillablePortfolioRank(v *int) *ApplicationUpdate {
	if v != nil {
		_u.SetPortfolioRank(*v)
	}
	return _u
}

// AddPortfolioRank adds value to the "portfolio_rank" field.
func (_u *ApplicationUpdate) AddPortfolioRank(v int) *ApplicationUpdate {
	_u.mutation.AddPortfolioRank(v)
	return _u
}

// ClearPortfolioRank clears the value of the "portfolio_rank" field.
func (_u *ApplicationUpdate) ClearPortfolioRank() *ApplicationUpdate {
	_u.mutation.ClearPortfolioRank()
	return _u
}

// SetStakeholders sets the "stakeholders" field.
func (_u *ApplicationUpdate) SetStakeholders(v []string) *ApplicationUpdate {
	_u.mutation.SetStakeholders(v)
	return _u
}

// AppendStakeholders appends value to the "stakeholders" field.
func (_u *ApplicationUpdate) AppendStakeholders(v []string) *ApplicationUpdate {
	_u.mutation.AppendStakeholders(v)
	return _u
}

// ClearStakeholders clears the value of the "stakeholders" field.
func (_u *ApplicationUpdate) ClearStakeholders() *ApplicationUpdate {
	_u.mutation.ClearStakeholders()
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *ApplicationUpdate) SetKeywords(v []string) *ApplicationUpdate {
	_u.mutation.SetKeywords(v)
	return _u
}

// AppendKeywords appends value to the "keywords" field.
func (_u *ApplicationUpdate) AppendKeywords(v []string) *ApplicationUpdate {
	_u.mutation.AppendKeywords(v)
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *ApplicationUpdate) ClearKeywords() *ApplicationUpdate {
	_u.mutation.ClearKeywords()
	return _u
}

// SetStatusSummary sets the "status_summary" field.
func (_u *ApplicationUpdate) SetStatusSummary(v string) *ApplicationUpdate {
	_u.mutation.SetStatusSummary(v)
	return _u
}

// SetNillableStatusSummary sets the "status_summary" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableStatusSummary(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetStatusSummary(*v)
	}
	return _u
}

// ClearStatusSummary clears the value of the "status_summary" field.
func (_u *ApplicationUpdate) ClearStatusSummary() *ApplicationUpdate {
	_u.mutation.ClearStatusSummary()
	return _u
}

// SetNextMilestone sets the "next_milestone" field.
func (_u *ApplicationUpdate) SetNextMilestone(v string) *ApplicationUpdate {
	_u.mutation.SetNextMilestone(v)
	return _u
}

// SetNillableNextMilestone sets the "next_milestone" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableNextMilestone(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetNextMilestone(*v)
	}
	return _u
}

// ClearNextMilestone clears the value of the "next_milestone" field.
func (_u *ApplicationUpdate) ClearNextMilestone() *ApplicationUpdate {
	_u.mutation.ClearNextMilestone()
	return _u
}

// SetTargetDate sets the "target_date" field.
func (_u *ApplicationUpdate) SetTargetDate(v time.Time) *ApplicationUpdate {
	_u.mutation.SetTargetDate(v)
	return _u
}

// SetNillableTargetDate sets the "target_date" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableTargetDate(v *time.Time) *ApplicationUpdate {
	if v != nil {
		_u.SetTargetDate(*v)
	}
	return _u
}

// ClearTargetDate clears the value of the "target_date" field.
func (_u *ApplicationUpdate) ClearTargetDate() *ApplicationUpdate {
	_u.mutation.ClearTargetDate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApplicationUpdate) SetUpdatedAt(v time.Time) *ApplicationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ApplicationMutation object of the builder.
func (_u *ApplicationUpdate) Mutation() *ApplicationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApplicationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApplicationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApplicationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := application.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicationUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := application.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Application.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := application.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "Application.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rag(); ok {
		if err := application.RagValidator(v); err != nil {
			return &ValidationError{Name: "rag", err: fmt.Errorf(`ent: validator failed for field "Application.rag": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PriorityWeight(); ok {
		if err := application.PriorityWeightValidator(v); err != nil {
			return &ValidationError{Name: "priority_weight", err: fmt.Errorf(`ent: validator failed for field "Application.priority_weight": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PortfolioRank(); ok {
		if err := application.PortfolioRankValidator(v); err != nil {
			return &ValidationError{Name: "portfolio_rank", err: fmt.Errorf(`ent: validator failed for field "Application.portfolio_rank": %w`, err)}
		}
	}
	return nil
}

func (_u *ApplicationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(application.Table, application.Columns, sqlgraph.NewFieldSpec(application.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(application.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(application.FieldPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Rag(); ok {
		_spec.SetField(application.FieldRag, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PriorityWeight(); ok {
		_spec.SetField(application.FieldPriorityWeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorityWeight(); ok {
		_spec.AddField(application.FieldPriorityWeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PortfolioRank(); ok {
		_spec.SetField(application.FieldPortfolioRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPortfolioRank(); ok {
		_spec.AddField(application.FieldPortfolioRank, field.TypeInt, value)
	}
	if _u.mutation.PortfolioRankCleared() {
		_spec.ClearField(application.FieldPortfolioRank, field.TypeInt)
	}
	if value, ok := _u.mutation.Stakeholders(); ok {
		_spec.SetField(application.FieldStakeholders, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStakeholders(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, application.FieldStakeholders, value)
		})
	}
	if _u.mutation.StakeholdersCleared() {
		_spec.ClearField(application.FieldStakeholders, field.TypeJSON)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(application.FieldKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, application.FieldKeywords, value)
		})
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(application.FieldKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.StatusSummary(); ok {
		_spec.SetField(application.FieldStatusSummary, field.TypeString, value)
	}
	if _u.mutation.StatusSummaryCleared() {
		_spec.ClearField(application.FieldStatusSummary, field.TypeString)
	}
	if value, ok := _u.mutation.NextMilestone(); ok {
		_spec.SetField(application.FieldNextMilestone, field.TypeString, value)
	}
	if _u.mutation.NextMilestoneCleared() {
		_spec.ClearField(application.FieldNextMilestone, field.TypeString)
	}
	if value, ok := _u.mutation.TargetDate(); ok {
		_spec.SetField(application.FieldTargetDate, field.TypeTime, value)
	}
	if _u.mutation.TargetDateCleared() {
		_spec.ClearField(application.FieldTargetDate, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{application.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApplicationUpdateOne is the builder for updating a single Application entity.
type ApplicationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApplicationMutation
}

// SetName sets the "name" field.
func (_u *ApplicationUpdateOne) SetName(v string) *ApplicationUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableName(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *ApplicationUpdateOne) SetPhase(v application.Phase) *ApplicationUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillablePhase(v *application.Phase) *ApplicationUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetRag sets the "rag" field.
func (_u *ApplicationUpdateOne) SetRag(v application.Rag) *ApplicationUpdateOne {
	_u.mutation.SetRag(v)
	return _u
}

// SetNillableRag sets the "rag" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableRag(v *application.Rag) *ApplicationUpdateOne {
	if v != nil {
		_u.SetRag(*v)
	}
	return _u
}

// SetPriorityWeight sets the "priority_weight" field.
func (_u *ApplicationUpdateOne) SetPriorityWeight(v int) *ApplicationUpdateOne {
	_u.mutation.ResetPriorityWeight()
	_u.mutation.SetPriorityWeight(v)
	return _u
}

// SetNillablePriorityWeight sets the "priority_weight" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillablePriorityWeight(v *int) *ApplicationUpdateOne {
	if v != nil {
		_u.SetPriorityWeight(*v)
	}
	return _u
}

// AddPriorityWeight adds value to the "priority_weight" field.
func (_u *ApplicationUpdateOne) AddPriorityWeight(v int) *ApplicationUpdateOne {
	_u.mutation.AddPriorityWeight(v)
	return _u
}

// SetPortfolioRank sets the "portfolio_rank" field.
func (_u *ApplicationUpdateOne) SetPortfolioRank(v int) *ApplicationUpdateOne {
	_u.mutation.ResetPortfolioRank()
	_u.mutation.SetPortfolioRank(v)
	return _u
}

// SetNillablePortfolioRank sets the "portfolio_rank" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillablePortfolioRank(v *int) *ApplicationUpdateOne {
	if v != nil {
		_u.SetPortfolioRank(*v)
	}
	return _u
}

// AddPortfolioRank adds value to the "portfolio_rank" field.
func (_u *ApplicationUpdateOne) AddPortfolioRank(v int) *ApplicationUpdateOne {
	_u.mutation.AddPortfolioRank(v)
	return _u
}

// ClearPortfolioRank clears the value of the "portfolio_rank" field.
func (_u *ApplicationUpdateOne) ClearPortfolioRank() *ApplicationUpdateOne {
	_u.mutation.ClearPortfolioRank()
	return _u
}

// SetStakeholders sets the "stakeholders" field.
func (_u *ApplicationUpdateOne) SetStakeholders(v []string) *ApplicationUpdateOne {
	_u.mutation.SetStakeholders(v)
	return _u
}

// AppendStakeholders appends value to the "stakeholders" field.
func (_u *ApplicationUpdateOne) AppendStakeholders(v []string) *ApplicationUpdateOne {
	_u.mutation.AppendStakeholders(v)
	return _u
}

// ClearStakeholders clears the value of the "stakeholders" field.
func (_u *ApplicationUpdateOne) ClearStakeholders() *ApplicationUpdateOne {
	_u.mutation.ClearStakeholders()
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *ApplicationUpdateOne) SetKeywords(v []string) *ApplicationUpdateOne {
	_u.mutation.SetKeywords(v)
	return _u
}

// AppendKeywords appends value to the "keywords" field.
func (_u *ApplicationUpdateOne) AppendKeywords(v []string) *ApplicationUpdateOne {
	_u.mutation.AppendKeywords(v)
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *ApplicationUpdateOne) ClearKeywords() *ApplicationUpdateOne {
	_u.mutation.ClearKeywords()
	return _u
}

// SetStatusSummary sets the "status_summary" field.
func (_u *ApplicationUpdateOne) SetStatusSummary(v string) *ApplicationUpdateOne {
	_u.mutation.SetStatusSummary(v)
	return _u
}

// SetNillableStatusSummary sets the "status_summary" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableStatusSummary(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetStatusSummary(*v)
	}
	return _u
}

// ClearStatusSummary clears the value of the "status_summary" field.
func (_u *ApplicationUpdateOne) ClearStatusSummary() *ApplicationUpdateOne {
	_u.mutation.ClearStatusSummary()
	return _u
}

// SetNextMilestone sets the "next_milestone" field.
func (_u *ApplicationUpdateOne) SetNextMilestone(v string) *ApplicationUpdateOne {
	_u.mutation.SetNextMilestone(v)
	return _u
}

// SetNillableNextMilestone sets the "next_milestone" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableNextMilestone(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetNextMilestone(*v)
	}
	return _u
}

// ClearNextMilestone clears the value of the "next_milestone" field.
func (_u *ApplicationUpdateOne) ClearNextMilestone() *ApplicationUpdateOne {
	_u.mutation.ClearNextMilestone()
	return _u
}

// SetTargetDate sets the "target_date" field.
func (_u *ApplicationUpdateOne) SetTargetDate(v time.Time) *ApplicationUpdateOne {
	_u.mutation.SetTargetDate(v)
	return _u
}

// SetNillableTargetDate sets the "target_date" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableTargetDate(v *time.Time) *ApplicationUpdateOne {
	if v != nil {
		_u.SetTargetDate(*v)
	}
	return _u
}

// ClearTargetDate clears the value of the "target_date" field.
func (_u *ApplicationUpdateOne) ClearTargetDate() *ApplicationUpdateOne {
	_u.mutation.ClearTargetDate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApplicationUpdateOne) SetUpdatedAt(v time.Time) *ApplicationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ApplicationMutation object of the builder.
func (_u *ApplicationUpdateOne) Mutation() *ApplicationMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApplicationUpdate builder.
func (_u *ApplicationUpdateOne) Where(ps ...predicate.Application) *ApplicationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApplicationUpdateOne) Select(field string, fields ...string) *ApplicationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Application entity.
func (_u *ApplicationUpdateOne) Save(ctx context.Context) (*Application, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationUpdateOne) SaveX(ctx context.Context) *Application {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApplicationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApplicationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := application.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicationUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := application.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Application.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := application.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "Application.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rag(); ok {
		if err := application.RagValidator(v); err != nil {
			return &ValidationError{Name: "rag", err: fmt.Errorf(`ent: validator failed for field "Application.rag": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PriorityWeight(); ok {
		if err := application.PriorityWeightValidator(v); err != nil {
			return &ValidationError{Name: "priority_weight", err: fmt.Errorf(`ent: validator failed for field "Application.priority_weight": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PortfolioRank(); ok {
		if err := application.PortfolioRankValidator(v); err != nil {
			return &ValidationError{Name: "portfolio_rank", err: fmt.Errorf(`ent: validator failed for field "Application.portfolio_rank": %w`, err)}
		}
	}
	return nil
}

func (_u *ApplicationUpdateOne) sqlSave(ctx context.Context) (_node *Application, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(application.Table, application.Columns, sqlgraph.NewFieldSpec(application.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Application.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, application.FieldID)
		for _, f := range fields {
			if !application.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != application.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(application.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(application.FieldPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Rag(); ok {
		_spec.SetField(application.FieldRag, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PriorityWeight(); ok {
		_spec.SetField(application.FieldPriorityWeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorityWeight(); ok {
		_spec.AddField(application.FieldPriorityWeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PortfolioRank(); ok {
		_spec.SetField(application.FieldPortfolioRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPortfolioRank(); ok {
		_spec.AddField(application.FieldPortfolioRank, field.TypeInt, value)
	}
	if _u.mutation.PortfolioRankCleared() {
		_spec.ClearField(application.FieldPortfolioRank, field.TypeInt)
	}
	if value, ok := _u.mutation.Stakeholders(); ok {
		_spec.SetField(application.FieldStakeholders, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStakeholders(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, application.FieldStakeholders, value)
		})
	}
	if _u.mutation.StakeholdersCleared() {
		_spec.ClearField(application.FieldStakeholders, field.TypeJSON)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(application.FieldKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, application.FieldKeywords, value)
		})
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(application.FieldKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.StatusSummary(); ok {
		_spec.SetField(application.FieldStatusSummary, field.TypeString, value)
	}
	if _u.mutation.StatusSummaryCleared() {
		_spec.ClearField(application.FieldStatusSummary, field.TypeString)
	}
	if value, ok := _u.mutation.NextMilestone(); ok {
		_spec.SetField(application.FieldNextMilestone, field.TypeString, value)
	}
	if _u.mutation.NextMilestoneCleared() {
		_spec.ClearField(application.FieldNextMilestone, field.TypeString)
	}
	if value, ok := _u.mutation.TargetDate(); ok {
		_spec.SetField(application.FieldTargetDate, field.TypeTime, value)
	}
	if _u.mutation.TargetDateCleared() {
		_spec.ClearField(application.FieldTargetDate, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Application{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{application.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
