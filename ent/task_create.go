// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionctl/missionctl/ent/task"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *TaskCreate) SetOwnerID(v string) *TaskCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *TaskCreate) SetTitle(v string) *TaskCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TaskCreate) SetDescription(v string) *TaskCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDescription(v *string) *TaskCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetApplicationID sets the "application_id" field.
func (_c *TaskCreate) SetApplicationID(v string) *TaskCreate {
	_c.mutation.SetApplicationID(v)
	return _c
}

// SetNillableApplicationID sets the "application_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableApplicationID(v *string) *TaskCreate {
	if v != nil {
		_c.SetApplicationID(*v)
	}
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *TaskCreate) SetProjectID(v string) *TaskCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableProjectID(v *string) *TaskCreate {
	if v != nil {
		_c.SetProjectID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskCreate) SetStatus(v task.Status) *TaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStatus(v *task.Status) *TaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTaskType sets the "task_type" field.
func (_c *TaskCreate) SetTaskType(v task.TaskType) *TaskCreate {
	_c.mutation.SetTaskType(v)
	return _c
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_c *TaskCreate) SetNillableTaskType(v *task.TaskType) *TaskCreate {
	if v != nil {
		_c.SetTaskType(*v)
	}
	return _c
}

// SetPriorityScore sets the "priority_score" field.
func (_c *TaskCreate) SetPriorityScore(v float64) *TaskCreate {
	_c.mutation.SetPriorityScore(v)
	return _c
}

// SetNillablePriorityScore sets the "priority_score" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePriorityScore(v *float64) *TaskCreate {
	if v != nil {
		_c.SetPriorityScore(*v)
	}
	return _c
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (_c *TaskCreate) SetEstimatedMinutes(v int) *TaskCreate {
	_c.mutation.SetEstimatedMinutes(v)
	return _c
}

// SetNillableEstimatedMinutes sets the "estimated_minutes" field if the given value is not nil.
func (_c *TaskCreate) SetNillableEstimatedMinutes(v *int) *TaskCreate {
	if v != nil {
		_c.SetEstimatedMinutes(*v)
	}
	return _c
}

// SetEstimateSource sets the "estimate_source" field.
func (_c *TaskCreate) SetEstimateSource(v task.EstimateSource) *TaskCreate {
	_c.mutation.SetEstimateSource(v)
	return _c
}

// SetNillableEstimateSource sets the "estimate_source" field if the given value is not nil.
func (_c *TaskCreate) SetNillableEstimateSource(v *task.EstimateSource) *TaskCreate {
	if v != nil {
		_c.SetEstimateSource(*v)
	}
	return _c
}

// SetDueAt sets the "due_at" field.
func (_c *TaskCreate) SetDueAt(v time.Time) *TaskCreate {
	_c.mutation.SetDueAt(v)
	return _c
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDueAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetDueAt(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *TaskCreate) SetNeedsReview(v bool) *TaskCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *TaskCreate) SetNillableNeedsReview(v *bool) *TaskCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetBlocker sets the "blocker" field.
func (_c *TaskCreate) SetBlocker(v bool) *TaskCreate {
	_c.mutation.SetBlocker(v)
	return _c
}

// SetNillableBlocker sets the "blocker" field if the given value is not nil.
func (_c *TaskCreate) SetNillableBlocker(v *bool) *TaskCreate {
	if v != nil {
		_c.SetBlocker(*v)
	}
	return _c
}

// SetWaitingOn sets the "waiting_on" field.
func (_c *TaskCreate) SetWaitingOn(v string) *TaskCreate {
	_c.mutation.SetWaitingOn(v)
	return _c
}

// SetNillableWaitingOn sets the "waiting_on" field if the given value is not nil.
func (_c *TaskCreate) SetNillableWaitingOn(v *string) *TaskCreate {
	if v != nil {
		_c.SetWaitingOn(*v)
	}
	return _c
}

// SetFollowUpAt sets the "follow_up_at" field.
func (_c *TaskCreate) SetFollowUpAt(v time.Time) *TaskCreate {
	_c.mutation.SetFollowUpAt(v)
	return _c
}

// SetNillableFollowUpAt sets the "follow_up_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableFollowUpAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetFollowUpAt(*v)
	}
	return _c
}

// SetStakeholderMentions sets the "stakeholder_mentions" field.
func (_c *TaskCreate) SetStakeholderMentions(v []string) *TaskCreate {
	_c.mutation.SetStakeholderMentions(v)
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *TaskCreate) SetSourceType(v task.SourceType) *TaskCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_c *TaskCreate) SetNillableSourceType(v *task.SourceType) *TaskCreate {
	if v != nil {
		_c.SetSourceType(*v)
	}
	return _c
}

// SetSourceURL sets the "source_url" field.
func (_c *TaskCreate) SetSourceURL(v string) *TaskCreate {
	_c.mutation.SetSourceURL(v)
	return _c
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_c *TaskCreate) SetNillableSourceURL(v *string) *TaskCreate {
	if v != nil {
		_c.SetSourceURL(*v)
	}
	return _c
}

// SetInboxItemID sets the "inbox_item_id" field.
func (_c *TaskCreate) SetInboxItemID(v string) *TaskCreate {
	_c.mutation.SetInboxItemID(v)
	return _c
}

// SetNillableInboxItemID sets the "inbox_item_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableInboxItemID(v *string) *TaskCreate {
	if v != nil {
		_c.SetInboxItemID(*v)
	}
	return _c
}

// SetPinnedExcerpt sets the "pinned_excerpt" field.
func (_c *TaskCreate) SetPinnedExcerpt(v string) *TaskCreate {
	_c.mutation.SetPinnedExcerpt(v)
	return _c
}

// SetNillablePinnedExcerpt sets the "pinned_excerpt" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePinnedExcerpt(v *string) *TaskCreate {
	if v != nil {
		_c.SetPinnedExcerpt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TaskCreate) SetUpdatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableUpdatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskCreate) SetID(v string) *TaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := task.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TaskType(); !ok {
		v := task.DefaultTaskType
		_c.mutation.SetTaskType(v)
	}
	if _, ok := _c.mutation.PriorityScore(); !ok {
		v := task.DefaultPriorityScore
		_c.mutation.SetPriorityScore(v)
	}
	if _, ok := _c.mutation.EstimatedMinutes(); !ok {
		v := task.DefaultEstimatedMinutes
		_c.mutation.SetEstimatedMinutes(v)
	}
	if _, ok := _c.mutation.EstimateSource(); !ok {
		v := task.DefaultEstimateSource
		_c.mutation.SetEstimateSource(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := task.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.Blocker(); !ok {
		v := task.DefaultBlocker
		_c.mutation.SetBlocker(v)
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		v := task.DefaultSourceType
		_c.mutation.SetSourceType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := task.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Task.owner_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Task.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := task.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Task.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Task.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskType(); !ok {
		return &ValidationError{Name: "task_type", err: errors.New(`ent: missing required field "Task.task_type"`)}
	}
	if v, ok := _c.mutation.TaskType(); ok {
		if err := task.TaskTypeValidator(v); err != nil {
			return &ValidationError{Name: "task_type", err: fmt.Errorf(`ent: validator failed for field "Task.task_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PriorityScore(); !ok {
		return &ValidationError{Name: "priority_score", err: errors.New(`ent: missing required field "Task.priority_score"`)}
	}
	if v, ok := _c.mutation.PriorityScore(); ok {
		if err := task.PriorityScoreValidator(v); err != nil {
			return &ValidationError{Name: "priority_score", err: fmt.Errorf(`ent: validator failed for field "Task.priority_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EstimatedMinutes(); !ok {
		return &ValidationError{Name: "estimated_minutes", err: errors.New(`ent: missing required field "Task.estimated_minutes"`)}
	}
	if v, ok := _c.mutation.EstimatedMinutes(); ok {
		if err := task.EstimatedMinutesValidator(v); err != nil {
			return &ValidationError{Name: "estimated_minutes", err: fmt.Errorf(`ent: validator failed for field "Task.estimated_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EstimateSource(); !ok {
		return &ValidationError{Name: "estimate_source", err: errors.New(`ent: missing required field "Task.estimate_source"`)}
	}
	if v, ok := _c.mutation.EstimateSource(); ok {
		if err := task.EstimateSourceValidator(v); err != nil {
			return &ValidationError{Name: "estimate_source", err: fmt.Errorf(`ent: validator failed for field "Task.estimate_source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "Task.needs_review"`)}
	}
	if _, ok := _c.mutation.Blocker(); !ok {
		return &ValidationError{Name: "blocker", err: errors.New(`ent: missing required field "Task.blocker"`)}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "Task.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := task.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Task.source_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Task.updated_at"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
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
			return nil, fmt.Errorf("unexpected Task.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(task.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.ApplicationID(); ok {
		_spec.SetField(task.FieldApplicationID, field.TypeString, value)
		_node.ApplicationID = &value
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(task.FieldProjectID, field.TypeString, value)
		_node.ProjectID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TaskType(); ok {
		_spec.SetField(task.FieldTaskType, field.TypeEnum, value)
		_node.TaskType = value
	}
	if value, ok := _c.mutation.PriorityScore(); ok {
		_spec.SetField(task.FieldPriorityScore, field.TypeFloat64, value)
		_node.PriorityScore = value
	}
	if value, ok := _c.mutation.EstimatedMinutes(); ok {
		_spec.SetField(task.FieldEstimatedMinutes, field.TypeInt, value)
		_node.EstimatedMinutes = value
	}
	if value, ok := _c.mutation.EstimateSource(); ok {
		_spec.SetField(task.FieldEstimateSource, field.TypeEnum, value)
		_node.EstimateSource = value
	}
	if value, ok := _c.mutation.DueAt(); ok {
		_spec.SetField(task.FieldDueAt, field.TypeTime, value)
		_node.DueAt = &value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(task.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.Blocker(); ok {
		_spec.SetField(task.FieldBlocker, field.TypeBool, value)
		_node.Blocker = value
	}
	if value, ok := _c.mutation.WaitingOn(); ok {
		_spec.SetField(task.FieldWaitingOn, field.TypeString, value)
		_node.WaitingOn = &value
	}
	if value, ok := _c.mutation.FollowUpAt(); ok {
		_spec.SetField(task.FieldFollowUpAt, field.TypeTime, value)
		_node.FollowUpAt = &value
	}
	if value, ok := _c.mutation.StakeholderMentions(); ok {
		_spec.SetField(task.FieldStakeholderMentions, field.TypeJSON, value)
		_node.StakeholderMentions = value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(task.FieldSourceType, field.TypeEnum, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.SourceURL(); ok {
		_spec.SetField(task.FieldSourceURL, field.TypeString, value)
		_node.SourceURL = &value
	}
	if value, ok := _c.mutation.InboxItemID(); ok {
		_spec.SetField(task.FieldInboxItemID, field.TypeString, value)
		_node.InboxItemID = &value
	}
	if value, ok := _c.mutation.PinnedExcerpt(); ok {
		_spec.SetField(task.FieldPinnedExcerpt, field.TypeString, value)
		_node.PinnedExcerpt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
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
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
