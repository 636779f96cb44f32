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
	"github.com/missionctl/missionctl/ent/predicate"
	"github.com/missionctl/missionctl/ent/task"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdate) SetTitle(v string) *TaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTitle(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdate) SetDescription(v string) *TaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDescription(v *string) *TaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskUpdate) ClearDescription() *TaskUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetApplicationID sets the "application_id" field.
func (_u *TaskUpdate) SetApplicationID(v string) *TaskUpdate {
	_u.mutation.SetApplicationID(v)
	return _u
}

// SetNillableApplicationID sets the "application_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableApplicationID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetApplicationID(*v)
	}
	return _u
}

// ClearApplicationID clears the value of the "application_id" field.
func (_u *TaskUpdate) ClearApplicationID() *TaskUpdate {
	_u.mutation.ClearApplicationID()
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *TaskUpdate) SetProjectID(v string) *TaskUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableProjectID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *TaskUpdate) ClearProjectID() *TaskUpdate {
	_u.mutation.ClearProjectID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *TaskUpdate) SetTaskType(v task.TaskType) *TaskUpdate {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTaskType(v *task.TaskType) *TaskUpdate {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetPriorityScore sets the "priority_score" field.
func (_u *TaskUpdate) SetPriorityScore(v float64) *TaskUpdate {
	_u.mutation.ResetPriorityScore()
	_u.mutation.SetPriorityScore(v)
	return _u
}

// SetNillablePriorityScore sets the "priority_score" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePriorityScore(v *float64) *TaskUpdate {
	if v != nil {
		_u.SetPriorityScore(*v)
	}
	return _u
}

// AddPriorityScore adds value to the "priority_score" field.
func (_u *TaskUpdate) AddPriorityScore(v float64) *TaskUpdate {
	_u.mutation.AddPriorityScore(v)
	return _u
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (_u *TaskUpdate) SetEstimatedMinutes(v int) *TaskUpdate {
	_u.mutation.ResetEstimatedMinutes()
	_u.mutation.SetEstimatedMinutes(v)
	return _u
}

// SetNillableEstimatedMinutes sets the "estimated_minutes" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableEstimatedMinutes(v *int) *TaskUpdate {
	if v != nil {
		_u.SetEstimatedMinutes(*v)
	}
	return _u
}

// AddEstimatedMinutes adds value to the "estimated_minutes" field.
func (_u *TaskUpdate) AddEstimatedMinutes(v int) *TaskUpdate {
	_u.mutation.AddEstimatedMinutes(v)
	return _u
}

// SetEstimateSource sets the "estimate_source" field.
func (_u *TaskUpdate) SetEstimateSource(v task.EstimateSource) *TaskUpdate {
	_u.mutation.SetEstimateSource(v)
	return _u
}

// SetNillableEstimateSource sets the "estimate_source" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableEstimateSource(v *task.EstimateSource) *TaskUpdate {
	if v != nil {
		_u.SetEstimateSource(*v)
	}
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *TaskUpdate) SetDueAt(v time.Time) *TaskUpdate {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDueAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// ClearDueAt clears the value of the "due_at" field.
func (_u *TaskUpdate) ClearDueAt() *TaskUpdate {
	_u.mutation.ClearDueAt()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *TaskUpdate) SetNeedsReview(v bool) *TaskUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableNeedsReview(v *bool) *TaskUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetBlocker sets the "blocker" field.
func (_u *TaskUpdate) SetBlocker(v bool) *TaskUpdate {
	_u.mutation.SetBlocker(v)
	return _u
}

// SetNillableBlocker sets the "blocker" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableBlocker(v *bool) *TaskUpdate {
	if v != nil {
		_u.SetBlocker(*v)
	}
	return _u
}

// SetWaitingOn sets the "waiting_on" field.
func (_u *TaskUpdate) SetWaitingOn(v string) *TaskUpdate {
	_u.mutation.SetWaitingOn(v)
	return _u
}

// SetNillableWaitingOn sets the "waiting_on" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableWaitingOn(v *string) *TaskUpdate {
	if v != nil {
		_u.SetWaitingOn(*v)
	}
	return _u
}

// ClearWaitingOn clears the value of the "waiting_on" field.
func (_u *TaskUpdate) ClearWaitingOn() *TaskUpdate {
	_u.mutation.ClearWaitingOn()
	return _u
}

// SetFollowUpAt sets the "follow_up_at" field.
func (_u *TaskUpdate) SetFollowUpAt(v time.Time) *TaskUpdate {
	_u.mutation.SetFollowUpAt(v)
	return _u
}

// SetNillableFollowUpAt sets the "follow_up_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableFollowUpAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetFollowUpAt(*v)
	}
	return _u
}

// ClearFollowUpAt clears the value of the "follow_up_at" field.
func (_u *TaskUpdate) ClearFollowUpAt() *TaskUpdate {
	_u.mutation.ClearFollowUpAt()
	return _u
}

// SetStakeholderMentions sets the "stakeholder_mentions" field.
func (_u *TaskUpdate) SetStakeholderMentions(v []string) *TaskUpdate {
	_u.mutation.SetStakeholderMentions(v)
	return _u
}

// AppendStakeholderMentions appends value to the "stakeholder_mentions" field.
func (_u *TaskUpdate) AppendStakeholderMentions(v []string) *TaskUpdate {
	_u.mutation.AppendStakeholderMentions(v)
	return _u
}

// ClearStakeholderMentions clears the value of the "stakeholder_mentions" field.
func (_u *TaskUpdate) ClearStakeholderMentions() *TaskUpdate {
	_u.mutation.ClearStakeholderMentions()
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *TaskUpdate) SetSourceType(v task.SourceType) *TaskUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableSourceType(v *task.SourceType) *TaskUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *TaskUpdate) SetSourceURL(v string) *TaskUpdate {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableSourceURL(v *string) *TaskUpdate {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// ClearSourceURL clears the value of the "source_url" field.
func (_u *TaskUpdate) ClearSourceURL() *TaskUpdate {
	_u.mutation.ClearSourceURL()
	return _u
}

// SetInboxItemID sets the "inbox_item_id" field.
func (_u *TaskUpdate) SetInboxItemID(v string) *TaskUpdate {
	_u.mutation.SetInboxItemID(v)
	return _u
}

// SetNillableInboxItemID sets the "inbox_item_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableInboxItemID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetInboxItemID(*v)
	}
	return _u
}

// ClearInboxItemID clears the value of the "inbox_item_id" field.
func (_u *TaskUpdate) ClearInboxItemID() *TaskUpdate {
	_u.mutation.ClearInboxItemID()
	return _u
}

// SetPinnedExcerpt sets the "pinned_excerpt" field.
func (_u *TaskUpdate) SetPinnedExcerpt(v string) *TaskUpdate {
	_u.mutation.SetPinnedExcerpt(v)
	return _u
}

// SetNillablePinnedExcerpt sets the "pinned_excerpt" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePinnedExcerpt(v *string) *TaskUpdate {
	if v != nil {
		_u.SetPinnedExcerpt(*v)
	}
	return _u
}

// ClearPinnedExcerpt clears the value of the "pinned_excerpt" field.
func (_u *TaskUpdate) ClearPinnedExcerpt() *TaskUpdate {
	_u.mutation.ClearPinnedExcerpt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := task.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Task.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaskType(); ok {
		if err := task.TaskTypeValidator(v); err != nil {
			return &ValidationError{Name: "task_type", err: fmt.Errorf(`ent: validator failed for field "Task.task_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PriorityScore(); ok {
		if err := task.PriorityScoreValidator(v); err != nil {
			return &ValidationError{Name: "priority_score", err: fmt.Errorf(`ent: validator failed for field "Task.priority_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EstimatedMinutes(); ok {
		if err := task.EstimatedMinutesValidator(v); err != nil {
			return &ValidationError{Name: "estimated_minutes", err: fmt.Errorf(`ent: validator failed for field "Task.estimated_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EstimateSource(); ok {
		if err := task.EstimateSourceValidator(v); err != nil {
			return &ValidationError{Name: "estimate_source", err: fmt.Errorf(`ent: validator failed for field "Task.estimate_source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := task.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Task.source_type": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(task.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ApplicationID(); ok {
		_spec.SetField(task.FieldApplicationID, field.TypeString, value)
	}
	if _u.mutation.ApplicationIDCleared() {
		_spec.ClearField(task.FieldApplicationID, field.TypeString)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(task.FieldProjectID, field.TypeString, value)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(task.FieldProjectID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(task.FieldTaskType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PriorityScore(); ok {
		_spec.SetField(task.FieldPriorityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriorityScore(); ok {
		_spec.AddField(task.FieldPriorityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EstimatedMinutes(); ok {
		_spec.SetField(task.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedMinutes(); ok {
		_spec.AddField(task.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimateSource(); ok {
		_spec.SetField(task.FieldEstimateSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(task.FieldDueAt, field.TypeTime, value)
	}
	if _u.mutation.DueAtCleared() {
		_spec.ClearField(task.FieldDueAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(task.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Blocker(); ok {
		_spec.SetField(task.FieldBlocker, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WaitingOn(); ok {
		_spec.SetField(task.FieldWaitingOn, field.TypeString, value)
	}
	if _u.mutation.WaitingOnCleared() {
		_spec.ClearField(task.FieldWaitingOn, field.TypeString)
	}
	if value, ok := _u.mutation.FollowUpAt(); ok {
		_spec.SetField(task.FieldFollowUpAt, field.TypeTime, value)
	}
	if _u.mutation.FollowUpAtCleared() {
		_spec.ClearField(task.FieldFollowUpAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StakeholderMentions(); ok {
		_spec.SetField(task.FieldStakeholderMentions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStakeholderMentions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldStakeholderMentions, value)
		})
	}
	if _u.mutation.StakeholderMentionsCleared() {
		_spec.ClearField(task.FieldStakeholderMentions, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(task.FieldSourceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(task.FieldSourceURL, field.TypeString, value)
	}
	if _u.mutation.SourceURLCleared() {
		_spec.ClearField(task.FieldSourceURL, field.TypeString)
	}
	if value, ok := _u.mutation.InboxItemID(); ok {
		_spec.SetField(task.FieldInboxItemID, field.TypeString, value)
	}
	if _u.mutation.InboxItemIDCleared() {
		_spec.ClearField(task.FieldInboxItemID, field.TypeString)
	}
	if value, ok := _u.mutation.PinnedExcerpt(); ok {
		_spec.SetField(task.FieldPinnedExcerpt, field.TypeString, value)
	}
	if _u.mutation.PinnedExcerptCleared() {
		_spec.ClearField(task.FieldPinnedExcerpt, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetTitle sets the "title" field.
func (_u *TaskUpdateOne) SetTitle(v string) *TaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTitle(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdateOne) SetDescription(v string) *TaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDescription(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskUpdateOne) ClearDescription() *TaskUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetApplicationID sets the "application_id" field.
func (_u *TaskUpdateOne) SetApplicationID(v string) *TaskUpdateOne {
	_u.mutation.SetApplicationID(v)
	return _u
}

// SetNillableApplicationID sets the "application_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableApplicationID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetApplicationID(*v)
	}
	return _u
}

// ClearApplicationID clears the value of the "application_id" field.
func (_u *TaskUpdateOne) ClearApplicationID() *TaskUpdateOne {
	_u.mutation.ClearApplicationID()
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *TaskUpdateOne) SetProjectID(v string) *TaskUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableProjectID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *TaskUpdateOne) ClearProjectID() *TaskUpdateOne {
	_u.mutation.ClearProjectID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *TaskUpdateOne) SetTaskType(v task.TaskType) *TaskUpdateOne {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTaskType(v *task.TaskType) *TaskUpdateOne {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetPriorityScore sets the "priority_score" field.
func (_u *TaskUpdateOne) SetPriorityScore(v float64) *TaskUpdateOne {
	_u.mutation.ResetPriorityScore()
	_u.mutation.SetPriorityScore(v)
	return _u
}

// SetNillablePriorityScore sets the "priority_score" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePriorityScore(v *float64) *TaskUpdateOne {
	if v != nil {
		_u.SetPriorityScore(*v)
	}
	return _u
}

// AddPriorityScore adds value to the "priority_score" field.
func (_u *TaskUpdateOne) AddPriorityScore(v float64) *TaskUpdateOne {
	_u.mutation.AddPriorityScore(v)
	return _u
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (_u *TaskUpdateOne) SetEstimatedMinutes(v int) *TaskUpdateOne {
	_u.mutation.ResetEstimatedMinutes()
	_u.mutation.SetEstimatedMinutes(v)
	return _u
}

// SetNillableEstimatedMinutes sets the "estimated_minutes" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableEstimatedMinutes(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetEstimatedMinutes(*v)
	}
	return _u
}

// AddEstimatedMinutes adds value to the "estimated_minutes" field.
func (_u *TaskUpdateOne) AddEstimatedMinutes(v int) *TaskUpdateOne {
	_u.mutation.AddEstimatedMinutes(v)
	return _u
}

// SetEstimateSource sets the "estimate_source" field.
func (_u *TaskUpdateOne) SetEstimateSource(v task.EstimateSource) *TaskUpdateOne {
	_u.mutation.SetEstimateSource(v)
	return _u
}

// SetNillableEstimateSource sets the "estimate_source" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableEstimateSource(v *task.EstimateSource) *TaskUpdateOne {
	if v != nil {
		_u.SetEstimateSource(*v)
	}
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *TaskUpdateOne) SetDueAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDueAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// ClearDueAt clears the value of the "due_at" field.
func (_u *TaskUpdateOne) ClearDueAt() *TaskUpdateOne {
	_u.mutation.ClearDueAt()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *TaskUpdateOne) SetNeedsReview(v bool) *TaskUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableNeedsReview(v *bool) *TaskUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetBlocker sets the "blocker" field.
func (_u *TaskUpdateOne) SetBlocker(v bool) *TaskUpdateOne {
	_u.mutation.SetBlocker(v)
	return _u
}

// SetNillableBlocker sets the "blocker" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableBlocker(v *bool) *TaskUpdateOne {
	if v != nil {
		_u.SetBlocker(*v)
	}
	return _u
}

// SetWaitingOn sets the "waiting_on" field.
func (_u *TaskUpdateOne) SetWaitingOn(v string) *TaskUpdateOne {
	_u.mutation.SetWaitingOn(v)
	return _u
}

// SetNillableWaitingOn sets the "waiting_on" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableWaitingOn(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetWaitingOn(*v)
	}
	return _u
}

// ClearWaitingOn clears the value of the "waiting_on" field.
func (_u *TaskUpdateOne) ClearWaitingOn() *TaskUpdateOne {
	_u.mutation.ClearWaitingOn()
	return _u
}

// SetFollowUpAt sets the "follow_up_at" field.
func (_u *TaskUpdateOne) SetFollowUpAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetFollowUpAt(v)
	return _u
}

// SetNillableFollowUpAt sets the "follow_up_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableFollowUpAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetFollowUpAt(*v)
	}
	return _u
}

// ClearFollowUpAt clears the value of the "follow_up_at" field.
func (_u *TaskUpdateOne) ClearFollowUpAt() *TaskUpdateOne {
	_u.mutation.ClearFollowUpAt()
	return _u
}

// SetStakeholderMentions sets the "stakeholder_mentions" field.
func (_u *TaskUpdateOne) SetStakeholderMentions(v []string) *TaskUpdateOne {
	_u.mutation.SetStakeholderMentions(v)
	return _u
}

// AppendStakeholderMentions appends value to the "stakeholder_mentions" field.
func (_u *TaskUpdateOne) AppendStakeholderMentions(v []string) *TaskUpdateOne {
	_u.mutation.AppendStakeholderMentions(v)
	return _u
}

// ClearStakeholderMentions clears the value of the "stakeholder_mentions" field.
func (_u *TaskUpdateOne) ClearStakeholderMentions() *TaskUpdateOne {
	_u.mutation.ClearStakeholderMentions()
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *TaskUpdateOne) SetSourceType(v task.SourceType) *TaskUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableSourceType(v *task.SourceType) *TaskUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *TaskUpdateOne) SetSourceURL(v string) *TaskUpdateOne {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableSourceURL(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// ClearSourceURL clears the value of the "source_url" field.
func (_u *TaskUpdateOne) ClearSourceURL() *TaskUpdateOne {
	_u.mutation.ClearSourceURL()
	return _u
}

// SetInboxItemID sets the "inbox_item_id" field.
func (_u *TaskUpdateOne) SetInboxItemID(v string) *TaskUpdateOne {
	_u.mutation.SetInboxItemID(v)
	return _u
}

// SetNillableInboxItemID sets the "inbox_item_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableInboxItemID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetInboxItemID(*v)
	}
	return _u
}

// ClearInboxItemID clears the value of the "inbox_item_id" field.
func (_u *TaskUpdateOne) ClearInboxItemID() *TaskUpdateOne {
	_u.mutation.ClearInboxItemID()
	return _u
}

// SetPinnedExcerpt sets the "pinned_excerpt" field.
func (_u *TaskUpdateOne) SetPinnedExcerpt(v string) *TaskUpdateOne {
	_u.mutation.SetPinnedExcerpt(v)
	return _u
}

// SetNillablePinnedExcerpt sets the "pinned_excerpt" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePinnedExcerpt(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetPinnedExcerpt(*v)
	}
	return _u
}

// ClearPinnedExcerpt clears the value of the "pinned_excerpt" field.
func (_u *TaskUpdateOne) ClearPinnedExcerpt() *TaskUpdateOne {
	_u.mutation.ClearPinnedExcerpt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := task.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Task.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaskType(); ok {
		if err := task.TaskTypeValidator(v); err != nil {
			return &ValidationError{Name: "task_type", err: fmt.Errorf(`ent: validator failed for field "Task.task_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PriorityScore(); ok {
		if err := task.PriorityScoreValidator(v); err != nil {
			return &ValidationError{Name: "priority_score", err: fmt.Errorf(`ent: validator failed for field "Task.priority_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EstimatedMinutes(); ok {
		if err := task.EstimatedMinutesValidator(v); err != nil {
			return &ValidationError{Name: "estimated_minutes", err: fmt.Errorf(`ent: validator failed for field "Task.estimated_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EstimateSource(); ok {
		if err := task.EstimateSourceValidator(v); err != nil {
			return &ValidationError{Name: "estimate_source", err: fmt.Errorf(`ent: validator failed for field "Task.estimate_source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := task.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Task.source_type": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(task.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ApplicationID(); ok {
		_spec.SetField(task.FieldApplicationID, field.TypeString, value)
	}
	if _u.mutation.ApplicationIDCleared() {
		_spec.ClearField(task.FieldApplicationID, field.TypeString)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(task.FieldProjectID, field.TypeString, value)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(task.FieldProjectID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(task.FieldTaskType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PriorityScore(); ok {
		_spec.SetField(task.FieldPriorityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriorityScore(); ok {
		_spec.AddField(task.FieldPriorityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EstimatedMinutes(); ok {
		_spec.SetField(task.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedMinutes(); ok {
		_spec.AddField(task.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimateSource(); ok {
		_spec.SetField(task.FieldEstimateSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(task.FieldDueAt, field.TypeTime, value)
	}
	if _u.mutation.DueAtCleared() {
		_spec.ClearField(task.FieldDueAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(task.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Blocker(); ok {
		_spec.SetField(task.FieldBlocker, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WaitingOn(); ok {
		_spec.SetField(task.FieldWaitingOn, field.TypeString, value)
	}
	if _u.mutation.WaitingOnCleared() {
		_spec.ClearField(task.FieldWaitingOn, field.TypeString)
	}
	if value, ok := _u.mutation.FollowUpAt(); ok {
		_spec.SetField(task.FieldFollowUpAt, field.TypeTime, value)
	}
	if _u.mutation.FollowUpAtCleared() {
		_spec.ClearField(task.FieldFollowUpAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StakeholderMentions(); ok {
		_spec.SetField(task.FieldStakeholderMentions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStakeholderMentions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldStakeholderMentions, value)
		})
	}
	if _u.mutation.StakeholderMentionsCleared() {
		_spec.ClearField(task.FieldStakeholderMentions, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(task.FieldSourceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(task.FieldSourceURL, field.TypeString, value)
	}
	if _u.mutation.SourceURLCleared() {
		_spec.ClearField(task.FieldSourceURL, field.TypeString)
	}
	if value, ok := _u.mutation.InboxItemID(); ok {
		_spec.SetField(task.FieldInboxItemID, field.TypeString, value)
	}
	if _u.mutation.InboxItemIDCleared() {
		_spec.ClearField(task.FieldInboxItemID, field.TypeString)
	}
	if value, ok := _u.mutation.PinnedExcerpt(); ok {
		_spec.SetField(task.FieldPinnedExcerpt, field.TypeString, value)
	}
	if _u.mutation.PinnedExcerptCleared() {
		_spec.ClearField(task.FieldPinnedExcerpt, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
