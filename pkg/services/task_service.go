package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/missionctl/missionctl/ent"
	"github.com/missionctl/missionctl/ent/application"
	"github.com/missionctl/missionctl/ent/checklistitem"
	"github.com/missionctl/missionctl/ent/task"
)

// Task field bounds mirrored from the schema so violations surface as
// validation errors instead of opaque constraint failures.
const (
	MinEstimatedMinutes = 1
	MaxEstimatedMinutes = 480
)

// CreateTaskInput is the domain-level data for creating a task.
type CreateTaskInput struct {
	Title               string
	Description         string
	ApplicationID       string
	ProjectID           string
	Status              string
	TaskType            string
	PriorityScore       *float64
	EstimatedMinutes    *int
	DueAt               *time.Time
	Blocker             bool
	WaitingOn           string
	FollowUpAt          *time.Time
	StakeholderMentions []string
	SourceType          string
	SourceURL           string
	PinnedExcerpt       string
}

// UpdateTaskInput carries the PATCH whitelist. Nil pointers leave the field
// untouched; the Clear flags null out nillable fields.
type UpdateTaskInput struct {
	Title               *string
	Description         *string
	ApplicationID       *string
	ProjectID           *string
	Status              *string
	TaskType            *string
	PriorityScore       *float64
	EstimatedMinutes    *int
	EstimateSource      *string
	DueAt               *time.Time
	ClearDueAt          bool
	NeedsReview         *bool
	Blocker             *bool
	WaitingOn           *string
	FollowUpAt          *time.Time
	ClearFollowUpAt     bool
	StakeholderMentions []string
	PinnedExcerpt       *string
}

// ListTasksInput filters and paginates task listing. All filters are
// conjunctive.
type ListTasksInput struct {
	Status        string
	TaskType      string
	ApplicationID string
	NeedsReview   *bool
	DueBefore     *time.Time
	IncludeDone   bool
	Limit         int
	Offset        int
}

// TaskService handles task CRUD and checklist access.
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a new TaskService.
func NewTaskService(client *ent.Client) *TaskService {
	if client == nil {
		panic("NewTaskService: client must not be nil")
	}
	return &TaskService{client: client}
}

// Create validates and persists a new task for the owner. The stored
// priority_score is the base input to the planner's scoring kernel; urgency,
// staleness, and status adjustments are derived at plan time, never written
// back to the task.
func (s *TaskService) Create(ctx context.Context, ownerID string, input CreateTaskInput) (*ent.Task, error) {
	if input.Title == "" {
		return nil, NewValidationError("title", "title is required")
	}
	status := input.Status
	if status == "" {
		status = task.DefaultStatus.String()
	}
	if err := task.StatusValidator(task.Status(status)); err != nil {
		return nil, NewValidationError("status", fmt.Sprintf("invalid status '%s'", status))
	}
	taskType := input.TaskType
	if taskType == "" {
		taskType = task.DefaultTaskType.String()
	}
	if err := task.TaskTypeValidator(task.TaskType(taskType)); err != nil {
		return nil, NewValidationError("task_type", fmt.Sprintf("invalid task_type '%s'", taskType))
	}
	if input.PriorityScore != nil && (*input.PriorityScore < 0 || *input.PriorityScore > 100) {
		return nil, NewValidationError("priority_score", "priority_score must be between 0 and 100")
	}
	if input.EstimatedMinutes != nil &&
		(*input.EstimatedMinutes < MinEstimatedMinutes || *input.EstimatedMinutes > MaxEstimatedMinutes) {
		return nil, NewValidationError("estimated_minutes",
			fmt.Sprintf("estimated_minutes must be between %d and %d", MinEstimatedMinutes, MaxEstimatedMinutes))
	}
	sourceType := input.SourceType
	if sourceType == "" {
		sourceType = task.DefaultSourceType.String()
	}
	if err := task.SourceTypeValidator(task.SourceType(sourceType)); err != nil {
		return nil, NewValidationError("source_type", fmt.Sprintf("invalid source_type '%s'", sourceType))
	}

	if input.ApplicationID != "" {
		if err := s.checkApplication(ctx, ownerID, input.ApplicationID); err != nil {
			return nil, err
		}
	}

	builder := s.client.Task.Create().
		SetID(uuid.New().String()).
		SetOwnerID(ownerID).
		SetTitle(input.Title).
		SetStatus(task.Status(status)).
		SetTaskType(task.TaskType(taskType)).
		SetSourceType(task.SourceType(sourceType)).
		SetBlocker(input.Blocker)

	if input.Description != "" {
		builder.SetDescription(input.Description)
	}
	if input.ApplicationID != "" {
		builder.SetApplicationID(input.ApplicationID)
	}
	if input.ProjectID != "" {
		builder.SetProjectID(input.ProjectID)
	}
	if input.PriorityScore != nil {
		builder.SetPriorityScore(*input.PriorityScore)
	}
	if input.EstimatedMinutes != nil {
		builder.SetEstimatedMinutes(*input.EstimatedMinutes).
			SetEstimateSource(task.EstimateSourceManual)
	}
	if input.DueAt != nil {
		builder.SetDueAt(input.DueAt.UTC())
	}
	if input.WaitingOn != "" {
		builder.SetWaitingOn(input.WaitingOn)
	}
	if input.FollowUpAt != nil {
		builder.SetFollowUpAt(input.FollowUpAt.UTC())
	}
	if len(input.StakeholderMentions) > 0 {
		builder.SetStakeholderMentions(input.StakeholderMentions)
	}
	if input.SourceURL != "" {
		builder.SetSourceURL(input.SourceURL)
	}
	if input.PinnedExcerpt != "" {
		builder.SetPinnedExcerpt(input.PinnedExcerpt)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return created, nil
}

// Get returns one task, owner-scoped.
func (s *TaskService) Get(ctx context.Context, ownerID, taskID string) (*ent.Task, error) {
	t, err := s.client.Task.Query().
		Where(task.ID(taskID), task.OwnerID(ownerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// List returns tasks matching the filters, newest first. Done tasks are
// excluded unless IncludeDone or an explicit status filter asks for them.
func (s *TaskService) List(ctx context.Context, ownerID string, input ListTasksInput) ([]*ent.Task, error) {
	query := s.client.Task.Query().Where(task.OwnerID(ownerID))

	if input.Status != "" {
		if err := task.StatusValidator(task.Status(input.Status)); err != nil {
			return nil, NewValidationError("status", fmt.Sprintf("invalid status '%s'", input.Status))
		}
		query = query.Where(task.StatusEQ(task.Status(input.Status)))
	} else if !input.IncludeDone {
		query = query.Where(task.StatusNEQ(task.StatusDone))
	}
	if input.TaskType != "" {
		if err := task.TaskTypeValidator(task.TaskType(input.TaskType)); err != nil {
			return nil, NewValidationError("task_type", fmt.Sprintf("invalid task_type '%s'", input.TaskType))
		}
		query = query.Where(task.TaskTypeEQ(task.TaskType(input.TaskType)))
	}
	if input.ApplicationID != "" {
		query = query.Where(task.ApplicationID(input.ApplicationID))
	}
	if input.NeedsReview != nil {
		query = query.Where(task.NeedsReview(*input.NeedsReview))
	}
	if input.DueBefore != nil {
		query = query.Where(task.DueAtLTE(input.DueBefore.UTC()))
	}

	limit := input.Limit
	if limit <= 0 || limit > 200 {
		limit = 100
	}
	tasks, err := query.
		Order(ent.Desc(task.FieldCreatedAt)).
		Limit(limit).
		Offset(input.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Update applies the PATCH whitelist to one task, owner-scoped. Edits to due
// date or status never recompute priority_score; it stays the caller-supplied
// base and the planner derives the rest when it builds a plan, so stored plan
// snapshots replay against the inputs they actually saw.
func (s *TaskService) Update(ctx context.Context, ownerID, taskID string, input UpdateTaskInput) (*ent.Task, error) {
	existing, err := s.Get(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil && *input.Title == "" {
		return nil, NewValidationError("title", "title cannot be empty")
	}
	if input.Status != nil {
		if err := task.StatusValidator(task.Status(*input.Status)); err != nil {
			return nil, NewValidationError("status", fmt.Sprintf("invalid status '%s'", *input.Status))
		}
	}
	if input.TaskType != nil {
		if err := task.TaskTypeValidator(task.TaskType(*input.TaskType)); err != nil {
			return nil, NewValidationError("task_type", fmt.Sprintf("invalid task_type '%s'", *input.TaskType))
		}
	}
	if input.PriorityScore != nil && (*input.PriorityScore < 0 || *input.PriorityScore > 100) {
		return nil, NewValidationError("priority_score", "priority_score must be between 0 and 100")
	}
	if input.EstimatedMinutes != nil &&
		(*input.EstimatedMinutes < MinEstimatedMinutes || *input.EstimatedMinutes > MaxEstimatedMinutes) {
		return nil, NewValidationError("estimated_minutes",
			fmt.Sprintf("estimated_minutes must be between %d and %d", MinEstimatedMinutes, MaxEstimatedMinutes))
	}
	if input.EstimateSource != nil {
		if err := task.EstimateSourceValidator(task.EstimateSource(*input.EstimateSource)); err != nil {
			return nil, NewValidationError("estimate_source",
				fmt.Sprintf("invalid estimate_source '%s'", *input.EstimateSource))
		}
	}
	if input.ApplicationID != nil && *input.ApplicationID != "" {
		if err := s.checkApplication(ctx, ownerID, *input.ApplicationID); err != nil {
			return nil, err
		}
	}

	updater := existing.Update()
	if input.Title != nil {
		updater.SetTitle(*input.Title)
	}
	if input.Description != nil {
		if *input.Description == "" {
			updater.ClearDescription()
		} else {
			updater.SetDescription(*input.Description)
		}
	}
	if input.ApplicationID != nil {
		if *input.ApplicationID == "" {
			updater.ClearApplicationID()
		} else {
			updater.SetApplicationID(*input.ApplicationID)
		}
	}
	if input.ProjectID != nil {
		if *input.ProjectID == "" {
			updater.ClearProjectID()
		} else {
			updater.SetProjectID(*input.ProjectID)
		}
	}
	if input.Status != nil {
		updater.SetStatus(task.Status(*input.Status))
	}
	if input.TaskType != nil {
		updater.SetTaskType(task.TaskType(*input.TaskType))
	}
	if input.PriorityScore != nil {
		updater.SetPriorityScore(*input.PriorityScore)
	}
	if input.EstimatedMinutes != nil {
		updater.SetEstimatedMinutes(*input.EstimatedMinutes).
			SetEstimateSource(task.EstimateSourceManual)
	}
	// An explicit estimate_source wins over the manual default above.
	if input.EstimateSource != nil {
		updater.SetEstimateSource(task.EstimateSource(*input.EstimateSource))
	}
	if input.ClearDueAt {
		updater.ClearDueAt()
	} else if input.DueAt != nil {
		updater.SetDueAt(input.DueAt.UTC())
	}
	if input.NeedsReview != nil {
		updater.SetNeedsReview(*input.NeedsReview)
	}
	if input.Blocker != nil {
		updater.SetBlocker(*input.Blocker)
	}
	if input.WaitingOn != nil {
		if *input.WaitingOn == "" {
			updater.ClearWaitingOn()
		} else {
			updater.SetWaitingOn(*input.WaitingOn)
		}
	}
	if input.ClearFollowUpAt {
		updater.ClearFollowUpAt()
	} else if input.FollowUpAt != nil {
		updater.SetFollowUpAt(input.FollowUpAt.UTC())
	}
	if input.StakeholderMentions != nil {
		updater.SetStakeholderMentions(input.StakeholderMentions)
	}
	if input.PinnedExcerpt != nil {
		if *input.PinnedExcerpt == "" {
			updater.ClearPinnedExcerpt()
		} else {
			updater.SetPinnedExcerpt(*input.PinnedExcerpt)
		}
	}

	updated, err := updater.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return updated, nil
}

// Delete removes one task and its checklist, owner-scoped.
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID string) error {
	if _, err := s.Get(ctx, ownerID, taskID); err != nil {
		return err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ChecklistItem.Delete().
		Where(checklistitem.TaskID(taskID), checklistitem.OwnerID(ownerID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete checklist: %w", err)
	}
	if err := tx.Task.DeleteOneID(taskID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit task deletion: %w", err)
	}
	return nil
}

// Checklist returns the task's checklist in sort order.
func (s *TaskService) Checklist(ctx context.Context, ownerID, taskID string) ([]*ent.ChecklistItem, error) {
	if _, err := s.Get(ctx, ownerID, taskID); err != nil {
		return nil, err
	}
	items, err := s.client.ChecklistItem.Query().
		Where(checklistitem.TaskID(taskID), checklistitem.OwnerID(ownerID)).
		Order(ent.Asc(checklistitem.FieldSortOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load checklist: %w", err)
	}
	return items, nil
}

// SetChecklistItemDone toggles one checklist entry.
func (s *TaskService) SetChecklistItemDone(ctx context.Context, ownerID, itemID string, done bool) (*ent.ChecklistItem, error) {
	item, err := s.client.ChecklistItem.Query().
		Where(checklistitem.ID(itemID), checklistitem.OwnerID(ownerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get checklist item: %w", err)
	}
	updated, err := item.Update().SetDone(done).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update checklist item: %w", err)
	}
	return updated, nil
}

func (s *TaskService) checkApplication(ctx context.Context, ownerID, applicationID string) error {
	exists, err := s.client.Application.Query().
		Where(application.ID(applicationID), application.OwnerID(ownerID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check application: %w", err)
	}
	if !exists {
		return NewValidationError("application_id", fmt.Sprintf("unknown application '%s'", applicationID))
	}
	return nil
}
