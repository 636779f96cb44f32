package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/missionctl/missionctl/ent"
	"github.com/missionctl/missionctl/ent/commitment"
	"github.com/missionctl/missionctl/ent/task"
	"github.com/missionctl/missionctl/ent/taskdependency"
)

// AddDependencyInput targets exactly one of another task or a commitment.
type AddDependencyInput struct {
	DependsOnTaskID       string
	DependsOnCommitmentID string
}

// DependencyService manages task dependencies.
type DependencyService struct {
	client *ent.Client
}

// NewDependencyService creates a new DependencyService.
func NewDependencyService(client *ent.Client) *DependencyService {
	if client == nil {
		panic("NewDependencyService: client must not be nil")
	}
	return &DependencyService{client: client}
}

// Add creates a dependency from taskID onto another task or a commitment.
// Self-dependencies and circular task chains are rejected before insert.
func (s *DependencyService) Add(ctx context.Context, ownerID, taskID string, input AddDependencyInput) (*ent.TaskDependency, error) {
	hasTask := input.DependsOnTaskID != ""
	hasCommitment := input.DependsOnCommitmentID != ""
	if hasTask == hasCommitment {
		return nil, NewValidationError("depends_on",
			"exactly one of depends_on_task_id or depends_on_commitment_id is required")
	}
	if hasTask && input.DependsOnTaskID == taskID {
		return nil, NewValidationError("depends_on_task_id", "a task cannot depend on itself")
	}

	exists, err := s.client.Task.Query().
		Where(task.ID(taskID), task.OwnerID(ownerID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check task: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	if hasTask {
		targetExists, err := s.client.Task.Query().
			Where(task.ID(input.DependsOnTaskID), task.OwnerID(ownerID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check dependency target: %w", err)
		}
		if !targetExists {
			return nil, NewValidationError("depends_on_task_id",
				fmt.Sprintf("unknown task '%s'", input.DependsOnTaskID))
		}
		circular, err := s.reaches(ctx, ownerID, input.DependsOnTaskID, taskID)
		if err != nil {
			return nil, err
		}
		if circular {
			return nil, NewValidationError("depends_on_task_id", "Cannot create circular dependency")
		}
	} else {
		targetExists, err := s.client.Commitment.Query().
			Where(commitment.ID(input.DependsOnCommitmentID), commitment.OwnerID(ownerID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check dependency target: %w", err)
		}
		if !targetExists {
			return nil, NewValidationError("depends_on_commitment_id",
				fmt.Sprintf("unknown commitment '%s'", input.DependsOnCommitmentID))
		}
	}

	builder := s.client.TaskDependency.Create().
		SetID(uuid.New().String()).
		SetOwnerID(ownerID).
		SetTaskID(taskID)
	if hasTask {
		builder.SetDependsOnTaskID(input.DependsOnTaskID)
	} else {
		builder.SetDependsOnCommitmentID(input.DependsOnCommitmentID)
	}

	dep, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create dependency: %w", err)
	}
	return dep, nil
}

// List returns a task's outgoing dependencies.
func (s *DependencyService) List(ctx context.Context, ownerID, taskID string) ([]*ent.TaskDependency, error) {
	deps, err := s.client.TaskDependency.Query().
		Where(taskdependency.OwnerID(ownerID), taskdependency.TaskID(taskID)).
		Order(ent.Asc(taskdependency.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list dependencies: %w", err)
	}
	return deps, nil
}

// Remove deletes one dependency, scoped by both owner and the task it hangs
// off so a guessed dependency id under the wrong task is a miss.
func (s *DependencyService) Remove(ctx context.Context, ownerID, taskID, dependencyID string) error {
	n, err := s.client.TaskDependency.Delete().
		Where(
			taskdependency.ID(dependencyID),
			taskdependency.OwnerID(ownerID),
			taskdependency.TaskID(taskID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete dependency: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Unresolved reports whether a task still has unresolved dependencies: a
// task target not done, or a commitment target not satisfied.
func (s *DependencyService) Unresolved(ctx context.Context, ownerID, taskID string) (bool, error) {
	deps, err := s.List(ctx, ownerID, taskID)
	if err != nil {
		return false, err
	}
	for _, dep := range deps {
		if dep.DependsOnTaskID != nil {
			open, err := s.client.Task.Query().
				Where(
					task.ID(*dep.DependsOnTaskID),
					task.OwnerID(ownerID),
					task.StatusNEQ(task.StatusDone),
				).
				Exist(ctx)
			if err != nil {
				return false, fmt.Errorf("failed to check dependency target: %w", err)
			}
			if open {
				return true, nil
			}
		}
		if dep.DependsOnCommitmentID != nil {
			open, err := s.client.Commitment.Query().
				Where(
					commitment.ID(*dep.DependsOnCommitmentID),
					commitment.OwnerID(ownerID),
					commitment.StatusNEQ(commitment.StatusSatisfied),
				).
				Exist(ctx)
			if err != nil {
				return false, fmt.Errorf("failed to check dependency target: %w", err)
			}
			if open {
				return true, nil
			}
		}
	}
	return false, nil
}

// reaches walks task dependency edges from the start task and reports whether
// the goal task is reachable. Used to reject circular chains.
func (s *DependencyService) reaches(ctx context.Context, ownerID, start, goal string) (bool, error) {
	visited := map[string]bool{start: true}
	frontier := []string{start}

	for len(frontier) > 0 {
		deps, err := s.client.TaskDependency.Query().
			Where(
				taskdependency.OwnerID(ownerID),
				taskdependency.TaskIDIn(frontier...),
				taskdependency.DependsOnTaskIDNotNil(),
			).
			All(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to walk dependencies: %w", err)
		}

		frontier = frontier[:0]
		for _, dep := range deps {
			next := *dep.DependsOnTaskID
			if next == goal {
				return true, nil
			}
			if !visited[next] {
				visited[next] = true
				frontier = append(frontier, next)
			}
		}
	}
	return false, nil
}
