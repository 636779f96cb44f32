package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/missionctl/missionctl/ent"
	"github.com/missionctl/missionctl/ent/commitment"
)

// CreateCommitmentInput is the domain-level data for creating a commitment.
type CreateCommitmentInput struct {
	Stakeholder string
	Description string
	Direction   string
	DueAt       *time.Time
}

// CommitmentService manages stakeholder commitments.
type CommitmentService struct {
	client *ent.Client
}

// NewCommitmentService creates a new CommitmentService.
func NewCommitmentService(client *ent.Client) *CommitmentService {
	if client == nil {
		panic("NewCommitmentService: client must not be nil")
	}
	return &CommitmentService{client: client}
}

// Create persists a new open commitment.
func (s *CommitmentService) Create(ctx context.Context, ownerID string, input CreateCommitmentInput) (*ent.Commitment, error) {
	if strings.TrimSpace(input.Stakeholder) == "" {
		return nil, NewValidationError("stakeholder", "stakeholder is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, NewValidationError("description", "description is required")
	}
	if err := commitment.DirectionValidator(commitment.Direction(input.Direction)); err != nil {
		return nil, NewValidationError("direction", fmt.Sprintf("invalid direction '%s'", input.Direction))
	}

	builder := s.client.Commitment.Create().
		SetID(uuid.New().String()).
		SetOwnerID(ownerID).
		SetStakeholder(strings.TrimSpace(input.Stakeholder)).
		SetDescription(strings.TrimSpace(input.Description)).
		SetDirection(commitment.Direction(input.Direction))
	if input.DueAt != nil {
		builder.SetDueAt(input.DueAt.UTC())
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create commitment: %w", err)
	}
	return created, nil
}

// List returns the owner's commitments, open first, newest first within each
// status.
func (s *CommitmentService) List(ctx context.Context, ownerID string, openOnly bool) ([]*ent.Commitment, error) {
	query := s.client.Commitment.Query().Where(commitment.OwnerID(ownerID))
	if openOnly {
		query = query.Where(commitment.StatusEQ(commitment.StatusOpen))
	}
	rows, err := query.
		Order(ent.Asc(commitment.FieldStatus), ent.Desc(commitment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list commitments: %w", err)
	}
	return rows, nil
}

// Satisfy marks one commitment satisfied, resolving any dependencies on it.
func (s *CommitmentService) Satisfy(ctx context.Context, ownerID, commitmentID string) (*ent.Commitment, error) {
	row, err := s.client.Commitment.Query().
		Where(commitment.ID(commitmentID), commitment.OwnerID(ownerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get commitment: %w", err)
	}
	updated, err := row.Update().SetStatus(commitment.StatusSatisfied).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to satisfy commitment: %w", err)
	}
	return updated, nil
}
