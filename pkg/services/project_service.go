package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/missionctl/missionctl/ent"
	"github.com/missionctl/missionctl/ent/application"
	"github.com/missionctl/missionctl/ent/project"
)

// ProjectService manages bounded efforts beneath applications.
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new ProjectService.
func NewProjectService(client *ent.Client) *ProjectService {
	if client == nil {
		panic("NewProjectService: client must not be nil")
	}
	return &ProjectService{client: client}
}

// Create persists a new project, optionally attached to an application.
func (s *ProjectService) Create(ctx context.Context, ownerID, applicationID, name, description string) (*ent.Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewValidationError("name", "name is required")
	}
	if applicationID != "" {
		exists, err := s.client.Application.Query().
			Where(application.ID(applicationID), application.OwnerID(ownerID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check application: %w", err)
		}
		if !exists {
			return nil, NewValidationError("application_id", fmt.Sprintf("unknown application '%s'", applicationID))
		}
	}

	builder := s.client.Project.Create().
		SetID(uuid.New().String()).
		SetOwnerID(ownerID).
		SetName(strings.TrimSpace(name))
	if applicationID != "" {
		builder.SetApplicationID(applicationID)
	}
	if description != "" {
		builder.SetDescription(description)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return created, nil
}

// List returns the owner's projects, optionally filtered by application.
func (s *ProjectService) List(ctx context.Context, ownerID, applicationID string) ([]*ent.Project, error) {
	query := s.client.Project.Query().Where(project.OwnerID(ownerID))
	if applicationID != "" {
		query = query.Where(project.ApplicationID(applicationID))
	}
	rows, err := query.Order(ent.Asc(project.FieldName)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return rows, nil
}
