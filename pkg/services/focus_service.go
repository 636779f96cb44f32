package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/missionctl/missionctl/ent"
	"github.com/missionctl/missionctl/ent/application"
	"github.com/missionctl/missionctl/ent/focusdirective"
)

// ActivateDirectiveInput describes a new focus directive. Activating it
// deactivates any currently active directive.
type ActivateDirectiveInput struct {
	DirectiveText string
	ScopeType     string
	ScopeID       string
	ScopeValue    string
	Strength      string
	StartsAt      *time.Time
	EndsAt        *time.Time
}

// UpdateDirectiveInput carries the PATCH whitelist for directives. Nil
// pointers leave the field untouched.
type UpdateDirectiveInput struct {
	DirectiveText *string
	Strength      *string
	IsActive      *bool
	StartsAt      *time.Time
	EndsAt        *time.Time
}

// FocusService manages focus directives and their single-active invariant.
type FocusService struct {
	client *ent.Client
}

// NewFocusService creates a new FocusService.
func NewFocusService(client *ent.Client) *FocusService {
	if client == nil {
		panic("NewFocusService: client must not be nil")
	}
	return &FocusService{client: client}
}

// Activate validates and activates a directive, retiring any active one in
// the same transaction.
func (s *FocusService) Activate(ctx context.Context, ownerID string, input ActivateDirectiveInput) (*ent.FocusDirective, error) {
	if strings.TrimSpace(input.DirectiveText) == "" {
		return nil, NewValidationError("directive_text", "directive_text is required")
	}
	if err := focusdirective.ScopeTypeValidator(focusdirective.ScopeType(input.ScopeType)); err != nil {
		return nil, NewValidationError("scope_type", fmt.Sprintf("invalid scope_type '%s'", input.ScopeType))
	}
	strength := input.Strength
	if strength == "" {
		strength = focusdirective.DefaultStrength.String()
	}
	if err := focusdirective.StrengthValidator(focusdirective.Strength(strength)); err != nil {
		return nil, NewValidationError("strength", fmt.Sprintf("invalid strength '%s'", strength))
	}
	if input.StartsAt != nil && input.EndsAt != nil && !input.EndsAt.After(*input.StartsAt) {
		return nil, NewValidationError("ends_at", "ends_at must be after starts_at")
	}

	scopeValue := strings.TrimSpace(input.ScopeValue)
	switch input.ScopeType {
	case focusdirective.ScopeTypeApplication.String():
		if input.ScopeID == "" {
			return nil, NewValidationError("scope_id", "scope_id is required for application scope")
		}
		exists, err := s.client.Application.Query().
			Where(application.ID(input.ScopeID), application.OwnerID(ownerID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check application: %w", err)
		}
		if !exists {
			return nil, NewValidationError("scope_id", fmt.Sprintf("unknown application '%s'", input.ScopeID))
		}
	default:
		if scopeValue == "" {
			return nil, NewValidationError("scope_value",
				fmt.Sprintf("scope_value is required for %s scope", input.ScopeType))
		}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	if _, err := tx.FocusDirective.Update().
		Where(focusdirective.OwnerID(ownerID), focusdirective.IsActive(true)).
		SetIsActive(false).
		SetEndsAt(now).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to retire active directives: %w", err)
	}

	builder := tx.FocusDirective.Create().
		SetID(uuid.New().String()).
		SetOwnerID(ownerID).
		SetDirectiveText(strings.TrimSpace(input.DirectiveText)).
		SetScopeType(focusdirective.ScopeType(input.ScopeType)).
		SetStrength(focusdirective.Strength(strength)).
		SetIsActive(true)
	if input.ScopeID != "" {
		builder.SetScopeID(input.ScopeID)
	}
	if scopeValue != "" {
		builder.SetScopeValue(scopeValue)
	}
	if input.StartsAt != nil {
		builder.SetStartsAt(input.StartsAt.UTC())
	}
	if input.EndsAt != nil {
		builder.SetEndsAt(input.EndsAt.UTC())
	}

	directive, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create directive: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit directive activation: %w", err)
	}
	return directive, nil
}

// Update patches a directive. Re-activating one retires every other active
// directive; deactivating sets ends_at to now when it is unset.
func (s *FocusService) Update(ctx context.Context, ownerID, directiveID string, input UpdateDirectiveInput) (*ent.FocusDirective, error) {
	directive, err := s.client.FocusDirective.Query().
		Where(focusdirective.ID(directiveID), focusdirective.OwnerID(ownerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load directive: %w", err)
	}

	if input.DirectiveText != nil && strings.TrimSpace(*input.DirectiveText) == "" {
		return nil, NewValidationError("directive_text", "directive_text must not be blank")
	}
	if input.Strength != nil {
		if err := focusdirective.StrengthValidator(focusdirective.Strength(*input.Strength)); err != nil {
			return nil, NewValidationError("strength", fmt.Sprintf("invalid strength '%s'", *input.Strength))
		}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	if input.IsActive != nil && *input.IsActive && !directive.IsActive {
		if _, err := tx.FocusDirective.Update().
			Where(focusdirective.OwnerID(ownerID), focusdirective.IsActive(true)).
			SetIsActive(false).
			SetEndsAt(now).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to retire active directives: %w", err)
		}
	}

	builder := tx.FocusDirective.UpdateOneID(directiveID)
	if input.DirectiveText != nil {
		builder.SetDirectiveText(strings.TrimSpace(*input.DirectiveText))
	}
	if input.Strength != nil {
		builder.SetStrength(focusdirective.Strength(*input.Strength))
	}
	if input.StartsAt != nil {
		builder.SetStartsAt(input.StartsAt.UTC())
	}
	if input.EndsAt != nil {
		builder.SetEndsAt(input.EndsAt.UTC())
	}
	if input.IsActive != nil {
		builder.SetIsActive(*input.IsActive)
		if !*input.IsActive && directive.EndsAt == nil && input.EndsAt == nil {
			builder.SetEndsAt(now)
		}
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update directive: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit directive update: %w", err)
	}
	return updated, nil
}

// Active returns the directive currently in effect, nil when none. A
// directive with a time window only counts while now is inside it.
func (s *FocusService) Active(ctx context.Context, ownerID string, now time.Time) (*ent.FocusDirective, error) {
	directives, err := s.client.FocusDirective.Query().
		Where(focusdirective.OwnerID(ownerID), focusdirective.IsActive(true)).
		Order(ent.Desc(focusdirective.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load directives: %w", err)
	}
	for _, d := range directives {
		if d.StartsAt != nil && now.Before(*d.StartsAt) {
			continue
		}
		if d.EndsAt != nil && !now.Before(*d.EndsAt) {
			continue
		}
		return d, nil
	}
	return nil, nil
}

// Clear deactivates every active directive and reports how many it retired.
func (s *FocusService) Clear(ctx context.Context, ownerID string) (int, error) {
	n, err := s.client.FocusDirective.Update().
		Where(focusdirective.OwnerID(ownerID), focusdirective.IsActive(true)).
		SetIsActive(false).
		SetEndsAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear directives: %w", err)
	}
	return n, nil
}

// List returns the owner's directives, newest first.
func (s *FocusService) List(ctx context.Context, ownerID string, limit int) ([]*ent.FocusDirective, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	directives, err := s.client.FocusDirective.Query().
		Where(focusdirective.OwnerID(ownerID)).
		Order(ent.Desc(focusdirective.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list directives: %w", err)
	}
	return directives, nil
}
