package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/missionctl/missionctl/ent"
	"github.com/missionctl/missionctl/ent/application"
	"github.com/missionctl/missionctl/ent/statusupdate"
	"github.com/missionctl/missionctl/ent/task"
)

// maxSnippetBlockers bounds how many blocker titles a copy-update names.
const maxSnippetBlockers = 3

// CreateApplicationInput is the domain-level data for creating an application.
type CreateApplicationInput struct {
	Name          string
	Phase         string
	RAG           string
	Stakeholders  []string
	Keywords      []string
	StatusSummary string
	NextMilestone string
	TargetDate    *time.Time
}

// UpdateApplicationInput carries the PATCH whitelist for applications.
type UpdateApplicationInput struct {
	Name           *string
	Phase          *string
	RAG            *string
	PriorityWeight *int
	Stakeholders   []string
	Keywords       []string
	StatusSummary  *string
	NextMilestone  *string
	TargetDate     *time.Time
	ClearTarget    bool
}

// ApplicationService manages the application portfolio: CRUD, ranking, and
// copy-updates.
type ApplicationService struct {
	client *ent.Client
}

// NewApplicationService creates a new ApplicationService.
func NewApplicationService(client *ent.Client) *ApplicationService {
	if client == nil {
		panic("NewApplicationService: client must not be nil")
	}
	return &ApplicationService{client: client}
}

// Create persists a new application.
func (s *ApplicationService) Create(ctx context.Context, ownerID string, input CreateApplicationInput) (*ent.Application, error) {
	if input.Name == "" {
		return nil, NewValidationError("name", "name is required")
	}
	phase := input.Phase
	if phase == "" {
		phase = application.DefaultPhase.String()
	}
	if err := application.PhaseValidator(application.Phase(phase)); err != nil {
		return nil, NewValidationError("phase", fmt.Sprintf("invalid phase '%s'", phase))
	}
	rag := input.RAG
	if rag == "" {
		rag = application.DefaultRag.String()
	}
	if err := application.RagValidator(application.Rag(rag)); err != nil {
		return nil, NewValidationError("rag", fmt.Sprintf("invalid rag '%s'", rag))
	}

	builder := s.client.Application.Create().
		SetID(uuid.New().String()).
		SetOwnerID(ownerID).
		SetName(input.Name).
		SetPhase(application.Phase(phase)).
		SetRag(application.Rag(rag))
	if len(input.Stakeholders) > 0 {
		builder.SetStakeholders(input.Stakeholders)
	}
	if len(input.Keywords) > 0 {
		builder.SetKeywords(input.Keywords)
	}
	if input.StatusSummary != "" {
		builder.SetStatusSummary(input.StatusSummary)
	}
	if input.NextMilestone != "" {
		builder.SetNextMilestone(input.NextMilestone)
	}
	if input.TargetDate != nil {
		builder.SetTargetDate(input.TargetDate.UTC())
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return created, nil
}

// Get returns one application, owner-scoped.
func (s *ApplicationService) Get(ctx context.Context, ownerID, applicationID string) (*ent.Application, error) {
	app, err := s.client.Application.Query().
		Where(application.ID(applicationID), application.OwnerID(ownerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return app, nil
}

// List returns the portfolio ordered by rank; unranked applications sort
// after ranked ones, by name.
func (s *ApplicationService) List(ctx context.Context, ownerID string) ([]*ent.Application, error) {
	apps, err := s.client.Application.Query().
		Where(application.OwnerID(ownerID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	sort.SliceStable(apps, func(i, j int) bool {
		ri, rj := apps[i].PortfolioRank, apps[j].PortfolioRank
		switch {
		case ri != nil && rj != nil && *ri != *rj:
			return *ri < *rj
		case ri != nil && rj == nil:
			return true
		case ri == nil && rj != nil:
			return false
		}
		return apps[i].Name < apps[j].Name
	})
	return apps, nil
}

// Update applies the PATCH whitelist to one application.
func (s *ApplicationService) Update(ctx context.Context, ownerID, applicationID string, input UpdateApplicationInput) (*ent.Application, error) {
	existing, err := s.Get(ctx, ownerID, applicationID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name == "" {
		return nil, NewValidationError("name", "name cannot be empty")
	}
	if input.Phase != nil {
		if err := application.PhaseValidator(application.Phase(*input.Phase)); err != nil {
			return nil, NewValidationError("phase", fmt.Sprintf("invalid phase '%s'", *input.Phase))
		}
	}
	if input.RAG != nil {
		if err := application.RagValidator(application.Rag(*input.RAG)); err != nil {
			return nil, NewValidationError("rag", fmt.Sprintf("invalid rag '%s'", *input.RAG))
		}
	}
	if input.PriorityWeight != nil && (*input.PriorityWeight < 0 || *input.PriorityWeight > 10) {
		return nil, NewValidationError("priority_weight", "priority_weight must be between 0 and 10")
	}

	updater := existing.Update()
	if input.Name != nil {
		updater.SetName(*input.Name)
	}
	if input.Phase != nil {
		updater.SetPhase(application.Phase(*input.Phase))
	}
	if input.RAG != nil {
		updater.SetRag(application.Rag(*input.RAG))
	}
	if input.PriorityWeight != nil {
		updater.SetPriorityWeight(*input.PriorityWeight)
	}
	if input.Stakeholders != nil {
		updater.SetStakeholders(input.Stakeholders)
	}
	if input.Keywords != nil {
		updater.SetKeywords(input.Keywords)
	}
	if input.StatusSummary != nil {
		if *input.StatusSummary == "" {
			updater.ClearStatusSummary()
		} else {
			updater.SetStatusSummary(*input.StatusSummary)
		}
	}
	if input.NextMilestone != nil {
		if *input.NextMilestone == "" {
			updater.ClearNextMilestone()
		} else {
			updater.SetNextMilestone(*input.NextMilestone)
		}
	}
	if input.ClearTarget {
		updater.ClearTargetDate()
	} else if input.TargetDate != nil {
		updater.SetTargetDate(input.TargetDate.UTC())
	}

	updated, err := updater.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}
	return updated, nil
}

// Reorder atomically replaces the portfolio order. orderedIDs must be a
// permutation of the owner's applications. Ranks are assigned 1..n and
// priority weights are spread 10..0 across the order so the planner's
// multiplier tracks the ranking.
func (s *ApplicationService) Reorder(ctx context.Context, ownerID string, orderedIDs []string) ([]*ent.Application, error) {
	apps, err := s.client.Application.Query().
		Where(application.OwnerID(ownerID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load applications: %w", err)
	}

	known := make(map[string]bool, len(apps))
	for _, app := range apps {
		known[app.ID] = true
	}
	if len(orderedIDs) != len(apps) {
		return nil, NewValidationError("order",
			fmt.Sprintf("order must list all %d applications, got %d", len(apps), len(orderedIDs)))
	}
	seen := make(map[string]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if !known[id] {
			return nil, NewValidationError("order", fmt.Sprintf("unknown application '%s'", id))
		}
		if seen[id] {
			return nil, NewValidationError("order", fmt.Sprintf("duplicate application '%s'", id))
		}
		seen[id] = true
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Two phases: clear every rank first so the partial unique index never
	// sees a transient duplicate while ranks shift.
	if _, err := tx.Application.Update().
		Where(application.OwnerID(ownerID)).
		ClearPortfolioRank().
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear portfolio ranks: %w", err)
	}

	n := len(orderedIDs)
	for i, id := range orderedIDs {
		if _, err := tx.Application.UpdateOneID(id).
			SetPortfolioRank(i + 1).
			SetPriorityWeight(spreadWeight(i, n)).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to rank application %s: %w", id, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit reorder: %w", err)
	}

	return s.List(ctx, ownerID)
}

// spreadWeight maps rank position i of n onto the 10..0 weight scale. A
// single-application portfolio keeps the top weight.
func spreadWeight(i, n int) int {
	if n <= 1 {
		return 10
	}
	w := int(math.Round(10 - 10*float64(i)/float64(n-1)))
	if w < 0 {
		w = 0
	}
	if w > 10 {
		w = 10
	}
	return w
}

// CopyUpdate builds the Teams-ready status snippet for one application and,
// unless saveToLog is false, appends it to the status update log.
func (s *ApplicationService) CopyUpdate(ctx context.Context, ownerID, applicationID string, saveToLog bool) (string, error) {
	app, err := s.Get(ctx, ownerID, applicationID)
	if err != nil {
		return "", err
	}

	blockers, err := s.client.Task.Query().
		Where(
			task.OwnerID(ownerID),
			task.ApplicationID(applicationID),
			task.Blocker(true),
			task.StatusNEQ(task.StatusDone),
		).
		Order(ent.Desc(task.FieldPriorityScore)).
		All(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load blockers: %w", err)
	}

	snippet := buildSnippet(app, blockers)

	if saveToLog {
		if _, err := s.client.StatusUpdate.Create().
			SetID(uuid.New().String()).
			SetOwnerID(ownerID).
			SetApplicationID(applicationID).
			SetSnippet(snippet).
			Save(ctx); err != nil {
			return "", fmt.Errorf("failed to log status update: %w", err)
		}
	}
	return snippet, nil
}

// StatusUpdates returns an application's copy-update history, newest first.
func (s *ApplicationService) StatusUpdates(ctx context.Context, ownerID, applicationID string, limit int) ([]*ent.StatusUpdate, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	updates, err := s.client.StatusUpdate.Query().
		Where(statusupdate.OwnerID(ownerID), statusupdate.ApplicationID(applicationID)).
		Order(ent.Desc(statusupdate.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list status updates: %w", err)
	}
	return updates, nil
}

func buildSnippet(app *ent.Application, blockers []*ent.Task) string {
	summary := "Status update pending."
	if app.StatusSummary != nil && strings.TrimSpace(*app.StatusSummary) != "" {
		summary = strings.TrimSpace(*app.StatusSummary)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s — %s (%s). %s", app.Name, humanizePhase(app.Phase.String()),
		strings.ToUpper(app.Rag.String()), summary)

	if app.NextMilestone != nil && strings.TrimSpace(*app.NextMilestone) != "" {
		fmt.Fprintf(&b, " Next: %s", strings.TrimSpace(*app.NextMilestone))
		if app.TargetDate != nil {
			fmt.Fprintf(&b, " (%s)", app.TargetDate.Format("2006-01-02"))
		}
		b.WriteString(".")
	}

	b.WriteString(" Blocker(s): ")
	if len(blockers) == 0 {
		b.WriteString("None")
	} else {
		titles := make([]string, 0, maxSnippetBlockers)
		for i, blocker := range blockers {
			if i >= maxSnippetBlockers {
				break
			}
			titles = append(titles, blocker.Title)
		}
		b.WriteString(strings.Join(titles, "; "))
		if len(blockers) > maxSnippetBlockers {
			b.WriteString("...")
		}
	}
	b.WriteString(".")
	return b.String()
}

// humanizePhase turns an enum value like go_live into "Go Live".
func humanizePhase(phase string) string {
	parts := strings.Split(phase, "_")
	for i, part := range parts {
		if part != "" {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}
