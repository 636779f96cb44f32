package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/missionctl/missionctl/ent"
	"github.com/missionctl/missionctl/ent/application"
	entplan "github.com/missionctl/missionctl/ent/plan"
	"github.com/missionctl/missionctl/ent/task"
	"github.com/missionctl/missionctl/pkg/calendar"
	"github.com/missionctl/missionctl/pkg/config"
	"github.com/missionctl/missionctl/pkg/database"
	"github.com/missionctl/missionctl/pkg/planner"
)

// PlannerService loads ranking inputs, runs the engine, and persists plans.
type PlannerService struct {
	client    *ent.Client
	focus     *FocusService
	windowing *calendar.Windowing
	cfg       *config.PlannerConfig
}

// NewPlannerService creates a new PlannerService.
func NewPlannerService(client *ent.Client, focus *FocusService, windowing *calendar.Windowing, cfg *config.PlannerConfig) *PlannerService {
	if client == nil {
		panic("NewPlannerService: client must not be nil")
	}
	if focus == nil {
		panic("NewPlannerService: focus must not be nil")
	}
	if windowing == nil {
		panic("NewPlannerService: windowing must not be nil")
	}
	return &PlannerService{client: client, focus: focus, windowing: windowing, cfg: cfg}
}

// BuildPlan ranks the owner's open tasks for planDate and appends the result
// to the plan log. An empty planDate means today in the workday timezone.
// Persistence is best-effort: a failed insert degrades Saved instead of
// failing the request.
func (s *PlannerService) BuildPlan(ctx context.Context, ownerID, planDate, mode string) (*planner.Result, bool, error) {
	if mode == "" {
		mode = planner.ModeToday
	}
	if mode != planner.ModeToday && mode != planner.ModeNow {
		return nil, false, NewValidationError("mode", fmt.Sprintf("invalid mode '%s'", mode))
	}
	if planDate == "" {
		planDate = s.windowing.Today(time.Now().UTC())
	}
	if _, err := time.Parse("2006-01-02", planDate); err != nil {
		return nil, false, NewValidationError("plan_date", fmt.Sprintf("invalid plan_date '%s'", planDate))
	}

	now := time.Now().UTC()

	tasks, err := s.client.Task.Query().
		Where(task.OwnerID(ownerID), task.StatusNEQ(task.StatusDone)).
		Order(ent.Desc(task.FieldPriorityScore)).
		Limit(planner.MaxTasks).
		All(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load tasks: %w", err)
	}

	weights, weightsAvailable, err := s.loadWeights(ctx, ownerID)
	if err != nil {
		return nil, false, err
	}

	directive, err := s.focus.Active(ctx, ownerID, now)
	if err != nil {
		return nil, false, err
	}

	inputs := planner.Inputs{
		PlanDate:          planDate,
		Mode:              mode,
		Now:               now,
		Tasks:             plannerTasks(tasks),
		Weights:           weights,
		WeightsAvailable:  weightsAvailable,
		Directive:         plannerDirective(directive),
		NextWindowMinutes: planner.DefaultNextWindowMinutes,
	}
	if s.cfg != nil {
		inputs.HighPriorityStakeholders = s.cfg.HighPriorityStakeholders
		if s.cfg.NextWindowMinutes > 0 {
			inputs.NextWindowMinutes = s.cfg.NextWindowMinutes
		}
	}

	result := planner.Build(inputs)
	saved := s.savePlan(ctx, ownerID, result)
	return &result, saved, nil
}

// Latest returns the newest stored plan for a date. An empty date means today
// in the workday timezone.
func (s *PlannerService) Latest(ctx context.Context, ownerID, planDate string) (*ent.Plan, error) {
	if planDate == "" {
		planDate = s.windowing.Today(time.Now().UTC())
	}
	p, err := s.client.Plan.Query().
		Where(entplan.OwnerID(ownerID), entplan.PlanDate(planDate)).
		Order(ent.Desc(entplan.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	return p, nil
}

// savePlan appends the plan row. Missing tables or columns degrade to an
// unsaved plan so planning still works while migrations lag.
func (s *PlannerService) savePlan(ctx context.Context, ownerID string, result planner.Result) bool {
	planJSON, err := toJSONMap(result.Plan)
	if err != nil {
		slog.Error("Failed to encode plan", "error", err)
		return false
	}
	snapshotJSON, err := toJSONMap(result.Snapshot)
	if err != nil {
		slog.Error("Failed to encode plan snapshot", "error", err)
		return false
	}
	reasonsJSON, err := toJSONMap(result.Reasons)
	if err != nil {
		slog.Error("Failed to encode plan reasons", "error", err)
		return false
	}

	_, err = s.client.Plan.Create().
		SetID(uuid.New().String()).
		SetOwnerID(ownerID).
		SetPlanDate(result.Plan.PlanDate).
		SetSource(result.Plan.Source).
		SetInputsSnapshot(snapshotJSON).
		SetPlanJSON(planJSON).
		SetReasonsJSON(reasonsJSON).
		Save(ctx)
	if err != nil {
		if database.IsMissingRelation(err) {
			slog.Warn("Plan persistence skipped, schema behind migrations", "owner", ownerID)
		} else {
			slog.Error("Failed to save plan", "owner", ownerID, "error", err)
		}
		return false
	}
	return true
}

// loadWeights maps application id to priority weight. A missing column means
// the deployment predates the weight table; ranking then runs neutral.
func (s *PlannerService) loadWeights(ctx context.Context, ownerID string) (map[string]float64, bool, error) {
	apps, err := s.client.Application.Query().
		Where(application.OwnerID(ownerID)).
		All(ctx)
	if err != nil {
		if database.IsMissingRelation(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to load application weights: %w", err)
	}
	weights := make(map[string]float64, len(apps))
	for _, app := range apps {
		weights[app.ID] = float64(app.PriorityWeight)
	}
	return weights, true, nil
}

func plannerTasks(rows []*ent.Task) []planner.Task {
	out := make([]planner.Task, 0, len(rows))
	for _, row := range rows {
		t := planner.Task{
			ID:                  row.ID,
			Title:               row.Title,
			Status:              row.Status.String(),
			Type:                row.TaskType.String(),
			PriorityScore:       row.PriorityScore,
			EstimatedMinutes:    row.EstimatedMinutes,
			DueAt:               row.DueAt,
			FollowUpAt:          row.FollowUpAt,
			Blocker:             row.Blocker,
			StakeholderMentions: row.StakeholderMentions,
			UpdatedAt:           row.UpdatedAt,
		}
		if row.ApplicationID != nil {
			t.ApplicationID = *row.ApplicationID
		}
		if row.WaitingOn != nil {
			t.WaitingOn = *row.WaitingOn
		}
		out = append(out, t)
	}
	return out
}

func plannerDirective(row *ent.FocusDirective) *planner.Directive {
	if row == nil {
		return nil
	}
	d := &planner.Directive{
		ID:        row.ID,
		ScopeType: row.ScopeType.String(),
		Strength:  row.Strength.String(),
		IsActive:  row.IsActive,
		StartsAt:  row.StartsAt,
		EndsAt:    row.EndsAt,
	}
	if row.ScopeID != nil {
		d.ScopeID = *row.ScopeID
	}
	if row.ScopeValue != nil {
		d.ScopeValue = *row.ScopeValue
	}
	return d
}

// toJSONMap round-trips a value through JSON into the map shape ent's JSON
// columns store.
func toJSONMap(v any) (map[string]interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}
