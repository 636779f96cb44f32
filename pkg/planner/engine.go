package planner

import (
	"sort"
	"strings"
	"time"

	"github.com/missionctl/missionctl/pkg/models"
	"github.com/missionctl/missionctl/pkg/priority"
)

// Exception reasons are deterministic strings so plans diff cleanly.
const (
	reasonBlockedFollowUp = "Blocked and follow-up is due"
	reasonDueSoon         = "Due within 24 hours"
)

// Directive multipliers by strength: match / non-match.
var directiveMultipliers = map[string][2]float64{
	models.StrengthNudge:  {1.2, 0.95},
	models.StrengthStrong: {1.6, 0.85},
	models.StrengthHard:   {2.0, 0.7},
}

// Build ranks the input tasks into a plan. Done tasks must already be
// filtered out by the loader; the engine drops them defensively anyway since
// a terminal task in a plan violates the ranking contract.
func Build(in Inputs) Result {
	window := in.NextWindowMinutes
	if window <= 0 {
		window = DefaultNextWindowMinutes
	}
	mode := in.Mode
	if mode == "" {
		mode = ModeToday
	}

	directive := activeDirective(in.Directive, in.Now)

	tasks := in.Tasks
	if len(tasks) > MaxTasks {
		tasks = tasks[:MaxTasks]
	}

	scoredTasks := make([]scored, 0, len(tasks))
	reasons := make(map[string]priority.Breakdown, len(tasks))

	for _, task := range tasks {
		if task.Status == priority.StatusDone {
			continue
		}

		matched := directiveMatches(directive, task)
		breakdown := priority.Score(
			priority.TaskSignals{
				BasePriority:        task.PriorityScore,
				DueAt:               task.DueAt,
				FollowUpAt:          task.FollowUpAt,
				Blocker:             task.Blocker,
				Status:              task.Status,
				UpdatedAt:           task.UpdatedAt,
				StakeholderMentions: task.StakeholderMentions,
			},
			priority.Context{
				Now:                      in.Now,
				HighPriorityStakeholders: in.HighPriorityStakeholders,
				FitBonus:                 fitBonus(task.EstimatedMinutes, window),
				ImplementationMultiplier: implementationMultiplier(in, task),
				DirectiveMultiplier:      directiveMultiplier(directive, matched),
			},
		)
		reasons[task.ID] = breakdown

		scoredTasks = append(scoredTasks, scored{
			task: task,
			ranked: RankedTask{
				TaskID:           task.ID,
				Title:            task.Title,
				FinalScore:       breakdown.FinalScore,
				SuggestedMinutes: minInt(task.EstimatedMinutes, window),
				Mode:             taskMode(task.EstimatedMinutes),
				DirectiveMatch:   matched,
				Breakdown:        breakdown,
			},
			matched: matched,
		})
	}

	sort.SliceStable(scoredTasks, func(i, j int) bool {
		a, b := scoredTasks[i], scoredTasks[j]
		if a.ranked.FinalScore != b.ranked.FinalScore {
			return a.ranked.FinalScore > b.ranked.FinalScore
		}
		if c := compareDue(a.task.DueAt, b.task.DueAt); c != 0 {
			return c < 0
		}
		return a.task.Title < b.task.Title
	})

	plan := Plan{
		PlanDate: in.PlanDate,
		Source:   PlanSource,
		Mode:     mode,
		Windows:  []Window{{Minutes: window, Label: "next"}},
	}
	if directive != nil {
		plan.DirectiveID = directive.ID
	}

	// nowNext: best task that fits the window, else the overall top scorer.
	nowNextIdx := -1
	for i, s := range scoredTasks {
		if s.task.EstimatedMinutes <= window {
			nowNextIdx = i
			break
		}
	}
	if nowNextIdx < 0 && len(scoredTasks) > 0 {
		nowNextIdx = 0
	}

	rank := 1
	for i, s := range scoredTasks {
		ranked := s.ranked
		ranked.Rank = rank

		if i == nowNextIdx {
			nn := ranked
			plan.NowNext = &nn
		} else if len(plan.Next3) < Next3Limit {
			plan.Next3 = append(plan.Next3, ranked)
		}
		if rank <= QueueLimit {
			plan.Queue = append(plan.Queue, ranked)
		}
		rank++
	}

	if directive != nil {
		plan.Exceptions = collectExceptions(scoredTasks, in.Now)
	}

	snapshot := InputsSnapshot{
		TaskCount:         len(scoredTasks),
		WeightsAvailable:  in.WeightsAvailable,
		NextWindowMinutes: window,
		GeneratedAt:       in.Now,
	}
	if directive != nil {
		snapshot.DirectiveID = directive.ID
		snapshot.DirectiveStrength = directive.Strength
	}

	return Result{Plan: plan, Snapshot: snapshot, Reasons: reasons}
}

type scored struct {
	task    Task
	ranked  RankedTask
	matched bool
}

// collectExceptions surfaces up to ExceptionsCap non-matching tasks that are
// either due within 24h or blocked with a follow-up due.
func collectExceptions(scoredTasks []scored, now time.Time) []Exception {
	var exceptions []Exception
	for _, s := range scoredTasks {
		if s.matched {
			continue
		}
		dueSoon := s.task.DueAt != nil && !s.task.DueAt.After(now.Add(24*time.Hour))
		followUpDue := s.ranked.Breakdown.FollowUpDue && s.task.Blocker
		if !dueSoon && !followUpDue {
			continue
		}
		reason := reasonDueSoon
		if followUpDue {
			reason = reasonBlockedFollowUp
		}
		exceptions = append(exceptions, Exception{
			TaskID:     s.task.ID,
			Title:      s.task.Title,
			Reason:     reason,
			FinalScore: s.ranked.FinalScore,
		})
		if len(exceptions) == ExceptionsCap {
			break
		}
	}
	return exceptions
}

// activeDirective gates a directive by its activity flag and time window.
func activeDirective(d *Directive, now time.Time) *Directive {
	if d == nil || !d.IsActive {
		return nil
	}
	if d.StartsAt != nil && now.Before(*d.StartsAt) {
		return nil
	}
	if d.EndsAt != nil && !now.Before(*d.EndsAt) {
		return nil
	}
	return d
}

// directiveMatches applies the scope matching rules. The query scope is
// reserved and never matches.
func directiveMatches(d *Directive, task Task) bool {
	if d == nil {
		return false
	}
	switch d.ScopeType {
	case models.ScopeApplication:
		return d.ScopeID != "" && d.ScopeID == task.ApplicationID
	case models.ScopeStakeholder:
		needle := strings.ToLower(strings.TrimSpace(d.ScopeValue))
		if needle == "" {
			return false
		}
		for _, mention := range task.StakeholderMentions {
			if strings.Contains(strings.ToLower(mention), needle) {
				return true
			}
		}
		return false
	case models.ScopeTaskType:
		return strings.EqualFold(task.Type, d.ScopeValue)
	default:
		return false
	}
}

func directiveMultiplier(d *Directive, matched bool) float64 {
	if d == nil {
		return 1
	}
	pair, ok := directiveMultipliers[d.Strength]
	if !ok {
		return 1
	}
	if matched {
		return pair[0]
	}
	return pair[1]
}

func implementationMultiplier(in Inputs, task Task) float64 {
	if !in.WeightsAvailable {
		return 1
	}
	weight := float64(priority.DefaultPriorityWeight)
	if task.ApplicationID != "" {
		if w, ok := in.Weights[task.ApplicationID]; ok {
			weight = w
		}
	}
	return priority.ImplementationMultiplier(weight)
}

func fitBonus(estimatedMinutes, window int) float64 {
	if estimatedMinutes <= window {
		return 5
	}
	return -10
}

// taskMode mirrors focus block classification: deep ≥45m, shallow ≥20m,
// else prep.
func taskMode(estimatedMinutes int) string {
	switch {
	case estimatedMinutes >= 45:
		return "deep"
	case estimatedMinutes >= 20:
		return "shallow"
	default:
		return "prep"
	}
}

// compareDue orders earlier due dates first with nil last.
func compareDue(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case a.Before(*b):
		return -1
	case b.Before(*a):
		return 1
	default:
		return 0
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
