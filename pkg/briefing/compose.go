package briefing

import (
	"math"
	"sort"
	"time"

	"github.com/missionctl/missionctl/pkg/calendar"
	"github.com/missionctl/missionctl/pkg/planner"
	"github.com/missionctl/missionctl/pkg/priority"
)

// ComposeInput carries everything one briefing needs, already loaded by the
// services layer. TomorrowEvents may be nil for non-eod modes.
type ComposeInput struct {
	RequestedDate string
	Mode          string
	Now           time.Time
	Location      *time.Location

	TodayEvents []calendar.Event
	TodayStats  calendar.DayStats
	TodayFocus  []calendar.FocusBlock

	TomorrowEvents []calendar.Event

	Tasks []planner.Task

	// WorkdayMinutes is the focus window length, the base of the capacity
	// model.
	WorkdayMinutes int
}

// ResolveMode maps auto to a concrete mode by the local hour: morning before
// 12, midday before 15, eod after.
func ResolveMode(mode string, now time.Time, loc *time.Location) string {
	if mode != ModeAuto && mode != "" {
		return mode
	}
	switch hour := now.In(loc).Hour(); {
	case hour < 12:
		return ModeMorning
	case hour < 15:
		return ModeMidday
	default:
		return ModeEOD
	}
}

// Compose builds the briefing payload. The narrative is layered on
// separately so cache hits skip composition of nothing but text.
func Compose(in ComposeInput) Briefing {
	resolved := ResolveMode(in.Mode, in.Now, in.Location)

	b := Briefing{
		RequestedDate:    in.RequestedDate,
		Mode:             resolved,
		AutoDetectedMode: ResolveMode(ModeAuto, in.Now, in.Location),
		CurrentTimeET:    in.Now.In(in.Location).Format("15:04"),
		Today:            composeToday(in),
	}
	if resolved == ModeEOD {
		tomorrow := composeTomorrow(in)
		b.Tomorrow = &tomorrow
	}
	return b
}

func composeToday(in ComposeInput) Today {
	today := Today{
		Events:      summarizeEvents(in.TodayEvents),
		Stats:       in.TodayStats,
		FocusBlocks: in.TodayFocus,
	}

	dayStart, dayEnd := localDayBounds(in.RequestedDate, in.Location)

	for _, task := range in.Tasks {
		summary := summarize(task)
		switch task.Status {
		case priority.StatusDone:
			if !task.UpdatedAt.Before(dayStart) && task.UpdatedAt.Before(dayEnd) {
				today.Completed = append(today.Completed, summary)
			}
		case priority.StatusPlanned, priority.StatusInProgress:
			today.Planned = append(today.Planned, summary)
			today.Remaining = append(today.Remaining, summary)
		default:
			today.Remaining = append(today.Remaining, summary)
		}
	}
	sortByPriority(today.Planned)
	sortByPriority(today.Remaining)

	today.Progress = computeProgress(today.Completed, today.Remaining)
	today.Capacity = computeCapacity(in.WorkdayMinutes, in.TodayStats.BusyMinutes, today.Planned)
	return today
}

func computeProgress(completed, remaining []TaskSummary) Progress {
	p := Progress{
		CompletedCount: len(completed),
		TotalCount:     len(completed) + len(remaining),
	}
	for _, t := range completed {
		p.CompletedMinutes += t.EstimatedMinutes
	}
	for _, t := range remaining {
		p.RemainingMinutes += t.EstimatedMinutes
	}
	if total := p.CompletedMinutes + p.RemainingMinutes; total > 0 {
		p.PercentComplete = int(math.Round(100 * float64(p.CompletedMinutes) / float64(total)))
	}
	return p
}

func computeCapacity(workdayMinutes, meetingMinutes int, planned []TaskSummary) Capacity {
	available := workdayMinutes - lunchMinutes - overheadMinutes - meetingMinutes - perTaskBuffer*len(planned)
	if available < 0 {
		available = 0
	}
	required := 0
	for _, t := range planned {
		required += t.EstimatedMinutes
	}

	rag := "Red"
	switch {
	case float64(required) <= ragGreenRatio*float64(available):
		rag = "Green"
	case float64(required) <= ragYellowRatio*float64(available):
		rag = "Yellow"
	}
	return Capacity{AvailableMinutes: available, RequiredMinutes: required, RAG: rag}
}

func composeTomorrow(in ComposeInput) Tomorrow {
	tomorrow := Tomorrow{
		Events:     summarizeEvents(in.TomorrowEvents),
		PrepTasks:  findPrepTasks(in.Tasks, in.TomorrowEvents, in.RequestedDate, in.Location),
		RolledOver: findRolledOver(in.Tasks, in.RequestedDate, in.Location),
	}
	return tomorrow
}

// findRolledOver selects open tasks that will carry into tomorrow: due by
// today's end, or high-priority ones already planned or started.
func findRolledOver(tasks []planner.Task, date string, loc *time.Location) []TaskSummary {
	_, dayEnd := localDayBounds(date, loc)

	var rolled []TaskSummary
	for _, task := range tasks {
		if task.Status == priority.StatusDone {
			continue
		}
		dueToday := task.DueAt != nil && task.DueAt.Before(dayEnd)
		highPriority := task.PriorityScore >= 70 &&
			(task.Status == priority.StatusPlanned || task.Status == priority.StatusInProgress)
		if dueToday || highPriority {
			rolled = append(rolled, summarize(task))
		}
	}
	sortByPriority(rolled)
	return rolled
}

func summarize(task planner.Task) TaskSummary {
	return TaskSummary{
		ID:               task.ID,
		Title:            task.Title,
		Status:           task.Status,
		Type:             task.Type,
		EstimatedMinutes: task.EstimatedMinutes,
		PriorityScore:    task.PriorityScore,
		DueAt:            task.DueAt,
	}
}

func summarizeEvents(events []calendar.Event) []EventSummary {
	out := make([]EventSummary, 0, len(events))
	for _, ev := range events {
		out = append(out, EventSummary{Title: ev.Title, StartAt: ev.StartAt, EndAt: ev.EndAt})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartAt.Before(out[j].StartAt) })
	return out
}

func sortByPriority(tasks []TaskSummary) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].PriorityScore > tasks[j].PriorityScore
	})
}

// localDayBounds returns [start, end) of a YYYY-MM-DD date in loc. A bad
// date string falls back to a zero range, which keeps composition total.
func localDayBounds(date string, loc *time.Location) (time.Time, time.Time) {
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, time.Time{}
	}
	return day, day.AddDate(0, 0, 1)
}
