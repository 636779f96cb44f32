// Package briefing composes the morning/midday/eod digests: today's
// calendar picture and task progress, tomorrow's prep work, and the short
// LLM narrative with its process-local cache.
package briefing

import (
	"time"

	"github.com/missionctl/missionctl/pkg/calendar"
)

// Briefing modes.
const (
	ModeMorning = "morning"
	ModeMidday  = "midday"
	ModeEOD     = "eod"
	ModeAuto    = "auto"
)

// NarrativeSystemPrompt is the fixed system prompt for the briefing
// narrative.
const NarrativeSystemPrompt = "You are a concise executive assistant. " +
	"Write exactly 2-3 sentences. Be direct and specific, mentioning concrete " +
	"task names, meeting titles, and times. Do not use bullet points. Do not " +
	"use motivational language. Only use details present in the provided context."

// Capacity model constants, in minutes.
const (
	lunchMinutes     = 30
	overheadMinutes  = 30
	perTaskBuffer    = 5
	largePrepMinutes = 60
)

// Capacity RAG thresholds: required ≤ 0.8×available is Green, ≤ 1.1× is
// Yellow, above that Red.
const (
	ragGreenRatio  = 0.8
	ragYellowRatio = 1.1
)

// TaskSummary is the task shape embedded in briefing payloads.
type TaskSummary struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Status           string     `json:"status"`
	Type             string     `json:"type"`
	EstimatedMinutes int        `json:"estimatedMinutes"`
	PriorityScore    float64    `json:"priorityScore"`
	DueAt            *time.Time `json:"dueAt,omitempty"`
}

// EventSummary is the calendar event shape embedded in briefing payloads.
// Raw bodies never appear here; previews are already sanitized.
type EventSummary struct {
	Title   string    `json:"title"`
	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`
}

// Progress is the day's completion arithmetic.
type Progress struct {
	CompletedCount   int `json:"completedCount"`
	TotalCount       int `json:"totalCount"`
	CompletedMinutes int `json:"completedMinutes"`
	RemainingMinutes int `json:"remainingMinutes"`
	PercentComplete  int `json:"percentComplete"`
}

// Capacity compares required work against what the workday leaves after
// meetings and overhead.
type Capacity struct {
	AvailableMinutes int    `json:"available_minutes"`
	RequiredMinutes  int    `json:"required_minutes"`
	RAG              string `json:"rag"`
}

// Today is the current day's aggregation, present in every mode.
type Today struct {
	Events      []EventSummary        `json:"events"`
	Stats       calendar.DayStats     `json:"stats"`
	FocusBlocks []calendar.FocusBlock `json:"focusBlocks"`
	Planned     []TaskSummary         `json:"planned"`
	Completed   []TaskSummary         `json:"completed"`
	Remaining   []TaskSummary         `json:"remaining"`
	Progress    Progress              `json:"progress"`
	Capacity    Capacity              `json:"capacity"`
}

// PrepTask is a task flagged as preparation for tomorrow.
type PrepTask struct {
	Task   TaskSummary `json:"task"`
	Reason string      `json:"reason"`
}

// Tomorrow is the end-of-day look-ahead, present only in eod mode.
type Tomorrow struct {
	Events     []EventSummary `json:"events"`
	PrepTasks  []PrepTask     `json:"prepTasks"`
	RolledOver []TaskSummary  `json:"rolledOver"`
}

// Briefing is the full composed payload.
type Briefing struct {
	RequestedDate    string    `json:"requestedDate"`
	Mode             string    `json:"mode"`
	AutoDetectedMode string    `json:"autoDetectedMode"`
	CurrentTimeET    string    `json:"currentTimeET"`
	Today            Today     `json:"today"`
	Tomorrow         *Tomorrow `json:"tomorrow,omitempty"`
}
