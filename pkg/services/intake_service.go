package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/missionctl/missionctl/ent"
	"github.com/missionctl/missionctl/ent/inboxitem"
	"github.com/missionctl/missionctl/ent/ingestionevent"
	"github.com/missionctl/missionctl/ent/task"
	"github.com/missionctl/missionctl/pkg/config"
	"github.com/missionctl/missionctl/pkg/llm"
	"github.com/missionctl/missionctl/pkg/models"
	"github.com/missionctl/missionctl/pkg/priority"
	"github.com/missionctl/missionctl/pkg/sanitize"
)

// implementationMatchThreshold is the minimum extractor confidence before an
// implementation guess is allowed to link the task to an application.
const implementationMatchThreshold = 0.7

// reviewConfidenceThreshold flags low-confidence extractions for review.
const reviewConfidenceThreshold = 0.7

// extractionSystemPrompt instructs the model to emit the extraction JSON
// shape and nothing else.
const extractionSystemPrompt = "You extract actionable work items from emails. " +
	"Respond with a single JSON object and no other text. Fields: title (string, required), " +
	"description, task_type (one of task|ticket|meeting_prep|follow_up|admin|build), " +
	"estimated_minutes (1-480), due_guess_iso (ISO 8601), priority_score (0-100), " +
	"stakeholder_mentions (array of names), implementation_guess (workstream name), " +
	"implementation_confidence (0-1), confidence (0-1, required), needs_review (bool), " +
	"suggested_checklist (array of short strings, max 15). " +
	"Omit fields you cannot infer. Never invent due dates or stakeholders."

// IntakeResult is the outcome of one intake post. ExtractionFailed means the
// inbox item was stored but no task could be produced from it; the item
// carries the processing error.
type IntakeResult struct {
	InboxItem        *ent.InboxItem
	Task             *ent.Task
	Duplicate        bool
	ExtractionFailed bool
}

// IntakeService runs the email intake pipeline: dedupe, extraction, and task
// creation, with an append-only ingestion event trail.
type IntakeService struct {
	client     *ent.Client
	dispatcher *llm.Dispatcher
	llmCfg     *config.LLMConfig
}

// NewIntakeService creates a new IntakeService.
func NewIntakeService(client *ent.Client, dispatcher *llm.Dispatcher, llmCfg *config.LLMConfig) *IntakeService {
	if client == nil {
		panic("NewIntakeService: client must not be nil")
	}
	if dispatcher == nil {
		panic("NewIntakeService: dispatcher must not be nil")
	}
	if llmCfg == nil {
		panic("NewIntakeService: llmCfg must not be nil")
	}
	return &IntakeService{client: client, dispatcher: dispatcher, llmCfg: llmCfg}
}

// ProcessEmail ingests one email. Duplicates short-circuit to the existing
// inbox item. Extraction failure marks the item errored but still returns it;
// the caller decides how loudly to surface that.
func (s *IntakeService) ProcessEmail(ctx context.Context, ownerID string, email models.IntakeEmail) (*IntakeResult, error) {
	if strings.TrimSpace(email.Subject) == "" {
		return nil, NewValidationError("subject", "subject is required")
	}
	if strings.TrimSpace(email.FromEmail) == "" {
		return nil, NewValidationError("from_email", "from_email is required")
	}
	if email.ReceivedAt.IsZero() {
		return nil, NewValidationError("received_at", "received_at is required")
	}

	dedupeKey := email.DedupeKey(ownerID)
	existing, err := s.client.InboxItem.Query().
		Where(inboxitem.OwnerID(ownerID), inboxitem.DedupeKey(dedupeKey)).
		Only(ctx)
	switch {
	case err == nil:
		return s.duplicateResult(ctx, ownerID, existing), nil
	case !ent.IsNotFound(err):
		return nil, fmt.Errorf("failed to check dedupe key: %w", err)
	}

	item, err := s.createInboxItem(ctx, ownerID, dedupeKey, email)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a race with a concurrent identical post.
			winner, lookupErr := s.client.InboxItem.Query().
				Where(inboxitem.OwnerID(ownerID), inboxitem.DedupeKey(dedupeKey)).
				Only(ctx)
			if lookupErr == nil {
				return s.duplicateResult(ctx, ownerID, winner), nil
			}
		}
		return nil, fmt.Errorf("failed to create inbox item: %w", err)
	}
	s.logEvent(ctx, ownerID, item.ID, ingestionevent.EventTypeReceived, "")

	extraction, meta, extractErr := s.extract(ctx, ownerID, email, dedupeKey)
	if extractErr != nil {
		item = s.markError(ctx, item, extractErr)
		return &IntakeResult{InboxItem: item, ExtractionFailed: true}, nil
	}

	item, createdTask, err := s.persistExtraction(ctx, ownerID, item, extraction, meta)
	if err != nil {
		item = s.markError(ctx, item, err)
		return &IntakeResult{InboxItem: item, ExtractionFailed: true}, nil
	}
	return &IntakeResult{InboxItem: item, Task: createdTask}, nil
}

// duplicateResult records the dedupe hit and returns the surviving item. Both
// the pre-insert check and the lost-race path go through here so the event
// trail is the same either way.
func (s *IntakeService) duplicateResult(ctx context.Context, ownerID string, existing *ent.InboxItem) *IntakeResult {
	s.logEvent(ctx, ownerID, existing.ID, ingestionevent.EventTypeDeduped,
		fmt.Sprintf("duplicate of inbox item %s", existing.ID))
	return &IntakeResult{InboxItem: existing, Duplicate: true}
}

// Inbox lists the owner's inbox items, newest first, optionally filtered by
// triage state.
func (s *IntakeService) Inbox(ctx context.Context, ownerID, triageState string, limit int) ([]*ent.InboxItem, error) {
	query := s.client.InboxItem.Query().Where(inboxitem.OwnerID(ownerID))
	if triageState != "" {
		if err := inboxitem.TriageStateValidator(inboxitem.TriageState(triageState)); err != nil {
			return nil, NewValidationError("triage_state", fmt.Sprintf("invalid triage_state '%s'", triageState))
		}
		query = query.Where(inboxitem.TriageStateEQ(inboxitem.TriageState(triageState)))
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	items, err := query.
		Order(ent.Desc(inboxitem.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inbox items: %w", err)
	}
	return items, nil
}

// Events returns an inbox item's ingestion trail, oldest first.
func (s *IntakeService) Events(ctx context.Context, ownerID, inboxItemID string) ([]*ent.IngestionEvent, error) {
	events, err := s.client.IngestionEvent.Query().
		Where(ingestionevent.OwnerID(ownerID), ingestionevent.InboxItemID(inboxItemID)).
		Order(ent.Asc(ingestionevent.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingestion events: %w", err)
	}
	return events, nil
}

func (s *IntakeService) createInboxItem(ctx context.Context, ownerID, dedupeKey string, email models.IntakeEmail) (*ent.InboxItem, error) {
	builder := s.client.InboxItem.Create().
		SetID(uuid.New().String()).
		SetOwnerID(ownerID).
		SetDedupeKey(dedupeKey).
		SetSubject(sanitize.Line(email.Subject, 500)).
		SetFromEmail(email.FromEmail).
		SetReceivedAt(email.ReceivedAt.UTC())
	if email.FromName != "" {
		builder.SetFromName(email.FromName)
	}
	if email.MessageID != "" {
		builder.SetMessageID(email.MessageID)
	}
	if email.SourceURL != "" {
		builder.SetSourceURL(email.SourceURL)
	}
	return builder.Save(ctx)
}

// extract runs the LLM extraction. The body snippet flows into the prompt
// only; it is never persisted.
func (s *IntakeService) extract(ctx context.Context, ownerID string, email models.IntakeEmail, fingerprint string) (*llm.ExtractionResult, *llm.Meta, error) {
	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Subject: %s\n", email.Subject)
	fmt.Fprintf(&prompt, "From: %s", email.FromEmail)
	if email.FromName != "" {
		fmt.Fprintf(&prompt, " (%s)", email.FromName)
	}
	fmt.Fprintf(&prompt, "\nReceived: %s\n", email.ReceivedAt.UTC().Format(time.RFC3339))
	if workstreams := s.workstreamContext(ctx, ownerID); workstreams != "" {
		fmt.Fprintf(&prompt, "\nKnown workstreams:\n%s", workstreams)
	}
	if body := sanitize.Sanitize(email.BodySnippet, sanitize.DefaultMaxChars); body != "" {
		fmt.Fprintf(&prompt, "\n%s\n", body)
	}

	result, err := s.dispatcher.GenerateText(ctx, ownerID, llm.TextRequest{
		Feature:            config.FeatureIntakeExtraction,
		SystemPrompt:       extractionSystemPrompt,
		UserPrompt:         prompt.String(),
		Temperature:        0,
		MaxTokens:          1200,
		TimeoutMs:          s.llmCfg.ExtractionTimeoutMs,
		RequestFingerprint: fingerprint,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("extraction dispatch failed: %w", err)
	}
	if result == nil {
		return nil, nil, fmt.Errorf("no extraction model available")
	}

	extraction, err := llm.ParseExtraction(result.Text)
	if err != nil {
		return nil, nil, fmt.Errorf("extraction output rejected: %w", err)
	}
	return extraction, result.Meta, nil
}

// persistExtraction stores the extraction on the inbox item and creates the
// task plus its checklist in one transaction.
func (s *IntakeService) persistExtraction(ctx context.Context, ownerID string, item *ent.InboxItem, extraction *llm.ExtractionResult, meta *llm.Meta) (*ent.InboxItem, *ent.Task, error) {
	extractionJSON, err := toJSONMap(extraction)
	if err != nil {
		return item, nil, fmt.Errorf("failed to encode extraction: %w", err)
	}

	applicationID, err := s.resolveApplication(ctx, ownerID, extraction)
	if err != nil {
		return item, nil, err
	}

	now := time.Now().UTC()
	basePriority := extraction.PriorityScore
	if basePriority == 0 {
		basePriority = 50
	}
	finalPriority := priority.Clip(
		basePriority+priority.IntakeBoosts(extraction.StakeholderMentions, extraction.DueGuessISO, extraction.Title, now),
		0, 100)

	taskType := extraction.TaskType
	if taskType == "" || task.TaskTypeValidator(task.TaskType(taskType)) != nil {
		taskType = task.DefaultTaskType.String()
	}
	needsReview := extraction.NeedsReview || extraction.Confidence < reviewConfidenceThreshold

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return item, nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	builder := tx.Task.Create().
		SetID(uuid.New().String()).
		SetOwnerID(ownerID).
		SetTitle(extraction.Title).
		SetTaskType(task.TaskType(taskType)).
		SetPriorityScore(finalPriority).
		SetNeedsReview(needsReview).
		SetSourceType(task.SourceTypeEmail).
		SetInboxItemID(item.ID)
	if extraction.Description != "" {
		builder.SetDescription(extraction.Description)
	}
	if applicationID != "" {
		builder.SetApplicationID(applicationID)
	}
	if extraction.EstimatedMinutes > 0 {
		builder.SetEstimatedMinutes(clampEstimate(extraction.EstimatedMinutes)).
			SetEstimateSource(task.EstimateSourceLlm)
	}
	if due := parseDueGuess(extraction.DueGuessISO); due != nil {
		builder.SetDueAt(*due)
	}
	if len(extraction.StakeholderMentions) > 0 {
		builder.SetStakeholderMentions(extraction.StakeholderMentions)
	}
	if item.SourceURL != nil {
		builder.SetSourceURL(*item.SourceURL)
	}

	createdTask, err := builder.Save(ctx)
	if err != nil {
		return item, nil, fmt.Errorf("failed to create task: %w", err)
	}

	for i, label := range extraction.SuggestedChecklist {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if _, err := tx.ChecklistItem.Create().
			SetID(uuid.New().String()).
			SetOwnerID(ownerID).
			SetTaskID(createdTask.ID).
			SetLabel(label).
			SetSortOrder(i).
			Save(ctx); err != nil {
			return item, nil, fmt.Errorf("failed to create checklist item: %w", err)
		}
	}

	itemUpdate := tx.InboxItem.UpdateOneID(item.ID).
		SetTriageState(inboxitem.TriageStateProcessed).
		SetExtractionJSON(extractionJSON).
		SetExtractionConfidence(extraction.Confidence).
		ClearProcessingError()
	if meta != nil {
		itemUpdate.SetExtractionModel(meta.Provider + "/" + meta.ModelID)
	}
	updatedItem, err := itemUpdate.Save(ctx)
	if err != nil {
		return item, nil, fmt.Errorf("failed to update inbox item: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return item, nil, fmt.Errorf("failed to commit intake: %w", err)
	}

	s.logEvent(ctx, ownerID, item.ID, ingestionevent.EventTypeExtracted,
		fmt.Sprintf("confidence %.2f", extraction.Confidence))
	s.logEvent(ctx, ownerID, item.ID, ingestionevent.EventTypeTaskCreated,
		fmt.Sprintf("task %s", createdTask.ID))
	return updatedItem, createdTask, nil
}

// workstreamContext renders the owner's application names and keywords, one
// line per application in portfolio order, so implementation_guess can name a
// real workstream. A load failure just drops the section; extraction still
// runs without it.
func (s *IntakeService) workstreamContext(ctx context.Context, ownerID string) string {
	apps, err := NewApplicationService(s.client).List(ctx, ownerID)
	if err != nil {
		slog.Warn("Failed to load workstreams for extraction prompt", "owner", ownerID, "error", err)
		return ""
	}
	var b strings.Builder
	for _, app := range apps {
		fmt.Fprintf(&b, "- %s", app.Name)
		if len(app.Keywords) > 0 {
			fmt.Fprintf(&b, " (keywords: %s)", strings.Join(app.Keywords, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// resolveApplication maps an implementation guess to an application when the
// extractor is confident enough. Matching is a case-insensitive substring
// check against names and keywords, in portfolio order.
func (s *IntakeService) resolveApplication(ctx context.Context, ownerID string, extraction *llm.ExtractionResult) (string, error) {
	guess := strings.ToLower(strings.TrimSpace(extraction.ImplementationGuess))
	if guess == "" || extraction.ImplementationConfidence < implementationMatchThreshold {
		return "", nil
	}

	appSvc := NewApplicationService(s.client)
	apps, err := appSvc.List(ctx, ownerID)
	if err != nil {
		return "", err
	}
	for _, app := range apps {
		name := strings.ToLower(app.Name)
		if strings.Contains(guess, name) || strings.Contains(name, guess) {
			return app.ID, nil
		}
		for _, keyword := range app.Keywords {
			if keyword != "" && strings.Contains(guess, strings.ToLower(keyword)) {
				return app.ID, nil
			}
		}
	}
	return "", nil
}

// markError flags the inbox item and logs the failure. The pipeline never
// loses the item itself.
func (s *IntakeService) markError(ctx context.Context, item *ent.InboxItem, cause error) *ent.InboxItem {
	s.logEvent(ctx, item.OwnerID, item.ID, ingestionevent.EventTypeError, cause.Error())
	updated, err := item.Update().
		SetTriageState(inboxitem.TriageStateError).
		SetProcessingError(cause.Error()).
		Save(ctx)
	if err != nil {
		slog.Error("Failed to mark inbox item errored", "item", item.ID, "error", err)
		return item
	}
	return updated
}

func (s *IntakeService) logEvent(ctx context.Context, ownerID, inboxItemID string, eventType ingestionevent.EventType, detail string) {
	builder := s.client.IngestionEvent.Create().
		SetID(uuid.New().String()).
		SetOwnerID(ownerID).
		SetEventType(eventType)
	if inboxItemID != "" {
		builder.SetInboxItemID(inboxItemID)
	}
	if detail != "" {
		builder.SetDetail(detail)
	}
	if _, err := builder.Save(ctx); err != nil {
		slog.Error("Failed to record ingestion event", "type", eventType, "error", err)
	}
}

// parseDueGuess accepts RFC 3339 or a bare date; bare dates mean end of that
// day UTC. Unparseable guesses are dropped.
func parseDueGuess(guess string) *time.Time {
	guess = strings.TrimSpace(guess)
	if guess == "" {
		return nil
	}
	if due, err := time.Parse(time.RFC3339, guess); err == nil {
		utc := due.UTC()
		return &utc
	}
	if due, err := time.Parse("2006-01-02", guess); err == nil {
		eod := due.Add(24*time.Hour - time.Second)
		return &eod
	}
	return nil
}

func clampEstimate(minutes int) int {
	if minutes < MinEstimatedMinutes {
		return MinEstimatedMinutes
	}
	if minutes > MaxEstimatedMinutes {
		return MaxEstimatedMinutes
	}
	return minutes
}
