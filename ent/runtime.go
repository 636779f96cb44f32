// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/missionctl/missionctl/ent/application"
	"github.com/missionctl/missionctl/ent/calendarevent"
	"github.com/missionctl/missionctl/ent/calendarsnapshot"
	"github.com/missionctl/missionctl/ent/checklistitem"
	"github.com/missionctl/missionctl/ent/commitment"
	"github.com/missionctl/missionctl/ent/focusdirective"
	"github.com/missionctl/missionctl/ent/inboxitem"
	"github.com/missionctl/missionctl/ent/ingestionevent"
	"github.com/missionctl/missionctl/ent/modelcatalogentry"
	"github.com/missionctl/missionctl/ent/modelpreference"
	"github.com/missionctl/missionctl/ent/plan"
	"github.com/missionctl/missionctl/ent/project"
	"github.com/missionctl/missionctl/ent/schema"
	"github.com/missionctl/missionctl/ent/statusupdate"
	"github.com/missionctl/missionctl/ent/task"
	"github.com/missionctl/missionctl/ent/taskdependency"
	"github.com/missionctl/missionctl/ent/usageevent"
	"github.com/missionctl/missionctl/ent/usersession"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	applicationFields := schema.Application{}.Fields()
	_ = applicationFields
	// applicationDescName is the schema descriptor for name field.
	applicationDescName := applicationFields[2].Descriptor()
	// application.NameValidator is a validator for the "name" field. It is called by the builders before save.
	application.NameValidator = applicationDescName.Validators[0].(func(string) error)
	// applicationDescPriorityWeight is the schema descriptor for priority_weight field.
	applicationDescPriorityWeight := applicationFields[5].Descriptor()
	// application.DefaultPriorityWeight holds the default value on creation for the priority_weight field.
	application.DefaultPriorityWeight = applicationDescPriorityWeight.Default.(int)
	// application.PriorityWeightValidator is a validator for the "priority_weight" field. It is called by the builders before save.
	application.PriorityWeightValidator = applicationDescPriorityWeight.Validators[0].(func(int) error)
	// applicationDescPortfolioRank is the schema descriptor for portfolio_rank field.
	applicationDescPortfolioRank := applicationFields[6].Descriptor()
	// application.PortfolioRankValidator is a validator for the "portfolio_rank" field. It is called by the builders before save.
	application.PortfolioRankValidator = applicationDescPortfolioRank.Validators[0].(func(int) error)
	// applicationDescCreatedAt is the schema descriptor for created_at field.
	applicationDescCreatedAt := applicationFields[12].Descriptor()
	// application.DefaultCreatedAt holds the default value on creation for the created_at field.
	application.DefaultCreatedAt = applicationDescCreatedAt.Default.(func() time.Time)
	// applicationDescUpdatedAt is the schema descriptor for updated_at field.
	applicationDescUpdatedAt := applicationFields[13].Descriptor()
	// application.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	application.DefaultUpdatedAt = applicationDescUpdatedAt.Default.(func() time.Time)
	// application.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	application.UpdateDefaultUpdatedAt = applicationDescUpdatedAt.UpdateDefault.(func() time.Time)
	calendareventFields := schema.CalendarEvent{}.Fields()
	_ = calendareventFields
	// calendareventDescExternalEventID is the schema descriptor for external_event_id field.
	calendareventDescExternalEventID := calendareventFields[3].Descriptor()
	// calendarevent.ExternalEventIDValidator is a validator for the "external_event_id" field. It is called by the builders before save.
	calendarevent.ExternalEventIDValidator = calendareventDescExternalEventID.Validators[0].(func(string) error)
	// calendareventDescIsAllDay is the schema descriptor for is_all_day field.
	calendareventDescIsAllDay := calendareventFields[8].Descriptor()
	// calendarevent.DefaultIsAllDay holds the default value on creation for the is_all_day field.
	calendarevent.DefaultIsAllDay = calendareventDescIsAllDay.Default.(bool)
	// calendareventDescMeetingContext is the schema descriptor for meeting_context field.
	calendareventDescMeetingContext := calendareventFields[10].Descriptor()
	// calendarevent.MeetingContextValidator is a validator for the "meeting_context" field. It is called by the builders before save.
	calendarevent.MeetingContextValidator = calendareventDescMeetingContext.Validators[0].(func(string) error)
	// calendareventDescCreatedAt is the schema descriptor for created_at field.
	calendareventDescCreatedAt := calendareventFields[12].Descriptor()
	// calendarevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	calendarevent.DefaultCreatedAt = calendareventDescCreatedAt.Default.(func() time.Time)
	// calendareventDescUpdatedAt is the schema descriptor for updated_at field.
	calendareventDescUpdatedAt := calendareventFields[13].Descriptor()
	// calendarevent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	calendarevent.DefaultUpdatedAt = calendareventDescUpdatedAt.Default.(func() time.Time)
	// calendarevent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	calendarevent.UpdateDefaultUpdatedAt = calendareventDescUpdatedAt.UpdateDefault.(func() time.Time)
	calendarsnapshotFields := schema.CalendarSnapshot{}.Fields()
	_ = calendarsnapshotFields
	// calendarsnapshotDescCreatedAt is the schema descriptor for created_at field.
	calendarsnapshotDescCreatedAt := calendarsnapshotFields[5].Descriptor()
	// calendarsnapshot.DefaultCreatedAt holds the default value on creation for the created_at field.
	calendarsnapshot.DefaultCreatedAt = calendarsnapshotDescCreatedAt.Default.(func() time.Time)
	checklistitemFields := schema.ChecklistItem{}.Fields()
	_ = checklistitemFields
	// checklistitemDescLabel is the schema descriptor for label field.
	checklistitemDescLabel := checklistitemFields[3].Descriptor()
	// checklistitem.LabelValidator is a validator for the "label" field. It is called by the builders before save.
	checklistitem.LabelValidator = checklistitemDescLabel.Validators[0].(func(string) error)
	// checklistitemDescSortOrder is the schema descriptor for sort_order field.
	checklistitemDescSortOrder := checklistitemFields[4].Descriptor()
	// checklistitem.DefaultSortOrder holds the default value on creation for the sort_order field.
	checklistitem.DefaultSortOrder = checklistitemDescSortOrder.Default.(int)
	// checklistitemDescDone is the schema descriptor for done field.
	checklistitemDescDone := checklistitemFields[5].Descriptor()
	// checklistitem.DefaultDone holds the default value on creation for the done field.
	checklistitem.DefaultDone = checklistitemDescDone.Default.(bool)
	// checklistitemDescCreatedAt is the schema descriptor for created_at field.
	checklistitemDescCreatedAt := checklistitemFields[6].Descriptor()
	// checklistitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	checklistitem.DefaultCreatedAt = checklistitemDescCreatedAt.Default.(func() time.Time)
	// checklistitemDescUpdatedAt is the schema descriptor for updated_at field.
	checklistitemDescUpdatedAt := checklistitemFields[7].Descriptor()
	// checklistitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	checklistitem.DefaultUpdatedAt = checklistitemDescUpdatedAt.Default.(func() time.Time)
	// checklistitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	checklistitem.UpdateDefaultUpdatedAt = checklistitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	commitmentFields := schema.Commitment{}.Fields()
	_ = commitmentFields
	// commitmentDescStakeholder is the schema descriptor for stakeholder field.
	commitmentDescStakeholder := commitmentFields[2].Descriptor()
	// commitment.StakeholderValidator is a validator for the "stakeholder" field. It is called by the builders before save.
	commitment.StakeholderValidator = commitmentDescStakeholder.Validators[0].(func(string) error)
	// commitmentDescDescription is the schema descriptor for description field.
	commitmentDescDescription := commitmentFields[3].Descriptor()
	// commitment.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	commitment.DescriptionValidator = commitmentDescDescription.Validators[0].(func(string) error)
	// commitmentDescCreatedAt is the schema descriptor for created_at field.
	commitmentDescCreatedAt := commitmentFields[7].Descriptor()
	// commitment.DefaultCreatedAt holds the default value on creation for the created_at field.
	commitment.DefaultCreatedAt = commitmentDescCreatedAt.Default.(func() time.Time)
	// commitmentDescUpdatedAt is the schema descriptor for updated_at field.
	commitmentDescUpdatedAt := commitmentFields[8].Descriptor()
	// commitment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	commitment.DefaultUpdatedAt = commitmentDescUpdatedAt.Default.(func() time.Time)
	// commitment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	commitment.UpdateDefaultUpdatedAt = commitmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	focusdirectiveFields := schema.FocusDirective{}.Fields()
	_ = focusdirectiveFields
	// focusdirectiveDescDirectiveText is the schema descriptor for directive_text field.
	focusdirectiveDescDirectiveText := focusdirectiveFields[2].Descriptor()
	// focusdirective.DirectiveTextValidator is a validator for the "directive_text" field. It is called by the builders before save.
	focusdirective.DirectiveTextValidator = focusdirectiveDescDirectiveText.Validators[0].(func(string) error)
	// focusdirectiveDescIsActive is the schema descriptor for is_active field.
	focusdirectiveDescIsActive := focusdirectiveFields[7].Descriptor()
	// focusdirective.DefaultIsActive holds the default value on creation for the is_active field.
	focusdirective.DefaultIsActive = focusdirectiveDescIsActive.Default.(bool)
	// focusdirectiveDescCreatedAt is the schema descriptor for created_at field.
	focusdirectiveDescCreatedAt := focusdirectiveFields[10].Descriptor()
	// focusdirective.DefaultCreatedAt holds the default value on creation for the created_at field.
	focusdirective.DefaultCreatedAt = focusdirectiveDescCreatedAt.Default.(func() time.Time)
	// focusdirectiveDescUpdatedAt is the schema descriptor for updated_at field.
	focusdirectiveDescUpdatedAt := focusdirectiveFields[11].Descriptor()
	// focusdirective.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	focusdirective.DefaultUpdatedAt = focusdirectiveDescUpdatedAt.Default.(func() time.Time)
	// focusdirective.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	focusdirective.UpdateDefaultUpdatedAt = focusdirectiveDescUpdatedAt.UpdateDefault.(func() time.Time)
	inboxitemFields := schema.InboxItem{}.Fields()
	_ = inboxitemFields
	// inboxitemDescDedupeKey is the schema descriptor for dedupe_key field.
	inboxitemDescDedupeKey := inboxitemFields[2].Descriptor()
	// inboxitem.DedupeKeyValidator is a validator for the "dedupe_key" field. It is called by the builders before save.
	inboxitem.DedupeKeyValidator = inboxitemDescDedupeKey.Validators[0].(func(string) error)
	// inboxitemDescCreatedAt is the schema descriptor for created_at field.
	inboxitemDescCreatedAt := inboxitemFields[14].Descriptor()
	// inboxitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	inboxitem.DefaultCreatedAt = inboxitemDescCreatedAt.Default.(func() time.Time)
	// inboxitemDescUpdatedAt is the schema descriptor for updated_at field.
	inboxitemDescUpdatedAt := inboxitemFields[15].Descriptor()
	// inboxitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	inboxitem.DefaultUpdatedAt = inboxitemDescUpdatedAt.Default.(func() time.Time)
	// inboxitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	inboxitem.UpdateDefaultUpdatedAt = inboxitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	ingestioneventFields := schema.IngestionEvent{}.Fields()
	_ = ingestioneventFields
	// ingestioneventDescCreatedAt is the schema descriptor for created_at field.
	ingestioneventDescCreatedAt := ingestioneventFields[5].Descriptor()
	// ingestionevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	ingestionevent.DefaultCreatedAt = ingestioneventDescCreatedAt.Default.(func() time.Time)
	modelcatalogentryFields := schema.ModelCatalogEntry{}.Fields()
	_ = modelcatalogentryFields
	// modelcatalogentryDescModelID is the schema descriptor for model_id field.
	modelcatalogentryDescModelID := modelcatalogentryFields[2].Descriptor()
	// modelcatalogentry.ModelIDValidator is a validator for the "model_id" field. It is called by the builders before save.
	modelcatalogentry.ModelIDValidator = modelcatalogentryDescModelID.Validators[0].(func(string) error)
	// modelcatalogentryDescDisplayName is the schema descriptor for display_name field.
	modelcatalogentryDescDisplayName := modelcatalogentryFields[3].Descriptor()
	// modelcatalogentry.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	modelcatalogentry.DisplayNameValidator = modelcatalogentryDescDisplayName.Validators[0].(func(string) error)
	// modelcatalogentryDescEnabled is the schema descriptor for enabled field.
	modelcatalogentryDescEnabled := modelcatalogentryFields[7].Descriptor()
	// modelcatalogentry.DefaultEnabled holds the default value on creation for the enabled field.
	modelcatalogentry.DefaultEnabled = modelcatalogentryDescEnabled.Default.(bool)
	// modelcatalogentryDescPricingIsPlaceholder is the schema descriptor for pricing_is_placeholder field.
	modelcatalogentryDescPricingIsPlaceholder := modelcatalogentryFields[8].Descriptor()
	// modelcatalogentry.DefaultPricingIsPlaceholder holds the default value on creation for the pricing_is_placeholder field.
	modelcatalogentry.DefaultPricingIsPlaceholder = modelcatalogentryDescPricingIsPlaceholder.Default.(bool)
	// modelcatalogentryDescSortOrder is the schema descriptor for sort_order field.
	modelcatalogentryDescSortOrder := modelcatalogentryFields[9].Descriptor()
	// modelcatalogentry.DefaultSortOrder holds the default value on creation for the sort_order field.
	modelcatalogentry.DefaultSortOrder = modelcatalogentryDescSortOrder.Default.(int)
	// modelcatalogentryDescCreatedAt is the schema descriptor for created_at field.
	modelcatalogentryDescCreatedAt := modelcatalogentryFields[10].Descriptor()
	// modelcatalogentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	modelcatalogentry.DefaultCreatedAt = modelcatalogentryDescCreatedAt.Default.(func() time.Time)
	// modelcatalogentryDescUpdatedAt is the schema descriptor for updated_at field.
	modelcatalogentryDescUpdatedAt := modelcatalogentryFields[11].Descriptor()
	// modelcatalogentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	modelcatalogentry.DefaultUpdatedAt = modelcatalogentryDescUpdatedAt.Default.(func() time.Time)
	// modelcatalogentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	modelcatalogentry.UpdateDefaultUpdatedAt = modelcatalogentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	modelpreferenceFields := schema.ModelPreference{}.Fields()
	_ = modelpreferenceFields
	// modelpreferenceDescCatalogID is the schema descriptor for catalog_id field.
	modelpreferenceDescCatalogID := modelpreferenceFields[3].Descriptor()
	// modelpreference.CatalogIDValidator is a validator for the "catalog_id" field. It is called by the builders before save.
	modelpreference.CatalogIDValidator = modelpreferenceDescCatalogID.Validators[0].(func(string) error)
	// modelpreferenceDescCreatedAt is the schema descriptor for created_at field.
	modelpreferenceDescCreatedAt := modelpreferenceFields[4].Descriptor()
	// modelpreference.DefaultCreatedAt holds the default value on creation for the created_at field.
	modelpreference.DefaultCreatedAt = modelpreferenceDescCreatedAt.Default.(func() time.Time)
	// modelpreferenceDescUpdatedAt is the schema descriptor for updated_at field.
	modelpreferenceDescUpdatedAt := modelpreferenceFields[5].Descriptor()
	// modelpreference.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	modelpreference.DefaultUpdatedAt = modelpreferenceDescUpdatedAt.Default.(func() time.Time)
	// modelpreference.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	modelpreference.UpdateDefaultUpdatedAt = modelpreferenceDescUpdatedAt.UpdateDefault.(func() time.Time)
	planFields := schema.Plan{}.Fields()
	_ = planFields
	// planDescSource is the schema descriptor for source field.
	planDescSource := planFields[3].Descriptor()
	// plan.DefaultSource holds the default value on creation for the source field.
	plan.DefaultSource = planDescSource.Default.(string)
	// planDescCreatedAt is the schema descriptor for created_at field.
	planDescCreatedAt := planFields[9].Descriptor()
	// plan.DefaultCreatedAt holds the default value on creation for the created_at field.
	plan.DefaultCreatedAt = planDescCreatedAt.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[3].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = projectDescName.Validators[0].(func(string) error)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[5].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[6].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	statusupdateFields := schema.StatusUpdate{}.Fields()
	_ = statusupdateFields
	// statusupdateDescSnippet is the schema descriptor for snippet field.
	statusupdateDescSnippet := statusupdateFields[3].Descriptor()
	// statusupdate.SnippetValidator is a validator for the "snippet" field. It is called by the builders before save.
	statusupdate.SnippetValidator = statusupdateDescSnippet.Validators[0].(func(string) error)
	// statusupdateDescCreatedAt is the schema descriptor for created_at field.
	statusupdateDescCreatedAt := statusupdateFields[4].Descriptor()
	// statusupdate.DefaultCreatedAt holds the default value on creation for the created_at field.
	statusupdate.DefaultCreatedAt = statusupdateDescCreatedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescTitle is the schema descriptor for title field.
	taskDescTitle := taskFields[2].Descriptor()
	// task.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	task.TitleValidator = taskDescTitle.Validators[0].(func(string) error)
	// taskDescPriorityScore is the schema descriptor for priority_score field.
	taskDescPriorityScore := taskFields[8].Descriptor()
	// task.DefaultPriorityScore holds the default value on creation for the priority_score field.
	task.DefaultPriorityScore = taskDescPriorityScore.Default.(float64)
	// task.PriorityScoreValidator is a validator for the "priority_score" field. It is called by the builders before save.
	task.PriorityScoreValidator = taskDescPriorityScore.Validators[0].(func(float64) error)
	// taskDescEstimatedMinutes is the schema descriptor for estimated_minutes field.
	taskDescEstimatedMinutes := taskFields[9].Descriptor()
	// task.DefaultEstimatedMinutes holds the default value on creation for the estimated_minutes field.
	task.DefaultEstimatedMinutes = taskDescEstimatedMinutes.Default.(int)
	// task.EstimatedMinutesValidator is a validator for the "estimated_minutes" field. It is called by the builders before save.
	task.EstimatedMinutesValidator = func() func(int) error {
		validators := taskDescEstimatedMinutes.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(estimated_minutes int) error {
			for _, fn := range fns {
				if err := fn(estimated_minutes); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// taskDescNeedsReview is the schema descriptor for needs_review field.
	taskDescNeedsReview := taskFields[12].Descriptor()
	// task.DefaultNeedsReview holds the default value on creation for the needs_review field.
	task.DefaultNeedsReview = taskDescNeedsReview.Default.(bool)
	// taskDescBlocker is the schema descriptor for blocker field.
	taskDescBlocker := taskFields[13].Descriptor()
	// task.DefaultBlocker holds the default value on creation for the blocker field.
	task.DefaultBlocker = taskDescBlocker.Default.(bool)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[21].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[22].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskdependencyFields := schema.TaskDependency{}.Fields()
	_ = taskdependencyFields
	// taskdependencyDescCreatedAt is the schema descriptor for created_at field.
	taskdependencyDescCreatedAt := taskdependencyFields[5].Descriptor()
	// taskdependency.DefaultCreatedAt holds the default value on creation for the created_at field.
	taskdependency.DefaultCreatedAt = taskdependencyDescCreatedAt.Default.(func() time.Time)
	usageeventFields := schema.UsageEvent{}.Fields()
	_ = usageeventFields
	// usageeventDescCreatedAt is the schema descriptor for created_at field.
	usageeventDescCreatedAt := usageeventFields[14].Descriptor()
	// usageevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	usageevent.DefaultCreatedAt = usageeventDescCreatedAt.Default.(func() time.Time)
	usersessionFields := schema.UserSession{}.Fields()
	_ = usersessionFields
	// usersessionDescCreatedAt is the schema descriptor for created_at field.
	usersessionDescCreatedAt := usersessionFields[4].Descriptor()
	// usersession.DefaultCreatedAt holds the default value on creation for the created_at field.
	usersession.DefaultCreatedAt = usersessionDescCreatedAt.Default.(func() time.Time)
}
