// Code generated by ent, DO NOT EDIT.

package task

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/missionctl/missionctl/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldOwnerID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDescription, v))
}

// ApplicationID applies equality check predicate on the "application_id" field. It's identical to ApplicationIDEQ.
func ApplicationID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldApplicationID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldProjectID, v))
}

// PriorityScore applies equality check predicate on the "priority_score" field. It's identical to PriorityScoreEQ.
func PriorityScore(v float64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPriorityScore, v))
}

// EstimatedMinutes applies equality check predicate on the "estimated_minutes" field. It's identical to EstimatedMinutesEQ.
func EstimatedMinutes(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldEstimatedMinutes, v))
}

// DueAt applies equality check predicate on the "due_at" field. It's identical to DueAtEQ.
func DueAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDueAt, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldNeedsReview, v))
}

// Blocker applies equality check predicate on the "blocker" field. It's identical to BlockerEQ.
func Blocker(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldBlocker, v))
}

// WaitingOn applies equality check predicate on the "waiting_on" field. It's identical to WaitingOnEQ.
func WaitingOn(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldWaitingOn, v))
}

// FollowUpAt applies equality check predicate on the "follow_up_at" field. It's identical to FollowUpAtEQ.
func FollowUpAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldFollowUpAt, v))
}

// SourceURL applies equality check predicate on the "source_url" field. It's identical to SourceURLEQ.
func SourceURL(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldSourceURL, v))
}

// InboxItemID applies equality check predicate on the "inbox_item_id" field. It's identical to InboxItemIDEQ.
func InboxItemID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldInboxItemID, v))
}

// PinnedExcerpt applies equality check predicate on the "pinned_excerpt" field. It's identical to PinnedExcerptEQ.
func PinnedExcerpt(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPinnedExcerpt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldOwnerID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldDescription, v))
}

// ApplicationIDEQ applies the EQ predicate on the "application_id" field.
func ApplicationIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldApplicationID, v))
}

// ApplicationIDNEQ applies the NEQ predicate on the "application_id" field.
func ApplicationIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldApplicationID, v))
}

// ApplicationIDIn applies the In predicate on the "application_id" field.
func ApplicationIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldApplicationID, vs...))
}

// ApplicationIDNotIn applies the NotIn predicate on the "application_id" field.
func ApplicationIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldApplicationID, vs...))
}

// ApplicationIDGT applies the GT predicate on the "application_id" field.
func ApplicationIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldApplicationID, v))
}

// ApplicationIDGTE applies the GTE predicate on the "application_id" field.
func ApplicationIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldApplicationID, v))
}

// ApplicationIDLT applies the LT predicate on the "application_id" field.
func ApplicationIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldApplicationID, v))
}

// ApplicationIDLTE applies the LTE predicate on the "application_id" field.
func ApplicationIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldApplicationID, v))
}

// ApplicationIDContains applies the Contains predicate on the "application_id" field.
func ApplicationIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldApplicationID, v))
}

// ApplicationIDHasPrefix applies the HasPrefix predicate on the "application_id" field.
func ApplicationIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldApplicationID, v))
}

// ApplicationIDHasSuffix applies the HasSuffix predicate on the "application_id" field.
func ApplicationIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldApplicationID, v))
}

// ApplicationIDIsNil applies the IsNil predicate on the "application_id" field.
func ApplicationIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldApplicationID))
}

// ApplicationIDNotNil applies the NotNil predicate on the "application_id" field.
func ApplicationIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldApplicationID))
}

// ApplicationIDEqualFold applies the EqualFold predicate on the "application_id" field.
func ApplicationIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldApplicationID, v))
}

// ApplicationIDContainsFold applies the ContainsFold predicate on the "application_id" field.
func ApplicationIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldApplicationID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDIsNil applies the IsNil predicate on the "project_id" field.
func ProjectIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldProjectID))
}

// ProjectIDNotNil applies the NotNil predicate on the "project_id" field.
func ProjectIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldProjectID))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldProjectID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStatus, vs...))
}

// TaskTypeEQ applies the EQ predicate on the "task_type" field.
func TaskTypeEQ(v TaskType) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTaskType, v))
}

// TaskTypeNEQ applies the NEQ predicate on the "task_type" field.
func TaskTypeNEQ(v TaskType) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTaskType, v))
}

// TaskTypeIn applies the In predicate on the "task_type" field.
func TaskTypeIn(vs ...TaskType) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldTaskType, vs...))
}

// TaskTypeNotIn applies the NotIn predicate on the "task_type" field.
func TaskTypeNotIn(vs ...TaskType) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldTaskType, vs...))
}

// PriorityScoreEQ applies the EQ predicate on the "priority_score" field.
func PriorityScoreEQ(v float64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPriorityScore, v))
}

// PriorityScoreNEQ applies the NEQ predicate on the "priority_score" field.
func PriorityScoreNEQ(v float64) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPriorityScore, v))
}

// PriorityScoreIn applies the In predicate on the "priority_score" field.
func PriorityScoreIn(vs ...float64) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPriorityScore, vs...))
}

// PriorityScoreNotIn applies the NotIn predicate on the "priority_score" field.
func PriorityScoreNotIn(vs ...float64) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPriorityScore, vs...))
}

// PriorityScoreGT applies the GT predicate on the "priority_score" field.
func PriorityScoreGT(v float64) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldPriorityScore, v))
}

// PriorityScoreGTE applies the GTE predicate on the "priority_score" field.
func PriorityScoreGTE(v float64) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldPriorityScore, v))
}

// PriorityScoreLT applies the LT predicate on the "priority_score" field.
func PriorityScoreLT(v float64) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldPriorityScore, v))
}

// PriorityScoreLTE applies the LTE predicate on the "priority_score" field.
func PriorityScoreLTE(v float64) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldPriorityScore, v))
}

// EstimatedMinutesEQ applies the EQ predicate on the "estimated_minutes" field.
func EstimatedMinutesEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldEstimatedMinutes, v))
}

// EstimatedMinutesNEQ applies the NEQ predicate on the "estimated_minutes" field.
func EstimatedMinutesNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldEstimatedMinutes, v))
}

// EstimatedMinutesIn applies the In predicate on the "estimated_minutes" field.
func EstimatedMinutesIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldEstimatedMinutes, vs...))
}

// EstimatedMinutesNotIn applies the NotIn predicate on the "estimated_minutes" field.
func EstimatedMinutesNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldEstimatedMinutes, vs...))
}

// EstimatedMinutesGT applies the GT predicate on the "estimated_minutes" field.
func EstimatedMinutesGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldEstimatedMinutes, v))
}

// EstimatedMinutesGTE applies the GTE predicate on the "estimated_minutes" field.
func EstimatedMinutesGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldEstimatedMinutes, v))
}

// EstimatedMinutesLT applies the LT predicate on the "estimated_minutes" field.
func EstimatedMinutesLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldEstimatedMinutes, v))
}

// EstimatedMinutesLTE applies the LTE predicate on the "estimated_minutes" field.
func EstimatedMinutesLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldEstimatedMinutes, v))
}

// EstimateSourceEQ applies the EQ predicate on the "estimate_source" field.
func EstimateSourceEQ(v EstimateSource) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldEstimateSource, v))
}

// EstimateSourceNEQ applies the NEQ predicate on the "estimate_source" field.
func EstimateSourceNEQ(v EstimateSource) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldEstimateSource, v))
}

// EstimateSourceIn applies the In predicate on the "estimate_source" field.
func EstimateSourceIn(vs ...EstimateSource) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldEstimateSource, vs...))
}

// EstimateSourceNotIn applies the NotIn predicate on the "estimate_source" field.
func EstimateSourceNotIn(vs ...EstimateSource) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldEstimateSource, vs...))
}

// DueAtEQ applies the EQ predicate on the "due_at" field.
func DueAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDueAt, v))
}

// DueAtNEQ applies the NEQ predicate on the "due_at" field.
func DueAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldDueAt, v))
}

// DueAtIn applies the In predicate on the "due_at" field.
func DueAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldDueAt, vs...))
}

// DueAtNotIn applies the NotIn predicate on the "due_at" field.
func DueAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldDueAt, vs...))
}

// DueAtGT applies the GT predicate on the "due_at" field.
func DueAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldDueAt, v))
}

// DueAtGTE applies the GTE predicate on the "due_at" field.
func DueAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldDueAt, v))
}

// DueAtLT applies the LT predicate on the "due_at" field.
func DueAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldDueAt, v))
}

// DueAtLTE applies the LTE predicate on the "due_at" field.
func DueAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldDueAt, v))
}

// DueAtIsNil applies the IsNil predicate on the "due_at" field.
func DueAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldDueAt))
}

// DueAtNotNil applies the NotNil predicate on the "due_at" field.
func DueAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldDueAt))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldNeedsReview, v))
}

// BlockerEQ applies the EQ predicate on the "blocker" field.
func BlockerEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldBlocker, v))
}

// BlockerNEQ applies the NEQ predicate on the "blocker" field.
func BlockerNEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldBlocker, v))
}

// WaitingOnEQ applies the EQ predicate on the "waiting_on" field.
func WaitingOnEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldWaitingOn, v))
}

// WaitingOnNEQ applies the NEQ predicate on the "waiting_on" field.
func WaitingOnNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldWaitingOn, v))
}

// WaitingOnIn applies the In predicate on the "waiting_on" field.
func WaitingOnIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldWaitingOn, vs...))
}

// WaitingOnNotIn applies the NotIn predicate on the "waiting_on" field.
func WaitingOnNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldWaitingOn, vs...))
}

// WaitingOnGT applies the GT predicate on the "waiting_on" field.
func WaitingOnGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldWaitingOn, v))
}

// WaitingOnGTE applies the GTE predicate on the "waiting_on" field.
func WaitingOnGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldWaitingOn, v))
}

// WaitingOnLT applies the LT predicate on the "waiting_on" field.
func WaitingOnLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldWaitingOn, v))
}

// WaitingOnLTE applies the LTE predicate on the "waiting_on" field.
func WaitingOnLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldWaitingOn, v))
}

// WaitingOnContains applies the Contains predicate on the "waiting_on" field.
func WaitingOnContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldWaitingOn, v))
}

// WaitingOnHasPrefix applies the HasPrefix predicate on the "waiting_on" field.
func WaitingOnHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldWaitingOn, v))
}

// WaitingOnHasSuffix applies the HasSuffix predicate on the "waiting_on" field.
func WaitingOnHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldWaitingOn, v))
}

// WaitingOnIsNil applies the IsNil predicate on the "waiting_on" field.
func WaitingOnIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldWaitingOn))
}

// WaitingOnNotNil applies the NotNil predicate on the "waiting_on" field.
func WaitingOnNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldWaitingOn))
}

// WaitingOnEqualFold applies the EqualFold predicate on the "waiting_on" field.
func WaitingOnEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldWaitingOn, v))
}

// WaitingOnContainsFold applies the ContainsFold predicate on the "waiting_on" field.
func WaitingOnContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldWaitingOn, v))
}

// FollowUpAtEQ applies the EQ predicate on the "follow_up_at" field.
func FollowUpAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldFollowUpAt, v))
}

// FollowUpAtNEQ applies the NEQ predicate on the "follow_up_at" field.
func FollowUpAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldFollowUpAt, v))
}

// FollowUpAtIn applies the In predicate on the "follow_up_at" field.
func FollowUpAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldFollowUpAt, vs...))
}

// FollowUpAtNotIn applies the NotIn predicate on the "follow_up_at" field.
func FollowUpAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldFollowUpAt, vs...))
}

// FollowUpAtGT applies the GT predicate on the "follow_up_at" field.
func FollowUpAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldFollowUpAt, v))
}

// FollowUpAtGTE applies the GTE predicate on the "follow_up_at" field.
func FollowUpAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldFollowUpAt, v))
}

// FollowUpAtLT applies the LT predicate on the "follow_up_at" field.
func FollowUpAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldFollowUpAt, v))
}

// FollowUpAtLTE applies the LTE predicate on the "follow_up_at" field.
func FollowUpAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldFollowUpAt, v))
}

// FollowUpAtIsNil applies the IsNil predicate on the "follow_up_at" field.
func FollowUpAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldFollowUpAt))
}

// FollowUpAtNotNil applies the NotNil predicate on the "follow_up_at" field.
func FollowUpAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldFollowUpAt))
}

// StakeholderMentionsIsNil applies the IsNil predicate on the "stakeholder_mentions" field.
func StakeholderMentionsIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldStakeholderMentions))
}

// StakeholderMentionsNotNil applies the NotNil predicate on the "stakeholder_mentions" field.
func StakeholderMentionsNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldStakeholderMentions))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v SourceType) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v SourceType) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...SourceType) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...SourceType) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldSourceType, vs...))
}

// SourceURLEQ applies the EQ predicate on the "source_url" field.
func SourceURLEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldSourceURL, v))
}

// SourceURLNEQ applies the NEQ predicate on the "source_url" field.
func SourceURLNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldSourceURL, v))
}

// SourceURLIn applies the In predicate on the "source_url" field.
func SourceURLIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldSourceURL, vs...))
}

// SourceURLNotIn applies the NotIn predicate on the "source_url" field.
func SourceURLNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldSourceURL, vs...))
}

// SourceURLGT applies the GT predicate on the "source_url" field.
func SourceURLGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldSourceURL, v))
}

// SourceURLGTE applies the GTE predicate on the "source_url" field.
func SourceURLGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldSourceURL, v))
}

// SourceURLLT applies the LT predicate on the "source_url" field.
func SourceURLLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldSourceURL, v))
}

// SourceURLLTE applies the LTE predicate on the "source_url" field.
func SourceURLLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldSourceURL, v))
}

// SourceURLContains applies the Contains predicate on the "source_url" field.
func SourceURLContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldSourceURL, v))
}

// SourceURLHasPrefix applies the HasPrefix predicate on the "source_url" field.
func SourceURLHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldSourceURL, v))
}

// SourceURLHasSuffix applies the HasSuffix predicate on the "source_url" field.
func SourceURLHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldSourceURL, v))
}

// SourceURLIsNil applies the IsNil predicate on the "source_url" field.
func SourceURLIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldSourceURL))
}

// SourceURLNotNil applies the NotNil predicate on the "source_url" field.
func SourceURLNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldSourceURL))
}

// SourceURLEqualFold applies the EqualFold predicate on the "source_url" field.
func SourceURLEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldSourceURL, v))
}

// SourceURLContainsFold applies the ContainsFold predicate on the "source_url" field.
func SourceURLContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldSourceURL, v))
}

// InboxItemIDEQ applies the EQ predicate on the "inbox_item_id" field.
func InboxItemIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldInboxItemID, v))
}

// InboxItemIDNEQ applies the NEQ predicate on the "inbox_item_id" field.
func InboxItemIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldInboxItemID, v))
}

// InboxItemIDIn applies the In predicate on the "inbox_item_id" field.
func InboxItemIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldInboxItemID, vs...))
}

// InboxItemIDNotIn applies the NotIn predicate on the "inbox_item_id" field.
func InboxItemIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldInboxItemID, vs...))
}

// InboxItemIDGT applies the GT predicate on the "inbox_item_id" field.
func InboxItemIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldInboxItemID, v))
}

// InboxItemIDGTE applies the GTE predicate on the "inbox_item_id" field.
func InboxItemIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldInboxItemID, v))
}

// InboxItemIDLT applies the LT predicate on the "inbox_item_id" field.
func InboxItemIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldInboxItemID, v))
}

// InboxItemIDLTE applies the LTE predicate on the "inbox_item_id" field.
func InboxItemIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldInboxItemID, v))
}

// InboxItemIDContains applies the Contains predicate on the "inbox_item_id" field.
func InboxItemIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldInboxItemID, v))
}

// InboxItemIDHasPrefix applies the HasPrefix predicate on the "inbox_item_id" field.
func InboxItemIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldInboxItemID, v))
}

// InboxItemIDHasSuffix applies the HasSuffix predicate on the "inbox_item_id" field.
func InboxItemIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldInboxItemID, v))
}

// InboxItemIDIsNil applies the IsNil predicate on the "inbox_item_id" field.
func InboxItemIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldInboxItemID))
}

// InboxItemIDNotNil applies the NotNil predicate on the "inbox_item_id" field.
func InboxItemIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldInboxItemID))
}

// InboxItemIDEqualFold applies the EqualFold predicate on the "inbox_item_id" field.
func InboxItemIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldInboxItemID, v))
}

// InboxItemIDContainsFold applies the ContainsFold predicate on the "inbox_item_id" field.
func InboxItemIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldInboxItemID, v))
}

// PinnedExcerptEQ applies the EQ predicate on the "pinned_excerpt" field.
func PinnedExcerptEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPinnedExcerpt, v))
}

// PinnedExcerptNEQ applies the NEQ predicate on the "pinned_excerpt" field.
func PinnedExcerptNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPinnedExcerpt, v))
}

// PinnedExcerptIn applies the In predicate on the "pinned_excerpt" field.
func PinnedExcerptIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPinnedExcerpt, vs...))
}

// PinnedExcerptNotIn applies the NotIn predicate on the "pinned_excerpt" field.
func PinnedExcerptNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPinnedExcerpt, vs...))
}

// PinnedExcerptGT applies the GT predicate on the "pinned_excerpt" field.
func PinnedExcerptGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldPinnedExcerpt, v))
}

// PinnedExcerptGTE applies the GTE predicate on the "pinned_excerpt" field.
func PinnedExcerptGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldPinnedExcerpt, v))
}

// PinnedExcerptLT applies the LT predicate on the "pinned_excerpt" field.
func PinnedExcerptLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldPinnedExcerpt, v))
}

// PinnedExcerptLTE applies the LTE predicate on the "pinned_excerpt" field.
func PinnedExcerptLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldPinnedExcerpt, v))
}

// PinnedExcerptContains applies the Contains predicate on the "pinned_excerpt" field.
func PinnedExcerptContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldPinnedExcerpt, v))
}

// PinnedExcerptHasPrefix applies the HasPrefix predicate on the "pinned_excerpt" field.
func PinnedExcerptHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldPinnedExcerpt, v))
}

// PinnedExcerptHasSuffix applies the HasSuffix predicate on the "pinned_excerpt" field.
func PinnedExcerptHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldPinnedExcerpt, v))
}

// PinnedExcerptIsNil applies the IsNil predicate on the "pinned_excerpt" field.
func PinnedExcerptIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldPinnedExcerpt))
}

// PinnedExcerptNotNil applies the NotNil predicate on the "pinned_excerpt" field.
func PinnedExcerptNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldPinnedExcerpt))
}

// PinnedExcerptEqualFold applies the EqualFold predicate on the "pinned_excerpt" field.
func PinnedExcerptEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldPinnedExcerpt, v))
}

// PinnedExcerptContainsFold applies the ContainsFold predicate on the "pinned_excerpt" field.
func PinnedExcerptContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldPinnedExcerpt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Task) predicate.Task {
	return predicate.Task(sql.NotPredicates(p))
}
