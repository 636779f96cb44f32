// Code generated by ent, DO NOT EDIT.

package calendarevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/missionctl/missionctl/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContainsFold(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldOwnerID, v))
}

// ExternalEventID applies equality check predicate on the "external_event_id" field. It's identical to ExternalEventIDEQ.
func ExternalEventID(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldExternalEventID, v))
}

// StartAt applies equality check predicate on the "start_at" field. It's identical to StartAtEQ.
func StartAt(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldStartAt, v))
}

// EndAt applies equality check predicate on the "end_at" field. It's identical to EndAtEQ.
func EndAt(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldEndAt, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldTitle, v))
}

// BodyPreview applies equality check predicate on the "body_preview" field. It's identical to BodyPreviewEQ.
func BodyPreview(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldBodyPreview, v))
}

// IsAllDay applies equality check predicate on the "is_all_day" field. It's identical to IsAllDayEQ.
func IsAllDay(v bool) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldIsAllDay, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldContentHash, v))
}

// MeetingContext applies equality check predicate on the "meeting_context" field. It's identical to MeetingContextEQ.
func MeetingContext(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldMeetingContext, v))
}

// RemovedAt applies equality check predicate on the "removed_at" field. It's identical to RemovedAtEQ.
func RemovedAt(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldRemovedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContainsFold(FieldOwnerID, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldSource, vs...))
}

// ExternalEventIDEQ applies the EQ predicate on the "external_event_id" field.
func ExternalEventIDEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldExternalEventID, v))
}

// ExternalEventIDNEQ applies the NEQ predicate on the "external_event_id" field.
func ExternalEventIDNEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldExternalEventID, v))
}

// ExternalEventIDIn applies the In predicate on the "external_event_id" field.
func ExternalEventIDIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldExternalEventID, vs...))
}

// ExternalEventIDNotIn applies the NotIn predicate on the "external_event_id" field.
func ExternalEventIDNotIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldExternalEventID, vs...))
}

// ExternalEventIDGT applies the GT predicate on the "external_event_id" field.
func ExternalEventIDGT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldExternalEventID, v))
}

// ExternalEventIDGTE applies the GTE predicate on the "external_event_id" field.
func ExternalEventIDGTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldExternalEventID, v))
}

// ExternalEventIDLT applies the LT predicate on the "external_event_id" field.
func ExternalEventIDLT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldExternalEventID, v))
}

// ExternalEventIDLTE applies the LTE predicate on the "external_event_id" field.
func ExternalEventIDLTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldExternalEventID, v))
}

// ExternalEventIDContains applies the Contains predicate on the "external_event_id" field.
func ExternalEventIDContains(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContains(FieldExternalEventID, v))
}

// ExternalEventIDHasPrefix applies the HasPrefix predicate on the "external_event_id" field.
func ExternalEventIDHasPrefix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasPrefix(FieldExternalEventID, v))
}

// ExternalEventIDHasSuffix applies the HasSuffix predicate on the "external_event_id" field.
func ExternalEventIDHasSuffix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasSuffix(FieldExternalEventID, v))
}

// ExternalEventIDEqualFold applies the EqualFold predicate on the "external_event_id" field.
func ExternalEventIDEqualFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEqualFold(FieldExternalEventID, v))
}

// ExternalEventIDContainsFold applies the ContainsFold predicate on the "external_event_id" field.
func ExternalEventIDContainsFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContainsFold(FieldExternalEventID, v))
}

// StartAtEQ applies the EQ predicate on the "start_at" field.
func StartAtEQ(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldStartAt, v))
}

// StartAtNEQ applies the NEQ predicate on the "start_at" field.
func StartAtNEQ(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldStartAt, v))
}

// StartAtIn applies the In predicate on the "start_at" field.
func StartAtIn(vs ...time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldStartAt, vs...))
}

// StartAtNotIn applies the NotIn predicate on the "start_at" field.
func StartAtNotIn(vs ...time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldStartAt, vs...))
}

// StartAtGT applies the GT predicate on the "start_at" field.
func StartAtGT(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldStartAt, v))
}

// StartAtGTE applies the GTE predicate on the "start_at" field.
func StartAtGTE(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldStartAt, v))
}

// StartAtLT applies the LT predicate on the "start_at" field.
func StartAtLT(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldStartAt, v))
}

// StartAtLTE applies the LTE predicate on the "start_at" field.
func StartAtLTE(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldStartAt, v))
}

// EndAtEQ applies the EQ predicate on the "end_at" field.
func EndAtEQ(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldEndAt, v))
}

// EndAtNEQ applies the NEQ predicate on the "end_at" field.
func EndAtNEQ(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldEndAt, v))
}

// EndAtIn applies the In predicate on the "end_at" field.
func EndAtIn(vs ...time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldEndAt, vs...))
}

// EndAtNotIn applies the NotIn predicate on the "end_at" field.
func EndAtNotIn(vs ...time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldEndAt, vs...))
}

// EndAtGT applies the GT predicate on the "end_at" field.
func EndAtGT(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldEndAt, v))
}

// EndAtGTE applies the GTE predicate on the "end_at" field.
func EndAtGTE(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldEndAt, v))
}

// EndAtLT applies the LT predicate on the "end_at" field.
func EndAtLT(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldEndAt, v))
}

// EndAtLTE applies the LTE predicate on the "end_at" field.
func EndAtLTE(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldEndAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContainsFold(FieldTitle, v))
}

// BodyPreviewEQ applies the EQ predicate on the "body_preview" field.
func BodyPreviewEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldBodyPreview, v))
}

// BodyPreviewNEQ applies the NEQ predicate on the "body_preview" field.
func BodyPreviewNEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldBodyPreview, v))
}

// BodyPreviewIn applies the In predicate on the "body_preview" field.
func BodyPreviewIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldBodyPreview, vs...))
}

// BodyPreviewNotIn applies the NotIn predicate on the "body_preview" field.
func BodyPreviewNotIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldBodyPreview, vs...))
}

// BodyPreviewGT applies the GT predicate on the "body_preview" field.
func BodyPreviewGT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldBodyPreview, v))
}

// BodyPreviewGTE applies the GTE predicate on the "body_preview" field.
func BodyPreviewGTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldBodyPreview, v))
}

// BodyPreviewLT applies the LT predicate on the "body_preview" field.
func BodyPreviewLT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldBodyPreview, v))
}

// BodyPreviewLTE applies the LTE predicate on the "body_preview" field.
func BodyPreviewLTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldBodyPreview, v))
}

// BodyPreviewContains applies the Contains predicate on the "body_preview" field.
func BodyPreviewContains(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContains(FieldBodyPreview, v))
}

// BodyPreviewHasPrefix applies the HasPrefix predicate on the "body_preview" field.
func BodyPreviewHasPrefix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasPrefix(FieldBodyPreview, v))
}

// BodyPreviewHasSuffix applies the HasSuffix predicate on the "body_preview" field.
func BodyPreviewHasSuffix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasSuffix(FieldBodyPreview, v))
}

// BodyPreviewIsNil applies the IsNil predicate on the "body_preview" field.
func BodyPreviewIsNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIsNull(FieldBodyPreview))
}

// BodyPreviewNotNil applies the NotNil predicate on the "body_preview" field.
func BodyPreviewNotNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotNull(FieldBodyPreview))
}

// BodyPreviewEqualFold applies the EqualFold predicate on the "body_preview" field.
func BodyPreviewEqualFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEqualFold(FieldBodyPreview, v))
}

// BodyPreviewContainsFold applies the ContainsFold predicate on the "body_preview" field.
func BodyPreviewContainsFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContainsFold(FieldBodyPreview, v))
}

// IsAllDayEQ applies the EQ predicate on the "is_all_day" field.
func IsAllDayEQ(v bool) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldIsAllDay, v))
}

// IsAllDayNEQ applies the NEQ predicate on the "is_all_day" field.
func IsAllDayNEQ(v bool) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldIsAllDay, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContainsFold(FieldContentHash, v))
}

// MeetingContextEQ applies the EQ predicate on the "meeting_context" field.
func MeetingContextEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldMeetingContext, v))
}

// MeetingContextNEQ applies the NEQ predicate on the "meeting_context" field.
func MeetingContextNEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldMeetingContext, v))
}

// MeetingContextIn applies the In predicate on the "meeting_context" field.
func MeetingContextIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldMeetingContext, vs...))
}

// MeetingContextNotIn applies the NotIn predicate on the "meeting_context" field.
func MeetingContextNotIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldMeetingContext, vs...))
}

// MeetingContextGT applies the GT predicate on the "meeting_context" field.
func MeetingContextGT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldMeetingContext, v))
}

// MeetingContextGTE applies the GTE predicate on the "meeting_context" field.
func MeetingContextGTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldMeetingContext, v))
}

// MeetingContextLT applies the LT predicate on the "meeting_context" field.
func MeetingContextLT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldMeetingContext, v))
}

// MeetingContextLTE applies the LTE predicate on the "meeting_context" field.
func MeetingContextLTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldMeetingContext, v))
}

// MeetingContextContains applies the Contains predicate on the "meeting_context" field.
func MeetingContextContains(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContains(FieldMeetingContext, v))
}

// MeetingContextHasPrefix applies the HasPrefix predicate on the "meeting_context" field.
func MeetingContextHasPrefix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasPrefix(FieldMeetingContext, v))
}

// MeetingContextHasSuffix applies the HasSuffix predicate on the "meeting_context" field.
func MeetingContextHasSuffix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasSuffix(FieldMeetingContext, v))
}

// MeetingContextIsNil applies the IsNil predicate on the "meeting_context" field.
func MeetingContextIsNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIsNull(FieldMeetingContext))
}

// MeetingContextNotNil applies the NotNil predicate on the "meeting_context" field.
func MeetingContextNotNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotNull(FieldMeetingContext))
}

// MeetingContextEqualFold applies the EqualFold predicate on the "meeting_context" field.
func MeetingContextEqualFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEqualFold(FieldMeetingContext, v))
}

// MeetingContextContainsFold applies the ContainsFold predicate on the "meeting_context" field.
func MeetingContextContainsFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContainsFold(FieldMeetingContext, v))
}

// RemovedAtEQ applies the EQ predicate on the "removed_at" field.
func RemovedAtEQ(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldRemovedAt, v))
}

// RemovedAtNEQ applies the NEQ predicate on the "removed_at" field.
func RemovedAtNEQ(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldRemovedAt, v))
}

// RemovedAtIn applies the In predicate on the "removed_at" field.
func RemovedAtIn(vs ...time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldRemovedAt, vs...))
}

// RemovedAtNotIn applies the NotIn predicate on the "removed_at" field.
func RemovedAtNotIn(vs ...time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldRemovedAt, vs...))
}

// RemovedAtGT applies the GT predicate on the "removed_at" field.
func RemovedAtGT(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldRemovedAt, v))
}

// RemovedAtGTE applies the GTE predicate on the "removed_at" field.
func RemovedAtGTE(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldRemovedAt, v))
}

// RemovedAtLT applies the LT predicate on the "removed_at" field.
func RemovedAtLT(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldRemovedAt, v))
}

// RemovedAtLTE applies the LTE predicate on the "removed_at" field.
func RemovedAtLTE(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldRemovedAt, v))
}

// RemovedAtIsNil applies the IsNil predicate on the "removed_at" field.
func RemovedAtIsNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIsNull(FieldRemovedAt))
}

// RemovedAtNotNil applies the NotNil predicate on the "removed_at" field.
func RemovedAtNotNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotNull(FieldRemovedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CalendarEvent) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CalendarEvent) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CalendarEvent) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.NotPredicates(p))
}
