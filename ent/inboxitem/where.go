// Code generated by ent, DO NOT EDIT.

package inboxitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/missionctl/missionctl/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContainsFold(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldOwnerID, v))
}

// DedupeKey applies equality check predicate on the "dedupe_key" field. It's identical to DedupeKeyEQ.
func DedupeKey(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldDedupeKey, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldSubject, v))
}

// FromEmail applies equality check predicate on the "from_email" field. It's identical to FromEmailEQ.
func FromEmail(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldFromEmail, v))
}

// FromName applies equality check predicate on the "from_name" field. It's identical to FromNameEQ.
func FromName(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldFromName, v))
}

// ReceivedAt applies equality check predicate on the "received_at" field. It's identical to ReceivedAtEQ.
func ReceivedAt(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldReceivedAt, v))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldMessageID, v))
}

// SourceURL applies equality check predicate on the "source_url" field. It's identical to SourceURLEQ.
func SourceURL(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldSourceURL, v))
}

// ExtractionModel applies equality check predicate on the "extraction_model" field. It's identical to ExtractionModelEQ.
func ExtractionModel(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldExtractionModel, v))
}

// ExtractionConfidence applies equality check predicate on the "extraction_confidence" field. It's identical to ExtractionConfidenceEQ.
func ExtractionConfidence(v float64) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldExtractionConfidence, v))
}

// ProcessingError applies equality check predicate on the "processing_error" field. It's identical to ProcessingErrorEQ.
func ProcessingError(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldProcessingError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContainsFold(FieldOwnerID, v))
}

// DedupeKeyEQ applies the EQ predicate on the "dedupe_key" field.
func DedupeKeyEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldDedupeKey, v))
}

// DedupeKeyNEQ applies the NEQ predicate on the "dedupe_key" field.
func DedupeKeyNEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNEQ(FieldDedupeKey, v))
}

// DedupeKeyIn applies the In predicate on the "dedupe_key" field.
func DedupeKeyIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIn(FieldDedupeKey, vs...))
}

// DedupeKeyNotIn applies the NotIn predicate on the "dedupe_key" field.
func DedupeKeyNotIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotIn(FieldDedupeKey, vs...))
}

// DedupeKeyGT applies the GT predicate on the "dedupe_key" field.
func DedupeKeyGT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGT(FieldDedupeKey, v))
}

// DedupeKeyGTE applies the GTE predicate on the "dedupe_key" field.
func DedupeKeyGTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGTE(FieldDedupeKey, v))
}

// DedupeKeyLT applies the LT predicate on the "dedupe_key" field.
func DedupeKeyLT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLT(FieldDedupeKey, v))
}

// DedupeKeyLTE applies the LTE predicate on the "dedupe_key" field.
func DedupeKeyLTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLTE(FieldDedupeKey, v))
}

// DedupeKeyContains applies the Contains predicate on the "dedupe_key" field.
func DedupeKeyContains(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContains(FieldDedupeKey, v))
}

// DedupeKeyHasPrefix applies the HasPrefix predicate on the "dedupe_key" field.
func DedupeKeyHasPrefix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasPrefix(FieldDedupeKey, v))
}

// DedupeKeyHasSuffix applies the HasSuffix predicate on the "dedupe_key" field.
func DedupeKeyHasSuffix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasSuffix(FieldDedupeKey, v))
}

// DedupeKeyEqualFold applies the EqualFold predicate on the "dedupe_key" field.
func DedupeKeyEqualFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEqualFold(FieldDedupeKey, v))
}

// DedupeKeyContainsFold applies the ContainsFold predicate on the "dedupe_key" field.
func DedupeKeyContainsFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContainsFold(FieldDedupeKey, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContainsFold(FieldSubject, v))
}

// FromEmailEQ applies the EQ predicate on the "from_email" field.
func FromEmailEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldFromEmail, v))
}

// FromEmailNEQ applies the NEQ predicate on the "from_email" field.
func FromEmailNEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNEQ(FieldFromEmail, v))
}

// FromEmailIn applies the In predicate on the "from_email" field.
func FromEmailIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIn(FieldFromEmail, vs...))
}

// FromEmailNotIn applies the NotIn predicate on the "from_email" field.
func FromEmailNotIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotIn(FieldFromEmail, vs...))
}

// FromEmailGT applies the GT predicate on the "from_email" field.
func FromEmailGT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGT(FieldFromEmail, v))
}

// FromEmailGTE applies the GTE predicate on the "from_email" field.
func FromEmailGTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGTE(FieldFromEmail, v))
}

// FromEmailLT applies the LT predicate on the "from_email" field.
func FromEmailLT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLT(FieldFromEmail, v))
}

// FromEmailLTE applies the LTE predicate on the "from_email" field.
func FromEmailLTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLTE(FieldFromEmail, v))
}

// FromEmailContains applies the Contains predicate on the "from_email" field.
func FromEmailContains(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContains(FieldFromEmail, v))
}

// FromEmailHasPrefix applies the HasPrefix predicate on the "from_email" field.
func FromEmailHasPrefix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasPrefix(FieldFromEmail, v))
}

// FromEmailHasSuffix applies the HasSuffix predicate on the "from_email" field.
func FromEmailHasSuffix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasSuffix(FieldFromEmail, v))
}

// FromEmailEqualFold applies the EqualFold predicate on the "from_email" field.
func FromEmailEqualFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEqualFold(FieldFromEmail, v))
}

// FromEmailContainsFold applies the ContainsFold predicate on the "from_email" field.
func FromEmailContainsFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContainsFold(FieldFromEmail, v))
}

// FromNameEQ applies the EQ predicate on the "from_name" field.
func FromNameEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldFromName, v))
}

// FromNameNEQ applies the NEQ predicate on the "from_name" field.
func FromNameNEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNEQ(FieldFromName, v))
}

// FromNameIn applies the In predicate on the "from_name" field.
func FromNameIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIn(FieldFromName, vs...))
}

// FromNameNotIn applies the NotIn predicate on the "from_name" field.
func FromNameNotIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotIn(FieldFromName, vs...))
}

// FromNameGT applies the GT predicate on the "from_name" field.
func FromNameGT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGT(FieldFromName, v))
}

// FromNameGTE applies the GTE predicate on the "from_name" field.
func FromNameGTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGTE(FieldFromName, v))
}

// FromNameLT applies the LT predicate on the "from_name" field.
func FromNameLT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLT(FieldFromName, v))
}

// FromNameLTE applies the LTE predicate on the "from_name" field.
func FromNameLTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLTE(FieldFromName, v))
}

// FromNameContains applies the Contains predicate on the "from_name" field.
func FromNameContains(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContains(FieldFromName, v))
}

// FromNameHasPrefix applies the HasPrefix predicate on the "from_name" field.
func FromNameHasPrefix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasPrefix(FieldFromName, v))
}

// FromNameHasSuffix applies the HasSuffix predicate on the "from_name" field.
func FromNameHasSuffix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasSuffix(FieldFromName, v))
}

// FromNameIsNil applies the IsNil predicate on the "from_name" field.
func FromNameIsNil() predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIsNull(FieldFromName))
}

// FromNameNotNil applies the NotNil predicate on the "from_name" field.
func FromNameNotNil() predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotNull(FieldFromName))
}

// FromNameEqualFold applies the EqualFold predicate on the "from_name" field.
func FromNameEqualFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEqualFold(FieldFromName, v))
}

// FromNameContainsFold applies the ContainsFold predicate on the "from_name" field.
func FromNameContainsFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContainsFold(FieldFromName, v))
}

// ReceivedAtEQ applies the EQ predicate on the "received_at" field.
func ReceivedAtEQ(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldReceivedAt, v))
}

// ReceivedAtNEQ applies the NEQ predicate on the "received_at" field.
func ReceivedAtNEQ(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNEQ(FieldReceivedAt, v))
}

// ReceivedAtIn applies the In predicate on the "received_at" field.
func ReceivedAtIn(vs ...time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIn(FieldReceivedAt, vs...))
}

// ReceivedAtNotIn applies the NotIn predicate on the "received_at" field.
func ReceivedAtNotIn(vs ...time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotIn(FieldReceivedAt, vs...))
}

// ReceivedAtGT applies the GT predicate on the "received_at" field.
func ReceivedAtGT(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGT(FieldReceivedAt, v))
}

// ReceivedAtGTE applies the GTE predicate on the "received_at" field.
func ReceivedAtGTE(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGTE(FieldReceivedAt, v))
}

// ReceivedAtLT applies the LT predicate on the "received_at" field.
func ReceivedAtLT(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLT(FieldReceivedAt, v))
}

// ReceivedAtLTE applies the LTE predicate on the "received_at" field.
func ReceivedAtLTE(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLTE(FieldReceivedAt, v))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLTE(FieldMessageID, v))
}

// MessageIDContains applies the Contains predicate on the "message_id" field.
func MessageIDContains(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContains(FieldMessageID, v))
}

// MessageIDHasPrefix applies the HasPrefix predicate on the "message_id" field.
func MessageIDHasPrefix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasPrefix(FieldMessageID, v))
}

// MessageIDHasSuffix applies the HasSuffix predicate on the "message_id" field.
func MessageIDHasSuffix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasSuffix(FieldMessageID, v))
}

// MessageIDIsNil applies the IsNil predicate on the "message_id" field.
func MessageIDIsNil() predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIsNull(FieldMessageID))
}

// MessageIDNotNil applies the NotNil predicate on the "message_id" field.
func MessageIDNotNil() predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotNull(FieldMessageID))
}

// MessageIDEqualFold applies the EqualFold predicate on the "message_id" field.
func MessageIDEqualFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEqualFold(FieldMessageID, v))
}

// MessageIDContainsFold applies the ContainsFold predicate on the "message_id" field.
func MessageIDContainsFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContainsFold(FieldMessageID, v))
}

// SourceURLEQ applies the EQ predicate on the "source_url" field.
func SourceURLEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldSourceURL, v))
}

// SourceURLNEQ applies the NEQ predicate on the "source_url" field.
func SourceURLNEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNEQ(FieldSourceURL, v))
}

// SourceURLIn applies the In predicate on the "source_url" field.
func SourceURLIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIn(FieldSourceURL, vs...))
}

// SourceURLNotIn applies the NotIn predicate on the "source_url" field.
func SourceURLNotIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotIn(FieldSourceURL, vs...))
}

// SourceURLGT applies the GT predicate on the "source_url" field.
func SourceURLGT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGT(FieldSourceURL, v))
}

// SourceURLGTE applies the GTE predicate on the "source_url" field.
func SourceURLGTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGTE(FieldSourceURL, v))
}

// SourceURLLT applies the LT predicate on the "source_url" field.
func SourceURLLT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLT(FieldSourceURL, v))
}

// SourceURLLTE applies the LTE predicate on the "source_url" field.
func SourceURLLTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLTE(FieldSourceURL, v))
}

// SourceURLContains applies the Contains predicate on the "source_url" field.
func SourceURLContains(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContains(FieldSourceURL, v))
}

// SourceURLHasPrefix applies the HasPrefix predicate on the "source_url" field.
func SourceURLHasPrefix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasPrefix(FieldSourceURL, v))
}

// SourceURLHasSuffix applies the HasSuffix predicate on the "source_url" field.
func SourceURLHasSuffix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasSuffix(FieldSourceURL, v))
}

// SourceURLIsNil applies the IsNil predicate on the "source_url" field.
func SourceURLIsNil() predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIsNull(FieldSourceURL))
}

// SourceURLNotNil applies the NotNil predicate on the "source_url" field.
func SourceURLNotNil() predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotNull(FieldSourceURL))
}

// SourceURLEqualFold applies the EqualFold predicate on the "source_url" field.
func SourceURLEqualFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEqualFold(FieldSourceURL, v))
}

// SourceURLContainsFold applies the ContainsFold predicate on the "source_url" field.
func SourceURLContainsFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContainsFold(FieldSourceURL, v))
}

// TriageStateEQ applies the EQ predicate on the "triage_state" field.
func TriageStateEQ(v TriageState) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldTriageState, v))
}

// TriageStateNEQ applies the NEQ predicate on the "triage_state" field.
func TriageStateNEQ(v TriageState) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNEQ(FieldTriageState, v))
}

// TriageStateIn applies the In predicate on the "triage_state" field.
func TriageStateIn(vs ...TriageState) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIn(FieldTriageState, vs...))
}

// TriageStateNotIn applies the NotIn predicate on the "triage_state" field.
func TriageStateNotIn(vs ...TriageState) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotIn(FieldTriageState, vs...))
}

// ExtractionJSONIsNil applies the IsNil predicate on the "extraction_json" field.
func ExtractionJSONIsNil() predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIsNull(FieldExtractionJSON))
}

// ExtractionJSONNotNil applies the NotNil predicate on the "extraction_json" field.
func ExtractionJSONNotNil() predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotNull(FieldExtractionJSON))
}

// ExtractionModelEQ applies the EQ predicate on the "extraction_model" field.
func ExtractionModelEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldExtractionModel, v))
}

// ExtractionModelNEQ applies the NEQ predicate on the "extraction_model" field.
func ExtractionModelNEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNEQ(FieldExtractionModel, v))
}

// ExtractionModelIn applies the In predicate on the "extraction_model" field.
func ExtractionModelIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIn(FieldExtractionModel, vs...))
}

// ExtractionModelNotIn applies the NotIn predicate on the "extraction_model" field.
func ExtractionModelNotIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotIn(FieldExtractionModel, vs...))
}

// ExtractionModelGT applies the GT predicate on the "extraction_model" field.
func ExtractionModelGT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGT(FieldExtractionModel, v))
}

// ExtractionModelGTE applies the GTE predicate on the "extraction_model" field.
func ExtractionModelGTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGTE(FieldExtractionModel, v))
}

// ExtractionModelLT applies the LT predicate on the "extraction_model" field.
func ExtractionModelLT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLT(FieldExtractionModel, v))
}

// ExtractionModelLTE applies the LTE predicate on the "extraction_model" field.
func ExtractionModelLTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLTE(FieldExtractionModel, v))
}

// ExtractionModelContains applies the Contains predicate on the "extraction_model" field.
func ExtractionModelContains(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContains(FieldExtractionModel, v))
}

// ExtractionModelHasPrefix applies the HasPrefix predicate on the "extraction_model" field.
func ExtractionModelHasPrefix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasPrefix(FieldExtractionModel, v))
}

// ExtractionModelHasSuffix applies the HasSuffix predicate on the "extraction_model" field.
func ExtractionModelHasSuffix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasSuffix(FieldExtractionModel, v))
}

// ExtractionModelIsNil applies the IsNil predicate on the "extraction_model" field.
func ExtractionModelIsNil() predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIsNull(FieldExtractionModel))
}

// ExtractionModelNotNil applies the NotNil predicate on the "extraction_model" field.
func ExtractionModelNotNil() predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotNull(FieldExtractionModel))
}

// ExtractionModelEqualFold applies the EqualFold predicate on the "extraction_model" field.
func ExtractionModelEqualFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEqualFold(FieldExtractionModel, v))
}

// ExtractionModelContainsFold applies the ContainsFold predicate on the "extraction_model" field.
func ExtractionModelContainsFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContainsFold(FieldExtractionModel, v))
}

// ExtractionConfidenceEQ applies the EQ predicate on the "extraction_confidence" field.
func ExtractionConfidenceEQ(v float64) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldExtractionConfidence, v))
}

// ExtractionConfidenceNEQ applies the NEQ predicate on the "extraction_confidence" field.
func ExtractionConfidenceNEQ(v float64) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNEQ(FieldExtractionConfidence, v))
}

// ExtractionConfidenceIn applies the In predicate on the "extraction_confidence" field.
func ExtractionConfidenceIn(vs ...float64) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIn(FieldExtractionConfidence, vs...))
}

// ExtractionConfidenceNotIn applies the NotIn predicate on the "extraction_confidence" field.
func ExtractionConfidenceNotIn(vs ...float64) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotIn(FieldExtractionConfidence, vs...))
}

// ExtractionConfidenceGT applies the GT predicate on the "extraction_confidence" field.
func ExtractionConfidenceGT(v float64) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGT(FieldExtractionConfidence, v))
}

// ExtractionConfidenceGTE applies the GTE predicate on the "extraction_confidence" field.
func ExtractionConfidenceGTE(v float64) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGTE(FieldExtractionConfidence, v))
}

// ExtractionConfidenceLT applies the LT predicate on the "extraction_confidence" field.
func ExtractionConfidenceLT(v float64) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLT(FieldExtractionConfidence, v))
}

// ExtractionConfidenceLTE applies the LTE predicate on the "extraction_confidence" field.
func ExtractionConfidenceLTE(v float64) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLTE(FieldExtractionConfidence, v))
}

// ExtractionConfidenceIsNil applies the IsNil predicate on the "extraction_confidence" field.
func ExtractionConfidenceIsNil() predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIsNull(FieldExtractionConfidence))
}

// ExtractionConfidenceNotNil applies the NotNil predicate on the "extraction_confidence" field.
func ExtractionConfidenceNotNil() predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotNull(FieldExtractionConfidence))
}

// ProcessingErrorEQ applies the EQ predicate on the "processing_error" field.
func ProcessingErrorEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldProcessingError, v))
}

// ProcessingErrorNEQ applies the NEQ predicate on the "processing_error" field.
func ProcessingErrorNEQ(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNEQ(FieldProcessingError, v))
}

// ProcessingErrorIn applies the In predicate on the "processing_error" field.
func ProcessingErrorIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIn(FieldProcessingError, vs...))
}

// ProcessingErrorNotIn applies the NotIn predicate on the "processing_error" field.
func ProcessingErrorNotIn(vs ...string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotIn(FieldProcessingError, vs...))
}

// ProcessingErrorGT applies the GT predicate on the "processing_error" field.
func ProcessingErrorGT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGT(FieldProcessingError, v))
}

// ProcessingErrorGTE applies the GTE predicate on the "processing_error" field.
func ProcessingErrorGTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGTE(FieldProcessingError, v))
}

// ProcessingErrorLT applies the LT predicate on the "processing_error" field.
func ProcessingErrorLT(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLT(FieldProcessingError, v))
}

// ProcessingErrorLTE applies the LTE predicate on the "processing_error" field.
func ProcessingErrorLTE(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLTE(FieldProcessingError, v))
}

// ProcessingErrorContains applies the Contains predicate on the "processing_error" field.
func ProcessingErrorContains(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContains(FieldProcessingError, v))
}

// ProcessingErrorHasPrefix applies the HasPrefix predicate on the "processing_error" field.
func ProcessingErrorHasPrefix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasPrefix(FieldProcessingError, v))
}

// ProcessingErrorHasSuffix applies the HasSuffix predicate on the "processing_error" field.
func ProcessingErrorHasSuffix(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldHasSuffix(FieldProcessingError, v))
}

// ProcessingErrorIsNil applies the IsNil predicate on the "processing_error" field.
func ProcessingErrorIsNil() predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIsNull(FieldProcessingError))
}

// ProcessingErrorNotNil applies the NotNil predicate on the "processing_error" field.
func ProcessingErrorNotNil() predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotNull(FieldProcessingError))
}

// ProcessingErrorEqualFold applies the EqualFold predicate on the "processing_error" field.
func ProcessingErrorEqualFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEqualFold(FieldProcessingError, v))
}

// ProcessingErrorContainsFold applies the ContainsFold predicate on the "processing_error" field.
func ProcessingErrorContainsFold(v string) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldContainsFold(FieldProcessingError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.InboxItem {
	return predicate.InboxItem(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InboxItem) predicate.InboxItem {
	return predicate.InboxItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InboxItem) predicate.InboxItem {
	return predicate.InboxItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InboxItem) predicate.InboxItem {
	return predicate.InboxItem(sql.NotPredicates(p))
}
