// Code generated by ent, DO NOT EDIT.

package ingestionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/missionctl/missionctl/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldContainsFold(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldEQ(FieldOwnerID, v))
}

// InboxItemID applies equality check predicate on the "inbox_item_id" field. It's identical to InboxItemIDEQ.
func InboxItemID(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldEQ(FieldInboxItemID, v))
}

// Detail applies equality check predicate on the "detail" field. It's identical to DetailEQ.
func Detail(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldEQ(FieldDetail, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldContainsFold(FieldOwnerID, v))
}

// InboxItemIDEQ applies the EQ predicate on the "inbox_item_id" field.
func InboxItemIDEQ(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldEQ(FieldInboxItemID, v))
}

// InboxItemIDNEQ applies the NEQ predicate on the "inbox_item_id" field.
func InboxItemIDNEQ(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldNEQ(FieldInboxItemID, v))
}

// InboxItemIDIn applies the In predicate on the "inbox_item_id" field.
func InboxItemIDIn(vs ...string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldIn(FieldInboxItemID, vs...))
}

// InboxItemIDNotIn applies the NotIn predicate on the "inbox_item_id" field.
func InboxItemIDNotIn(vs ...string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldNotIn(FieldInboxItemID, vs...))
}

// InboxItemIDGT applies the GT predicate on the "inbox_item_id" field.
func InboxItemIDGT(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldGT(FieldInboxItemID, v))
}

// InboxItemIDGTE applies the GTE predicate on the "inbox_item_id" field.
func InboxItemIDGTE(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldGTE(FieldInboxItemID, v))
}

// InboxItemIDLT applies the LT predicate on the "inbox_item_id" field.
func InboxItemIDLT(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldLT(FieldInboxItemID, v))
}

// InboxItemIDLTE applies the LTE predicate on the "inbox_item_id" field.
func InboxItemIDLTE(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldLTE(FieldInboxItemID, v))
}

// InboxItemIDContains applies the Contains predicate on the "inbox_item_id" field.
func InboxItemIDContains(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldContains(FieldInboxItemID, v))
}

// InboxItemIDHasPrefix applies the HasPrefix predicate on the "inbox_item_id" field.
func InboxItemIDHasPrefix(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldHasPrefix(FieldInboxItemID, v))
}

// InboxItemIDHasSuffix applies the HasSuffix predicate on the "inbox_item_id" field.
func InboxItemIDHasSuffix(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldHasSuffix(FieldInboxItemID, v))
}

// InboxItemIDIsNil applies the IsNil predicate on the "inbox_item_id" field.
func InboxItemIDIsNil() predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldIsNull(FieldInboxItemID))
}

// InboxItemIDNotNil applies the NotNil predicate on the "inbox_item_id" field.
func InboxItemIDNotNil() predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldNotNull(FieldInboxItemID))
}

// InboxItemIDEqualFold applies the EqualFold predicate on the "inbox_item_id" field.
func InboxItemIDEqualFold(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldEqualFold(FieldInboxItemID, v))
}

// InboxItemIDContainsFold applies the ContainsFold predicate on the "inbox_item_id" field.
func InboxItemIDContainsFold(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldContainsFold(FieldInboxItemID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v EventType) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v EventType) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...EventType) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...EventType) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// DetailEQ applies the EQ predicate on the "detail" field.
func DetailEQ(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldEQ(FieldDetail, v))
}

// DetailNEQ applies the NEQ predicate on the "detail" field.
func DetailNEQ(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldNEQ(FieldDetail, v))
}

// DetailIn applies the In predicate on the "detail" field.
func DetailIn(vs ...string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldIn(FieldDetail, vs...))
}

// DetailNotIn applies the NotIn predicate on the "detail" field.
func DetailNotIn(vs ...string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldNotIn(FieldDetail, vs...))
}

// DetailGT applies the GT predicate on the "detail" field.
func DetailGT(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldGT(FieldDetail, v))
}

// DetailGTE applies the GTE predicate on the "detail" field.
func DetailGTE(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldGTE(FieldDetail, v))
}

// DetailLT applies the LT predicate on the "detail" field.
func DetailLT(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldLT(FieldDetail, v))
}

// DetailLTE applies the LTE predicate on the "detail" field.
func DetailLTE(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldLTE(FieldDetail, v))
}

// DetailContains applies the Contains predicate on the "detail" field.
func DetailContains(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldContains(FieldDetail, v))
}

// DetailHasPrefix applies the HasPrefix predicate on the "detail" field.
func DetailHasPrefix(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldHasPrefix(FieldDetail, v))
}

// DetailHasSuffix applies the HasSuffix predicate on the "detail" field.
func DetailHasSuffix(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldHasSuffix(FieldDetail, v))
}

// DetailIsNil applies the IsNil predicate on the "detail" field.
func DetailIsNil() predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldIsNull(FieldDetail))
}

// DetailNotNil applies the NotNil predicate on the "detail" field.
func DetailNotNil() predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldNotNull(FieldDetail))
}

// DetailEqualFold applies the EqualFold predicate on the "detail" field.
func DetailEqualFold(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldEqualFold(FieldDetail, v))
}

// DetailContainsFold applies the ContainsFold predicate on the "detail" field.
func DetailContainsFold(v string) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldContainsFold(FieldDetail, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IngestionEvent) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IngestionEvent) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IngestionEvent) predicate.IngestionEvent {
	return predicate.IngestionEvent(sql.NotPredicates(p))
}
