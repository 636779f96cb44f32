// Code generated by ent, DO NOT EDIT.

package calendarsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/missionctl/missionctl/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldContainsFold(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldEQ(FieldOwnerID, v))
}

// RangeStart applies equality check predicate on the "range_start" field. It's identical to RangeStartEQ.
func RangeStart(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldEQ(FieldRangeStart, v))
}

// RangeEnd applies equality check predicate on the "range_end" field. It's identical to RangeEndEQ.
func RangeEnd(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldEQ(FieldRangeEnd, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldContainsFold(FieldOwnerID, v))
}

// RangeStartEQ applies the EQ predicate on the "range_start" field.
func RangeStartEQ(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldEQ(FieldRangeStart, v))
}

// RangeStartNEQ applies the NEQ predicate on the "range_start" field.
func RangeStartNEQ(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldNEQ(FieldRangeStart, v))
}

// RangeStartIn applies the In predicate on the "range_start" field.
func RangeStartIn(vs ...string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldIn(FieldRangeStart, vs...))
}

// RangeStartNotIn applies the NotIn predicate on the "range_start" field.
func RangeStartNotIn(vs ...string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldNotIn(FieldRangeStart, vs...))
}

// RangeStartGT applies the GT predicate on the "range_start" field.
func RangeStartGT(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldGT(FieldRangeStart, v))
}

// RangeStartGTE applies the GTE predicate on the "range_start" field.
func RangeStartGTE(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldGTE(FieldRangeStart, v))
}

// RangeStartLT applies the LT predicate on the "range_start" field.
func RangeStartLT(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldLT(FieldRangeStart, v))
}

// RangeStartLTE applies the LTE predicate on the "range_start" field.
func RangeStartLTE(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldLTE(FieldRangeStart, v))
}

// RangeStartContains applies the Contains predicate on the "range_start" field.
func RangeStartContains(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldContains(FieldRangeStart, v))
}

// RangeStartHasPrefix applies the HasPrefix predicate on the "range_start" field.
func RangeStartHasPrefix(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldHasPrefix(FieldRangeStart, v))
}

// RangeStartHasSuffix applies the HasSuffix predicate on the "range_start" field.
func RangeStartHasSuffix(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldHasSuffix(FieldRangeStart, v))
}

// RangeStartEqualFold applies the EqualFold predicate on the "range_start" field.
func RangeStartEqualFold(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldEqualFold(FieldRangeStart, v))
}

// RangeStartContainsFold applies the ContainsFold predicate on the "range_start" field.
func RangeStartContainsFold(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldContainsFold(FieldRangeStart, v))
}

// RangeEndEQ applies the EQ predicate on the "range_end" field.
func RangeEndEQ(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldEQ(FieldRangeEnd, v))
}

// RangeEndNEQ applies the NEQ predicate on the "range_end" field.
func RangeEndNEQ(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldNEQ(FieldRangeEnd, v))
}

// RangeEndIn applies the In predicate on the "range_end" field.
func RangeEndIn(vs ...string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldIn(FieldRangeEnd, vs...))
}

// RangeEndNotIn applies the NotIn predicate on the "range_end" field.
func RangeEndNotIn(vs ...string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldNotIn(FieldRangeEnd, vs...))
}

// RangeEndGT applies the GT predicate on the "range_end" field.
func RangeEndGT(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldGT(FieldRangeEnd, v))
}

// RangeEndGTE applies the GTE predicate on the "range_end" field.
func RangeEndGTE(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldGTE(FieldRangeEnd, v))
}

// RangeEndLT applies the LT predicate on the "range_end" field.
func RangeEndLT(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldLT(FieldRangeEnd, v))
}

// RangeEndLTE applies the LTE predicate on the "range_end" field.
func RangeEndLTE(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldLTE(FieldRangeEnd, v))
}

// RangeEndContains applies the Contains predicate on the "range_end" field.
func RangeEndContains(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldContains(FieldRangeEnd, v))
}

// RangeEndHasPrefix applies the HasPrefix predicate on the "range_end" field.
func RangeEndHasPrefix(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldHasPrefix(FieldRangeEnd, v))
}

// RangeEndHasSuffix applies the HasSuffix predicate on the "range_end" field.
func RangeEndHasSuffix(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldHasSuffix(FieldRangeEnd, v))
}

// RangeEndEqualFold applies the EqualFold predicate on the "range_end" field.
func RangeEndEqualFold(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldEqualFold(FieldRangeEnd, v))
}

// RangeEndContainsFold applies the ContainsFold predicate on the "range_end" field.
func RangeEndContainsFold(v string) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldContainsFold(FieldRangeEnd, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CalendarSnapshot) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CalendarSnapshot) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CalendarSnapshot) predicate.CalendarSnapshot {
	return predicate.CalendarSnapshot(sql.NotPredicates(p))
}
