// Code generated by ent, DO NOT EDIT.

package commitment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/missionctl/missionctl/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContainsFold(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldOwnerID, v))
}

// Stakeholder applies equality check predicate on the "stakeholder" field. It's identical to StakeholderEQ.
func Stakeholder(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldStakeholder, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldDescription, v))
}

// DueAt applies equality check predicate on the "due_at" field. It's identical to DueAtEQ.
func DueAt(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldDueAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContainsFold(FieldOwnerID, v))
}

// StakeholderEQ applies the EQ predicate on the "stakeholder" field.
func StakeholderEQ(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldStakeholder, v))
}

// StakeholderNEQ applies the NEQ predicate on the "stakeholder" field.
func StakeholderNEQ(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldStakeholder, v))
}

// StakeholderIn applies the In predicate on the "stakeholder" field.
func StakeholderIn(vs ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldStakeholder, vs...))
}

// StakeholderNotIn applies the NotIn predicate on the "stakeholder" field.
func StakeholderNotIn(vs ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldStakeholder, vs...))
}

// StakeholderGT applies the GT predicate on the "stakeholder" field.
func StakeholderGT(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldStakeholder, v))
}

// StakeholderGTE applies the GTE predicate on the "stakeholder" field.
func StakeholderGTE(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldStakeholder, v))
}

// StakeholderLT applies the LT predicate on the "stakeholder" field.
func StakeholderLT(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldStakeholder, v))
}

// StakeholderLTE applies the LTE predicate on the "stakeholder" field.
func StakeholderLTE(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldStakeholder, v))
}

// StakeholderContains applies the Contains predicate on the "stakeholder" field.
func StakeholderContains(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContains(FieldStakeholder, v))
}

// StakeholderHasPrefix applies the HasPrefix predicate on the "stakeholder" field.
func StakeholderHasPrefix(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldHasPrefix(FieldStakeholder, v))
}

// StakeholderHasSuffix applies the HasSuffix predicate on the "stakeholder" field.
func StakeholderHasSuffix(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldHasSuffix(FieldStakeholder, v))
}

// StakeholderEqualFold applies the EqualFold predicate on the "stakeholder" field.
func StakeholderEqualFold(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEqualFold(FieldStakeholder, v))
}

// StakeholderContainsFold applies the ContainsFold predicate on the "stakeholder" field.
func StakeholderContainsFold(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContainsFold(FieldStakeholder, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContainsFold(FieldDescription, v))
}

// DirectionEQ applies the EQ predicate on the "direction" field.
func DirectionEQ(v Direction) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldDirection, v))
}

// DirectionNEQ applies the NEQ predicate on the "direction" field.
func DirectionNEQ(v Direction) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldDirection, v))
}

// DirectionIn applies the In predicate on the "direction" field.
func DirectionIn(vs ...Direction) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldDirection, vs...))
}

// DirectionNotIn applies the NotIn predicate on the "direction" field.
func DirectionNotIn(vs ...Direction) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldDirection, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldStatus, vs...))
}

// DueAtEQ applies the EQ predicate on the "due_at" field.
func DueAtEQ(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldDueAt, v))
}

// DueAtNEQ applies the NEQ predicate on the "due_at" field.
func DueAtNEQ(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldDueAt, v))
}

// DueAtIn applies the In predicate on the "due_at" field.
func DueAtIn(vs ...time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldDueAt, vs...))
}

// DueAtNotIn applies the NotIn predicate on the "due_at" field.
func DueAtNotIn(vs ...time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldDueAt, vs...))
}

// DueAtGT applies the GT predicate on the "due_at" field.
func DueAtGT(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldDueAt, v))
}

// DueAtGTE applies the GTE predicate on the "due_at" field.
func DueAtGTE(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldDueAt, v))
}

// DueAtLT applies the LT predicate on the "due_at" field.
func DueAtLT(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldDueAt, v))
}

// DueAtLTE applies the LTE predicate on the "due_at" field.
func DueAtLTE(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldDueAt, v))
}

// DueAtIsNil applies the IsNil predicate on the "due_at" field.
func DueAtIsNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldIsNull(FieldDueAt))
}

// DueAtNotNil applies the NotNil predicate on the "due_at" field.
func DueAtNotNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldNotNull(FieldDueAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Commitment) predicate.Commitment {
	return predicate.Commitment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Commitment) predicate.Commitment {
	return predicate.Commitment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Commitment) predicate.Commitment {
	return predicate.Commitment(sql.NotPredicates(p))
}
