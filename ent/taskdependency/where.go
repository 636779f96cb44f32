// Code generated by ent, DO NOT EDIT.

package taskdependency

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/missionctl/missionctl/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldContainsFold(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldEQ(FieldOwnerID, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldEQ(FieldTaskID, v))
}

// DependsOnTaskID applies equality check predicate on the "depends_on_task_id" field. It's identical to DependsOnTaskIDEQ.
func DependsOnTaskID(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldEQ(FieldDependsOnTaskID, v))
}

// DependsOnCommitmentID applies equality check predicate on the "depends_on_commitment_id" field. It's identical to DependsOnCommitmentIDEQ.
func DependsOnCommitmentID(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldEQ(FieldDependsOnCommitmentID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldEQ(FieldCreatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldContainsFold(FieldOwnerID, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldContainsFold(FieldTaskID, v))
}

// DependsOnTaskIDEQ applies the EQ predicate on the "depends_on_task_id" field.
func DependsOnTaskIDEQ(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldEQ(FieldDependsOnTaskID, v))
}

// DependsOnTaskIDNEQ applies the NEQ predicate on the "depends_on_task_id" field.
func DependsOnTaskIDNEQ(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldNEQ(FieldDependsOnTaskID, v))
}

// DependsOnTaskIDIn applies the In predicate on the "depends_on_task_id" field.
func DependsOnTaskIDIn(vs ...string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldIn(FieldDependsOnTaskID, vs...))
}

// DependsOnTaskIDNotIn applies the NotIn predicate on the "depends_on_task_id" field.
func DependsOnTaskIDNotIn(vs ...string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldNotIn(FieldDependsOnTaskID, vs...))
}

// DependsOnTaskIDGT applies the GT predicate on the "depends_on_task_id" field.
func DependsOnTaskIDGT(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldGT(FieldDependsOnTaskID, v))
}

// DependsOnTaskIDGTE applies the GTE predicate on the "depends_on_task_id" field.
func DependsOnTaskIDGTE(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldGTE(FieldDependsOnTaskID, v))
}

// DependsOnTaskIDLT applies the LT predicate on the "depends_on_task_id" field.
func DependsOnTaskIDLT(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldLT(FieldDependsOnTaskID, v))
}

// DependsOnTaskIDLTE applies the LTE predicate on the "depends_on_task_id" field.
func DependsOnTaskIDLTE(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldLTE(FieldDependsOnTaskID, v))
}

// DependsOnTaskIDContains applies the Contains predicate on the "depends_on_task_id" field.
func DependsOnTaskIDContains(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldContains(FieldDependsOnTaskID, v))
}

// DependsOnTaskIDHasPrefix applies the HasPrefix predicate on the "depends_on_task_id" field.
func DependsOnTaskIDHasPrefix(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldHasPrefix(FieldDependsOnTaskID, v))
}

// DependsOnTaskIDHasSuffix applies the HasSuffix predicate on the "depends_on_task_id" field.
func DependsOnTaskIDHasSuffix(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldHasSuffix(FieldDependsOnTaskID, v))
}

// DependsOnTaskIDIsNil applies the IsNil predicate on the "depends_on_task_id" field.
func DependsOnTaskIDIsNil() predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldIsNull(FieldDependsOnTaskID))
}

// DependsOnTaskIDNotNil applies the NotNil predicate on the "depends_on_task_id" field.
func DependsOnTaskIDNotNil() predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldNotNull(FieldDependsOnTaskID))
}

// DependsOnTaskIDEqualFold applies the EqualFold predicate on the "depends_on_task_id" field.
func DependsOnTaskIDEqualFold(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldEqualFold(FieldDependsOnTaskID, v))
}

// DependsOnTaskIDContainsFold applies the ContainsFold predicate on the "depends_on_task_id" field.
func DependsOnTaskIDContainsFold(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldContainsFold(FieldDependsOnTaskID, v))
}

// DependsOnCommitmentIDEQ applies the EQ predicate on the "depends_on_commitment_id" field.
func DependsOnCommitmentIDEQ(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldEQ(FieldDependsOnCommitmentID, v))
}

// DependsOnCommitmentIDNEQ applies the NEQ predicate on the "depends_on_commitment_id" field.
func DependsOnCommitmentIDNEQ(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldNEQ(FieldDependsOnCommitmentID, v))
}

// DependsOnCommitmentIDIn applies the In predicate on the "depends_on_commitment_id" field.
func DependsOnCommitmentIDIn(vs ...string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldIn(FieldDependsOnCommitmentID, vs...))
}

// DependsOnCommitmentIDNotIn applies the NotIn predicate on the "depends_on_commitment_id" field.
func DependsOnCommitmentIDNotIn(vs ...string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldNotIn(FieldDependsOnCommitmentID, vs...))
}

// DependsOnCommitmentIDGT applies the GT predicate on the "depends_on_commitment_id" field.
func DependsOnCommitmentIDGT(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldGT(FieldDependsOnCommitmentID, v))
}

// DependsOnCommitmentIDGTE applies the GTE predicate on the "depends_on_commitment_id" field.
func DependsOnCommitmentIDGTE(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldGTE(FieldDependsOnCommitmentID, v))
}

// DependsOnCommitmentIDLT applies the LT predicate on the "depends_on_commitment_id" field.
func DependsOnCommitmentIDLT(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldLT(FieldDependsOnCommitmentID, v))
}

// DependsOnCommitmentIDLTE applies the LTE predicate on the "depends_on_commitment_id" field.
func DependsOnCommitmentIDLTE(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldLTE(FieldDependsOnCommitmentID, v))
}

// DependsOnCommitmentIDContains applies the Contains predicate on the "depends_on_commitment_id" field.
func DependsOnCommitmentIDContains(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldContains(FieldDependsOnCommitmentID, v))
}

// DependsOnCommitmentIDHasPrefix applies the HasPrefix predicate on the "depends_on_commitment_id" field.
func DependsOnCommitmentIDHasPrefix(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldHasPrefix(FieldDependsOnCommitmentID, v))
}

// DependsOnCommitmentIDHasSuffix applies the HasSuffix predicate on the "depends_on_commitment_id" field.
func DependsOnCommitmentIDHasSuffix(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldHasSuffix(FieldDependsOnCommitmentID, v))
}

// DependsOnCommitmentIDIsNil applies the IsNil predicate on the "depends_on_commitment_id" field.
func DependsOnCommitmentIDIsNil() predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldIsNull(FieldDependsOnCommitmentID))
}

// DependsOnCommitmentIDNotNil applies the NotNil predicate on the "depends_on_commitment_id" field.
func DependsOnCommitmentIDNotNil() predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldNotNull(FieldDependsOnCommitmentID))
}

// DependsOnCommitmentIDEqualFold applies the EqualFold predicate on the "depends_on_commitment_id" field.
func DependsOnCommitmentIDEqualFold(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldEqualFold(FieldDependsOnCommitmentID, v))
}

// DependsOnCommitmentIDContainsFold applies the ContainsFold predicate on the "depends_on_commitment_id" field.
func DependsOnCommitmentIDContainsFold(v string) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldContainsFold(FieldDependsOnCommitmentID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TaskDependency {
	return predicate.TaskDependency(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskDependency) predicate.TaskDependency {
	return predicate.TaskDependency(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskDependency) predicate.TaskDependency {
	return predicate.TaskDependency(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskDependency) predicate.TaskDependency {
	return predicate.TaskDependency(sql.NotPredicates(p))
}
