// Code generated by ent, DO NOT EDIT.

package application

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/missionctl/missionctl/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldOwnerID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldName, v))
}

// PriorityWeight applies equality check predicate on the "priority_weight" field. It's identical to PriorityWeightEQ.
func PriorityWeight(v int) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldPriorityWeight, v))
}

// PortfolioRank applies equality check predicate on the "portfolio_rank" field. It's identical to PortfolioRankEQ.
func PortfolioRank(v int) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldPortfolioRank, v))
}

// StatusSummary applies equality check predicate on the "status_summary" field. It's identical to StatusSummaryEQ.
func StatusSummary(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldStatusSummary, v))
}

// NextMilestone applies equality check predicate on the "next_milestone" field. It's identical to NextMilestoneEQ.
func NextMilestone(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldNextMilestone, v))
}

// TargetDate applies equality check predicate on the "target_date" field. It's identical to TargetDateEQ.
func TargetDate(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldTargetDate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldOwnerID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldName, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v Phase) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v Phase) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...Phase) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...Phase) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldPhase, vs...))
}

// RagEQ applies the EQ predicate on the "rag" field.
func RagEQ(v Rag) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldRag, v))
}

// RagNEQ applies the NEQ predicate on the "rag" field.
func RagNEQ(v Rag) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldRag, v))
}

// RagIn applies the In predicate on the "rag" field.
func RagIn(vs ...Rag) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldRag, vs...))
}

// RagNotIn applies the NotIn predicate on the "rag" field.
func RagNotIn(vs ...Rag) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldRag, vs...))
}

// PriorityWeightEQ applies the EQ predicate on the "priority_weight" field.
func PriorityWeightEQ(v int) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldPriorityWeight, v))
}

// PriorityWeightNEQ applies the NEQ predicate on the "priority_weight" field.
func PriorityWeightNEQ(v int) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldPriorityWeight, v))
}

// PriorityWeightIn applies the In predicate on the "priority_weight" field.
func PriorityWeightIn(vs ...int) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldPriorityWeight, vs...))
}

// PriorityWeightNotIn applies the NotIn predicate on the "priority_weight" field.
func PriorityWeightNotIn(vs ...int) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldPriorityWeight, vs...))
}

// PriorityWeightGT applies the GT predicate on the "priority_weight" field.
func PriorityWeightGT(v int) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldPriorityWeight, v))
}

// PriorityWeightGTE applies the GTE predicate on the "priority_weight" field.
func PriorityWeightGTE(v int) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldPriorityWeight, v))
}

// PriorityWeightLT applies the LT predicate on the "priority_weight" field.
func PriorityWeightLT(v int) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldPriorityWeight, v))
}

// PriorityWeightLTE applies the LTE predicate on the "priority_weight" field.
func PriorityWeightLTE(v int) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldPriorityWeight, v))
}

// PortfolioRankEQ applies the EQ predicate on the "portfolio_rank" field.
func PortfolioRankEQ(v int) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldPortfolioRank, v))
}

// PortfolioRankNEQ applies the NEQ predicate on the "portfolio_rank" field.
func PortfolioRankNEQ(v int) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldPortfolioRank, v))
}

// PortfolioRankIn applies the In predicate on the "portfolio_rank" field.
func PortfolioRankIn(vs ...int) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldPortfolioRank, vs...))
}

// PortfolioRankNotIn applies the NotIn predicate on the "portfolio_rank" field.
func PortfolioRankNotIn(vs ...int) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldPortfolioRank, vs...))
}

// PortfolioRankGT applies the GT predicate on the "portfolio_rank" field.
func PortfolioRankGT(v int) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldPortfolioRank, v))
}

// PortfolioRankGTE applies the GTE predicate on the "portfolio_rank" field.
func PortfolioRankGTE(v int) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldPortfolioRank, v))
}

// PortfolioRankLT applies the LT predicate on the "portfolio_rank" field.
func PortfolioRankLT(v int) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldPortfolioRank, v))
}

// PortfolioRankLTE applies the LTE predicate on the "portfolio_rank" field.
func PortfolioRankLTE(v int) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldPortfolioRank, v))
}

// PortfolioRankIsNil applies the IsNil predicate on the "portfolio_rank" field.
func PortfolioRankIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldPortfolioRank))
}

// PortfolioRankNotNil applies the NotNil predicate on the "portfolio_rank" field.
func PortfolioRankNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldPortfolioRank))
}

// StakeholdersIsNil applies the IsNil predicate on the "stakeholders" field.
func StakeholdersIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldStakeholders))
}

// StakeholdersNotNil applies the NotNil predicate on the "stakeholders" field.
func StakeholdersNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldStakeholders))
}

// KeywordsIsNil applies the IsNil predicate on the "keywords" field.
func KeywordsIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldKeywords))
}

// KeywordsNotNil applies the NotNil predicate on the "keywords" field.
func KeywordsNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldKeywords))
}

// StatusSummaryEQ applies the EQ predicate on the "status_summary" field.
func StatusSummaryEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldStatusSummary, v))
}

// StatusSummaryNEQ applies the NEQ predicate on the "status_summary" field.
func StatusSummaryNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldStatusSummary, v))
}

// StatusSummaryIn applies the In predicate on the "status_summary" field.
func StatusSummaryIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldStatusSummary, vs...))
}

// StatusSummaryNotIn applies the NotIn predicate on the "status_summary" field.
func StatusSummaryNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldStatusSummary, vs...))
}

// StatusSummaryGT applies the GT predicate on the "status_summary" field.
func StatusSummaryGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldStatusSummary, v))
}

// StatusSummaryGTE applies the GTE predicate on the "status_summary" field.
func StatusSummaryGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldStatusSummary, v))
}

// StatusSummaryLT applies the LT predicate on the "status_summary" field.
func StatusSummaryLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldStatusSummary, v))
}

// StatusSummaryLTE applies the LTE predicate on the "status_summary" field.
func StatusSummaryLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldStatusSummary, v))
}

// StatusSummaryContains applies the Contains predicate on the "status_summary" field.
func StatusSummaryContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldStatusSummary, v))
}

// StatusSummaryHasPrefix applies the HasPrefix predicate on the "status_summary" field.
func StatusSummaryHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldStatusSummary, v))
}

// StatusSummaryHasSuffix applies the HasSuffix predicate on the "status_summary" field.
func StatusSummaryHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldStatusSummary, v))
}

// StatusSummaryIsNil applies the IsNil predicate on the "status_summary" field.
func StatusSummaryIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldStatusSummary))
}

// StatusSummaryNotNil applies the NotNil predicate on the "status_summary" field.
func StatusSummaryNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldStatusSummary))
}

// StatusSummaryEqualFold applies the EqualFold predicate on the "status_summary" field.
func StatusSummaryEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldStatusSummary, v))
}

// StatusSummaryContainsFold applies the ContainsFold predicate on the "status_summary" field.
func StatusSummaryContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldStatusSummary, v))
}

// NextMilestoneEQ applies the EQ predicate on the "next_milestone" field.
func NextMilestoneEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldNextMilestone, v))
}

// NextMilestoneNEQ applies the NEQ predicate on the "next_milestone" field.
func NextMilestoneNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldNextMilestone, v))
}

// NextMilestoneIn applies the In predicate on the "next_milestone" field.
func NextMilestoneIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldNextMilestone, vs...))
}

// NextMilestoneNotIn applies the NotIn predicate on the "next_milestone" field.
func NextMilestoneNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldNextMilestone, vs...))
}

// NextMilestoneGT applies the GT predicate on the "next_milestone" field.
func NextMilestoneGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldNextMilestone, v))
}

// NextMilestoneGTE applies the GTE predicate on the "next_milestone" field.
func NextMilestoneGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldNextMilestone, v))
}

// NextMilestoneLT applies the LT predicate on the "next_milestone" field.
func NextMilestoneLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldNextMilestone, v))
}

// NextMilestoneLTE applies the LTE predicate on the "next_milestone" field.
func NextMilestoneLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldNextMilestone, v))
}

// NextMilestoneContains applies the Contains predicate on the "next_milestone" field.
func NextMilestoneContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldNextMilestone, v))
}

// NextMilestoneHasPrefix applies the HasPrefix predicate on the "next_milestone" field.
func NextMilestoneHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldNextMilestone, v))
}

// NextMilestoneHasSuffix applies the HasSuffix predicate on the "next_milestone" field.
func NextMilestoneHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldNextMilestone, v))
}

// NextMilestoneIsNil applies the IsNil predicate on the "next_milestone" field.
func NextMilestoneIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldNextMilestone))
}

// NextMilestoneNotNil applies the NotNil predicate on the "next_milestone" field.
func NextMilestoneNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldNextMilestone))
}

// NextMilestoneEqualFold applies the EqualFold predicate on the "next_milestone" field.
func NextMilestoneEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldNextMilestone, v))
}

// NextMilestoneContainsFold applies the ContainsFold predicate on the "next_milestone" field.
func NextMilestoneContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldNextMilestone, v))
}

// TargetDateEQ applies the EQ predicate on the "target_date" field.
func TargetDateEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldTargetDate, v))
}

// TargetDateNEQ applies the NEQ predicate on the "target_date" field.
func TargetDateNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldTargetDate, v))
}

// TargetDateIn applies the In predicate on the "target_date" field.
func TargetDateIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldTargetDate, vs...))
}

// TargetDateNotIn applies the NotIn predicate on the "target_date" field.
func TargetDateNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldTargetDate, vs...))
}

// TargetDateGT applies the GT predicate on the "target_date" field.
func TargetDateGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldTargetDate, v))
}

// TargetDateGTE applies the GTE predicate on the "target_date" field.
func TargetDateGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldTargetDate, v))
}

// TargetDateLT applies the LT predicate on the "target_date" field.
func TargetDateLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldTargetDate, v))
}

// TargetDateLTE applies the LTE predicate on the "target_date" field.
func TargetDateLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldTargetDate, v))
}

// TargetDateIsNil applies the IsNil predicate on the "target_date" field.
func TargetDateIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldTargetDate))
}

// TargetDateNotNil applies the NotNil predicate on the "target_date" field.
func TargetDateNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldTargetDate))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Application) predicate.Application {
	return predicate.Application(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Application) predicate.Application {
	return predicate.Application(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Application) predicate.Application {
	return predicate.Application(sql.NotPredicates(p))
}
