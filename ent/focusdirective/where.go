// Code generated by ent, DO NOT EDIT.

package focusdirective

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/missionctl/missionctl/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldContainsFold(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldEQ(FieldOwnerID, v))
}

// DirectiveText applies equality check predicate on the "directive_text" field. It's identical to DirectiveTextEQ.
func DirectiveText(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldEQ(FieldDirectiveText, v))
}

// ScopeID applies equality check predicate on the "scope_id" field. It's identical to ScopeIDEQ.
func ScopeID(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldEQ(FieldScopeID, v))
}

// ScopeValue applies equality check predicate on the "scope_value" field. It's identical to ScopeValueEQ.
func ScopeValue(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldEQ(FieldScopeValue, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldEQ(FieldIsActive, v))
}

// StartsAt applies equality check predicate on the "starts_at" field. It's identical to StartsAtEQ.
func StartsAt(v time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldEQ(FieldStartsAt, v))
}

// EndsAt applies equality check predicate on the "ends_at" field. It's identical to EndsAtEQ.
func EndsAt(v time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldEQ(FieldEndsAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldContainsFold(FieldOwnerID, v))
}

// DirectiveTextEQ applies the EQ predicate on the "directive_text" field.
func DirectiveTextEQ(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldEQ(FieldDirectiveText, v))
}

// DirectiveTextNEQ applies the NEQ predicate on the "directive_text" field.
func DirectiveTextNEQ(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldNEQ(FieldDirectiveText, v))
}

// DirectiveTextIn applies the In predicate on the "directive_text" field.
func DirectiveTextIn(vs ...string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldIn(FieldDirectiveText, vs...))
}

// DirectiveTextNotIn applies the NotIn predicate on the "directive_text" field.
func DirectiveTextNotIn(vs ...string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldNotIn(FieldDirectiveText, vs...))
}

// DirectiveTextGT applies the GT predicate on the "directive_text" field.
func DirectiveTextGT(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldGT(FieldDirectiveText, v))
}

// DirectiveTextGTE applies the GTE predicate on the "directive_text" field.
func DirectiveTextGTE(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldGTE(FieldDirectiveText, v))
}

// DirectiveTextLT applies the LT predicate on the "directive_text" field.
func DirectiveTextLT(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldLT(FieldDirectiveText, v))
}

// DirectiveTextLTE applies the LTE predicate on the "directive_text" field.
func DirectiveTextLTE(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldLTE(FieldDirectiveText, v))
}

// DirectiveTextContains applies the Contains predicate on the "directive_text" field.
func DirectiveTextContains(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldContains(FieldDirectiveText, v))
}

// DirectiveTextHasPrefix applies the HasPrefix predicate on the "directive_text" field.
func DirectiveTextHasPrefix(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldHasPrefix(FieldDirectiveText, v))
}

// DirectiveTextHasSuffix applies the HasSuffix predicate on the "directive_text" field.
func DirectiveTextHasSuffix(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldHasSuffix(FieldDirectiveText, v))
}

// DirectiveTextEqualFold applies the EqualFold predicate on the "directive_text" field.
func DirectiveTextEqualFold(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldEqualFold(FieldDirectiveText, v))
}

// DirectiveTextContainsFold applies the ContainsFold predicate on the "directive_text" field.
func DirectiveTextContainsFold(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldContainsFold(FieldDirectiveText, v))
}

// ScopeTypeEQ applies the EQ predicate on the "scope_type" field.
func ScopeTypeEQ(v ScopeType) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldEQ(FieldScopeType, v))
}

// ScopeTypeNEQ applies the NEQ predicate on the "scope_type" field.
func ScopeTypeNEQ(v ScopeType) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldNEQ(FieldScopeType, v))
}

// ScopeTypeIn applies the In predicate on the "scope_type" field.
func ScopeTypeIn(vs ...ScopeType) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldIn(FieldScopeType, vs...))
}

// ScopeTypeNotIn applies the NotIn predicate on the "scope_type" field.
func ScopeTypeNotIn(vs ...ScopeType) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldNotIn(FieldScopeType, vs...))
}

// ScopeIDEQ applies the EQ predicate on the "scope_id" field.
func ScopeIDEQ(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldEQ(FieldScopeID, v))
}

// ScopeIDNEQ applies the NEQ predicate on the "scope_id" field.
func ScopeIDNEQ(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldNEQ(FieldScopeID, v))
}

// ScopeIDIn applies the In predicate on the "scope_id" field.
func ScopeIDIn(vs ...string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldIn(FieldScopeID, vs...))
}

// ScopeIDNotIn applies the NotIn predicate on the "scope_id" field.
func ScopeIDNotIn(vs ...string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldNotIn(FieldScopeID, vs...))
}

// ScopeIDGT applies the GT predicate on the "scope_id" field.
func ScopeIDGT(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldGT(FieldScopeID, v))
}

// ScopeIDGTE applies the GTE predicate on the "scope_id" field.
func ScopeIDGTE(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldGTE(FieldScopeID, v))
}

// ScopeIDLT applies the LT predicate on the "scope_id" field.
func ScopeIDLT(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldLT(FieldScopeID, v))
}

// ScopeIDLTE applies the LTE predicate on the "scope_id" field.
func ScopeIDLTE(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldLTE(FieldScopeID, v))
}

// ScopeIDContains applies the Contains predicate on the "scope_id" field.
func ScopeIDContains(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldContains(FieldScopeID, v))
}

// ScopeIDHasPrefix applies the HasPrefix predicate on the "scope_id" field.
func ScopeIDHasPrefix(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldHasPrefix(FieldScopeID, v))
}

// ScopeIDHasSuffix applies the HasSuffix predicate on the "scope_id" field.
func ScopeIDHasSuffix(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldHasSuffix(FieldScopeID, v))
}

// ScopeIDIsNil applies the IsNil predicate on the "scope_id" field.
func ScopeIDIsNil() predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldIsNull(FieldScopeID))
}

// ScopeIDNotNil applies the NotNil predicate on the "scope_id" field.
func ScopeIDNotNil() predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldNotNull(FieldScopeID))
}

// ScopeIDEqualFold applies the EqualFold predicate on the "scope_id" field.
func ScopeIDEqualFold(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldEqualFold(FieldScopeID, v))
}

// ScopeIDContainsFold applies the ContainsFold predicate on the "scope_id" field.
func ScopeIDContainsFold(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldContainsFold(FieldScopeID, v))
}

// ScopeValueEQ applies the EQ predicate on the "scope_value" field.
func ScopeValueEQ(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldEQ(FieldScopeValue, v))
}

// ScopeValueNEQ applies the NEQ predicate on the "scope_value" field.
func ScopeValueNEQ(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldNEQ(FieldScopeValue, v))
}

// ScopeValueIn applies the In predicate on the "scope_value" field.
func ScopeValueIn(vs ...string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldIn(FieldScopeValue, vs...))
}

// ScopeValueNotIn applies the NotIn predicate on the "scope_value" field.
func ScopeValueNotIn(vs ...string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldNotIn(FieldScopeValue, vs...))
}

// ScopeValueGT applies the GT predicate on the "scope_value" field.
func ScopeValueGT(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldGT(FieldScopeValue, v))
}

// ScopeValueGTE applies the GTE predicate on the "scope_value" field.
func ScopeValueGTE(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldGTE(FieldScopeValue, v))
}

// ScopeValueLT applies the LT predicate on the "scope_value" field.
func ScopeValueLT(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldLT(FieldScopeValue, v))
}

// ScopeValueLTE applies the LTE predicate on the "scope_value" field.
func ScopeValueLTE(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldLTE(FieldScopeValue, v))
}

// ScopeValueContains applies the Contains predicate on the "scope_value" field.
func ScopeValueContains(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldContains(FieldScopeValue, v))
}

// ScopeValueHasPrefix applies the HasPrefix predicate on the "scope_value" field.
func ScopeValueHasPrefix(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldHasPrefix(FieldScopeValue, v))
}

// ScopeValueHasSuffix applies the HasSuffix predicate on the "scope_value" field.
func ScopeValueHasSuffix(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldHasSuffix(FieldScopeValue, v))
}

// ScopeValueIsNil applies the IsNil predicate on the "scope_value" field.
func ScopeValueIsNil() predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldIsNull(FieldScopeValue))
}

// ScopeValueNotNil applies the NotNil predicate on the "scope_value" field.
func ScopeValueNotNil() predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldNotNull(FieldScopeValue))
}

// ScopeValueEqualFold applies the EqualFold predicate on the "scope_value" field.
func ScopeValueEqualFold(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldEqualFold(FieldScopeValue, v))
}

// ScopeValueContainsFold applies the ContainsFold predicate on the "scope_value" field.
func ScopeValueContainsFold(v string) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldContainsFold(FieldScopeValue, v))
}

// StrengthEQ applies the EQ predicate on the "strength" field.
func StrengthEQ(v Strength) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldEQ(FieldStrength, v))
}

// StrengthNEQ applies the NEQ predicate on the "strength" field.
func StrengthNEQ(v Strength) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldNEQ(FieldStrength, v))
}

// StrengthIn applies the In predicate on the "strength" field.
func StrengthIn(vs ...Strength) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldIn(FieldStrength, vs...))
}

// StrengthNotIn applies the NotIn predicate on the "strength" field.
func StrengthNotIn(vs ...Strength) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldNotIn(FieldStrength, vs...))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldNEQ(FieldIsActive, v))
}

// StartsAtEQ applies the EQ predicate on the "starts_at" field.
func StartsAtEQ(v time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldEQ(FieldStartsAt, v))
}

// StartsAtNEQ applies the NEQ predicate on the "starts_at" field.
func StartsAtNEQ(v time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldNEQ(FieldStartsAt, v))
}

// StartsAtIn applies the In predicate on the "starts_at" field.
func StartsAtIn(vs ...time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldIn(FieldStartsAt, vs...))
}

// StartsAtNotIn applies the NotIn predicate on the "starts_at" field.
func StartsAtNotIn(vs ...time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldNotIn(FieldStartsAt, vs...))
}

// StartsAtGT applies the GT predicate on the "starts_at" field.
func StartsAtGT(v time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldGT(FieldStartsAt, v))
}

// StartsAtGTE applies the GTE predicate on the "starts_at" field.
func StartsAtGTE(v time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldGTE(FieldStartsAt, v))
}

// StartsAtLT applies the LT predicate on the "starts_at" field.
func StartsAtLT(v time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldLT(FieldStartsAt, v))
}

// StartsAtLTE applies the LTE predicate on the "starts_at" field.
func StartsAtLTE(v time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldLTE(FieldStartsAt, v))
}

// StartsAtIsNil applies the IsNil predicate on the "starts_at" field.
func StartsAtIsNil() predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldIsNull(FieldStartsAt))
}

// StartsAtNotNil applies the NotNil predicate on the "starts_at" field.
func StartsAtNotNil() predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldNotNull(FieldStartsAt))
}

// EndsAtEQ applies the EQ predicate on the "ends_at" field.
func EndsAtEQ(v time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldEQ(FieldEndsAt, v))
}

// EndsAtNEQ applies the NEQ predicate on the "ends_at" field.
func EndsAtNEQ(v time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldNEQ(FieldEndsAt, v))
}

// EndsAtIn applies the In predicate on the "ends_at" field.
func EndsAtIn(vs ...time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldIn(FieldEndsAt, vs...))
}

// EndsAtNotIn applies the NotIn predicate on the "ends_at" field.
func EndsAtNotIn(vs ...time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldNotIn(FieldEndsAt, vs...))
}

// EndsAtGT applies the GT predicate on the "ends_at" field.
func EndsAtGT(v time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldGT(FieldEndsAt, v))
}

// EndsAtGTE applies the GTE predicate on the "ends_at" field.
func EndsAtGTE(v time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldGTE(FieldEndsAt, v))
}

// EndsAtLT applies the LT predicate on the "ends_at" field.
func EndsAtLT(v time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldLT(FieldEndsAt, v))
}

// EndsAtLTE applies the LTE predicate on the "ends_at" field.
func EndsAtLTE(v time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldLTE(FieldEndsAt, v))
}

// EndsAtIsNil applies the IsNil predicate on the "ends_at" field.
func EndsAtIsNil() predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldIsNull(FieldEndsAt))
}

// EndsAtNotNil applies the NotNil predicate on the "ends_at" field.
func EndsAtNotNil() predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldNotNull(FieldEndsAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.FocusDirective {
	return predicate.FocusDirective(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FocusDirective) predicate.FocusDirective {
	return predicate.FocusDirective(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FocusDirective) predicate.FocusDirective {
	return predicate.FocusDirective(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FocusDirective) predicate.FocusDirective {
	return predicate.FocusDirective(sql.NotPredicates(p))
}
