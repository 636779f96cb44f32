// Code generated by ent, DO NOT EDIT.

package modelpreference

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/missionctl/missionctl/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldContainsFold(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldEQ(FieldOwnerID, v))
}

// CatalogID applies equality check predicate on the "catalog_id" field. It's identical to CatalogIDEQ.
func CatalogID(v string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldEQ(FieldCatalogID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldContainsFold(FieldOwnerID, v))
}

// FeatureEQ applies the EQ predicate on the "feature" field.
func FeatureEQ(v Feature) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldEQ(FieldFeature, v))
}

// FeatureNEQ applies the NEQ predicate on the "feature" field.
func FeatureNEQ(v Feature) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldNEQ(FieldFeature, v))
}

// FeatureIn applies the In predicate on the "feature" field.
func FeatureIn(vs ...Feature) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldIn(FieldFeature, vs...))
}

// FeatureNotIn applies the NotIn predicate on the "feature" field.
func FeatureNotIn(vs ...Feature) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldNotIn(FieldFeature, vs...))
}

// CatalogIDEQ applies the EQ predicate on the "catalog_id" field.
func CatalogIDEQ(v string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldEQ(FieldCatalogID, v))
}

// CatalogIDNEQ applies the NEQ predicate on the "catalog_id" field.
func CatalogIDNEQ(v string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldNEQ(FieldCatalogID, v))
}

// CatalogIDIn applies the In predicate on the "catalog_id" field.
func CatalogIDIn(vs ...string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldIn(FieldCatalogID, vs...))
}

// CatalogIDNotIn applies the NotIn predicate on the "catalog_id" field.
func CatalogIDNotIn(vs ...string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldNotIn(FieldCatalogID, vs...))
}

// CatalogIDGT applies the GT predicate on the "catalog_id" field.
func CatalogIDGT(v string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldGT(FieldCatalogID, v))
}

// CatalogIDGTE applies the GTE predicate on the "catalog_id" field.
func CatalogIDGTE(v string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldGTE(FieldCatalogID, v))
}

// CatalogIDLT applies the LT predicate on the "catalog_id" field.
func CatalogIDLT(v string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldLT(FieldCatalogID, v))
}

// CatalogIDLTE applies the LTE predicate on the "catalog_id" field.
func CatalogIDLTE(v string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldLTE(FieldCatalogID, v))
}

// CatalogIDContains applies the Contains predicate on the "catalog_id" field.
func CatalogIDContains(v string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldContains(FieldCatalogID, v))
}

// CatalogIDHasPrefix applies the HasPrefix predicate on the "catalog_id" field.
func CatalogIDHasPrefix(v string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldHasPrefix(FieldCatalogID, v))
}

// CatalogIDHasSuffix applies the HasSuffix predicate on the "catalog_id" field.
func CatalogIDHasSuffix(v string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldHasSuffix(FieldCatalogID, v))
}

// CatalogIDEqualFold applies the EqualFold predicate on the "catalog_id" field.
func CatalogIDEqualFold(v string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldEqualFold(FieldCatalogID, v))
}

// CatalogIDContainsFold applies the ContainsFold predicate on the "catalog_id" field.
func CatalogIDContainsFold(v string) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldContainsFold(FieldCatalogID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ModelPreference {
	return predicate.ModelPreference(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ModelPreference) predicate.ModelPreference {
	return predicate.ModelPreference(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ModelPreference) predicate.ModelPreference {
	return predicate.ModelPreference(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ModelPreference) predicate.ModelPreference {
	return predicate.ModelPreference(sql.NotPredicates(p))
}
