// Code generated by ent, DO NOT EDIT.

package modelcatalogentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/missionctl/missionctl/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldContainsFold(FieldID, id))
}

// ModelID applies equality check predicate on the "model_id" field. It's identical to ModelIDEQ.
func ModelID(v string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldEQ(FieldModelID, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldEQ(FieldDisplayName, v))
}

// InputPricePerMtok applies equality check predicate on the "input_price_per_mtok" field. It's identical to InputPricePerMtokEQ.
func InputPricePerMtok(v float64) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldEQ(FieldInputPricePerMtok, v))
}

// OutputPricePerMtok applies equality check predicate on the "output_price_per_mtok" field. It's identical to OutputPricePerMtokEQ.
func OutputPricePerMtok(v float64) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldEQ(FieldOutputPricePerMtok, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldEQ(FieldEnabled, v))
}

// PricingIsPlaceholder applies equality check predicate on the "pricing_is_placeholder" field. It's identical to PricingIsPlaceholderEQ.
func PricingIsPlaceholder(v bool) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldEQ(FieldPricingIsPlaceholder, v))
}

// SortOrder applies equality check predicate on the "sort_order" field. It's identical to SortOrderEQ.
func SortOrder(v int) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldEQ(FieldSortOrder, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v Provider) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v Provider) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...Provider) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...Provider) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldNotIn(FieldProvider, vs...))
}

// ModelIDEQ applies the EQ predicate on the "model_id" field.
func ModelIDEQ(v string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldEQ(FieldModelID, v))
}

// ModelIDNEQ applies the NEQ predicate on the "model_id" field.
func ModelIDNEQ(v string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldNEQ(FieldModelID, v))
}

// ModelIDIn applies the In predicate on the "model_id" field.
func ModelIDIn(vs ...string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldIn(FieldModelID, vs...))
}

// ModelIDNotIn applies the NotIn predicate on the "model_id" field.
func ModelIDNotIn(vs ...string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldNotIn(FieldModelID, vs...))
}

// ModelIDGT applies the GT predicate on the "model_id" field.
func ModelIDGT(v string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldGT(FieldModelID, v))
}

// ModelIDGTE applies the GTE predicate on the "model_id" field.
func ModelIDGTE(v string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldGTE(FieldModelID, v))
}

// ModelIDLT applies the LT predicate on the "model_id" field.
func ModelIDLT(v string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldLT(FieldModelID, v))
}

// ModelIDLTE applies the LTE predicate on the "model_id" field.
func ModelIDLTE(v string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldLTE(FieldModelID, v))
}

// ModelIDContains applies the Contains predicate on the "model_id" field.
func ModelIDContains(v string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldContains(FieldModelID, v))
}

// ModelIDHasPrefix applies the HasPrefix predicate on the "model_id" field.
func ModelIDHasPrefix(v string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldHasPrefix(FieldModelID, v))
}

// ModelIDHasSuffix applies the HasSuffix predicate on the "model_id" field.
func ModelIDHasSuffix(v string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldHasSuffix(FieldModelID, v))
}

// ModelIDEqualFold applies the EqualFold predicate on the "model_id" field.
func ModelIDEqualFold(v string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldEqualFold(FieldModelID, v))
}

// ModelIDContainsFold applies the ContainsFold predicate on the "model_id" field.
func ModelIDContainsFold(v string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldContainsFold(FieldModelID, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldContainsFold(FieldDisplayName, v))
}

// InputPricePerMtokEQ applies the EQ predicate on the "input_price_per_mtok" field.
func InputPricePerMtokEQ(v float64) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldEQ(FieldInputPricePerMtok, v))
}

// InputPricePerMtokNEQ applies the NEQ predicate on the "input_price_per_mtok" field.
func InputPricePerMtokNEQ(v float64) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldNEQ(FieldInputPricePerMtok, v))
}

// InputPricePerMtokIn applies the In predicate on the "input_price_per_mtok" field.
func InputPricePerMtokIn(vs ...float64) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldIn(FieldInputPricePerMtok, vs...))
}

// InputPricePerMtokNotIn applies the NotIn predicate on the "input_price_per_mtok" field.
func InputPricePerMtokNotIn(vs ...float64) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldNotIn(FieldInputPricePerMtok, vs...))
}

// InputPricePerMtokGT applies the GT predicate on the "input_price_per_mtok" field.
func InputPricePerMtokGT(v float64) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldGT(FieldInputPricePerMtok, v))
}

// InputPricePerMtokGTE applies the GTE predicate on the "input_price_per_mtok" field.
func InputPricePerMtokGTE(v float64) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldGTE(FieldInputPricePerMtok, v))
}

// InputPricePerMtokLT applies the LT predicate on the "input_price_per_mtok" field.
func InputPricePerMtokLT(v float64) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldLT(FieldInputPricePerMtok, v))
}

// InputPricePerMtokLTE applies the LTE predicate on the "input_price_per_mtok" field.
func InputPricePerMtokLTE(v float64) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldLTE(FieldInputPricePerMtok, v))
}

// InputPricePerMtokIsNil applies the IsNil predicate on the "input_price_per_mtok" field.
func InputPricePerMtokIsNil() predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldIsNull(FieldInputPricePerMtok))
}

// InputPricePerMtokNotNil applies the NotNil predicate on the "input_price_per_mtok" field.
func InputPricePerMtokNotNil() predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldNotNull(FieldInputPricePerMtok))
}

// OutputPricePerMtokEQ applies the EQ predicate on the "output_price_per_mtok" field.
func OutputPricePerMtokEQ(v float64) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldEQ(FieldOutputPricePerMtok, v))
}

// OutputPricePerMtokNEQ applies the NEQ predicate on the "output_price_per_mtok" field.
func OutputPricePerMtokNEQ(v float64) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldNEQ(FieldOutputPricePerMtok, v))
}

// OutputPricePerMtokIn applies the In predicate on the "output_price_per_mtok" field.
func OutputPricePerMtokIn(vs ...float64) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldIn(FieldOutputPricePerMtok, vs...))
}

// OutputPricePerMtokNotIn applies the NotIn predicate on the "output_price_per_mtok" field.
func OutputPricePerMtokNotIn(vs ...float64) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldNotIn(FieldOutputPricePerMtok, vs...))
}

// OutputPricePerMtokGT applies the GT predicate on the "output_price_per_mtok" field.
func OutputPricePerMtokGT(v float64) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldGT(FieldOutputPricePerMtok, v))
}

// OutputPricePerMtokGTE applies the GTE predicate on the "output_price_per_mtok" field.
func OutputPricePerMtokGTE(v float64) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldGTE(FieldOutputPricePerMtok, v))
}

// OutputPricePerMtokLT applies the LT predicate on the "output_price_per_mtok" field.
func OutputPricePerMtokLT(v float64) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldLT(FieldOutputPricePerMtok, v))
}

// OutputPricePerMtokLTE applies the LTE predicate on the "output_price_per_mtok" field.
func OutputPricePerMtokLTE(v float64) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldLTE(FieldOutputPricePerMtok, v))
}

// OutputPricePerMtokIsNil applies the IsNil predicate on the "output_price_per_mtok" field.
func OutputPricePerMtokIsNil() predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldIsNull(FieldOutputPricePerMtok))
}

// OutputPricePerMtokNotNil applies the NotNil predicate on the "output_price_per_mtok" field.
func OutputPricePerMtokNotNil() predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldNotNull(FieldOutputPricePerMtok))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v Tier) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v Tier) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...Tier) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...Tier) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldNotIn(FieldTier, vs...))
}

// TierIsNil applies the IsNil predicate on the "tier" field.
func TierIsNil() predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldIsNull(FieldTier))
}

// TierNotNil applies the NotNil predicate on the "tier" field.
func TierNotNil() predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldNotNull(FieldTier))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldNEQ(FieldEnabled, v))
}

// PricingIsPlaceholderEQ applies the EQ predicate on the "pricing_is_placeholder" field.
func PricingIsPlaceholderEQ(v bool) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldEQ(FieldPricingIsPlaceholder, v))
}

// PricingIsPlaceholderNEQ applies the NEQ predicate on the "pricing_is_placeholder" field.
func PricingIsPlaceholderNEQ(v bool) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldNEQ(FieldPricingIsPlaceholder, v))
}

// SortOrderEQ applies the EQ predicate on the "sort_order" field.
func SortOrderEQ(v int) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldEQ(FieldSortOrder, v))
}

// SortOrderNEQ applies the NEQ predicate on the "sort_order" field.
func SortOrderNEQ(v int) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldNEQ(FieldSortOrder, v))
}

// SortOrderIn applies the In predicate on the "sort_order" field.
func SortOrderIn(vs ...int) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldIn(FieldSortOrder, vs...))
}

// SortOrderNotIn applies the NotIn predicate on the "sort_order" field.
func SortOrderNotIn(vs ...int) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldNotIn(FieldSortOrder, vs...))
}

// SortOrderGT applies the GT predicate on the "sort_order" field.
func SortOrderGT(v int) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldGT(FieldSortOrder, v))
}

// SortOrderGTE applies the GTE predicate on the "sort_order" field.
func SortOrderGTE(v int) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldGTE(FieldSortOrder, v))
}

// SortOrderLT applies the LT predicate on the "sort_order" field.
func SortOrderLT(v int) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldLT(FieldSortOrder, v))
}

// SortOrderLTE applies the LTE predicate on the "sort_order" field.
func SortOrderLTE(v int) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldLTE(FieldSortOrder, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ModelCatalogEntry) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ModelCatalogEntry) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ModelCatalogEntry) predicate.ModelCatalogEntry {
	return predicate.ModelCatalogEntry(sql.NotPredicates(p))
}
