// Code generated by ent, DO NOT EDIT.

package usageevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/missionctl/missionctl/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldContainsFold(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldOwnerID, v))
}

// Feature applies equality check predicate on the "feature" field. It's identical to FeatureEQ.
func Feature(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldFeature, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldProvider, v))
}

// ModelID applies equality check predicate on the "model_id" field. It's identical to ModelIDEQ.
func ModelID(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldModelID, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldOutputTokens, v))
}

// TotalTokens applies equality check predicate on the "total_tokens" field. It's identical to TotalTokensEQ.
func TotalTokens(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldTotalTokens, v))
}

// EstimatedCostUsd applies equality check predicate on the "estimated_cost_usd" field. It's identical to EstimatedCostUsdEQ.
func EstimatedCostUsd(v float64) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldEstimatedCostUsd, v))
}

// CacheStatus applies equality check predicate on the "cache_status" field. It's identical to CacheStatusEQ.
func CacheStatus(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldCacheStatus, v))
}

// RequestFingerprint applies equality check predicate on the "request_fingerprint" field. It's identical to RequestFingerprintEQ.
func RequestFingerprint(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldRequestFingerprint, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldContainsFold(FieldOwnerID, v))
}

// FeatureEQ applies the EQ predicate on the "feature" field.
func FeatureEQ(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldFeature, v))
}

// FeatureNEQ applies the NEQ predicate on the "feature" field.
func FeatureNEQ(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldFeature, v))
}

// FeatureIn applies the In predicate on the "feature" field.
func FeatureIn(vs ...string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldFeature, vs...))
}

// FeatureNotIn applies the NotIn predicate on the "feature" field.
func FeatureNotIn(vs ...string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldFeature, vs...))
}

// FeatureGT applies the GT predicate on the "feature" field.
func FeatureGT(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldFeature, v))
}

// FeatureGTE applies the GTE predicate on the "feature" field.
func FeatureGTE(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldFeature, v))
}

// FeatureLT applies the LT predicate on the "feature" field.
func FeatureLT(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldFeature, v))
}

// FeatureLTE applies the LTE predicate on the "feature" field.
func FeatureLTE(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldFeature, v))
}

// FeatureContains applies the Contains predicate on the "feature" field.
func FeatureContains(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldContains(FieldFeature, v))
}

// FeatureHasPrefix applies the HasPrefix predicate on the "feature" field.
func FeatureHasPrefix(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldHasPrefix(FieldFeature, v))
}

// FeatureHasSuffix applies the HasSuffix predicate on the "feature" field.
func FeatureHasSuffix(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldHasSuffix(FieldFeature, v))
}

// FeatureEqualFold applies the EqualFold predicate on the "feature" field.
func FeatureEqualFold(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEqualFold(FieldFeature, v))
}

// FeatureContainsFold applies the ContainsFold predicate on the "feature" field.
func FeatureContainsFold(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldContainsFold(FieldFeature, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldContainsFold(FieldProvider, v))
}

// ModelIDEQ applies the EQ predicate on the "model_id" field.
func ModelIDEQ(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldModelID, v))
}

// ModelIDNEQ applies the NEQ predicate on the "model_id" field.
func ModelIDNEQ(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldModelID, v))
}

// ModelIDIn applies the In predicate on the "model_id" field.
func ModelIDIn(vs ...string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldModelID, vs...))
}

// ModelIDNotIn applies the NotIn predicate on the "model_id" field.
func ModelIDNotIn(vs ...string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldModelID, vs...))
}

// ModelIDGT applies the GT predicate on the "model_id" field.
func ModelIDGT(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldModelID, v))
}

// ModelIDGTE applies the GTE predicate on the "model_id" field.
func ModelIDGTE(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldModelID, v))
}

// ModelIDLT applies the LT predicate on the "model_id" field.
func ModelIDLT(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldModelID, v))
}

// ModelIDLTE applies the LTE predicate on the "model_id" field.
func ModelIDLTE(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldModelID, v))
}

// ModelIDContains applies the Contains predicate on the "model_id" field.
func ModelIDContains(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldContains(FieldModelID, v))
}

// ModelIDHasPrefix applies the HasPrefix predicate on the "model_id" field.
func ModelIDHasPrefix(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldHasPrefix(FieldModelID, v))
}

// ModelIDHasSuffix applies the HasSuffix predicate on the "model_id" field.
func ModelIDHasSuffix(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldHasSuffix(FieldModelID, v))
}

// ModelIDEqualFold applies the EqualFold predicate on the "model_id" field.
func ModelIDEqualFold(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEqualFold(FieldModelID, v))
}

// ModelIDContainsFold applies the ContainsFold predicate on the "model_id" field.
func ModelIDContainsFold(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldContainsFold(FieldModelID, v))
}

// ModelSourceEQ applies the EQ predicate on the "model_source" field.
func ModelSourceEQ(v ModelSource) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldModelSource, v))
}

// ModelSourceNEQ applies the NEQ predicate on the "model_source" field.
func ModelSourceNEQ(v ModelSource) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldModelSource, v))
}

// ModelSourceIn applies the In predicate on the "model_source" field.
func ModelSourceIn(vs ...ModelSource) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldModelSource, vs...))
}

// ModelSourceNotIn applies the NotIn predicate on the "model_source" field.
func ModelSourceNotIn(vs ...ModelSource) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldModelSource, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldStatus, vs...))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldLatencyMs, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldInputTokens, v))
}

// InputTokensIsNil applies the IsNil predicate on the "input_tokens" field.
func InputTokensIsNil() predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIsNull(FieldInputTokens))
}

// InputTokensNotNil applies the NotNil predicate on the "input_tokens" field.
func InputTokensNotNil() predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotNull(FieldInputTokens))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldOutputTokens, v))
}

// OutputTokensIsNil applies the IsNil predicate on the "output_tokens" field.
func OutputTokensIsNil() predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIsNull(FieldOutputTokens))
}

// OutputTokensNotNil applies the NotNil predicate on the "output_tokens" field.
func OutputTokensNotNil() predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotNull(FieldOutputTokens))
}

// TotalTokensEQ applies the EQ predicate on the "total_tokens" field.
func TotalTokensEQ(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalTokensNEQ applies the NEQ predicate on the "total_tokens" field.
func TotalTokensNEQ(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldTotalTokens, v))
}

// TotalTokensIn applies the In predicate on the "total_tokens" field.
func TotalTokensIn(vs ...int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldTotalTokens, vs...))
}

// TotalTokensNotIn applies the NotIn predicate on the "total_tokens" field.
func TotalTokensNotIn(vs ...int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldTotalTokens, vs...))
}

// TotalTokensGT applies the GT predicate on the "total_tokens" field.
func TotalTokensGT(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldTotalTokens, v))
}

// TotalTokensGTE applies the GTE predicate on the "total_tokens" field.
func TotalTokensGTE(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldTotalTokens, v))
}

// TotalTokensLT applies the LT predicate on the "total_tokens" field.
func TotalTokensLT(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldTotalTokens, v))
}

// TotalTokensLTE applies the LTE predicate on the "total_tokens" field.
func TotalTokensLTE(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldTotalTokens, v))
}

// TotalTokensIsNil applies the IsNil predicate on the "total_tokens" field.
func TotalTokensIsNil() predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIsNull(FieldTotalTokens))
}

// TotalTokensNotNil applies the NotNil predicate on the "total_tokens" field.
func TotalTokensNotNil() predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotNull(FieldTotalTokens))
}

// EstimatedCostUsdEQ applies the EQ predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdEQ(v float64) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdNEQ applies the NEQ predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdNEQ(v float64) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdIn applies the In predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdIn(vs ...float64) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldEstimatedCostUsd, vs...))
}

// EstimatedCostUsdNotIn applies the NotIn predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdNotIn(vs ...float64) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldEstimatedCostUsd, vs...))
}

// EstimatedCostUsdGT applies the GT predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdGT(v float64) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdGTE applies the GTE predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdGTE(v float64) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdLT applies the LT predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdLT(v float64) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdLTE applies the LTE predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdLTE(v float64) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdIsNil applies the IsNil predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdIsNil() predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIsNull(FieldEstimatedCostUsd))
}

// EstimatedCostUsdNotNil applies the NotNil predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdNotNil() predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotNull(FieldEstimatedCostUsd))
}

// CacheStatusEQ applies the EQ predicate on the "cache_status" field.
func CacheStatusEQ(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldCacheStatus, v))
}

// CacheStatusNEQ applies the NEQ predicate on the "cache_status" field.
func CacheStatusNEQ(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldCacheStatus, v))
}

// CacheStatusIn applies the In predicate on the "cache_status" field.
func CacheStatusIn(vs ...string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldCacheStatus, vs...))
}

// CacheStatusNotIn applies the NotIn predicate on the "cache_status" field.
func CacheStatusNotIn(vs ...string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldCacheStatus, vs...))
}

// CacheStatusGT applies the GT predicate on the "cache_status" field.
func CacheStatusGT(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldCacheStatus, v))
}

// CacheStatusGTE applies the GTE predicate on the "cache_status" field.
func CacheStatusGTE(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldCacheStatus, v))
}

// CacheStatusLT applies the LT predicate on the "cache_status" field.
func CacheStatusLT(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldCacheStatus, v))
}

// CacheStatusLTE applies the LTE predicate on the "cache_status" field.
func CacheStatusLTE(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldCacheStatus, v))
}

// CacheStatusContains applies the Contains predicate on the "cache_status" field.
func CacheStatusContains(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldContains(FieldCacheStatus, v))
}

// CacheStatusHasPrefix applies the HasPrefix predicate on the "cache_status" field.
func CacheStatusHasPrefix(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldHasPrefix(FieldCacheStatus, v))
}

// CacheStatusHasSuffix applies the HasSuffix predicate on the "cache_status" field.
func CacheStatusHasSuffix(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldHasSuffix(FieldCacheStatus, v))
}

// CacheStatusIsNil applies the IsNil predicate on the "cache_status" field.
func CacheStatusIsNil() predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIsNull(FieldCacheStatus))
}

// CacheStatusNotNil applies the NotNil predicate on the "cache_status" field.
func CacheStatusNotNil() predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotNull(FieldCacheStatus))
}

// CacheStatusEqualFold applies the EqualFold predicate on the "cache_status" field.
func CacheStatusEqualFold(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEqualFold(FieldCacheStatus, v))
}

// CacheStatusContainsFold applies the ContainsFold predicate on the "cache_status" field.
func CacheStatusContainsFold(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldContainsFold(FieldCacheStatus, v))
}

// RequestFingerprintEQ applies the EQ predicate on the "request_fingerprint" field.
func RequestFingerprintEQ(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldRequestFingerprint, v))
}

// RequestFingerprintNEQ applies the NEQ predicate on the "request_fingerprint" field.
func RequestFingerprintNEQ(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldRequestFingerprint, v))
}

// RequestFingerprintIn applies the In predicate on the "request_fingerprint" field.
func RequestFingerprintIn(vs ...string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldRequestFingerprint, vs...))
}

// RequestFingerprintNotIn applies the NotIn predicate on the "request_fingerprint" field.
func RequestFingerprintNotIn(vs ...string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldRequestFingerprint, vs...))
}

// RequestFingerprintGT applies the GT predicate on the "request_fingerprint" field.
func RequestFingerprintGT(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldRequestFingerprint, v))
}

// RequestFingerprintGTE applies the GTE predicate on the "request_fingerprint" field.
func RequestFingerprintGTE(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldRequestFingerprint, v))
}

// RequestFingerprintLT applies the LT predicate on the "request_fingerprint" field.
func RequestFingerprintLT(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldRequestFingerprint, v))
}

// RequestFingerprintLTE applies the LTE predicate on the "request_fingerprint" field.
func RequestFingerprintLTE(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldRequestFingerprint, v))
}

// RequestFingerprintContains applies the Contains predicate on the "request_fingerprint" field.
func RequestFingerprintContains(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldContains(FieldRequestFingerprint, v))
}

// RequestFingerprintHasPrefix applies the HasPrefix predicate on the "request_fingerprint" field.
func RequestFingerprintHasPrefix(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldHasPrefix(FieldRequestFingerprint, v))
}

// RequestFingerprintHasSuffix applies the HasSuffix predicate on the "request_fingerprint" field.
func RequestFingerprintHasSuffix(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldHasSuffix(FieldRequestFingerprint, v))
}

// RequestFingerprintIsNil applies the IsNil predicate on the "request_fingerprint" field.
func RequestFingerprintIsNil() predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIsNull(FieldRequestFingerprint))
}

// RequestFingerprintNotNil applies the NotNil predicate on the "request_fingerprint" field.
func RequestFingerprintNotNil() predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotNull(FieldRequestFingerprint))
}

// RequestFingerprintEqualFold applies the EqualFold predicate on the "request_fingerprint" field.
func RequestFingerprintEqualFold(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEqualFold(FieldRequestFingerprint, v))
}

// RequestFingerprintContainsFold applies the ContainsFold predicate on the "request_fingerprint" field.
func RequestFingerprintContainsFold(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldContainsFold(FieldRequestFingerprint, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UsageEvent) predicate.UsageEvent {
	return predicate.UsageEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UsageEvent) predicate.UsageEvent {
	return predicate.UsageEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UsageEvent) predicate.UsageEvent {
	return predicate.UsageEvent(sql.NotPredicates(p))
}
