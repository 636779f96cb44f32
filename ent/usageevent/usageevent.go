// Code generated by ent, DO NOT EDIT.

package usageevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the usageevent type in the database.
	Label = "usage_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldFeature holds the string denoting the feature field in the database.
	FieldFeature = "feature"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldModelID holds the string denoting the model_id field in the database.
	FieldModelID = "model_id"
	// FieldModelSource holds the string denoting the model_source field in the database.
	FieldModelSource = "model_source"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldLatencyMs holds the string denoting the latency_ms field in the database.
	FieldLatencyMs = "latency_ms"
	// FieldInputTokens holds the string denoting the input_tokens field in the database.
	FieldInputTokens = "input_tokens"
	// FieldOutputTokens holds the string denoting the output_tokens field in the database.
	FieldOutputTokens = "output_tokens"
	// FieldTotalTokens holds the string denoting the total_tokens field in the database.
	FieldTotalTokens = "total_tokens"
	// FieldEstimatedCostUsd holds the string denoting the estimated_cost_usd field in the database.
	FieldEstimatedCostUsd = "estimated_cost_usd"
	// FieldCacheStatus holds the string denoting the cache_status field in the database.
	FieldCacheStatus = "cache_status"
	// FieldRequestFingerprint holds the string denoting the request_fingerprint field in the database.
	FieldRequestFingerprint = "request_fingerprint"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the usageevent in the database.
	Table = "usage_events"
)

// Columns holds all SQL columns for usageevent fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldFeature,
	FieldProvider,
	FieldModelID,
	FieldModelSource,
	FieldStatus,
	FieldLatencyMs,
	FieldInputTokens,
	FieldOutputTokens,
	FieldTotalTokens,
	FieldEstimatedCostUsd,
	FieldCacheStatus,
	FieldRequestFingerprint,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// ModelSource defines the type for the "model_source" enum field.
type ModelSource string

// ModelSource values.
const (
	ModelSourceFeatureOverride ModelSource = "feature_override"
	ModelSourceGlobalDefault   ModelSource = "global_default"
	ModelSourceDefault         ModelSource = "default"
)

func (ms ModelSource) String() string {
	return string(ms)
}

// ModelSourceValidator is a validator for the "model_source" field enum values. It is called by the builders before save.
func ModelSourceValidator(ms ModelSource) error {
	switch ms {
	case ModelSourceFeatureOverride, ModelSourceGlobalDefault, ModelSourceDefault:
		return nil
	default:
		return fmt.Errorf("usageevent: invalid enum value for model_source field: %q", ms)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusSuccess             Status = "success"
	StatusTimeout             Status = "timeout"
	StatusError               Status = "error"
	StatusCacheHit            Status = "cache_hit"
	StatusSkippedUnconfigured Status = "skipped_unconfigured"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusSuccess, StatusTimeout, StatusError, StatusCacheHit, StatusSkippedUnconfigured:
		return nil
	default:
		return fmt.Errorf("usageevent: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the UsageEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByFeature orders the results by the feature field.
func ByFeature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeature, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByModelID orders the results by the model_id field.
func ByModelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelID, opts...).ToFunc()
}

// ByModelSource orders the results by the model_source field.
func ByModelSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelSource, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByLatencyMs orders the results by the latency_ms field.
func ByLatencyMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatencyMs, opts...).ToFunc()
}

// ByInputTokens orders the results by the input_tokens field.
func ByInputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputTokens, opts...).ToFunc()
}

// ByOutputTokens orders the results by the output_tokens field.
func ByOutputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputTokens, opts...).ToFunc()
}

// ByTotalTokens orders the results by the total_tokens field.
func ByTotalTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTokens, opts...).ToFunc()
}

// ByEstimatedCostUsd orders the results by the estimated_cost_usd field.
func ByEstimatedCostUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedCostUsd, opts...).ToFunc()
}

// ByCacheStatus orders the results by the cache_status field.
func ByCacheStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCacheStatus, opts...).ToFunc()
}

// ByRequestFingerprint orders the results by the request_fingerprint field.
func ByRequestFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestFingerprint, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
