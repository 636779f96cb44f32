// Code generated by ent, DO NOT EDIT.

package modelpreference

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the modelpreference type in the database.
	Label = "model_preference"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldFeature holds the string denoting the feature field in the database.
	FieldFeature = "feature"
	// FieldCatalogID holds the string denoting the catalog_id field in the database.
	FieldCatalogID = "catalog_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the modelpreference in the database.
	Table = "model_preferences"
)

// Columns holds all SQL columns for modelpreference fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldFeature,
	FieldCatalogID,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// CatalogIDValidator is a validator for the "catalog_id" field. It is called by the builders before save.
	CatalogIDValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Feature defines the type for the "feature" enum field.
type Feature string

// Feature values.
const (
	FeatureGlobalDefault     Feature = "global_default"
	FeatureBriefingNarrative Feature = "briefing_narrative"
	FeatureIntakeExtraction  Feature = "intake_extraction"
)

func (f Feature) String() string {
	return string(f)
}

// FeatureValidator is a validator for the "feature" field enum values. It is called by the builders before save.
func FeatureValidator(f Feature) error {
	switch f {
	case FeatureGlobalDefault, FeatureBriefingNarrative, FeatureIntakeExtraction:
		return nil
	default:
		return fmt.Errorf("modelpreference: invalid enum value for feature field: %q", f)
	}
}

// OrderOption defines the ordering options for the ModelPreference queries.
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

// ByCatalogID orders the results by the catalog_id field.
func ByCatalogID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCatalogID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
