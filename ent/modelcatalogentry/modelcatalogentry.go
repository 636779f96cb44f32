// Code generated by ent, DO NOT EDIT.

package modelcatalogentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the modelcatalogentry type in the database.
	Label = "model_catalog_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldModelID holds the string denoting the model_id field in the database.
	FieldModelID = "model_id"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldInputPricePerMtok holds the string denoting the input_price_per_mtok field in the database.
	FieldInputPricePerMtok = "input_price_per_mtok"
	// FieldOutputPricePerMtok holds the string denoting the output_price_per_mtok field in the database.
	FieldOutputPricePerMtok = "output_price_per_mtok"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldPricingIsPlaceholder holds the string denoting the pricing_is_placeholder field in the database.
	FieldPricingIsPlaceholder = "pricing_is_placeholder"
	// FieldSortOrder holds the string denoting the sort_order field in the database.
	FieldSortOrder = "sort_order"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the modelcatalogentry in the database.
	Table = "model_catalog_entries"
)

// Columns holds all SQL columns for modelcatalogentry fields.
var Columns = []string{
	FieldID,
	FieldProvider,
	FieldModelID,
	FieldDisplayName,
	FieldInputPricePerMtok,
	FieldOutputPricePerMtok,
	FieldTier,
	FieldEnabled,
	FieldPricingIsPlaceholder,
	FieldSortOrder,
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
	// ModelIDValidator is a validator for the "model_id" field. It is called by the builders before save.
	ModelIDValidator func(string) error
	// DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	DisplayNameValidator func(string) error
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultPricingIsPlaceholder holds the default value on creation for the "pricing_is_placeholder" field.
	DefaultPricingIsPlaceholder bool
	// DefaultSortOrder holds the default value on creation for the "sort_order" field.
	DefaultSortOrder int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Provider defines the type for the "provider" enum field.
type Provider string

// Provider values.
const (
	ProviderOpenai    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

func (pr Provider) String() string {
	return string(pr)
}

// ProviderValidator is a validator for the "provider" field enum values. It is called by the builders before save.
func ProviderValidator(pr Provider) error {
	switch pr {
	case ProviderOpenai, ProviderAnthropic:
		return nil
	default:
		return fmt.Errorf("modelcatalogentry: invalid enum value for provider field: %q", pr)
	}
}

// Tier defines the type for the "tier" enum field.
type Tier string

// Tier values.
const (
	TierStandard Tier = "standard"
	TierFlex     Tier = "flex"
	TierPriority Tier = "priority"
)

func (t Tier) String() string {
	return string(t)
}

// TierValidator is a validator for the "tier" field enum values. It is called by the builders before save.
func TierValidator(t Tier) error {
	switch t {
	case TierStandard, TierFlex, TierPriority:
		return nil
	default:
		return fmt.Errorf("modelcatalogentry: invalid enum value for tier field: %q", t)
	}
}

// OrderOption defines the ordering options for the ModelCatalogEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByModelID orders the results by the model_id field.
func ByModelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelID, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByInputPricePerMtok orders the results by the input_price_per_mtok field.
func ByInputPricePerMtok(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputPricePerMtok, opts...).ToFunc()
}

// ByOutputPricePerMtok orders the results by the output_price_per_mtok field.
func ByOutputPricePerMtok(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputPricePerMtok, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByPricingIsPlaceholder orders the results by the pricing_is_placeholder field.
func ByPricingIsPlaceholder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPricingIsPlaceholder, opts...).ToFunc()
}

// BySortOrder orders the results by the sort_order field.
func BySortOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSortOrder, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
