// Code generated by ent, DO NOT EDIT.

package application

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the application type in the database.
	Label = "application"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldRag holds the string denoting the rag field in the database.
	FieldRag = "rag"
	// FieldPriorityWeight holds the string denoting the priority_weight field in the database.
	FieldPriorityWeight = "priority_weight"
	// FieldPortfolioRank holds the string denoting the portfolio_rank field in the database.
	FieldPortfolioRank = "portfolio_rank"
	// FieldStakeholders holds the string denoting the stakeholders field in the database.
	FieldStakeholders = "stakeholders"
	// FieldKeywords holds the string denoting the keywords field in the database.
	FieldKeywords = "keywords"
	// FieldStatusSummary holds the string denoting the status_summary field in the database.
	FieldStatusSummary = "status_summary"
	// FieldNextMilestone holds the string denoting the next_milestone field in the database.
	FieldNextMilestone = "next_milestone"
	// FieldTargetDate holds the string denoting the target_date field in the database.
	FieldTargetDate = "target_date"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the application in the database.
	Table = "applications"
)

// Columns holds all SQL columns for application fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldName,
	FieldPhase,
	FieldRag,
	FieldPriorityWeight,
	FieldPortfolioRank,
	FieldStakeholders,
	FieldKeywords,
	FieldStatusSummary,
	FieldNextMilestone,
	FieldTargetDate,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultPriorityWeight holds the default value on creation for the "priority_weight" field.
	DefaultPriorityWeight int
	// PriorityWeightValidator is a validator for the "priority_weight" field. It is called by the builders before save.
	PriorityWeightValidator func(int) error
	// PortfolioRankValidator is a validator for the "portfolio_rank" field. It is called by the builders before save.
	PortfolioRankValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Phase defines the type for the "phase" enum field.
type Phase string

// PhaseIntake is the default value of the Phase enum.
const DefaultPhase = PhaseIntake

// Phase values.
const (
	PhaseIntake      Phase = "intake"
	PhaseDiscovery   Phase = "discovery"
	PhaseDesign      Phase = "design"
	PhaseBuild       Phase = "build"
	PhaseTest        Phase = "test"
	PhaseTraining    Phase = "training"
	PhaseGoLive      Phase = "go_live"
	PhaseHypercare   Phase = "hypercare"
	PhaseSteadyState Phase = "steady_state"
	PhaseSundown     Phase = "sundown"
)

func (ph Phase) String() string {
	return string(ph)
}

// PhaseValidator is a validator for the "phase" field enum values. It is called by the builders before save.
func PhaseValidator(ph Phase) error {
	switch ph {
	case PhaseIntake, PhaseDiscovery, PhaseDesign, PhaseBuild, PhaseTest, PhaseTraining, PhaseGoLive, PhaseHypercare, PhaseSteadyState, PhaseSundown:
		return nil
	default:
		return fmt.Errorf("application: invalid enum value for phase field: %q", ph)
	}
}

// Rag defines the type for the "rag" enum field.
type Rag string

// RagGreen is the default value of the Rag enum.
const DefaultRag = RagGreen

// Rag values.
const (
	RagGreen  Rag = "green"
	RagYellow Rag = "yellow"
	RagRed    Rag = "red"
)

func (r Rag) String() string {
	return string(r)
}

// RagValidator is a validator for the "rag" field enum values. It is called by the builders before save.
func RagValidator(r Rag) error {
	switch r {
	case RagGreen, RagYellow, RagRed:
		return nil
	default:
		return fmt.Errorf("application: invalid enum value for rag field: %q", r)
	}
}

// OrderOption defines the ordering options for the Application queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByRag orders the results by the rag field.
func ByRag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRag, opts...).ToFunc()
}

// ByPriorityWeight orders the results by the priority_weight field.
func ByPriorityWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriorityWeight, opts...).ToFunc()
}

// ByPortfolioRank orders the results by the portfolio_rank field.
func ByPortfolioRank(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPortfolioRank, opts...).ToFunc()
}

// ByStatusSummary orders the results by the status_summary field.
func ByStatusSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusSummary, opts...).ToFunc()
}

// ByNextMilestone orders the results by the next_milestone field.
func ByNextMilestone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextMilestone, opts...).ToFunc()
}

// ByTargetDate orders the results by the target_date field.
func ByTargetDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetDate, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
