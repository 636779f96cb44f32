// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/missionctl/missionctl/ent/application"
	"github.com/missionctl/missionctl/ent/calendarevent"
	"github.com/missionctl/missionctl/ent/calendarsnapshot"
	"github.com/missionctl/missionctl/ent/checklistitem"
	"github.com/missionctl/missionctl/ent/commitment"
	"github.com/missionctl/missionctl/ent/focusdirective"
	"github.com/missionctl/missionctl/ent/inboxitem"
	"github.com/missionctl/missionctl/ent/ingestionevent"
	"github.com/missionctl/missionctl/ent/modelcatalogentry"
	"github.com/missionctl/missionctl/ent/modelpreference"
	"github.com/missionctl/missionctl/ent/plan"
	"github.com/missionctl/missionctl/ent/predicate"
	"github.com/missionctl/missionctl/ent/project"
	"github.com/missionctl/missionctl/ent/statusupdate"
	"github.com/missionctl/missionctl/ent/task"
	"github.com/missionctl/missionctl/ent/taskdependency"
	"github.com/missionctl/missionctl/ent/usageevent"
	"github.com/missionctl/missionctl/ent/usersession"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeApplication       = "Application"
	TypeCalendarEvent     = "CalendarEvent"
	TypeCalendarSnapshot  = "CalendarSnapshot"
	TypeChecklistItem     = "ChecklistItem"
	TypeCommitment        = "Commitment"
	TypeFocusDirective    = "FocusDirective"
	TypeInboxItem         = "InboxItem"
	TypeIngestionEvent    = "IngestionEvent"
	TypeModelCatalogEntry = "ModelCatalogEntry"
	TypeModelPreference   = "ModelPreference"
	TypePlan              = "Plan"
	TypeProject           = "Project"
	TypeStatusUpdate      = "StatusUpdate"
	TypeTask              = "Task"
	TypeTaskDependency    = "TaskDependency"
	TypeUsageEvent        = "UsageEvent"
	TypeUserSession       = "UserSession"
)

// ApplicationMutation represents an operation that mutates the Application nodes in the graph.
type ApplicationMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	owner_id           *string
	name               *string
	phase              *application.Phase
	rag                *application.Rag
	priority_weight    *int
	addpriority_weight *int
	portfolio_rank     *int
	addportfolio_rank  *int
	stakeholders       *[]string
	appendstakeholders []string
	keywords           *[]string
	appendkeywords     []string
	status_summary     *string
	next_milestone     *string
	target_date        *time.Time
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Application, error)
	predicates         []predicate.Application
}

var _ ent.Mutation = (*ApplicationMutation)(nil)

// applicationOption allows management of the mutation configuration using functional options.
type applicationOption func(*ApplicationMutation)

// newApplicationMutation creates new mutation for the Application entity.
func newApplicationMutation(c config, op Op, opts ...applicationOption) *ApplicationMutation {
	m := &ApplicationMutation{
		config:        c,
		op:            op,
		typ:           TypeApplication,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApplicationID sets the ID field of the mutation.
func withApplicationID(id string) applicationOption {
	return func(m *ApplicationMutation) {
		var (
			err   error
			once  sync.Once
			value *Application
		)
		m.oldValue = func(ctx context.Context) (*Application, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Application.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApplication sets the old Application of the mutation.
func withApplication(node *Application) applicationOption {
	return func(m *ApplicationMutation) {
		m.oldValue = func(context.Context) (*Application, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApplicationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApplicationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Application entities.
func (m *ApplicationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApplicationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApplicationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Application.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *ApplicationMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *ApplicationMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *ApplicationMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetName sets the "name" field.
func (m *ApplicationMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ApplicationMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ApplicationMutation) ResetName() {
	m.name = nil
}

// SetPhase sets the "phase" field.
func (m *ApplicationMutation) SetPhase(a application.Phase) {
	m.phase = &a
}

// Phase returns the value of the "phase" field in the mutation.
func (m *ApplicationMutation) Phase() (r application.Phase, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldPhase(ctx context.Context) (v application.Phase, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *ApplicationMutation) ResetPhase() {
	m.phase = nil
}

// SetRag sets the "rag" field.
func (m *ApplicationMutation) SetRag(a application.Rag) {
	m.rag = &a
}

// Rag returns the value of the "rag" field in the mutation.
func (m *ApplicationMutation) Rag() (r application.Rag, exists bool) {
	v := m.rag
	if v == nil {
		return
	}
	return *v, true
}

// OldRag returns the old "rag" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldRag(ctx context.Context) (v application.Rag, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRag: %w", err)
	}
	return oldValue.Rag, nil
}

// ResetRag resets all changes to the "rag" field.
func (m *ApplicationMutation) ResetRag() {
	m.rag = nil
}

// SetPriorityWeight sets the "priority_weight" field.
func (m *ApplicationMutation) SetPriorityWeight(i int) {
	m.priority_weight = &i
	m.addpriority_weight = nil
}

// PriorityWeight returns the value of the "priority_weight" field in the mutation.
func (m *ApplicationMutation) PriorityWeight() (r int, exists bool) {
	v := m.priority_weight
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorityWeight returns the old "priority_weight" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldPriorityWeight(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorityWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorityWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorityWeight: %w", err)
	}
	return oldValue.PriorityWeight, nil
}

// AddPriorityWeight adds i to the "priority_weight" field.
func (m *ApplicationMutation) AddPriorityWeight(i int) {
	if m.addpriority_weight != nil {
		*m.addpriority_weight += i
	} else {
		m.addpriority_weight = &i
	}
}

// AddedPriorityWeight returns the value that was added to the "priority_weight" field in this mutation.
func (m *ApplicationMutation) AddedPriorityWeight() (r int, exists bool) {
	v := m.addpriority_weight
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriorityWeight resets all changes to the "priority_weight" field.
func (m *ApplicationMutation) ResetPriorityWeight() {
	m.priority_weight = nil
	m.addpriority_weight = nil
}

// SetPortfolioRank sets the "portfolio_rank" field.
func (m *ApplicationMutation) SetPortfolioRank(i int) {
	m.portfolio_rank = &i
	m.addportfolio_rank = nil
}

// PortfolioRank returns the value of the "portfolio_rank" field in the mutation.
func (m *ApplicationMutation) PortfolioRank() (r int, exists bool) {
	v := m.portfolio_rank
	if v == nil {
		return
	}
	return *v, true
}

// OldPortfolioRank returns the old "portfolio_rank" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldPortfolioRank(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPortfolioRank is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPortfolioRank requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPortfolioRank: %w", err)
	}
	return oldValue.PortfolioRank, nil
}

// AddPortfolioRank adds i to the "portfolio_rank" field.
func (m *ApplicationMutation) AddPortfolioRank(i int) {
	if m.addportfolio_rank != nil {
		*m.addportfolio_rank += i
	} else {
		m.addportfolio_rank = &i
	}
}

// AddedPortfolioRank returns the value that was added to the "portfolio_rank" field in this mutation.
func (m *ApplicationMutation) AddedPortfolioRank() (r int, exists bool) {
	v := m.addportfolio_rank
	if v == nil {
		return
	}
	return *v, true
}

// ClearPortfolioRank clears the value of the "portfolio_rank" field.
func (m *ApplicationMutation) ClearPortfolioRank() {
	m.portfolio_rank = nil
	m.addportfolio_rank = nil
	m.clearedFields[application.FieldPortfolioRank] = struct{}{}
}

// PortfolioRankCleared returns if the "portfolio_rank" field was cleared in this mutation.
func (m *ApplicationMutation) PortfolioRankCleared() bool {
	_, ok := m.clearedFields[application.FieldPortfolioRank]
	return ok
}

// ResetPortfolioRank resets all changes to the "portfolio_rank" field.
func (m *ApplicationMutation) ResetPortfolioRank() {
	m.portfolio_rank = nil
	m.addportfolio_rank = nil
	delete(m.clearedFields, application.FieldPortfolioRank)
}

// SetStakeholders sets the "stakeholders" field.
func (m *ApplicationMutation) SetStakeholders(s []string) {
	m.stakeholders = &s
	m.appendstakeholders = nil
}

// Stakeholders returns the value of the "stakeholders" field in the mutation.
func (m *ApplicationMutation) Stakeholders() (r []string, exists bool) {
	v := m.stakeholders
	if v == nil {
		return
	}
	return *v, true
}

// OldStakeholders returns the old "stakeholders" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldStakeholders(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStakeholders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStakeholders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStakeholders: %w", err)
	}
	return oldValue.Stakeholders, nil
}

// AppendStakeholders adds s to the "stakeholders" field.
func (m *ApplicationMutation) AppendStakeholders(s []string) {
	m.appendstakeholders = append(m.appendstakeholders, s...)
}

// AppendedStakeholders returns the list of values that were appended to the "stakeholders" field in this mutation.
func (m *ApplicationMutation) AppendedStakeholders() ([]string, bool) {
	if len(m.appendstakeholders) == 0 {
		return nil, false
	}
	return m.appendstakeholders, true
}

// ClearStakeholders clears the value of the "stakeholders" field.
func (m *ApplicationMutation) ClearStakeholders() {
	m.stakeholders = nil
	m.appendstakeholders = nil
	m.clearedFields[application.FieldStakeholders] = struct{}{}
}

// StakeholdersCleared returns if the "stakeholders" field was cleared in this mutation.
func (m *ApplicationMutation) StakeholdersCleared() bool {
	_, ok := m.clearedFields[application.FieldStakeholders]
	return ok
}

// ResetStakeholders resets all changes to the "stakeholders" field.
func (m *ApplicationMutation) ResetStakeholders() {
	m.stakeholders = nil
	m.appendstakeholders = nil
	delete(m.clearedFields, application.FieldStakeholders)
}

// SetKeywords sets the "keywords" field.
func (m *ApplicationMutation) SetKeywords(s []string) {
	m.keywords = &s
	m.appendkeywords = nil
}

// Keywords returns the value of the "keywords" field in the mutation.
func (m *ApplicationMutation) Keywords() (r []string, exists bool) {
	v := m.keywords
	if v == nil {
		return
	}
	return *v, true
}

// OldKeywords returns the old "keywords" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldKeywords(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeywords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeywords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeywords: %w", err)
	}
	return oldValue.Keywords, nil
}

// AppendKeywords adds s to the "keywords" field.
func (m *ApplicationMutation) AppendKeywords(s []string) {
	m.appendkeywords = append(m.appendkeywords, s...)
}

// AppendedKeywords returns the list of values that were appended to the "keywords" field in this mutation.
func (m *ApplicationMutation) AppendedKeywords() ([]string, bool) {
	if len(m.appendkeywords) == 0 {
		return nil, false
	}
	return m.appendkeywords, true
}

// ClearKeywords clears the value of the "keywords" field.
func (m *ApplicationMutation) ClearKeywords() {
	m.keywords = nil
	m.appendkeywords = nil
	m.clearedFields[application.FieldKeywords] = struct{}{}
}

// KeywordsCleared returns if the "keywords" field was cleared in this mutation.
func (m *ApplicationMutation) KeywordsCleared() bool {
	_, ok := m.clearedFields[application.FieldKeywords]
	return ok
}

// ResetKeywords resets all changes to the "keywords" field.
func (m *ApplicationMutation) ResetKeywords() {
	m.keywords = nil
	m.appendkeywords = nil
	delete(m.clearedFields, application.FieldKeywords)
}

// SetStatusSummary sets the "status_summary" field.
func (m *ApplicationMutation) SetStatusSummary(s string) {
	m.status_summary = &s
}

// StatusSummary returns the value of the "status_summary" field in the mutation.
func (m *ApplicationMutation) StatusSummary() (r string, exists bool) {
	v := m.status_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusSummary returns the old "status_summary" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldStatusSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusSummary: %w", err)
	}
	return oldValue.StatusSummary, nil
}

// ClearStatusSummary clears the value of the "status_summary" field.
func (m *ApplicationMutation) ClearStatusSummary() {
	m.status_summary = nil
	m.clearedFields[application.FieldStatusSummary] = struct{}{}
}

// StatusSummaryCleared returns if the "status_summary" field was cleared in this mutation.
func (m *ApplicationMutation) StatusSummaryCleared() bool {
	_, ok := m.clearedFields[application.FieldStatusSummary]
	return ok
}

// ResetStatusSummary resets all changes to the "status_summary" field.
func (m *ApplicationMutation) ResetStatusSummary() {
	m.status_summary = nil
	delete(m.clearedFields, application.FieldStatusSummary)
}

// SetNextMilestone sets the "next_milestone" field.
func (m *ApplicationMutation) SetNextMilestone(s string) {
	m.next_milestone = &s
}

// NextMilestone returns the value of the "next_milestone" field in the mutation.
func (m *ApplicationMutation) NextMilestone() (r string, exists bool) {
	v := m.next_milestone
	if v == nil {
		return
	}
	return *v, true
}

// OldNextMilestone returns the old "next_milestone" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldNextMilestone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextMilestone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextMilestone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextMilestone: %w", err)
	}
	return oldValue.NextMilestone, nil
}

// ClearNextMilestone clears the value of the "next_milestone" field.
func (m *ApplicationMutation) ClearNextMilestone() {
	m.next_milestone = nil
	m.clearedFields[application.FieldNextMilestone] = struct{}{}
}

// NextMilestoneCleared returns if the "next_milestone" field was cleared in this mutation.
func (m *ApplicationMutation) NextMilestoneCleared() bool {
	_, ok := m.clearedFields[application.FieldNextMilestone]
	return ok
}

// ResetNextMilestone resets all changes to the "next_milestone" field.
func (m *ApplicationMutation) ResetNextMilestone() {
	m.next_milestone = nil
	delete(m.clearedFields, application.FieldNextMilestone)
}

// SetTargetDate sets the "target_date" field.
func (m *ApplicationMutation) SetTargetDate(t time.Time) {
	m.target_date = &t
}

// TargetDate returns the value of the "target_date" field in the mutation.
func (m *ApplicationMutation) TargetDate() (r time.Time, exists bool) {
	v := m.target_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetDate returns the old "target_date" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldTargetDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetDate: %w", err)
	}
	return oldValue.TargetDate, nil
}

// ClearTargetDate clears the value of the "target_date" field.
func (m *ApplicationMutation) ClearTargetDate() {
	m.target_date = nil
	m.clearedFields[application.FieldTargetDate] = struct{}{}
}

// TargetDateCleared returns if the "target_date" field was cleared in this mutation.
func (m *ApplicationMutation) TargetDateCleared() bool {
	_, ok := m.clearedFields[application.FieldTargetDate]
	return ok
}

// ResetTargetDate resets all changes to the "target_date" field.
func (m *ApplicationMutation) ResetTargetDate() {
	m.target_date = nil
	delete(m.clearedFields, application.FieldTargetDate)
}

// SetCreatedAt sets the "created_at" field.
func (m *ApplicationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApplicationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ApplicationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ApplicationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ApplicationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ApplicationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ApplicationMutation builder.
func (m *ApplicationMutation) Where(ps ...predicate.Application) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApplicationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApplicationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Application, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApplicationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApplicationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Application).
func (m *ApplicationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApplicationMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.owner_id != nil {
		fields = append(fields, application.FieldOwnerID)
	}
	if m.name != nil {
		fields = append(fields, application.FieldName)
	}
	if m.phase != nil {
		fields = append(fields, application.FieldPhase)
	}
	if m.rag != nil {
		fields = append(fields, application.FieldRag)
	}
	if m.priority_weight != nil {
		fields = append(fields, application.FieldPriorityWeight)
	}
	if m.portfolio_rank != nil {
		fields = append(fields, application.FieldPortfolioRank)
	}
	if m.stakeholders != nil {
		fields = append(fields, application.FieldStakeholders)
	}
	if m.keywords != nil {
		fields = append(fields, application.FieldKeywords)
	}
	if m.status_summary != nil {
		fields = append(fields, application.FieldStatusSummary)
	}
	if m.next_milestone != nil {
		fields = append(fields, application.FieldNextMilestone)
	}
	if m.target_date != nil {
		fields = append(fields, application.FieldTargetDate)
	}
	if m.created_at != nil {
		fields = append(fields, application.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, application.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApplicationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case application.FieldOwnerID:
		return m.OwnerID()
	case application.FieldName:
		return m.Name()
	case application.FieldPhase:
		return m.Phase()
	case application.FieldRag:
		return m.Rag()
	case application.FieldPriorityWeight:
		return m.PriorityWeight()
	case application.FieldPortfolioRank:
		return m.PortfolioRank()
	case application.FieldStakeholders:
		return m.Stakeholders()
	case application.FieldKeywords:
		return m.Keywords()
	case application.FieldStatusSummary:
		return m.StatusSummary()
	case application.FieldNextMilestone:
		return m.NextMilestone()
	case application.FieldTargetDate:
		return m.TargetDate()
	case application.FieldCreatedAt:
		return m.CreatedAt()
	case application.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApplicationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case application.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case application.FieldName:
		return m.OldName(ctx)
	case application.FieldPhase:
		return m.OldPhase(ctx)
	case application.FieldRag:
		return m.OldRag(ctx)
	case application.FieldPriorityWeight:
		return m.OldPriorityWeight(ctx)
	case application.FieldPortfolioRank:
		return m.OldPortfolioRank(ctx)
	case application.FieldStakeholders:
		return m.OldStakeholders(ctx)
	case application.FieldKeywords:
		return m.OldKeywords(ctx)
	case application.FieldStatusSummary:
		return m.OldStatusSummary(ctx)
	case application.FieldNextMilestone:
		return m.OldNextMilestone(ctx)
	case application.FieldTargetDate:
		return m.OldTargetDate(ctx)
	case application.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case application.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Application field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case application.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case application.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case application.FieldPhase:
		v, ok := value.(application.Phase)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case application.FieldRag:
		v, ok := value.(application.Rag)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRag(v)
		return nil
	case application.FieldPriorityWeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorityWeight(v)
		return nil
	case application.FieldPortfolioRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPortfolioRank(v)
		return nil
	case application.FieldStakeholders:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStakeholders(v)
		return nil
	case application.FieldKeywords:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeywords(v)
		return nil
	case application.FieldStatusSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusSummary(v)
		return nil
	case application.FieldNextMilestone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextMilestone(v)
		return nil
	case application.FieldTargetDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetDate(v)
		return nil
	case application.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case application.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Application field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApplicationMutation) AddedFields() []string {
	var fields []string
	if m.addpriority_weight != nil {
		fields = append(fields, application.FieldPriorityWeight)
	}
	if m.addportfolio_rank != nil {
		fields = append(fields, application.FieldPortfolioRank)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApplicationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case application.FieldPriorityWeight:
		return m.AddedPriorityWeight()
	case application.FieldPortfolioRank:
		return m.AddedPortfolioRank()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case application.FieldPriorityWeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriorityWeight(v)
		return nil
	case application.FieldPortfolioRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPortfolioRank(v)
		return nil
	}
	return fmt.Errorf("unknown Application numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApplicationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(application.FieldPortfolioRank) {
		fields = append(fields, application.FieldPortfolioRank)
	}
	if m.FieldCleared(application.FieldStakeholders) {
		fields = append(fields, application.FieldStakeholders)
	}
	if m.FieldCleared(application.FieldKeywords) {
		fields = append(fields, application.FieldKeywords)
	}
	if m.FieldCleared(application.FieldStatusSummary) {
		fields = append(fields, application.FieldStatusSummary)
	}
	if m.FieldCleared(application.FieldNextMilestone) {
		fields = append(fields, application.FieldNextMilestone)
	}
	if m.FieldCleared(application.FieldTargetDate) {
		fields = append(fields, application.FieldTargetDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApplicationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApplicationMutation) ClearField(name string) error {
	switch name {
	case application.FieldPortfolioRank:
		m.ClearPortfolioRank()
		return nil
	case application.FieldStakeholders:
		m.ClearStakeholders()
		return nil
	case application.FieldKeywords:
		m.ClearKeywords()
		return nil
	case application.FieldStatusSummary:
		m.ClearStatusSummary()
		return nil
	case application.FieldNextMilestone:
		m.ClearNextMilestone()
		return nil
	case application.FieldTargetDate:
		m.ClearTargetDate()
		return nil
	}
	return fmt.Errorf("unknown Application nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApplicationMutation) ResetField(name string) error {
	switch name {
	case application.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case application.FieldName:
		m.ResetName()
		return nil
	case application.FieldPhase:
		m.ResetPhase()
		return nil
	case application.FieldRag:
		m.ResetRag()
		return nil
	case application.FieldPriorityWeight:
		m.ResetPriorityWeight()
		return nil
	case application.FieldPortfolioRank:
		m.ResetPortfolioRank()
		return nil
	case application.FieldStakeholders:
		m.ResetStakeholders()
		return nil
	case application.FieldKeywords:
		m.ResetKeywords()
		return nil
	case application.FieldStatusSummary:
		m.ResetStatusSummary()
		return nil
	case application.FieldNextMilestone:
		m.ResetNextMilestone()
		return nil
	case application.FieldTargetDate:
		m.ResetTargetDate()
		return nil
	case application.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case application.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Application field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApplicationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApplicationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApplicationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApplicationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApplicationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApplicationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApplicationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Application unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApplicationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Application edge %s", name)
}

// CalendarEventMutation represents an operation that mutates the CalendarEvent nodes in the graph.
type CalendarEventMutation struct {
	config
	op                Op
	typ               string
	id                *string
	owner_id          *string
	source            *calendarevent.Source
	external_event_id *string
	start_at          *time.Time
	end_at            *time.Time
	title             *string
	body_preview      *string
	is_all_day        *bool
	content_hash      *string
	meeting_context   *string
	removed_at        *time.Time
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*CalendarEvent, error)
	predicates        []predicate.CalendarEvent
}

var _ ent.Mutation = (*CalendarEventMutation)(nil)

// calendareventOption allows management of the mutation configuration using functional options.
type calendareventOption func(*CalendarEventMutation)

// newCalendarEventMutation creates new mutation for the CalendarEvent entity.
func newCalendarEventMutation(c config, op Op, opts ...calendareventOption) *CalendarEventMutation {
	m := &CalendarEventMutation{
		config:        c,
		op:            op,
		typ:           TypeCalendarEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCalendarEventID sets the ID field of the mutation.
func withCalendarEventID(id string) calendareventOption {
	return func(m *CalendarEventMutation) {
		var (
			err   error
			once  sync.Once
			value *CalendarEvent
		)
		m.oldValue = func(ctx context.Context) (*CalendarEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CalendarEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCalendarEvent sets the old CalendarEvent of the mutation.
func withCalendarEvent(node *CalendarEvent) calendareventOption {
	return func(m *CalendarEventMutation) {
		m.oldValue = func(context.Context) (*CalendarEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CalendarEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CalendarEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CalendarEvent entities.
func (m *CalendarEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CalendarEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CalendarEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CalendarEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *CalendarEventMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *CalendarEventMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *CalendarEventMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetSource sets the "source" field.
func (m *CalendarEventMutation) SetSource(c calendarevent.Source) {
	m.source = &c
}

// Source returns the value of the "source" field in the mutation.
func (m *CalendarEventMutation) Source() (r calendarevent.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldSource(ctx context.Context) (v calendarevent.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *CalendarEventMutation) ResetSource() {
	m.source = nil
}

// SetExternalEventID sets the "external_event_id" field.
func (m *CalendarEventMutation) SetExternalEventID(s string) {
	m.external_event_id = &s
}

// ExternalEventID returns the value of the "external_event_id" field in the mutation.
func (m *CalendarEventMutation) ExternalEventID() (r string, exists bool) {
	v := m.external_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalEventID returns the old "external_event_id" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldExternalEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalEventID: %w", err)
	}
	return oldValue.ExternalEventID, nil
}

// ResetExternalEventID resets all changes to the "external_event_id" field.
func (m *CalendarEventMutation) ResetExternalEventID() {
	m.external_event_id = nil
}

// SetStartAt sets the "start_at" field.
func (m *CalendarEventMutation) SetStartAt(t time.Time) {
	m.start_at = &t
}

// StartAt returns the value of the "start_at" field in the mutation.
func (m *CalendarEventMutation) StartAt() (r time.Time, exists bool) {
	v := m.start_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartAt returns the old "start_at" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldStartAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartAt: %w", err)
	}
	return oldValue.StartAt, nil
}

// ResetStartAt resets all changes to the "start_at" field.
func (m *CalendarEventMutation) ResetStartAt() {
	m.start_at = nil
}

// SetEndAt sets the "end_at" field.
func (m *CalendarEventMutation) SetEndAt(t time.Time) {
	m.end_at = &t
}

// EndAt returns the value of the "end_at" field in the mutation.
func (m *CalendarEventMutation) EndAt() (r time.Time, exists bool) {
	v := m.end_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndAt returns the old "end_at" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldEndAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndAt: %w", err)
	}
	return oldValue.EndAt, nil
}

// ResetEndAt resets all changes to the "end_at" field.
func (m *CalendarEventMutation) ResetEndAt() {
	m.end_at = nil
}

// SetTitle sets the "title" field.
func (m *CalendarEventMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CalendarEventMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *CalendarEventMutation) ResetTitle() {
	m.title = nil
}

// SetBodyPreview sets the "body_preview" field.
func (m *CalendarEventMutation) SetBodyPreview(s string) {
	m.body_preview = &s
}

// BodyPreview returns the value of the "body_preview" field in the mutation.
func (m *CalendarEventMutation) BodyPreview() (r string, exists bool) {
	v := m.body_preview
	if v == nil {
		return
	}
	return *v, true
}

// OldBodyPreview returns the old "body_preview" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldBodyPreview(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBodyPreview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBodyPreview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBodyPreview: %w", err)
	}
	return oldValue.BodyPreview, nil
}

// ClearBodyPreview clears the value of the "body_preview" field.
func (m *CalendarEventMutation) ClearBodyPreview() {
	m.body_preview = nil
	m.clearedFields[calendarevent.FieldBodyPreview] = struct{}{}
}

// BodyPreviewCleared returns if the "body_preview" field was cleared in this mutation.
func (m *CalendarEventMutation) BodyPreviewCleared() bool {
	_, ok := m.clearedFields[calendarevent.FieldBodyPreview]
	return ok
}

// ResetBodyPreview resets all changes to the "body_preview" field.
func (m *CalendarEventMutation) ResetBodyPreview() {
	m.body_preview = nil
	delete(m.clearedFields, calendarevent.FieldBodyPreview)
}

// SetIsAllDay sets the "is_all_day" field.
func (m *CalendarEventMutation) SetIsAllDay(b bool) {
	m.is_all_day = &b
}

// IsAllDay returns the value of the "is_all_day" field in the mutation.
func (m *CalendarEventMutation) IsAllDay() (r bool, exists bool) {
	v := m.is_all_day
	if v == nil {
		return
	}
	return *v, true
}

// OldIsAllDay returns the old "is_all_day" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldIsAllDay(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsAllDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsAllDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsAllDay: %w", err)
	}
	return oldValue.IsAllDay, nil
}

// ResetIsAllDay resets all changes to the "is_all_day" field.
func (m *CalendarEventMutation) ResetIsAllDay() {
	m.is_all_day = nil
}

// SetContentHash sets the "content_hash" field.
func (m *CalendarEventMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *CalendarEventMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *CalendarEventMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetMeetingContext sets the "meeting_context" field.
func (m *CalendarEventMutation) SetMeetingContext(s string) {
	m.meeting_context = &s
}

// MeetingContext returns the value of the "meeting_context" field in the mutation.
func (m *CalendarEventMutation) MeetingContext() (r string, exists bool) {
	v := m.meeting_context
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingContext returns the old "meeting_context" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldMeetingContext(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingContext: %w", err)
	}
	return oldValue.MeetingContext, nil
}

// ClearMeetingContext clears the value of the "meeting_context" field.
func (m *CalendarEventMutation) ClearMeetingContext() {
	m.meeting_context = nil
	m.clearedFields[calendarevent.FieldMeetingContext] = struct{}{}
}

// MeetingContextCleared returns if the "meeting_context" field was cleared in this mutation.
func (m *CalendarEventMutation) MeetingContextCleared() bool {
	_, ok := m.clearedFields[calendarevent.FieldMeetingContext]
	return ok
}

// ResetMeetingContext resets all changes to the "meeting_context" field.
func (m *CalendarEventMutation) ResetMeetingContext() {
	m.meeting_context = nil
	delete(m.clearedFields, calendarevent.FieldMeetingContext)
}

// SetRemovedAt sets the "removed_at" field.
func (m *CalendarEventMutation) SetRemovedAt(t time.Time) {
	m.removed_at = &t
}

// RemovedAt returns the value of the "removed_at" field in the mutation.
func (m *CalendarEventMutation) RemovedAt() (r time.Time, exists bool) {
	v := m.removed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRemovedAt returns the old "removed_at" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldRemovedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemovedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemovedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemovedAt: %w", err)
	}
	return oldValue.RemovedAt, nil
}

// ClearRemovedAt clears the value of the "removed_at" field.
func (m *CalendarEventMutation) ClearRemovedAt() {
	m.removed_at = nil
	m.clearedFields[calendarevent.FieldRemovedAt] = struct{}{}
}

// RemovedAtCleared returns if the "removed_at" field was cleared in this mutation.
func (m *CalendarEventMutation) RemovedAtCleared() bool {
	_, ok := m.clearedFields[calendarevent.FieldRemovedAt]
	return ok
}

// ResetRemovedAt resets all changes to the "removed_at" field.
func (m *CalendarEventMutation) ResetRemovedAt() {
	m.removed_at = nil
	delete(m.clearedFields, calendarevent.FieldRemovedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *CalendarEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CalendarEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CalendarEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CalendarEventMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CalendarEventMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CalendarEventMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CalendarEventMutation builder.
func (m *CalendarEventMutation) Where(ps ...predicate.CalendarEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CalendarEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CalendarEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CalendarEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CalendarEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CalendarEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CalendarEvent).
func (m *CalendarEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CalendarEventMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.owner_id != nil {
		fields = append(fields, calendarevent.FieldOwnerID)
	}
	if m.source != nil {
		fields = append(fields, calendarevent.FieldSource)
	}
	if m.external_event_id != nil {
		fields = append(fields, calendarevent.FieldExternalEventID)
	}
	if m.start_at != nil {
		fields = append(fields, calendarevent.FieldStartAt)
	}
	if m.end_at != nil {
		fields = append(fields, calendarevent.FieldEndAt)
	}
	if m.title != nil {
		fields = append(fields, calendarevent.FieldTitle)
	}
	if m.body_preview != nil {
		fields = append(fields, calendarevent.FieldBodyPreview)
	}
	if m.is_all_day != nil {
		fields = append(fields, calendarevent.FieldIsAllDay)
	}
	if m.content_hash != nil {
		fields = append(fields, calendarevent.FieldContentHash)
	}
	if m.meeting_context != nil {
		fields = append(fields, calendarevent.FieldMeetingContext)
	}
	if m.removed_at != nil {
		fields = append(fields, calendarevent.FieldRemovedAt)
	}
	if m.created_at != nil {
		fields = append(fields, calendarevent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, calendarevent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CalendarEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case calendarevent.FieldOwnerID:
		return m.OwnerID()
	case calendarevent.FieldSource:
		return m.Source()
	case calendarevent.FieldExternalEventID:
		return m.ExternalEventID()
	case calendarevent.FieldStartAt:
		return m.StartAt()
	case calendarevent.FieldEndAt:
		return m.EndAt()
	case calendarevent.FieldTitle:
		return m.Title()
	case calendarevent.FieldBodyPreview:
		return m.BodyPreview()
	case calendarevent.FieldIsAllDay:
		return m.IsAllDay()
	case calendarevent.FieldContentHash:
		return m.ContentHash()
	case calendarevent.FieldMeetingContext:
		return m.MeetingContext()
	case calendarevent.FieldRemovedAt:
		return m.RemovedAt()
	case calendarevent.FieldCreatedAt:
		return m.CreatedAt()
	case calendarevent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CalendarEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case calendarevent.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case calendarevent.FieldSource:
		return m.OldSource(ctx)
	case calendarevent.FieldExternalEventID:
		return m.OldExternalEventID(ctx)
	case calendarevent.FieldStartAt:
		return m.OldStartAt(ctx)
	case calendarevent.FieldEndAt:
		return m.OldEndAt(ctx)
	case calendarevent.FieldTitle:
		return m.OldTitle(ctx)
	case calendarevent.FieldBodyPreview:
		return m.OldBodyPreview(ctx)
	case calendarevent.FieldIsAllDay:
		return m.OldIsAllDay(ctx)
	case calendarevent.FieldContentHash:
		return m.OldContentHash(ctx)
	case calendarevent.FieldMeetingContext:
		return m.OldMeetingContext(ctx)
	case calendarevent.FieldRemovedAt:
		return m.OldRemovedAt(ctx)
	case calendarevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case calendarevent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CalendarEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalendarEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case calendarevent.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case calendarevent.FieldSource:
		v, ok := value.(calendarevent.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case calendarevent.FieldExternalEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalEventID(v)
		return nil
	case calendarevent.FieldStartAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartAt(v)
		return nil
	case calendarevent.FieldEndAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndAt(v)
		return nil
	case calendarevent.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case calendarevent.FieldBodyPreview:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBodyPreview(v)
		return nil
	case calendarevent.FieldIsAllDay:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsAllDay(v)
		return nil
	case calendarevent.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case calendarevent.FieldMeetingContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingContext(v)
		return nil
	case calendarevent.FieldRemovedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemovedAt(v)
		return nil
	case calendarevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case calendarevent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CalendarEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CalendarEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CalendarEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalendarEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CalendarEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CalendarEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(calendarevent.FieldBodyPreview) {
		fields = append(fields, calendarevent.FieldBodyPreview)
	}
	if m.FieldCleared(calendarevent.FieldMeetingContext) {
		fields = append(fields, calendarevent.FieldMeetingContext)
	}
	if m.FieldCleared(calendarevent.FieldRemovedAt) {
		fields = append(fields, calendarevent.FieldRemovedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CalendarEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CalendarEventMutation) ClearField(name string) error {
	switch name {
	case calendarevent.FieldBodyPreview:
		m.ClearBodyPreview()
		return nil
	case calendarevent.FieldMeetingContext:
		m.ClearMeetingContext()
		return nil
	case calendarevent.FieldRemovedAt:
		m.ClearRemovedAt()
		return nil
	}
	return fmt.Errorf("unknown CalendarEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CalendarEventMutation) ResetField(name string) error {
	switch name {
	case calendarevent.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case calendarevent.FieldSource:
		m.ResetSource()
		return nil
	case calendarevent.FieldExternalEventID:
		m.ResetExternalEventID()
		return nil
	case calendarevent.FieldStartAt:
		m.ResetStartAt()
		return nil
	case calendarevent.FieldEndAt:
		m.ResetEndAt()
		return nil
	case calendarevent.FieldTitle:
		m.ResetTitle()
		return nil
	case calendarevent.FieldBodyPreview:
		m.ResetBodyPreview()
		return nil
	case calendarevent.FieldIsAllDay:
		m.ResetIsAllDay()
		return nil
	case calendarevent.FieldContentHash:
		m.ResetContentHash()
		return nil
	case calendarevent.FieldMeetingContext:
		m.ResetMeetingContext()
		return nil
	case calendarevent.FieldRemovedAt:
		m.ResetRemovedAt()
		return nil
	case calendarevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case calendarevent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CalendarEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CalendarEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CalendarEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CalendarEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CalendarEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CalendarEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CalendarEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CalendarEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CalendarEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CalendarEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CalendarEvent edge %s", name)
}

// CalendarSnapshotMutation represents an operation that mutates the CalendarSnapshot nodes in the graph.
type CalendarSnapshotMutation struct {
	config
	op                Op
	typ               string
	id                *string
	owner_id          *string
	range_start       *string
	range_end         *string
	payload_min       *[]map[string]interface{}
	appendpayload_min []map[string]interface{}
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*CalendarSnapshot, error)
	predicates        []predicate.CalendarSnapshot
}

var _ ent.Mutation = (*CalendarSnapshotMutation)(nil)

// calendarsnapshotOption allows management of the mutation configuration using functional options.
type calendarsnapshotOption func(*CalendarSnapshotMutation)

// newCalendarSnapshotMutation creates new mutation for the CalendarSnapshot entity.
func newCalendarSnapshotMutation(c config, op Op, opts ...calendarsnapshotOption) *CalendarSnapshotMutation {
	m := &CalendarSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeCalendarSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCalendarSnapshotID sets the ID field of the mutation.
func withCalendarSnapshotID(id string) calendarsnapshotOption {
	return func(m *CalendarSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *CalendarSnapshot
		)
		m.oldValue = func(ctx context.Context) (*CalendarSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CalendarSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCalendarSnapshot sets the old CalendarSnapshot of the mutation.
func withCalendarSnapshot(node *CalendarSnapshot) calendarsnapshotOption {
	return func(m *CalendarSnapshotMutation) {
		m.oldValue = func(context.Context) (*CalendarSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CalendarSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CalendarSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CalendarSnapshot entities.
func (m *CalendarSnapshotMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CalendarSnapshotMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CalendarSnapshotMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CalendarSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *CalendarSnapshotMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *CalendarSnapshotMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the CalendarSnapshot entity.
// If the CalendarSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarSnapshotMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *CalendarSnapshotMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetRangeStart sets the "range_start" field.
func (m *CalendarSnapshotMutation) SetRangeStart(s string) {
	m.range_start = &s
}

// RangeStart returns the value of the "range_start" field in the mutation.
func (m *CalendarSnapshotMutation) RangeStart() (r string, exists bool) {
	v := m.range_start
	if v == nil {
		return
	}
	return *v, true
}

// OldRangeStart returns the old "range_start" field's value of the CalendarSnapshot entity.
// If the CalendarSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarSnapshotMutation) OldRangeStart(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRangeStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRangeStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRangeStart: %w", err)
	}
	return oldValue.RangeStart, nil
}

// ResetRangeStart resets all changes to the "range_start" field.
func (m *CalendarSnapshotMutation) ResetRangeStart() {
	m.range_start = nil
}

// SetRangeEnd sets the "range_end" field.
func (m *CalendarSnapshotMutation) SetRangeEnd(s string) {
	m.range_end = &s
}

// RangeEnd returns the value of the "range_end" field in the mutation.
func (m *CalendarSnapshotMutation) RangeEnd() (r string, exists bool) {
	v := m.range_end
	if v == nil {
		return
	}
	return *v, true
}

// OldRangeEnd returns the old "range_end" field's value of the CalendarSnapshot entity.
// If the CalendarSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarSnapshotMutation) OldRangeEnd(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRangeEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRangeEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRangeEnd: %w", err)
	}
	return oldValue.RangeEnd, nil
}

// ResetRangeEnd resets all changes to the "range_end" field.
func (m *CalendarSnapshotMutation) ResetRangeEnd() {
	m.range_end = nil
}

// SetPayloadMin sets the "payload_min" field.
func (m *CalendarSnapshotMutation) SetPayloadMin(value []map[string]interface{}) {
	m.payload_min = &value
	m.appendpayload_min = nil
}

// PayloadMin returns the value of the "payload_min" field in the mutation.
func (m *CalendarSnapshotMutation) PayloadMin() (r []map[string]interface{}, exists bool) {
	v := m.payload_min
	if v == nil {
		return
	}
	return *v, true
}

// OldPayloadMin returns the old "payload_min" field's value of the CalendarSnapshot entity.
// If the CalendarSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarSnapshotMutation) OldPayloadMin(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayloadMin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayloadMin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayloadMin: %w", err)
	}
	return oldValue.PayloadMin, nil
}

// AppendPayloadMin adds value to the "payload_min" field.
func (m *CalendarSnapshotMutation) AppendPayloadMin(value []map[string]interface{}) {
	m.appendpayload_min = append(m.appendpayload_min, value...)
}

// AppendedPayloadMin returns the list of values that were appended to the "payload_min" field in this mutation.
func (m *CalendarSnapshotMutation) AppendedPayloadMin() ([]map[string]interface{}, bool) {
	if len(m.appendpayload_min) == 0 {
		return nil, false
	}
	return m.appendpayload_min, true
}

// ResetPayloadMin resets all changes to the "payload_min" field.
func (m *CalendarSnapshotMutation) ResetPayloadMin() {
	m.payload_min = nil
	m.appendpayload_min = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CalendarSnapshotMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CalendarSnapshotMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CalendarSnapshot entity.
// If the CalendarSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarSnapshotMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CalendarSnapshotMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CalendarSnapshotMutation builder.
func (m *CalendarSnapshotMutation) Where(ps ...predicate.CalendarSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CalendarSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CalendarSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CalendarSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CalendarSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CalendarSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CalendarSnapshot).
func (m *CalendarSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CalendarSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.owner_id != nil {
		fields = append(fields, calendarsnapshot.FieldOwnerID)
	}
	if m.range_start != nil {
		fields = append(fields, calendarsnapshot.FieldRangeStart)
	}
	if m.range_end != nil {
		fields = append(fields, calendarsnapshot.FieldRangeEnd)
	}
	if m.payload_min != nil {
		fields = append(fields, calendarsnapshot.FieldPayloadMin)
	}
	if m.created_at != nil {
		fields = append(fields, calendarsnapshot.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CalendarSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case calendarsnapshot.FieldOwnerID:
		return m.OwnerID()
	case calendarsnapshot.FieldRangeStart:
		return m.RangeStart()
	case calendarsnapshot.FieldRangeEnd:
		return m.RangeEnd()
	case calendarsnapshot.FieldPayloadMin:
		return m.PayloadMin()
	case calendarsnapshot.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CalendarSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case calendarsnapshot.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case calendarsnapshot.FieldRangeStart:
		return m.OldRangeStart(ctx)
	case calendarsnapshot.FieldRangeEnd:
		return m.OldRangeEnd(ctx)
	case calendarsnapshot.FieldPayloadMin:
		return m.OldPayloadMin(ctx)
	case calendarsnapshot.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CalendarSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalendarSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case calendarsnapshot.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case calendarsnapshot.FieldRangeStart:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRangeStart(v)
		return nil
	case calendarsnapshot.FieldRangeEnd:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRangeEnd(v)
		return nil
	case calendarsnapshot.FieldPayloadMin:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayloadMin(v)
		return nil
	case calendarsnapshot.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CalendarSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CalendarSnapshotMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CalendarSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalendarSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CalendarSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CalendarSnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CalendarSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CalendarSnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CalendarSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CalendarSnapshotMutation) ResetField(name string) error {
	switch name {
	case calendarsnapshot.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case calendarsnapshot.FieldRangeStart:
		m.ResetRangeStart()
		return nil
	case calendarsnapshot.FieldRangeEnd:
		m.ResetRangeEnd()
		return nil
	case calendarsnapshot.FieldPayloadMin:
		m.ResetPayloadMin()
		return nil
	case calendarsnapshot.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CalendarSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CalendarSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CalendarSnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CalendarSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CalendarSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CalendarSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CalendarSnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CalendarSnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CalendarSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CalendarSnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CalendarSnapshot edge %s", name)
}

// ChecklistItemMutation represents an operation that mutates the ChecklistItem nodes in the graph.
type ChecklistItemMutation struct {
	config
	op            Op
	typ           string
	id            *string
	owner_id      *string
	task_id       *string
	label         *string
	sort_order    *int
	addsort_order *int
	_done         *bool
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ChecklistItem, error)
	predicates    []predicate.ChecklistItem
}

var _ ent.Mutation = (*ChecklistItemMutation)(nil)

// checklistitemOption allows management of the mutation configuration using functional options.
type checklistitemOption func(*ChecklistItemMutation)

// newChecklistItemMutation creates new mutation for the ChecklistItem entity.
func newChecklistItemMutation(c config, op Op, opts ...checklistitemOption) *ChecklistItemMutation {
	m := &ChecklistItemMutation{
		config:        c,
		op:            op,
		typ:           TypeChecklistItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChecklistItemID sets the ID field of the mutation.
func withChecklistItemID(id string) checklistitemOption {
	return func(m *ChecklistItemMutation) {
		var (
			err   error
			once  sync.Once
			value *ChecklistItem
		)
		m.oldValue = func(ctx context.Context) (*ChecklistItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChecklistItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChecklistItem sets the old ChecklistItem of the mutation.
func withChecklistItem(node *ChecklistItem) checklistitemOption {
	return func(m *ChecklistItemMutation) {
		m.oldValue = func(context.Context) (*ChecklistItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChecklistItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChecklistItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChecklistItem entities.
func (m *ChecklistItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChecklistItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChecklistItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChecklistItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *ChecklistItemMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *ChecklistItemMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the ChecklistItem entity.
// If the ChecklistItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChecklistItemMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *ChecklistItemMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetTaskID sets the "task_id" field.
func (m *ChecklistItemMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ChecklistItemMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the ChecklistItem entity.
// If the ChecklistItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChecklistItemMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ChecklistItemMutation) ResetTaskID() {
	m.task_id = nil
}

// SetLabel sets the "label" field.
func (m *ChecklistItemMutation) SetLabel(s string) {
	m.label = &s
}

// Label returns the value of the "label" field in the mutation.
func (m *ChecklistItemMutation) Label() (r string, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabel returns the old "label" field's value of the ChecklistItem entity.
// If the ChecklistItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChecklistItemMutation) OldLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabel: %w", err)
	}
	return oldValue.Label, nil
}

// ResetLabel resets all changes to the "label" field.
func (m *ChecklistItemMutation) ResetLabel() {
	m.label = nil
}

// SetSortOrder sets the "sort_order" field.
func (m *ChecklistItemMutation) SetSortOrder(i int) {
	m.sort_order = &i
	m.addsort_order = nil
}

// SortOrder returns the value of the "sort_order" field in the mutation.
func (m *ChecklistItemMutation) SortOrder() (r int, exists bool) {
	v := m.sort_order
	if v == nil {
		return
	}
	return *v, true
}

// OldSortOrder returns the old "sort_order" field's value of the ChecklistItem entity.
// If the ChecklistItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChecklistItemMutation) OldSortOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSortOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSortOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSortOrder: %w", err)
	}
	return oldValue.SortOrder, nil
}

// AddSortOrder adds i to the "sort_order" field.
func (m *ChecklistItemMutation) AddSortOrder(i int) {
	if m.addsort_order != nil {
		*m.addsort_order += i
	} else {
		m.addsort_order = &i
	}
}

// AddedSortOrder returns the value that was added to the "sort_order" field in this mutation.
func (m *ChecklistItemMutation) AddedSortOrder() (r int, exists bool) {
	v := m.addsort_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetSortOrder resets all changes to the "sort_order" field.
func (m *ChecklistItemMutation) ResetSortOrder() {
	m.sort_order = nil
	m.addsort_order = nil
}

// SetDone sets the "done" field.
func (m *ChecklistItemMutation) SetDone(b bool) {
	m._done = &b
}

// Done returns the value of the "done" field in the mutation.
func (m *ChecklistItemMutation) Done() (r bool, exists bool) {
	v := m._done
	if v == nil {
		return
	}
	return *v, true
}

// OldDone returns the old "done" field's value of the ChecklistItem entity.
// If the ChecklistItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChecklistItemMutation) OldDone(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDone: %w", err)
	}
	return oldValue.Done, nil
}

// ResetDone resets all changes to the "done" field.
func (m *ChecklistItemMutation) ResetDone() {
	m._done = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ChecklistItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChecklistItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChecklistItem entity.
// If the ChecklistItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChecklistItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChecklistItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChecklistItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChecklistItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ChecklistItem entity.
// If the ChecklistItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChecklistItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChecklistItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ChecklistItemMutation builder.
func (m *ChecklistItemMutation) Where(ps ...predicate.ChecklistItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChecklistItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChecklistItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChecklistItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChecklistItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChecklistItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChecklistItem).
func (m *ChecklistItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChecklistItemMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.owner_id != nil {
		fields = append(fields, checklistitem.FieldOwnerID)
	}
	if m.task_id != nil {
		fields = append(fields, checklistitem.FieldTaskID)
	}
	if m.label != nil {
		fields = append(fields, checklistitem.FieldLabel)
	}
	if m.sort_order != nil {
		fields = append(fields, checklistitem.FieldSortOrder)
	}
	if m._done != nil {
		fields = append(fields, checklistitem.FieldDone)
	}
	if m.created_at != nil {
		fields = append(fields, checklistitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, checklistitem.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChecklistItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checklistitem.FieldOwnerID:
		return m.OwnerID()
	case checklistitem.FieldTaskID:
		return m.TaskID()
	case checklistitem.FieldLabel:
		return m.Label()
	case checklistitem.FieldSortOrder:
		return m.SortOrder()
	case checklistitem.FieldDone:
		return m.Done()
	case checklistitem.FieldCreatedAt:
		return m.CreatedAt()
	case checklistitem.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChecklistItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checklistitem.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case checklistitem.FieldTaskID:
		return m.OldTaskID(ctx)
	case checklistitem.FieldLabel:
		return m.OldLabel(ctx)
	case checklistitem.FieldSortOrder:
		return m.OldSortOrder(ctx)
	case checklistitem.FieldDone:
		return m.OldDone(ctx)
	case checklistitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case checklistitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChecklistItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChecklistItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checklistitem.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case checklistitem.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case checklistitem.FieldLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabel(v)
		return nil
	case checklistitem.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSortOrder(v)
		return nil
	case checklistitem.FieldDone:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDone(v)
		return nil
	case checklistitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case checklistitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChecklistItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChecklistItemMutation) AddedFields() []string {
	var fields []string
	if m.addsort_order != nil {
		fields = append(fields, checklistitem.FieldSortOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChecklistItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case checklistitem.FieldSortOrder:
		return m.AddedSortOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChecklistItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case checklistitem.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSortOrder(v)
		return nil
	}
	return fmt.Errorf("unknown ChecklistItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChecklistItemMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChecklistItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChecklistItemMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ChecklistItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChecklistItemMutation) ResetField(name string) error {
	switch name {
	case checklistitem.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case checklistitem.FieldTaskID:
		m.ResetTaskID()
		return nil
	case checklistitem.FieldLabel:
		m.ResetLabel()
		return nil
	case checklistitem.FieldSortOrder:
		m.ResetSortOrder()
		return nil
	case checklistitem.FieldDone:
		m.ResetDone()
		return nil
	case checklistitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case checklistitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChecklistItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChecklistItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChecklistItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChecklistItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChecklistItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChecklistItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChecklistItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChecklistItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ChecklistItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChecklistItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ChecklistItem edge %s", name)
}

// CommitmentMutation represents an operation that mutates the Commitment nodes in the graph.
type CommitmentMutation struct {
	config
	op            Op
	typ           string
	id            *string
	owner_id      *string
	stakeholder   *string
	description   *string
	direction     *commitment.Direction
	status        *commitment.Status
	due_at        *time.Time
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Commitment, error)
	predicates    []predicate.Commitment
}

var _ ent.Mutation = (*CommitmentMutation)(nil)

// commitmentOption allows management of the mutation configuration using functional options.
type commitmentOption func(*CommitmentMutation)

// newCommitmentMutation creates new mutation for the Commitment entity.
func newCommitmentMutation(c config, op Op, opts ...commitmentOption) *CommitmentMutation {
	m := &CommitmentMutation{
		config:        c,
		op:            op,
		typ:           TypeCommitment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCommitmentID sets the ID field of the mutation.
func withCommitmentID(id string) commitmentOption {
	return func(m *CommitmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Commitment
		)
		m.oldValue = func(ctx context.Context) (*Commitment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Commitment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCommitment sets the old Commitment of the mutation.
func withCommitment(node *Commitment) commitmentOption {
	return func(m *CommitmentMutation) {
		m.oldValue = func(context.Context) (*Commitment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CommitmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CommitmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Commitment entities.
func (m *CommitmentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CommitmentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CommitmentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Commitment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *CommitmentMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *CommitmentMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Commitment entity.
// If the Commitment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitmentMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *CommitmentMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetStakeholder sets the "stakeholder" field.
func (m *CommitmentMutation) SetStakeholder(s string) {
	m.stakeholder = &s
}

// Stakeholder returns the value of the "stakeholder" field in the mutation.
func (m *CommitmentMutation) Stakeholder() (r string, exists bool) {
	v := m.stakeholder
	if v == nil {
		return
	}
	return *v, true
}

// OldStakeholder returns the old "stakeholder" field's value of the Commitment entity.
// If the Commitment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitmentMutation) OldStakeholder(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStakeholder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStakeholder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStakeholder: %w", err)
	}
	return oldValue.Stakeholder, nil
}

// ResetStakeholder resets all changes to the "stakeholder" field.
func (m *CommitmentMutation) ResetStakeholder() {
	m.stakeholder = nil
}

// SetDescription sets the "description" field.
func (m *CommitmentMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CommitmentMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Commitment entity.
// If the Commitment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitmentMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *CommitmentMutation) ResetDescription() {
	m.description = nil
}

// SetDirection sets the "direction" field.
func (m *CommitmentMutation) SetDirection(c commitment.Direction) {
	m.direction = &c
}

// Direction returns the value of the "direction" field in the mutation.
func (m *CommitmentMutation) Direction() (r commitment.Direction, exists bool) {
	v := m.direction
	if v == nil {
		return
	}
	return *v, true
}

// OldDirection returns the old "direction" field's value of the Commitment entity.
// If the Commitment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitmentMutation) OldDirection(ctx context.Context) (v commitment.Direction, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDirection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDirection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDirection: %w", err)
	}
	return oldValue.Direction, nil
}

// ResetDirection resets all changes to the "direction" field.
func (m *CommitmentMutation) ResetDirection() {
	m.direction = nil
}

// SetStatus sets the "status" field.
func (m *CommitmentMutation) SetStatus(c commitment.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CommitmentMutation) Status() (r commitment.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Commitment entity.
// If the Commitment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitmentMutation) OldStatus(ctx context.Context) (v commitment.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CommitmentMutation) ResetStatus() {
	m.status = nil
}

// SetDueAt sets the "due_at" field.
func (m *CommitmentMutation) SetDueAt(t time.Time) {
	m.due_at = &t
}

// DueAt returns the value of the "due_at" field in the mutation.
func (m *CommitmentMutation) DueAt() (r time.Time, exists bool) {
	v := m.due_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDueAt returns the old "due_at" field's value of the Commitment entity.
// If the Commitment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitmentMutation) OldDueAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueAt: %w", err)
	}
	return oldValue.DueAt, nil
}

// ClearDueAt clears the value of the "due_at" field.
func (m *CommitmentMutation) ClearDueAt() {
	m.due_at = nil
	m.clearedFields[commitment.FieldDueAt] = struct{}{}
}

// DueAtCleared returns if the "due_at" field was cleared in this mutation.
func (m *CommitmentMutation) DueAtCleared() bool {
	_, ok := m.clearedFields[commitment.FieldDueAt]
	return ok
}

// ResetDueAt resets all changes to the "due_at" field.
func (m *CommitmentMutation) ResetDueAt() {
	m.due_at = nil
	delete(m.clearedFields, commitment.FieldDueAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *CommitmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CommitmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Commitment entity.
// If the Commitment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CommitmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CommitmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CommitmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Commitment entity.
// If the Commitment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CommitmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CommitmentMutation builder.
func (m *CommitmentMutation) Where(ps ...predicate.Commitment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CommitmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CommitmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Commitment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CommitmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CommitmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Commitment).
func (m *CommitmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CommitmentMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.owner_id != nil {
		fields = append(fields, commitment.FieldOwnerID)
	}
	if m.stakeholder != nil {
		fields = append(fields, commitment.FieldStakeholder)
	}
	if m.description != nil {
		fields = append(fields, commitment.FieldDescription)
	}
	if m.direction != nil {
		fields = append(fields, commitment.FieldDirection)
	}
	if m.status != nil {
		fields = append(fields, commitment.FieldStatus)
	}
	if m.due_at != nil {
		fields = append(fields, commitment.FieldDueAt)
	}
	if m.created_at != nil {
		fields = append(fields, commitment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, commitment.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CommitmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case commitment.FieldOwnerID:
		return m.OwnerID()
	case commitment.FieldStakeholder:
		return m.Stakeholder()
	case commitment.FieldDescription:
		return m.Description()
	case commitment.FieldDirection:
		return m.Direction()
	case commitment.FieldStatus:
		return m.Status()
	case commitment.FieldDueAt:
		return m.DueAt()
	case commitment.FieldCreatedAt:
		return m.CreatedAt()
	case commitment.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CommitmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case commitment.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case commitment.FieldStakeholder:
		return m.OldStakeholder(ctx)
	case commitment.FieldDescription:
		return m.OldDescription(ctx)
	case commitment.FieldDirection:
		return m.OldDirection(ctx)
	case commitment.FieldStatus:
		return m.OldStatus(ctx)
	case commitment.FieldDueAt:
		return m.OldDueAt(ctx)
	case commitment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case commitment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Commitment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommitmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case commitment.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case commitment.FieldStakeholder:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStakeholder(v)
		return nil
	case commitment.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case commitment.FieldDirection:
		v, ok := value.(commitment.Direction)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDirection(v)
		return nil
	case commitment.FieldStatus:
		v, ok := value.(commitment.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case commitment.FieldDueAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueAt(v)
		return nil
	case commitment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case commitment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Commitment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CommitmentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CommitmentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommitmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Commitment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CommitmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(commitment.FieldDueAt) {
		fields = append(fields, commitment.FieldDueAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CommitmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CommitmentMutation) ClearField(name string) error {
	switch name {
	case commitment.FieldDueAt:
		m.ClearDueAt()
		return nil
	}
	return fmt.Errorf("unknown Commitment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CommitmentMutation) ResetField(name string) error {
	switch name {
	case commitment.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case commitment.FieldStakeholder:
		m.ResetStakeholder()
		return nil
	case commitment.FieldDescription:
		m.ResetDescription()
		return nil
	case commitment.FieldDirection:
		m.ResetDirection()
		return nil
	case commitment.FieldStatus:
		m.ResetStatus()
		return nil
	case commitment.FieldDueAt:
		m.ResetDueAt()
		return nil
	case commitment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case commitment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Commitment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CommitmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CommitmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CommitmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CommitmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CommitmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CommitmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CommitmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Commitment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CommitmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Commitment edge %s", name)
}

// FocusDirectiveMutation represents an operation that mutates the FocusDirective nodes in the graph.
type FocusDirectiveMutation struct {
	config
	op             Op
	typ            string
	id             *string
	owner_id       *string
	directive_text *string
	scope_type     *focusdirective.ScopeType
	scope_id       *string
	scope_value    *string
	strength       *focusdirective.Strength
	is_active      *bool
	starts_at      *time.Time
	ends_at        *time.Time
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*FocusDirective, error)
	predicates     []predicate.FocusDirective
}

var _ ent.Mutation = (*FocusDirectiveMutation)(nil)

// focusdirectiveOption allows management of the mutation configuration using functional options.
type focusdirectiveOption func(*FocusDirectiveMutation)

// newFocusDirectiveMutation creates new mutation for the FocusDirective entity.
func newFocusDirectiveMutation(c config, op Op, opts ...focusdirectiveOption) *FocusDirectiveMutation {
	m := &FocusDirectiveMutation{
		config:        c,
		op:            op,
		typ:           TypeFocusDirective,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFocusDirectiveID sets the ID field of the mutation.
func withFocusDirectiveID(id string) focusdirectiveOption {
	return func(m *FocusDirectiveMutation) {
		var (
			err   error
			once  sync.Once
			value *FocusDirective
		)
		m.oldValue = func(ctx context.Context) (*FocusDirective, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FocusDirective.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFocusDirective sets the old FocusDirective of the mutation.
func withFocusDirective(node *FocusDirective) focusdirectiveOption {
	return func(m *FocusDirectiveMutation) {
		m.oldValue = func(context.Context) (*FocusDirective, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FocusDirectiveMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FocusDirectiveMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FocusDirective entities.
func (m *FocusDirectiveMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FocusDirectiveMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FocusDirectiveMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FocusDirective.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *FocusDirectiveMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *FocusDirectiveMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the FocusDirective entity.
// If the FocusDirective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FocusDirectiveMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *FocusDirectiveMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetDirectiveText sets the "directive_text" field.
func (m *FocusDirectiveMutation) SetDirectiveText(s string) {
	m.directive_text = &s
}

// DirectiveText returns the value of the "directive_text" field in the mutation.
func (m *FocusDirectiveMutation) DirectiveText() (r string, exists bool) {
	v := m.directive_text
	if v == nil {
		return
	}
	return *v, true
}

// OldDirectiveText returns the old "directive_text" field's value of the FocusDirective entity.
// If the FocusDirective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FocusDirectiveMutation) OldDirectiveText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDirectiveText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDirectiveText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDirectiveText: %w", err)
	}
	return oldValue.DirectiveText, nil
}

// ResetDirectiveText resets all changes to the "directive_text" field.
func (m *FocusDirectiveMutation) ResetDirectiveText() {
	m.directive_text = nil
}

// SetScopeType sets the "scope_type" field.
func (m *FocusDirectiveMutation) SetScopeType(ft focusdirective.ScopeType) {
	m.scope_type = &ft
}

// ScopeType returns the value of the "scope_type" field in the mutation.
func (m *FocusDirectiveMutation) ScopeType() (r focusdirective.ScopeType, exists bool) {
	v := m.scope_type
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeType returns the old "scope_type" field's value of the FocusDirective entity.
// If the FocusDirective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FocusDirectiveMutation) OldScopeType(ctx context.Context) (v focusdirective.ScopeType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeType: %w", err)
	}
	return oldValue.ScopeType, nil
}

// ResetScopeType resets all changes to the "scope_type" field.
func (m *FocusDirectiveMutation) ResetScopeType() {
	m.scope_type = nil
}

// SetScopeID sets the "scope_id" field.
func (m *FocusDirectiveMutation) SetScopeID(s string) {
	m.scope_id = &s
}

// ScopeID returns the value of the "scope_id" field in the mutation.
func (m *FocusDirectiveMutation) ScopeID() (r string, exists bool) {
	v := m.scope_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeID returns the old "scope_id" field's value of the FocusDirective entity.
// If the FocusDirective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FocusDirectiveMutation) OldScopeID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeID: %w", err)
	}
	return oldValue.ScopeID, nil
}

// ClearScopeID clears the value of the "scope_id" field.
func (m *FocusDirectiveMutation) ClearScopeID() {
	m.scope_id = nil
	m.clearedFields[focusdirective.FieldScopeID] = struct{}{}
}

// ScopeIDCleared returns if the "scope_id" field was cleared in this mutation.
func (m *FocusDirectiveMutation) ScopeIDCleared() bool {
	_, ok := m.clearedFields[focusdirective.FieldScopeID]
	return ok
}

// ResetScopeID resets all changes to the "scope_id" field.
func (m *FocusDirectiveMutation) ResetScopeID() {
	m.scope_id = nil
	delete(m.clearedFields, focusdirective.FieldScopeID)
}

// SetScopeValue sets the "scope_value" field.
func (m *FocusDirectiveMutation) SetScopeValue(s string) {
	m.scope_value = &s
}

// ScopeValue returns the value of the "scope_value" field in the mutation.
func (m *FocusDirectiveMutation) ScopeValue() (r string, exists bool) {
	v := m.scope_value
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeValue returns the old "scope_value" field's value of the FocusDirective entity.
// If the FocusDirective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FocusDirectiveMutation) OldScopeValue(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeValue: %w", err)
	}
	return oldValue.ScopeValue, nil
}

// ClearScopeValue clears the value of the "scope_value" field.
func (m *FocusDirectiveMutation) ClearScopeValue() {
	m.scope_value = nil
	m.clearedFields[focusdirective.FieldScopeValue] = struct{}{}
}

// ScopeValueCleared returns if the "scope_value" field was cleared in this mutation.
func (m *FocusDirectiveMutation) ScopeValueCleared() bool {
	_, ok := m.clearedFields[focusdirective.FieldScopeValue]
	return ok
}

// ResetScopeValue resets all changes to the "scope_value" field.
func (m *FocusDirectiveMutation) ResetScopeValue() {
	m.scope_value = nil
	delete(m.clearedFields, focusdirective.FieldScopeValue)
}

// SetStrength sets the "strength" field.
func (m *FocusDirectiveMutation) SetStrength(f focusdirective.Strength) {
	m.strength = &f
}

// Strength returns the value of the "strength" field in the mutation.
func (m *FocusDirectiveMutation) Strength() (r focusdirective.Strength, exists bool) {
	v := m.strength
	if v == nil {
		return
	}
	return *v, true
}

// OldStrength returns the old "strength" field's value of the FocusDirective entity.
// If the FocusDirective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FocusDirectiveMutation) OldStrength(ctx context.Context) (v focusdirective.Strength, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrength is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrength requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrength: %w", err)
	}
	return oldValue.Strength, nil
}

// ResetStrength resets all changes to the "strength" field.
func (m *FocusDirectiveMutation) ResetStrength() {
	m.strength = nil
}

// SetIsActive sets the "is_active" field.
func (m *FocusDirectiveMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *FocusDirectiveMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the FocusDirective entity.
// If the FocusDirective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FocusDirectiveMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *FocusDirectiveMutation) ResetIsActive() {
	m.is_active = nil
}

// SetStartsAt sets the "starts_at" field.
func (m *FocusDirectiveMutation) SetStartsAt(t time.Time) {
	m.starts_at = &t
}

// StartsAt returns the value of the "starts_at" field in the mutation.
func (m *FocusDirectiveMutation) StartsAt() (r time.Time, exists bool) {
	v := m.starts_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartsAt returns the old "starts_at" field's value of the FocusDirective entity.
// If the FocusDirective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FocusDirectiveMutation) OldStartsAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartsAt: %w", err)
	}
	return oldValue.StartsAt, nil
}

// ClearStartsAt clears the value of the "starts_at" field.
func (m *FocusDirectiveMutation) ClearStartsAt() {
	m.starts_at = nil
	m.clearedFields[focusdirective.FieldStartsAt] = struct{}{}
}

// StartsAtCleared returns if the "starts_at" field was cleared in this mutation.
func (m *FocusDirectiveMutation) StartsAtCleared() bool {
	_, ok := m.clearedFields[focusdirective.FieldStartsAt]
	return ok
}

// ResetStartsAt resets all changes to the "starts_at" field.
func (m *FocusDirectiveMutation) ResetStartsAt() {
	m.starts_at = nil
	delete(m.clearedFields, focusdirective.FieldStartsAt)
}

// SetEndsAt sets the "ends_at" field.
func (m *FocusDirectiveMutation) SetEndsAt(t time.Time) {
	m.ends_at = &t
}

// EndsAt returns the value of the "ends_at" field in the mutation.
func (m *FocusDirectiveMutation) EndsAt() (r time.Time, exists bool) {
	v := m.ends_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndsAt returns the old "ends_at" field's value of the FocusDirective entity.
// If the FocusDirective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FocusDirectiveMutation) OldEndsAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndsAt: %w", err)
	}
	return oldValue.EndsAt, nil
}

// ClearEndsAt clears the value of the "ends_at" field.
func (m *FocusDirectiveMutation) ClearEndsAt() {
	m.ends_at = nil
	m.clearedFields[focusdirective.FieldEndsAt] = struct{}{}
}

// EndsAtCleared returns if the "ends_at" field was cleared in this mutation.
func (m *FocusDirectiveMutation) EndsAtCleared() bool {
	_, ok := m.clearedFields[focusdirective.FieldEndsAt]
	return ok
}

// ResetEndsAt resets all changes to the "ends_at" field.
func (m *FocusDirectiveMutation) ResetEndsAt() {
	m.ends_at = nil
	delete(m.clearedFields, focusdirective.FieldEndsAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *FocusDirectiveMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FocusDirectiveMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FocusDirective entity.
// If the FocusDirective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FocusDirectiveMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FocusDirectiveMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FocusDirectiveMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FocusDirectiveMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FocusDirective entity.
// If the FocusDirective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FocusDirectiveMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FocusDirectiveMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the FocusDirectiveMutation builder.
func (m *FocusDirectiveMutation) Where(ps ...predicate.FocusDirective) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FocusDirectiveMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FocusDirectiveMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FocusDirective, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FocusDirectiveMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FocusDirectiveMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FocusDirective).
func (m *FocusDirectiveMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FocusDirectiveMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.owner_id != nil {
		fields = append(fields, focusdirective.FieldOwnerID)
	}
	if m.directive_text != nil {
		fields = append(fields, focusdirective.FieldDirectiveText)
	}
	if m.scope_type != nil {
		fields = append(fields, focusdirective.FieldScopeType)
	}
	if m.scope_id != nil {
		fields = append(fields, focusdirective.FieldScopeID)
	}
	if m.scope_value != nil {
		fields = append(fields, focusdirective.FieldScopeValue)
	}
	if m.strength != nil {
		fields = append(fields, focusdirective.FieldStrength)
	}
	if m.is_active != nil {
		fields = append(fields, focusdirective.FieldIsActive)
	}
	if m.starts_at != nil {
		fields = append(fields, focusdirective.FieldStartsAt)
	}
	if m.ends_at != nil {
		fields = append(fields, focusdirective.FieldEndsAt)
	}
	if m.created_at != nil {
		fields = append(fields, focusdirective.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, focusdirective.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FocusDirectiveMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case focusdirective.FieldOwnerID:
		return m.OwnerID()
	case focusdirective.FieldDirectiveText:
		return m.DirectiveText()
	case focusdirective.FieldScopeType:
		return m.ScopeType()
	case focusdirective.FieldScopeID:
		return m.ScopeID()
	case focusdirective.FieldScopeValue:
		return m.ScopeValue()
	case focusdirective.FieldStrength:
		return m.Strength()
	case focusdirective.FieldIsActive:
		return m.IsActive()
	case focusdirective.FieldStartsAt:
		return m.StartsAt()
	case focusdirective.FieldEndsAt:
		return m.EndsAt()
	case focusdirective.FieldCreatedAt:
		return m.CreatedAt()
	case focusdirective.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FocusDirectiveMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case focusdirective.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case focusdirective.FieldDirectiveText:
		return m.OldDirectiveText(ctx)
	case focusdirective.FieldScopeType:
		return m.OldScopeType(ctx)
	case focusdirective.FieldScopeID:
		return m.OldScopeID(ctx)
	case focusdirective.FieldScopeValue:
		return m.OldScopeValue(ctx)
	case focusdirective.FieldStrength:
		return m.OldStrength(ctx)
	case focusdirective.FieldIsActive:
		return m.OldIsActive(ctx)
	case focusdirective.FieldStartsAt:
		return m.OldStartsAt(ctx)
	case focusdirective.FieldEndsAt:
		return m.OldEndsAt(ctx)
	case focusdirective.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case focusdirective.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FocusDirective field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FocusDirectiveMutation) SetField(name string, value ent.Value) error {
	switch name {
	case focusdirective.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case focusdirective.FieldDirectiveText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDirectiveText(v)
		return nil
	case focusdirective.FieldScopeType:
		v, ok := value.(focusdirective.ScopeType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeType(v)
		return nil
	case focusdirective.FieldScopeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeID(v)
		return nil
	case focusdirective.FieldScopeValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeValue(v)
		return nil
	case focusdirective.FieldStrength:
		v, ok := value.(focusdirective.Strength)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrength(v)
		return nil
	case focusdirective.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case focusdirective.FieldStartsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartsAt(v)
		return nil
	case focusdirective.FieldEndsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndsAt(v)
		return nil
	case focusdirective.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case focusdirective.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FocusDirective field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FocusDirectiveMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FocusDirectiveMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FocusDirectiveMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FocusDirective numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FocusDirectiveMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(focusdirective.FieldScopeID) {
		fields = append(fields, focusdirective.FieldScopeID)
	}
	if m.FieldCleared(focusdirective.FieldScopeValue) {
		fields = append(fields, focusdirective.FieldScopeValue)
	}
	if m.FieldCleared(focusdirective.FieldStartsAt) {
		fields = append(fields, focusdirective.FieldStartsAt)
	}
	if m.FieldCleared(focusdirective.FieldEndsAt) {
		fields = append(fields, focusdirective.FieldEndsAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FocusDirectiveMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FocusDirectiveMutation) ClearField(name string) error {
	switch name {
	case focusdirective.FieldScopeID:
		m.ClearScopeID()
		return nil
	case focusdirective.FieldScopeValue:
		m.ClearScopeValue()
		return nil
	case focusdirective.FieldStartsAt:
		m.ClearStartsAt()
		return nil
	case focusdirective.FieldEndsAt:
		m.ClearEndsAt()
		return nil
	}
	return fmt.Errorf("unknown FocusDirective nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FocusDirectiveMutation) ResetField(name string) error {
	switch name {
	case focusdirective.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case focusdirective.FieldDirectiveText:
		m.ResetDirectiveText()
		return nil
	case focusdirective.FieldScopeType:
		m.ResetScopeType()
		return nil
	case focusdirective.FieldScopeID:
		m.ResetScopeID()
		return nil
	case focusdirective.FieldScopeValue:
		m.ResetScopeValue()
		return nil
	case focusdirective.FieldStrength:
		m.ResetStrength()
		return nil
	case focusdirective.FieldIsActive:
		m.ResetIsActive()
		return nil
	case focusdirective.FieldStartsAt:
		m.ResetStartsAt()
		return nil
	case focusdirective.FieldEndsAt:
		m.ResetEndsAt()
		return nil
	case focusdirective.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case focusdirective.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown FocusDirective field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FocusDirectiveMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FocusDirectiveMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FocusDirectiveMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FocusDirectiveMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FocusDirectiveMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FocusDirectiveMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FocusDirectiveMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FocusDirective unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FocusDirectiveMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FocusDirective edge %s", name)
}

// InboxItemMutation represents an operation that mutates the InboxItem nodes in the graph.
type InboxItemMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	owner_id                 *string
	dedupe_key               *string
	subject                  *string
	from_email               *string
	from_name                *string
	received_at              *time.Time
	message_id               *string
	source_url               *string
	triage_state             *inboxitem.TriageState
	extraction_json          *map[string]interface{}
	extraction_model         *string
	extraction_confidence    *float64
	addextraction_confidence *float64
	processing_error         *string
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*InboxItem, error)
	predicates               []predicate.InboxItem
}

var _ ent.Mutation = (*InboxItemMutation)(nil)

// inboxitemOption allows management of the mutation configuration using functional options.
type inboxitemOption func(*InboxItemMutation)

// newInboxItemMutation creates new mutation for the InboxItem entity.
func newInboxItemMutation(c config, op Op, opts ...inboxitemOption) *InboxItemMutation {
	m := &InboxItemMutation{
		config:        c,
		op:            op,
		typ:           TypeInboxItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInboxItemID sets the ID field of the mutation.
func withInboxItemID(id string) inboxitemOption {
	return func(m *InboxItemMutation) {
		var (
			err   error
			once  sync.Once
			value *InboxItem
		)
		m.oldValue = func(ctx context.Context) (*InboxItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InboxItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInboxItem sets the old InboxItem of the mutation.
func withInboxItem(node *InboxItem) inboxitemOption {
	return func(m *InboxItemMutation) {
		m.oldValue = func(context.Context) (*InboxItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InboxItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InboxItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InboxItem entities.
func (m *InboxItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InboxItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InboxItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InboxItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *InboxItemMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *InboxItemMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the InboxItem entity.
// If the InboxItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxItemMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *InboxItemMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetDedupeKey sets the "dedupe_key" field.
func (m *InboxItemMutation) SetDedupeKey(s string) {
	m.dedupe_key = &s
}

// DedupeKey returns the value of the "dedupe_key" field in the mutation.
func (m *InboxItemMutation) DedupeKey() (r string, exists bool) {
	v := m.dedupe_key
	if v == nil {
		return
	}
	return *v, true
}

// OldDedupeKey returns the old "dedupe_key" field's value of the InboxItem entity.
// If the InboxItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxItemMutation) OldDedupeKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDedupeKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDedupeKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDedupeKey: %w", err)
	}
	return oldValue.DedupeKey, nil
}

// ResetDedupeKey resets all changes to the "dedupe_key" field.
func (m *InboxItemMutation) ResetDedupeKey() {
	m.dedupe_key = nil
}

// SetSubject sets the "subject" field.
func (m *InboxItemMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *InboxItemMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the InboxItem entity.
// If the InboxItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxItemMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *InboxItemMutation) ResetSubject() {
	m.subject = nil
}

// SetFromEmail sets the "from_email" field.
func (m *InboxItemMutation) SetFromEmail(s string) {
	m.from_email = &s
}

// FromEmail returns the value of the "from_email" field in the mutation.
func (m *InboxItemMutation) FromEmail() (r string, exists bool) {
	v := m.from_email
	if v == nil {
		return
	}
	return *v, true
}

// OldFromEmail returns the old "from_email" field's value of the InboxItem entity.
// If the InboxItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxItemMutation) OldFromEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromEmail: %w", err)
	}
	return oldValue.FromEmail, nil
}

// ResetFromEmail resets all changes to the "from_email" field.
func (m *InboxItemMutation) ResetFromEmail() {
	m.from_email = nil
}

// SetFromName sets the "from_name" field.
func (m *InboxItemMutation) SetFromName(s string) {
	m.from_name = &s
}

// FromName returns the value of the "from_name" field in the mutation.
func (m *InboxItemMutation) FromName() (r string, exists bool) {
	v := m.from_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFromName returns the old "from_name" field's value of the InboxItem entity.
// If the InboxItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxItemMutation) OldFromName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromName: %w", err)
	}
	return oldValue.FromName, nil
}

// ClearFromName clears the value of the "from_name" field.
func (m *InboxItemMutation) ClearFromName() {
	m.from_name = nil
	m.clearedFields[inboxitem.FieldFromName] = struct{}{}
}

// FromNameCleared returns if the "from_name" field was cleared in this mutation.
func (m *InboxItemMutation) FromNameCleared() bool {
	_, ok := m.clearedFields[inboxitem.FieldFromName]
	return ok
}

// ResetFromName resets all changes to the "from_name" field.
func (m *InboxItemMutation) ResetFromName() {
	m.from_name = nil
	delete(m.clearedFields, inboxitem.FieldFromName)
}

// SetReceivedAt sets the "received_at" field.
func (m *InboxItemMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *InboxItemMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the InboxItem entity.
// If the InboxItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxItemMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *InboxItemMutation) ResetReceivedAt() {
	m.received_at = nil
}

// SetMessageID sets the "message_id" field.
func (m *InboxItemMutation) SetMessageID(s string) {
	m.message_id = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *InboxItemMutation) MessageID() (r string, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the InboxItem entity.
// If the InboxItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxItemMutation) OldMessageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ClearMessageID clears the value of the "message_id" field.
func (m *InboxItemMutation) ClearMessageID() {
	m.message_id = nil
	m.clearedFields[inboxitem.FieldMessageID] = struct{}{}
}

// MessageIDCleared returns if the "message_id" field was cleared in this mutation.
func (m *InboxItemMutation) MessageIDCleared() bool {
	_, ok := m.clearedFields[inboxitem.FieldMessageID]
	return ok
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *InboxItemMutation) ResetMessageID() {
	m.message_id = nil
	delete(m.clearedFields, inboxitem.FieldMessageID)
}

// SetSourceURL sets the "source_url" field.
func (m *InboxItemMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *InboxItemMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the InboxItem entity.
// If the InboxItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxItemMutation) OldSourceURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ClearSourceURL clears the value of the "source_url" field.
func (m *InboxItemMutation) ClearSourceURL() {
	m.source_url = nil
	m.clearedFields[inboxitem.FieldSourceURL] = struct{}{}
}

// SourceURLCleared returns if the "source_url" field was cleared in this mutation.
func (m *InboxItemMutation) SourceURLCleared() bool {
	_, ok := m.clearedFields[inboxitem.FieldSourceURL]
	return ok
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *InboxItemMutation) ResetSourceURL() {
	m.source_url = nil
	delete(m.clearedFields, inboxitem.FieldSourceURL)
}

// SetTriageState sets the "triage_state" field.
func (m *InboxItemMutation) SetTriageState(is inboxitem.TriageState) {
	m.triage_state = &is
}

// TriageState returns the value of the "triage_state" field in the mutation.
func (m *InboxItemMutation) TriageState() (r inboxitem.TriageState, exists bool) {
	v := m.triage_state
	if v == nil {
		return
	}
	return *v, true
}

// OldTriageState returns the old "triage_state" field's value of the InboxItem entity.
// If the InboxItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxItemMutation) OldTriageState(ctx context.Context) (v inboxitem.TriageState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriageState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriageState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriageState: %w", err)
	}
	return oldValue.TriageState, nil
}

// ResetTriageState resets all changes to the "triage_state" field.
func (m *InboxItemMutation) ResetTriageState() {
	m.triage_state = nil
}

// SetExtractionJSON sets the "extraction_json" field.
func (m *InboxItemMutation) SetExtractionJSON(value map[string]interface{}) {
	m.extraction_json = &value
}

// ExtractionJSON returns the value of the "extraction_json" field in the mutation.
func (m *InboxItemMutation) ExtractionJSON() (r map[string]interface{}, exists bool) {
	v := m.extraction_json
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionJSON returns the old "extraction_json" field's value of the InboxItem entity.
// If the InboxItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxItemMutation) OldExtractionJSON(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionJSON: %w", err)
	}
	return oldValue.ExtractionJSON, nil
}

// ClearExtractionJSON clears the value of the "extraction_json" field.
func (m *InboxItemMutation) ClearExtractionJSON() {
	m.extraction_json = nil
	m.clearedFields[inboxitem.FieldExtractionJSON] = struct{}{}
}

// ExtractionJSONCleared returns if the "extraction_json" field was cleared in this mutation.
func (m *InboxItemMutation) ExtractionJSONCleared() bool {
	_, ok := m.clearedFields[inboxitem.FieldExtractionJSON]
	return ok
}

// ResetExtractionJSON resets all changes to the "extraction_json" field.
func (m *InboxItemMutation) ResetExtractionJSON() {
	m.extraction_json = nil
	delete(m.clearedFields, inboxitem.FieldExtractionJSON)
}

// SetExtractionModel sets the "extraction_model" field.
func (m *InboxItemMutation) SetExtractionModel(s string) {
	m.extraction_model = &s
}

// ExtractionModel returns the value of the "extraction_model" field in the mutation.
func (m *InboxItemMutation) ExtractionModel() (r string, exists bool) {
	v := m.extraction_model
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionModel returns the old "extraction_model" field's value of the InboxItem entity.
// If the InboxItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxItemMutation) OldExtractionModel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionModel: %w", err)
	}
	return oldValue.ExtractionModel, nil
}

// ClearExtractionModel clears the value of the "extraction_model" field.
func (m *InboxItemMutation) ClearExtractionModel() {
	m.extraction_model = nil
	m.clearedFields[inboxitem.FieldExtractionModel] = struct{}{}
}

// ExtractionModelCleared returns if the "extraction_model" field was cleared in this mutation.
func (m *InboxItemMutation) ExtractionModelCleared() bool {
	_, ok := m.clearedFields[inboxitem.FieldExtractionModel]
	return ok
}

// ResetExtractionModel resets all changes to the "extraction_model" field.
func (m *InboxItemMutation) ResetExtractionModel() {
	m.extraction_model = nil
	delete(m.clearedFields, inboxitem.FieldExtractionModel)
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (m *InboxItemMutation) SetExtractionConfidence(f float64) {
	m.extraction_confidence = &f
	m.addextraction_confidence = nil
}

// ExtractionConfidence returns the value of the "extraction_confidence" field in the mutation.
func (m *InboxItemMutation) ExtractionConfidence() (r float64, exists bool) {
	v := m.extraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionConfidence returns the old "extraction_confidence" field's value of the InboxItem entity.
// If the InboxItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxItemMutation) OldExtractionConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionConfidence: %w", err)
	}
	return oldValue.ExtractionConfidence, nil
}

// AddExtractionConfidence adds f to the "extraction_confidence" field.
func (m *InboxItemMutation) AddExtractionConfidence(f float64) {
	if m.addextraction_confidence != nil {
		*m.addextraction_confidence += f
	} else {
		m.addextraction_confidence = &f
	}
}

// AddedExtractionConfidence returns the value that was added to the "extraction_confidence" field in this mutation.
func (m *InboxItemMutation) AddedExtractionConfidence() (r float64, exists bool) {
	v := m.addextraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearExtractionConfidence clears the value of the "extraction_confidence" field.
func (m *InboxItemMutation) ClearExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
	m.clearedFields[inboxitem.FieldExtractionConfidence] = struct{}{}
}

// ExtractionConfidenceCleared returns if the "extraction_confidence" field was cleared in this mutation.
func (m *InboxItemMutation) ExtractionConfidenceCleared() bool {
	_, ok := m.clearedFields[inboxitem.FieldExtractionConfidence]
	return ok
}

// ResetExtractionConfidence resets all changes to the "extraction_confidence" field.
func (m *InboxItemMutation) ResetExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
	delete(m.clearedFields, inboxitem.FieldExtractionConfidence)
}

// SetProcessingError sets the "processing_error" field.
func (m *InboxItemMutation) SetProcessingError(s string) {
	m.processing_error = &s
}

// ProcessingError returns the value of the "processing_error" field in the mutation.
func (m *InboxItemMutation) ProcessingError() (r string, exists bool) {
	v := m.processing_error
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingError returns the old "processing_error" field's value of the InboxItem entity.
// If the InboxItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxItemMutation) OldProcessingError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingError: %w", err)
	}
	return oldValue.ProcessingError, nil
}

// ClearProcessingError clears the value of the "processing_error" field.
func (m *InboxItemMutation) ClearProcessingError() {
	m.processing_error = nil
	m.clearedFields[inboxitem.FieldProcessingError] = struct{}{}
}

// ProcessingErrorCleared returns if the "processing_error" field was cleared in this mutation.
func (m *InboxItemMutation) ProcessingErrorCleared() bool {
	_, ok := m.clearedFields[inboxitem.FieldProcessingError]
	return ok
}

// ResetProcessingError resets all changes to the "processing_error" field.
func (m *InboxItemMutation) ResetProcessingError() {
	m.processing_error = nil
	delete(m.clearedFields, inboxitem.FieldProcessingError)
}

// SetCreatedAt sets the "created_at" field.
func (m *InboxItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InboxItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InboxItem entity.
// If the InboxItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InboxItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InboxItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InboxItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the InboxItem entity.
// If the InboxItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InboxItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the InboxItemMutation builder.
func (m *InboxItemMutation) Where(ps ...predicate.InboxItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InboxItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InboxItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InboxItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InboxItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InboxItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InboxItem).
func (m *InboxItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InboxItemMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.owner_id != nil {
		fields = append(fields, inboxitem.FieldOwnerID)
	}
	if m.dedupe_key != nil {
		fields = append(fields, inboxitem.FieldDedupeKey)
	}
	if m.subject != nil {
		fields = append(fields, inboxitem.FieldSubject)
	}
	if m.from_email != nil {
		fields = append(fields, inboxitem.FieldFromEmail)
	}
	if m.from_name != nil {
		fields = append(fields, inboxitem.FieldFromName)
	}
	if m.received_at != nil {
		fields = append(fields, inboxitem.FieldReceivedAt)
	}
	if m.message_id != nil {
		fields = append(fields, inboxitem.FieldMessageID)
	}
	if m.source_url != nil {
		fields = append(fields, inboxitem.FieldSourceURL)
	}
	if m.triage_state != nil {
		fields = append(fields, inboxitem.FieldTriageState)
	}
	if m.extraction_json != nil {
		fields = append(fields, inboxitem.FieldExtractionJSON)
	}
	if m.extraction_model != nil {
		fields = append(fields, inboxitem.FieldExtractionModel)
	}
	if m.extraction_confidence != nil {
		fields = append(fields, inboxitem.FieldExtractionConfidence)
	}
	if m.processing_error != nil {
		fields = append(fields, inboxitem.FieldProcessingError)
	}
	if m.created_at != nil {
		fields = append(fields, inboxitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, inboxitem.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InboxItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case inboxitem.FieldOwnerID:
		return m.OwnerID()
	case inboxitem.FieldDedupeKey:
		return m.DedupeKey()
	case inboxitem.FieldSubject:
		return m.Subject()
	case inboxitem.FieldFromEmail:
		return m.FromEmail()
	case inboxitem.FieldFromName:
		return m.FromName()
	case inboxitem.FieldReceivedAt:
		return m.ReceivedAt()
	case inboxitem.FieldMessageID:
		return m.MessageID()
	case inboxitem.FieldSourceURL:
		return m.SourceURL()
	case inboxitem.FieldTriageState:
		return m.TriageState()
	case inboxitem.FieldExtractionJSON:
		return m.ExtractionJSON()
	case inboxitem.FieldExtractionModel:
		return m.ExtractionModel()
	case inboxitem.FieldExtractionConfidence:
		return m.ExtractionConfidence()
	case inboxitem.FieldProcessingError:
		return m.ProcessingError()
	case inboxitem.FieldCreatedAt:
		return m.CreatedAt()
	case inboxitem.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InboxItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case inboxitem.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case inboxitem.FieldDedupeKey:
		return m.OldDedupeKey(ctx)
	case inboxitem.FieldSubject:
		return m.OldSubject(ctx)
	case inboxitem.FieldFromEmail:
		return m.OldFromEmail(ctx)
	case inboxitem.FieldFromName:
		return m.OldFromName(ctx)
	case inboxitem.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	case inboxitem.FieldMessageID:
		return m.OldMessageID(ctx)
	case inboxitem.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case inboxitem.FieldTriageState:
		return m.OldTriageState(ctx)
	case inboxitem.FieldExtractionJSON:
		return m.OldExtractionJSON(ctx)
	case inboxitem.FieldExtractionModel:
		return m.OldExtractionModel(ctx)
	case inboxitem.FieldExtractionConfidence:
		return m.OldExtractionConfidence(ctx)
	case inboxitem.FieldProcessingError:
		return m.OldProcessingError(ctx)
	case inboxitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case inboxitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InboxItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InboxItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case inboxitem.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case inboxitem.FieldDedupeKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDedupeKey(v)
		return nil
	case inboxitem.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case inboxitem.FieldFromEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromEmail(v)
		return nil
	case inboxitem.FieldFromName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromName(v)
		return nil
	case inboxitem.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	case inboxitem.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case inboxitem.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case inboxitem.FieldTriageState:
		v, ok := value.(inboxitem.TriageState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriageState(v)
		return nil
	case inboxitem.FieldExtractionJSON:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionJSON(v)
		return nil
	case inboxitem.FieldExtractionModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionModel(v)
		return nil
	case inboxitem.FieldExtractionConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionConfidence(v)
		return nil
	case inboxitem.FieldProcessingError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingError(v)
		return nil
	case inboxitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case inboxitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InboxItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InboxItemMutation) AddedFields() []string {
	var fields []string
	if m.addextraction_confidence != nil {
		fields = append(fields, inboxitem.FieldExtractionConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InboxItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case inboxitem.FieldExtractionConfidence:
		return m.AddedExtractionConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InboxItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case inboxitem.FieldExtractionConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractionConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown InboxItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InboxItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(inboxitem.FieldFromName) {
		fields = append(fields, inboxitem.FieldFromName)
	}
	if m.FieldCleared(inboxitem.FieldMessageID) {
		fields = append(fields, inboxitem.FieldMessageID)
	}
	if m.FieldCleared(inboxitem.FieldSourceURL) {
		fields = append(fields, inboxitem.FieldSourceURL)
	}
	if m.FieldCleared(inboxitem.FieldExtractionJSON) {
		fields = append(fields, inboxitem.FieldExtractionJSON)
	}
	if m.FieldCleared(inboxitem.FieldExtractionModel) {
		fields = append(fields, inboxitem.FieldExtractionModel)
	}
	if m.FieldCleared(inboxitem.FieldExtractionConfidence) {
		fields = append(fields, inboxitem.FieldExtractionConfidence)
	}
	if m.FieldCleared(inboxitem.FieldProcessingError) {
		fields = append(fields, inboxitem.FieldProcessingError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InboxItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InboxItemMutation) ClearField(name string) error {
	switch name {
	case inboxitem.FieldFromName:
		m.ClearFromName()
		return nil
	case inboxitem.FieldMessageID:
		m.ClearMessageID()
		return nil
	case inboxitem.FieldSourceURL:
		m.ClearSourceURL()
		return nil
	case inboxitem.FieldExtractionJSON:
		m.ClearExtractionJSON()
		return nil
	case inboxitem.FieldExtractionModel:
		m.ClearExtractionModel()
		return nil
	case inboxitem.FieldExtractionConfidence:
		m.ClearExtractionConfidence()
		return nil
	case inboxitem.FieldProcessingError:
		m.ClearProcessingError()
		return nil
	}
	return fmt.Errorf("unknown InboxItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InboxItemMutation) ResetField(name string) error {
	switch name {
	case inboxitem.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case inboxitem.FieldDedupeKey:
		m.ResetDedupeKey()
		return nil
	case inboxitem.FieldSubject:
		m.ResetSubject()
		return nil
	case inboxitem.FieldFromEmail:
		m.ResetFromEmail()
		return nil
	case inboxitem.FieldFromName:
		m.ResetFromName()
		return nil
	case inboxitem.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	case inboxitem.FieldMessageID:
		m.ResetMessageID()
		return nil
	case inboxitem.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case inboxitem.FieldTriageState:
		m.ResetTriageState()
		return nil
	case inboxitem.FieldExtractionJSON:
		m.ResetExtractionJSON()
		return nil
	case inboxitem.FieldExtractionModel:
		m.ResetExtractionModel()
		return nil
	case inboxitem.FieldExtractionConfidence:
		m.ResetExtractionConfidence()
		return nil
	case inboxitem.FieldProcessingError:
		m.ResetProcessingError()
		return nil
	case inboxitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case inboxitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown InboxItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InboxItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InboxItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InboxItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InboxItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InboxItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InboxItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InboxItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InboxItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InboxItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InboxItem edge %s", name)
}

// IngestionEventMutation represents an operation that mutates the IngestionEvent nodes in the graph.
type IngestionEventMutation struct {
	config
	op            Op
	typ           string
	id            *string
	owner_id      *string
	inbox_item_id *string
	event_type    *ingestionevent.EventType
	detail        *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*IngestionEvent, error)
	predicates    []predicate.IngestionEvent
}

var _ ent.Mutation = (*IngestionEventMutation)(nil)

// ingestioneventOption allows management of the mutation configuration using functional options.
type ingestioneventOption func(*IngestionEventMutation)

// newIngestionEventMutation creates new mutation for the IngestionEvent entity.
func newIngestionEventMutation(c config, op Op, opts ...ingestioneventOption) *IngestionEventMutation {
	m := &IngestionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeIngestionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIngestionEventID sets the ID field of the mutation.
func withIngestionEventID(id string) ingestioneventOption {
	return func(m *IngestionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *IngestionEvent
		)
		m.oldValue = func(ctx context.Context) (*IngestionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IngestionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIngestionEvent sets the old IngestionEvent of the mutation.
func withIngestionEvent(node *IngestionEvent) ingestioneventOption {
	return func(m *IngestionEventMutation) {
		m.oldValue = func(context.Context) (*IngestionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IngestionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IngestionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IngestionEvent entities.
func (m *IngestionEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IngestionEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IngestionEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IngestionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *IngestionEventMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *IngestionEventMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the IngestionEvent entity.
// If the IngestionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestionEventMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *IngestionEventMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetInboxItemID sets the "inbox_item_id" field.
func (m *IngestionEventMutation) SetInboxItemID(s string) {
	m.inbox_item_id = &s
}

// InboxItemID returns the value of the "inbox_item_id" field in the mutation.
func (m *IngestionEventMutation) InboxItemID() (r string, exists bool) {
	v := m.inbox_item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInboxItemID returns the old "inbox_item_id" field's value of the IngestionEvent entity.
// If the IngestionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestionEventMutation) OldInboxItemID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInboxItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInboxItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInboxItemID: %w", err)
	}
	return oldValue.InboxItemID, nil
}

// ClearInboxItemID clears the value of the "inbox_item_id" field.
func (m *IngestionEventMutation) ClearInboxItemID() {
	m.inbox_item_id = nil
	m.clearedFields[ingestionevent.FieldInboxItemID] = struct{}{}
}

// InboxItemIDCleared returns if the "inbox_item_id" field was cleared in this mutation.
func (m *IngestionEventMutation) InboxItemIDCleared() bool {
	_, ok := m.clearedFields[ingestionevent.FieldInboxItemID]
	return ok
}

// ResetInboxItemID resets all changes to the "inbox_item_id" field.
func (m *IngestionEventMutation) ResetInboxItemID() {
	m.inbox_item_id = nil
	delete(m.clearedFields, ingestionevent.FieldInboxItemID)
}

// SetEventType sets the "event_type" field.
func (m *IngestionEventMutation) SetEventType(it ingestionevent.EventType) {
	m.event_type = &it
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *IngestionEventMutation) EventType() (r ingestionevent.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the IngestionEvent entity.
// If the IngestionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestionEventMutation) OldEventType(ctx context.Context) (v ingestionevent.EventType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *IngestionEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetDetail sets the "detail" field.
func (m *IngestionEventMutation) SetDetail(s string) {
	m.detail = &s
}

// Detail returns the value of the "detail" field in the mutation.
func (m *IngestionEventMutation) Detail() (r string, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the IngestionEvent entity.
// If the IngestionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestionEventMutation) OldDetail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *IngestionEventMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[ingestionevent.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *IngestionEventMutation) DetailCleared() bool {
	_, ok := m.clearedFields[ingestionevent.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *IngestionEventMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, ingestionevent.FieldDetail)
}

// SetCreatedAt sets the "created_at" field.
func (m *IngestionEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IngestionEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the IngestionEvent entity.
// If the IngestionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestionEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IngestionEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the IngestionEventMutation builder.
func (m *IngestionEventMutation) Where(ps ...predicate.IngestionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IngestionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IngestionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IngestionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IngestionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IngestionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IngestionEvent).
func (m *IngestionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IngestionEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.owner_id != nil {
		fields = append(fields, ingestionevent.FieldOwnerID)
	}
	if m.inbox_item_id != nil {
		fields = append(fields, ingestionevent.FieldInboxItemID)
	}
	if m.event_type != nil {
		fields = append(fields, ingestionevent.FieldEventType)
	}
	if m.detail != nil {
		fields = append(fields, ingestionevent.FieldDetail)
	}
	if m.created_at != nil {
		fields = append(fields, ingestionevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IngestionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ingestionevent.FieldOwnerID:
		return m.OwnerID()
	case ingestionevent.FieldInboxItemID:
		return m.InboxItemID()
	case ingestionevent.FieldEventType:
		return m.EventType()
	case ingestionevent.FieldDetail:
		return m.Detail()
	case ingestionevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IngestionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ingestionevent.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case ingestionevent.FieldInboxItemID:
		return m.OldInboxItemID(ctx)
	case ingestionevent.FieldEventType:
		return m.OldEventType(ctx)
	case ingestionevent.FieldDetail:
		return m.OldDetail(ctx)
	case ingestionevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IngestionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngestionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ingestionevent.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case ingestionevent.FieldInboxItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInboxItemID(v)
		return nil
	case ingestionevent.FieldEventType:
		v, ok := value.(ingestionevent.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case ingestionevent.FieldDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case ingestionevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IngestionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IngestionEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IngestionEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngestionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown IngestionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IngestionEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ingestionevent.FieldInboxItemID) {
		fields = append(fields, ingestionevent.FieldInboxItemID)
	}
	if m.FieldCleared(ingestionevent.FieldDetail) {
		fields = append(fields, ingestionevent.FieldDetail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IngestionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IngestionEventMutation) ClearField(name string) error {
	switch name {
	case ingestionevent.FieldInboxItemID:
		m.ClearInboxItemID()
		return nil
	case ingestionevent.FieldDetail:
		m.ClearDetail()
		return nil
	}
	return fmt.Errorf("unknown IngestionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IngestionEventMutation) ResetField(name string) error {
	switch name {
	case ingestionevent.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case ingestionevent.FieldInboxItemID:
		m.ResetInboxItemID()
		return nil
	case ingestionevent.FieldEventType:
		m.ResetEventType()
		return nil
	case ingestionevent.FieldDetail:
		m.ResetDetail()
		return nil
	case ingestionevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown IngestionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IngestionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IngestionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IngestionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IngestionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IngestionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IngestionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IngestionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown IngestionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IngestionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown IngestionEvent edge %s", name)
}

// ModelCatalogEntryMutation represents an operation that mutates the ModelCatalogEntry nodes in the graph.
type ModelCatalogEntryMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	provider                 *modelcatalogentry.Provider
	model_id                 *string
	display_name             *string
	input_price_per_mtok     *float64
	addinput_price_per_mtok  *float64
	output_price_per_mtok    *float64
	addoutput_price_per_mtok *float64
	tier                     *modelcatalogentry.Tier
	enabled                  *bool
	pricing_is_placeholder   *bool
	sort_order               *int
	addsort_order            *int
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*ModelCatalogEntry, error)
	predicates               []predicate.ModelCatalogEntry
}

var _ ent.Mutation = (*ModelCatalogEntryMutation)(nil)

// modelcatalogentryOption allows management of the mutation configuration using functional options.
type modelcatalogentryOption func(*ModelCatalogEntryMutation)

// newModelCatalogEntryMutation creates new mutation for the ModelCatalogEntry entity.
func newModelCatalogEntryMutation(c config, op Op, opts ...modelcatalogentryOption) *ModelCatalogEntryMutation {
	m := &ModelCatalogEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeModelCatalogEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withModelCatalogEntryID sets the ID field of the mutation.
func withModelCatalogEntryID(id string) modelcatalogentryOption {
	return func(m *ModelCatalogEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *ModelCatalogEntry
		)
		m.oldValue = func(ctx context.Context) (*ModelCatalogEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ModelCatalogEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withModelCatalogEntry sets the old ModelCatalogEntry of the mutation.
func withModelCatalogEntry(node *ModelCatalogEntry) modelcatalogentryOption {
	return func(m *ModelCatalogEntryMutation) {
		m.oldValue = func(context.Context) (*ModelCatalogEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ModelCatalogEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ModelCatalogEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ModelCatalogEntry entities.
func (m *ModelCatalogEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ModelCatalogEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ModelCatalogEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ModelCatalogEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProvider sets the "provider" field.
func (m *ModelCatalogEntryMutation) SetProvider(value modelcatalogentry.Provider) {
	m.provider = &value
}

// Provider returns the value of the "provider" field in the mutation.
func (m *ModelCatalogEntryMutation) Provider() (r modelcatalogentry.Provider, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the ModelCatalogEntry entity.
// If the ModelCatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCatalogEntryMutation) OldProvider(ctx context.Context) (v modelcatalogentry.Provider, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *ModelCatalogEntryMutation) ResetProvider() {
	m.provider = nil
}

// SetModelID sets the "model_id" field.
func (m *ModelCatalogEntryMutation) SetModelID(s string) {
	m.model_id = &s
}

// ModelID returns the value of the "model_id" field in the mutation.
func (m *ModelCatalogEntryMutation) ModelID() (r string, exists bool) {
	v := m.model_id
	if v == nil {
		return
	}
	return *v, true
}

// OldModelID returns the old "model_id" field's value of the ModelCatalogEntry entity.
// If the ModelCatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCatalogEntryMutation) OldModelID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelID: %w", err)
	}
	return oldValue.ModelID, nil
}

// ResetModelID resets all changes to the "model_id" field.
func (m *ModelCatalogEntryMutation) ResetModelID() {
	m.model_id = nil
}

// SetDisplayName sets the "display_name" field.
func (m *ModelCatalogEntryMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *ModelCatalogEntryMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the ModelCatalogEntry entity.
// If the ModelCatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCatalogEntryMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *ModelCatalogEntryMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetInputPricePerMtok sets the "input_price_per_mtok" field.
func (m *ModelCatalogEntryMutation) SetInputPricePerMtok(f float64) {
	m.input_price_per_mtok = &f
	m.addinput_price_per_mtok = nil
}

// InputPricePerMtok returns the value of the "input_price_per_mtok" field in the mutation.
func (m *ModelCatalogEntryMutation) InputPricePerMtok() (r float64, exists bool) {
	v := m.input_price_per_mtok
	if v == nil {
		return
	}
	return *v, true
}

// OldInputPricePerMtok returns the old "input_price_per_mtok" field's value of the ModelCatalogEntry entity.
// If the ModelCatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCatalogEntryMutation) OldInputPricePerMtok(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputPricePerMtok is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputPricePerMtok requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputPricePerMtok: %w", err)
	}
	return oldValue.InputPricePerMtok, nil
}

// AddInputPricePerMtok adds f to the "input_price_per_mtok" field.
func (m *ModelCatalogEntryMutation) AddInputPricePerMtok(f float64) {
	if m.addinput_price_per_mtok != nil {
		*m.addinput_price_per_mtok += f
	} else {
		m.addinput_price_per_mtok = &f
	}
}

// AddedInputPricePerMtok returns the value that was added to the "input_price_per_mtok" field in this mutation.
func (m *ModelCatalogEntryMutation) AddedInputPricePerMtok() (r float64, exists bool) {
	v := m.addinput_price_per_mtok
	if v == nil {
		return
	}
	return *v, true
}

// ClearInputPricePerMtok clears the value of the "input_price_per_mtok" field.
func (m *ModelCatalogEntryMutation) ClearInputPricePerMtok() {
	m.input_price_per_mtok = nil
	m.addinput_price_per_mtok = nil
	m.clearedFields[modelcatalogentry.FieldInputPricePerMtok] = struct{}{}
}

// InputPricePerMtokCleared returns if the "input_price_per_mtok" field was cleared in this mutation.
func (m *ModelCatalogEntryMutation) InputPricePerMtokCleared() bool {
	_, ok := m.clearedFields[modelcatalogentry.FieldInputPricePerMtok]
	return ok
}

// ResetInputPricePerMtok resets all changes to the "input_price_per_mtok" field.
func (m *ModelCatalogEntryMutation) ResetInputPricePerMtok() {
	m.input_price_per_mtok = nil
	m.addinput_price_per_mtok = nil
	delete(m.clearedFields, modelcatalogentry.FieldInputPricePerMtok)
}

// SetOutputPricePerMtok sets the "output_price_per_mtok" field.
func (m *ModelCatalogEntryMutation) SetOutputPricePerMtok(f float64) {
	m.output_price_per_mtok = &f
	m.addoutput_price_per_mtok = nil
}

// OutputPricePerMtok returns the value of the "output_price_per_mtok" field in the mutation.
func (m *ModelCatalogEntryMutation) OutputPricePerMtok() (r float64, exists bool) {
	v := m.output_price_per_mtok
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputPricePerMtok returns the old "output_price_per_mtok" field's value of the ModelCatalogEntry entity.
// If the ModelCatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCatalogEntryMutation) OldOutputPricePerMtok(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputPricePerMtok is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputPricePerMtok requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputPricePerMtok: %w", err)
	}
	return oldValue.OutputPricePerMtok, nil
}

// AddOutputPricePerMtok adds f to the "output_price_per_mtok" field.
func (m *ModelCatalogEntryMutation) AddOutputPricePerMtok(f float64) {
	if m.addoutput_price_per_mtok != nil {
		*m.addoutput_price_per_mtok += f
	} else {
		m.addoutput_price_per_mtok = &f
	}
}

// AddedOutputPricePerMtok returns the value that was added to the "output_price_per_mtok" field in this mutation.
func (m *ModelCatalogEntryMutation) AddedOutputPricePerMtok() (r float64, exists bool) {
	v := m.addoutput_price_per_mtok
	if v == nil {
		return
	}
	return *v, true
}

// ClearOutputPricePerMtok clears the value of the "output_price_per_mtok" field.
func (m *ModelCatalogEntryMutation) ClearOutputPricePerMtok() {
	m.output_price_per_mtok = nil
	m.addoutput_price_per_mtok = nil
	m.clearedFields[modelcatalogentry.FieldOutputPricePerMtok] = struct{}{}
}

// OutputPricePerMtokCleared returns if the "output_price_per_mtok" field was cleared in this mutation.
func (m *ModelCatalogEntryMutation) OutputPricePerMtokCleared() bool {
	_, ok := m.clearedFields[modelcatalogentry.FieldOutputPricePerMtok]
	return ok
}

// ResetOutputPricePerMtok resets all changes to the "output_price_per_mtok" field.
func (m *ModelCatalogEntryMutation) ResetOutputPricePerMtok() {
	m.output_price_per_mtok = nil
	m.addoutput_price_per_mtok = nil
	delete(m.clearedFields, modelcatalogentry.FieldOutputPricePerMtok)
}

// SetTier sets the "tier" field.
func (m *ModelCatalogEntryMutation) SetTier(value modelcatalogentry.Tier) {
	m.tier = &value
}

// Tier returns the value of the "tier" field in the mutation.
func (m *ModelCatalogEntryMutation) Tier() (r modelcatalogentry.Tier, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the ModelCatalogEntry entity.
// If the ModelCatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCatalogEntryMutation) OldTier(ctx context.Context) (v *modelcatalogentry.Tier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// ClearTier clears the value of the "tier" field.
func (m *ModelCatalogEntryMutation) ClearTier() {
	m.tier = nil
	m.clearedFields[modelcatalogentry.FieldTier] = struct{}{}
}

// TierCleared returns if the "tier" field was cleared in this mutation.
func (m *ModelCatalogEntryMutation) TierCleared() bool {
	_, ok := m.clearedFields[modelcatalogentry.FieldTier]
	return ok
}

// ResetTier resets all changes to the "tier" field.
func (m *ModelCatalogEntryMutation) ResetTier() {
	m.tier = nil
	delete(m.clearedFields, modelcatalogentry.FieldTier)
}

// SetEnabled sets the "enabled" field.
func (m *ModelCatalogEntryMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *ModelCatalogEntryMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the ModelCatalogEntry entity.
// If the ModelCatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCatalogEntryMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *ModelCatalogEntryMutation) ResetEnabled() {
	m.enabled = nil
}

// SetPricingIsPlaceholder sets the "pricing_is_placeholder" field.
func (m *ModelCatalogEntryMutation) SetPricingIsPlaceholder(b bool) {
	m.pricing_is_placeholder = &b
}

// PricingIsPlaceholder returns the value of the "pricing_is_placeholder" field in the mutation.
func (m *ModelCatalogEntryMutation) PricingIsPlaceholder() (r bool, exists bool) {
	v := m.pricing_is_placeholder
	if v == nil {
		return
	}
	return *v, true
}

// OldPricingIsPlaceholder returns the old "pricing_is_placeholder" field's value of the ModelCatalogEntry entity.
// If the ModelCatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCatalogEntryMutation) OldPricingIsPlaceholder(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPricingIsPlaceholder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPricingIsPlaceholder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPricingIsPlaceholder: %w", err)
	}
	return oldValue.PricingIsPlaceholder, nil
}

// ResetPricingIsPlaceholder resets all changes to the "pricing_is_placeholder" field.
func (m *ModelCatalogEntryMutation) ResetPricingIsPlaceholder() {
	m.pricing_is_placeholder = nil
}

// SetSortOrder sets the "sort_order" field.
func (m *ModelCatalogEntryMutation) SetSortOrder(i int) {
	m.sort_order = &i
	m.addsort_order = nil
}

// SortOrder returns the value of the "sort_order" field in the mutation.
func (m *ModelCatalogEntryMutation) SortOrder() (r int, exists bool) {
	v := m.sort_order
	if v == nil {
		return
	}
	return *v, true
}

// OldSortOrder returns the old "sort_order" field's value of the ModelCatalogEntry entity.
// If the ModelCatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCatalogEntryMutation) OldSortOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSortOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSortOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSortOrder: %w", err)
	}
	return oldValue.SortOrder, nil
}

// AddSortOrder adds i to the "sort_order" field.
func (m *ModelCatalogEntryMutation) AddSortOrder(i int) {
	if m.addsort_order != nil {
		*m.addsort_order += i
	} else {
		m.addsort_order = &i
	}
}

// AddedSortOrder returns the value that was added to the "sort_order" field in this mutation.
func (m *ModelCatalogEntryMutation) AddedSortOrder() (r int, exists bool) {
	v := m.addsort_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetSortOrder resets all changes to the "sort_order" field.
func (m *ModelCatalogEntryMutation) ResetSortOrder() {
	m.sort_order = nil
	m.addsort_order = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ModelCatalogEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ModelCatalogEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ModelCatalogEntry entity.
// If the ModelCatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCatalogEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ModelCatalogEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ModelCatalogEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ModelCatalogEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ModelCatalogEntry entity.
// If the ModelCatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCatalogEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ModelCatalogEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ModelCatalogEntryMutation builder.
func (m *ModelCatalogEntryMutation) Where(ps ...predicate.ModelCatalogEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ModelCatalogEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ModelCatalogEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ModelCatalogEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ModelCatalogEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ModelCatalogEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ModelCatalogEntry).
func (m *ModelCatalogEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ModelCatalogEntryMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.provider != nil {
		fields = append(fields, modelcatalogentry.FieldProvider)
	}
	if m.model_id != nil {
		fields = append(fields, modelcatalogentry.FieldModelID)
	}
	if m.display_name != nil {
		fields = append(fields, modelcatalogentry.FieldDisplayName)
	}
	if m.input_price_per_mtok != nil {
		fields = append(fields, modelcatalogentry.FieldInputPricePerMtok)
	}
	if m.output_price_per_mtok != nil {
		fields = append(fields, modelcatalogentry.FieldOutputPricePerMtok)
	}
	if m.tier != nil {
		fields = append(fields, modelcatalogentry.FieldTier)
	}
	if m.enabled != nil {
		fields = append(fields, modelcatalogentry.FieldEnabled)
	}
	if m.pricing_is_placeholder != nil {
		fields = append(fields, modelcatalogentry.FieldPricingIsPlaceholder)
	}
	if m.sort_order != nil {
		fields = append(fields, modelcatalogentry.FieldSortOrder)
	}
	if m.created_at != nil {
		fields = append(fields, modelcatalogentry.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, modelcatalogentry.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ModelCatalogEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case modelcatalogentry.FieldProvider:
		return m.Provider()
	case modelcatalogentry.FieldModelID:
		return m.ModelID()
	case modelcatalogentry.FieldDisplayName:
		return m.DisplayName()
	case modelcatalogentry.FieldInputPricePerMtok:
		return m.InputPricePerMtok()
	case modelcatalogentry.FieldOutputPricePerMtok:
		return m.OutputPricePerMtok()
	case modelcatalogentry.FieldTier:
		return m.Tier()
	case modelcatalogentry.FieldEnabled:
		return m.Enabled()
	case modelcatalogentry.FieldPricingIsPlaceholder:
		return m.PricingIsPlaceholder()
	case modelcatalogentry.FieldSortOrder:
		return m.SortOrder()
	case modelcatalogentry.FieldCreatedAt:
		return m.CreatedAt()
	case modelcatalogentry.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ModelCatalogEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case modelcatalogentry.FieldProvider:
		return m.OldProvider(ctx)
	case modelcatalogentry.FieldModelID:
		return m.OldModelID(ctx)
	case modelcatalogentry.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case modelcatalogentry.FieldInputPricePerMtok:
		return m.OldInputPricePerMtok(ctx)
	case modelcatalogentry.FieldOutputPricePerMtok:
		return m.OldOutputPricePerMtok(ctx)
	case modelcatalogentry.FieldTier:
		return m.OldTier(ctx)
	case modelcatalogentry.FieldEnabled:
		return m.OldEnabled(ctx)
	case modelcatalogentry.FieldPricingIsPlaceholder:
		return m.OldPricingIsPlaceholder(ctx)
	case modelcatalogentry.FieldSortOrder:
		return m.OldSortOrder(ctx)
	case modelcatalogentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case modelcatalogentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ModelCatalogEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelCatalogEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case modelcatalogentry.FieldProvider:
		v, ok := value.(modelcatalogentry.Provider)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case modelcatalogentry.FieldModelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelID(v)
		return nil
	case modelcatalogentry.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case modelcatalogentry.FieldInputPricePerMtok:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputPricePerMtok(v)
		return nil
	case modelcatalogentry.FieldOutputPricePerMtok:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputPricePerMtok(v)
		return nil
	case modelcatalogentry.FieldTier:
		v, ok := value.(modelcatalogentry.Tier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case modelcatalogentry.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case modelcatalogentry.FieldPricingIsPlaceholder:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPricingIsPlaceholder(v)
		return nil
	case modelcatalogentry.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSortOrder(v)
		return nil
	case modelcatalogentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case modelcatalogentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ModelCatalogEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ModelCatalogEntryMutation) AddedFields() []string {
	var fields []string
	if m.addinput_price_per_mtok != nil {
		fields = append(fields, modelcatalogentry.FieldInputPricePerMtok)
	}
	if m.addoutput_price_per_mtok != nil {
		fields = append(fields, modelcatalogentry.FieldOutputPricePerMtok)
	}
	if m.addsort_order != nil {
		fields = append(fields, modelcatalogentry.FieldSortOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ModelCatalogEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case modelcatalogentry.FieldInputPricePerMtok:
		return m.AddedInputPricePerMtok()
	case modelcatalogentry.FieldOutputPricePerMtok:
		return m.AddedOutputPricePerMtok()
	case modelcatalogentry.FieldSortOrder:
		return m.AddedSortOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelCatalogEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case modelcatalogentry.FieldInputPricePerMtok:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputPricePerMtok(v)
		return nil
	case modelcatalogentry.FieldOutputPricePerMtok:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputPricePerMtok(v)
		return nil
	case modelcatalogentry.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSortOrder(v)
		return nil
	}
	return fmt.Errorf("unknown ModelCatalogEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ModelCatalogEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(modelcatalogentry.FieldInputPricePerMtok) {
		fields = append(fields, modelcatalogentry.FieldInputPricePerMtok)
	}
	if m.FieldCleared(modelcatalogentry.FieldOutputPricePerMtok) {
		fields = append(fields, modelcatalogentry.FieldOutputPricePerMtok)
	}
	if m.FieldCleared(modelcatalogentry.FieldTier) {
		fields = append(fields, modelcatalogentry.FieldTier)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ModelCatalogEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ModelCatalogEntryMutation) ClearField(name string) error {
	switch name {
	case modelcatalogentry.FieldInputPricePerMtok:
		m.ClearInputPricePerMtok()
		return nil
	case modelcatalogentry.FieldOutputPricePerMtok:
		m.ClearOutputPricePerMtok()
		return nil
	case modelcatalogentry.FieldTier:
		m.ClearTier()
		return nil
	}
	return fmt.Errorf("unknown ModelCatalogEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ModelCatalogEntryMutation) ResetField(name string) error {
	switch name {
	case modelcatalogentry.FieldProvider:
		m.ResetProvider()
		return nil
	case modelcatalogentry.FieldModelID:
		m.ResetModelID()
		return nil
	case modelcatalogentry.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case modelcatalogentry.FieldInputPricePerMtok:
		m.ResetInputPricePerMtok()
		return nil
	case modelcatalogentry.FieldOutputPricePerMtok:
		m.ResetOutputPricePerMtok()
		return nil
	case modelcatalogentry.FieldTier:
		m.ResetTier()
		return nil
	case modelcatalogentry.FieldEnabled:
		m.ResetEnabled()
		return nil
	case modelcatalogentry.FieldPricingIsPlaceholder:
		m.ResetPricingIsPlaceholder()
		return nil
	case modelcatalogentry.FieldSortOrder:
		m.ResetSortOrder()
		return nil
	case modelcatalogentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case modelcatalogentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ModelCatalogEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ModelCatalogEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ModelCatalogEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ModelCatalogEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ModelCatalogEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ModelCatalogEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ModelCatalogEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ModelCatalogEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ModelCatalogEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ModelCatalogEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ModelCatalogEntry edge %s", name)
}

// ModelPreferenceMutation represents an operation that mutates the ModelPreference nodes in the graph.
type ModelPreferenceMutation struct {
	config
	op            Op
	typ           string
	id            *string
	owner_id      *string
	feature       *modelpreference.Feature
	catalog_id    *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ModelPreference, error)
	predicates    []predicate.ModelPreference
}

var _ ent.Mutation = (*ModelPreferenceMutation)(nil)

// modelpreferenceOption allows management of the mutation configuration using functional options.
type modelpreferenceOption func(*ModelPreferenceMutation)

// newModelPreferenceMutation creates new mutation for the ModelPreference entity.
func newModelPreferenceMutation(c config, op Op, opts ...modelpreferenceOption) *ModelPreferenceMutation {
	m := &ModelPreferenceMutation{
		config:        c,
		op:            op,
		typ:           TypeModelPreference,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withModelPreferenceID sets the ID field of the mutation.
func withModelPreferenceID(id string) modelpreferenceOption {
	return func(m *ModelPreferenceMutation) {
		var (
			err   error
			once  sync.Once
			value *ModelPreference
		)
		m.oldValue = func(ctx context.Context) (*ModelPreference, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ModelPreference.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withModelPreference sets the old ModelPreference of the mutation.
func withModelPreference(node *ModelPreference) modelpreferenceOption {
	return func(m *ModelPreferenceMutation) {
		m.oldValue = func(context.Context) (*ModelPreference, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ModelPreferenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ModelPreferenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ModelPreference entities.
func (m *ModelPreferenceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ModelPreferenceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ModelPreferenceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ModelPreference.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *ModelPreferenceMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *ModelPreferenceMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the ModelPreference entity.
// If the ModelPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelPreferenceMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *ModelPreferenceMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetFeature sets the "feature" field.
func (m *ModelPreferenceMutation) SetFeature(value modelpreference.Feature) {
	m.feature = &value
}

// Feature returns the value of the "feature" field in the mutation.
func (m *ModelPreferenceMutation) Feature() (r modelpreference.Feature, exists bool) {
	v := m.feature
	if v == nil {
		return
	}
	return *v, true
}

// OldFeature returns the old "feature" field's value of the ModelPreference entity.
// If the ModelPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelPreferenceMutation) OldFeature(ctx context.Context) (v modelpreference.Feature, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeature: %w", err)
	}
	return oldValue.Feature, nil
}

// ResetFeature resets all changes to the "feature" field.
func (m *ModelPreferenceMutation) ResetFeature() {
	m.feature = nil
}

// SetCatalogID sets the "catalog_id" field.
func (m *ModelPreferenceMutation) SetCatalogID(s string) {
	m.catalog_id = &s
}

// CatalogID returns the value of the "catalog_id" field in the mutation.
func (m *ModelPreferenceMutation) CatalogID() (r string, exists bool) {
	v := m.catalog_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCatalogID returns the old "catalog_id" field's value of the ModelPreference entity.
// If the ModelPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelPreferenceMutation) OldCatalogID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCatalogID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCatalogID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCatalogID: %w", err)
	}
	return oldValue.CatalogID, nil
}

// ResetCatalogID resets all changes to the "catalog_id" field.
func (m *ModelPreferenceMutation) ResetCatalogID() {
	m.catalog_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ModelPreferenceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ModelPreferenceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ModelPreference entity.
// If the ModelPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelPreferenceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ModelPreferenceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ModelPreferenceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ModelPreferenceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ModelPreference entity.
// If the ModelPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelPreferenceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ModelPreferenceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ModelPreferenceMutation builder.
func (m *ModelPreferenceMutation) Where(ps ...predicate.ModelPreference) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ModelPreferenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ModelPreferenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ModelPreference, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ModelPreferenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ModelPreferenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ModelPreference).
func (m *ModelPreferenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ModelPreferenceMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.owner_id != nil {
		fields = append(fields, modelpreference.FieldOwnerID)
	}
	if m.feature != nil {
		fields = append(fields, modelpreference.FieldFeature)
	}
	if m.catalog_id != nil {
		fields = append(fields, modelpreference.FieldCatalogID)
	}
	if m.created_at != nil {
		fields = append(fields, modelpreference.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, modelpreference.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ModelPreferenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case modelpreference.FieldOwnerID:
		return m.OwnerID()
	case modelpreference.FieldFeature:
		return m.Feature()
	case modelpreference.FieldCatalogID:
		return m.CatalogID()
	case modelpreference.FieldCreatedAt:
		return m.CreatedAt()
	case modelpreference.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ModelPreferenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case modelpreference.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case modelpreference.FieldFeature:
		return m.OldFeature(ctx)
	case modelpreference.FieldCatalogID:
		return m.OldCatalogID(ctx)
	case modelpreference.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case modelpreference.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ModelPreference field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelPreferenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case modelpreference.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case modelpreference.FieldFeature:
		v, ok := value.(modelpreference.Feature)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeature(v)
		return nil
	case modelpreference.FieldCatalogID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCatalogID(v)
		return nil
	case modelpreference.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case modelpreference.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ModelPreference field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ModelPreferenceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ModelPreferenceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelPreferenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ModelPreference numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ModelPreferenceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ModelPreferenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ModelPreferenceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ModelPreference nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ModelPreferenceMutation) ResetField(name string) error {
	switch name {
	case modelpreference.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case modelpreference.FieldFeature:
		m.ResetFeature()
		return nil
	case modelpreference.FieldCatalogID:
		m.ResetCatalogID()
		return nil
	case modelpreference.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case modelpreference.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ModelPreference field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ModelPreferenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ModelPreferenceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ModelPreferenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ModelPreferenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ModelPreferenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ModelPreferenceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ModelPreferenceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ModelPreference unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ModelPreferenceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ModelPreference edge %s", name)
}

// PlanMutation represents an operation that mutates the Plan nodes in the graph.
type PlanMutation struct {
	config
	op              Op
	typ             string
	id              *string
	owner_id        *string
	plan_date       *string
	source          *string
	inputs_snapshot *map[string]interface{}
	plan_json       *map[string]interface{}
	reasons_json    *map[string]interface{}
	status          *plan.Status
	applied_at      *time.Time
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Plan, error)
	predicates      []predicate.Plan
}

var _ ent.Mutation = (*PlanMutation)(nil)

// planOption allows management of the mutation configuration using functional options.
type planOption func(*PlanMutation)

// newPlanMutation creates new mutation for the Plan entity.
func newPlanMutation(c config, op Op, opts ...planOption) *PlanMutation {
	m := &PlanMutation{
		config:        c,
		op:            op,
		typ:           TypePlan,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlanID sets the ID field of the mutation.
func withPlanID(id string) planOption {
	return func(m *PlanMutation) {
		var (
			err   error
			once  sync.Once
			value *Plan
		)
		m.oldValue = func(ctx context.Context) (*Plan, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Plan.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlan sets the old Plan of the mutation.
func withPlan(node *Plan) planOption {
	return func(m *PlanMutation) {
		m.oldValue = func(context.Context) (*Plan, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlanMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlanMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Plan entities.
func (m *PlanMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlanMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlanMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Plan.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *PlanMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *PlanMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *PlanMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetPlanDate sets the "plan_date" field.
func (m *PlanMutation) SetPlanDate(s string) {
	m.plan_date = &s
}

// PlanDate returns the value of the "plan_date" field in the mutation.
func (m *PlanMutation) PlanDate() (r string, exists bool) {
	v := m.plan_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanDate returns the old "plan_date" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldPlanDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanDate: %w", err)
	}
	return oldValue.PlanDate, nil
}

// ResetPlanDate resets all changes to the "plan_date" field.
func (m *PlanMutation) ResetPlanDate() {
	m.plan_date = nil
}

// SetSource sets the "source" field.
func (m *PlanMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *PlanMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *PlanMutation) ResetSource() {
	m.source = nil
}

// SetInputsSnapshot sets the "inputs_snapshot" field.
func (m *PlanMutation) SetInputsSnapshot(value map[string]interface{}) {
	m.inputs_snapshot = &value
}

// InputsSnapshot returns the value of the "inputs_snapshot" field in the mutation.
func (m *PlanMutation) InputsSnapshot() (r map[string]interface{}, exists bool) {
	v := m.inputs_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldInputsSnapshot returns the old "inputs_snapshot" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldInputsSnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputsSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputsSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputsSnapshot: %w", err)
	}
	return oldValue.InputsSnapshot, nil
}

// ResetInputsSnapshot resets all changes to the "inputs_snapshot" field.
func (m *PlanMutation) ResetInputsSnapshot() {
	m.inputs_snapshot = nil
}

// SetPlanJSON sets the "plan_json" field.
func (m *PlanMutation) SetPlanJSON(value map[string]interface{}) {
	m.plan_json = &value
}

// PlanJSON returns the value of the "plan_json" field in the mutation.
func (m *PlanMutation) PlanJSON() (r map[string]interface{}, exists bool) {
	v := m.plan_json
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanJSON returns the old "plan_json" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldPlanJSON(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanJSON: %w", err)
	}
	return oldValue.PlanJSON, nil
}

// ResetPlanJSON resets all changes to the "plan_json" field.
func (m *PlanMutation) ResetPlanJSON() {
	m.plan_json = nil
}

// SetReasonsJSON sets the "reasons_json" field.
func (m *PlanMutation) SetReasonsJSON(value map[string]interface{}) {
	m.reasons_json = &value
}

// ReasonsJSON returns the value of the "reasons_json" field in the mutation.
func (m *PlanMutation) ReasonsJSON() (r map[string]interface{}, exists bool) {
	v := m.reasons_json
	if v == nil {
		return
	}
	return *v, true
}

// OldReasonsJSON returns the old "reasons_json" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldReasonsJSON(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasonsJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasonsJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasonsJSON: %w", err)
	}
	return oldValue.ReasonsJSON, nil
}

// ResetReasonsJSON resets all changes to the "reasons_json" field.
func (m *PlanMutation) ResetReasonsJSON() {
	m.reasons_json = nil
}

// SetStatus sets the "status" field.
func (m *PlanMutation) SetStatus(pl plan.Status) {
	m.status = &pl
}

// Status returns the value of the "status" field in the mutation.
func (m *PlanMutation) Status() (r plan.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldStatus(ctx context.Context) (v plan.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PlanMutation) ResetStatus() {
	m.status = nil
}

// SetAppliedAt sets the "applied_at" field.
func (m *PlanMutation) SetAppliedAt(t time.Time) {
	m.applied_at = &t
}

// AppliedAt returns the value of the "applied_at" field in the mutation.
func (m *PlanMutation) AppliedAt() (r time.Time, exists bool) {
	v := m.applied_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAppliedAt returns the old "applied_at" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldAppliedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppliedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppliedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppliedAt: %w", err)
	}
	return oldValue.AppliedAt, nil
}

// ClearAppliedAt clears the value of the "applied_at" field.
func (m *PlanMutation) ClearAppliedAt() {
	m.applied_at = nil
	m.clearedFields[plan.FieldAppliedAt] = struct{}{}
}

// AppliedAtCleared returns if the "applied_at" field was cleared in this mutation.
func (m *PlanMutation) AppliedAtCleared() bool {
	_, ok := m.clearedFields[plan.FieldAppliedAt]
	return ok
}

// ResetAppliedAt resets all changes to the "applied_at" field.
func (m *PlanMutation) ResetAppliedAt() {
	m.applied_at = nil
	delete(m.clearedFields, plan.FieldAppliedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *PlanMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PlanMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PlanMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PlanMutation builder.
func (m *PlanMutation) Where(ps ...predicate.Plan) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlanMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlanMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Plan, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlanMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlanMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Plan).
func (m *PlanMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlanMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.owner_id != nil {
		fields = append(fields, plan.FieldOwnerID)
	}
	if m.plan_date != nil {
		fields = append(fields, plan.FieldPlanDate)
	}
	if m.source != nil {
		fields = append(fields, plan.FieldSource)
	}
	if m.inputs_snapshot != nil {
		fields = append(fields, plan.FieldInputsSnapshot)
	}
	if m.plan_json != nil {
		fields = append(fields, plan.FieldPlanJSON)
	}
	if m.reasons_json != nil {
		fields = append(fields, plan.FieldReasonsJSON)
	}
	if m.status != nil {
		fields = append(fields, plan.FieldStatus)
	}
	if m.applied_at != nil {
		fields = append(fields, plan.FieldAppliedAt)
	}
	if m.created_at != nil {
		fields = append(fields, plan.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlanMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case plan.FieldOwnerID:
		return m.OwnerID()
	case plan.FieldPlanDate:
		return m.PlanDate()
	case plan.FieldSource:
		return m.Source()
	case plan.FieldInputsSnapshot:
		return m.InputsSnapshot()
	case plan.FieldPlanJSON:
		return m.PlanJSON()
	case plan.FieldReasonsJSON:
		return m.ReasonsJSON()
	case plan.FieldStatus:
		return m.Status()
	case plan.FieldAppliedAt:
		return m.AppliedAt()
	case plan.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlanMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case plan.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case plan.FieldPlanDate:
		return m.OldPlanDate(ctx)
	case plan.FieldSource:
		return m.OldSource(ctx)
	case plan.FieldInputsSnapshot:
		return m.OldInputsSnapshot(ctx)
	case plan.FieldPlanJSON:
		return m.OldPlanJSON(ctx)
	case plan.FieldReasonsJSON:
		return m.OldReasonsJSON(ctx)
	case plan.FieldStatus:
		return m.OldStatus(ctx)
	case plan.FieldAppliedAt:
		return m.OldAppliedAt(ctx)
	case plan.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Plan field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanMutation) SetField(name string, value ent.Value) error {
	switch name {
	case plan.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case plan.FieldPlanDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanDate(v)
		return nil
	case plan.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case plan.FieldInputsSnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputsSnapshot(v)
		return nil
	case plan.FieldPlanJSON:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanJSON(v)
		return nil
	case plan.FieldReasonsJSON:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasonsJSON(v)
		return nil
	case plan.FieldStatus:
		v, ok := value.(plan.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case plan.FieldAppliedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppliedAt(v)
		return nil
	case plan.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Plan field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlanMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlanMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Plan numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlanMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(plan.FieldAppliedAt) {
		fields = append(fields, plan.FieldAppliedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlanMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlanMutation) ClearField(name string) error {
	switch name {
	case plan.FieldAppliedAt:
		m.ClearAppliedAt()
		return nil
	}
	return fmt.Errorf("unknown Plan nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlanMutation) ResetField(name string) error {
	switch name {
	case plan.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case plan.FieldPlanDate:
		m.ResetPlanDate()
		return nil
	case plan.FieldSource:
		m.ResetSource()
		return nil
	case plan.FieldInputsSnapshot:
		m.ResetInputsSnapshot()
		return nil
	case plan.FieldPlanJSON:
		m.ResetPlanJSON()
		return nil
	case plan.FieldReasonsJSON:
		m.ResetReasonsJSON()
		return nil
	case plan.FieldStatus:
		m.ResetStatus()
		return nil
	case plan.FieldAppliedAt:
		m.ResetAppliedAt()
		return nil
	case plan.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Plan field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlanMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlanMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlanMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlanMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlanMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlanMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlanMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Plan unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlanMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Plan edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op             Op
	typ            string
	id             *string
	owner_id       *string
	application_id *string
	name           *string
	description    *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Project, error)
	predicates     []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *ProjectMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *ProjectMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *ProjectMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetApplicationID sets the "application_id" field.
func (m *ProjectMutation) SetApplicationID(s string) {
	m.application_id = &s
}

// ApplicationID returns the value of the "application_id" field in the mutation.
func (m *ProjectMutation) ApplicationID() (r string, exists bool) {
	v := m.application_id
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicationID returns the old "application_id" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldApplicationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicationID: %w", err)
	}
	return oldValue.ApplicationID, nil
}

// ClearApplicationID clears the value of the "application_id" field.
func (m *ProjectMutation) ClearApplicationID() {
	m.application_id = nil
	m.clearedFields[project.FieldApplicationID] = struct{}{}
}

// ApplicationIDCleared returns if the "application_id" field was cleared in this mutation.
func (m *ProjectMutation) ApplicationIDCleared() bool {
	_, ok := m.clearedFields[project.FieldApplicationID]
	return ok
}

// ResetApplicationID resets all changes to the "application_id" field.
func (m *ProjectMutation) ResetApplicationID() {
	m.application_id = nil
	delete(m.clearedFields, project.FieldApplicationID)
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ProjectMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ProjectMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ProjectMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[project.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ProjectMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[project.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ProjectMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, project.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.owner_id != nil {
		fields = append(fields, project.FieldOwnerID)
	}
	if m.application_id != nil {
		fields = append(fields, project.FieldApplicationID)
	}
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.description != nil {
		fields = append(fields, project.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldOwnerID:
		return m.OwnerID()
	case project.FieldApplicationID:
		return m.ApplicationID()
	case project.FieldName:
		return m.Name()
	case project.FieldDescription:
		return m.Description()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case project.FieldApplicationID:
		return m.OldApplicationID(ctx)
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldDescription:
		return m.OldDescription(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case project.FieldApplicationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicationID(v)
		return nil
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldApplicationID) {
		fields = append(fields, project.FieldApplicationID)
	}
	if m.FieldCleared(project.FieldDescription) {
		fields = append(fields, project.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldApplicationID:
		m.ClearApplicationID()
		return nil
	case project.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case project.FieldApplicationID:
		m.ResetApplicationID()
		return nil
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldDescription:
		m.ResetDescription()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Project edge %s", name)
}

// StatusUpdateMutation represents an operation that mutates the StatusUpdate nodes in the graph.
type StatusUpdateMutation struct {
	config
	op             Op
	typ            string
	id             *string
	owner_id       *string
	application_id *string
	snippet        *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*StatusUpdate, error)
	predicates     []predicate.StatusUpdate
}

var _ ent.Mutation = (*StatusUpdateMutation)(nil)

// statusupdateOption allows management of the mutation configuration using functional options.
type statusupdateOption func(*StatusUpdateMutation)

// newStatusUpdateMutation creates new mutation for the StatusUpdate entity.
func newStatusUpdateMutation(c config, op Op, opts ...statusupdateOption) *StatusUpdateMutation {
	m := &StatusUpdateMutation{
		config:        c,
		op:            op,
		typ:           TypeStatusUpdate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStatusUpdateID sets the ID field of the mutation.
func withStatusUpdateID(id string) statusupdateOption {
	return func(m *StatusUpdateMutation) {
		var (
			err   error
			once  sync.Once
			value *StatusUpdate
		)
		m.oldValue = func(ctx context.Context) (*StatusUpdate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StatusUpdate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStatusUpdate sets the old StatusUpdate of the mutation.
func withStatusUpdate(node *StatusUpdate) statusupdateOption {
	return func(m *StatusUpdateMutation) {
		m.oldValue = func(context.Context) (*StatusUpdate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StatusUpdateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StatusUpdateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StatusUpdate entities.
func (m *StatusUpdateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StatusUpdateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StatusUpdateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StatusUpdate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *StatusUpdateMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *StatusUpdateMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the StatusUpdate entity.
// If the StatusUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusUpdateMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *StatusUpdateMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetApplicationID sets the "application_id" field.
func (m *StatusUpdateMutation) SetApplicationID(s string) {
	m.application_id = &s
}

// ApplicationID returns the value of the "application_id" field in the mutation.
func (m *StatusUpdateMutation) ApplicationID() (r string, exists bool) {
	v := m.application_id
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicationID returns the old "application_id" field's value of the StatusUpdate entity.
// If the StatusUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusUpdateMutation) OldApplicationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicationID: %w", err)
	}
	return oldValue.ApplicationID, nil
}

// ResetApplicationID resets all changes to the "application_id" field.
func (m *StatusUpdateMutation) ResetApplicationID() {
	m.application_id = nil
}

// SetSnippet sets the "snippet" field.
func (m *StatusUpdateMutation) SetSnippet(s string) {
	m.snippet = &s
}

// Snippet returns the value of the "snippet" field in the mutation.
func (m *StatusUpdateMutation) Snippet() (r string, exists bool) {
	v := m.snippet
	if v == nil {
		return
	}
	return *v, true
}

// OldSnippet returns the old "snippet" field's value of the StatusUpdate entity.
// If the StatusUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusUpdateMutation) OldSnippet(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnippet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnippet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnippet: %w", err)
	}
	return oldValue.Snippet, nil
}

// ResetSnippet resets all changes to the "snippet" field.
func (m *StatusUpdateMutation) ResetSnippet() {
	m.snippet = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StatusUpdateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StatusUpdateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StatusUpdate entity.
// If the StatusUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusUpdateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StatusUpdateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the StatusUpdateMutation builder.
func (m *StatusUpdateMutation) Where(ps ...predicate.StatusUpdate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StatusUpdateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StatusUpdateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StatusUpdate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StatusUpdateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StatusUpdateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StatusUpdate).
func (m *StatusUpdateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StatusUpdateMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.owner_id != nil {
		fields = append(fields, statusupdate.FieldOwnerID)
	}
	if m.application_id != nil {
		fields = append(fields, statusupdate.FieldApplicationID)
	}
	if m.snippet != nil {
		fields = append(fields, statusupdate.FieldSnippet)
	}
	if m.created_at != nil {
		fields = append(fields, statusupdate.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StatusUpdateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case statusupdate.FieldOwnerID:
		return m.OwnerID()
	case statusupdate.FieldApplicationID:
		return m.ApplicationID()
	case statusupdate.FieldSnippet:
		return m.Snippet()
	case statusupdate.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StatusUpdateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case statusupdate.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case statusupdate.FieldApplicationID:
		return m.OldApplicationID(ctx)
	case statusupdate.FieldSnippet:
		return m.OldSnippet(ctx)
	case statusupdate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StatusUpdate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StatusUpdateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case statusupdate.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case statusupdate.FieldApplicationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicationID(v)
		return nil
	case statusupdate.FieldSnippet:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnippet(v)
		return nil
	case statusupdate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StatusUpdate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StatusUpdateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StatusUpdateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StatusUpdateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StatusUpdate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StatusUpdateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StatusUpdateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StatusUpdateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StatusUpdate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StatusUpdateMutation) ResetField(name string) error {
	switch name {
	case statusupdate.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case statusupdate.FieldApplicationID:
		m.ResetApplicationID()
		return nil
	case statusupdate.FieldSnippet:
		m.ResetSnippet()
		return nil
	case statusupdate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StatusUpdate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StatusUpdateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StatusUpdateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StatusUpdateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StatusUpdateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StatusUpdateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StatusUpdateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StatusUpdateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StatusUpdate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StatusUpdateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StatusUpdate edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	owner_id                   *string
	title                      *string
	description                *string
	application_id             *string
	project_id                 *string
	status                     *task.Status
	task_type                  *task.TaskType
	priority_score             *float64
	addpriority_score          *float64
	estimated_minutes          *int
	addestimated_minutes       *int
	estimate_source            *task.EstimateSource
	due_at                     *time.Time
	needs_review               *bool
	blocker                    *bool
	waiting_on                 *string
	follow_up_at               *time.Time
	stakeholder_mentions       *[]string
	appendstakeholder_mentions []string
	source_type                *task.SourceType
	source_url                 *string
	inbox_item_id              *string
	pinned_excerpt             *string
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*Task, error)
	predicates                 []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *TaskMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *TaskMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *TaskMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TaskMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[task.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TaskMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[task.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, task.FieldDescription)
}

// SetApplicationID sets the "application_id" field.
func (m *TaskMutation) SetApplicationID(s string) {
	m.application_id = &s
}

// ApplicationID returns the value of the "application_id" field in the mutation.
func (m *TaskMutation) ApplicationID() (r string, exists bool) {
	v := m.application_id
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicationID returns the old "application_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldApplicationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicationID: %w", err)
	}
	return oldValue.ApplicationID, nil
}

// ClearApplicationID clears the value of the "application_id" field.
func (m *TaskMutation) ClearApplicationID() {
	m.application_id = nil
	m.clearedFields[task.FieldApplicationID] = struct{}{}
}

// ApplicationIDCleared returns if the "application_id" field was cleared in this mutation.
func (m *TaskMutation) ApplicationIDCleared() bool {
	_, ok := m.clearedFields[task.FieldApplicationID]
	return ok
}

// ResetApplicationID resets all changes to the "application_id" field.
func (m *TaskMutation) ResetApplicationID() {
	m.application_id = nil
	delete(m.clearedFields, task.FieldApplicationID)
}

// SetProjectID sets the "project_id" field.
func (m *TaskMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *TaskMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldProjectID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ClearProjectID clears the value of the "project_id" field.
func (m *TaskMutation) ClearProjectID() {
	m.project_id = nil
	m.clearedFields[task.FieldProjectID] = struct{}{}
}

// ProjectIDCleared returns if the "project_id" field was cleared in this mutation.
func (m *TaskMutation) ProjectIDCleared() bool {
	_, ok := m.clearedFields[task.FieldProjectID]
	return ok
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *TaskMutation) ResetProjectID() {
	m.project_id = nil
	delete(m.clearedFields, task.FieldProjectID)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetTaskType sets the "task_type" field.
func (m *TaskMutation) SetTaskType(tt task.TaskType) {
	m.task_type = &tt
}

// TaskType returns the value of the "task_type" field in the mutation.
func (m *TaskMutation) TaskType() (r task.TaskType, exists bool) {
	v := m.task_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskType returns the old "task_type" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTaskType(ctx context.Context) (v task.TaskType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskType: %w", err)
	}
	return oldValue.TaskType, nil
}

// ResetTaskType resets all changes to the "task_type" field.
func (m *TaskMutation) ResetTaskType() {
	m.task_type = nil
}

// SetPriorityScore sets the "priority_score" field.
func (m *TaskMutation) SetPriorityScore(f float64) {
	m.priority_score = &f
	m.addpriority_score = nil
}

// PriorityScore returns the value of the "priority_score" field in the mutation.
func (m *TaskMutation) PriorityScore() (r float64, exists bool) {
	v := m.priority_score
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorityScore returns the old "priority_score" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPriorityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorityScore: %w", err)
	}
	return oldValue.PriorityScore, nil
}

// AddPriorityScore adds f to the "priority_score" field.
func (m *TaskMutation) AddPriorityScore(f float64) {
	if m.addpriority_score != nil {
		*m.addpriority_score += f
	} else {
		m.addpriority_score = &f
	}
}

// AddedPriorityScore returns the value that was added to the "priority_score" field in this mutation.
func (m *TaskMutation) AddedPriorityScore() (r float64, exists bool) {
	v := m.addpriority_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriorityScore resets all changes to the "priority_score" field.
func (m *TaskMutation) ResetPriorityScore() {
	m.priority_score = nil
	m.addpriority_score = nil
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (m *TaskMutation) SetEstimatedMinutes(i int) {
	m.estimated_minutes = &i
	m.addestimated_minutes = nil
}

// EstimatedMinutes returns the value of the "estimated_minutes" field in the mutation.
func (m *TaskMutation) EstimatedMinutes() (r int, exists bool) {
	v := m.estimated_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedMinutes returns the old "estimated_minutes" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldEstimatedMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedMinutes: %w", err)
	}
	return oldValue.EstimatedMinutes, nil
}

// AddEstimatedMinutes adds i to the "estimated_minutes" field.
func (m *TaskMutation) AddEstimatedMinutes(i int) {
	if m.addestimated_minutes != nil {
		*m.addestimated_minutes += i
	} else {
		m.addestimated_minutes = &i
	}
}

// AddedEstimatedMinutes returns the value that was added to the "estimated_minutes" field in this mutation.
func (m *TaskMutation) AddedEstimatedMinutes() (r int, exists bool) {
	v := m.addestimated_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedMinutes resets all changes to the "estimated_minutes" field.
func (m *TaskMutation) ResetEstimatedMinutes() {
	m.estimated_minutes = nil
	m.addestimated_minutes = nil
}

// SetEstimateSource sets the "estimate_source" field.
func (m *TaskMutation) SetEstimateSource(ts task.EstimateSource) {
	m.estimate_source = &ts
}

// EstimateSource returns the value of the "estimate_source" field in the mutation.
func (m *TaskMutation) EstimateSource() (r task.EstimateSource, exists bool) {
	v := m.estimate_source
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimateSource returns the old "estimate_source" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldEstimateSource(ctx context.Context) (v task.EstimateSource, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimateSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimateSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimateSource: %w", err)
	}
	return oldValue.EstimateSource, nil
}

// ResetEstimateSource resets all changes to the "estimate_source" field.
func (m *TaskMutation) ResetEstimateSource() {
	m.estimate_source = nil
}

// SetDueAt sets the "due_at" field.
func (m *TaskMutation) SetDueAt(t time.Time) {
	m.due_at = &t
}

// DueAt returns the value of the "due_at" field in the mutation.
func (m *TaskMutation) DueAt() (r time.Time, exists bool) {
	v := m.due_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDueAt returns the old "due_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDueAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueAt: %w", err)
	}
	return oldValue.DueAt, nil
}

// ClearDueAt clears the value of the "due_at" field.
func (m *TaskMutation) ClearDueAt() {
	m.due_at = nil
	m.clearedFields[task.FieldDueAt] = struct{}{}
}

// DueAtCleared returns if the "due_at" field was cleared in this mutation.
func (m *TaskMutation) DueAtCleared() bool {
	_, ok := m.clearedFields[task.FieldDueAt]
	return ok
}

// ResetDueAt resets all changes to the "due_at" field.
func (m *TaskMutation) ResetDueAt() {
	m.due_at = nil
	delete(m.clearedFields, task.FieldDueAt)
}

// SetNeedsReview sets the "needs_review" field.
func (m *TaskMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *TaskMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *TaskMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetBlocker sets the "blocker" field.
func (m *TaskMutation) SetBlocker(b bool) {
	m.blocker = &b
}

// Blocker returns the value of the "blocker" field in the mutation.
func (m *TaskMutation) Blocker() (r bool, exists bool) {
	v := m.blocker
	if v == nil {
		return
	}
	return *v, true
}

// OldBlocker returns the old "blocker" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldBlocker(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlocker is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlocker requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlocker: %w", err)
	}
	return oldValue.Blocker, nil
}

// ResetBlocker resets all changes to the "blocker" field.
func (m *TaskMutation) ResetBlocker() {
	m.blocker = nil
}

// SetWaitingOn sets the "waiting_on" field.
func (m *TaskMutation) SetWaitingOn(s string) {
	m.waiting_on = &s
}

// WaitingOn returns the value of the "waiting_on" field in the mutation.
func (m *TaskMutation) WaitingOn() (r string, exists bool) {
	v := m.waiting_on
	if v == nil {
		return
	}
	return *v, true
}

// OldWaitingOn returns the old "waiting_on" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldWaitingOn(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWaitingOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWaitingOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWaitingOn: %w", err)
	}
	return oldValue.WaitingOn, nil
}

// ClearWaitingOn clears the value of the "waiting_on" field.
func (m *TaskMutation) ClearWaitingOn() {
	m.waiting_on = nil
	m.clearedFields[task.FieldWaitingOn] = struct{}{}
}

// WaitingOnCleared returns if the "waiting_on" field was cleared in this mutation.
func (m *TaskMutation) WaitingOnCleared() bool {
	_, ok := m.clearedFields[task.FieldWaitingOn]
	return ok
}

// ResetWaitingOn resets all changes to the "waiting_on" field.
func (m *TaskMutation) ResetWaitingOn() {
	m.waiting_on = nil
	delete(m.clearedFields, task.FieldWaitingOn)
}

// SetFollowUpAt sets the "follow_up_at" field.
func (m *TaskMutation) SetFollowUpAt(t time.Time) {
	m.follow_up_at = &t
}

// FollowUpAt returns the value of the "follow_up_at" field in the mutation.
func (m *TaskMutation) FollowUpAt() (r time.Time, exists bool) {
	v := m.follow_up_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFollowUpAt returns the old "follow_up_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldFollowUpAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFollowUpAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFollowUpAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFollowUpAt: %w", err)
	}
	return oldValue.FollowUpAt, nil
}

// ClearFollowUpAt clears the value of the "follow_up_at" field.
func (m *TaskMutation) ClearFollowUpAt() {
	m.follow_up_at = nil
	m.clearedFields[task.FieldFollowUpAt] = struct{}{}
}

// FollowUpAtCleared returns if the "follow_up_at" field was cleared in this mutation.
func (m *TaskMutation) FollowUpAtCleared() bool {
	_, ok := m.clearedFields[task.FieldFollowUpAt]
	return ok
}

// ResetFollowUpAt resets all changes to the "follow_up_at" field.
func (m *TaskMutation) ResetFollowUpAt() {
	m.follow_up_at = nil
	delete(m.clearedFields, task.FieldFollowUpAt)
}

// SetStakeholderMentions sets the "stakeholder_mentions" field.
func (m *TaskMutation) SetStakeholderMentions(s []string) {
	m.stakeholder_mentions = &s
	m.appendstakeholder_mentions = nil
}

// StakeholderMentions returns the value of the "stakeholder_mentions" field in the mutation.
func (m *TaskMutation) StakeholderMentions() (r []string, exists bool) {
	v := m.stakeholder_mentions
	if v == nil {
		return
	}
	return *v, true
}

// OldStakeholderMentions returns the old "stakeholder_mentions" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStakeholderMentions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStakeholderMentions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStakeholderMentions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStakeholderMentions: %w", err)
	}
	return oldValue.StakeholderMentions, nil
}

// AppendStakeholderMentions adds s to the "stakeholder_mentions" field.
func (m *TaskMutation) AppendStakeholderMentions(s []string) {
	m.appendstakeholder_mentions = append(m.appendstakeholder_mentions, s...)
}

// AppendedStakeholderMentions returns the list of values that were appended to the "stakeholder_mentions" field in this mutation.
func (m *TaskMutation) AppendedStakeholderMentions() ([]string, bool) {
	if len(m.appendstakeholder_mentions) == 0 {
		return nil, false
	}
	return m.appendstakeholder_mentions, true
}

// ClearStakeholderMentions clears the value of the "stakeholder_mentions" field.
func (m *TaskMutation) ClearStakeholderMentions() {
	m.stakeholder_mentions = nil
	m.appendstakeholder_mentions = nil
	m.clearedFields[task.FieldStakeholderMentions] = struct{}{}
}

// StakeholderMentionsCleared returns if the "stakeholder_mentions" field was cleared in this mutation.
func (m *TaskMutation) StakeholderMentionsCleared() bool {
	_, ok := m.clearedFields[task.FieldStakeholderMentions]
	return ok
}

// ResetStakeholderMentions resets all changes to the "stakeholder_mentions" field.
func (m *TaskMutation) ResetStakeholderMentions() {
	m.stakeholder_mentions = nil
	m.appendstakeholder_mentions = nil
	delete(m.clearedFields, task.FieldStakeholderMentions)
}

// SetSourceType sets the "source_type" field.
func (m *TaskMutation) SetSourceType(tt task.SourceType) {
	m.source_type = &tt
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *TaskMutation) SourceType() (r task.SourceType, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSourceType(ctx context.Context) (v task.SourceType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *TaskMutation) ResetSourceType() {
	m.source_type = nil
}

// SetSourceURL sets the "source_url" field.
func (m *TaskMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *TaskMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSourceURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ClearSourceURL clears the value of the "source_url" field.
func (m *TaskMutation) ClearSourceURL() {
	m.source_url = nil
	m.clearedFields[task.FieldSourceURL] = struct{}{}
}

// SourceURLCleared returns if the "source_url" field was cleared in this mutation.
func (m *TaskMutation) SourceURLCleared() bool {
	_, ok := m.clearedFields[task.FieldSourceURL]
	return ok
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *TaskMutation) ResetSourceURL() {
	m.source_url = nil
	delete(m.clearedFields, task.FieldSourceURL)
}

// SetInboxItemID sets the "inbox_item_id" field.
func (m *TaskMutation) SetInboxItemID(s string) {
	m.inbox_item_id = &s
}

// InboxItemID returns the value of the "inbox_item_id" field in the mutation.
func (m *TaskMutation) InboxItemID() (r string, exists bool) {
	v := m.inbox_item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInboxItemID returns the old "inbox_item_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldInboxItemID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInboxItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInboxItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInboxItemID: %w", err)
	}
	return oldValue.InboxItemID, nil
}

// ClearInboxItemID clears the value of the "inbox_item_id" field.
func (m *TaskMutation) ClearInboxItemID() {
	m.inbox_item_id = nil
	m.clearedFields[task.FieldInboxItemID] = struct{}{}
}

// InboxItemIDCleared returns if the "inbox_item_id" field was cleared in this mutation.
func (m *TaskMutation) InboxItemIDCleared() bool {
	_, ok := m.clearedFields[task.FieldInboxItemID]
	return ok
}

// ResetInboxItemID resets all changes to the "inbox_item_id" field.
func (m *TaskMutation) ResetInboxItemID() {
	m.inbox_item_id = nil
	delete(m.clearedFields, task.FieldInboxItemID)
}

// SetPinnedExcerpt sets the "pinned_excerpt" field.
func (m *TaskMutation) SetPinnedExcerpt(s string) {
	m.pinned_excerpt = &s
}

// PinnedExcerpt returns the value of the "pinned_excerpt" field in the mutation.
func (m *TaskMutation) PinnedExcerpt() (r string, exists bool) {
	v := m.pinned_excerpt
	if v == nil {
		return
	}
	return *v, true
}

// OldPinnedExcerpt returns the old "pinned_excerpt" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPinnedExcerpt(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPinnedExcerpt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPinnedExcerpt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPinnedExcerpt: %w", err)
	}
	return oldValue.PinnedExcerpt, nil
}

// ClearPinnedExcerpt clears the value of the "pinned_excerpt" field.
func (m *TaskMutation) ClearPinnedExcerpt() {
	m.pinned_excerpt = nil
	m.clearedFields[task.FieldPinnedExcerpt] = struct{}{}
}

// PinnedExcerptCleared returns if the "pinned_excerpt" field was cleared in this mutation.
func (m *TaskMutation) PinnedExcerptCleared() bool {
	_, ok := m.clearedFields[task.FieldPinnedExcerpt]
	return ok
}

// ResetPinnedExcerpt resets all changes to the "pinned_excerpt" field.
func (m *TaskMutation) ResetPinnedExcerpt() {
	m.pinned_excerpt = nil
	delete(m.clearedFields, task.FieldPinnedExcerpt)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 22)
	if m.owner_id != nil {
		fields = append(fields, task.FieldOwnerID)
	}
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m.application_id != nil {
		fields = append(fields, task.FieldApplicationID)
	}
	if m.project_id != nil {
		fields = append(fields, task.FieldProjectID)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.task_type != nil {
		fields = append(fields, task.FieldTaskType)
	}
	if m.priority_score != nil {
		fields = append(fields, task.FieldPriorityScore)
	}
	if m.estimated_minutes != nil {
		fields = append(fields, task.FieldEstimatedMinutes)
	}
	if m.estimate_source != nil {
		fields = append(fields, task.FieldEstimateSource)
	}
	if m.due_at != nil {
		fields = append(fields, task.FieldDueAt)
	}
	if m.needs_review != nil {
		fields = append(fields, task.FieldNeedsReview)
	}
	if m.blocker != nil {
		fields = append(fields, task.FieldBlocker)
	}
	if m.waiting_on != nil {
		fields = append(fields, task.FieldWaitingOn)
	}
	if m.follow_up_at != nil {
		fields = append(fields, task.FieldFollowUpAt)
	}
	if m.stakeholder_mentions != nil {
		fields = append(fields, task.FieldStakeholderMentions)
	}
	if m.source_type != nil {
		fields = append(fields, task.FieldSourceType)
	}
	if m.source_url != nil {
		fields = append(fields, task.FieldSourceURL)
	}
	if m.inbox_item_id != nil {
		fields = append(fields, task.FieldInboxItemID)
	}
	if m.pinned_excerpt != nil {
		fields = append(fields, task.FieldPinnedExcerpt)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldOwnerID:
		return m.OwnerID()
	case task.FieldTitle:
		return m.Title()
	case task.FieldDescription:
		return m.Description()
	case task.FieldApplicationID:
		return m.ApplicationID()
	case task.FieldProjectID:
		return m.ProjectID()
	case task.FieldStatus:
		return m.Status()
	case task.FieldTaskType:
		return m.TaskType()
	case task.FieldPriorityScore:
		return m.PriorityScore()
	case task.FieldEstimatedMinutes:
		return m.EstimatedMinutes()
	case task.FieldEstimateSource:
		return m.EstimateSource()
	case task.FieldDueAt:
		return m.DueAt()
	case task.FieldNeedsReview:
		return m.NeedsReview()
	case task.FieldBlocker:
		return m.Blocker()
	case task.FieldWaitingOn:
		return m.WaitingOn()
	case task.FieldFollowUpAt:
		return m.FollowUpAt()
	case task.FieldStakeholderMentions:
		return m.StakeholderMentions()
	case task.FieldSourceType:
		return m.SourceType()
	case task.FieldSourceURL:
		return m.SourceURL()
	case task.FieldInboxItemID:
		return m.InboxItemID()
	case task.FieldPinnedExcerpt:
		return m.PinnedExcerpt()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldApplicationID:
		return m.OldApplicationID(ctx)
	case task.FieldProjectID:
		return m.OldProjectID(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldTaskType:
		return m.OldTaskType(ctx)
	case task.FieldPriorityScore:
		return m.OldPriorityScore(ctx)
	case task.FieldEstimatedMinutes:
		return m.OldEstimatedMinutes(ctx)
	case task.FieldEstimateSource:
		return m.OldEstimateSource(ctx)
	case task.FieldDueAt:
		return m.OldDueAt(ctx)
	case task.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case task.FieldBlocker:
		return m.OldBlocker(ctx)
	case task.FieldWaitingOn:
		return m.OldWaitingOn(ctx)
	case task.FieldFollowUpAt:
		return m.OldFollowUpAt(ctx)
	case task.FieldStakeholderMentions:
		return m.OldStakeholderMentions(ctx)
	case task.FieldSourceType:
		return m.OldSourceType(ctx)
	case task.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case task.FieldInboxItemID:
		return m.OldInboxItemID(ctx)
	case task.FieldPinnedExcerpt:
		return m.OldPinnedExcerpt(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldApplicationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicationID(v)
		return nil
	case task.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldTaskType:
		v, ok := value.(task.TaskType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskType(v)
		return nil
	case task.FieldPriorityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorityScore(v)
		return nil
	case task.FieldEstimatedMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedMinutes(v)
		return nil
	case task.FieldEstimateSource:
		v, ok := value.(task.EstimateSource)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimateSource(v)
		return nil
	case task.FieldDueAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueAt(v)
		return nil
	case task.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case task.FieldBlocker:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlocker(v)
		return nil
	case task.FieldWaitingOn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWaitingOn(v)
		return nil
	case task.FieldFollowUpAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFollowUpAt(v)
		return nil
	case task.FieldStakeholderMentions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStakeholderMentions(v)
		return nil
	case task.FieldSourceType:
		v, ok := value.(task.SourceType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case task.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case task.FieldInboxItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInboxItemID(v)
		return nil
	case task.FieldPinnedExcerpt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPinnedExcerpt(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addpriority_score != nil {
		fields = append(fields, task.FieldPriorityScore)
	}
	if m.addestimated_minutes != nil {
		fields = append(fields, task.FieldEstimatedMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldPriorityScore:
		return m.AddedPriorityScore()
	case task.FieldEstimatedMinutes:
		return m.AddedEstimatedMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldPriorityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriorityScore(v)
		return nil
	case task.FieldEstimatedMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldDescription) {
		fields = append(fields, task.FieldDescription)
	}
	if m.FieldCleared(task.FieldApplicationID) {
		fields = append(fields, task.FieldApplicationID)
	}
	if m.FieldCleared(task.FieldProjectID) {
		fields = append(fields, task.FieldProjectID)
	}
	if m.FieldCleared(task.FieldDueAt) {
		fields = append(fields, task.FieldDueAt)
	}
	if m.FieldCleared(task.FieldWaitingOn) {
		fields = append(fields, task.FieldWaitingOn)
	}
	if m.FieldCleared(task.FieldFollowUpAt) {
		fields = append(fields, task.FieldFollowUpAt)
	}
	if m.FieldCleared(task.FieldStakeholderMentions) {
		fields = append(fields, task.FieldStakeholderMentions)
	}
	if m.FieldCleared(task.FieldSourceURL) {
		fields = append(fields, task.FieldSourceURL)
	}
	if m.FieldCleared(task.FieldInboxItemID) {
		fields = append(fields, task.FieldInboxItemID)
	}
	if m.FieldCleared(task.FieldPinnedExcerpt) {
		fields = append(fields, task.FieldPinnedExcerpt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldDescription:
		m.ClearDescription()
		return nil
	case task.FieldApplicationID:
		m.ClearApplicationID()
		return nil
	case task.FieldProjectID:
		m.ClearProjectID()
		return nil
	case task.FieldDueAt:
		m.ClearDueAt()
		return nil
	case task.FieldWaitingOn:
		m.ClearWaitingOn()
		return nil
	case task.FieldFollowUpAt:
		m.ClearFollowUpAt()
		return nil
	case task.FieldStakeholderMentions:
		m.ClearStakeholderMentions()
		return nil
	case task.FieldSourceURL:
		m.ClearSourceURL()
		return nil
	case task.FieldInboxItemID:
		m.ClearInboxItemID()
		return nil
	case task.FieldPinnedExcerpt:
		m.ClearPinnedExcerpt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldApplicationID:
		m.ResetApplicationID()
		return nil
	case task.FieldProjectID:
		m.ResetProjectID()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldTaskType:
		m.ResetTaskType()
		return nil
	case task.FieldPriorityScore:
		m.ResetPriorityScore()
		return nil
	case task.FieldEstimatedMinutes:
		m.ResetEstimatedMinutes()
		return nil
	case task.FieldEstimateSource:
		m.ResetEstimateSource()
		return nil
	case task.FieldDueAt:
		m.ResetDueAt()
		return nil
	case task.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case task.FieldBlocker:
		m.ResetBlocker()
		return nil
	case task.FieldWaitingOn:
		m.ResetWaitingOn()
		return nil
	case task.FieldFollowUpAt:
		m.ResetFollowUpAt()
		return nil
	case task.FieldStakeholderMentions:
		m.ResetStakeholderMentions()
		return nil
	case task.FieldSourceType:
		m.ResetSourceType()
		return nil
	case task.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case task.FieldInboxItemID:
		m.ResetInboxItemID()
		return nil
	case task.FieldPinnedExcerpt:
		m.ResetPinnedExcerpt()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Task edge %s", name)
}

// TaskDependencyMutation represents an operation that mutates the TaskDependency nodes in the graph.
type TaskDependencyMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	owner_id                 *string
	task_id                  *string
	depends_on_task_id       *string
	depends_on_commitment_id *string
	created_at               *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*TaskDependency, error)
	predicates               []predicate.TaskDependency
}

var _ ent.Mutation = (*TaskDependencyMutation)(nil)

// taskdependencyOption allows management of the mutation configuration using functional options.
type taskdependencyOption func(*TaskDependencyMutation)

// newTaskDependencyMutation creates new mutation for the TaskDependency entity.
func newTaskDependencyMutation(c config, op Op, opts ...taskdependencyOption) *TaskDependencyMutation {
	m := &TaskDependencyMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskDependency,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskDependencyID sets the ID field of the mutation.
func withTaskDependencyID(id string) taskdependencyOption {
	return func(m *TaskDependencyMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskDependency
		)
		m.oldValue = func(ctx context.Context) (*TaskDependency, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskDependency.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskDependency sets the old TaskDependency of the mutation.
func withTaskDependency(node *TaskDependency) taskdependencyOption {
	return func(m *TaskDependencyMutation) {
		m.oldValue = func(context.Context) (*TaskDependency, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskDependencyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskDependencyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaskDependency entities.
func (m *TaskDependencyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskDependencyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskDependencyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskDependency.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *TaskDependencyMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *TaskDependencyMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the TaskDependency entity.
// If the TaskDependency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskDependencyMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *TaskDependencyMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetTaskID sets the "task_id" field.
func (m *TaskDependencyMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TaskDependencyMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TaskDependency entity.
// If the TaskDependency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskDependencyMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TaskDependencyMutation) ResetTaskID() {
	m.task_id = nil
}

// SetDependsOnTaskID sets the "depends_on_task_id" field.
func (m *TaskDependencyMutation) SetDependsOnTaskID(s string) {
	m.depends_on_task_id = &s
}

// DependsOnTaskID returns the value of the "depends_on_task_id" field in the mutation.
func (m *TaskDependencyMutation) DependsOnTaskID() (r string, exists bool) {
	v := m.depends_on_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDependsOnTaskID returns the old "depends_on_task_id" field's value of the TaskDependency entity.
// If the TaskDependency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskDependencyMutation) OldDependsOnTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependsOnTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependsOnTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependsOnTaskID: %w", err)
	}
	return oldValue.DependsOnTaskID, nil
}

// ClearDependsOnTaskID clears the value of the "depends_on_task_id" field.
func (m *TaskDependencyMutation) ClearDependsOnTaskID() {
	m.depends_on_task_id = nil
	m.clearedFields[taskdependency.FieldDependsOnTaskID] = struct{}{}
}

// DependsOnTaskIDCleared returns if the "depends_on_task_id" field was cleared in this mutation.
func (m *TaskDependencyMutation) DependsOnTaskIDCleared() bool {
	_, ok := m.clearedFields[taskdependency.FieldDependsOnTaskID]
	return ok
}

// ResetDependsOnTaskID resets all changes to the "depends_on_task_id" field.
func (m *TaskDependencyMutation) ResetDependsOnTaskID() {
	m.depends_on_task_id = nil
	delete(m.clearedFields, taskdependency.FieldDependsOnTaskID)
}

// SetDependsOnCommitmentID sets the "depends_on_commitment_id" field.
func (m *TaskDependencyMutation) SetDependsOnCommitmentID(s string) {
	m.depends_on_commitment_id = &s
}

// DependsOnCommitmentID returns the value of the "depends_on_commitment_id" field in the mutation.
func (m *TaskDependencyMutation) DependsOnCommitmentID() (r string, exists bool) {
	v := m.depends_on_commitment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDependsOnCommitmentID returns the old "depends_on_commitment_id" field's value of the TaskDependency entity.
// If the TaskDependency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskDependencyMutation) OldDependsOnCommitmentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependsOnCommitmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependsOnCommitmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependsOnCommitmentID: %w", err)
	}
	return oldValue.DependsOnCommitmentID, nil
}

// ClearDependsOnCommitmentID clears the value of the "depends_on_commitment_id" field.
func (m *TaskDependencyMutation) ClearDependsOnCommitmentID() {
	m.depends_on_commitment_id = nil
	m.clearedFields[taskdependency.FieldDependsOnCommitmentID] = struct{}{}
}

// DependsOnCommitmentIDCleared returns if the "depends_on_commitment_id" field was cleared in this mutation.
func (m *TaskDependencyMutation) DependsOnCommitmentIDCleared() bool {
	_, ok := m.clearedFields[taskdependency.FieldDependsOnCommitmentID]
	return ok
}

// ResetDependsOnCommitmentID resets all changes to the "depends_on_commitment_id" field.
func (m *TaskDependencyMutation) ResetDependsOnCommitmentID() {
	m.depends_on_commitment_id = nil
	delete(m.clearedFields, taskdependency.FieldDependsOnCommitmentID)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskDependencyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskDependencyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TaskDependency entity.
// If the TaskDependency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskDependencyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskDependencyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TaskDependencyMutation builder.
func (m *TaskDependencyMutation) Where(ps ...predicate.TaskDependency) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskDependencyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskDependencyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskDependency, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskDependencyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskDependencyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskDependency).
func (m *TaskDependencyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskDependencyMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.owner_id != nil {
		fields = append(fields, taskdependency.FieldOwnerID)
	}
	if m.task_id != nil {
		fields = append(fields, taskdependency.FieldTaskID)
	}
	if m.depends_on_task_id != nil {
		fields = append(fields, taskdependency.FieldDependsOnTaskID)
	}
	if m.depends_on_commitment_id != nil {
		fields = append(fields, taskdependency.FieldDependsOnCommitmentID)
	}
	if m.created_at != nil {
		fields = append(fields, taskdependency.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskDependencyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskdependency.FieldOwnerID:
		return m.OwnerID()
	case taskdependency.FieldTaskID:
		return m.TaskID()
	case taskdependency.FieldDependsOnTaskID:
		return m.DependsOnTaskID()
	case taskdependency.FieldDependsOnCommitmentID:
		return m.DependsOnCommitmentID()
	case taskdependency.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskDependencyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskdependency.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case taskdependency.FieldTaskID:
		return m.OldTaskID(ctx)
	case taskdependency.FieldDependsOnTaskID:
		return m.OldDependsOnTaskID(ctx)
	case taskdependency.FieldDependsOnCommitmentID:
		return m.OldDependsOnCommitmentID(ctx)
	case taskdependency.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskDependency field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskDependencyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskdependency.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case taskdependency.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case taskdependency.FieldDependsOnTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependsOnTaskID(v)
		return nil
	case taskdependency.FieldDependsOnCommitmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependsOnCommitmentID(v)
		return nil
	case taskdependency.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskDependency field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskDependencyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskDependencyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskDependencyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TaskDependency numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskDependencyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(taskdependency.FieldDependsOnTaskID) {
		fields = append(fields, taskdependency.FieldDependsOnTaskID)
	}
	if m.FieldCleared(taskdependency.FieldDependsOnCommitmentID) {
		fields = append(fields, taskdependency.FieldDependsOnCommitmentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskDependencyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskDependencyMutation) ClearField(name string) error {
	switch name {
	case taskdependency.FieldDependsOnTaskID:
		m.ClearDependsOnTaskID()
		return nil
	case taskdependency.FieldDependsOnCommitmentID:
		m.ClearDependsOnCommitmentID()
		return nil
	}
	return fmt.Errorf("unknown TaskDependency nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskDependencyMutation) ResetField(name string) error {
	switch name {
	case taskdependency.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case taskdependency.FieldTaskID:
		m.ResetTaskID()
		return nil
	case taskdependency.FieldDependsOnTaskID:
		m.ResetDependsOnTaskID()
		return nil
	case taskdependency.FieldDependsOnCommitmentID:
		m.ResetDependsOnCommitmentID()
		return nil
	case taskdependency.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskDependency field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskDependencyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskDependencyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskDependencyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskDependencyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskDependencyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskDependencyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskDependencyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TaskDependency unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskDependencyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TaskDependency edge %s", name)
}

// UsageEventMutation represents an operation that mutates the UsageEvent nodes in the graph.
type UsageEventMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	owner_id              *string
	feature               *string
	provider              *string
	model_id              *string
	model_source          *usageevent.ModelSource
	status                *usageevent.Status
	latency_ms            *int
	addlatency_ms         *int
	input_tokens          *int
	addinput_tokens       *int
	output_tokens         *int
	addoutput_tokens      *int
	total_tokens          *int
	addtotal_tokens       *int
	estimated_cost_usd    *float64
	addestimated_cost_usd *float64
	cache_status          *string
	request_fingerprint   *string
	created_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*UsageEvent, error)
	predicates            []predicate.UsageEvent
}

var _ ent.Mutation = (*UsageEventMutation)(nil)

// usageeventOption allows management of the mutation configuration using functional options.
type usageeventOption func(*UsageEventMutation)

// newUsageEventMutation creates new mutation for the UsageEvent entity.
func newUsageEventMutation(c config, op Op, opts ...usageeventOption) *UsageEventMutation {
	m := &UsageEventMutation{
		config:        c,
		op:            op,
		typ:           TypeUsageEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUsageEventID sets the ID field of the mutation.
func withUsageEventID(id string) usageeventOption {
	return func(m *UsageEventMutation) {
		var (
			err   error
			once  sync.Once
			value *UsageEvent
		)
		m.oldValue = func(ctx context.Context) (*UsageEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UsageEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUsageEvent sets the old UsageEvent of the mutation.
func withUsageEvent(node *UsageEvent) usageeventOption {
	return func(m *UsageEventMutation) {
		m.oldValue = func(context.Context) (*UsageEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UsageEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UsageEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UsageEvent entities.
func (m *UsageEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UsageEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UsageEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UsageEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *UsageEventMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *UsageEventMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the UsageEvent entity.
// If the UsageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEventMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *UsageEventMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetFeature sets the "feature" field.
func (m *UsageEventMutation) SetFeature(s string) {
	m.feature = &s
}

// Feature returns the value of the "feature" field in the mutation.
func (m *UsageEventMutation) Feature() (r string, exists bool) {
	v := m.feature
	if v == nil {
		return
	}
	return *v, true
}

// OldFeature returns the old "feature" field's value of the UsageEvent entity.
// If the UsageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEventMutation) OldFeature(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeature: %w", err)
	}
	return oldValue.Feature, nil
}

// ResetFeature resets all changes to the "feature" field.
func (m *UsageEventMutation) ResetFeature() {
	m.feature = nil
}

// SetProvider sets the "provider" field.
func (m *UsageEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *UsageEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the UsageEvent entity.
// If the UsageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *UsageEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModelID sets the "model_id" field.
func (m *UsageEventMutation) SetModelID(s string) {
	m.model_id = &s
}

// ModelID returns the value of the "model_id" field in the mutation.
func (m *UsageEventMutation) ModelID() (r string, exists bool) {
	v := m.model_id
	if v == nil {
		return
	}
	return *v, true
}

// OldModelID returns the old "model_id" field's value of the UsageEvent entity.
// If the UsageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEventMutation) OldModelID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelID: %w", err)
	}
	return oldValue.ModelID, nil
}

// ResetModelID resets all changes to the "model_id" field.
func (m *UsageEventMutation) ResetModelID() {
	m.model_id = nil
}

// SetModelSource sets the "model_source" field.
func (m *UsageEventMutation) SetModelSource(us usageevent.ModelSource) {
	m.model_source = &us
}

// ModelSource returns the value of the "model_source" field in the mutation.
func (m *UsageEventMutation) ModelSource() (r usageevent.ModelSource, exists bool) {
	v := m.model_source
	if v == nil {
		return
	}
	return *v, true
}

// OldModelSource returns the old "model_source" field's value of the UsageEvent entity.
// If the UsageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEventMutation) OldModelSource(ctx context.Context) (v usageevent.ModelSource, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelSource: %w", err)
	}
	return oldValue.ModelSource, nil
}

// ResetModelSource resets all changes to the "model_source" field.
func (m *UsageEventMutation) ResetModelSource() {
	m.model_source = nil
}

// SetStatus sets the "status" field.
func (m *UsageEventMutation) SetStatus(u usageevent.Status) {
	m.status = &u
}

// Status returns the value of the "status" field in the mutation.
func (m *UsageEventMutation) Status() (r usageevent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the UsageEvent entity.
// If the UsageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEventMutation) OldStatus(ctx context.Context) (v usageevent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UsageEventMutation) ResetStatus() {
	m.status = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *UsageEventMutation) SetLatencyMs(i int) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *UsageEventMutation) LatencyMs() (r int, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the UsageEvent entity.
// If the UsageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEventMutation) OldLatencyMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *UsageEventMutation) AddLatencyMs(i int) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *UsageEventMutation) AddedLatencyMs() (r int, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *UsageEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *UsageEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *UsageEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the UsageEvent entity.
// If the UsageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEventMutation) OldInputTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *UsageEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *UsageEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (m *UsageEventMutation) ClearInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
	m.clearedFields[usageevent.FieldInputTokens] = struct{}{}
}

// InputTokensCleared returns if the "input_tokens" field was cleared in this mutation.
func (m *UsageEventMutation) InputTokensCleared() bool {
	_, ok := m.clearedFields[usageevent.FieldInputTokens]
	return ok
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *UsageEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
	delete(m.clearedFields, usageevent.FieldInputTokens)
}

// SetOutputTokens sets the "output_tokens" field.
func (m *UsageEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *UsageEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the UsageEvent entity.
// If the UsageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEventMutation) OldOutputTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *UsageEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *UsageEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (m *UsageEventMutation) ClearOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
	m.clearedFields[usageevent.FieldOutputTokens] = struct{}{}
}

// OutputTokensCleared returns if the "output_tokens" field was cleared in this mutation.
func (m *UsageEventMutation) OutputTokensCleared() bool {
	_, ok := m.clearedFields[usageevent.FieldOutputTokens]
	return ok
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *UsageEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
	delete(m.clearedFields, usageevent.FieldOutputTokens)
}

// SetTotalTokens sets the "total_tokens" field.
func (m *UsageEventMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *UsageEventMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the UsageEvent entity.
// If the UsageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEventMutation) OldTotalTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *UsageEventMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *UsageEventMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (m *UsageEventMutation) ClearTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
	m.clearedFields[usageevent.FieldTotalTokens] = struct{}{}
}

// TotalTokensCleared returns if the "total_tokens" field was cleared in this mutation.
func (m *UsageEventMutation) TotalTokensCleared() bool {
	_, ok := m.clearedFields[usageevent.FieldTotalTokens]
	return ok
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *UsageEventMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
	delete(m.clearedFields, usageevent.FieldTotalTokens)
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (m *UsageEventMutation) SetEstimatedCostUsd(f float64) {
	m.estimated_cost_usd = &f
	m.addestimated_cost_usd = nil
}

// EstimatedCostUsd returns the value of the "estimated_cost_usd" field in the mutation.
func (m *UsageEventMutation) EstimatedCostUsd() (r float64, exists bool) {
	v := m.estimated_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedCostUsd returns the old "estimated_cost_usd" field's value of the UsageEvent entity.
// If the UsageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEventMutation) OldEstimatedCostUsd(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedCostUsd: %w", err)
	}
	return oldValue.EstimatedCostUsd, nil
}

// AddEstimatedCostUsd adds f to the "estimated_cost_usd" field.
func (m *UsageEventMutation) AddEstimatedCostUsd(f float64) {
	if m.addestimated_cost_usd != nil {
		*m.addestimated_cost_usd += f
	} else {
		m.addestimated_cost_usd = &f
	}
}

// AddedEstimatedCostUsd returns the value that was added to the "estimated_cost_usd" field in this mutation.
func (m *UsageEventMutation) AddedEstimatedCostUsd() (r float64, exists bool) {
	v := m.addestimated_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ClearEstimatedCostUsd clears the value of the "estimated_cost_usd" field.
func (m *UsageEventMutation) ClearEstimatedCostUsd() {
	m.estimated_cost_usd = nil
	m.addestimated_cost_usd = nil
	m.clearedFields[usageevent.FieldEstimatedCostUsd] = struct{}{}
}

// EstimatedCostUsdCleared returns if the "estimated_cost_usd" field was cleared in this mutation.
func (m *UsageEventMutation) EstimatedCostUsdCleared() bool {
	_, ok := m.clearedFields[usageevent.FieldEstimatedCostUsd]
	return ok
}

// ResetEstimatedCostUsd resets all changes to the "estimated_cost_usd" field.
func (m *UsageEventMutation) ResetEstimatedCostUsd() {
	m.estimated_cost_usd = nil
	m.addestimated_cost_usd = nil
	delete(m.clearedFields, usageevent.FieldEstimatedCostUsd)
}

// SetCacheStatus sets the "cache_status" field.
func (m *UsageEventMutation) SetCacheStatus(s string) {
	m.cache_status = &s
}

// CacheStatus returns the value of the "cache_status" field in the mutation.
func (m *UsageEventMutation) CacheStatus() (r string, exists bool) {
	v := m.cache_status
	if v == nil {
		return
	}
	return *v, true
}

// OldCacheStatus returns the old "cache_status" field's value of the UsageEvent entity.
// If the UsageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEventMutation) OldCacheStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCacheStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCacheStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCacheStatus: %w", err)
	}
	return oldValue.CacheStatus, nil
}

// ClearCacheStatus clears the value of the "cache_status" field.
func (m *UsageEventMutation) ClearCacheStatus() {
	m.cache_status = nil
	m.clearedFields[usageevent.FieldCacheStatus] = struct{}{}
}

// CacheStatusCleared returns if the "cache_status" field was cleared in this mutation.
func (m *UsageEventMutation) CacheStatusCleared() bool {
	_, ok := m.clearedFields[usageevent.FieldCacheStatus]
	return ok
}

// ResetCacheStatus resets all changes to the "cache_status" field.
func (m *UsageEventMutation) ResetCacheStatus() {
	m.cache_status = nil
	delete(m.clearedFields, usageevent.FieldCacheStatus)
}

// SetRequestFingerprint sets the "request_fingerprint" field.
func (m *UsageEventMutation) SetRequestFingerprint(s string) {
	m.request_fingerprint = &s
}

// RequestFingerprint returns the value of the "request_fingerprint" field in the mutation.
func (m *UsageEventMutation) RequestFingerprint() (r string, exists bool) {
	v := m.request_fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestFingerprint returns the old "request_fingerprint" field's value of the UsageEvent entity.
// If the UsageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEventMutation) OldRequestFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestFingerprint: %w", err)
	}
	return oldValue.RequestFingerprint, nil
}

// ClearRequestFingerprint clears the value of the "request_fingerprint" field.
func (m *UsageEventMutation) ClearRequestFingerprint() {
	m.request_fingerprint = nil
	m.clearedFields[usageevent.FieldRequestFingerprint] = struct{}{}
}

// RequestFingerprintCleared returns if the "request_fingerprint" field was cleared in this mutation.
func (m *UsageEventMutation) RequestFingerprintCleared() bool {
	_, ok := m.clearedFields[usageevent.FieldRequestFingerprint]
	return ok
}

// ResetRequestFingerprint resets all changes to the "request_fingerprint" field.
func (m *UsageEventMutation) ResetRequestFingerprint() {
	m.request_fingerprint = nil
	delete(m.clearedFields, usageevent.FieldRequestFingerprint)
}

// SetCreatedAt sets the "created_at" field.
func (m *UsageEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UsageEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UsageEvent entity.
// If the UsageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UsageEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the UsageEventMutation builder.
func (m *UsageEventMutation) Where(ps ...predicate.UsageEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UsageEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UsageEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UsageEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UsageEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UsageEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UsageEvent).
func (m *UsageEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UsageEventMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.owner_id != nil {
		fields = append(fields, usageevent.FieldOwnerID)
	}
	if m.feature != nil {
		fields = append(fields, usageevent.FieldFeature)
	}
	if m.provider != nil {
		fields = append(fields, usageevent.FieldProvider)
	}
	if m.model_id != nil {
		fields = append(fields, usageevent.FieldModelID)
	}
	if m.model_source != nil {
		fields = append(fields, usageevent.FieldModelSource)
	}
	if m.status != nil {
		fields = append(fields, usageevent.FieldStatus)
	}
	if m.latency_ms != nil {
		fields = append(fields, usageevent.FieldLatencyMs)
	}
	if m.input_tokens != nil {
		fields = append(fields, usageevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, usageevent.FieldOutputTokens)
	}
	if m.total_tokens != nil {
		fields = append(fields, usageevent.FieldTotalTokens)
	}
	if m.estimated_cost_usd != nil {
		fields = append(fields, usageevent.FieldEstimatedCostUsd)
	}
	if m.cache_status != nil {
		fields = append(fields, usageevent.FieldCacheStatus)
	}
	if m.request_fingerprint != nil {
		fields = append(fields, usageevent.FieldRequestFingerprint)
	}
	if m.created_at != nil {
		fields = append(fields, usageevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UsageEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usageevent.FieldOwnerID:
		return m.OwnerID()
	case usageevent.FieldFeature:
		return m.Feature()
	case usageevent.FieldProvider:
		return m.Provider()
	case usageevent.FieldModelID:
		return m.ModelID()
	case usageevent.FieldModelSource:
		return m.ModelSource()
	case usageevent.FieldStatus:
		return m.Status()
	case usageevent.FieldLatencyMs:
		return m.LatencyMs()
	case usageevent.FieldInputTokens:
		return m.InputTokens()
	case usageevent.FieldOutputTokens:
		return m.OutputTokens()
	case usageevent.FieldTotalTokens:
		return m.TotalTokens()
	case usageevent.FieldEstimatedCostUsd:
		return m.EstimatedCostUsd()
	case usageevent.FieldCacheStatus:
		return m.CacheStatus()
	case usageevent.FieldRequestFingerprint:
		return m.RequestFingerprint()
	case usageevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UsageEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usageevent.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case usageevent.FieldFeature:
		return m.OldFeature(ctx)
	case usageevent.FieldProvider:
		return m.OldProvider(ctx)
	case usageevent.FieldModelID:
		return m.OldModelID(ctx)
	case usageevent.FieldModelSource:
		return m.OldModelSource(ctx)
	case usageevent.FieldStatus:
		return m.OldStatus(ctx)
	case usageevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case usageevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case usageevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case usageevent.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case usageevent.FieldEstimatedCostUsd:
		return m.OldEstimatedCostUsd(ctx)
	case usageevent.FieldCacheStatus:
		return m.OldCacheStatus(ctx)
	case usageevent.FieldRequestFingerprint:
		return m.OldRequestFingerprint(ctx)
	case usageevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UsageEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usageevent.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case usageevent.FieldFeature:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeature(v)
		return nil
	case usageevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case usageevent.FieldModelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelID(v)
		return nil
	case usageevent.FieldModelSource:
		v, ok := value.(usageevent.ModelSource)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelSource(v)
		return nil
	case usageevent.FieldStatus:
		v, ok := value.(usageevent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case usageevent.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case usageevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case usageevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case usageevent.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case usageevent.FieldEstimatedCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedCostUsd(v)
		return nil
	case usageevent.FieldCacheStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCacheStatus(v)
		return nil
	case usageevent.FieldRequestFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestFingerprint(v)
		return nil
	case usageevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UsageEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UsageEventMutation) AddedFields() []string {
	var fields []string
	if m.addlatency_ms != nil {
		fields = append(fields, usageevent.FieldLatencyMs)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, usageevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, usageevent.FieldOutputTokens)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, usageevent.FieldTotalTokens)
	}
	if m.addestimated_cost_usd != nil {
		fields = append(fields, usageevent.FieldEstimatedCostUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UsageEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case usageevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	case usageevent.FieldInputTokens:
		return m.AddedInputTokens()
	case usageevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case usageevent.FieldTotalTokens:
		return m.AddedTotalTokens()
	case usageevent.FieldEstimatedCostUsd:
		return m.AddedEstimatedCostUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case usageevent.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	case usageevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case usageevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case usageevent.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	case usageevent.FieldEstimatedCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedCostUsd(v)
		return nil
	}
	return fmt.Errorf("unknown UsageEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UsageEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(usageevent.FieldInputTokens) {
		fields = append(fields, usageevent.FieldInputTokens)
	}
	if m.FieldCleared(usageevent.FieldOutputTokens) {
		fields = append(fields, usageevent.FieldOutputTokens)
	}
	if m.FieldCleared(usageevent.FieldTotalTokens) {
		fields = append(fields, usageevent.FieldTotalTokens)
	}
	if m.FieldCleared(usageevent.FieldEstimatedCostUsd) {
		fields = append(fields, usageevent.FieldEstimatedCostUsd)
	}
	if m.FieldCleared(usageevent.FieldCacheStatus) {
		fields = append(fields, usageevent.FieldCacheStatus)
	}
	if m.FieldCleared(usageevent.FieldRequestFingerprint) {
		fields = append(fields, usageevent.FieldRequestFingerprint)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UsageEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UsageEventMutation) ClearField(name string) error {
	switch name {
	case usageevent.FieldInputTokens:
		m.ClearInputTokens()
		return nil
	case usageevent.FieldOutputTokens:
		m.ClearOutputTokens()
		return nil
	case usageevent.FieldTotalTokens:
		m.ClearTotalTokens()
		return nil
	case usageevent.FieldEstimatedCostUsd:
		m.ClearEstimatedCostUsd()
		return nil
	case usageevent.FieldCacheStatus:
		m.ClearCacheStatus()
		return nil
	case usageevent.FieldRequestFingerprint:
		m.ClearRequestFingerprint()
		return nil
	}
	return fmt.Errorf("unknown UsageEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UsageEventMutation) ResetField(name string) error {
	switch name {
	case usageevent.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case usageevent.FieldFeature:
		m.ResetFeature()
		return nil
	case usageevent.FieldProvider:
		m.ResetProvider()
		return nil
	case usageevent.FieldModelID:
		m.ResetModelID()
		return nil
	case usageevent.FieldModelSource:
		m.ResetModelSource()
		return nil
	case usageevent.FieldStatus:
		m.ResetStatus()
		return nil
	case usageevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case usageevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case usageevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case usageevent.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case usageevent.FieldEstimatedCostUsd:
		m.ResetEstimatedCostUsd()
		return nil
	case usageevent.FieldCacheStatus:
		m.ResetCacheStatus()
		return nil
	case usageevent.FieldRequestFingerprint:
		m.ResetRequestFingerprint()
		return nil
	case usageevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown UsageEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UsageEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UsageEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UsageEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UsageEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UsageEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UsageEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UsageEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UsageEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UsageEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UsageEvent edge %s", name)
}

// UserSessionMutation represents an operation that mutates the UserSession nodes in the graph.
type UserSessionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	token         *string
	owner_id      *string
	expires_at    *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*UserSession, error)
	predicates    []predicate.UserSession
}

var _ ent.Mutation = (*UserSessionMutation)(nil)

// usersessionOption allows management of the mutation configuration using functional options.
type usersessionOption func(*UserSessionMutation)

// newUserSessionMutation creates new mutation for the UserSession entity.
func newUserSessionMutation(c config, op Op, opts ...usersessionOption) *UserSessionMutation {
	m := &UserSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeUserSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserSessionID sets the ID field of the mutation.
func withUserSessionID(id string) usersessionOption {
	return func(m *UserSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *UserSession
		)
		m.oldValue = func(ctx context.Context) (*UserSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserSession sets the old UserSession of the mutation.
func withUserSession(node *UserSession) usersessionOption {
	return func(m *UserSessionMutation) {
		m.oldValue = func(context.Context) (*UserSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserSession entities.
func (m *UserSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetToken sets the "token" field.
func (m *UserSessionMutation) SetToken(s string) {
	m.token = &s
}

// Token returns the value of the "token" field in the mutation.
func (m *UserSessionMutation) Token() (r string, exists bool) {
	v := m.token
	if v == nil {
		return
	}
	return *v, true
}

// OldToken returns the old "token" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToken: %w", err)
	}
	return oldValue.Token, nil
}

// ResetToken resets all changes to the "token" field.
func (m *UserSessionMutation) ResetToken() {
	m.token = nil
}

// SetOwnerID sets the "owner_id" field.
func (m *UserSessionMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *UserSessionMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *UserSessionMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *UserSessionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *UserSessionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *UserSessionMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the UserSessionMutation builder.
func (m *UserSessionMutation) Where(ps ...predicate.UserSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserSession).
func (m *UserSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserSessionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.token != nil {
		fields = append(fields, usersession.FieldToken)
	}
	if m.owner_id != nil {
		fields = append(fields, usersession.FieldOwnerID)
	}
	if m.expires_at != nil {
		fields = append(fields, usersession.FieldExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, usersession.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usersession.FieldToken:
		return m.Token()
	case usersession.FieldOwnerID:
		return m.OwnerID()
	case usersession.FieldExpiresAt:
		return m.ExpiresAt()
	case usersession.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usersession.FieldToken:
		return m.OldToken(ctx)
	case usersession.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case usersession.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case usersession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usersession.FieldToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToken(v)
		return nil
	case usersession.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case usersession.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case usersession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserSessionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserSessionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UserSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserSessionMutation) ResetField(name string) error {
	switch name {
	case usersession.FieldToken:
		m.ResetToken()
		return nil
	case usersession.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case usersession.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case usersession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserSession edge %s", name)
}
