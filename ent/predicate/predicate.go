// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Application is the predicate function for application builders.
type Application func(*sql.Selector)

// CalendarEvent is the predicate function for calendarevent builders.
type CalendarEvent func(*sql.Selector)

// CalendarSnapshot is the predicate function for calendarsnapshot builders.
type CalendarSnapshot func(*sql.Selector)

// ChecklistItem is the predicate function for checklistitem builders.
type ChecklistItem func(*sql.Selector)

// Commitment is the predicate function for commitment builders.
type Commitment func(*sql.Selector)

// FocusDirective is the predicate function for focusdirective builders.
type FocusDirective func(*sql.Selector)

// InboxItem is the predicate function for inboxitem builders.
type InboxItem func(*sql.Selector)

// IngestionEvent is the predicate function for ingestionevent builders.
type IngestionEvent func(*sql.Selector)

// ModelCatalogEntry is the predicate function for modelcatalogentry builders.
type ModelCatalogEntry func(*sql.Selector)

// ModelPreference is the predicate function for modelpreference builders.
type ModelPreference func(*sql.Selector)

// Plan is the predicate function for plan builders.
type Plan func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// StatusUpdate is the predicate function for statusupdate builders.
type StatusUpdate func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TaskDependency is the predicate function for taskdependency builders.
type TaskDependency func(*sql.Selector)

// UsageEvent is the predicate function for usageevent builders.
type UsageEvent func(*sql.Selector)

// UserSession is the predicate function for usersession builders.
type UserSession func(*sql.Selector)
