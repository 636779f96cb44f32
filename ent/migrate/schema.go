// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApplicationsColumns holds the columns for the "applications" table.
	ApplicationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "phase", Type: field.TypeEnum, Enums: []string{"intake", "discovery", "design", "build", "test", "training", "go_live", "hypercare", "steady_state", "sundown"}, Default: "intake"},
		{Name: "rag", Type: field.TypeEnum, Enums: []string{"green", "yellow", "red"}, Default: "green"},
		{Name: "priority_weight", Type: field.TypeInt, Default: 5},
		{Name: "portfolio_rank", Type: field.TypeInt, Nullable: true},
		{Name: "stakeholders", Type: field.TypeJSON, Nullable: true},
		{Name: "keywords", Type: field.TypeJSON, Nullable: true},
		{Name: "status_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "next_milestone", Type: field.TypeString, Nullable: true},
		{Name: "target_date", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ApplicationsTable holds the schema information for the "applications" table.
	ApplicationsTable = &schema.Table{
		Name:       "applications",
		Columns:    ApplicationsColumns,
		PrimaryKey: []*schema.Column{ApplicationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "application_owner_id_portfolio_rank",
				Unique:  false,
				Columns: []*schema.Column{ApplicationsColumns[1], ApplicationsColumns[6]},
			},
		},
	}
	// CalendarEventsColumns holds the columns for the "calendar_events" table.
	CalendarEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"local", "ical", "graph"}},
		{Name: "external_event_id", Type: field.TypeString},
		{Name: "start_at", Type: field.TypeTime},
		{Name: "end_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString},
		{Name: "body_preview", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_all_day", Type: field.TypeBool, Default: false},
		{Name: "content_hash", Type: field.TypeString},
		{Name: "meeting_context", Type: field.TypeString, Nullable: true, Size: 8000},
		{Name: "removed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CalendarEventsTable holds the schema information for the "calendar_events" table.
	CalendarEventsTable = &schema.Table{
		Name:       "calendar_events",
		Columns:    CalendarEventsColumns,
		PrimaryKey: []*schema.Column{CalendarEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "calendarevent_owner_id_source_external_event_id_start_at",
				Unique:  true,
				Columns: []*schema.Column{CalendarEventsColumns[1], CalendarEventsColumns[2], CalendarEventsColumns[3], CalendarEventsColumns[4]},
			},
			{
				Name:    "calendarevent_owner_id_start_at",
				Unique:  false,
				Columns: []*schema.Column{CalendarEventsColumns[1], CalendarEventsColumns[4]},
			},
		},
	}
	// CalendarSnapshotsColumns holds the columns for the "calendar_snapshots" table.
	CalendarSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "range_start", Type: field.TypeString},
		{Name: "range_end", Type: field.TypeString},
		{Name: "payload_min", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CalendarSnapshotsTable holds the schema information for the "calendar_snapshots" table.
	CalendarSnapshotsTable = &schema.Table{
		Name:       "calendar_snapshots",
		Columns:    CalendarSnapshotsColumns,
		PrimaryKey: []*schema.Column{CalendarSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "calendarsnapshot_owner_id_range_start_range_end_created_at",
				Unique:  false,
				Columns: []*schema.Column{CalendarSnapshotsColumns[1], CalendarSnapshotsColumns[2], CalendarSnapshotsColumns[3], CalendarSnapshotsColumns[5]},
			},
			{
				Name:    "calendarsnapshot_created_at",
				Unique:  false,
				Columns: []*schema.Column{CalendarSnapshotsColumns[5]},
			},
		},
	}
	// ChecklistItemsColumns holds the columns for the "checklist_items" table.
	ChecklistItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "task_id", Type: field.TypeString},
		{Name: "label", Type: field.TypeString},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
		{Name: "done", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ChecklistItemsTable holds the schema information for the "checklist_items" table.
	ChecklistItemsTable = &schema.Table{
		Name:       "checklist_items",
		Columns:    ChecklistItemsColumns,
		PrimaryKey: []*schema.Column{ChecklistItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "checklistitem_task_id_sort_order",
				Unique:  false,
				Columns: []*schema.Column{ChecklistItemsColumns[2], ChecklistItemsColumns[4]},
			},
		},
	}
	// CommitmentsColumns holds the columns for the "commitments" table.
	CommitmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "stakeholder", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "direction", Type: field.TypeEnum, Enums: []string{"ours", "theirs"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "satisfied"}, Default: "open"},
		{Name: "due_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CommitmentsTable holds the schema information for the "commitments" table.
	CommitmentsTable = &schema.Table{
		Name:       "commitments",
		Columns:    CommitmentsColumns,
		PrimaryKey: []*schema.Column{CommitmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "commitment_owner_id_status",
				Unique:  false,
				Columns: []*schema.Column{CommitmentsColumns[1], CommitmentsColumns[5]},
			},
		},
	}
	// FocusDirectivesColumns holds the columns for the "focus_directives" table.
	FocusDirectivesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "directive_text", Type: field.TypeString, Size: 2147483647},
		{Name: "scope_type", Type: field.TypeEnum, Enums: []string{"application", "stakeholder", "task_type", "query"}},
		{Name: "scope_id", Type: field.TypeString, Nullable: true},
		{Name: "scope_value", Type: field.TypeString, Nullable: true},
		{Name: "strength", Type: field.TypeEnum, Enums: []string{"nudge", "strong", "hard"}, Default: "nudge"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "starts_at", Type: field.TypeTime, Nullable: true},
		{Name: "ends_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FocusDirectivesTable holds the schema information for the "focus_directives" table.
	FocusDirectivesTable = &schema.Table{
		Name:       "focus_directives",
		Columns:    FocusDirectivesColumns,
		PrimaryKey: []*schema.Column{FocusDirectivesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "focusdirective_owner_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{FocusDirectivesColumns[1], FocusDirectivesColumns[7]},
			},
		},
	}
	// InboxItemsColumns holds the columns for the "inbox_items" table.
	InboxItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "dedupe_key", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "from_email", Type: field.TypeString},
		{Name: "from_name", Type: field.TypeString, Nullable: true},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "message_id", Type: field.TypeString, Nullable: true},
		{Name: "source_url", Type: field.TypeString, Nullable: true},
		{Name: "triage_state", Type: field.TypeEnum, Enums: []string{"new", "processed", "error"}, Default: "new"},
		{Name: "extraction_json", Type: field.TypeJSON, Nullable: true},
		{Name: "extraction_model", Type: field.TypeString, Nullable: true},
		{Name: "extraction_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "processing_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// InboxItemsTable holds the schema information for the "inbox_items" table.
	InboxItemsTable = &schema.Table{
		Name:       "inbox_items",
		Columns:    InboxItemsColumns,
		PrimaryKey: []*schema.Column{InboxItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "inboxitem_owner_id_dedupe_key",
				Unique:  true,
				Columns: []*schema.Column{InboxItemsColumns[1], InboxItemsColumns[2]},
			},
			{
				Name:    "inboxitem_owner_id_triage_state",
				Unique:  false,
				Columns: []*schema.Column{InboxItemsColumns[1], InboxItemsColumns[9]},
			},
		},
	}
	// IngestionEventsColumns holds the columns for the "ingestion_events" table.
	IngestionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "inbox_item_id", Type: field.TypeString, Nullable: true},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"deduped", "received", "extracted", "task_created", "error"}},
		{Name: "detail", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// IngestionEventsTable holds the schema information for the "ingestion_events" table.
	IngestionEventsTable = &schema.Table{
		Name:       "ingestion_events",
		Columns:    IngestionEventsColumns,
		PrimaryKey: []*schema.Column{IngestionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ingestionevent_owner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{IngestionEventsColumns[1], IngestionEventsColumns[5]},
			},
			{
				Name:    "ingestionevent_inbox_item_id",
				Unique:  false,
				Columns: []*schema.Column{IngestionEventsColumns[2]},
			},
		},
	}
	// ModelCatalogEntriesColumns holds the columns for the "model_catalog_entries" table.
	ModelCatalogEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "provider", Type: field.TypeEnum, Enums: []string{"openai", "anthropic"}},
		{Name: "model_id", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString},
		{Name: "input_price_per_mtok", Type: field.TypeFloat64, Nullable: true},
		{Name: "output_price_per_mtok", Type: field.TypeFloat64, Nullable: true},
		{Name: "tier", Type: field.TypeEnum, Nullable: true, Enums: []string{"standard", "flex", "priority"}},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "pricing_is_placeholder", Type: field.TypeBool, Default: false},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ModelCatalogEntriesTable holds the schema information for the "model_catalog_entries" table.
	ModelCatalogEntriesTable = &schema.Table{
		Name:       "model_catalog_entries",
		Columns:    ModelCatalogEntriesColumns,
		PrimaryKey: []*schema.Column{ModelCatalogEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "modelcatalogentry_provider_model_id",
				Unique:  true,
				Columns: []*schema.Column{ModelCatalogEntriesColumns[1], ModelCatalogEntriesColumns[2]},
			},
		},
	}
	// ModelPreferencesColumns holds the columns for the "model_preferences" table.
	ModelPreferencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "feature", Type: field.TypeEnum, Enums: []string{"global_default", "briefing_narrative", "intake_extraction"}},
		{Name: "catalog_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ModelPreferencesTable holds the schema information for the "model_preferences" table.
	ModelPreferencesTable = &schema.Table{
		Name:       "model_preferences",
		Columns:    ModelPreferencesColumns,
		PrimaryKey: []*schema.Column{ModelPreferencesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "modelpreference_owner_id_feature",
				Unique:  true,
				Columns: []*schema.Column{ModelPreferencesColumns[1], ModelPreferencesColumns[2]},
			},
		},
	}
	// PlansColumns holds the columns for the "plans" table.
	PlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "plan_date", Type: field.TypeString},
		{Name: "source", Type: field.TypeString, Default: "planner_v1.1"},
		{Name: "inputs_snapshot", Type: field.TypeJSON},
		{Name: "plan_json", Type: field.TypeJSON},
		{Name: "reasons_json", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"proposed", "applied"}, Default: "proposed"},
		{Name: "applied_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PlansTable holds the schema information for the "plans" table.
	PlansTable = &schema.Table{
		Name:       "plans",
		Columns:    PlansColumns,
		PrimaryKey: []*schema.Column{PlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "plan_owner_id_plan_date_created_at",
				Unique:  false,
				Columns: []*schema.Column{PlansColumns[1], PlansColumns[2], PlansColumns[9]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "application_id", Type: field.TypeString, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_owner_id_application_id",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[1], ProjectsColumns[2]},
			},
		},
	}
	// StatusUpdatesColumns holds the columns for the "status_updates" table.
	StatusUpdatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "application_id", Type: field.TypeString},
		{Name: "snippet", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StatusUpdatesTable holds the schema information for the "status_updates" table.
	StatusUpdatesTable = &schema.Table{
		Name:       "status_updates",
		Columns:    StatusUpdatesColumns,
		PrimaryKey: []*schema.Column{StatusUpdatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "statusupdate_owner_id_application_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{StatusUpdatesColumns[1], StatusUpdatesColumns[2], StatusUpdatesColumns[4]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "application_id", Type: field.TypeString, Nullable: true},
		{Name: "project_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"backlog", "planned", "in_progress", "blocked_waiting", "done"}, Default: "backlog"},
		{Name: "task_type", Type: field.TypeEnum, Enums: []string{"task", "ticket", "meeting_prep", "follow_up", "admin", "build"}, Default: "task"},
		{Name: "priority_score", Type: field.TypeFloat64, Default: 50},
		{Name: "estimated_minutes", Type: field.TypeInt, Default: 30},
		{Name: "estimate_source", Type: field.TypeEnum, Enums: []string{"default", "llm", "manual"}, Default: "default"},
		{Name: "due_at", Type: field.TypeTime, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "blocker", Type: field.TypeBool, Default: false},
		{Name: "waiting_on", Type: field.TypeString, Nullable: true},
		{Name: "follow_up_at", Type: field.TypeTime, Nullable: true},
		{Name: "stakeholder_mentions", Type: field.TypeJSON, Nullable: true},
		{Name: "source_type", Type: field.TypeEnum, Enums: []string{"manual", "email", "meeting"}, Default: "manual"},
		{Name: "source_url", Type: field.TypeString, Nullable: true},
		{Name: "inbox_item_id", Type: field.TypeString, Nullable: true},
		{Name: "pinned_excerpt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_owner_id_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[6]},
			},
			{
				Name:    "task_owner_id_due_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[11]},
			},
			{
				Name:    "task_owner_id_application_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[4]},
			},
		},
	}
	// TaskDependenciesColumns holds the columns for the "task_dependencies" table.
	TaskDependenciesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "task_id", Type: field.TypeString},
		{Name: "depends_on_task_id", Type: field.TypeString, Nullable: true},
		{Name: "depends_on_commitment_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TaskDependenciesTable holds the schema information for the "task_dependencies" table.
	TaskDependenciesTable = &schema.Table{
		Name:       "task_dependencies",
		Columns:    TaskDependenciesColumns,
		PrimaryKey: []*schema.Column{TaskDependenciesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "taskdependency_task_id_depends_on_task_id",
				Unique:  true,
				Columns: []*schema.Column{TaskDependenciesColumns[2], TaskDependenciesColumns[3]},
			},
			{
				Name:    "taskdependency_task_id_depends_on_commitment_id",
				Unique:  true,
				Columns: []*schema.Column{TaskDependenciesColumns[2], TaskDependenciesColumns[4]},
			},
			{
				Name:    "taskdependency_owner_id_task_id",
				Unique:  false,
				Columns: []*schema.Column{TaskDependenciesColumns[1], TaskDependenciesColumns[2]},
			},
		},
	}
	// UsageEventsColumns holds the columns for the "usage_events" table.
	UsageEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "feature", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "model_id", Type: field.TypeString},
		{Name: "model_source", Type: field.TypeEnum, Enums: []string{"feature_override", "global_default", "default"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"success", "timeout", "error", "cache_hit", "skipped_unconfigured"}},
		{Name: "latency_ms", Type: field.TypeInt},
		{Name: "input_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "output_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "total_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "estimated_cost_usd", Type: field.TypeFloat64, Nullable: true},
		{Name: "cache_status", Type: field.TypeString, Nullable: true},
		{Name: "request_fingerprint", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsageEventsTable holds the schema information for the "usage_events" table.
	UsageEventsTable = &schema.Table{
		Name:       "usage_events",
		Columns:    UsageEventsColumns,
		PrimaryKey: []*schema.Column{UsageEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "usageevent_owner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsageEventsColumns[1], UsageEventsColumns[14]},
			},
			{
				Name:    "usageevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsageEventsColumns[14]},
			},
		},
	}
	// UserSessionsColumns holds the columns for the "user_sessions" table.
	UserSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "token", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UserSessionsTable holds the schema information for the "user_sessions" table.
	UserSessionsTable = &schema.Table{
		Name:       "user_sessions",
		Columns:    UserSessionsColumns,
		PrimaryKey: []*schema.Column{UserSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "usersession_expires_at",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApplicationsTable,
		CalendarEventsTable,
		CalendarSnapshotsTable,
		ChecklistItemsTable,
		CommitmentsTable,
		FocusDirectivesTable,
		InboxItemsTable,
		IngestionEventsTable,
		ModelCatalogEntriesTable,
		ModelPreferencesTable,
		PlansTable,
		ProjectsTable,
		StatusUpdatesTable,
		TasksTable,
		TaskDependenciesTable,
		UsageEventsTable,
		UserSessionsTable,
	}
)

func init() {
}
