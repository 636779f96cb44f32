// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/missionctl/missionctl/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
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
	"github.com/missionctl/missionctl/ent/project"
	"github.com/missionctl/missionctl/ent/statusupdate"
	"github.com/missionctl/missionctl/ent/task"
	"github.com/missionctl/missionctl/ent/taskdependency"
	"github.com/missionctl/missionctl/ent/usageevent"
	"github.com/missionctl/missionctl/ent/usersession"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Application is the client for interacting with the Application builders.
	Application *ApplicationClient
	// CalendarEvent is the client for interacting with the CalendarEvent builders.
	CalendarEvent *CalendarEventClient
	// CalendarSnapshot is the client for interacting with the CalendarSnapshot builders.
	CalendarSnapshot *CalendarSnapshotClient
	// ChecklistItem is the client for interacting with the ChecklistItem builders.
	ChecklistItem *ChecklistItemClient
	// Commitment is the client for interacting with the Commitment builders.
	Commitment *CommitmentClient
	// FocusDirective is the client for interacting with the FocusDirective builders.
	FocusDirective *FocusDirectiveClient
	// InboxItem is the client for interacting with the InboxItem builders.
	InboxItem *InboxItemClient
	// IngestionEvent is the client for interacting with the IngestionEvent builders.
	IngestionEvent *IngestionEventClient
	// ModelCatalogEntry is the client for interacting with the ModelCatalogEntry builders.
	ModelCatalogEntry *ModelCatalogEntryClient
	// ModelPreference is the client for interacting with the ModelPreference builders.
	ModelPreference *ModelPreferenceClient
	// Plan is the client for interacting with the Plan builders.
	Plan *PlanClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// StatusUpdate is the client for interacting with the StatusUpdate builders.
	StatusUpdate *StatusUpdateClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// TaskDependency is the client for interacting with the TaskDependency builders.
	TaskDependency *TaskDependencyClient
	// UsageEvent is the client for interacting with the UsageEvent builders.
	UsageEvent *UsageEventClient
	// UserSession is the client for interacting with the UserSession builders.
	UserSession *UserSessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Application = NewApplicationClient(c.config)
	c.CalendarEvent = NewCalendarEventClient(c.config)
	c.CalendarSnapshot = NewCalendarSnapshotClient(c.config)
	c.ChecklistItem = NewChecklistItemClient(c.config)
	c.Commitment = NewCommitmentClient(c.config)
	c.FocusDirective = NewFocusDirectiveClient(c.config)
	c.InboxItem = NewInboxItemClient(c.config)
	c.IngestionEvent = NewIngestionEventClient(c.config)
	c.ModelCatalogEntry = NewModelCatalogEntryClient(c.config)
	c.ModelPreference = NewModelPreferenceClient(c.config)
	c.Plan = NewPlanClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.StatusUpdate = NewStatusUpdateClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.TaskDependency = NewTaskDependencyClient(c.config)
	c.UsageEvent = NewUsageEventClient(c.config)
	c.UserSession = NewUserSessionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		Application:       NewApplicationClient(cfg),
		CalendarEvent:     NewCalendarEventClient(cfg),
		CalendarSnapshot:  NewCalendarSnapshotClient(cfg),
		ChecklistItem:     NewChecklistItemClient(cfg),
		Commitment:        NewCommitmentClient(cfg),
		FocusDirective:    NewFocusDirectiveClient(cfg),
		InboxItem:         NewInboxItemClient(cfg),
		IngestionEvent:    NewIngestionEventClient(cfg),
		ModelCatalogEntry: NewModelCatalogEntryClient(cfg),
		ModelPreference:   NewModelPreferenceClient(cfg),
		Plan:              NewPlanClient(cfg),
		Project:           NewProjectClient(cfg),
		StatusUpdate:      NewStatusUpdateClient(cfg),
		Task:              NewTaskClient(cfg),
		TaskDependency:    NewTaskDependencyClient(cfg),
		UsageEvent:        NewUsageEventClient(cfg),
		UserSession:       NewUserSessionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		Application:       NewApplicationClient(cfg),
		CalendarEvent:     NewCalendarEventClient(cfg),
		CalendarSnapshot:  NewCalendarSnapshotClient(cfg),
		ChecklistItem:     NewChecklistItemClient(cfg),
		Commitment:        NewCommitmentClient(cfg),
		FocusDirective:    NewFocusDirectiveClient(cfg),
		InboxItem:         NewInboxItemClient(cfg),
		IngestionEvent:    NewIngestionEventClient(cfg),
		ModelCatalogEntry: NewModelCatalogEntryClient(cfg),
		ModelPreference:   NewModelPreferenceClient(cfg),
		Plan:              NewPlanClient(cfg),
		Project:           NewProjectClient(cfg),
		StatusUpdate:      NewStatusUpdateClient(cfg),
		Task:              NewTaskClient(cfg),
		TaskDependency:    NewTaskDependencyClient(cfg),
		UsageEvent:        NewUsageEventClient(cfg),
		UserSession:       NewUserSessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Application.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Application, c.CalendarEvent, c.CalendarSnapshot, c.ChecklistItem,
		c.Commitment, c.FocusDirective, c.InboxItem, c.IngestionEvent,
		c.ModelCatalogEntry, c.ModelPreference, c.Plan, c.Project, c.StatusUpdate,
		c.Task, c.TaskDependency, c.UsageEvent, c.UserSession,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Application, c.CalendarEvent, c.CalendarSnapshot, c.ChecklistItem,
		c.Commitment, c.FocusDirective, c.InboxItem, c.IngestionEvent,
		c.ModelCatalogEntry, c.ModelPreference, c.Plan, c.Project, c.StatusUpdate,
		c.Task, c.TaskDependency, c.UsageEvent, c.UserSession,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ApplicationMutation:
		return c.Application.mutate(ctx, m)
	case *CalendarEventMutation:
		return c.CalendarEvent.mutate(ctx, m)
	case *CalendarSnapshotMutation:
		return c.CalendarSnapshot.mutate(ctx, m)
	case *ChecklistItemMutation:
		return c.ChecklistItem.mutate(ctx, m)
	case *CommitmentMutation:
		return c.Commitment.mutate(ctx, m)
	case *FocusDirectiveMutation:
		return c.FocusDirective.mutate(ctx, m)
	case *InboxItemMutation:
		return c.InboxItem.mutate(ctx, m)
	case *IngestionEventMutation:
		return c.IngestionEvent.mutate(ctx, m)
	case *ModelCatalogEntryMutation:
		return c.ModelCatalogEntry.mutate(ctx, m)
	case *ModelPreferenceMutation:
		return c.ModelPreference.mutate(ctx, m)
	case *PlanMutation:
		return c.Plan.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *StatusUpdateMutation:
		return c.StatusUpdate.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TaskDependencyMutation:
		return c.TaskDependency.mutate(ctx, m)
	case *UsageEventMutation:
		return c.UsageEvent.mutate(ctx, m)
	case *UserSessionMutation:
		return c.UserSession.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ApplicationClient is a client for the Application schema.
type ApplicationClient struct {
	config
}

// NewApplicationClient returns a client for the Application from the given config.
func NewApplicationClient(c config) *ApplicationClient {
	return &ApplicationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `application.Hooks(f(g(h())))`.
func (c *ApplicationClient) Use(hooks ...Hook) {
	c.hooks.Application = append(c.hooks.Application, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `application.Intercept(f(g(h())))`.
func (c *ApplicationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Application = append(c.inters.Application, interceptors...)
}

// Create returns a builder for creating a Application entity.
func (c *ApplicationClient) Create() *ApplicationCreate {
	mutation := newApplicationMutation(c.config, OpCreate)
	return &ApplicationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Application entities.
func (c *ApplicationClient) CreateBulk(builders ...*ApplicationCreate) *ApplicationCreateBulk {
	return &ApplicationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApplicationClient) MapCreateBulk(slice any, setFunc func(*ApplicationCreate, int)) *ApplicationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApplicationCreateBulk{err: fmt.Errorf("calling to ApplicationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApplicationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApplicationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Application.
func (c *ApplicationClient) Update() *ApplicationUpdate {
	mutation := newApplicationMutation(c.config, OpUpdate)
	return &ApplicationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApplicationClient) UpdateOne(_m *Application) *ApplicationUpdateOne {
	mutation := newApplicationMutation(c.config, OpUpdateOne, withApplication(_m))
	return &ApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApplicationClient) UpdateOneID(id string) *ApplicationUpdateOne {
	mutation := newApplicationMutation(c.config, OpUpdateOne, withApplicationID(id))
	return &ApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Application.
func (c *ApplicationClient) Delete() *ApplicationDelete {
	mutation := newApplicationMutation(c.config, OpDelete)
	return &ApplicationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApplicationClient) DeleteOne(_m *Application) *ApplicationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApplicationClient) DeleteOneID(id string) *ApplicationDeleteOne {
	builder := c.Delete().Where(application.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApplicationDeleteOne{builder}
}

// Query returns a query builder for Application.
func (c *ApplicationClient) Query() *ApplicationQuery {
	return &ApplicationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApplication},
		inters: c.Interceptors(),
	}
}

// Get returns a Application entity by its id.
func (c *ApplicationClient) Get(ctx context.Context, id string) (*Application, error) {
	return c.Query().Where(application.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApplicationClient) GetX(ctx context.Context, id string) *Application {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ApplicationClient) Hooks() []Hook {
	return c.hooks.Application
}

// Interceptors returns the client interceptors.
func (c *ApplicationClient) Interceptors() []Interceptor {
	return c.inters.Application
}

func (c *ApplicationClient) mutate(ctx context.Context, m *ApplicationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApplicationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApplicationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApplicationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Application mutation op: %q", m.Op())
	}
}

// CalendarEventClient is a client for the CalendarEvent schema.
type CalendarEventClient struct {
	config
}

// NewCalendarEventClient returns a client for the CalendarEvent from the given config.
func NewCalendarEventClient(c config) *CalendarEventClient {
	return &CalendarEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `calendarevent.Hooks(f(g(h())))`.
func (c *CalendarEventClient) Use(hooks ...Hook) {
	c.hooks.CalendarEvent = append(c.hooks.CalendarEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `calendarevent.Intercept(f(g(h())))`.
func (c *CalendarEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.CalendarEvent = append(c.inters.CalendarEvent, interceptors...)
}

// Create returns a builder for creating a CalendarEvent entity.
func (c *CalendarEventClient) Create() *CalendarEventCreate {
	mutation := newCalendarEventMutation(c.config, OpCreate)
	return &CalendarEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CalendarEvent entities.
func (c *CalendarEventClient) CreateBulk(builders ...*CalendarEventCreate) *CalendarEventCreateBulk {
	return &CalendarEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CalendarEventClient) MapCreateBulk(slice any, setFunc func(*CalendarEventCreate, int)) *CalendarEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CalendarEventCreateBulk{err: fmt.Errorf("calling to CalendarEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CalendarEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CalendarEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CalendarEvent.
func (c *CalendarEventClient) Update() *CalendarEventUpdate {
	mutation := newCalendarEventMutation(c.config, OpUpdate)
	return &CalendarEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CalendarEventClient) UpdateOne(_m *CalendarEvent) *CalendarEventUpdateOne {
	mutation := newCalendarEventMutation(c.config, OpUpdateOne, withCalendarEvent(_m))
	return &CalendarEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CalendarEventClient) UpdateOneID(id string) *CalendarEventUpdateOne {
	mutation := newCalendarEventMutation(c.config, OpUpdateOne, withCalendarEventID(id))
	return &CalendarEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CalendarEvent.
func (c *CalendarEventClient) Delete() *CalendarEventDelete {
	mutation := newCalendarEventMutation(c.config, OpDelete)
	return &CalendarEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CalendarEventClient) DeleteOne(_m *CalendarEvent) *CalendarEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CalendarEventClient) DeleteOneID(id string) *CalendarEventDeleteOne {
	builder := c.Delete().Where(calendarevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CalendarEventDeleteOne{builder}
}

// Query returns a query builder for CalendarEvent.
func (c *CalendarEventClient) Query() *CalendarEventQuery {
	return &CalendarEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCalendarEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a CalendarEvent entity by its id.
func (c *CalendarEventClient) Get(ctx context.Context, id string) (*CalendarEvent, error) {
	return c.Query().Where(calendarevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CalendarEventClient) GetX(ctx context.Context, id string) *CalendarEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CalendarEventClient) Hooks() []Hook {
	return c.hooks.CalendarEvent
}

// Interceptors returns the client interceptors.
func (c *CalendarEventClient) Interceptors() []Interceptor {
	return c.inters.CalendarEvent
}

func (c *CalendarEventClient) mutate(ctx context.Context, m *CalendarEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CalendarEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CalendarEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CalendarEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CalendarEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CalendarEvent mutation op: %q", m.Op())
	}
}

// CalendarSnapshotClient is a client for the CalendarSnapshot schema.
type CalendarSnapshotClient struct {
	config
}

// NewCalendarSnapshotClient returns a client for the CalendarSnapshot from the given config.
func NewCalendarSnapshotClient(c config) *CalendarSnapshotClient {
	return &CalendarSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `calendarsnapshot.Hooks(f(g(h())))`.
func (c *CalendarSnapshotClient) Use(hooks ...Hook) {
	c.hooks.CalendarSnapshot = append(c.hooks.CalendarSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `calendarsnapshot.Intercept(f(g(h())))`.
func (c *CalendarSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.CalendarSnapshot = append(c.inters.CalendarSnapshot, interceptors...)
}

// Create returns a builder for creating a CalendarSnapshot entity.
func (c *CalendarSnapshotClient) Create() *CalendarSnapshotCreate {
	mutation := newCalendarSnapshotMutation(c.config, OpCreate)
	return &CalendarSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CalendarSnapshot entities.
func (c *CalendarSnapshotClient) CreateBulk(builders ...*CalendarSnapshotCreate) *CalendarSnapshotCreateBulk {
	return &CalendarSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CalendarSnapshotClient) MapCreateBulk(slice any, setFunc func(*CalendarSnapshotCreate, int)) *CalendarSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CalendarSnapshotCreateBulk{err: fmt.Errorf("calling to CalendarSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CalendarSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CalendarSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CalendarSnapshot.
func (c *CalendarSnapshotClient) Update() *CalendarSnapshotUpdate {
	mutation := newCalendarSnapshotMutation(c.config, OpUpdate)
	return &CalendarSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CalendarSnapshotClient) UpdateOne(_m *CalendarSnapshot) *CalendarSnapshotUpdateOne {
	mutation := newCalendarSnapshotMutation(c.config, OpUpdateOne, withCalendarSnapshot(_m))
	return &CalendarSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CalendarSnapshotClient) UpdateOneID(id string) *CalendarSnapshotUpdateOne {
	mutation := newCalendarSnapshotMutation(c.config, OpUpdateOne, withCalendarSnapshotID(id))
	return &CalendarSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CalendarSnapshot.
func (c *CalendarSnapshotClient) Delete() *CalendarSnapshotDelete {
	mutation := newCalendarSnapshotMutation(c.config, OpDelete)
	return &CalendarSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CalendarSnapshotClient) DeleteOne(_m *CalendarSnapshot) *CalendarSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CalendarSnapshotClient) DeleteOneID(id string) *CalendarSnapshotDeleteOne {
	builder := c.Delete().Where(calendarsnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CalendarSnapshotDeleteOne{builder}
}

// Query returns a query builder for CalendarSnapshot.
func (c *CalendarSnapshotClient) Query() *CalendarSnapshotQuery {
	return &CalendarSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCalendarSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a CalendarSnapshot entity by its id.
func (c *CalendarSnapshotClient) Get(ctx context.Context, id string) (*CalendarSnapshot, error) {
	return c.Query().Where(calendarsnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CalendarSnapshotClient) GetX(ctx context.Context, id string) *CalendarSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CalendarSnapshotClient) Hooks() []Hook {
	return c.hooks.CalendarSnapshot
}

// Interceptors returns the client interceptors.
func (c *CalendarSnapshotClient) Interceptors() []Interceptor {
	return c.inters.CalendarSnapshot
}

func (c *CalendarSnapshotClient) mutate(ctx context.Context, m *CalendarSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CalendarSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CalendarSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CalendarSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CalendarSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CalendarSnapshot mutation op: %q", m.Op())
	}
}

// ChecklistItemClient is a client for the ChecklistItem schema.
type ChecklistItemClient struct {
	config
}

// NewChecklistItemClient returns a client for the ChecklistItem from the given config.
func NewChecklistItemClient(c config) *ChecklistItemClient {
	return &ChecklistItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `checklistitem.Hooks(f(g(h())))`.
func (c *ChecklistItemClient) Use(hooks ...Hook) {
	c.hooks.ChecklistItem = append(c.hooks.ChecklistItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `checklistitem.Intercept(f(g(h())))`.
func (c *ChecklistItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChecklistItem = append(c.inters.ChecklistItem, interceptors...)
}

// Create returns a builder for creating a ChecklistItem entity.
func (c *ChecklistItemClient) Create() *ChecklistItemCreate {
	mutation := newChecklistItemMutation(c.config, OpCreate)
	return &ChecklistItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChecklistItem entities.
func (c *ChecklistItemClient) CreateBulk(builders ...*ChecklistItemCreate) *ChecklistItemCreateBulk {
	return &ChecklistItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChecklistItemClient) MapCreateBulk(slice any, setFunc func(*ChecklistItemCreate, int)) *ChecklistItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChecklistItemCreateBulk{err: fmt.Errorf("calling to ChecklistItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChecklistItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChecklistItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChecklistItem.
func (c *ChecklistItemClient) Update() *ChecklistItemUpdate {
	mutation := newChecklistItemMutation(c.config, OpUpdate)
	return &ChecklistItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChecklistItemClient) UpdateOne(_m *ChecklistItem) *ChecklistItemUpdateOne {
	mutation := newChecklistItemMutation(c.config, OpUpdateOne, withChecklistItem(_m))
	return &ChecklistItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChecklistItemClient) UpdateOneID(id string) *ChecklistItemUpdateOne {
	mutation := newChecklistItemMutation(c.config, OpUpdateOne, withChecklistItemID(id))
	return &ChecklistItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChecklistItem.
func (c *ChecklistItemClient) Delete() *ChecklistItemDelete {
	mutation := newChecklistItemMutation(c.config, OpDelete)
	return &ChecklistItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChecklistItemClient) DeleteOne(_m *ChecklistItem) *ChecklistItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChecklistItemClient) DeleteOneID(id string) *ChecklistItemDeleteOne {
	builder := c.Delete().Where(checklistitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChecklistItemDeleteOne{builder}
}

// Query returns a query builder for ChecklistItem.
func (c *ChecklistItemClient) Query() *ChecklistItemQuery {
	return &ChecklistItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChecklistItem},
		inters: c.Interceptors(),
	}
}

// Get returns a ChecklistItem entity by its id.
func (c *ChecklistItemClient) Get(ctx context.Context, id string) (*ChecklistItem, error) {
	return c.Query().Where(checklistitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChecklistItemClient) GetX(ctx context.Context, id string) *ChecklistItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChecklistItemClient) Hooks() []Hook {
	return c.hooks.ChecklistItem
}

// Interceptors returns the client interceptors.
func (c *ChecklistItemClient) Interceptors() []Interceptor {
	return c.inters.ChecklistItem
}

func (c *ChecklistItemClient) mutate(ctx context.Context, m *ChecklistItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChecklistItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChecklistItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChecklistItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChecklistItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChecklistItem mutation op: %q", m.Op())
	}
}

// CommitmentClient is a client for the Commitment schema.
type CommitmentClient struct {
	config
}

// NewCommitmentClient returns a client for the Commitment from the given config.
func NewCommitmentClient(c config) *CommitmentClient {
	return &CommitmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `commitment.Hooks(f(g(h())))`.
func (c *CommitmentClient) Use(hooks ...Hook) {
	c.hooks.Commitment = append(c.hooks.Commitment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `commitment.Intercept(f(g(h())))`.
func (c *CommitmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Commitment = append(c.inters.Commitment, interceptors...)
}

// Create returns a builder for creating a Commitment entity.
func (c *CommitmentClient) Create() *CommitmentCreate {
	mutation := newCommitmentMutation(c.config, OpCreate)
	return &CommitmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Commitment entities.
func (c *CommitmentClient) CreateBulk(builders ...*CommitmentCreate) *CommitmentCreateBulk {
	return &CommitmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CommitmentClient) MapCreateBulk(slice any, setFunc func(*CommitmentCreate, int)) *CommitmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CommitmentCreateBulk{err: fmt.Errorf("calling to CommitmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CommitmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CommitmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Commitment.
func (c *CommitmentClient) Update() *CommitmentUpdate {
	mutation := newCommitmentMutation(c.config, OpUpdate)
	return &CommitmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CommitmentClient) UpdateOne(_m *Commitment) *CommitmentUpdateOne {
	mutation := newCommitmentMutation(c.config, OpUpdateOne, withCommitment(_m))
	return &CommitmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CommitmentClient) UpdateOneID(id string) *CommitmentUpdateOne {
	mutation := newCommitmentMutation(c.config, OpUpdateOne, withCommitmentID(id))
	return &CommitmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Commitment.
func (c *CommitmentClient) Delete() *CommitmentDelete {
	mutation := newCommitmentMutation(c.config, OpDelete)
	return &CommitmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CommitmentClient) DeleteOne(_m *Commitment) *CommitmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CommitmentClient) DeleteOneID(id string) *CommitmentDeleteOne {
	builder := c.Delete().Where(commitment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CommitmentDeleteOne{builder}
}

// Query returns a query builder for Commitment.
func (c *CommitmentClient) Query() *CommitmentQuery {
	return &CommitmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCommitment},
		inters: c.Interceptors(),
	}
}

// Get returns a Commitment entity by its id.
func (c *CommitmentClient) Get(ctx context.Context, id string) (*Commitment, error) {
	return c.Query().Where(commitment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CommitmentClient) GetX(ctx context.Context, id string) *Commitment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CommitmentClient) Hooks() []Hook {
	return c.hooks.Commitment
}

// Interceptors returns the client interceptors.
func (c *CommitmentClient) Interceptors() []Interceptor {
	return c.inters.Commitment
}

func (c *CommitmentClient) mutate(ctx context.Context, m *CommitmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CommitmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CommitmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CommitmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CommitmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Commitment mutation op: %q", m.Op())
	}
}

// FocusDirectiveClient is a client for the FocusDirective schema.
type FocusDirectiveClient struct {
	config
}

// NewFocusDirectiveClient returns a client for the FocusDirective from the given config.
func NewFocusDirectiveClient(c config) *FocusDirectiveClient {
	return &FocusDirectiveClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `focusdirective.Hooks(f(g(h())))`.
func (c *FocusDirectiveClient) Use(hooks ...Hook) {
	c.hooks.FocusDirective = append(c.hooks.FocusDirective, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `focusdirective.Intercept(f(g(h())))`.
func (c *FocusDirectiveClient) Intercept(interceptors ...Interceptor) {
	c.inters.FocusDirective = append(c.inters.FocusDirective, interceptors...)
}

// Create returns a builder for creating a FocusDirective entity.
func (c *FocusDirectiveClient) Create() *FocusDirectiveCreate {
	mutation := newFocusDirectiveMutation(c.config, OpCreate)
	return &FocusDirectiveCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FocusDirective entities.
func (c *FocusDirectiveClient) CreateBulk(builders ...*FocusDirectiveCreate) *FocusDirectiveCreateBulk {
	return &FocusDirectiveCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FocusDirectiveClient) MapCreateBulk(slice any, setFunc func(*FocusDirectiveCreate, int)) *FocusDirectiveCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FocusDirectiveCreateBulk{err: fmt.Errorf("calling to FocusDirectiveClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FocusDirectiveCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FocusDirectiveCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FocusDirective.
func (c *FocusDirectiveClient) Update() *FocusDirectiveUpdate {
	mutation := newFocusDirectiveMutation(c.config, OpUpdate)
	return &FocusDirectiveUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FocusDirectiveClient) UpdateOne(_m *FocusDirective) *FocusDirectiveUpdateOne {
	mutation := newFocusDirectiveMutation(c.config, OpUpdateOne, withFocusDirective(_m))
	return &FocusDirectiveUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FocusDirectiveClient) UpdateOneID(id string) *FocusDirectiveUpdateOne {
	mutation := newFocusDirectiveMutation(c.config, OpUpdateOne, withFocusDirectiveID(id))
	return &FocusDirectiveUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FocusDirective.
func (c *FocusDirectiveClient) Delete() *FocusDirectiveDelete {
	mutation := newFocusDirectiveMutation(c.config, OpDelete)
	return &FocusDirectiveDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FocusDirectiveClient) DeleteOne(_m *FocusDirective) *FocusDirectiveDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FocusDirectiveClient) DeleteOneID(id string) *FocusDirectiveDeleteOne {
	builder := c.Delete().Where(focusdirective.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FocusDirectiveDeleteOne{builder}
}

// Query returns a query builder for FocusDirective.
func (c *FocusDirectiveClient) Query() *FocusDirectiveQuery {
	return &FocusDirectiveQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFocusDirective},
		inters: c.Interceptors(),
	}
}

// Get returns a FocusDirective entity by its id.
func (c *FocusDirectiveClient) Get(ctx context.Context, id string) (*FocusDirective, error) {
	return c.Query().Where(focusdirective.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FocusDirectiveClient) GetX(ctx context.Context, id string) *FocusDirective {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FocusDirectiveClient) Hooks() []Hook {
	return c.hooks.FocusDirective
}

// Interceptors returns the client interceptors.
func (c *FocusDirectiveClient) Interceptors() []Interceptor {
	return c.inters.FocusDirective
}

func (c *FocusDirectiveClient) mutate(ctx context.Context, m *FocusDirectiveMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FocusDirectiveCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FocusDirectiveUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FocusDirectiveUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FocusDirectiveDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FocusDirective mutation op: %q", m.Op())
	}
}

// InboxItemClient is a client for the InboxItem schema.
type InboxItemClient struct {
	config
}

// NewInboxItemClient returns a client for the InboxItem from the given config.
func NewInboxItemClient(c config) *InboxItemClient {
	return &InboxItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `inboxitem.Hooks(f(g(h())))`.
func (c *InboxItemClient) Use(hooks ...Hook) {
	c.hooks.InboxItem = append(c.hooks.InboxItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `inboxitem.Intercept(f(g(h())))`.
func (c *InboxItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.InboxItem = append(c.inters.InboxItem, interceptors...)
}

// Create returns a builder for creating a InboxItem entity.
func (c *InboxItemClient) Create() *InboxItemCreate {
	mutation := newInboxItemMutation(c.config, OpCreate)
	return &InboxItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InboxItem entities.
func (c *InboxItemClient) CreateBulk(builders ...*InboxItemCreate) *InboxItemCreateBulk {
	return &InboxItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InboxItemClient) MapCreateBulk(slice any, setFunc func(*InboxItemCreate, int)) *InboxItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InboxItemCreateBulk{err: fmt.Errorf("calling to InboxItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InboxItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InboxItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InboxItem.
func (c *InboxItemClient) Update() *InboxItemUpdate {
	mutation := newInboxItemMutation(c.config, OpUpdate)
	return &InboxItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InboxItemClient) UpdateOne(_m *InboxItem) *InboxItemUpdateOne {
	mutation := newInboxItemMutation(c.config, OpUpdateOne, withInboxItem(_m))
	return &InboxItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InboxItemClient) UpdateOneID(id string) *InboxItemUpdateOne {
	mutation := newInboxItemMutation(c.config, OpUpdateOne, withInboxItemID(id))
	return &InboxItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InboxItem.
func (c *InboxItemClient) Delete() *InboxItemDelete {
	mutation := newInboxItemMutation(c.config, OpDelete)
	return &InboxItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InboxItemClient) DeleteOne(_m *InboxItem) *InboxItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InboxItemClient) DeleteOneID(id string) *InboxItemDeleteOne {
	builder := c.Delete().Where(inboxitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InboxItemDeleteOne{builder}
}

// Query returns a query builder for InboxItem.
func (c *InboxItemClient) Query() *InboxItemQuery {
	return &InboxItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInboxItem},
		inters: c.Interceptors(),
	}
}

// Get returns a InboxItem entity by its id.
func (c *InboxItemClient) Get(ctx context.Context, id string) (*InboxItem, error) {
	return c.Query().Where(inboxitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InboxItemClient) GetX(ctx context.Context, id string) *InboxItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InboxItemClient) Hooks() []Hook {
	return c.hooks.InboxItem
}

// Interceptors returns the client interceptors.
func (c *InboxItemClient) Interceptors() []Interceptor {
	return c.inters.InboxItem
}

func (c *InboxItemClient) mutate(ctx context.Context, m *InboxItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InboxItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InboxItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InboxItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InboxItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InboxItem mutation op: %q", m.Op())
	}
}

// IngestionEventClient is a client for the IngestionEvent schema.
type IngestionEventClient struct {
	config
}

// NewIngestionEventClient returns a client for the IngestionEvent from the given config.
func NewIngestionEventClient(c config) *IngestionEventClient {
	return &IngestionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ingestionevent.Hooks(f(g(h())))`.
func (c *IngestionEventClient) Use(hooks ...Hook) {
	c.hooks.IngestionEvent = append(c.hooks.IngestionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ingestionevent.Intercept(f(g(h())))`.
func (c *IngestionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.IngestionEvent = append(c.inters.IngestionEvent, interceptors...)
}

// Create returns a builder for creating a IngestionEvent entity.
func (c *IngestionEventClient) Create() *IngestionEventCreate {
	mutation := newIngestionEventMutation(c.config, OpCreate)
	return &IngestionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IngestionEvent entities.
func (c *IngestionEventClient) CreateBulk(builders ...*IngestionEventCreate) *IngestionEventCreateBulk {
	return &IngestionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IngestionEventClient) MapCreateBulk(slice any, setFunc func(*IngestionEventCreate, int)) *IngestionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IngestionEventCreateBulk{err: fmt.Errorf("calling to IngestionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IngestionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IngestionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IngestionEvent.
func (c *IngestionEventClient) Update() *IngestionEventUpdate {
	mutation := newIngestionEventMutation(c.config, OpUpdate)
	return &IngestionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IngestionEventClient) UpdateOne(_m *IngestionEvent) *IngestionEventUpdateOne {
	mutation := newIngestionEventMutation(c.config, OpUpdateOne, withIngestionEvent(_m))
	return &IngestionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IngestionEventClient) UpdateOneID(id string) *IngestionEventUpdateOne {
	mutation := newIngestionEventMutation(c.config, OpUpdateOne, withIngestionEventID(id))
	return &IngestionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IngestionEvent.
func (c *IngestionEventClient) Delete() *IngestionEventDelete {
	mutation := newIngestionEventMutation(c.config, OpDelete)
	return &IngestionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IngestionEventClient) DeleteOne(_m *IngestionEvent) *IngestionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IngestionEventClient) DeleteOneID(id string) *IngestionEventDeleteOne {
	builder := c.Delete().Where(ingestionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IngestionEventDeleteOne{builder}
}

// Query returns a query builder for IngestionEvent.
func (c *IngestionEventClient) Query() *IngestionEventQuery {
	return &IngestionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIngestionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a IngestionEvent entity by its id.
func (c *IngestionEventClient) Get(ctx context.Context, id string) (*IngestionEvent, error) {
	return c.Query().Where(ingestionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IngestionEventClient) GetX(ctx context.Context, id string) *IngestionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IngestionEventClient) Hooks() []Hook {
	return c.hooks.IngestionEvent
}

// Interceptors returns the client interceptors.
func (c *IngestionEventClient) Interceptors() []Interceptor {
	return c.inters.IngestionEvent
}

func (c *IngestionEventClient) mutate(ctx context.Context, m *IngestionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IngestionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IngestionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IngestionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IngestionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IngestionEvent mutation op: %q", m.Op())
	}
}

// ModelCatalogEntryClient is a client for the ModelCatalogEntry schema.
type ModelCatalogEntryClient struct {
	config
}

// NewModelCatalogEntryClient returns a client for the ModelCatalogEntry from the given config.
func NewModelCatalogEntryClient(c config) *ModelCatalogEntryClient {
	return &ModelCatalogEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `modelcatalogentry.Hooks(f(g(h())))`.
func (c *ModelCatalogEntryClient) Use(hooks ...Hook) {
	c.hooks.ModelCatalogEntry = append(c.hooks.ModelCatalogEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `modelcatalogentry.Intercept(f(g(h())))`.
func (c *ModelCatalogEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ModelCatalogEntry = append(c.inters.ModelCatalogEntry, interceptors...)
}

// Create returns a builder for creating a ModelCatalogEntry entity.
func (c *ModelCatalogEntryClient) Create() *ModelCatalogEntryCreate {
	mutation := newModelCatalogEntryMutation(c.config, OpCreate)
	return &ModelCatalogEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ModelCatalogEntry entities.
func (c *ModelCatalogEntryClient) CreateBulk(builders ...*ModelCatalogEntryCreate) *ModelCatalogEntryCreateBulk {
	return &ModelCatalogEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ModelCatalogEntryClient) MapCreateBulk(slice any, setFunc func(*ModelCatalogEntryCreate, int)) *ModelCatalogEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ModelCatalogEntryCreateBulk{err: fmt.Errorf("calling to ModelCatalogEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ModelCatalogEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ModelCatalogEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ModelCatalogEntry.
func (c *ModelCatalogEntryClient) Update() *ModelCatalogEntryUpdate {
	mutation := newModelCatalogEntryMutation(c.config, OpUpdate)
	return &ModelCatalogEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ModelCatalogEntryClient) UpdateOne(_m *ModelCatalogEntry) *ModelCatalogEntryUpdateOne {
	mutation := newModelCatalogEntryMutation(c.config, OpUpdateOne, withModelCatalogEntry(_m))
	return &ModelCatalogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ModelCatalogEntryClient) UpdateOneID(id string) *ModelCatalogEntryUpdateOne {
	mutation := newModelCatalogEntryMutation(c.config, OpUpdateOne, withModelCatalogEntryID(id))
	return &ModelCatalogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ModelCatalogEntry.
func (c *ModelCatalogEntryClient) Delete() *ModelCatalogEntryDelete {
	mutation := newModelCatalogEntryMutation(c.config, OpDelete)
	return &ModelCatalogEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ModelCatalogEntryClient) DeleteOne(_m *ModelCatalogEntry) *ModelCatalogEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ModelCatalogEntryClient) DeleteOneID(id string) *ModelCatalogEntryDeleteOne {
	builder := c.Delete().Where(modelcatalogentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ModelCatalogEntryDeleteOne{builder}
}

// Query returns a query builder for ModelCatalogEntry.
func (c *ModelCatalogEntryClient) Query() *ModelCatalogEntryQuery {
	return &ModelCatalogEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeModelCatalogEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a ModelCatalogEntry entity by its id.
func (c *ModelCatalogEntryClient) Get(ctx context.Context, id string) (*ModelCatalogEntry, error) {
	return c.Query().Where(modelcatalogentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ModelCatalogEntryClient) GetX(ctx context.Context, id string) *ModelCatalogEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ModelCatalogEntryClient) Hooks() []Hook {
	return c.hooks.ModelCatalogEntry
}

// Interceptors returns the client interceptors.
func (c *ModelCatalogEntryClient) Interceptors() []Interceptor {
	return c.inters.ModelCatalogEntry
}

func (c *ModelCatalogEntryClient) mutate(ctx context.Context, m *ModelCatalogEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ModelCatalogEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ModelCatalogEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ModelCatalogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ModelCatalogEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ModelCatalogEntry mutation op: %q", m.Op())
	}
}

// ModelPreferenceClient is a client for the ModelPreference schema.
type ModelPreferenceClient struct {
	config
}

// NewModelPreferenceClient returns a client for the ModelPreference from the given config.
func NewModelPreferenceClient(c config) *ModelPreferenceClient {
	return &ModelPreferenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `modelpreference.Hooks(f(g(h())))`.
func (c *ModelPreferenceClient) Use(hooks ...Hook) {
	c.hooks.ModelPreference = append(c.hooks.ModelPreference, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `modelpreference.Intercept(f(g(h())))`.
func (c *ModelPreferenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.ModelPreference = append(c.inters.ModelPreference, interceptors...)
}

// Create returns a builder for creating a ModelPreference entity.
func (c *ModelPreferenceClient) Create() *ModelPreferenceCreate {
	mutation := newModelPreferenceMutation(c.config, OpCreate)
	return &ModelPreferenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ModelPreference entities.
func (c *ModelPreferenceClient) CreateBulk(builders ...*ModelPreferenceCreate) *ModelPreferenceCreateBulk {
	return &ModelPreferenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ModelPreferenceClient) MapCreateBulk(slice any, setFunc func(*ModelPreferenceCreate, int)) *ModelPreferenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ModelPreferenceCreateBulk{err: fmt.Errorf("calling to ModelPreferenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ModelPreferenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ModelPreferenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ModelPreference.
func (c *ModelPreferenceClient) Update() *ModelPreferenceUpdate {
	mutation := newModelPreferenceMutation(c.config, OpUpdate)
	return &ModelPreferenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ModelPreferenceClient) UpdateOne(_m *ModelPreference) *ModelPreferenceUpdateOne {
	mutation := newModelPreferenceMutation(c.config, OpUpdateOne, withModelPreference(_m))
	return &ModelPreferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ModelPreferenceClient) UpdateOneID(id string) *ModelPreferenceUpdateOne {
	mutation := newModelPreferenceMutation(c.config, OpUpdateOne, withModelPreferenceID(id))
	return &ModelPreferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ModelPreference.
func (c *ModelPreferenceClient) Delete() *ModelPreferenceDelete {
	mutation := newModelPreferenceMutation(c.config, OpDelete)
	return &ModelPreferenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ModelPreferenceClient) DeleteOne(_m *ModelPreference) *ModelPreferenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ModelPreferenceClient) DeleteOneID(id string) *ModelPreferenceDeleteOne {
	builder := c.Delete().Where(modelpreference.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ModelPreferenceDeleteOne{builder}
}

// Query returns a query builder for ModelPreference.
func (c *ModelPreferenceClient) Query() *ModelPreferenceQuery {
	return &ModelPreferenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeModelPreference},
		inters: c.Interceptors(),
	}
}

// Get returns a ModelPreference entity by its id.
func (c *ModelPreferenceClient) Get(ctx context.Context, id string) (*ModelPreference, error) {
	return c.Query().Where(modelpreference.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ModelPreferenceClient) GetX(ctx context.Context, id string) *ModelPreference {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ModelPreferenceClient) Hooks() []Hook {
	return c.hooks.ModelPreference
}

// Interceptors returns the client interceptors.
func (c *ModelPreferenceClient) Interceptors() []Interceptor {
	return c.inters.ModelPreference
}

func (c *ModelPreferenceClient) mutate(ctx context.Context, m *ModelPreferenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ModelPreferenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ModelPreferenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ModelPreferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ModelPreferenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ModelPreference mutation op: %q", m.Op())
	}
}

// PlanClient is a client for the Plan schema.
type PlanClient struct {
	config
}

// NewPlanClient returns a client for the Plan from the given config.
func NewPlanClient(c config) *PlanClient {
	return &PlanClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `plan.Hooks(f(g(h())))`.
func (c *PlanClient) Use(hooks ...Hook) {
	c.hooks.Plan = append(c.hooks.Plan, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `plan.Intercept(f(g(h())))`.
func (c *PlanClient) Intercept(interceptors ...Interceptor) {
	c.inters.Plan = append(c.inters.Plan, interceptors...)
}

// Create returns a builder for creating a Plan entity.
func (c *PlanClient) Create() *PlanCreate {
	mutation := newPlanMutation(c.config, OpCreate)
	return &PlanCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Plan entities.
func (c *PlanClient) CreateBulk(builders ...*PlanCreate) *PlanCreateBulk {
	return &PlanCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PlanClient) MapCreateBulk(slice any, setFunc func(*PlanCreate, int)) *PlanCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PlanCreateBulk{err: fmt.Errorf("calling to PlanClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PlanCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PlanCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Plan.
func (c *PlanClient) Update() *PlanUpdate {
	mutation := newPlanMutation(c.config, OpUpdate)
	return &PlanUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PlanClient) UpdateOne(_m *Plan) *PlanUpdateOne {
	mutation := newPlanMutation(c.config, OpUpdateOne, withPlan(_m))
	return &PlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PlanClient) UpdateOneID(id string) *PlanUpdateOne {
	mutation := newPlanMutation(c.config, OpUpdateOne, withPlanID(id))
	return &PlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Plan.
func (c *PlanClient) Delete() *PlanDelete {
	mutation := newPlanMutation(c.config, OpDelete)
	return &PlanDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PlanClient) DeleteOne(_m *Plan) *PlanDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PlanClient) DeleteOneID(id string) *PlanDeleteOne {
	builder := c.Delete().Where(plan.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PlanDeleteOne{builder}
}

// Query returns a query builder for Plan.
func (c *PlanClient) Query() *PlanQuery {
	return &PlanQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePlan},
		inters: c.Interceptors(),
	}
}

// Get returns a Plan entity by its id.
func (c *PlanClient) Get(ctx context.Context, id string) (*Plan, error) {
	return c.Query().Where(plan.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PlanClient) GetX(ctx context.Context, id string) *Plan {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PlanClient) Hooks() []Hook {
	return c.hooks.Plan
}

// Interceptors returns the client interceptors.
func (c *PlanClient) Interceptors() []Interceptor {
	return c.inters.Plan
}

func (c *PlanClient) mutate(ctx context.Context, m *PlanMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PlanCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PlanUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PlanDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Plan mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id string) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id string) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id string) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id string) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// StatusUpdateClient is a client for the StatusUpdate schema.
type StatusUpdateClient struct {
	config
}

// NewStatusUpdateClient returns a client for the StatusUpdate from the given config.
func NewStatusUpdateClient(c config) *StatusUpdateClient {
	return &StatusUpdateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `statusupdate.Hooks(f(g(h())))`.
func (c *StatusUpdateClient) Use(hooks ...Hook) {
	c.hooks.StatusUpdate = append(c.hooks.StatusUpdate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `statusupdate.Intercept(f(g(h())))`.
func (c *StatusUpdateClient) Intercept(interceptors ...Interceptor) {
	c.inters.StatusUpdate = append(c.inters.StatusUpdate, interceptors...)
}

// Create returns a builder for creating a StatusUpdate entity.
func (c *StatusUpdateClient) Create() *StatusUpdateCreate {
	mutation := newStatusUpdateMutation(c.config, OpCreate)
	return &StatusUpdateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StatusUpdate entities.
func (c *StatusUpdateClient) CreateBulk(builders ...*StatusUpdateCreate) *StatusUpdateCreateBulk {
	return &StatusUpdateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StatusUpdateClient) MapCreateBulk(slice any, setFunc func(*StatusUpdateCreate, int)) *StatusUpdateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StatusUpdateCreateBulk{err: fmt.Errorf("calling to StatusUpdateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StatusUpdateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StatusUpdateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StatusUpdate.
func (c *StatusUpdateClient) Update() *StatusUpdateUpdate {
	mutation := newStatusUpdateMutation(c.config, OpUpdate)
	return &StatusUpdateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StatusUpdateClient) UpdateOne(_m *StatusUpdate) *StatusUpdateUpdateOne {
	mutation := newStatusUpdateMutation(c.config, OpUpdateOne, withStatusUpdate(_m))
	return &StatusUpdateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StatusUpdateClient) UpdateOneID(id string) *StatusUpdateUpdateOne {
	mutation := newStatusUpdateMutation(c.config, OpUpdateOne, withStatusUpdateID(id))
	return &StatusUpdateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StatusUpdate.
func (c *StatusUpdateClient) Delete() *StatusUpdateDelete {
	mutation := newStatusUpdateMutation(c.config, OpDelete)
	return &StatusUpdateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StatusUpdateClient) DeleteOne(_m *StatusUpdate) *StatusUpdateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StatusUpdateClient) DeleteOneID(id string) *StatusUpdateDeleteOne {
	builder := c.Delete().Where(statusupdate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StatusUpdateDeleteOne{builder}
}

// Query returns a query builder for StatusUpdate.
func (c *StatusUpdateClient) Query() *StatusUpdateQuery {
	return &StatusUpdateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStatusUpdate},
		inters: c.Interceptors(),
	}
}

// Get returns a StatusUpdate entity by its id.
func (c *StatusUpdateClient) Get(ctx context.Context, id string) (*StatusUpdate, error) {
	return c.Query().Where(statusupdate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StatusUpdateClient) GetX(ctx context.Context, id string) *StatusUpdate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StatusUpdateClient) Hooks() []Hook {
	return c.hooks.StatusUpdate
}

// Interceptors returns the client interceptors.
func (c *StatusUpdateClient) Interceptors() []Interceptor {
	return c.inters.StatusUpdate
}

func (c *StatusUpdateClient) mutate(ctx context.Context, m *StatusUpdateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StatusUpdateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StatusUpdateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StatusUpdateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StatusUpdateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StatusUpdate mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// TaskDependencyClient is a client for the TaskDependency schema.
type TaskDependencyClient struct {
	config
}

// NewTaskDependencyClient returns a client for the TaskDependency from the given config.
func NewTaskDependencyClient(c config) *TaskDependencyClient {
	return &TaskDependencyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskdependency.Hooks(f(g(h())))`.
func (c *TaskDependencyClient) Use(hooks ...Hook) {
	c.hooks.TaskDependency = append(c.hooks.TaskDependency, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskdependency.Intercept(f(g(h())))`.
func (c *TaskDependencyClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskDependency = append(c.inters.TaskDependency, interceptors...)
}

// Create returns a builder for creating a TaskDependency entity.
func (c *TaskDependencyClient) Create() *TaskDependencyCreate {
	mutation := newTaskDependencyMutation(c.config, OpCreate)
	return &TaskDependencyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskDependency entities.
func (c *TaskDependencyClient) CreateBulk(builders ...*TaskDependencyCreate) *TaskDependencyCreateBulk {
	return &TaskDependencyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskDependencyClient) MapCreateBulk(slice any, setFunc func(*TaskDependencyCreate, int)) *TaskDependencyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskDependencyCreateBulk{err: fmt.Errorf("calling to TaskDependencyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskDependencyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskDependencyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskDependency.
func (c *TaskDependencyClient) Update() *TaskDependencyUpdate {
	mutation := newTaskDependencyMutation(c.config, OpUpdate)
	return &TaskDependencyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskDependencyClient) UpdateOne(_m *TaskDependency) *TaskDependencyUpdateOne {
	mutation := newTaskDependencyMutation(c.config, OpUpdateOne, withTaskDependency(_m))
	return &TaskDependencyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskDependencyClient) UpdateOneID(id string) *TaskDependencyUpdateOne {
	mutation := newTaskDependencyMutation(c.config, OpUpdateOne, withTaskDependencyID(id))
	return &TaskDependencyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskDependency.
func (c *TaskDependencyClient) Delete() *TaskDependencyDelete {
	mutation := newTaskDependencyMutation(c.config, OpDelete)
	return &TaskDependencyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskDependencyClient) DeleteOne(_m *TaskDependency) *TaskDependencyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskDependencyClient) DeleteOneID(id string) *TaskDependencyDeleteOne {
	builder := c.Delete().Where(taskdependency.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDependencyDeleteOne{builder}
}

// Query returns a query builder for TaskDependency.
func (c *TaskDependencyClient) Query() *TaskDependencyQuery {
	return &TaskDependencyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskDependency},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskDependency entity by its id.
func (c *TaskDependencyClient) Get(ctx context.Context, id string) (*TaskDependency, error) {
	return c.Query().Where(taskdependency.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskDependencyClient) GetX(ctx context.Context, id string) *TaskDependency {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TaskDependencyClient) Hooks() []Hook {
	return c.hooks.TaskDependency
}

// Interceptors returns the client interceptors.
func (c *TaskDependencyClient) Interceptors() []Interceptor {
	return c.inters.TaskDependency
}

func (c *TaskDependencyClient) mutate(ctx context.Context, m *TaskDependencyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskDependencyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskDependencyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskDependencyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDependencyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskDependency mutation op: %q", m.Op())
	}
}

// UsageEventClient is a client for the UsageEvent schema.
type UsageEventClient struct {
	config
}

// NewUsageEventClient returns a client for the UsageEvent from the given config.
func NewUsageEventClient(c config) *UsageEventClient {
	return &UsageEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usageevent.Hooks(f(g(h())))`.
func (c *UsageEventClient) Use(hooks ...Hook) {
	c.hooks.UsageEvent = append(c.hooks.UsageEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usageevent.Intercept(f(g(h())))`.
func (c *UsageEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.UsageEvent = append(c.inters.UsageEvent, interceptors...)
}

// Create returns a builder for creating a UsageEvent entity.
func (c *UsageEventClient) Create() *UsageEventCreate {
	mutation := newUsageEventMutation(c.config, OpCreate)
	return &UsageEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UsageEvent entities.
func (c *UsageEventClient) CreateBulk(builders ...*UsageEventCreate) *UsageEventCreateBulk {
	return &UsageEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UsageEventClient) MapCreateBulk(slice any, setFunc func(*UsageEventCreate, int)) *UsageEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UsageEventCreateBulk{err: fmt.Errorf("calling to UsageEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UsageEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UsageEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UsageEvent.
func (c *UsageEventClient) Update() *UsageEventUpdate {
	mutation := newUsageEventMutation(c.config, OpUpdate)
	return &UsageEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UsageEventClient) UpdateOne(_m *UsageEvent) *UsageEventUpdateOne {
	mutation := newUsageEventMutation(c.config, OpUpdateOne, withUsageEvent(_m))
	return &UsageEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UsageEventClient) UpdateOneID(id string) *UsageEventUpdateOne {
	mutation := newUsageEventMutation(c.config, OpUpdateOne, withUsageEventID(id))
	return &UsageEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UsageEvent.
func (c *UsageEventClient) Delete() *UsageEventDelete {
	mutation := newUsageEventMutation(c.config, OpDelete)
	return &UsageEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UsageEventClient) DeleteOne(_m *UsageEvent) *UsageEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UsageEventClient) DeleteOneID(id string) *UsageEventDeleteOne {
	builder := c.Delete().Where(usageevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UsageEventDeleteOne{builder}
}

// Query returns a query builder for UsageEvent.
func (c *UsageEventClient) Query() *UsageEventQuery {
	return &UsageEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUsageEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a UsageEvent entity by its id.
func (c *UsageEventClient) Get(ctx context.Context, id string) (*UsageEvent, error) {
	return c.Query().Where(usageevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UsageEventClient) GetX(ctx context.Context, id string) *UsageEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UsageEventClient) Hooks() []Hook {
	return c.hooks.UsageEvent
}

// Interceptors returns the client interceptors.
func (c *UsageEventClient) Interceptors() []Interceptor {
	return c.inters.UsageEvent
}

func (c *UsageEventClient) mutate(ctx context.Context, m *UsageEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UsageEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UsageEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UsageEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UsageEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UsageEvent mutation op: %q", m.Op())
	}
}

// UserSessionClient is a client for the UserSession schema.
type UserSessionClient struct {
	config
}

// NewUserSessionClient returns a client for the UserSession from the given config.
func NewUserSessionClient(c config) *UserSessionClient {
	return &UserSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usersession.Hooks(f(g(h())))`.
func (c *UserSessionClient) Use(hooks ...Hook) {
	c.hooks.UserSession = append(c.hooks.UserSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usersession.Intercept(f(g(h())))`.
func (c *UserSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserSession = append(c.inters.UserSession, interceptors...)
}

// Create returns a builder for creating a UserSession entity.
func (c *UserSessionClient) Create() *UserSessionCreate {
	mutation := newUserSessionMutation(c.config, OpCreate)
	return &UserSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserSession entities.
func (c *UserSessionClient) CreateBulk(builders ...*UserSessionCreate) *UserSessionCreateBulk {
	return &UserSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserSessionClient) MapCreateBulk(slice any, setFunc func(*UserSessionCreate, int)) *UserSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserSessionCreateBulk{err: fmt.Errorf("calling to UserSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserSession.
func (c *UserSessionClient) Update() *UserSessionUpdate {
	mutation := newUserSessionMutation(c.config, OpUpdate)
	return &UserSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserSessionClient) UpdateOne(_m *UserSession) *UserSessionUpdateOne {
	mutation := newUserSessionMutation(c.config, OpUpdateOne, withUserSession(_m))
	return &UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserSessionClient) UpdateOneID(id string) *UserSessionUpdateOne {
	mutation := newUserSessionMutation(c.config, OpUpdateOne, withUserSessionID(id))
	return &UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserSession.
func (c *UserSessionClient) Delete() *UserSessionDelete {
	mutation := newUserSessionMutation(c.config, OpDelete)
	return &UserSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserSessionClient) DeleteOne(_m *UserSession) *UserSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserSessionClient) DeleteOneID(id string) *UserSessionDeleteOne {
	builder := c.Delete().Where(usersession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserSessionDeleteOne{builder}
}

// Query returns a query builder for UserSession.
func (c *UserSessionClient) Query() *UserSessionQuery {
	return &UserSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserSession},
		inters: c.Interceptors(),
	}
}

// Get returns a UserSession entity by its id.
func (c *UserSessionClient) Get(ctx context.Context, id string) (*UserSession, error) {
	return c.Query().Where(usersession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserSessionClient) GetX(ctx context.Context, id string) *UserSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserSessionClient) Hooks() []Hook {
	return c.hooks.UserSession
}

// Interceptors returns the client interceptors.
func (c *UserSessionClient) Interceptors() []Interceptor {
	return c.inters.UserSession
}

func (c *UserSessionClient) mutate(ctx context.Context, m *UserSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserSession mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Application, CalendarEvent, CalendarSnapshot, ChecklistItem, Commitment,
		FocusDirective, InboxItem, IngestionEvent, ModelCatalogEntry, ModelPreference,
		Plan, Project, StatusUpdate, Task, TaskDependency, UsageEvent,
		UserSession []ent.Hook
	}
	inters struct {
		Application, CalendarEvent, CalendarSnapshot, ChecklistItem, Commitment,
		FocusDirective, InboxItem, IngestionEvent, ModelCatalogEntry, ModelPreference,
		Plan, Project, StatusUpdate, Task, TaskDependency, UsageEvent,
		UserSession []ent.Interceptor
	}
)
