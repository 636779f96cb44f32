// Package api exposes mission control over HTTP: task and portfolio CRUD,
// planning, calendar, intake, briefings, and the model catalog, all scoped to
// the authenticated owner.
package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/missionctl/missionctl/pkg/config"
	"github.com/missionctl/missionctl/pkg/database"
	"github.com/missionctl/missionctl/pkg/services"
)

// Server holds the service layer and registers the HTTP surface on top.
type Server struct {
	cfg      *config.Config
	dbClient *database.Client

	tasks        *services.TaskService
	dependencies *services.DependencyService
	applications *services.ApplicationService
	projects     *services.ProjectService
	commitments  *services.CommitmentService
	focus        *services.FocusService
	planner      *services.PlannerService
	calendar     *services.CalendarService
	intake       *services.IntakeService
	briefings    *services.BriefingService
	catalog      *services.CatalogService
	sessions     *services.SessionService
}

// Services bundles everything the server dispatches to.
type Services struct {
	Tasks        *services.TaskService
	Dependencies *services.DependencyService
	Applications *services.ApplicationService
	Projects     *services.ProjectService
	Commitments  *services.CommitmentService
	Focus        *services.FocusService
	Planner      *services.PlannerService
	Calendar     *services.CalendarService
	Intake       *services.IntakeService
	Briefings    *services.BriefingService
	Catalog      *services.CatalogService
	Sessions     *services.SessionService
}

// NewServer creates a new API server.
func NewServer(cfg *config.Config, dbClient *database.Client, svcs Services) *Server {
	return &Server{
		cfg:          cfg,
		dbClient:     dbClient,
		tasks:        svcs.Tasks,
		dependencies: svcs.Dependencies,
		applications: svcs.Applications,
		projects:     svcs.Projects,
		commitments:  svcs.Commitments,
		focus:        svcs.Focus,
		planner:      svcs.Planner,
		calendar:     svcs.Calendar,
		intake:       svcs.Intake,
		briefings:    svcs.Briefings,
		catalog:      svcs.Catalog,
		sessions:     svcs.Sessions,
	}
}

// NewEcho builds the echo instance with middleware and all routes registered.
func (s *Server) NewEcho() *echo.Echo {
	e := echo.New()
	e.Use(recoverPanics())
	e.Use(requestLogger())
	e.Use(securityHeaders())

	// Health stays unauthenticated for orchestrator probes.
	e.GET("/health", s.healthHandler)

	v1 := e.Group("/api/v1", s.requireAuth)

	v1.GET("/tasks", s.listTasksHandler)
	v1.POST("/tasks", s.createTaskHandler)
	v1.GET("/tasks/:id", s.getTaskHandler)
	v1.PATCH("/tasks/:id", s.updateTaskHandler)
	v1.DELETE("/tasks/:id", s.deleteTaskHandler)
	v1.GET("/tasks/:id/checklist", s.listChecklistHandler)
	v1.PATCH("/checklist/:id", s.setChecklistDoneHandler)
	v1.GET("/tasks/:id/dependencies", s.listDependenciesHandler)
	v1.POST("/tasks/:id/dependencies", s.addDependencyHandler)
	v1.DELETE("/tasks/:id/dependencies/:dep_id", s.removeDependencyHandler)

	v1.GET("/applications", s.listApplicationsHandler)
	v1.POST("/applications", s.createApplicationHandler)
	v1.GET("/applications/:id", s.getApplicationHandler)
	v1.PATCH("/applications/:id", s.updateApplicationHandler)
	v1.POST("/applications/reorder", s.reorderApplicationsHandler)
	v1.GET("/applications/:id/status-updates", s.listStatusUpdatesHandler)

	// The portfolio rows are "implementations" on the wire for historical
	// reasons; storage and services call them applications.
	v1.POST("/implementations/:id/copy-update", s.copyUpdateHandler)

	v1.GET("/projects", s.listProjectsHandler)
	v1.POST("/projects", s.createProjectHandler)

	v1.GET("/commitments", s.listCommitmentsHandler)
	v1.POST("/commitments", s.createCommitmentHandler)
	v1.POST("/commitments/:id/satisfy", s.satisfyCommitmentHandler)

	v1.GET("/focus", s.getFocusHandler)
	v1.POST("/focus", s.activateFocusHandler)
	v1.PATCH("/focus/:id", s.updateFocusHandler)
	v1.POST("/focus/clear", s.clearFocusHandler)
	v1.GET("/focus/history", s.listFocusHandler)

	v1.POST("/planner/plan", s.buildPlanHandler)
	v1.GET("/planner/plan", s.latestPlanHandler)

	v1.POST("/calendar/ingest", s.ingestCalendarHandler)
	v1.POST("/calendar/ingest/ics", s.ingestICSHandler)
	v1.GET("/calendar", s.calendarRangeHandler)
	v1.PATCH("/calendar", s.meetingContextHandler)

	v1.POST("/intake/email", s.intakeEmailHandler)
	v1.GET("/inbox", s.listInboxHandler)
	v1.GET("/inbox/:id/events", s.listInboxEventsHandler)

	v1.GET("/briefing", s.getBriefingHandler)
	v1.POST("/briefing/narrative", s.briefingNarrativeHandler)

	v1.GET("/llm/models", s.listModelsHandler)
	v1.GET("/llm/preferences", s.listPreferencesHandler)
	v1.PUT("/llm/preferences/:feature", s.setPreferenceHandler)
	v1.DELETE("/llm/preferences/:feature", s.clearPreferenceHandler)
	v1.GET("/llm/usage", s.usageHandler)

	v1.POST("/auth/logout", s.logoutHandler)

	return e
}

// bindJSON decodes the request body, translating bind failures into a 400.
func bindJSON(c *echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return nil
}
