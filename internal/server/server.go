// Package server provides the HTTP API: dataset registration plus read
// endpoints over the metadata store.
package server

import (
	"context"
	"net/http"
	"regexp"
	"sort"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/dataferry/dataferry/apitypes"
	"github.com/dataferry/dataferry/internal/ent/generated"
	"github.com/dataferry/dataferry/internal/ent/generated/dataset"
	"github.com/dataferry/dataferry/internal/ent/generated/event"
	"github.com/dataferry/dataferry/internal/ent/generated/filerecord"
	"github.com/dataferry/dataferry/internal/ent/generated/lab"
	"github.com/dataferry/dataferry/internal/events"
	"github.com/dataferry/dataferry/internal/timeline"
)

// validIDPattern matches valid ID formats: alphanumeric, hyphens,
// underscores. Permissive enough for UUIDs and ULIDs while blocking path
// traversal and injection.
var validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// maxIDLength is the maximum allowed length for ID parameters.
const maxIDLength = 256

// defaultEventsLimit is the maximum number of events to return.
const defaultEventsLimit = 100

// validateID checks that an ID parameter is non-empty, reasonable length,
// and contains only safe characters.
func validateID(id string) error {
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}
	if len(id) > maxIDLength {
		return echo.NewHTTPError(http.StatusBadRequest, "id too long")
	}
	if !validIDPattern.MatchString(id) {
		return echo.NewHTTPError(http.StatusBadRequest, "id contains invalid characters")
	}
	return nil
}

// HTTPServer is the HTTP API server.
type HTTPServer struct {
	echo     *echo.Echo
	db       *generated.Client
	bus      *events.Bus
	activity timeline.Recorder
	logger   zerolog.Logger
}

// Option is a functional option for configuring the server.
type Option func(*HTTPServer)

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *HTTPServer) {
		s.logger = logger
	}
}

// WithBus sets the event bus registrations publish on.
func WithBus(bus *events.Bus) Option {
	return func(s *HTTPServer) {
		s.bus = bus
	}
}

// WithActivity sets the in-memory activity recorder backing the activity
// endpoint.
func WithActivity(rec timeline.Recorder) Option {
	return func(s *HTTPServer) {
		s.activity = rec
	}
}

// New creates a new HTTP API server.
func New(db *generated.Client, opts ...Option) *HTTPServer {
	s := &HTTPServer{
		echo:   echo.New(),
		db:     db,
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *HTTPServer) setupMiddleware() {
	s.echo.HideBanner = true
	s.echo.HidePort = true

	// Request logging
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				s.logger.Error().
					Err(v.Error).
					Str("method", v.Method).
					Str("uri", v.URI).
					Int("status", v.Status).
					Msg("request error")
			} else {
				s.logger.Debug().
					Str("method", v.Method).
					Str("uri", v.URI).
					Int("status", v.Status).
					Msg("request")
			}
			return nil
		},
	}))

	// Recovery
	s.echo.Use(middleware.Recover())

	// CORS
	s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))
}

func (s *HTTPServer) setupRoutes() {
	api := s.echo.Group("/api/v1")

	// Health check
	api.GET("/health", s.healthHandler)

	// Stats
	api.GET("/stats", s.statsHandler)

	// Registration
	api.POST("/register", s.registerHandler)

	// Datasets
	api.GET("/datasets", s.listDatasetsHandler)
	api.GET("/datasets/:id", s.getDatasetHandler)
	api.GET("/datasets/:id/events", s.datasetEventsHandler)

	// Repositories
	api.GET("/repositories", s.listRepositoriesHandler)

	// Events and recent activity
	api.GET("/events", s.eventsHandler)
	api.GET("/activity", s.activityHandler)
}

// Start starts the server.
func (s *HTTPServer) Start(addr string) error {
	s.logger.Info().Str("addr", addr).Msg("starting http server")
	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// ServeHTTP implements http.Handler for testing.
func (s *HTTPServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Handlers

func (s *HTTPServer) healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, apitypes.HealthResponse{
		Status: "ok",
	})
}

func (s *HTTPServer) statsHandler(c echo.Context) error {
	ctx := c.Request().Context()
	resp := apitypes.Stats{
		ByStatus: make(map[string]int),
	}

	var err error
	if resp.Datasets, err = s.db.Dataset.Query().Count(ctx); err != nil {
		s.logger.Error().Err(err).Msg("failed to count datasets")
		return c.JSON(http.StatusInternalServerError, apitypes.ErrorResponse{Error: "failed to compute stats"})
	}
	if resp.Repositories, err = s.db.Repository.Query().Count(ctx); err != nil {
		s.logger.Error().Err(err).Msg("failed to count repositories")
		return c.JSON(http.StatusInternalServerError, apitypes.ErrorResponse{Error: "failed to compute stats"})
	}

	recs, err := s.db.FileRecord.Query().All(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list records for stats")
		return c.JSON(http.StatusInternalServerError, apitypes.ErrorResponse{Error: "failed to compute stats"})
	}
	resp.Records = len(recs)
	for _, rec := range recs {
		if rec.Exists {
			resp.Existing++
		}
		if rec.Status != filerecord.StatusNone {
			resp.ByStatus[string(rec.Status)]++
		}
	}

	return c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) listDatasetsHandler(c echo.Context) error {
	ctx := c.Request().Context()

	q := s.db.Dataset.Query().
		WithLab().
		WithFileRecords(func(fq *generated.FileRecordQuery) {
			fq.WithRepository()
		})
	if labName := c.QueryParam("lab"); labName != "" {
		q = q.Where(dataset.HasLabWith(lab.Name(labName)))
	}

	rows, err := q.All(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list datasets")
		return c.JSON(http.StatusInternalServerError, apitypes.ErrorResponse{Error: "failed to list datasets"})
	}

	resp := make([]apitypes.Dataset, 0, len(rows))
	for _, ds := range rows {
		resp = append(resp, entDatasetToAPIType(ds))
	}

	// Sort by name for consistent ordering
	sort.Slice(resp, func(i, j int) bool {
		return resp[i].Name < resp[j].Name
	})

	return c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) getDatasetHandler(c echo.Context) error {
	idStr := c.Param("id")
	if err := validateID(idStr); err != nil {
		return err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apitypes.ErrorResponse{Error: "invalid dataset id"})
	}

	ds, err := s.db.Dataset.Query().
		Where(dataset.ID(id)).
		WithLab().
		WithFileRecords(func(fq *generated.FileRecordQuery) {
			fq.WithRepository()
		}).
		Only(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusNotFound, apitypes.ErrorResponse{Error: "dataset not found"})
	}

	return c.JSON(http.StatusOK, entDatasetToAPIType(ds))
}

func (s *HTTPServer) listRepositoriesHandler(c echo.Context) error {
	repos, err := s.db.Repository.Query().WithLab().All(c.Request().Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list repositories")
		return c.JSON(http.StatusInternalServerError, apitypes.ErrorResponse{Error: "failed to list repositories"})
	}

	resp := make([]apitypes.Repository, 0, len(repos))
	for _, repo := range repos {
		r := apitypes.Repository{
			Name:       repo.Name,
			EndpointID: repo.EndpointID,
			RootPath:   repo.RootPath,
			IsPersonal: repo.IsPersonal,
		}
		if l := repo.Edges.Lab; l != nil {
			r.Lab = l.Name
		}
		resp = append(resp, r)
	}

	return c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) eventsHandler(c echo.Context) error {
	rows, err := s.db.Event.Query().
		Order(event.ByTimestamp()).
		Limit(defaultEventsLimit).
		All(c.Request().Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get events")
		return c.JSON(http.StatusInternalServerError, apitypes.ErrorResponse{Error: "failed to get events"})
	}

	return c.JSON(http.StatusOK, rows)
}

func (s *HTTPServer) datasetEventsHandler(c echo.Context) error {
	idStr := c.Param("id")
	if err := validateID(idStr); err != nil {
		return err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apitypes.ErrorResponse{Error: "invalid dataset id"})
	}

	rows, err := s.db.Event.Query().
		Where(
			event.SubjectTypeEQ(event.SubjectTypeDataset),
			event.SubjectIDEQ(id.String()),
		).
		Order(event.ByTimestamp()).
		Limit(defaultEventsLimit).
		All(c.Request().Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get dataset events")
		return c.JSON(http.StatusInternalServerError, apitypes.ErrorResponse{Error: "failed to get events"})
	}

	return c.JSON(http.StatusOK, rows)
}

func (s *HTTPServer) activityHandler(c echo.Context) error {
	if s.activity == nil {
		return c.JSON(http.StatusOK, []timeline.Entry{})
	}

	if datasetID := c.QueryParam("dataset"); datasetID != "" {
		return c.JSON(http.StatusOK, s.activity.ByDataset(datasetID))
	}
	return c.JSON(http.StatusOK, s.activity.All())
}

// Type conversion helpers

const timeFormat = "2006-01-02T15:04:05Z07:00"

// entDatasetToAPIType converts an Ent Dataset to an apitypes.Dataset. The
// lab and file-record edges must be preloaded.
func entDatasetToAPIType(ds *generated.Dataset) apitypes.Dataset {
	resp := apitypes.Dataset{
		ID:        ds.ID.String(),
		Name:      ds.Name,
		FileSize:  ds.FileSize,
		Hash:      ds.Hash,
		Revision:  ds.Revision,
		Protected: ds.Protected,
		CreatedAt: ds.CreatedAt.Format(timeFormat),
	}
	if l := ds.Edges.Lab; l != nil {
		resp.Lab = l.Name
	}
	for _, rec := range ds.Edges.FileRecords {
		resp.Records = append(resp.Records, entRecordToAPIType(rec))
	}
	return resp
}

// entRecordToAPIType converts an Ent FileRecord to an apitypes.Record. The
// repository edge must be preloaded.
func entRecordToAPIType(rec *generated.FileRecord) apitypes.Record {
	r := apitypes.Record{
		ID:           rec.ID.String(),
		RelativePath: rec.RelativePath,
		Exists:       rec.Exists,
	}
	if rec.Status != filerecord.StatusNone {
		r.Status = string(rec.Status)
	}
	if repo := rec.Edges.Repository; repo != nil {
		r.Repository = repo.Name
	}
	return r
}
