package routes

import (
	"attendance_backend/config"
	"attendance_backend/handlers"
	"attendance_backend/logger"
	"attendance_backend/metrics"
	"attendance_backend/middleware"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with the middleware stack and all routes.
// m may be nil when metrics are disabled.
func NewRouter(cfg *config.Config, log logger.Logger, m *metrics.Manager) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true

	// CORS goes first so preflight requests are answered before anything else.
	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log.Named("http")))
	if m != nil {
		r.Use(middleware.Metrics(m))
	}
	r.Use(gin.Recovery())

	SetupRoutes(r, cfg, log, m)
	return r
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(r *gin.Engine, cfg *config.Config, log logger.Logger, m *metrics.Manager) {
	healthHandler := handlers.NewHealthHandler()

	var recorder handlers.MarkRecorder
	if m != nil {
		recorder = m
	}
	attendanceHandler := handlers.NewAttendanceHandler(recorder, log.Named("attendance"))

	r.NoRoute(healthHandler.NotFound)
	r.NoMethod(healthHandler.MethodNotAllowed)

	r.GET("/", healthHandler.Root)

	// Attendance routes
	r.POST("/attendance/mark", attendanceHandler.MarkAttendance)

	if cfg.DocsEnabled {
		docsHandler := handlers.NewDocsHandler()
		r.GET("/openapi.json", docsHandler.OpenAPI)
		r.GET("/docs", docsHandler.Docs)
	}

	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}
}
