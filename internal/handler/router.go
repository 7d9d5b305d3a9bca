package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"flat-reservation/internal/handler/api"
	"flat-reservation/internal/handler/middleware"
	"flat-reservation/internal/infra/metrics"
	"flat-reservation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type handlers struct {
	tenant      *api.TenantHandler
	flat        *api.FlatHandler
	reservation *api.ReservationHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	tenantHandler *api.TenantHandler,
	flatHandler *api.FlatHandler,
	reservationHandler *api.ReservationHandler,
	recorder *metrics.PrometheusRecorder,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, handlers{
		tenant:      tenantHandler,
		flat:        flatHandler,
		reservation: reservationHandler,
	}, recorder)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h handlers, recorder *metrics.PrometheusRecorder) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	if cfg.Metrics.Enabled && recorder != nil {
		engine.GET(cfg.Metrics.Path, gin.WrapH(recorder.Handler()))
	}

	apiGroup := engine.Group("/api")
	{
		tenants := apiGroup.Group("/tenants")
		addRoutes(tenants, []route{
			{Method: http.MethodPost, Path: "", Handler: h.tenant.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.tenant.Get},
		})

		flats := apiGroup.Group("/flats")
		addRoutes(flats, []route{
			{Method: http.MethodPost, Path: "", Handler: h.flat.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.flat.Get},
			{Method: http.MethodGet, Path: "/:id/reservations", Handler: h.flat.ListReservations},
		})

		reservations := apiGroup.Group("/reservations")
		addRoutes(reservations, []route{
			{Method: http.MethodPut, Path: "/reserve", Handler: h.reservation.Reserve},
			{Method: http.MethodPut, Path: "/approve", Handler: h.reservation.Approve},
			{Method: http.MethodPut, Path: "/reject", Handler: h.reservation.Reject},
			{Method: http.MethodPut, Path: "/cancel", Handler: h.reservation.Cancel},
			{Method: http.MethodGet, Path: "/:id", Handler: h.reservation.Get},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
