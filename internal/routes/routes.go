package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/armandiucs114200-ui/barberia-fullstack/internal/audit"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/auth"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/config"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/handlers"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/identity"
	infraRepo "github.com/armandiucs114200-ui/barberia-fullstack/internal/infra/repository"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/middleware"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/ratelimit"
	ucReserva "github.com/armandiucs114200-ui/barberia-fullstack/internal/usecase/reserva"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/weather"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	reservaRepo := infraRepo.NewReservaGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var forecasts weather.Provider = weather.Noop{}
	if cfg.WeatherAPIKey != "" {
		forecasts = weather.NewWeatherAPI(cfg.WeatherAPIKey, cfg.WeatherLocation)
	}

	var verifier identity.Verifier = identity.NewLocalVerifier(db)
	if cfg.SupabaseURL != "" {
		verifier = identity.NewSupabaseVerifier(cfg.SupabaseURL, cfg.SupabaseKey)
	}

	loginLimiter := ratelimit.New(cfg.RedisAddr, cfg.RedisPassword)

	// ======================================================
	// USE CASES — RESERVAS
	// ======================================================
	listReservasUC := ucReserva.NewListReservas(reservaRepo, forecasts)
	createReservaUC := ucReserva.NewCreateReserva(reservaRepo, auditDispatcher)
	createPublicUC := ucReserva.NewCreatePublicReserva(reservaRepo, auditDispatcher)
	updateEstadoUC := ucReserva.NewUpdateEstado(reservaRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(verifier, reservaRepo, cfg)
	barberoHandler := handlers.NewBarberoHandler(reservaRepo)
	weatherHandler := handlers.NewWeatherHandler(forecasts)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	reservaHandler := handlers.NewReservaHandler(
		listReservasUC,
		createReservaUC,
		createPublicUC,
		updateEstadoUC,
	)

	// ======================================================
	// ROOT
	// ======================================================
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Barber Shop API is running"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", ratelimit.LoginMiddleware(loginLimiter), authHandler.Login)

		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/barberos", barberoHandler.List)
		api.GET("/weather/current", weatherHandler.Current)
		api.POST("/reservas/public", reservaHandler.CreatePublic)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/reservas", middleware.ValidatePagination(), reservaHandler.List)
			secured.POST("/reservas", reservaHandler.Create)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireRoles(auth.RoleAdmin))
			{
				admin.PATCH("/reservas/:id/estado", reservaHandler.UpdateEstado)
				admin.GET("/admin/audit-logs", auditLogsHandler.List)
			}
		}
	}

	// ======================================================
	// 404
	// ======================================================
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Route not found",
			"path":  c.Request.URL.Path,
		})
	})
}
