package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/armandiucs114200-ui/barberia-fullstack/internal/config"
	dbpkg "github.com/armandiucs114200-ui/barberia-fullstack/internal/db"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/metrics"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/middleware"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/routes"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Optional; env vars may come from the environment itself.
	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	metrics.Register()

	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
