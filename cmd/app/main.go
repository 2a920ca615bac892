package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	controllersfx "moodtrip/cmd/fx/controllers_fx"
	enginefx "moodtrip/cmd/fx/engine_fx"
	memcachefx "moodtrip/cmd/fx/memcache_fx"
	recommendationfx "moodtrip/cmd/fx/recommendation_fx"
	"moodtrip/internal/api/controllers"
	"moodtrip/internal/infra"
	"moodtrip/pkg/middleware"
)

func main() {
	app := fx.New(
		fx.Provide(infra.LoadConfig),
		memcachefx.Module,
		enginefx.Module,
		recommendationfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *infra.Config, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg *infra.Config,
	recommendationsController *controllers.RecommendationsController,
	healthController *controllers.HealthController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, cfg, recommendationsController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	cfg *infra.Config,
	recommendationsController *controllers.RecommendationsController,
	healthController *controllers.HealthController) {

	api := r.Group("/api")
	api.POST("/recommendations", recommendationsController.CreateRecommendations)
	api.GET("/health", healthController.Health)

	// The single-page frontend lives next to the binary; anything that is
	// not an API route falls back to it.
	r.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(cfg.FrontendDir, "index.html"))
	})
	r.NoRoute(func(c *gin.Context) {
		path := filepath.Join(cfg.FrontendDir, filepath.Clean(c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})
}
