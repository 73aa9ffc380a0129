package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stratigo/borehole-backend-go/internal/config"
	"github.com/stratigo/borehole-backend-go/internal/database"
	"github.com/stratigo/borehole-backend-go/internal/handler"
	"github.com/stratigo/borehole-backend-go/internal/middleware"
	"github.com/stratigo/borehole-backend-go/internal/repository"
	"github.com/stratigo/borehole-backend-go/internal/service"
)

// SetupRouter wires repositories, services and handlers onto a gin engine
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(middleware.NewRateLimiter(120, time.Minute)))

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	repo := repository.NewBoreholeRepository(database.GetDB())
	boreholeHandler := handler.NewBoreholeHandler(service.NewBoreholeService(repo))
	analysisHandler := handler.NewAnalysisHandler(service.NewAnalysisService(repo))
	authHandler := handler.NewAuthHandler(cfg)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Borehole Analysis API is running",
		})
	})

	api := r.Group("/api/v1")
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.Auth(cfg.JWTSecret))
	{
		boreholes := protected.Group("/boreholes")
		{
			boreholes.POST("", boreholeHandler.CreateBorehole)
			boreholes.GET("", boreholeHandler.ListBoreholes)
			boreholes.GET("/:id", boreholeHandler.GetBorehole)
			boreholes.POST("/:id/intervals", boreholeHandler.CreateInterval)
		}

		analysis := protected.Group("/analysis")
		{
			analysis.POST("/units", analysisHandler.IdentifyUnits)
			analysis.POST("/clusters", analysisHandler.Cluster)
			analysis.POST("/interpolate", analysisHandler.Interpolate)
			analysis.POST("/uncertainty", analysisHandler.BoundaryUncertainty)
			analysis.POST("/cross-validate", analysisHandler.CrossValidate)
		}
	}

	return r
}
