package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskhub/internal/adapter/http/helper"
	"taskhub/internal/adapter/http/middleware"
	"taskhub/internal/core/apperr"
	"taskhub/internal/core/model/response"
	"taskhub/pkg/config"
	"taskhub/pkg/telemetry"
)

func SetupRouter(container *Container, cfg *config.Config, metrics *telemetry.AppMetrics, logger *zap.Logger) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	helper.Configure(cfg, logger)

	router := gin.New()

	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		helper.Error(c, apperr.Internal(fmt.Errorf("panic: %v", recovered)))
	}))
	router.Use(middleware.RequestID())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS())
	router.Use(middleware.Logging(logger))

	if metrics != nil {
		router.Use(metrics.Middleware())
		router.GET("/metrics", metrics.Handler())
	}

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Task API is running. See %s/api for endpoints.", cfg.ServerURL)
	})

	authGate := middleware.AuthRequired(container.UserRepo, container.Tokens)

	users := router.Group("/api/users")
	{
		users.POST("/register", container.UserHandler.Register)
		users.POST("/login", container.UserHandler.Login)

		users.GET("/profile", authGate, container.UserHandler.Profile)
		users.GET("", authGate, container.UserHandler.List)
	}

	tasks := router.Group("/api/tasks")
	tasks.Use(authGate)
	{
		tasks.POST("", container.TaskHandler.Create)
		tasks.GET("", container.TaskHandler.List)
		tasks.GET("/:id", container.TaskHandler.Get)
		tasks.PUT("/:id", container.TaskHandler.Update)
		tasks.PATCH("/:id/complete", container.TaskHandler.Complete)
		tasks.DELETE("/:id", container.TaskHandler.Delete)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Success:   false,
			Message:   fmt.Sprintf("route %s not found", c.Request.URL.Path),
			Status:    http.StatusNotFound,
			Timestamp: time.Now().Format(time.RFC3339),
			Path:      c.Request.URL.Path,
			RequestID: c.GetString(middleware.RequestIDKey),
		})
	})

	return router
}
