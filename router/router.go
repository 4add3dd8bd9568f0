package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/branchops/branch-policy/handler"
)

// New creates a gin engine wiring the status, metrics and webhook routes. The
// logger is attached to every request context so handlers can use
// zerolog.Ctx.
func New(logger zerolog.Logger, statusHandler *handler.StatusHandler, webHookHandler *handler.WebHookHandler) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context()))
		c.Next()
	})

	engine.GET("/", statusHandler.Root)
	engine.GET("/health", statusHandler.Health)
	engine.GET("/info", statusHandler.Info)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.POST("/events/github", webHookHandler.HandleWebhookEvents)
	return engine
}
