package handlers

import (
	"net/http"

	"escro/internal/game"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Register mounts the page, form and JSON routes for session on router.
func Register(router *gin.Engine, session *game.Session, logger *zap.Logger) {
	router.SetHTMLTemplate(Templates())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// HTML page and the forms it posts
	router.GET("/", func(c *gin.Context) {
		IndexHandler(c, session)
	})
	router.POST("/players", func(c *gin.Context) {
		FormAddPlayerHandler(c, session)
	})
	router.POST("/players/:index/remove", func(c *gin.Context) {
		FormRemovePlayerHandler(c, session, logger)
	})
	router.POST("/rounds", func(c *gin.Context) {
		FormAddRoundHandler(c, session)
	})
	router.POST("/scores/:round/:player", func(c *gin.Context) {
		FormUpdateScoreHandler(c, session, logger)
	})
	router.POST("/reset", func(c *gin.Context) {
		FormResetHandler(c, session)
	})

	api := router.Group("/api")
	api.GET("/table", func(c *gin.Context) {
		GetTableHandler(c, session)
	})
	api.POST("/players", func(c *gin.Context) {
		AddPlayerHandler(c, session, logger)
	})
	api.DELETE("/players/:index", func(c *gin.Context) {
		RemovePlayerHandler(c, session, logger)
	})
	api.POST("/rounds", func(c *gin.Context) {
		AddRoundHandler(c, session)
	})
	api.PUT("/scores/:round/:player", func(c *gin.Context) {
		UpdateScoreHandler(c, session, logger)
	})
	api.PUT("/pending-name", func(c *gin.Context) {
		PendingNameHandler(c, session, logger)
	})
	api.POST("/reset", func(c *gin.Context) {
		ResetHandler(c, session)
	})
}
