package handlers

import (
	"net/http"
	"strconv"

	"escro/internal/game"
	"escro/models"
	"escro/scoretable"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetTableHandler returns the current table.
func GetTableHandler(c *gin.Context, session *game.Session) {
	c.JSON(http.StatusOK, models.NewTableResponse(session.View()))
}

// AddPlayerHandler handles POST /api/players.
func AddPlayerHandler(c *gin.Context, session *game.Session, logger *zap.Logger) {
	var req models.AddPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid add player request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	respond(c, session.Dispatch(scoretable.AddPlayer{Name: req.Name}))
}

// RemovePlayerHandler handles DELETE /api/players/:index.
func RemovePlayerHandler(c *gin.Context, session *game.Session, logger *zap.Logger) {
	index, ok := pathIndex(c, "index", logger)
	if !ok {
		return
	}
	respond(c, session.Dispatch(scoretable.RemovePlayer{Index: index}))
}

// AddRoundHandler handles POST /api/rounds.
func AddRoundHandler(c *gin.Context, session *game.Session) {
	respond(c, session.Dispatch(scoretable.AddRound{}))
}

// UpdateScoreHandler handles PUT /api/scores/:round/:player.
func UpdateScoreHandler(c *gin.Context, session *game.Session, logger *zap.Logger) {
	round, ok := pathIndex(c, "round", logger)
	if !ok {
		return
	}
	player, ok := pathIndex(c, "player", logger)
	if !ok {
		return
	}
	var req models.UpdateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid score request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	respond(c, session.Dispatch(scoretable.UpdateScore{Round: round, Player: player, Value: string(req.Value)}))
}

// PendingNameHandler handles PUT /api/pending-name.
func PendingNameHandler(c *gin.Context, session *game.Session, logger *zap.Logger) {
	var req models.PendingNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid pending name request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	respond(c, session.Dispatch(scoretable.SetPendingName{Name: req.Name}))
}

// ResetHandler handles POST /api/reset.
func ResetHandler(c *gin.Context, session *game.Session) {
	respond(c, session.Dispatch(scoretable.Reset{}))
}

func respond(c *gin.Context, v scoretable.View) {
	c.JSON(http.StatusOK, models.NewTableResponse(v))
}

// pathIndex reads an integer path parameter. A non-integer is answered with 400.
func pathIndex(c *gin.Context, name string, logger *zap.Logger) (int, bool) {
	raw := c.Param(name)
	n, err := strconv.Atoi(raw)
	if err != nil {
		logger.Error("Invalid path index", zap.String("param", name), zap.String("value", raw), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return n, true
}
