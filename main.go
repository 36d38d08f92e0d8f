package main

import (
	"flag"
	"net/http"
	"time"

	"go.uber.org/zap"

	"escro/handlers"           // page, form and JSON routes
	"escro/internal/game"      // the in-memory table session
	"escro/internal/websocket" // live presentation transport
	"escro/utils"              // logger and configuration

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON config file")
	flag.Parse()

	// production logger until the config says otherwise
	logger, err := utils.InitLogger(false)
	if err != nil {
		panic(err)
	}

	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.String("path", *configPath), zap.Error(err))
	}

	if config.Development {
		logger.Sync()
		if logger, err = utils.InitLogger(true); err != nil {
			panic(err)
		}
	}
	defer logger.Sync()

	if !config.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	session := game.NewSession(logger)
	wsServer := websocket.NewServer(session, config, logger)

	router := gin.New()
	router.Use(gin.Recovery(), utils.RequestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handlers.Register(router, session, logger)
	router.GET("/ws", func(c *gin.Context) {
		wsServer.HandleConnections(c.Writer, c.Request)
	})

	logger.Info("Score tracker listening", zap.String("addr", config.Addr))
	if err := router.Run(config.Addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
