package websocket

import (
	"net/http"
	"net/url"
	"time"

	"escro/internal/game"
	"escro/models"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Server upgrades /ws requests and serves table actions over the connection.
// Replies go only to the connection that sent the request.
type Server struct {
	session        *game.Session
	logger         *zap.Logger
	upgrader       websocket.Upgrader
	allowedOrigins map[string]bool
	pingInterval   time.Duration
	pongWait       time.Duration
}

// NewServer returns a Server backed by session.
func NewServer(session *game.Session, config models.Config, logger *zap.Logger) *Server {
	s := &Server{
		session:        session,
		logger:         logger,
		allowedOrigins: make(map[string]bool, len(config.AllowedOrigins)),
		pingInterval:   config.PingInterval.Duration,
		pongWait:       config.PongWait.Duration,
	}
	defaults := models.DefaultConfig()
	if s.pingInterval <= 0 {
		s.pingInterval = defaults.PingInterval.Duration
	}
	if s.pongWait <= 0 {
		s.pongWait = defaults.PongWait.Duration
	}
	for _, o := range config.AllowedOrigins {
		s.allowedOrigins[o] = true
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}
	return s
}

// checkOrigin accepts requests without an Origin header, from a configured
// origin, or from the page this server rendered itself.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || s.allowedOrigins[origin] {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Host == r.Host
}

// HandleConnections upgrades the request and runs the client until it disconnects.
func (s *Server) HandleConnections(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already answered the request.
		s.logger.Error("Error upgrading WebSocket", zap.Error(err))
		return
	}

	client := &Client{ID: uuid.New(), Conn: conn}
	logger := s.logger.With(zap.String("clientID", client.ID.String()))
	logger.Info("New client connected", zap.String("remote", r.RemoteAddr))

	client.Conn.SetReadLimit(1 << 16)
	_ = client.Conn.SetReadDeadline(time.Now().Add(s.pongWait))
	client.Conn.SetPongHandler(func(string) error {
		return client.Conn.SetReadDeadline(time.Now().Add(s.pongWait))
	})

	done := make(chan struct{})
	go s.keepAlive(client, done, logger)

	s.handleClient(client, logger)
	close(done)
	client.Conn.Close()
	logger.Info("Client removed")
}

// keepAlive pings the client until done is closed or a ping fails.
func (s *Server) keepAlive(c *Client, done <-chan struct{}, logger *zap.Logger) {
	ticker := time.NewTicker(s.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			deadline := time.Now().Add(10 * time.Second)
			if err := c.Conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				logger.Error("Error sending ping", zap.Error(err))
				return
			}
		}
	}
}
