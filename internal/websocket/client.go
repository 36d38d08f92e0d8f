package websocket

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"escro/models"
	"escro/scoretable"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Client is one browser connection.
type Client struct {
	ID   uuid.UUID
	Conn *websocket.Conn

	writeMu sync.Mutex
}

func (c *Client) send(reply models.Reply) error {
	b, err := json.Marshal(reply)
	if err != nil {
		return fmt.Errorf("marshal reply: %w", err)
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return c.Conn.WriteMessage(websocket.TextMessage, b)
}

func (c *Client) sendError(text string) error {
	return c.send(models.Reply{Type: "error", Error: text})
}

// handleClient reads messages until the connection fails and answers each one.
func (s *Server) handleClient(client *Client, logger *zap.Logger) {
	for {
		_, message, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Error("WebSocket error", zap.Error(err))
			}
			return
		}

		var msg models.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			logger.Error("Error decoding message", zap.Error(err))
			if err := client.sendError("invalid message"); err != nil {
				return
			}
			continue
		}

		action, err := toAction(msg)
		if err != nil {
			logger.Info("Received unknown message type", zap.String("type", msg.Type))
			if err := client.sendError(err.Error()); err != nil {
				return
			}
			continue
		}

		var view scoretable.View
		if action == nil {
			view = s.session.View()
		} else {
			view = s.session.Dispatch(action)
		}
		table := models.NewTableResponse(view)
		if err := client.send(models.Reply{Type: "table", Table: &table}); err != nil {
			logger.Error("Failed to send table", zap.Error(err))
			return
		}
	}
}

// toAction maps a message onto a table action. "sync" asks for the table
// without changing it and maps to a nil action.
func toAction(msg models.Message) (scoretable.Action, error) {
	switch msg.Type {
	case "addPlayer":
		return scoretable.AddPlayer{Name: msg.Name}, nil
	case "removePlayer":
		return scoretable.RemovePlayer{Index: msg.Index}, nil
	case "addRound":
		return scoretable.AddRound{}, nil
	case "updateScore":
		return scoretable.UpdateScore{Round: msg.Round, Player: msg.Player, Value: string(msg.Value)}, nil
	case "setName":
		return scoretable.SetPendingName{Name: msg.Name}, nil
	case "reset":
		return scoretable.Reset{}, nil
	case "sync":
		return nil, nil
	}
	return nil, fmt.Errorf("unknown message type %q", msg.Type)
}
