package models

import (
	"bytes"
	"encoding/json"
)

// AddPlayerRequest is the body of POST /api/players.
type AddPlayerRequest struct {
	Name string `json:"name" form:"name"`
}

// UpdateScoreRequest is the body of PUT /api/scores/:round/:player.
type UpdateScoreRequest struct {
	Value ScoreValue `json:"value" form:"value"`
}

// PendingNameRequest is the body of PUT /api/pending-name.
type PendingNameRequest struct {
	Name string `json:"name" form:"name"`
}

// ScoreValue is raw score input. JSON strings are taken as typed and JSON
// numbers by their literal text. Any other JSON value decodes to "" and so
// scores 0.
type ScoreValue string

func (v *ScoreValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = ScoreValue(s)
	case len(b) > 0 && (b[0] == '-' || (b[0] >= '0' && b[0] <= '9')):
		*v = ScoreValue(b)
	default:
		*v = ""
	}
	return nil
}
