package models

// Message is a request sent by the browser over /ws.
type Message struct {
	Type   string     `json:"type"`
	Name   string     `json:"name,omitempty"`
	Index  int        `json:"index,omitempty"`
	Round  int        `json:"round,omitempty"`
	Player int        `json:"player,omitempty"`
	Value  ScoreValue `json:"value,omitempty"`
}

// Reply is what the server sends back to the connection that sent a Message.
type Reply struct {
	Type  string         `json:"type"` // "table" or "error"
	Table *TableResponse `json:"table,omitempty"`
	Error string         `json:"error,omitempty"`
}
