package models

import "escro/scoretable"

// RowResponse is one displayed round.
type RowResponse struct {
	Label  string    `json:"label"`
	Scores []float64 `json:"scores"`
}

// TableResponse is the JSON rendering of a scoretable.View.
type TableResponse struct {
	Players            []string      `json:"players"`
	Rows               []RowResponse `json:"rows"`
	Totals             []float64     `json:"totals"`
	Highlights         []string      `json:"highlights"`
	MaxTotal           float64       `json:"maxTotal"`
	MinTotal           float64       `json:"minTotal"`
	RoundCount         int           `json:"roundCount"`
	PendingName        string        `json:"pendingName"`
	CanAddPlayer       bool          `json:"canAddPlayer"`
	CanAddRound        bool          `json:"canAddRound"`
	PlayerLimitReached bool          `json:"playerLimitReached"`
}

// NewTableResponse converts v for the wire. Slices are never nil so clients
// always see arrays.
func NewTableResponse(v scoretable.View) TableResponse {
	resp := TableResponse{
		Players:            append([]string{}, v.Players...),
		Rows:               make([]RowResponse, len(v.Rows)),
		Totals:             append([]float64{}, v.Totals...),
		Highlights:         make([]string, len(v.Highlights)),
		MaxTotal:           v.MaxTotal,
		MinTotal:           v.MinTotal,
		RoundCount:         v.RoundCount,
		PendingName:        v.PendingName,
		CanAddPlayer:       v.CanAddPlayer,
		CanAddRound:        v.CanAddRound,
		PlayerLimitReached: v.PlayerLimitReached,
	}
	for i, r := range v.Rows {
		resp.Rows[i] = RowResponse{Label: r.Label, Scores: append([]float64{}, r.Scores...)}
	}
	for i, h := range v.Highlights {
		resp.Highlights[i] = h.String()
	}
	return resp
}
