package scoretable

import (
	"math"
	"strconv"
	"strings"
)

// Action is a single user request against the table.
type Action interface {
	Kind() string
}

// AddPlayer appends a player named Name (trimmed).
type AddPlayer struct{ Name string }

// RemovePlayer drops the player at Index along with their score column.
type RemovePlayer struct{ Index int }

// AddRound appends a zero-filled round.
type AddRound struct{}

// UpdateScore writes Value, parsed as a number, at cell [Round][Player]. A write
// that would push the player's total past the float64 range is ignored.
type UpdateScore struct {
	Round  int
	Player int
	Value  string
}

// Reset clears the table back to its startup state.
type Reset struct{}

// SetPendingName stores the draft text of the name input.
type SetPendingName struct{ Name string }

func (AddPlayer) Kind() string      { return "addPlayer" }
func (RemovePlayer) Kind() string   { return "removePlayer" }
func (AddRound) Kind() string       { return "addRound" }
func (UpdateScore) Kind() string    { return "updateScore" }
func (Reset) Kind() string          { return "reset" }
func (SetPendingName) Kind() string { return "setName" }

// Apply returns the state that follows s once a is handled. The player list and
// the score matrix change together in one step. Requests that break the table's
// rules are ignored and yield an unchanged copy of s.
func Apply(s State, a Action) State {
	next := s.Clone()
	switch a := a.(type) {
	case AddPlayer:
		return addPlayer(next, a.Name)
	case RemovePlayer:
		return removePlayer(next, a.Index)
	case AddRound:
		return addRound(next)
	case UpdateScore:
		return updateScore(next, a.Round, a.Player, a.Value)
	case Reset:
		return New()
	case SetPendingName:
		next.PendingName = a.Name
		return next
	}
	return next
}

// ParseScore converts raw cell text into a score. Empty, non-numeric and
// non-finite input all count as 0. Unsigned integers written with a 0x, 0o or
// 0b prefix are read in that base.
func ParseScore(raw string) float64 {
	text := strings.TrimSpace(raw)
	if hasBasePrefix(text) {
		if strings.Contains(text, "_") {
			return 0
		}
		n, err := strconv.ParseUint(text, 0, 64)
		if err != nil {
			return 0
		}
		return float64(n)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}

func hasBasePrefix(text string) bool {
	if len(text) < 2 || text[0] != '0' {
		return false
	}
	switch text[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}
	return false
}

func addPlayer(s State, raw string) State {
	name := strings.TrimSpace(raw)
	if name == "" || !CanAddPlayer(s) {
		return s
	}
	s.Players = append(s.Players, name)
	for i := range s.Scores {
		s.Scores[i] = append(s.Scores[i], 0)
	}
	s.PendingName = ""
	return s
}

func removePlayer(s State, index int) State {
	if index < 0 || index >= len(s.Players) {
		return s
	}
	s.Players = append(s.Players[:index], s.Players[index+1:]...)
	for i, row := range s.Scores {
		if index < len(row) {
			s.Scores[i] = append(row[:index], row[index+1:]...)
		}
	}
	return s
}

func addRound(s State) State {
	if !CanAddRound(s) {
		return s
	}
	s.Scores = append(s.Scores, zeroRow(len(s.Players)))
	s.RoundCount++
	return s
}

func updateScore(s State, round, player int, raw string) State {
	width := len(s.Players)
	if player < 0 || player >= width || round < 0 || round >= visibleRows(s) {
		return s
	}
	before := s.Clone()
	if len(s.Scores) == 0 {
		s.Scores = make([][]float64, 0, s.RoundCount)
		for i := 0; i < s.RoundCount; i++ {
			s.Scores = append(s.Scores, zeroRow(width))
		}
	}
	for len(s.Scores) <= round {
		s.Scores = append(s.Scores, zeroRow(width))
	}
	s.Scores[round][player] = ParseScore(raw)
	if !columnFinite(s.Scores, player) {
		return before
	}
	return s
}

// columnFinite sums the column in row order, the same way Totals does.
func columnFinite(rows [][]float64, player int) bool {
	var sum float64
	for _, row := range rows {
		sum += row[player]
	}
	return !math.IsInf(sum, 0) && !math.IsNaN(sum)
}
