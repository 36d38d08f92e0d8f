// Package scoretable holds the score table state and the pure functions that move it
// from one state to the next.
package scoretable

// MaxPlayers caps the number of players a table can hold.
const MaxPlayers = 4

// State is the whole score table. It is used as a value: Apply returns a fresh State
// and never writes through the slices of the one it was given.
type State struct {
	Players     []string
	Scores      [][]float64 // rounds x players
	RoundCount  int         // rounds to display, always >= 1
	PendingName string      // draft text of the "add player" input
}

// New returns the empty table shown at startup.
func New() State {
	return State{RoundCount: 1}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := State{RoundCount: s.RoundCount, PendingName: s.PendingName}
	if s.Players != nil {
		out.Players = make([]string, len(s.Players))
		copy(out.Players, s.Players)
	}
	if s.Scores != nil {
		out.Scores = make([][]float64, len(s.Scores))
		for i, row := range s.Scores {
			out.Scores[i] = copyRow(row)
		}
	}
	return out
}

// Equal reports whether s and o hold the same table.
func (s State) Equal(o State) bool {
	if s.RoundCount != o.RoundCount || s.PendingName != o.PendingName {
		return false
	}
	if len(s.Players) != len(o.Players) || len(s.Scores) != len(o.Scores) {
		return false
	}
	for i := range s.Players {
		if s.Players[i] != o.Players[i] {
			return false
		}
	}
	for i := range s.Scores {
		if len(s.Scores[i]) != len(o.Scores[i]) {
			return false
		}
		for j := range s.Scores[i] {
			if s.Scores[i][j] != o.Scores[i][j] {
				return false
			}
		}
	}
	return true
}

// CanAddPlayer reports whether another player fits in the table.
func CanAddPlayer(s State) bool {
	return len(s.Players) < MaxPlayers
}

// CanAddRound reports whether a round can be appended. Rounds need at least one player.
func CanAddRound(s State) bool {
	return len(s.Players) > 0
}

func zeroRow(width int) []float64 {
	return make([]float64, width)
}

func copyRow(row []float64) []float64 {
	out := make([]float64, len(row))
	copy(out, row)
	return out
}
