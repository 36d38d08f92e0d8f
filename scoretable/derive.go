package scoretable

import "strconv"

// Highlight marks a player's total in the totals row.
type Highlight int

const (
	HighlightNone Highlight = iota
	HighlightMax
	HighlightMin
)

func (h Highlight) String() string {
	switch h {
	case HighlightMax:
		return "max"
	case HighlightMin:
		return "min"
	default:
		return "none"
	}
}

// Row is one displayed round.
type Row struct {
	Label  string
	Scores []float64
}

// View is everything the presentation layer needs to draw the table. It is
// built from a State on demand and shares no memory with it.
type View struct {
	Players            []string
	Rows               []Row
	Totals             []float64
	Highlights         []Highlight
	MaxTotal           float64
	MinTotal           float64
	RoundCount         int
	PendingName        string
	CanAddPlayer       bool
	CanAddRound        bool
	PlayerLimitReached bool
}

func visibleRows(s State) int {
	if len(s.Scores) > s.RoundCount {
		return len(s.Scores)
	}
	return s.RoundCount
}

// Rows returns the rounds to display: the stored rows, then zero placeholder
// rows until RoundCount rows are present.
func Rows(s State) [][]float64 {
	n := visibleRows(s)
	rows := make([][]float64, 0, n)
	for _, row := range s.Scores {
		rows = append(rows, copyRow(row))
	}
	for len(rows) < n {
		rows = append(rows, zeroRow(len(s.Players)))
	}
	return rows
}

// Totals sums each player's column over Rows. Missing cells count as 0.
func Totals(s State) []float64 {
	totals := make([]float64, len(s.Players))
	for _, row := range Rows(s) {
		for p := range totals {
			if p < len(row) {
				totals[p] += row[p]
			}
		}
	}
	return totals
}

// MaxTotal is the highest total, or 0 without players.
func MaxTotal(s State) float64 {
	hi, _ := bounds(Totals(s))
	return hi
}

// MinTotal is the lowest total, or 0 without players.
func MinTotal(s State) float64 {
	_, lo := bounds(Totals(s))
	return lo
}

// HighlightOf returns the mark for the player at index p. Max is checked first,
// so a total that is both the max and the min is reported as max.
func HighlightOf(s State, p int) Highlight {
	totals := Totals(s)
	if p < 0 || p >= len(totals) {
		return HighlightNone
	}
	hi, lo := bounds(totals)
	return highlight(totals[p], hi, lo)
}

// Snapshot builds the read model for s.
func Snapshot(s State) View {
	rows := Rows(s)
	totals := Totals(s)
	hi, lo := bounds(totals)

	v := View{
		Players:            append(make([]string, 0, len(s.Players)), s.Players...),
		Rows:               make([]Row, len(rows)),
		Totals:             totals,
		Highlights:         make([]Highlight, len(totals)),
		MaxTotal:           hi,
		MinTotal:           lo,
		RoundCount:         s.RoundCount,
		PendingName:        s.PendingName,
		CanAddPlayer:       CanAddPlayer(s),
		CanAddRound:        CanAddRound(s),
		PlayerLimitReached: !CanAddPlayer(s),
	}
	for i, row := range rows {
		v.Rows[i] = Row{Label: "Round " + strconv.Itoa(i+1), Scores: row}
	}
	for p, t := range totals {
		v.Highlights[p] = highlight(t, hi, lo)
	}
	return v
}

func bounds(totals []float64) (hi, lo float64) {
	if len(totals) == 0 {
		return 0, 0
	}
	hi, lo = totals[0], totals[0]
	for _, t := range totals[1:] {
		if t > hi {
			hi = t
		}
		if t < lo {
			lo = t
		}
	}
	return hi, lo
}

func highlight(total, hi, lo float64) Highlight {
	switch total {
	case hi:
		return HighlightMax
	case lo:
		return HighlightMin
	}
	return HighlightNone
}
