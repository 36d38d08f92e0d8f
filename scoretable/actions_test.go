package scoretable

import (
	"math"
	"math/rand"
	"reflect"
	"testing"
)

func withPlayers(names ...string) State {
	s := New()
	for _, n := range names {
		s = Apply(s, AddPlayer{Name: n})
	}
	return s
}

func assertRowWidths(t *testing.T, s State) {
	t.Helper()
	for i, row := range s.Scores {
		if len(row) != len(s.Players) {
			t.Fatalf("row %d has %d cells, want %d", i, len(row), len(s.Players))
		}
	}
}

func TestAddPlayer(t *testing.T) {
	tests := []struct {
		name    string
		start   State
		input   string
		players []string
	}{
		{name: "trims name", start: New(), input: "  Ahmed ", players: []string{"Ahmed"}},
		{name: "empty name ignored", start: New(), input: "", players: nil},
		{name: "whitespace name ignored", start: New(), input: "   \t", players: nil},
		{name: "fifth player ignored", start: withPlayers("a", "b", "c", "d"), input: "e", players: []string{"a", "b", "c", "d"}},
		{name: "appends in order", start: withPlayers("Ahmed"), input: "Sara", players: []string{"Ahmed", "Sara"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(tt.start, AddPlayer{Name: tt.input})
			if len(got.Players) != len(tt.players) {
				t.Fatalf("players = %v, want %v", got.Players, tt.players)
			}
			for i := range tt.players {
				if got.Players[i] != tt.players[i] {
					t.Errorf("players[%d] = %q, want %q", i, got.Players[i], tt.players[i])
				}
			}
		})
	}
}

func TestAddPlayerExtendsRowsAndClearsPendingName(t *testing.T) {
	s := withPlayers("Ahmed")
	s = Apply(s, AddRound{})
	s = Apply(s, UpdateScore{Round: 0, Player: 0, Value: "7"})
	s = Apply(s, SetPendingName{Name: "Sara"})

	s = Apply(s, AddPlayer{Name: s.PendingName})

	assertRowWidths(t, s)
	if s.PendingName != "" {
		t.Errorf("pending name = %q, want empty", s.PendingName)
	}
	if s.Scores[0][0] != 7 || s.Scores[0][1] != 0 {
		t.Errorf("row 0 = %v, want [7 0]", s.Scores[0])
	}
}

func TestRejectedAddPlayerKeepsPendingName(t *testing.T) {
	s := withPlayers("a", "b", "c", "d")
	s = Apply(s, SetPendingName{Name: "e"})
	s = Apply(s, AddPlayer{Name: "e"})
	if s.PendingName != "e" {
		t.Errorf("pending name = %q, want %q", s.PendingName, "e")
	}
}

func TestRemovePlayer(t *testing.T) {
	s := withPlayers("a", "b", "c")
	s = Apply(s, AddRound{})
	s = Apply(s, UpdateScore{Round: 0, Player: 0, Value: "1"})
	s = Apply(s, UpdateScore{Round: 0, Player: 1, Value: "2"})
	s = Apply(s, UpdateScore{Round: 0, Player: 2, Value: "3"})

	got := Apply(s, RemovePlayer{Index: 1})

	if want := []string{"a", "c"}; !reflect.DeepEqual(got.Players, want) {
		t.Fatalf("players = %v, want %v", got.Players, want)
	}
	assertRowWidths(t, got)
	if want := []float64{1, 3}; !reflect.DeepEqual(got.Scores[0], want) {
		t.Errorf("row 0 = %v, want %v", got.Scores[0], want)
	}
	for _, row := range Rows(got) {
		if len(row) != 2 {
			t.Errorf("derived row %v has stale width", row)
		}
	}
}

func TestRemovePlayerOutOfRange(t *testing.T) {
	s := withPlayers("a", "b")
	for _, idx := range []int{-1, 2, 100} {
		if got := Apply(s, RemovePlayer{Index: idx}); !got.Equal(s) {
			t.Errorf("RemovePlayer(%d) changed state: %+v", idx, got)
		}
	}
}

func TestAddRound(t *testing.T) {
	empty := Apply(New(), AddRound{})
	if !empty.Equal(New()) {
		t.Fatalf("AddRound without players changed state: %+v", empty)
	}

	s := Apply(withPlayers("a", "b"), AddRound{})
	if s.RoundCount != 2 {
		t.Errorf("round count = %d, want 2", s.RoundCount)
	}
	if want := [][]float64{{0, 0}}; !reflect.DeepEqual(s.Scores, want) {
		t.Errorf("scores = %v, want %v", s.Scores, want)
	}
}

func TestUpdateScore(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  float64
	}{
		{name: "integer", value: "5", want: 5},
		{name: "negative", value: "-12", want: -12},
		{name: "fraction", value: "2.5", want: 2.5},
		{name: "padded", value: " 8 ", want: 8},
		{name: "text coerced", value: "abc", want: 0},
		{name: "empty coerced", value: "", want: 0},
		{name: "infinity coerced", value: "Inf", want: 0},
		{name: "overflow coerced", value: "1e400", want: 0},
		{name: "nan coerced", value: "NaN", want: 0},
		{name: "hex integer", value: "0x10", want: 16},
		{name: "binary integer", value: "0b101", want: 5},
		{name: "octal integer", value: "0o7", want: 7},
		{name: "leading zero is decimal", value: "0755", want: 755},
		{name: "hex float coerced", value: "0x1p4", want: 0},
		{name: "signed hex coerced", value: "-0x10", want: 0},
		{name: "prefixed underscore coerced", value: "0x_1", want: 0},
		{name: "decimal underscore coerced", value: "1_000", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := withPlayers("a", "b")
			s = Apply(s, UpdateScore{Round: 0, Player: 0, Value: "9"})
			s = Apply(s, UpdateScore{Round: 0, Player: 0, Value: tt.value})
			if got := s.Scores[0][0]; got != tt.want {
				t.Errorf("score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdateScoreKeepsTotalsFinite(t *testing.T) {
	s := withPlayers("a", "b")
	s = Apply(s, AddRound{})
	s = Apply(s, UpdateScore{Round: 0, Player: 0, Value: "1e308"})
	s = Apply(s, UpdateScore{Round: 0, Player: 1, Value: "-1e308"})

	for _, c := range []UpdateScore{
		{Round: 1, Player: 0, Value: "1e308"},
		{Round: 1, Player: 1, Value: "-1e308"},
	} {
		if got := Apply(s, c); !got.Equal(s) {
			t.Errorf("%+v changed state: %+v", c, got)
		}
	}

	// the same cells accept values that keep the sum in range
	got := Apply(s, UpdateScore{Round: 1, Player: 0, Value: "-1e308"})
	if got.Scores[1][0] != -1e308 {
		t.Errorf("scores[1][0] = %v, want -1e308", got.Scores[1][0])
	}
	for p, total := range Totals(got) {
		if math.IsInf(total, 0) {
			t.Errorf("totals[%d] = %v", p, total)
		}
	}
}

func TestUpdateScoreMaterializesRows(t *testing.T) {
	s := withPlayers("a", "b")
	s = Apply(s, AddRound{})
	s = Apply(s, AddRound{})
	// three visible rounds, two stored rows
	s = Apply(s, UpdateScore{Round: 2, Player: 1, Value: "4"})

	if len(s.Scores) != 3 {
		t.Fatalf("stored rows = %d, want 3", len(s.Scores))
	}
	assertRowWidths(t, s)
	if s.Scores[2][1] != 4 {
		t.Errorf("scores[2][1] = %v, want 4", s.Scores[2][1])
	}
}

func TestUpdateScoreOnEmptyScoresUsesRoundCount(t *testing.T) {
	s := withPlayers("a")
	s.RoundCount = 3
	s = Apply(s, UpdateScore{Round: 1, Player: 0, Value: "2"})
	if want := [][]float64{{0}, {2}, {0}}; !reflect.DeepEqual(s.Scores, want) {
		t.Errorf("scores = %v, want %v", s.Scores, want)
	}
}

func TestUpdateScoreOutsideGridIgnored(t *testing.T) {
	s := withPlayers("a", "b")
	cases := []UpdateScore{
		{Round: -1, Player: 0, Value: "1"},
		{Round: 0, Player: -1, Value: "1"},
		{Round: 0, Player: 2, Value: "1"},
		{Round: 1, Player: 0, Value: "1"},
	}
	for _, c := range cases {
		if got := Apply(s, c); !got.Equal(s) {
			t.Errorf("%+v changed state: %+v", c, got)
		}
	}
	if got := Apply(New(), UpdateScore{Round: 0, Player: 0, Value: "1"}); !got.Equal(New()) {
		t.Errorf("update without players changed state: %+v", got)
	}
}

func TestReset(t *testing.T) {
	s := withPlayers("a", "b", "c")
	s = Apply(s, AddRound{})
	s = Apply(s, UpdateScore{Round: 0, Player: 2, Value: "10"})
	s = Apply(s, SetPendingName{Name: "draft"})

	got := Apply(s, Reset{})
	if len(got.Players) != 0 || len(got.Scores) != 0 || got.RoundCount != 1 || got.PendingName != "" {
		t.Errorf("reset state = %+v", got)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	s := withPlayers("a", "b", "c")
	s = Apply(s, AddRound{})
	s = Apply(s, UpdateScore{Round: 0, Player: 1, Value: "3"})
	before := s.Clone()

	actions := []Action{
		AddPlayer{Name: "d"},
		RemovePlayer{Index: 0},
		AddRound{},
		UpdateScore{Round: 0, Player: 1, Value: "99"},
		SetPendingName{Name: "x"},
		Reset{},
	}
	for _, a := range actions {
		Apply(s, a)
		if !s.Equal(before) {
			t.Fatalf("%s mutated input: %+v", a.Kind(), s)
		}
	}
}

func TestRowWidthInvariantUnderRandomActions(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	names := []string{"Ahmed", "Sara", "", " ", "Omar", "Lina", "Youssef"}
	s := New()
	for i := 0; i < 2000; i++ {
		var a Action
		switch rng.Intn(6) {
		case 0:
			a = AddPlayer{Name: names[rng.Intn(len(names))]}
		case 1:
			a = RemovePlayer{Index: rng.Intn(6) - 1}
		case 2:
			a = AddRound{}
		case 3:
			a = UpdateScore{Round: rng.Intn(8) - 1, Player: rng.Intn(6) - 1, Value: "3"}
		case 4:
			if rng.Intn(20) == 0 {
				a = Reset{}
			} else {
				a = AddRound{}
			}
		default:
			a = SetPendingName{Name: names[rng.Intn(len(names))]}
		}
		s = Apply(s, a)

		assertRowWidths(t, s)
		if len(s.Players) > MaxPlayers {
			t.Fatalf("after %s: %d players", a.Kind(), len(s.Players))
		}
		if s.RoundCount < 1 {
			t.Fatalf("after %s: round count %d", a.Kind(), s.RoundCount)
		}
	}
}
