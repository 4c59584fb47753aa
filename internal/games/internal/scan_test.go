package internal

import (
	"reflect"
	"testing"

	"videopoker/internal/domain"
)

func card(t *testing.T, s string) domain.Card {
	t.Helper()
	var suit domain.Suit
	switch s[len(s)-1] {
	case 'S':
		suit = domain.Spades
	case 'H':
		suit = domain.Hearts
	case 'D':
		suit = domain.Diamonds
	case 'C':
		suit = domain.Clubs
	default:
		t.Fatalf("bad suit in %q", s)
	}
	ranks := map[string]domain.Rank{
		"A": domain.Ace, "K": domain.King, "Q": domain.Queen, "J": domain.Jack,
		"10": domain.Ten, "9": domain.Nine, "8": domain.Eight, "7": domain.Seven,
		"6": domain.Six, "5": domain.Five, "4": domain.Four, "3": domain.Three,
		"2": domain.Two,
	}
	rank, ok := ranks[s[:len(s)-1]]
	if !ok {
		t.Fatalf("bad rank in %q", s)
	}
	return domain.Card{Rank: rank, Suit: suit}
}

func hand(t *testing.T, specs ...string) []domain.Card {
	t.Helper()
	out := make([]domain.Card, 0, len(specs))
	for _, s := range specs {
		out = append(out, card(t, s))
	}
	return out
}

func TestWildScanSplitsWildsFromNaturals(t *testing.T) {
	s := NewWildScan(hand(t, "2S", "7D", "2H", "KD", "7C"), domain.Two)
	if got := s.WildCount(); got != 2 {
		t.Fatalf("WildCount() = %d, want 2", got)
	}
	if got := s.Wilds(); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Fatalf("Wilds() = %v", got)
	}
	if got := s.Naturals(); !reflect.DeepEqual(got, []int{1, 3, 4}) {
		t.Fatalf("Naturals() = %v", got)
	}
	if got := s.SlotsOfRank(domain.Seven); !reflect.DeepEqual(got, []int{1, 4}) {
		t.Fatalf("SlotsOfRank(7) = %v", got)
	}
	// Wild twos stay out of the rank groupings.
	if got := s.SlotsOfRank(domain.Two); len(got) != 0 {
		t.Fatalf("SlotsOfRank(2) = %v, want empty", got)
	}
}

func TestRanksWithCountOrdersHighFirst(t *testing.T) {
	s := NewScan(hand(t, "7D", "KD", "7C", "KS", "3H"))
	if got := s.RanksWithCount(2); !reflect.DeepEqual(got, []domain.Rank{domain.King, domain.Seven}) {
		t.Fatalf("RanksWithCount(2) = %v", got)
	}
}

func TestBestPrefersMoreHighCards(t *testing.T) {
	h := hand(t, "JD", "QD", "9S", "8S", "2C")
	c := Best(h, [][]int{{2, 3}, {0, 1}})
	if !reflect.DeepEqual(c.Hold, []int{0, 1}) {
		t.Fatalf("Hold = %v, want the two high cards", c.Hold)
	}
	if len(c.Alternates) != 0 {
		t.Fatalf("Alternates = %v, want none", c.Alternates)
	}
}

func TestBestPrefersHigherRankSumAmongEqualHighs(t *testing.T) {
	h := hand(t, "9D", "8D", "6S", "5S", "2C")
	c := Best(h, [][]int{{2, 3}, {0, 1}})
	if !reflect.DeepEqual(c.Hold, []int{0, 1}) {
		t.Fatalf("Hold = %v, want the 9-8", c.Hold)
	}
}

func TestBestReportsExactTiesAsAlternates(t *testing.T) {
	// Two pairs of equal structural value: same high count, same rank sum.
	h := hand(t, "7D", "7C", "7S", "7H", "2C")
	c := Best(h, [][]int{{0, 1}, {2, 3}})
	if len(c.Alternates) != 1 {
		t.Fatalf("Alternates = %v, want exactly one", c.Alternates)
	}
	if !reflect.DeepEqual(c.Alternates[0], []int{2, 3}) {
		t.Fatalf("Alternates[0] = %v", c.Alternates[0])
	}
}

func TestBestDeduplicatesCandidates(t *testing.T) {
	h := hand(t, "7D", "7C", "9S", "8S", "2C")
	c := Best(h, [][]int{{0, 1}, {1, 0}})
	if len(c.Alternates) != 0 {
		t.Fatalf("same slot set in different order produced alternate: %v", c.Alternates)
	}
}
