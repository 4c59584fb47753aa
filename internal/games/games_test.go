package games

import (
	"testing"

	"videopoker/internal/domain"
)

// card builds a card from a compact "AS", "10H", "7D" style string.
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

func mask(slots ...int) domain.HoldMask {
	var m domain.HoldMask
	for _, i := range slots {
		m[i] = true
	}
	return m
}
