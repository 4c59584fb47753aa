package domain

import (
	"reflect"
	"testing"
)

// card builds a card from a compact "AS", "10H", "7D" style string.
func card(t *testing.T, s string) Card {
	t.Helper()
	var suit Suit
	switch s[len(s)-1] {
	case 'S':
		suit = Spades
	case 'H':
		suit = Hearts
	case 'D':
		suit = Diamonds
	case 'C':
		suit = Clubs
	default:
		t.Fatalf("bad suit in %q", s)
	}
	var rank Rank
	switch s[:len(s)-1] {
	case "A":
		rank = Ace
	case "K":
		rank = King
	case "Q":
		rank = Queen
	case "J":
		rank = Jack
	case "10":
		rank = Ten
	case "9":
		rank = Nine
	case "8":
		rank = Eight
	case "7":
		rank = Seven
	case "6":
		rank = Six
	case "5":
		rank = Five
	case "4":
		rank = Four
	case "3":
		rank = Three
	case "2":
		rank = Two
	default:
		t.Fatalf("bad rank in %q", s)
	}
	return Card{Rank: rank, Suit: suit}
}

func hand(t *testing.T, specs ...string) []Card {
	t.Helper()
	out := make([]Card, 0, len(specs))
	for _, s := range specs {
		out = append(out, card(t, s))
	}
	return out
}

func TestIsStraight(t *testing.T) {
	tests := []struct {
		name string
		hand []Card
		want bool
	}{
		{"middle run", hand(t, "5C", "6D", "7H", "8S", "9C"), true},
		{"ace high", hand(t, "10C", "JD", "QH", "KS", "AC"), true},
		{"wheel", hand(t, "AC", "2D", "3H", "4S", "5C"), true},
		{"around the corner", hand(t, "KC", "AD", "2H", "3S", "4C"), false},
		{"paired", hand(t, "5C", "5D", "6H", "7S", "8C"), false},
		{"gap", hand(t, "5C", "6D", "7H", "9S", "10C"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsStraight(tt.hand); got != tt.want {
				t.Errorf("IsStraight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsFlush(t *testing.T) {
	if !IsFlush(hand(t, "2S", "7S", "9S", "JS", "KS")) {
		t.Error("expected flush")
	}
	if IsFlush(hand(t, "2S", "7S", "9S", "JS", "KH")) {
		t.Error("expected no flush with one off-suit card")
	}
}

func TestIsRoyal(t *testing.T) {
	if !IsRoyal(hand(t, "10D", "JD", "QD", "KD", "AD")) {
		t.Error("expected royal")
	}
	if IsRoyal(hand(t, "9D", "10D", "JD", "QD", "KD")) {
		t.Error("king-high straight flush is not royal")
	}
	if IsRoyal(hand(t, "10D", "JD", "QD", "KD", "AH")) {
		t.Error("unsuited broadway is not royal")
	}
}

func TestCountShape(t *testing.T) {
	tests := []struct {
		name string
		hand []Card
		want []int
	}{
		{"quads", hand(t, "7C", "7D", "7H", "7S", "2C"), []int{4, 1}},
		{"full house", hand(t, "7C", "7D", "7H", "2S", "2C"), []int{3, 2}},
		{"two pair", hand(t, "7C", "7D", "4H", "4S", "2C"), []int{2, 2, 1}},
		{"no pair", hand(t, "7C", "8D", "4H", "JS", "2C"), []int{1, 1, 1, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountShape(tt.hand); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CountShape() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHighCardCount(t *testing.T) {
	if got := HighCardCount(hand(t, "JC", "QD", "KH", "AS", "10C")); got != 4 {
		t.Errorf("HighCardCount() = %d, want 4", got)
	}
	if got := HighCardCount(hand(t, "2C", "5D", "9H", "10S", "8C")); got != 0 {
		t.Errorf("HighCardCount() = %d, want 0", got)
	}
}

func TestRequireHandPanicsOnShortHand(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a 4-card hand")
		}
	}()
	RequireHand(hand(t, "2C", "5D", "9H", "10S"))
}
