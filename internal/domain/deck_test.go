package domain

import (
	"math/rand"
	"testing"
)

func TestNewDeckHas52UniqueCards(t *testing.T) {
	deck := NewDeck()
	if len(deck) != DeckSize {
		t.Fatalf("deck size = %d, want %d", len(deck), DeckSize)
	}
	seen := make(map[Card]bool, DeckSize)
	for _, c := range deck {
		if seen[c] {
			t.Fatalf("duplicate card %v", c)
		}
		seen[c] = true
	}
}

func TestShuffleDeckIsDeterministicPerSeed(t *testing.T) {
	a, b := NewDeck(), NewDeck()
	ShuffleDeck(a, rand.New(rand.NewSource(7)))
	ShuffleDeck(b, rand.New(rand.NewSource(7)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different decks at %d", i)
		}
	}

	c := NewDeck()
	ShuffleDeck(c, rand.New(rand.NewSource(8)))
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical decks")
	}
}
