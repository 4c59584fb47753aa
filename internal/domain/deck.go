package domain

import "math/rand"

// DeckSize is the number of cards in a fresh deck.
const DeckSize = 52

// NewDeck returns an ordered 52-card deck, one card per rank and suit.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for r := Two; r <= Ace; r++ {
		for s := Clubs; s <= Spades; s++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// ShuffleDeck permutes the deck in place using the provided random source.
// The rng is injected so tests can run deterministic deals.
func ShuffleDeck(deck []Card, rng *rand.Rand) {
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
}
