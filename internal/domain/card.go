package domain

import "fmt"

// Suit identifies one of the four suits.
type Suit int8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Rank is the card rank with ace high (2..14).
type Rank int8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Card is a single playing card. Cards are immutable values; identity for
// display purposes only, classification looks at rank and suit alone.
type Card struct {
	Rank Rank
	Suit Suit
}

// IsHigh reports whether the rank counts as a high card (J, Q, K, A).
func (r Rank) IsHigh() bool {
	return r >= Jack
}

func (r Rank) String() string {
	switch {
	case r >= Two && r <= Ten:
		return fmt.Sprintf("%d", int(r))
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	}
	return "?"
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	}
	return "?"
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}
