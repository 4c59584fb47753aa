package domain

import "fmt"

// HandSize is the fixed number of cards in a dealt hand. Hand order is
// positional: hold masks refer to slots 0..4 of the dealt hand.
const HandSize = 5

// HoldMask selects which hand slots survive the draw, true = keep.
type HoldMask [HandSize]bool

// Count returns the number of held slots.
func (m HoldMask) Count() int {
	n := 0
	for _, held := range m {
		if held {
			n++
		}
	}
	return n
}

// HoldAll is the pat-hand mask: every slot held.
func HoldAll() HoldMask {
	return HoldMask{true, true, true, true, true}
}

// RequireHand panics unless the hand has exactly 5 cards. A malformed hand
// reaching the rules engine is a caller bug, not a runtime condition.
func RequireHand(hand []Card) {
	if len(hand) != HandSize {
		panic(fmt.Sprintf("domain: hand must have %d cards, got %d", HandSize, len(hand)))
	}
}
