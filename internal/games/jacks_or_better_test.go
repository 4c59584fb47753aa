package games

import (
	"testing"

	"videopoker/internal/domain"
)

func TestClassifyJacksOrBetter(t *testing.T) {
	tests := []struct {
		name string
		hand []domain.Card
		want domain.Outcome
	}{
		{"royal flush", hand(t, "10S", "JS", "QS", "KS", "AS"), domain.OutcomeRoyalFlush},
		{"straight flush", hand(t, "5D", "6D", "7D", "8D", "9D"), domain.OutcomeStraightFlush},
		{"wheel straight flush", hand(t, "AD", "2D", "3D", "4D", "5D"), domain.OutcomeStraightFlush},
		{"four of a kind", hand(t, "7C", "7D", "7H", "7S", "2C"), domain.OutcomeFourOfAKind},
		{"full house", hand(t, "7C", "7D", "7H", "2S", "2C"), domain.OutcomeFullHouse},
		{"flush", hand(t, "2H", "5H", "9H", "JH", "KH"), domain.OutcomeFlush},
		{"straight", hand(t, "5C", "6D", "7H", "8S", "9C"), domain.OutcomeStraight},
		{"three of a kind", hand(t, "7C", "7D", "7H", "2S", "9C"), domain.OutcomeThreeOfAKind},
		{"two pair", hand(t, "7C", "7D", "2H", "2S", "9C"), domain.OutcomeTwoPair},
		{"jacks", hand(t, "JC", "JD", "2H", "5S", "9C"), domain.OutcomeJacksOrBetter},
		{"aces", hand(t, "AC", "AD", "2H", "5S", "9C"), domain.OutcomeJacksOrBetter},
		{"tens pay nothing", hand(t, "10C", "10D", "2H", "5S", "9C"), domain.OutcomeNothing},
		{"ace high", hand(t, "AC", "KD", "2H", "5S", "9C"), domain.OutcomeNothing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyJacksOrBetter(tt.hand); got != tt.want {
				t.Errorf("classify = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassifyJacksOrBetterPanicsOnMalformedHand(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for short hand")
		}
	}()
	classifyJacksOrBetter(hand(t, "AC", "KD", "2H"))
}

func TestAdviseJacksOrBetter(t *testing.T) {
	spec := JacksOrBetter()
	tests := []struct {
		name string
		hand []domain.Card
		want domain.HoldMask
	}{
		{"pat royal holds all", hand(t, "10S", "JS", "QS", "KS", "AS"), mask(0, 1, 2, 3, 4)},
		{"two pair holds both pairs", hand(t, "AS", "AH", "7D", "7C", "2S"), mask(0, 1, 2, 3)},
		{"four to royal over pat flush", hand(t, "10S", "JS", "QS", "KS", "5S"), mask(0, 1, 2, 3)},
		{"broken royal keeps the draw", hand(t, "10S", "JS", "QS", "KS", "5D"), mask(0, 1, 2, 3)},
		{"high pair over four to flush", hand(t, "JS", "JH", "4H", "7H", "9H"), mask(0, 1)},
		{"low pair over outside straight", hand(t, "5C", "5D", "6H", "7S", "8C"), mask(0, 1)},
		{"trips from full house stay whole hand", hand(t, "7C", "7D", "7H", "2S", "2C"), mask(0, 1, 2, 3, 4)},
		{"unsuited broadway keeps inside draw", hand(t, "JC", "QD", "KH", "AS", "4C"), mask(0, 1, 2, 3)},
		{"two unsuited highs keep lowest two", hand(t, "JC", "QD", "AH", "8S", "4C"), mask(0, 1)},
		{"suited ten and jack", hand(t, "10H", "JH", "3C", "7D", "9S"), mask(0, 1)},
		{"one high card", hand(t, "KC", "9D", "7H", "5S", "3C"), mask(0)},
		{"garbage discards all", hand(t, "2C", "4D", "7H", "9S", "10C"), mask()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advice := spec.Advise(tt.hand)
			if advice.Mask != tt.want {
				t.Errorf("Advise mask = %v (%s), want %v", advice.Mask, advice.Rationale, tt.want)
			}
		})
	}
}

func TestAdviseJacksOrBetterRationaleNames(t *testing.T) {
	spec := JacksOrBetter()
	advice := spec.Advise(hand(t, "AS", "AH", "7D", "7C", "2S"))
	if advice.Rationale != "Two pair" {
		t.Errorf("Rationale = %q, want Two pair", advice.Rationale)
	}
}
