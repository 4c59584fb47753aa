package games

import (
	"testing"

	poker "github.com/paulhankin/poker"

	"videopoker/internal/domain"
)

// toOracle converts a hand to the evaluator library's representation. The
// library plays ace low in its rank encoding.
func toOracle(t *testing.T, h []domain.Card) [5]poker.Card {
	t.Helper()
	var out [5]poker.Card
	for i, c := range h {
		var s poker.Suit
		switch c.Suit {
		case domain.Clubs:
			s = poker.Club
		case domain.Diamonds:
			s = poker.Diamond
		case domain.Hearts:
			s = poker.Heart
		case domain.Spades:
			s = poker.Spade
		}
		r := poker.Rank(c.Rank)
		if c.Rank == domain.Ace {
			r = poker.Rank(1)
		}
		card, err := poker.MakeCard(s, r)
		if err != nil {
			t.Fatalf("MakeCard(%v): %v", c, err)
		}
		out[i] = card
	}
	return out
}

// The classifier's category ordering must agree with an independent
// evaluator: a hand we classify higher must also score higher.
func TestJacksOrBetterRankingAgreesWithOracle(t *testing.T) {
	samples := []struct {
		outcome domain.Outcome
		hand    []domain.Card
	}{
		{domain.OutcomeRoyalFlush, hand(t, "10S", "JS", "QS", "KS", "AS")},
		{domain.OutcomeStraightFlush, hand(t, "5D", "6D", "7D", "8D", "9D")},
		{domain.OutcomeFourOfAKind, hand(t, "7C", "7D", "7H", "7S", "3C")},
		{domain.OutcomeFullHouse, hand(t, "8C", "8D", "8H", "4S", "4C")},
		{domain.OutcomeFlush, hand(t, "2H", "5H", "9H", "JH", "KH")},
		{domain.OutcomeStraight, hand(t, "5C", "6D", "7H", "8S", "9C")},
		{domain.OutcomeThreeOfAKind, hand(t, "6C", "6D", "6H", "2S", "9C")},
		{domain.OutcomeTwoPair, hand(t, "9C", "9D", "4H", "4S", "KC")},
		{domain.OutcomeJacksOrBetter, hand(t, "JC", "JD", "3H", "6S", "9C")},
	}

	prev := int16(0)
	for i, s := range samples {
		if got := classifyJacksOrBetter(s.hand); got != s.outcome {
			t.Fatalf("sample %d classified as %s, want %s", i, got, s.outcome)
		}
		cards := toOracle(t, s.hand)
		score := poker.Eval5(&cards)
		if i > 0 && score >= prev {
			t.Errorf("%s scored %d, not below the category above (%d)", s.outcome, score, prev)
		}
		prev = score
	}
}

func TestWheelStraightAgreesWithOracle(t *testing.T) {
	wheel := hand(t, "AC", "2D", "3H", "4S", "5C")
	if got := classifyJacksOrBetter(wheel); got != domain.OutcomeStraight {
		t.Fatalf("wheel classified as %s", got)
	}

	pair := hand(t, "AC", "AD", "3H", "4S", "5C")
	w, p := toOracle(t, wheel), toOracle(t, pair)
	if poker.Eval5(&w) <= poker.Eval5(&p) {
		t.Error("oracle scored the wheel below a pair of aces")
	}
}
