package games

import (
	"videopoker/internal/domain"
	"videopoker/internal/games/internal"
)

// 9/6 full-pay table. Rows are totals per bet level; the royal jumps to
// 4000 at max bet instead of 1250.
var jacksOrBetterPaytable = domain.Paytable{
	domain.OutcomeRoyalFlush:    {250, 500, 750, 1000, 4000},
	domain.OutcomeStraightFlush: {50, 100, 150, 200, 250},
	domain.OutcomeFourOfAKind:   {25, 50, 75, 100, 125},
	domain.OutcomeFullHouse:     {9, 18, 27, 36, 45},
	domain.OutcomeFlush:         {6, 12, 18, 24, 30},
	domain.OutcomeStraight:      {4, 8, 12, 16, 20},
	domain.OutcomeThreeOfAKind:  {3, 6, 9, 12, 15},
	domain.OutcomeTwoPair:       {2, 4, 6, 8, 10},
	domain.OutcomeJacksOrBetter: {1, 2, 3, 4, 5},
}

// JacksOrBetter is the baseline variant: a pair of jacks or better is the
// lowest paying hand.
func JacksOrBetter() GameSpec {
	return GameSpec{
		ID:    "jacks-or-better",
		Title: "Jacks or Better",
		DisplayOrder: []domain.Outcome{
			domain.OutcomeRoyalFlush,
			domain.OutcomeStraightFlush,
			domain.OutcomeFourOfAKind,
			domain.OutcomeFullHouse,
			domain.OutcomeFlush,
			domain.OutcomeStraight,
			domain.OutcomeThreeOfAKind,
			domain.OutcomeTwoPair,
			domain.OutcomeJacksOrBetter,
		},
		Paytable: jacksOrBetterPaytable,
		Classify: classifyJacksOrBetter,
		Advise: func(hand []domain.Card) Advice {
			return adviseWith(jacksOrBetterRules, internal.NewScan(hand))
		},
	}
}

func classifyJacksOrBetter(hand []domain.Card) domain.Outcome {
	domain.RequireHand(hand)
	flush, straight := domain.IsFlush(hand), domain.IsStraight(hand)
	if flush && straight {
		if domain.IsRoyal(hand) {
			return domain.OutcomeRoyalFlush
		}
		return domain.OutcomeStraightFlush
	}
	shape := domain.CountShape(hand)
	switch {
	case shape[0] == 4:
		return domain.OutcomeFourOfAKind
	case shape[0] == 3 && shape[1] == 2:
		return domain.OutcomeFullHouse
	case flush:
		return domain.OutcomeFlush
	case straight:
		return domain.OutcomeStraight
	case shape[0] == 3:
		return domain.OutcomeThreeOfAKind
	case shape[0] == 2 && shape[1] == 2:
		return domain.OutcomeTwoPair
	case shape[0] == 2:
		for r, n := range domain.RankCounts(hand) {
			if n == 2 && r.IsHigh() {
				return domain.OutcomeJacksOrBetter
			}
		}
	}
	return domain.OutcomeNothing
}

// The 9/6 strategy chart, best hold first.
var jacksOrBetterRules = []rule{
	{"Pat royal flush", patHand(classifyJacksOrBetter, domain.OutcomeRoyalFlush)},
	{"Pat straight flush", patHand(classifyJacksOrBetter, domain.OutcomeStraightFlush)},
	{"Four of a kind", patHand(classifyJacksOrBetter, domain.OutcomeFourOfAKind)},
	{"Four to a royal flush", holdBest(func(s *internal.Scan) [][]int { return s.RoyalDraws(4) })},
	{"Pat full house", patHand(classifyJacksOrBetter, domain.OutcomeFullHouse)},
	{"Pat flush", patHand(classifyJacksOrBetter, domain.OutcomeFlush)},
	{"Three of a kind", naturalTrips},
	{"Pat straight", patHand(classifyJacksOrBetter, domain.OutcomeStraight)},
	{"Four to a straight flush", holdBest(func(s *internal.Scan) [][]int { return s.StraightFlushDraws(4) })},
	{"Two pair", bothPairs},
	{"High pair", pairOfKind(true)},
	{"Three to a royal flush", holdBest(func(s *internal.Scan) [][]int { return s.RoyalDraws(3) })},
	{"Four to a flush", holdBest(func(s *internal.Scan) [][]int { return s.FlushDraws(4) })},
	{"Low pair", pairOfKind(false)},
	{"Four to an outside straight", holdBest(func(s *internal.Scan) [][]int { return s.OutsideStraightDraws() })},
	{"Four to an inside straight with three high cards", holdBest(insideStraightWithHighs(3))},
	{"Two suited high cards", holdBest(suitedHighPairs)},
	{"Three to a straight flush", holdBest(func(s *internal.Scan) [][]int { return s.StraightFlushDraws(3) })},
	{"Two unsuited high cards", lowestTwoHighCards},
	{"Suited ten and face card", holdBest(suitedTenAndFace)},
	{"One high card", oneHighCard},
	{"Discard everything", discardAll},
}

// insideStraightWithHighs keeps only inside-straight draws carrying at least
// minHighs high cards.
func insideStraightWithHighs(minHighs int) func(*internal.Scan) [][]int {
	return func(s *internal.Scan) [][]int {
		var out [][]int
		for _, cand := range s.InsideStraightDraws() {
			highs := 0
			for _, i := range cand {
				if s.Hand[i].Rank.IsHigh() {
					highs++
				}
			}
			if highs >= minHighs {
				out = append(out, cand)
			}
		}
		return out
	}
}
