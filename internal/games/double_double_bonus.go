package games

import (
	"videopoker/internal/domain"
	"videopoker/internal/games/internal"
)

var doubleDoubleBonusPaytable = domain.Paytable{
	domain.OutcomeRoyalFlush:         {250, 500, 750, 1000, 4000},
	domain.OutcomeStraightFlush:      {50, 100, 150, 200, 250},
	domain.OutcomeFourAcesWithKicker: {400, 800, 1200, 1600, 2000},
	domain.OutcomeFourLowsWithKicker: {160, 320, 480, 640, 800},
	domain.OutcomeFourAces:           {160, 320, 480, 640, 800},
	domain.OutcomeFourLows:           {80, 160, 240, 320, 400},
	domain.OutcomeFourHighs:          {50, 100, 150, 200, 250},
	domain.OutcomeFullHouse:          {9, 18, 27, 36, 45},
	domain.OutcomeFlush:              {6, 12, 18, 24, 30},
	domain.OutcomeStraight:           {4, 8, 12, 16, 20},
	domain.OutcomeThreeOfAKind:       {3, 6, 9, 12, 15},
	domain.OutcomeTwoPair:            {1, 2, 3, 4, 5},
	domain.OutcomeJacksOrBetter:      {1, 2, 3, 4, 5},
}

// DoubleDoubleBonus splits four of a kind into tiers by quad rank and
// kicker, paying for the bigger quads what it takes back on two pair.
func DoubleDoubleBonus() GameSpec {
	return GameSpec{
		ID:    "double-double-bonus",
		Title: "Double Double Bonus",
		DisplayOrder: []domain.Outcome{
			domain.OutcomeRoyalFlush,
			domain.OutcomeStraightFlush,
			domain.OutcomeFourAcesWithKicker,
			domain.OutcomeFourLowsWithKicker,
			domain.OutcomeFourAces,
			domain.OutcomeFourLows,
			domain.OutcomeFourHighs,
			domain.OutcomeFullHouse,
			domain.OutcomeFlush,
			domain.OutcomeStraight,
			domain.OutcomeThreeOfAKind,
			domain.OutcomeTwoPair,
			domain.OutcomeJacksOrBetter,
		},
		Paytable: doubleDoubleBonusPaytable,
		Classify: classifyDoubleDoubleBonus,
		Advise: func(hand []domain.Card) Advice {
			return adviseWith(doubleDoubleBonusRules, internal.NewScan(hand))
		},
	}
}

func classifyDoubleDoubleBonus(hand []domain.Card) domain.Outcome {
	base := classifyJacksOrBetter(hand)
	if base != domain.OutcomeFourOfAKind {
		return base
	}
	quad, kicker := quadAndKicker(hand)
	switch {
	case quad == domain.Ace:
		if kicker >= domain.Two && kicker <= domain.Four {
			return domain.OutcomeFourAcesWithKicker
		}
		return domain.OutcomeFourAces
	case quad <= domain.Four:
		if kicker == domain.Ace || kicker <= domain.Four {
			return domain.OutcomeFourLowsWithKicker
		}
		return domain.OutcomeFourLows
	default:
		return domain.OutcomeFourHighs
	}
}

// quadAndKicker splits a four-of-a-kind hand into its quad rank and the
// fifth card's rank.
func quadAndKicker(hand []domain.Card) (quad, kicker domain.Rank) {
	for r, n := range domain.RankCounts(hand) {
		if n == 4 {
			quad = r
		} else {
			kicker = r
		}
	}
	return quad, kicker
}

var doubleDoubleBonusRules = []rule{
	{"Pat royal flush", patHand(classifyDoubleDoubleBonus, domain.OutcomeRoyalFlush)},
	{"Pat straight flush", patHand(classifyDoubleDoubleBonus, domain.OutcomeStraightFlush)},
	{"Four of a kind with premium kicker", patHand(classifyDoubleDoubleBonus,
		domain.OutcomeFourAcesWithKicker, domain.OutcomeFourLowsWithKicker, domain.OutcomeFourHighs)},
	{"Four of a kind, draw for the kicker", quadWithoutKicker},
	{"Four to a royal flush", holdBest(func(s *internal.Scan) [][]int { return s.RoyalDraws(4) })},
	{"Three aces", tripsOfRank(domain.Ace)},
	{"Pat full house", patHand(classifyDoubleDoubleBonus, domain.OutcomeFullHouse)},
	{"Pat flush", patHand(classifyDoubleDoubleBonus, domain.OutcomeFlush)},
	{"Three of a kind", naturalTrips},
	{"Pat straight", patHand(classifyDoubleDoubleBonus, domain.OutcomeStraight)},
	{"Four to a straight flush", holdBest(func(s *internal.Scan) [][]int { return s.StraightFlushDraws(4) })},
	{"Two pair", bothPairs},
	{"High pair", pairOfKind(true)},
	{"Three to a royal flush", holdBest(func(s *internal.Scan) [][]int { return s.RoyalDraws(3) })},
	{"Four to a flush", holdBest(func(s *internal.Scan) [][]int { return s.FlushDraws(4) })},
	{"Low pair", pairOfKind(false)},
	{"Four to an outside straight", holdBest(func(s *internal.Scan) [][]int { return s.OutsideStraightDraws() })},
	{"Four to an inside straight, chart shapes", holdBest(chartedInsideStraights)},
	{"Two suited high cards", holdBest(suitedHighPairs)},
	{"Three to a straight flush", holdBest(func(s *internal.Scan) [][]int { return s.StraightFlushDraws(3) })},
	{"Two unsuited high cards", lowestTwoHighCards},
	{"Suited ten and face card", holdBest(suitedTenAndFace)},
	{"One high card", oneHighCard},
	{"Discard everything", discardAll},
}

// quadWithoutKicker holds the quad alone when the fifth card is not a
// premium kicker, drawing for the kicker upgrade.
func quadWithoutKicker(s *internal.Scan) (internal.Candidate, bool) {
	r, n := s.MaxRankCount()
	if n != 4 {
		return internal.Candidate{}, false
	}
	return internal.Candidate{Hold: s.SlotsOfRank(r)}, true
}

// tripsOfRank holds three of the given rank even out of a full house: the
// kicker-tier quad chase beats the pat payout.
func tripsOfRank(want domain.Rank) func(*internal.Scan) (internal.Candidate, bool) {
	return func(s *internal.Scan) (internal.Candidate, bool) {
		if len(s.SlotsOfRank(want)) != 3 {
			return internal.Candidate{}, false
		}
		return internal.Candidate{Hold: s.SlotsOfRank(want)}, true
	}
}

// The chart enumerates the inside-straight shapes worth keeping instead of
// deriving them; every shape carries at least three high cards.
var chartedInsideStraightShapes = [][4]domain.Rank{
	{domain.Jack, domain.Queen, domain.King, domain.Ace},
	{domain.Ten, domain.Jack, domain.Queen, domain.Ace},
	{domain.Ten, domain.Jack, domain.King, domain.Ace},
	{domain.Ten, domain.Queen, domain.King, domain.Ace},
	{domain.Nine, domain.Jack, domain.Queen, domain.King},
}

func chartedInsideStraights(s *internal.Scan) [][]int {
	var cands [][]int
	for _, shape := range chartedInsideStraightShapes {
		var slots []int
		for _, r := range shape {
			of := s.SlotsOfRank(r)
			if len(of) == 0 {
				slots = nil
				break
			}
			slots = append(slots, of[0])
		}
		if slots != nil {
			cands = append(cands, slots)
		}
	}
	return cands
}
