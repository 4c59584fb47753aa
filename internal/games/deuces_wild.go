package games

import (
	"videopoker/internal/domain"
	"videopoker/internal/games/internal"
)

// Full-pay table. Nothing below three of a kind pays; the natural royal
// keeps the 4000 max-bet jackpot and four deuces is the second prize.
var deucesWildPaytable = domain.Paytable{
	domain.OutcomeNaturalRoyalFlush: {250, 500, 750, 1000, 4000},
	domain.OutcomeFourDeuces:        {200, 400, 600, 800, 1000},
	domain.OutcomeWildRoyalFlush:    {25, 50, 75, 100, 125},
	domain.OutcomeFiveOfAKind:       {15, 30, 45, 60, 75},
	domain.OutcomeStraightFlush:     {9, 18, 27, 36, 45},
	domain.OutcomeFourOfAKind:       {5, 10, 15, 20, 25},
	domain.OutcomeFullHouse:         {3, 6, 9, 12, 15},
	domain.OutcomeFlush:             {2, 4, 6, 8, 10},
	domain.OutcomeStraight:          {2, 4, 6, 8, 10},
	domain.OutcomeThreeOfAKind:      {1, 2, 3, 4, 5},
}

// DeucesWild treats every 2 as a wild card. Strategy depends almost
// entirely on how many deuces were dealt, so the advisor dispatches to a
// separate chart per deuce count.
func DeucesWild() GameSpec {
	return GameSpec{
		ID:    "deuces-wild",
		Title: "Deuces Wild",
		DisplayOrder: []domain.Outcome{
			domain.OutcomeNaturalRoyalFlush,
			domain.OutcomeFourDeuces,
			domain.OutcomeWildRoyalFlush,
			domain.OutcomeFiveOfAKind,
			domain.OutcomeStraightFlush,
			domain.OutcomeFourOfAKind,
			domain.OutcomeFullHouse,
			domain.OutcomeFlush,
			domain.OutcomeStraight,
			domain.OutcomeThreeOfAKind,
		},
		Paytable: deucesWildPaytable,
		Classify: classifyDeucesWild,
		Advise:   adviseDeucesWild,
	}
}

func classifyDeucesWild(hand []domain.Card) domain.Outcome {
	domain.RequireHand(hand)
	s := internal.NewWildScan(hand, domain.Two)
	wilds := s.WildCount()
	if wilds == 0 && domain.IsRoyal(hand) {
		return domain.OutcomeNaturalRoyalFlush
	}
	if wilds == 4 {
		return domain.OutcomeFourDeuces
	}

	ranks := make([]domain.Rank, 0, len(s.Naturals()))
	suited := true
	royal := true
	for _, i := range s.Naturals() {
		c := s.Hand[i]
		ranks = append(ranks, c.Rank)
		if c.Suit != s.Hand[s.Naturals()[0]].Suit {
			suited = false
		}
		if c.Rank < domain.Ten {
			royal = false
		}
	}
	distinct := len(s.RanksWithCount(1)) == len(ranks)

	switch {
	case suited && royal && distinct:
		return domain.OutcomeWildRoyalFlush
	case singleNaturalRank(s):
		return domain.OutcomeFiveOfAKind
	case suited && internal.FitsStraightWindow(ranks, wilds):
		return domain.OutcomeStraightFlush
	}
	_, maxCount := s.MaxRankCount()
	switch {
	case maxCount+wilds >= 4:
		return domain.OutcomeFourOfAKind
	case wildFullHouse(s, wilds):
		return domain.OutcomeFullHouse
	case suited:
		return domain.OutcomeFlush
	case internal.FitsStraightWindow(ranks, wilds):
		return domain.OutcomeStraight
	case maxCount+wilds >= 3:
		return domain.OutcomeThreeOfAKind
	}
	return domain.OutcomeNothing
}

// singleNaturalRank reports whether every natural card shares one rank.
func singleNaturalRank(s *internal.Scan) bool {
	_, n := s.MaxRankCount()
	return n == len(s.Naturals())
}

// wildFullHouse checks whether some split of the wilds completes both a
// trip and a pair across two distinct natural ranks.
func wildFullHouse(s *internal.Scan, wilds int) bool {
	var counts []int
	for n := 1; n <= 4; n++ {
		for range s.RanksWithCount(n) {
			counts = append(counts, n)
		}
	}
	for i := 0; i < len(counts); i++ {
		for j := 0; j < len(counts); j++ {
			if i == j {
				continue
			}
			need := (3 - min(counts[i], 3)) + (2 - min(counts[j], 2))
			if need <= wilds && counts[i]+counts[j]+wilds >= 5 {
				return true
			}
		}
	}
	return false
}

func adviseDeucesWild(hand []domain.Card) Advice {
	s := internal.NewWildScan(hand, domain.Two)
	switch s.WildCount() {
	case 4:
		return adviseWith(deucesFourWildRules, s)
	case 3:
		return adviseWith(deucesThreeWildRules, s)
	case 2:
		return adviseWith(deucesTwoWildRules, s)
	case 1:
		return adviseWith(deucesOneWildRules, s)
	default:
		return adviseWith(deucesNoWildRules, s)
	}
}

var deucesFourWildRules = []rule{
	{"Four deuces", func(s *internal.Scan) (internal.Candidate, bool) {
		return internal.Candidate{Hold: s.AllSlots()}, true
	}},
}

var deucesThreeWildRules = []rule{
	{"Pat wild royal flush", patHand(classifyDeucesWild, domain.OutcomeWildRoyalFlush)},
	{"Pat five of a kind", patHand(classifyDeucesWild, domain.OutcomeFiveOfAKind)},
	{"Three deuces", holdDeucesOnly},
}

var deucesTwoWildRules = []rule{
	{"Pat wild royal flush", patHand(classifyDeucesWild, domain.OutcomeWildRoyalFlush)},
	{"Pat five of a kind", patHand(classifyDeucesWild, domain.OutcomeFiveOfAKind)},
	{"Pat straight flush", patHand(classifyDeucesWild, domain.OutcomeStraightFlush)},
	{"Four of a kind", deucesPlusPair},
	{"Four to a wild royal flush", deucesPlusRoyals(2)},
	{"Two deuces", holdDeucesOnly},
}

var deucesOneWildRules = []rule{
	{"Pat wild royal flush", patHand(classifyDeucesWild, domain.OutcomeWildRoyalFlush)},
	{"Pat five of a kind", patHand(classifyDeucesWild, domain.OutcomeFiveOfAKind)},
	{"Pat straight flush", patHand(classifyDeucesWild, domain.OutcomeStraightFlush)},
	{"Four of a kind", deucePlusTrips},
	{"Four to a wild royal flush", deucesPlusRoyals(3)},
	{"Pat full house", patHand(classifyDeucesWild, domain.OutcomeFullHouse)},
	{"Four to a straight flush", deucesPlusStraightFlushDraw(3)},
	{"Three of a kind", deucePlusNaturalPair},
	{"Pat straight", patHand(classifyDeucesWild, domain.OutcomeStraight)},
	{"Pat flush", patHand(classifyDeucesWild, domain.OutcomeFlush)},
	{"Three to a wild royal flush", deucesPlusRoyals(2)},
	{"Three to a straight flush", deucesPlusStraightFlushDraw(2)},
	{"One deuce", holdDeucesOnly},
}

var deucesNoWildRules = []rule{
	{"Pat natural royal flush", patHand(classifyDeucesWild, domain.OutcomeNaturalRoyalFlush)},
	{"Four to a natural royal flush", holdBest(func(s *internal.Scan) [][]int { return s.RoyalDraws(4) })},
	{"Pat straight flush", patHand(classifyDeucesWild, domain.OutcomeStraightFlush)},
	{"Four of a kind", quadWithoutKicker},
	{"Pat full house", patHand(classifyDeucesWild, domain.OutcomeFullHouse)},
	{"Pat flush", patHand(classifyDeucesWild, domain.OutcomeFlush)},
	{"Pat straight", patHand(classifyDeucesWild, domain.OutcomeStraight)},
	{"Three of a kind", naturalTrips},
	{"Four to a straight flush", holdBest(func(s *internal.Scan) [][]int { return s.StraightFlushDraws(4) })},
	{"Three to a natural royal flush", holdBest(func(s *internal.Scan) [][]int { return s.RoyalDraws(3) })},
	{"One pair", onePairOfTwo},
	{"Four to an outside straight", holdBest(func(s *internal.Scan) [][]int { return s.OutsideStraightDraws() })},
	{"Four to an inside straight", holdBest(func(s *internal.Scan) [][]int { return s.InsideStraightDrawsSkippingMiddle() })},
	{"Three to a straight flush", holdBest(func(s *internal.Scan) [][]int { return s.StraightFlushDraws(3) })},
	{"Two to a natural royal flush", holdBest(func(s *internal.Scan) [][]int { return s.RoyalDraws(2) })},
	{"Discard everything", discardAll},
}

func holdDeucesOnly(s *internal.Scan) (internal.Candidate, bool) {
	return internal.Candidate{Hold: s.Wilds()}, true
}

// deucesPlusPair keeps two deuces plus a natural pair, discarding the
// kicker rather than freezing a made four of a kind.
func deucesPlusPair(s *internal.Scan) (internal.Candidate, bool) {
	pairs := s.RanksWithCount(2)
	if len(pairs) == 0 {
		return internal.Candidate{}, false
	}
	return internal.Candidate{
		Hold: append(append([]int(nil), s.Wilds()...), s.SlotsOfRank(pairs[0])...),
	}, true
}

// deucePlusTrips keeps the deuce plus natural trips for four of a kind.
func deucePlusTrips(s *internal.Scan) (internal.Candidate, bool) {
	r, n := s.MaxRankCount()
	if n != 3 {
		return internal.Candidate{}, false
	}
	return internal.Candidate{
		Hold: append(append([]int(nil), s.Wilds()...), s.SlotsOfRank(r)...),
	}, true
}

// deucePlusNaturalPair keeps the deuce plus a natural pair as trips.
func deucePlusNaturalPair(s *internal.Scan) (internal.Candidate, bool) {
	pairs := s.RanksWithCount(2)
	if len(pairs) == 0 {
		return internal.Candidate{}, false
	}
	return internal.Candidate{
		Hold: append(append([]int(nil), s.Wilds()...), s.SlotsOfRank(pairs[0])...),
	}, true
}

// deucesPlusRoyals pads n suited royal naturals with every deuce held.
func deucesPlusRoyals(n int) func(*internal.Scan) (internal.Candidate, bool) {
	return func(s *internal.Scan) (internal.Candidate, bool) {
		cands := s.RoyalDraws(n)
		if len(cands) == 0 {
			return internal.Candidate{}, false
		}
		c := internal.Best(s.Hand, cands)
		c.Hold = append(append([]int(nil), s.Wilds()...), c.Hold...)
		for i, alt := range c.Alternates {
			c.Alternates[i] = append(append([]int(nil), s.Wilds()...), alt...)
		}
		return c, true
	}
}

// deucesPlusStraightFlushDraw pads n suited window naturals with the wilds.
func deucesPlusStraightFlushDraw(n int) func(*internal.Scan) (internal.Candidate, bool) {
	return func(s *internal.Scan) (internal.Candidate, bool) {
		cands := s.StraightFlushDraws(n)
		if len(cands) == 0 {
			return internal.Candidate{}, false
		}
		c := internal.Best(s.Hand, cands)
		c.Hold = append(append([]int(nil), s.Wilds()...), c.Hold...)
		for i, alt := range c.Alternates {
			c.Alternates[i] = append(append([]int(nil), s.Wilds()...), alt...)
		}
		return c, true
	}
}

// onePairOfTwo keeps a single pair; with two pair dealt either pair is an
// equally good hold, so the lower pair comes back as an alternate.
func onePairOfTwo(s *internal.Scan) (internal.Candidate, bool) {
	pairs := s.RanksWithCount(2)
	switch len(pairs) {
	case 0:
		return internal.Candidate{}, false
	case 1:
		return internal.Candidate{Hold: s.SlotsOfRank(pairs[0])}, true
	default:
		return internal.Candidate{
			Hold:       s.SlotsOfRank(pairs[0]),
			Alternates: [][]int{s.SlotsOfRank(pairs[1])},
		}, true
	}
}
