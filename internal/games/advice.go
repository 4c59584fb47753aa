package games

import (
	"videopoker/internal/domain"
	"videopoker/internal/games/internal"
)

// Advice is a variant's recommended hold for a dealt hand. Mask is the
// canonical hold; Alternates are holds the strategy values identically, any
// of which counts as playing correctly.
type Advice struct {
	Mask       domain.HoldMask
	Alternates []domain.HoldMask
	Rationale  string
}

// IsOptimal reports whether the player's hold matches the advice or one of
// its alternates.
func (a Advice) IsOptimal(mask domain.HoldMask) bool {
	if mask == a.Mask {
		return true
	}
	for _, alt := range a.Alternates {
		if mask == alt {
			return true
		}
	}
	return false
}

// rule is one line of a strategy chart: a pattern matcher over the scanned
// hand plus the reason shown to the player when it decides the hold.
type rule struct {
	rationale string
	match     func(s *internal.Scan) (internal.Candidate, bool)
}

// adviseWith walks an ordered rule table top to bottom and takes the first
// match. Tables end with a catch-all entry, so the zero-advice fallthrough
// only guards against a malformed table.
func adviseWith(rules []rule, s *internal.Scan) Advice {
	for _, r := range rules {
		c, ok := r.match(s)
		if !ok {
			continue
		}
		adv := Advice{Mask: internal.MaskOf(c.Hold...), Rationale: r.rationale}
		for _, alt := range c.Alternates {
			adv.Alternates = append(adv.Alternates, internal.MaskOf(alt...))
		}
		return adv
	}
	return Advice{Rationale: "Discard everything"}
}

// patHand matches when the whole hand already classifies as one of the given
// outcomes; the hold is all five cards.
func patHand(classify func([]domain.Card) domain.Outcome, outcomes ...domain.Outcome) func(*internal.Scan) (internal.Candidate, bool) {
	return func(s *internal.Scan) (internal.Candidate, bool) {
		got := classify(s.Hand)
		for _, o := range outcomes {
			if got == o {
				return internal.Candidate{Hold: s.AllSlots()}, true
			}
		}
		return internal.Candidate{}, false
	}
}

// holdBest matches when the finder yields any candidate slot sets and
// resolves ties via internal.Best.
func holdBest(find func(*internal.Scan) [][]int) func(*internal.Scan) (internal.Candidate, bool) {
	return func(s *internal.Scan) (internal.Candidate, bool) {
		cands := find(s)
		if len(cands) == 0 {
			return internal.Candidate{}, false
		}
		return internal.Best(s.Hand, cands), true
	}
}

// discardAll always matches with an empty hold. Every table's last line.
func discardAll(*internal.Scan) (internal.Candidate, bool) {
	return internal.Candidate{}, true
}

// suitedHighPairs finds every suited pair of high cards (J..A).
func suitedHighPairs(s *internal.Scan) [][]int {
	var cands [][]int
	for su := domain.Clubs; su <= domain.Spades; su++ {
		var highs []int
		for _, i := range s.SuitSlots(su) {
			if s.Hand[i].Rank.IsHigh() {
				highs = append(highs, i)
			}
		}
		for a := 0; a < len(highs); a++ {
			for b := a + 1; b < len(highs); b++ {
				cands = append(cands, []int{highs[a], highs[b]})
			}
		}
	}
	return cands
}

// suitedTenAndFace finds a suited 10 next to a J, Q or K. A suited 10-A is
// deliberately excluded; the charts never keep it.
func suitedTenAndFace(s *internal.Scan) [][]int {
	var cands [][]int
	for su := domain.Clubs; su <= domain.Spades; su++ {
		ten, face := -1, -1
		for _, i := range s.SuitSlots(su) {
			switch r := s.Hand[i].Rank; {
			case r == domain.Ten:
				ten = i
			case r >= domain.Jack && r <= domain.King:
				face = i
			}
		}
		if ten >= 0 && face >= 0 {
			cands = append(cands, []int{ten, face})
		}
	}
	return cands
}

// lowestTwoHighCards matches two or more unsuited high cards and keeps the
// two lowest, the chart's standard resolution.
func lowestTwoHighCards(s *internal.Scan) (internal.Candidate, bool) {
	highs := s.HighSlots()
	if len(highs) < 2 {
		return internal.Candidate{}, false
	}
	return internal.Candidate{Hold: highs[:2]}, true
}

// oneHighCard matches a single high card. Tables place it below the
// two-high-card lines, so at most one high card survives to here.
func oneHighCard(s *internal.Scan) (internal.Candidate, bool) {
	highs := s.HighSlots()
	if len(highs) == 0 {
		return internal.Candidate{}, false
	}
	return internal.Candidate{Hold: highs[:1]}, true
}

// pairOfKind matches exactly one natural pair, filtered on whether it pays.
func pairOfKind(high bool) func(*internal.Scan) (internal.Candidate, bool) {
	return func(s *internal.Scan) (internal.Candidate, bool) {
		pairs := s.RanksWithCount(2)
		if len(pairs) != 1 || pairs[0].IsHigh() != high {
			return internal.Candidate{}, false
		}
		return internal.Candidate{Hold: s.SlotsOfRank(pairs[0])}, true
	}
}

// bothPairs matches a two-pair hand and keeps both pairs.
func bothPairs(s *internal.Scan) (internal.Candidate, bool) {
	pairs := s.RanksWithCount(2)
	if len(pairs) != 2 {
		return internal.Candidate{}, false
	}
	return internal.Candidate{
		Hold: append(append([]int(nil), s.SlotsOfRank(pairs[0])...), s.SlotsOfRank(pairs[1])...),
	}, true
}

// naturalTrips matches three of a kind and keeps the trips.
func naturalTrips(s *internal.Scan) (internal.Candidate, bool) {
	r, n := s.MaxRankCount()
	if n != 3 {
		return internal.Candidate{}, false
	}
	return internal.Candidate{Hold: s.SlotsOfRank(r)}, true
}
