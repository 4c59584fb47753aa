// Package internal holds the pattern-matching helpers behind the strategy
// advisors: hand scans, draw finders and candidate tie-breaking. Everything
// here is pure over explicit slot subsets of a fixed 5-card hand.
package internal

import (
	"sort"

	"videopoker/internal/domain"
)

// Scan precomputes rank and suit groupings of a hand once so rule tables can
// match patterns cheaply. Wild slots are tracked separately; for variants
// without wild cards every slot is natural.
type Scan struct {
	Hand []domain.Card

	wilds    []int
	naturals []int
	byRank   map[domain.Rank][]int
	bySuit   map[domain.Suit][]int
}

// NewScan builds a scan with no wild rank.
func NewScan(hand []domain.Card) *Scan {
	return newScan(hand, 0)
}

// NewWildScan builds a scan treating every card of the given rank as wild.
// Wild slots are excluded from rank/suit groupings.
func NewWildScan(hand []domain.Card, wild domain.Rank) *Scan {
	return newScan(hand, wild)
}

func newScan(hand []domain.Card, wild domain.Rank) *Scan {
	domain.RequireHand(hand)
	s := &Scan{
		Hand:   hand,
		byRank: make(map[domain.Rank][]int),
		bySuit: make(map[domain.Suit][]int),
	}
	for i, c := range hand {
		if wild != 0 && c.Rank == wild {
			s.wilds = append(s.wilds, i)
			continue
		}
		s.naturals = append(s.naturals, i)
		s.byRank[c.Rank] = append(s.byRank[c.Rank], i)
		s.bySuit[c.Suit] = append(s.bySuit[c.Suit], i)
	}
	return s
}

// Wilds returns the wild card slots.
func (s *Scan) Wilds() []int { return s.wilds }

// WildCount returns the number of wild cards held.
func (s *Scan) WildCount() int { return len(s.wilds) }

// Naturals returns the non-wild slots.
func (s *Scan) Naturals() []int { return s.naturals }

// AllSlots returns every slot 0..4.
func (s *Scan) AllSlots() []int { return []int{0, 1, 2, 3, 4} }

// SlotsOfRank returns the natural slots holding the given rank.
func (s *Scan) SlotsOfRank(r domain.Rank) []int { return s.byRank[r] }

// SuitSlots returns the natural slots of the given suit.
func (s *Scan) SuitSlots(su domain.Suit) []int { return s.bySuit[su] }

// RanksWithCount returns the natural ranks appearing exactly n times,
// highest rank first.
func (s *Scan) RanksWithCount(n int) []domain.Rank {
	var ranks []domain.Rank
	for r, slots := range s.byRank {
		if len(slots) == n {
			ranks = append(ranks, r)
		}
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })
	return ranks
}

// MaxRankCount returns the most-repeated natural rank and its count.
// Equal counts resolve to the higher rank.
func (s *Scan) MaxRankCount() (domain.Rank, int) {
	var best domain.Rank
	bestN := 0
	for r, slots := range s.byRank {
		if len(slots) > bestN || (len(slots) == bestN && r > best) {
			best, bestN = r, len(slots)
		}
	}
	return best, bestN
}

// HighSlots returns the natural slots holding J, Q, K or A, ordered by
// ascending rank.
func (s *Scan) HighSlots() []int {
	var slots []int
	for _, i := range s.naturals {
		if s.Hand[i].Rank.IsHigh() {
			slots = append(slots, i)
		}
	}
	sort.Slice(slots, func(a, b int) bool {
		return s.Hand[slots[a]].Rank < s.Hand[slots[b]].Rank
	})
	return slots
}

// MaskOf builds a hold mask from hand slots.
func MaskOf(slots ...int) domain.HoldMask {
	var m domain.HoldMask
	for _, i := range slots {
		m[i] = true
	}
	return m
}

// Candidate is a rule match: the canonical slots to hold and any
// equally-ranked alternate holds.
type Candidate struct {
	Hold       []int
	Alternates [][]int
}

// Best resolves several structurally equal candidate slot sets to one
// canonical choice: more high cards wins, then higher rank sum. Candidates
// that tie exactly with the winner come back as alternates so accuracy
// scoring can accept any of them.
func Best(hand []domain.Card, cands [][]int) Candidate {
	if len(cands) == 0 {
		return Candidate{}
	}
	type scored struct {
		slots []int
		highs int
		sum   int
	}
	seen := make(map[string]bool, len(cands))
	var all []scored
	for _, slots := range cands {
		key := slotKey(slots)
		if seen[key] {
			continue
		}
		seen[key] = true
		highs, sum := 0, 0
		for _, i := range slots {
			if hand[i].Rank.IsHigh() {
				highs++
			}
			sum += int(hand[i].Rank)
		}
		all = append(all, scored{slots: slots, highs: highs, sum: sum})
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].highs != all[j].highs {
			return all[i].highs > all[j].highs
		}
		return all[i].sum > all[j].sum
	})
	c := Candidate{Hold: all[0].slots}
	for _, sc := range all[1:] {
		if sc.highs == all[0].highs && sc.sum == all[0].sum {
			c.Alternates = append(c.Alternates, sc.slots)
		}
	}
	return c
}

func slotKey(slots []int) string {
	sorted := append([]int(nil), slots...)
	sort.Ints(sorted)
	key := make([]byte, len(sorted))
	for i, s := range sorted {
		key[i] = byte('0' + s)
	}
	return string(key)
}
