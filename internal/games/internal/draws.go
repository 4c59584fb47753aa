package internal

import (
	"sort"

	"videopoker/internal/domain"
)

var royalRanks = map[domain.Rank]bool{
	domain.Ten: true, domain.Jack: true, domain.Queen: true,
	domain.King: true, domain.Ace: true,
}

// windows enumerates every 5-rank straight window as integer rank values,
// lowest first. The wheel window carries the ace as its low end.
func windows() [][5]int {
	out := make([][5]int, 0, 10)
	out = append(out, [5]int{int(domain.Ace), int(domain.Two), int(domain.Three), int(domain.Four), int(domain.Five)})
	for lo := int(domain.Two); lo+4 <= int(domain.Ace); lo++ {
		out = append(out, [5]int{lo, lo + 1, lo + 2, lo + 3, lo + 4})
	}
	return out
}

// FitsStraightWindow reports whether the given natural ranks, which must be
// distinct, sit inside a single straight window with at most wilds ranks
// missing. This is the straight-with-wilds acceptance test.
func FitsStraightWindow(ranks []domain.Rank, wilds int) bool {
	if hasDuplicate(ranks) {
		return false
	}
	for _, w := range windows() {
		inside := 0
		for _, r := range ranks {
			for _, v := range w {
				if int(r) == v {
					inside++
					break
				}
			}
		}
		if inside == len(ranks) && 5-inside <= wilds {
			return true
		}
	}
	return false
}

func hasDuplicate(ranks []domain.Rank) bool {
	seen := make(map[domain.Rank]bool, len(ranks))
	for _, r := range ranks {
		if seen[r] {
			return true
		}
		seen[r] = true
	}
	return false
}

// RoyalDraws returns every suited slot set of exactly n distinct royal ranks
// (10..A). Callers pad with wild slots as needed.
func (s *Scan) RoyalDraws(n int) [][]int {
	var cands [][]int
	for su := domain.Clubs; su <= domain.Spades; su++ {
		var slots []int
		for _, i := range s.bySuit[su] {
			if royalRanks[s.Hand[i].Rank] {
				slots = append(slots, i)
			}
		}
		if len(slots) == n {
			cands = append(cands, slots)
		}
	}
	return cands
}

// StraightFlushDraws returns suited slot sets of exactly n distinct ranks
// that fit inside one straight window.
func (s *Scan) StraightFlushDraws(n int) [][]int {
	var cands [][]int
	for su := domain.Clubs; su <= domain.Spades; su++ {
		suited := s.bySuit[su]
		if len(suited) < n {
			continue
		}
		for _, subset := range subsets(suited, n) {
			ranks := make([]domain.Rank, len(subset))
			for i, slot := range subset {
				ranks[i] = s.Hand[slot].Rank
			}
			if FitsStraightWindow(ranks, 5-n) {
				cands = append(cands, subset)
			}
		}
	}
	return cands
}

// FlushDraws returns the slot sets of suits holding exactly n cards.
func (s *Scan) FlushDraws(n int) [][]int {
	var cands [][]int
	for su := domain.Clubs; su <= domain.Spades; su++ {
		if len(s.bySuit[su]) == n {
			cands = append(cands, s.bySuit[su])
		}
	}
	return cands
}

// OutsideStraightDraws returns 4-card holds completed by a rank at either
// end (two completing ranks).
func (s *Scan) OutsideStraightDraws() [][]int {
	return s.straightDraws4(2, false)
}

// InsideStraightDraws returns 4-card holds completed by exactly one rank.
func (s *Scan) InsideStraightDraws() [][]int {
	return s.straightDraws4(1, false)
}

// InsideStraightDrawsSkippingMiddle is the wild-deuce table's finder. It
// drops windows whose single missing rank sits dead-center, so 5-6-8-9 is
// never offered while 10-J-Q-A is.
// TODO: confirm the middle-gap skip against the published chart before
// generalizing this into InsideStraightDraws.
func (s *Scan) InsideStraightDrawsSkippingMiddle() [][]int {
	return s.straightDraws4(1, true)
}

func (s *Scan) straightDraws4(wantCompletions int, skipMiddleGap bool) [][]int {
	var cands [][]int
	for _, subset := range subsets(s.naturals, 4) {
		ranks := make([]domain.Rank, 4)
		for i, slot := range subset {
			ranks[i] = s.Hand[slot].Rank
		}
		if hasDuplicate(ranks) {
			continue
		}
		completions := straightCompletions(ranks)
		if len(completions) != wantCompletions {
			continue
		}
		if skipMiddleGap && wantCompletions == 1 && isMiddleGap(ranks, completions[0]) {
			continue
		}
		cands = append(cands, subset)
	}
	return cands
}

// straightCompletions returns every rank that turns the four given ranks
// into a straight (wheel included).
func straightCompletions(ranks []domain.Rank) []domain.Rank {
	var out []domain.Rank
	for c := domain.Two; c <= domain.Ace; c++ {
		if containsRank(ranks, c) {
			continue
		}
		if FitsStraightWindow(append(append([]domain.Rank(nil), ranks...), c), 0) {
			out = append(out, c)
		}
	}
	return out
}

// isMiddleGap reports whether the completing rank is the middle card of the
// straight it would form.
func isMiddleGap(ranks []domain.Rank, completion domain.Rank) bool {
	values := make([]int, 0, 5)
	wheel := true
	all := append(append([]domain.Rank(nil), ranks...), completion)
	for _, r := range all {
		if r != domain.Ace && r > domain.Five {
			wheel = false
		}
	}
	for _, r := range all {
		v := int(r)
		if wheel && r == domain.Ace {
			v = 1
		}
		values = append(values, v)
	}
	sort.Ints(values)
	middle := values[2]
	if wheel && completion == domain.Ace {
		return middle == 1
	}
	return middle == int(completion)
}

func containsRank(ranks []domain.Rank, r domain.Rank) bool {
	for _, x := range ranks {
		if x == r {
			return true
		}
	}
	return false
}

// subsets enumerates every subset of the given size, preserving slot order.
func subsets(slots []int, size int) [][]int {
	if size > len(slots) {
		return nil
	}
	if size == len(slots) {
		return [][]int{append([]int(nil), slots...)}
	}
	var out [][]int
	var walk func(start int, cur []int)
	walk = func(start int, cur []int) {
		if len(cur) == size {
			out = append(out, append([]int(nil), cur...))
			return
		}
		for i := start; i < len(slots); i++ {
			walk(i+1, append(cur, slots[i]))
		}
	}
	walk(0, nil)
	return out
}
