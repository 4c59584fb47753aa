package domain

import "sort"

// RankCounts groups a set of cards by rank.
func RankCounts(cards []Card) map[Rank]int {
	counts := make(map[Rank]int, len(cards))
	for _, c := range cards {
		counts[c.Rank]++
	}
	return counts
}

// CountShape returns the multiset of rank-group sizes in descending order,
// e.g. [4 1] for quads, [3 2] for a full house, [2 2 1] for two pair.
func CountShape(cards []Card) []int {
	counts := RankCounts(cards)
	shape := make([]int, 0, len(counts))
	for _, n := range counts {
		shape = append(shape, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(shape)))
	return shape
}

// IsFlush reports whether all five cards share a suit.
func IsFlush(hand []Card) bool {
	RequireHand(hand)
	for _, c := range hand[1:] {
		if c.Suit != hand[0].Suit {
			return false
		}
	}
	return true
}

// IsStraight reports whether the hand is five distinct ranks in a row.
// The wheel (A-2-3-4-5) counts even though the ace is otherwise high.
func IsStraight(hand []Card) bool {
	RequireHand(hand)
	ranks := make([]int, HandSize)
	for i, c := range hand {
		ranks[i] = int(c.Rank)
	}
	sort.Ints(ranks)
	for i := 1; i < len(ranks); i++ {
		if ranks[i] == ranks[i-1] {
			return false
		}
	}
	if ranks[4]-ranks[0] == 4 {
		return true
	}
	// Wheel: A plays low under 2-3-4-5.
	return ranks[0] == int(Two) && ranks[1] == int(Three) &&
		ranks[2] == int(Four) && ranks[3] == int(Five) && ranks[4] == int(Ace)
}

// IsRoyal reports whether the hand is a flush with ranks exactly 10-J-Q-K-A.
func IsRoyal(hand []Card) bool {
	if !IsFlush(hand) {
		return false
	}
	counts := RankCounts(hand)
	for _, r := range []Rank{Ten, Jack, Queen, King, Ace} {
		if counts[r] != 1 {
			return false
		}
	}
	return true
}

// HighCardCount returns how many cards are J, Q, K or A.
func HighCardCount(cards []Card) int {
	n := 0
	for _, c := range cards {
		if c.Rank.IsHigh() {
			n++
		}
	}
	return n
}
