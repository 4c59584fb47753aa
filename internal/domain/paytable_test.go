package domain

import "testing"

func TestPaytablePayout(t *testing.T) {
	table := Paytable{
		OutcomeRoyalFlush:    {250, 500, 750, 1000, 4000},
		OutcomeJacksOrBetter: {1, 2, 3, 4, 5},
	}

	tests := []struct {
		name    string
		outcome Outcome
		bet     int
		want    int64
	}{
		{"one coin", OutcomeJacksOrBetter, 1, 1},
		{"max bet jackpot", OutcomeRoyalFlush, 5, 4000},
		{"bet clamped low", OutcomeJacksOrBetter, 0, 1},
		{"bet clamped high", OutcomeRoyalFlush, 9, 4000},
		{"absent outcome pays zero", OutcomeTwoPair, 5, 0},
		{"nothing pays zero", OutcomeNothing, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.Payout(tt.outcome, tt.bet); got != tt.want {
				t.Errorf("Payout(%s, %d) = %d, want %d", tt.outcome, tt.bet, got, tt.want)
			}
		})
	}
}

func TestHoldMaskCount(t *testing.T) {
	var m HoldMask
	if m.Count() != 0 {
		t.Errorf("empty mask count = %d", m.Count())
	}
	m[0], m[3] = true, true
	if m.Count() != 2 {
		t.Errorf("count = %d, want 2", m.Count())
	}
	if HoldAll().Count() != HandSize {
		t.Errorf("HoldAll count = %d, want %d", HoldAll().Count(), HandSize)
	}
}
