package app

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videopoker/internal/domain"
	"videopoker/internal/games"
)

func newTestTable(t *testing.T, credits int64) *Table {
	t.Helper()
	table := NewTable(games.Lookup("jacks-or-better"), rand.New(rand.NewSource(42)))
	if credits > 0 {
		require.True(t, table.Insert(credits))
	}
	return table
}

func TestNewTableOpensInBetPhase(t *testing.T) {
	table := newTestTable(t, 0)
	assert.Equal(t, PhaseBet, table.Phase)
	assert.Equal(t, domain.MinBet, table.Bet)
	assert.Zero(t, table.Credits)
}

func TestInsertRejectsNonPositiveAmounts(t *testing.T) {
	table := newTestTable(t, 0)
	assert.False(t, table.Insert(0))
	assert.False(t, table.Insert(-5))
	assert.True(t, table.Insert(10))
	assert.Equal(t, int64(10), table.Credits)
}

func TestSetBetClampsToRange(t *testing.T) {
	table := newTestTable(t, 100)
	require.True(t, table.SetBet(9))
	assert.Equal(t, domain.MaxBet, table.Bet)
	require.True(t, table.SetBet(0))
	assert.Equal(t, domain.MinBet, table.Bet)
}

func TestDealDebitsBetAndDealsFiveCards(t *testing.T) {
	table := newTestTable(t, 100)
	require.True(t, table.SetBet(5))

	events, ok := table.Deal()
	require.True(t, ok)
	assert.Equal(t, int64(95), table.Credits)
	assert.Len(t, table.Hand, domain.HandSize)
	assert.Equal(t, PhaseDeal, table.Phase)
	assert.Zero(t, table.Holds.Count())

	require.Len(t, events, 1)
	assert.Equal(t, EventHandDealt, events[0].Kind)
	payload := events[0].Payload.(HandDealtPayload)
	assert.Equal(t, 5, payload.Bet)
	assert.Equal(t, "jacks-or-better", payload.GameID)
}

func TestDealRefusedMidRoundAndWithoutCredits(t *testing.T) {
	table := newTestTable(t, 100)
	_, ok := table.Deal()
	require.True(t, ok)
	_, ok = table.Deal()
	assert.False(t, ok, "deal must be refused with a live hand")

	broke := newTestTable(t, 0)
	_, ok = broke.Deal()
	assert.False(t, ok)
	assert.Equal(t, PhaseBet, broke.Phase)
}

func TestSetBetAndCashOutRefusedMidRound(t *testing.T) {
	table := newTestTable(t, 100)
	_, ok := table.Deal()
	require.True(t, ok)

	assert.False(t, table.SetBet(3))
	_, ok = table.CashOut()
	assert.False(t, ok)
}

func TestToggleHold(t *testing.T) {
	table := newTestTable(t, 100)

	// No live hand yet.
	assert.False(t, table.ToggleHold(0))

	_, ok := table.Deal()
	require.True(t, ok)
	require.True(t, table.ToggleHold(2))
	assert.True(t, table.Holds[2])
	assert.Equal(t, PhaseDraw, table.Phase)

	require.True(t, table.ToggleHold(2))
	assert.False(t, table.Holds[2])
}

func TestToggleHoldPanicsOnBadSlot(t *testing.T) {
	table := newTestTable(t, 100)
	assert.Panics(t, func() { table.ToggleHold(5) })
	assert.Panics(t, func() { table.ToggleHold(-1) })
}

func TestDrawWithoutDealRefused(t *testing.T) {
	table := newTestTable(t, 100)
	_, ok := table.Draw()
	assert.False(t, ok)
}

func TestDrawKeepsHeldCardsInPlace(t *testing.T) {
	table := newTestTable(t, 100)
	_, ok := table.Deal()
	require.True(t, ok)

	dealt := append([]domain.Card(nil), table.Hand...)
	for i := 0; i < domain.HandSize; i++ {
		require.True(t, table.ToggleHold(i))
	}

	events, ok := table.Draw()
	require.True(t, ok)
	assert.Equal(t, dealt, table.Hand, "held cards must not move")
	assert.Equal(t, PhaseShow, table.Phase)
	require.NotNil(t, table.Last)

	require.Len(t, events, 1)
	assert.Equal(t, EventRoundSettled, events[0].Kind)
}

func TestDrawReplacesEveryUnheldCard(t *testing.T) {
	table := newTestTable(t, 100)
	_, ok := table.Deal()
	require.True(t, ok)

	dealt := append([]domain.Card(nil), table.Hand...)
	_, ok = table.Draw()
	require.True(t, ok)

	// Replacements come from the same single deck, so none of the dealt
	// cards can reappear.
	for _, old := range dealt {
		assert.NotContains(t, table.Hand, old)
	}
}

func TestDrawSettlesPayoutAndAccuracy(t *testing.T) {
	table := newTestTable(t, 100)
	_, ok := table.Deal()
	require.True(t, ok)

	advice := table.Spec.Advise(table.Hand)
	table.Holds = advice.Mask

	before := table.Credits
	_, ok = table.Draw()
	require.True(t, ok)

	require.NotNil(t, table.Last)
	assert.True(t, table.Last.PlayedBest)
	assert.Equal(t, int64(1), table.Acc.Correct)
	assert.Equal(t, int64(1), table.Acc.Total)
	assert.Equal(t, before+table.Last.Payout, table.Credits)

	// A deliberately suboptimal hold counts the round but not the hit.
	_, ok = table.Deal()
	require.True(t, ok)
	table.Holds = offAdvice(table.Spec.Advise(table.Hand))
	_, ok = table.Draw()
	require.True(t, ok)
	assert.False(t, table.Last.PlayedBest)
	assert.Equal(t, int64(1), table.Acc.Correct)
	assert.Equal(t, int64(2), table.Acc.Total)
}

// offAdvice returns some hold mask the advice does not accept.
func offAdvice(advice games.Advice) domain.HoldMask {
	for bits := 0; bits < 1<<domain.HandSize; bits++ {
		var m domain.HoldMask
		for i := 0; i < domain.HandSize; i++ {
			m[i] = bits&(1<<i) != 0
		}
		if !advice.IsOptimal(m) {
			return m
		}
	}
	panic("advice accepts every mask")
}

func TestDeckReshufflesAcrossManyRounds(t *testing.T) {
	table := newTestTable(t, 1000)
	for round := 0; round < 20; round++ {
		_, ok := table.Deal()
		require.Truef(t, ok, "round %d", round)
		assert.Len(t, table.Hand, domain.HandSize)

		seen := make(map[domain.Card]bool, domain.HandSize)
		for _, c := range table.Hand {
			assert.Falsef(t, seen[c], "duplicate card in round %d", round)
			seen[c] = true
		}

		_, ok = table.Draw()
		require.Truef(t, ok, "round %d", round)
	}
}

func TestCashOutEmptiesMeter(t *testing.T) {
	table := newTestTable(t, 75)
	credits, ok := table.CashOut()
	require.True(t, ok)
	assert.Equal(t, int64(75), credits)
	assert.Zero(t, table.Credits)
}
