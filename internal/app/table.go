// Package app runs the round state machine: one Table per seat, stepping
// bet -> deal -> draw -> show and emitting events for dispatch.
package app

import (
	"math/rand"
	"time"

	"videopoker/internal/domain"
	"videopoker/internal/games"
	"videopoker/internal/ports"
)

// Phase is where a table sits in its round.
type Phase string

const (
	PhaseBet  Phase = "bet"
	PhaseDeal Phase = "deal"
	PhaseDraw Phase = "draw"
	PhaseShow Phase = "show"
)

// reshuffleThreshold forces a fresh shuffled deck before any deal that could
// run out of replacement cards mid-round.
const reshuffleThreshold = 10

// Result is the settled outcome of the last completed round.
type Result struct {
	Outcome    domain.Outcome
	Payout     int64
	PlayedBest bool
	Advice     games.Advice
}

// Table is a single seat at a single machine. Out-of-turn operations are
// silent no-ops returning false; structurally impossible states panic.
type Table struct {
	Spec games.GameSpec

	Phase   Phase
	Credits int64
	Bet     int
	Hand    []domain.Card
	Holds   domain.HoldMask
	Last    *Result
	Acc     ports.Accuracy

	rng  *rand.Rand
	deck []domain.Card
}

// NewTable seats a player at the given variant with provided rng or a
// time-seeded default. The table opens in the bet phase at minimum bet with
// no credits inserted.
func NewTable(spec games.GameSpec, rng *rand.Rand) *Table {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Table{
		Spec:  spec,
		Phase: PhaseBet,
		Bet:   domain.MinBet,
		rng:   rng,
	}
}

// Insert adds credits to the meter. Any phase; non-positive amounts are
// rejected.
func (t *Table) Insert(amount int64) bool {
	if amount <= 0 {
		return false
	}
	t.Credits += amount
	return true
}

// CashOut empties the credit meter and returns what was on it. Refused
// mid-round.
func (t *Table) CashOut() (int64, bool) {
	if t.Phase != PhaseBet && t.Phase != PhaseShow {
		return 0, false
	}
	out := t.Credits
	t.Credits = 0
	return out, true
}

// SetBet changes the bet level between rounds, clamped to [MinBet, MaxBet].
func (t *Table) SetBet(bet int) bool {
	if t.Phase != PhaseBet && t.Phase != PhaseShow {
		return false
	}
	if bet < domain.MinBet {
		bet = domain.MinBet
	}
	if bet > domain.MaxBet {
		bet = domain.MaxBet
	}
	t.Bet = bet
	return true
}

// Deal debits the bet and deals five cards from the running deck, shuffling
// a fresh deck first when too few cards remain to finish the round. Refused
// mid-round or when the meter cannot cover the bet.
func (t *Table) Deal() ([]Event, bool) {
	if t.Phase != PhaseBet && t.Phase != PhaseShow {
		return nil, false
	}
	if t.Credits < int64(t.Bet) {
		return nil, false
	}
	t.Credits -= int64(t.Bet)

	if len(t.deck) < reshuffleThreshold {
		t.deck = domain.NewDeck()
		domain.ShuffleDeck(t.deck, t.rng)
	}
	t.Hand = append([]domain.Card(nil), t.deck[:domain.HandSize]...)
	t.deck = t.deck[domain.HandSize:]
	t.Holds = domain.HoldMask{}
	t.Last = nil
	t.Phase = PhaseDeal

	return []Event{{
		Kind: EventHandDealt,
		Payload: HandDealtPayload{
			Hand:    t.Hand,
			Bet:     t.Bet,
			Credits: t.Credits,
			DealtAs: t.Spec.Classify(t.Hand),
			GameID:  t.Spec.ID,
		},
	}}, true
}

// ToggleHold flips the hold flag on one card slot. Slots outside 0..4 are a
// programming error and panic; toggling outside a live round is a no-op.
func (t *Table) ToggleHold(slot int) bool {
	if slot < 0 || slot >= domain.HandSize {
		panic("app: hold slot out of range")
	}
	if t.Phase != PhaseDeal && t.Phase != PhaseDraw {
		return false
	}
	t.Holds[slot] = !t.Holds[slot]
	t.Phase = PhaseDraw
	return true
}

// Draw grades the player's hold against the advisor, replaces every unheld
// slot in place from the deck, settles the payout and closes the round.
func (t *Table) Draw() ([]Event, bool) {
	if t.Phase != PhaseDeal && t.Phase != PhaseDraw {
		return nil, false
	}

	advice := t.Spec.Advise(t.Hand)
	best := advice.IsOptimal(t.Holds)
	t.Acc.Total++
	if best {
		t.Acc.Correct++
	}

	for i := range t.Hand {
		if t.Holds[i] {
			continue
		}
		t.Hand[i] = t.deck[0]
		t.deck = t.deck[1:]
	}

	outcome := t.Spec.Classify(t.Hand)
	payout := t.Spec.Paytable.Payout(outcome, t.Bet)
	t.Credits += payout
	t.Last = &Result{Outcome: outcome, Payout: payout, PlayedBest: best, Advice: advice}
	t.Phase = PhaseShow

	return []Event{{
		Kind: EventRoundSettled,
		Payload: RoundSettledPayload{
			Hand:       t.Hand,
			Held:       t.Holds,
			Outcome:    outcome,
			Payout:     payout,
			Credits:    t.Credits,
			PlayedBest: best,
			BestMask:   advice.Mask,
			Rationale:  advice.Rationale,
		},
	}}, true
}
