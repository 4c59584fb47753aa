package app

import "videopoker/internal/domain"

// EventKind identifies emitted round events for Nakama dispatch.
type EventKind string

const (
	EventHandDealt    EventKind = "hand_dealt"
	EventRoundSettled EventKind = "round_settled"
)

// Event is a round event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

// HandDealtPayload carries the fresh hand plus what it is already worth if
// held as dealt.
type HandDealtPayload struct {
	Hand    []domain.Card
	Bet     int
	Credits int64
	DealtAs domain.Outcome
	GameID  string
}

// RoundSettledPayload reports the finished round: the final hand, its
// outcome and payout, and whether the player's hold matched the advisor.
type RoundSettledPayload struct {
	Hand       []domain.Card
	Held       domain.HoldMask
	Outcome    domain.Outcome
	Payout     int64
	Credits    int64
	PlayedBest bool
	BestMask   domain.HoldMask
	Rationale  string
}
