package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"videopoker/internal/app"
	"videopoker/internal/config"
	"videopoker/internal/games"
	"videopoker/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	MatchLabelKey_Open = "open" // Key for the open seat flag in the match label
	MatchLabelKey_Game = "game" // Key for the variant id in the match label
)

// MatchState holds the authoritative runtime state for one single-seat table.
type MatchState struct {
	GameID     string `json:"game_id"`     // Variant this table runs
	Seat       string `json:"seat"`        // User ID of the seated player, empty when vacant
	Tick       int64  `json:"tick"`        // Current match tick
	EmptySince int64  `json:"empty_since"` // Tick when the seat last became vacant

	Presence runtime.Presence    `json:"-"` // Seated player's presence for targeted messaging
	Table    *app.Table          `json:"-"` // Round state machine
	Bank     ports.Bank          `json:"-"` // Interface to the Nakama wallet
	Accuracy ports.AccuracyStore `json:"-"` // Persisted advisor accuracy
}

// Client message payloads.
type setBetRequest struct {
	Bet int `json:"bet"`
}

type toggleHoldRequest struct {
	Slot int `json:"slot"`
}

type insertCreditsRequest struct {
	Amount int64 `json:"amount"`
}

// Server event payloads.
type tableStateMsg struct {
	GameID  string     `json:"game_id"`
	Phase   string     `json:"phase"`
	Credits int64      `json:"credits"`
	Bet     int        `json:"bet"`
	Hand    []wireCard `json:"hand,omitempty"`
	Holds   [5]bool    `json:"holds"`
	Correct int64      `json:"correct"`
	Total   int64      `json:"total"`
}

type handDealtMsg struct {
	Hand    []wireCard `json:"hand"`
	Bet     int        `json:"bet"`
	Credits int64      `json:"credits"`
	DealtAs string     `json:"dealt_as"`
}

type roundSettledMsg struct {
	Hand       []wireCard `json:"hand"`
	Held       [5]bool    `json:"held"`
	Outcome    string     `json:"outcome"`
	Payout     int64      `json:"payout"`
	Credits    int64      `json:"credits"`
	PlayedBest bool       `json:"played_best"`
	BestMask   [5]bool    `json:"best_mask"`
	Rationale  string     `json:"rationale"`
}

type errorMsg struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewMatch is the factory function registered with Nakama.
func NewMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
	return &matchHandler{}, nil
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing table handler.")

	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}

	gameID := config.GetDefaultGameID()
	if raw, ok := params["game_id"].(string); ok && raw != "" {
		gameID = raw
	}
	if !knownGameID(gameID) {
		logger.Warn("MatchInit: Unknown game id %q, falling back to %s", gameID, config.GetDefaultGameID())
		gameID = config.GetDefaultGameID()
	}

	state := &MatchState{
		GameID:   gameID,
		Table:    app.NewTable(games.Lookup(gameID), nil),
		Bank:     NewNakamaBankAdapter(nk),
		Accuracy: NewNakamaAccuracyAdapter(nk),
	}

	label, err := mh.marshalLabel(state)
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, label
}

func knownGameID(id string) bool {
	for _, known := range games.IDs() {
		if known == id {
			return true
		}
	}
	return false
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	if matchState.Seat != "" && matchState.Seat != presence.GetUserId() {
		return state, false, "Table occupied"
	}
	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Seat = p.GetUserId()
		matchState.Presence = p
		matchState.EmptySince = 0

		acc, err := matchState.Accuracy.Load(ctx, p.GetUserId(), matchState.GameID)
		if err != nil {
			logger.Warn("MatchJoin: Could not load accuracy for %s: %v", p.GetUserId(), err)
		} else {
			matchState.Table.Acc = acc
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.sendTableState(matchState, dispatcher, logger)

	return matchState
}

// MatchLeave cashes the seat out back to the wallet and shuts the table down.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		if matchState.Seat != p.GetUserId() {
			continue
		}
		mh.settleSeat(ctx, matchState, logger)
		matchState.Seat = ""
		matchState.Presence = nil
		matchState.EmptySince = matchState.Tick
	}

	logger.Info("MatchLeave: Seat vacated, terminating table.")
	return nil
}

// settleSeat returns on-meter credits to the wallet and persists accuracy.
func (mh *matchHandler) settleSeat(ctx context.Context, state *MatchState, logger runtime.Logger) {
	userID := state.Seat
	if userID == "" {
		return
	}

	if credits, ok := state.Table.CashOut(); ok && credits > 0 {
		metadata := map[string]interface{}{"reason": "table_cash_out", "game_id": state.GameID}
		if err := state.Bank.Deposit(ctx, userID, credits, metadata); err != nil {
			logger.Error("settleSeat: Failed to deposit %d chips for %s: %v", credits, userID, err)
		}
	}

	if err := state.Accuracy.Save(ctx, userID, state.GameID, state.Table.Acc); err != nil {
		logger.Error("settleSeat: Failed to save accuracy for %s: %v", userID, err)
	}
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		if msg.GetUserId() != matchState.Seat {
			logger.Warn("MatchLoop: Message from non-seated user %s ignored.", msg.GetUserId())
			continue
		}

		switch msg.GetOpCode() {
		case OpSetBet:
			mh.handleSetBet(matchState, dispatcher, logger, msg)
		case OpDeal:
			mh.handleDeal(matchState, dispatcher, logger)
		case OpToggleHold:
			mh.handleToggleHold(matchState, dispatcher, logger, msg)
		case OpDraw:
			mh.handleDraw(ctx, matchState, dispatcher, logger)
		case OpInsertCredits:
			mh.handleInsertCredits(ctx, matchState, dispatcher, logger, msg)
		case OpCashOut:
			mh.handleCashOut(ctx, matchState, dispatcher, logger)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	// Shut the table down once it has sat empty long enough.
	if matchState.Seat == "" && matchState.EmptySince > 0 &&
		matchState.Tick-matchState.EmptySince >= int64(config.GetIdleShutdownSeconds()) {
		logger.Info("MatchLoop: Terminating idle table.")
		return nil
	}

	return matchState
}

func (mh *matchHandler) handleSetBet(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	request := setBetRequest{}
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("handleSetBet: Invalid request: %v", err)
		mh.sendError(state, dispatcher, logger, 400, "invalid set_bet payload")
		return
	}

	if !state.Table.SetBet(request.Bet) {
		mh.sendError(state, dispatcher, logger, 409, "cannot change bet mid-round")
		return
	}
	mh.sendTableState(state, dispatcher, logger)
}

func (mh *matchHandler) handleDeal(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	events, ok := state.Table.Deal()
	if !ok {
		mh.sendError(state, dispatcher, logger, 409, "deal refused: wrong phase or not enough credits")
		return
	}
	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) handleToggleHold(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	request := toggleHoldRequest{}
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("handleToggleHold: Invalid request: %v", err)
		mh.sendError(state, dispatcher, logger, 400, "invalid toggle_hold payload")
		return
	}

	// Validate here; the table treats an out-of-range slot as a programming error.
	if request.Slot < 0 || request.Slot > 4 {
		mh.sendError(state, dispatcher, logger, 400, "hold slot out of range")
		return
	}

	if !state.Table.ToggleHold(request.Slot) {
		mh.sendError(state, dispatcher, logger, 409, "no live hand to hold")
		return
	}
	mh.sendTableState(state, dispatcher, logger)
}

func (mh *matchHandler) handleDraw(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	events, ok := state.Table.Draw()
	if !ok {
		mh.sendError(state, dispatcher, logger, 409, "draw refused: no live hand")
		return
	}
	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
	}

	if err := state.Accuracy.Save(ctx, state.Seat, state.GameID, state.Table.Acc); err != nil {
		logger.Error("handleDraw: Failed to save accuracy for %s: %v", state.Seat, err)
	}
}

func (mh *matchHandler) handleInsertCredits(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	request := insertCreditsRequest{}
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("handleInsertCredits: Invalid request: %v", err)
		mh.sendError(state, dispatcher, logger, 400, "invalid insert_credits payload")
		return
	}

	amount := request.Amount
	if amount <= 0 || amount > config.GetMaxInsert() {
		mh.sendError(state, dispatcher, logger, 400, "insert amount out of range")
		return
	}

	// The wallet is short-safe: a player with fewer chips moves what they have.
	taken, err := state.Bank.Withdraw(ctx, state.Seat, amount)
	if err != nil {
		logger.Error("handleInsertCredits: Withdraw failed for %s: %v", state.Seat, err)
		mh.sendError(state, dispatcher, logger, 500, "wallet unavailable")
		return
	}
	if taken > 0 {
		state.Table.Insert(taken)
	}
	mh.sendTableState(state, dispatcher, logger)
}

func (mh *matchHandler) handleCashOut(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	credits, ok := state.Table.CashOut()
	if !ok {
		mh.sendError(state, dispatcher, logger, 409, "cannot cash out mid-round")
		return
	}
	if credits > 0 {
		metadata := map[string]interface{}{"reason": "table_cash_out", "game_id": state.GameID}
		if err := state.Bank.Deposit(ctx, state.Seat, credits, metadata); err != nil {
			logger.Error("handleCashOut: Deposit failed for %s: %v", state.Seat, err)
			// Put the chips back on the meter rather than losing them.
			state.Table.Insert(credits)
			mh.sendError(state, dispatcher, logger, 500, "wallet unavailable")
			return
		}
	}
	mh.sendTableState(state, dispatcher, logger)
}

// broadcastEvent converts app events to wire messages and dispatches them to
// the seated player.
func (mh *matchHandler) broadcastEvent(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	var opCode int64
	var payload any

	switch ev.Kind {
	case app.EventHandDealt:
		opCode = OpHandDealt
		p := ev.Payload.(app.HandDealtPayload)
		payload = handDealtMsg{
			Hand:    cardsToWire(p.Hand),
			Bet:     p.Bet,
			Credits: p.Credits,
			DealtAs: string(p.DealtAs),
		}
	case app.EventRoundSettled:
		opCode = OpRoundSettled
		p := ev.Payload.(app.RoundSettledPayload)
		payload = roundSettledMsg{
			Hand:       cardsToWire(p.Hand),
			Held:       [5]bool(p.Held),
			Outcome:    string(p.Outcome),
			Payout:     p.Payout,
			Credits:    p.Credits,
			PlayedBest: p.PlayedBest,
			BestMask:   [5]bool(p.BestMask),
			Rationale:  p.Rationale,
		}
	default:
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}

	bytes, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal event %v: %v", ev.Kind, err)
		return
	}

	mh.dispatch(state, dispatcher, logger, opCode, bytes)
}

func (mh *matchHandler) sendTableState(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	t := state.Table
	msg := tableStateMsg{
		GameID:  state.GameID,
		Phase:   string(t.Phase),
		Credits: t.Credits,
		Bet:     t.Bet,
		Hand:    cardsToWire(t.Hand),
		Holds:   [5]bool(t.Holds),
		Correct: t.Acc.Correct,
		Total:   t.Acc.Total,
	}
	bytes, err := json.Marshal(msg)
	if err != nil {
		logger.Error("Failed to marshal table state: %v", err)
		return
	}
	mh.dispatch(state, dispatcher, logger, OpTableState, bytes)
}

// sendError sends an errorMsg to the seated player.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, code int, message string) {
	bytes, err := json.Marshal(errorMsg{Code: code, Message: message})
	if err != nil {
		logger.Error("Failed to marshal errorMsg: %v", err)
		return
	}
	mh.dispatch(state, dispatcher, logger, OpError, bytes)
}

func (mh *matchHandler) dispatch(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, opCode int64, data []byte) {
	if state.Presence == nil {
		return
	}
	recipients := []runtime.Presence{state.Presence}
	if err := dispatcher.BroadcastMessage(opCode, data, recipients, nil, true); err != nil {
		logger.Error("Failed to dispatch opcode %d: %v", opCode, err)
	}
}

func (mh *matchHandler) marshalLabel(state *MatchState) (string, error) {
	open := 1
	if state.Seat != "" {
		open = 0
	}
	label := map[string]interface{}{
		MatchLabelKey_Open: open,
		MatchLabelKey_Game: state.GameID,
	}
	bytes, err := json.Marshal(label)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	label, err := mh.marshalLabel(state)
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(label); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}
	mh.settleSeat(ctx, matchState, logger)
	logger.Debug("MatchTerminate: Table terminated for reason %d", reason)
	return matchState
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
