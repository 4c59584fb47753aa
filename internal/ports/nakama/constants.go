package nakama

const (
	// RpcFindTable is the Nakama RPC id clients call to find or create a table
	// running a given variant.
	RpcFindTable = "find_table"

	// RpcListGames returns the registered variants and their paytables.
	RpcListGames = "list_games"

	// RpcPlayAccuracy returns the caller's stored advisor accuracy.
	RpcPlayAccuracy = "play_accuracy"

	// MatchNameVideoPoker is the authoritative match handler name registered with Nakama.
	MatchNameVideoPoker = "videopoker_table"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpSetBet        int64 = 1
	OpDeal          int64 = 2
	OpToggleHold    int64 = 3
	OpDraw          int64 = 4
	OpInsertCredits int64 = 5
	OpCashOut       int64 = 6

	// Server -> Client events
	OpTableState   int64 = 101
	OpHandDealt    int64 = 102 // send privately
	OpRoundSettled int64 = 103
	OpError        int64 = 104
)
