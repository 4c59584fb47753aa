package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"videopoker/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// FindTableRequest selects the variant to sit down at.
type FindTableRequest struct {
	GameID string `json:"game_id"`
}

// FindTableResponse is the payload returned to clients when requesting a table.
type FindTableResponse struct {
	MatchID string `json:"match_id"`
	GameID  string `json:"game_id"`
	IsNew   bool   `json:"is_new"`
}

// rpcFindTable searches for a vacant table running the requested variant and
// creates one when none exists.
func rpcFindTable(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	request := FindTableRequest{}
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &request); err != nil {
			logger.Warn("rpcFindTable [User:%s]: Invalid payload: %v", userID, err)
			return "", runtime.NewError("invalid payload", 3)
		}
	}
	gameID := request.GameID
	if gameID == "" {
		gameID = config.GetDefaultGameID()
	}
	if !knownGameID(gameID) {
		return "", runtime.NewError(fmt.Sprintf("unknown game id %q", gameID), 3)
	}

	// Search for a vacant table running this variant.
	limit := 1
	authoritative := true
	labelQuery := fmt.Sprintf("+label.%s:1 +label.%s:%s", MatchLabelKey_Open, MatchLabelKey_Game, gameID)
	minSize := 0
	maxSize := 1

	matches, err := nk.MatchList(ctx, limit, authoritative, "", &minSize, &maxSize, labelQuery)
	if err != nil {
		logger.Error("rpcFindTable [User:%s]: Failed to list matches: %v", userID, err)
		return "", err
	}

	if len(matches) > 0 {
		resp := FindTableResponse{MatchID: matches[0].MatchId, GameID: gameID, IsNew: false}
		b, _ := json.Marshal(resp)
		return string(b), nil
	}

	matchID, err := nk.MatchCreate(ctx, MatchNameVideoPoker, map[string]interface{}{"game_id": gameID})
	if err != nil {
		logger.Error("rpcFindTable [User:%s]: Failed to create match: %v", userID, err)
		return "", err
	}

	logger.Info("rpcFindTable [User:%s]: Created new %s table %s", userID, gameID, matchID)
	resp := FindTableResponse{MatchID: matchID, GameID: gameID, IsNew: true}
	b, _ := json.Marshal(resp)
	return string(b), nil
}
