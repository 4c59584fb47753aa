package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"videopoker/internal/domain"
	"videopoker/internal/games"

	"github.com/heroiclabs/nakama-common/runtime"
)

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcListGames, rpcListGames); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcPlayAccuracy, rpcPlayAccuracy); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcFindTable, rpcFindTable)
}

// gameInfo is the per-variant entry of the list_games response.
type gameInfo struct {
	ID       string             `json:"id"`
	Title    string             `json:"title"`
	Outcomes []string           `json:"outcomes"`
	Paytable map[string][]int64 `json:"paytable"`
}

func rpcListGames(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	infos := make([]gameInfo, 0, len(games.IDs()))
	for _, id := range games.IDs() {
		spec := games.Lookup(id)
		info := gameInfo{
			ID:       spec.ID,
			Title:    spec.Title,
			Paytable: make(map[string][]int64, len(spec.DisplayOrder)),
		}
		for _, outcome := range spec.DisplayOrder {
			info.Outcomes = append(info.Outcomes, string(outcome))
			row := make([]int64, 0, domain.MaxBet)
			for bet := domain.MinBet; bet <= domain.MaxBet; bet++ {
				row = append(row, spec.Paytable.Payout(outcome, bet))
			}
			info.Paytable[string(outcome)] = row
		}
		infos = append(infos, info)
	}

	b, err := json.Marshal(infos)
	if err != nil {
		logger.Error("rpcListGames: Failed to marshal: %v", err)
		return "", err
	}
	return string(b), nil
}

// accuracyResponse is the play_accuracy response for one variant.
type accuracyResponse struct {
	GameID  string `json:"game_id"`
	Correct int64  `json:"correct"`
	Total   int64  `json:"total"`
}

func rpcPlayAccuracy(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		return "", runtime.NewError("user id required", 16)
	}

	store := NewNakamaAccuracyAdapter(nk)
	out := make([]accuracyResponse, 0, len(games.IDs()))
	for _, id := range games.IDs() {
		acc, err := store.Load(ctx, userID, id)
		if err != nil {
			logger.Error("rpcPlayAccuracy [User:%s]: Failed to load %s: %v", userID, id, err)
			return "", err
		}
		out = append(out, accuracyResponse{GameID: id, Correct: acc.Correct, Total: acc.Total})
	}

	b, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
