package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"videopoker/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

const accuracyCollection = "play_accuracy"

// NakamaAccuracyAdapter persists advisor accuracy in Nakama storage, one
// object per user and variant.
type NakamaAccuracyAdapter struct {
	nk runtime.NakamaModule
}

// NewNakamaAccuracyAdapter creates a new accuracy adapter.
func NewNakamaAccuracyAdapter(nk runtime.NakamaModule) *NakamaAccuracyAdapter {
	return &NakamaAccuracyAdapter{nk: nk}
}

type accuracyRecord struct {
	Correct int64 `json:"correct"`
	Total   int64 `json:"total"`
}

// Load returns the stored accuracy, zero-valued when none exists yet.
func (a *NakamaAccuracyAdapter) Load(ctx context.Context, userID, gameID string) (ports.Accuracy, error) {
	reads := []*runtime.StorageRead{{
		Collection: accuracyCollection,
		Key:        gameID,
		UserID:     userID,
	}}
	objects, err := a.nk.StorageRead(ctx, reads)
	if err != nil {
		return ports.Accuracy{}, fmt.Errorf("failed to read accuracy: %w", err)
	}
	if len(objects) == 0 {
		return ports.Accuracy{}, nil
	}

	var record accuracyRecord
	if err := json.Unmarshal([]byte(objects[0].Value), &record); err != nil {
		return ports.Accuracy{}, fmt.Errorf("failed to unmarshal accuracy: %w", err)
	}
	return ports.Accuracy{Correct: record.Correct, Total: record.Total}, nil
}

// Save overwrites the stored accuracy.
func (a *NakamaAccuracyAdapter) Save(ctx context.Context, userID, gameID string, acc ports.Accuracy) error {
	value, err := json.Marshal(accuracyRecord{Correct: acc.Correct, Total: acc.Total})
	if err != nil {
		return fmt.Errorf("failed to marshal accuracy: %w", err)
	}

	writes := []*runtime.StorageWrite{{
		Collection:      accuracyCollection,
		Key:             gameID,
		UserID:          userID,
		Value:           string(value),
		PermissionRead:  runtime.STORAGE_PERMISSION_OWNER_READ,
		PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
	}}
	if _, err := a.nk.StorageWrite(ctx, writes); err != nil {
		return fmt.Errorf("failed to write accuracy: %w", err)
	}
	return nil
}

var _ ports.AccuracyStore = (*NakamaAccuracyAdapter)(nil)
