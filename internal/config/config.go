package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

type GameConfig struct {
	// DefaultGameID is the variant a table runs when the client names none.
	DefaultGameID string `json:"default_game_id"`
	// MaxInsert caps how many chips one insert_credits message may move.
	MaxInsert int64 `json:"max_insert"`
	// IdleShutdownSeconds configures how long an empty table lingers before terminating.
	IdleShutdownSeconds int `json:"idle_shutdown_seconds"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration.
func GetGameConfig() *GameConfig {
	return cfg
}

// GetDefaultGameID returns the configured default variant id.
func GetDefaultGameID() string {
	if cfg == nil || cfg.DefaultGameID == "" {
		return "jacks-or-better" // Safe default
	}
	return cfg.DefaultGameID
}

// GetMaxInsert returns the per-message chip insert cap.
func GetMaxInsert() int64 {
	if cfg == nil || cfg.MaxInsert <= 0 {
		return 100000
	}
	return cfg.MaxInsert
}

// GetIdleShutdownSeconds returns how long an empty table stays up.
func GetIdleShutdownSeconds() int {
	if cfg == nil || cfg.IdleShutdownSeconds <= 0 {
		return 60
	}
	return cfg.IdleShutdownSeconds
}
