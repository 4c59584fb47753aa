// Package postgres persists advisor accuracy in PostgreSQL for deployments
// that keep player stats outside Nakama storage, such as the terminal
// trainer.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"videopoker/internal/ports"
)

// NewPool opens a connection pool and verifies it with a ping.
func NewPool(ctx context.Context, url string, log *logrus.Logger) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.WithField("component", "postgres").Info("connected")
	return pool, nil
}

const accuracySchema = `
CREATE TABLE IF NOT EXISTS play_accuracy (
	user_id TEXT   NOT NULL,
	game_id TEXT   NOT NULL,
	correct BIGINT NOT NULL DEFAULT 0,
	total   BIGINT NOT NULL DEFAULT 0,
	PRIMARY KEY (user_id, game_id)
)`

// AccuracyStore implements ports.AccuracyStore on a pgx pool.
type AccuracyStore struct {
	pool *pgxpool.Pool
	log  *logrus.Logger
}

// NewAccuracyStore ensures the schema exists and returns the store.
func NewAccuracyStore(ctx context.Context, pool *pgxpool.Pool, log *logrus.Logger) (*AccuracyStore, error) {
	if _, err := pool.Exec(ctx, accuracySchema); err != nil {
		return nil, fmt.Errorf("failed to create play_accuracy table: %w", err)
	}
	return &AccuracyStore{pool: pool, log: log}, nil
}

// Load returns the stored accuracy, zero-valued when none exists yet.
func (s *AccuracyStore) Load(ctx context.Context, userID, gameID string) (ports.Accuracy, error) {
	const q = `SELECT correct, total FROM play_accuracy WHERE user_id = $1 AND game_id = $2`

	var acc ports.Accuracy
	err := s.pool.QueryRow(ctx, q, userID, gameID).Scan(&acc.Correct, &acc.Total)
	if errors.Is(err, pgx.ErrNoRows) {
		return ports.Accuracy{}, nil
	}
	if err != nil {
		return ports.Accuracy{}, fmt.Errorf("failed to load accuracy: %w", err)
	}
	return acc, nil
}

// Save overwrites the stored accuracy.
func (s *AccuracyStore) Save(ctx context.Context, userID, gameID string, acc ports.Accuracy) error {
	const q = `
INSERT INTO play_accuracy (user_id, game_id, correct, total)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id, game_id)
DO UPDATE SET correct = EXCLUDED.correct, total = EXCLUDED.total`

	if _, err := s.pool.Exec(ctx, q, userID, gameID, acc.Correct, acc.Total); err != nil {
		return fmt.Errorf("failed to save accuracy: %w", err)
	}
	s.log.WithFields(logrus.Fields{
		"user_id": userID,
		"game_id": gameID,
		"total":   acc.Total,
	}).Debug("accuracy saved")
	return nil
}

var _ ports.AccuracyStore = (*AccuracyStore)(nil)
