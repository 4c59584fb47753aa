package ports

import "context"

// Accuracy counts advisor-graded draws for one player on one variant.
type Accuracy struct {
	Correct int64
	Total   int64
}

// AccuracyStore persists play accuracy per user and variant.
type AccuracyStore interface {
	// Load returns the stored accuracy, zero-valued when none exists yet.
	Load(ctx context.Context, userID, gameID string) (Accuracy, error)

	// Save overwrites the stored accuracy.
	Save(ctx context.Context, userID, gameID string, acc Accuracy) error
}
