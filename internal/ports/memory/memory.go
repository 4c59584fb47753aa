// Package memory provides in-process implementations of the ports for the
// terminal trainer and tests.
package memory

import (
	"context"
	"sync"

	"videopoker/internal/ports"
)

// Bank is an in-memory chip wallet.
type Bank struct {
	mu       sync.Mutex
	balances map[string]int64
}

// NewBank creates a bank with the given opening balances.
func NewBank(balances map[string]int64) *Bank {
	b := &Bank{balances: make(map[string]int64, len(balances))}
	for userID, amount := range balances {
		b.balances[userID] = amount
	}
	return b
}

// Balance retrieves the current chip balance for a user.
func (b *Bank) Balance(ctx context.Context, userID string) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balances[userID], nil
}

// Withdraw debits up to amount chips, clamped to the current balance.
func (b *Bank) Withdraw(ctx context.Context, userID string, amount int64) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if amount <= 0 {
		return 0, nil
	}
	if amount > b.balances[userID] {
		amount = b.balances[userID]
	}
	b.balances[userID] -= amount
	return amount, nil
}

// Deposit credits chips back to the user.
func (b *Bank) Deposit(ctx context.Context, userID string, amount int64, metadata map[string]interface{}) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if amount > 0 {
		b.balances[userID] += amount
	}
	return nil
}

// AccuracyStore keeps advisor accuracy in a map.
type AccuracyStore struct {
	mu      sync.Mutex
	records map[string]ports.Accuracy
}

// NewAccuracyStore creates an empty store.
func NewAccuracyStore() *AccuracyStore {
	return &AccuracyStore{records: make(map[string]ports.Accuracy)}
}

func key(userID, gameID string) string {
	return userID + "/" + gameID
}

// Load returns the stored accuracy, zero-valued when none exists yet.
func (s *AccuracyStore) Load(ctx context.Context, userID, gameID string) (ports.Accuracy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records[key(userID, gameID)], nil
}

// Save overwrites the stored accuracy.
func (s *AccuracyStore) Save(ctx context.Context, userID, gameID string, acc ports.Accuracy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key(userID, gameID)] = acc
	return nil
}

var (
	_ ports.Bank          = (*Bank)(nil)
	_ ports.AccuracyStore = (*AccuracyStore)(nil)
)
