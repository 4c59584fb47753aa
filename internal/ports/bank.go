package ports

import "context"

// Bank defines the interface for the chip wallet behind a table. Tables keep
// their own credit meter; the bank is touched when chips move on or off the
// machine.
type Bank interface {
	// Balance retrieves the current chip balance for a user.
	Balance(ctx context.Context, userID string) (int64, error)

	// Withdraw debits up to amount chips and returns what was actually
	// taken, min(amount, balance). A short wallet is not an error.
	Withdraw(ctx context.Context, userID string, amount int64) (int64, error)

	// Deposit credits chips back to the user.
	Deposit(ctx context.Context, userID string, amount int64, metadata map[string]interface{}) error
}
