package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"videopoker/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

const chipCurrency = "chips"

// NakamaBankAdapter implements ports.Bank using Nakama's wallet system.
type NakamaBankAdapter struct {
	nk runtime.NakamaModule
}

// NewNakamaBankAdapter creates a new bank adapter.
func NewNakamaBankAdapter(nk runtime.NakamaModule) *NakamaBankAdapter {
	return &NakamaBankAdapter{
		nk: nk,
	}
}

// Balance retrieves the current chip balance for a user.
func (a *NakamaBankAdapter) Balance(ctx context.Context, userID string) (int64, error) {
	account, err := a.nk.AccountGetId(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get account: %w", err)
	}

	var wallet map[string]int64
	if err := json.Unmarshal([]byte(account.Wallet), &wallet); err != nil {
		return 0, fmt.Errorf("failed to unmarshal wallet: %w", err)
	}

	return wallet[chipCurrency], nil
}

// Withdraw debits up to amount chips, clamped to the current balance.
func (a *NakamaBankAdapter) Withdraw(ctx context.Context, userID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, nil
	}

	balance, err := a.Balance(ctx, userID)
	if err != nil {
		return 0, err
	}
	if amount > balance {
		amount = balance
	}
	if amount == 0 {
		return 0, nil
	}

	changes := map[string]int64{chipCurrency: -amount}
	metadata := map[string]interface{}{"reason": "table_buy_in"}
	if _, _, err := a.nk.WalletUpdate(ctx, userID, changes, metadata, true); err != nil {
		return 0, fmt.Errorf("failed to withdraw from wallet for user %s: %w", userID, err)
	}
	return amount, nil
}

// Deposit credits chips back to the user.
func (a *NakamaBankAdapter) Deposit(ctx context.Context, userID string, amount int64, metadata map[string]interface{}) error {
	if amount <= 0 {
		return nil
	}

	changes := map[string]int64{chipCurrency: amount}
	if _, _, err := a.nk.WalletUpdate(ctx, userID, changes, metadata, true); err != nil {
		return fmt.Errorf("failed to deposit to wallet for user %s: %w", userID, err)
	}
	return nil
}

var _ ports.Bank = (*NakamaBankAdapter)(nil)
