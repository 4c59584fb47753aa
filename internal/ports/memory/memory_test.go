package memory

import (
	"context"
	"testing"

	"videopoker/internal/ports"
)

func TestBankWithdrawClampsToBalance(t *testing.T) {
	bank := NewBank(map[string]int64{"user-1": 30})
	ctx := context.Background()

	taken, err := bank.Withdraw(ctx, "user-1", 50)
	if err != nil {
		t.Fatalf("Withdraw: %v", err)
	}
	if taken != 30 {
		t.Fatalf("taken = %d, want the whole balance", taken)
	}
	if balance, _ := bank.Balance(ctx, "user-1"); balance != 0 {
		t.Fatalf("balance = %d, want 0", balance)
	}

	taken, err = bank.Withdraw(ctx, "user-1", -5)
	if err != nil || taken != 0 {
		t.Fatalf("negative withdraw returned %d, %v", taken, err)
	}
}

func TestBankDepositRoundTrip(t *testing.T) {
	bank := NewBank(nil)
	ctx := context.Background()

	if err := bank.Deposit(ctx, "user-1", 80, map[string]interface{}{"reason": "test"}); err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	if balance, _ := bank.Balance(ctx, "user-1"); balance != 80 {
		t.Fatalf("balance = %d, want 80", balance)
	}
}

func TestAccuracyStoreKeysByUserAndGame(t *testing.T) {
	store := NewAccuracyStore()
	ctx := context.Background()

	if err := store.Save(ctx, "user-1", "jacks-or-better", ports.Accuracy{Correct: 3, Total: 4}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	acc, err := store.Load(ctx, "user-1", "jacks-or-better")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if acc.Correct != 3 || acc.Total != 4 {
		t.Fatalf("loaded %+v", acc)
	}

	other, err := store.Load(ctx, "user-1", "deuces-wild")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if other.Correct != 0 || other.Total != 0 {
		t.Fatalf("unknown variant should load zero-valued, got %+v", other)
	}
}
