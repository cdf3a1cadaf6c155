package actions

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/console-bank/internal/storage"
)

type Withdraw struct {
	AccountID string
	Amount    decimal.Decimal

	// NewBalance is set once Perform succeeds.
	NewBalance decimal.Decimal
}

func (w *Withdraw) Name() string {
	return "Withdraw"
}

// Perform applies the account's own ceiling: the balance for savings, the
// balance plus the overdraft limit for checking.
func (w *Withdraw) Perform(ctx context.Context, store *storage.Storage) error {
	acc, err := store.Accounts.FindByID(ctx, w.AccountID)
	if err != nil {
		return fmt.Errorf("withdraw from %q: %w", w.AccountID, err)
	}

	if err = acc.Withdraw(w.Amount); err != nil {
		return fmt.Errorf("withdraw from %q (ceiling %s): %w", w.AccountID, acc.WithdrawCeiling(), err)
	}

	w.NewBalance = acc.Balance()
	return nil
}
