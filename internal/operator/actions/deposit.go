package actions

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/console-bank/internal/storage"
)

type Deposit struct {
	AccountID string
	Amount    decimal.Decimal

	// NewBalance is set once Perform succeeds.
	NewBalance decimal.Decimal
}

func (d *Deposit) Name() string {
	return "Deposit"
}

func (d *Deposit) Perform(ctx context.Context, store *storage.Storage) error {
	acc, err := store.Accounts.FindByID(ctx, d.AccountID)
	if err != nil {
		return fmt.Errorf("deposit to %q: %w", d.AccountID, err)
	}

	if err = acc.Deposit(d.Amount); err != nil {
		return fmt.Errorf("deposit to %q: %w", d.AccountID, err)
	}

	d.NewBalance = acc.Balance()
	return nil
}
