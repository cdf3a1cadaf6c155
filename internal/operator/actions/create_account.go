package actions

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/console-bank/internal/storage"
	"github.com/carson-networks/console-bank/internal/storage/account"
)

type CreateAccount struct {
	ID             string
	HolderName     string
	Type           account.AccountType
	InitialBalance decimal.Decimal
	InterestRate   decimal.Decimal
	OverdraftLimit decimal.Decimal
}

func (c *CreateAccount) Name() string {
	return "CreateAccount"
}

func (c *CreateAccount) Perform(ctx context.Context, store *storage.Storage) error {
	_, err := store.Accounts.Insert(ctx, &account.AccountCreate{
		ID:             c.ID,
		HolderName:     c.HolderName,
		Type:           c.Type,
		InitialBalance: c.InitialBalance,
		InterestRate:   c.InterestRate,
		OverdraftLimit: c.OverdraftLimit,
	})
	if err != nil {
		return fmt.Errorf("create account %q: %w", c.ID, err)
	}

	return nil
}
