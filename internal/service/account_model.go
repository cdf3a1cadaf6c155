package service

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/console-bank/internal/storage/account"
)

// AccountReport is what the console shows for one account. Interest and
// OverdraftLimit are only set when the account supports them.
type AccountReport struct {
	ID             string
	HolderName     string
	Type           account.AccountType
	Balance        decimal.Decimal
	Interest       *decimal.Decimal
	OverdraftLimit *decimal.Decimal
}

func reportFromAccount(acc *account.Account) *AccountReport {
	report := &AccountReport{
		ID:         acc.ID,
		HolderName: acc.HolderName,
		Type:       acc.Type,
		Balance:    acc.Balance(),
	}

	if interest, ok := acc.InterestEarned(); ok {
		report.Interest = &interest
	}
	if limit, ok := acc.OverdraftLimit(); ok {
		report.OverdraftLimit = &limit
	}

	return report
}
