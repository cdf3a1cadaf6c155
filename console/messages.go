package console

import (
	"errors"
	"fmt"

	"github.com/carson-networks/console-bank/internal/storage/account"
	"github.com/carson-networks/console-bank/internal/terminal"
)

func errorMessage(failure string, err error) string {
	switch {
	case errors.Is(err, ErrInvalidMenuChoice):
		return "Invalid choice. Please try again."
	case errors.Is(err, account.ErrAccountNotFound):
		return fmt.Sprintf("Account not found. %s failed.", failure)
	case errors.Is(err, account.ErrDuplicateAccountID):
		return "Account number already exists. Account creation failed."
	case errors.Is(err, account.ErrInvalidAccountType):
		return "Invalid account type choice. Account creation failed."
	case errors.Is(err, account.ErrNegativeTerm):
		return "Interest rate and overdraft limit must not be negative. Account creation failed."
	case errors.Is(err, account.ErrInsufficientFunds):
		return "Insufficient funds. Withdrawal failed."
	case errors.Is(err, account.ErrOverdraftExceeded):
		return "Withdrawal failed. Exceeds overdraft limit."
	case errors.Is(err, account.ErrInvalidAmount):
		return fmt.Sprintf("Amount must be greater than zero. %s failed.", failure)
	case errors.Is(err, terminal.ErrInvalidNumber):
		return fmt.Sprintf("Invalid number. %s failed.", failure)
	default:
		return fmt.Sprintf("%s failed: %v", failure, err)
	}
}
