package console

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/console-bank/internal/storage/account"
	"github.com/carson-networks/console-bank/internal/terminal"
)

func TestErrorMessage(t *testing.T) {
	wrapped := func(err error) error { return fmt.Errorf("withdraw from %q: %w", "A", err) }

	cases := []struct {
		failure string
		err     error
		want    string
	}{
		{"", ErrInvalidMenuChoice, "Invalid choice. Please try again."},
		{"deposit", wrapped(account.ErrAccountNotFound), "Account not found. deposit failed."},
		{"Account creation", account.ErrDuplicateAccountID, "Account number already exists. Account creation failed."},
		{"Account creation", account.ErrInvalidAccountType, "Invalid account type choice. Account creation failed."},
		{"Account creation", account.ErrNegativeTerm, "Interest rate and overdraft limit must not be negative. Account creation failed."},
		{"withdraw", wrapped(account.ErrInsufficientFunds), "Insufficient funds. Withdrawal failed."},
		{"withdraw", wrapped(account.ErrOverdraftExceeded), "Withdrawal failed. Exceeds overdraft limit."},
		{"withdraw", wrapped(account.ErrInvalidAmount), "Amount must be greater than zero. withdraw failed."},
		{"deposit", fmt.Errorf("%w: %q", terminal.ErrInvalidNumber, "x"), "Invalid number. deposit failed."},
		{"deposit", errors.New("disk on fire"), "deposit failed: disk on fire"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, errorMessage(c.failure, c.err))
	}
}
