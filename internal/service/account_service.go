package service

import (
	"context"
	"fmt"

	"github.com/carson-networks/console-bank/internal/storage"
)

// AccountService handles account reads.
type AccountService struct {
	storage *storage.Storage
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage) *AccountService {
	return &AccountService{storage: store}
}

// GetAccountReport returns a point-in-time view of the account.
func (s *AccountService) GetAccountReport(ctx context.Context, id string) (*AccountReport, error) {
	acc, err := s.storage.Accounts.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("account report %q: %w", id, err)
	}
	return reportFromAccount(acc), nil
}
