package service

import (
	"github.com/carson-networks/console-bank/internal/storage"
)

// Service holds the read side of the bank. Writes go through the operator.
type Service struct {
	Account *AccountService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Account: NewAccountService(store),
	}
}
