package storage

import (
	"github.com/carson-networks/console-bank/internal/storage/account"
)

// Storage owns every record for the lifetime of the process. It is created
// once at start-up and handed to whatever needs it.
type Storage struct {
	Accounts account.IAccountTable
}

func NewStorage() *Storage {
	return &Storage{
		Accounts: account.NewTable(),
	}
}
