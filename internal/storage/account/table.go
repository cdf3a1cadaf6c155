package account

import (
	"context"
)

// IAccountTable defines the interface for account storage operations.
type IAccountTable interface {
	FindByID(ctx context.Context, id string) (*Account, error)
	Insert(ctx context.Context, create *AccountCreate) (*Account, error)
	Count() int
}

// Table keeps every account in memory for the life of the process.
// It is not safe for concurrent use.
type Table struct {
	accounts map[string]*Account
}

// Ensure Table implements IAccountTable at compile time.
var _ IAccountTable = (*Table)(nil)

func NewTable() *Table {
	return &Table{accounts: make(map[string]*Account)}
}

// FindByID returns the stored record, not a copy.
func (t *Table) FindByID(_ context.Context, id string) (*Account, error) {
	acc, ok := t.accounts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return acc, nil
}

// Insert creates a new account. An existing account with the same ID is left untouched.
func (t *Table) Insert(_ context.Context, create *AccountCreate) (*Account, error) {
	if _, exists := t.accounts[create.ID]; exists {
		return nil, ErrDuplicateAccountID
	}

	acc, err := NewAccount(create)
	if err != nil {
		return nil, err
	}

	t.accounts[acc.ID] = acc
	return acc, nil
}

func (t *Table) Count() int {
	return len(t.accounts)
}
