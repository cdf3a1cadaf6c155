package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_InsertAndFind(t *testing.T) {
	table := NewTable()
	ctx := context.Background()

	created, err := table.Insert(ctx, &AccountCreate{
		ID:             "A-100",
		HolderName:     "Ada",
		Type:           AccountTypeSavings,
		InitialBalance: dec("1000"),
		InterestRate:   dec("0.05"),
	})
	require.NoError(t, err)
	assert.Equal(t, "A-100", created.ID)

	found, err := table.FindByID(ctx, "A-100")
	require.NoError(t, err)
	assert.Same(t, created, found)
	assert.Equal(t, "Ada", found.HolderName)
	assert.Equal(t, 1, table.Count())
}

func TestTable_InsertDuplicateID(t *testing.T) {
	table := NewTable()
	ctx := context.Background()

	first, err := table.Insert(ctx, &AccountCreate{
		ID:             "dup",
		HolderName:     "First",
		Type:           AccountTypeSavings,
		InitialBalance: dec("10"),
		InterestRate:   dec("0.01"),
	})
	require.NoError(t, err)

	second, err := table.Insert(ctx, &AccountCreate{
		ID:             "dup",
		HolderName:     "Second",
		Type:           AccountTypeChecking,
		InitialBalance: dec("99"),
		OverdraftLimit: dec("5"),
	})
	assert.ErrorIs(t, err, ErrDuplicateAccountID)
	assert.Nil(t, second)

	found, err := table.FindByID(ctx, "dup")
	require.NoError(t, err)
	assert.Same(t, first, found)
	assert.Equal(t, "First", found.HolderName)
	assert.Equal(t, AccountTypeSavings, found.Type)
	assert.True(t, found.Balance().Equal(dec("10")))
	assert.Equal(t, 1, table.Count())
}

func TestTable_InsertInvalidLeavesTableEmpty(t *testing.T) {
	table := NewTable()
	_, err := table.Insert(context.Background(), &AccountCreate{ID: "bad", Type: AccountType(7)})
	assert.ErrorIs(t, err, ErrInvalidAccountType)
	assert.Equal(t, 0, table.Count())
}

func TestTable_FindMissing(t *testing.T) {
	table := NewTable()
	acc, err := table.FindByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Nil(t, acc)
	assert.Equal(t, 0, table.Count())
}
