package account

import (
	"github.com/shopspring/decimal"
)

type AccountType int8

// Values match the console's account type choice.
const (
	AccountTypeSavings AccountType = iota + 1
	AccountTypeChecking
)

func (t AccountType) String() string {
	switch t {
	case AccountTypeSavings:
		return "savings"
	case AccountTypeChecking:
		return "checking"
	default:
		return "unknown"
	}
}

// ParseAccountType maps a menu choice to an AccountType.
func ParseAccountType(choice int) (AccountType, error) {
	t := AccountType(choice)
	switch t {
	case AccountTypeSavings, AccountTypeChecking:
		return t, nil
	}
	return 0, ErrInvalidAccountType
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	ID             string
	HolderName     string
	Type           AccountType
	InitialBalance decimal.Decimal
	InterestRate   decimal.Decimal // savings only
	OverdraftLimit decimal.Decimal // checking only
}

// Account is a single account record. The variant specific fields are only
// meaningful for the matching Type.
type Account struct {
	ID         string
	HolderName string
	Type       AccountType

	balance        decimal.Decimal
	interestRate   decimal.Decimal
	overdraftLimit decimal.Decimal
}

// NewAccount builds an account from create. The initial balance is taken as
// given, even when it is already below the account's floor.
func NewAccount(create *AccountCreate) (*Account, error) {
	acc := &Account{
		ID:         create.ID,
		HolderName: create.HolderName,
		Type:       create.Type,
		balance:    create.InitialBalance,
	}

	switch create.Type {
	case AccountTypeSavings:
		if create.InterestRate.IsNegative() {
			return nil, ErrNegativeTerm
		}
		acc.interestRate = create.InterestRate
	case AccountTypeChecking:
		if create.OverdraftLimit.IsNegative() {
			return nil, ErrNegativeTerm
		}
		acc.overdraftLimit = create.OverdraftLimit
	default:
		return nil, ErrInvalidAccountType
	}

	return acc, nil
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// InterestBearing reports whether the account earns interest.
func (a *Account) InterestBearing() bool {
	return a.Type == AccountTypeSavings
}

// OverdraftCapable reports whether the balance may go below zero.
func (a *Account) OverdraftCapable() bool {
	return a.Type == AccountTypeChecking
}

// Floor is the lowest balance a withdrawal may leave behind.
func (a *Account) Floor() decimal.Decimal {
	if a.OverdraftCapable() {
		return a.overdraftLimit.Neg()
	}
	return decimal.Zero
}

// WithdrawCeiling is the largest amount a single withdrawal may take.
func (a *Account) WithdrawCeiling() decimal.Decimal {
	return a.balance.Sub(a.Floor())
}

// InterestEarned returns balance * interestRate. ok is false for accounts
// that do not earn interest.
func (a *Account) InterestEarned() (interest decimal.Decimal, ok bool) {
	if !a.InterestBearing() {
		return decimal.Zero, false
	}
	return a.balance.Mul(a.interestRate), true
}

// OverdraftLimit returns the configured limit. ok is false for accounts that
// cannot be overdrawn.
func (a *Account) OverdraftLimit() (limit decimal.Decimal, ok bool) {
	if !a.OverdraftCapable() {
		return decimal.Zero, false
	}
	return a.overdraftLimit, true
}

func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw takes amount out of the account. Nothing changes when it fails.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.WithdrawCeiling()) {
		if a.OverdraftCapable() {
			return ErrOverdraftExceeded
		}
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return nil
}
