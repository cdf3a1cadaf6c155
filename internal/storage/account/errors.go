package account

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrDuplicateAccountID = errors.New("account already exists")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrOverdraftExceeded  = errors.New("overdraft limit exceeded")
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrNegativeTerm       = errors.New("interest rate and overdraft limit must not be negative")
	ErrInvalidAccountType = errors.New("invalid account type")
)

var rejections = []error{
	ErrAccountNotFound,
	ErrDuplicateAccountID,
	ErrInsufficientFunds,
	ErrOverdraftExceeded,
	ErrInvalidAmount,
	ErrNegativeTerm,
	ErrInvalidAccountType,
}

// IsRejection reports whether err is a business rule refusing the request,
// as opposed to something going wrong.
func IsRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}
