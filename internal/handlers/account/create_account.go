package account

import (
	"context"

	"github.com/carson-networks/console-bank/internal/logging"
	"github.com/carson-networks/console-bank/internal/operator/actions"
	accountstore "github.com/carson-networks/console-bank/internal/storage/account"
	"github.com/carson-networks/console-bank/internal/terminal"
)

// CreateAccountHandler handles menu choice 1.
type CreateAccountHandler struct {
	Operator actionProcessor
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(op actionProcessor) *CreateAccountHandler {
	return &CreateAccountHandler{Operator: op}
}

func promptCreateAccount(term *terminal.Terminal) (*actions.CreateAccount, error) {
	id, err := term.Prompt("Enter account number: ")
	if err != nil {
		return nil, err
	}

	holderName, err := term.Prompt("Enter customer name: ")
	if err != nil {
		return nil, err
	}

	initialBalance, err := term.PromptDecimal("Enter initial balance: ")
	if err != nil {
		return nil, err
	}

	choice, err := term.PromptInt("Choose account type (1. Savings / 2. Checking): ")
	if err != nil {
		return nil, err
	}
	accountType, err := accountstore.ParseAccountType(choice)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateAccount{
		ID:             id,
		HolderName:     holderName,
		Type:           accountType,
		InitialBalance: initialBalance,
	}

	switch accountType {
	case accountstore.AccountTypeSavings:
		action.InterestRate, err = term.PromptDecimal("Enter interest rate for savings account: ")
	case accountstore.AccountTypeChecking:
		action.OverdraftLimit, err = term.PromptDecimal("Enter overdraft limit for checking account: ")
	}
	if err != nil {
		return nil, err
	}

	return action, nil
}

func (h *CreateAccountHandler) Handle(ctx context.Context, term *terminal.Terminal, logData *logging.LogData) error {
	action, err := promptCreateAccount(term)
	if err != nil {
		return err
	}

	logData.AddData("accountID", action.ID)
	logData.AddData("accountType", action.Type.String())

	stopTimer := logData.AddTiming("createAccountMs")
	err = h.Operator.Process(ctx, action)
	stopTimer()
	if err != nil {
		return err
	}

	term.Println("Account created successfully.")
	return nil
}
