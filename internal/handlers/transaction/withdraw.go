package transaction

import (
	"context"

	"github.com/carson-networks/console-bank/internal/logging"
	"github.com/carson-networks/console-bank/internal/operator/actions"
	"github.com/carson-networks/console-bank/internal/terminal"
)

// WithdrawHandler handles menu choice 3.
type WithdrawHandler struct {
	Operator       actionProcessor
	AccountService accountReporter
}

// NewWithdrawHandler creates a new WithdrawHandler.
func NewWithdrawHandler(op actionProcessor, svc accountReporter) *WithdrawHandler {
	return &WithdrawHandler{Operator: op, AccountService: svc}
}

func (h *WithdrawHandler) Handle(ctx context.Context, term *terminal.Terminal, logData *logging.LogData) error {
	id, err := promptAccountID(ctx, term, h.AccountService)
	if err != nil {
		return err
	}
	logData.AddData("accountID", id)

	amount, err := term.PromptDecimal("Enter amount to withdraw: ")
	if err != nil {
		return err
	}

	action := &actions.Withdraw{AccountID: id, Amount: amount}

	stopTimer := logData.AddTiming("withdrawMs")
	err = h.Operator.Process(ctx, action)
	stopTimer()
	if err != nil {
		return err
	}

	term.Println("Withdrawal successful. New balance:", action.NewBalance.String())
	return nil
}
