package transaction

import (
	"context"

	"github.com/carson-networks/console-bank/internal/logging"
	"github.com/carson-networks/console-bank/internal/operator/actions"
	"github.com/carson-networks/console-bank/internal/terminal"
)

// DepositHandler handles menu choice 2.
type DepositHandler struct {
	Operator       actionProcessor
	AccountService accountReporter
}

// NewDepositHandler creates a new DepositHandler.
func NewDepositHandler(op actionProcessor, svc accountReporter) *DepositHandler {
	return &DepositHandler{Operator: op, AccountService: svc}
}

func (h *DepositHandler) Handle(ctx context.Context, term *terminal.Terminal, logData *logging.LogData) error {
	id, err := promptAccountID(ctx, term, h.AccountService)
	if err != nil {
		return err
	}
	logData.AddData("accountID", id)

	amount, err := term.PromptDecimal("Enter amount to deposit: ")
	if err != nil {
		return err
	}

	action := &actions.Deposit{AccountID: id, Amount: amount}

	stopTimer := logData.AddTiming("depositMs")
	err = h.Operator.Process(ctx, action)
	stopTimer()
	if err != nil {
		return err
	}

	term.Println("Deposit successful. New balance:", action.NewBalance.String())
	return nil
}
