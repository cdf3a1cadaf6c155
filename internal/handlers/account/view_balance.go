package account

import (
	"context"

	"github.com/carson-networks/console-bank/internal/logging"
	"github.com/carson-networks/console-bank/internal/terminal"
)

// ViewBalanceHandler handles menu choice 4.
type ViewBalanceHandler struct {
	AccountService accountReporter
}

// NewViewBalanceHandler creates a new ViewBalanceHandler.
func NewViewBalanceHandler(svc accountReporter) *ViewBalanceHandler {
	return &ViewBalanceHandler{AccountService: svc}
}

// Handle prints the account. Interest and overdraft lines appear only for
// accounts that support them.
func (h *ViewBalanceHandler) Handle(ctx context.Context, term *terminal.Terminal, logData *logging.LogData) error {
	id, err := term.Prompt("Enter account number: ")
	if err != nil {
		return err
	}
	logData.AddData("accountID", id)

	report, err := h.AccountService.GetAccountReport(ctx, id)
	if err != nil {
		return err
	}

	term.Println("Account Holder:", report.HolderName)
	term.Println("Account Number:", report.ID)
	term.Println("Current Balance:", report.Balance.String())

	if report.Interest != nil {
		term.Println("Interest Earned:", report.Interest.String())
	}
	if report.OverdraftLimit != nil {
		term.Println("Overdraft Limit:", report.OverdraftLimit.String())
	}

	return nil
}
