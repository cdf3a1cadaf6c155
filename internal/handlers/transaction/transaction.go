package transaction

import (
	"context"

	"github.com/carson-networks/console-bank/internal/operator/actions"
	"github.com/carson-networks/console-bank/internal/service"
	"github.com/carson-networks/console-bank/internal/terminal"
)

// actionProcessor runs state-changing actions.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// accountReporter is used to reject unknown accounts before asking for an amount.
type accountReporter interface {
	GetAccountReport(ctx context.Context, id string) (*service.AccountReport, error)
}

func promptAccountID(ctx context.Context, term *terminal.Terminal, accounts accountReporter) (string, error) {
	id, err := term.Prompt("Enter account number: ")
	if err != nil {
		return "", err
	}

	if _, err = accounts.GetAccountReport(ctx, id); err != nil {
		return "", err
	}

	return id, nil
}
