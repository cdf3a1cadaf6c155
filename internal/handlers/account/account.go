package account

import (
	"context"

	"github.com/carson-networks/console-bank/internal/operator/actions"
	"github.com/carson-networks/console-bank/internal/service"
)

// actionProcessor runs state-changing actions.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// accountReporter is the interface for reading a single account.
type accountReporter interface {
	GetAccountReport(ctx context.Context, id string) (*service.AccountReport, error)
}
