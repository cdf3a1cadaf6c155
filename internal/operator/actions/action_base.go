package actions

import (
	"context"

	"github.com/carson-networks/console-bank/internal/storage"
)

// IAction is a single state-changing request run by the operator.
type IAction interface {
	Name() string
	Perform(ctx context.Context, store *storage.Storage) error
}
