package operator

import (
	"context"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/console-bank/internal/operator/actions"
	"github.com/carson-networks/console-bank/internal/storage"
	"github.com/carson-networks/console-bank/internal/storage/account"
)

// Operator runs actions against storage one at a time, on the caller's goroutine.
type Operator struct {
	storage *storage.Storage
	logger  *logrus.Logger
}

func NewOperator(s *storage.Storage, logger *logrus.Logger) *Operator {
	return &Operator{
		storage: s,
		logger:  logger,
	}
}

// Process runs action to completion. A failed action leaves storage as it was.
func (o *Operator) Process(ctx context.Context, action actions.IAction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if o.logger.IsLevelEnabled(logrus.DebugLevel) {
		o.logger.WithField("action", spew.Sdump(action)).Debugf("Operator.%v.Start", action.Name())
	}

	err := action.Perform(ctx, o.storage)
	if err != nil {
		// Refused requests are normal outcomes; the console reports them.
		if account.IsRejection(err) {
			o.logger.WithError(err).Infof("Operator.%v.Rejected", action.Name())
		} else {
			o.logger.WithError(err).Warnf("Operator.%v.Failed", action.Name())
		}
		return err
	}

	o.logger.Debugf("Operator.%v.Complete", action.Name())
	return nil
}
