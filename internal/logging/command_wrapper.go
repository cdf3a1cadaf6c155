package logging

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

// CommandFunc handles one console command.
type CommandFunc func(ctx context.Context, logData *LogData) error

// CommandWrapper gives every run of handler a fresh LogData tagged with a
// command ID, and logs its start and outcome. The handler's error is returned
// unchanged.
func CommandWrapper(commandName string, log *logrus.Logger, handler CommandFunc) func(context.Context) error {
	return func(ctx context.Context) error {
		logData := NewLogData(log)
		if id, err := uuid.NewV4(); err == nil {
			logData.AddData("commandID", id.String())
		}
		logData.AddData("command", commandName)

		log.Debugf("Command.%v.Start", commandName)

		endTimer := logData.AddTiming("durationMs")
		err := handler(ctx, logData)
		endTimer()

		if err != nil {
			logData.Log().WithError(err).Infof("Command.%v.Error", commandName)
			return err
		}

		logData.Log().Infof("Command.%v.Complete", commandName)
		return nil
	}
}
