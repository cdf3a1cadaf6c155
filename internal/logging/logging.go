package logging

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/console-bank/internal/config"
)

// SetupLogging builds the process logger. out should not be the console the
// operator is typing into.
func SetupLogging(cfg *config.Config, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	var formatter logrus.Formatter = &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyLevel: "loglevel",
		},
	}
	if cfg.LogFormat == config.LogFormatText {
		formatter = &logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		}
	}

	logger := logrus.New()
	logger.SetFormatter(formatter)
	logger.SetOutput(out)
	logger.SetLevel(level)

	return logger, nil
}
