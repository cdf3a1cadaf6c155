package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/console-bank/console"
	"github.com/carson-networks/console-bank/internal/config"
	"github.com/carson-networks/console-bank/internal/logging"
	"github.com/carson-networks/console-bank/internal/operator"
	"github.com/carson-networks/console-bank/internal/service"
	"github.com/carson-networks/console-bank/internal/storage"
	"github.com/carson-networks/console-bank/internal/terminal"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
	}

	// Stdout belongs to the console.
	logger, err := logging.SetupLogging(envConfig, os.Stderr)
	if err != nil {
		logrus.WithError(err).Fatal("logging.SetupLogging")
	}
	logger.Info("console-bank starting")

	store := storage.NewStorage()
	op := operator.NewOperator(store, logger)
	svc := service.NewService(store)

	menu := console.NewMenu(logger, terminal.New(os.Stdin, os.Stdout), op, svc)
	if err = menu.Run(context.Background()); err != nil {
		logger.WithError(err).Fatal("Menu.Run")
	}

	logger.WithField("accounts", store.Accounts.Count()).Info("console-bank exiting")
}
