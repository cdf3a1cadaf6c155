package console

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/console-bank/internal/handlers/account"
	"github.com/carson-networks/console-bank/internal/handlers/transaction"
	"github.com/carson-networks/console-bank/internal/logging"
	"github.com/carson-networks/console-bank/internal/operator"
	"github.com/carson-networks/console-bank/internal/service"
	"github.com/carson-networks/console-bank/internal/terminal"
)

var ErrInvalidMenuChoice = errors.New("invalid menu choice")

const exitChoice = 5

type handler interface {
	Handle(ctx context.Context, term *terminal.Terminal, logData *logging.LogData) error
}

type command struct {
	// failure names the operation in failure messages, e.g. "deposit failed".
	failure string
	run     func(context.Context) error
}

// Menu is the interactive loop. It is the only place errors are turned into
// operator-facing messages.
type Menu struct {
	Logger   *logrus.Logger
	Terminal *terminal.Terminal

	commands map[int]command
}

func NewMenu(logger *logrus.Logger, term *terminal.Terminal, op *operator.Operator, svc *service.Service) *Menu {
	m := &Menu{
		Logger:   logger,
		Terminal: term,
	}

	m.commands = map[int]command{
		1: m.command("CreateAccount", "Account creation", account.NewCreateAccountHandler(op)),
		2: m.command("Deposit", "deposit", transaction.NewDepositHandler(op, svc.Account)),
		3: m.command("Withdraw", "withdraw", transaction.NewWithdrawHandler(op, svc.Account)),
		4: m.command("ViewBalance", "Balance inquiry", account.NewViewBalanceHandler(svc.Account)),
	}

	return m
}

func (m *Menu) command(name, failure string, h handler) command {
	return command{
		failure: failure,
		run: logging.CommandWrapper(name, m.Logger, func(ctx context.Context, logData *logging.LogData) error {
			return h.Handle(ctx, m.Terminal, logData)
		}),
	}
}

func (m *Menu) printMenu() {
	m.Terminal.Println()
	m.Terminal.Println("1. Create Account")
	m.Terminal.Println("2. Deposit")
	m.Terminal.Println("3. Withdraw")
	m.Terminal.Println("4. View Balance")
	m.Terminal.Println("5. Exit")
}

// Run shows the menu until the operator exits or input ends. Command
// failures are reported and the loop carries on; only a read error on the
// input itself is returned.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printMenu()
		choice, err := m.Terminal.PromptInt("Enter your choice: ")
		switch {
		case errors.Is(err, io.EOF):
			m.Logger.Info("Menu.Run.end of input")
			return nil
		case errors.Is(err, terminal.ErrInvalidNumber):
			choice = 0
		case err != nil:
			return err
		}

		if choice == exitChoice {
			m.Terminal.Println("Exiting program. Goodbye!")
			return nil
		}

		cmd, ok := m.commands[choice]
		if !ok {
			m.Logger.WithField("choice", choice).Debug("Menu.Run.invalid choice")
			m.Terminal.Println(errorMessage("", ErrInvalidMenuChoice))
			continue
		}

		err = cmd.run(ctx)
		if errors.Is(err, io.EOF) {
			m.Terminal.Println()
			m.Logger.Info("Menu.Run.end of input")
			return nil
		}
		if err != nil {
			m.Terminal.Println(errorMessage(cmd.failure, err))
		}
	}
}
