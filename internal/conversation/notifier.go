package conversation

import (
	"context"
	"fmt"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

// Compile-time interface check.
var _ domain.Notifier = (*CLINotifier)(nil)

// PrintFunc is a function used to print formatted output.
// Matches the signature of both fmt.Printf and display.UI.Printf.
type PrintFunc func(format string, a ...interface{})

func orPrintf(fn PrintFunc) PrintFunc {
	if fn != nil {
		return fn
	}
	return func(format string, a ...interface{}) {
		fmt.Printf(format+"\n", a...)
	}
}

// CLINotifier writes notifications through two print functions, one for
// normal messages and one for alerts.
type CLINotifier struct {
	log      *logger.Logger
	printFn  PrintFunc
	urgentFn PrintFunc
}

// NewCLINotifier creates a notifier. If urgentFn is nil, printFn is used
// for both; if printFn is nil, fmt.Printf is used.
func NewCLINotifier(log *logger.Logger, printFn, urgentFn PrintFunc) *CLINotifier {
	printFn = orPrintf(printFn)
	if urgentFn == nil {
		urgentFn = printFn
	}
	return &CLINotifier{log: log, printFn: printFn, urgentFn: urgentFn}
}

// Notify prints a normal notification.
func (n *CLINotifier) Notify(ctx context.Context, message string) error {
	n.log.Debug("notify: %s", message)
	n.printFn("%s", message)
	return nil
}

// NotifyUrgent prints an alert.
func (n *CLINotifier) NotifyUrgent(ctx context.Context, message string) error {
	n.log.Warn("alert: %s", message)
	n.urgentFn("%s", message)
	return nil
}
