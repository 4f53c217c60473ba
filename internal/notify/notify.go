// Package notify is the user-facing message channel the core reports
// through. Delivery is fire-and-forget; the core never reads anything back.
package notify

import "github.com/rs/zerolog"

// Severity grades a notification.
type Severity string

const (
	Info    Severity = "info"
	Success Severity = "success"
	Warn    Severity = "warn"
	Error   Severity = "error"
)

// Notifier receives user-facing messages.
type Notifier interface {
	Notify(message string, severity Severity)
}

// LogNotifier renders notifications through a zerolog logger.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier returns a Notifier backed by log.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify implements Notifier.
func (n *LogNotifier) Notify(message string, severity Severity) {
	var ev *zerolog.Event
	switch severity {
	case Warn:
		ev = n.log.Warn()
	case Error:
		ev = n.log.Error()
	default:
		ev = n.log.Info()
	}
	ev.Str("severity", string(severity)).Msg(message)
}

// Discard drops every notification. Useful in tests.
type Discard struct{}

// Notify implements Notifier.
func (Discard) Notify(string, Severity) {}
