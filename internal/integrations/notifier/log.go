package notifier

import "context"

// LogNotifier пишет события в лог, когда брокер выключен
type LogNotifier struct {
	log Logger
}

// NewLogNotifier создает нотификатор, который только логирует события
func NewLogNotifier(log Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// PublishClosedDayConflict логирует событие
func (n *LogNotifier) PublishClosedDayConflict(_ context.Context, event ClosedDayConflict) error {
	n.log.Warn("Notifier: closed date %s has %d active appointment(s): %v",
		event.Date, len(event.AppointmentIDs), event.AppointmentIDs)
	return nil
}
