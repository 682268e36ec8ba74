package event

import (
	"context"
	"log/slog"
)

// Notifier consumes bus events and records the notification that would be
// mailed to staff. Actual delivery is out of scope; this keeps the intake
// pipeline observable and gives a mailer a single seam to plug into.
type Notifier struct {
	bus Bus
}

func NewNotifier(bus Bus) *Notifier {
	return &Notifier{bus: bus}
}

// Run blocks until ctx is cancelled.
func (n *Notifier) Run(ctx context.Context) {
	events, unsubscribe := n.bus.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-events:
			if !ok {
				return
			}
			switch e.Type {
			case TypeMessageReceived:
				slog.Info("notification: new contact message", "event_id", e.ID)
			case TypeReservationCreated:
				slog.Info("notification: new reservation", "event_id", e.ID)
			case TypeReservationUpdated:
				slog.Info("notification: reservation updated", "event_id", e.ID)
			default:
				slog.Debug("unhandled event", "event_id", e.ID, "type", string(e.Type))
			}
		}
	}
}
