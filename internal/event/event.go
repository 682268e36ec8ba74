package event

type Type string

const (
	TypeMessageReceived    Type = "message.received"
	TypeReservationCreated Type = "reservation.created"
	TypeReservationUpdated Type = "reservation.updated"
)

type Event struct {
	ID        string `json:"id"`
	Type      Type   `json:"type"`
	Payload   any    `json:"payload"`
	Timestamp string `json:"timestamp"`
}

type Bus interface {
	Publish(e Event)
	Subscribe() (<-chan Event, func())
}
