package broker

// NATS subjects carrying domain events.
const (
	TodoEventsSubject = "daylist.todo.events"
	UserEventsSubject = "daylist.user.events"
)
