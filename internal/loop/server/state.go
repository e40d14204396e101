package server

// PlayerHandle is a client's claim on one ship.
type PlayerHandle struct {
	Slot     int
	Name     string
	EventsCh chan Event // Closed by Leave
}

// EventType identifies a server-to-client notification.
type EventType int

const (
	EventRoundReset EventType = iota
	EventServerShutdown
)

// Event is sent from the server to clients.
type Event struct {
	Type  EventType
	Round int // For EventRoundReset
}
