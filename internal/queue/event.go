// Package queue defines message payloads exchanged over the message broker
// and the background consumer that turns them into an audit log.
package queue

// CartValidatedEvent is published after every completed cart validation.
// It carries enough information for downstream consumers to log or feed
// analytics without calling back into the API.  Totals travel as decimal
// strings so no consumer is tempted to do float math on money.
type CartValidatedEvent struct {
	EventID     string   `json:"event_id"`
	Valid       bool     `json:"valid"`
	Errors      []string `json:"errors"`
	Total       string   `json:"total"`
	TicketCount int      `json:"ticket_count"`
	AddOnCount  int      `json:"addon_count"`
	ValidatedAt string   `json:"validated_at"`
}
