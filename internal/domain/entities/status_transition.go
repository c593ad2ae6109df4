package entities

import "time"

// StatusTransition describes one status change applied to a request. It is
// not persisted on its own; it fully determines the audit entry and the
// notification events built for the change.
type StatusTransition struct {
	RequestID string        `json:"request_id"`
	From      RequestStatus `json:"from_status"`
	To        RequestStatus `json:"to_status"`
	ActorRole Role          `json:"actor_role"`
	ActorName string        `json:"actor_name"`
	Timestamp time.Time     `json:"timestamp"`
}
