package response

import (
	"time"

	"auxilio_propg/internal/domain/entities"
)

type AuditLogEntryResponse struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Category  string    `json:"category"`
	Actor     string    `json:"actor,omitempty"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
	Outcome   string    `json:"outcome"`
}

func FromAuditLogEntry(e entities.AuditLogEntry) AuditLogEntryResponse {
	return AuditLogEntryResponse{
		ID:        e.ID,
		Timestamp: e.Timestamp,
		Level:     string(e.Level),
		Category:  e.Category,
		Actor:     e.Actor,
		Action:    e.Action,
		Details:   e.Details,
		Outcome:   string(e.Outcome),
	}
}

func FromAuditLogEntries(es []entities.AuditLogEntry) []AuditLogEntryResponse {
	out := make([]AuditLogEntryResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromAuditLogEntry(e))
	}
	return out
}
