package interfaces

import (
	"context"

	"auxilio_propg/internal/domain/entities"
)

// IAuditLogRepository abstracts the append-only audit sink.
//
// Append assigns the entry timestamp (and an ID when the caller left it
// empty) and is idempotent on ID: re-appending an existing entry returns the
// stored one unchanged. Query returns entries newest first.

type IAuditLogRepository interface {
	Append(ctx context.Context, e entities.AuditLogEntry) (entities.AuditLogEntry, error)
	Query(ctx context.Context, f entities.AuditLogFilter) ([]entities.AuditLogEntry, error)
}
