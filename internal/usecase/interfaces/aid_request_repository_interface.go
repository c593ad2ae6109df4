package interfaces

import (
	"context"
	"errors"
	"time"

	"auxilio_propg/internal/domain/entities"
)

// ErrAmbiguousCreatedAt is returned by GetByCreatedAt when more than one row
// carries the same creation timestamp. Legacy rows were keyed by that
// timestamp; duplicates make the lookup ambiguous and must be surfaced, not
// silently deduplicated.
var ErrAmbiguousCreatedAt = errors.New("ambiguous creation timestamp")

// IAidRequestRepository abstracts the shared record store holding aid
// requests. Implementations return a zero-value AidRequest (empty ID) when a
// record is not found.
//
// The store offers no locking primitive: concurrent writers both succeed and
// the later write wins. UpdateFields takes a field map so a future
// implementation can add a version-stamp condition without changing this
// contract.

type IAidRequestRepository interface {
	Create(ctx context.Context, r entities.AidRequest) (entities.AidRequest, error)
	GetByID(ctx context.Context, id string) (entities.AidRequest, error)
	// GetByCreatedAt is a migration compatibility shim for rows created
	// before stable IDs were assigned.
	GetByCreatedAt(ctx context.Context, createdAt time.Time) (entities.AidRequest, error)
	LoadAll(ctx context.Context) ([]entities.AidRequest, error)
	ListByCPF(ctx context.Context, cpf string) ([]entities.AidRequest, error)
	UpdateFields(ctx context.Context, id string, fields map[string]string) (entities.AidRequest, error)
}
