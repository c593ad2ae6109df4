package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"auxilio_propg/internal/domain/entities"
	"auxilio_propg/internal/usecase/interfaces"
)

// AidRequestMemoryRepository is the in-memory record store used by tests and
// the local run mode. It mirrors the external store's semantics: no locking
// across read-then-write sequences, so the later of two concurrent writers
// wins.

type AidRequestMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.AidRequest
	order []string
}

var _ interfaces.IAidRequestRepository = (*AidRequestMemoryRepository)(nil)

func NewAidRequestMemoryRepository() *AidRequestMemoryRepository {
	return &AidRequestMemoryRepository{items: map[string]entities.AidRequest{}}
}

func (r *AidRequestMemoryRepository) Create(_ context.Context, e entities.AidRequest) (entities.AidRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[e.ID]; ok {
		return entities.AidRequest{}, fmt.Errorf("request %s already exists", e.ID)
	}
	r.items[e.ID] = e
	r.order = append(r.order, e.ID)
	return e, nil
}

func (r *AidRequestMemoryRepository) GetByID(_ context.Context, id string) (entities.AidRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

func (r *AidRequestMemoryRepository) GetByCreatedAt(ctx context.Context, createdAt time.Time) (entities.AidRequest, error) {
	all, err := r.LoadAll(ctx)
	if err != nil {
		return entities.AidRequest{}, err
	}
	return matchByCreatedAt(all, createdAt)
}

func (r *AidRequestMemoryRepository) LoadAll(_ context.Context) ([]entities.AidRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.AidRequest, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *AidRequestMemoryRepository) ListByCPF(_ context.Context, cpf string) ([]entities.AidRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entities.AidRequest
	for _, id := range r.order {
		if r.items[id].RequesterCPF == cpf {
			out = append(out, r.items[id])
		}
	}
	return out, nil
}

func (r *AidRequestMemoryRepository) UpdateFields(_ context.Context, id string, fields map[string]string) (entities.AidRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.items[id]
	if !ok {
		return entities.AidRequest{}, nil
	}
	for field, value := range fields {
		switch field {
		case entities.FieldStatus:
			e.Status = entities.RequestStatus(value)
		case entities.FieldApprovedValue:
			e.ApprovedValue = value
		case entities.FieldObservations:
			e.Observations = value
		case entities.FieldLastUpdatedAt:
			ts, err := time.Parse(time.RFC3339Nano, value)
			if err != nil {
				return entities.AidRequest{}, fmt.Errorf("bad %s value %q: %w", field, value, err)
			}
			e.LastUpdatedAt = ts
		case entities.FieldLastModifiedBy:
			e.LastModifiedBy = value
		default:
			return entities.AidRequest{}, fmt.Errorf("field %q is not updatable", field)
		}
	}
	r.items[id] = e
	return e, nil
}
