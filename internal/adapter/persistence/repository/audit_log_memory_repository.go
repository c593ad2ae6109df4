package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"auxilio_propg/internal/domain/entities"
	"auxilio_propg/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// AuditLogMemoryRepository is the in-memory audit sink for tests and local
// runs. Append-only; entries are ordered by the timestamp assigned at append.

type AuditLogMemoryRepository struct {
	mu      sync.RWMutex
	entries []entities.AuditLogEntry
	byID    map[string]int
}

var _ interfaces.IAuditLogRepository = (*AuditLogMemoryRepository)(nil)

func NewAuditLogMemoryRepository() *AuditLogMemoryRepository {
	return &AuditLogMemoryRepository{byID: map[string]int{}}
}

func (r *AuditLogMemoryRepository) Append(_ context.Context, e entities.AuditLogEntry) (entities.AuditLogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if idx, ok := r.byID[e.ID]; ok {
		return r.entries[idx], nil
	}
	e.Timestamp = time.Now().UTC()
	r.byID[e.ID] = len(r.entries)
	r.entries = append(r.entries, e)
	return e, nil
}

func (r *AuditLogMemoryRepository) Query(_ context.Context, f entities.AuditLogFilter) ([]entities.AuditLogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entities.AuditLogEntry
	for _, e := range r.entries {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

// Len reports the number of appended entries. Test helper.
func (r *AuditLogMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
