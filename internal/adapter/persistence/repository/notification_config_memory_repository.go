package repository

import (
	"context"
	"sync"

	"auxilio_propg/internal/usecase/interfaces"
)

// NotificationConfigMemoryRepository keeps configuration documents in memory
// for tests and local runs.

type NotificationConfigMemoryRepository struct {
	mu         sync.RWMutex
	recipients map[string][]string
	templates  map[string]string
	labels     map[string]string
}

var _ interfaces.INotificationConfigRepository = (*NotificationConfigMemoryRepository)(nil)

func NewNotificationConfigMemoryRepository() *NotificationConfigMemoryRepository {
	return &NotificationConfigMemoryRepository{
		recipients: map[string][]string{},
		templates:  map[string]string{},
		labels:     map[string]string{},
	}
}

func (r *NotificationConfigMemoryRepository) GetRecipients(_ context.Context, eventKey string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.recipients[eventKey]...), nil
}

func (r *NotificationConfigMemoryRepository) SetRecipients(_ context.Context, eventKey string, recipients []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recipients[eventKey] = append([]string(nil), recipients...)
	return nil
}

func (r *NotificationConfigMemoryRepository) GetTemplate(_ context.Context, name string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.templates[name], nil
}

func (r *NotificationConfigMemoryRepository) SetTemplate(_ context.Context, name, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates[name] = body
	return nil
}

func (r *NotificationConfigMemoryRepository) GetFieldLabels(_ context.Context) (map[string]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]string, len(r.labels))
	for k, v := range r.labels {
		out[k] = v
	}
	return out, nil
}

func (r *NotificationConfigMemoryRepository) SetFieldLabels(_ context.Context, labels map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.labels = map[string]string{}
	for k, v := range labels {
		r.labels[k] = v
	}
	return nil
}
