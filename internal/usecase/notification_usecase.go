package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"auxilio_propg/internal/domain/entities"
	"auxilio_propg/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMailTransportNotConfigured = errors.New("mail transport not configured")
	ErrEmptyNotificationEvent     = errors.New("notification event has no recipients")
	ErrInvalidEventKey            = errors.New("invalid event key")
)

// INotificationUseCase builds and dispatches notification events.
//
// Building and sending are separate steps so a human may review/edit the
// message in between. Send attempts every recipient independently and never
// retries; failures come back in the report for manual re-send.

type INotificationUseCase interface {
	BuildEvents(ctx context.Context, tr entities.StatusTransition, req entities.AidRequest) ([]entities.NotificationEvent, error)
	Send(ctx context.Context, event entities.NotificationEvent) (entities.DeliveryReport, error)
	SendAsync(event entities.NotificationEvent)
	Recipients(ctx context.Context, eventKey string) ([]string, error)
	SetRecipients(ctx context.Context, eventKey string, recipients []string) error
	Template(ctx context.Context, name string) (string, error)
	SetTemplate(ctx context.Context, name, body string) error
	FieldLabels(ctx context.Context) (map[string]string, error)
	SetFieldLabels(ctx context.Context, labels map[string]string) error
}

type NotificationUseCase struct {
	templates *TemplateRegistry
	config    interfaces.INotificationConfigRepository
	mail      interfaces.IMailTransport
	audit     interfaces.IAuditLogRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(
	templates *TemplateRegistry,
	config interfaces.INotificationConfigRepository,
	mail interfaces.IMailTransport,
	audit interfaces.IAuditLogRepository,
) *NotificationUseCase {
	return &NotificationUseCase{templates: templates, config: config, mail: mail, audit: audit}
}

// BuildEvents produces the requester-facing events for the transition and,
// when a recipient list is configured for an event key, a second role-facing
// event addressed only to that list. Acceptance additionally builds the
// initial documents-request message, keyed by the request motive.
func (u *NotificationUseCase) BuildEvents(ctx context.Context, tr entities.StatusTransition, req entities.AidRequest) ([]entities.NotificationEvent, error) {
	keys := []string{u.templates.EventKeyFor(tr.To)}
	if tr.From == entities.StatusRecebido && tr.To == entities.StatusAceito {
		keys = append(keys, u.templates.DocumentsEventKey(req.Motive))
	}

	var events []entities.NotificationEvent
	for _, key := range keys {
		events = append(events, u.buildForKey(ctx, key, tr, req)...)
	}
	return events, nil
}

func (u *NotificationUseCase) buildForKey(ctx context.Context, key string, tr entities.StatusTransition, req entities.AidRequest) []entities.NotificationEvent {
	body, renderErr := u.templates.Render(u.templates.Resolve(ctx, key), req, tr.Timestamp)
	if renderErr != nil {
		log.Printf("[notification][usecase] template render failed key=%q request_id=%s err=%v", key, req.ID, renderErr)
		u.appendAudit(ctx, entities.AuditLogEntry{
			Level:    entities.AuditLevelError,
			Category: entities.AuditCategoryNotification,
			Actor:    tr.ActorName,
			Action:   "TEMPLATE_RENDER",
			Details:  fmt.Sprintf("template %q: %v", key, renderErr),
			Outcome:  entities.AuditOutcomeError,
		})
	}

	events := []entities.NotificationEvent{{
		ID:         uuid.NewString(),
		EventKey:   key,
		RequestID:  req.ID,
		Recipients: []string{req.RequesterEmail},
		Subject:    u.templates.Subject(key),
		Body:       body,
	}}

	configured, err := u.Recipients(ctx, key)
	if err != nil {
		log.Printf("[notification][usecase] recipients lookup failed key=%q err=%v", key, err)
		return events
	}
	if len(configured) > 0 {
		events = append(events, entities.NotificationEvent{
			ID:         uuid.NewString(),
			EventKey:   key,
			RequestID:  req.ID,
			Recipients: configured,
			Subject:    u.templates.Subject(key),
			Body:       body,
		})
	}
	return events
}

// Send delivers event to each recipient independently and returns the
// per-recipient report. A failed recipient never blocks the rest.
func (u *NotificationUseCase) Send(ctx context.Context, event entities.NotificationEvent) (entities.DeliveryReport, error) {
	if u.mail == nil {
		return entities.DeliveryReport{}, ErrMailTransportNotConfigured
	}
	if len(event.Recipients) == 0 {
		return entities.DeliveryReport{}, ErrEmptyNotificationEvent
	}

	report := entities.DeliveryReport{EventID: event.ID}
	failures := 0
	for _, recipient := range event.Recipients {
		attempt := entities.DeliveryAttempt{Recipient: recipient, Delivered: true}
		if err := u.mail.Deliver(ctx, recipient, event.Subject, event.Body); err != nil {
			log.Printf("[notification][usecase] delivery failed event_id=%s recipient=%s err=%v", event.ID, recipient, err)
			attempt.Delivered = false
			attempt.Error = err.Error()
			failures++
		}
		report.Attempts = append(report.Attempts, attempt)
	}

	outcome := entities.AuditOutcomeSuccess
	if failures > 0 {
		outcome = entities.AuditOutcomeError
	}
	u.appendAudit(ctx, entities.AuditLogEntry{
		Level:    entities.AuditLevelInfo,
		Category: entities.AuditCategoryNotification,
		Action:   "NOTIFICATION_SEND",
		Details:  fmt.Sprintf("event %q request %s: %d/%d delivered", event.EventKey, event.RequestID, len(event.Recipients)-failures, len(event.Recipients)),
		Outcome:  outcome,
	})

	log.Printf("[notification][usecase] send done event_id=%s delivered=%d failed=%d", event.ID, len(event.Recipients)-failures, failures)
	return report, nil
}

// SendAsync offloads delivery to a background worker so the caller's thread
// is not held by network latency. Fire and forget: the report is only logged.
func (u *NotificationUseCase) SendAsync(event entities.NotificationEvent) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if _, err := u.Send(ctx, event); err != nil {
			log.Printf("[notification][usecase] async send failed event_id=%s err=%v", event.ID, err)
		}
	}()
}

func (u *NotificationUseCase) Recipients(ctx context.Context, eventKey string) ([]string, error) {
	if u.config == nil {
		return nil, nil
	}
	return u.config.GetRecipients(ctx, eventKey)
}

// SetRecipients replaces the configured list for eventKey. Addresses are
// trimmed; blank entries are dropped.
func (u *NotificationUseCase) SetRecipients(ctx context.Context, eventKey string, recipients []string) error {
	eventKey = strings.TrimSpace(eventKey)
	if eventKey == "" {
		return ErrInvalidEventKey
	}
	cleaned := make([]string, 0, len(recipients))
	for _, r := range recipients {
		if r = strings.TrimSpace(r); r != "" {
			cleaned = append(cleaned, r)
		}
	}
	if err := u.config.SetRecipients(ctx, eventKey, cleaned); err != nil {
		return err
	}
	u.appendAudit(ctx, entities.AuditLogEntry{
		Level:    entities.AuditLevelAudit,
		Category: entities.AuditCategoryConfig,
		Action:   "SET_RECIPIENTS",
		Details:  fmt.Sprintf("event %q: %d recipients", eventKey, len(cleaned)),
		Outcome:  entities.AuditOutcomeSuccess,
	})
	return nil
}

// Template returns the stored override for name, or the builtin body when no
// override exists.
func (u *NotificationUseCase) Template(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidEventKey
	}
	return u.templates.Resolve(ctx, name), nil
}

// SetTemplate stores an override body for the named template. An empty body
// removes the override, falling back to the builtin.
func (u *NotificationUseCase) SetTemplate(ctx context.Context, name, body string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidEventKey
	}
	if err := u.config.SetTemplate(ctx, name, body); err != nil {
		return err
	}
	u.appendAudit(ctx, entities.AuditLogEntry{
		Level:    entities.AuditLevelAudit,
		Category: entities.AuditCategoryConfig,
		Action:   "SET_TEMPLATE",
		Details:  fmt.Sprintf("template %q: %d bytes", name, len(body)),
		Outcome:  entities.AuditOutcomeSuccess,
	})
	return nil
}

func (u *NotificationUseCase) FieldLabels(ctx context.Context) (map[string]string, error) {
	if u.config == nil {
		return nil, nil
	}
	return u.config.GetFieldLabels(ctx)
}

// SetFieldLabels replaces the display label overrides used when rendering
// request fields in messages and exports.
func (u *NotificationUseCase) SetFieldLabels(ctx context.Context, labels map[string]string) error {
	cleaned := make(map[string]string, len(labels))
	for k, v := range labels {
		if k = strings.TrimSpace(k); k != "" {
			cleaned[k] = strings.TrimSpace(v)
		}
	}
	if err := u.config.SetFieldLabels(ctx, cleaned); err != nil {
		return err
	}
	u.appendAudit(ctx, entities.AuditLogEntry{
		Level:    entities.AuditLevelAudit,
		Category: entities.AuditCategoryConfig,
		Action:   "SET_FIELD_LABELS",
		Details:  fmt.Sprintf("%d labels", len(cleaned)),
		Outcome:  entities.AuditOutcomeSuccess,
	})
	return nil
}

func (u *NotificationUseCase) appendAudit(ctx context.Context, e entities.AuditLogEntry) {
	if u.audit == nil {
		return
	}
	if _, err := u.audit.Append(ctx, e); err != nil {
		log.Printf("[notification][usecase] audit append failed action=%s err=%v", e.Action, err)
	}
}
