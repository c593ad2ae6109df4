package request

import "auxilio_propg/internal/domain/entities"

// SendNotificationRequest carries a notification event back for dispatch,
// possibly after a human edited the subject or body.
type SendNotificationRequest struct {
	EventID    string   `json:"event_id"`
	EventKey   string   `json:"event_key" binding:"required"`
	RequestID  string   `json:"request_id"`
	Recipients []string `json:"recipients" binding:"required,min=1"`
	Subject    string   `json:"subject" binding:"required"`
	Body       string   `json:"body" binding:"required"`
}

func (r SendNotificationRequest) ToEvent() entities.NotificationEvent {
	return entities.NotificationEvent{
		ID:         r.EventID,
		EventKey:   r.EventKey,
		RequestID:  r.RequestID,
		Recipients: r.Recipients,
		Subject:    r.Subject,
		Body:       r.Body,
	}
}

// SetRecipientsRequest replaces the configured list for one event key.
type SetRecipientsRequest struct {
	Recipients []string `json:"recipients"`
}

// SetTemplateRequest stores an override body for one template name. An empty
// body clears the override.
type SetTemplateRequest struct {
	Body string `json:"body"`
}

// SetLabelsRequest replaces the field display label overrides.
type SetLabelsRequest struct {
	Labels map[string]string `json:"labels"`
}
