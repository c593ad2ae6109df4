package response

import "auxilio_propg/internal/domain/entities"

type NotificationEventResponse struct {
	EventID    string   `json:"event_id"`
	EventKey   string   `json:"event_key"`
	RequestID  string   `json:"request_id,omitempty"`
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject"`
	Body       string   `json:"body"`
}

func FromNotificationEvent(e entities.NotificationEvent) NotificationEventResponse {
	return NotificationEventResponse{
		EventID:    e.ID,
		EventKey:   e.EventKey,
		RequestID:  e.RequestID,
		Recipients: e.Recipients,
		Subject:    e.Subject,
		Body:       e.Body,
	}
}

func FromNotificationEvents(es []entities.NotificationEvent) []NotificationEventResponse {
	if len(es) == 0 {
		return nil
	}
	out := make([]NotificationEventResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromNotificationEvent(e))
	}
	return out
}

type DeliveryAttemptResponse struct {
	Recipient string `json:"recipient"`
	Delivered bool   `json:"delivered"`
	Error     string `json:"error,omitempty"`
}

type DeliveryReportResponse struct {
	EventID  string                    `json:"event_id"`
	Attempts []DeliveryAttemptResponse `json:"attempts"`
}

func FromDeliveryReport(r entities.DeliveryReport) DeliveryReportResponse {
	out := DeliveryReportResponse{EventID: r.EventID}
	for _, a := range r.Attempts {
		out.Attempts = append(out.Attempts, DeliveryAttemptResponse{
			Recipient: a.Recipient,
			Delivered: a.Delivered,
			Error:     a.Error,
		})
	}
	return out
}
