package response

import (
	"time"

	"auxilio_propg/internal/domain/entities"
)

type AidRequestResponse struct {
	ID             string    `json:"id"`
	RequesterCPF   string    `json:"requester_cpf"`
	RequesterName  string    `json:"requester_name"`
	RequesterEmail string    `json:"requester_email"`
	Course         string    `json:"course,omitempty"`
	Advisor        string    `json:"advisor,omitempty"`
	Motive         string    `json:"motive,omitempty"`
	Status         string    `json:"status"`
	RequestedValue string    `json:"requested_value,omitempty"`
	ApprovedValue  string    `json:"approved_value,omitempty"`
	Observations   string    `json:"observations,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	LastUpdatedAt  time.Time `json:"last_updated_at"`
	LastModifiedBy string    `json:"last_modified_by,omitempty"`
}

// FromAidRequest maps the entity to its API shape; the status goes out as
// the display label ("Recebido" instead of the stored empty string).
func FromAidRequest(e entities.AidRequest) AidRequestResponse {
	return AidRequestResponse{
		ID:             e.ID,
		RequesterCPF:   e.RequesterCPF,
		RequesterName:  e.RequesterName,
		RequesterEmail: e.RequesterEmail,
		Course:         e.Course,
		Advisor:        e.Advisor,
		Motive:         e.Motive,
		Status:         e.Status.Label(),
		RequestedValue: e.RequestedValue,
		ApprovedValue:  e.ApprovedValue,
		Observations:   e.Observations,
		CreatedAt:      e.CreatedAt,
		LastUpdatedAt:  e.LastUpdatedAt,
		LastModifiedBy: e.LastModifiedBy,
	}
}

func FromAidRequests(es []entities.AidRequest) []AidRequestResponse {
	out := make([]AidRequestResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromAidRequest(e))
	}
	return out
}

// TransitionResponse bundles the updated request with the notification
// events built for the change, still unsent so the caller may edit them.
type TransitionResponse struct {
	Request       AidRequestResponse          `json:"request"`
	Notifications []NotificationEventResponse `json:"notifications,omitempty"`
}

func FromTransition(e entities.AidRequest, events []entities.NotificationEvent) TransitionResponse {
	return TransitionResponse{
		Request:       FromAidRequest(e),
		Notifications: FromNotificationEvents(events),
	}
}
