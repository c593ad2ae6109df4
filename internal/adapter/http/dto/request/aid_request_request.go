package request

import (
	"strings"

	"auxilio_propg/internal/domain/entities"
)

// CreateAidRequest is the form-submission payload.
type CreateAidRequest struct {
	RequesterCPF   string `json:"requester_cpf" binding:"required"`
	RequesterName  string `json:"requester_name" binding:"required"`
	RequesterEmail string `json:"requester_email" binding:"required,email"`
	Course         string `json:"course"`
	Advisor        string `json:"advisor"`
	Motive         string `json:"motive"`
	RequestedValue string `json:"requested_value"`
}

// TransitionRequest asks for one status change. The target status accepts
// the display labels used throughout the system ("Aceito", "Pago", ...).
type TransitionRequest struct {
	TargetStatus  string `json:"target_status" binding:"required"`
	ApprovedValue string `json:"approved_value"`
}

// statusByLabel maps display labels back to stored statuses. "Recebido" is
// deliberately absent: no transition targets the initial status.
var statusByLabel = map[string]entities.RequestStatus{
	"Aceito":                  entities.StatusAceito,
	"Aguardando documentação": entities.StatusAguardandoDocumentacao,
	"Pronto para pagamento":   entities.StatusProntoPagamento,
	"Pago":                    entities.StatusPago,
	"Cancelado":               entities.StatusCancelado,
}

// ResolveTargetStatus returns the parsed status and whether the label is a
// valid transition target.
func (r TransitionRequest) ResolveTargetStatus() (entities.RequestStatus, bool) {
	s, ok := statusByLabel[strings.TrimSpace(r.TargetStatus)]
	return s, ok
}

// ResolveStatusFilter parses an optional ?status= query value, where the
// label "Recebido" is a valid filter even though its stored value is empty.
func ResolveStatusFilter(label string) (*entities.RequestStatus, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, true
	}
	if label == "Recebido" {
		s := entities.StatusRecebido
		return &s, true
	}
	if s, ok := statusByLabel[label]; ok {
		return &s, true
	}
	return nil, false
}

// UpdateObservationsRequest replaces the free-text annotation. An empty
// string clears it, so the field carries no required binding.
type UpdateObservationsRequest struct {
	Observations string `json:"observations"`
}
