package entities

import "time"

// RequestStatus represents the lifecycle of a financial-aid request (auxílio).
//
// Domain notes:
//   - A request enters the system with the empty status ("Recebido").
//   - "Pago" and "Cancelado" are terminal; no transition leaves them.
//   - Status transitions are driven exclusively by the lifecycle use case.

type RequestStatus string

const (
	StatusRecebido               RequestStatus = ""
	StatusAceito                 RequestStatus = "Aceito"
	StatusAguardandoDocumentacao RequestStatus = "Aguardando documentação"
	StatusProntoPagamento        RequestStatus = "Pronto para pagamento"
	StatusPago                   RequestStatus = "Pago"
	StatusCancelado              RequestStatus = "Cancelado"
)

// Terminal reports whether no further status transition is permitted.
func (s RequestStatus) Terminal() bool {
	return s == StatusPago || s == StatusCancelado
}

// Label returns the display name; the stored value for a freshly received
// request is the empty string.
func (s RequestStatus) Label() string {
	if s == StatusRecebido {
		return "Recebido"
	}
	return string(s)
}

// Known returns whether s is one of the lifecycle statuses.
func (s RequestStatus) Known() bool {
	switch s {
	case StatusRecebido, StatusAceito, StatusAguardandoDocumentacao,
		StatusProntoPagamento, StatusPago, StatusCancelado:
		return true
	}
	return false
}

// Motive categories used to pick the documents-request message. Unrecognized
// motives fall back to "Outros".
const (
	MotiveTrabalhoCampo       = "Trabalho de Campo"
	MotiveParticipacaoEventos = "Participação em eventos"
	MotiveVisitaTecnica       = "Visita técnica"
)

// Field names accepted by IAidRequestRepository.UpdateFields. Repositories
// translate them to their own column/attribute naming.
const (
	FieldStatus         = "status"
	FieldApprovedValue  = "approved_value"
	FieldObservations   = "observations"
	FieldLastUpdatedAt  = "last_updated_at"
	FieldLastModifiedBy = "last_modified_by"
)

// AidRequest is one financial-aid application tracked through the lifecycle.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (cpf-index): requester_cpf
//
// Monetary representation:
//   - RequestedValue and ApprovedValue keep the Brazilian decimal notation
//     submitted on the form (e.g. "1.500,00"). ApprovedValue is set on the
//     first approving transition and stays empty while the request is
//     "Recebido".

type AidRequest struct {
	ID             string        `json:"id"`
	RequesterCPF   string        `json:"requester_cpf"`
	RequesterName  string        `json:"requester_name"`
	RequesterEmail string        `json:"requester_email"`
	Course         string        `json:"course"`
	Advisor        string        `json:"advisor"`
	Motive         string        `json:"motive"`
	Status         RequestStatus `json:"status"`
	RequestedValue string        `json:"requested_value"`
	ApprovedValue  string        `json:"approved_value,omitempty"`
	Observations   string        `json:"observations,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	LastUpdatedAt  time.Time     `json:"last_updated_at"`
	LastModifiedBy string        `json:"last_modified_by,omitempty"`
}
