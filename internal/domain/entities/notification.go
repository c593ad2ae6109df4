package entities

// Event keys select both the message template and the configured recipient
// list for a transition. Status-driven keys are fixed; the documents-request
// path keys by the request motive instead ("Trabalho de Campo", ...), falling
// back to "Outros".
const (
	EventKeyAprovacao       = "Aprovação"
	EventKeyPagamento       = "Pagamento"
	EventKeyCancelamento    = "Cancelamento"
	EventKeyProntoPagamento = "ProntoPagamento"
	EventKeyAguardandoDocs  = "AguardandoDocumentacao"
	EventKeyConfirmacao     = "Confirmação"
	EventKeyOutros          = "Outros"
)

// NotificationEvent is a rendered message ready for dispatch. The lifecycle
// use case builds events but never sends them; the caller may edit subject
// and body before handing the event to the dispatcher.
type NotificationEvent struct {
	ID         string   `json:"id"`
	EventKey   string   `json:"event_key"`
	RequestID  string   `json:"request_id"`
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject"`
	Body       string   `json:"body"`
}

// DeliveryAttempt is the outcome of one recipient's delivery. Attempts are
// independent; a failed recipient never blocks the others and is never
// retried automatically.
type DeliveryAttempt struct {
	Recipient string `json:"recipient"`
	Delivered bool   `json:"delivered"`
	Error     string `json:"error,omitempty"`
}

// DeliveryReport aggregates the per-recipient outcomes of one dispatch.
type DeliveryReport struct {
	EventID  string            `json:"event_id"`
	Attempts []DeliveryAttempt `json:"attempts"`
}

// Failed returns the attempts that did not deliver, for manual re-send.
func (r DeliveryReport) Failed() []DeliveryAttempt {
	var out []DeliveryAttempt
	for _, a := range r.Attempts {
		if !a.Delivered {
			out = append(out, a)
		}
	}
	return out
}
