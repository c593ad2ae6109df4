package interfaces

import (
	"context"
	"encoding/json"

	"auxilio_propg/internal/domain/entities"
)

// IDisbursementGateway abstracts the external payment provider used to record
// the aid payout when a request is marked paid. The gateway is optional; the
// lifecycle never depends on it for the status change itself.
type IDisbursementGateway interface {
	CreateDisbursement(ctx context.Context, r entities.AidRequest) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
