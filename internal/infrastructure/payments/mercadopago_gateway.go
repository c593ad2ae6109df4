package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"auxilio_propg/internal/domain/entities"
	"auxilio_propg/internal/usecase"
	"auxilio_propg/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway records the aid payout with Mercado Pago when a request
// is marked paid. The external record is informational; the request status in
// the store is the source of truth.

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IDisbursementGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isDisbursementMockEnabled() {
		log.Printf("[disbursement][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[disbursement][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[disbursement][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[disbursement][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreateDisbursement(ctx context.Context, r entities.AidRequest) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	amount, err := usecase.ParseBRLValue(r.ApprovedValue)
	if err != nil {
		log.Printf("[disbursement][gateway] bad approved value request_id=%s value=%q err=%v", r.ID, r.ApprovedValue, err)
		return "", "", nil, fmt.Errorf("bad approved value %q: %w", r.ApprovedValue, err)
	}

	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		resp, err := json.Marshal(map[string]any{
			"id":                 id,
			"status":             "approved",
			"external_reference": r.ID,
			"transaction_amount": amount,
			"date_created":       time.Now().UTC().Format(time.RFC3339Nano),
		})
		if err != nil {
			return "", "", nil, err
		}
		log.Printf("[disbursement][gateway] mock create success request_id=%s provider_payment_id=%s", r.ID, id)
		return id, "approved", resp, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[disbursement][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	req := payment.Request{
		TransactionAmount: amount,
		Description:       fmt.Sprintf("Auxílio %s - %s", r.Motive, r.RequesterName),
		ExternalReference: r.ID,
	}
	log.Printf("[disbursement][gateway] create start request_id=%s amount=%.2f", r.ID, amount)

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[disbursement][gateway] sdk create failed request_id=%s err=%v", r.ID, err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[disbursement][gateway] response marshal failed err=%v", err)
		return "", "", nil, err
	}
	log.Printf("[disbursement][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

func isDisbursementMockEnabled() bool {
	for _, key := range []string{"DISBURSEMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
