package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"auxilio_propg/internal/domain/entities"
	"auxilio_propg/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound       = errors.New("aid request not found")
	ErrInvalidRequestID      = errors.New("invalid request id")
	ErrInvalidActor          = errors.New("invalid actor")
	ErrInvalidRequester      = errors.New("invalid requester data")
	ErrInvalidCPF            = errors.New("invalid cpf")
	ErrRequestTerminal       = errors.New("request already in a terminal status")
	ErrInvalidTransition     = errors.New("transition not allowed from the current status")
	ErrPermissionDenied      = errors.New("role not allowed to perform this transition")
	ErrApprovedValueRequired = errors.New("a positive approved value is required to accept a request")
	ErrDetailAccessDenied    = errors.New("role has no access to request details")
	ErrUnknownStatus         = errors.New("unknown target status")
)

// IAidRequestUseCase is the request lifecycle engine exposed to the
// presentation layer.
//
// RequestTransition returns the notification events built for the change but
// never sends them: the caller may let a human review/edit the message before
// handing it to the notification dispatcher.

type IAidRequestUseCase interface {
	Create(ctx context.Context, cmd CreateAidRequestCommand) (entities.AidRequest, []entities.NotificationEvent, error)
	RequestTransition(ctx context.Context, cmd TransitionCommand) (entities.AidRequest, []entities.NotificationEvent, error)
	UpdateObservations(ctx context.Context, id string, actorRole entities.Role, actorName, text string) (entities.AidRequest, error)
	GetByID(ctx context.Context, id string, actorRole entities.Role) (entities.AidRequest, error)
	GetHistory(ctx context.Context, cpf string) ([]entities.AidRequest, error)
	Query(ctx context.Context, status *entities.RequestStatus, term string) ([]entities.AidRequest, error)
}

// CreateAidRequestCommand carries the form submission fields.
type CreateAidRequestCommand struct {
	RequesterCPF   string
	RequesterName  string
	RequesterEmail string
	Course         string
	Advisor        string
	Motive         string
	RequestedValue string
}

// TransitionCommand carries one requested status change.
type TransitionCommand struct {
	RequestID     string
	ActorRole     entities.Role
	ActorName     string
	To            entities.RequestStatus
	ApprovedValue string
}

type AidRequestUseCase struct {
	repo          interfaces.IAidRequestRepository
	audit         interfaces.IAuditLogRepository
	permissions   *PermissionTable
	notifications INotificationUseCase
	disbursement  interfaces.IDisbursementGateway
}

var _ IAidRequestUseCase = (*AidRequestUseCase)(nil)

func NewAidRequestUseCase(
	repo interfaces.IAidRequestRepository,
	audit interfaces.IAuditLogRepository,
	permissions *PermissionTable,
	notifications INotificationUseCase,
	disbursement interfaces.IDisbursementGateway,
) *AidRequestUseCase {
	return &AidRequestUseCase{
		repo:          repo,
		audit:         audit,
		permissions:   permissions,
		notifications: notifications,
		disbursement:  disbursement,
	}
}

// Create registers a submitted request with a stable id and the initial
// (empty) status and builds the submission-confirmation event.
func (u *AidRequestUseCase) Create(ctx context.Context, cmd CreateAidRequestCommand) (entities.AidRequest, []entities.NotificationEvent, error) {
	cmd.RequesterCPF = strings.TrimSpace(cmd.RequesterCPF)
	cmd.RequesterName = strings.TrimSpace(cmd.RequesterName)
	cmd.RequesterEmail = strings.TrimSpace(cmd.RequesterEmail)
	if cmd.RequesterCPF == "" {
		return entities.AidRequest{}, nil, ErrInvalidCPF
	}
	if cmd.RequesterName == "" || cmd.RequesterEmail == "" {
		return entities.AidRequest{}, nil, ErrInvalidRequester
	}

	now := time.Now().UTC()
	r := entities.AidRequest{
		ID:             uuid.NewString(),
		RequesterCPF:   cmd.RequesterCPF,
		RequesterName:  cmd.RequesterName,
		RequesterEmail: cmd.RequesterEmail,
		Course:         strings.TrimSpace(cmd.Course),
		Advisor:        strings.TrimSpace(cmd.Advisor),
		Motive:         strings.TrimSpace(cmd.Motive),
		Status:         entities.StatusRecebido,
		RequestedValue: strings.TrimSpace(cmd.RequestedValue),
		CreatedAt:      now,
		LastUpdatedAt:  now,
		LastModifiedBy: cmd.RequesterName,
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		log.Printf("[aid][usecase] create failed cpf=%s err=%v", cmd.RequesterCPF, err)
		return entities.AidRequest{}, nil, err
	}
	log.Printf("[aid][usecase] create success request_id=%s cpf=%s", created.ID, created.RequesterCPF)

	u.appendAudit(ctx, entities.AuditLogEntry{
		Level:    entities.AuditLevelAudit,
		Category: entities.AuditCategoryDataChange,
		Actor:    created.RequesterName,
		Action:   "REQUEST_CREATED",
		Details:  fmt.Sprintf("request %s motive %q value %s", created.ID, created.Motive, created.RequestedValue),
		Outcome:  entities.AuditOutcomeSuccess,
	})

	events := u.buildEvents(ctx, entities.StatusTransition{
		RequestID: created.ID,
		From:      entities.StatusRecebido,
		To:        entities.StatusRecebido,
		ActorName: created.RequesterName,
		Timestamp: now,
	}, created)
	return created, events, nil
}

// RequestTransition applies one status change. Check order: existence,
// terminal status, state machine edge, role permission, approved value.
// The store write commits before the audit entry and the notification build;
// a write failure means the transition did not happen.
func (u *AidRequestUseCase) RequestTransition(ctx context.Context, cmd TransitionCommand) (entities.AidRequest, []entities.NotificationEvent, error) {
	cmd.RequestID = strings.TrimSpace(cmd.RequestID)
	cmd.ActorName = strings.TrimSpace(cmd.ActorName)
	if cmd.RequestID == "" {
		return entities.AidRequest{}, nil, ErrInvalidRequestID
	}
	if cmd.ActorName == "" || !cmd.ActorRole.Known() {
		return entities.AidRequest{}, nil, ErrInvalidActor
	}
	if !cmd.To.Known() || cmd.To == entities.StatusRecebido {
		return entities.AidRequest{}, nil, ErrUnknownStatus
	}

	current, err := u.repo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		log.Printf("[aid][usecase] load failed request_id=%s err=%v", cmd.RequestID, err)
		return entities.AidRequest{}, nil, err
	}
	if current.ID == "" {
		return entities.AidRequest{}, nil, ErrRequestNotFound
	}
	if current.Status.Terminal() {
		log.Printf("[aid][usecase] transition rejected (terminal) request_id=%s status=%q", cmd.RequestID, current.Status.Label())
		return entities.AidRequest{}, nil, ErrRequestTerminal
	}
	if !TransitionAllowed(current.Status, cmd.To) {
		log.Printf("[aid][usecase] transition rejected (invalid) request_id=%s %q -> %q", cmd.RequestID, current.Status.Label(), cmd.To.Label())
		return entities.AidRequest{}, nil, ErrInvalidTransition
	}
	if !u.permissions.IsAllowed(cmd.ActorRole, current.Status, cmd.To) {
		log.Printf("[aid][usecase] transition rejected (permission) request_id=%s role=%s %q -> %q", cmd.RequestID, cmd.ActorRole, current.Status.Label(), cmd.To.Label())
		return entities.AidRequest{}, nil, ErrPermissionDenied
	}

	cmd.ApprovedValue = strings.TrimSpace(cmd.ApprovedValue)
	accepting := current.Status == entities.StatusRecebido && cmd.To == entities.StatusAceito
	if accepting {
		v, err := ParseBRLValue(cmd.ApprovedValue)
		if err != nil || v <= 0 {
			log.Printf("[aid][usecase] transition rejected (approved value) request_id=%s value=%q", cmd.RequestID, cmd.ApprovedValue)
			return entities.AidRequest{}, nil, ErrApprovedValueRequired
		}
	}

	now := time.Now().UTC()
	fields := map[string]string{
		entities.FieldStatus:         string(cmd.To),
		entities.FieldLastUpdatedAt:  now.Format(time.RFC3339Nano),
		entities.FieldLastModifiedBy: cmd.ActorName,
	}
	// The approved amount is written once, on acceptance; a stray value on a
	// later transition never overwrites it.
	if accepting {
		fields[entities.FieldApprovedValue] = cmd.ApprovedValue
	}

	updated, err := u.repo.UpdateFields(ctx, cmd.RequestID, fields)
	if err != nil {
		log.Printf("[aid][usecase] store write failed request_id=%s err=%v", cmd.RequestID, err)
		return entities.AidRequest{}, nil, fmt.Errorf("store write failed: %w", err)
	}
	if updated.ID == "" {
		return entities.AidRequest{}, nil, ErrRequestNotFound
	}
	log.Printf("[aid][usecase] transition applied request_id=%s %q -> %q by=%s role=%s", cmd.RequestID, current.Status.Label(), cmd.To.Label(), cmd.ActorName, cmd.ActorRole)

	tr := entities.StatusTransition{
		RequestID: cmd.RequestID,
		From:      current.Status,
		To:        cmd.To,
		ActorRole: cmd.ActorRole,
		ActorName: cmd.ActorName,
		Timestamp: now,
	}
	u.appendAudit(ctx, entities.AuditLogEntry{
		Level:    entities.AuditLevelAudit,
		Category: entities.AuditCategoryDataChange,
		Actor:    cmd.ActorName,
		Action:   "STATUS_TRANSITION",
		Details:  fmt.Sprintf("request %s: %q -> %q (role %s)", cmd.RequestID, tr.From.Label(), tr.To.Label(), cmd.ActorRole),
		Outcome:  entities.AuditOutcomeSuccess,
	})

	if cmd.To == entities.StatusPago {
		u.recordDisbursement(ctx, updated)
	}

	events := u.buildEvents(ctx, tr, updated)
	return updated, events, nil
}

// UpdateObservations edits the free-text annotation. It requires detail
// access only (any role but A1) and stays allowed after the request reaches
// a terminal status.
func (u *AidRequestUseCase) UpdateObservations(ctx context.Context, id string, actorRole entities.Role, actorName, text string) (entities.AidRequest, error) {
	id = strings.TrimSpace(id)
	actorName = strings.TrimSpace(actorName)
	if id == "" {
		return entities.AidRequest{}, ErrInvalidRequestID
	}
	if actorName == "" {
		return entities.AidRequest{}, ErrInvalidActor
	}
	if !u.permissions.CanViewDetails(actorRole) {
		return entities.AidRequest{}, ErrDetailAccessDenied
	}

	now := time.Now().UTC()
	updated, err := u.repo.UpdateFields(ctx, id, map[string]string{
		entities.FieldObservations:   text,
		entities.FieldLastUpdatedAt:  now.Format(time.RFC3339Nano),
		entities.FieldLastModifiedBy: actorName,
	})
	if err != nil {
		log.Printf("[aid][usecase] observations write failed request_id=%s err=%v", id, err)
		return entities.AidRequest{}, err
	}
	if updated.ID == "" {
		return entities.AidRequest{}, ErrRequestNotFound
	}

	u.appendAudit(ctx, entities.AuditLogEntry{
		Level:    entities.AuditLevelAudit,
		Category: entities.AuditCategoryDataChange,
		Actor:    actorName,
		Action:   "OBSERVATIONS_UPDATED",
		Details:  fmt.Sprintf("request %s (role %s)", id, actorRole),
		Outcome:  entities.AuditOutcomeSuccess,
	})
	return updated, nil
}

// GetByID returns one request, gated by detail access.
func (u *AidRequestUseCase) GetByID(ctx context.Context, id string, actorRole entities.Role) (entities.AidRequest, error) {
	if !u.permissions.CanViewDetails(actorRole) {
		return entities.AidRequest{}, ErrDetailAccessDenied
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.AidRequest{}, ErrInvalidRequestID
	}
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.AidRequest{}, err
	}
	if r.ID == "" {
		return entities.AidRequest{}, ErrRequestNotFound
	}
	return r, nil
}

// GetHistory returns every request submitted by one person, oldest first, so
// reviewers see the cross-request context in chronological order.
func (u *AidRequestUseCase) GetHistory(ctx context.Context, cpf string) ([]entities.AidRequest, error) {
	cpf = strings.TrimSpace(cpf)
	if cpf == "" {
		return nil, ErrInvalidCPF
	}
	rs, err := u.repo.ListByCPF(ctx, cpf)
	if err != nil {
		return nil, err
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i].CreatedAt.Before(rs[j].CreatedAt) })
	return rs, nil
}

// Query filters requests by status (nil means any, including "Recebido"
// whose stored value is empty) and a case-insensitive term matched against
// requester name, CPF and course.
func (u *AidRequestUseCase) Query(ctx context.Context, status *entities.RequestStatus, term string) ([]entities.AidRequest, error) {
	all, err := u.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]entities.AidRequest, 0, len(all))
	for _, r := range all {
		if status != nil && r.Status != *status {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(r.RequesterName), term) &&
			!strings.Contains(r.RequesterCPF, term) &&
			!strings.Contains(strings.ToLower(r.Course), term) {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (u *AidRequestUseCase) buildEvents(ctx context.Context, tr entities.StatusTransition, req entities.AidRequest) []entities.NotificationEvent {
	if u.notifications == nil {
		return nil
	}
	events, err := u.notifications.BuildEvents(ctx, tr, req)
	if err != nil {
		log.Printf("[aid][usecase] notification build failed request_id=%s err=%v", req.ID, err)
		return nil
	}
	return events
}

// recordDisbursement registers the payout with the external provider. Best
// effort: the status change already committed, so gateway failures are only
// logged and audited.
func (u *AidRequestUseCase) recordDisbursement(ctx context.Context, req entities.AidRequest) {
	if u.disbursement == nil {
		return
	}
	providerID, providerStatus, _, err := u.disbursement.CreateDisbursement(ctx, req)
	if err != nil {
		log.Printf("[aid][usecase] disbursement failed request_id=%s err=%v", req.ID, err)
		u.appendAudit(ctx, entities.AuditLogEntry{
			Level:    entities.AuditLevelError,
			Category: entities.AuditCategoryDataChange,
			Actor:    req.LastModifiedBy,
			Action:   "DISBURSEMENT",
			Details:  fmt.Sprintf("request %s: %v", req.ID, err),
			Outcome:  entities.AuditOutcomeError,
		})
		return
	}
	log.Printf("[aid][usecase] disbursement recorded request_id=%s provider_payment_id=%s provider_status=%s", req.ID, providerID, providerStatus)
}

// appendAudit records e best-effort: a logging failure never blocks or rolls
// back the operation that produced it.
func (u *AidRequestUseCase) appendAudit(ctx context.Context, e entities.AuditLogEntry) {
	if u.audit == nil {
		return
	}
	if _, err := u.audit.Append(ctx, e); err != nil {
		log.Printf("[aid][usecase] audit append failed action=%s err=%v", e.Action, err)
	}
}

// ParseBRLValue parses a Brazilian-notation decimal ("1.500,00") into a
// float. Plain dot-decimal input is accepted as well.
func ParseBRLValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return strconv.ParseFloat(s, 64)
}
