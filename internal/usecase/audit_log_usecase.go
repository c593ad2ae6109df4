package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"auxilio_propg/internal/domain/entities"
	"auxilio_propg/internal/usecase/interfaces"
)

var ErrAuditAccessDenied = errors.New("role has no access to the audit log")

// IAuditLogUseCase is the read path over the append-only audit sink plus the
// security-event helper used by the login layer.
type IAuditLogUseCase interface {
	Query(ctx context.Context, actorRole entities.Role, f entities.AuditLogFilter) ([]entities.AuditLogEntry, error)
	RecordAuth(ctx context.Context, actor, action string, ok bool)
}

type AuditLogUseCase struct {
	repo        interfaces.IAuditLogRepository
	permissions *PermissionTable
}

var _ IAuditLogUseCase = (*AuditLogUseCase)(nil)

func NewAuditLogUseCase(repo interfaces.IAuditLogRepository, permissions *PermissionTable) *AuditLogUseCase {
	return &AuditLogUseCase{repo: repo, permissions: permissions}
}

// Query returns matching entries newest first. Reading the log requires
// configuration-administration rights.
func (u *AuditLogUseCase) Query(ctx context.Context, actorRole entities.Role, f entities.AuditLogFilter) ([]entities.AuditLogEntry, error) {
	if !u.permissions.CanAdministerConfig(actorRole) {
		return nil, ErrAuditAccessDenied
	}
	return u.repo.Query(ctx, f)
}

// RecordAuth appends a SECURITY entry for a login attempt. Best effort.
func (u *AuditLogUseCase) RecordAuth(ctx context.Context, actor, action string, ok bool) {
	outcome := entities.AuditOutcomeSuccess
	if !ok {
		outcome = entities.AuditOutcomeError
	}
	_, err := u.repo.Append(ctx, entities.AuditLogEntry{
		Level:    entities.AuditLevelSecurity,
		Category: entities.AuditCategoryAuth,
		Actor:    strings.TrimSpace(actor),
		Action:   action,
		Outcome:  outcome,
	})
	if err != nil {
		log.Printf("[audit][usecase] security append failed actor=%s action=%s err=%v", actor, action, err)
	}
}
