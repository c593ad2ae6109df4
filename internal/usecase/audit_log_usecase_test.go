package usecase

import (
	"context"
	"errors"
	"testing"

	"auxilio_propg/internal/domain/entities"
	mock_interfaces "auxilio_propg/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuditLogUseCase_Query(t *testing.T) {
	t.Run("only the administrator reads the log", func(t *testing.T) {
		uc := NewAuditLogUseCase(nil, NewPermissionTable())
		for _, role := range []entities.Role{entities.RoleA1, entities.RoleA2, entities.RoleA3, entities.RoleA4} {
			if _, err := uc.Query(context.Background(), role, entities.AuditLogFilter{}); !errors.Is(err, ErrAuditAccessDenied) {
				t.Fatalf("role %s: expected ErrAuditAccessDenied, got %v", role, err)
			}
		}
	})

	t.Run("filter is forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuditLogRepository(ctrl)
		uc := NewAuditLogUseCase(repo, NewPermissionTable())

		filter := entities.AuditLogFilter{Level: entities.AuditLevelError, Actor: "Bia"}
		repo.EXPECT().Query(gomock.Any(), filter).Return([]entities.AuditLogEntry{{ID: "e1"}}, nil)

		entries, err := uc.Query(context.Background(), entities.RoleA5, filter)
		if err != nil || len(entries) != 1 || entries[0].ID != "e1" {
			t.Fatalf("unexpected result %+v (err %v)", entries, err)
		}
	})
}

func TestAuditLogUseCase_RecordAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIAuditLogRepository(ctrl)
	uc := NewAuditLogUseCase(repo, NewPermissionTable())

	repo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e entities.AuditLogEntry) (entities.AuditLogEntry, error) {
			if e.Level != entities.AuditLevelSecurity || e.Category != entities.AuditCategoryAuth {
				t.Fatalf("unexpected entry: %+v", e)
			}
			if e.Actor != "Bia" || e.Outcome != entities.AuditOutcomeError {
				t.Fatalf("unexpected entry: %+v", e)
			}
			return e, nil
		},
	)

	uc.RecordAuth(context.Background(), " Bia ", "LOGIN", false)
}
