package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"auxilio_propg/internal/domain/entities"
	mock_interfaces "auxilio_propg/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNotificationUseCase_BuildEvents(t *testing.T) {
	req := entities.AidRequest{
		ID:             "req-1",
		RequesterName:  "Ana Souza",
		RequesterEmail: "ana@usp.br",
		Motive:         entities.MotiveTrabalhoCampo,
		ApprovedValue:  "1.500,00",
	}
	trPago := entities.StatusTransition{
		RequestID: "req-1",
		From:      entities.StatusProntoPagamento,
		To:        entities.StatusPago,
		ActorName: "Bia",
		Timestamp: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	trAceito := entities.StatusTransition{
		RequestID: "req-1",
		From:      entities.StatusRecebido,
		To:        entities.StatusAceito,
		ActorName: "Bia",
		Timestamp: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}

	t.Run("requester-only event without configured recipients", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		config := mock_interfaces.NewMockINotificationConfigRepository(ctrl)
		uc := NewNotificationUseCase(NewTemplateRegistry(config), config, nil, nil)

		config.EXPECT().GetTemplate(gomock.Any(), entities.EventKeyPagamento).Return("", nil)
		config.EXPECT().GetRecipients(gomock.Any(), entities.EventKeyPagamento).Return(nil, nil)

		events, err := uc.BuildEvents(context.Background(), trPago, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(events))
		}
		e := events[0]
		if e.EventKey != entities.EventKeyPagamento || e.ID == "" {
			t.Fatalf("unexpected event: %+v", e)
		}
		if len(e.Recipients) != 1 || e.Recipients[0] != "ana@usp.br" {
			t.Fatalf("expected the requester address, got %v", e.Recipients)
		}
		if !strings.Contains(e.Body, "1.500,00") {
			t.Fatalf("expected rendered body, got %q", e.Body)
		}
	})

	t.Run("second event for the configured role list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		config := mock_interfaces.NewMockINotificationConfigRepository(ctrl)
		uc := NewNotificationUseCase(NewTemplateRegistry(config), config, nil, nil)

		config.EXPECT().GetTemplate(gomock.Any(), entities.EventKeyPagamento).Return("", nil)
		config.EXPECT().GetRecipients(gomock.Any(), entities.EventKeyPagamento).Return([]string{"secretaria@usp.br"}, nil)

		events, err := uc.BuildEvents(context.Background(), trPago, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(events))
		}
		if events[1].Recipients[0] != "secretaria@usp.br" || events[1].Body != events[0].Body {
			t.Fatalf("unexpected role event: %+v", events[1])
		}
	})

	t.Run("acceptance adds the documents request keyed by motive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		config := mock_interfaces.NewMockINotificationConfigRepository(ctrl)
		uc := NewNotificationUseCase(NewTemplateRegistry(config), config, nil, nil)

		config.EXPECT().GetTemplate(gomock.Any(), entities.EventKeyAprovacao).Return("", nil)
		config.EXPECT().GetRecipients(gomock.Any(), entities.EventKeyAprovacao).Return(nil, nil)
		config.EXPECT().GetTemplate(gomock.Any(), entities.MotiveTrabalhoCampo).Return("", nil)
		config.EXPECT().GetRecipients(gomock.Any(), entities.MotiveTrabalhoCampo).Return(nil, nil)

		events, err := uc.BuildEvents(context.Background(), trAceito, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(events))
		}
		if events[0].EventKey != entities.EventKeyAprovacao {
			t.Fatalf("unexpected first event: %+v", events[0])
		}
		if events[1].EventKey != entities.MotiveTrabalhoCampo {
			t.Fatalf("unexpected documents event: %+v", events[1])
		}
	})

	t.Run("acceptance with an unknown motive falls back to the generic key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		config := mock_interfaces.NewMockINotificationConfigRepository(ctrl)
		uc := NewNotificationUseCase(NewTemplateRegistry(config), config, nil, nil)

		config.EXPECT().GetTemplate(gomock.Any(), entities.EventKeyAprovacao).Return("", nil)
		config.EXPECT().GetRecipients(gomock.Any(), entities.EventKeyAprovacao).Return(nil, nil)
		config.EXPECT().GetTemplate(gomock.Any(), entities.EventKeyOutros).Return("", nil)
		config.EXPECT().GetRecipients(gomock.Any(), entities.EventKeyOutros).Return(nil, nil)

		other := req
		other.Motive = "Motivo desconhecido"
		events, err := uc.BuildEvents(context.Background(), trAceito, other)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 2 || events[1].EventKey != entities.EventKeyOutros {
			t.Fatalf("expected a generic documents event, got %+v", events)
		}
	})

	t.Run("awaiting documentation uses its own key, not the motive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		config := mock_interfaces.NewMockINotificationConfigRepository(ctrl)
		uc := NewNotificationUseCase(NewTemplateRegistry(config), config, nil, nil)

		config.EXPECT().GetTemplate(gomock.Any(), entities.EventKeyAguardandoDocs).Return("", nil)
		config.EXPECT().GetRecipients(gomock.Any(), entities.EventKeyAguardandoDocs).Return(nil, nil)

		trDocs := trPago
		trDocs.From = entities.StatusAceito
		trDocs.To = entities.StatusAguardandoDocumentacao
		events, err := uc.BuildEvents(context.Background(), trDocs, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 1 || events[0].EventKey != entities.EventKeyAguardandoDocs {
			t.Fatalf("expected the fixed documentation key, got %+v", events)
		}
	})

	t.Run("broken override falls back and audits the render error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		config := mock_interfaces.NewMockINotificationConfigRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditLogRepository(ctrl)
		uc := NewNotificationUseCase(NewTemplateRegistry(config), config, nil, audit)

		config.EXPECT().GetTemplate(gomock.Any(), entities.EventKeyPagamento).Return("Olá {{.Inexistente}}", nil)
		config.EXPECT().GetRecipients(gomock.Any(), entities.EventKeyPagamento).Return(nil, nil)
		audit.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.AuditLogEntry) (entities.AuditLogEntry, error) {
				if e.Action != "TEMPLATE_RENDER" || e.Level != entities.AuditLevelError {
					t.Fatalf("unexpected audit entry: %+v", e)
				}
				return e, nil
			},
		)

		events, err := uc.BuildEvents(context.Background(), trPago, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 1 || !strings.Contains(events[0].Body, "Ana Souza") {
			t.Fatalf("expected fallback body event, got %+v", events)
		}
	})
}

func TestNotificationUseCase_Send(t *testing.T) {
	event := entities.NotificationEvent{
		ID:         "ev-1",
		EventKey:   entities.EventKeyAprovacao,
		RequestID:  "req-1",
		Recipients: []string{"ana@usp.br", "secretaria@usp.br"},
		Subject:    "Auxílio aprovado",
		Body:       "corpo",
	}

	t.Run("no transport", func(t *testing.T) {
		uc := NewNotificationUseCase(NewTemplateRegistry(nil), nil, nil, nil)
		_, err := uc.Send(context.Background(), event)
		if !errors.Is(err, ErrMailTransportNotConfigured) {
			t.Fatalf("expected ErrMailTransportNotConfigured, got %v", err)
		}
	})

	t.Run("no recipients", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mail := mock_interfaces.NewMockIMailTransport(ctrl)
		uc := NewNotificationUseCase(NewTemplateRegistry(nil), nil, mail, nil)

		_, err := uc.Send(context.Background(), entities.NotificationEvent{ID: "ev-2"})
		if !errors.Is(err, ErrEmptyNotificationEvent) {
			t.Fatalf("expected ErrEmptyNotificationEvent, got %v", err)
		}
	})

	t.Run("partial failure is reported, not retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mail := mock_interfaces.NewMockIMailTransport(ctrl)
		audit := mock_interfaces.NewMockIAuditLogRepository(ctrl)
		uc := NewNotificationUseCase(NewTemplateRegistry(nil), nil, mail, audit)

		mail.EXPECT().Deliver(gomock.Any(), "ana@usp.br", event.Subject, event.Body).Return(errors.New("mailbox full")).Times(1)
		mail.EXPECT().Deliver(gomock.Any(), "secretaria@usp.br", event.Subject, event.Body).Return(nil).Times(1)
		audit.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.AuditLogEntry) (entities.AuditLogEntry, error) {
				if e.Action != "NOTIFICATION_SEND" || e.Outcome != entities.AuditOutcomeError {
					t.Fatalf("unexpected audit entry: %+v", e)
				}
				return e, nil
			},
		)

		report, err := uc.Send(context.Background(), event)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(report.Attempts) != 2 {
			t.Fatalf("expected 2 attempts, got %d", len(report.Attempts))
		}
		failed := report.Failed()
		if len(failed) != 1 || failed[0].Recipient != "ana@usp.br" || failed[0].Error != "mailbox full" {
			t.Fatalf("unexpected failures: %+v", failed)
		}
	})

	t.Run("full success audits success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mail := mock_interfaces.NewMockIMailTransport(ctrl)
		audit := mock_interfaces.NewMockIAuditLogRepository(ctrl)
		uc := NewNotificationUseCase(NewTemplateRegistry(nil), nil, mail, audit)

		mail.EXPECT().Deliver(gomock.Any(), gomock.Any(), event.Subject, event.Body).Return(nil).Times(2)
		audit.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.AuditLogEntry) (entities.AuditLogEntry, error) {
				if e.Outcome != entities.AuditOutcomeSuccess {
					t.Fatalf("unexpected outcome: %q", e.Outcome)
				}
				return e, nil
			},
		)

		report, err := uc.Send(context.Background(), event)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(report.Failed()) != 0 {
			t.Fatalf("expected no failures, got %+v", report.Failed())
		}
	})
}

func TestNotificationUseCase_SetRecipients(t *testing.T) {
	t.Run("empty event key", func(t *testing.T) {
		uc := NewNotificationUseCase(NewTemplateRegistry(nil), nil, nil, nil)
		if err := uc.SetRecipients(context.Background(), "  ", nil); !errors.Is(err, ErrInvalidEventKey) {
			t.Fatalf("expected ErrInvalidEventKey, got %v", err)
		}
	})

	t.Run("addresses are trimmed and blanks dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		config := mock_interfaces.NewMockINotificationConfigRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditLogRepository(ctrl)
		uc := NewNotificationUseCase(NewTemplateRegistry(config), config, nil, audit)

		config.EXPECT().SetRecipients(gomock.Any(), entities.EventKeyAprovacao, []string{"a@usp.br", "b@usp.br"}).Return(nil)
		audit.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.AuditLogEntry) (entities.AuditLogEntry, error) {
				if e.Action != "SET_RECIPIENTS" || e.Category != entities.AuditCategoryConfig {
					t.Fatalf("unexpected audit entry: %+v", e)
				}
				return e, nil
			},
		)

		err := uc.SetRecipients(context.Background(), entities.EventKeyAprovacao, []string{" a@usp.br ", "", "b@usp.br"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestNotificationUseCase_Templates(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		uc := NewNotificationUseCase(NewTemplateRegistry(nil), nil, nil, nil)
		if _, err := uc.Template(context.Background(), " "); !errors.Is(err, ErrInvalidEventKey) {
			t.Fatalf("expected ErrInvalidEventKey, got %v", err)
		}
		if err := uc.SetTemplate(context.Background(), "", "corpo"); !errors.Is(err, ErrInvalidEventKey) {
			t.Fatalf("expected ErrInvalidEventKey, got %v", err)
		}
	})

	t.Run("reading resolves the effective body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		config := mock_interfaces.NewMockINotificationConfigRepository(ctrl)
		uc := NewNotificationUseCase(NewTemplateRegistry(config), config, nil, nil)

		config.EXPECT().GetTemplate(gomock.Any(), entities.EventKeyAprovacao).Return("", nil)

		body, err := uc.Template(context.Background(), entities.EventKeyAprovacao)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if body != defaultTemplates[entities.EventKeyAprovacao] {
			t.Fatalf("expected builtin body, got %q", body)
		}
	})

	t.Run("storing an override audits the change", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		config := mock_interfaces.NewMockINotificationConfigRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditLogRepository(ctrl)
		uc := NewNotificationUseCase(NewTemplateRegistry(config), config, nil, audit)

		config.EXPECT().SetTemplate(gomock.Any(), entities.EventKeyAprovacao, "Olá {{.Name}}").Return(nil)
		audit.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.AuditLogEntry) (entities.AuditLogEntry, error) {
				if e.Action != "SET_TEMPLATE" || e.Category != entities.AuditCategoryConfig {
					t.Fatalf("unexpected audit entry: %+v", e)
				}
				return e, nil
			},
		)

		if err := uc.SetTemplate(context.Background(), entities.EventKeyAprovacao, "Olá {{.Name}}"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestNotificationUseCase_FieldLabels(t *testing.T) {
	t.Run("blank keys dropped, values trimmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		config := mock_interfaces.NewMockINotificationConfigRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditLogRepository(ctrl)
		uc := NewNotificationUseCase(NewTemplateRegistry(config), config, nil, audit)

		config.EXPECT().SetFieldLabels(gomock.Any(), map[string]string{"motive": "Motivo"}).Return(nil)
		audit.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.AuditLogEntry) (entities.AuditLogEntry, error) {
				if e.Action != "SET_FIELD_LABELS" || e.Category != entities.AuditCategoryConfig {
					t.Fatalf("unexpected audit entry: %+v", e)
				}
				return e, nil
			},
		)

		err := uc.SetFieldLabels(context.Background(), map[string]string{"motive": " Motivo ", "  ": "x"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("reading forwards to the config store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		config := mock_interfaces.NewMockINotificationConfigRepository(ctrl)
		uc := NewNotificationUseCase(NewTemplateRegistry(config), config, nil, nil)

		config.EXPECT().GetFieldLabels(gomock.Any()).Return(map[string]string{"motive": "Motivo"}, nil)

		labels, err := uc.FieldLabels(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if labels["motive"] != "Motivo" {
			t.Fatalf("unexpected labels: %v", labels)
		}
	})
}
