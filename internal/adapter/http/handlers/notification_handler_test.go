package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"auxilio_propg/internal/adapter/http/handlers/mocks"
	"auxilio_propg/internal/domain/entities"
	"auxilio_propg/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const sendPayload = `{
	"event_id": "ev-1",
	"event_key": "Aprovação",
	"request_id": "req-1",
	"recipients": ["ana@usp.br"],
	"subject": "Auxílio aprovado",
	"body": "corpo editado"
}`

func TestNotificationHandler_Send(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing body fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc, usecase.NewPermissionTable())

		r := gin.New()
		r.POST("/v1/notifications/send", h.Send)

		req := httptest.NewRequest(http.MethodPost, "/v1/notifications/send", bytes.NewBufferString(`{"event_key":"Aprovação"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("sync send returns the delivery report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc, usecase.NewPermissionTable())

		r := gin.New()
		r.POST("/v1/notifications/send", h.Send)

		uc.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, event entities.NotificationEvent) (entities.DeliveryReport, error) {
				if event.Body != "corpo editado" || event.EventKey != entities.EventKeyAprovacao {
					t.Fatalf("unexpected event: %+v", event)
				}
				return entities.DeliveryReport{
					EventID:  event.ID,
					Attempts: []entities.DeliveryAttempt{{Recipient: "ana@usp.br", Delivered: true}},
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/notifications/send", bytes.NewBufferString(sendPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Attempts []struct {
				Recipient string `json:"recipient"`
				Delivered bool   `json:"delivered"`
			} `json:"attempts"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad response body: %v", err)
		}
		if len(resp.Attempts) != 1 || !resp.Attempts[0].Delivered {
			t.Fatalf("unexpected report: %s", w.Body.String())
		}
	})

	t.Run("async send answers 202", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc, usecase.NewPermissionTable())

		r := gin.New()
		r.POST("/v1/notifications/send", h.Send)

		uc.EXPECT().SendAsync(gomock.Any()).Times(1)

		req := httptest.NewRequest(http.MethodPost, "/v1/notifications/send?async=true", bytes.NewBufferString(sendPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
	})

	t.Run("transport unavailable maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc, usecase.NewPermissionTable())

		r := gin.New()
		r.POST("/v1/notifications/send", h.Send)

		uc.EXPECT().Send(gomock.Any(), gomock.Any()).Return(entities.DeliveryReport{}, usecase.ErrMailTransportNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/v1/notifications/send", bytes.NewBufferString(sendPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestNotificationHandler_Recipients(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *NotificationHandler) *gin.Engine {
		r := gin.New()
		r.GET("/v1/config/recipients/:event_key", h.GetRecipients)
		r.PUT("/v1/config/recipients/:event_key", h.SetRecipients)
		return r
	}

	t.Run("non-administrator denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := newRouter(NewNotificationHandler(uc, usecase.NewPermissionTable()))

		req := httptest.NewRequest(http.MethodGet, "/v1/config/recipients/Aprova%C3%A7%C3%A3o", nil)
		req.Header.Set(HeaderActorRole, "A3")
		req.Header.Set(HeaderActorName, "Bia")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("administrator reads the configured list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := newRouter(NewNotificationHandler(uc, usecase.NewPermissionTable()))

		uc.EXPECT().Recipients(gomock.Any(), entities.EventKeyAprovacao).Return([]string{"secretaria@usp.br"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/config/recipients/Aprova%C3%A7%C3%A3o", nil)
		req.Header.Set(HeaderActorRole, "A5")
		req.Header.Set(HeaderActorName, "Dora")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("administrator replaces the list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := newRouter(NewNotificationHandler(uc, usecase.NewPermissionTable()))

		uc.EXPECT().SetRecipients(gomock.Any(), entities.EventKeyAprovacao, []string{"a@usp.br"}).Return(nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/config/recipients/Aprova%C3%A7%C3%A3o", bytes.NewBufferString(`{"recipients":["a@usp.br"]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderActorRole, "A5")
		req.Header.Set(HeaderActorName, "Dora")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestNotificationHandler_Templates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *NotificationHandler) *gin.Engine {
		r := gin.New()
		r.GET("/v1/config/templates/:name", h.GetTemplate)
		r.PUT("/v1/config/templates/:name", h.SetTemplate)
		return r
	}

	t.Run("non-administrator denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := newRouter(NewNotificationHandler(uc, usecase.NewPermissionTable()))

		req := httptest.NewRequest(http.MethodPut, "/v1/config/templates/Aprova%C3%A7%C3%A3o", bytes.NewBufferString(`{"body":"Olá"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderActorRole, "A4")
		req.Header.Set(HeaderActorName, "Caio")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("administrator reads the effective body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := newRouter(NewNotificationHandler(uc, usecase.NewPermissionTable()))

		uc.EXPECT().Template(gomock.Any(), entities.EventKeyAprovacao).Return("Olá {{.Name}}", nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/config/templates/Aprova%C3%A7%C3%A3o", nil)
		req.Header.Set(HeaderActorRole, "A5")
		req.Header.Set(HeaderActorName, "Dora")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Name string `json:"name"`
			Body string `json:"body"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad response body: %v", err)
		}
		if resp.Body != "Olá {{.Name}}" {
			t.Fatalf("unexpected body: %q", resp.Body)
		}
	})

	t.Run("administrator stores an override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := newRouter(NewNotificationHandler(uc, usecase.NewPermissionTable()))

		uc.EXPECT().SetTemplate(gomock.Any(), entities.EventKeyAprovacao, "Olá {{.Name}}").Return(nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/config/templates/Aprova%C3%A7%C3%A3o", bytes.NewBufferString(`{"body":"Olá {{.Name}}"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderActorRole, "A5")
		req.Header.Set(HeaderActorName, "Dora")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestNotificationHandler_Labels(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *NotificationHandler) *gin.Engine {
		r := gin.New()
		r.GET("/v1/config/labels", h.GetLabels)
		r.PUT("/v1/config/labels", h.SetLabels)
		return r
	}

	t.Run("non-administrator denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := newRouter(NewNotificationHandler(uc, usecase.NewPermissionTable()))

		req := httptest.NewRequest(http.MethodGet, "/v1/config/labels", nil)
		req.Header.Set(HeaderActorRole, "A3")
		req.Header.Set(HeaderActorName, "Bia")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("administrator reads the labels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := newRouter(NewNotificationHandler(uc, usecase.NewPermissionTable()))

		uc.EXPECT().FieldLabels(gomock.Any()).Return(map[string]string{"motive": "Motivo"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/config/labels", nil)
		req.Header.Set(HeaderActorRole, "A5")
		req.Header.Set(HeaderActorName, "Dora")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Labels map[string]string `json:"labels"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad response body: %v", err)
		}
		if resp.Labels["motive"] != "Motivo" {
			t.Fatalf("unexpected labels: %v", resp.Labels)
		}
	})

	t.Run("administrator replaces the labels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := newRouter(NewNotificationHandler(uc, usecase.NewPermissionTable()))

		uc.EXPECT().SetFieldLabels(gomock.Any(), map[string]string{"motive": "Motivo"}).Return(nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/config/labels", bytes.NewBufferString(`{"labels":{"motive":"Motivo"}}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderActorRole, "A5")
		req.Header.Set(HeaderActorName, "Dora")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d: %s", w.Code, w.Body.String())
		}
	})
}
