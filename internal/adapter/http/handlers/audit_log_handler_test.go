package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auxilio_propg/internal/adapter/http/handlers/mocks"
	"auxilio_propg/internal/domain/entities"
	"auxilio_propg/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuditLogHandler_Query(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *AuditLogHandler) *gin.Engine {
		r := gin.New()
		r.GET("/v1/audit", h.Query)
		return r
	}
	doGet := func(r *gin.Engine, target, role string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		if role != "" {
			req.Header.Set(HeaderActorRole, role)
			req.Header.Set(HeaderActorName, "Dora")
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("missing actor headers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuditLogUseCase(ctrl)

		w := doGet(newRouter(NewAuditLogHandler(uc)), "/v1/audit", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad time bound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuditLogUseCase(ctrl)

		w := doGet(newRouter(NewAuditLogHandler(uc)), "/v1/audit?from=yesterday", "A5")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("access denied maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuditLogUseCase(ctrl)

		uc.EXPECT().Query(gomock.Any(), entities.RoleA3, gomock.Any()).Return(nil, usecase.ErrAuditAccessDenied)

		w := doGet(newRouter(NewAuditLogHandler(uc)), "/v1/audit", "A3")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("filters are parsed and forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuditLogUseCase(ctrl)

		from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().Query(gomock.Any(), entities.RoleA5, gomock.Any()).DoAndReturn(
			func(_ any, _ entities.Role, f entities.AuditLogFilter) ([]entities.AuditLogEntry, error) {
				if f.Level != entities.AuditLevelError || f.Actor != "Bia" || !f.From.Equal(from) {
					t.Fatalf("unexpected filter: %+v", f)
				}
				return []entities.AuditLogEntry{{ID: "e1"}}, nil
			},
		)

		w := doGet(newRouter(NewAuditLogHandler(uc)), "/v1/audit?level=ERROR&actor=Bia&from=2025-03-01T00:00:00Z", "A5")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestAuditLogHandler_RecordAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *AuditLogHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/audit/auth", h.RecordAuth)
		return r
	}

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuditLogUseCase(ctrl)
		r := newRouter(NewAuditLogHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/audit/auth", bytes.NewBufferString(`{"actor":"Bia"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("failed attempt is recorded and accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuditLogUseCase(ctrl)
		r := newRouter(NewAuditLogHandler(uc))

		uc.EXPECT().RecordAuth(gomock.Any(), "Bia", "LOGIN", false).Times(1)

		req := httptest.NewRequest(http.MethodPost, "/v1/audit/auth", bytes.NewBufferString(`{"actor":"Bia","action":"LOGIN","success":false}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
	})
}
