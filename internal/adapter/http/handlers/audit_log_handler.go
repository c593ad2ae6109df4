package handlers

import (
	"errors"
	"net/http"
	"time"

	request "auxilio_propg/internal/adapter/http/dto/request"
	response "auxilio_propg/internal/adapter/http/dto/response"
	"auxilio_propg/internal/domain/entities"
	"auxilio_propg/internal/usecase"
	"auxilio_propg/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAuditFilter = pkg.NewDomainErrorSimple("INVALID_AUDIT_FILTER", "Invalid audit filter", http.StatusBadRequest)
	errInvalidAuthReport  = pkg.NewDomainErrorSimple("INVALID_AUTH_REPORT", "Invalid auth report payload", http.StatusBadRequest)
)

// AuditLogHandler exposes the audit log read path and the endpoint the login
// layer uses to report authentication attempts.

type AuditLogHandler struct {
	usecase usecase.IAuditLogUseCase
}

func NewAuditLogHandler(uc usecase.IAuditLogUseCase) *AuditLogHandler {
	return &AuditLogHandler{usecase: uc}
}

// Query returns audit entries newest first, filtered by ?level=, ?category=,
// ?actor=, ?from= and ?to= (RFC 3339).
func (h *AuditLogHandler) Query(c *gin.Context) {
	role, _, ok := actorFrom(c)
	if !ok {
		rejectMissingActor(c)
		return
	}

	filter := entities.AuditLogFilter{
		Level:    entities.AuditLogLevel(c.Query("level")),
		Category: c.Query("category"),
		Actor:    c.Query("actor"),
	}
	if v := c.Query("from"); v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(errInvalidAuditFilter.HTTPStatus, errInvalidAuditFilter.ToHTTPError())
			return
		}
		filter.From = ts
	}
	if v := c.Query("to"); v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(errInvalidAuditFilter.HTTPStatus, errInvalidAuditFilter.ToHTTPError())
			return
		}
		filter.To = ts
	}

	entries, err := h.usecase.Query(c.Request.Context(), role, filter)
	if err != nil {
		appErr := mapAuditError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAuditLogEntries(entries))
}

// RecordAuth accepts a login-attempt report from the authentication layer and
// appends it as a security entry. Always answers 202: the append itself is
// best effort.
func (h *AuditLogHandler) RecordAuth(c *gin.Context) {
	var payload request.RecordAuthRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthReport.HTTPStatus, errInvalidAuthReport.ToHTTPError())
		return
	}

	h.usecase.RecordAuth(c.Request.Context(), payload.Actor, payload.Action, payload.Success)
	c.Status(http.StatusAccepted)
}

func mapAuditError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAuditAccessDenied):
		return pkg.NewDomainErrorSimple("PERMISSION_DENIED", "Role not allowed to read the audit log", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
