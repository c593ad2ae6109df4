package handlers

import (
	"errors"
	"log"
	"net/http"

	request "auxilio_propg/internal/adapter/http/dto/request"
	response "auxilio_propg/internal/adapter/http/dto/response"
	"auxilio_propg/internal/usecase"
	"auxilio_propg/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidNotificationPayload = pkg.NewDomainErrorSimple("INVALID_NOTIFICATION_INPUT", "Invalid notification payload", http.StatusBadRequest)
	errConfigAdminOnly            = pkg.NewDomainErrorSimple("PERMISSION_DENIED", "Configuration requires the administrator role", http.StatusForbidden)
)

// NotificationHandler handles notification dispatch and the admin-editable
// recipient configuration.

type NotificationHandler struct {
	usecase     usecase.INotificationUseCase
	permissions *usecase.PermissionTable
}

func NewNotificationHandler(uc usecase.INotificationUseCase, permissions *usecase.PermissionTable) *NotificationHandler {
	return &NotificationHandler{usecase: uc, permissions: permissions}
}

// Send dispatches a (possibly human-edited) notification event.
// ?async=true offloads delivery and answers 202 immediately.
func (h *NotificationHandler) Send(c *gin.Context) {
	var payload request.SendNotificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNotificationPayload.HTTPStatus, errInvalidNotificationPayload.ToHTTPError())
		return
	}
	event := payload.ToEvent()

	if c.Query("async") == "true" {
		h.usecase.SendAsync(event)
		log.Printf("[notification][handler] async send accepted event_key=%s recipients=%d", event.EventKey, len(event.Recipients))
		c.Status(http.StatusAccepted)
		return
	}

	report, err := h.usecase.Send(c.Request.Context(), event)
	if err != nil {
		log.Printf("[notification][handler] send failed event_key=%s err=%v", event.EventKey, err)
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDeliveryReport(report))
}

// requireConfigAdmin answers the request itself and returns false unless the
// actor headers are present and the role may administer configuration.
func (h *NotificationHandler) requireConfigAdmin(c *gin.Context) bool {
	role, _, ok := actorFrom(c)
	if !ok {
		rejectMissingActor(c)
		return false
	}
	if !h.permissions.CanAdministerConfig(role) {
		c.JSON(errConfigAdminOnly.HTTPStatus, errConfigAdminOnly.ToHTTPError())
		return false
	}
	return true
}

// GetRecipients returns the configured list for one event key.
func (h *NotificationHandler) GetRecipients(c *gin.Context) {
	if !h.requireConfigAdmin(c) {
		return
	}

	recipients, err := h.usecase.Recipients(c.Request.Context(), c.Param("event_key"))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if recipients == nil {
		recipients = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"event_key": c.Param("event_key"), "recipients": recipients})
}

// SetRecipients replaces the configured list for one event key. Hot edit; no
// restart needed.
func (h *NotificationHandler) SetRecipients(c *gin.Context) {
	if !h.requireConfigAdmin(c) {
		return
	}

	var payload request.SetRecipientsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNotificationPayload.HTTPStatus, errInvalidNotificationPayload.ToHTTPError())
		return
	}

	if err := h.usecase.SetRecipients(c.Request.Context(), c.Param("event_key"), payload.Recipients); err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// GetTemplate returns the effective body for one template name (the stored
// override, or the builtin when none exists).
func (h *NotificationHandler) GetTemplate(c *gin.Context) {
	if !h.requireConfigAdmin(c) {
		return
	}

	body, err := h.usecase.Template(c.Request.Context(), c.Param("name"))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"name": c.Param("name"), "body": body})
}

// SetTemplate stores an override body for one template name.
func (h *NotificationHandler) SetTemplate(c *gin.Context) {
	if !h.requireConfigAdmin(c) {
		return
	}

	var payload request.SetTemplateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNotificationPayload.HTTPStatus, errInvalidNotificationPayload.ToHTTPError())
		return
	}

	if err := h.usecase.SetTemplate(c.Request.Context(), c.Param("name"), payload.Body); err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// GetLabels returns the configured field display labels.
func (h *NotificationHandler) GetLabels(c *gin.Context) {
	if !h.requireConfigAdmin(c) {
		return
	}

	labels, err := h.usecase.FieldLabels(c.Request.Context())
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if labels == nil {
		labels = map[string]string{}
	}

	c.JSON(http.StatusOK, gin.H{"labels": labels})
}

// SetLabels replaces the configured field display labels.
func (h *NotificationHandler) SetLabels(c *gin.Context) {
	if !h.requireConfigAdmin(c) {
		return
	}

	var payload request.SetLabelsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNotificationPayload.HTTPStatus, errInvalidNotificationPayload.ToHTTPError())
		return
	}

	if err := h.usecase.SetFieldLabels(c.Request.Context(), payload.Labels); err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEventKey), errors.Is(err, usecase.ErrEmptyNotificationEvent):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMailTransportNotConfigured):
		return pkg.NewDomainErrorSimple("MAIL_NOT_CONFIGURED", "Mail transport not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
