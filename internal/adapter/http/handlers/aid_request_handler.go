package handlers

import (
	"errors"
	"log"
	"net/http"

	request "auxilio_propg/internal/adapter/http/dto/request"
	response "auxilio_propg/internal/adapter/http/dto/response"
	"auxilio_propg/internal/usecase"
	"auxilio_propg/internal/usecase/interfaces"
	"auxilio_propg/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", "Invalid request payload", http.StatusBadRequest)
	errInvalidTargetStatus   = pkg.NewDomainErrorSimple("INVALID_TARGET_STATUS", "Unknown target status", http.StatusBadRequest)
	errInvalidStatusFilter   = pkg.NewDomainErrorSimple("INVALID_STATUS_FILTER", "Unknown status filter", http.StatusBadRequest)
)

// AidRequestHandler handles HTTP requests for the aid request lifecycle.

type AidRequestHandler struct {
	usecase usecase.IAidRequestUseCase
}

func NewAidRequestHandler(uc usecase.IAidRequestUseCase) *AidRequestHandler {
	return &AidRequestHandler{usecase: uc}
}

// CreateRequest registers a form submission and returns the confirmation
// notification alongside the stored request.
func (h *AidRequestHandler) CreateRequest(c *gin.Context) {
	var payload request.CreateAidRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	created, events, err := h.usecase.Create(c.Request.Context(), usecase.CreateAidRequestCommand{
		RequesterCPF:   payload.RequesterCPF,
		RequesterName:  payload.RequesterName,
		RequesterEmail: payload.RequesterEmail,
		Course:         payload.Course,
		Advisor:        payload.Advisor,
		Motive:         payload.Motive,
		RequestedValue: payload.RequestedValue,
	})
	if err != nil {
		appErr := mapAidRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[aid][handler] create success request_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.FromTransition(created, events))
}

// Transition applies one status change. The built notifications come back
// unsent so the operator may review/edit them before dispatch.
func (h *AidRequestHandler) Transition(c *gin.Context) {
	role, name, ok := actorFrom(c)
	if !ok {
		rejectMissingActor(c)
		return
	}

	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}
	target, ok := payload.ResolveTargetStatus()
	if !ok {
		c.JSON(errInvalidTargetStatus.HTTPStatus, errInvalidTargetStatus.ToHTTPError())
		return
	}

	id := c.Param("id")
	log.Printf("[aid][handler] transition start request_id=%s target=%q role=%s", id, target.Label(), role)

	updated, events, err := h.usecase.RequestTransition(c.Request.Context(), usecase.TransitionCommand{
		RequestID:     id,
		ActorRole:     role,
		ActorName:     name,
		To:            target,
		ApprovedValue: payload.ApprovedValue,
	})
	if err != nil {
		log.Printf("[aid][handler] transition failed request_id=%s err=%v", id, err)
		appErr := mapAidRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransition(updated, events))
}

// UpdateObservations edits the free-text annotation; allowed in terminal
// states too.
func (h *AidRequestHandler) UpdateObservations(c *gin.Context) {
	role, name, ok := actorFrom(c)
	if !ok {
		rejectMissingActor(c)
		return
	}

	var payload request.UpdateObservationsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateObservations(c.Request.Context(), c.Param("id"), role, name, payload.Observations)
	if err != nil {
		appErr := mapAidRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAidRequest(updated))
}

func (h *AidRequestHandler) GetByID(c *gin.Context) {
	role, _, ok := actorFrom(c)
	if !ok {
		rejectMissingActor(c)
		return
	}

	r, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"), role)
	if err != nil {
		appErr := mapAidRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAidRequest(r))
}

// Query filters requests by ?status= (display label) and ?q= search term.
func (h *AidRequestHandler) Query(c *gin.Context) {
	status, ok := request.ResolveStatusFilter(c.Query("status"))
	if !ok {
		c.JSON(errInvalidStatusFilter.HTTPStatus, errInvalidStatusFilter.ToHTTPError())
		return
	}

	rs, err := h.usecase.Query(c.Request.Context(), status, c.Query("q"))
	if err != nil {
		appErr := mapAidRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAidRequests(rs))
}

// GetHistory returns one requester's chronological request history.
func (h *AidRequestHandler) GetHistory(c *gin.Context) {
	rs, err := h.usecase.GetHistory(c.Request.Context(), c.Param("cpf"))
	if err != nil {
		appErr := mapAidRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAidRequests(rs))
}

func mapAidRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID), errors.Is(err, usecase.ErrInvalidActor),
		errors.Is(err, usecase.ErrInvalidRequester), errors.Is(err, usecase.ErrInvalidCPF),
		errors.Is(err, usecase.ErrUnknownStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrApprovedValueRequired):
		return pkg.NewDomainErrorSimple("APPROVED_VALUE_REQUIRED", "A positive approved value is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Aid request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestTerminal):
		return pkg.NewDomainErrorSimple("REQUEST_TERMINAL", "Request already reached a final status", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Transition not allowed from the current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrPermissionDenied), errors.Is(err, usecase.ErrDetailAccessDenied):
		return pkg.NewDomainErrorSimple("PERMISSION_DENIED", "Role not allowed to perform this action", http.StatusForbidden)
	case errors.Is(err, interfaces.ErrAmbiguousCreatedAt):
		return pkg.NewDomainErrorSimple("AMBIGUOUS_CREATED_AT", "More than one request shares this creation timestamp", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
