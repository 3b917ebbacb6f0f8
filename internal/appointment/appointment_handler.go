package appointment

import (
	"errors"
	"net/http"

	appointmenterrors "go-bookingdesk/internal/appointment/errors"
	"go-bookingdesk/internal/shared/apperror"
	"go-bookingdesk/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("appointment.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("appointment.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("appointment request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Message, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Message, nil)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		// Refused submissions carry a machine-checkable rejected marker; the
		// frontend branches on it.
		switch {
		case errors.Is(err, appointmenterrors.ErrInvalidEmployeeID):
			response.Error(c, http.StatusBadRequest, err.Error(), gin.H{
				"status": "rejected",
				"error":  "Invalid Employee ID",
			})
		case errors.Is(err, appointmenterrors.ErrEmailMismatch):
			response.Error(c, http.StatusBadRequest, err.Error(), gin.H{
				"status": "rejected",
				"error":  "Email Mismatch",
			})
		default:
			h.writeServiceError(c, err)
		}
		return
	}

	message := "Appointment created successfully"
	if resp.Status == StatusApproved {
		message = "Appointment auto-approved for verified employee"
	}

	response.Success(c, http.StatusCreated, gin.H{
		"status":      resp.Status,
		"message":     message,
		"appointment": resp,
	})
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"count":        len(resp),
		"appointments": resp,
	})
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"appointment": resp})
}
