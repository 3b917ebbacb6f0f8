package admin

import (
	"net/http"

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
	l := zap.L().Named("admin.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("admin.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("admin request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Message, nil)
}

func (h *Handler) Dashboard(c *gin.Context) {
	resp, err := h.service.Dashboard(
		c.Request.Context(),
		c.GetString("role"),
		c.GetString("employee_email"),
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"dashboard": resp})
}

func (h *Handler) Approve(c *gin.Context) {
	resp, err := h.service.Approve(
		c.Request.Context(),
		c.GetString("employee_id"),
		c.Param("id"),
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":     "Appointment approved successfully",
		"appointment": resp,
	})
}

func (h *Handler) Decline(c *gin.Context) {
	// Reason body is optional; an absent or malformed body means no reason.
	var req DeclineRequest
	_ = c.ShouldBindJSON(&req)

	resp, err := h.service.Decline(
		c.Request.Context(),
		c.GetString("employee_id"),
		c.Param("id"),
		req.Reason,
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":     "Appointment declined",
		"appointment": resp,
	})
}
