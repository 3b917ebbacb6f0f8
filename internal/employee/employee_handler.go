package employee

import (
	"errors"
	"net/http"

	employeeerrors "go-bookingdesk/internal/employee/errors"
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
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Validate(c *gin.Context) {
	employeeID := c.Param("employeeId")

	resp, err := h.service.Validate(c.Request.Context(), employeeID)
	if err != nil {
		if errors.Is(err, employeeerrors.ErrEmployeeNotFound) {
			response.Error(c, http.StatusNotFound, "Employee ID not found", gin.H{"employee": nil})
			return
		}
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("validate employee failed",
			zap.String("employee_id", employeeID),
			zap.Int("status", httpErr.Status),
			zap.Error(err),
		)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"employee": gin.H{
			"employeeId": resp.EmployeeID,
			"email":      resp.Email,
			"role":       resp.Role,
		},
	})
}
