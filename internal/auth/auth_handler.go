package auth

import (
	"net/http"
	"os"

	"go-bookingdesk/internal/middleware"
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
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Message, nil)
		return
	}

	token, resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.logger.Warn("login failed", zap.String("employee_id", req.EmployeeID))
		response.Error(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	isProd := os.Getenv("APP_ENV") == "production"

	// HttpOnly cookie is the only credential transport; the token is not
	// echoed in the body.
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteStrictMode,
	})

	response.Success(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"data":    resp,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	isProd := os.Getenv("APP_ENV") == "production"

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteStrictMode,
	})

	response.Success(c, http.StatusOK, gin.H{"message": "Logged out successfully"})
}
