package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	autherrors "go-bookingdesk/internal/auth/errors"
	"go-bookingdesk/internal/domain"
	"go-bookingdesk/internal/employee"
	"go-bookingdesk/internal/shared/apperror"
	"go-bookingdesk/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the only credential transport; the bearer-header variant was
// dropped deliberately.
const CookieName = "auth_token"

// Directory is a local interface so the middleware depends on behaviour, not on
// a concrete repository.
type Directory interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
}

// AuthMiddleware verifies the signed cookie token and re-resolves the employee
// record, so a deleted employee loses access immediately even with a live
// token. Every failure here is 401, never 403.
func AuthMiddleware(directory Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(CookieName)
		if err != nil || tokenString == "" {
			writeAuthError(c, autherrors.ErrTokenRequired)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if errors.Is(err, jwt.ErrTokenExpired) {
				errObj = autherrors.ErrTokenExpired
			}
			writeAuthError(c, errObj)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			writeAuthError(c, autherrors.ErrInvalidToken)
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			writeAuthError(c, autherrors.ErrInvalidToken)
			return
		}

		e, err := directory.FindByID(c.Request.Context(), userID)
		if err != nil {
			writeAuthError(c, autherrors.ErrEmployeeGone)
			return
		}

		c.Set("user_id", e.ID.String())
		c.Set("employee_id", e.EmployeeID)
		c.Set("employee_email", e.Email)
		c.Set("role", e.Role.String())

		c.Next()
	}
}

// RequireAdminRole gates the approval workflow: only hr and ceo pass. The
// caller's stored role is echoed for diagnostics.
func RequireAdminRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if !domain.NormalizeRole(role).IsAdmin() {
			response.Error(c, http.StatusForbidden,
				"Access denied. Admin privileges required (CEO/HR only)",
				gin.H{"yourRole": role},
			)
			c.Abort()
			return
		}
		c.Next()
	}
}

func writeAuthError(c *gin.Context, errObj *apperror.AppError) {
	response.Error(c, errObj.HTTPStatus, errObj.Message, nil)
	c.Abort()
}
