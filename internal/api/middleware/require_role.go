package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/utils"
)

// RequireRole must run after JWTAuth.
func RequireRole(allowed ...models.UserRole) gin.HandlerFunc {
	allow := map[string]struct{}{}
	for _, a := range allowed {
		s := strings.TrimSpace(strings.ToLower(string(a)))
		if s != "" {
			allow[s] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		role := strings.ToLower(strings.TrimSpace(string(id.Role)))

		if _, allowed := allow[role]; !ok || role == "" || !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, apiError{
				Code:    utils.CodeForbidden,
				Message: "forbidden",
			})
			return
		}

		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc { return RequireRole(models.RoleAdmin) }
