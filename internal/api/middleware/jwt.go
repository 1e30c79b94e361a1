package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/utils"
)

const identityKey = "identity"

type apiError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

type supabaseClaims struct {
	jwt.RegisteredClaims
	Email        string         `json:"email"`
	Role         string         `json:"role"`         // usually "authenticated" / "anon"
	AppMetadata  map[string]any `json:"app_metadata"` // put {"role":"admin"} here
	UserMetadata map[string]any `json:"user_metadata"`
}

type JWTConfig struct {
	Secret   string
	Issuer   string // optional
	Audience string // optional
}

// JWTAuth verifies Supabase access tokens using SUPABASE_JWT_* from the environment.
func JWTAuth() gin.HandlerFunc {
	return JWTAuthWithConfig(JWTConfig{
		Secret:   os.Getenv("SUPABASE_JWT_SECRET"),
		Issuer:   os.Getenv("SUPABASE_JWT_ISSUER"),
		Audience: os.Getenv("SUPABASE_JWT_AUDIENCE"),
	})
}

func JWTAuthWithConfig(cfg JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.Secret == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, apiError{
				Code:    utils.CodeInternal,
				Message: "SUPABASE_JWT_SECRET is not set",
			})
			return
		}

		auth := c.GetHeader("Authorization")
		raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		if !strings.HasPrefix(auth, "Bearer ") || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiError{
				Code:    utils.CodeUnauthorized,
				Message: "missing bearer token",
			})
			return
		}

		claims := &supabaseClaims{}
		tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			return []byte(cfg.Secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

		if err != nil || tok == nil || !tok.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiError{
				Code:    utils.CodeUnauthorized,
				Message: "invalid token",
			})
			return
		}

		if cfg.Issuer != "" && claims.Issuer != cfg.Issuer {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiError{
				Code:    utils.CodeUnauthorized,
				Message: "invalid token issuer",
			})
			return
		}

		if cfg.Audience != "" {
			valid := false
			for _, aud := range claims.Audience {
				if aud == cfg.Audience {
					valid = true
					break
				}
			}
			if !valid {
				c.AbortWithStatusJSON(http.StatusUnauthorized, apiError{
					Code:    utils.CodeUnauthorized,
					Message: "invalid token audience",
				})
				return
			}
		}

		if claims.Subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiError{
				Code:    utils.CodeUnauthorized,
				Message: "missing subject",
			})
			return
		}

		id := models.Identity{
			UserID:   claims.Subject,
			Email:    claims.Email,
			FullName: stringClaim(claims.UserMetadata, "full_name"),
			Role:     models.RoleUser,
		}
		if r := stringClaim(claims.AppMetadata, "role"); r != "" {
			id.Role = models.UserRole(r)
		}

		SetIdentity(c, id)
		c.Next()
	}
}

// SetIdentity records the authenticated caller on the request context.
func SetIdentity(c *gin.Context, id models.Identity) {
	c.Set(identityKey, id)
	c.Set("user_id", id.UserID)
	c.Set("role", string(id.Role))
}

// IdentityFrom returns the caller set by JWTAuth.
func IdentityFrom(c *gin.Context) (models.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return models.Identity{}, false
	}
	id, ok := v.(models.Identity)
	return id, ok
}

func stringClaim(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}
