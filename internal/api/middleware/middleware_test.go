package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/yoockh/jobboard/internal/models"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

func init() { gin.SetMode(gin.TestMode) }

func sign(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return tok
}

func newRouter(cfg JWTConfig, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{JWTAuthWithConfig(cfg)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := IdentityFrom(c)
		c.JSON(http.StatusOK, id)
	})
	r.GET("/whoami", handlers...)
	return r
}

func TestJWTAuth(t *testing.T) {
	valid := jwt.MapClaims{
		"sub":           "0b6f3c1e-7d4a-4f43-9d3e-1a2b3c4d5e6f",
		"email":         "grace@example.com",
		"aud":           "authenticated",
		"exp":           time.Now().Add(time.Hour).Unix(),
		"user_metadata": map[string]any{"full_name": "Grace Hopper"},
	}
	expired := jwt.MapClaims{"sub": "x", "exp": time.Now().Add(-time.Hour).Unix()}
	noSub := jwt.MapClaims{"email": "a@b.c", "exp": time.Now().Add(time.Hour).Unix()}

	tests := []struct {
		name   string
		cfg    JWTConfig
		header string
		want   int
	}{
		{name: "valid", cfg: JWTConfig{Secret: testSecret}, header: "Bearer " + sign(t, testSecret, valid), want: http.StatusOK},
		{name: "audience ok", cfg: JWTConfig{Secret: testSecret, Audience: "authenticated"}, header: "Bearer " + sign(t, testSecret, valid), want: http.StatusOK},
		{name: "audience mismatch", cfg: JWTConfig{Secret: testSecret, Audience: "service"}, header: "Bearer " + sign(t, testSecret, valid), want: http.StatusUnauthorized},
		{name: "issuer mismatch", cfg: JWTConfig{Secret: testSecret, Issuer: "https://x.supabase.co/auth/v1"}, header: "Bearer " + sign(t, testSecret, valid), want: http.StatusUnauthorized},
		{name: "wrong secret", cfg: JWTConfig{Secret: testSecret}, header: "Bearer " + sign(t, "another-secret", valid), want: http.StatusUnauthorized},
		{name: "expired", cfg: JWTConfig{Secret: testSecret}, header: "Bearer " + sign(t, testSecret, expired), want: http.StatusUnauthorized},
		{name: "missing subject", cfg: JWTConfig{Secret: testSecret}, header: "Bearer " + sign(t, testSecret, noSub), want: http.StatusUnauthorized},
		{name: "no header", cfg: JWTConfig{Secret: testSecret}, want: http.StatusUnauthorized},
		{name: "not bearer", cfg: JWTConfig{Secret: testSecret}, header: "Basic abc", want: http.StatusUnauthorized},
		{name: "secret unset", cfg: JWTConfig{}, header: "Bearer abc", want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			newRouter(tt.cfg).ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (%s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestJWTAuth_Identity(t *testing.T) {
	tok := sign(t, testSecret, jwt.MapClaims{
		"sub":           "u-42",
		"email":         "grace@example.com",
		"exp":           time.Now().Add(time.Hour).Unix(),
		"user_metadata": map[string]any{"full_name": " Grace Hopper "},
		"app_metadata":  map[string]any{"role": "admin"},
	})
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	newRouter(JWTConfig{Secret: testSecret}).ServeHTTP(w, req)

	var id models.Identity
	if err := json.Unmarshal(w.Body.Bytes(), &id); err != nil {
		t.Fatal(err)
	}
	want := models.Identity{UserID: "u-42", Email: "grace@example.com", FullName: "Grace Hopper", Role: models.RoleAdmin}
	if id != want {
		t.Errorf("identity = %+v, want %+v", id, want)
	}
}

func TestRequireAdmin(t *testing.T) {
	cfg := JWTConfig{Secret: testSecret}
	tests := []struct {
		name string
		app  map[string]any
		want int
	}{
		{name: "admin", app: map[string]any{"role": "admin"}, want: http.StatusOK},
		{name: "default user", app: nil, want: http.StatusForbidden},
		{name: "other role", app: map[string]any{"role": "recruiter"}, want: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := jwt.MapClaims{"sub": "u-1", "exp": time.Now().Add(time.Hour).Unix()}
			if tt.app != nil {
				claims["app_metadata"] = tt.app
			}
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			req.Header.Set("Authorization", "Bearer "+sign(t, testSecret, claims))
			w := httptest.NewRecorder()
			newRouter(cfg, RequireAdmin()).ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestRequestLogger_RequestID(t *testing.T) {
	log, hook := test.NewNullLogger()
	r := gin.New()
	r.Use(RequestLogger(log))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "req-123" {
		t.Errorf("response request id = %q", got)
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Data["request_id"] != "req-123" || entry.Data["status"] != http.StatusOK {
		t.Errorf("log entry = %+v", entry)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("request id not generated")
	}
}
