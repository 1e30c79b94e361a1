package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid", E(CodeInvalidArgument, "op", "bad", nil), http.StatusBadRequest},
		{"unauthorized", E(CodeUnauthorized, "op", "no", nil), http.StatusUnauthorized},
		{"not found", E(CodeNotFound, "op", "missing", ErrNotFound), http.StatusNotFound},
		{"unavailable", E(CodeUnavailable, "op", "down", errors.New("timeout")), http.StatusServiceUnavailable},
		{"bare sentinel", fmt.Errorf("wrap: %w", ErrNotFound), http.StatusNotFound},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCause(t *testing.T) {
	gw := errors.New(`duplicate key value violates unique constraint "profiles_user_id_key"`)
	err := E(CodeUnavailable, "ProfileService.Load", "failed to create profile", gw)

	if got := Cause(err); got != gw.Error() {
		t.Errorf("Cause() = %q, want %q", got, gw.Error())
	}
	if got := Cause(E(CodeInvalidArgument, "op", "bad input", nil)); got != "op: bad input" {
		t.Errorf("Cause() without wrapped error = %q", got)
	}
	if Cause(nil) != "" {
		t.Error("Cause(nil) should be empty")
	}
}

func TestIsCode(t *testing.T) {
	err := fmt.Errorf("handler: %w", E(CodeNotFound, "op", "missing", nil))
	if !IsCode(err, CodeNotFound) {
		t.Error("expected CodeNotFound through wrapping")
	}
	if IsCode(err, CodeInternal) {
		t.Error("unexpected CodeInternal")
	}
}
