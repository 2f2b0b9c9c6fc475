package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_MessageAndCause(t *testing.T) {
	cause := errors.New("GET /api/alumno/7: status 404")
	withCause := NewAppError(CodeNotFound, "student not found", cause)
	bare := &AppError{Code: CodeValidation, Message: "invalid control number"}

	if got := withCause.Error(); got != "student not found: GET /api/alumno/7: status 404" {
		t.Errorf("Error() = %q", got)
	}
	if got := bare.Error(); got != "invalid control number" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(withCause, cause) {
		t.Error("errors.Is should reach the backend cause")
	}
	if bare.Unwrap() != nil {
		t.Error("Unwrap() = non-nil for an error without cause")
	}
}

func TestCodeCheckers(t *testing.T) {
	checkers := map[int]func(error) bool{
		CodeNotFound:      IsNotFound,
		CodeAlreadyExists: IsAlreadyExists,
		CodeValidation:    IsValidation,
		CodeInternal:      IsInternal,
		CodeUnavailable:   IsUnavailable,
	}
	generic := map[int]*AppError{
		CodeNotFound:      ErrNotFound,
		CodeAlreadyExists: ErrAlreadyExists,
		CodeValidation:    ErrValidation,
		CodeInternal:      ErrInternal,
		CodeUnavailable:   ErrUnavailable,
	}

	for code, sentinel := range generic {
		t.Run(sentinel.Message, func(t *testing.T) {
			if sentinel.Code != code {
				t.Fatalf("Code = %d; want %d", sentinel.Code, code)
			}
			// Wrapping through fmt.Errorf must keep the code visible.
			wrapped := fmt.Errorf("load credits: %w", NewAppError(code, "backend said no", nil))
			for other, check := range checkers {
				if want := other == code; check(wrapped) != want {
					t.Errorf("checker for code %d on code %d = %v; want %v", other, code, !want, want)
				}
			}
		})
	}
}

func TestCodeCheckers_PlainError(t *testing.T) {
	plain := errors.New("connection reset")
	for _, check := range []func(error) bool{IsNotFound, IsAlreadyExists, IsValidation, IsInternal, IsUnavailable} {
		if check(plain) {
			t.Error("checker matched a plain error")
		}
		if check(nil) {
			t.Error("checker matched nil")
		}
	}
}

func TestHTTPStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", ErrNotFound, http.StatusNotFound},
		{"duplicate control number", NewAppError(CodeAlreadyExists, "duplicate", nil), http.StatusConflict},
		{"validation", ErrValidation, http.StatusBadRequest},
		{"internal", ErrInternal, http.StatusInternalServerError},
		{"backend down", fmt.Errorf("ping: %w", ErrUnavailable), http.StatusBadGateway},
		{"unknown code", NewAppError(42, "odd", nil), http.StatusInternalServerError},
		{"plain error", errors.New("plain"), http.StatusInternalServerError},
		{"nil", nil, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatusCode(tt.err); got != tt.want {
				t.Errorf("HTTPStatusCode() = %d; want %d", got, tt.want)
			}
		})
	}
}
