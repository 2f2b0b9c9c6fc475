package pkg

import (
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/itl-creditos/creditos-admin/internal/domain"
)

// Response is the JSON envelope of every /api/v1 reply.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ValidationErrorResponse carries per-field validation failures.
type ValidationErrorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// Success replies 200 with data.
func Success(c *gin.Context, data any) {
	reply(c, http.StatusOK, "success", data)
}

// Created replies 201 with the created resource.
func Created(c *gin.Context, data any) {
	reply(c, http.StatusCreated, "created", data)
}

// List replies 200 with one page of a listing.
func List(c *gin.Context, page any) {
	reply(c, http.StatusOK, "success", page)
}

func reply(c *gin.Context, status int, msg string, data any) {
	c.JSON(status, Response{Code: status, Message: msg, Data: data})
}

// Error replies with the status mapped from err. Only *domain.AppError
// messages reach the client; server-side failures are logged.
func Error(c *gin.Context, err error) {
	status := domain.HTTPStatusCode(err)

	msg := "internal error"
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		msg = appErr.Message
	}
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}
	reply(c, status, msg, nil)
}

// ValidationError replies 400. validator.ValidationErrors are expanded into
// a field map; other errors are reported as a plain bad request.
func ValidationError(c *gin.Context, err error) {
	validationError(c, err, nil)
}

// BindAndValidate binds the request (JSON or form) into obj and runs the
// binding validator. On failure it has already replied and returns false.
//
//	if !pkg.BindAndValidate(c, &req) { return }
func BindAndValidate(c *gin.Context, obj any) bool {
	if err := c.ShouldBind(obj); err != nil {
		validationError(c, err, obj)
		return false
	}
	return true
}

func validationError(c *gin.Context, err error, obj any) {
	fields := FieldErrors(err, obj)
	if fields == nil {
		reply(c, http.StatusBadRequest, "bad request", nil)
		return
	}
	c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Code:    http.StatusBadRequest,
		Message: "validation error",
		Errors:  fields,
	})
}

// FieldErrors maps validator failures to readable messages keyed by the
// field's json name (form name, then lowercased Go name as fallbacks).
// It returns nil when err holds no validator.ValidationErrors.
func FieldErrors(err error, obj any) map[string]string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}

	names := fieldNames(obj)
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		name, ok := names[fe.StructField()]
		if !ok {
			name = strings.ToLower(fe.Field())
		}
		out[name] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return "Must be at least " + fe.Param() + " characters"
		}
		return "Must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "Must be at most " + fe.Param() + " characters"
		}
		return "Must be at most " + fe.Param()
	case "len":
		return "Must be exactly " + fe.Param() + " characters"
	case "gt":
		return "Must be greater than " + fe.Param()
	case "oneof":
		return "Must be one of: " + fe.Param()
	}
	if p := fe.Param(); p != "" {
		return fe.Tag() + "=" + p
	}
	return fe.Tag()
}

// fieldNames maps struct field names of obj to their external names.
func fieldNames(obj any) map[string]string {
	if obj == nil {
		return nil
	}
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	m := make(map[string]string, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if name := tagName(f.Tag.Get("json")); name != "" {
			m[f.Name] = name
		} else if name := tagName(f.Tag.Get("form")); name != "" {
			m[f.Name] = name
		}
	}
	return m
}

func tagName(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	return name
}
