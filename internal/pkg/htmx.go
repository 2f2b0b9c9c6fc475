package pkg

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/itl-creditos/creditos-admin/internal/domain"
)

// Toast kinds understood by static/js/app.js.
const (
	ToastSuccess = "success"
	ToastError   = "error"
	ToastWarning = "warning"
)

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

// WantsHTML reports whether the client prefers an HTML reply.
func WantsHTML(c *gin.Context) bool {
	return IsHTMX(c) || strings.Contains(strings.ToLower(c.GetHeader("Accept")), "text/html")
}

// ShowToast sets an HX-Trigger header firing a showToast event.
func ShowToast(c *gin.Context, message, kind string) {
	trigger, _ := json.Marshal(map[string]any{
		"showToast": map[string]string{"message": message, "type": kind},
	})
	c.Header("HX-Trigger", string(trigger))
}

// HXRedirect asks htmx to navigate to url after the swap.
func HXRedirect(c *gin.Context, url string) {
	c.Header("HX-Redirect", url)
}

// HXNoSwap tells htmx to leave the target untouched.
func HXNoSwap(c *gin.Context) {
	c.Header("HX-Reswap", "none")
}

// HXFail answers a failed htmx request: the target stays as it is and
// message shows as an error toast. It replies 200 because app.js shows a
// second, generic toast for error statuses.
func HXFail(c *gin.Context, message string) {
	HXNoSwap(c)
	ShowToast(c, message, ToastError)
	c.Status(http.StatusOK)
	c.Writer.WriteHeaderNow()
}

// SafeMessage returns err's message when it is meant for end users
// (not found, conflict, validation) and fallback otherwise.
func SafeMessage(err error, fallback string) string {
	var appErr *domain.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		switch appErr.Code {
		case domain.CodeNotFound, domain.CodeAlreadyExists, domain.CodeValidation:
			return appErr.Message
		}
	}
	return fallback
}
