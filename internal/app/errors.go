package app

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/itl-creditos/creditos-admin/internal/pkg"
)

// errorPages maps status codes to their page; other codes use errors/500.html.
var errorPages = map[int]string{
	http.StatusBadRequest:          "errors/400.html",
	http.StatusNotFound:            "errors/404.html",
	http.StatusInternalServerError: "errors/500.html",
}

// renderError replies to a failed request in the client's format: a toast
// for htmx (see pkg.HXFail), an error page for browsers and the JSON
// envelope otherwise.
func renderError(c *gin.Context, code int, message string) {
	switch {
	case pkg.IsHTMX(c):
		pkg.HXFail(c, toastText(code))
	case acceptsHTML(c):
		renderErrorPage(c, code)
	default:
		c.JSON(code, pkg.Response{Code: code, Message: message})
	}
}

// renderErrorPage falls back to plain text when the page cannot be rendered.
func renderErrorPage(c *gin.Context, code int) {
	defer func() {
		if recover() != nil {
			c.Data(code, "text/plain; charset=utf-8", []byte(fmt.Sprintf("%d %s", code, http.StatusText(code))))
		}
	}()

	page, ok := errorPages[code]
	if !ok {
		page = errorPages[http.StatusInternalServerError]
	}
	c.HTML(code, page, gin.H{"Status": code})
}

// acceptsHTML reports whether an HTML reply is acceptable. An explicit
// application/json without text/html wins over a */* wildcard.
func acceptsHTML(c *gin.Context) bool {
	accept := strings.ToLower(strings.TrimSpace(c.GetHeader("Accept")))
	switch {
	case accept == "":
		return true
	case strings.Contains(accept, "text/html"):
		return true
	case strings.Contains(accept, "application/json"):
		return false
	default:
		return strings.Contains(accept, "*/*")
	}
}

func toastText(code int) string {
	switch code {
	case http.StatusNotFound:
		return "Recurso no encontrado"
	case http.StatusBadRequest:
		return "Solicitud inválida"
	default:
		return "Ocurrió un error inesperado"
	}
}
