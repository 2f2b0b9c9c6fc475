package pkg

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/itl-creditos/creditos-admin/internal/listing"
)

// Query parameter names of list views.
const (
	QueryParamSearch   = "q"
	QueryParamPage     = "page"
	QueryParamPageSize = "page_size"
)

// ParseListState reads q, page (0-based) and page_size from the query string.
// Missing or malformed values fall back to the first page and defaultSize;
// range checks are left to listing.Controller.
func ParseListState(c *gin.Context, defaultSize int) listing.State {
	if !listing.ValidPageSize(defaultSize) {
		defaultSize = listing.DefaultPageSize
	}

	s := listing.State{
		SearchQuery: strings.TrimSpace(c.Query(QueryParamSearch)),
		PageSize:    defaultSize,
	}
	if n, err := strconv.Atoi(c.Query(QueryParamPage)); err == nil && n > 0 {
		s.PageIndex = n
	}
	if n, err := strconv.Atoi(c.Query(QueryParamPageSize)); err == nil && listing.ValidPageSize(n) {
		s.PageSize = n
	}
	return s
}

// ListURL encodes s onto path. Query parameters already present on path are
// kept; default values are omitted to keep links short.
func ListURL(path string, s listing.State) string {
	base, rawQuery, _ := strings.Cut(path, "?")
	v, err := url.ParseQuery(rawQuery)
	if err != nil {
		v = url.Values{}
	}
	v.Del(QueryParamSearch)
	v.Del(QueryParamPage)
	v.Del(QueryParamPageSize)

	if s.SearchQuery != "" {
		v.Set(QueryParamSearch, s.SearchQuery)
	}
	if s.PageIndex > 0 {
		v.Set(QueryParamPage, strconv.Itoa(s.PageIndex))
	}
	if s.PageSize > 0 && s.PageSize != listing.DefaultPageSize {
		v.Set(QueryParamPageSize, strconv.Itoa(s.PageSize))
	}
	if len(v) == 0 {
		return base
	}
	return base + "?" + v.Encode()
}

// ParseID parses a positive numeric path parameter.
func ParseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// ParseQueryID parses a positive numeric query parameter.
func ParseQueryID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
