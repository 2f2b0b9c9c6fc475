package pkg

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/itl-creditos/creditos-admin/internal/listing"
)

func newQueryContext(target string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestParseListState(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		defaultSize int
		want        listing.State
	}{
		{"defaults", "/", 10, listing.State{PageSize: 10}},
		{"configured default", "/", 25, listing.State{PageSize: 25}},
		{"invalid configured default", "/", 7, listing.State{PageSize: listing.DefaultPageSize}},
		{"all params", "/?q=+p%C3%A9rez+&page=2&page_size=5", 10, listing.State{SearchQuery: "pérez", PageIndex: 2, PageSize: 5}},
		{"negative page", "/?page=-3", 10, listing.State{PageSize: 10}},
		{"garbage page", "/?page=two", 10, listing.State{PageSize: 10}},
		{"size not allowed", "/?page_size=20", 10, listing.State{PageSize: 10}},
		{"page beyond range kept for controller", "/?page=99", 10, listing.State{PageIndex: 99, PageSize: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseListState(newQueryContext(tt.target), tt.defaultSize)
			if got != tt.want {
				t.Errorf("ParseListState() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestListURL(t *testing.T) {
	tests := []struct {
		state listing.State
		want  string
	}{
		{listing.State{PageSize: listing.DefaultPageSize}, "/students"},
		{listing.State{PageIndex: 1, PageSize: 10}, "/students?page=1"},
		{listing.State{PageIndex: 2, PageSize: 25, SearchQuery: "ana"}, "/students?page=2&page_size=25&q=ana"},
		{listing.State{SearchQuery: "a b"}, "/students?q=a+b"},
	}
	for _, tt := range tests {
		if got := ListURL("/students", tt.state); got != tt.want {
			t.Errorf("ListURL(%+v) = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestListURL_KeepsExistingQuery(t *testing.T) {
	got := ListURL("/?view=table&page=9", listing.State{PageIndex: 1, PageSize: 5})
	if want := "/?page=1&page_size=5&view=table"; got != want {
		t.Errorf("ListURL() = %q, want %q", got, want)
	}

	if got := ListURL("/?page=3", listing.State{PageSize: 10}); got != "/" {
		t.Errorf("ListURL(defaults) = %q, want %q", got, "/")
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		param  string
		want   uint
		wantOK bool
	}{
		{"42", 42, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		c := newQueryContext("/")
		c.Params = gin.Params{{Key: "id", Value: tt.param}}
		got, ok := ParseID(c, "id")
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseID(%q) = (%d, %v), want (%d, %v)", tt.param, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseQueryID(t *testing.T) {
	tests := []struct {
		target string
		want   uint
		wantOK bool
	}{
		{"/credits?student=7", 7, true},
		{"/credits?student=0", 0, false},
		{"/credits?student=x", 0, false},
		{"/credits", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseQueryID(newQueryContext(tt.target), "student")
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseQueryID(%q) = (%d, %v), want (%d, %v)", tt.target, got, ok, tt.want, tt.wantOK)
		}
	}
}
