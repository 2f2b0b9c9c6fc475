// Package listing derives filtered, paginated views over in-memory
// collections. Nothing in here performs I/O; every function is a pure
// function of its arguments. Page slicing and the page-link window come
// from github.com/simp-lee/pagination.
package listing

import (
	"context"
	"slices"
	"strings"

	"github.com/simp-lee/pagination"
)

// PageSizes lists the page sizes a view may use.
var PageSizes = []int{5, 10, 25, 50}

// DefaultPageSize is the page size used when none is requested.
const DefaultPageSize = 10

// PagesInRange is how many page links the navigation shows around the
// current page.
const PagesInRange = 5

// Searchable is implemented by records that can be matched by a search box.
type Searchable interface {
	SearchFields() []string
}

// ValidPageSize reports whether n is one of PageSizes.
func ValidPageSize(n int) bool {
	return slices.Contains(PageSizes, n)
}

// Filter returns the items whose fields contain query, ignoring case.
// An item matches when any of its fields contains the query. A blank query
// returns items unchanged. The result keeps the source order and never
// aliases the input slice when filtering actually happens.
func Filter[T Searchable](items []T, query string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, f := range item.SearchFields() {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// PageCount returns ceil(total / pageSize). A non-positive pageSize yields 0.
func PageCount(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Paginate returns items[pageIndex*pageSize : pageIndex*pageSize+pageSize],
// clamped to the slice bounds. Out of range pages yield an empty slice.
func Paginate[T any](items []T, pageIndex, pageSize int) []T {
	if pageIndex < 0 || pageIndex >= PageCount(len(items), pageSize) {
		return []T{}
	}
	p, err := paginate(items, pageIndex, pageSize)
	if err != nil {
		return []T{}
	}
	return p.Items
}

// paginate runs the paginator over an in-memory slice. pageIndex is 0-based;
// the paginator counts pages from 1 and clamps past-the-end pages to the last.
func paginate[T any](items []T, pageIndex, pageSize int) (*pagination.Pagination[T], error) {
	p := pagination.NewPaginator[T](
		pagination.WithItemsPerPage[T](pageSize),
		pagination.WithPagesInRange[T](PagesInRange),
		pagination.WithKnownTotal[T](int64(len(items))),
		pagination.WithSliceCallback(func(_ context.Context, offset, limit int) ([]T, error) {
			end := min(offset+limit, len(items))
			return items[offset:end:end], nil
		}),
	)
	return p.Paginate(context.Background(), pageIndex+1)
}
