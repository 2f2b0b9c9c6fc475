package listing

// State is the pagination and search state of a view.
type State struct {
	PageIndex   int    `json:"page"`
	PageSize    int    `json:"page_size"`
	SearchQuery string `json:"q"`
}

// Page is one rendered page of a filtered collection. Page, PrevPage,
// NextPage and Pages hold 0-based indexes.
type Page[T any] struct {
	Items      []T    `json:"items"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalPages int    `json:"total_pages"`
	From       int    `json:"from"`
	To         int    `json:"to"`
	Query      string `json:"q"`
	PrevPage   *int   `json:"prev_page"`
	NextPage   *int   `json:"next_page"`
	// Pages is the window of page links around the current page.
	Pages []int `json:"pages"`
}

// HasPrev reports whether a previous page exists.
func (p *Page[T]) HasPrev() bool { return p.PrevPage != nil }

// HasNext reports whether a following page exists.
func (p *Page[T]) HasNext() bool { return p.NextPage != nil }

// State returns the view state that produced p.
func (p *Page[T]) State() State {
	return State{PageIndex: p.Page, PageSize: p.PageSize, SearchQuery: p.Query}
}

// Resize returns the state that shows p with size rows per page. The page
// index is kept and pulled back into range, as Controller.SetPageSize does.
func (p *Page[T]) Resize(size int) State {
	s := p.State()
	s.PageSize = size
	if last := max(PageCount(p.Total, size)-1, 0); s.PageIndex > last {
		s.PageIndex = last
	}
	return s
}

// Controller owns the State of one view and keeps the filtered collection
// in sync with it. The zero value is not usable; use NewController.
type Controller[T Searchable] struct {
	all      []T
	filtered []T
	state    State
}

// Option configures a Controller.
type Option func(*State)

// WithPageSize sets the initial page size. Sizes outside PageSizes are ignored.
func WithPageSize(n int) Option {
	return func(s *State) {
		if ValidPageSize(n) {
			s.PageSize = n
		}
	}
}

// NewController creates a Controller over items positioned on the first page.
func NewController[T Searchable](items []T, opts ...Option) *Controller[T] {
	c := &Controller[T]{
		all:   items,
		state: State{PageSize: DefaultPageSize},
	}
	for _, opt := range opts {
		opt(&c.state)
	}
	c.filtered = Filter(c.all, c.state.SearchQuery)
	return c
}

// SetItems replaces the source collection, keeping the search query and
// clamping the page index into the new range.
func (c *Controller[T]) SetItems(items []T) {
	c.all = items
	c.filtered = Filter(c.all, c.state.SearchQuery)
	c.clampPageIndex()
}

// SetSearchQuery updates the query, recomputes the filtered collection and
// moves back to the first page.
func (c *Controller[T]) SetSearchQuery(q string) {
	c.state.SearchQuery = q
	c.state.PageIndex = 0
	c.filtered = Filter(c.all, q)
}

// SetPageIndex moves to page i. Indexes outside [0, PageCount) are ignored
// and reported by returning false.
func (c *Controller[T]) SetPageIndex(i int) bool {
	if i < 0 || i >= c.PageCount() {
		return false
	}
	c.state.PageIndex = i
	return true
}

// SetPageSize changes the page size and clamps the page index into the new
// range. Sizes outside PageSizes are ignored and reported by returning false.
func (c *Controller[T]) SetPageSize(n int) bool {
	if !ValidPageSize(n) {
		return false
	}
	c.state.PageSize = n
	c.clampPageIndex()
	return true
}

// Apply replays s on the controller: the search query first (which resets the
// page index), then the page size, then the page index.
func (c *Controller[T]) Apply(s State) {
	if s.SearchQuery != c.state.SearchQuery {
		c.SetSearchQuery(s.SearchQuery)
	}
	c.SetPageSize(s.PageSize)
	c.SetPageIndex(s.PageIndex)
}

// State returns a copy of the current state.
func (c *Controller[T]) State() State { return c.state }

// Filtered returns every item matching the current query, in source order.
func (c *Controller[T]) Filtered() []T { return c.filtered }

// Paginated returns the items of the current page.
func (c *Controller[T]) Paginated() []T {
	return Paginate(c.filtered, c.state.PageIndex, c.state.PageSize)
}

// PageCount returns the number of pages of the filtered collection.
func (c *Controller[T]) PageCount() int {
	return PageCount(len(c.filtered), c.state.PageSize)
}

// Range returns the 1-based positions of the first and last item on the
// current page, or (0, 0) when the page is empty.
func (c *Controller[T]) Range() (from, to int) {
	n := len(c.Paginated())
	if n == 0 {
		return 0, 0
	}
	from = c.state.PageIndex*c.state.PageSize + 1
	return from, from + n - 1
}

// Page snapshots the current page.
func (c *Controller[T]) Page() *Page[T] {
	page := &Page[T]{
		Items:    []T{},
		Total:    len(c.filtered),
		Page:     c.state.PageIndex,
		PageSize: c.state.PageSize,
		Query:    c.state.SearchQuery,
		Pages:    []int{},
	}
	if page.Total == 0 {
		return page
	}

	p, err := paginate(c.filtered, c.state.PageIndex, c.state.PageSize)
	if err != nil {
		return page
	}
	page.Items = p.Items
	page.TotalPages = p.TotalPages
	page.From = (p.CurrentPage-1)*p.ItemsPerPage + 1
	page.To = page.From + len(p.Items) - 1
	for _, n := range p.Pages {
		page.Pages = append(page.Pages, n-1)
	}
	if p.PreviousPage != nil {
		prev := *p.PreviousPage - 1
		page.PrevPage = &prev
	}
	if p.NextPage != nil {
		next := *p.NextPage - 1
		page.NextPage = &next
	}
	return page
}

func (c *Controller[T]) clampPageIndex() {
	last := c.PageCount() - 1
	if last < 0 {
		last = 0
	}
	if c.state.PageIndex > last {
		c.state.PageIndex = last
	}
}

// Reduce is the functional form of Controller: it builds a controller over
// items, replays s and returns the resulting page.
func Reduce[T Searchable](items []T, s State, opts ...Option) *Page[T] {
	c := NewController(items, opts...)
	c.Apply(s)
	return c.Page()
}
