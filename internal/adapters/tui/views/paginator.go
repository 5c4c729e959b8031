package views

// Paginator tracks a cursor over a list shown one page at a time
type Paginator struct {
	pageSize   int
	pageOffset int
	cursor     int
	total      int
}

// NewPaginator creates a paginator; non-positive sizes fall back to 10 rows
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Paginator{pageSize: pageSize}
}

// SetTotal sets the number of rows and clamps the cursor into range
func (p *Paginator) SetTotal(total int) {
	p.total = max(total, 0)
	p.cursor = min(p.cursor, max(p.total-1, 0))
	p.follow()
}

// SetPageSize changes the rows per page, e.g. after a resize
func (p *Paginator) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	p.pageSize = size
	p.follow()
}

// Cursor returns the absolute index of the highlighted row
func (p *Paginator) Cursor() int {
	return p.cursor
}

// CursorUp moves the cursor up by one
func (p *Paginator) CursorUp() bool {
	if p.cursor == 0 {
		return false
	}
	p.cursor--
	p.follow()
	return true
}

// CursorDown moves the cursor down by one
func (p *Paginator) CursorDown() bool {
	if p.cursor >= p.total-1 {
		return false
	}
	p.cursor++
	p.follow()
	return true
}

// VisibleRange returns the [start, end) rows of the current page
func (p *Paginator) VisibleRange() (start, end int) {
	return p.pageOffset, min(p.pageOffset+p.pageSize, p.total)
}

// TotalPages returns the number of pages, at least one
func (p *Paginator) TotalPages() int {
	if p.total == 0 {
		return 1
	}
	return (p.total + p.pageSize - 1) / p.pageSize
}

// CurrentPage returns the current page number (1-based)
func (p *Paginator) CurrentPage() int {
	return p.pageOffset/p.pageSize + 1
}

// NextPage jumps to the first row of the next page
func (p *Paginator) NextPage() bool {
	if p.pageOffset+p.pageSize >= p.total {
		return false
	}
	p.pageOffset += p.pageSize
	p.cursor = p.pageOffset
	return true
}

// PrevPage jumps to the first row of the previous page
func (p *Paginator) PrevPage() bool {
	if p.pageOffset == 0 {
		return false
	}
	p.pageOffset = max(p.pageOffset-p.pageSize, 0)
	p.cursor = p.pageOffset
	return true
}

// follow keeps the page containing the cursor in view
func (p *Paginator) follow() {
	p.pageOffset = (p.cursor / p.pageSize) * p.pageSize
}
