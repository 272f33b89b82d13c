package pagination

// Meta describes one page of an offset-paginated listing.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	From       int   `json:"from"`
	To         int   `json:"to"`
}

// NewMeta computes page boundaries for a total row count. From/To are
// 1-based row positions; both are 0 for a page past the end.
func NewMeta(page, limit int, totalItems int64) Meta {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	totalPages := int((totalItems + int64(limit) - 1) / int64(limit))

	from := (page-1)*limit + 1
	to := page * limit
	if int64(to) > totalItems {
		to = int(totalItems)
	}
	if int64(from) > totalItems {
		from, to = 0, 0
	}

	return Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: totalItems,
		TotalPages: totalPages,
		From:       from,
		To:         to,
	}
}

// Offset returns the SQL offset for a page.
func Offset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}
