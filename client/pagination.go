package client

// PageControls is the view model for a pager: whether it renders at all and
// which arrows are enabled.
type PageControls struct {
	Page        int
	TotalPages  int
	Visible     bool
	PrevEnabled bool
	NextEnabled bool
}

// NewPageControls derives pager state from a list response. The pager hides
// entirely when everything fits on one page.
func NewPageControls(p Pagination) PageControls {
	totalPages := p.TotalPages
	if totalPages < 1 {
		totalPages = 1
	}
	page := ClampPage(p.Page, totalPages)

	return PageControls{
		Page:        page,
		TotalPages:  totalPages,
		Visible:     totalPages > 1,
		PrevEnabled: page > 1,
		NextEnabled: page < totalPages,
	}
}

// ClampPage forces a page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
