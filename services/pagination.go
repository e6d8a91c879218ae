package services

// Pagination is the envelope accompanying every list response.
// Invariants: TotalPages == ceil(Total/Limit) and 1 <= Page <= max(TotalPages, 1).
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func NewPagination(page, limit, total int) Pagination {
	if limit < 1 {
		limit = 1
	}
	totalPages := (total + limit - 1) / limit
	return Pagination{
		Page:       ClampPage(page, totalPages),
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// ClampPage forces page into [1, max(totalPages, 1)]. An empty collection
// still has a valid page 1.
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
