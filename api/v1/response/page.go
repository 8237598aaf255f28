package response

// Page is the offset-pagination wrapper shared by every list endpoint.
// Pages are 0-indexed.
type Page[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

// NewPage assembles a page. An empty table yields totalPages 0 with both
// first and last true.
func NewPage[T any](content []T, pageNumber, pageSize int, totalElements int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((totalElements + int64(pageSize) - 1) / int64(pageSize))
	}
	return Page[T]{
		Content:       content,
		PageNumber:    pageNumber,
		PageSize:      pageSize,
		TotalElements: totalElements,
		TotalPages:    totalPages,
		First:         pageNumber == 0,
		Last:          pageNumber >= totalPages-1,
	}
}
