package ports

import "github.com/taskforge/task-api/internal/core/domain"

// Pagination defaults shared by every list operation. Absent or non-numeric
// query parameters fall back to these.
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 5
)

// PageRequest is the raw pagination input as parsed from the query string.
// Zero or negative values mean "use the default".
type PageRequest struct {
	Number int
	Size   int
}

// PageMetadata accompanies every list result.
type PageMetadata struct {
	Count       int64 `json:"count"`
	NoOfPages   int   `json:"noOfPages"`
	CurrentPage int   `json:"currentPage"`
}

// UserPage is one page of users plus its metadata.
type UserPage struct {
	Items    []*domain.User
	Metadata PageMetadata
}

// TaskPage is one page of tasks plus its metadata.
type TaskPage struct {
	Items    []*domain.Task
	Metadata PageMetadata
}
