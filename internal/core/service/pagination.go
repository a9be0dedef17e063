package service

import (
	"github.com/taskforge/task-api/internal/core/ports"
)

// normalizePage coerces a raw page request into positive pageNumber/pageSize
// values, applying the shared defaults for absent or non-positive input.
func normalizePage(page ports.PageRequest) (number, size int) {
	number = page.Number
	if number <= 0 {
		number = ports.DefaultPageNumber
	}
	size = page.Size
	if size <= 0 {
		size = ports.DefaultPageSize
	}
	return number, size
}

// paginate computes the page metadata for count matching rows and decides
// whether an item fetch is needed. When the requested page size exceeds the
// total count, or the page number lies past the last page, the result is an
// empty page and no fetch is performed. Offset uses (number-1)*size.
func paginate(count int64, number, size int) (meta ports.PageMetadata, offset int, fetch bool) {
	noOfPages := int((count + int64(size) - 1) / int64(size))

	meta = ports.PageMetadata{
		Count:       count,
		NoOfPages:   noOfPages,
		CurrentPage: number,
	}

	if int64(size) > count || number > noOfPages {
		return meta, 0, false
	}
	return meta, (number - 1) * size, true
}
