package repository

import "errors"

// ErrNoRecord is returned by stores when a lookup misses. Services translate
// it into the HTTP-aware not-found error.
var ErrNoRecord = errors.New("record not found")

func paginate(total, page, size int) (start, end int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}
	start = (page - 1) * size
	if start > total {
		start = total
	}
	end = start + size
	if end > total {
		end = total
	}
	return start, end
}
