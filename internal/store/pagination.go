package store

const DefaultPageSize = 10

// Calculate turns a 1-based page into skip/limit values. Page sizes have no
// upper bound; only nonsense values fall back to the defaults.
func Calculate(page, size int32) (skip, limit int64) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	return int64(page-1) * int64(size), int64(size)
}
