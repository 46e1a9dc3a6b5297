package utils

// ParsePage parses a 1-based page number, falling back to 1.
func ParsePage(raw string) int {
	return ParseLimit(raw, 1)
}

// PageCount returns ceil(total / limit). Zero rows means zero pages; a page
// request past the last page is answered with an empty slice, not an error.
func PageCount(total int64, limit int) int {
	if limit < 1 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
