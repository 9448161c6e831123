package utils

import "strconv"

const MaxPageSize = 100

// ParsePage reads page/pageSize query values the way every list endpoint does.
func ParsePage(pageStr, pageSizeStr string) (int, int, error) {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return 0, 0, ErrInvalidPage
	}
	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > MaxPageSize {
		return 0, 0, ErrInvalidPageSize
	}
	return page, pageSize, nil
}
