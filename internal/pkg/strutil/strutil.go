package strutil

import "strconv"

// ConvertToInt parses s as an int, returning 0 on failure.
func ConvertToInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
