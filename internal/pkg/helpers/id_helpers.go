package helpers

import "strconv"

// FormatID renders a database id the way the API exposes it: as a decimal string.
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// ParseID parses a decimal string id from a path parameter.
func ParseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
