package converter

import (
	"strconv"
	"strings"
)

// PointsToText renders the balance the way the storefront stores it: a bare
// decimal integer.
func PointsToText(points int) []byte {
	return []byte(strconv.Itoa(points))
}

// PointsFromText accepts a bare or JSON-quoted integer. Negative balances are
// clamped to zero.
func PointsFromText(data []byte) (int, error) {
	s := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		n = 0
	}
	return n, nil
}
