package options

import (
	"fmt"
	"strconv"
)

// ParseIndex parses the 1-based entry number shown by list and query.
func ParseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid index %q, expected the number shown by list", arg)
	}
	return n, nil
}
