package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var reID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Phone requires a non-empty contact field. The owner calls the number back by
// hand, so no format is imposed beyond a sane upper bound.
func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 50 {
		return "", false
	}
	return s, true
}

// Address requires a non-empty delivery address with a sane upper bound.
func Address(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 500 {
		return "", false
	}
	return s, true
}

// ID validates a product identifier.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// ProductName requires a non-empty display name.
func ProductName(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return "", false
	}
	return s, true
}

// Price parses a non-negative decimal price.
func Price(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// Delta parses a quantity delta (+1 / -1 buttons); anything unparsable is 0.
func Delta(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	if n > 50 {
		n = 50
	}
	if n < -50 {
		n = -50
	}
	return n
}
