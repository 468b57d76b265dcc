package ddcg

import (
	"strconv"
	"strings"
)

// isNumericLiteral reports whether tok's first significant character is
// a decimal digit, per spec.md §4.1 (after an optional leading '-' when
// the dialect allows it).
func isNumericLiteral(tok string, allowNegative bool) bool {
	if tok == "" {
		return false
	}
	i := 0
	if allowNegative && tok[0] == '-' {
		i = 1
	}
	return i < len(tok) && tok[i] >= '0' && tok[i] <= '9'
}

// decodeLiteral implements the base-selection rules of spec.md §4.1:
// 0x/0X selects hex, 0o/0O octal, 0b/0B binary; otherwise a leading 0
// (with more digits following) parses the WHOLE token octally — the
// later-revision behavior spec.md §9 says to follow, not the earlier
// int(t[1:], 8) behavior; anything else is decimal.
func decodeLiteral(tok string) (int, error) {
	neg := false
	rest := tok
	if strings.HasPrefix(rest, "-") {
		neg = true
		rest = rest[1:]
	}
	var v int64
	var err error
	switch {
	case strings.HasPrefix(rest, "0x") || strings.HasPrefix(rest, "0X"):
		v, err = strconv.ParseInt(rest[2:], 16, 64)
	case strings.HasPrefix(rest, "0o") || strings.HasPrefix(rest, "0O"):
		v, err = strconv.ParseInt(rest[2:], 8, 64)
	case strings.HasPrefix(rest, "0b") || strings.HasPrefix(rest, "0B"):
		v, err = strconv.ParseInt(rest[2:], 2, 64)
	case strings.HasPrefix(rest, "0") && len(rest) > 1:
		v, err = strconv.ParseInt(rest, 8, 64)
	default:
		v, err = strconv.ParseInt(rest, 10, 64)
	}
	if err != nil {
		return 0, err
	}
	if neg {
		v = -v
	}
	return int(v), nil
}
