package mysql

import "strings"

// stringOrDash substitutes "-" for empty/whitespace values so non-null
// columns always carry a marker
func stringOrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
