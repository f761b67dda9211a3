package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// formatRupees renders cents as an en-IN currency string with Indian digit
// grouping, e.g. 7500000 -> "₹75,000.00" and 123456789 -> "₹12,34,567.89".
func formatRupees(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}
	rupees := cents / 100
	rem := cents % 100

	s := groupIndian(strconv.FormatInt(rupees, 10)) + "." + fmt.Sprintf("%02d", rem)
	if neg {
		return "-₹" + s
	}
	return "₹" + s
}

// groupIndian inserts en-IN separators: the last three digits form a group,
// the rest pair off (##,##,###).
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}

// parseID extracts the numeric id following the route prefix.
func parseID(path, prefix string) (int64, error) {
	raw := strings.TrimPrefix(path, prefix)
	raw = strings.TrimSuffix(raw, "/")
	return strconv.ParseInt(raw, 10, 64)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
