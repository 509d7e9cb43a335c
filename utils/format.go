package utils

import (
	"fmt"
	"time"
)

// FormatAge renders a creation timestamp (unix seconds) as the compact
// age string the dashboard shows ("42s", "5m", "3h", "12d", "2mo").
// Zero or future timestamps render as an em dash.
func FormatAge(createdAt int64) string {
	if createdAt <= 0 {
		return "—"
	}
	diff := time.Now().Unix() - createdAt
	if diff < 0 {
		return "—"
	}

	switch {
	case diff < 60:
		return fmt.Sprintf("%ds", diff)
	case diff < 3600:
		return fmt.Sprintf("%dm", diff/60)
	case diff < 86400:
		return fmt.Sprintf("%dh", diff/3600)
	case diff < 30*86400:
		return fmt.Sprintf("%dd", diff/86400)
	}
	return fmt.Sprintf("%dmo", diff/(30*86400))
}

// ShortenAddress abbreviates a base58 address for logs.
func ShortenAddress(address string) string {
	if len(address) <= 11 {
		return address
	}
	return address[:4] + "..." + address[len(address)-4:]
}
