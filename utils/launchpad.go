package utils

import "strings"

// DetectLaunchpad classifies a token by its mint-address suffix. Pump.fun
// and letsbonk mints carry vanity suffixes; anything else is unknown.
func DetectLaunchpad(address string) string {
	if address == "" {
		return ""
	}
	lower := strings.ToLower(address)
	switch {
	case strings.HasSuffix(lower, "pump"):
		return "Pump.fun"
	case strings.HasSuffix(lower, "bonk"):
		return "Bonk"
	}
	return ""
}
