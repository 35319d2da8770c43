package auth

import "strings"

// IsAllowed reports whether callerID may perform mutating event operations.
// allowlist is the raw comma-separated configuration value and is parsed on
// every call; there is no cached set. An unset allowlist denies everyone, as
// does an empty caller identity. Entries and the caller identity are
// compared after trimming surrounding whitespace.
func IsAllowed(allowlist, callerID string) bool {
	callerID = strings.TrimSpace(callerID)
	if allowlist == "" || callerID == "" {
		return false
	}
	for _, entry := range strings.Split(allowlist, ",") {
		if entry = strings.TrimSpace(entry); entry != "" && entry == callerID {
			return true
		}
	}
	return false
}
