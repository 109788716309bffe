package utils

import "time"

// NowRFC3339 returns the current time serialized the way the row store
// stores timestamp columns.
func NowRFC3339() string {
	return time.Now().Format(time.RFC3339)
}
