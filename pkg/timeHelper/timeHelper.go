package timehelper

import "time"

// NowISO8601 formats the current instant the way admin records store their
// creation timestamp.
func NowISO8601() string {
	return time.Now().UTC().Format(time.RFC3339)
}
