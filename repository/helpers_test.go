package repository

import (
	"testing"
	"time"
)

// fixedNow freezes the current date so derived ages stay stable.
func fixedNow(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2020, time.July, 1, 0, 0, 0, 0, time.UTC)
}
