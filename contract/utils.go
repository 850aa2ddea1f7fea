package main

import (
	"strconv"
	"time"

	"koban_token/sdk"
)

// -----------------------------------------------------------------------------
// Timestamp Helpers
// -----------------------------------------------------------------------------

// nowUnix returns the current Unix timestamp.
// It prefers the chain's block timestamp from the environment if available.
func nowUnix() int64 {
	if ts := currentEnv().Timestamp; ts != "" {
		if v, ok := parseTimestamp(ts); ok {
			return v
		}
	}
	if tsPtr := sdk.GetEnvKey("block.timestamp"); tsPtr != nil && *tsPtr != "" {
		if v, ok := parseTimestamp(*tsPtr); ok {
			return v
		}
	}
	return time.Now().Unix()
}

// parseTimestamp accepts unix seconds or iso-ish strings since the env flips formats sometimes.
func parseTimestamp(val string) (int64, bool) {
	if v, err := strconv.ParseInt(val, 10, 64); err == nil {
		return v, true
	}
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t.Unix(), true
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", val, time.UTC); err == nil {
		return t.Unix(), true
	}
	return 0, false
}

// Convenience helper
func strptr(s string) *string { return &s }
