package utils

import "time"

// Epoch seconds are the storage unit for all timestamps in this service.
func NowUnixSeconds() int64 { return time.Now().Unix() }

func UnixPtr(t int64) *int64 { return &t }

// FromUnixSeconds returns zero time for t<=0 so callers decide how to render.
func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).UTC()
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
