package models

import "time"

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ToTimestamp converts a backend date string to Unix milliseconds. Strings
// without a zone are read as UTC; unreadable strings give 0.
func ToTimestamp(s string) int64 {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UnixMilli()
		}
	}
	return 0
}
