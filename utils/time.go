package utils

import "time"

var timeLayouts = []string{time.RFC3339Nano, time.RFC3339, time.DateTime, time.DateOnly}

// ParseTime parses the date formats returned by osu! servers.
func ParseTime(date string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseTimePtr is ParseTime for optional fields.
func ParseTimePtr(date *string) *time.Time {
	if date == nil {
		return nil
	}
	t, ok := ParseTime(*date)
	if !ok {
		return nil
	}
	return &t
}

func MustParseTime(date string, format string) time.Time {
	t, err := time.Parse(format, date)
	if err != nil {
		panic(err)
	}
	return t
}

// UnixTime converts unix seconds, treating 0 as unknown.
func UnixTime(seconds int64) time.Time {
	if seconds <= 0 {
		return time.Time{}
	}
	return time.Unix(seconds, 0).UTC()
}
