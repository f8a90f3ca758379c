package utils

import (
	"net/http"
	"strconv"
	"time"
)

const retryAfterKey string = "Retry-After"

// RetryAfter reads the Retry-After header of a rate limited response.
// Both delta-seconds and HTTP-date forms are accepted.
func RetryAfter(header http.Header) (time.Duration, bool) {
	value := header.Get(retryAfterKey)
	if value == "" {
		return 0, false
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds < 0 {
			return 0, false
		}
		return time.Second * time.Duration(seconds), true
	}
	if at, err := http.ParseTime(value); err == nil {
		wait := time.Until(at)
		if wait < 0 {
			wait = 0
		}
		return wait, true
	}
	return 0, false
}
