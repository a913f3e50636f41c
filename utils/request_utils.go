package utils

import (
	"time"

	"github.com/google/uuid"
)

// NewRequestID returns a fresh correlation identifier for a request.
func NewRequestID() string {
	return uuid.New().String()
}

// NowMillis returns the current time as unix milliseconds, the timestamp
// format used in every response body.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
