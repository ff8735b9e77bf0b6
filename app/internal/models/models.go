package models

// Envelope is the uniform JSON shape for every gateway response.
// Success payloads carry Data and a millisecond Timestamp; failures
// carry Error.
type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	Errors    any    `json:"errors,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// OK wraps a success payload
func OK(data any, timestampMs int64) Envelope {
	return Envelope{Success: true, Data: data, Timestamp: timestampMs}
}

// Err wraps an error message
func Err(message string) Envelope {
	return Envelope{Success: false, Error: message}
}

// ErrAt wraps an error message with a timestamp, used for upstream
// failures
func ErrAt(message string, timestampMs int64) Envelope {
	return Envelope{Success: false, Error: message, Timestamp: timestampMs}
}

// Health is the gateway self-report served by /api/health.
type Health struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Credentials   int    `json:"credentials"`
	CacheTTLSecs  int64  `json:"cache_ttl_seconds"`
	RateLimit     string `json:"rate_limit"`
	RecentFetches any    `json:"recent_fetches,omitempty"`
}
