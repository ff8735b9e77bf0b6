package uptimerobot

// Log status codes reported by UptimeRobot.
// Only down events (type 1) carry a duration worth aggregating.
const (
	LogTypeDown    = 1
	LogTypeUp      = 2
	LogTypeStarted = 98
	LogTypePaused  = 99
)

// Monitor status codes: 0=paused, 1=not checked yet, 2=up, 8=seems down, 9=down
const (
	MonitorPaused     = 0
	MonitorNotChecked = 1
	MonitorUp         = 2
	MonitorSeemsDown  = 8
	MonitorDown       = 9
)

// LogReason describes why a monitor changed state.
type LogReason struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

// Log is a single state-transition event for a monitor.
type Log struct {
	Type     int        `json:"type"`
	Datetime int64      `json:"datetime"`
	Duration int64      `json:"duration"`
	Reason   *LogReason `json:"reason,omitempty"`
}

// ResponseTime is one sampled response-time measurement.
type ResponseTime struct {
	Datetime int64 `json:"datetime"`
	Value    int   `json:"value"`
}

// Monitor is the raw monitor record as returned by getMonitors.
type Monitor struct {
	ID                  int64          `json:"id"`
	FriendlyName        string         `json:"friendly_name"`
	URL                 string         `json:"url"`
	Type                int            `json:"type"`
	Status              int            `json:"status"`
	CustomUptimeRanges  string         `json:"custom_uptime_ranges"`
	Logs                []Log          `json:"logs"`
	ResponseTimes       []ResponseTime `json:"response_times,omitempty"`
	AverageResponseTime string         `json:"average_response_time,omitempty"`
}

// APIError is the error object UptimeRobot returns when stat is not "ok".
type APIError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// APIResponse is the top-level getMonitors response.
type APIResponse struct {
	Stat     string    `json:"stat"`
	Error    *APIError `json:"error,omitempty"`
	Monitors []Monitor `json:"monitors"`
}
