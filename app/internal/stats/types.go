package stats

import "uptimestatus/app/internal/uptimerobot"

// Status is the coarse state of a monitor.
type Status string

const (
	StatusOK      Status = "ok"
	StatusDown    Status = "down"
	StatusPaused  Status = "paused"
	StatusUnknown Status = "unknown"
)

// StatusFromCode maps UptimeRobot's raw monitor status to a Status.
// 2 is up; 8 and 9 are both treated as down; 0 is paused; everything
// else (including "not checked yet") is unknown.
func StatusFromCode(code int) Status {
	switch code {
	case uptimerobot.MonitorUp:
		return StatusOK
	case uptimerobot.MonitorSeemsDown, uptimerobot.MonitorDown:
		return StatusDown
	case uptimerobot.MonitorPaused:
		return StatusPaused
	default:
		return StatusUnknown
	}
}

// Downtime accumulates outage events: how many and for how long.
type Downtime struct {
	Times    int   `json:"times"`
	Duration int64 `json:"duration"`
}

// DailyBucket is one calendar day of availability data for a monitor.
type DailyBucket struct {
	Date   string   `json:"date"` // YYYY-MM-DD, UTC
	Uptime float64  `json:"uptime"`
	Down   Downtime `json:"down"`
}

// Monitor is the aggregated view of one upstream monitor, rebuilt fresh
// on every fetch.
type Monitor struct {
	ID              int64                      `json:"id"`
	Name            string                     `json:"name"`
	URL             string                     `json:"url"`
	Status          Status                     `json:"status"`
	Average         float64                    `json:"average"`
	Daily           []DailyBucket              `json:"daily"`
	Total           Downtime                   `json:"total"`
	Logs            []uptimerobot.Log          `json:"logs"`
	ResponseTimes   []uptimerobot.ResponseTime `json:"responseTimes,omitempty"`
	AvgResponseTime *float64                   `json:"avgResponseTime,omitempty"`
}

// GlobalStats summarises the whole merged monitor set.
type GlobalStats struct {
	Total   int     `json:"total"`
	Up      int     `json:"up"`
	Down    int     `json:"down"`
	Paused  int     `json:"paused"`
	Average float64 `json:"avgUptime"`
}

// Incident is a single down event across the monitor set.
type Incident struct {
	ID          string `json:"id"`
	MonitorID   int64  `json:"monitorId"`
	MonitorName string `json:"monitorName"`
	Type        string `json:"type"`
	Datetime    int64  `json:"datetime"`
	Duration    int64  `json:"duration"`
	Reason      string `json:"reason,omitempty"`
}
