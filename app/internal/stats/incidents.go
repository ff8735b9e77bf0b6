package stats

import (
	"fmt"
	"sort"

	"uptimestatus/app/internal/uptimerobot"
)

// DefaultIncidentLimit caps how many recent incidents are reported.
const DefaultIncidentLimit = 20

// Incidents flattens every monitor's down events into a single list,
// newest first, capped at limit (<=0 means DefaultIncidentLimit).
func Incidents(monitors []Monitor, limit int) []Incident {
	if limit <= 0 {
		limit = DefaultIncidentLimit
	}

	events := []Incident{}
	for _, m := range monitors {
		for idx, log := range m.Logs {
			if log.Type != uptimerobot.LogTypeDown {
				continue
			}
			ev := Incident{
				ID:          fmt.Sprintf("%d-%d", m.ID, idx),
				MonitorID:   m.ID,
				MonitorName: m.Name,
				Type:        "down",
				Datetime:    log.Datetime,
				Duration:    log.Duration,
			}
			if log.Reason != nil {
				ev.Reason = log.Reason.Detail
			}
			events = append(events, ev)
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Datetime > events[j].Datetime
	})
	if len(events) > limit {
		events = events[:limit]
	}
	return events
}
