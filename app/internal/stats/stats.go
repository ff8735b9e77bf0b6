package stats

import (
	"sort"

	"uptimestatus/app/internal/uptimerobot"
)

// ComputeGlobalStats reduces the merged monitor set into counts by status
// and the average of the per-monitor averages. An empty set yields all
// zeroes, never NaN.
func ComputeGlobalStats(monitors []Monitor) GlobalStats {
	gs := GlobalStats{Total: len(monitors)}
	if len(monitors) == 0 {
		return gs
	}

	var sum float64
	for _, m := range monitors {
		switch m.Status {
		case StatusOK:
			gs.Up++
		case StatusDown:
			gs.Down++
		case StatusPaused:
			gs.Paused++
		}
		sum += m.Average
	}
	gs.Average = uptimerobot.Truncate2(sum / float64(len(monitors)))
	return gs
}

// SortByName orders monitors by display name so merged output is stable
// regardless of credential completion order.
func SortByName(monitors []Monitor) {
	sort.SliceStable(monitors, func(i, j int) bool {
		return monitors[i].Name < monitors[j].Name
	})
}
