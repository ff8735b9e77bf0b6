package stats

import (
	"strconv"
	"time"

	"uptimestatus/app/internal/uptimerobot"
)

// Aggregate turns one raw upstream monitor into its aggregated view for
// the window described by ranges (the same slice the data was requested
// with: days daily ranges newest first, combined range last).
//
// Outage attribution uses UTC calendar days throughout: an event belongs
// to the bucket whose [start, end) day contains its timestamp. Events
// outside all buckets still count toward the running total as long as
// they fall inside the combined range; anything else is dropped silently.
func Aggregate(raw uptimerobot.Monitor, ranges []uptimerobot.DateRange, days int) (Monitor, error) {
	values, err := uptimerobot.DecodeUptimeValues(raw.CustomUptimeRanges, days)
	if err != nil {
		return Monitor{}, err
	}

	daily := make([]DailyBucket, days)
	dateIdx := make(map[string]int, days)
	for i := 0; i < days; i++ {
		key := dayKey(ranges[i].Start)
		dateIdx[key] = i
		daily[i] = DailyBucket{
			Date:   time.Unix(ranges[i].Start, 0).UTC().Format("2006-01-02"),
			Uptime: values.Daily[i],
		}
	}

	combined := ranges[len(ranges)-1]
	var total Downtime
	for _, log := range raw.Logs {
		if log.Type != uptimerobot.LogTypeDown {
			continue
		}
		if idx, ok := dateIdx[dayKey(log.Datetime)]; ok {
			daily[idx].Down.Duration += log.Duration
			daily[idx].Down.Times++
		} else if !combined.Contains(log.Datetime) {
			continue
		}
		total.Duration += log.Duration
		total.Times++
	}

	m := Monitor{
		ID:      raw.ID,
		Name:    raw.FriendlyName,
		URL:     raw.URL,
		Status:  StatusFromCode(raw.Status),
		Average: values.Average,
		Daily:   daily,
		Total:   total,
		Logs:    raw.Logs,
	}
	if len(raw.ResponseTimes) > 0 {
		m.ResponseTimes = raw.ResponseTimes
	}
	if raw.AverageResponseTime != "" {
		if v, err := strconv.ParseFloat(raw.AverageResponseTime, 64); err == nil {
			m.AvgResponseTime = &v
		}
	}
	return m, nil
}

// dayKey is the UTC calendar-day key for a unix timestamp.
func dayKey(ts int64) string {
	return time.Unix(ts, 0).UTC().Format("20060102")
}
