package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"uptimestatus/app/internal/uptimerobot"
)

var testToday = time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC)

func rawMonitor(packed string, logs []uptimerobot.Log) uptimerobot.Monitor {
	return uptimerobot.Monitor{
		ID:                 42,
		FriendlyName:       "api",
		URL:                "https://api.example.com",
		Status:             uptimerobot.MonitorUp,
		CustomUptimeRanges: packed,
		Logs:               logs,
	}
}

func TestAggregate_UptimeExample(t *testing.T) {
	ranges := uptimerobot.PlanRanges(testToday, 3)

	m, err := Aggregate(rawMonitor("100-100-0-95.5", nil), ranges, 3)
	require.NoError(t, err)

	require.Len(t, m.Daily, 3)
	require.Equal(t, 100.0, m.Daily[0].Uptime)
	require.Equal(t, 100.0, m.Daily[1].Uptime)
	require.Equal(t, 0.0, m.Daily[2].Uptime)
	require.Equal(t, 95.5, m.Average)

	// Buckets are newest first with UTC dates.
	require.Equal(t, "2024-05-14", m.Daily[0].Date)
	require.Equal(t, "2024-05-13", m.Daily[1].Date)
	require.Equal(t, "2024-05-12", m.Daily[2].Date)
}

func TestAggregate_DownEventBucketing(t *testing.T) {
	ranges := uptimerobot.PlanRanges(testToday, 3)

	// Noon yesterday lands in bucket index 1.
	noon := ranges[1].Start + 12*3600
	logs := []uptimerobot.Log{{Type: 1, Datetime: noon, Duration: 120}}

	m, err := Aggregate(rawMonitor("100-99-100-99.66", logs), ranges, 3)
	require.NoError(t, err)

	require.Equal(t, 1, m.Daily[1].Down.Times)
	require.Equal(t, int64(120), m.Daily[1].Down.Duration)
	require.Zero(t, m.Daily[0].Down.Times)
	require.Zero(t, m.Daily[2].Down.Times)
	require.Equal(t, Downtime{Times: 1, Duration: 120}, m.Total)
}

func TestAggregate_BoundaryEventBelongsToNewDay(t *testing.T) {
	ranges := uptimerobot.PlanRanges(testToday, 3)

	// Exactly midnight: attributed to the day starting there, never the
	// previous one.
	logs := []uptimerobot.Log{{Type: 1, Datetime: ranges[1].Start, Duration: 60}}

	m, err := Aggregate(rawMonitor("100-100-100-100", logs), ranges, 3)
	require.NoError(t, err)

	require.Equal(t, 1, m.Daily[1].Down.Times)
	require.Zero(t, m.Daily[2].Down.Times)
}

func TestAggregate_UpEventsIgnored(t *testing.T) {
	ranges := uptimerobot.PlanRanges(testToday, 3)
	logs := []uptimerobot.Log{
		{Type: 2, Datetime: ranges[0].Start + 100, Duration: 500},
		{Type: 98, Datetime: ranges[0].Start + 200, Duration: 500},
	}

	m, err := Aggregate(rawMonitor("100-100-100-100", logs), ranges, 3)
	require.NoError(t, err)
	require.Equal(t, Downtime{}, m.Total)
	for _, b := range m.Daily {
		require.Zero(t, b.Down.Times)
	}
}

func TestAggregate_EventOutsideWindowDropped(t *testing.T) {
	ranges := uptimerobot.PlanRanges(testToday, 3)
	combined := ranges[len(ranges)-1]

	logs := []uptimerobot.Log{
		// Before the combined range: ignored entirely.
		{Type: 1, Datetime: combined.Start - 10, Duration: 999},
		// Inside the combined range but after today's midnight bucket
		// started still maps to a bucket; this one is inside today.
		{Type: 1, Datetime: ranges[0].Start + 10, Duration: 30},
	}

	m, err := Aggregate(rawMonitor("100-100-100-100", logs), ranges, 3)
	require.NoError(t, err)
	require.Equal(t, Downtime{Times: 1, Duration: 30}, m.Total)
	require.Equal(t, 1, m.Daily[0].Down.Times)
}

func TestAggregate_ZeroLogs(t *testing.T) {
	ranges := uptimerobot.PlanRanges(testToday, 7)

	raw := rawMonitor("", nil)
	raw.Status = uptimerobot.MonitorDown
	m, err := Aggregate(raw, ranges, 7)
	require.NoError(t, err)

	require.Equal(t, StatusDown, m.Status)
	require.Equal(t, Downtime{}, m.Total)
	require.Len(t, m.Daily, 7)
	for _, b := range m.Daily {
		require.Zero(t, b.Uptime)
		require.Zero(t, b.Down.Times)
	}
}

func TestAggregate_ResponseTimes(t *testing.T) {
	ranges := uptimerobot.PlanRanges(testToday, 3)

	raw := rawMonitor("100-100-100-100", nil)
	raw.ResponseTimes = []uptimerobot.ResponseTime{{Datetime: ranges[0].Start, Value: 120}}
	raw.AverageResponseTime = "201.5"

	m, err := Aggregate(raw, ranges, 3)
	require.NoError(t, err)
	require.Len(t, m.ResponseTimes, 1)
	require.NotNil(t, m.AvgResponseTime)
	require.Equal(t, 201.5, *m.AvgResponseTime)
}

func TestAggregate_BadPackedValues(t *testing.T) {
	ranges := uptimerobot.PlanRanges(testToday, 3)
	_, err := Aggregate(rawMonitor("100-oops-100-100", nil), ranges, 3)
	require.Error(t, err)
}

func TestStatusFromCode(t *testing.T) {
	cases := []struct {
		code int
		want Status
	}{
		{2, StatusOK},
		{8, StatusDown},
		{9, StatusDown},
		{0, StatusPaused},
		{1, StatusUnknown},
		{5, StatusUnknown},
	}
	for _, c := range cases {
		require.Equal(t, c.want, StatusFromCode(c.code), "code %d", c.code)
	}
}
