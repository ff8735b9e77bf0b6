package uptimerobot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPlanRanges_WindowSizes(t *testing.T) {
	today := time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC)

	for _, days := range []int{7, 30, 60, 90} {
		ranges := PlanRanges(today, days)
		require.Len(t, ranges, days+1, "days=%d", days)

		// Daily ranges are one day wide, newest first, contiguous and
		// non-overlapping.
		for i := 0; i < days; i++ {
			require.Equal(t, int64(daySeconds), ranges[i].End-ranges[i].Start)
			if i > 0 {
				require.Equal(t, ranges[i-1].Start, ranges[i].End, "range %d not contiguous", i)
			}
		}

		// Combined range spans exactly the whole window.
		combined := ranges[days]
		require.Equal(t, ranges[days-1].Start, combined.Start)
		require.Equal(t, ranges[0].End, combined.End)
		require.Equal(t, int64(days*daySeconds), combined.End-combined.Start)
	}
}

func TestPlanRanges_NewestFirst(t *testing.T) {
	today := time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC)
	ranges := PlanRanges(today, 7)

	require.Equal(t, today.Unix(), ranges[0].Start)
	require.Equal(t, today.AddDate(0, 0, -1).Unix(), ranges[1].Start)
	require.Equal(t, today.AddDate(0, 0, -6).Unix(), ranges[6].Start)
}

func TestPlanRanges_TruncatesToMidnight(t *testing.T) {
	noon := time.Date(2024, 5, 14, 12, 30, 45, 0, time.UTC)
	midnight := time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC)

	require.Equal(t, PlanRanges(midnight, 7), PlanRanges(noon, 7))
}

func TestDateRange_Contains(t *testing.T) {
	r := DateRange{Start: 100, End: 200}

	require.True(t, r.Contains(100), "start boundary belongs to the range")
	require.True(t, r.Contains(199))
	require.False(t, r.Contains(200), "end boundary is exclusive")
	require.False(t, r.Contains(99))
}

func TestEncodeRanges(t *testing.T) {
	ranges := []DateRange{{Start: 10, End: 20}, {Start: 0, End: 20}}
	require.Equal(t, "10_20-0_20", EncodeRanges(ranges))
}
