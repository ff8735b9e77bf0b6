package uptimerobot

import (
	"fmt"
	"strings"
	"time"
)

const daySeconds = 86400

// DateRange is a half-open unix-time interval [Start, End).
type DateRange struct {
	Start int64
	End   int64
}

// Contains reports whether the instant t falls inside the range.
func (r DateRange) Contains(t int64) bool {
	return t >= r.Start && t < r.End
}

// Today returns the current UTC instant truncated to midnight.
func Today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

// PlanRanges builds the ranges requested from the upstream for a window of
// `days` calendar days ending today: one one-day range per day, newest
// first, followed by a combined range spanning the whole window. The
// result always has days+1 entries.
func PlanRanges(today time.Time, days int) []DateRange {
	ranges := make([]DateRange, 0, days+1)
	midnight := today.UTC().Truncate(24 * time.Hour).Unix()

	for d := 0; d < days; d++ {
		start := midnight - int64(d)*daySeconds
		ranges = append(ranges, DateRange{Start: start, End: start + daySeconds})
	}

	// Combined range: oldest day start through end of today.
	ranges = append(ranges, DateRange{
		Start: midnight - int64(days-1)*daySeconds,
		End:   midnight + daySeconds,
	})
	return ranges
}

// EncodeRanges packs ranges into the custom_uptime_ranges request format:
// "start_end" pairs joined by "-".
func EncodeRanges(ranges []DateRange) string {
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		parts[i] = fmt.Sprintf("%d_%d", r.Start, r.End)
	}
	return strings.Join(parts, "-")
}
