package uptimerobot

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// UptimeValues holds the decoded custom_uptime_ranges percentages: one
// value per requested day (same order as the ranges) plus the overall
// average for the combined range.
type UptimeValues struct {
	Daily   []float64
	Average float64
}

// Truncate2 cuts a percentage to two decimals without rounding.
func Truncate2(v float64) float64 {
	return math.Floor(v*100) / 100
}

// DecodeUptimeValues parses the "-"-joined percentage string returned for
// a window of `days` days. The final value is the combined-range average.
// Missing trailing values decode as 0 so a short reply still yields a
// full window; every value is truncated to two decimals.
func DecodeUptimeValues(packed string, days int) (UptimeValues, error) {
	out := UptimeValues{Daily: make([]float64, days)}
	if packed == "" {
		return out, nil
	}

	parts := strings.Split(packed, "-")
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return UptimeValues{}, errors.Wrapf(err, "bad uptime range value %q", p)
		}
		values = append(values, v)
	}

	// Last value is the overall average, the rest map onto days in order.
	out.Average = Truncate2(values[len(values)-1])
	values = values[:len(values)-1]
	for i := 0; i < days && i < len(values); i++ {
		out.Daily[i] = Truncate2(values[i])
	}
	return out, nil
}

// EncodeUptimeValues is the inverse of DecodeUptimeValues, used to build
// fixture payloads and to keep the round trip checkable.
func EncodeUptimeValues(v UptimeValues) string {
	parts := make([]string, 0, len(v.Daily)+1)
	for _, d := range v.Daily {
		parts = append(parts, formatPercent(d))
	}
	parts = append(parts, formatPercent(v.Average))
	return strings.Join(parts, "-")
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
