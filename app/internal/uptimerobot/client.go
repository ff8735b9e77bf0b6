package uptimerobot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DefaultAPIURL is the UptimeRobot v2 getMonitors endpoint.
const DefaultAPIURL = "https://api.uptimerobot.com/v2/getMonitors"

// Client talks to the UptimeRobot API.
type Client struct {
	apiURL string
	http   *http.Client
}

// NewClient creates a client for the given endpoint. An empty apiURL
// falls back to the public UptimeRobot API. The timeout bounds the whole
// request; a timeout surfaces as an ordinary fetch error.
func NewClient(apiURL string, timeout time.Duration) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &Client{
		apiURL: apiURL,
		http:   &http.Client{Timeout: timeout},
	}
}

// GetMonitors fetches all monitors visible to apiKey with logs and
// per-range uptime percentages for the given ranges. The last range must
// be the combined window range (see PlanRanges).
func (c *Client) GetMonitors(ctx context.Context, apiKey string, ranges []DateRange) ([]Monitor, error) {
	combined := ranges[len(ranges)-1]

	form := url.Values{}
	form.Set("api_key", apiKey)
	form.Set("format", "json")
	form.Set("logs", "1")
	form.Set("log_types", "1-2")
	form.Set("logs_start_date", strconv.FormatInt(combined.Start, 10))
	form.Set("logs_end_date", strconv.FormatInt(combined.End, 10))
	form.Set("custom_uptime_ranges", EncodeRanges(ranges))
	// Response time series are large; cap the sample count.
	form.Set("response_times", "1")
	form.Set("response_times_limit", "12")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "build getMonitors request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "getMonitors request")
	}
	defer resp.Body.Close()

	var body APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "decode getMonitors response")
	}

	if body.Stat != "ok" {
		if body.Error != nil && body.Error.Message != "" {
			return nil, errors.New(body.Error.Message)
		}
		return nil, errors.New("API 请求失败")
	}
	return body.Monitors, nil
}
