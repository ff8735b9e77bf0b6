package fetcher

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"uptimestatus/app/internal/config"
	"uptimestatus/app/internal/journal"
	"uptimestatus/app/internal/stats"
	"uptimestatus/app/internal/uptimerobot"
)

// ErrNoCredential is returned while no upstream API key is configured.
// Every fetch fails deterministically until the configuration is fixed.
var ErrNoCredential = errors.New("UptimeRobot API Key 未配置，请在环境变量中设置 UPTIMEROBOT_API_KEY")

// CredentialError reports a failed credential in partial-results mode.
type CredentialError struct {
	Credential string `json:"credential"`
	Error      string `json:"error"`
}

// Result is one merged fetch+aggregate cycle across all credentials.
type Result struct {
	Monitors []stats.Monitor   `json:"monitors"`
	Stats    stats.GlobalStats `json:"stats"`
	Errors   []CredentialError `json:"errors,omitempty"`
}

// Service fans one aggregation request out across all configured
// credentials and merges the results. By default one failing credential
// fails the whole batch; with partial results enabled the failures are
// reported alongside whatever succeeded.
//
// Concurrent fetches for the same credential and window are coalesced,
// so a burst of gateway requests performs at most one upstream call per
// credential.
type Service struct {
	client  *uptimerobot.Client
	creds   []config.Credential
	partial bool
	journal *journal.Journal
	group   singleflight.Group
	today   func() time.Time
}

// New creates a fetch service. jnl may be nil to disable journaling.
func New(client *uptimerobot.Client, creds []config.Credential, partial bool, jnl *journal.Journal) *Service {
	return &Service{
		client:  client,
		creds:   creds,
		partial: partial,
		journal: jnl,
		today:   uptimerobot.Today,
	}
}

// Fetch runs one fetch+aggregate cycle for the given window. Monitors
// are merged in credential order and then sorted by name; identical
// monitor IDs across credentials stay distinct entries since keys cover
// disjoint monitor sets.
func (s *Service) Fetch(ctx context.Context, days int) (*Result, error) {
	if len(s.creds) == 0 {
		return nil, ErrNoCredential
	}

	started := time.Now()
	ranges := uptimerobot.PlanRanges(s.today(), days)

	perKey := make([][]stats.Monitor, len(s.creds))
	credErrs := make([]*CredentialError, len(s.creds))

	g, gctx := errgroup.WithContext(ctx)
	for i, cred := range s.creds {
		i, cred := i, cred
		g.Go(func() error {
			monitors, err := s.fetchOne(gctx, cred, ranges, days)
			if err != nil {
				if s.partial {
					credErrs[i] = &CredentialError{Credential: cred.Name, Error: err.Error()}
					return nil
				}
				return err
			}
			perKey[i] = monitors
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		_ = s.journal.Record(days, 0, time.Since(started), err)
		return nil, err
	}

	result := &Result{Monitors: []stats.Monitor{}}
	for i, monitors := range perKey {
		result.Monitors = append(result.Monitors, monitors...)
		if credErrs[i] != nil {
			result.Errors = append(result.Errors, *credErrs[i])
		}
	}
	stats.SortByName(result.Monitors)
	result.Stats = stats.ComputeGlobalStats(result.Monitors)

	_ = s.journal.Record(days, len(result.Monitors), time.Since(started), nil)
	log.Printf("fetched %d monitors across %d credentials (days=%d) in %v",
		len(result.Monitors), len(s.creds), days, time.Since(started))
	return result, nil
}

// fetchOne fetches and aggregates a single credential's monitors,
// coalescing concurrent calls for the same credential+window.
func (s *Service) fetchOne(ctx context.Context, cred config.Credential, ranges []uptimerobot.DateRange, days int) ([]stats.Monitor, error) {
	key := fmt.Sprintf("%s:%d", cred.Key, days)

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		raw, err := s.client.GetMonitors(ctx, cred.Key, ranges)
		if err != nil {
			return nil, errors.Wrapf(err, "credential %s", cred.Name)
		}

		monitors := make([]stats.Monitor, 0, len(raw))
		for _, rm := range raw {
			m, err := stats.Aggregate(rm, ranges, days)
			if err != nil {
				return nil, errors.Wrapf(err, "aggregate monitor %d", rm.ID)
			}
			monitors = append(monitors, m)
		}
		return monitors, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]stats.Monitor), nil
}
