package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

const dateLayout = "2006-01-02"

// Holiday is one public holiday as reported by the government feed.
type Holiday struct {
	Name          string `json:"nombre"`
	Date          string `json:"fecha"` // YYYY-MM-DD
	Irrenunciable string `json:"irrenunciable"`
	Type          string `json:"tipo"`
}

// Fetcher retrieves the public holidays for a year.
type Fetcher interface {
	Fetch(ctx context.Context, year int) ([]Holiday, error)
}

// APIClient fetches holidays from the Chilean government API
// (https://apis.digital.gob.cl/fl/feriados/{year}).
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *APIClient) Fetch(ctx context.Context, year int) ([]Holiday, error) {
	url := fmt.Sprintf("%s/%d", c.baseURL, year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build holiday request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch holidays for %d: %w", year, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch holidays for %d: unexpected status %d", year, resp.StatusCode)
	}

	var holidays []Holiday
	if err := json.NewDecoder(resp.Body).Decode(&holidays); err != nil {
		return nil, fmt.Errorf("decode holidays for %d: %w", year, err)
	}

	return holidays, nil
}

// Calendar answers holiday and business-day questions, memoizing one fetch
// per year. A failed fetch degrades to "no holidays known" for that year so
// attendance and payroll never block on the upstream API; the empty result is
// cached like any other to keep lookups from hammering a dead endpoint.
type Calendar struct {
	fetcher Fetcher

	mu    sync.RWMutex
	years map[int]map[string]struct{}
}

func NewCalendar(fetcher Fetcher) *Calendar {
	return &Calendar{
		fetcher: fetcher,
		years:   make(map[int]map[string]struct{}),
	}
}

func (c *Calendar) datesFor(ctx context.Context, year int) map[string]struct{} {
	c.mu.RLock()
	dates, ok := c.years[year]
	c.mu.RUnlock()
	if ok {
		return dates
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if dates, ok := c.years[year]; ok {
		return dates
	}

	dates = make(map[string]struct{})
	holidays, err := c.fetcher.Fetch(ctx, year)
	if err != nil {
		slog.Warn("holiday fetch failed, treating year as holiday-free", "year", year, "error", err)
	} else {
		for _, h := range holidays {
			dates[h.Date] = struct{}{}
		}
	}
	c.years[year] = dates

	return dates
}

// IsHoliday reports whether the calendar date of d is a public holiday.
func (c *Calendar) IsHoliday(ctx context.Context, d time.Time) bool {
	dates := c.datesFor(ctx, d.Year())
	_, ok := dates[d.Format(dateLayout)]
	return ok
}

// BusinessDaysInMonth counts the days of the month that are neither weekend
// days nor public holidays.
func (c *Calendar) BusinessDaysInMonth(ctx context.Context, month time.Month, year int) int {
	dates := c.datesFor(ctx, year)

	count := 0
	day := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for day.Month() == month {
		weekday := day.Weekday()
		_, festive := dates[day.Format(dateLayout)]
		if weekday != time.Saturday && weekday != time.Sunday && !festive {
			count++
		}
		day = day.AddDate(0, 0, 1)
	}

	return count
}
