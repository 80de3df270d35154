// Package data fetches report data records from the backend data API.
// The report core never performs I/O itself; this client is the boundary to
// the external data collaborator.
package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"association-reports/internal/core"
)

// ErrNotFound is returned when the backend has no data record for the
// requested filters (HTTP 404).
var ErrNotFound = errors.New("report data not found")

// StatementFilters selects the data window for one teacher statement.
// Dates are ISO strings (2006-01-02); empty means unbounded.
type StatementFilters struct {
	TeacherID string
	StartDate string
	EndDate   string
}

// SummaryFilters selects the data window for an association summary.
// Either Quarter+Year or an explicit date range may be given.
type SummaryFilters struct {
	Quarter   int
	Year      int
	StartDate string
	EndDate   string
}

// Fetcher obtains report data records. Implemented by Client; report service
// tests substitute a fake.
type Fetcher interface {
	TeacherStatementData(ctx context.Context, f StatementFilters) (*core.TeacherStatementData, error)
	AssociationSummaryData(ctx context.Context, f SummaryFilters) (*core.AssociationSummaryData, error)
}

// Client fetches report data over HTTP from the backend data API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client for the given base URL, e.g. "http://localhost:3000".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// TeacherStatementData fetches the statement data record for one teacher.
func (c *Client) TeacherStatementData(ctx context.Context, f StatementFilters) (*core.TeacherStatementData, error) {
	if f.TeacherID == "" {
		return nil, fmt.Errorf("teacher ID is required")
	}
	q := url.Values{}
	q.Set("teacher_id", f.TeacherID)
	if f.StartDate != "" {
		q.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("end_date", f.EndDate)
	}

	var data core.TeacherStatementData
	if err := c.get(ctx, "/api/reports/teacher/data", q, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// AssociationSummaryData fetches the association-wide summary data record.
func (c *Client) AssociationSummaryData(ctx context.Context, f SummaryFilters) (*core.AssociationSummaryData, error) {
	q := url.Values{}
	if f.Quarter > 0 {
		q.Set("quarter", strconv.Itoa(f.Quarter))
	}
	if f.Year > 0 {
		q.Set("year", strconv.Itoa(f.Year))
	}
	if f.StartDate != "" {
		q.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("end_date", f.EndDate)
	}

	var data core.AssociationSummaryData
	if err := c.get(ctx, "/api/reports/association/data", q, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch report data: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("data API returned %s for %s", resp.Status, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode report data: %w", err)
	}
	return nil
}
