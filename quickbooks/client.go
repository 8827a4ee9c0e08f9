// Package quickbooks is the client for the local accounting-system query
// API, the pipeline's sole upstream dependency.
//
// The server translates SQL-ish query strings into QuickBooks Online
// requests and returns the raw entity list as JSON. Availability is best
// effort: any failure fetching purchases degrades to an empty result set,
// which reports render as "no data for this period".
package quickbooks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/okent/spendreport"
	"github.com/okent/spendreport/date"
)

// DefaultBaseURL is where the query server listens when run locally.
const DefaultBaseURL = "http://localhost:8080/api/v1/quickbooks"

// maxResults caps every purchase query, matching the upstream API's page
// size. A month of purchases stays well below it.
const maxResults = 1000

// Client talks to the query server.
type Client struct {
	base string
	http *http.Client
	log  zerolog.Logger
}

// New returns a client for the given base URL (empty means
// DefaultBaseURL). Responses are cached on disk with daily expiry, so
// re-running reports for the same period does not re-query the API.
func New(baseURL string) *Client {
	c := NewWithHTTPClient(baseURL, daily())
	return c
}

// NewWithHTTPClient returns a client using the given http.Client, with no
// caching unless the client brings its own. Tests use it with httptest.
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: httpClient,
		log: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			With().Timestamp().Str("component", "quickbooks").Logger(),
	}
}

// Purchases fetches the purchase records for a date range. It never
// returns an error: transport failures, non-success statuses and
// malformed payloads all degrade to an empty slice, logged as a warning.
// The caller cannot tell "no data" from "source unavailable", and that is
// the documented contract.
func (c *Client) Purchases(r date.Range) []spendreport.RawRecord {
	q := fmt.Sprintf("SELECT * FROM Purchase WHERE TxnDate >= '%s' AND TxnDate <= '%s' MAXRESULTS %d", r.From, r.To, maxResults)
	records, err := c.Query(q)
	if err != nil {
		c.log.Warn().Err(err).Str("from", r.From.String()).Str("to", r.To.String()).
			Msg("purchase query failed, treating period as empty")
		return nil
	}
	c.log.Debug().Int("records", len(records)).Str("from", r.From.String()).Str("to", r.To.String()).
		Msg("fetched purchases")
	return records
}

// Query executes a raw query string and decodes the entity list.
func (c *Client) Query(q string) ([]spendreport.RawRecord, error) {
	var records []spendreport.RawRecord
	if err := c.jwpost("/query", map[string]string{"query": q}, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// TokenStatus is the server's OAuth token health report.
type TokenStatus struct {
	IsExpired          bool   `json:"isExpired"`
	ExpiryTime         string `json:"expiryTime"`
	CurrentTime        string `json:"currentTime"`
	MinutesUntilExpiry int64  `json:"minutesUntilExpiry"`
	Status             string `json:"status"`
}

// TokenStatus reports whether the server's QuickBooks access token is
// still valid and when it expires.
func (c *Client) TokenStatus() (TokenStatus, error) {
	var status TokenStatus
	resp, err := c.http.Get(c.base + "/token/status")
	if err != nil {
		return status, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return status, fmt.Errorf("cannot get token status: %v", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return status, fmt.Errorf("cannot decode token status: %w", err)
	}
	return status, nil
}

// RefreshResult is the server's response to a forced token refresh.
type RefreshResult struct {
	Message       string `json:"message"`
	NewExpiryTime string `json:"newExpiryTime"`
	CurrentTime   string `json:"currentTime"`
}

// RefreshToken asks the server to refresh its QuickBooks access token now.
func (c *Client) RefreshToken() (RefreshResult, error) {
	var result RefreshResult
	resp, err := c.http.Post(c.base+"/token/refresh", "application/json", strings.NewReader("{}"))
	if err != nil {
		return result, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return result, fmt.Errorf("cannot refresh token: %v", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return result, fmt.Errorf("cannot decode refresh response: %w", err)
	}
	return result, nil
}

// jwpost performs an HTTP POST with a JSON body and unmarshals the JSON
// response into the provided data structure.
func (c *Client) jwpost(path string, body any, data any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	resp, err := c.http.Post(c.base+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http POST %v%v: %v", c.base, path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
