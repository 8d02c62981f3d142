package aladhan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const DefaultBaseURL = "https://api.aladhan.com/v1"

var (
	// ErrUnreachable wraps transport failures: DNS, refused connections, timeouts.
	ErrUnreachable = errors.New("timings service unreachable")
	// ErrBadResponse wraps non-2xx statuses and bodies that are not valid JSON.
	ErrBadResponse = errors.New("timings service returned a bad response")
)

// Client talks to the Aladhan timings API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for baseURL. A zero timeout leaves requests
// bounded only by the caller's context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// TimingsURL returns the request URL for the given location and settings.
func (c *Client) TimingsURL(loc Location, calc Calculation) string {
	q := url.Values{}
	q.Set("city", loc.City)
	q.Set("country", loc.Country)
	q.Set("method", strconv.Itoa(calc.Method))
	q.Set("school", strconv.Itoa(calc.School))
	return c.baseURL + "/timingsByCity?" + q.Encode()
}

// FetchTimings issues a single GET for today's timings. It does not retry and
// does not look at Response.Code; that is left to the caller.
func (c *Client) FetchTimings(ctx context.Context, loc Location, calc Calculation) (*Response, error) {
	endpoint := c.TimingsURL(loc, calc)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build timings request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	log.Debug().
		Str("city", loc.City).
		Str("country", loc.Country).
		Int("status", resp.StatusCode).
		Msg("timings service responded")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrBadResponse, resp.StatusCode)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", ErrBadResponse, err)
	}
	return &out, nil
}
