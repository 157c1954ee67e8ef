package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gameloader/internal/domain"
)

const userAgent = "gameloader/1.0"

// StatusError is returned for non-2xx responses from the game server.
type StatusError struct {
	URL    string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server get %s: %s", e.URL, e.Status)
}

// Temporary reports whether the request may succeed if retried.
func (e *StatusError) Temporary() bool { return e.Code >= 500 }

// Client talks JSON over HTTP to the game server.
type Client struct {
	Base string
	HTTP *http.Client
}

// New returns a client for the server at base with a per-request timeout.
func New(base string, timeout time.Duration) *Client {
	return &Client{
		Base: strings.TrimRight(base, "/"),
		HTTP: &http.Client{Timeout: timeout},
	}
}

var _ domain.ServerClient = (*Client)(nil)

func (c *Client) FetchGames(ctx context.Context) ([]domain.Game, error) {
	var games []domain.Game
	if err := c.getJSON(ctx, "/games", &games); err != nil {
		return nil, err
	}
	return games, nil
}

func (c *Client) FetchManifest(ctx context.Context, date domain.GameDate) (domain.Manifest, error) {
	var m domain.Manifest
	path := "/games/" + url.PathEscape(date.String()) + "/manifest"
	if err := c.getJSON(ctx, path, &m); err != nil {
		return domain.Manifest{}, err
	}
	return m, nil
}

func (c *Client) FetchFile(ctx context.Context, date domain.GameDate, name string) (io.ReadCloser, int64, error) {
	u := c.Base + "/games/" + url.PathEscape(date.String()) + "/files/" + escapePath(name)
	resp, err := c.get(ctx, u)
	if err != nil {
		return nil, 0, err
	}
	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, 0, fmt.Errorf("%s %s: %w", date, name, domain.ErrGameNotFound)
	}
	if resp.StatusCode/100 != 2 {
		resp.Body.Close()
		return nil, 0, &StatusError{URL: u, Code: resp.StatusCode, Status: resp.Status}
	}
	return resp.Body, resp.ContentLength, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	u := c.Base + path
	resp, err := c.get(ctx, u)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("get %s: %w", u, domain.ErrGameNotFound)
	}
	if resp.StatusCode/100 != 2 {
		return &StatusError{URL: u, Code: resp.StatusCode, Status: resp.Status}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) get(ctx context.Context, u string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	return c.HTTP.Do(req)
}

// escapePath escapes each segment of a slash-separated file name so names
// with spaces or reserved characters survive the round trip.
func escapePath(name string) string {
	parts := strings.Split(name, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
