// Package sr is a client for the Sveriges Radio traffic API (api.sr.se/api/v2/traffic).
package sr

import (
	"context"
	"encoding/xml"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"trafficalert/config"
	domainerrors "trafficalert/internal/domain/errors"
	"trafficalert/internal/errors"

	"go.uber.org/fx"
)

// maxResponseBytes caps how much of an upstream body is read.
const maxResponseBytes = 8 << 20

// Client talks to the SR traffic endpoints. It never retries; the next poll cycle is the retry.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientParams holds dependencies for the SR client, injected by Fx
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient builds a client whose every request is bounded by feed.requestTimeout.
func NewClient(params ClientParams) *Client {
	feedCfg := params.Config.Feed

	return &Client{
		baseURL:   strings.TrimRight(feedCfg.BaseURL, "/"),
		userAgent: feedCfg.UserAgent,
		httpClient: &http.Client{
			Timeout: feedCfg.RequestTimeout,
		},
		logger: params.Logger.With(slog.String("component", "sr_client")),
	}
}

// get issues a GET for path with query and decodes the XML body into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/xml")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "GET %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain a little so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

		return errors.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := xml.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return errors.Wrapf(err, "decode %s response", path)
	}

	return nil
}

func (c *Client) fetchFailed(area string, err error) error {
	return errors.Wrapf(errors.Mark(err, domainerrors.ErrFetchFailed), "area %s", area)
}

// parseCode reads an integer code, returning fallback for anything unparsable.
func parseCode(raw string, fallback int) int {
	code, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}

	return code
}
