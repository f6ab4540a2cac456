package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	boxerrors "github.com/Iron-Ham/pokebox/internal/errors"
	"github.com/Iron-Ham/pokebox/internal/logging"
)

// DefaultBaseURL is the public catalog API root.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// maxBodyBytes caps how much of a response body is decoded. Detail
// documents are large (move lists) but well under this.
const maxBodyBytes = 4 << 20

// Client fetches listing windows and entry details from the catalog.
type Client interface {
	// List returns the listing window [offset, offset+limit).
	List(ctx context.Context, offset, limit int) (*Page, error)

	// Entry fetches the detail document at ref, which is usually the URL
	// from a listing Reference.
	Entry(ctx context.Context, ref string) (*Entry, error)
}

// Options configures an HTTPClient.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	Logger    *logging.Logger
	// HTTPClient overrides the transport; Timeout is ignored when set.
	HTTPClient *http.Client
}

// HTTPClient talks to the catalog over HTTP.
type HTTPClient struct {
	base      *url.URL
	http      *http.Client
	userAgent string
	logger    *logging.Logger
}

// NewHTTPClient builds a client for the catalog rooted at opts.BaseURL.
func NewHTTPClient(opts Options) (*HTTPClient, error) {
	raw := opts.BaseURL
	if raw == "" {
		raw = DefaultBaseURL
	}
	base, err := url.Parse(strings.TrimRight(raw, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid catalog base url %q: %w", raw, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid catalog base url %q: scheme must be http or https", raw)
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}

	return &HTTPClient{
		base:      base,
		http:      hc,
		userAgent: opts.UserAgent,
		logger:    logger.WithComponent("catalog"),
	}, nil
}

// BaseURL returns the resolved API root.
func (c *HTTPClient) BaseURL() string {
	return c.base.String()
}

// List implements Client.
func (c *HTTPClient) List(ctx context.Context, offset, limit int) (*Page, error) {
	u := c.base.ResolveReference(&url.URL{Path: "pokemon"})
	q := u.Query()
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	u.RawQuery = q.Encode()

	var page Page
	if err := c.getJSON(ctx, "list", u.String(), &page); err != nil {
		return nil, err
	}
	if page.Results == nil {
		return nil, boxerrors.NewNetworkError("list", boxerrors.ErrMalformedResponse).WithURL(u.String())
	}

	c.logger.Debug("listing fetched", "offset", offset, "limit", limit, "results", len(page.Results))
	return &page, nil
}

// Entry implements Client. Relative references are resolved against the
// base URL.
func (c *HTTPClient) Entry(ctx context.Context, ref string) (*Entry, error) {
	u, err := c.resolve(ref)
	if err != nil {
		return nil, boxerrors.NewNetworkError("entry", boxerrors.Wrap(err, "bad reference")).WithURL(ref)
	}

	var w wireEntry
	if err := c.getJSON(ctx, "entry", u, &w); err != nil {
		return nil, err
	}
	entry, ok := w.toEntry()
	if !ok {
		return nil, boxerrors.NewNetworkError("entry", boxerrors.ErrMalformedResponse).WithURL(u)
	}
	return &entry, nil
}

func (c *HTTPClient) resolve(ref string) (string, error) {
	parsed, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	if parsed.IsAbs() {
		return parsed.String(), nil
	}
	return c.base.ResolveReference(parsed).String(), nil
}

// getJSON performs a GET and decodes a JSON body into out. Every failure is
// returned as a *NetworkError tagged with op.
func (c *HTTPClient) getJSON(ctx context.Context, op, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return boxerrors.NewNetworkError(op, boxerrors.Wrap(err, "building request")).WithURL(u)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return boxerrors.NewNetworkError(op, fmt.Errorf("%w: %w", boxerrors.ErrCanceled, ctx.Err())).
				WithURL(u).WithSeverity(boxerrors.SeverityDebug)
		}
		return boxerrors.NewNetworkError(op, fmt.Errorf("%w: %w", boxerrors.ErrRequestFailed, err)).WithURL(u)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused.
		_, _ = io.CopyN(io.Discard, resp.Body, 4096)
		return boxerrors.NewNetworkError(op, boxerrors.ErrUnexpectedStatus).
			WithURL(u).WithStatusCode(resp.StatusCode)
	}

	dec := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes))
	if err := dec.Decode(out); err != nil {
		return boxerrors.NewNetworkError(op, fmt.Errorf("%w: %w", boxerrors.ErrMalformedResponse, err)).WithURL(u)
	}

	c.logger.Debug("catalog request", "op", op, "url", u, "status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}
