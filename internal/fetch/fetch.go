package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html/charset"
)

// DefaultUserAgent mimics a common desktop browser so pages serve their
// regular markup.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Client issues a single GET per call. There is no retry.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	// Timeout bounds the whole request. Zero means no timeout.
	Timeout time.Duration
	// RedirectMaxHops caps redirect following to avoid loops. Zero means default (5).
	RedirectMaxHops int
}

// Page is a fetched HTML document with its body decoded to UTF-8.
type Page struct {
	URL         string
	StatusCode  int
	ContentType string
	Body        []byte
}

// Error reports a transport-level failure: the request could not be made,
// the connection failed, or the server answered with a non-2xx status.
type Error struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsFetchError reports whether err came from the transport layer.
func IsFetchError(err error) bool {
	var fe *Error
	return errors.As(err, &fe)
}

func (c *Client) getHTTPClient() *http.Client {
	if c.HTTPClient != nil {
		// Clone to attach our redirect policy without mutating caller's client
		base := *c.HTTPClient
		base.CheckRedirect = c.checkRedirectFunc()
		return &base
	}
	return &http.Client{CheckRedirect: c.checkRedirectFunc()}
}

// Get fetches rawURL. Every failure is returned as *Error.
func (c *Client) Get(ctx context.Context, rawURL string) (*Page, error) {
	fail := func(status int, err error) (*Page, error) {
		return nil, &Error{URL: rawURL, StatusCode: status, Err: err}
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fail(0, fmt.Errorf("parse url: %w", err))
	}
	// Reject non-HTTP(S) schemes early
	if !isHTTPScheme(u) {
		return fail(0, fmt.Errorf("unsupported URL scheme: %q", rawURL))
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fail(0, fmt.Errorf("new request: %w", err))
	}
	ua := c.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)

	start := time.Now()
	resp, err := c.getHTTPClient().Do(req)
	if err != nil {
		return fail(0, err)
	}
	defer resp.Body.Close()
	log.Debug().Str("url", rawURL).Int("status", resp.StatusCode).Dur("elapsed", time.Since(start)).Msg("fetched")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(resp.StatusCode, fmt.Errorf("unexpected status: %d", resp.StatusCode))
	}
	contentType := resp.Header.Get("Content-Type")
	if !isHTMLContentType(contentType) {
		log.Warn().Str("url", rawURL).Str("content_type", contentType).Msg("response is not declared as HTML; parsing anyway")
	}
	r, err := charset.NewReader(resp.Body, contentType)
	if err != nil {
		return fail(resp.StatusCode, fmt.Errorf("decode body: %w", err))
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return fail(resp.StatusCode, fmt.Errorf("read body: %w", err))
	}
	return &Page{URL: resp.Request.URL.String(), StatusCode: resp.StatusCode, ContentType: contentType, Body: b}, nil
}

func (c *Client) checkRedirectFunc() func(req *http.Request, via []*http.Request) error {
	max := c.RedirectMaxHops
	if max <= 0 {
		max = 5
	}
	return func(req *http.Request, via []*http.Request) error {
		if len(via) >= max {
			return errors.New("too many redirects")
		}
		// Only allow http/https during redirects
		if req.URL == nil || !isHTTPScheme(req.URL) {
			return errors.New("redirect to unsupported scheme")
		}
		return nil
	}
}

func isHTTPScheme(u *url.URL) bool {
	if u == nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}

// isHTMLContentType reports text/html variants and XHTML. A missing header
// counts as HTML.
func isHTMLContentType(ct string) bool {
	ct = strings.ToLower(strings.TrimSpace(ct))
	if ct == "" {
		return true
	}
	return strings.HasPrefix(ct, "text/html") || strings.HasPrefix(ct, "application/xhtml+xml")
}
