// Package fetcher loads and parses JSON documents referenced by URL or local
// path, and probes link targets for reachability.
package fetcher

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	stacvalidator "github.com/tschaub/stac-validator"
	"github.com/tschaub/stac-validator/stacerrors"
)

// Interface is the fetch collaborator consumed by the validator. A reference
// may be an http(s) URL or a local filesystem path.
type Interface interface {
	// FetchJSON retrieves the reference and decodes it as a JSON object.
	FetchJSON(ref string) (map[string]any, error)
	// Probe checks that the reference is reachable without decoding it.
	Probe(ref string) error
}

// Client fetches documents over HTTP or from the local filesystem.
type Client struct {
	// HTTPClient is the HTTP client used for URLs.
	// If nil, a default client with a 30-second timeout is created.
	HTTPClient *http.Client
	// UserAgent is the User-Agent string used when fetching URLs.
	// Defaults to the module user agent if not set.
	UserAgent string
}

// New creates a Client with default settings.
func New() *Client {
	return &Client{}
}

// IsURL determines if the given reference is a URL (http:// or https://)
func IsURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// FetchJSON retrieves ref and decodes the payload as a JSON object.
// Decode failures surface as *json.SyntaxError / *json.UnmarshalTypeError so
// the classifier can tag them; a payload that is valid JSON but not an object
// surfaces as *stacerrors.TypeMismatchError.
func (c *Client) FetchJSON(ref string) (map[string]any, error) {
	var data []byte
	var err error

	if IsURL(ref) {
		data, err = c.fetchURL(ref)
	} else {
		data, err = os.ReadFile(ref)
	}
	if err != nil {
		return nil, err
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	doc, ok := value.(map[string]any)
	if !ok {
		return nil, &stacerrors.TypeMismatchError{Field: "document", Want: "object", Got: value}
	}
	return doc, nil
}

// Probe checks reachability of ref: a HEAD request for URLs (falling back to
// GET when the server rejects HEAD), or a stat for local paths.
func (c *Client) Probe(ref string) error {
	if !IsURL(ref) {
		_, err := os.Stat(ref)
		return err
	}

	resp, err := c.do(http.MethodHead, ref)
	if err != nil {
		return err
	}
	drain(resp)
	if resp.StatusCode == http.StatusMethodNotAllowed {
		resp, err = c.do(http.MethodGet, ref)
		if err != nil {
			return err
		}
		drain(resp)
	}
	if resp.StatusCode != http.StatusOK {
		return &stacerrors.HTTPStatusError{URL: ref, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return nil
}

// fetchURL fetches content from a URL and returns the bytes
func (c *Client) fetchURL(urlStr string) ([]byte, error) {
	resp, err := c.do(http.MethodGet, urlStr)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, &stacerrors.HTTPStatusError{URL: urlStr, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetcher: failed to read response body: %w", err)
	}
	return data, nil
}

func (c *Client) do(method, urlStr string) (*http.Response, error) {
	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	req, err := http.NewRequest(method, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("fetcher: failed to create request: %w", err)
	}

	userAgent := c.UserAgent
	if userAgent == "" {
		userAgent = stacvalidator.UserAgent()
	}
	req.Header.Set("User-Agent", userAgent)

	return client.Do(req)
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
