package speller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/cognicore/hantext/pkg/hantext/internalerr"
)

const (
	defaultRetryMax = 2
	defaultTimeout  = 3 * time.Second
)

// Client calls a hanspell-style spell correction endpoint. Safe for
// concurrent use once constructed; HTTPClient must not be reassigned
// after the first Check.
type Client struct {
	Endpoint string
	Timeout  time.Duration

	HTTPClient *http.Client

	initOnce sync.Once
}

type checkRequest struct {
	Text string `json:"text"`
}

type checkResponse struct {
	Corrected string `json:"corrected"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Check sends text for spelling correction and returns the corrected
// form. The request is bounded by the client timeout; the caller treats
// any error as "leave the text unchanged".
func (c *Client) Check(ctx context.Context, text string) (string, error) {
	if c.Endpoint == "" {
		return "", fmt.Errorf("speller: endpoint required")
	}
	if text == "" {
		return "", nil
	}

	reqBody, err := json.Marshal(checkRequest{Text: text})
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("speller: %w", internalerr.ErrSpellTimeout)
		}
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("speller: unexpected status %s", resp.Status)
	}

	var payload checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	if payload.Error != nil {
		return "", fmt.Errorf("speller error: %s", payload.Error.Message)
	}
	return payload.Corrected, nil
}

func (c *Client) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return defaultTimeout
}

// httpClient returns the configured client, building the default
// retrying client exactly once under concurrent first use.
func (c *Client) httpClient() *http.Client {
	c.initOnce.Do(func() {
		if c.HTTPClient != nil {
			return
		}
		rc := retryablehttp.NewClient()
		rc.RetryMax = defaultRetryMax
		rc.Logger = nil
		rc.HTTPClient.Timeout = c.timeout()
		c.HTTPClient = rc.StandardClient()
	})
	return c.HTTPClient
}
