/*
Copyright © 2026 The MaMMoS Project
SPDX-License-Identifier: Apache-2.0
*/

package ontology

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/mammos-project/mammos-gate/pkg/defaults"
	"github.com/mammos-project/mammos-gate/pkg/errors"
)

const clientUserAgent = "mammos-gate/1.0"

// Client resolves ontology labels against a remote vocabulary service.
//
// Resolved concepts are cached for the lifetime of the client,
// concurrent lookups of the same label are collapsed into one request,
// and outbound requests are rate limited so a validation run over a
// large metadata document does not hammer the service.
type Client struct {
	base      string
	userAgent string
	hc        *http.Client
	limiter   *rate.Limiter
	group     singleflight.Group

	mu    sync.RWMutex
	cache map[string]Concept
}

// ClientOption is a functional option for configuring Client instances.
type ClientOption func(*Client)

// WithHTTPClient returns a ClientOption that sets the underlying HTTP
// client. Useful for tests and custom transports.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.hc = hc
	}
}

// WithRateLimit returns a ClientOption that sets the request rate
// limit as requests per second with the given burst.
func WithRateLimit(rps float64, burst int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithUserAgent returns a ClientOption that sets the User-Agent header.
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// NewClient creates a vocabulary service client for the given base URL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		base:      strings.TrimRight(baseURL, "/"),
		userAgent: clientUserAgent,
		limiter:   rate.NewLimiter(rate.Limit(defaults.VocabularyRequestsPerSecond), defaults.VocabularyRequestBurst),
		cache:     make(map[string]Concept),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.hc == nil {
		c.hc = &http.Client{
			Timeout: defaults.HTTPClientTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   defaults.HTTPConnectTimeout,
					KeepAlive: defaults.HTTPKeepAlive,
				}).DialContext,
				TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
				ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
				IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
				ForceAttemptHTTP2:     true,
			},
		}
	}
	return c
}

// Resolve implements Resolver. Unknown labels are UNKNOWN_LABEL
// errors; transport and service failures are SERVICE_UNAVAILABLE.
func (c *Client) Resolve(ctx context.Context, label string) (*Concept, error) {
	c.mu.RLock()
	cached, ok := c.cache[label]
	c.mu.RUnlock()
	if ok {
		return &cached, nil
	}

	v, err, _ := c.group.Do(label, func() (any, error) {
		return c.fetch(ctx, label)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Concept), nil
}

func (c *Client) fetch(ctx context.Context, label string) (*Concept, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "vocabulary request rate limit wait interrupted", err)
	}

	u := fmt.Sprintf("%s/concepts/%s", c.base, url.PathEscape(label))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "cannot build vocabulary request", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "vocabulary service request failed", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fallthrough to decode
	case http.StatusNotFound:
		return nil, errors.Newf(errors.ErrCodeUnknownLabel, "label %q is not in the vocabulary", label)
	default:
		return nil, errors.Newf(errors.ErrCodeUnavailable, "vocabulary service returned status %s", resp.Status)
	}

	var concept Concept
	if err := json.NewDecoder(resp.Body).Decode(&concept); err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "cannot decode vocabulary response", err)
	}
	if concept.Label == "" {
		concept.Label = label
	}

	c.mu.Lock()
	c.cache[label] = concept
	c.mu.Unlock()

	return &concept, nil
}
