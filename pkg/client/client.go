// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package client

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/NVIDIA/podinfo/pkg/defaults"
	"github.com/NVIDIA/podinfo/pkg/env"
	"github.com/NVIDIA/podinfo/pkg/errors"
	"github.com/NVIDIA/podinfo/pkg/snapshot"
)

const (
	// UserAgent is sent on every snapshot request.
	UserAgent = "podinfo-client/1.0"

	// PodInfoPath is appended to the service URL.
	PodInfoPath = "/pod-info"

	// maxBodyBytes caps how much of a response is read.
	maxBodyBytes = 1 << 20
)

// Option defines a configuration option for Client.
type Option func(*Client)

// Client fetches snapshots from a sidecar.
type Client struct {
	UserAgent string
	Timeout   time.Duration
	Client    *http.Client

	collector *snapshot.Collector
	now       func() time.Time
}

// WithTimeout sets the total deadline of one fetch, connection setup included.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.Timeout = timeout
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.UserAgent = userAgent
	}
}

// WithHTTPClient replaces the IPv4-pinned default client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.Client = hc
	}
}

// WithCollector sets the collector used to build fallback snapshots. Its
// environment source is also used to resolve SIDECAR_URL.
func WithCollector(col *snapshot.Collector) Option {
	return func(c *Client) {
		c.collector = col
	}
}

// New returns a Client with the default 5 second timeout.
func New(opts ...Option) *Client {
	c := &Client{
		UserAgent: UserAgent,
		Timeout:   defaults.SnapshotFetchTimeout,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.collector == nil {
		c.collector = snapshot.NewCollector()
	}
	if c.Client == nil {
		c.Client = newIPv4Client(c.Timeout)
	}
	return c
}

// newIPv4Client builds an http.Client whose dialer only uses tcp4.
func newIPv4Client(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout:   defaults.HTTPConnectTimeout,
		KeepAlive: defaults.HTTPKeepAlive,
	}
	transport := &http.Transport{
		Proxy: nil,
		DialContext: func(ctx context.Context, _, addr string) (net.Conn, error) {
			return dialer.DialContext(ctx, "tcp4", addr)
		},
		IdleConnTimeout:     defaults.HTTPIdleConnTimeout,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// ResolveServiceURL returns SIDECAR_URL from src, or the default sidecar URL.
func ResolveServiceURL(src env.Source) string {
	return strings.TrimRight(env.First(src, defaults.SidecarURL, env.VarSidecarURL), "/")
}

// FetchSnapshot retrieves the sidecar's snapshot. An empty serviceURL is
// resolved from the environment. It always returns a usable Snapshot; on
// failure the result comes from the collector's Fallback.
func (c *Client) FetchSnapshot(ctx context.Context, serviceURL string) snapshot.Snapshot {
	if strings.TrimSpace(serviceURL) == "" {
		serviceURL = ResolveServiceURL(c.collector.Env())
	}
	serviceURL = strings.TrimRight(serviceURL, "/")

	start := time.Now()
	rec, err := c.fetch(ctx, serviceURL)
	fetchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		code := errors.CodeOf(err)
		fetchTotal.WithLabelValues(strings.ToLower(string(code))).Inc()
		slog.Warn("sidecar fetch failed, using fallback snapshot",
			"url", serviceURL,
			"code", code,
			"error", err,
		)
		return c.collector.Fallback(serviceURL, err)
	}

	fetchTotal.WithLabelValues("ok").Inc()
	slog.Debug("sidecar snapshot fetched", "url", serviceURL)
	return mapRecord(rec, c.now())
}

func (c *Client) fetch(ctx context.Context, serviceURL string) (Record, error) {
	target, err := requestURL(serviceURL)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid sidecar URL", err,
			map[string]any{"url": serviceURL})
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to create request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.Client.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, errors.WrapWithContext(errors.ErrCodeTimeout,
				fmt.Sprintf("sidecar did not respond within %s", c.Timeout), err,
				map[string]any{"url": target})
		}
		return nil, errors.WrapWithContext(errors.ErrCodeUnavailable, "sidecar unreachable", err,
			map[string]any{"url": target})
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		statusErr := errors.New(errors.ErrCodeBadStatus, fmt.Sprintf("sidecar returned HTTP %d", resp.StatusCode))
		statusErr.Context = map[string]any{"url": target, "status": resp.StatusCode}
		return nil, statusErr
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, errors.Wrap(errors.ErrCodeTimeout, "timed out reading sidecar response", err)
		}
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "failed to read sidecar response", err)
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedResponse, "sidecar response is not valid JSON", err)
	}
	rec, ok := decoded.(map[string]any)
	if !ok {
		return nil, errors.New(errors.ErrCodeMalformedResponse,
			fmt.Sprintf("sidecar response is a JSON %s, not an object", jsonKind(decoded)))
	}
	return rec, nil
}

// requestURL appends the pod-info path and pins localhost to 127.0.0.1.
func requestURL(serviceURL string) (string, error) {
	u, err := url.Parse(serviceURL)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("missing host")
	}
	if strings.EqualFold(u.Hostname(), "localhost") {
		if port := u.Port(); port != "" {
			u.Host = net.JoinHostPort("127.0.0.1", port)
		} else {
			u.Host = "127.0.0.1"
		}
	}
	u.Path = strings.TrimRight(u.Path, "/") + PodInfoPath
	return u.String(), nil
}

func isTimeout(ctx context.Context, err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return stderrors.As(err, &netErr) && netErr.Timeout()
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
