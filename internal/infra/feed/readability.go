package feed

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-shiori/go-readability"

	"newsblog/internal/resilience/circuitbreaker"
)

type ReadabilityConfig struct {
	Timeout        time.Duration
	MaxBodySize    int64
	MaxRedirects   int
	DenyPrivateIPs bool
}

func DefaultReadabilityConfig() ReadabilityConfig {
	return ReadabilityConfig{
		Timeout:        10 * time.Second,
		MaxBodySize:    10 << 20,
		MaxRedirects:   5,
		DenyPrivateIPs: true,
	}
}

// ReadabilityFetcher downloads an article page and extracts its main text.
type ReadabilityFetcher struct {
	client *http.Client
	cb     *circuitbreaker.CircuitBreaker
	cfg    ReadabilityConfig
}

func NewReadabilityFetcher(cfg ReadabilityConfig) *ReadabilityFetcher {
	f := &ReadabilityFetcher{
		cb: circuitbreaker.New(circuitbreaker.Config{
			Name:             "content-fetch",
			MaxRequests:      5,
			Interval:         60 * time.Second,
			Timeout:          60 * time.Second,
			FailureThreshold: 0.6,
			MinRequests:      5,
		}),
		cfg: cfg,
	}
	f.client = &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig:     &tls.Config{MinVersion: tls.VersionTLS12},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= f.cfg.MaxRedirects {
				return fmt.Errorf("%w: %d", ErrTooManyRedirects, len(via))
			}
			_, err := ValidateURL(req.URL.String(), f.cfg.DenyPrivateIPs)
			return err
		},
	}
	return f
}

func (f *ReadabilityFetcher) FetchContent(ctx context.Context, rawURL string) (string, error) {
	if _, err := ValidateURL(rawURL, f.cfg.DenyPrivateIPs); err != nil {
		return "", err
	}
	res, err := f.cb.Execute(func() (interface{}, error) {
		return f.fetch(ctx, rawURL)
	})
	if err != nil {
		return "", err
	}
	return res.(string), nil
}

func (f *ReadabilityFetcher) fetch(ctx context.Context, rawURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("get %s: HTTP %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.cfg.MaxBodySize+1))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > f.cfg.MaxBodySize {
		return "", fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, f.cfg.MaxBodySize)
	}

	article, err := readability.FromReader(bytes.NewReader(body), resp.Request.URL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadabilityFailed, err)
	}
	text := ExtractText(article.TextContent)
	if text == "" {
		return "", ErrReadabilityFailed
	}
	return text, nil
}
