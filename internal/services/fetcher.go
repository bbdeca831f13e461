package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"alfredoptarigan/job-posting-classifier/internal/apperrors"
)

// Resource is the content behind a posting reference link.
type Resource struct {
	URL         string
	ContentType string
	Content     []byte
}

func (r *Resource) IsImage() bool {
	return strings.HasPrefix(strings.ToLower(r.ContentType), "image/")
}

// ResourceFetcher retrieves a posting reference. Every failure is a
// RESOURCE_FETCH_FAILURE error.
type ResourceFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*Resource, error)
}

// IsURL reports whether source looks like an http(s) link.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

type httpFetcher struct {
	client   *http.Client
	maxBytes int64
	log      *zap.Logger
}

func NewHTTPFetcher(timeout time.Duration, maxBytes int64, log *zap.Logger) ResourceFetcher {
	return &httpFetcher{
		client:   &http.Client{Timeout: timeout},
		maxBytes: maxBytes,
		log:      log,
	}
}

// Fetch implements ResourceFetcher.
func (f *httpFetcher) Fetch(ctx context.Context, rawURL string) (*Resource, error) {
	pu, err := url.Parse(rawURL)
	if err != nil || pu.Host == "" || (pu.Scheme != "http" && pu.Scheme != "https") {
		return nil, apperrors.ResourceFetchFailure(rawURL, fmt.Errorf("invalid url"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, apperrors.ResourceFetchFailure(rawURL, err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.client.Do(req)
	if err != nil {
		f.log.Warn("Posting fetch failed", zap.String("url", rawURL), zap.Error(err))
		return nil, apperrors.ResourceFetchFailure(rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.log.Warn("Posting fetch non-2xx", zap.String("url", rawURL), zap.Int("status", resp.StatusCode))
		return nil, apperrors.ResourceFetchFailure(rawURL, fmt.Errorf("unexpected status %s", resp.Status))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, apperrors.ResourceFetchFailure(rawURL, err)
	}
	if int64(len(body)) > f.maxBytes {
		return nil, apperrors.ResourceFetchFailure(rawURL, fmt.Errorf("content exceeds %d bytes", f.maxBytes))
	}

	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = http.DetectContentType(body)
	}

	return &Resource{
		URL:         rawURL,
		ContentType: ct,
		Content:     body,
	}, nil
}
