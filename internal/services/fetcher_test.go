package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"alfredoptarigan/job-posting-classifier/internal/apperrors"
)

// 1x1 transparent GIF.
var gifPixel = []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00\x00\x00\x00\xff\xff\xff!\xf9\x04\x01\x00\x00\x00\x00,\x00\x00\x00\x00\x01\x00\x01\x00\x00\x02\x02D\x01\x00;")

func newTestServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/posting.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("not really a png"))
	})
	mux.HandleFunc("/posting.html", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><body>Senior Engineer</body></html>"))
	})
	mux.HandleFunc("/untyped", func(w http.ResponseWriter, r *http.Request) {
		// Suppress net/http's own sniffing so the fetcher has to do it.
		w.Header()["Content-Type"] = nil
		w.Write(gifPixel)
	})
	mux.HandleFunc("/big", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("a", 2048)))
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPFetcher_Fetch(t *testing.T) {
	srv := newTestServer(t)
	f := NewHTTPFetcher(5*time.Second, 1024, zaptest.NewLogger(t))
	ctx := context.Background()

	res, err := f.Fetch(ctx, srv.URL+"/posting.png")
	require.NoError(t, err)
	assert.True(t, res.IsImage())
	assert.Equal(t, "image/png", res.ContentType)

	res, err = f.Fetch(ctx, srv.URL+"/posting.html")
	require.NoError(t, err)
	assert.False(t, res.IsImage())
	assert.Contains(t, string(res.Content), "Senior Engineer")

	res, err = f.Fetch(ctx, srv.URL+"/untyped")
	require.NoError(t, err)
	assert.Equal(t, "image/gif", res.ContentType)
	assert.True(t, res.IsImage())
}

func TestHTTPFetcher_Failures(t *testing.T) {
	srv := newTestServer(t)
	f := NewHTTPFetcher(5*time.Second, 1024, zaptest.NewLogger(t))
	ctx := context.Background()

	for _, u := range []string{
		srv.URL + "/missing",
		srv.URL + "/big",
		"ftp://example.com/file",
		"http://",
	} {
		_, err := f.Fetch(ctx, u)
		assert.True(t, apperrors.Is(err, apperrors.KindResourceFetchFailure), u)
	}

	srv.Close()
	_, err := f.Fetch(ctx, srv.URL+"/posting.png")
	assert.True(t, apperrors.Is(err, apperrors.KindResourceFetchFailure))
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://jobs.example.com/1"))
	assert.True(t, IsURL("http://jobs.example.com/1"))
	assert.False(t, IsURL("jobs.example.com/1"))
	assert.False(t, IsURL("Senior Engineer at Acme"))
}
