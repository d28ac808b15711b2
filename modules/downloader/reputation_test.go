package downloader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func TestReputationCategory(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Inc()
		switch r.URL.Path {
		case "/phish.example":
			_, _ = w.Write([]byte(`{"category":"phishing"}`))
		case "/broken.example":
			_, _ = w.Write([]byte(`not json`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	r := newReputationClient(srv.URL)
	ctx := context.Background()

	assert.Equal(t, "phishing", r.Category(ctx, "phish.example"))
	assert.Equal(t, CategoryUnknown, r.Category(ctx, "unlisted.example"))
	assert.Equal(t, CategoryUnknown, r.Category(ctx, "broken.example"))

	// verdicts are cached per host
	before := hits.Load()
	assert.Equal(t, "phishing", r.Category(ctx, "phish.example"))
	assert.Equal(t, CategoryUnknown, r.Category(ctx, "unlisted.example"))
	require.Equal(t, before, hits.Load())
}

func TestReputationUnreachableService(t *testing.T) {
	r := newReputationClient("http://127.0.0.1:1")
	assert.Equal(t, CategoryUnknown, r.Category(context.Background(), "any.example"))
}
