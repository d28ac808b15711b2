package downloader

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const (
	fishfishBaseURL = "https://api.fishfish.gg/v1/domains"

	// CategoryUnknown is attached when the reputation service cannot be
	// consulted; the page is indexed regardless.
	CategoryUnknown = "unknown"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// reputationClient classifies hosts (safe / malware / phishing / unknown)
// via the fishfish.gg API, caching one verdict per host.
type reputationClient struct {
	client  *http.Client
	baseURL string

	mtx   sync.Mutex
	cache map[string]string
}

func newReputationClient(baseURL string) *reputationClient {
	return &reputationClient{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		cache:   make(map[string]string),
	}
}

// Category returns the cached or freshly fetched verdict for host. Any
// failure, including an unlisted domain, yields CategoryUnknown.
func (r *reputationClient) Category(ctx context.Context, host string) string {
	r.mtx.Lock()
	if cat, ok := r.cache[host]; ok {
		r.mtx.Unlock()
		return cat
	}
	r.mtx.Unlock()

	cat := r.fetch(ctx, host)

	r.mtx.Lock()
	r.cache[host] = cat
	r.mtx.Unlock()
	return cat
}

func (r *reputationClient) fetch(ctx context.Context, host string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s", r.baseURL, host), nil)
	if err != nil {
		return CategoryUnknown
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return CategoryUnknown
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return CategoryUnknown
	}

	var body struct {
		Category string `json:"category"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Category == "" {
		return CategoryUnknown
	}
	return body.Category
}
