package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/googol-search/googol/pkg/googolpb"
)

// fakeGateway implements the subset of the gateway client the edge
// handlers use; anything else panics.
type fakeGateway struct {
	googolpb.GatewayServiceClient

	enqueued []string
}

func (f *fakeGateway) Health(context.Context, *googolpb.HealthRequest, ...grpc.CallOption) (*googolpb.HealthResponse, error) {
	return &googolpb.HealthResponse{Status: "OK, listening at 127.0.0.1:50051"}, nil
}

func (f *fakeGateway) EnqueueUrl(_ context.Context, req *googolpb.EnqueueRequest, _ ...grpc.CallOption) (*googolpb.EnqueueResponse, error) {
	f.enqueued = append(f.enqueued, req.GetUrl())
	return &googolpb.EnqueueResponse{
		Status: googolpb.GoogolStatus_SUCCESS,
		Queue:  f.enqueued,
	}, nil
}

func (f *fakeGateway) Search(context.Context, *googolpb.SearchRequest, ...grpc.CallOption) (*googolpb.SearchResponse, error) {
	return &googolpb.SearchResponse{
		Status: googolpb.GoogolStatus_SUCCESS,
		Pages:  []*googolpb.Page{{Url: "https://x/", Title: "X"}},
	}, nil
}

func (f *fakeGateway) ConsultBacklinks(context.Context, *googolpb.BacklinksRequest, ...grpc.CallOption) (*googolpb.BacklinksResponse, error) {
	return &googolpb.BacklinksResponse{
		Status:    googolpb.GoogolStatus_SUCCESS,
		Backlinks: []string{"https://y/"},
	}, nil
}

func newTestWeb(f *fakeGateway) *Web {
	w := New(Config{Address: "127.0.0.1:0"}, log.NewNopLogger())
	w.gateway = f
	return w
}

func TestHandleHealth(t *testing.T) {
	w := newTestWeb(&fakeGateway{})

	rec := httptest.NewRecorder()
	w.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "OK, listening at")
}

func TestHandleEnqueue(t *testing.T) {
	f := &fakeGateway{}
	w := newTestWeb(f)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/enqueue", strings.NewReader(`{"url":"https://a.example/"}`))
	w.handleEnqueue(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"https://a.example/"}, f.enqueued)
	assert.Contains(t, rec.Body.String(), `"SUCCESS"`)
}

func TestHandleEnqueueBadBody(t *testing.T) {
	w := newTestWeb(&fakeGateway{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/enqueue", strings.NewReader("not json"))
	w.handleEnqueue(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSearch(t *testing.T) {
	w := newTestWeb(&fakeGateway{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search?words=rust+fast", nil)
	w.handleSearch(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"https://x/"`)
}

func TestHandleBacklinks(t *testing.T) {
	w := newTestWeb(&fakeGateway{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/consult/backlinks?url=https://x/", nil)
	w.handleBacklinks(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"https://y/"`)
}
