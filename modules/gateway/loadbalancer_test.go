package gateway

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"

	"github.com/googol-search/googol/pkg/gogocodec"
	"github.com/googol-search/googol/pkg/googolpb"
)

func init() {
	encoding.RegisterCodec(gogocodec.NewCodec())
}

type stubBarrel struct {
	googolpb.UnimplementedBarrelServiceServer

	indexCalls  atomic.Int32
	searchCalls atomic.Int32
	sizeBytes   uint64
}

func (s *stubBarrel) Index(_ context.Context, _ *googolpb.IndexRequest) (*googolpb.IndexResponse, error) {
	s.indexCalls.Inc()
	return &googolpb.IndexResponse{SizeBytes: s.sizeBytes}, nil
}

func (s *stubBarrel) Search(_ context.Context, _ *googolpb.SearchRequest) (*googolpb.SearchResponse, error) {
	s.searchCalls.Inc()
	return &googolpb.SearchResponse{
		Status: googolpb.GoogolStatus_SUCCESS,
		Pages:  []*googolpb.Page{{Url: "https://x/"}},
	}, nil
}

func startStubBarrel(t *testing.T, stub *stubBarrel) string {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := grpc.NewServer()
	googolpb.RegisterBarrelServiceServer(srv, stub)
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	return lis.Addr().String()
}

func testCtx(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func searchFn(ctx context.Context, c googolpb.BarrelServiceClient) (*googolpb.SearchResponse, error) {
	return c.Search(ctx, &googolpb.SearchRequest{Words: []string{"rust"}})
}

func TestSendUntilReturnsFirstSuccess(t *testing.T) {
	first := &stubBarrel{}
	second := &stubBarrel{}
	lb := NewLoadBalancer([]string{startStubBarrel(t, first), startStubBarrel(t, second)})

	resp, offline, rt, err := SendUntil(testCtx(t), lb, searchFn)
	require.NoError(t, err)
	assert.Equal(t, googolpb.GoogolStatus_SUCCESS, resp.GetStatus())
	assert.Zero(t, offline)
	assert.Equal(t, uint64(1), rt.Count())

	// the second barrel was never tried
	assert.Equal(t, int32(1), first.searchCalls.Load())
	assert.Equal(t, int32(0), second.searchCalls.Load())
}

func TestSendUntilMarksFailedBarrelsOffline(t *testing.T) {
	live := &stubBarrel{}
	lb := NewLoadBalancer([]string{"127.0.0.1:1", startStubBarrel(t, live)})

	resp, offline, _, err := SendUntil(testCtx(t), lb, searchFn)
	require.NoError(t, err)
	assert.Equal(t, googolpb.GoogolStatus_SUCCESS, resp.GetStatus())
	assert.Equal(t, 1, offline)

	status := lb.BarrelsStatus()
	require.Len(t, status, 2)
	assert.False(t, status[0].Online)
	assert.True(t, status[1].Online)
}

func TestSendUntilAllOffline(t *testing.T) {
	lb := NewLoadBalancer([]string{"127.0.0.1:1", "127.0.0.1:2"})

	_, offline, _, err := SendUntil(testCtx(t), lb, searchFn)
	require.ErrorIs(t, err, ErrAllBarrelsOffline)
	assert.Equal(t, 2, offline)

	for _, s := range lb.BarrelsStatus() {
		assert.False(t, s.Online)
	}
}

func TestBroadcastAttemptsEveryBarrel(t *testing.T) {
	first := &stubBarrel{sizeBytes: 10}
	second := &stubBarrel{sizeBytes: 20}
	lb := NewLoadBalancer([]string{startStubBarrel(t, first), startStubBarrel(t, second)})

	responses, offline, rt, err := Broadcast(testCtx(t), lb, func(ctx context.Context, c googolpb.BarrelServiceClient) (*googolpb.IndexResponse, error) {
		return c.Index(ctx, &googolpb.IndexRequest{})
	})
	require.NoError(t, err)
	assert.Zero(t, offline)
	assert.Equal(t, uint64(2), rt.Count())

	require.Len(t, responses, 2)
	assert.Equal(t, uint64(10), responses[0].Response.GetSizeBytes())
	assert.Equal(t, uint64(20), responses[1].Response.GetSizeBytes())
	assert.Equal(t, int32(1), first.indexCalls.Load())
	assert.Equal(t, int32(1), second.indexCalls.Load())
}

func TestBroadcastPartialFailure(t *testing.T) {
	live := &stubBarrel{sizeBytes: 10}
	lb := NewLoadBalancer([]string{"127.0.0.1:1", startStubBarrel(t, live)})

	responses, offline, _, err := Broadcast(testCtx(t), lb, func(ctx context.Context, c googolpb.BarrelServiceClient) (*googolpb.IndexResponse, error) {
		return c.Index(ctx, &googolpb.IndexRequest{})
	})
	require.NoError(t, err)
	assert.Equal(t, 1, offline)
	require.Len(t, responses, 1)
}

func TestBroadcastAllOffline(t *testing.T) {
	lb := NewLoadBalancer([]string{"127.0.0.1:1"})

	_, _, _, err := Broadcast(testCtx(t), lb, func(ctx context.Context, c googolpb.BarrelServiceClient) (*googolpb.IndexResponse, error) {
		return c.Index(ctx, &googolpb.IndexRequest{})
	})
	require.ErrorIs(t, err, ErrAllBarrelsOffline)
}

func TestSetIndexSizeShowsInStatus(t *testing.T) {
	lb := NewLoadBalancer([]string{"a:1", "b:2"})
	lb.SetIndexSize("b:2", 1234)

	status := lb.BarrelsStatus()
	assert.Zero(t, status[0].IndexSizeBytes)
	assert.Equal(t, uint64(1234), status[1].IndexSizeBytes)
}
