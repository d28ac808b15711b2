package gateway

import (
	"bufio"
	"context"
	"fmt"
	"net"
	neturl "net/url"
	"os"
	"sync"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/grafana/dskit/services"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/googol-search/googol/pkg/googolpb"
	"github.com/googol-search/googol/pkg/notify"
)

const topSearchesN = 10

var (
	metricEnqueuedURLs = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "googol",
		Subsystem: "gateway",
		Name:      "enqueued_urls_total",
		Help:      "Total URLs admitted to the frontier.",
	})
	metricDequeuedURLs = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "googol",
		Subsystem: "gateway",
		Name:      "dequeued_urls_total",
		Help:      "Total URLs handed to downloaders.",
	})
	metricQueueLength = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "googol",
		Subsystem: "gateway",
		Name:      "queue_length",
		Help:      "Current frontier queue length.",
	})
	metricSearches = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "googol",
		Subsystem: "gateway",
		Name:      "searches_total",
		Help:      "Total search requests served.",
	})
	metricLostIndex = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "googol",
		Subsystem: "gateway",
		Name:      "lost_index_total",
		Help:      "Index writes dropped because every barrel was offline.",
	})
	metricOfflineBarrels = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "googol",
		Subsystem: "gateway",
		Name:      "barrel_failures_total",
		Help:      "Barrel calls that failed and marked the replica offline.",
	})
)

// Gateway is the front door: it owns the URL frontier, fans index writes
// out to every barrel, balances reads, and publishes the status stream.
type Gateway struct {
	services.Service
	googolpb.UnimplementedGatewayServiceServer

	cfg    Config
	logger kitlog.Logger

	queueMtx sync.Mutex
	frontier *Frontier

	lb *LoadBalancer

	statsMtx sync.Mutex
	top      *TopSearches
	rt       ResponseTime

	queueNotify  *notify.Notifier
	statusNotify *notify.Notifier

	server *grpc.Server
}

func New(cfg Config, logger kitlog.Logger) *Gateway {
	g := &Gateway{
		cfg:          cfg,
		logger:       logger,
		frontier:     NewFrontier(cfg.DomainsFilter),
		lb:           NewLoadBalancer(cfg.Barrels),
		top:          NewTopSearches(),
		queueNotify:  notify.New(),
		statusNotify: notify.New(),
	}
	g.Service = services.NewBasicService(g.starting, g.running, g.stopping)
	return g
}

// starting seeds the frontier from configuration.
func (g *Gateway) starting(_ context.Context) error {
	g.queueMtx.Lock()
	defer g.queueMtx.Unlock()

	for _, seed := range g.cfg.Queue {
		u, err := parseURL(seed)
		if err != nil {
			level.Warn(g.logger).Log("msg", "skipping invalid seed url", "url", seed, "err", err)
			continue
		}
		if res, _ := g.frontier.Enqueue(u); res == Enqueued {
			metricEnqueuedURLs.Inc()
		}
	}
	metricQueueLength.Set(float64(g.frontier.Len()))
	return nil
}

func (g *Gateway) running(ctx context.Context) error {
	lis, err := net.Listen("tcp", g.cfg.Address)
	if err != nil {
		return errors.Wrapf(err, "binding gateway listener on %s", g.cfg.Address)
	}

	g.server = grpc.NewServer()
	googolpb.RegisterGatewayServiceServer(g.server, g)

	level.Info(g.logger).Log("msg", "gateway listening", "address", g.cfg.Address)

	errCh := make(chan error, 1)
	go func() {
		errCh <- g.server.Serve(lis)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (g *Gateway) stopping(_ error) error {
	if g.server != nil {
		g.server.GracefulStop()
	}
	return nil
}

func parseURL(raw string) (*neturl.URL, error) {
	u, err := neturl.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("url %q is not absolute", raw)
	}
	return u, nil
}

// EnqueueUrl admits one URL into the frontier and wakes the dequeue and
// status waiters.
func (g *Gateway) EnqueueUrl(_ context.Context, req *googolpb.EnqueueRequest) (*googolpb.EnqueueResponse, error) {
	u, err := parseURL(req.GetUrl())
	if err != nil {
		g.queueMtx.Lock()
		snapshot := g.frontier.Snapshot()
		g.queueMtx.Unlock()
		return &googolpb.EnqueueResponse{Status: googolpb.GoogolStatus_INVALID_URL, Queue: snapshot}, nil
	}

	g.queueMtx.Lock()
	res, snapshot := g.frontier.Enqueue(u)
	metricQueueLength.Set(float64(g.frontier.Len()))
	g.queueMtx.Unlock()

	switch res {
	case Rejected:
		return &googolpb.EnqueueResponse{Status: googolpb.GoogolStatus_INVALID_URL, Queue: snapshot}, nil
	case AlreadySeen:
		return &googolpb.EnqueueResponse{Status: googolpb.GoogolStatus_ALREADY_INDEXED_URL, Queue: snapshot}, nil
	}

	metricEnqueuedURLs.Inc()
	g.queueNotify.Notify()
	g.statusNotify.Notify()
	return &googolpb.EnqueueResponse{Status: googolpb.GoogolStatus_SUCCESS, Queue: snapshot}, nil
}

// DequeueUrl pops the oldest URL, blocking on the queue notification while
// the frontier is empty.
func (g *Gateway) DequeueUrl(ctx context.Context, _ *googolpb.DequeueRequest) (*googolpb.DequeueResponse, error) {
	for {
		// arm before checking, so an enqueue between the miss and the
		// wait cannot be lost
		notified := g.queueNotify.Notified()

		g.queueMtx.Lock()
		url, ok := g.frontier.Dequeue()
		metricQueueLength.Set(float64(g.frontier.Len()))
		g.queueMtx.Unlock()

		if ok {
			metricDequeuedURLs.Inc()
			g.statusNotify.Notify()
			return &googolpb.DequeueResponse{Url: url}, nil
		}

		select {
		case <-notified:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Index admits the record's outlinks into the frontier, then replicates
// the write to every barrel. With every barrel offline the write is lost;
// the loss is logged and counted.
func (g *Gateway) Index(ctx context.Context, req *googolpb.IndexRequest) (*googolpb.IndexResponse, error) {
	index := req.GetIndex()
	if index == nil || index.GetPage() == nil {
		return &googolpb.IndexResponse{}, nil
	}

	g.enqueueOutlinks(index.GetOutlinks())

	responses, _, rt, err := Broadcast(ctx, g.lb, func(ctx context.Context, c googolpb.BarrelServiceClient) (*googolpb.IndexResponse, error) {
		return c.Index(ctx, req)
	})
	if err != nil {
		// known gap: no write-behind cache, the record is gone
		level.Warn(g.logger).Log("msg", "index write lost, all barrels offline", "url", index.GetPage().GetUrl())
		metricLostIndex.Inc()
		metricOfflineBarrels.Add(float64(len(g.cfg.Barrels)))
		g.statusNotify.Notify()
		return &googolpb.IndexResponse{}, nil
	}

	for _, r := range responses {
		g.lb.SetIndexSize(r.Address, r.Response.GetSizeBytes())
	}

	g.statsMtx.Lock()
	g.rt.Update(rt)
	g.statsMtx.Unlock()

	g.statusNotify.Notify()
	return &googolpb.IndexResponse{}, nil
}

func (g *Gateway) enqueueOutlinks(outlinks []string) {
	added := false

	g.queueMtx.Lock()
	for _, raw := range outlinks {
		u, err := parseURL(raw)
		if err != nil {
			level.Debug(g.logger).Log("msg", "dropping invalid outlink", "url", raw, "err", err)
			continue
		}
		if res, _ := g.frontier.Enqueue(u); res == Enqueued {
			metricEnqueuedURLs.Inc()
			added = true
		}
	}
	metricQueueLength.Set(float64(g.frontier.Len()))
	g.queueMtx.Unlock()

	if added {
		g.queueNotify.Notify()
		g.statusNotify.Notify()
	}
}

// Search forwards the query to the first barrel that answers.
func (g *Gateway) Search(ctx context.Context, req *googolpb.SearchRequest) (*googolpb.SearchResponse, error) {
	metricSearches.Inc()

	resp, _, rt, err := SendUntil(ctx, g.lb, func(ctx context.Context, c googolpb.BarrelServiceClient) (*googolpb.SearchResponse, error) {
		return c.Search(ctx, req)
	})
	if err != nil {
		return &googolpb.SearchResponse{Status: googolpb.GoogolStatus_UNAVAILABLE_BARRELS}, nil
	}

	g.statsMtx.Lock()
	g.rt.Update(rt)
	for _, w := range req.GetWords() {
		g.top.AddSearch(w)
	}
	g.statsMtx.Unlock()

	g.statusNotify.Notify()
	return resp, nil
}

func (g *Gateway) ConsultBacklinks(ctx context.Context, req *googolpb.BacklinksRequest) (*googolpb.BacklinksResponse, error) {
	if _, err := parseURL(req.GetUrl()); err != nil {
		return &googolpb.BacklinksResponse{Status: googolpb.GoogolStatus_INVALID_URL}, nil
	}

	resp, _, rt, err := SendUntil(ctx, g.lb, func(ctx context.Context, c googolpb.BarrelServiceClient) (*googolpb.BacklinksResponse, error) {
		return c.ConsultBacklinks(ctx, req)
	})
	if err != nil {
		return &googolpb.BacklinksResponse{Status: googolpb.GoogolStatus_UNAVAILABLE_BARRELS}, nil
	}

	g.statsMtx.Lock()
	g.rt.Update(rt)
	g.statsMtx.Unlock()
	g.statusNotify.Notify()
	return resp, nil
}

func (g *Gateway) ConsultOutlinks(ctx context.Context, req *googolpb.OutlinksRequest) (*googolpb.OutlinksResponse, error) {
	if _, err := parseURL(req.GetUrl()); err != nil {
		return &googolpb.OutlinksResponse{Status: googolpb.GoogolStatus_INVALID_URL}, nil
	}

	resp, _, rt, err := SendUntil(ctx, g.lb, func(ctx context.Context, c googolpb.BarrelServiceClient) (*googolpb.OutlinksResponse, error) {
		return c.ConsultOutlinks(ctx, req)
	})
	if err != nil {
		return &googolpb.OutlinksResponse{Status: googolpb.GoogolStatus_UNAVAILABLE_BARRELS}, nil
	}

	g.statsMtx.Lock()
	g.rt.Update(rt)
	g.statsMtx.Unlock()
	g.statusNotify.Notify()
	return resp, nil
}

// Health reports liveness. Interactive mode pauses for operator input
// before replying, an operational aid for demos and debugging.
func (g *Gateway) Health(_ context.Context, _ *googolpb.HealthRequest) (*googolpb.HealthResponse, error) {
	if g.cfg.Interactive {
		fmt.Fprint(os.Stderr, "press enter to answer health probe: ")
		_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
	}
	return &googolpb.HealthResponse{
		Status: fmt.Sprintf("OK, listening at %s", g.cfg.Address),
	}, nil
}

// RealTimeStatus blocks until the next state transition, then returns one
// aggregate snapshot. Clients call it in a loop for a push-like stream.
func (g *Gateway) RealTimeStatus(ctx context.Context, _ *googolpb.RealTimeStatusRequest) (*googolpb.RealTimeStatusResponse, error) {
	if err := g.statusNotify.Wait(ctx); err != nil {
		return nil, err
	}
	return g.statusSnapshot(), nil
}

func (g *Gateway) statusSnapshot() *googolpb.RealTimeStatusResponse {
	g.statsMtx.Lock()
	var top []string
	for _, sc := range g.top.TopN(topSearchesN) {
		top = append(top, sc.Word)
	}
	mean := float32(g.rt.MeanMillis())
	g.statsMtx.Unlock()

	g.queueMtx.Lock()
	queue := g.frontier.Snapshot()
	g.queueMtx.Unlock()

	return &googolpb.RealTimeStatusResponse{
		Top10Searches:     top,
		Barrels:           g.lb.BarrelsStatus(),
		AvgResponseTimeMs: mean,
		Queue:             queue,
	}
}

// BroadcastIndex is reserved for barrel-to-barrel replication.
func (g *Gateway) BroadcastIndex(context.Context, *googolpb.BroadcastIndexRequest) (*googolpb.BroadcastIndexResponse, error) {
	return nil, grpcstatus.Error(codes.Unimplemented, "BroadcastIndex is not implemented")
}

// RequestIndex is reserved for barrel catch-up.
func (g *Gateway) RequestIndex(context.Context, *googolpb.RequestIndexRequest) (*googolpb.RequestIndexResponse, error) {
	return nil, grpcstatus.Error(codes.Unimplemented, "RequestIndex is not implemented")
}

// Status is reserved; RealTimeStatus carries the live state.
func (g *Gateway) Status(context.Context, *googolpb.GatewayStatusRequest) (*googolpb.GatewayStatusResponse, error) {
	return nil, grpcstatus.Error(codes.Unimplemented, "Status is not implemented")
}

// ClearSeen is the operator hook that forgets already-crawled URLs.
func (g *Gateway) ClearSeen() {
	g.queueMtx.Lock()
	g.frontier.ClearSeen()
	g.queueMtx.Unlock()
	g.statusNotify.Notify()
}
