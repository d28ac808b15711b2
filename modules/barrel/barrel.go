package barrel

import (
	"context"
	"fmt"
	"net"
	neturl "net/url"
	"sync"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/grafana/dskit/services"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"google.golang.org/grpc"

	"github.com/googol-search/googol/googoldb"
	"github.com/googol-search/googol/pkg/googolpb"
)

var (
	metricIndexWrites = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "googol",
		Subsystem: "barrel",
		Name:      "index_writes_total",
		Help:      "Total index records stored.",
	})
	metricSaveFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "googol",
		Subsystem: "barrel",
		Name:      "snapshot_save_failures_total",
		Help:      "Snapshot writes that failed; memory stays authoritative.",
	})
	metricSnapshotBytes = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "googol",
		Subsystem: "barrel",
		Name:      "snapshot_size_bytes",
		Help:      "Size of the last successful snapshot.",
	})
)

// Barrel serves one replica of the index: every write lands in memory and
// is snapshotted to disk, reads run the ranked search. A single mutex
// serializes readers and writers.
type Barrel struct {
	services.Service
	googolpb.UnimplementedBarrelServiceServer

	cfg    Config
	logger kitlog.Logger

	mtx   sync.Mutex
	store *googoldb.Store

	server *grpc.Server
}

// New loads the snapshot at cfg.Filepath. A malformed snapshot is fatal,
// a missing one starts the barrel empty.
func New(cfg Config, logger kitlog.Logger) (*Barrel, error) {
	store, err := googoldb.Load(cfg.Filepath)
	if err != nil {
		return nil, errors.Wrap(err, "loading index store")
	}
	metricSnapshotBytes.Set(float64(store.SizeBytes()))

	b := &Barrel{
		cfg:    cfg,
		logger: logger,
		store:  store,
	}
	b.Service = services.NewBasicService(nil, b.running, b.stopping)
	return b, nil
}

func (b *Barrel) running(ctx context.Context) error {
	lis, err := net.Listen("tcp", b.cfg.Address)
	if err != nil {
		return errors.Wrapf(err, "binding barrel listener on %s", b.cfg.Address)
	}

	b.server = grpc.NewServer()
	googolpb.RegisterBarrelServiceServer(b.server, b)

	level.Info(b.logger).Log("msg", "barrel listening", "address", b.cfg.Address, "snapshot", b.cfg.Filepath)

	errCh := make(chan error, 1)
	go func() {
		errCh <- b.server.Serve(lis)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (b *Barrel) stopping(_ error) error {
	if b.server != nil {
		b.server.GracefulStop()
	}
	return nil
}

// Index stores one record and snapshots the store. A failed snapshot is
// logged and swallowed; the in-memory write stands and the next save
// reconciles. The reported size is the last successful snapshot's.
func (b *Barrel) Index(_ context.Context, req *googolpb.IndexRequest) (*googolpb.IndexResponse, error) {
	index := req.GetIndex()
	if index == nil || index.GetPage() == nil {
		b.mtx.Lock()
		defer b.mtx.Unlock()
		return &googolpb.IndexResponse{SizeBytes: b.store.SizeBytes()}, nil
	}

	page := pageFromProto(index.GetPage())

	var outlinks []string
	for _, raw := range index.GetOutlinks() {
		if _, err := parseURL(raw); err != nil {
			level.Warn(b.logger).Log("msg", "dropping invalid outlink", "url", raw, "err", err)
			continue
		}
		outlinks = append(outlinks, raw)
	}

	b.mtx.Lock()
	defer b.mtx.Unlock()

	b.store.Store(page, index.GetWords(), outlinks)
	metricIndexWrites.Inc()

	if _, err := b.store.Save(); err != nil {
		level.Error(b.logger).Log("msg", "snapshot save failed, keeping in-memory state", "err", err)
		metricSaveFailures.Inc()
	} else {
		metricSnapshotBytes.Set(float64(b.store.SizeBytes()))
	}

	return &googolpb.IndexResponse{SizeBytes: b.store.SizeBytes()}, nil
}

// Search runs the ranked query.
func (b *Barrel) Search(_ context.Context, req *googolpb.SearchRequest) (*googolpb.SearchResponse, error) {
	b.mtx.Lock()
	pages := b.store.SearchByRelevance(req.GetWords())
	b.mtx.Unlock()

	resp := &googolpb.SearchResponse{Status: googolpb.GoogolStatus_SUCCESS}
	for _, p := range pages {
		resp.Pages = append(resp.Pages, pageToProto(p))
	}
	return resp, nil
}

func (b *Barrel) ConsultBacklinks(_ context.Context, req *googolpb.BacklinksRequest) (*googolpb.BacklinksResponse, error) {
	if _, err := parseURL(req.GetUrl()); err != nil {
		return &googolpb.BacklinksResponse{Status: googolpb.GoogolStatus_INVALID_URL}, nil
	}

	b.mtx.Lock()
	backlinks := b.store.ConsultBacklinks(req.GetUrl())
	b.mtx.Unlock()

	return &googolpb.BacklinksResponse{
		Status:    googolpb.GoogolStatus_SUCCESS,
		Backlinks: backlinks,
	}, nil
}

func (b *Barrel) ConsultOutlinks(_ context.Context, req *googolpb.OutlinksRequest) (*googolpb.OutlinksResponse, error) {
	if _, err := parseURL(req.GetUrl()); err != nil {
		return &googolpb.OutlinksResponse{Status: googolpb.GoogolStatus_INVALID_URL}, nil
	}

	b.mtx.Lock()
	outlinks := b.store.ConsultOutlinks(req.GetUrl())
	b.mtx.Unlock()

	return &googolpb.OutlinksResponse{
		Status:   googolpb.GoogolStatus_SUCCESS,
		Outlinks: outlinks,
	}, nil
}

func (b *Barrel) Health(context.Context, *googolpb.HealthRequest) (*googolpb.HealthResponse, error) {
	return &googolpb.HealthResponse{
		Status: fmt.Sprintf("OK, listening at %s", b.cfg.Address),
	}, nil
}

func (b *Barrel) Status(context.Context, *googolpb.BarrelStatusRequest) (*googolpb.BarrelStatusResponse, error) {
	return &googolpb.BarrelStatusResponse{Status: "OK"}, nil
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

func pageFromProto(p *googolpb.Page) googoldb.Page {
	return googoldb.Page{
		Url:       p.GetUrl(),
		Title:     p.GetTitle(),
		Summary:   p.GetSummary(),
		Icon:      p.GetIcon(),
		Category:  p.GetCategory(),
		Timestamp: time.Now().UTC(),
	}
}

func pageToProto(p googoldb.Page) *googolpb.Page {
	return &googolpb.Page{
		Url:      p.Url,
		Title:    p.Title,
		Summary:  p.Summary,
		Icon:     p.Icon,
		Category: p.Category,
	}
}
