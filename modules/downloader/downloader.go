package downloader

import (
	"context"
	"net/http"
	neturl "net/url"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/grafana/dskit/backoff"
	"github.com/grafana/dskit/services"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/googol-search/googol/pkg/googolpb"
)

var (
	metricPagesIndexed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "googol",
		Subsystem: "downloader",
		Name:      "pages_indexed_total",
		Help:      "Pages fetched, parsed and submitted for indexing.",
	})
	metricCrawlFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "googol",
		Subsystem: "downloader",
		Name:      "crawl_failures_total",
		Help:      "Crawl iterations that failed and backed off.",
	})
)

// Downloader runs the crawl workers. Each worker loops dequeue, fetch,
// parse, index against the gateway and retries forever with doubling
// backoff on any failure.
type Downloader struct {
	services.Service

	cfg    Config
	logger kitlog.Logger

	httpClient *http.Client
	reputation *reputationClient
	stopWords  map[string]struct{}
}

func New(cfg Config, logger kitlog.Logger) *Downloader {
	stop := make(map[string]struct{}, len(cfg.StopWords))
	for _, w := range cfg.StopWords {
		stop[w] = struct{}{}
	}

	d := &Downloader{
		cfg:    cfg,
		logger: logger,
		// no explicit timeout, transport defaults apply
		httpClient: &http.Client{},
		reputation: newReputationClient(fishfishBaseURL),
		stopWords:  stop,
	}
	d.Service = services.NewBasicService(nil, d.running, nil)
	return d
}

func (d *Downloader) running(ctx context.Context) error {
	conn, err := grpc.NewClient(d.cfg.Gateway, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return errors.Wrap(err, "creating gateway client")
	}
	defer conn.Close()

	gateway := googolpb.NewGatewayServiceClient(conn)

	level.Info(d.logger).Log("msg", "starting crawl workers", "workers", d.cfg.Workers, "gateway", d.cfg.Gateway)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < d.cfg.Workers; i++ {
		worker := i
		g.Go(func() error {
			d.run(ctx, worker, gateway)
			return nil
		})
	}
	return g.Wait()
}

func (d *Downloader) run(ctx context.Context, worker int, gateway googolpb.GatewayServiceClient) {
	logger := kitlog.With(d.logger, "worker", worker)

	bo := backoff.New(ctx, backoff.Config{
		MinBackoff: time.Second,
		MaxBackoff: 60 * time.Second,
		MaxRetries: 0, // retry forever
	})

	for ctx.Err() == nil {
		if err := d.crawlOne(ctx, gateway); err != nil {
			if ctx.Err() != nil {
				return
			}
			level.Warn(logger).Log("msg", "crawl iteration failed", "err", err)
			metricCrawlFailures.Inc()
			bo.Wait()
			continue
		}
		bo.Reset()
	}
}

// crawlOne pulls one URL from the gateway, fetches and parses it, and
// submits the index record.
func (d *Downloader) crawlOne(ctx context.Context, gateway googolpb.GatewayServiceClient) error {
	dequeued, err := gateway.DequeueUrl(ctx, &googolpb.DequeueRequest{})
	if err != nil {
		return errors.Wrap(err, "dequeue")
	}

	rawURL := dequeued.GetUrl()
	base, err := neturl.Parse(rawURL)
	if err != nil {
		return errors.Wrapf(err, "parsing dequeued url %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return errors.Wrap(err, "building fetch request")
	}
	resp, err := d.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "fetching %s", rawURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("fetching %s: status %d", rawURL, resp.StatusCode)
	}

	page, err := parsePage(base, resp.Body, d.stopWords)
	if err != nil {
		return errors.Wrapf(err, "parsing %s", rawURL)
	}

	_, err = gateway.Index(ctx, &googolpb.IndexRequest{
		Index: &googolpb.Index{
			Page: &googolpb.Page{
				Url:      rawURL,
				Title:    page.Title,
				Summary:  page.Summary,
				Icon:     page.Icon,
				Category: d.reputation.Category(ctx, base.Hostname()),
			},
			Words:    page.Words,
			Outlinks: page.Outlinks,
		},
	})
	if err != nil {
		return errors.Wrapf(err, "indexing %s", rawURL)
	}

	metricPagesIndexed.Inc()
	return nil
}
