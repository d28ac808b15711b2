// Package web serves the HTTP edge: a small JSON API over the gateway,
// a websocket relaying the live status stream, and /metrics.
package web

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/grafana/dskit/services"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/googol-search/googol/pkg/googolpb"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Web struct {
	services.Service

	cfg    Config
	logger kitlog.Logger

	conn     *grpc.ClientConn
	gateway  googolpb.GatewayServiceClient
	server   *http.Server
	upgrader websocket.Upgrader
}

func New(cfg Config, logger kitlog.Logger) *Web {
	w := &Web{
		cfg:    cfg,
		logger: logger,
	}
	w.Service = services.NewBasicService(w.starting, w.running, w.stopping)
	return w
}

func (w *Web) starting(_ context.Context) error {
	conn, err := grpc.NewClient(w.cfg.GatewayAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return errors.Wrap(err, "creating gateway client")
	}
	w.conn = conn
	w.gateway = googolpb.NewGatewayServiceClient(conn)
	return nil
}

func (w *Web) running(ctx context.Context) error {
	r := mux.NewRouter()
	r.HandleFunc("/api/health", w.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/enqueue", w.handleEnqueue).Methods(http.MethodPost)
	r.HandleFunc("/api/search", w.handleSearch).Methods(http.MethodGet)
	r.HandleFunc("/api/consult/backlinks", w.handleBacklinks).Methods(http.MethodGet)
	r.HandleFunc("/api/consult/outlinks", w.handleOutlinks).Methods(http.MethodGet)
	r.HandleFunc("/ws", w.handleStatusSocket)
	r.Handle("/metrics", promhttp.Handler())

	w.server = &http.Server{
		Addr:        w.cfg.Address,
		Handler:     r,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}
	level.Info(w.logger).Log("msg", "web edge listening", "address", w.cfg.Address)

	errCh := make(chan error, 1)
	go func() {
		errCh <- w.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (w *Web) stopping(_ error) error {
	if w.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = w.server.Shutdown(shutdownCtx)
	}
	if w.conn != nil {
		_ = w.conn.Close()
	}
	return nil
}

func (w *Web) writeJSON(rw http.ResponseWriter, code int, v any) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)
	if err := json.NewEncoder(rw).Encode(v); err != nil {
		level.Warn(w.logger).Log("msg", "writing response failed", "err", err)
	}
}

func (w *Web) handleHealth(rw http.ResponseWriter, r *http.Request) {
	resp, err := w.gateway.Health(r.Context(), &googolpb.HealthRequest{})
	if err != nil {
		w.writeJSON(rw, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	w.writeJSON(rw, http.StatusOK, map[string]string{"status": resp.GetStatus()})
}

func (w *Web) handleEnqueue(rw http.ResponseWriter, r *http.Request) {
	var body struct {
		Url string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.writeJSON(rw, http.StatusBadRequest, map[string]string{"error": "body must be {\"url\": ...}"})
		return
	}

	resp, err := w.gateway.EnqueueUrl(r.Context(), &googolpb.EnqueueRequest{Url: body.Url})
	if err != nil {
		w.writeJSON(rw, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	w.writeJSON(rw, http.StatusOK, map[string]any{
		"status": resp.GetStatus().String(),
		"queue":  resp.GetQueue(),
	})
}

func (w *Web) handleSearch(rw http.ResponseWriter, r *http.Request) {
	words := strings.Fields(r.URL.Query().Get("words"))
	resp, err := w.gateway.Search(r.Context(), &googolpb.SearchRequest{Words: words})
	if err != nil {
		w.writeJSON(rw, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}

	type page struct {
		Url      string `json:"url"`
		Title    string `json:"title,omitempty"`
		Summary  string `json:"summary,omitempty"`
		Icon     string `json:"icon,omitempty"`
		Category string `json:"category,omitempty"`
	}
	pages := make([]page, 0, len(resp.GetPages()))
	for _, p := range resp.GetPages() {
		pages = append(pages, page{
			Url:      p.GetUrl(),
			Title:    p.GetTitle(),
			Summary:  p.GetSummary(),
			Icon:     p.GetIcon(),
			Category: p.GetCategory(),
		})
	}
	w.writeJSON(rw, http.StatusOK, map[string]any{
		"status": resp.GetStatus().String(),
		"pages":  pages,
	})
}

func (w *Web) handleBacklinks(rw http.ResponseWriter, r *http.Request) {
	resp, err := w.gateway.ConsultBacklinks(r.Context(), &googolpb.BacklinksRequest{Url: r.URL.Query().Get("url")})
	if err != nil {
		w.writeJSON(rw, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	w.writeJSON(rw, http.StatusOK, map[string]any{
		"status":    resp.GetStatus().String(),
		"backlinks": resp.GetBacklinks(),
	})
}

func (w *Web) handleOutlinks(rw http.ResponseWriter, r *http.Request) {
	resp, err := w.gateway.ConsultOutlinks(r.Context(), &googolpb.OutlinksRequest{Url: r.URL.Query().Get("url")})
	if err != nil {
		w.writeJSON(rw, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	w.writeJSON(rw, http.StatusOK, map[string]any{
		"status":   resp.GetStatus().String(),
		"outlinks": resp.GetOutlinks(),
	})
}

// handleStatusSocket relays one JSON frame per status edge until either
// side goes away.
func (w *Web) handleStatusSocket(rw http.ResponseWriter, r *http.Request) {
	conn, err := w.upgrader.Upgrade(rw, r, nil)
	if err != nil {
		level.Warn(w.logger).Log("msg", "websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	ctx := r.Context()
	for {
		status, err := w.gateway.RealTimeStatus(ctx, &googolpb.RealTimeStatusRequest{})
		if err != nil {
			return
		}

		type barrel struct {
			Address        string `json:"address"`
			Online         bool   `json:"online"`
			IndexSizeBytes uint64 `json:"index_size_bytes"`
		}
		frame := map[string]any{
			"top10_searches":       status.GetTop10Searches(),
			"avg_response_time_ms": status.GetAvgResponseTimeMs(),
			"queue":                status.GetQueue(),
		}
		barrels := make([]barrel, 0, len(status.GetBarrels()))
		for _, b := range status.GetBarrels() {
			barrels = append(barrels, barrel{
				Address:        b.GetAddress(),
				Online:         b.GetOnline(),
				IndexSizeBytes: b.GetIndexSizeBytes(),
			})
		}
		frame["barrels"] = barrels

		if err := conn.WriteJSON(frame); err != nil {
			return
		}
	}
}
