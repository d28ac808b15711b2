package gateway

import (
	"context"
	"sync"
	"time"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/googol-search/googol/pkg/googolpb"
	"github.com/googol-search/googol/pkg/util/log"
)

// ErrAllBarrelsOffline is returned when every replica failed to answer.
var ErrAllBarrelsOffline = errors.New("all barrels offline")

type barrelRecord struct {
	address   string
	online    bool
	sizeBytes uint64
}

// LoadBalancer tracks the fixed, config-ordered set of barrel replicas.
// Connections are opened fresh per call, no pooling.
type LoadBalancer struct {
	mtx     sync.Mutex
	barrels []*barrelRecord
}

func NewLoadBalancer(addresses []string) *LoadBalancer {
	lb := &LoadBalancer{}
	for _, addr := range addresses {
		lb.barrels = append(lb.barrels, &barrelRecord{address: addr, online: true})
	}
	return lb
}

func (lb *LoadBalancer) addresses() []string {
	lb.mtx.Lock()
	defer lb.mtx.Unlock()

	out := make([]string, 0, len(lb.barrels))
	for _, b := range lb.barrels {
		out = append(out, b.address)
	}
	return out
}

func (lb *LoadBalancer) markOnline(address string, online bool) {
	lb.mtx.Lock()
	defer lb.mtx.Unlock()

	for _, b := range lb.barrels {
		if b.address == address {
			b.online = online
			return
		}
	}
}

// SetIndexSize records the snapshot size a replica reported on its last
// index write, surfaced through the status stream.
func (lb *LoadBalancer) SetIndexSize(address string, sizeBytes uint64) {
	lb.mtx.Lock()
	defer lb.mtx.Unlock()

	for _, b := range lb.barrels {
		if b.address == address {
			b.sizeBytes = sizeBytes
			return
		}
	}
}

// BarrelsStatus snapshots (address, online, size) for every replica in
// config order.
func (lb *LoadBalancer) BarrelsStatus() []*googolpb.BarrelStatus {
	lb.mtx.Lock()
	defer lb.mtx.Unlock()

	out := make([]*googolpb.BarrelStatus, 0, len(lb.barrels))
	for _, b := range lb.barrels {
		out = append(out, &googolpb.BarrelStatus{
			Address:        b.address,
			Online:         b.online,
			IndexSizeBytes: b.sizeBytes,
		})
	}
	return out
}

// ReplicaResponse is one successful barrel reply tagged with its origin.
type ReplicaResponse[T any] struct {
	Address  string
	Response T
}

func dialBarrel(address string) (*grpc.ClientConn, error) {
	return grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

func callBarrel[T any](ctx context.Context, address string, fn func(context.Context, googolpb.BarrelServiceClient) (T, error)) (T, error) {
	var zero T
	conn, err := dialBarrel(address)
	if err != nil {
		return zero, err
	}
	defer conn.Close()

	return fn(ctx, googolpb.NewBarrelServiceClient(conn))
}

// Broadcast calls fn against every replica in order, never short-circuits,
// and flips each replica's online flag by its outcome. It fails with
// ErrAllBarrelsOffline only when no replica answered.
func Broadcast[T any](ctx context.Context, lb *LoadBalancer, fn func(context.Context, googolpb.BarrelServiceClient) (T, error)) ([]ReplicaResponse[T], int, ResponseTime, error) {
	var (
		responses []ReplicaResponse[T]
		offline   int
		rt        ResponseTime
	)

	for _, address := range lb.addresses() {
		start := time.Now()
		resp, err := callBarrel(ctx, address, fn)
		if err != nil {
			level.Warn(log.Logger).Log("msg", "barrel call failed", "address", address, "err", err)
			lb.markOnline(address, false)
			offline++
			continue
		}
		rt.NewSample(start)
		lb.markOnline(address, true)
		responses = append(responses, ReplicaResponse[T]{Address: address, Response: resp})
	}

	if len(responses) == 0 {
		return nil, offline, rt, ErrAllBarrelsOffline
	}
	return responses, offline, rt, nil
}

// SendUntil calls fn against the replicas in order and returns the first
// success. Every replica tried and failed before it is marked offline.
func SendUntil[T any](ctx context.Context, lb *LoadBalancer, fn func(context.Context, googolpb.BarrelServiceClient) (T, error)) (T, int, ResponseTime, error) {
	var (
		zero    T
		offline int
		rt      ResponseTime
	)

	for _, address := range lb.addresses() {
		start := time.Now()
		resp, err := callBarrel(ctx, address, fn)
		if err != nil {
			level.Warn(log.Logger).Log("msg", "barrel call failed", "address", address, "err", err)
			lb.markOnline(address, false)
			offline++
			continue
		}
		rt.NewSample(start)
		lb.markOnline(address, true)
		return resp, offline, rt, nil
	}

	return zero, offline, rt, ErrAllBarrelsOffline
}
