package main

import (
	"context"
	"time"

	"github.com/grafana/dskit/backoff"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/googol-search/googol/pkg/googolpb"
)

// dialGateway connects to the gateway, probing it with doubling backoff
// from 1s for up to opts.Retries attempts. The caller closes the conn.
func dialGateway(ctx context.Context, opts *globalOptions) (googolpb.GatewayServiceClient, *grpc.ClientConn, error) {
	conn, err := grpc.NewClient(opts.Address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, errors.Wrapf(err, "creating client for %s", opts.Address)
	}
	client := googolpb.NewGatewayServiceClient(conn)

	bo := backoff.New(ctx, backoff.Config{
		MinBackoff: time.Second,
		MaxBackoff: 60 * time.Second,
		MaxRetries: opts.Retries,
	})

	var lastErr error
	for bo.Ongoing() {
		if _, lastErr = client.Health(ctx, &googolpb.HealthRequest{}); lastErr == nil {
			return client, conn, nil
		}
		bo.Wait()
	}

	_ = conn.Close()
	return nil, nil, errors.Wrapf(lastErr, "gateway %s unreachable after %d attempts", opts.Address, opts.Retries)
}
