package main

import (
	"context"
	"fmt"

	"github.com/googol-search/googol/pkg/googolpb"
)

type healthCmd struct{}

func (cmd *healthCmd) Run(opts *globalOptions) error {
	ctx := context.Background()
	client, conn, err := dialGateway(ctx, opts)
	if err != nil {
		return err
	}
	defer conn.Close()

	resp, err := client.Health(ctx, &googolpb.HealthRequest{})
	if err != nil {
		return err
	}

	fmt.Println(resp.GetStatus())
	return nil
}
