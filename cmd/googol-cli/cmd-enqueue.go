package main

import (
	"context"
	"fmt"

	"github.com/googol-search/googol/pkg/googolpb"
)

type enqueueCmd struct {
	Url string `arg:"" help:"Absolute URL to enqueue."`
}

func (cmd *enqueueCmd) Run(opts *globalOptions) error {
	ctx := context.Background()
	client, conn, err := dialGateway(ctx, opts)
	if err != nil {
		return err
	}
	defer conn.Close()

	resp, err := client.EnqueueUrl(ctx, &googolpb.EnqueueRequest{Url: cmd.Url})
	if err != nil {
		return err
	}

	fmt.Println("status:", resp.GetStatus())
	fmt.Printf("queue (%d):\n", len(resp.GetQueue()))
	for _, u := range resp.GetQueue() {
		fmt.Println("  ", u)
	}
	return nil
}
