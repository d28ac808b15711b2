package main

import (
	"context"
	"fmt"

	"github.com/googol-search/googol/pkg/googolpb"
)

type consultCmd struct {
	Backlinks consultBacklinksCmd `cmd:"" help:"List the URLs linking to a URL."`
	Outlinks  consultOutlinksCmd  `cmd:"" help:"List the URLs a URL links to."`
}

type consultBacklinksCmd struct {
	Url string `arg:"" help:"URL to inspect."`
}

func (cmd *consultBacklinksCmd) Run(opts *globalOptions) error {
	ctx := context.Background()
	client, conn, err := dialGateway(ctx, opts)
	if err != nil {
		return err
	}
	defer conn.Close()

	resp, err := client.ConsultBacklinks(ctx, &googolpb.BacklinksRequest{Url: cmd.Url})
	if err != nil {
		return err
	}

	fmt.Println("status:", resp.GetStatus())
	for _, u := range resp.GetBacklinks() {
		fmt.Println("  ", u)
	}
	return nil
}

type consultOutlinksCmd struct {
	Url string `arg:"" help:"URL to inspect."`
}

func (cmd *consultOutlinksCmd) Run(opts *globalOptions) error {
	ctx := context.Background()
	client, conn, err := dialGateway(ctx, opts)
	if err != nil {
		return err
	}
	defer conn.Close()

	resp, err := client.ConsultOutlinks(ctx, &googolpb.OutlinksRequest{Url: cmd.Url})
	if err != nil {
		return err
	}

	fmt.Println("status:", resp.GetStatus())
	for _, u := range resp.GetOutlinks() {
		fmt.Println("  ", u)
	}
	return nil
}
