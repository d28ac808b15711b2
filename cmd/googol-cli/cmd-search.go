package main

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/googol-search/googol/pkg/googolpb"
)

type searchCmd struct {
	Words []string `arg:"" help:"Keywords; results contain every one of them."`
}

func (cmd *searchCmd) Run(opts *globalOptions) error {
	ctx := context.Background()
	client, conn, err := dialGateway(ctx, opts)
	if err != nil {
		return err
	}
	defer conn.Close()

	resp, err := client.Search(ctx, &googolpb.SearchRequest{Words: cmd.Words})
	if err != nil {
		return err
	}

	if resp.GetStatus() != googolpb.GoogolStatus_SUCCESS {
		fmt.Println("status:", resp.GetStatus())
		return nil
	}

	out := make([][]string, 0, len(resp.GetPages()))
	for _, p := range resp.GetPages() {
		out = append(out, []string{p.GetUrl(), p.GetTitle(), p.GetCategory()})
	}

	w := tablewriter.NewWriter(os.Stdout)
	w.SetHeader([]string{"url", "title", "category"})
	w.AppendBulk(out)
	w.Render()
	return nil
}
