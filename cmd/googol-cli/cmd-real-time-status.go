package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/googol-search/googol/pkg/googolpb"
)

type realTimeStatusCmd struct {
	Once bool `help:"Print one snapshot instead of streaming."`
}

// Run prints one status frame per state transition at the gateway, until
// interrupted.
func (cmd *realTimeStatusCmd) Run(opts *globalOptions) error {
	ctx := context.Background()
	client, conn, err := dialGateway(ctx, opts)
	if err != nil {
		return err
	}
	defer conn.Close()

	for {
		resp, err := client.RealTimeStatus(ctx, &googolpb.RealTimeStatusRequest{})
		if err != nil {
			return err
		}

		printStatus(resp)
		if cmd.Once {
			return nil
		}
	}
}

func printStatus(resp *googolpb.RealTimeStatusResponse) {
	fmt.Printf("avg response time: %.2fms\n", resp.GetAvgResponseTimeMs())
	fmt.Println("top searches:", strings.Join(resp.GetTop10Searches(), ", "))
	fmt.Printf("queue (%d):\n", len(resp.GetQueue()))
	for _, u := range resp.GetQueue() {
		fmt.Println("  ", u)
	}

	out := make([][]string, 0, len(resp.GetBarrels()))
	for _, b := range resp.GetBarrels() {
		state := "offline"
		if b.GetOnline() {
			state = "online"
		}
		out = append(out, []string{b.GetAddress(), state, humanize.Bytes(b.GetIndexSizeBytes())})
	}

	w := tablewriter.NewWriter(os.Stdout)
	w.SetHeader([]string{"barrel", "state", "index size"})
	w.AppendBulk(out)
	w.Render()
	fmt.Println()
}
