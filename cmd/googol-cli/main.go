package main

import (
	"github.com/alecthomas/kong"
	"google.golang.org/grpc/encoding"

	"github.com/googol-search/googol/pkg/gogocodec"
)

type globalOptions struct {
	Address string `help:"Gateway address." default:"127.0.0.1:50051"`
	Retries int    `help:"Connection attempts before giving up." default:"5"`
}

var cli struct {
	globalOptions

	Enqueue        enqueueCmd        `cmd:"" help:"Admit a URL into the crawl frontier."`
	Search         searchCmd         `cmd:"" help:"Run a ranked keyword search."`
	Consult        consultCmd        `cmd:"" help:"Inspect the link graph of a URL."`
	Health         healthCmd         `cmd:"" help:"Probe the gateway."`
	RealTimeStatus realTimeStatusCmd `cmd:"" name:"real-time-status" help:"Stream the live status aggregate."`
}

func init() {
	encoding.RegisterCodec(gogocodec.NewCodec())
}

func main() {
	ctx := kong.Parse(&cli, kong.UsageOnError())
	err := ctx.Run(&cli.globalOptions)
	ctx.FatalIfErrorf(err)
}
