package web

import (
	"flag"
)

// Config for the HTTP edge.
type Config struct {
	Address        string `mapstructure:"address"`
	GatewayAddress string `mapstructure:"gateway_address"`
}

// RegisterFlagsAndApplyDefaults registers flags and applies defaults.
func (cfg *Config) RegisterFlagsAndApplyDefaults(prefix string, f *flag.FlagSet) {
	f.StringVar(&cfg.Address, prefix+".address", "127.0.0.1:8080", "Listen address for the HTTP edge.")
	f.StringVar(&cfg.GatewayAddress, prefix+".gateway-address", "127.0.0.1:50051", "Address of the upstream gateway.")
}
