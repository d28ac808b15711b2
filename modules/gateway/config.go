package gateway

import (
	"flag"
)

// Config for the gateway.
type Config struct {
	Address       string        `mapstructure:"address"`
	Queue         []string      `mapstructure:"queue"`
	Barrels       []string      `mapstructure:"barrels"`
	DomainsFilter DomainsFilter `mapstructure:"domains_filter"`
	Interactive   bool          `mapstructure:"interactive"`
}

type DomainsFilter struct {
	Whitelist []string `mapstructure:"whitelist"`
	Blacklist []string `mapstructure:"blacklist"`
}

// RegisterFlagsAndApplyDefaults registers flags and applies defaults.
func (cfg *Config) RegisterFlagsAndApplyDefaults(prefix string, f *flag.FlagSet) {
	f.StringVar(&cfg.Address, prefix+".address", "127.0.0.1:50051", "Listen address for the gateway grpc server.")
}
