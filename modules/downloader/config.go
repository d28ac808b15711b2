package downloader

import (
	"flag"
)

// Config for the downloader worker pool.
type Config struct {
	Workers   int      `mapstructure:"threads"`
	Gateway   string   `mapstructure:"gateway"`
	StopWords []string `mapstructure:"stop_words"`
}

// RegisterFlagsAndApplyDefaults registers flags and applies defaults.
func (cfg *Config) RegisterFlagsAndApplyDefaults(prefix string, f *flag.FlagSet) {
	f.IntVar(&cfg.Workers, prefix+".threads", 4, "Number of crawl workers.")
	f.StringVar(&cfg.Gateway, prefix+".gateway", "127.0.0.1:50051", "Address of the gateway to pull URLs from.")
}
