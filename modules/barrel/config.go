package barrel

import (
	"flag"
)

// Config for a barrel.
type Config struct {
	Address  string `mapstructure:"address"`
	Filepath string `mapstructure:"filepath"`
}

// RegisterFlagsAndApplyDefaults registers flags and applies defaults.
func (cfg *Config) RegisterFlagsAndApplyDefaults(prefix string, f *flag.FlagSet) {
	f.StringVar(&cfg.Address, prefix+".address", "127.0.0.1:50052", "Listen address for the barrel grpc server.")
	f.StringVar(&cfg.Filepath, prefix+".filepath", "barrel.json", "Path of the JSON index snapshot.")
}
