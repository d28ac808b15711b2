package app

import (
	"flag"

	"github.com/googol-search/googol/modules/barrel"
	"github.com/googol-search/googol/modules/downloader"
	"github.com/googol-search/googol/modules/gateway"
	"github.com/googol-search/googol/modules/web"
)

// Config is the root configuration: the target module plus one section
// per role, mirroring the TOML layout.
type Config struct {
	Target    string `mapstructure:"target"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	Gateway    gateway.Config    `mapstructure:"gateway"`
	Barrel     barrel.Config     `mapstructure:"barrel"`
	Downloader downloader.Config `mapstructure:"downloader"`
	Web        web.Config        `mapstructure:"web_server"`
}

// RegisterFlagsAndApplyDefaults registers flags and applies defaults.
func (c *Config) RegisterFlagsAndApplyDefaults(prefix string, f *flag.FlagSet) {
	c.Target = SingleBinary
	f.StringVar(&c.Target, "target", SingleBinary, "Module to run: gateway, barrel, downloader, web, all.")
	f.StringVar(&c.LogLevel, "log.level", "info", "Log level: debug, info, warn, error.")
	f.StringVar(&c.LogFormat, "log.format", "logfmt", "Log format: logfmt or json.")

	c.Gateway.RegisterFlagsAndApplyDefaults("gateway", f)
	c.Barrel.RegisterFlagsAndApplyDefaults("barrel", f)
	c.Downloader.RegisterFlagsAndApplyDefaults("downloader", f)
	c.Web.RegisterFlagsAndApplyDefaults("web-server", f)
}

// CheckConfig warns about configurations that are valid but suspect.
func (c *Config) CheckConfig() []string {
	var warnings []string
	if (c.Target == Gateway || c.Target == SingleBinary) && len(c.Gateway.Barrels) == 0 {
		warnings = append(warnings, "gateway has no barrels configured, index writes will be lost and searches will fail")
	}
	if c.Target == Downloader && c.Downloader.Workers <= 0 {
		warnings = append(warnings, "downloader has no workers configured, nothing will be crawled")
	}
	return warnings
}
