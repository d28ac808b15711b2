package app

import (
	"flag"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}
	fs := flag.NewFlagSet("test", flag.PanicOnError)
	cfg.RegisterFlagsAndApplyDefaults("", fs)

	assert.Equal(t, SingleBinary, cfg.Target)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "logfmt", cfg.LogFormat)
	assert.Equal(t, "127.0.0.1:50051", cfg.Gateway.Address)
	assert.Equal(t, "127.0.0.1:50052", cfg.Barrel.Address)
	assert.Equal(t, 4, cfg.Downloader.Workers)
	assert.Equal(t, "127.0.0.1:8080", cfg.Web.Address)
}

func TestConfigFromTOML(t *testing.T) {
	const doc = `
target = "gateway"
log_level = "debug"

[gateway]
address = "0.0.0.0:4000"
queue = ["https://seed.example/"]
barrels = ["10.0.0.1:4001", "10.0.0.2:4001"]

[gateway.domains_filter]
blacklist = ["bad.example"]

[barrel]
address = "0.0.0.0:4001"
filepath = "/var/lib/googol/barrel.json"

[downloader]
threads = 8
gateway = "10.0.0.9:4000"
stop_words = ["the", "a"]

[web_server]
address = "0.0.0.0:8080"
gateway_address = "10.0.0.9:4000"
`

	cfg := &Config{}
	fs := flag.NewFlagSet("test", flag.PanicOnError)
	cfg.RegisterFlagsAndApplyDefaults("", fs)

	v := viper.New()
	v.SetConfigType("toml")
	require.NoError(t, v.ReadConfig(strings.NewReader(doc)))
	require.NoError(t, v.Unmarshal(cfg))

	assert.Equal(t, "gateway", cfg.Target)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "0.0.0.0:4000", cfg.Gateway.Address)
	assert.Equal(t, []string{"https://seed.example/"}, cfg.Gateway.Queue)
	assert.Equal(t, []string{"10.0.0.1:4001", "10.0.0.2:4001"}, cfg.Gateway.Barrels)
	assert.Equal(t, []string{"bad.example"}, cfg.Gateway.DomainsFilter.Blacklist)
	assert.Equal(t, "/var/lib/googol/barrel.json", cfg.Barrel.Filepath)
	assert.Equal(t, 8, cfg.Downloader.Workers)
	assert.Equal(t, []string{"the", "a"}, cfg.Downloader.StopWords)
	assert.Equal(t, "0.0.0.0:8080", cfg.Web.Address)
	assert.Equal(t, "10.0.0.9:4000", cfg.Web.GatewayAddress)
}

func TestCheckConfig(t *testing.T) {
	cfg := &Config{}
	fs := flag.NewFlagSet("test", flag.PanicOnError)
	cfg.RegisterFlagsAndApplyDefaults("", fs)

	// single binary with no barrels is suspect
	require.Len(t, cfg.CheckConfig(), 1)

	cfg.Gateway.Barrels = []string{"127.0.0.1:50052"}
	require.Empty(t, cfg.CheckConfig())
}
