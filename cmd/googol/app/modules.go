package app

import (
	"github.com/grafana/dskit/modules"
	"github.com/grafana/dskit/services"

	"github.com/googol-search/googol/modules/barrel"
	"github.com/googol-search/googol/modules/downloader"
	"github.com/googol-search/googol/modules/gateway"
	"github.com/googol-search/googol/modules/web"
	"github.com/googol-search/googol/pkg/util/log"
)

// The various modules that make up googol.
const (
	Gateway      string = "gateway"
	Barrel       string = "barrel"
	Downloader   string = "downloader"
	Web          string = "web"
	SingleBinary string = "all"
)

func (t *App) initGateway() (services.Service, error) {
	return gateway.New(t.cfg.Gateway, log.Logger), nil
}

func (t *App) initBarrel() (services.Service, error) {
	return barrel.New(t.cfg.Barrel, log.Logger)
}

func (t *App) initDownloader() (services.Service, error) {
	return downloader.New(t.cfg.Downloader, log.Logger), nil
}

func (t *App) initWeb() (services.Service, error) {
	return web.New(t.cfg.Web, log.Logger), nil
}

func (t *App) setupModuleManager() error {
	mm := modules.NewManager(log.Logger)

	mm.RegisterModule(Gateway, t.initGateway)
	mm.RegisterModule(Barrel, t.initBarrel)
	mm.RegisterModule(Downloader, t.initDownloader)
	mm.RegisterModule(Web, t.initWeb)
	mm.RegisterModule(SingleBinary, nil)

	deps := map[string][]string{
		SingleBinary: {Gateway, Barrel, Downloader, Web},
	}
	for mod, targets := range deps {
		if err := mm.AddDependency(mod, targets...); err != nil {
			return err
		}
	}

	t.moduleManager = mm
	return nil
}
