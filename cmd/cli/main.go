package main

import (
	"os"

	"github.com/amirasaad/exchange/infra/initializer"
	"github.com/amirasaad/exchange/pkg/app"
	"github.com/amirasaad/exchange/pkg/config"
	"github.com/fatih/color"
)

func main() {
	var deps *app.Deps
	load := func() (*app.App, error) {
		cfg, err := config.Load(".env")
		if err != nil {
			return nil, err
		}
		deps, err = initializer.InitializeDependencies(cfg)
		if err != nil {
			return nil, err
		}
		return app.New(deps, cfg), nil
	}

	err := newRootCmd(load).Execute()
	if deps != nil {
		_ = initializer.Shutdown(deps)
	}
	if err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
