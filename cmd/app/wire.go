//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/cosmic-rhythm/internal/bootstrap"
	"github.com/yanqian/cosmic-rhythm/internal/infra/config"
	httpiface "github.com/yanqian/cosmic-rhythm/internal/interface/http"
	"github.com/yanqian/cosmic-rhythm/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		bootstrap.NewEngines,
		provideBiorhythmService,
		provideMayaService,
		provideDressService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
