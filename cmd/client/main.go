package main

import (
	"fmt"

	"github.com/MKhiriev/go-query-export/internal/adapter"
	"github.com/MKhiriev/go-query-export/internal/client"
	"github.com/MKhiriev/go-query-export/internal/config"
	"github.com/MKhiriev/go-query-export/internal/logger"
	"github.com/MKhiriev/go-query-export/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("query-export")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	queryAPI, err := adapter.NewHTTPQueryAPI(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create query api adapter")
	}

	params, err := client.RunParamsFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("build run parameters")
	}

	app, err := client.NewApp(service.NewQueryService(queryAPI, params, log), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
