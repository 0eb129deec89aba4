package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ONSdigital/dp-frontend-dataset-index-controller/config"
	"github.com/ONSdigital/dp-frontend-dataset-index-controller/service"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const serviceName = "dp-frontend-dataset-index-controller"

var (
	// BuildTime represents the time in which the service was built
	BuildTime string
	// GitCommit represents the commit of this application
	GitCommit string
	// Version represents the version of the application
	Version string
)

func main() {
	log.Namespace = serviceName
	ctx := context.Background()

	if err := run(ctx); err != nil {
		log.Fatal(ctx, "fatal runtime error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	// local overrides only, deployed environments configure through real
	// environment variables
	if err := godotenv.Load(); err == nil {
		log.Info(ctx, "loaded local .env file")
	}

	cfg, err := config.Get()
	if err != nil {
		return errors.Wrap(err, "unable to retrieve service configuration")
	}
	log.Info(ctx, "got service configuration", log.Data{"config": cfg})

	// Start service
	svcErrors := make(chan error, 1)
	svcList := service.NewServiceList(&service.Init{})
	svc, err := service.Run(ctx, cfg, svcList, BuildTime, GitCommit, Version, svcErrors)
	if err != nil {
		return errors.Wrap(err, "running service failed")
	}

	// Blocks until an os interrupt or a fatal error occurs
	select {
	case err := <-svcErrors:
		log.Error(ctx, "service error received", err)
	case sig := <-signals:
		log.Info(ctx, "os signal received", log.Data{"signal": sig.String()})
	}

	return svc.Close(ctx)
}
