package service

import (
	"context"

	"github.com/ONSdigital/dp-api-clients-go/health"
	"github.com/ONSdigital/dp-frontend-dataset-index-controller/config"
	"github.com/ONSdigital/dp-frontend-dataset-index-controller/datasetindex"
	"github.com/ONSdigital/dp-frontend-dataset-index-controller/handlers"
	"github.com/ONSdigital/dp-frontend-dataset-index-controller/middleware"
	"github.com/ONSdigital/dp-frontend-dataset-index-controller/renderer"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// Service contains all the configs, server and clients to run the frontend dataset index controller
type Service struct {
	Config             *config.Config
	apiHealthClient    *health.Client
	HealthCheck        HealthChecker
	Server             HTTPServer
	DatasetIndexClient *datasetindex.Client
	Renderer           *renderer.Renderer
	ServiceList        *ExternalServiceList
}

// Run the service
func Run(ctx context.Context, cfg *config.Config, serviceList *ExternalServiceList, buildTime, gitCommit, version string, svcErrors chan error) (svc *Service, err error) {
	log.Info(ctx, "running service")

	// Initialise Service struct
	svc = &Service{
		Config:      cfg,
		ServiceList: serviceList,
	}

	// Get health client for the dataset index API
	svc.apiHealthClient = serviceList.GetHealthClient("dataset-index-api", cfg.DatasetIndexAPIURL)

	// Initialise clients. Page templates are parsed once at startup so a
	// broken template fails the service rather than the first request.
	svc.DatasetIndexClient = datasetindex.NewWithHealthClient(svc.apiHealthClient)
	svc.Renderer, err = renderer.New()
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse page templates")
	}

	// Get healthcheck with checkers
	svc.HealthCheck, err = serviceList.GetHealthCheck(cfg, buildTime, gitCommit, version)
	if err != nil {
		log.Fatal(ctx, "failed to create health check", err)
		return nil, err
	}
	if err := svc.registerCheckers(ctx); err != nil {
		return nil, errors.Wrap(err, "unable to register checkers")
	}

	// Initialise router
	router := mux.NewRouter()
	router.Use(middleware.RequestID, middleware.AccessLog)
	router.StrictSlash(true).Path("/health").HandlerFunc(svc.HealthCheck.Handler)

	router.StrictSlash(true).Path("/datasets").Methods("GET").HandlerFunc(handlers.DatasetIndexRender(svc.Renderer, svc.DatasetIndexClient))
	router.StrictSlash(true).Path("/datasets/data").Methods("GET").HandlerFunc(handlers.DatasetIndexData(svc.DatasetIndexClient))

	svc.Server = serviceList.GetHTTPServer(cfg.BindAddr, router)

	// Start Healthcheck and HTTP Server
	svc.HealthCheck.Start(ctx)
	go func() {
		if err := svc.Server.ListenAndServe(); err != nil {
			svcErrors <- errors.Wrap(err, "failure in http listen and serve")
		}
	}()

	return svc, nil
}

// Close gracefully shuts the service down in the required order, with timeout
func (svc *Service) Close(ctx context.Context) error {
	timeout := svc.Config.GracefulShutdownTimeout
	log.Info(ctx, "commencing graceful shutdown", log.Data{"graceful_shutdown_timeout": timeout})
	ctx, cancel := context.WithTimeout(ctx, timeout)
	hasShutdownError := false

	go func() {
		defer cancel()

		// stop healthcheck, as it depends on everything else
		if svc.ServiceList.HealthCheck {
			svc.HealthCheck.Stop()
		}

		// stop any incoming requests
		if err := svc.Server.Shutdown(ctx); err != nil {
			log.Error(ctx, "failed to shutdown http server", err)
			hasShutdownError = true
		}
	}()

	// wait for shutdown success (via cancel) or failure (timeout)
	<-ctx.Done()

	// timeout expired
	if ctx.Err() == context.DeadlineExceeded {
		log.Error(ctx, "shutdown timed out", ctx.Err())
		return ctx.Err()
	}

	// other error
	if hasShutdownError {
		err := errors.New("failed to shutdown gracefully")
		log.Error(ctx, "failed to shutdown gracefully ", err)
		return err
	}

	log.Info(ctx, "graceful shutdown was successful")
	return nil
}

func (svc *Service) registerCheckers(ctx context.Context) (err error) {

	hasErrors := false

	if err = svc.HealthCheck.AddCheck("dataset index API", svc.apiHealthClient.Checker); err != nil {
		hasErrors = true
		log.Error(ctx, "failed to add dataset index API checker", err)
	}

	if hasErrors {
		return errors.New("Error(s) registering checkers for healthcheck")
	}
	return nil
}
