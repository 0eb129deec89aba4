package service_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/ONSdigital/dp-api-clients-go/health"
	"github.com/ONSdigital/dp-frontend-dataset-index-controller/config"
	"github.com/ONSdigital/dp-frontend-dataset-index-controller/service"
	"github.com/ONSdigital/dp-frontend-dataset-index-controller/service/mock"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	. "github.com/smartystreets/goconvey/convey"
)

var (
	ctx           = context.Background()
	testBuildTime = "BuildTime"
	testGitCommit = "GitCommit"
	testVersion   = "Version"
)

var (
	errServer      = errors.New("HTTP Server error")
	errHealthcheck = errors.New("could not get healthcheck")
	errAddCheck    = errors.New("could not add check")
)

func TestRun(t *testing.T) {

	Convey("Having a set of mocked dependencies", t, func() {

		cfg, err := config.Get()
		So(err, ShouldBeNil)

		hcMock := &mock.HealthCheckerMock{
			AddCheckFunc: func(name string, checker healthcheck.Checker) error { return nil },
			StartFunc:    func(ctx context.Context) {},
		}

		serverWg := &sync.WaitGroup{}
		serverMock := &mock.HTTPServerMock{
			ListenAndServeFunc: func() error {
				serverWg.Done()
				return nil
			},
		}

		funcDoGetHealthcheckOk := func(cfg *config.Config, buildTime, gitCommit, version string) (service.HealthChecker, error) {
			return hcMock, nil
		}
		funcDoGetHTTPServer := func(bindAddr string, router http.Handler) service.HTTPServer {
			return serverMock
		}
		funcDoGetHealthClient := func(name, url string) *health.Client {
			return &health.Client{
				URL:  url,
				Name: name,
			}
		}

		Convey("Given that initialising healthcheck returns an error", func() {
			initMock := &mock.InitialiserMock{
				DoGetHealthCheckFunc: func(cfg *config.Config, buildTime, gitCommit, version string) (service.HealthChecker, error) {
					return nil, errHealthcheck
				},
				DoGetHealthClientFunc: funcDoGetHealthClient,
			}
			svcErrors := make(chan error, 1)
			svcList := service.NewServiceList(initMock)
			_, err := service.Run(ctx, cfg, svcList, testBuildTime, testGitCommit, testVersion, svcErrors)

			Convey("Then service Run fails with the same error and the HealthCheck flag is not set", func() {
				So(err, ShouldResemble, errHealthcheck)
				So(svcList.HealthCheck, ShouldBeFalse)
			})
		})

		Convey("Given that registering a checker fails", func() {
			failingHcMock := &mock.HealthCheckerMock{
				AddCheckFunc: func(name string, checker healthcheck.Checker) error { return errAddCheck },
				StartFunc:    func(ctx context.Context) {},
			}
			initMock := &mock.InitialiserMock{
				DoGetHealthCheckFunc: func(cfg *config.Config, buildTime, gitCommit, version string) (service.HealthChecker, error) {
					return failingHcMock, nil
				},
				DoGetHealthClientFunc: funcDoGetHealthClient,
			}
			svcErrors := make(chan error, 1)
			svcList := service.NewServiceList(initMock)
			_, err := service.Run(ctx, cfg, svcList, testBuildTime, testGitCommit, testVersion, svcErrors)

			Convey("Then service Run fails, but the HealthCheck flag is already set", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "unable to register checkers")
				So(svcList.HealthCheck, ShouldBeTrue)
				So(len(failingHcMock.AddCheckCalls()), ShouldEqual, 1)
			})
		})

		Convey("Given that all dependencies are successfully initialised", func() {
			initMock := &mock.InitialiserMock{
				DoGetHTTPServerFunc:   funcDoGetHTTPServer,
				DoGetHealthCheckFunc:  funcDoGetHealthcheckOk,
				DoGetHealthClientFunc: funcDoGetHealthClient,
			}
			svcErrors := make(chan error, 1)
			svcList := service.NewServiceList(initMock)
			serverWg.Add(1)
			svc, err := service.Run(ctx, cfg, svcList, testBuildTime, testGitCommit, testVersion, svcErrors)
			So(err, ShouldBeNil)
			So(svc, ShouldNotBeNil)

			Convey("Then the HealthCheck flag is set and the dataset index API checker is registered", func() {
				So(svcList.HealthCheck, ShouldBeTrue)
				So(len(hcMock.AddCheckCalls()), ShouldEqual, 1)
				So(hcMock.AddCheckCalls()[0].Name, ShouldEqual, "dataset index API")
			})

			Convey("Then the server is initialised with the configured bind address", func() {
				So(len(initMock.DoGetHTTPServerCalls()), ShouldEqual, 1)
				So(initMock.DoGetHTTPServerCalls()[0].BindAddr, ShouldEqual, ":24600")
			})

			Convey("Then the healthcheck is started and the server is listening", func() {
				So(len(hcMock.StartCalls()), ShouldEqual, 1)
				serverWg.Wait()
				So(len(serverMock.ListenAndServeCalls()), ShouldEqual, 1)
			})
		})

		Convey("Given that the HTTP server fails", func() {
			failingServerMock := &mock.HTTPServerMock{
				ListenAndServeFunc: func() error {
					serverWg.Done()
					return errServer
				},
			}
			initMock := &mock.InitialiserMock{
				DoGetHTTPServerFunc: func(bindAddr string, router http.Handler) service.HTTPServer {
					return failingServerMock
				},
				DoGetHealthCheckFunc:  funcDoGetHealthcheckOk,
				DoGetHealthClientFunc: funcDoGetHealthClient,
			}
			svcErrors := make(chan error, 1)
			svcList := service.NewServiceList(initMock)
			serverWg.Add(1)
			_, err := service.Run(ctx, cfg, svcList, testBuildTime, testGitCommit, testVersion, svcErrors)
			So(err, ShouldBeNil)

			Convey("Then the error is reported to the service error channel", func() {
				serverWg.Wait()
				sErr := <-svcErrors
				So(sErr.Error(), ShouldContainSubstring, errServer.Error())
				So(len(failingServerMock.ListenAndServeCalls()), ShouldEqual, 1)
			})
		})
	})
}

func TestClose(t *testing.T) {

	Convey("Having a correctly initialised service", t, func() {

		cfg, err := config.Get()
		So(err, ShouldBeNil)

		hcStopped := false

		hcMock := &mock.HealthCheckerMock{
			AddCheckFunc: func(name string, checker healthcheck.Checker) error { return nil },
			StartFunc:    func(ctx context.Context) {},
			StopFunc:     func() { hcStopped = true },
		}

		// server Shutdown will fail if healthcheck is not stopped first
		serverMock := &mock.HTTPServerMock{
			ListenAndServeFunc: func() error { return nil },
			ShutdownFunc: func(ctx context.Context) error {
				if !hcStopped {
					return errors.New("server stopped before healthcheck")
				}
				return nil
			},
		}

		initMock := &mock.InitialiserMock{
			DoGetHTTPServerFunc: func(bindAddr string, router http.Handler) service.HTTPServer {
				return serverMock
			},
			DoGetHealthCheckFunc: func(cfg *config.Config, buildTime, gitCommit, version string) (service.HealthChecker, error) {
				return hcMock, nil
			},
			DoGetHealthClientFunc: func(name, url string) *health.Client {
				return &health.Client{
					URL:  url,
					Name: name,
				}
			},
		}

		svcErrors := make(chan error, 1)
		svcList := service.NewServiceList(initMock)
		svc, err := service.Run(ctx, cfg, svcList, testBuildTime, testGitCommit, testVersion, svcErrors)
		So(err, ShouldBeNil)

		Convey("Closing the service stops the healthcheck and the server, in that order", func() {
			err := svc.Close(context.Background())
			So(err, ShouldBeNil)
			So(len(hcMock.StopCalls()), ShouldEqual, 1)
			So(len(serverMock.ShutdownCalls()), ShouldEqual, 1)
		})

		Convey("If the server fails to shutdown, Close fails with the expected error", func() {
			serverMock.ShutdownFunc = func(ctx context.Context) error {
				return errors.New("failed to shutdown http server")
			}
			err := svc.Close(context.Background())
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "failed to shutdown gracefully")
			So(len(hcMock.StopCalls()), ShouldEqual, 1)
			So(len(serverMock.ShutdownCalls()), ShouldEqual, 1)
		})

		Convey("If the shutdown takes longer than the timeout, Close fails with context.DeadlineExceeded", func() {
			cfg.GracefulShutdownTimeout = 1 * time.Millisecond
			serverMock.ShutdownFunc = func(ctx context.Context) error {
				time.Sleep(200 * time.Millisecond)
				return nil
			}
			err := svc.Close(context.Background())
			So(err, ShouldResemble, context.DeadlineExceeded)
		})
	})
}
