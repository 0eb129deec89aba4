package config

import (
	"os"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGet(t *testing.T) {

	Convey("Given an environment with no configuration set", t, func() {
		os.Clearenv()
		cfg, err := Get()

		Convey("When the config values are retrieved", func() {

			Convey("Then there should be no error returned", func() {
				So(err, ShouldBeNil)
			})

			Convey("Then the values should be set to the expected defaults", func() {
				So(cfg.BindAddr, ShouldEqual, ":24600")
				So(cfg.DatasetIndexAPIURL, ShouldEqual, "http://localhost:23200/v1")
				So(cfg.GracefulShutdownTimeout, ShouldEqual, 5*time.Second)
				So(cfg.HealthCheckInterval, ShouldEqual, 30*time.Second)
				So(cfg.HealthCheckCriticalTimeout, ShouldEqual, 90*time.Second)
			})

			Convey("Then a second call returns the same config", func() {
				secondCfg, err := Get()
				So(err, ShouldBeNil)
				So(secondCfg, ShouldEqual, cfg)
			})
		})
	})
}
