package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadDefaults(t *testing.T) {
	Convey("Given no overrides", t, func() {
		cfg, err := Load()

		Convey("Then defaults are returned", func() {
			So(err, ShouldBeNil)
			So(cfg, ShouldResemble, Default())
			So(cfg.IsDevelopment(), ShouldBeTrue)
		})
	})
}

func TestLoadEnvironment(t *testing.T) {
	Convey("Given environment overrides", t, func() {
		t.Setenv("ATTENDANCE_ADDR", ":9999")
		t.Setenv("ATTENDANCE_LOG_LEVEL", "debug")
		t.Setenv("ATTENDANCE_METRICS_ENABLED", "false")
		t.Setenv("ATTENDANCE_SHUTDOWN_TIMEOUT", "10s")
		t.Setenv("ATTENDANCE_ENVIRONMENT", "production")

		cfg, err := Load()

		Convey("Then they win over defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":9999")
			So(cfg.LogLevel, ShouldEqual, "debug")
			So(cfg.MetricsEnabled, ShouldBeFalse)
			So(cfg.DocsEnabled, ShouldBeTrue)
			So(cfg.ShutdownTimeout, ShouldEqual, 10*time.Second)
			So(cfg.IsDevelopment(), ShouldBeFalse)
		})
	})
}

func TestLoadFile(t *testing.T) {
	Convey("Given a YAML config file", t, func() {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "addr: \":7000\"\ndocs_enabled: false\nshutdown_timeout: 2s\n"
		So(os.WriteFile(path, []byte(content), 0o600), ShouldBeNil)
		t.Setenv("ATTENDANCE_CONFIG", path)

		Convey("Then file values are applied", func() {
			cfg, err := Load()
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":7000")
			So(cfg.DocsEnabled, ShouldBeFalse)
			So(cfg.ShutdownTimeout, ShouldEqual, 2*time.Second)
		})

		Convey("And environment still overrides the file", func() {
			t.Setenv("ATTENDANCE_ADDR", ":7001")
			cfg, err := Load()
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":7001")
		})
	})
}

func TestLoadMissingFile(t *testing.T) {
	Convey("Given a config file that does not exist", t, func() {
		t.Setenv("ATTENDANCE_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

		_, err := Load()

		Convey("Then loading fails with ErrLoadConfig", func() {
			So(errors.Is(err, ErrLoadConfig), ShouldBeTrue)
		})
	})
}

func TestLoadInvalidLevel(t *testing.T) {
	Convey("Given an invalid log level", t, func() {
		t.Setenv("ATTENDANCE_LOG_LEVEL", "chatty")

		_, err := Load()

		Convey("Then loading fails with ErrInvalidConfig", func() {
			So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Validate rejects unusable values", t, func() {
		cfg := Default()
		So(cfg.Validate(), ShouldBeNil)

		cfg.Addr = " "
		So(errors.Is(cfg.Validate(), ErrInvalidConfig), ShouldBeTrue)

		cfg = Default()
		cfg.ShutdownTimeout = 0
		So(errors.Is(cfg.Validate(), ErrInvalidConfig), ShouldBeTrue)
	})
}
