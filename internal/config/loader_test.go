package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/sibyl/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad_Defaults(t *testing.T) {
	Convey("Given no configuration sources", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then defaults should be returned", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":8000")
			So(cfg.ModelDimension, ShouldEqual, 10)
			So(cfg.DefaultModel, ShouldEqual, "linear")
		})
	})
}

func TestLoad_EnvOverrides(t *testing.T) {
	Convey("Given SIBYL_ environment variables", t, func() {
		t.Setenv("SIBYL_ADDR", ":9090")
		t.Setenv("SIBYL_LOG_LEVEL", "debug")
		t.Setenv("SIBYL_MODEL_DIMENSION", "16")
		t.Setenv("SIBYL_MODEL_SEED", "42")

		cfg, err := config.Load(context.Background())

		Convey("Then env values should override defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":9090")
			So(cfg.LogLevel, ShouldEqual, "debug")
			So(cfg.ModelDimension, ShouldEqual, 16)
			So(cfg.ModelSeed, ShouldEqual, 42)
		})
	})
}

func TestLoad_PortOverride(t *testing.T) {
	Convey("Given PORT and SIBYL_ADDR are both set", t, func() {
		t.Setenv("SIBYL_ADDR", ":9090")
		t.Setenv("PORT", "8123")

		cfg, err := config.Load(context.Background())

		Convey("Then PORT should win", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":8123")
		})
	})
}

func TestLoad_File(t *testing.T) {
	Convey("Given a YAML config file referenced by SIBYL_CONFIG", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "sibyl.yaml")
		yaml := []byte("addr: \":7070\"\nmodel_dimension: 8\ndefault_model: linear\n")
		So(os.WriteFile(path, yaml, 0o600), ShouldBeNil)
		t.Setenv("SIBYL_CONFIG", path)

		Convey("When loading", func() {
			cfg, err := config.Load(context.Background())

			Convey("Then file values should override defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":7070")
				So(cfg.ModelDimension, ShouldEqual, 8)
			})
		})

		Convey("When env vars are also set", func() {
			t.Setenv("SIBYL_MODEL_DIMENSION", "12")

			cfg, err := config.Load(context.Background())

			Convey("Then env should override the file", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":7070")
				So(cfg.ModelDimension, ShouldEqual, 12)
			})
		})
	})

	Convey("Given SIBYL_CONFIG points at a missing file", t, func() {
		t.Setenv("SIBYL_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

		_, err := config.Load(context.Background())

		Convey("Then loading should fail with the load kind", func() {
			So(err, ShouldNotBeNil)
			So(errors.Is(err, config.ErrLoadConfig), ShouldBeTrue)
		})
	})
}

func TestLoad_Validation(t *testing.T) {
	Convey("Given an invalid model dimension", t, func() {
		t.Setenv("SIBYL_MODEL_DIMENSION", "0")

		_, err := config.Load(context.Background())

		Convey("Then loading should fail with the invalid kind", func() {
			So(err, ShouldNotBeNil)
			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
		})
	})

	Convey("Given an empty default model", t, func() {
		t.Setenv("SIBYL_DEFAULT_MODEL", "   ")

		_, err := config.Load(context.Background())

		Convey("Then loading should fail with the invalid kind", func() {
			So(err, ShouldNotBeNil)
			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
		})
	})
}
