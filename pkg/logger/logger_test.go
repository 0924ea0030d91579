package logger_test

import (
	"context"
	"testing"

	"github.com/okian/sibyl/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoggerInit(t *testing.T) {
	Convey("Given an uninitialized logger package", t, func() {
		Convey("When Init is called", func() {
			err := logger.Init()

			Convey("Then it should succeed", func() {
				So(err, ShouldBeNil)
			})

			Convey("And Get should return a usable logger", func() {
				l := logger.Get()
				So(l, ShouldNotBeNil)
				So(func() {
					l.Info(context.Background(), "hello", logger.String("k", "v"))
				}, ShouldNotPanic)
			})

			Convey("And Named should return a component logger", func() {
				l := logger.Named("test")
				So(l, ShouldNotBeNil)
				So(func() {
					l.Debug(context.Background(), "debug line", logger.Int("n", 1))
				}, ShouldNotPanic)
			})

			Convey("And Sync should be a no-op", func() {
				So(logger.Sync(), ShouldBeNil)
			})
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given an initialized logger", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("When setting known levels", func() {
			for _, lvl := range []string{"debug", "info", "warn", "warning", "error", "", "  INFO "} {
				So(logger.SetLevelString(lvl), ShouldBeNil)
			}
		})

		Convey("When setting an unknown level", func() {
			err := logger.SetLevelString("loud")

			Convey("Then it should fail", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "unknown log level")
			})
		})
	})
}

func TestFieldConstructors(t *testing.T) {
	Convey("Given the field constructors", t, func() {
		Convey("Then they should carry key and value", func() {
			So(logger.String("a", "b").Key, ShouldEqual, "a")
			So(logger.Int("n", 3).Value, ShouldEqual, 3)
			So(logger.Int64("n64", 4).Value, ShouldEqual, int64(4))
			So(logger.Float64("f", 1.5).Value, ShouldEqual, 1.5)
			So(logger.Any("x", true).Value, ShouldEqual, true)
			So(logger.Error(nil).Key, ShouldEqual, "error")
		})
	})
}
