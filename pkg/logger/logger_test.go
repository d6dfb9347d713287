package logger_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/okian/trendnote/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given a logger writing to a buffer", t, func() {
		var buf bytes.Buffer
		So(logger.InitWithWriter(&buf), ShouldBeNil)
		log := logger.Get()
		ctx := context.Background()

		Convey("When logging at info level with fields", func() {
			log.Info(ctx, "pipeline run finished",
				logger.String("stage", "rank"),
				logger.Int("topics", 5),
				logger.Float64("heat", 21.81),
			)

			out := buf.String()

			Convey("Then the message and fields appear in the output", func() {
				So(out, ShouldContainSubstring, "pipeline run finished")
				So(out, ShouldContainSubstring, "stage=rank")
				So(out, ShouldContainSubstring, "topics=5")
				So(out, ShouldContainSubstring, "level=INFO")
			})
		})

		Convey("When logging below the configured level", func() {
			log.Debug(ctx, "hidden detail")

			Convey("Then nothing is written", func() {
				So(buf.String(), ShouldNotContainSubstring, "hidden detail")
			})
		})

		Convey("When the level is lowered to debug", func() {
			So(logger.SetLevelString("debug"), ShouldBeNil)
			log.Debug(ctx, "now visible")

			Convey("Then debug messages are written", func() {
				So(buf.String(), ShouldContainSubstring, "now visible")
			})
		})

		Convey("When logging an error field", func() {
			log.Error(ctx, "stage failed", logger.Error(errors.New("boom")))

			Convey("Then the error text appears", func() {
				So(buf.String(), ShouldContainSubstring, "boom")
				So(buf.String(), ShouldContainSubstring, "level=ERROR")
			})
		})

		Convey("When using a named logger", func() {
			logger.Named("worker").Warn(ctx, "slow task", logger.Int("ms", 900))

			Convey("Then the group prefixes its fields", func() {
				So(buf.String(), ShouldContainSubstring, "worker.ms=900")
			})
		})
	})

	Convey("Given level parsing", t, func() {
		So(logger.InitWithWriter(&bytes.Buffer{}), ShouldBeNil)

		Convey("Then known names are accepted", func() {
			for _, lvl := range []string{"debug", "info", "warn", "warning", "error", "ERROR", " info "} {
				So(logger.SetLevelString(lvl), ShouldBeNil)
			}
		})

		Convey("Then unknown names are rejected", func() {
			So(logger.SetLevelString("verbose"), ShouldNotBeNil)
		})
	})
}
