package notesource_test

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/okian/trendnote/internal/domain/aggregate"
	"github.com/okian/trendnote/internal/notesource"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSyntheticSource_Fetch(t *testing.T) {
	Convey("Given a synthetic source with a fixed seed and clock", t, func() {
		fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		src := notesource.NewSyntheticSource(
			notesource.WithCount(50),
			notesource.WithWindowDays(7),
			notesource.WithKeywords("movies"),
			notesource.WithRand(rand.New(rand.NewSource(1))), //nolint:gosec // deterministic test seed
			notesource.WithNow(func() time.Time { return fixed }),
		)

		Convey("When fetching a batch", func() {
			batch, err := src.Fetch(context.Background())

			Convey("Then the envelope reflects the configuration", func() {
				So(err, ShouldBeNil)
				So(batch.FetchTime, ShouldEqual, fixed)
				So(batch.Keywords, ShouldEqual, "movies")
				So(batch.WindowDays, ShouldEqual, 7)
				So(batch.TotalCount, ShouldEqual, 50)
				So(batch.Notes, ShouldHaveLength, 50)
			})

			Convey("Then every note is well formed", func() {
				seenIDs := make(map[string]struct{}, len(batch.Notes))
				for _, n := range batch.Notes {
					So(n.ID, ShouldStartWith, "note_")
					_, dup := seenIDs[n.ID]
					So(dup, ShouldBeFalse)
					seenIDs[n.ID] = struct{}{}

					So(n.Topic, ShouldNotBeEmpty)
					So(n.Title, ShouldNotBeEmpty)
					So(strings.Contains(n.Content, "#"+n.Topic), ShouldBeTrue)
				}
			})

			Convey("Then counters stay within the generation bands", func() {
				for _, n := range batch.Notes {
					So(n.Stats.Likes, ShouldBeBetweenOrEqual, 50, 10000)
					So(n.Stats.Comments, ShouldBeLessThanOrEqualTo, int(0.08*float64(n.Stats.Likes))+1)
					So(n.Stats.Collects, ShouldBeLessThanOrEqualTo, int(0.30*float64(n.Stats.Likes))+1)
					So(n.Stats.Shares, ShouldBeLessThanOrEqualTo, int(0.05*float64(n.Stats.Likes))+1)
				}
			})

			Convey("Then tags are distinct and between four and seven", func() {
				for _, n := range batch.Notes {
					So(len(n.Tags), ShouldBeBetweenOrEqual, 4, 7)
					seen := make(map[string]struct{}, len(n.Tags))
					for _, tag := range n.Tags {
						_, dup := seen[tag]
						So(dup, ShouldBeFalse)
						seen[tag] = struct{}{}
					}
				}
			})

			Convey("Then publication dates fall inside the trailing window", func() {
				earliest := fixed.Add(-7 * 24 * time.Hour)
				for _, n := range batch.Notes {
					So(n.PublishedAt.After(earliest) || n.PublishedAt.Equal(earliest), ShouldBeTrue)
					So(n.PublishedAt.After(fixed), ShouldBeFalse)
				}
			})

			Convey("Then the batch aggregates cleanly", func() {
				out, aggErr := aggregate.New().Aggregate(batch.Notes)
				So(aggErr, ShouldBeNil)
				So(len(out), ShouldBeGreaterThan, 0)
			})
		})

		Convey("When the context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			batch, err := src.Fetch(ctx)

			Convey("Then the fetch fails with the context error", func() {
				So(err, ShouldNotBeNil)
				So(err, ShouldWrap, context.Canceled)
				So(batch.Notes, ShouldBeEmpty)
			})
		})
	})

	Convey("Given default configuration", t, func() {
		src := notesource.NewSyntheticSource()

		Convey("When fetching", func() {
			batch, err := src.Fetch(context.Background())

			Convey("Then the defaults apply", func() {
				So(err, ShouldBeNil)
				So(batch.Notes, ShouldHaveLength, 100)
				So(batch.Keywords, ShouldEqual, "movies")
				So(batch.WindowDays, ShouldEqual, 7)
			})
		})
	})
}
