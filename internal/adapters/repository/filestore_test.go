package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/okian/trendnote/internal/adapters/repository"
	"github.com/okian/trendnote/internal/domain/model"
	"github.com/okian/trendnote/internal/notesource"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFileStore_SaveAndLoad(t *testing.T) {
	Convey("Given a file store in a temp directory", t, func() {
		dir := t.TempDir()
		fixed := time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC)
		store := repository.NewFileStore(
			repository.WithDir(dir),
			repository.WithNow(func() time.Time { return fixed }),
		)
		ctx := context.Background()

		Convey("When saving an analysis document", func() {
			doc := repository.AnalysisDocument{
				AnalysisTime: fixed,
				DataSource:   "synthetic",
				TotalNotes:   50,
				TotalTopics:  4,
				TopK:         5,
				TopTopics: []model.RankedTopic{
					{
						ScoredTopic: model.ScoredTopic{
							TopicAggregate: model.TopicAggregate{Topic: "horror movie picks", NoteCount: 12},
							HeatScore:      121.5,
						},
						Rank: 1,
					},
				},
			}

			path, err := store.SaveAnalysis(ctx, doc)

			Convey("Then it writes the timestamped and latest files", func() {
				So(err, ShouldBeNil)
				So(path, ShouldEqual, filepath.Join(dir, "trend_analysis_20260301_083000.json"))

				_, statErr := os.Stat(path)
				So(statErr, ShouldBeNil)
				_, statErr = os.Stat(filepath.Join(dir, "trend_analysis_latest.json"))
				So(statErr, ShouldBeNil)
			})

			Convey("Then the latest document round-trips", func() {
				So(err, ShouldBeNil)
				loaded, loadErr := store.LatestAnalysis(ctx)
				So(loadErr, ShouldBeNil)
				So(loaded.TotalNotes, ShouldEqual, 50)
				So(loaded.TopTopics, ShouldHaveLength, 1)
				So(loaded.TopTopics[0].Topic, ShouldEqual, "horror movie picks")
				So(loaded.TopTopics[0].Rank, ShouldEqual, 1)
			})
		})

		Convey("When saving a drafts document", func() {
			doc := repository.DraftsDocument{
				GenerationTime: fixed,
				DraftsPerTopic: 2,
				Drafts: []model.Draft{
					{Topic: "romance movie picks", TopicRank: 1, Title: "a title"},
				},
			}

			_, err := store.SaveDrafts(ctx, doc)

			Convey("Then the latest drafts round-trip", func() {
				So(err, ShouldBeNil)
				loaded, loadErr := store.LatestDrafts(ctx)
				So(loadErr, ShouldBeNil)
				So(loaded.DraftsPerTopic, ShouldEqual, 2)
				So(loaded.Drafts, ShouldHaveLength, 1)
				So(loaded.Drafts[0].Topic, ShouldEqual, "romance movie picks")
			})
		})

		Convey("When saving a note batch", func() {
			batch := notesource.Batch{
				FetchTime:  fixed,
				Keywords:   "movies",
				WindowDays: 7,
				TotalCount: 1,
				Notes: []model.Note{
					{ID: "note_1", Topic: "indie arthouse gems", Stats: model.Counters{Likes: 9}},
				},
			}

			_, err := store.SaveNotes(ctx, batch)

			Convey("Then the latest batch round-trips", func() {
				So(err, ShouldBeNil)
				loaded, loadErr := store.LatestNotes(ctx)
				So(loadErr, ShouldBeNil)
				So(loaded.TotalCount, ShouldEqual, 1)
				So(loaded.Notes[0].ID, ShouldEqual, "note_1")
			})
		})

		Convey("When the latest file is missing but stamped files exist", func() {
			doc := repository.AnalysisDocument{TotalNotes: 7}
			_, err := store.SaveAnalysis(ctx, doc)
			So(err, ShouldBeNil)
			So(os.Remove(filepath.Join(dir, "trend_analysis_latest.json")), ShouldBeNil)

			loaded, loadErr := store.LatestAnalysis(ctx)

			Convey("Then it falls back to the newest stamped file", func() {
				So(loadErr, ShouldBeNil)
				So(loaded.TotalNotes, ShouldEqual, 7)
			})
		})

		Convey("When nothing has been persisted yet", func() {
			_, err := store.LatestAnalysis(ctx)

			Convey("Then it reports ErrNotFound", func() {
				So(err, ShouldWrap, repository.ErrNotFound)
			})
		})

		Convey("When the context is cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := store.SaveAnalysis(cancelled, repository.AnalysisDocument{})

			Convey("Then the save fails with the context error", func() {
				So(err, ShouldWrap, context.Canceled)
			})
		})
	})

	Convey("Given two saves at different times", t, func() {
		dir := t.TempDir()
		ctx := context.Background()

		times := []time.Time{
			time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		}
		i := 0
		store := repository.NewFileStore(
			repository.WithDir(dir),
			repository.WithNow(func() time.Time {
				ts := times[i%len(times)]
				i++
				return ts
			}),
		)

		_, err := store.SaveAnalysis(ctx, repository.AnalysisDocument{TotalNotes: 1})
		So(err, ShouldBeNil)
		_, err = store.SaveAnalysis(ctx, repository.AnalysisDocument{TotalNotes: 2})
		So(err, ShouldBeNil)

		Convey("When the latest pointer is removed", func() {
			So(os.Remove(filepath.Join(dir, "trend_analysis_latest.json")), ShouldBeNil)

			loaded, loadErr := store.LatestAnalysis(ctx)

			Convey("Then the newest stamped file wins", func() {
				So(loadErr, ShouldBeNil)
				So(loaded.TotalNotes, ShouldEqual, 2)
			})
		})
	})
}
