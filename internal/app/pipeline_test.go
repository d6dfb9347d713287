package pipeline_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/okian/trendnote/internal/adapters/repository"
	pipeline "github.com/okian/trendnote/internal/app"
	"github.com/okian/trendnote/internal/domain/model"
	"github.com/okian/trendnote/internal/notesource"
	"github.com/okian/trendnote/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	_ = logger.Init()
}

// fixedSource returns a canned batch, or an error.
type fixedSource struct {
	batch notesource.Batch
	err   error
}

func (s *fixedSource) Fetch(_ context.Context) (notesource.Batch, error) {
	return s.batch, s.err
}

func note(id, topic string, likes, comments, collects, shares int) model.Note {
	return model.Note{
		ID:    id,
		Topic: topic,
		Stats: model.Counters{Likes: likes, Comments: comments, Collects: collects, Shares: shares},
	}
}

func fixedBatch() notesource.Batch {
	notes := []model.Note{
		// "hot" dominates, "warm" second, "cool" last.
		note("n1", "hot topic", 5000, 300, 800, 200),
		note("n2", "hot topic", 4000, 250, 600, 150),
		note("n3", "warm topic", 800, 40, 100, 20),
		note("n4", "warm topic", 600, 30, 80, 10),
		note("n5", "cool topic", 60, 2, 8, 1),
	}
	return notesource.Batch{
		FetchTime:  time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		Keywords:   "movies",
		WindowDays: 7,
		TotalCount: len(notes),
		Notes:      notes,
	}
}

func TestPipeline_Run(t *testing.T) {
	Convey("Given a pipeline over a fixed batch and a temp store", t, func() {
		dir := t.TempDir()
		store := repository.NewFileStore(repository.WithDir(dir))
		p := pipeline.New(
			pipeline.WithSource(&fixedSource{batch: fixedBatch()}),
			pipeline.WithStore(store),
			pipeline.WithTopK(2),
			pipeline.WithDraftsPerTopic(2),
			pipeline.WithWorkerCount(2),
		)
		ctx := context.Background()

		Convey("When running one batch", func() {
			err := p.Run(ctx)

			Convey("Then the run succeeds", func() {
				So(err, ShouldBeNil)
			})

			Convey("Then the analysis keeps the two hottest topics in order", func() {
				So(err, ShouldBeNil)

				doc, aerr := p.Analysis(ctx)
				So(aerr, ShouldBeNil)
				So(doc.TotalNotes, ShouldEqual, 5)
				So(doc.TotalTopics, ShouldEqual, 3)
				So(doc.TopK, ShouldEqual, 2)
				So(doc.TopTopics, ShouldHaveLength, 2)
				So(doc.TopTopics[0].Topic, ShouldEqual, "hot topic")
				So(doc.TopTopics[0].Rank, ShouldEqual, 1)
				So(doc.TopTopics[1].Topic, ShouldEqual, "warm topic")
				So(doc.TopTopics[1].Rank, ShouldEqual, 2)
			})

			Convey("Then drafts cover every ranked topic with the configured fan-out", func() {
				So(err, ShouldBeNil)

				doc, derr := p.Drafts(ctx)
				So(derr, ShouldBeNil)
				So(doc.DraftsPerTopic, ShouldEqual, 2)
				So(doc.Drafts, ShouldHaveLength, 4)

				perTopic := map[string]int{}
				for _, d := range doc.Drafts {
					perTopic[d.Topic]++
					So(d.Title, ShouldNotBeEmpty)
					So(d.Body, ShouldNotBeEmpty)
				}
				So(perTopic["hot topic"], ShouldEqual, 2)
				So(perTopic["warm topic"], ShouldEqual, 2)
			})

			Convey("Then drafts come out ordered by topic rank", func() {
				So(err, ShouldBeNil)

				doc, derr := p.Drafts(ctx)
				So(derr, ShouldBeNil)
				for i := 1; i < len(doc.Drafts); i++ {
					So(doc.Drafts[i].TopicRank, ShouldBeGreaterThanOrEqualTo, doc.Drafts[i-1].TopicRank)
				}
			})

			Convey("Then every artifact kind is persisted", func() {
				So(err, ShouldBeNil)

				_, nerr := store.LatestNotes(ctx)
				So(nerr, ShouldBeNil)
				_, aerr := store.LatestAnalysis(ctx)
				So(aerr, ShouldBeNil)
				drafts, derr := store.LatestDrafts(ctx)
				So(derr, ShouldBeNil)
				So(drafts.BasedOnAnalysis, ShouldContainSubstring, "trend_analysis_")
			})

			Convey("Then stats reflect the completed run", func() {
				So(err, ShouldBeNil)

				stats := p.Stats(ctx)
				So(stats["runs"], ShouldEqual, 1)
				So(stats["failures"], ShouldEqual, 0)
				So(stats["drafts"], ShouldEqual, 4)
			})
		})

		Convey("When running twice", func() {
			So(p.Run(ctx), ShouldBeNil)
			So(p.Run(ctx), ShouldBeNil)

			Convey("Then both runs are counted", func() {
				So(p.Stats(ctx)["runs"], ShouldEqual, 2)
			})
		})
	})

	Convey("Given a source that fails", t, func() {
		p := pipeline.New(
			pipeline.WithSource(&fixedSource{err: errors.New("upstream down")}),
			pipeline.WithStore(repository.NewFileStore(repository.WithDir(t.TempDir()))),
		)
		ctx := context.Background()

		Convey("When running the pipeline", func() {
			err := p.Run(ctx)

			Convey("Then the run fails and is counted as a failure", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "fetch notes")
				So(p.Stats(ctx)["failures"], ShouldEqual, 1)
			})

			Convey("Then no artifacts exist yet", func() {
				_, aerr := p.Analysis(ctx)
				So(aerr, ShouldWrap, repository.ErrNotFound)
			})
		})
	})

	Convey("Given a batch with an invalid note", t, func() {
		batch := fixedBatch()
		batch.Notes = append(batch.Notes, model.Note{ID: "bad", Topic: ""})

		p := pipeline.New(
			pipeline.WithSource(&fixedSource{batch: batch}),
			pipeline.WithStore(repository.NewFileStore(repository.WithDir(t.TempDir()))),
		)

		Convey("When running the pipeline", func() {
			err := p.Run(context.Background())

			Convey("Then aggregation aborts the run", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "aggregate notes")
			})
		})
	})

	Convey("Given an empty batch", t, func() {
		p := pipeline.New(
			pipeline.WithSource(&fixedSource{batch: notesource.Batch{}}),
			pipeline.WithStore(repository.NewFileStore(repository.WithDir(t.TempDir()))),
		)

		Convey("When running the pipeline", func() {
			err := p.Run(context.Background())

			Convey("Then ranking reports there is nothing to rank", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "rank topics")
			})
		})
	})
}
