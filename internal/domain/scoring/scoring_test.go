package scoring_test

import (
	"testing"

	"github.com/okian/trendnote/internal/domain/model"
	"github.com/okian/trendnote/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

const tolerance = 1e-9

func TestHeatScorer_Score(t *testing.T) {
	Convey("Given a scorer with default weights", t, func() {
		scorer := scoring.NewHeatScorer()

		Convey("When scoring the two-note reference aggregate", func() {
			// Two notes: {100,5,10,2} and {50,0,0,0}.
			agg := model.TopicAggregate{
				Topic:     "A",
				NoteCount: 2,
				Sums:      model.Counters{Likes: 150, Comments: 5, Collects: 10, Shares: 2},
				NoteIDs:   []string{"n1", "n2"},
			}

			st := scorer.Score(agg)

			Convey("Then weighted engagement is 181", func() {
				// 150*1.0 + 5*2.0 + 10*1.5 + 2*3.0
				So(st.WeightedEngagement, ShouldAlmostEqual, 181, tolerance)
			})

			Convey("Then heat score is 21.81", func() {
				// 2*10 + 181/100
				So(st.HeatScore, ShouldAlmostEqual, 21.81, tolerance)
			})

			Convey("Then average engagement is 83.5", func() {
				// (100+5+10+2+50) / 2
				So(st.AvgEngagement, ShouldAlmostEqual, 83.5, tolerance)
			})

			Convey("Then the aggregate is carried through unchanged", func() {
				So(st.Topic, ShouldEqual, "A")
				So(st.NoteCount, ShouldEqual, 2)
				So(st.NoteIDs, ShouldResemble, []string{"n1", "n2"})
			})
		})

		Convey("When scoring the same aggregate twice", func() {
			agg := model.TopicAggregate{
				Topic:     "B",
				NoteCount: 3,
				Sums:      model.Counters{Likes: 10, Comments: 20, Collects: 30, Shares: 40},
			}

			Convey("Then the scores are identical", func() {
				So(scorer.Score(agg), ShouldResemble, scorer.Score(agg))
			})
		})

		Convey("When one topic dominates another on every counter", func() {
			low := model.TopicAggregate{Topic: "low", NoteCount: 2,
				Sums: model.Counters{Likes: 10, Comments: 2, Collects: 3, Shares: 1}}
			high := model.TopicAggregate{Topic: "high", NoteCount: 2,
				Sums: model.Counters{Likes: 100, Comments: 20, Collects: 30, Shares: 10}}

			Convey("Then its heat score is strictly higher", func() {
				So(scorer.Score(high).HeatScore, ShouldBeGreaterThan, scorer.Score(low).HeatScore)
			})
		})

		Convey("When an aggregate has zero notes", func() {
			st := scorer.Score(model.TopicAggregate{Topic: "empty"})

			Convey("Then no division by zero occurs", func() {
				So(st.AvgEngagement, ShouldEqual, 0)
				So(st.HeatScore, ShouldEqual, 0)
			})
		})
	})
}

func TestHeatScorer_Weights(t *testing.T) {
	Convey("Given the default weight table", t, func() {
		w := scoring.DefaultWeights()

		Convey("Then deeper engagement weighs more", func() {
			So(w.Likes, ShouldEqual, 1.0)
			So(w.Comments, ShouldEqual, 2.0)
			So(w.Collects, ShouldEqual, 1.5)
			So(w.Shares, ShouldEqual, 3.0)
		})
	})

	Convey("Given a scorer with overridden weights", t, func() {
		scorer := scoring.NewHeatScorer(scoring.WithWeights(scoring.Weights{
			Likes: 2.0, Comments: 1.0, Collects: 1.0, Shares: 1.0,
		}))

		Convey("When scoring an aggregate", func() {
			agg := model.TopicAggregate{
				Topic:     "A",
				NoteCount: 1,
				Sums:      model.Counters{Likes: 10, Comments: 10, Collects: 10, Shares: 10},
			}
			st := scorer.Score(agg)

			Convey("Then the override is applied", func() {
				So(st.WeightedEngagement, ShouldAlmostEqual, 50, tolerance)
				So(st.HeatScore, ShouldAlmostEqual, 10.5, tolerance)
			})
		})
	})

	Convey("Given a weight table with a negative entry", t, func() {
		scorer := scoring.NewHeatScorer(scoring.WithWeights(scoring.Weights{
			Likes: -1.0, Comments: 2.0, Collects: 1.5, Shares: 3.0,
		}))

		Convey("Then the override is rejected and defaults remain", func() {
			So(scorer.Weights(), ShouldResemble, scoring.DefaultWeights())
		})
	})
}

func TestHeatScorer_ScoreAll(t *testing.T) {
	Convey("Given a scorer and several aggregates", t, func() {
		scorer := scoring.NewHeatScorer()
		aggs := map[string]*model.TopicAggregate{
			"a": {Topic: "a", NoteCount: 1, Sums: model.Counters{Likes: 10}},
			"b": {Topic: "b", NoteCount: 2, Sums: model.Counters{Shares: 5}},
		}

		Convey("When scoring them all", func() {
			scored := scorer.ScoreAll(aggs)

			Convey("Then every topic is scored", func() {
				So(scored, ShouldHaveLength, 2)
				So(scored["a"].HeatScore, ShouldAlmostEqual, 10.1, tolerance)
				So(scored["b"].HeatScore, ShouldAlmostEqual, 20.15, tolerance)
			})
		})

		Convey("When the mapping is empty", func() {
			scored := scorer.ScoreAll(nil)

			Convey("Then the result is empty", func() {
				So(scored, ShouldBeEmpty)
			})
		})
	})
}
