// Package model contains domain entities passed between pipeline stages.
package model

import "time"

// Counters holds the raw engagement counters carried by a note.
type Counters struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Collects int `json:"collects"`
	Shares   int `json:"shares"`
}

// Total returns the unweighted sum of all four counters.
func (c Counters) Total() int {
	return c.Likes + c.Comments + c.Collects + c.Shares
}

// Note represents a single ingested post record. Notes are owned by the
// ingestion stage and read-only to the analysis core.
type Note struct {
	ID          string    `json:"note_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Topic       string    `json:"topic"`
	Stats       Counters  `json:"stats"`
	Tags        []string  `json:"tags"`
	PublishedAt time.Time `json:"published_at"`
}

// TopicAggregate holds per-topic counter sums for one analysis run.
// NoteIDs preserves encounter order within the batch.
type TopicAggregate struct {
	Topic     string   `json:"topic"`
	NoteCount int      `json:"note_count"`
	Sums      Counters `json:"total_engagement"`
	NoteIDs   []string `json:"sample_notes"`
}

// ScoredTopic extends TopicAggregate with the derived scores.
type ScoredTopic struct {
	TopicAggregate
	WeightedEngagement float64 `json:"weighted_engagement"`
	HeatScore          float64 `json:"heat_score"`
	AvgEngagement      float64 `json:"avg_engagement"`
}

// RankedTopic is a ScoredTopic plus its 1-based dense rank.
type RankedTopic struct {
	ScoredTopic
	Rank int `json:"rank"`
}

// Draft is a synthesized content piece generated for a ranked topic.
// Rank and heat score are snapshots copied from the RankedTopic that
// produced it, not live references.
type Draft struct {
	Topic           string   `json:"topic"`
	TopicRank       int      `json:"topic_rank"`
	TopicHeatScore  float64  `json:"topic_heat_score"`
	Subject         string   `json:"subject"`
	Title           string   `json:"title"`
	Body            string   `json:"body"`
	Tags            []string `json:"tags"`
	Hashtags        []string `json:"hashtags"`
	TargetAudience  string   `json:"target_audience"`
	PostingTimeHint string   `json:"posting_time_hint"`
}
