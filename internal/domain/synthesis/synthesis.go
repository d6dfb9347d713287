package synthesis

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/okian/trendnote/internal/domain/model"
)

// highlightCount is the number of highlight lines sampled per draft.
const highlightCount = 3

// maxTags caps the assembled tag list.
const maxTags = 8

// Option applies a configuration option to the Composer.
type Option func(*Composer)

// WithRand sets the random source used for template selection.
// Injecting a seeded source makes composition deterministic for tests.
func WithRand(rng *rand.Rand) Option {
	return func(c *Composer) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// Composer renders one draft per call from the template pools.
// Each call is independent; the only shared state is the random
// source, so concurrent callers must each own their own Composer.
type Composer struct {
	rng *rand.Rand
}

// NewComposer creates a composer with configuration options.
func NewComposer(opts ...Option) *Composer {
	c := &Composer{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // template variety, not security
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose produces a draft for the given ranked topic. A topic whose
// rank or heat data is missing or malformed fails with
// ErrInvalidRankedTopic instead of yielding a plausible-looking draft.
func (c *Composer) Compose(t model.RankedTopic) (model.Draft, error) {
	if t.Topic == "" || t.Rank < 1 || t.HeatScore <= 0 {
		return model.Draft{}, fmt.Errorf("topic %q rank %d heat %.2f: %w",
			t.Topic, t.Rank, t.HeatScore, ErrInvalidRankedTopic)
	}

	cat := Classify(t.Topic)
	subject := c.pick(subjectPool(t.Topic))

	return model.Draft{
		Topic:           t.Topic,
		TopicRank:       t.Rank,
		TopicHeatScore:  t.HeatScore,
		Subject:         subject,
		Title:           c.title(cat, t.Topic, subject),
		Body:            c.body(cat, subject),
		Tags:            c.tags(t.Topic),
		Hashtags:        Hashtags(t.Topic, subject),
		TargetAudience:  Audience(t.Topic),
		PostingTimeHint: postingTimeHint,
	}, nil
}

// Hashtags returns the deterministic hashtag sequence for a draft:
// topic first, then subject, then the two fixed brand tags.
func Hashtags(topic, subject string) []string {
	return []string{
		"#" + topic,
		"#" + subject,
		brandHashtags[0],
		brandHashtags[1],
	}
}

// Audience returns the target audience for a topic, falling back to a
// generic description for topics outside the lookup table.
func Audience(topic string) string {
	if a, ok := audiences[topic]; ok {
		return a
	}
	return defaultAudience
}

// subjectPool returns the topic's subject pool or the default one.
func subjectPool(topic string) []string {
	if pool, ok := subjectsByTopic[topic]; ok {
		return pool
	}
	return defaultSubjects
}

// displayTopic shortens a topic name for title rendering.
func displayTopic(topic string) string {
	return strings.TrimSuffix(topic, " picks")
}

func (c *Composer) title(cat Category, topic, subject string) string {
	switch cat {
	case CategoryHorror:
		return fmt.Sprintf(horrorTitle, subject, c.pick(movieEmojis), c.pick(exclaimEmojis))
	case CategoryRomance:
		return fmt.Sprintf(romanceTitle, subject, c.pick(heartEmojis), c.pick(cryEmojis))
	case CategoryAwards:
		return fmt.Sprintf(awardsTitle, subject, c.pick(starEmojis), c.pick(movieEmojis))
	default:
		tpl := c.pick(titleTemplates)
		return fmt.Sprintf(tpl, subject, displayTopic(topic), c.pick(movieEmojis), c.pick(starEmojis))
	}
}

// body assembles the fixed structural skeleton: opening hook, subject
// info line, highlight block, personal reaction, call to action.
func (c *Composer) body(cat Category, subject string) string {
	sections := []string{
		c.opening(cat, subject),
		c.infoSection(subject),
		c.highlightBlock(cat),
		c.feeling(cat),
		c.pick(ctas),
	}
	return strings.Join(sections, "\n\n")
}

func (c *Composer) opening(cat Category, subject string) string {
	switch cat {
	case CategoryHorror:
		return fmt.Sprintf(horrorOpening, subject)
	case CategoryRomance:
		return fmt.Sprintf(romanceOpening, subject, c.pick(cryEmojis))
	default:
		return fmt.Sprintf(c.pick(openings), subject)
	}
}

func (c *Composer) infoSection(subject string) string {
	return fmt.Sprintf("%s Film: %s\n%s Genre: matched to the topic\n⏱️ Runtime: tight, no drag",
		c.pick(movieEmojis), subject, c.pick(starEmojis))
}

func (c *Composer) highlightBlock(cat Category) string {
	pool := make([]string, 0, len(highlights)+2)
	pool = append(pool, highlights...)
	switch cat {
	case CategoryHorror:
		pool = append(pool, horrorHighlights...)
	case CategoryRomance:
		pool = append(pool, romanceHighlights...)
	}

	star := c.pick(starEmojis)
	fire := c.pick(fireEmojis)

	lines := c.sample(pool, highlightCount)
	for i, l := range lines {
		lines[i] = star + " " + l
	}
	return strings.Join(lines, "\n") + "\n" + fire + " " + closingEmphasis
}

func (c *Composer) feeling(cat Category) string {
	switch cat {
	case CategoryHorror:
		return c.pick(thinkEmojis) + " " + horrorFeeling
	case CategoryRomance:
		return c.pick(cryEmojis) + " " + romanceFeeling
	default:
		return c.pick(thinkEmojis) + " " + c.pick(feelings)
	}
}

// tags assembles base, topic-specific, and two sampled general tags,
// de-duplicated in assembly order and capped at maxTags.
func (c *Composer) tags(topic string) []string {
	specific, ok := topicTags[topic]
	if !ok {
		specific = fallbackTopicTags
	}

	assembled := make([]string, 0, len(baseTags)+len(specific)+2)
	assembled = append(assembled, baseTags...)
	assembled = append(assembled, specific...)
	assembled = append(assembled, c.sample(generalTags, 2)...)

	seen := make(map[string]struct{}, len(assembled))
	out := make([]string, 0, maxTags)
	for _, tag := range assembled {
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
		if len(out) == maxTags {
			break
		}
	}
	return out
}

// pick returns a uniformly random element of pool.
func (c *Composer) pick(pool []string) string {
	return pool[c.rng.Intn(len(pool))]
}

// sample returns k distinct elements drawn without replacement.
func (c *Composer) sample(pool []string, k int) []string {
	if k > len(pool) {
		k = len(pool)
	}
	idx := c.rng.Perm(len(pool))
	out := make([]string, k)
	for i := 0; i < k; i++ {
		out[i] = pool[idx[i]]
	}
	return out
}
