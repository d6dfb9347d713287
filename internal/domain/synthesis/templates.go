package synthesis

// Template pools for draft rendering. Each slot of the body skeleton
// draws from its own pool; topic categories override the generic pool
// where a themed variant exists.

// Emoji pools keyed by mood.
var (
	movieEmojis   = []string{"🎬", "📽️", "🎞️", "🎥"}
	starEmojis    = []string{"⭐️", "✨", "🌟", "💫"}
	heartEmojis   = []string{"❤️", "💕", "💖", "💗", "😍"}
	fireEmojis    = []string{"🔥", "💥", "👍", "💯"}
	thinkEmojis   = []string{"💭", "💡", "🤔", "📝"}
	cryEmojis     = []string{"😭", "😢", "🥺", "💔"}
	exclaimEmojis = []string{"❗️", "‼️", "❓", "⁉️"}
)

// subjectsByTopic maps each topic in the controlled vocabulary to its
// representative-subject pool. Topics without a dedicated pool use
// defaultSubjects.
var subjectsByTopic = map[string][]string{
	"horror movie picks": {
		"A Quiet Place", "Hereditary", "It", "The Conjuring",
		"The Shining", "The Grudge", "The Ring", "Scream",
	},
	"oscar winning films": {
		"Parasite", "Moonlight", "The Shape of Water", "Birdman",
		"The King's Speech", "The Artist", "12 Years a Slave", "Spotlight",
	},
	"romance movie picks": {
		"Flipped", "Before Sunrise", "Titanic", "The Notebook",
		"About Time", "50 First Dates", "Love Actually", "Me Before You",
	},
	"new theater releases": {
		"Oppenheimer", "Barbie", "Dune: Part Two", "Guardians of the Galaxy Vol. 3",
		"Mission: Impossible 7", "Across the Spider-Verse", "John Wick 4", "Rise of the Beasts",
	},
	"indie arthouse gems": {
		"Our Little Sister", "Little Forest", "100 Yen Love", "Memories of Matsuko",
		"April Story", "We Made a Beautiful Bouquet", "Blue Gate Crossing", "Secret",
	},
}

// defaultSubjects backs topics with no dedicated pool.
var defaultSubjects = []string{
	"The Shawshank Redemption", "Inception", "Interstellar",
}

// Generic title templates; %[1]s is the subject, %[2]s the topic.
var titleTemplates = []string{
	"%[3]s Must watch! %[1]s is just incredible | %[2]s",
	"%[4]s %[1]s | the no-regrets list %[3]s",
	"%[3]s Huge rec! %[1]s left me speechless",
	"%[4]s Hidden gem! %[1]s is worth three rewatches %[3]s",
	"%[3]s %[1]s | the ceiling of %[2]s %[4]s",
	"%[4]s Recommending %[1]s through tears, every frame is art %[3]s",
}

// Category title overrides; %[1]s subject, %[2]s an emoji slot.
var (
	horrorTitle  = "%[2]s Not for the faint of heart! %[1]s kept me up all night %[3]s"
	romanceTitle = "%[2]s%[1]s | peak romance, it broke me %[3]s"
	awardsTitle  = "%[2]s Oscar winner! %[1]s earned every bit of it %[3]s"
)

// Opening hook pool; %s is the subject.
var openings = []string{
	"Friends, I have to put %s on your radar today!",
	"Finally watched the legendary %s, here to report back!",
	"Everyone! %s is so good I can't keep it to myself!",
	"Three rewatches of %s and it still gets me every time!",
	"Strong recommend! %s is the best thing I've watched this year!",
}

var (
	horrorOpening  = "Not for the faint of heart! Watched %s last night and couldn't sleep alone 😱"
	romanceOpening = "Friends! %s had me crying nonstop%s it hurts so good!"
)

// Highlight pool; each entry gets a star emoji prefix at render time.
var highlights = []string{
	"Plot: zero filler, every minute earns its place",
	"Acting: the performances are simply unreal",
	"Score: the soundtrack is a stroke of genius, full-body chills",
	"Visuals: every frame could be a wallpaper",
	"Writing: quotable lines back to back, take notes",
	"Pacing: tension and release in perfect balance",
}

var horrorHighlights = []string{
	"Atmosphere: dread built to perfection, tense the whole way",
	"Scares: cleverly engineered, none of the cheap jump stuff",
}

var romanceHighlights = []string{
	"Chemistry: tender and true, endless resonance",
	"Sweetness: sweet without being cloying, exactly right",
}

// closingEmphasis ends the highlight block on every draft.
const closingEmphasis = "Total masterpiece, full stop!"

// Personal reaction pool.
var feelings = []string{
	"Couldn't stop thinking about it afterwards, the scenes just replay",
	"This one goes straight into my forever collection",
	"Every detail rewards a second and third watch",
	"Genuinely recommending this to absolutely everyone!",
}

var (
	horrorFeeling  = "Left me a wreck in the best way! That scared-but-can't-look-away feeling, you know the one~"
	romanceFeeling = "Walked away healed and believing in love again! Single viewers, brace for impact haha~"
)

// Call-to-action pool.
var ctas = []string{
	"💬 Seen this one? Meet me in the comments!",
	"👍 A like keeps the recommendations coming~",
	"⭐️ Save this for the weekend!",
	"📝 Drop your own favorite in the comments!",
	"🔥 Follow for a steady stream of good films!",
}

// Tag pools.
var baseTags = []string{"movie picks", "film review", "watch log"}

var topicTags = map[string][]string{
	"horror movie picks":   {"horror", "thriller", "suspense"},
	"oscar winning films":  {"oscars", "award winners", "classic film"},
	"romance movie picks":  {"romance", "love stories", "date night"},
	"new theater releases": {"new releases", "in theaters", "latest films"},
	"indie arthouse gems":  {"arthouse", "indie film", "independent cinema"},
}

var fallbackTopicTags = []string{"must watch"}

var generalTags = []string{"top rated", "must see", "weekend watch", "film share"}

// Fixed brand hashtags appended after topic and subject.
var brandHashtags = [2]string{"#movierecs", "#watchlist"}

// Audience lookup by exact topic.
var audiences = map[string]string{
	"horror movie picks":   "young viewers who love a good scare",
	"oscar winning films":  "film buffs chasing top-shelf cinema",
	"romance movie picks":  "viewers who live for love stories",
	"new theater releases": "moviegoers tracking what's in theaters",
	"indie arthouse gems":  "arthouse crowd and indie film lovers",
}

const defaultAudience = "movie lovers"

// postingTimeHint is currently a constant; the contract allows it to
// vary by topic or time of day later.
const postingTimeHint = "8-10pm (peak audience hours)"
