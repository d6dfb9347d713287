package notesource

// topics is the controlled topic vocabulary notes are drawn from.
// Names match the synthesizer's topic-keyed pools where those exist.
var topics = []string{
	"romance movie picks", "mystery movie picks", "action movie picks",
	"comedy movie picks", "sci-fi movie picks", "horror movie picks",
	"animated movie picks", "documentary picks", "classic cinema",
	"new theater releases", "oscar winning films", "indie arthouse gems",
	"feel-good films", "mind-bending films", "tearjerker films",
}

// movieNames seeds note titles and content.
var movieNames = []string{
	"Interstellar", "The Shawshank Redemption", "Inception", "Titanic",
	"Forrest Gump", "Léon: The Professional", "Farewell My Concubine", "The Truman Show",
	"The Legend of 1900", "Life Is Beautiful", "The Chorus", "3 Idiots",
	"The Intouchables", "Coco", "Spirited Away", "Your Name",
	"Flipped", "The Pursuit of Happyness", "Dead Poets Society", "Before Sunrise",
}

// notesTagPool is sampled per note.
var notesTagPool = []string{
	"movie picks", "film review", "watch log", "film share", "good films",
	"weekend watch", "film finds", "must watch", "top rated", "hidden gem",
	"date night", "solo watch", "feel-good", "tearjerker", "mind-bending",
	"visual feast", "stellar acting", "plot masterpiece", "gorgeous score",
}

// noteTitleTemplates render the note title; %s is the movie name.
var noteTitleTemplates = []string{
	"🎬 %s | the no-regrets list",
	"✨ %s is incredible! Everyone needs this one",
	"💕 %s had me sobbing",
	"⭐️ Strong rec! %s is worth three rewatches",
	"🌟 %s | ceiling of the genre",
	"📽️ %s watch log | recommended through tears",
}

// noteIntros open the note body; %s is the movie name.
var noteIntros = []string{
	"Friends, I have to put %s on your radar today!",
	"Three rewatches of %s and it still gets me every time!",
	"Finally watched %s, here to share the feelings!",
	"Everyone! %s is too good to skip!",
}

// noteHighlights are sampled three at a time.
var noteHighlights = []string{
	"✨ Plot: zero filler, every frame earns its place",
	"⭐️ Acting: the performances are simply unreal",
	"🎵 Score: the soundtrack is a stroke of genius",
	"🎬 Visuals: every frame could be a wallpaper",
	"💡 Substance: stays with you long after the credits",
}

// noteFeelings close the note body.
var noteFeelings = []string{
	"Genuinely recommending this to everyone!",
	"Walked away completely healed~",
	"Straight onto my all-time favorites list!",
	"This one stays in my heart for good!",
}
