package deck

// Face is one card face identity. Name is stable, Glyph is what the board draws.
type Face struct {
	Name  string
	Glyph string
}

// Color is a card color. Code is a terminal color understood by lipgloss.
type Color struct {
	Name string
	Code string
}

// CardSpec describes the card placed in one slot of the board.
// Two specs with the same PairNumber form a matching pair.
type CardSpec struct {
	Face       Face
	Color      Color
	PairNumber int
	Slot       int
}

var defaultFaces = []Face{
	{"anchor", "⚓"},
	{"asterisk", "✱"},
	{"balance-scale", "⚖"},
	{"bell", "🔔"},
	{"bicycle", "🚲"},
	{"birthday-cake", "🎂"},
	{"bug", "🐛"},
	{"bullhorn", "📢"},
	{"camera", "📷"},
	{"child", "🧒"},
	{"cut", "✂"},
	{"desktop", "🖥"},
	{"envelope", "✉"},
	{"eye", "👁"},
	{"flag", "🚩"},
	{"flask", "🧪"},
	{"gem", "💎"},
	{"gift", "🎁"},
	{"heart", "♥"},
	{"home", "🏠"},
	{"key", "🔑"},
	{"leaf", "🍃"},
	{"lightbulb", "💡"},
	{"microphone", "🎤"},
	{"music", "♪"},
	{"paperclip", "📎"},
	{"paw", "🐾"},
	{"plane", "✈"},
	{"rocket", "🚀"},
	{"search", "🔍"},
	{"shopping-cart", "🛒"},
	{"smile", "☺"},
	{"snowflake", "❄"},
	{"sun", "☀"},
	{"tag", "🏷"},
	{"thumbtack", "📌"},
	{"tree", "🌲"},
	{"trophy", "🏆"},
	{"umbrella", "☂"},
	{"utensils", "🍴"},
}

var defaultColors = []Color{
	{"color1", "9"},
	{"color2", "10"},
	{"color3", "12"},
	{"color4", "13"},
}

// DefaultFaces returns a copy of the built-in face catalog.
func DefaultFaces() []Face {
	out := make([]Face, len(defaultFaces))
	copy(out, defaultFaces)
	return out
}

// DefaultColors returns a copy of the built-in color catalog.
func DefaultColors() []Color {
	out := make([]Color, len(defaultColors))
	copy(out, defaultColors)
	return out
}
