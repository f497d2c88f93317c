package icon

// Icon identifies a single UI symbol in the global registry.
type Icon int

const (
	Play Icon = iota + 1
	Pause
	Stop
	Next
	Prev
	Volume
	Mute
	Progress
	Success
	Fail
	Question
	Search
	Folder
	Film
	Note
	Mark
)

// icons maps each Icon identifier to its multi-variant visual definitions.
var icons = map[Icon]*iconDef{
	Play: {
		emoji:   "▶️",
		nerd:    "",
		plain:   ">",
		kaomoji: "( ´ ▽ ` )ﾉ",
		squares: "🞂",
	},
	Pause: {
		emoji:   "⏸️",
		nerd:    "",
		plain:   "||",
		kaomoji: "(・_・)",
		squares: "🞏🞏",
	},
	Stop: {
		emoji:   "⏹️",
		nerd:    "",
		plain:   "[]",
		kaomoji: "(￣□￣)",
		squares: "🞓",
	},
	Next: {
		emoji:   "⏭️",
		nerd:    "",
		plain:   ">>",
		kaomoji: "(☞ﾟヮﾟ)☞",
		squares: "🞂🞂",
	},
	Prev: {
		emoji:   "⏮️",
		nerd:    "",
		plain:   "<<",
		kaomoji: "☜(ﾟヮﾟ☜)",
		squares: "🞀🞀",
	},
	Volume: {
		emoji:   "🔊",
		nerd:    "墳",
		plain:   "vol",
		kaomoji: "( ﾟoﾟ)",
		squares: "🞔",
	},
	Mute: {
		emoji:   "🔇",
		nerd:    "婢",
		plain:   "mut",
		kaomoji: "(-x-)",
		squares: "🞎",
	},
	Progress: {
		emoji:   "🍥",
		nerd:    "",
		plain:   "@",
		kaomoji: "┗(＾0＾)┓",
		squares: "🞔",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "+",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🞕",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "x",
		kaomoji: "(╥﹏╥)",
		squares: "🞬",
	},
	Question: {
		emoji:   "❓",
		nerd:    "",
		plain:   "?",
		kaomoji: "(・・ ) ?",
		squares: "🞔",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "/",
		kaomoji: "(つ✧ω✧)つ",
		squares: "🞅",
	},
	Folder: {
		emoji:   "📁",
		nerd:    "",
		plain:   "dir",
		kaomoji: "〆(・∀・)",
		squares: "🞑",
	},
	Film: {
		emoji:   "🎬",
		nerd:    "",
		plain:   "#",
		kaomoji: "( ꒪﹃ ꒪)",
		squares: "🞒",
	},
	Note: {
		emoji:   "🎵",
		nerd:    "",
		plain:   "~",
		kaomoji: "♪(´ε｀ )",
		squares: "🞛",
	},
	Mark: {
		emoji:   "🪶",
		nerd:    "",
		plain:   "*",
		kaomoji: "(￣ω￣)",
		squares: "🞙",
	},
}
