package icon

import (
	"github.com/tscribe-cli/tscribe/color"
)

// Icon identifies a status symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Skip
	Warn
	Season
	Download
	Search
	Manifest
)

var icons = map[Icon]iconDef{
	Success: {
		tint:   color.Green,
		glyphs: map[string]string{
			emoji:   "✅",
			nerd:    "",
			plain:   "+",
			kaomoji: "(ᵔ◡ᵔ)",
			squares: "■",
		},
	},
	Fail: {
		tint:   color.Red,
		glyphs: map[string]string{
			emoji:   "❌",
			nerd:    "",
			plain:   "x",
			kaomoji: "(╥﹏╥)",
			squares: "■",
		},
	},
	Skip: {
		tint:   color.Gray,
		glyphs: map[string]string{
			emoji:   "⏭️",
			nerd:    "",
			plain:   "=",
			kaomoji: "(￣ー￣)",
			squares: "□",
		},
	},
	Warn: {
		tint:   color.Yellow,
		glyphs: map[string]string{
			emoji:   "⚠️",
			nerd:    "",
			plain:   "!",
			kaomoji: "(・_・;)",
			squares: "■",
		},
	},
	Season: {
		tint:   color.Cyan,
		glyphs: map[string]string{
			emoji:   "📺",
			nerd:    "",
			plain:   "#",
			kaomoji: "(⌐■_■)",
			squares: "▣",
		},
	},
	Download: {
		tint:   color.Blue,
		glyphs: map[string]string{
			emoji:   "📥",
			nerd:    "",
			plain:   "v",
			kaomoji: "(っ˘ڡ˘ς)",
			squares: "▼",
		},
	},
	Search: {
		tint:   color.Purple,
		glyphs: map[string]string{
			emoji:   "🔍",
			nerd:    "",
			plain:   "?",
			kaomoji: "(・・ )?",
			squares: "◈",
		},
	},
	Manifest: {
		tint:   color.Orange,
		glyphs: map[string]string{
			emoji:   "📒",
			nerd:    "",
			plain:   "*",
			kaomoji: "φ(．．)",
			squares: "▤",
		},
	},
}
