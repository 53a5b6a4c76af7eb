package ui

// iconGlyphs maps the seed's icon names to single-cell glyphs.
var iconGlyphs = map[string]string{
	"Bot":           "◉",
	"Code2":         "⌘",
	"Palette":       "✎",
	"Calculator":    "∑",
	"Mic":           "♪",
	"BarChart3":     "▥",
	"GraduationCap": "✪",
	"FileText":      "▤",
	"Sparkles":      "✧",
	"Globe":         "◍",
	"Lightbulb":     "✦",
}

// Icon returns the glyph for an icon name, falling back to the bot glyph.
func Icon(name string) string {
	if g, ok := iconGlyphs[name]; ok {
		return g
	}
	return iconGlyphs["Bot"]
}
