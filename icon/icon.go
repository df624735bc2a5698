// Package icon renders status symbols in the variant chosen by icons.variant.
package icon

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/tscribe-cli/tscribe/key"
	"github.com/tscribe-cli/tscribe/style"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns every supported icons.variant value.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// iconDef holds one glyph per variant. Emoji keep their own colors, the rest are tinted.
type iconDef struct {
	tint   lipgloss.Color
	glyphs map[string]string
}

func (d iconDef) render(variant string) string {
	glyph, ok := d.glyphs[variant]
	if !ok {
		return ""
	}
	if variant == emoji {
		return glyph
	}
	return style.Fg(d.tint)(glyph)
}

// Get renders i using the configured variant. Unknown icons and variants render nothing.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	return def.render(viper.GetString(key.IconsVariant))
}
