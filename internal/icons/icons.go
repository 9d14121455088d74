// Package icons picks the glyphs drawn in the header toolbar.
package icons

import "strings"

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Back     string
	Favorite string
	Share    string
	More     string
}

var (
	nerdIcons = Icons{
		Back:     "\uf060", // nf-fa-arrow_left
		Favorite: "󰣐",      // nf-md-heart
		Share:    "\uf1e0", // nf-fa-share_alt
		More:     "󰇙",      // nf-md-dots_vertical
	}

	unicodeIcons = Icons{
		Back:     "←",
		Favorite: "♡",
		Share:    "⇪",
		More:     "⋮",
	}

	noneIcons = Icons{
		Back:     "<",
		Favorite: "*",
		Share:    "^",
		More:     "=",
	}

	// current holds the active icon set
	current = unicodeIcons
)

// Init selects the icon set. Call this once at startup with the config
// value; unknown styles fall back to unicode.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleNone:
		current = noneIcons
	default:
		current = unicodeIcons
	}
}

// Back returns the navigation icon.
func Back() string {
	return current.Back
}

// Favorite returns the favorite/heart icon.
func Favorite() string {
	return current.Favorite
}

// Actions returns the toolbar action icons separated by single spaces.
func Actions() string {
	return strings.Join([]string{current.Favorite, current.Share, current.More}, " ")
}
