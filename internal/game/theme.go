package game

import (
	"strconv"

	"github.com/vovakirdan/tui2048/internal/core"
)

// TileStyle describes how one tile value is drawn.
type TileStyle struct {
	Value int
	Emoji string
	Color core.Color
}

// TileStyles lists the styles for the classic tile values in ascending order.
var TileStyles = []TileStyle{
	{Value: 2, Emoji: "🌱", Color: core.ColorWhite},
	{Value: 4, Emoji: "🌿", Color: core.ColorBrightWhite},
	{Value: 8, Emoji: "🔥", Color: core.ColorOrange},
	{Value: 16, Emoji: "⚡", Color: core.ColorBrightRed},
	{Value: 32, Emoji: "💎", Color: core.ColorRed},
	{Value: 64, Emoji: "🌟", Color: core.ColorMagenta},
	{Value: 128, Emoji: "🎯", Color: core.ColorYellow},
	{Value: 256, Emoji: "🚀", Color: core.ColorBrightYellow},
	{Value: 512, Emoji: "🧠", Color: core.ColorPink},
	{Value: 1024, Emoji: "👑", Color: core.ColorBrightGreen},
	{Value: 2048, Emoji: "🏆", Color: core.ColorGold},
}

// beyond is used for every value past the table.
var beyond = TileStyle{Emoji: "🌌", Color: core.ColorBrightCyan}

// StyleFor returns the style of a tile value.
func StyleFor(value int) TileStyle {
	for _, s := range TileStyles {
		if s.Value == value {
			return s
		}
	}
	s := beyond
	s.Value = value
	return s
}

// TileEmoji returns the emoji label of a tile value.
func TileEmoji(value int) string {
	return StyleFor(value).Emoji
}

// TileLabel returns the number label of a tile value, empty for an empty cell.
func TileLabel(value int) string {
	if value == 0 {
		return ""
	}
	return strconv.Itoa(value)
}
