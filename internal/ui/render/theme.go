package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background          tcell.Color
	Foreground          tcell.Color
	BorderFg            tcell.Color
	ActiveBorderFg      tcell.Color
	TitleFg             tcell.Color
	SelectionBg         tcell.Color
	SelectionFg         tcell.Color
	InactiveSelectionBg tcell.Color
	InactiveSelectionFg tcell.Color
	MarkerFg            tcell.Color
	MutedFg             tcell.Color
	FooterBg            tcell.Color
	FooterFg            tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:          tcell.ColorDefault,
		Foreground:          tcell.ColorDefault,
		BorderFg:            tcell.ColorGray,
		ActiveBorderFg:      tcell.Color33,
		TitleFg:             tcell.ColorDefault,
		SelectionBg:         tcell.Color33,
		SelectionFg:         tcell.ColorWhite,
		InactiveSelectionBg: tcell.Color238, // dim grey for the unfocused pane
		InactiveSelectionFg: tcell.Color252,
		MarkerFg:            tcell.Color44,
		MutedFg:             tcell.ColorLightSlateGray,
		FooterBg:            tcell.ColorDefault,
		FooterFg:            tcell.ColorDefault,
	}
}
