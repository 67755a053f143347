package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bloompath/internal/ui/theme"
)

const bannerArt = `▗▄▄▖ ▗▖    ▗▄▖  ▗▄▖ ▗▖  ▗▖▗▄▄▖  ▗▄▖▗▄▄▄▖▗▖ ▗▖
▐▌ ▐▌▐▌   ▐▌ ▐▌▐▌ ▐▌▐▛▚▞▜▌▐▌ ▐▌▐▌ ▐▌ █  ▐▌ ▐▌
▐▛▀▚▖▐▌   ▐▌ ▐▌▐▌ ▐▌▐▌  ▐▌▐▛▀▘ ▐▛▀▜▌ █  ▐▛▀▜▌
▐▙▄▞▘▐▙▄▄▖▝▚▄▞▘▝▚▄▞▘▐▌  ▐▌▐▌   ▐▌ ▐▌ █  ▐▌ ▐▌`

// RenderBanner renders the application banner, centered for the width.
func RenderBanner(width int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Width(width).
		Align(lipgloss.Center).
		Render(bannerArt)
}
