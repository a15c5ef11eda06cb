package menu

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsprint/internal/ui/theme"
)

const bannerArt = `
 ███╗   ███╗ █████╗ ████████╗██╗  ██╗███████╗██████╗ ██████╗ ██╗███╗   ██╗████████╗
 ████╗ ████║██╔══██╗╚══██╔══╝██║  ██║██╔════╝██╔══██╗██╔══██╗██║████╗  ██║╚══██╔══╝
 ██╔████╔██║███████║   ██║   ███████║███████╗██████╔╝██████╔╝██║██╔██╗ ██║   ██║
 ██║╚██╔╝██║██╔══██║   ██║   ██╔══██║╚════██║██╔═══╝ ██╔══██╗██║██║╚██╗██║   ██║
 ██║ ╚═╝ ██║██║  ██║   ██║   ██║  ██║███████║██║     ██║  ██║██║██║ ╚████║   ██║
 ╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝╚══════╝╚═╝     ╚═╝  ╚═╝╚═╝╚═╝  ╚═══╝   ╚═╝`

const bannerWidth = 83

const bannerCompact = "M A T H S P R I N T"

// bannerMinHeight is the content height needed for the art above the menu.
const bannerMinHeight = 28

// renderBanner returns the MATHSPRINT banner styled in the primary color,
// falling back to a compact form when the art would not fit.
func renderBanner(width, height int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth+2 || height < bannerMinHeight {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
