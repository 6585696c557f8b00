package theme

import "charm.land/lipgloss/v2"

var (
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorOK      = lipgloss.Color("#00F19F") // 2xx responses
	ColorTimeout = lipgloss.Color("#FFDE00") // deadline elapsed
	ColorFailed  = lipgloss.Color("#FF0026") // network and http failures
	ColorURL     = lipgloss.Color("#67AEE6")
)
