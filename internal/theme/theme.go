package theme

import (
	"charm.land/lipgloss/v2"
)

type Theme struct {
	base    lipgloss.Style
	ok      lipgloss.Style
	timeout lipgloss.Style
	failed  lipgloss.Style
	url     lipgloss.Style
	dim     lipgloss.Style
}

func New() Theme {
	var t Theme

	t.base = lipgloss.NewStyle().Foreground(ColorWhite)
	t.ok = lipgloss.NewStyle().Foreground(ColorOK).Bold(true)
	t.timeout = lipgloss.NewStyle().Foreground(ColorTimeout).Bold(true)
	t.failed = lipgloss.NewStyle().Foreground(ColorFailed).Bold(true)
	t.url = lipgloss.NewStyle().Foreground(ColorURL)
	t.dim = lipgloss.NewStyle().Foreground(ColorDim)

	return t
}

func (t Theme) Base() lipgloss.Style    { return t.base }
func (t Theme) OK() lipgloss.Style      { return t.ok }
func (t Theme) Timeout() lipgloss.Style { return t.timeout }
func (t Theme) Failed() lipgloss.Style  { return t.failed }
func (t Theme) URL() lipgloss.Style     { return t.url }
func (t Theme) Dim() lipgloss.Style     { return t.dim }
