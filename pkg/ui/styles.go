package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/modelaudit/modelaudit/pkg/finding"
)

// Color palette inspired by nuclei/httpx style security tooling.
var (
	// Brand colors
	Primary   = lipgloss.Color("#7D56F4")
	Secondary = lipgloss.Color("#00D4AA")

	// Severity colors
	CriticalColor = lipgloss.Color("#FF0000")
	HighColor     = lipgloss.Color("#FF6B6B")
	MediumColor   = lipgloss.Color("#FFD93D")
	LowColor      = lipgloss.Color("#4D96FF")
	PassColor     = lipgloss.Color("#00D26A")

	// Status colors
	Muted = lipgloss.Color("#6B7280")
)

// Pre-configured styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(Primary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	BannerStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	VersionStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	StatLabelStyle = lipgloss.NewStyle().
			Foreground(Muted)

	StatValueStyle = lipgloss.NewStyle().
			Bold(true)

	BracketStyle = lipgloss.NewStyle().
			Foreground(Muted)

	SectionStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	DividerStyle = lipgloss.NewStyle().
			Foreground(Muted)

	ConfigLabelStyle = lipgloss.NewStyle().
				Foreground(Muted)

	ConfigValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA"))

	criticalStyle = lipgloss.NewStyle().Foreground(CriticalColor).Bold(true)
	highStyle     = lipgloss.NewStyle().Foreground(HighColor).Bold(true)
	mediumStyle   = lipgloss.NewStyle().Foreground(MediumColor)
	lowStyle      = lipgloss.NewStyle().Foreground(LowColor)
	passStyle     = lipgloss.NewStyle().Foreground(PassColor)
)

// SeverityStyle returns the display style for a severity tier.
func SeverityStyle(sev finding.Severity) lipgloss.Style {
	switch sev {
	case finding.Critical:
		return criticalStyle
	case finding.High:
		return highStyle
	case finding.Medium:
		return mediumStyle
	case finding.Low:
		return lowStyle
	default:
		return passStyle
	}
}

// Badge renders a "[severity]" badge for result lines.
func Badge(sev finding.Severity) string {
	return BracketStyle.Render("[") +
		SeverityStyle(sev).Render(sev.String()) +
		BracketStyle.Render("]")
}
