// Package render provides terminal styling and output formatting for stackup.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Adaptive palette for light and dark terminals.
var (
	ColorPass = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#c2d94c"}
	ColorWarn = lipgloss.AdaptiveColor{Light: "#f2ae49", Dark: "#ffb454"}
	ColorFail = lipgloss.AdaptiveColor{Light: "#f07171", Dark: "#f07178"}
	ColorMute = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"}
	ColorInfo = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}
)

var (
	passStyle    = lipgloss.NewStyle().Foreground(ColorPass)
	warnStyle    = lipgloss.NewStyle().Foreground(ColorWarn)
	failStyle    = lipgloss.NewStyle().Foreground(ColorFail)
	mutedStyle   = lipgloss.NewStyle().Foreground(ColorMute)
	infoStyle    = lipgloss.NewStyle().Foreground(ColorInfo)
	sectionStyle = lipgloss.NewStyle().Bold(true)
)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Border(lipgloss.DoubleBorder()).
	Padding(0, 2)

// Status icons.
const (
	IconPass = "✔"
	IconWarn = "⚠"
	IconFail = "✖"
	IconInfo = "·"
	IconAsk  = "→"
)

const sectionWidth = 46

// Pass renders s in the success color.
func Pass(s string) string {
	return passStyle.Render(s)
}

// Warn renders s in the warning color.
func Warn(s string) string {
	return warnStyle.Render(s)
}

// Fail renders s in the failure color.
func Fail(s string) string {
	return failStyle.Render(s)
}

// Muted renders s dimmed.
func Muted(s string) string {
	return mutedStyle.Render(s)
}

// Info renders s in the accent color.
func Info(s string) string {
	return infoStyle.Render(s)
}

// Marker is the prompt arrow.
func Marker() string {
	return warnStyle.Render(IconAsk)
}

// Section renders "── Title ─────..." padded to a fixed width.
func Section(title string) string {
	fill := sectionWidth - len(title) - 4
	if fill < 0 {
		fill = 0
	}
	return sectionStyle.Render("── " + title + " " + strings.Repeat("─", fill))
}

// Banner renders the boxed program title.
func Banner(lines ...string) string {
	return bannerStyle.Render(strings.Join(lines, "\n"))
}
