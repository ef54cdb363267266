package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Indigo-on-slate palette.
var (
	ColorIndigo  = lipgloss.Color("#6366f1")
	ColorEmerald = lipgloss.Color("#10b981")
	ColorAmber   = lipgloss.Color("#f59e0b")
	ColorRose    = lipgloss.Color("#f43f5e")
	ColorSky     = lipgloss.Color("#0ea5e9")
	ColorDim     = lipgloss.Color("#64748b")
	ColorFg      = lipgloss.Color("#e2e8f0")
)

var (
	StyleIndigo  = lipgloss.NewStyle().Foreground(ColorIndigo)
	StyleGreen   = lipgloss.NewStyle().Foreground(ColorEmerald)
	StyleYellow  = lipgloss.NewStyle().Foreground(ColorAmber)
	StyleRed     = lipgloss.NewStyle().Foreground(ColorRose)
	StyleBlue    = lipgloss.NewStyle().Foreground(ColorSky)
	StyleDim     = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg      = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader  = lipgloss.NewStyle().Foreground(ColorIndigo).Bold(true)
	StyleBold    = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorEmerald).Bold(true)
)

// Header renders an upper-cased section title over a rule.
func Header(text string) string {
	upper := strings.ToUpper(text)
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(strings.Repeat("─", len([]rune(upper)))))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}

// Success renders a confirmation line prefixed with a check mark.
func Success(text string) string {
	return StyleSuccess.Render("✔ ") + text
}

// Swatch renders a coloured dot for a hex accent such as a client colour.
// An empty colour renders a dim dot.
func Swatch(hex string) string {
	if hex == "" {
		return StyleDim.Render("●")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("●")
}
