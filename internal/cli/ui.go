package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/navagraha/jyotish/pkg/catalog"
	"github.com/navagraha/jyotish/pkg/dignity"
	"github.com/navagraha/jyotish/pkg/strength"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success, benefics
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors, malefics
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleBenefic = lipgloss.NewStyle().Foreground(colorGreen)
	styleMalefic = lipgloss.NewStyle().Foreground(colorRed)
	styleNeutral = lipgloss.NewStyle().Foreground(colorGray)

	styleStrong = lipgloss.NewStyle().Foreground(colorGreen)
	styleWeak   = lipgloss.NewStyle().Foreground(colorRed)
	styleMiddle = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess    = "✓"
	iconError      = "✗"
	iconWarning    = "!"
	iconInfo       = "›"
	iconArrow      = "→"
	iconRetrograde = "℞"
	iconCached     = "cached"
	iconFresh      = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printTitle prints a section heading.
func printTitle(title string) {
	fmt.Println(StyleTitle.Render(title))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// printCacheStatus prints whether the chart came from the cache.
func printCacheStatus(hit bool) {
	status := iconFresh
	statusStyle := styleComputed
	if hit {
		status = iconCached
		statusStyle = styleCached
	}
	fmt.Println("  " + statusStyle.Render(status))
}

// printNewline prints an empty line.
func printNewline() {
	fmt.Println()
}

// =============================================================================
// Domain Styling
// =============================================================================

// styleForBody colors a body name by its natural benefic/malefic nature.
func styleForBody(body catalog.Body) lipgloss.Style {
	switch body.Nature() {
	case catalog.Benefic:
		return styleBenefic
	case catalog.Malefic:
		return styleMalefic
	default:
		return styleNeutral
	}
}

// styleForDignity colors a dignity label.
func styleForDignity(d dignity.Dignity) lipgloss.Style {
	if d.Strong() {
		return styleStrong
	}
	if d == dignity.Debilitated || d == dignity.DebilitatedExact || d == dignity.EnemySign {
		return styleWeak
	}
	return styleNeutral
}

// styleForCategory colors a house strength category.
func styleForCategory(category string) lipgloss.Style {
	switch category {
	case strength.VeryStrong, strength.Strong:
		return styleStrong
	case strength.Weak, strength.VeryWeak:
		return styleWeak
	default:
		return styleMiddle
	}
}

// retroMarker returns the retrograde marker for a position, or blank.
func retroMarker(retrograde bool) string {
	if !retrograde {
		return " "
	}
	return StyleWarning.Render(iconRetrograde)
}
