// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#4ECDC4") // Teal
	// UserColor marks operator questions.
	UserColor = lipgloss.Color("#FFE66D") // Yellow
	// BotColor marks engine answers.
	BotColor = lipgloss.Color("#95E1D3") // Light teal
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// UserStyle formats the operator's own lines in the transcript.
	UserStyle = lipgloss.NewStyle().
			Foreground(UserColor).
			Bold(true)

	// BotStyle formats engine answers.
	BotStyle = lipgloss.NewStyle().
			Foreground(BotColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().Bold(true)
)

// RenderAnswer converts the engine's inline markup (*emphasis* and plain
// newlines) into styled terminal output.
func RenderAnswer(text string) string {
	var b strings.Builder
	parts := strings.Split(text, "*")
	for i, p := range parts {
		if i%2 == 1 && i < len(parts)-1 {
			b.WriteString(BoldStyle.Render(p))
			continue
		}
		b.WriteString(p)
	}
	return BotStyle.Render(b.String())
}
