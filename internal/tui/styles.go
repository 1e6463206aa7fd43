// Package tui hosts dialogs in a Bubble Tea program.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/alertbox/internal/dialog"
	"github.com/hay-kot/alertbox/internal/dom"
	"github.com/hay-kot/alertbox/internal/styles"
)

// Modal layout constants.
const (
	modalPadding  = 4 // horizontal padding inside the border
	glamourGutter = 2 // glamour adds gutter space
	overlayChar   = "░"
)

var (
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.ColorBlue).
			Padding(1, 2)

	// Positioned off-screen, entering or leaving.
	modalAwayStyle = modalStyle.
			BorderForeground(styles.ColorGray).
			Faint(true)

	focusedButtonStyle = lipgloss.NewStyle().
				Bold(true).
				Underline(true)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(styles.ColorGray).
			Padding(0, 1)

	modalHelpStyle = lipgloss.NewStyle().
			Foreground(styles.ColorGray).
			MarginTop(1)
)

// classStyle maps one class name to the colors it contributes. When several
// classes match, later entries win. Spacing is applied by the layout since
// Inherit does not carry it.
type classStyle struct {
	class string
	style lipgloss.Style
}

var classStyles = []classStyle{
	{"alert-js-header-primary", lipgloss.NewStyle().Foreground(styles.ColorBlue)},
	{dialog.ClassBody, lipgloss.NewStyle().Foreground(styles.ColorWhite)},
	{dialog.ClassButton, lipgloss.NewStyle().Foreground(styles.ColorWhite).Background(styles.ColorShade)},
	{dialog.ClassButtonOK, lipgloss.NewStyle().Foreground(styles.ColorDark).Background(styles.ColorGreen)},
	{dialog.ClassButtonCancel, lipgloss.NewStyle().Foreground(styles.ColorWhite).Background(styles.ColorGray)},
}

// tagStyles apply by element name. Class styles on the same node win.
var tagStyles = map[string]lipgloss.Style{
	"h1": lipgloss.NewStyle().Bold(true),
	"h2": lipgloss.NewStyle().Foreground(styles.ColorGray).Italic(true),
}

// styleFor resolves the style of n. A node inherits whatever its ancestors
// set and it does not.
func styleFor(n *dom.Node) lipgloss.Style {
	s := lipgloss.NewStyle()
	for cur := n; cur != nil; cur = cur.Parent() {
		s = s.Inherit(ownStyle(cur))
	}
	return s
}

func ownStyle(n *dom.Node) lipgloss.Style {
	s := lipgloss.NewStyle()
	for i := len(classStyles) - 1; i >= 0; i-- {
		if n.HasClass(classStyles[i].class) {
			s = s.Inherit(classStyles[i].style)
		}
	}
	if ts, ok := tagStyles[n.Tag()]; ok {
		s = s.Inherit(ts)
	}
	return s
}
