package ui

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	activeSymbol   = "◆"
	completeSymbol = "◇"
	checkSymbol    = "✓"
	separator      = " · "
)

func WizardTheme() *huh.Theme {
	t := huh.ThemeBase()
	red := lipgloss.Color("1")
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.SetString("✗").Foreground(red)
	t.Blurred.ErrorMessage = t.Blurred.ErrorMessage.SetString("✗").Foreground(red)
	return t
}

// Field is one row of an entry summary.
type Field struct {
	Label    string
	Value    string
	Optional bool
}

// panel accumulates a left-bordered block:
//
//	┌ heading
//	│ line
//	└
type panel struct {
	b      strings.Builder
	border lipgloss.Style
}

func newPanel(heading string) *panel {
	p := &panel{border: lipgloss.NewStyle().Foreground(lipgloss.Color("8"))}
	p.b.WriteString(p.border.Render("┌") + " " + heading + "\n")
	return p
}

// line writes a side-bordered row; an empty text leaves a bare spacer.
func (p *panel) line(text string) {
	p.b.WriteString(p.border.Render("│"))
	if text != "" {
		p.b.WriteString(" " + text)
	}
	p.b.WriteString("\n")
}

func (p *panel) close() string {
	p.b.WriteString(p.border.Render("└") + "\n")
	return p.b.String()
}

// RenderWizard draws the collapsed summary of an entry form. Fields without
// a value are hidden unless they are the active one.
func RenderWizard(title string, fields []Field, activeIdx int) string {
	p := newPanel(title)
	p.line("")

	for i, f := range fields {
		switch {
		case i == activeIdx && f.Optional:
			p.b.WriteString(activeSymbol + " " + f.Label + " (optional)\n")
		case i == activeIdx:
			p.b.WriteString(activeSymbol + " " + f.Label + "\n")
		case f.Value != "":
			p.b.WriteString(completeSymbol + " " + f.Label + separator + f.Value + "\n")
		}
	}

	if activeIdx >= 0 && activeIdx < len(fields) {
		p.line("")
	}
	return p.close()
}

// RenderSuccess reports a completed mutation: the verb and entry title, the
// entry id when known, then one line per check.
func RenderSuccess(verb, title, id string, checks []string) string {
	p := newPanel(activeSymbol + " " + verb + " " + title)
	if id != "" {
		p.line(id)
	}
	if len(checks) > 0 {
		p.line("")
	}
	for _, c := range checks {
		p.line(checkSymbol + " " + c)
	}
	return p.close()
}
