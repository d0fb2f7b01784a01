package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

type LipglossRenderer struct {
	width int
	r     *lipgloss.Renderer

	titleStyle    lipgloss.Style
	metaStyle     lipgloss.Style
	techStyle     lipgloss.Style
	disabledStyle lipgloss.Style
	statusStyles  map[string]lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:         width,
		r:             r,
		titleStyle:    r.NewStyle().Bold(true),
		metaStyle:     r.NewStyle().Faint(true),
		techStyle:     r.NewStyle(),
		disabledStyle: r.NewStyle().Faint(true),
		statusStyles: map[string]lipgloss.Style{
			"completed":   r.NewStyle().Foreground(lipgloss.Color("10")),
			"in-progress": r.NewStyle().Foreground(lipgloss.Color("11")),
			"demo":        r.NewStyle().Foreground(lipgloss.Color("12")),
		},
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width)
}

func (r *LipglossRenderer) RenderEntryList(view EntryListView) string {
	if view.IsEmpty() {
		return "No entries found.\n"
	}

	var sb strings.Builder
	for i, item := range view.Items {
		last := i == len(view.Items)-1
		sb.WriteString(r.renderItem(item, last))
	}
	sb.WriteString("\n")
	return sb.String()
}

func (r *LipglossRenderer) renderItem(item EntryListItem, last bool) string {
	titleStyle := r.titleStyle
	metaStyle := r.metaStyle
	techStyle := r.techStyle
	statusStyle, ok := r.statusStyles[item.Status]
	if !ok {
		statusStyle = r.metaStyle
	}
	if item.Disabled {
		titleStyle = r.disabledStyle.Bold(true)
		techStyle = r.disabledStyle
		statusStyle = r.disabledStyle
	}

	title := titleStyle.Render(item.Title)
	status := statusStyle.Render(item.Status)

	padding := max(1, r.width-lipgloss.Width(title)-lipgloss.Width(status))
	lines := []string{
		title + strings.Repeat(" ", padding) + status,
		metaStyle.Render(fmt.Sprintf("  #%d  %s  %s", item.Order, item.Category, item.ID)),
	}
	if item.Technologies != "" {
		lines = append(lines, techStyle.Render("  "+item.Technologies))
	}
	if item.Disabled {
		msg := "disabled"
		if item.DisabledMessage != "" {
			msg += ": " + item.DisabledMessage
		}
		lines = append(lines, r.disabledStyle.Render("  "+msg))
	}
	if !last {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
