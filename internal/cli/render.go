package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/hyh0309/cvue/internal/catalog"
	"github.com/hyh0309/cvue/internal/ui"
	"github.com/hyh0309/cvue/pkg/models"
)

// defaultTermWidth is used when stdout is not a terminal.
const defaultTermWidth = 100

// printer writes styled status lines and cards to a command's output.
type printer struct {
	out   io.Writer
	theme *ui.Theme
}

func newPrinter(out io.Writer, theme *ui.Theme) *printer {
	return &printer{out: out, theme: theme}
}

// Success prints a "✓" line.
func (p *printer) Success(msg string) {
	_, _ = fmt.Fprintln(p.out, p.theme.Style(p.theme.Colors.Success).Render("✓")+" "+msg)
}

// Info prints an "ℹ" line.
func (p *printer) Info(msg string) {
	_, _ = fmt.Fprintln(p.out, p.theme.Style(p.theme.Colors.Primary).Render("ℹ")+" "+msg)
}

// Warn prints a "⚠" line.
func (p *printer) Warn(msg string) {
	_, _ = fmt.Fprintln(p.out, p.theme.Style(p.theme.Colors.Warning).Render("⚠")+" "+msg)
}

// Error prints a "✗" line.
func (p *printer) Error(msg string) {
	_, _ = fmt.Fprintln(p.out, p.theme.Style(p.theme.Colors.Error).Render("✗")+" "+msg)
}

func (p *printer) cardStyle() lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)
	if !p.theme.NoColor {
		s = s.BorderForeground(lipgloss.Color(p.theme.Colors.Border))
	}
	return s
}

// renderCard renders a titled card.
func (p *printer) renderCard(title, content string) string {
	titleLine := p.theme.Style(p.theme.Colors.Primary).Bold(true).Render(title)
	return p.cardStyle().Render(titleLine + "\n\n" + content)
}

// renderSuccessCard renders a card whose title carries a check mark.
func (p *printer) renderSuccessCard(title string, details ...string) string {
	titleLine := p.theme.Style(p.theme.Colors.Success).Render("✓") + " " + title
	var body strings.Builder
	body.WriteString(titleLine)
	if len(details) > 0 {
		body.WriteString("\n\n")
		body.WriteString(strings.Join(details, "\n"))
	}
	return p.cardStyle().Render(body.String())
}

// kvPair is one line of a key/value card.
type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines aligns keys into a column.
func (p *printer) renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, kv := range pairs {
		width = max(width, lipgloss.Width(kv.key))
	}
	keyStyle := p.theme.Style(p.theme.Colors.Muted).Width(width + 2)
	lines := make([]string, len(pairs))
	for i, kv := range pairs {
		lines[i] = keyStyle.Render(kv.key) + kv.value
	}
	return strings.Join(lines, "\n")
}

// renderTemplateDetail renders one template as a card.
func (p *printer) renderTemplateDetail(t models.Template) string {
	def := "no"
	if t.IsDefault {
		def = p.theme.Style(p.theme.Colors.Success).Render("✓ yes")
	}
	return p.renderCard("Template "+t.Alias, p.renderKeyValueLines([]kvPair{
		{"Alias", t.Alias},
		{"Repository", t.Repo},
		{"Description", t.Description},
		{"Default", def},
	}))
}

// renderCatalogTable renders the catalog. Descriptions are truncated to a
// third of width.
func (p *printer) renderCatalogTable(c catalog.Catalog, width int) string {
	descWidth := max(width/3, 12)

	rows := make([][]string, len(c))
	for i, t := range c {
		def := ""
		if t.IsDefault {
			def = "✓"
		}
		rows[i] = []string{t.Alias, t.Repo, truncate(t.Description, descWidth), def}
	}

	header := p.theme.Style(p.theme.Colors.Primary).Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	check := p.theme.Style(p.theme.Colors.Success).Padding(0, 1).Align(lipgloss.Center)

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(p.theme.Style(p.theme.Colors.Border)).
		Headers("ALIAS", "REPOSITORY", "DESCRIPTION", "DEFAULT").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 3:
				return check
			default:
				return cell
			}
		})
	return tbl.String()
}

// renderBanner returns the startup banner.
func (p *printer) renderBanner(version string) string {
	name := p.theme.Style(p.theme.Colors.Primary).Bold(true).Render("cvue")
	tag := p.theme.Style(p.theme.Colors.Muted).Render("Vue project scaffolding " + version)
	return name + " " + tag
}

// truncate shortens s to at most n display cells, ending in "...".
func truncate(s string, n int) string {
	if lipgloss.Width(s) <= n {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+3 > n {
		r = r[:len(r)-1]
	}
	return strings.TrimRight(string(r), " ") + "..."
}

// termWidth returns the width of stdout, or defaultTermWidth when it is not a terminal.
func termWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultTermWidth
	}
	return w
}
