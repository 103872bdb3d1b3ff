// Package render prints one course outline as a boxed terminal view: the
// course name and title, a details table, the instructors and a Mon..Fri
// schedule grid.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/mghazyfawazh/outlines/internal/models"
	"github.com/mghazyfawazh/outlines/internal/outline"
	"github.com/mghazyfawazh/outlines/internal/weekgrid"
)

const (
	SFURed    = "#a6192e"
	minCellWidth = 10
	textWidth = 72
)

type Options struct {
	// WebURL is the human-facing outline page; the outline path is appended as the query.
	WebURL string
	Policy weekgrid.DuplicatePolicy
	// NoColor strips colours and text attributes but keeps the layout.
	NoColor bool
}

type styles struct {
	r       *lipgloss.Renderer
	name    lipgloss.Style
	title   lipgloss.Style
	key     lipgloss.Style
	block   lipgloss.Style
	cell    lipgloss.Style
	header  lipgloss.Style
	link    lipgloss.Style
	warn    lipgloss.Style
	caption lipgloss.Style
	panel   lipgloss.Style
}

func newStyles(w io.Writer, noColor bool) styles {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		r:       r,
		name:    r.NewStyle().Bold(true),
		title:   r.NewStyle().Bold(true).Underline(true),
		key:     r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		block:   r.NewStyle().Background(lipgloss.Color(SFURed)).Foreground(lipgloss.Color("15")).Align(lipgloss.Center),
		cell:    r.NewStyle().Align(lipgloss.Center),
		header:  r.NewStyle().Bold(true).Align(lipgloss.Center),
		link:    r.NewStyle().Foreground(lipgloss.Color("4")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("1")),
		caption: r.NewStyle().Italic(true),
		panel:   r.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1),
	}
}

// Render writes the outline view to w. A schedule that cannot be laid out is
// replaced by a diagnostic; the rest of the outline still renders.
func Render(w io.Writer, o *models.Outline, opts Options) error {
	st := newStyles(w, opts.NoColor)
	info := o.Info
	if info == nil {
		info = &models.Info{}
	}

	var parts []string
	parts = append(parts, st.name.Render(fmt.Sprintf("%s (%s)", models.OrNA(info.Name), models.OrNA(info.Units))))
	if title, ok := models.Get(info.Title); ok && strings.TrimSpace(title) != "" {
		parts = append(parts, "", st.title.Render(title))
	}
	if desc, ok := models.Get(info.Description); ok && strings.TrimSpace(desc) != "" {
		parts = append(parts, "", st.r.NewStyle().Width(textWidth).Render(PlainText(desc)))
	}
	parts = append(parts, "", details(st, o, info))
	if who := instructors(st, o.Instructor); who != "" {
		parts = append(parts, "", who)
	}
	parts = append(parts, "", schedule(st, o, opts.Policy))
	if ex := exams(st, o); ex != "" {
		parts = append(parts, "", ex)
	}
	if path, ok := models.Get(info.OutlinePath); ok && opts.WebURL != "" {
		parts = append(parts, "", st.link.Render(opts.WebURL+"?"+path))
	}

	_, err := fmt.Fprintln(w, st.panel.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
	return err
}

type row struct {
	key, value string
}

func details(st styles, o *models.Outline, info *models.Info) string {
	fields := []struct {
		key string
		val *string
	}{
		{"Term", info.Term},
		{"WQB", info.Designation},
		{"Delivery", info.DeliveryMethod},
		{"Prereqs", info.Prerequisites},
	}
	var rows []row
	for _, f := range fields {
		// absent fields are left out, sent-but-blank ones show N/A
		if _, ok := models.Get(f.val); !ok {
			continue
		}
		v := models.OrNA(f.val)
		if v != "N/A" {
			v = PlainText(v)
		}
		rows = append(rows, row{f.key, v})
	}
	rows = append(rows, row{"Campus", outline.Campus(o)})
	return keyValues(st, rows)
}

func instructors(st styles, list []models.Instructor) string {
	var rows []row
	for _, in := range list {
		name, ok := models.Get(in.Name)
		if !ok || strings.TrimSpace(name) == "" {
			continue
		}
		if email := strings.TrimSpace(models.Value(in.Email)); email != "" {
			name += " <" + email + ">"
		}
		rows = append(rows, row{"Instructor", name})
	}
	return keyValues(st, rows)
}

func exams(st styles, o *models.Outline) string {
	var rows []row
	for _, e := range outline.Exams(o) {
		var fields []string
		if date := strings.TrimSpace(models.Value(e.StartDate)); date != "" {
			fields = append(fields, date)
		}
		if start, end := models.Value(e.StartTime), models.Value(e.EndTime); start != "" && end != "" {
			fields = append(fields, start+"-"+end)
		}
		if loc := outline.Location(e); loc != "" {
			fields = append(fields, loc)
		}
		if len(fields) == 0 {
			continue
		}
		rows = append(rows, row{"Exam", strings.Join(fields, " ")})
	}
	return keyValues(st, rows)
}

func keyValues(st styles, rows []row) string {
	width := 0
	for _, r := range rows {
		if len(r.key) > width {
			width = len(r.key)
		}
	}
	keyCol := st.key.Width(width + 2)
	valCol := st.r.NewStyle().Width(textWidth - width - 2)
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top, keyCol.Render(r.key), valCol.Render(r.value))
	}
	return strings.Join(lines, "\n")
}

func schedule(st styles, o *models.Outline, policy weekgrid.DuplicatePolicy) string {
	caption := st.caption.Render("Schedule")
	g, err := outline.Grid(o, policy)
	if err != nil {
		return caption + "\n" + st.warn.Render("Schedule unavailable: "+err.Error())
	}
	if g == nil {
		return caption + "\n" + "No schedule available"
	}
	return caption + "\n" + grid(st, g)
}

// grid draws the week grid as a bordered table with the time blocks
// highlighted. Every grid line stays on one row so blocks starting in the
// same hour line up across columns.
func grid(st styles, g *weekgrid.Grid) string {
	w := columnWidth(g)
	headers := make([]string, 0, len(weekgrid.Days))
	cells := make([]string, 0, len(weekgrid.Days))
	for _, d := range weekgrid.Days {
		headers = append(headers, st.header.Width(w).Render(d.Short()))
		cells = append(cells, cell(st, g.Cell(d), w))
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Row(cells...).
		StyleFunc(func(_, _ int) lipgloss.Style {
			return st.r.NewStyle()
		})
	return t.String()
}

// columnWidth is the widest grid line plus a space either side.
func columnWidth(g *weekgrid.Grid) int {
	w := minCellWidth
	for _, d := range weekgrid.Days {
		c := g.Cell(d)
		if c == nil {
			continue
		}
		for _, l := range c.Lines {
			w = max(w, lipgloss.Width(l)+2)
		}
	}
	return w
}

func cell(st styles, c *weekgrid.Cell, w int) string {
	plain, block := st.cell.Width(w), st.block.Width(w)
	if c == nil {
		return plain.Render("")
	}
	lines := make([]string, len(c.Lines))
	for i, l := range c.Lines {
		if i >= c.BlockStart() {
			lines[i] = block.Render(l)
		} else {
			lines[i] = plain.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}

// GridText renders a grid on its own, for the grid command's text format.
func GridText(w io.Writer, g *weekgrid.Grid, noColor bool) error {
	_, err := fmt.Fprintln(w, grid(newStyles(w, noColor), g))
	return err
}
