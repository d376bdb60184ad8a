package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/pkordes/trip-builder/internal/domain"
	"github.com/pkordes/trip-builder/internal/service"
)

// printer writes command output styled from the device's theme palette.
// Colors are dropped automatically when out is not a terminal.
type printer struct {
	out     io.Writer
	title   lipgloss.Style
	accent  lipgloss.Style
	muted   lipgloss.Style
	warning lipgloss.Style
}

func newPrinter(out io.Writer, theme domain.Theme) *printer {
	r := lipgloss.NewRenderer(out)
	p := theme.Colors
	return &printer{
		out:     out,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Primary)),
		accent:  r.NewStyle().Foreground(lipgloss.Color(p.Accent)),
		muted:   r.NewStyle().Foreground(lipgloss.Color(p.TextSecondary)),
		warning: r.NewStyle().Foreground(lipgloss.Color("#e53935")),
	}
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *printer) heading(s string) {
	p.line("%s", p.title.Render(s))
}

func price(v float64) string {
	return humanize.CommafWithDigits(v, 2) + " EGP"
}

func (p *printer) places(places []domain.Place, sel domain.SelectionSet) {
	if len(places) == 0 {
		p.line("%s", p.muted.Render("no places"))
		return
	}
	for _, pl := range places {
		mark := " "
		if sel.Contains(pl.ID) {
			mark = p.accent.Render("✓")
		}
		p.line("%s %s  %s  %s  %s", mark, pl.ID, pl.Name, p.muted.Render(pl.City+" / "+pl.Type), price(pl.Price))
	}
}

func (p *printer) selection(sel domain.SelectionSet) {
	if len(sel) == 0 {
		p.line("%s", p.muted.Render("nothing selected"))
		return
	}
	for i, s := range sel {
		p.line("%d. %s  %s", i+1, s.Name, price(s.Price))
	}
	p.line("%s %s", p.title.Render("total:"), price(sel.Total()))
}

func (p *printer) constraint(c domain.Constraint) {
	people := "-"
	if c.People > 0 {
		people = humanize.Comma(int64(c.People))
	}
	p.line("people:      %s", people)
	p.line("budget:      %s", orDash(c.Amount))
	p.line("destination: %s", orDash(c.Destination))
	p.line("category:    %s", orDash(c.Category))
}

func (p *printer) view(v service.WizardView) {
	p.heading("step: " + string(v.Step))
	p.constraint(v.Constraint)
	if len(v.Missing) > 0 {
		p.line("%s", p.warning.Render("missing: "+strings.Join(v.Missing, ", ")))
	}
	if v.Step != domain.StepCreate {
		p.selection(v.Selection)
	}
}

func (p *printer) trips(trips []domain.Trip) {
	if len(trips) == 0 {
		p.line("%s", p.muted.Render("no trips"))
		return
	}
	for _, t := range trips {
		p.line("%s  %s  %s  %s people  %s", p.title.Render(t.ID), t.Locate, p.muted.Render(string(t.CurrentStatus())), humanize.Comma(int64(t.NumberOfPersons)), t.Budget)
		for i, name := range t.Places() {
			p.line("    %s %s", humanize.Ordinal(i+1), name)
		}
	}
}

func (p *printer) categories(cats []domain.Category) {
	if len(cats) == 0 {
		p.line("%s", p.muted.Render("no categories"))
		return
	}
	for _, c := range cats {
		if c.Description == "" {
			p.line("%s", p.accent.Render(c.Title))
			continue
		}
		p.line("%s  %s", p.accent.Render(c.Title), p.muted.Render(c.Description))
	}
}

func (p *printer) programs(programs []domain.ReadyProgram) {
	if len(programs) == 0 {
		p.line("%s", p.muted.Render("no programs"))
		return
	}
	for _, pr := range programs {
		p.line("%s  %s  %s  %s people  %s", pr.ID, p.title.Render(pr.Program), pr.Location, humanize.Comma(int64(pr.PersonNum)), price(pr.Budget))
	}
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
