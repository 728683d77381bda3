package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/pokedex-labs/pokeadvisor-cli/internal/advisor"
	"github.com/pokedex-labs/pokeadvisor-cli/internal/analyzer"
)

// EvolutionUI renders evolution analysis reports.
type EvolutionUI struct {
	writer io.Writer
	plain  bool
}

// NewEvolutionUI creates a renderer for evolution reports.
func NewEvolutionUI(w io.Writer, plain bool) *EvolutionUI {
	return &EvolutionUI{writer: w, plain: plain}
}

// PrintReport renders the full evolution analysis for one species.
func (u *EvolutionUI) PrintReport(report *advisor.EvolutionReport) {
	if u.plain {
		u.printPlain(report)
		return
	}

	var out strings.Builder

	out.WriteString(Primary.Bold(true).Render("Evolution Analysis: " + report.Species.DisplayName()))
	out.WriteString("\n")
	out.WriteString(Dim.Render(strings.Join(report.Family.Names(), " → ")))
	out.WriteString("\n")

	if len(report.Chain) > 0 {
		out.WriteString("\n")
		out.WriteString(SectionHeader.Render("Chain Stat Progression"))
		out.WriteString("\n")
		for _, cmp := range report.Chain {
			out.WriteString(u.renderComparison(cmp))
		}
	}

	if report.FullyEvolved {
		out.WriteString("\n")
		out.WriteString(Success.Render(report.Recommendation))
		out.WriteString("\n")
		fmt.Fprintln(u.writer, Box.Render(strings.TrimRight(out.String(), "\n")))
		return
	}

	out.WriteString("\n")
	out.WriteString(SectionHeader.Render("Evolution Options"))
	out.WriteString("\n")
	for i, opt := range report.Options {
		out.WriteString(u.renderOption(i+1, opt))
	}

	out.WriteString("\n")
	out.WriteString(Secondary.Render(report.Recommendation))
	out.WriteString("\n")

	fmt.Fprintln(u.writer, Box.Render(strings.TrimRight(out.String(), "\n")))
}

func (u *EvolutionUI) renderComparison(cmp analyzer.StageComparison) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s → %s %s\n",
		GetBullet(),
		Highlight.Render(cmp.From),
		Highlight.Render(cmp.To),
		Dim.Render(fmt.Sprintf("(%d → %d, %+d)", cmp.FromTotal, cmp.ToTotal, cmp.TotalDelta))))
	for _, d := range cmp.Deltas {
		sb.WriteString(fmt.Sprintf("    %-12s %s %s\n",
			d.Stat,
			renderStatBar(d.After, 24),
			renderDelta(d)))
	}
	return sb.String()
}

func renderDelta(d analyzer.StatDelta) string {
	text := fmt.Sprintf("%d → %d (%+d, %+.1f%%)", d.Before, d.After, d.Delta, d.Percent)
	switch {
	case d.Delta > 0:
		return Success.Render(text)
	case d.Delta < 0:
		return Error.Render(text)
	default:
		return Dim.Render(text)
	}
}

func (u *EvolutionUI) renderOption(n int, opt advisor.EvolutionOption) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s Option %d: %s %s\n",
		GetBullet(), n,
		Highlight.Render(opt.Name),
		Dim.Render(fmt.Sprintf("(total change %+d)", opt.TotalChange))))
	for _, b := range opt.Benefits {
		sb.WriteString(fmt.Sprintf("    %s %s\n", GetCheckMark(), b))
	}
	for _, d := range opt.Drawbacks {
		sb.WriteString(fmt.Sprintf("    %s %s\n", GetWarnMark(), Warning.Render(d)))
	}
	return sb.String()
}

func (u *EvolutionUI) printPlain(report *advisor.EvolutionReport) {
	fmt.Fprintf(u.writer, "Species: %s\n", report.Species.Name)
	fmt.Fprintf(u.writer, "Chain: %s\n", strings.Join(report.Family.Names(), " -> "))
	for _, cmp := range report.Chain {
		fmt.Fprintf(u.writer, "Edge: %s -> %s | total %+d\n", cmp.From, cmp.To, cmp.TotalDelta)
	}
	for _, opt := range report.Options {
		fmt.Fprintf(u.writer, "Option: %s | total change %+d\n", opt.Name, opt.TotalChange)
	}
	fmt.Fprintf(u.writer, "Recommendation: %s\n", report.Recommendation)
}
