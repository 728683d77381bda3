package ui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/pokedex-labs/pokeadvisor-cli/internal/advisor"
	"github.com/pokedex-labs/pokeadvisor-cli/internal/analyzer"
	"github.com/pokedex-labs/pokeadvisor-cli/internal/dex"
)

// statBarMax is the scale ceiling for stat bars. 255 is the largest base
// stat in any official dataset.
const statBarMax = 255

// TeamUI renders team analysis results.
type TeamUI struct {
	writer io.Writer
	plain  bool
}

// NewTeamUI creates a renderer. With plain set it prints machine-readable
// lines without any styling.
func NewTeamUI(w io.Writer, plain bool) *TeamUI {
	return &TeamUI{writer: w, plain: plain}
}

// PrintResult renders a full team analysis report.
func (u *TeamUI) PrintResult(res *advisor.Result) {
	if u.plain {
		u.printPlain(res)
		return
	}

	var out strings.Builder

	out.WriteString(Primary.Bold(true).Render("Team Analysis Report"))
	out.WriteString("\n")
	out.WriteString(Dim.Render(res.RequestID))
	out.WriteString("\n\n")

	out.WriteString(u.renderMembers(res))

	if len(res.Failed) > 0 {
		out.WriteString("\n")
		for _, name := range res.Failed {
			out.WriteString(fmt.Sprintf("%s %s\n", GetCrossMark(), Error.Render(fmt.Sprintf("%q not found in the species table", name))))
		}
	}

	if res.Offense != nil {
		out.WriteString("\n")
		out.WriteString(u.renderOffense(res.Offense))
	}
	if res.Defense != nil {
		out.WriteString("\n")
		out.WriteString(u.renderDefense(res.Defense))
	}
	if res.Balance != nil {
		out.WriteString("\n")
		out.WriteString(u.renderBalance(res.Balance))
	}
	if len(res.Duplicates) > 0 {
		out.WriteString("\n")
		out.WriteString(u.renderDuplicates(res.Duplicates))
	}
	if len(res.Counters) > 0 {
		out.WriteString("\n")
		out.WriteString(u.renderCounters(res.Counters))
	}

	fmt.Fprintln(u.writer, Box.Render(strings.TrimRight(out.String(), "\n")))
}

func (u *TeamUI) renderMembers(res *advisor.Result) string {
	var sb strings.Builder
	sb.WriteString(SectionHeader.Render("Members"))
	sb.WriteString("\n")
	for _, sp := range res.Team {
		sb.WriteString(fmt.Sprintf("%s %s %s %s\n",
			GetBullet(),
			Highlight.Render(sp.DisplayName()),
			Dim.Render(sp.TypeString()),
			fmt.Sprintf("total %d", sp.Stats.Total())))
	}
	return sb.String()
}

func (u *TeamUI) renderOffense(types []dex.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return SectionHeader.Render("Offensive Coverage") + "\n" +
		"  " + Secondary.Render(strings.Join(names, ", ")) + "\n"
}

func (u *TeamUI) renderDefense(profile *analyzer.DefensiveProfile) string {
	var sb strings.Builder
	sb.WriteString(SectionHeader.Render("Defensive Profile"))
	sb.WriteString("\n")

	exposure := make(map[dex.Type]analyzer.TypeExposure, len(profile.Exposure))
	for _, e := range profile.Exposure {
		exposure[e.Type] = e
	}

	if len(profile.Weaknesses) == 0 {
		sb.WriteString("  " + Success.Render("No shared weaknesses") + "\n")
	}
	for _, t := range profile.Weaknesses {
		e := exposure[t]
		sb.WriteString(fmt.Sprintf("  %s %s %s\n",
			GetCrossMark(),
			Error.Render(string(t)),
			Dim.Render(fmt.Sprintf("(%d weak / %d resist)", e.Weak, e.Resistant))))
	}
	for _, t := range profile.Resistances {
		e := exposure[t]
		sb.WriteString(fmt.Sprintf("  %s %s %s\n",
			GetCheckMark(),
			Success.Render(string(t)),
			Dim.Render(fmt.Sprintf("(%d resist / %d weak)", e.Resistant, e.Weak))))
	}
	return sb.String()
}

func (u *TeamUI) renderBalance(balance *analyzer.BalanceSummary) string {
	var sb strings.Builder
	sb.WriteString(SectionHeader.Render("Stat Balance"))
	sb.WriteString("\n")
	for _, r := range balance.Stats {
		sb.WriteString(fmt.Sprintf("  %-12s %s %s\n",
			r.Stat,
			renderStatBar(int(r.Avg), 24),
			Dim.Render(fmt.Sprintf("avg %.1f (min %d, max %d)", r.Avg, r.Min, r.Max))))
	}
	sb.WriteString(Dim.Render(fmt.Sprintf("  average stat total: %.1f", balance.AverageTotal)))
	sb.WriteString("\n")
	return sb.String()
}

func (u *TeamUI) renderDuplicates(dups map[string]int) string {
	var sb strings.Builder
	sb.WriteString(SectionHeader.Render("Duplicates"))
	sb.WriteString("\n")
	for _, name := range sortedKeys(dups) {
		sb.WriteString(fmt.Sprintf("  %s %s\n",
			GetWarnMark(),
			Warning.Render(fmt.Sprintf("%s appears %d times", name, dups[name]))))
	}
	return sb.String()
}

func (u *TeamUI) renderCounters(counters []advisor.WeaknessCounter) string {
	var sb strings.Builder
	sb.WriteString(SectionHeader.Render("Weakness Counters"))
	sb.WriteString("\n")
	for _, wc := range counters {
		sb.WriteString(fmt.Sprintf("  against %s:\n", Error.Render(string(wc.Type))))
		for _, c := range wc.Candidates {
			sb.WriteString("    " + FormatCandidate(c) + "\n")
		}
	}
	return sb.String()
}

// FormatCandidate renders one suggested species with its evolution position.
func FormatCandidate(c advisor.Candidate) string {
	stage := "Final Form"
	if c.CanEvolve {
		stage = fmt.Sprintf("Stage %d/%d", c.Stage, c.Stages)
	}
	return fmt.Sprintf("%s %s %s %s",
		GetBullet(),
		Highlight.Render(c.Name),
		Dim.Render(c.Types),
		Dim.Render(fmt.Sprintf("total %d · %s", c.Total, stage)))
}

// renderStatBar draws a proportional bar for a stat value.
func renderStatBar(value, width int) string {
	if value < 0 {
		value = 0
	}
	if value > statBarMax {
		value = statBarMax
	}
	filled := value * width / statBarMax
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style lipgloss.Style
	switch {
	case value >= 100:
		style = lipgloss.NewStyle().Foreground(ColorSuccess)
	case value >= 60:
		style = lipgloss.NewStyle().Foreground(ColorWarning)
	default:
		style = lipgloss.NewStyle().Foreground(ColorError)
	}
	return style.Render(bar)
}

func (u *TeamUI) printPlain(res *advisor.Result) {
	names := make([]string, len(res.Team))
	for i, sp := range res.Team {
		names[i] = sp.Name
	}
	fmt.Fprintf(u.writer, "Team: %s\n", strings.Join(names, ", "))
	for _, name := range res.Failed {
		fmt.Fprintf(u.writer, "NotFound: %s\n", name)
	}
	if res.Offense != nil {
		fmt.Fprintf(u.writer, "Offense: %s\n", joinTypes(res.Offense))
	}
	if res.Defense != nil {
		fmt.Fprintf(u.writer, "Weaknesses: %s\n", joinTypes(res.Defense.Weaknesses))
		fmt.Fprintf(u.writer, "Resistances: %s\n", joinTypes(res.Defense.Resistances))
	}
	if res.Balance != nil {
		fmt.Fprintf(u.writer, "AverageTotal: %.1f\n", res.Balance.AverageTotal)
	}
	for _, name := range sortedKeys(res.Duplicates) {
		fmt.Fprintf(u.writer, "Duplicate: %s x%d\n", name, res.Duplicates[name])
	}
	for _, wc := range res.Counters {
		names := make([]string, len(wc.Candidates))
		for i, c := range wc.Candidates {
			names[i] = c.Name
		}
		fmt.Fprintf(u.writer, "Counter[%s]: %s\n", wc.Type, strings.Join(names, ", "))
	}
}

func joinTypes(types []dex.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
