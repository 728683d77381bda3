package advisor

import (
	"fmt"
	"sort"

	"github.com/pokedex-labs/pokeadvisor-cli/internal/analyzer"
	"github.com/pokedex-labs/pokeadvisor-cli/internal/dex"
	"github.com/pokedex-labs/pokeadvisor-cli/internal/evolution"
)

// Thresholds for grading an evolution option.
const (
	strongOffenseGain = 30 // combined Attack + Sp. Attack gain
	majorBulkGain     = 45 // combined HP + Defense + Sp. Defense gain
	minorBulkGain     = 20
	bigSpeedGain      = 20
	goodTotalGain     = 40
)

// EvolutionOption grades one immediate next-stage choice.
type EvolutionOption struct {
	Name        string
	Comparison  analyzer.StageComparison
	TotalChange int
	Benefits    []string
	Drawbacks   []string
}

// EvolutionReport covers every immediate evolution of one species, sorted by
// total stat change (best first), with a recommendation line.
type EvolutionReport struct {
	Species        *dex.Species
	Family         *evolution.Family
	Chain          []analyzer.StageComparison // full family, root-first
	Options        []EvolutionOption          // immediate next stages only
	FullyEvolved   bool
	Recommendation string
}

// EvolutionOptions resolves the family of the named species and grades each
// immediate evolution. A species with no further stages yields a report with
// FullyEvolved set and no options.
func (a *Advisor) EvolutionOptions(name string) (*EvolutionReport, error) {
	sp, err := a.Table.Lookup(name)
	if err != nil {
		return nil, err
	}
	fam, err := evolution.FamilyOf(a.Graph, a.Table, sp.Name)
	if err != nil {
		return nil, err
	}

	chain, err := analyzer.CompareStages(fam, a.Table)
	if err != nil {
		return nil, err
	}

	report := &EvolutionReport{Species: sp, Family: fam, Chain: chain}

	stage, ok := fam.Member(sp.Name)
	if !ok || len(stage.Children) == 0 {
		report.FullyEvolved = true
		report.Recommendation = fmt.Sprintf("%s is fully evolved.", sp.DisplayName())
		return report, nil
	}

	for _, child := range stage.Children {
		evolved, err := a.Table.Lookup(child.Name)
		if err != nil {
			return nil, err
		}
		report.Options = append(report.Options, gradeOption(sp, evolved))
	}

	sort.SliceStable(report.Options, func(i, j int) bool {
		return report.Options[i].TotalChange > report.Options[j].TotalChange
	})
	report.Recommendation = recommend(report.Options)
	return report, nil
}

func gradeOption(current, evolved *dex.Species) EvolutionOption {
	delta := func(cmp analyzer.StageComparison, stat string) int {
		for _, d := range cmp.Deltas {
			if d.Stat == stat {
				return d.Delta
			}
		}
		return 0
	}

	cmp := analyzer.Compare(current, evolved)
	opt := EvolutionOption{
		Name:        evolved.Name,
		Comparison:  cmp,
		TotalChange: cmp.TotalDelta,
	}

	offense := delta(cmp, "Attack") + delta(cmp, "Sp. Attack")
	if offense > strongOffenseGain {
		opt.Benefits = append(opt.Benefits, fmt.Sprintf("Strong offensive improvement (+%d total attack)", offense))
	} else if offense < 0 {
		opt.Drawbacks = append(opt.Drawbacks, fmt.Sprintf("Decreased offensive capability (%d total attack)", offense))
	}

	bulk := delta(cmp, "HP") + delta(cmp, "Defense") + delta(cmp, "Sp. Defense")
	if bulk > majorBulkGain {
		opt.Benefits = append(opt.Benefits, fmt.Sprintf("Major defensive boost (+%d total bulk)", bulk))
	} else if bulk > minorBulkGain {
		opt.Benefits = append(opt.Benefits, fmt.Sprintf("Improved survivability (+%d total bulk)", bulk))
	}

	speed := delta(cmp, "Speed")
	switch {
	case speed > bigSpeedGain:
		opt.Benefits = append(opt.Benefits, fmt.Sprintf("Significant speed boost (+%d)", speed))
	case speed > 0:
		opt.Benefits = append(opt.Benefits, fmt.Sprintf("Slight speed improvement (+%d)", speed))
	case speed < 0:
		opt.Drawbacks = append(opt.Drawbacks, fmt.Sprintf("Speed decrease (%d)", speed))
	}

	if current.TypeString() != evolved.TypeString() {
		opt.Benefits = append(opt.Benefits,
			fmt.Sprintf("Type change: %s to %s", current.TypeString(), evolved.TypeString()))
	}

	return opt
}

func recommend(options []EvolutionOption) string {
	if len(options) > 1 {
		return "Multiple evolution paths: pick the branch matching your battle strategy."
	}
	opt := options[0]
	switch {
	case len(opt.Drawbacks) == 0:
		return "Recommended to evolve: clear improvements across stats."
	case opt.TotalChange > goodTotalGain:
		return "Consider evolving: good improvements despite some drawbacks."
	default:
		return "Weigh carefully: mixed changes in stats."
	}
}
