// Package advisor combines the species table, evolution graph, and analyzers
// into team improvement suggestions and whole-team analysis results.
package advisor

import (
	"math"
	"sort"

	"github.com/pokedex-labs/pokeadvisor-cli/internal/dex"
	"github.com/pokedex-labs/pokeadvisor-cli/internal/evolution"
)

// Tunables for suggestion searches.
const (
	// MaxCounters caps the candidates returned per team weakness.
	MaxCounters = 3
	// ReplacementTolerance is the stat-total band (±) for balanced
	// replacements, as a fraction of the target's total.
	ReplacementTolerance = 0.10
)

// Advisor carries the loaded read-only tables. All methods are pure with
// respect to them; per-request state lives in arguments and return values.
type Advisor struct {
	Table *dex.Table
	Graph *evolution.Graph
	Chart dex.Chart
}

// New builds an Advisor over the loaded tables.
func New(table *dex.Table, graph *evolution.Graph, chart dex.Chart) *Advisor {
	return &Advisor{Table: table, Graph: graph, Chart: chart}
}

// Candidate is a suggested species, formatted with its evolution position.
type Candidate struct {
	Name      string
	Types     string // "fire/flying"
	Total     int    // stat total
	Stage     int    // 1-based stage within its family; 1 for lone forms
	Stages    int    // total stages in its family
	CanEvolve bool
}

func (a *Advisor) candidate(sp *dex.Species) Candidate {
	c := Candidate{
		Name:   sp.Name,
		Types:  sp.TypeString(),
		Total:  sp.Stats.Total(),
		Stage:  1,
		Stages: 1,
	}
	if fam, err := evolution.FamilyOf(a.Graph, a.Table, sp.Name); err == nil {
		c.Stage = fam.StageNumber(sp.Name)
		c.Stages = fam.TotalStages()
		c.CanEvolve = fam.CanEvolve(sp.Name)
	}
	return c
}

// FindDuplicates returns the species names appearing more than once on the
// team, each with its repeat count.
func FindDuplicates(team dex.Team) map[string]int {
	counts := make(map[string]int, len(team))
	for _, sp := range team {
		counts[sp.Name]++
	}
	dups := make(map[string]int)
	for name, n := range counts {
		if n > 1 {
			dups[name] = n
		}
	}
	return dups
}

// WeaknessCounter pairs one team weakness with species that counter it.
type WeaknessCounter struct {
	Type       dex.Type
	Candidates []Candidate
}

// SuggestWeaknessCounters searches the species table for counters to each
// team weakness: species that resist or are immune to the type, are not
// already on the team, and are not legendary. Candidates are ranked by
// descending stat total, at most MaxCounters per weakness. A weakness with
// no qualifying candidate is omitted; that is a valid empty outcome.
func (a *Advisor) SuggestWeaknessCounters(team dex.Team, weaknesses []dex.Type) []WeaknessCounter {
	var counters []WeaknessCounter
	for _, weak := range weaknesses {
		var found []*dex.Species
		for _, sp := range a.Table.All() {
			if sp.Legendary || team.Contains(sp.Name) {
				continue
			}
			if a.Chart.Against(weak, sp) < 1 {
				found = append(found, sp)
			}
		}
		sort.SliceStable(found, func(i, j int) bool {
			return found[i].Stats.Total() > found[j].Stats.Total()
		})
		if len(found) > MaxCounters {
			found = found[:MaxCounters]
		}
		if len(found) == 0 {
			continue
		}

		wc := WeaknessCounter{Type: weak}
		for _, sp := range found {
			wc.Candidates = append(wc.Candidates, a.candidate(sp))
		}
		counters = append(counters, wc)
	}
	return counters
}

// SuggestBalancedReplacement returns non-team, non-legendary species whose
// stat total falls within ReplacementTolerance of the target's, ranked by
// closeness. The target itself is excluded. An empty result means no
// suggestion is available, which is not an error.
func (a *Advisor) SuggestBalancedReplacement(team dex.Team, target *dex.Species) []Candidate {
	targetTotal := target.Stats.Total()
	band := int(math.Round(float64(targetTotal) * ReplacementTolerance))

	var found []*dex.Species
	for _, sp := range a.Table.All() {
		if sp.Name == target.Name || sp.Legendary || team.Contains(sp.Name) {
			continue
		}
		diff := sp.Stats.Total() - targetTotal
		if diff < 0 {
			diff = -diff
		}
		if diff <= band {
			found = append(found, sp)
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		di := absInt(found[i].Stats.Total() - targetTotal)
		dj := absInt(found[j].Stats.Total() - targetTotal)
		if di != dj {
			return di < dj
		}
		return found[i].Stats.Total() > found[j].Stats.Total()
	})

	candidates := make([]Candidate, 0, len(found))
	for _, sp := range found {
		candidates = append(candidates, a.candidate(sp))
	}
	return candidates
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
