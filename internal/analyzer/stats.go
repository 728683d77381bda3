// Package analyzer computes stat and type-coverage analysis. Every function
// is pure: it takes the loaded tables as parameters and returns structs for
// the UI (or any other renderer) to format.
package analyzer

import (
	"github.com/pokedex-labs/pokeadvisor-cli/internal/dex"
	"github.com/pokedex-labs/pokeadvisor-cli/internal/evolution"
)

// StatDelta is the change of one stat across an evolution step.
type StatDelta struct {
	Stat    string
	Before  int
	After   int
	Delta   int     // may be negative, reported as-is
	Percent float64 // delta relative to Before; 0 when Before is 0
}

// StageComparison covers one parent→child edge of a family.
type StageComparison struct {
	From        string
	To          string
	Deltas      []StatDelta // in dex.StatNames order
	FromTotal   int
	ToTotal     int
	TotalDelta  int
	FromSpecies *dex.Species
	ToSpecies   *dex.Species
}

// TotalStats is the sum of the six base stats of a species.
func TotalStats(sp *dex.Species) int {
	return sp.Stats.Total()
}

// CompareStages computes a comparison per evolution edge of the family,
// ordered root-first with branches in source order. A linear N-stage family
// yields exactly N-1 entries; branch points add one entry per sibling edge.
// Species missing from the table fail with NotFound.
func CompareStages(fam *evolution.Family, table *dex.Table) ([]StageComparison, error) {
	edges := fam.Edges()
	comparisons := make([]StageComparison, 0, len(edges))
	for _, e := range edges {
		from, err := table.Lookup(e.From)
		if err != nil {
			return nil, err
		}
		to, err := table.Lookup(e.To)
		if err != nil {
			return nil, err
		}
		comparisons = append(comparisons, Compare(from, to))
	}
	return comparisons, nil
}

// Compare computes the stat deltas for a single from→to evolution step.
func Compare(from, to *dex.Species) StageComparison {
	fromVals := from.Stats.Values()
	toVals := to.Stats.Values()

	deltas := make([]StatDelta, len(dex.StatNames))
	for i, name := range dex.StatNames {
		d := StatDelta{
			Stat:   name,
			Before: fromVals[i],
			After:  toVals[i],
			Delta:  toVals[i] - fromVals[i],
		}
		if d.Before != 0 {
			d.Percent = float64(d.Delta) / float64(d.Before) * 100
		}
		deltas[i] = d
	}

	return StageComparison{
		From:        from.Name,
		To:          to.Name,
		Deltas:      deltas,
		FromTotal:   from.Stats.Total(),
		ToTotal:     to.Stats.Total(),
		TotalDelta:  to.Stats.Total() - from.Stats.Total(),
		FromSpecies: from,
		ToSpecies:   to,
	}
}

// StatRange summarizes one stat across a team.
type StatRange struct {
	Stat string
	Avg  float64
	Min  int
	Max  int
}

// BalanceSummary is the per-stat spread of a team plus its average total.
type BalanceSummary struct {
	Stats        []StatRange // in dex.StatNames order
	AverageTotal float64
}

// Balance computes avg/min/max per stat across the team members.
func Balance(team dex.Team) BalanceSummary {
	summary := BalanceSummary{Stats: make([]StatRange, len(dex.StatNames))}
	if len(team) == 0 {
		return summary
	}

	totals := 0
	for i, name := range dex.StatNames {
		r := StatRange{Stat: name}
		sum := 0
		for j, sp := range team {
			v := sp.Stats.Values()[i]
			sum += v
			if j == 0 || v < r.Min {
				r.Min = v
			}
			if v > r.Max {
				r.Max = v
			}
		}
		r.Avg = float64(sum) / float64(len(team))
		summary.Stats[i] = r
	}
	for _, sp := range team {
		totals += sp.Stats.Total()
	}
	summary.AverageTotal = float64(totals) / float64(len(team))
	return summary
}
