package analyzer

import (
	"testing"

	"github.com/pokedex-labs/pokeadvisor-cli/internal/dex"
	"github.com/pokedex-labs/pokeadvisor-cli/internal/evolution"
)

func grassLineTable(t *testing.T) (*dex.Table, *evolution.Family) {
	t.Helper()
	table := dex.NewTable([]dex.Species{
		{Name: "bulbasaur", Types: []dex.Type{dex.Grass, dex.Poison},
			Stats: dex.Stats{HP: 45, Attack: 49, Defense: 49, SpAttack: 65, SpDefense: 65, Speed: 45}},
		{Name: "ivysaur", Types: []dex.Type{dex.Grass, dex.Poison},
			Stats: dex.Stats{HP: 60, Attack: 62, Defense: 63, SpAttack: 80, SpDefense: 80, Speed: 60}},
		{Name: "venusaur", Types: []dex.Type{dex.Grass, dex.Poison},
			Stats: dex.Stats{HP: 80, Attack: 82, Defense: 83, SpAttack: 100, SpDefense: 100, Speed: 80}},
	})
	g, err := evolution.Build([]evolution.Record{
		{Name: "bulbasaur", Evolutions: []string{"ivysaur"}},
		{Name: "ivysaur", PreEvolution: "bulbasaur", Evolutions: []string{"venusaur"}},
		{Name: "venusaur", PreEvolution: "ivysaur"},
	})
	if err != nil {
		t.Fatalf("Build err = %v", err)
	}
	fam, _ := g.Family("bulbasaur")
	return table, fam
}

func TestCompareStages_LinearFamilyYieldsOneComparisonPerEdge(t *testing.T) {
	table, fam := grassLineTable(t)

	comps, err := CompareStages(fam, table)
	if err != nil {
		t.Fatalf("CompareStages err = %v", err)
	}
	if len(comps) != 2 {
		t.Fatalf("comparisons = %d, want 2 for a 3-stage line", len(comps))
	}

	first := comps[0]
	if first.From != "bulbasaur" || first.To != "ivysaur" {
		t.Fatalf("first edge = %s->%s", first.From, first.To)
	}
	if first.FromTotal != 318 || first.ToTotal != 405 {
		t.Fatalf("totals = %d -> %d, want 318 -> 405", first.FromTotal, first.ToTotal)
	}
	if first.TotalDelta != 87 {
		t.Fatalf("TotalDelta = %d, want 87", first.TotalDelta)
	}
	if len(first.Deltas) != len(dex.StatNames) {
		t.Fatalf("deltas = %d, want %d", len(first.Deltas), len(dex.StatNames))
	}
	for i, d := range first.Deltas {
		if d.Stat != dex.StatNames[i] {
			t.Fatalf("delta %d stat = %q, want %q", i, d.Stat, dex.StatNames[i])
		}
		if d.Delta != d.After-d.Before {
			t.Fatalf("%s: Delta = %d, want %d", d.Stat, d.Delta, d.After-d.Before)
		}
	}
}

func TestCompareStages_MissingSpeciesFails(t *testing.T) {
	_, fam := grassLineTable(t)
	sparse := dex.NewTable([]dex.Species{
		{Name: "bulbasaur", Types: []dex.Type{dex.Grass}},
	})
	if _, err := CompareStages(fam, sparse); err == nil {
		t.Fatalf("expected error when an evolved form is absent from the table")
	}
}

func TestCompare_PercentRelativeToBefore(t *testing.T) {
	from := &dex.Species{Name: "before", Stats: dex.Stats{HP: 50, Attack: 100, Defense: 10, SpAttack: 40, SpDefense: 40, Speed: 0}}
	to := &dex.Species{Name: "after", Stats: dex.Stats{HP: 60, Attack: 90, Defense: 10, SpAttack: 50, SpDefense: 60, Speed: 20}}

	comp := Compare(from, to)

	byStat := make(map[string]StatDelta)
	for _, d := range comp.Deltas {
		byStat[d.Stat] = d
	}
	if got := byStat["HP"].Percent; got != 20 {
		t.Fatalf("HP percent = %v, want 20", got)
	}
	if got := byStat["Attack"].Percent; got != -10 {
		t.Fatalf("Attack percent = %v, want -10", got)
	}
	// A zero base stat reports no percentage rather than dividing by zero.
	if got := byStat["Speed"].Percent; got != 0 {
		t.Fatalf("Speed percent = %v, want 0 for zero base", got)
	}
	if byStat["Speed"].Delta != 20 {
		t.Fatalf("Speed delta = %d, want 20", byStat["Speed"].Delta)
	}
}

func TestBalance_AvgMinMaxPerStat(t *testing.T) {
	team := dex.Team{
		&dex.Species{Name: "pikachu",
			Stats: dex.Stats{HP: 35, Attack: 55, Defense: 40, SpAttack: 50, SpDefense: 50, Speed: 90}},
		&dex.Species{Name: "snorlax",
			Stats: dex.Stats{HP: 160, Attack: 110, Defense: 65, SpAttack: 65, SpDefense: 110, Speed: 30}},
	}

	summary := Balance(team)
	if len(summary.Stats) != len(dex.StatNames) {
		t.Fatalf("stat ranges = %d, want %d", len(summary.Stats), len(dex.StatNames))
	}

	hp := summary.Stats[0]
	if hp.Stat != "HP" || hp.Min != 35 || hp.Max != 160 || hp.Avg != 97.5 {
		t.Fatalf("HP range = %+v", hp)
	}
	speed := summary.Stats[5]
	if speed.Min != 30 || speed.Max != 90 || speed.Avg != 60 {
		t.Fatalf("Speed range = %+v", speed)
	}
	if summary.AverageTotal != 430 {
		t.Fatalf("AverageTotal = %v, want 430", summary.AverageTotal)
	}
}

func TestBalance_EmptyTeam(t *testing.T) {
	summary := Balance(nil)
	if summary.AverageTotal != 0 {
		t.Fatalf("AverageTotal = %v, want 0", summary.AverageTotal)
	}
}
