package analyzer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pokedex-labs/pokeadvisor-cli/internal/dex"
)

func classicTeam() dex.Team {
	return dex.Team{
		&dex.Species{Name: "charizard", Types: []dex.Type{dex.Fire, dex.Flying},
			Stats: dex.Stats{HP: 78, Attack: 84, Defense: 78, SpAttack: 109, SpDefense: 85, Speed: 100}},
		&dex.Species{Name: "blastoise", Types: []dex.Type{dex.Water},
			Stats: dex.Stats{HP: 79, Attack: 83, Defense: 100, SpAttack: 85, SpDefense: 105, Speed: 78}},
		&dex.Species{Name: "venusaur", Types: []dex.Type{dex.Grass, dex.Poison},
			Stats: dex.Stats{HP: 80, Attack: 82, Defense: 83, SpAttack: 100, SpDefense: 100, Speed: 80}},
		&dex.Species{Name: "pikachu", Types: []dex.Type{dex.Electric},
			Stats: dex.Stats{HP: 35, Attack: 55, Defense: 40, SpAttack: 50, SpDefense: 50, Speed: 90}},
		&dex.Species{Name: "snorlax", Types: []dex.Type{dex.Normal},
			Stats: dex.Stats{HP: 160, Attack: 110, Defense: 65, SpAttack: 65, SpDefense: 110, Speed: 30}},
		&dex.Species{Name: "gengar", Types: []dex.Type{dex.Ghost, dex.Poison},
			Stats: dex.Stats{HP: 60, Attack: 65, Defense: 60, SpAttack: 130, SpDefense: 75, Speed: 110}},
	}
}

func hasType(types []dex.Type, want dex.Type) bool {
	for _, t := range types {
		if t == want {
			return true
		}
	}
	return false
}

func TestDefensive_ClassicTeamWeaknesses(t *testing.T) {
	profile := Defensive(classicTeam(), dex.DefaultChart())

	// Charizard alone takes 4x from rock and nobody resists it.
	if !hasType(profile.Weaknesses, dex.Rock) {
		t.Fatalf("rock missing from weaknesses: %v", profile.Weaknesses)
	}
	// Electric splits the team 2-2 (charizard and blastoise weak, pikachu
	// and venusaur resist); the split still reads as a weakness.
	if !hasType(profile.Weaknesses, dex.Electric) {
		t.Fatalf("electric missing from weaknesses: %v", profile.Weaknesses)
	}
	// Fire is outresisted: charizard and blastoise shrug it off, only
	// venusaur minds.
	if !hasType(profile.Resistances, dex.Fire) {
		t.Fatalf("fire missing from resistances: %v", profile.Resistances)
	}
	if hasType(profile.Resistances, dex.Electric) {
		t.Fatalf("electric cannot be both weakness and resistance")
	}
	if len(profile.Exposure) != len(dex.CanonicalTypes) {
		t.Fatalf("exposure entries = %d, want %d", len(profile.Exposure), len(dex.CanonicalTypes))
	}
}

func TestDefensive_ImmunityCountsAsResistance(t *testing.T) {
	profile := Defensive(classicTeam(), dex.DefaultChart())

	for _, exp := range profile.Exposure {
		if exp.Immune > exp.Resistant {
			t.Fatalf("%s: immune %d exceeds resistant %d", exp.Type, exp.Immune, exp.Resistant)
		}
		if exp.Type == dex.Ground {
			// Charizard's flying half blanks ground entirely.
			if exp.Immune != 1 {
				t.Fatalf("ground immune = %d, want 1", exp.Immune)
			}
		}
		if exp.Type == dex.Normal {
			// Gengar's ghost half blanks normal.
			if exp.Immune != 1 {
				t.Fatalf("normal immune = %d, want 1", exp.Immune)
			}
		}
	}
}

func TestDefensive_OrderInsensitive(t *testing.T) {
	team := classicTeam()
	reversed := make(dex.Team, len(team))
	for i, sp := range team {
		reversed[len(team)-1-i] = sp
	}

	a := Defensive(team, dex.DefaultChart())
	b := Defensive(reversed, dex.DefaultChart())
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("profile depends on member order (-a +b):\n%s", diff)
	}
}

func TestOffensive_CanonicalOrderUnion(t *testing.T) {
	want := []dex.Type{dex.Normal, dex.Fire, dex.Water, dex.Electric, dex.Grass,
		dex.Poison, dex.Flying, dex.Ghost}
	got := Offensive(classicTeam())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("coverage mismatch (-want +got):\n%s", diff)
	}
}

func TestOffensive_DeduplicatesSharedTypes(t *testing.T) {
	team := dex.Team{
		&dex.Species{Name: "vulpix", Types: []dex.Type{dex.Fire}},
		&dex.Species{Name: "growlithe", Types: []dex.Type{dex.Fire}},
	}
	got := Offensive(team)
	if len(got) != 1 || got[0] != dex.Fire {
		t.Fatalf("coverage = %v, want [fire]", got)
	}
}
