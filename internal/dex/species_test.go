package dex

import (
	"errors"
	"testing"

	"github.com/pokedex-labs/pokeadvisor-cli/internal/apperr"
)

func testSpecies() []Species {
	return []Species{
		{Name: "pikachu", Dex: 25, Generation: 1, Types: []Type{Electric},
			Stats: Stats{HP: 35, Attack: 55, Defense: 40, SpAttack: 50, SpDefense: 50, Speed: 90}},
		{Name: "charizard", Dex: 6, Generation: 1, Types: []Type{Fire, Flying},
			Stats: Stats{HP: 78, Attack: 84, Defense: 78, SpAttack: 109, SpDefense: 85, Speed: 100}},
		{Name: "snorlax", Dex: 143, Generation: 1, Types: []Type{Normal},
			Stats: Stats{HP: 160, Attack: 110, Defense: 65, SpAttack: 65, SpDefense: 110, Speed: 30}},
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	table := NewTable(testSpecies())

	lower, err := table.Lookup("pikachu")
	if err != nil {
		t.Fatalf("Lookup(pikachu) err = %v", err)
	}
	upper, err := table.Lookup("Pikachu")
	if err != nil {
		t.Fatalf("Lookup(Pikachu) err = %v", err)
	}
	if lower != upper {
		t.Fatalf("case-insensitive lookups returned different records")
	}
	if lower.Dex != 25 {
		t.Fatalf("Dex = %d, want 25", lower.Dex)
	}
}

func TestLookup_MissingName_ReturnsNotFound(t *testing.T) {
	table := NewTable(testSpecies())

	_, err := table.Lookup("missingmon")
	if err == nil {
		t.Fatalf("expected error for unknown species")
	}
	if !apperr.IsNotFound(err) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	var nf *apperr.NotFoundError
	if !errors.As(err, &nf) || nf.Name != "missingmon" {
		t.Fatalf("NotFoundError should carry the offending name, got %v", err)
	}
}

func TestStatsTotal_SumsAllSixStats(t *testing.T) {
	for _, sp := range testSpecies() {
		want := sp.Stats.HP + sp.Stats.Attack + sp.Stats.Defense +
			sp.Stats.SpAttack + sp.Stats.SpDefense + sp.Stats.Speed
		if got := sp.Stats.Total(); got != want {
			t.Fatalf("%s: Total() = %d, want %d", sp.Name, got, want)
		}
	}
}

func TestNewTable_FirstRecordWinsOnDuplicate(t *testing.T) {
	table := NewTable([]Species{
		{Name: "eevee", Dex: 133, Types: []Type{Normal}},
		{Name: "EEVEE", Dex: 999, Types: []Type{Dark}},
	})
	if table.Len() != 1 {
		t.Fatalf("Len = %d, want 1", table.Len())
	}
	sp, err := table.Lookup("eevee")
	if err != nil {
		t.Fatalf("Lookup err = %v", err)
	}
	if sp.Dex != 133 {
		t.Fatalf("Dex = %d, want the first record's 133", sp.Dex)
	}
}

func TestTypeString(t *testing.T) {
	table := NewTable(testSpecies())
	sp, _ := table.Lookup("charizard")
	if got := sp.TypeString(); got != "fire/flying" {
		t.Fatalf("TypeString = %q, want %q", got, "fire/flying")
	}
	sp, _ = table.Lookup("snorlax")
	if got := sp.TypeString(); got != "normal" {
		t.Fatalf("TypeString = %q, want %q", got, "normal")
	}
}

func TestDisplayName(t *testing.T) {
	table := NewTable(testSpecies())
	sp, _ := table.Lookup("PIKACHU")
	if got := sp.DisplayName(); got != "Pikachu" {
		t.Fatalf("DisplayName = %q, want %q", got, "Pikachu")
	}
}
