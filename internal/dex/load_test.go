package dex

import (
	"strings"
	"testing"

	"github.com/pokedex-labs/pokeadvisor-cli/internal/apperr"
)

const sampleCSV = `dex,name,generation,type1,type2,hp,attack,defense,sp_attack,sp_defense,speed,legendary
25,pikachu,1,electric,,35,55,40,50,50,90,0
6,charizard,1,fire,flying,78,84,78,109,85,100,0
150,mewtwo,1,psychic,,106,110,90,154,90,130,1
`

func TestParseTable_ValidRows(t *testing.T) {
	table, err := ParseTable(strings.NewReader(sampleCSV), nil)
	if err != nil {
		t.Fatalf("ParseTable err = %v", err)
	}
	if table.Len() != 3 {
		t.Fatalf("Len = %d, want 3", table.Len())
	}

	sp, err := table.Lookup("charizard")
	if err != nil {
		t.Fatalf("Lookup err = %v", err)
	}
	if sp.TypeString() != "fire/flying" {
		t.Fatalf("TypeString = %q", sp.TypeString())
	}
	if sp.Stats.Total() != 534 {
		t.Fatalf("Total = %d, want 534", sp.Stats.Total())
	}

	mewtwo, _ := table.Lookup("mewtwo")
	if !mewtwo.Legendary {
		t.Fatalf("mewtwo should be flagged legendary")
	}
}

func TestParseTable_SkipsMalformedRowsWithWarning(t *testing.T) {
	csv := `dex,name,generation,type1,type2,hp,attack,defense,sp_attack,sp_defense,speed
25,pikachu,1,electric,,35,55,40,50,50,90
99,badmon,1,mystery,,10,10,10,10,10,10
98,nostats,1,fire,,x,10,10,10,10,10
6,charizard,1,fire,flying,78,84,78,109,85,100
`
	var warnings []string
	table, err := ParseTable(strings.NewReader(csv), func(msg string) {
		warnings = append(warnings, msg)
	})
	if err != nil {
		t.Fatalf("ParseTable err = %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (bad rows skipped)", table.Len())
	}
	if len(warnings) != 2 {
		t.Fatalf("warnings = %v, want 2 entries", warnings)
	}
}

func TestParseTable_MissingColumnFails(t *testing.T) {
	csv := "dex,name,type1\n1,bulbasaur,grass\n"
	if _, err := ParseTable(strings.NewReader(csv), nil); err == nil {
		t.Fatalf("expected error for missing columns")
	}
}

func TestParseTable_AllRowsBadFails(t *testing.T) {
	csv := `dex,name,generation,type1,type2,hp,attack,defense,sp_attack,sp_defense,speed
x,bad,1,fire,,1,1,1,1,1,1
`
	if _, err := ParseTable(strings.NewReader(csv), nil); err == nil {
		t.Fatalf("expected error for empty table")
	}
}

func TestParseTable_NegativeStatRejected(t *testing.T) {
	csv := `dex,name,generation,type1,type2,hp,attack,defense,sp_attack,sp_defense,speed
25,pikachu,1,electric,,35,55,40,50,50,90
26,raichu,1,electric,,-5,90,55,90,80,110
`
	var warnings []string
	table, err := ParseTable(strings.NewReader(csv), func(msg string) { warnings = append(warnings, msg) })
	if err != nil {
		t.Fatalf("ParseTable err = %v", err)
	}
	if table.Has("raichu") {
		t.Fatalf("row with negative stat should be skipped")
	}
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want 1 entry", warnings)
	}
}

func TestLoadTable_MissingFile_IsDataLoadError(t *testing.T) {
	_, err := LoadTable("/definitely/does/not/exist/pokedex.csv", nil)
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if !apperr.IsDataLoad(err) {
		t.Fatalf("err = %v, want DataLoadError", err)
	}
}
