package dex

import "testing"

func TestCanonicalTypes_HasAll18(t *testing.T) {
	if len(CanonicalTypes) != 18 {
		t.Fatalf("len(CanonicalTypes) = %d, want 18", len(CanonicalTypes))
	}
	seen := make(map[Type]bool)
	for _, ty := range CanonicalTypes {
		if seen[ty] {
			t.Fatalf("duplicate type %q in canonical enumeration", ty)
		}
		seen[ty] = true
	}
}

func TestDefaultChart_OnlyValidMultipliers(t *testing.T) {
	valid := map[float64]bool{0: true, 0.5: true, 2: true}
	for att, row := range DefaultChart() {
		if _, ok := ParseType(string(att)); !ok {
			t.Fatalf("unknown attacking type %q", att)
		}
		for def, mult := range row {
			if _, ok := ParseType(string(def)); !ok {
				t.Fatalf("unknown defending type %q", def)
			}
			if !valid[mult] {
				t.Fatalf("%s vs %s: multiplier %v not in {0, 0.5, 2}", att, def, mult)
			}
		}
	}
}

func TestEffectiveness_KnownMatchups(t *testing.T) {
	chart := DefaultChart()
	cases := []struct {
		att, def Type
		want     float64
	}{
		{Fire, Grass, 2},
		{Water, Fire, 2},
		{Electric, Ground, 0},
		{Normal, Ghost, 0},
		{Poison, Steel, 0},
		{Dragon, Fairy, 0},
		{Fire, Water, 0.5},
		{Electric, Electric, 0.5},
		{Ice, Dragon, 2},
		{Ghost, Normal, 0},
		{Fighting, Normal, 2},
		{Bug, Psychic, 2},
		{Grass, Flying, 0.5},
		{Normal, Normal, 1}, // absent pairs are neutral
	}
	for _, c := range cases {
		if got := chart.Effectiveness(c.att, c.def); got != c.want {
			t.Fatalf("%s vs %s = %v, want %v", c.att, c.def, got, c.want)
		}
	}
}

func TestAgainst_DualTypeMultipliesFactors(t *testing.T) {
	chart := DefaultChart()
	charizard := &Species{Name: "charizard", Types: []Type{Fire, Flying}}

	if got := chart.Against(Rock, charizard); got != 4 {
		t.Fatalf("rock vs fire/flying = %v, want 4", got)
	}
	if got := chart.Against(Electric, charizard); got != 2 {
		t.Fatalf("electric vs fire/flying = %v, want 2", got)
	}
	if got := chart.Against(Grass, charizard); got != 0.25 {
		t.Fatalf("grass vs fire/flying = %v, want 0.25", got)
	}
	if got := chart.Against(Ground, charizard); got != 0 {
		t.Fatalf("ground vs fire/flying = %v, want 0 (flying immunity)", got)
	}
}

func TestParseType(t *testing.T) {
	if ty, ok := ParseType(" Fire "); !ok || ty != Fire {
		t.Fatalf("ParseType(Fire) = %q, %v", ty, ok)
	}
	if _, ok := ParseType("shadow"); ok {
		t.Fatalf("ParseType(shadow) should fail")
	}
}
