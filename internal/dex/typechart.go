package dex

// Type is one of the 18 canonical elemental types, stored lowercase.
type Type string

const (
	Normal   Type = "normal"
	Fire     Type = "fire"
	Water    Type = "water"
	Electric Type = "electric"
	Grass    Type = "grass"
	Ice      Type = "ice"
	Fighting Type = "fighting"
	Poison   Type = "poison"
	Ground   Type = "ground"
	Flying   Type = "flying"
	Psychic  Type = "psychic"
	Bug      Type = "bug"
	Rock     Type = "rock"
	Ghost    Type = "ghost"
	Dragon   Type = "dragon"
	Dark     Type = "dark"
	Steel    Type = "steel"
	Fairy    Type = "fairy"
)

// CanonicalTypes fixes the enumeration order used for all deterministic
// output (profiles, charts). Analyzers iterate this, never map order.
var CanonicalTypes = []Type{
	Normal, Fire, Water, Electric, Grass, Ice,
	Fighting, Poison, Ground, Flying, Psychic, Bug,
	Rock, Ghost, Dragon, Dark, Steel, Fairy,
}

// ParseType validates a type name from a data source.
func ParseType(s string) (Type, bool) {
	t := Type(Normalize(s))
	for _, c := range CanonicalTypes {
		if t == c {
			return t, true
		}
	}
	return "", false
}

// Chart maps (attacking type, defending type) to a damage multiplier in
// {0, 0.5, 1, 2}. Pairs absent from the chart are neutral (1×).
type Chart map[Type]map[Type]float64

// Effectiveness returns the multiplier for att hitting a def-typed target.
func (c Chart) Effectiveness(att, def Type) float64 {
	if row, ok := c[att]; ok {
		if m, ok := row[def]; ok {
			return m
		}
	}
	return 1
}

// Against returns the combined multiplier for att hitting the species,
// multiplying the per-type factors of a dual-type defender.
func (c Chart) Against(att Type, defender *Species) float64 {
	mult := 1.0
	for _, def := range defender.Types {
		mult *= c.Effectiveness(att, def)
	}
	return mult
}

// DefaultChart returns the standard 18-type effectiveness chart
// (generation 6 onwards). Only non-neutral matchups are listed.
func DefaultChart() Chart {
	return Chart{
		Normal:   {Rock: 0.5, Ghost: 0, Steel: 0.5},
		Fire:     {Fire: 0.5, Water: 0.5, Grass: 2, Ice: 2, Bug: 2, Rock: 0.5, Dragon: 0.5, Steel: 2},
		Water:    {Fire: 2, Water: 0.5, Grass: 0.5, Ground: 2, Rock: 2, Dragon: 0.5},
		Electric: {Water: 2, Electric: 0.5, Grass: 0.5, Ground: 0, Flying: 2, Dragon: 0.5},
		Grass:    {Fire: 0.5, Water: 2, Grass: 0.5, Poison: 0.5, Ground: 2, Flying: 0.5, Bug: 0.5, Rock: 2, Dragon: 0.5, Steel: 0.5},
		Ice:      {Fire: 0.5, Water: 0.5, Grass: 2, Ice: 0.5, Ground: 2, Flying: 2, Dragon: 2, Steel: 0.5},
		Fighting: {Normal: 2, Ice: 2, Poison: 0.5, Flying: 0.5, Psychic: 0.5, Bug: 0.5, Rock: 2, Ghost: 0, Dark: 2, Steel: 2, Fairy: 0.5},
		Poison:   {Grass: 2, Poison: 0.5, Ground: 0.5, Rock: 0.5, Ghost: 0.5, Steel: 0, Fairy: 2},
		Ground:   {Fire: 2, Electric: 2, Grass: 0.5, Poison: 2, Flying: 0, Bug: 0.5, Rock: 2, Steel: 2},
		Flying:   {Electric: 0.5, Grass: 2, Fighting: 2, Bug: 2, Rock: 0.5, Steel: 0.5},
		Psychic:  {Fighting: 2, Poison: 2, Psychic: 0.5, Dark: 0, Steel: 0.5},
		Bug:      {Fire: 0.5, Grass: 2, Fighting: 0.5, Poison: 0.5, Flying: 0.5, Psychic: 2, Ghost: 0.5, Dark: 2, Steel: 0.5, Fairy: 0.5},
		Rock:     {Fire: 2, Ice: 2, Fighting: 0.5, Ground: 0.5, Flying: 2, Bug: 2, Steel: 0.5},
		Ghost:    {Normal: 0, Psychic: 2, Ghost: 2, Dark: 0.5},
		Dragon:   {Dragon: 2, Steel: 0.5, Fairy: 0},
		Dark:     {Fighting: 0.5, Psychic: 2, Ghost: 2, Dark: 0.5, Fairy: 0.5},
		Steel:    {Fire: 0.5, Water: 0.5, Electric: 0.5, Ice: 2, Rock: 2, Steel: 0.5, Fairy: 2},
		Fairy:    {Fire: 0.5, Fighting: 2, Poison: 0.5, Dragon: 2, Dark: 2, Steel: 0.5},
	}
}
