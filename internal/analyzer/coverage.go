package analyzer

import "github.com/pokedex-labs/pokeadvisor-cli/internal/dex"

// TypeExposure counts how a team fares against one attacking type.
type TypeExposure struct {
	Type      dex.Type
	Weak      int // members taking >1× damage
	Resistant int // members taking <1× damage, immunities included
	Immune    int // members taking 0× damage (also counted in Resistant)
}

// DefensiveProfile classifies every canonical type for a team.
//
// A type is a team weakness when at least as many members are weak to it as
// resist it (and at least one is weak); it is a team resistance when strictly
// more members resist it than are weak to it. Ties lean toward weakness so
// that a type hitting half the team hard is never hidden. Output follows the
// canonical 18-type order, independent of team order.
type DefensiveProfile struct {
	Weaknesses  []dex.Type
	Resistances []dex.Type
	Exposure    []TypeExposure // all 18 types, canonical order
}

// Defensive computes the team's aggregate defensive profile against the
// given chart. Pure: same members (in any order) yield the same profile.
func Defensive(team dex.Team, chart dex.Chart) DefensiveProfile {
	profile := DefensiveProfile{Exposure: make([]TypeExposure, 0, len(dex.CanonicalTypes))}

	for _, att := range dex.CanonicalTypes {
		exp := TypeExposure{Type: att}
		for _, sp := range team {
			switch mult := chart.Against(att, sp); {
			case mult > 1:
				exp.Weak++
			case mult == 0:
				exp.Immune++
				exp.Resistant++
			case mult < 1:
				exp.Resistant++
			}
		}
		profile.Exposure = append(profile.Exposure, exp)

		switch {
		case exp.Weak > 0 && exp.Weak >= exp.Resistant:
			profile.Weaknesses = append(profile.Weaknesses, att)
		case exp.Resistant > exp.Weak:
			profile.Resistances = append(profile.Resistances, att)
		}
	}

	return profile
}

// Offensive returns the set union of all types the team members carry, in
// canonical order. Pure and order-insensitive like Defensive.
func Offensive(team dex.Team) []dex.Type {
	present := make(map[dex.Type]bool)
	for _, sp := range team {
		for _, t := range sp.Types {
			present[t] = true
		}
	}

	var coverage []dex.Type
	for _, t := range dex.CanonicalTypes {
		if present[t] {
			coverage = append(coverage, t)
		}
	}
	return coverage
}
