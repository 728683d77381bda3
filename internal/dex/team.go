package dex

import "github.com/pokedex-labs/pokeadvisor-cli/internal/apperr"

// MaxTeamSize is the largest team a single analysis request accepts.
const MaxTeamSize = 6

// Team is an ordered sequence of up to 6 species. Duplicates are permitted
// (the advisor flags them). Teams live for one analysis request only.
type Team []*Species

// Names returns the normalized member names in team order.
func (t Team) Names() []string {
	names := make([]string, len(t))
	for i, sp := range t {
		names[i] = sp.Name
	}
	return names
}

// Contains reports whether the team already carries the given species name.
func (t Team) Contains(name string) bool {
	key := Normalize(name)
	for _, sp := range t {
		if sp.Name == key {
			return true
		}
	}
	return false
}

// ResolveTeam validates the request size and looks up each name. Names that
// fail lookup are collected into failed rather than aborting the whole
// request, so a team with one typo still gets analyzed for the rest.
// A size of 0 or more than MaxTeamSize is rejected before any lookup.
func ResolveTeam(table *Table, names []string) (team Team, failed []string, err error) {
	if len(names) == 0 || len(names) > MaxTeamSize {
		return nil, nil, &apperr.InvalidTeamSizeError{Size: len(names)}
	}
	for _, name := range names {
		sp, lookupErr := table.Lookup(name)
		if lookupErr != nil {
			failed = append(failed, name)
			continue
		}
		team = append(team, sp)
	}
	return team, failed, nil
}
