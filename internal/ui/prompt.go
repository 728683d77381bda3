package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/pokedex-labs/pokeadvisor-cli/internal/apperr"
	"github.com/pokedex-labs/pokeadvisor-cli/internal/dex"
)

// PromptSpecies asks for a single species name with table-backed suggestions.
// Aborting the form returns apperr.ErrCancelled.
func PromptSpecies(table *dex.Table, title string) (string, error) {
	suggestions := make([]string, 0, table.Len())
	for _, sp := range table.All() {
		suggestions = append(suggestions, sp.Name)
	}

	var name string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(title).
			Placeholder("pikachu").
			Suggestions(suggestions).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("enter a species name")
				}
				if !table.Has(s) {
					return fmt.Errorf("unknown species %q", s)
				}
				return nil
			}).
			Value(&name),
	))

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", apperr.ErrCancelled
		}
		return "", err
	}
	return dex.Normalize(name), nil
}

// PromptTeamNames asks for 1-6 comma-separated species names. Unknown names
// are rejected inline so the analysis never starts with a typo.
func PromptTeamNames(table *dex.Table) ([]string, error) {
	var raw string
	form := huh.NewForm(huh.NewGroup(
		huh.NewNote().
			Title("Team Analysis").
			Description("Enter up to six species, separated by commas."),
		huh.NewInput().
			Title("Team").
			Placeholder("charizard, blastoise, venusaur").
			Validate(func(s string) error {
				names := SplitNames(s)
				if len(names) == 0 || len(names) > dex.MaxTeamSize {
					return fmt.Errorf("enter between 1 and %d names", dex.MaxTeamSize)
				}
				for _, n := range names {
					if !table.Has(n) {
						return fmt.Errorf("unknown species %q", n)
					}
				}
				return nil
			}).
			Value(&raw),
	))

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, apperr.ErrCancelled
		}
		return nil, err
	}
	return SplitNames(raw), nil
}

// SplitNames splits a comma-separated name list, dropping empty entries.
func SplitNames(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if name := dex.Normalize(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
