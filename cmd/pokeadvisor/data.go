package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/pokedex-labs/pokeadvisor-cli/internal/advisor"
	"github.com/pokedex-labs/pokeadvisor-cli/internal/dex"
	"github.com/pokedex-labs/pokeadvisor-cli/internal/evolution"
	"github.com/pokedex-labs/pokeadvisor-cli/internal/ui"
)

// Default data locations, overridable via config or POKEADVISOR_DATA_* env.
const (
	defaultPokedexPath    = "data/pokedex.csv"
	defaultEvolutionsPath = "data/evolutions.yaml"
)

// loadAdvisor loads the species table and evolution graph once for a command
// invocation. Both sources are read fully up front and held read-only; any
// load failure is fatal (DataLoadError).
func loadAdvisor() (*advisor.Advisor, error) {
	pokedexPath := viper.GetString("data.pokedex")
	if pokedexPath == "" {
		pokedexPath = defaultPokedexPath
	}
	evolutionsPath := viper.GetString("data.evolutions")
	if evolutionsPath == "" {
		evolutionsPath = defaultEvolutionsPath
	}

	table, err := dex.LoadTable(pokedexPath, func(msg string) {
		fmt.Fprintln(os.Stderr, ui.GetWarnMark()+" "+ui.Warning.Render("skipping row: "+msg))
	})
	if err != nil {
		return nil, err
	}

	graph, err := evolution.LoadGraph(evolutionsPath)
	if err != nil {
		return nil, err
	}

	return advisor.New(table, graph, dex.DefaultChart()), nil
}
