package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pokedex-labs/pokeadvisor-cli/internal/apperr"
	"github.com/pokedex-labs/pokeadvisor-cli/internal/dex"
	"github.com/pokedex-labs/pokeadvisor-cli/internal/ui"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest a balanced replacement for a team member",
	Long: "Finds species whose stat total falls within ±10% of the target's, excluding\n" +
		"species already on the team, ranked by closeness of total stats.",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := viper.GetString("suggest.replace")
		if target == "" {
			return apperr.User("--replace is required: name the species to swap out")
		}

		adv, err := loadAdvisor()
		if err != nil {
			return err
		}

		var team dex.Team
		if teamFlag := viper.GetString("suggest.team"); teamFlag != "" {
			names := ui.SplitNames(teamFlag)
			resolved, failed, err := dex.ResolveTeam(adv.Table, names)
			if err != nil {
				return err
			}
			if len(failed) > 0 {
				return apperr.Userf("unknown team members: %v", failed)
			}
			team = resolved
		}

		sp, err := adv.Table.Lookup(target)
		if err != nil {
			return err
		}

		candidates := adv.SuggestBalancedReplacement(team, sp)

		w := cmd.OutOrStdout()
		if len(candidates) == 0 {
			// A valid outcome, not an error.
			fmt.Fprintln(w, ui.Dim.Render("No suggestion available for "+sp.DisplayName()+"."))
			return nil
		}

		fmt.Fprintln(w, ui.SectionHeader.Render(fmt.Sprintf("Replacements for %s (total %d)", sp.DisplayName(), sp.Stats.Total())))
		limit := viper.GetInt("suggest.limit")
		if limit <= 0 || limit > len(candidates) {
			limit = len(candidates)
		}
		for _, c := range candidates[:limit] {
			fmt.Fprintln(w, "  "+ui.FormatCandidate(c))
		}
		return nil
	},
}

var (
	suggestReplace string
	suggestTeam    string
	suggestLimit   int
)

func init() {
	suggestCmd.Flags().StringVarP(&suggestReplace, "replace", "r", "", "Species to find a replacement for (required)")
	suggestCmd.Flags().StringVarP(&suggestTeam, "team", "t", "", "Comma-separated team whose members are excluded from suggestions")
	suggestCmd.Flags().IntVar(&suggestLimit, "limit", 5, "Maximum number of suggestions to print")

	viper.BindPFlag("suggest.replace", suggestCmd.Flags().Lookup("replace"))
	viper.BindPFlag("suggest.team", suggestCmd.Flags().Lookup("team"))
	viper.BindPFlag("suggest.limit", suggestCmd.Flags().Lookup("limit"))
}
