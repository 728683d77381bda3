package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pokedex-labs/pokeadvisor-cli/internal/advisor"
	"github.com/pokedex-labs/pokeadvisor-cli/internal/dex"
	"github.com/pokedex-labs/pokeadvisor-cli/internal/ui"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [species...]",
	Short: "Analyze a team of up to six species",
	Long: "Computes offensive and defensive type coverage, stat balance, duplicate\n" +
		"detection, and weakness-counter suggestions for a team of 1-6 species.\n" +
		"Without arguments, opens an interactive picker.",
	Args: cobra.MaximumNArgs(dex.MaxTeamSize),
	RunE: func(cmd *cobra.Command, args []string) error {
		adv, err := loadAdvisor()
		if err != nil {
			return err
		}

		names := args
		if teamFlag := viper.GetString("analyze.team"); len(names) == 0 && teamFlag != "" {
			names = ui.SplitNames(teamFlag)
		}
		if len(names) == 0 {
			if viper.GetBool("analyze.picker") {
				names, err = ui.RunSpeciesSelector(adv.Table, dex.MaxTeamSize)
			} else {
				names, err = ui.PromptTeamNames(adv.Table)
			}
			if err != nil {
				return err
			}
		}

		req := advisor.FullRequest(names)
		if viper.GetBool("analyze.no-suggestions") {
			req.Suggestions = false
		}

		res, err := adv.AnalyzeTeam(req)
		if err != nil {
			return err
		}

		out := ui.NewTeamUI(cmd.OutOrStdout(), viper.GetBool("analyze.plain-summary"))
		out.PrintResult(res)
		return nil
	},
}

var (
	analyzeTeam          string
	analyzePicker        bool
	analyzeNoSuggestions bool
	analyzePlainSummary  bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeTeam, "team", "t", "", "Comma-separated team of 1-6 species names")
	analyzeCmd.Flags().BoolVar(&analyzePicker, "picker", false, "Pick the team in a full-screen selector instead of a text prompt")
	analyzeCmd.Flags().BoolVar(&analyzeNoSuggestions, "no-suggestions", false, "Skip weakness-counter suggestions")
	analyzeCmd.Flags().BoolVar(&analyzePlainSummary, "plain-summary", false, "Print a machine-readable summary (no styling)")

	// Bind all flags to viper for config file support
	viper.BindPFlag("analyze.team", analyzeCmd.Flags().Lookup("team"))
	viper.BindPFlag("analyze.picker", analyzeCmd.Flags().Lookup("picker"))
	viper.BindPFlag("analyze.no-suggestions", analyzeCmd.Flags().Lookup("no-suggestions"))
	viper.BindPFlag("analyze.plain-summary", analyzeCmd.Flags().Lookup("plain-summary"))
}
