package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pokedex-labs/pokeadvisor-cli/internal/ui"
)

var evolutionCmd = &cobra.Command{
	Use:   "evolution [species]",
	Short: "Analyze the evolution chain of a species",
	Long: "Shows the full evolution family with per-stage stat progressions, grades\n" +
		"every immediate evolution option, and recommends whether to evolve.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		adv, err := loadAdvisor()
		if err != nil {
			return err
		}

		var name string
		if len(args) == 1 {
			name = args[0]
		} else {
			name, err = ui.PromptSpecies(adv.Table, "Which species should be analyzed?")
			if err != nil {
				return err
			}
		}

		report, err := adv.EvolutionOptions(name)
		if err != nil {
			return err
		}

		out := ui.NewEvolutionUI(cmd.OutOrStdout(), viper.GetBool("evolution.plain-summary"))
		out.PrintReport(report)
		return nil
	},
}

var evolutionPlainSummary bool

func init() {
	evolutionCmd.Flags().BoolVar(&evolutionPlainSummary, "plain-summary", false, "Print a machine-readable summary (no styling)")

	viper.BindPFlag("evolution.plain-summary", evolutionCmd.Flags().Lookup("plain-summary"))
}
