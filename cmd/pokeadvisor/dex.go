package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pokedex-labs/pokeadvisor-cli/internal/dex"
	"github.com/pokedex-labs/pokeadvisor-cli/internal/evolution"
	"github.com/pokedex-labs/pokeadvisor-cli/internal/ui"
)

var dexCmd = &cobra.Command{
	Use:   "dex <species>",
	Short: "Show one species record and its evolution family",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		adv, err := loadAdvisor()
		if err != nil {
			return err
		}

		sp, err := adv.Table.Lookup(args[0])
		if err != nil {
			return err
		}
		fam, err := evolution.FamilyOf(adv.Graph, adv.Table, sp.Name)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		var out strings.Builder
		out.WriteString(ui.Primary.Bold(true).Render(fmt.Sprintf("%s #%03d", sp.DisplayName(), sp.Dex)))
		out.WriteString("\n")
		out.WriteString(ui.FormatKeyValue("Generation", fmt.Sprintf("%d", sp.Generation)))
		out.WriteString("\n")
		out.WriteString(ui.FormatKeyValue("Types", ui.Secondary.Render(sp.TypeString())))
		out.WriteString("\n")
		out.WriteString(ui.FormatKeyValue("Stat total", fmt.Sprintf("%d", sp.Stats.Total())))
		out.WriteString("\n")

		vals := sp.Stats.Values()
		for i, name := range dex.StatNames {
			out.WriteString(fmt.Sprintf("  %-12s %d\n", name, vals[i]))
		}

		stageLabel := "Final Form"
		if fam.CanEvolve(sp.Name) {
			stageLabel = fmt.Sprintf("Stage %d/%d", fam.StageNumber(sp.Name), fam.TotalStages())
		}
		out.WriteString(ui.FormatKeyValue("Evolution", stageLabel))
		out.WriteString("\n")
		out.WriteString(ui.FormatKeyValue("Family", strings.Join(fam.Names(), " → ")))

		fmt.Fprintln(w, ui.Box.Render(out.String()))
		return nil
	},
}
