package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pokedex-labs/pokeadvisor-cli/internal/ui"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pokeadvisor",
	Short: "Pokémon team and evolution advisor",
	Long:  longDescription,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initUIAndBanner(cmd)
	},

	// When invoked without a subcommand, show help (with banner) instead of
	// printing a plain usage output.
	RunE: func(cmd *cobra.Command, args []string) error {
		initUIAndBanner(cmd)
		return cmd.Help()
	},
}

var cfgFile string
var version string

// SetVersion sets the version for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// GetRootCmd returns the root command for use with fang
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pokeadvisor.yaml or ./config/defaults.yaml)")

	// Ensure `--help` (and help subcommands) show the banner consistently.
	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		initUIAndBanner(cmd)
		defaultHelp(cmd, args)
	})

	rootCmd.AddCommand(analyzeCmd, evolutionCmd, suggestCmd, dexCmd)
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.SetConfigType("yaml")
		viper.AddConfigPath(home)
		viper.AddConfigPath("./config")

		// Try .pokeadvisor first
		viper.SetConfigName(".pokeadvisor")
		err = viper.ReadInConfig()

		// If not found, try defaults.yaml
		notFound := &viper.ConfigFileNotFoundError{}
		if err != nil && errors.As(err, notFound) {
			viper.SetConfigName("defaults")
			err = viper.ReadInConfig()
		}

		if err != nil && !errors.As(err, notFound) {
			cobra.CheckErr(err)
		}

		if err == nil {
			configMsg := ui.Dim.Render("Using config file: ") + ui.Secondary.Render(viper.ConfigFileUsed())
			fmt.Fprintln(os.Stderr, configMsg)
		}
	}

	// Enable environment variable support (e.g., POKEADVISOR_DATA_POKEDEX)
	// Replace dots with underscores: data.pokedex -> POKEADVISOR_DATA_POKEDEX
	viper.SetEnvPrefix("POKEADVISOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
}

const longDescription = "Pokémon team and evolution advisor. Analyzes team type coverage, " +
	"evolution-chain stat progressions, and suggests counters and balanced replacements " +
	"from a static species dataset."

func initUIAndBanner(cmd *cobra.Command) {
	if cmd == nil {
		return
	}
	cmd.Root().Long = ui.RenderBanner(ui.BannerASCII) + "\n" + longDescription
}
