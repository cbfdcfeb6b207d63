// Root command for the typemap demo CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// configFile is set by the --config flag.
	configFile string

	// cfg holds demo settings, loaded once by PersistentPreRunE.
	cfg *viper.Viper
)

var rootCmd = &cobra.Command{
	Use:   "typemap",
	Short: "Runnable demos for the sovran-typemap containers",
	Long: `typemap runs small self-contained scenarios against the sovran-typemap
containers: shared application state, a service locator, polymorphic
access through capability interfaces, and keyed heterogeneous storage.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(configFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: typemap.yaml in the working directory)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(appStateCmd)
	rootCmd.AddCommand(servicesCmd)
	rootCmd.AddCommand(animalsCmd)
	rootCmd.AddCommand(numbersCmd)
}
