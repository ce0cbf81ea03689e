package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/lined/pkg/core/config"
)

var configFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Zeigt die wirksame Konfiguration an",
	Long: `Gibt die wirksame Konfiguration aus, nachdem Config-Datei, Defaults
und Kommandozeilen-Flags zusammengeführt wurden.

Beispiele:
  lined config                  # TOML
  lined config --format yaml    # YAML
  lined config > lined.toml     # Vorlage erzeugen`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := config.ParseFormat(configFormat)
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return cfg.Encode(cmd.OutOrStdout(), format)
	},
}

func init() {
	configCmd.Flags().StringVarP(&configFormat, "format", "f", "toml", "Ausgabeformat (toml, yaml)")
	rootCmd.AddCommand(configCmd)
}
