// Package cli implements the quizmatch command-line interface.
// Commands are thin driving adapters: they assemble the driven
// adapters, call core services through the driving ports, and format
// the output. No quiz logic lives here.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	configfile "github.com/nordfuton/quizmatch-cli/internal/adapters/driven/config/file"
	"github.com/nordfuton/quizmatch-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagVerbose  bool
	flagConfig   string
	flagCatalog  string
	flagMappings string
)

var rootCmd = &cobra.Command{
	Use:   "quizmatch",
	Short: "Futon recommendation quiz for the command line",
	Long: `Quizmatch walks a shopper through the futon quiz and ranks the
product catalog against their answers: sleeper count, body weight,
sleep position and firmness preference.

Run "quizmatch quiz" for the interactive wizard, or "quizmatch
recommend" to score a prepared answer set directly.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config directory (default ~/.quizmatch)")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "path to the product catalog JSON export")
	rootCmd.PersistentFlags().StringVar(&flagMappings, "mappings", "", "path to the tag mappings TOML file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// openConfig loads the TOML config store from the configured directory.
func openConfig() (*configfile.ConfigStore, error) {
	store, err := configfile.NewConfigStore(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	return store, nil
}

// catalogPath resolves the catalog location: flag first, then config.
func catalogPath(cfg *configfile.ConfigStore) (string, error) {
	if flagCatalog != "" {
		return flagCatalog, nil
	}
	if path := cfg.GetString("catalog.path"); path != "" {
		return path, nil
	}
	return "", fmt.Errorf("no catalog configured: pass --catalog or set catalog.path in %s", cfg.Path())
}

// mappingsPath resolves the tag mappings location: flag, config, then
// the default next to the config file. The file does not have to exist;
// absent mappings mean the compiled-in defaults.
func mappingsPath(cfg *configfile.ConfigStore) string {
	if flagMappings != "" {
		return flagMappings
	}
	if path := cfg.GetString("mappings.path"); path != "" {
		return path
	}
	return filepath.Join(filepath.Dir(cfg.Path()), "mappings.toml")
}
