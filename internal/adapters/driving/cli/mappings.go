package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	configfile "github.com/nordfuton/quizmatch-cli/internal/adapters/driven/config/file"
	"github.com/nordfuton/quizmatch-cli/internal/core/domain"
)

var mappingsForce bool

var mappingsCmd = &cobra.Command{
	Use:   "mappings",
	Short: "Manage tag mappings",
	Long: `View and seed the tag vocabulary that links product tags to quiz
answers. Categories absent from the mappings file fall back to the
built-in defaults.`,
	RunE: runMappingsShow,
}

var mappingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective tag mapping",
	RunE:  runMappingsShow,
}

var mappingsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default mapping to the mappings file",
	Long: `Writes the built-in tag mapping to the mappings file so it can be
edited. Refuses to overwrite an existing file unless --force is given.`,
	RunE: runMappingsInit,
}

func init() {
	mappingsInitCmd.Flags().BoolVar(&mappingsForce, "force", false, "overwrite an existing mappings file")
	mappingsCmd.AddCommand(mappingsShowCmd)
	mappingsCmd.AddCommand(mappingsInitCmd)
	rootCmd.AddCommand(mappingsCmd)
}

func runMappingsShow(cmd *cobra.Command, _ []string) error {
	cfg, err := openConfig()
	if err != nil {
		return err
	}
	store, err := configfile.NewMappingStore(mappingsPath(cfg))
	if err != nil {
		return err
	}

	data, err := configfile.EncodeMapping(store.Mapping())
	if err != nil {
		return fmt.Errorf("encode mappings: %w", err)
	}
	cmd.Printf("# %s\n", store.Path())
	cmd.Print(string(data))
	return nil
}

func runMappingsInit(cmd *cobra.Command, _ []string) error {
	cfg, err := openConfig()
	if err != nil {
		return err
	}
	path := mappingsPath(cfg)

	if !mappingsForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, use --force to overwrite", path)
		}
	}

	data, err := configfile.EncodeMapping(domain.DefaultTagMapping())
	if err != nil {
		return fmt.Errorf("encode mappings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write mappings %s: %w", path, err)
	}
	cmd.Printf("Wrote default mappings to %s\n", path)
	return nil
}
