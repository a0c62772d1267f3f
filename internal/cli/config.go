package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/clgen/internal/config"
	"github.com/ariel-frischer/clgen/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the grammar configuration",
	Long:  `Commands for creating and inspecting the clgen grammar configuration.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config to the repository",
	Long: `Write a fully commented default grammar configuration to .clgen.yml
in the repository (or to the path given with --config). Refuses to
overwrite an existing file.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigInit(cmd)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the merged configuration: defaults, the config file (if any)
and CLGEN_* environment overrides.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigShow(cmd)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command) error {
	path := configFlag
	if path == "" {
		path = filepath.Join(repoFlag, config.DefaultConfigNames[0])
	}

	if _, err := os.Stat(path); err == nil {
		return errors.NewConfigError(
			fmt.Sprintf("config file already exists at %s", path),
			"Remove it first, or pass a different path with --config",
		)
	}

	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return errors.WrapWithMessage(err, errors.Configuration, "writing "+path)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command) error {
	grammar, err := config.Load(repoFlag, configFlag)
	if err != nil {
		return errors.InvalidConfiguration(err)
	}

	out, err := config.Marshal(grammar)
	if err != nil {
		return errors.WrapWithMessage(err, errors.Configuration, "rendering configuration")
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
