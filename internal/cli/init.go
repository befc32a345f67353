package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/ballstats/internal/config"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default .ballstats/config.yaml",
		Long:  `Create .ballstats/config.yaml in the current directory with the default settings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			return initConfig(cmd, dir, force)
		},
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")

	return cmd
}

func initConfig(cmd *cobra.Command, dir string, force bool) error {
	path := config.ConfigPath(dir)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.Default()
	if data, _ := cmd.Flags().GetString("data"); data != "" {
		cfg.DataPath = data
	}
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		cfg.Format = format
	}

	if err := config.SaveConfig(dir, cfg); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Config written to %s\n", path)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  ballstats check")
	fmt.Fprintln(out, "  ballstats homeruns")
	return nil
}
