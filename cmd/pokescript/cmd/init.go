package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mimiqdev/pokescript/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newInitCmd(v *viper.Viper) *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize pokescript configuration",
		Long: `Write a default config.yaml to your config directory.

The file holds your defaults:
  - show_title        print the pokemon name above the sprite
  - large             use the big sprites
  - colorscripts_dir  read sprites from a directory instead of the bundle

Flags on the command line always win over the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			return runInit(cmd, v.GetString("config_file"), force)
		},
	}

	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
	return initCmd
}

func runInit(cmd *cobra.Command, path string, force bool) error {
	if path == "" {
		dir, err := config.GetConfigDir()
		if err != nil {
			return fmt.Errorf("finding config directory: %w", err)
		}
		path = filepath.Join(dir, config.FileName)
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil && !force {
		if _, err := config.Load(path); err != nil {
			return fmt.Errorf("config file %s already exists and is invalid: %w\nUse --force to overwrite", path, err)
		}
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := config.EnsureConfigDir(filepath.Dir(path)); err != nil {
		return err
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit the file to change your defaults")
	fmt.Fprintln(out, "  2. Run 'pokescript --random' to meet a random pokemon")

	return nil
}
