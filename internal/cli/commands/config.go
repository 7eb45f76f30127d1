package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aki/ti/internal/cli/ui"
	"github.com/aki/ti/internal/config"
)

// configView is the resolved configuration as shown by 'config show'
type configView struct {
	ConfigFile    string `json:"config_file" yaml:"config_file"`
	Sheet         string `json:"sheet" yaml:"sheet"`
	config.Config `yaml:",inline"`
}

func (c *cli) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect ti configuration",
		Long: `Inspect the configuration file.

The file is ~/.config/ti/config.yaml (or config.toml) unless --config or
$TI_CONFIG points elsewhere.`,
		Example: `  # Show the effective configuration
  ti config show

  # Check the configuration file
  ti config validate`,
		// config commands must work when the config file is broken
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}

	cmd.AddCommand(c.configShowCmd(), c.configValidateCmd())
	return cmd
}

func (c *cli) configShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to find home directory: %w", err)
			}
			path := c.configPath(home)

			cfg, err := config.NewManager(path).Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			view := configView{
				ConfigFile: path,
				Sheet:      cfg.ResolveSheetFile(c.flags.sheetFile, os.Getenv, home),
				Config:     *cfg,
			}

			p := ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), false)
			switch format {
			case "json":
				return p.JSON(view)
			case "yaml":
				data, err := yaml.Marshal(view)
				if err != nil {
					return fmt.Errorf("failed to marshal configuration: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), string(data))
				return nil
			default:
				return fmt.Errorf("unsupported format: %s", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "Output format (yaml, json)")
	return cmd
}

func (c *cli) configValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		Long: `Validate the configuration file against the configuration schema.

Unknown keys, wrong types and unsupported values are reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to find home directory: %w", err)
			}
			path := c.configPath(home)

			p := ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), false)
			if _, err := os.Stat(path); os.IsNotExist(err) {
				p.Line("No configuration file at %s, using defaults.", path)
				return nil
			}
			if _, err := config.NewManager(path).Load(); err != nil {
				return err
			}
			p.Line("Configuration is valid: %s", path)
			return nil
		},
	}
}

// configPath returns the config file named by --config, $TI_CONFIG or the
// default location
func (c *cli) configPath(home string) string {
	if c.flags.configFile != "" {
		return c.flags.configFile
	}
	return config.DefaultPath(os.Getenv, home)
}
