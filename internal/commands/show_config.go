// internal/commands/show_config.go
package bstreport

import (
	"fmt"

	"github.com/k0kubun/pp"
	"github.com/mwiater/bstreport/internal/appconfig"
	"github.com/spf13/cobra"
)

var showConfigYAML bool

// showConfigCmd implements the 'show config' command, which displays the current configuration settings.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the config file is loaded properly and overridden by flags accordingly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *GetConfig()
		out := cmd.OutOrStdout()
		if showConfigYAML {
			data, err := cfg.ToYAML()
			if err != nil {
				return fmt.Errorf("render config: %w", err)
			}
			_, err = out.Write(data)
			return err
		}
		appconfig.ShowConfig(out, cfg.ConfigPath, cfg)
		if cfg.Debug {
			fmt.Fprintln(out)
			pp.Fprintln(out, cfg)
		}
		return nil
	},
}

func init() {
	showConfigCmd.Flags().BoolVar(&showConfigYAML, "yaml", false, "print the effective config as YAML")
	showCmd.AddCommand(showConfigCmd)
}
