// Package configcmder provides the config command for managing
// persistent wezza configuration stored in the .wezza/ directory.
package configcmder

import (
	"github.com/spf13/cobra"
)

const configLongDesc string = `Manage persistent wezza configuration.

Configuration is stored as config.toml in the .wezza/ directory.
Credentials are not managed here; use wezza configure for those.

Keys use dotted notation matching the TOML section structure:
  http.timeout_seconds, weatherapi.base_url, accuweather.base_url

Use subcommands to get, set, or list configuration values:
  wezza config set <key> <value>    Set a configuration value
  wezza config get <key>            Get a configuration value
  wezza config list                 List all configuration values

Examples:
  wezza config set http.timeout_seconds 30
  wezza config get weatherapi.base_url
  wezza config list`

const configShortDesc string = "Manage persistent wezza configuration"

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: configShortDesc,
		Long:  configLongDesc,
	}

	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}
