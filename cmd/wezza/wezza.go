// Package wezzacmder
package wezzacmder

import (
	"github.com/spf13/cobra"

	configcmder "github.com/zoryamba/wezza/cmd/wezza/config"
	configurecmder "github.com/zoryamba/wezza/cmd/wezza/configure"
	getcmder "github.com/zoryamba/wezza/cmd/wezza/get"
)

const wezzaLongDesc string = `Wezza fetches weather forecasts from multiple providers.

Store a provider credential first:
  wezza configure weatherapi

Then get a forecast:
  wezza get "Kyiv, Ukraine"
  wezza get "Kyiv, Ukraine" 2026-08-30
  wezza get "Kyiv, Ukraine" --provider accuweather`

const wezzaShortDesc string = "Wezza - multi-provider weather CLI"

func NewWezzaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wezza",
		Short: wezzaShortDesc,
		Long:  wezzaLongDesc,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("config-dir", "", "Override the .wezza/ directory")

	// Add subcommands
	cmd.AddCommand(configurecmder.NewConfigureCmd())
	cmd.AddCommand(getcmder.NewGetCmd())
	cmd.AddCommand(configcmder.NewConfigCmd())

	return cmd
}
