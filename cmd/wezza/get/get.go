// Package getcmder provides the get command for fetching a forecast.
package getcmder

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zoryamba/wezza/pkg/cliui"
	"github.com/zoryamba/wezza/pkg/config"
	"github.com/zoryamba/wezza/pkg/credentials"
	"github.com/zoryamba/wezza/pkg/logger"
	"github.com/zoryamba/wezza/pkg/weather/provider"
	"github.com/zoryamba/wezza/pkg/weather/service"
)

const getLongDesc string = `Get a weather forecast for a location.

The location is free-form and geocoded by the provider. The optional
date must be YYYY-MM-DD and within the provider's forecast horizon;
omitting it means today. An explicit --provider wins over the stored
default.

Examples:
  wezza get "Kyiv, Ukraine"
  wezza get "Kyiv, Ukraine" 2026-08-30
  wezza get "Kyiv, Ukraine" --provider accuweather`

const getShortDesc string = "Get a weather forecast for a location"

func NewGetCmd() *cobra.Command {
	var providerFlag string

	cmd := &cobra.Command{
		Use:   "get <location> [date]",
		Short: getShortDesc,
		Long:  getLongDesc,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")
			debug, _ := cmd.Flags().GetBool("debug")

			dateStr := ""
			if len(args) == 2 {
				dateStr = args[1]
			}

			return runGet(cmd, args[0], dateStr, providerFlag, configDir, debug)
		},
	}

	cmd.Flags().StringVar(&providerFlag, "provider", "", "Provider to use instead of the stored default")
	cmd.RegisterFlagCompletionFunc("provider", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return provider.SupportedProviders(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runGet(cmd *cobra.Command, location, dateStr, providerFlag, configDir string, debug bool) error {
	log := logger.NewLogger(debug || os.Getenv("WEZZA_DEBUG") != "")
	defer log.Sync()

	providerFlag = strings.ToLower(strings.TrimSpace(providerFlag))

	if providerFlag != "" && !provider.IsSupported(providerFlag) {
		return fmt.Errorf("unsupported provider: %q\n\nSupported providers: %s",
			providerFlag, strings.Join(provider.SupportedProviders(), ", "))
	}

	v, err := config.InitViper(configDir)
	if err != nil {
		return err
	}
	timeout := time.Duration(v.GetUint("http.timeout_seconds")) * time.Second

	factory := func(id string) (provider.Provider, error) {
		return provider.New(id, provider.Options{
			BaseURL: v.GetString(id + ".base_url"),
			Timeout: timeout,
		})
	}

	store, err := credentials.NewStore(configDir, log)
	if err != nil {
		return fmt.Errorf("opening credentials store: %w", err)
	}

	forecast, err := service.New(store, factory, log).Get(cmd.Context(), location, dateStr, providerFlag)
	if err != nil {
		return err
	}

	fmt.Print(cliui.RenderForecast(forecast))

	return nil
}
