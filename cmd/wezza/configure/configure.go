// Package configurecmder provides the configure command for storing
// weather provider credentials.
package configurecmder

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zoryamba/wezza/pkg/cliui"
	"github.com/zoryamba/wezza/pkg/configure"
	"github.com/zoryamba/wezza/pkg/credentials"
	"github.com/zoryamba/wezza/pkg/logger"
	"github.com/zoryamba/wezza/pkg/weather/provider"
)

const configureLongDesc string = `Store an API credential for a weather provider.

Credentials are stored in credentials.toml in the .wezza/ directory.
The command prompts for the API key (hidden on a terminal, plain when
piped), asks before overwriting an existing credential, and offers to
make the provider the default for future get invocations.

Supported providers: weatherapi, accuweather

Examples:
  wezza configure weatherapi       Prompt for a WeatherAPI key
  wezza configure accuweather      Prompt for an AccuWeather key
  echo $KEY | wezza configure weatherapi`

const configureShortDesc string = "Store an API credential for a weather provider"

func NewConfigureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configure <provider>",
		Short: configureShortDesc,
		Long:  configureLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")
			debug, _ := cmd.Flags().GetBool("debug")

			return runConfigure(args[0], configDir, debug)
		},
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return provider.SupportedProviders(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}

	return cmd
}

func runConfigure(id, configDir string, debug bool) error {
	log := logger.NewLogger(debug || os.Getenv("WEZZA_DEBUG") != "")
	defer log.Sync()

	id = strings.ToLower(strings.TrimSpace(id))

	if !provider.IsSupported(id) {
		return fmt.Errorf("unsupported provider: %q\n\nSupported providers: %s",
			id, strings.Join(provider.SupportedProviders(), ", "))
	}

	store, err := credentials.NewStore(configDir, log)
	if err != nil {
		return fmt.Errorf("opening credentials store: %w", err)
	}

	state, err := configure.New(store, configure.NewTerminalPrompter(), log).Run(id)
	if err != nil {
		return err
	}

	if state == configure.StatePersisted {
		fmt.Printf("\n  %s Stored %s credentials %s\n\n",
			cliui.SuccessMark,
			cliui.NameStyle.Render(id),
			cliui.DimStyle.Render("("+store.Path()+")"),
		)
	}

	return nil
}
