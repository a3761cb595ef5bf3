package config

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	appconfig "voice2txt/internal/config"
)

// NewCmd returns the config command. configPath points at the root's
// --config flag value.
func NewCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the saved configuration",
		Long: `Inspect the configuration saved with --save.

Values are looked up per field in this order: command-line flag, saved file,
then the ` + appconfig.EnvAPIKey + ` environment variable (api key only).`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the saved api key (masked) and base url",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appconfig.LoadEnv(zap.NewNop())
			printConfig(cmd.OutOrStdout(), appconfig.Load(*configPath))
			return nil
		},
	})

	return cmd
}

func printConfig(w io.Writer, res appconfig.LoadResult) {
	fmt.Fprintf(w, "Config file: %s (%s)\n", res.Path, res.State)
	if res.Err != nil && res.State != appconfig.StateAbsent {
		fmt.Fprintf(w, "  ignored: %v\n", res.Err)
	}
	fmt.Fprintf(w, "api_key:  %s\n", orUnset(appconfig.MaskKey(res.Config.APIKey)))
	fmt.Fprintf(w, "base_url: %s\n", orUnset(res.Config.BaseURL))

	env := "unset"
	if os.Getenv(appconfig.EnvAPIKey) != "" {
		env = "set"
	}
	fmt.Fprintf(w, "%s: %s\n", appconfig.EnvAPIKey, env)
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
