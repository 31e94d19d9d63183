package cmd

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"telcodegen/config"
	"telcodegen/logging"
)

var v = config.New()

var (
	configFile  string
	loggerReady bool
)

var rootCmd = &cobra.Command{
	Use:   "telcodegen",
	Short: "Generate Lua lookup tables for mobile telecommunication codes",
	Long: `telcodegen builds Lua lookup tables for country calling codes, mobile
country codes (MCC), mobile network codes (MNC), ISO currency and country codes
and libphonenumber prefixes. Wikipedia articles are downloaded into a cache
directory and can be re-read offline with --nodl.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(".env"); err != nil {
			return err
		}
		if err := bindFlags(v, cmd.Flags()); err != nil {
			return err
		}
		if err := config.ReadFile(v, configFile); err != nil {
			return err
		}
		if err := logging.Setup(v.GetString(config.KeyLogLevel)); err != nil {
			return err
		}
		loggerReady = true
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if loggerReady {
			zap.L().Error("command failed", zap.Error(err))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// bindFlags lets flags given on the command line override the environment
// and the config file.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	return eris.Wrap(v.BindPFlags(flags), "binding flags")
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "Config file (yaml, toml or json)")
	pf.String(config.KeyLogLevel, "info", "Log level (debug, info, warn, error)")
	pf.String(config.KeyDir, ".", "Download or input directory")
	pf.String(config.KeyFetch, "raw", "Fetch mode: raw, api or browser")
	pf.String(config.KeyBaseURL, "", "Wikipedia base URL (defaults to https://en.wikipedia.org)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(inspectCmd)
}
