package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cfg "github.com/bytom/folio/config"
	folioLog "github.com/bytom/folio/log"
)

const logModule = "cmd"

var (
	config = cfg.DefaultConfig()
)

// RootCmd is the folio command. Flags named after config keys override the
// values of the config file under --home.
var RootCmd = &cobra.Command{
	Use:          "folio",
	Short:        "Compiler for folio liquidity pool programs",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.Unmarshal(config); err != nil {
			return err
		}
		config.SetRoot(cfg.ExpandHome(config.RootDir))
		if err := config.Validate(); err != nil {
			return err
		}
		return folioLog.Init(config)
	},
}

func init() {
	RootCmd.PersistentFlags().String("log_level", config.LogLevel, "Select log level(trace, debug, info, warn, error or fatal)")
	RootCmd.PersistentFlags().String("log_file", config.LogFile, "Log directory, relative to home; empty logs to stderr")

	RootCmd.AddCommand(buildCmd)
	RootCmd.AddCommand(expandCmd)
	RootCmd.AddCommand(initFilesCmd)
	RootCmd.AddCommand(versionCmd)
}
