package commands

import (
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	cfg "github.com/bytom/folio/config"
)

var initFilesCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file into the home directory",
	Run:   initFiles,
}

func initFiles(cmd *cobra.Command, args []string) {
	configFile := filepath.Join(config.RootDir, cfg.ConfigFileName)
	if !cfg.EnsureRoot(config.RootDir) {
		log.WithFields(log.Fields{"module": logModule, "config": configFile}).Info("Already exists config file.")
		return
	}
	log.WithFields(log.Fields{"module": logModule, "config": configFile}).Info("Initialized folio")
}
