package commands

import (
	"runtime"

	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"

	"github.com/bytom/folio/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of folio",
	Run: func(cmd *cobra.Command, args []string) {
		jww.FEEDBACK.Printf("folio v%s (record layout %s) %s/%s\n", version.Version, version.Layout, runtime.GOOS, runtime.GOARCH)
	},
}
