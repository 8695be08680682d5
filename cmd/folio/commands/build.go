package commands

import (
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"

	"github.com/bytom/folio/compiler"
	cfg "github.com/bytom/folio/config"
	"github.com/bytom/folio/diagnostics"
	"github.com/bytom/folio/util"
)

var buildCmd = &cobra.Command{
	Use:   "build <path>",
	Short: "Compile a folio file into packed records",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]
		src, err := util.ReadSource(path)
		if err != nil {
			jww.ERROR.Println(err)
			os.Exit(util.ErrLocalExe)
		}

		startTime := time.Now()
		prog, err := compiler.Compile(path, src,
			compiler.WithEmitter(diagnostics.NewEmitter(os.Stderr)),
			compiler.WithMaxInstructions(config.Compiler.MaxInstructions),
			compiler.WithLayout(config.Compiler.Layout),
		)
		if err != nil {
			os.Exit(util.ErrCompile)
		}

		log.WithFields(log.Fields{
			"module":       logModule,
			"file":         path,
			"instructions": prog.Instructions,
			"records":      len(prog.Records),
			"duration":     time.Since(startTime),
		}).Info("compilation finished")

		var out string
		switch config.Output.Format {
		case cfg.FormatJSON:
			out, err = formatJSON(prog)
		default:
			out = formatHex(prog)
		}
		if err != nil {
			jww.ERROR.Println(err)
			os.Exit(util.ErrLocalParse)
		}
		jww.FEEDBACK.Print(out)
	},
}

func init() {
	buildCmd.Flags().String("output.format", config.Output.Format, "Output format (hex or json)")
	buildCmd.Flags().String("compiler.layout", config.Compiler.Layout, "Fail unless the records match this layout version")
	buildCmd.Flags().Int("compiler.max_instructions", config.Compiler.MaxInstructions, "Max length of main after expansion, 0 for no limit")
}
