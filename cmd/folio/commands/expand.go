package commands

import (
	"os"

	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"

	"github.com/bytom/folio/compiler"
	"github.com/bytom/folio/compiler/assembler"
	"github.com/bytom/folio/compiler/lexer"
	"github.com/bytom/folio/diagnostics"
	"github.com/bytom/folio/util"
)

var expandCmd = &cobra.Command{
	Use:   "expand <path>",
	Short: "Print main with every macro call inlined",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]
		src, err := util.ReadSource(path)
		if err != nil {
			jww.ERROR.Println(err)
			os.Exit(util.ErrLocalExe)
		}

		exprs, err := expandSource(src, config.Compiler.MaxInstructions)
		if err != nil {
			diagnostics.NewEmitter(os.Stderr).Emit(compiler.Diagnose(path, src, err))
			os.Exit(util.ErrCompile)
		}

		for _, expr := range exprs {
			jww.FEEDBACK.Println(expr.String())
		}
	},
}

func init() {
	expandCmd.Flags().Int("compiler.max_instructions", config.Compiler.MaxInstructions, "Max length of main after expansion, 0 for no limit")
}

func expandSource(src string, limit int) ([]assembler.Expression, error) {
	tokens, err := lexer.Lex(src)
	if err != nil {
		return nil, err
	}
	return assembler.Assemble(tokens, limit)
}
