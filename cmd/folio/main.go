package main

import (
	"github.com/tendermint/tmlibs/cli"

	"github.com/bytom/folio/cmd/folio/commands"
	"github.com/bytom/folio/config"
)

func main() {
	cmd := cli.PrepareBaseCmd(commands.RootCmd, "FOLIO", config.DefaultDataDir())
	cmd.Execute()
}
