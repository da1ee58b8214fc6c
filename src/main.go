package main

import (
	"os"

	"github.com/entur/openapi-validator-cli/src/commands"
	"github.com/entur/openapi-validator-cli/src/pkg/infrastructure/print"
)

var (
	version = "master"
)

func main() {
	if err := commands.Run(os.Args, version); err != nil {
		print.Erro(err)
		os.Exit(1)
	}
}
