package main

import (
	"os"

	"github.com/dayanaadylkhanova/kctf-pow/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args, cli.StdIO()))
}
