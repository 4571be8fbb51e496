package main

import (
	"fmt"
	"os"

	"github.com/roach88/sprintledger/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitFailure)
	}
	os.Exit(cli.ExitSuccess)
}
