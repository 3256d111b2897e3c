package main

import (
	"fmt"
	"os"

	"inkbound-server/cmd/lorectl/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
