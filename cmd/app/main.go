package main

import (
	"fmt"
	"os"

	"FrontendMastery/cmd/app/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
