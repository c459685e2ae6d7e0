package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/medisupply/fieldkit/cmd/medisupply/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		if !errors.Is(err, commands.ErrInvalid) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
