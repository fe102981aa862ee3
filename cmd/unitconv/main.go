package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/hupe1980/unitgo"
	"github.com/hupe1980/unitgo/cmd/unitconv/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error [%s]: %v\n", unitgo.KindOf(err), err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
