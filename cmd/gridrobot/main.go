package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"gridrobot/internal/cli"
)

func main() {
	if err := cli.NewRootCommand(afero.NewOsFs()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
