package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"patchbay/internal/interfaces/cli/migrate"
	"patchbay/internal/interfaces/cli/server"
)

func main() {
	root := &cobra.Command{
		Use:   "patchbay",
		Short: "Cable topology and rack elevation service",
	}

	root.AddCommand(server.NewCommand())
	root.AddCommand(migrate.NewCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
