package main

import (
	"os"

	"github.com/spf13/cobra"

	"relstore/internal/interfaces/cli/migrate"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "relstore",
		Short: "Relstore - relational entity store",
		Long:  `Relstore is a relational entity store built on GORM, with migration tooling and demo data seeding.`,
	}

	rootCmd.AddCommand(
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
