package main

import (
	"github.com/spf13/cobra"

	"pet-hotel-registry/internal/domain/pets"
)

func seedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Validate and print the seed dataset as YAML",
		Long: `Loads the seed dataset (embedded by default, or --file) and prints it
as YAML. Fails if a record has no id or ids repeat.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := pets.LoadSeedFile(file)
			if err != nil {
				return err
			}
			return pets.WriteSeed(cmd.OutOrStdout(), items)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Seed YAML file (default: embedded seed)")
	return cmd
}
