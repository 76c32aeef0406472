package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// @title Pet Hotel Registry API
// @version 1.0
// @description Registro de mascotas huéspedes del hotel: alta, dashboard del dueño, directorio del staff y sesiones de UI.
// @BasePath /

const (
	Version = "0.1.0"
	appName = "pet-hotel-registry"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var flags serveFlags

	cmd := &cobra.Command{
		Use:   "api",
		Short: "Pet hotel registry HTTP API",
		// Sin subcomando arranca el server.
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), flags)
		},
	}
	flags.bind(cmd)

	cmd.AddCommand(serveCmd(), seedCmd(), versionCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	}
}
