package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "travelcms",
	Short: "Travel agency content backend",
	Long: `travelcms serves the admin API for trips, itineraries, FAQs and galleries,
plus the public trip and article pages.

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(serveCmd, migrateCmd, createAdminCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
