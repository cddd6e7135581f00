package main

import (
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo venues, artists and shows into an empty database",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := appConfig.ValidateDatabase(); err != nil {
			return err
		}

		db, err := openDatabase(cmd.Context(), appConfig.Database.URL)
		if err != nil {
			return err
		}
		defer db.Close()

		return seedDemoData(cmd.Context(), db)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
