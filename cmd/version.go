package cmd

import (
	"fmt"

	"github.com/alexiusacademia/golam/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of golam",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
		fmt.Println("Composite Laminate Analysis Tool")
		if version.BuildTime != "unknown" {
			fmt.Printf("Built %s\n", version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
