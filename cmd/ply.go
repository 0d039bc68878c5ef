package cmd

import (
	"github.com/spf13/cobra"
)

var plyCmd = &cobra.Command{
	Use:   "ply",
	Short: "Rotated ply stiffness",
	Long: `Evaluate the reduced stiffness of a single ply rotated into the
laminate axes.

Subcommands:
  sweep  - Plot a stiffness term over a range of ply angles`,
}

func init() {
	rootCmd.AddCommand(plyCmd)
}
