package cmd

import (
	"github.com/spf13/cobra"
)

var lpCmd = &cobra.Command{
	Use:   "lp",
	Short: "Lamination parameter tools",
	Long: `Work with the lamination parameters ξ of a laminate.

Subcommands:
  reconstruct  - Rebuild the stiffness matrices from lamination parameters

Example JSON file structure:
{
  "name": "optimum",
  "thickness": 2.0,
  "preset": "AS4/3501-6",
  "xiA": [0.2, 0, -0.4, 0],
  "xiB": [0, 0, 0, 0],
  "xiD": [0.5, 0.1, 0.3, 0],
  "xiE": [0.2, 0, 0, 0]
}

"material": {"props": [...], "rho": ...} may be given instead of "preset".`,
}

func init() {
	rootCmd.AddCommand(lpCmd)
}
