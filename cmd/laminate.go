package cmd

import (
	"github.com/spf13/cobra"
)

var laminateCmd = &cobra.Command{
	Use:   "laminate",
	Short: "Laminate stiffness analysis",
	Long: `Analyze the stiffness of a laminated plate.

Subcommands:
  analyze  - Analyze a ply stack defined in a JSON file
  plate    - Analyze a homogeneous isotropic plate

Example JSON file structure:
{
  "name": "Quasi-isotropic skin",
  "offset": 0,
  "materials": {
    "cfrp": {"props": [142500, 8700, 0.28, 5100, 5100, 2900], "rho": 1600}
  },
  "plies": [
    {"angle": 0, "thickness": 0.125, "material": "cfrp"},
    {"angle": 45, "thickness": 0.125, "material": "cfrp"},
    {"angle": -45, "thickness": 0.125, "material": "IM7/8552"},
    {"angle": 90, "thickness": 0.125, "material": "cfrp"}
  ]
}

Plies are listed bottom to top. A ply material names an entry of
"materials" or a preset (see 'golam material --list').`,
}

func init() {
	rootCmd.AddCommand(laminateCmd)
}
