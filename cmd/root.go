package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/golam/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "golam",
	Short: "Composite Laminate Analysis Tool",
	Long: `golam - Go Laminate Analyzer

A CLI tool for the stiffness analysis of fibre-reinforced composite
laminates using classical lamination theory and first-order shear
deformation theory.

This tool helps engineers compute:
  - Lamina stiffness and rotation invariants from engineering constants
  - Rotated ply stiffness over a range of fibre angles
  - Laminate A, B, D and transverse shear E matrices
  - Equivalent membrane properties and shear correction factors
  - Lamination parameters and laminates rebuilt from them`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   golam v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Laminate Analyzer                                    ║")
		fmt.Printf("  ║   %-56s║\n", version.Author+" ©  "+version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the stiffness analysis of composite laminates.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Lamina stiffness from engineering constants or presets")
		fmt.Println("    • Ply stiffness sweeps over the fibre angle")
		fmt.Println("    • ABD and transverse shear matrices of a ply stack")
		fmt.Println("    • Lamination parameters and reconstruction")
		fmt.Println()
		fmt.Println("  Use 'golam --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
