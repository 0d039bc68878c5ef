package cmd

import (
	"fmt"

	"github.com/alexiusacademia/golam/internal/diagram"
	"github.com/alexiusacademia/golam/internal/laminate"
	"github.com/spf13/cobra"
)

var (
	laminateAnalyzeFile        string
	laminateAnalyzeNoSCF       bool
	laminateAnalyzeOrthotropic bool
	laminateAnalyzeSymmetric   bool
	laminateAnalyzeShowDiagram bool
	laminateAnalyzeExportFile  string
)

var laminateAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the stiffness of a ply stack",
	Long: `Calculate the A, B, D and transverse shear E matrices of a laminate
defined in a JSON file, together with its mass integrals, shear correction
factors, equivalent membrane properties and lamination parameters.

Examples:
  golam laminate analyze --file skin.json
  golam laminate analyze -f skin.json --diagram -o skin.png
  golam laminate analyze -f skin.json --symmetric --orthotropic`,
	Run: runLaminateAnalyze,
}

func init() {
	laminateCmd.AddCommand(laminateAnalyzeCmd)

	laminateAnalyzeCmd.Flags().StringVarP(&laminateAnalyzeFile, "file", "f", "", "Path to laminate JSON file [required]")
	laminateAnalyzeCmd.MarkFlagRequired("file")

	// Idealisations
	laminateAnalyzeCmd.Flags().BoolVar(&laminateAnalyzeNoSCF, "no-scf", false, "Keep the 5/6 shear correction factors")
	laminateAnalyzeCmd.Flags().BoolVar(&laminateAnalyzeOrthotropic, "orthotropic", false, "Zero the 16 and 26 stiffness terms")
	laminateAnalyzeCmd.Flags().BoolVar(&laminateAnalyzeSymmetric, "symmetric", false, "Zero the coupling matrix B")

	// Diagram options
	laminateAnalyzeCmd.Flags().BoolVar(&laminateAnalyzeShowDiagram, "diagram", false, "Show ASCII ply stack diagram")
	laminateAnalyzeCmd.Flags().StringVarP(&laminateAnalyzeExportFile, "output", "o", "", "Export stack diagram to file (png, svg, pdf)")
}

func runLaminateAnalyze(cmd *cobra.Command, args []string) {
	def, err := laminate.LoadFromFile(laminateAnalyzeFile)
	if err != nil {
		fmt.Printf("Error loading laminate: %v\n", err)
		return
	}

	lam, err := def.Build()
	if err != nil {
		fmt.Printf("Error building laminate: %v\n", err)
		return
	}

	if !laminateAnalyzeNoSCF {
		if _, _, err := lam.CalcSCF(); err != nil {
			fmt.Printf("Error computing shear correction factors: %v\n", err)
			return
		}
	}

	lp, err := lam.CalcLaminationParameters()
	if err != nil {
		fmt.Printf("Error computing lamination parameters: %v\n", err)
		return
	}

	if laminateAnalyzeOrthotropic {
		if err := lam.ForceOrthotropic(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}
	if laminateAnalyzeSymmetric {
		if err := lam.ForceSymmetric(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	printHeader("LAMINATE STIFFNESS ANALYSIS - CLT / FSDT")

	if def.Name != "" {
		fmt.Printf("  Laminate: %s\n", def.Name)
	}
	if def.Description != "" {
		fmt.Printf("  Description: %s\n", def.Description)
	}
	fmt.Println()

	printStack(lam)
	printStiffness(lam)

	printSection("TRANSVERSE SHEAR")
	w := newTabWriter()
	fmt.Fprintf(w, "  k13:\t%.4f\n", lam.SCFk13)
	fmt.Fprintf(w, "  k23:\t%.4f\n", lam.SCFk23)
	w.Flush()
	fmt.Println()
	fmt.Println("  Corrected [E]:")
	printMatrix(lam.ShearStiffness())

	printSection("LAMINATION PARAMETERS")
	printLaminationParameters(lp)

	if err := lam.CalcEquivalentProperties(); err != nil {
		fmt.Printf("Error computing equivalent properties: %v\n", err)
	} else {
		fmt.Print(diagram.DrawSummaryBox("EQUIVALENT MEMBRANE PROPERTIES", []string{
			fmt.Sprintf("E1  = %.5g", lam.E1),
			fmt.Sprintf("E2  = %.5g", lam.E2),
			fmt.Sprintf("G12 = %.5g", lam.G12),
			fmt.Sprintf("ν12 = %.4f", lam.Nu12),
			fmt.Sprintf("ν21 = %.4f", lam.Nu21),
		}))
		fmt.Println()
	}

	data := stackData(def.Name, lam)
	if laminateAnalyzeShowDiagram {
		fmt.Println(diagram.DrawASCIIStack(data))
	}

	if laminateAnalyzeExportFile != "" {
		if err := diagram.ExportStackDiagram(data, laminateAnalyzeExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", laminateAnalyzeExportFile)
		}
	}
}

func printStack(lam *laminate.Laminate) {
	printSection("PLY STACK (bottom to top)")
	w := newTabWriter()
	fmt.Fprintf(w, "  Ply\tAngle (°)\tThickness\tMaterial\n")
	fmt.Fprintf(w, "  ───\t─────────\t─────────\t────────\n")
	for i, p := range lam.Plies {
		name := ""
		if p.Material != nil {
			name = p.Material.Name
		}
		fmt.Fprintf(w, "  %d\t%.1f\t%.4f\t%s\n", i+1, p.Angle, p.H, name)
	}
	w.Flush()
	fmt.Println()

	w = newTabWriter()
	fmt.Fprintf(w, "  Total thickness h:\t%.4f\n", lam.H)
	fmt.Fprintf(w, "  Reference surface offset:\t%.4f\n", lam.Offset)
	fmt.Fprintf(w, "  Average density ρ:\t%.5g\n", lam.Rho)
	fmt.Fprintf(w, "  ∫ρ dz:\t%.5g\n", lam.IntRho)
	fmt.Fprintf(w, "  ∫ρz dz:\t%.5g\n", lam.IntRhoZ)
	fmt.Fprintf(w, "  ∫ρz² dz:\t%.5g\n", lam.IntRhoZ2)
	w.Flush()
	fmt.Println()
}

func printStiffness(lam *laminate.Laminate) {
	printSection("EXTENSIONAL STIFFNESS [A]")
	printMatrix(lam.A())
	printSection("COUPLING STIFFNESS [B]")
	printMatrix(lam.B())
	printSection("BENDING STIFFNESS [D]")
	printMatrix(lam.D())
	printSection("TRANSVERSE SHEAR STIFFNESS [E] (23, 13)")
	printMatrix(lam.E())
}

func printLaminationParameters(lp laminate.LaminationParameters) {
	w := newTabWriter()
	fmt.Fprintf(w, "  \tξ1\tξ2\tξ3\tξ4\n")
	fmt.Fprintf(w, "  A:\t%.4f\t%.4f\t%.4f\t%.4f\n", lp.XiA1, lp.XiA2, lp.XiA3, lp.XiA4)
	fmt.Fprintf(w, "  B:\t%.4f\t%.4f\t%.4f\t%.4f\n", lp.XiB1, lp.XiB2, lp.XiB3, lp.XiB4)
	fmt.Fprintf(w, "  D:\t%.4f\t%.4f\t%.4f\t%.4f\n", lp.XiD1, lp.XiD2, lp.XiD3, lp.XiD4)
	fmt.Fprintf(w, "  E:\t%.4f\t%.4f\t%.4f\t%.4f\n", lp.XiE1, lp.XiE2, lp.XiE3, lp.XiE4)
	w.Flush()
	fmt.Println()
}
