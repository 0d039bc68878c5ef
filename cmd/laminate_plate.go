package cmd

import (
	"fmt"

	"github.com/alexiusacademia/golam/internal/diagram"
	"github.com/alexiusacademia/golam/internal/laminate"
	"github.com/spf13/cobra"
)

var (
	plateThickness float64
	plateE         float64
	plateNu        float64
	plateRho       float64
	plateOffset    float64
	plateStack     []float64
	platePlyT      float64
	platePreset    string
	plateProps     []float64
	plateNoSCF     bool
	plateDiagram   bool
)

var laminatePlateCmd = &cobra.Command{
	Use:   "plate",
	Short: "Analyze an isotropic or uniformly laminated plate",
	Long: `Calculate the stiffness of a plate given on the command line.

Without --stack, the plate is a single isotropic layer of the given
thickness, Young's modulus and Poisson's ratio. With --stack, every ply
has the same thickness and material.

Examples:
  # Aluminium plate
  golam laminate plate --thickness 2 --E 70000 --nu 0.33

  # Quasi-isotropic carbon/epoxy plate
  golam laminate plate --stack 0,45,-45,90,90,-45,45,0 --ply-t 0.125 --preset T300/5208`,
	Run: runLaminatePlate,
}

func init() {
	laminateCmd.AddCommand(laminatePlateCmd)

	// Isotropic plate
	laminatePlateCmd.Flags().Float64VarP(&plateThickness, "thickness", "t", 0, "Plate thickness")
	laminatePlateCmd.Flags().Float64Var(&plateE, "E", 0, "Young's modulus")
	laminatePlateCmd.Flags().Float64Var(&plateNu, "nu", 0.3, "Poisson's ratio")

	// Laminated plate
	laminatePlateCmd.Flags().Float64SliceVar(&plateStack, "stack", nil, "Ply angles bottom to top (degrees)")
	laminatePlateCmd.Flags().Float64Var(&platePlyT, "ply-t", 0, "Ply thickness")
	laminatePlateCmd.Flags().StringVar(&platePreset, "preset", "", "Material preset name")
	laminatePlateCmd.Flags().Float64SliceVarP(&plateProps, "props", "p", nil, "Lamina property tuple (comma separated)")

	laminatePlateCmd.Flags().Float64Var(&plateRho, "rho", 0, "Density")
	laminatePlateCmd.Flags().Float64Var(&plateOffset, "offset", 0, "Reference surface offset from the mid-plane")
	laminatePlateCmd.Flags().BoolVar(&plateNoSCF, "no-scf", false, "Keep the 5/6 shear correction factors")
	laminatePlateCmd.Flags().BoolVar(&plateDiagram, "diagram", false, "Show ASCII ply stack diagram")
}

func runLaminatePlate(cmd *cobra.Command, args []string) {
	var lam *laminate.Laminate
	var err error

	if len(plateStack) > 0 {
		m, merr := laminaMaterial(plateProps, platePreset, plateRho)
		if merr != nil {
			fmt.Printf("Error: %v\n", merr)
			return
		}
		lam, err = laminate.LaminatedPlate(plateStack, laminate.PlateOptions{
			PlyT:       platePlyT,
			LaminaProp: []float64{m.E1, m.E2, m.Nu12, m.G12, m.G13, m.G23, m.E3, m.Nu13, m.Nu23},
			Rho:        m.Rho,
			Offset:     plateOffset,
			SkipSCF:    plateNoSCF,
		})
		if err == nil {
			for _, p := range lam.Plies {
				p.Material.Name = m.Name
			}
		}
	} else {
		if plateThickness <= 0 || plateE <= 0 {
			fmt.Println("Error: --thickness and --E are required for an isotropic plate")
			return
		}
		lam, err = laminate.LaminatedPlate([]float64{0}, laminate.PlateOptions{
			PlyT:       plateThickness,
			LaminaProp: []float64{plateE, plateNu},
			Rho:        plateRho,
			Offset:     plateOffset,
			SkipSCF:    plateNoSCF,
		})
	}
	if err != nil {
		fmt.Printf("Error building plate: %v\n", err)
		return
	}

	printHeader("PLATE STIFFNESS ANALYSIS - CLT / FSDT")
	printStack(lam)
	printStiffness(lam)

	printSection("TRANSVERSE SHEAR")
	w := newTabWriter()
	fmt.Fprintf(w, "  k13:\t%.4f\n", lam.SCFk13)
	fmt.Fprintf(w, "  k23:\t%.4f\n", lam.SCFk23)
	w.Flush()
	fmt.Println()

	if err := lam.CalcEquivalentProperties(); err != nil {
		fmt.Printf("Error computing equivalent properties: %v\n", err)
	} else {
		fmt.Print(diagram.DrawSummaryBox("EQUIVALENT MEMBRANE PROPERTIES", []string{
			fmt.Sprintf("E1  = %.5g", lam.E1),
			fmt.Sprintf("E2  = %.5g", lam.E2),
			fmt.Sprintf("G12 = %.5g", lam.G12),
			fmt.Sprintf("ν12 = %.4f", lam.Nu12),
		}))
		fmt.Println()
	}

	if plateDiagram {
		fmt.Println(diagram.DrawASCIIStack(stackData("", lam)))
	}
}
