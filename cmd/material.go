package cmd

import (
	"fmt"

	"github.com/alexiusacademia/golam/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	materialProps  []float64
	materialPreset string
	materialRho    float64
	materialList   bool
)

var materialCmd = &cobra.Command{
	Use:   "material",
	Short: "Compute the stiffness of a lamina material",
	Long: `Compute the 3D stiffness, reduced stiffness and rotation invariants
of an orthotropic lamina material from its engineering constants.

Property tuples:
  e,nu                                   isotropic
  e1,e2,nu12,g12,g13,g23                 transversely isotropic (e3 = e2)
  e1,e2,nu12,g12,g13,g23,e3,nu13,nu23    orthotropic

Examples:
  golam material --props 142500,8700,0.28,5100,5100,2900 --rho 1600
  golam material --preset IM7/8552
  golam material --list`,
	Run: runMaterial,
}

func init() {
	rootCmd.AddCommand(materialCmd)

	materialCmd.Flags().Float64SliceVarP(&materialProps, "props", "p", nil, "Lamina property tuple (comma separated)")
	materialCmd.Flags().StringVar(&materialPreset, "preset", "", "Material preset name")
	materialCmd.Flags().Float64Var(&materialRho, "rho", 0, "Density (overrides the preset density)")
	materialCmd.Flags().BoolVarP(&materialList, "list", "l", false, "List the material presets")
}

func runMaterial(cmd *cobra.Command, args []string) {
	if materialList {
		printHeader("MATERIAL PRESETS")
		w := newTabWriter()
		fmt.Fprintf(w, "  Name\tE1 (MPa)\tE2 (MPa)\tν12\tG12 (MPa)\tρ (kg/m³)\tDescription\t\n")
		for _, name := range catalog.Names() {
			p, _ := catalog.Lookup(name)
			m, err := p.Material()
			if err != nil {
				fmt.Printf("Error building preset %s: %v\n", name, err)
				return
			}
			fmt.Fprintf(w, "  %s\t%.0f\t%.0f\t%.2f\t%.0f\t%.0f\t%s\t\n", p.Name, m.E1, m.E2, m.Nu12, m.G12, m.Rho, p.Description)
		}
		w.Flush()
		fmt.Println()
		return
	}

	m, err := laminaMaterial(materialProps, materialPreset, materialRho)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printHeader("LAMINA MATERIAL - " + m.Name)

	printSection("ENGINEERING CONSTANTS")
	w := newTabWriter()
	fmt.Fprintf(w, "  E1:\t%.5g\t\n", m.E1)
	fmt.Fprintf(w, "  E2:\t%.5g\t\n", m.E2)
	fmt.Fprintf(w, "  E3:\t%.5g\t\n", m.E3)
	fmt.Fprintf(w, "  G12:\t%.5g\t\n", m.G12)
	fmt.Fprintf(w, "  G13:\t%.5g\t\n", m.G13)
	fmt.Fprintf(w, "  G23:\t%.5g\t\n", m.G23)
	fmt.Fprintf(w, "  ν12 / ν21:\t%.4f / %.4f\t\n", m.Nu12, m.Nu21)
	fmt.Fprintf(w, "  ν13 / ν31:\t%.4f / %.4f\t\n", m.Nu13, m.Nu31)
	fmt.Fprintf(w, "  ν23 / ν32:\t%.4f / %.4f\t\n", m.Nu23, m.Nu32)
	fmt.Fprintf(w, "  ρ:\t%.5g\t\n", m.Rho)
	w.Flush()
	fmt.Println()

	printSection("3D STIFFNESS [C] (11, 22, 33, 23, 13, 12)")
	printMatrix(m.ConstitutiveMatrix())

	printSection("REDUCED STIFFNESS")
	w = newTabWriter()
	fmt.Fprintf(w, "  q11:\t%.5g\tq12:\t%.5g\tq13:\t%.5g\t\n", m.Q11, m.Q12, m.Q13)
	fmt.Fprintf(w, "  q21:\t%.5g\tq22:\t%.5g\tq23:\t%.5g\t\n", m.Q21, m.Q22, m.Q23)
	fmt.Fprintf(w, "  q31:\t%.5g\tq32:\t%.5g\tq33:\t%.5g\t\n", m.Q31, m.Q32, m.Q33)
	fmt.Fprintf(w, "  q44:\t%.5g\tq55:\t%.5g\tq66:\t%.5g\t\n", m.Q44, m.Q55, m.Q66)
	w.Flush()
	fmt.Println()

	printSection("ROTATION INVARIANTS")
	w = newTabWriter()
	fmt.Fprintf(w, "  U1:\t%.5g\tU2:\t%.5g\tU3:\t%.5g\tU4:\t%.5g\t\n", m.U1, m.U2, m.U3, m.U4)
	fmt.Fprintf(w, "  U5:\t%.5g\tU6:\t%.5g\tU7:\t%.5g\t\t\t\n", m.U5, m.U6, m.U7)
	w.Flush()
	fmt.Println()
}
