package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/golam/internal/diagram"
	"github.com/alexiusacademia/golam/internal/ply"
	"github.com/spf13/cobra"
)

var (
	sweepProps      []float64
	sweepPreset     string
	sweepRho        float64
	sweepFrom       float64
	sweepTo         float64
	sweepStep       float64
	sweepTerm       string
	sweepTable      bool
	sweepExportFile string
)

var plySweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Plot a rotated stiffness term against the ply angle",
	Long: `Rotate a lamina through a range of angles and plot one term of its
reduced stiffness in the laminate axes.

Terms: q11, q12, q16, q22, q26, q66 (in-plane), q44, q45, q55 (transverse shear)

Examples:
  golam ply sweep --preset T300/5208 --term q11
  golam ply sweep --props 142500,8700,0.28,5100,5100,2900 --term q16 --step 2
  golam ply sweep --preset IM7/8552 --term q66 -o q66.png`,
	Run: runPlySweep,
}

func init() {
	plyCmd.AddCommand(plySweepCmd)

	plySweepCmd.Flags().Float64SliceVarP(&sweepProps, "props", "p", nil, "Lamina property tuple (comma separated)")
	plySweepCmd.Flags().StringVar(&sweepPreset, "preset", "", "Material preset name")
	plySweepCmd.Flags().Float64Var(&sweepRho, "rho", 0, "Density")
	plySweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "First angle (degrees)")
	plySweepCmd.Flags().Float64Var(&sweepTo, "to", 180, "Last angle (degrees)")
	plySweepCmd.Flags().Float64Var(&sweepStep, "step", 5, "Angle increment (degrees)")
	plySweepCmd.Flags().StringVarP(&sweepTerm, "term", "t", "q11", "Stiffness term to plot")

	// Output options
	plySweepCmd.Flags().BoolVar(&sweepTable, "table", false, "Print the values as a table")
	plySweepCmd.Flags().StringVarP(&sweepExportFile, "output", "o", "", "Export plot to file (png, svg, pdf)")
}

func runPlySweep(cmd *cobra.Command, args []string) {
	m, err := laminaMaterial(sweepProps, sweepPreset, sweepRho)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	angles, values, err := ply.Sweep(m, sweepTerm, sweepFrom, sweepTo, sweepStep)
	if err != nil {
		fmt.Printf("Error computing sweep: %v\n", err)
		return
	}

	data := diagram.SweepData{
		Material: m.Name,
		Term:     sweepTerm,
		Angles:   angles,
		Values:   values,
	}

	fmt.Println(diagram.DrawASCIISweep(data))

	if sweepTable {
		printSection("VALUES")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(w, "  θ (°)\t%s\t\n", sweepTerm)
		for i := range angles {
			fmt.Fprintf(w, "  %.2f\t%.5g\t\n", angles[i], values[i])
		}
		w.Flush()
		fmt.Println()
	}

	if sweepExportFile != "" {
		if err := diagram.ExportSweep(data, sweepExportFile); err != nil {
			fmt.Printf("Error exporting plot: %v\n", err)
		} else {
			fmt.Printf("Plot exported to: %s\n", sweepExportFile)
		}
	}
}
