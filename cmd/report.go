package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/golam/internal/catalog"
	"github.com/alexiusacademia/golam/internal/diagram"
	"github.com/alexiusacademia/golam/internal/laminate"
	"github.com/alexiusacademia/golam/internal/material"
	"gonum.org/v1/gonum/mat"
)

const rule = "───────────────────────────────────────────────────────────────"

func printHeader(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}

func printSection(title string) {
	fmt.Printf("%s:\n", title)
	fmt.Println(rule)
}

func newTabWriter() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

// printMatrix prints m row by row, right aligned
func printMatrix(m mat.Matrix) {
	r, c := m.Dims()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	for i := 0; i < r; i++ {
		fmt.Fprint(w, "  ")
		for j := 0; j < c; j++ {
			fmt.Fprintf(w, "\t%.5g", m.At(i, j))
		}
		fmt.Fprintln(w, "\t")
	}
	w.Flush()
	fmt.Println()
}

// laminaMaterial resolves the lamina material of the --props and --preset
// flags. A non-zero rho overrides the preset density.
func laminaMaterial(props []float64, preset string, rho float64) (*material.Material, error) {
	if len(props) > 0 {
		m, err := material.ReadLaminaProp(rho, props...)
		if err != nil {
			return nil, err
		}
		m.Name = "custom"
		return m, nil
	}
	if preset == "" {
		return nil, fmt.Errorf("either --props or --preset is required (presets: %s)", strings.Join(catalog.Names(), ", "))
	}

	p, ok := catalog.Lookup(preset)
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (presets: %s)", preset, strings.Join(catalog.Names(), ", "))
	}
	if rho != 0 {
		p.Rho = rho
	}
	return p.Material()
}

// stackData lays the plies of l out for the diagrams
func stackData(name string, l *laminate.Laminate) diagram.StackData {
	data := diagram.StackData{Name: name, Offset: l.Offset}
	z := -l.H/2 + l.Offset
	for _, p := range l.Plies {
		band := diagram.PlyBand{Angle: p.Angle, Bottom: z, Top: z + p.H}
		if p.Material != nil {
			band.Material = p.Material.Name
		}
		data.Plies = append(data.Plies, band)
		z += p.H
	}
	return data
}
