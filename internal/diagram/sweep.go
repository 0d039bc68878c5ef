package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// SweepData holds a stiffness term evaluated over a range of ply angles
type SweepData struct {
	Material string
	Term     string    // e.g. "q11"
	Angles   []float64 // degrees
	Values   []float64
}

// DrawASCIISweep plots the term against the ply angle
func DrawASCIISweep(data SweepData) string {
	if len(data.Values) == 0 || len(data.Angles) == 0 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s VS PLY ANGLE\n", strings.ToUpper(data.Term)))
	sb.WriteString(fmt.Sprintf("  %s\n\n", strings.Repeat("─", len(data.Term)+15)))

	caption := fmt.Sprintf("%s, %.0f° to %.0f°", data.Term, data.Angles[0], data.Angles[len(data.Angles)-1])
	if data.Material != "" {
		caption = data.Material + ": " + caption
	}
	graph := asciigraph.Plot(data.Values,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Precision(0),
		asciigraph.Offset(4),
		asciigraph.Caption(caption),
	)
	sb.WriteString(graph)
	sb.WriteString("\n")

	return sb.String()
}
