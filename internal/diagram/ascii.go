package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// PlyBand is one ply of a stack diagram, with its z-coordinates measured
// from the reference surface.
type PlyBand struct {
	Angle    float64 // degrees
	Bottom   float64
	Top      float64
	Material string
}

// StackData holds data for drawing a laminate cross-section
type StackData struct {
	Name   string
	Plies  []PlyBand // bottom to top
	Offset float64   // reference surface offset from the mid-plane
}

// Thickness returns the total thickness of the stack
func (d StackData) Thickness() float64 {
	if len(d.Plies) == 0 {
		return 0
	}
	return d.Plies[len(d.Plies)-1].Top - d.Plies[0].Bottom
}

// fill picks the hatching of a ply from its angle
func fill(angle float64) string {
	a := math.Mod(angle, 180)
	if a < 0 {
		a += 180
	}
	switch {
	case a < 7.5 || a > 172.5:
		return "═"
	case math.Abs(a-90) < 7.5:
		return "┃"
	case a < 90:
		return "╱"
	default:
		return "╲"
	}
}

// DrawASCIIStack creates an ASCII cross-section of the ply stack, top ply
// first. Every ply gets at least one row; thicker plies get more.
func DrawASCIIStack(data StackData) string {
	var sb strings.Builder

	widthChars := 30
	maxRows := 24

	h := data.Thickness()
	rows := make([]int, len(data.Plies))
	for i, p := range data.Plies {
		rows[i] = 1
		if h > 0 && len(data.Plies) < maxRows {
			rows[i] = max(1, int(math.Round((p.Top-p.Bottom)/h*float64(maxRows))))
		}
	}

	sb.WriteString("\n")
	sb.WriteString("  PLY STACK                              z (top)     ANGLE   MATERIAL\n")
	sb.WriteString("  ─────────                              ───────     ─────   ────────\n")
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", widthChars)))

	for i := len(data.Plies) - 1; i >= 0; i-- {
		p := data.Plies[i]
		pattern := strings.Repeat(fill(p.Angle), widthChars)
		for r := 0; r < rows[i]; r++ {
			sb.WriteString(fmt.Sprintf("  │%s│", pattern))
			if r == 0 {
				sb.WriteString(fmt.Sprintf("  %2d  %9.4f   %6.1f°   %s", i+1, p.Top, p.Angle, p.Material))
			}
			sb.WriteString("\n")
		}

		if i == 0 {
			continue
		}
		if math.Abs(p.Bottom) < 1e-12*max(h, 1) {
			sb.WriteString(fmt.Sprintf("  ├%s┤ ◄─ z = 0\n", strings.Repeat("┄", widthChars)))
		} else {
			sb.WriteString(fmt.Sprintf("  ├%s┤\n", strings.Repeat("─", widthChars)))
		}
	}

	if len(data.Plies) > 0 {
		sb.WriteString(fmt.Sprintf("  └%s┘      %9.4f\n", strings.Repeat("─", widthChars), data.Plies[0].Bottom))
	} else {
		sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", widthChars)))
	}

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ═══ = 0°    ┃┃┃ = 90°    ╱╱╱ = (0°, 90°)    ╲╲╲ = (90°, 180°)\n")
	sb.WriteString(fmt.Sprintf("  Total thickness h = %.4f\n", h))
	if data.Offset != 0 {
		sb.WriteString(fmt.Sprintf("  Reference surface offset = %.4f from the mid-plane\n", data.Offset))
	}

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	width := utf8.RuneCountInString(title)
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}

	border := strings.Repeat("═", width+4)
	pad := func(s string) string {
		return s + strings.Repeat(" ", width-utf8.RuneCountInString(s))
	}

	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
