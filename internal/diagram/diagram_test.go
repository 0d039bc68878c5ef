package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func crossPly() StackData {
	return StackData{
		Name: "cross-ply",
		Plies: []PlyBand{
			{Angle: 0, Bottom: -0.25, Top: -0.125, Material: "cfrp"},
			{Angle: 90, Bottom: -0.125, Top: 0, Material: "cfrp"},
			{Angle: 45, Bottom: 0, Top: 0.125, Material: "cfrp"},
			{Angle: -45, Bottom: 0.125, Top: 0.25, Material: "cfrp"},
		},
	}
}

func TestFill(t *testing.T) {
	tests := []struct {
		angle float64
		want  string
	}{
		{0, "═"}, {180, "═"}, {-5, "═"},
		{90, "┃"}, {-90, "┃"}, {270, "┃"},
		{45, "╱"}, {-135, "╱"},
		{-45, "╲"}, {135, "╲"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fill(tt.angle), "angle %v", tt.angle)
	}
}

func TestStackData_Thickness(t *testing.T) {
	assert.InDelta(t, 0.5, crossPly().Thickness(), 1e-12)
	assert.Zero(t, StackData{}.Thickness())
}

func TestDrawASCIIStack(t *testing.T) {
	out := DrawASCIIStack(crossPly())

	assert.Contains(t, out, "PLY STACK")
	assert.Contains(t, out, "◄─ z = 0")
	assert.Contains(t, out, "Total thickness h = 0.5000")
	assert.NotContains(t, out, "offset")

	// top ply is drawn first
	top := strings.Index(out, "╲")
	bottom := strings.Index(out, "═══")
	require.NotEqual(t, -1, top)
	require.NotEqual(t, -1, bottom)
	assert.Less(t, top, bottom)

	data := crossPly()
	data.Offset = 0.1
	assert.Contains(t, DrawASCIIStack(data), "offset = 0.1000")
}

func TestDrawASCIIStack_Empty(t *testing.T) {
	out := DrawASCIIStack(StackData{})
	assert.Contains(t, out, "Total thickness h = 0.0000")
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("EQUIVALENT", []string{"E1 = 1.0 MPa", "ν12 = 0.30"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)

	width := utf8.RuneCountInString(lines[0])
	for _, l := range lines {
		assert.Equal(t, width, utf8.RuneCountInString(l), l)
	}
	assert.Contains(t, out, "ν12 = 0.30")
}

func TestDrawASCIISweep(t *testing.T) {
	out := DrawASCIISweep(SweepData{
		Material: "cfrp",
		Term:     "q11",
		Angles:   []float64{0, 30, 60, 90},
		Values:   []float64{140e3, 80e3, 20e3, 9e3},
	})
	assert.Contains(t, out, "Q11 VS PLY ANGLE")
	assert.Contains(t, out, "cfrp: q11, 0° to 90°")

	assert.Empty(t, DrawASCIISweep(SweepData{Term: "q11"}))
}

func TestExportStackDiagram(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "out", "stack.png")
	require.NoError(t, ExportStackDiagram(crossPly(), file))

	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Error(t, ExportStackDiagram(StackData{}, file))
}

func TestExportSweep(t *testing.T) {
	dir := t.TempDir()
	data := SweepData{Term: "q66", Angles: []float64{0, 45, 90}, Values: []float64{5e3, 30e3, 5e3}}

	require.NoError(t, ExportSweep(data, filepath.Join(dir, "sweep.svg")))
	_, err := os.Stat(filepath.Join(dir, "sweep.svg"))
	require.NoError(t, err)

	// unknown extensions get png appended
	require.NoError(t, ExportSweep(data, filepath.Join(dir, "sweep")))
	_, err = os.Stat(filepath.Join(dir, "sweep.png"))
	require.NoError(t, err)

	data.Angles = data.Angles[:2]
	assert.Error(t, ExportSweep(data, filepath.Join(dir, "bad.png")))
}
